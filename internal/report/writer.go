package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/teot59/airline-manager-JSON-to-excel/internal/domain/models"
)

// SheetName is the name of the single worksheet in every exported workbook.
const SheetName = "Routes"

const headerFillColor = "#E6E6FA"

// ErrMalformedRecord indicates a record is missing a value the schema dereferences.
var ErrMalformedRecord = errors.New("malformed route record")

var categories = []Category{Text, Integer, Decimal, Percentage}

type styleKey struct {
	band   Band
	format Category
}

// styleRegistry holds every style a document needs, created once per workbook.
type styleRegistry struct {
	header int
	cells  map[styleKey]int
}

func newStyleRegistry(f *excelize.File) (*styleRegistry, error) {
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFillColor}},
		Border: []excelize.Border{
			{Type: "left", Color: "#000000", Style: 1},
			{Type: "top", Color: "#000000", Style: 1},
			{Type: "right", Color: "#000000", Style: 1},
			{Type: "bottom", Color: "#000000", Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	reg := &styleRegistry{header: header, cells: make(map[styleKey]int, 16)}
	for palette := range palettes {
		for shade := range palettes[palette] {
			band := Band{Palette: palette, Shade: shade}
			for _, category := range categories {
				id, err := f.NewStyle(&excelize.Style{
					Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{band.Color()}},
					NumFmt: category.numFmt(),
				})
				if err != nil {
					return nil, fmt.Errorf("create %s style: %w", category, err)
				}
				reg.cells[styleKey{band: band, format: category}] = id
			}
		}
	}

	return reg, nil
}

func (r *styleRegistry) cell(c Cell) int {
	return r.cells[styleKey{band: c.Band, format: c.Format}]
}

// Document is an in-memory workbook produced by Write.
type Document struct {
	Schema Schema
	// Rows is the number of data rows, excluding the header.
	Rows int
	// MissingStopovers counts rows that need a stopover but carry none.
	MissingStopovers int

	file *excelize.File
}

// Write renders records into a new workbook following schema: a styled header
// in the first row, one banded row per record, then the column widths. Any
// malformed record fails the whole document.
func Write(schema Schema, records []models.RouteRecord) (doc *Document, err error) {
	f := excelize.NewFile()
	defer func() {
		if err != nil {
			_ = f.Close()
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("rename worksheet: %w", err)
	}

	styles, err := newStyleRegistry(f)
	if err != nil {
		return nil, err
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return nil, fmt.Errorf("open stream writer: %w", err)
	}

	// widths must precede the first row in a streamed sheet
	for i, column := range schema.Columns {
		if err := sw.SetColWidth(i+1, i+1, column.Width); err != nil {
			return nil, fmt.Errorf("set width of column %q: %w", column.Header, err)
		}
	}

	header := make([]interface{}, len(schema.Columns))
	for i, column := range schema.Columns {
		header[i] = excelize.Cell{StyleID: styles.header, Value: column.Header}
	}
	if err := sw.SetRow("A1", header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	doc = &Document{Schema: schema, file: f}
	for i, rec := range records {
		if rec.Airport == nil || rec.Result == nil {
			return nil, fmt.Errorf("record %d: %w", i, ErrMalformedRecord)
		}

		row := make([]interface{}, len(schema.Columns))
		for j, column := range schema.Columns {
			c := FormatCell(rec, i, j, column)
			row[j] = excelize.Cell{StyleID: styles.cell(c), Value: c.Value}
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if err := sw.SetRow(cell, row); err != nil {
			return nil, fmt.Errorf("write record %d: %w", i, err)
		}

		if missingStopover(rec.Result) {
			doc.MissingStopovers++
		}
		doc.Rows++
	}

	if err := sw.Flush(); err != nil {
		return nil, fmt.Errorf("flush worksheet: %w", err)
	}

	return doc, nil
}

// WriteTo encodes the workbook to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	return d.file.WriteTo(w)
}

// Save persists the workbook at path. The file is written beside the target
// and renamed into place, so a failed save never leaves a partial workbook.
func (d *Document) Save(path string) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = d.file.WriteTo(tmp); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("encode workbook: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("move workbook to %s: %w", path, err)
	}

	return nil
}

// Close releases the workbook resources.
func (d *Document) Close() error {
	return d.file.Close()
}
