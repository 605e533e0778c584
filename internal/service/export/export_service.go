package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/teot59/airline-manager-JSON-to-excel/internal/domain/models"
	"github.com/teot59/airline-manager-JSON-to-excel/internal/report"
)

// ErrInvalidInput indicates the batch could not be read as route records.
var ErrInvalidInput = errors.New("invalid route batch")

// Mirror copies an exported table to a secondary spreadsheet.
type Mirror interface {
	ReplaceRange(ctx context.Context, sheetRange string, rows [][]interface{}) error
}

// HistoryStore records finished exports.
type HistoryStore interface {
	SaveExport(ctx context.Context, record models.ExportRecord) error
}

// Notifier announces finished exports to an external endpoint.
type Notifier interface {
	NotifyExport(ctx context.Context, resp models.ExportResponse) error
}

// Service turns route batches into workbooks on disk.
type Service struct {
	mirror   Mirror
	history  HistoryStore
	notifier Notifier
	logger   *zap.Logger
	now      func() time.Time
}

// NewService wires an export service. Mirror, history and notifier are
// optional and may be nil.
func NewService(mirror Mirror, history HistoryStore, notifier Notifier, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		mirror:   mirror,
		history:  history,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// ExportFile reads a JSON batch from path and exports it beside the file.
func (s *Service) ExportFile(ctx context.Context, path, mode string) (models.ExportResponse, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.ExportResponse{}, fmt.Errorf("read batch %s: %w", path, err)
	}
	return s.ExportJSON(ctx, data, path, mode)
}

// ExportJSON decodes a JSON batch and exports it. reference only names the output.
func (s *Service) ExportJSON(ctx context.Context, data []byte, reference, mode string) (models.ExportResponse, error) {
	records, err := models.DecodeBatch(data)
	if err != nil {
		return models.ExportResponse{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return s.Export(ctx, records, reference, mode)
}

// Export writes records into a workbook for mode and saves it at the path
// derived from reference. Either the whole batch is persisted or nothing is.
func (s *Service) Export(ctx context.Context, records []models.RouteRecord, reference, mode string) (models.ExportResponse, error) {
	start := s.now()

	path, err := report.ResolvePath(reference, mode)
	if err != nil {
		return models.ExportResponse{}, err
	}

	schema := report.Resolve(mode)
	s.logger.Debug("schema resolved",
		zap.String("requested_mode", mode),
		zap.String("mode", schema.Mode),
		zap.Int("columns", len(schema.Columns)),
		zap.Int("records", len(records)))

	doc, err := report.Write(schema, records)
	if err != nil {
		return models.ExportResponse{}, fmt.Errorf("build workbook: %w", err)
	}
	defer func() { _ = doc.Close() }()

	if err := doc.Save(path); err != nil {
		return models.ExportResponse{}, fmt.Errorf("save workbook: %w", err)
	}

	resp := models.ExportResponse{
		Path:             path,
		Mode:             schema.Mode,
		Rows:             doc.Rows,
		MissingStopovers: doc.MissingStopovers,
	}
	elapsed := s.now().Sub(start)

	if resp.MissingStopovers > 0 {
		s.logger.Warn("routes need a stopover but carry none",
			zap.String("path", path),
			zap.Int("count", resp.MissingStopovers))
	}

	s.logger.Info("workbook exported",
		zap.String("path", path),
		zap.String("mode", resp.Mode),
		zap.Int("rows", resp.Rows),
		zap.Duration("duration", elapsed))

	s.publish(ctx, schema, records, reference, resp, elapsed)

	return resp, nil
}

// publish runs the optional side effects. Their failures are logged only; the
// workbook is already on disk.
func (s *Service) publish(ctx context.Context, schema report.Schema, records []models.RouteRecord, reference string, resp models.ExportResponse, elapsed time.Duration) {
	if s.mirror != nil {
		sheetRange := fmt.Sprintf("%s!A1", schema.Mode)
		if err := s.mirror.ReplaceRange(ctx, sheetRange, tableValues(schema, records)); err != nil {
			s.logger.Warn("mirror to google sheets failed", zap.String("range", sheetRange), zap.Error(err))
		}
	}

	if s.history != nil {
		record := models.ExportRecord{
			Path:             resp.Path,
			ReferencePath:    reference,
			Mode:             resp.Mode,
			Rows:             resp.Rows,
			MissingStopovers: resp.MissingStopovers,
			Duration:         elapsed.String(),
			CreatedAt:        s.now().UTC(),
		}
		if err := s.history.SaveExport(ctx, record); err != nil {
			s.logger.Warn("failed to record export history", zap.Error(err))
		}
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyExport(ctx, resp); err != nil {
			s.logger.Warn("export notification failed", zap.Error(err))
		}
	}
}

// tableValues renders the header and rows as plain values for the mirror.
func tableValues(schema report.Schema, records []models.RouteRecord) [][]interface{} {
	rows := make([][]interface{}, 0, len(records)+1)

	header := make([]interface{}, len(schema.Columns))
	for i, h := range schema.Headers() {
		header[i] = h
	}
	rows = append(rows, header)

	for i, rec := range records {
		row := make([]interface{}, len(schema.Columns))
		for j, column := range schema.Columns {
			row[j] = report.FormatCell(rec, i, j, column).Value
		}
		rows = append(rows, row)
	}

	return rows
}
