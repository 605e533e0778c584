package report

import "github.com/teot59/airline-manager-JSON-to-excel/internal/domain/models"

// Placeholder texts for the stopover columns.
const (
	NotApplicable  = "N/A"
	NoStopoverData = "No stopover data"
)

const (
	yes = "Yes"
	no  = "No"
)

// palettes holds the band colours: even rows use palette A, odd rows palette B.
// Within a palette the first colour is used on even columns.
var palettes = [2][2]string{
	{"#FFFFFF", "#F2F2F2"},
	{"#DDEBF7", "#C9DDF0"},
}

// Band identifies the background colour slot for a data cell.
type Band struct {
	Palette int
	Shade   int
}

// BandAt returns the band of the cell at the zero-based data row and physical
// column position.
func BandAt(row, col int) Band {
	return Band{Palette: row & 1, Shade: col & 1}
}

// Color returns the fill colour of the band.
func (b Band) Color() string {
	return palettes[b.Palette][b.Shade]
}

// Cell is a formatted value ready to be written.
type Cell struct {
	Value  any
	Format Category
	Band   Band
}

// FormatCell extracts the value of column def from rec, positioned at the
// given data row and column index. Booleans are rendered as Yes/No.
func FormatCell(rec models.RouteRecord, row, col int, def Column) Cell {
	value := def.Value(rec)
	if b, ok := value.(bool); ok {
		value = yesNo(b)
	}
	return Cell{Value: value, Format: def.Format, Band: BandAt(row, col)}
}

// numFmt maps a category to its built-in spreadsheet number format id.
func (c Category) numFmt() int {
	switch c {
	case Integer:
		return 3 // #,##0
	case Decimal:
		return 4 // #,##0.00
	case Percentage:
		return 10 // 0.00%
	default:
		return 0
	}
}

func yesNo(b bool) string {
	if b {
		return yes
	}
	return no
}

// stopoverField ignores any attached stopover unless the route needs one.
func stopoverField(r *models.AircraftRoute, field func(*models.Airport) string) string {
	if !r.NeedsStopover {
		return NotApplicable
	}
	airport, ok := r.StopoverAirport()
	if !ok {
		return NoStopoverData
	}
	return field(airport)
}

// missingStopover reports the data-quality case of a required but absent stopover.
func missingStopover(r *models.AircraftRoute) bool {
	if !r.NeedsStopover {
		return false
	}
	_, ok := r.StopoverAirport()
	return !ok
}
