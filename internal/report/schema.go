// Package report turns decoded route records into a styled xlsx workbook.
package report

import (
	"fmt"
	"slices"

	"github.com/teot59/airline-manager-JSON-to-excel/internal/domain/models"
)

// Supported view modes. Any other value resolves to the full schema.
const (
	ModePax   = "pax"
	ModeCargo = "cargo"
	ModeFull  = "full"
)

const (
	defaultWidth = 15
	nameWidth    = 20
	fullWidth    = 25
)

// Category selects the number format applied to a column's cells.
type Category int

const (
	Text Category = iota
	Integer
	Decimal
	Percentage
)

func (c Category) String() string {
	switch c {
	case Integer:
		return "integer"
	case Decimal:
		return "decimal"
	case Percentage:
		return "percentage"
	default:
		return "text"
	}
}

// Column defines one physical column of the report.
type Column struct {
	Header string
	Value  func(models.RouteRecord) any
	Format Category
	Width  float64
}

// Schema is the ordered column list for one view mode.
type Schema struct {
	Mode    string
	Columns []Column
}

// Headers returns the header labels in column order.
func (s Schema) Headers() []string {
	headers := make([]string, len(s.Columns))
	for i, col := range s.Columns {
		headers[i] = col.Header
	}
	return headers
}

// Resolve returns the schema for mode. Unrecognised modes, including the empty
// string, get the full schema.
func Resolve(mode string) Schema {
	switch mode {
	case ModePax:
		return Schema{Mode: ModePax, Columns: slices.Clone(paxColumns)}
	case ModeCargo:
		return Schema{Mode: ModeCargo, Columns: slices.Clone(cargoColumns)}
	default:
		return Schema{Mode: ModeFull, Columns: slices.Clone(fullColumns)}
	}
}

func col(header string, format Category, value func(models.RouteRecord) any) Column {
	return Column{Header: header, Value: value, Format: format, Width: defaultWidth}
}

func wide(c Column, width float64) Column {
	c.Width = width
	return c
}

func triple(y, j, f int) string {
	return fmt.Sprintf("%d-%d-%d", y, j, f)
}

var (
	airportID      = col("Airport ID", Integer, func(r models.RouteRecord) any { return r.Airport.ID })
	airportName    = wide(col("Airport Name", Text, func(r models.RouteRecord) any { return r.Airport.Name }), nameWidth)
	airportFull    = wide(col("Full Name", Text, func(r models.RouteRecord) any { return r.Airport.Fullname }), fullWidth)
	airportCountry = col("Country", Text, func(r models.RouteRecord) any { return r.Airport.Country })
	runwayLength   = col("Runway Length", Integer, func(r models.RouteRecord) any { return r.Airport.Rwy })

	directDistance = col("Direct Distance", Decimal, func(r models.RouteRecord) any { return r.Result.Route.DirectDistance })
	needsStopover  = col("Needs Stopover", Text, func(r models.RouteRecord) any { return r.Result.NeedsStopover })

	stopoverAirport = wide(col("Stopover Airport", Text, func(r models.RouteRecord) any {
		return stopoverField(r.Result, func(a *models.Airport) string { return a.Name })
	}), nameWidth)

	stopoverCountry = col("Stopover Country", Text, func(r models.RouteRecord) any {
		return stopoverField(r.Result, func(a *models.Airport) string { return a.Country })
	})

	flightTime    = col("Flight Time", Decimal, func(r models.RouteRecord) any { return r.Result.FlightTime })
	tripsPerDay   = col("Trips Per Day", Integer, func(r models.RouteRecord) any { return r.Result.TripsPerDayPerAC })
	aircraftCount = col("Aircraft Count", Integer, func(r models.RouteRecord) any { return r.Result.NumAC })

	maxIncome  = col("Max Income", Decimal, func(r models.RouteRecord) any { return r.Result.MaxIncome })
	income     = col("Income", Decimal, func(r models.RouteRecord) any { return r.Result.Income })
	fuelCost   = col("Fuel Cost", Decimal, func(r models.RouteRecord) any { return r.Result.Fuel })
	co2        = col("CO2 Emissions", Decimal, func(r models.RouteRecord) any { return r.Result.CO2 })
	acheckCost = col("A-Check Cost", Decimal, func(r models.RouteRecord) any { return r.Result.ACheckCost })
	repairCost = col("Repair Cost", Decimal, func(r models.RouteRecord) any { return r.Result.RepairCost })
)

var compactLeading = []Column{airportID, airportName, airportFull, airportCountry, runwayLength}

var compactTrailing = []Column{
	directDistance, needsStopover, stopoverAirport, stopoverCountry,
	flightTime, tripsPerDay, aircraftCount,
	maxIncome, income, fuelCost, co2, acheckCost, repairCost,
}

var paxColumns = slices.Concat(compactLeading, []Column{
	col("Config Y-J-F", Text, func(r models.RouteRecord) any {
		c := r.Result.Config
		return triple(c.Y, c.J, c.F)
	}),
	col("Ticket Y-J-F", Text, func(r models.RouteRecord) any {
		t := r.Result.Ticket
		return triple(t.Y, t.J, t.F)
	}),
	col("Demand Y-J-F", Text, func(r models.RouteRecord) any {
		d := r.Result.Route.PaxDemand
		return triple(d.Y, d.J, d.F)
	}),
}, compactTrailing)

var cargoColumns = slices.Concat(compactLeading, []Column{
	col("Cargo L Demand", Integer, func(r models.RouteRecord) any { return r.Result.Route.CargoDemand.L }),
	col("Cargo H Demand", Integer, func(r models.RouteRecord) any { return r.Result.Route.CargoDemand.H }),
}, compactTrailing)

var fullColumns = []Column{
	airportID, airportName, airportFull, airportCountry,
	col("Continent", Text, func(r models.RouteRecord) any { return r.Airport.Continent }),
	col("IATA", Text, func(r models.RouteRecord) any { return r.Airport.IATA }),
	col("ICAO", Text, func(r models.RouteRecord) any { return r.Airport.ICAO }),
	col("Latitude", Decimal, func(r models.RouteRecord) any { return r.Airport.Lat }),
	col("Longitude", Decimal, func(r models.RouteRecord) any { return r.Airport.Lng }),
	runwayLength,
	col("Market", Integer, func(r models.RouteRecord) any { return r.Airport.Market }),
	col("Hub Cost", Integer, func(r models.RouteRecord) any { return r.Airport.HubCost }),
	col("Runway Codes", Text, func(r models.RouteRecord) any { return r.Airport.RwyCodes }),
	col("Pax Y Demand", Integer, func(r models.RouteRecord) any { return r.Result.Route.PaxDemand.Y }),
	col("Pax J Demand", Integer, func(r models.RouteRecord) any { return r.Result.Route.PaxDemand.J }),
	col("Pax F Demand", Integer, func(r models.RouteRecord) any { return r.Result.Route.PaxDemand.F }),
	col("Cargo L Demand", Integer, func(r models.RouteRecord) any { return r.Result.Route.CargoDemand.L }),
	col("Cargo H Demand", Integer, func(r models.RouteRecord) any { return r.Result.Route.CargoDemand.H }),
	directDistance,
	col("Valid Route", Text, func(r models.RouteRecord) any { return r.Result.Valid }),
	needsStopover, stopoverAirport, stopoverCountry,
	flightTime, tripsPerDay, aircraftCount,
	col("Config Y", Integer, func(r models.RouteRecord) any { return r.Result.Config.Y }),
	col("Config J", Integer, func(r models.RouteRecord) any { return r.Result.Config.J }),
	col("Config F", Integer, func(r models.RouteRecord) any { return r.Result.Config.F }),
	col("Ticket Y", Integer, func(r models.RouteRecord) any { return r.Result.Ticket.Y }),
	col("Ticket J", Integer, func(r models.RouteRecord) any { return r.Result.Ticket.J }),
	col("Ticket F", Integer, func(r models.RouteRecord) any { return r.Result.Ticket.F }),
	maxIncome, income, fuelCost, co2, acheckCost, repairCost,
	col("Profit", Decimal, func(r models.RouteRecord) any { return r.Result.Profit }),
	col("CI", Integer, func(r models.RouteRecord) any { return r.Result.CI }),
	col("Contribution", Percentage, func(r models.RouteRecord) any { return r.Result.Contribution / 100 }),
}
