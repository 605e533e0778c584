package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePaxSchema(t *testing.T) {
	s := Resolve("pax")

	assert.Equal(t, ModePax, s.Mode)
	assert.Equal(t, []string{
		"Airport ID", "Airport Name", "Full Name", "Country", "Runway Length",
		"Config Y-J-F", "Ticket Y-J-F", "Demand Y-J-F",
		"Direct Distance", "Needs Stopover", "Stopover Airport", "Stopover Country",
		"Flight Time", "Trips Per Day", "Aircraft Count",
		"Max Income", "Income", "Fuel Cost", "CO2 Emissions", "A-Check Cost", "Repair Cost",
	}, s.Headers())
}

func TestResolveCargoSchema(t *testing.T) {
	s := Resolve("cargo")

	assert.Equal(t, ModeCargo, s.Mode)
	assert.Equal(t, []string{
		"Airport ID", "Airport Name", "Full Name", "Country", "Runway Length",
		"Cargo L Demand", "Cargo H Demand",
		"Direct Distance", "Needs Stopover", "Stopover Airport", "Stopover Country",
		"Flight Time", "Trips Per Day", "Aircraft Count",
		"Max Income", "Income", "Fuel Cost", "CO2 Emissions", "A-Check Cost", "Repair Cost",
	}, s.Headers())
}

func TestResolveFullSchema(t *testing.T) {
	s := Resolve("full")

	require.Len(t, s.Columns, 41)
	assert.Equal(t, ModeFull, s.Mode)
	assert.Equal(t, []string{
		"Airport ID", "Airport Name", "Full Name", "Country", "Continent",
		"IATA", "ICAO", "Latitude", "Longitude", "Runway Length", "Market", "Hub Cost",
		"Runway Codes", "Pax Y Demand", "Pax J Demand", "Pax F Demand",
		"Cargo L Demand", "Cargo H Demand", "Direct Distance", "Valid Route",
		"Needs Stopover", "Stopover Airport", "Stopover Country", "Flight Time",
		"Trips Per Day", "Aircraft Count", "Config Y", "Config J", "Config F",
		"Ticket Y", "Ticket J", "Ticket F", "Max Income", "Income", "Fuel Cost",
		"CO2 Emissions", "A-Check Cost", "Repair Cost", "Profit", "CI", "Contribution",
	}, s.Headers())
}

func TestResolveFallsBackToFull(t *testing.T) {
	full := Resolve(ModeFull).Headers()

	for _, mode := range []string{"", "PAX", "Cargo", "detailed", "full "} {
		s := Resolve(mode)
		assert.Equal(t, ModeFull, s.Mode, "mode %q", mode)
		assert.Equal(t, full, s.Headers(), "mode %q", mode)
	}
}

func TestCompactSchemasOmitProfitBlock(t *testing.T) {
	for _, mode := range []string{ModePax, ModeCargo} {
		s := Resolve(mode)
		for _, header := range []string{"Profit", "CI", "Contribution", "Valid Route"} {
			assert.Equal(t, -1, columnIndex(s, header), "%s schema has %s", mode, header)
		}
	}
}

func TestColumnWidths(t *testing.T) {
	s := Resolve(ModeFull)

	assert.Equal(t, 20.0, s.Columns[columnIndex(s, "Airport Name")].Width)
	assert.Equal(t, 25.0, s.Columns[columnIndex(s, "Full Name")].Width)
	assert.Equal(t, 15.0, s.Columns[columnIndex(s, "Country")].Width)
	assert.Equal(t, 20.0, s.Columns[columnIndex(s, "Stopover Airport")].Width)
	assert.Equal(t, 15.0, s.Columns[columnIndex(s, "IATA")].Width)
}

func TestColumnCategories(t *testing.T) {
	s := Resolve(ModeFull)

	cases := map[string]Category{
		"Airport ID":      Integer,
		"Airport Name":    Text,
		"Latitude":        Decimal,
		"Direct Distance": Decimal,
		"Valid Route":     Text,
		"Config Y":        Integer,
		"CI":              Integer,
		"Contribution":    Percentage,
	}
	for header, want := range cases {
		idx := columnIndex(s, header)
		require.NotEqual(t, -1, idx, header)
		assert.Equal(t, want, s.Columns[idx].Format, header)
	}
}

func TestResolveReturnsIndependentCopies(t *testing.T) {
	a := Resolve(ModePax)
	a.Columns[0].Header = "changed"

	assert.Equal(t, "Airport ID", Resolve(ModePax).Columns[0].Header)
}
