package report

import "github.com/teot59/airline-manager-JSON-to-excel/internal/domain/models"

func sampleRecord(id int) models.RouteRecord {
	return models.RouteRecord{
		Airport: &models.Airport{
			ID:        id,
			Name:      "Heathrow",
			Fullname:  "London Heathrow Airport",
			Country:   "United Kingdom",
			Continent: "Europe",
			IATA:      "LHR",
			ICAO:      "EGLL",
			Lat:       51.4706,
			Lng:       -0.461941,
			Rwy:       12799,
			Market:    90,
			HubCost:   48000,
			RwyCodes:  "09L|27R",
		},
		Result: &models.AircraftRoute{
			Route: models.Route{
				PaxDemand:      models.PaxDemand{Y: 1200, J: 300, F: 80},
				CargoDemand:    models.CargoDemand{L: 45000, H: 12000},
				DirectDistance: 5570.25,
			},
			Valid:            true,
			FlightTime:       6.75,
			TripsPerDayPerAC: 2,
			NumAC:            3,
			Config:           models.Config{Y: 250, J: 40, F: 10, Algorithm: "FJY"},
			Ticket:           models.Ticket{Y: 1100, J: 3400, F: 6900},
			MaxIncome:        512345.5,
			Income:           498000.25,
			Fuel:             42000,
			CO2:              18000.5,
			ACheckCost:       1250,
			RepairCost:       830.75,
			Profit:           380000,
			CI:               200,
			Contribution:     42.0,
		},
	}
}

func withStopover(rec models.RouteRecord, needs bool, stop *models.Stopover) models.RouteRecord {
	result := *rec.Result
	result.NeedsStopover = needs
	result.Stopover = stop
	rec.Result = &result
	return rec
}

func columnIndex(s Schema, header string) int {
	for i, c := range s.Columns {
		if c.Header == header {
			return i
		}
	}
	return -1
}
