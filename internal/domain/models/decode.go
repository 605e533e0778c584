package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrNullBatch is returned when the batch document is JSON null.
var ErrNullBatch = errors.New("route batch is null")

var validate = validator.New(validator.WithRequiredStructEnabled())

// The wire types mirror the record model with pointer fields so that a key
// which is absent can be told apart from a key holding a zero value.

type airportWire struct {
	ID        *int     `json:"id" validate:"required,gte=0"`
	Name      *string  `json:"name" validate:"required"`
	Fullname  *string  `json:"fullname" validate:"required"`
	Country   *string  `json:"country" validate:"required"`
	Continent *string  `json:"continent" validate:"required"`
	IATA      *string  `json:"iata" validate:"required"`
	ICAO      *string  `json:"icao" validate:"required"`
	Lat       *float64 `json:"lat" validate:"required"`
	Lng       *float64 `json:"lng" validate:"required"`
	Rwy       *int     `json:"rwy" validate:"required,gte=0"`
	Market    *int     `json:"market" validate:"required,gte=0"`
	HubCost   *int     `json:"hub_cost" validate:"required,gte=0"`
	RwyCodes  *string  `json:"rwy_codes" validate:"required"`
}

type paxDemandWire struct {
	Y *int `json:"y" validate:"required,gte=0"`
	J *int `json:"j" validate:"required,gte=0"`
	F *int `json:"f" validate:"required,gte=0"`
}

type cargoDemandWire struct {
	L *int `json:"l" validate:"required,gte=0"`
	H *int `json:"h" validate:"required,gte=0"`
}

type routeWire struct {
	PaxDemand      *paxDemandWire   `json:"pax_demand" validate:"required"`
	CargoDemand    *cargoDemandWire `json:"cargo_demand" validate:"required"`
	DirectDistance *float64         `json:"direct_distance" validate:"required"`
}

type stopoverWire struct {
	Airport      *airportWire `json:"airport"`
	FullDistance *float64     `json:"full_distance"`
	Exists       *bool        `json:"exists" validate:"required"`
}

type configWire struct {
	Y         *int    `json:"y" validate:"required,gte=0"`
	J         *int    `json:"j" validate:"required,gte=0"`
	F         *int    `json:"f" validate:"required,gte=0"`
	Algorithm *string `json:"algorithm" validate:"required"`
}

type ticketWire struct {
	Y *int `json:"y" validate:"required,gte=0"`
	J *int `json:"j" validate:"required,gte=0"`
	F *int `json:"f" validate:"required,gte=0"`
}

type aircraftRouteWire struct {
	Route            *routeWire    `json:"route" validate:"required"`
	Warnings         []string      `json:"warnings" validate:"required"`
	Valid            *bool         `json:"valid" validate:"required"`
	MaxTPD           *int          `json:"max_tpd" validate:"omitempty,gte=0"`
	NeedsStopover    *bool         `json:"needs_stopover" validate:"required"`
	Stopover         *stopoverWire `json:"stopover"`
	FlightTime       *float64      `json:"flight_time" validate:"required"`
	TripsPerDayPerAC *int          `json:"trips_per_day_per_ac" validate:"required,gte=0"`
	NumAC            *int          `json:"num_ac" validate:"required,gte=0"`
	Config           *configWire   `json:"config" validate:"required"`
	Ticket           *ticketWire   `json:"ticket" validate:"required"`
	MaxIncome        *float64      `json:"max_income" validate:"required"`
	Income           *float64      `json:"income" validate:"required"`
	Fuel             *float64      `json:"fuel" validate:"required"`
	CO2              *float64      `json:"co2" validate:"required"`
	ACheckCost       *float64      `json:"acheck_cost" validate:"required"`
	RepairCost       *float64      `json:"repair_cost" validate:"required"`
	Profit           *float64      `json:"profit" validate:"required"`
	CI               *int          `json:"ci" validate:"required,gte=0"`
	Contribution     *float64      `json:"contribution" validate:"required"`
}

type recordWire struct {
	Airport *airportWire       `json:"airport" validate:"required"`
	ACRoute *aircraftRouteWire `json:"ac_route" validate:"required"`
	Result  *aircraftRouteWire `json:"result" validate:"-"`
}

func (w *airportWire) model() *Airport {
	if w == nil {
		return nil
	}
	return &Airport{
		ID:        *w.ID,
		Name:      *w.Name,
		Fullname:  *w.Fullname,
		Country:   *w.Country,
		Continent: *w.Continent,
		IATA:      *w.IATA,
		ICAO:      *w.ICAO,
		Lat:       *w.Lat,
		Lng:       *w.Lng,
		Rwy:       *w.Rwy,
		Market:    *w.Market,
		HubCost:   *w.HubCost,
		RwyCodes:  *w.RwyCodes,
	}
}

func (w *aircraftRouteWire) model() *AircraftRoute {
	r := &AircraftRoute{
		Route: Route{
			PaxDemand:      PaxDemand{Y: *w.Route.PaxDemand.Y, J: *w.Route.PaxDemand.J, F: *w.Route.PaxDemand.F},
			CargoDemand:    CargoDemand{L: *w.Route.CargoDemand.L, H: *w.Route.CargoDemand.H},
			DirectDistance: *w.Route.DirectDistance,
		},
		Warnings:         w.Warnings,
		Valid:            *w.Valid,
		MaxTPD:           w.MaxTPD,
		NeedsStopover:    *w.NeedsStopover,
		FlightTime:       *w.FlightTime,
		TripsPerDayPerAC: *w.TripsPerDayPerAC,
		NumAC:            *w.NumAC,
		Config:           Config{Y: *w.Config.Y, J: *w.Config.J, F: *w.Config.F, Algorithm: *w.Config.Algorithm},
		Ticket:           Ticket{Y: *w.Ticket.Y, J: *w.Ticket.J, F: *w.Ticket.F},
		MaxIncome:        *w.MaxIncome,
		Income:           *w.Income,
		Fuel:             *w.Fuel,
		CO2:              *w.CO2,
		ACheckCost:       *w.ACheckCost,
		RepairCost:       *w.RepairCost,
		Profit:           *w.Profit,
		CI:               *w.CI,
		Contribution:     *w.Contribution,
	}
	if s := w.Stopover; s != nil {
		r.Stopover = &Stopover{Airport: s.Airport.model(), FullDistance: s.FullDistance, Exists: *s.Exists}
	}
	return r
}

// UnmarshalJSON decodes one record and rejects it when any field other than
// max_tpd, stopover, stopover.airport or stopover.full_distance is absent.
// The computed route may be keyed "ac_route" or "result".
func (r *RouteRecord) UnmarshalJSON(data []byte) error {
	var wire recordWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.ACRoute == nil {
		wire.ACRoute = wire.Result
	}
	if err := validate.Struct(wire); err != nil {
		return err
	}

	r.Airport = wire.Airport.model()
	r.Result = wire.ACRoute.model()
	return nil
}

// DecodeBatch parses a JSON array of route records. A single incomplete
// record fails the whole batch.
func DecodeBatch(data []byte) ([]RouteRecord, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode route batch: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("decode route batch: %w", ErrNullBatch)
	}

	records := make([]RouteRecord, len(raw))
	for i, item := range raw {
		if err := json.Unmarshal(item, &records[i]); err != nil {
			return nil, fmt.Errorf("route record %d: %w", i, err)
		}
	}

	return records, nil
}
