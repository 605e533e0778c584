package models

// Airport describes an origin or stopover airport as produced by the route planner.
type Airport struct {
	ID        int     `json:"id" bson:"id"`
	Name      string  `json:"name" bson:"name"`
	Fullname  string  `json:"fullname" bson:"fullname"`
	Country   string  `json:"country" bson:"country"`
	Continent string  `json:"continent" bson:"continent"`
	IATA      string  `json:"iata" bson:"iata"`
	ICAO      string  `json:"icao" bson:"icao"`
	Lat       float64 `json:"lat" bson:"lat"`
	Lng       float64 `json:"lng" bson:"lng"`
	Rwy       int     `json:"rwy" bson:"rwy"`
	Market    int     `json:"market" bson:"market"`
	HubCost   int     `json:"hub_cost" bson:"hub_cost"`
	RwyCodes  string  `json:"rwy_codes" bson:"rwy_codes"`
}

// PaxDemand holds passenger demand per cabin class.
type PaxDemand struct {
	Y int `json:"y"`
	J int `json:"j"`
	F int `json:"f"`
}

// CargoDemand holds light and heavy cargo demand.
type CargoDemand struct {
	L int `json:"l"`
	H int `json:"h"`
}

// Route captures the unstopped characteristics between origin and destination.
type Route struct {
	PaxDemand      PaxDemand   `json:"pax_demand"`
	CargoDemand    CargoDemand `json:"cargo_demand"`
	DirectDistance float64     `json:"direct_distance"`
}

// Stopover is the intermediate airport chosen when direct service is infeasible.
type Stopover struct {
	Airport      *Airport `json:"airport"`
	FullDistance *float64 `json:"full_distance"`
	Exists       bool     `json:"exists"`
}

// Config is the cabin configuration selected for a route.
type Config struct {
	Y         int    `json:"y"`
	J         int    `json:"j"`
	F         int    `json:"f"`
	Algorithm string `json:"algorithm"`
}

// Ticket holds ticket prices per cabin class.
type Ticket struct {
	Y int `json:"y"`
	J int `json:"j"`
	F int `json:"f"`
}

// AircraftRoute is the computed result for one aircraft flying one route.
type AircraftRoute struct {
	Route            Route     `json:"route"`
	Warnings         []string  `json:"warnings"`
	Valid            bool      `json:"valid"`
	MaxTPD           *int      `json:"max_tpd"`
	NeedsStopover    bool      `json:"needs_stopover"`
	Stopover         *Stopover `json:"stopover"`
	FlightTime       float64   `json:"flight_time"`
	TripsPerDayPerAC int       `json:"trips_per_day_per_ac"`
	NumAC            int       `json:"num_ac"`
	Config           Config    `json:"config"`
	Ticket           Ticket    `json:"ticket"`
	MaxIncome        float64   `json:"max_income"`
	Income           float64   `json:"income"`
	Fuel             float64   `json:"fuel"`
	CO2              float64   `json:"co2"`
	ACheckCost       float64   `json:"acheck_cost"`
	RepairCost       float64   `json:"repair_cost"`
	Profit           float64   `json:"profit"`
	CI               int       `json:"ci"`
	// Contribution is stored multiplied by 100, e.g. 37.5 means 37.5%.
	Contribution float64 `json:"contribution"`
}

// StopoverAirport returns the stopover airport when one is attached.
func (r *AircraftRoute) StopoverAirport() (*Airport, bool) {
	if r == nil || r.Stopover == nil || r.Stopover.Airport == nil {
		return nil, false
	}
	return r.Stopover.Airport, true
}

// RouteRecord is one exported row: the destination airport and its computed route.
type RouteRecord struct {
	Airport *Airport       `json:"airport"`
	Result  *AircraftRoute `json:"ac_route"`
}
