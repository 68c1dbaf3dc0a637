package flights

import "time"

// FlightRecord is one raw flight row, either from the historical dataset
// or from a prediction request. The departure timestamps are only present
// on historical rows and are used to derive the training label.
type FlightRecord struct {
	Airline    string `json:"airline"`
	Month      int    `json:"month"`
	FlightType string `json:"flight_type"`

	ScheduledDeparture time.Time `json:"scheduled_departure,omitempty"`
	ActualDeparture    time.Time `json:"actual_departure,omitempty"`
}

const (
	TypeInternational = "I"
	TypeNational      = "N"
)

// Airlines is the closed set of carriers present in the historical
// dataset. Anything outside this set is rejected before encoding.
var Airlines = []string{
	"Aerolineas Argentinas",
	"Aeromexico",
	"Air Canada",
	"Air France",
	"Alitalia",
	"American Airlines",
	"Austral",
	"Avianca",
	"British Airways",
	"Copa Air",
	"Delta Air",
	"Gol Trans",
	"Grupo LATAM",
	"Iberia",
	"JetSmart SPA",
	"K.L.M.",
	"Lacsa",
	"Latin American Wings",
	"Oceanair Linhas Aereas",
	"Plus Ultra Lineas Aereas",
	"Qantas Airways",
	"Sky Airline",
	"United Airlines",
}

var airlineSet = buildAirlineSet()

func buildAirlineSet() map[string]struct{} {
	set := make(map[string]struct{}, len(Airlines))
	for _, name := range Airlines {
		set[name] = struct{}{}
	}
	return set
}

func KnownAirline(name string) bool {
	_, ok := airlineSet[name]
	return ok
}

func ValidFlightType(code string) bool {
	return code == TypeInternational || code == TypeNational
}
