package entity

import "strings"

// FlightKey is the composite join key used everywhere: all fields are
// upper-cased and trimmed, and DepartDate is derived from (Month, Dow)
// rather than supplied by the provider.
type FlightKey struct {
	FlightNumber string `json:"flightNumber" bson:"flightNumber"`
	Sector       string `json:"sector" bson:"sector"`
	Month        string `json:"month" bson:"month"`
	Dow          string `json:"dow" bson:"dow"`
	DepartDate   string `json:"departDate" bson:"departDate"`
}

// Flight is a canonical flight derived from allocation rows, unique by
// FlightKey within one normalization pass.
type Flight struct {
	FlightKey    `bson:",inline"`
	AircraftType string `json:"aircraftType" bson:"aircraftType"`
	Status       string `json:"status" bson:"status"`
}

// FlightStatusActive is the only status the normalizer emits.
const FlightStatusActive = "Active"

// OriginDestination splits an "ORI-DES" sector string. Both parts are empty
// when the sector carries no separator.
func (k FlightKey) OriginDestination() (string, string) {
	sector := Canon(k.Sector)
	if i := strings.Index(sector, "-"); i >= 0 {
		return sector[:i], sector[i+1:]
	}
	return "", ""
}

// Canon normalizes a key field the way every join in the engine expects:
// upper-cased and trimmed.
func Canon(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
