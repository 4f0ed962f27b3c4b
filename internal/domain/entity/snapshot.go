package entity

import "time"

// ReferenceSnapshot is the last successfully fetched pair of reference
// collections, cached so a session can still open when the provider is
// down. It never contains operator edits.
type ReferenceSnapshot struct {
	ID            string         `bson:"_id,omitempty"`
	Allocations   []AllocationRow `bson:"allocations"`
	StationGroups []StationGroup  `bson:"stationGroups"`
	FetchedAt     time.Time       `bson:"fetchedAt"`
}
