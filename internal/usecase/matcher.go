package usecase

import (
	"fmt"
	"strings"

	"allotment-service/internal/domain/entity"
)

// MatchStrategy selects between the two observed composite-key revisions.
type MatchStrategy int

const (
	// MatchDateInclusive compares the 4-tuple key plus the derived depart
	// date on records that carry one. Allocation rows carry no date, so the
	// date term is vacuously true for them.
	MatchDateInclusive MatchStrategy = iota
	// MatchDateExclusive compares only (flightNumber, sector, month, dow).
	MatchDateExclusive
)

// ParseMatchStrategy maps a config value to a MatchStrategy.
func ParseMatchStrategy(s string) (MatchStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "date-inclusive":
		return MatchDateInclusive, nil
	case "date-exclusive":
		return MatchDateExclusive, nil
	}
	return MatchDateInclusive, fmt.Errorf("unknown match strategy %q", s)
}

// Matcher filters bookings and allocation rows down to one selected flight.
// It never fails; an unmatched flight yields empty collections.
type Matcher struct {
	strategy MatchStrategy
}

// NewMatcher creates a new matcher
func NewMatcher(strategy MatchStrategy) *Matcher {
	return &Matcher{strategy: strategy}
}

// MatchBookings returns the pool bookings whose key matches the flight.
// Only bookings still in the standby pool reach this point; a session's
// confirmed list is tracked separately.
func (m *Matcher) MatchBookings(flight entity.Flight, pool []entity.Booking) []entity.Booking {
	matched := make([]entity.Booking, 0)
	for _, b := range pool {
		if m.keyMatches(flight.FlightKey, b.Key(), true) {
			matched = append(matched, b)
		}
	}
	return matched
}

// MatchAllocations returns the allocation rows whose key matches the flight.
func (m *Matcher) MatchAllocations(flight entity.Flight, rows []entity.AllocationRow) []entity.AllocationRow {
	matched := make([]entity.AllocationRow, 0)
	for _, row := range rows {
		key := entity.FlightKey{
			FlightNumber: row.FlightNumber,
			Sector:       row.Sector,
			Month:        row.Month,
			Dow:          row.Dow,
		}
		if m.keyMatches(flight.FlightKey, key, false) {
			matched = append(matched, row)
		}
	}
	return matched
}

func (m *Matcher) keyMatches(want, got entity.FlightKey, hasDate bool) bool {
	if entity.Canon(got.FlightNumber) != entity.Canon(want.FlightNumber) ||
		entity.Canon(got.Sector) != entity.Canon(want.Sector) ||
		entity.Canon(got.Month) != entity.Canon(want.Month) ||
		entity.Canon(got.Dow) != entity.Canon(want.Dow) {
		return false
	}
	if m.strategy == MatchDateInclusive && hasDate {
		return entity.Canon(got.DepartDate) == entity.Canon(want.DepartDate)
	}
	return true
}
