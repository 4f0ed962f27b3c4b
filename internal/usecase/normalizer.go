package usecase

import (
	"fmt"
	"sort"

	"allotment-service/internal/domain/entity"
	"allotment-service/pkg/logger"
	"allotment-service/pkg/schedule"
)

// Normalizer derives canonical flights and the initial all-standby booking
// pool from raw allocation rows. It owns all key derivation; nothing
// mutates its outputs afterward.
type Normalizer struct {
	strategy schedule.Strategy
	year     int
	logger   logger.Logger
}

// NewNormalizer creates a new normalizer
func NewNormalizer(strategy schedule.Strategy, year int, logger logger.Logger) *Normalizer {
	return &Normalizer{
		strategy: strategy,
		year:     year,
		logger:   logger,
	}
}

// Normalize builds the flight collection and the booking pool from one
// fetched batch. Rows missing required fields are dropped silently; the
// batch never fails as a whole.
func (n *Normalizer) Normalize(rows []entity.AllocationRow, groups []entity.StationGroup) ([]entity.Flight, []entity.Booking) {
	groupIndex := entity.BuildGroupIndex(groups)

	flights := n.deriveFlights(rows)
	bookings := n.deriveBookings(rows, groupIndex)

	n.logger.Info("Normalized reference data",
		"allocationRows", len(rows),
		"flights", len(flights),
		"bookings", len(bookings))

	return flights, bookings
}

// deriveFlights deduplicates by exact FlightKey, first occurrence wins, and
// sorts the result by flight number.
func (n *Normalizer) deriveFlights(rows []entity.AllocationRow) []entity.Flight {
	seen := make(map[entity.FlightKey]bool)
	flights := make([]entity.Flight, 0)

	for _, row := range rows {
		if !row.HasFlightFields() || entity.Canon(row.Aircraft) == "" {
			continue
		}

		key := n.deriveKey(row)
		if seen[key] {
			continue
		}
		seen[key] = true

		flights = append(flights, entity.Flight{
			FlightKey:    key,
			AircraftType: entity.Canon(row.Aircraft),
			Status:       entity.FlightStatusActive,
		})
	}

	sort.SliceStable(flights, func(i, j int) bool {
		return flights[i].FlightNumber < flights[j].FlightNumber
	})
	return flights
}

// deriveBookings fans out one booking per surviving row, status Standby by
// construction (the pool is the standby universe until a session promotes).
func (n *Normalizer) deriveBookings(rows []entity.AllocationRow, groupIndex entity.GroupIndex) []entity.Booking {
	bookings := make([]entity.Booking, 0, len(rows))

	for i, row := range rows {
		if !row.HasFlightFields() {
			continue
		}

		key := n.deriveKey(row)
		station := entity.Canon(row.Station)

		pieces := row.Positions
		cw := row.TotalWeight
		if cw == 0 {
			cw = row.WeightPerPos * pieces
		}
		price := row.NetRateUSD
		revenue := row.Revenue
		if revenue == 0 {
			revenue = price * cw
		}

		group, ok := groupIndex.Resolve(station, key.Sector)
		if !ok {
			n.logger.Debug("No station group for booking", "station", station, "sector", key.Sector)
		}

		position := entity.Canon(row.Market)
		if position == "" {
			position = fmt.Sprintf("POS: %g", row.Positions)
		}

		bookings = append(bookings, entity.Booking{
			// Index runs across the whole pass so awbs stay unique even when
			// a station repeats.
			AWB:          fmt.Sprintf("%s-%s-%d", key.FlightNumber, station, i),
			FlightNumber: key.FlightNumber,
			Sector:       key.Sector,
			Month:        key.Month,
			Dow:          key.Dow,
			DepartDate:   key.DepartDate,
			Station:      station,
			Origin:       station,
			Destination:  entity.Canon(row.Destination),

			Pieces:           pieces,
			Dimensions:       "1x1x1",
			ChargeableWeight: cw,
			GrossWeight:      cw * 1.1,
			Volume:           cw / 100,
			Price:            price,
			Revenue:          revenue,
			ChargeableRemai:  cw,

			Position:       position,
			AllotmentGroup: group,
			Agent:          "Default Agent",
			NatureGoods:    "General Cargo",
			Status:         entity.BookingStatusNone,
		})
	}
	return bookings
}

// deriveKey builds the canonical FlightKey for a row. Month and dow are the
// canonicalized provider codes so flights, bookings and allocation rows all
// agree on the key regardless of the date strategy in force. An invalid
// month/dow code falls back to the sentinel date (January 1 of the target
// year) instead of failing the row.
func (n *Normalizer) deriveKey(row entity.AllocationRow) entity.FlightKey {
	date, err := schedule.NearestDate(row.Month, row.Dow, n.year, n.strategy)
	if err != nil {
		n.logger.Warn("Invalid month or dow, using sentinel date",
			"month", row.Month, "dow", row.Dow, "error", err)
		date = schedule.SentinelDate(n.year)
	}

	return entity.FlightKey{
		FlightNumber: entity.Canon(row.FlightNumber),
		Sector:       entity.Canon(row.Sector),
		Month:        entity.Canon(row.Month),
		Dow:          entity.Canon(row.Dow),
		DepartDate:   date.Format(schedule.DateLayout),
	}
}
