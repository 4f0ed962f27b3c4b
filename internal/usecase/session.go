package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"allotment-service/internal/domain/entity"
	"allotment-service/internal/domain/repository"
	"allotment-service/pkg/logger"
	"allotment-service/pkg/metrics"
)

// View is the engine's output after a selection or transition: the current
// partition, both aggregation granularities and the totals, all recomputed
// against the same state. Numeric values are full precision; presentation
// formatting happens at the API boundary.
type View struct {
	Flight        entity.Flight      `json:"flight"`
	Confirmed     []entity.Booking   `json:"confirmed"`
	Standby       []entity.Booking   `json:"standby"`
	Utilization   []GroupUtilization `json:"utilization"`
	AllotmentInfo []StationAllotment `json:"allotmentInfo"`
	Totals        Totals             `json:"totals"`
}

// FlightFilter narrows the flight list. Sector and FlightNumber are
// case-insensitive substring matches, DepartDate is exact.
type FlightFilter struct {
	Sector       string
	FlightNumber string
	DepartDate   string
}

// Session owns one operator's reconciliation state: the read-only reference
// collections loaded at start and the Confirmed/Standby partition scoped to
// the currently selected flight. Selecting a new flight discards the
// previous partition entirely.
type Session struct {
	provider     repository.ProviderRepository
	stationRepo  repository.StationGroupRepository
	snapshots    repository.SnapshotRepository
	normalizer   *Normalizer
	matcher      *Matcher
	aggregator   *Aggregator
	totalsScope  TotalsScope
	logger       logger.Logger
	metrics      *metrics.Metrics

	// Operator actions are discrete and synchronous; the lock only
	// serializes them as they arrive over HTTP.
	mu sync.Mutex

	allocations []entity.AllocationRow
	groups      []entity.StationGroup
	flights     []entity.Flight
	pool        []entity.Booking

	selected    *entity.Flight
	matchedRows []entity.AllocationRow
	confirmed   []entity.Booking
	standby     []entity.Booking
}

// SessionOption configures optional collaborators.
type SessionOption func(*Session)

// WithStationGroupRepository sources station groups from master data
// instead of the provider.
func WithStationGroupRepository(repo repository.StationGroupRepository) SessionOption {
	return func(s *Session) { s.stationRepo = repo }
}

// WithSnapshotRepository enables the last-good-snapshot fallback.
func WithSnapshotRepository(repo repository.SnapshotRepository) SessionOption {
	return func(s *Session) { s.snapshots = repo }
}

// NewSession creates a new reconciliation session
func NewSession(
	provider repository.ProviderRepository,
	normalizer *Normalizer,
	matcher *Matcher,
	aggregator *Aggregator,
	totalsScope TotalsScope,
	logger logger.Logger,
	metrics *metrics.Metrics,
	opts ...SessionOption,
) *Session {
	s := &Session{
		provider:    provider,
		normalizer:  normalizer,
		matcher:     matcher,
		aggregator:  aggregator,
		totalsScope: totalsScope,
		logger:      logger,
		metrics:     metrics,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load is the one-shot fetch of both reference collections, followed by
// normalization. On failure every collection is left empty and the wrapped
// ErrDataLoad is returned; matching and aggregation trivially return empty
// until a retry succeeds.
func (s *Session) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.LoadsTotal.Inc()
	}

	allocations, groups, err := s.fetchReferenceData(ctx)
	if err != nil {
		s.clearLocked()
		if s.metrics != nil {
			s.metrics.LoadFailures.Inc()
		}
		s.logger.Error("Reference data load failed", "error", err)
		return err
	}

	s.allocations = allocations
	s.groups = groups
	s.flights, s.pool = s.normalizer.Normalize(allocations, groups)
	s.selected = nil
	s.matchedRows = nil
	s.confirmed = nil
	s.standby = nil

	s.logger.Info("Session loaded",
		"allocations", len(allocations),
		"stationGroups", len(groups),
		"flights", len(s.flights))
	return nil
}

func (s *Session) fetchReferenceData(ctx context.Context) ([]entity.AllocationRow, []entity.StationGroup, error) {
	allocations, err := s.provider.FetchAllocations(ctx)
	if err != nil {
		return s.fallbackSnapshot(ctx, err)
	}

	var groups []entity.StationGroup
	if s.stationRepo != nil {
		groups, err = s.stationRepo.ListAll(ctx)
		if err != nil {
			err = fmt.Errorf("%w: station master data: %v", entity.ErrDataLoad, err)
		}
	} else {
		groups, err = s.provider.FetchStationGroups(ctx)
	}
	if err != nil {
		return s.fallbackSnapshot(ctx, err)
	}

	s.saveSnapshot(ctx, allocations, groups)
	return allocations, groups, nil
}

// fallbackSnapshot serves the last good snapshot when the provider is down,
// so the operator can still open a session on stale reference data.
func (s *Session) fallbackSnapshot(ctx context.Context, cause error) ([]entity.AllocationRow, []entity.StationGroup, error) {
	if s.snapshots == nil {
		return nil, nil, cause
	}
	snapshot, err := s.snapshots.Latest(ctx)
	if err != nil {
		s.logger.Warn("No snapshot available", "error", err)
		return nil, nil, cause
	}
	s.logger.Warn("Serving cached reference snapshot",
		"fetchedAt", snapshot.FetchedAt, "cause", cause)
	return snapshot.Allocations, snapshot.StationGroups, nil
}

func (s *Session) saveSnapshot(ctx context.Context, allocations []entity.AllocationRow, groups []entity.StationGroup) {
	if s.snapshots == nil {
		return
	}
	err := s.snapshots.Save(ctx, &entity.ReferenceSnapshot{
		Allocations:   allocations,
		StationGroups: groups,
	})
	if err != nil {
		// Best effort; the live fetch already succeeded.
		s.logger.Warn("Failed to save reference snapshot", "error", err)
	}
}

func (s *Session) clearLocked() {
	s.allocations = nil
	s.groups = nil
	s.flights = nil
	s.pool = nil
	s.selected = nil
	s.matchedRows = nil
	s.confirmed = nil
	s.standby = nil
}

// Flights returns the full flight collection.
func (s *Session) Flights() []entity.Flight {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Flight, len(s.flights))
	copy(out, s.flights)
	return out
}

// SearchFlights returns the flights matching the filter, in collection
// order.
func (s *Session) SearchFlights(filter FlightFilter) []entity.Flight {
	s.mu.Lock()
	defer s.mu.Unlock()

	sector := entity.Canon(filter.Sector)
	flightNumber := entity.Canon(filter.FlightNumber)
	departDate := entity.Canon(filter.DepartDate)

	matched := make([]entity.Flight, 0)
	for _, f := range s.flights {
		if sector != "" && !strings.Contains(f.Sector, sector) {
			continue
		}
		if flightNumber != "" && !strings.Contains(f.FlightNumber, flightNumber) {
			continue
		}
		if departDate != "" && f.DepartDate != departDate {
			continue
		}
		matched = append(matched, f)
	}
	return matched
}

// SelectFlight establishes the matched partition for one flight: all
// matched pool bookings start on the standby list, the confirmed list is
// empty, and every view is computed fresh. An unknown flight/date pair is
// rejected with ErrFlightNotFound and mutates nothing.
func (s *Session) SelectFlight(flightNumber, departDate string) (*View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	flightNumber = entity.Canon(flightNumber)
	departDate = entity.Canon(departDate)

	var flight *entity.Flight
	for i := range s.flights {
		if s.flights[i].FlightNumber == flightNumber && s.flights[i].DepartDate == departDate {
			flight = &s.flights[i]
			break
		}
	}
	if flight == nil {
		return nil, fmt.Errorf("%w: %s on %s", entity.ErrFlightNotFound, flightNumber, departDate)
	}

	origin, destination := flight.OriginDestination()

	matched := s.matcher.MatchBookings(*flight, s.pool)
	standby := make([]entity.Booking, 0, len(matched))
	for _, b := range matched {
		b.Origin = origin
		b.Destination = destination
		b.Status = entity.BookingStatusNone
		standby = append(standby, b)
	}

	selected := *flight
	s.selected = &selected
	s.matchedRows = s.matcher.MatchAllocations(*flight, s.allocations)
	s.confirmed = make([]entity.Booking, 0)
	s.standby = standby

	if s.metrics != nil {
		s.metrics.FlightsSelected.Inc()
	}
	s.logger.Info("Flight selected",
		"flightNumber", flight.FlightNumber,
		"departDate", flight.DepartDate,
		"standby", len(standby),
		"matchedAllocations", len(s.matchedRows))

	return s.viewLocked(), nil
}

// Promote moves the bookings named by awbs from standby to confirmed,
// setting their status to KK. Awbs not on the standby list are silently
// ignored, which also makes re-promotion a no-op. Views are recomputed
// before returning.
func (s *Session) Promote(awbs []string) (*View, error) {
	return s.transition(awbs, true)
}

// Demote is the inverse: confirmed to standby, status reset to None.
func (s *Session) Demote(awbs []string) (*View, error) {
	return s.transition(awbs, false)
}

func (s *Session) transition(awbs []string, promote bool) (*View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == nil {
		return nil, entity.ErrNoFlightSelected
	}

	wanted := make(map[string]bool, len(awbs))
	for _, awb := range awbs {
		wanted[awb] = true
	}

	from, to := &s.standby, &s.confirmed
	status := entity.BookingStatusConfirmed
	if !promote {
		from, to = &s.confirmed, &s.standby
		status = entity.BookingStatusNone
	}

	kept := (*from)[:0]
	moved := 0
	for _, b := range *from {
		if wanted[b.AWB] {
			b.Status = status
			*to = append(*to, b)
			moved++
			continue
		}
		kept = append(kept, b)
	}
	*from = kept

	if s.metrics != nil {
		if promote {
			s.metrics.BookingsPromoted.Add(float64(moved))
		} else {
			s.metrics.BookingsDemoted.Add(float64(moved))
		}
	}
	s.logger.Info("Booking transition applied",
		"promote", promote, "requested", len(awbs), "moved", moved)

	return s.viewLocked(), nil
}

// viewLocked recomputes both aggregation views and the totals over the
// current partition. Runs after every selection and transition so stale
// numbers are never returned.
func (s *Session) viewLocked() *View {
	start := time.Now()

	visible := make([]entity.Booking, 0, len(s.confirmed)+len(s.standby))
	visible = append(visible, s.confirmed...)
	visible = append(visible, s.standby...)

	scoped := s.confirmed
	if s.totalsScope == TotalsStandby {
		scoped = s.standby
	}

	view := &View{
		Flight:        *s.selected,
		Confirmed:     append([]entity.Booking(nil), s.confirmed...),
		Standby:       append([]entity.Booking(nil), s.standby...),
		Utilization:   s.aggregator.Utilization(s.matchedRows, s.groups, visible, s.selected.Sector),
		AllotmentInfo: s.aggregator.AllotmentInfo(s.matchedRows),
		Totals:        SumTotals(scoped),
	}

	if s.metrics != nil {
		s.metrics.RecomputeDuration.Observe(time.Since(start).Seconds())
	}
	return view
}
