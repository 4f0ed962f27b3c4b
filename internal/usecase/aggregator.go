package usecase

import (
	"sort"

	"allotment-service/internal/domain/entity"
)

// GroupUtilization is the per-group allocated-versus-booked view.
type GroupUtilization struct {
	Group      string  `json:"group"`
	Allocated  float64 `json:"allocated"`
	Booked     float64 `json:"booked"`
	Percentage float64 `json:"percentage"`
}

// StationAllotment is the alternate per-station view: raw allocated
// positions summed across duplicate rows, no percentage.
type StationAllotment struct {
	Station   string  `json:"station"`
	Positions float64 `json:"positions"`
}

// Aggregator joins matched allocation rows with station-grouping metadata
// to produce both aggregation granularities.
type Aggregator struct{}

// NewAggregator creates a new aggregator
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Utilization computes per-group allocated capacity versus booked weight
// over the matched allocation rows and the currently visible bookings
// (confirmed and standby). A group with zero allocation reports 0%, never
// a division error; over-booking above 100% is reported as-is.
func (a *Aggregator) Utilization(
	matchedAllocations []entity.AllocationRow,
	groups []entity.StationGroup,
	bookings []entity.Booking,
	sector string,
) []GroupUtilization {
	sector = entity.Canon(sector)
	groupIndex := entity.BuildGroupIndex(groups)

	// An allocation row credits every group containing its origin or
	// destination station on this sector.
	allocated := make(map[string]float64)
	for _, alloc := range matchedAllocations {
		station := entity.Canon(alloc.Station)
		dest := entity.Canon(alloc.Destination)
		for _, g := range groups {
			if entity.Canon(g.Sector) != sector {
				continue
			}
			gStation := entity.Canon(g.Station)
			if gStation != station && gStation != dest {
				continue
			}
			days := alloc.TotalDays
			if days == 0 {
				days = 1
			}
			allocated[g.Group] += alloc.Positions * days
		}
	}

	// Booked weight joins on the booking's own station only.
	booked := make(map[string]float64)
	for _, b := range bookings {
		group, ok := groupIndex.Resolve(b.Station, b.Sector)
		if !ok {
			continue
		}
		booked[group] += b.ChargeableWeight
	}

	result := make([]GroupUtilization, 0, len(allocated))
	for group, alloc := range allocated {
		u := GroupUtilization{
			Group:     group,
			Allocated: alloc,
			Booked:    booked[group],
		}
		if alloc > 0 {
			u.Percentage = (u.Booked / alloc) * 100
		}
		result = append(result, u)
	}

	// Sorted for deterministic output.
	sort.Slice(result, func(i, j int) bool {
		return result[i].Group < result[j].Group
	})
	return result
}

// AllotmentInfo sums raw allocated positions per distinct station across
// the matched allocation rows.
func (a *Aggregator) AllotmentInfo(matchedAllocations []entity.AllocationRow) []StationAllotment {
	positions := make(map[string]float64)
	for _, alloc := range matchedAllocations {
		positions[entity.Canon(alloc.Station)] += alloc.Positions
	}

	result := make([]StationAllotment, 0, len(positions))
	for station, p := range positions {
		result = append(result, StationAllotment{Station: station, Positions: p})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Station < result[j].Station
	})
	return result
}
