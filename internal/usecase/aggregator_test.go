package usecase

import (
	"math"
	"testing"

	"allotment-service/internal/domain/entity"
)

func TestUtilizationNoBookings(t *testing.T) {
	allocations := []entity.AllocationRow{
		{FlightNumber: "VN123", Sector: "HAN-SGN", Month: "JAN", Dow: "D1", Station: "HAN", Positions: 10, NetRateUSD: 2},
	}
	groups := []entity.StationGroup{
		{Group: "G1", Sector: "HAN-SGN", Station: "HAN"},
	}

	result := NewAggregator().Utilization(allocations, groups, nil, "HAN-SGN")
	if len(result) != 1 {
		t.Fatalf("expected 1 group, got %d", len(result))
	}
	g := result[0]
	if g.Group != "G1" || g.Allocated != 10 || g.Booked != 0 || g.Percentage != 0 {
		t.Errorf("got %+v, want G1 allocated=10 booked=0 percentage=0", g)
	}
}

func TestUtilizationOverbookingNotClamped(t *testing.T) {
	allocations := []entity.AllocationRow{
		{FlightNumber: "VN123", Sector: "HAN-SGN", Month: "JAN", Dow: "D1", Station: "HAN", Positions: 10},
	}
	groups := []entity.StationGroup{
		{Group: "G1", Sector: "HAN-SGN", Station: "HAN"},
	}
	bookings := []entity.Booking{
		{AWB: "VN123-HAN-0", Station: "HAN", Sector: "HAN-SGN", ChargeableWeight: 50},
	}

	result := NewAggregator().Utilization(allocations, groups, bookings, "HAN-SGN")
	if len(result) != 1 {
		t.Fatalf("expected 1 group, got %d", len(result))
	}
	if result[0].Percentage != 500 {
		t.Errorf("percentage = %v, want 500 (no clamping)", result[0].Percentage)
	}
}

func TestUtilizationZeroAllocationNeverNaN(t *testing.T) {
	allocations := []entity.AllocationRow{
		{FlightNumber: "VN123", Sector: "HAN-SGN", Month: "JAN", Dow: "D1", Station: "HAN", Positions: 0},
	}
	groups := []entity.StationGroup{
		{Group: "G1", Sector: "HAN-SGN", Station: "HAN"},
	}
	bookings := []entity.Booking{
		{Station: "HAN", Sector: "HAN-SGN", ChargeableWeight: 50},
	}

	result := NewAggregator().Utilization(allocations, groups, bookings, "HAN-SGN")
	if len(result) != 1 {
		t.Fatalf("expected 1 group, got %d", len(result))
	}
	p := result[0].Percentage
	if p != 0 || math.IsNaN(p) || math.IsInf(p, 0) {
		t.Errorf("percentage = %v, want exactly 0", p)
	}
}

func TestUtilizationDestinationStationCredits(t *testing.T) {
	// The allocation side joins on origin OR destination station.
	allocations := []entity.AllocationRow{
		{FlightNumber: "VN123", Sector: "HAN-SGN", Month: "JAN", Dow: "D1", Station: "HAN", Destination: "SGN", Positions: 4},
	}
	groups := []entity.StationGroup{
		{Group: "G1", Sector: "HAN-SGN", Station: "HAN"},
		{Group: "G2", Sector: "HAN-SGN", Station: "SGN"},
		{Group: "G3", Sector: "SGN-HAN", Station: "HAN"}, // other sector, excluded
	}

	result := NewAggregator().Utilization(allocations, groups, nil, "HAN-SGN")
	if len(result) != 2 {
		t.Fatalf("expected 2 groups, got %d: %v", len(result), result)
	}
	// Sorted by group name.
	if result[0].Group != "G1" || result[0].Allocated != 4 {
		t.Errorf("result[0] = %+v, want G1 allocated=4", result[0])
	}
	if result[1].Group != "G2" || result[1].Allocated != 4 {
		t.Errorf("result[1] = %+v, want G2 allocated=4", result[1])
	}
}

func TestUtilizationTotalDaysFactor(t *testing.T) {
	allocations := []entity.AllocationRow{
		{FlightNumber: "VN123", Sector: "HAN-SGN", Month: "JAN", Dow: "D1", Station: "HAN", Positions: 10, TotalDays: 3},
	}
	groups := []entity.StationGroup{
		{Group: "G1", Sector: "HAN-SGN", Station: "HAN"},
	}

	result := NewAggregator().Utilization(allocations, groups, nil, "HAN-SGN")
	if result[0].Allocated != 30 {
		t.Errorf("allocated = %v, want positions*totalDays = 30", result[0].Allocated)
	}
}

func TestUtilizationUnresolvedBookingGroupSkipped(t *testing.T) {
	allocations := []entity.AllocationRow{
		{FlightNumber: "VN123", Sector: "HAN-SGN", Month: "JAN", Dow: "D1", Station: "HAN", Positions: 10},
	}
	groups := []entity.StationGroup{
		{Group: "G1", Sector: "HAN-SGN", Station: "HAN"},
	}
	bookings := []entity.Booking{
		{Station: "DAD", Sector: "HAN-SGN", ChargeableWeight: 25}, // no group entry
		{Station: "HAN", Sector: "HAN-SGN", ChargeableWeight: 5},
	}

	result := NewAggregator().Utilization(allocations, groups, bookings, "HAN-SGN")
	if result[0].Booked != 5 {
		t.Errorf("booked = %v, want 5 (unresolved station contributes nowhere)", result[0].Booked)
	}
}

func TestAllotmentInfoSumsPerStation(t *testing.T) {
	allocations := []entity.AllocationRow{
		{Station: "HAN", Positions: 4},
		{Station: "han ", Positions: 6}, // same station after canonicalization
		{Station: "DAD", Positions: 2},
	}

	result := NewAggregator().AllotmentInfo(allocations)
	if len(result) != 2 {
		t.Fatalf("expected 2 stations, got %d", len(result))
	}
	if result[0].Station != "DAD" || result[0].Positions != 2 {
		t.Errorf("result[0] = %+v, want DAD 2", result[0])
	}
	if result[1].Station != "HAN" || result[1].Positions != 10 {
		t.Errorf("result[1] = %+v, want HAN 10", result[1])
	}
}
