package usecase

import (
	"fmt"
	"strings"

	"allotment-service/internal/domain/entity"
)

// TotalsScope selects which partition the totals run over, per the two
// observed engine revisions.
type TotalsScope int

const (
	TotalsConfirmed TotalsScope = iota
	TotalsStandby
)

// ParseTotalsScope maps a config value to a TotalsScope.
func ParseTotalsScope(s string) (TotalsScope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "confirmed":
		return TotalsConfirmed, nil
	case "standby":
		return TotalsStandby, nil
	}
	return TotalsConfirmed, fmt.Errorf("unknown totals scope %q", s)
}

// Totals is the field-wise sum over one booking list.
type Totals struct {
	Weight              float64 `json:"weight"`
	Volume              float64 `json:"volume"`
	Pieces              float64 `json:"pieces"`
	GrossWeight         float64 `json:"grossWeight"`
	ChargeableRemainder float64 `json:"chargeableRemainder"`
	Revenue             float64 `json:"revenue"`
}

// SumTotals sums each numeric field across the given bookings.
func SumTotals(bookings []entity.Booking) Totals {
	var t Totals
	for _, b := range bookings {
		t.Weight += b.ChargeableWeight
		t.Volume += b.Volume
		t.Pieces += b.Pieces
		t.GrossWeight += b.GrossWeight
		t.ChargeableRemainder += b.ChargeableRemai
		t.Revenue += b.Revenue
	}
	return t
}
