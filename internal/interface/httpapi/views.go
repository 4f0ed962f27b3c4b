package httpapi

import (
	"allotment-service/internal/domain/entity"
	"allotment-service/internal/usecase"
	"allotment-service/pkg/format"
)

// Wire payloads. Numeric fields are rendered here, at the presentation
// boundary, with the fixed precision the operator screens expect; the
// engine keeps full-precision values.

type bookingPayload struct {
	AWB            string `json:"awb"`
	Station        string `json:"station"`
	Origin         string `json:"ori"`
	Destination    string `json:"des"`
	Pieces         string `json:"pieces"`
	Dimensions     string `json:"dim"`
	CW             string `json:"cw"`
	GW             string `json:"gw"`
	Volume         string `json:"vol"`
	Price          string `json:"price"`
	Revenue        string `json:"revenue"`
	CWP            string `json:"cwp"`
	Position       string `json:"position"`
	AllotmentGroup string `json:"allotment"`
	Agent          string `json:"agent"`
	NatureGoods    string `json:"natureGood"`
	Status         string `json:"status"`
}

type utilizationPayload struct {
	Group      string `json:"group"`
	Allocated  string `json:"allocated"`
	Booked     string `json:"booked"`
	Percentage string `json:"percentage"`
}

type allotmentInfoPayload struct {
	Station   string `json:"station"`
	Positions string `json:"positions"`
}

type totalsPayload struct {
	Weight              string `json:"weight"`
	Volume              string `json:"volume"`
	Pieces              string `json:"pieces"`
	GrossWeight         string `json:"grossWeight"`
	ChargeableRemainder string `json:"chargeableRemainder"`
	Revenue             string `json:"revenue"`
}

type viewPayload struct {
	Flight        entity.Flight          `json:"flight"`
	Confirmed     []bookingPayload       `json:"confirmed"`
	Standby       []bookingPayload       `json:"standby"`
	Utilization   []utilizationPayload   `json:"utilization"`
	AllotmentInfo []allotmentInfoPayload `json:"allotmentInfo"`
	Totals        totalsPayload          `json:"totals"`
}

func toViewPayload(view *usecase.View) viewPayload {
	return viewPayload{
		Flight:        view.Flight,
		Confirmed:     toBookingPayloads(view.Confirmed),
		Standby:       toBookingPayloads(view.Standby),
		Utilization:   toUtilizationPayloads(view.Utilization),
		AllotmentInfo: toAllotmentInfoPayloads(view.AllotmentInfo),
		Totals:        toTotalsPayload(view.Totals),
	}
}

func toBookingPayloads(bookings []entity.Booking) []bookingPayload {
	out := make([]bookingPayload, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, bookingPayload{
			AWB:            b.AWB,
			Station:        b.Station,
			Origin:         b.Origin,
			Destination:    b.Destination,
			Pieces:         format.Weight(b.Pieces),
			Dimensions:     b.Dimensions,
			CW:             format.Weight(b.ChargeableWeight),
			GW:             format.Weight(b.GrossWeight),
			Volume:         format.Volume(b.Volume),
			Price:          format.Currency(b.Price),
			Revenue:        format.Currency(b.Revenue),
			CWP:            format.Weight(b.ChargeableRemai),
			Position:       b.Position,
			AllotmentGroup: b.AllotmentGroup,
			Agent:          b.Agent,
			NatureGoods:    b.NatureGoods,
			Status:         b.Status,
		})
	}
	return out
}

func toUtilizationPayloads(utilization []usecase.GroupUtilization) []utilizationPayload {
	out := make([]utilizationPayload, 0, len(utilization))
	for _, u := range utilization {
		out = append(out, utilizationPayload{
			Group:      u.Group,
			Allocated:  format.Weight(u.Allocated),
			Booked:     format.Weight(u.Booked),
			Percentage: format.Percent(u.Percentage),
		})
	}
	return out
}

func toAllotmentInfoPayloads(info []usecase.StationAllotment) []allotmentInfoPayload {
	out := make([]allotmentInfoPayload, 0, len(info))
	for _, s := range info {
		out = append(out, allotmentInfoPayload{
			Station:   s.Station,
			Positions: format.Weight(s.Positions),
		})
	}
	return out
}

func toTotalsPayload(t usecase.Totals) totalsPayload {
	return totalsPayload{
		Weight:              format.Weight(t.Weight),
		Volume:              format.Volume(t.Volume),
		Pieces:              format.Weight(t.Pieces),
		GrossWeight:         format.Weight(t.GrossWeight),
		ChargeableRemainder: format.Weight(t.ChargeableRemainder),
		Revenue:             format.Currency(t.Revenue),
	}
}
