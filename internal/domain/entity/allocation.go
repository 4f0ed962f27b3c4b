package entity

// AllocationRow is one raw capacity-allocation row as served by the
// allotment data provider. Field names follow the provider's JSON contract.
// Numeric fields may arrive as null; the decoder leaves them at zero, and
// zero is treated as "not supplied" throughout derivation.
type AllocationRow struct {
	Station      string  `json:"sts" bson:"sts"`
	Destination  string  `json:"dest" bson:"dest"`
	Month        string  `json:"month" bson:"month"`
	FlightNumber string  `json:"flightNo" bson:"flightNo"`
	Market       string  `json:"phanThi" bson:"phanThi"`
	Sector       string  `json:"sector" bson:"sector"`
	Aircraft     string  `json:"aC" bson:"aC"`
	Dow          string  `json:"dow" bson:"dow"`
	Positions    float64 `json:"viTriPhanBo" bson:"viTriPhanBo"`
	AircraftType string  `json:"acType" bson:"acType"`
	WeightPerPos float64 `json:"cwViTri" bson:"cwViTri"`
	TotalWeight  float64 `json:"totalCw" bson:"totalCw"`
	NetRateUSD   float64 `json:"netRateUsd" bson:"netRateUsd"`
	AllIn        float64 `json:"allIn" bson:"allIn"`
	Revenue      float64 `json:"revenue" bson:"revenue"`
	TotalDays    float64 `json:"ttlDay" bson:"ttlDay"`
}

// HasFlightFields reports whether the row carries every field required to
// derive a booking. Rows failing this are silently dropped by the
// normalizer, never an error.
func (r AllocationRow) HasFlightFields() bool {
	return Canon(r.FlightNumber) != "" && Canon(r.Sector) != "" &&
		Canon(r.Month) != "" && Canon(r.Dow) != ""
}
