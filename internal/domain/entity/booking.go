package entity

// Display statuses a booking can carry. The coarse Standby/Confirmed
// lifecycle is tracked by which session collection holds the booking, not
// by this field.
const (
	BookingStatusNone      = "None"
	BookingStatusConfirmed = "KK"
	BookingStatusLimited   = "LL"
	BookingStatusUnable    = "UU"
	BookingStatusRefused   = "XX"
	BookingStatusCancelled = "CA"
)

// Booking is one shipment booking derived from an allocation row. Numeric
// fields hold full-precision values; fixed-decimal formatting happens only
// at the presentation boundary.
type Booking struct {
	AWB          string `json:"awb" bson:"awb"`
	FlightNumber string `json:"flightNumber" bson:"flightNumber"`
	Sector       string `json:"sector" bson:"sector"`
	Month        string `json:"month" bson:"month"`
	Dow          string `json:"dow" bson:"dow"`
	DepartDate   string `json:"departDate" bson:"departDate"`
	Station      string `json:"station" bson:"station"`
	Origin       string `json:"ori" bson:"ori"`
	Destination  string `json:"des" bson:"des"`

	Pieces           float64 `json:"pieces" bson:"pieces"`
	Dimensions       string  `json:"dim" bson:"dim"`
	ChargeableWeight float64 `json:"cw" bson:"cw"`
	GrossWeight      float64 `json:"gw" bson:"gw"`
	Volume           float64 `json:"vol" bson:"vol"`
	Price            float64 `json:"price" bson:"price"`
	Revenue          float64 `json:"revenue" bson:"revenue"`
	ChargeableRemai  float64 `json:"cwp" bson:"cwp"`

	Position       string `json:"position" bson:"position"`
	AllotmentGroup string `json:"allotment" bson:"allotment"`
	Agent          string `json:"agent" bson:"agent"`
	NatureGoods    string `json:"natureGood" bson:"natureGood"`
	Status         string `json:"status" bson:"status"`
}

// Key returns the booking's FlightKey-equivalent fields for matching.
func (b Booking) Key() FlightKey {
	return FlightKey{
		FlightNumber: b.FlightNumber,
		Sector:       b.Sector,
		Month:        b.Month,
		Dow:          b.Dow,
		DepartDate:   b.DepartDate,
	}
}
