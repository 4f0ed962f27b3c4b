package entity

import "errors"

var (
	// ErrDataLoad means the external provider was unreachable or returned a
	// non-success response. Fatal to the session until retried; the
	// reference collections stay empty.
	ErrDataLoad = errors.New("reference data load failed")

	// ErrFlightNotFound means the selected flight/date combination is not in
	// the flight collection. The selection is rejected, no state mutated.
	ErrFlightNotFound = errors.New("flight not found")

	// ErrNoFlightSelected means a booking transition was requested before
	// any flight selection established a matched partition.
	ErrNoFlightSelected = errors.New("no flight selected")
)
