package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the ISO calendar date format used for every derived date.
const DateLayout = "2006-01-02"

// ErrInvalidCode is returned for an unrecognized month or DOW code. Callers
// recover with SentinelDate rather than propagating it, to keep downstream
// derivation total.
var ErrInvalidCode = errors.New("invalid month or dow code")

// Strategy selects between the two observed date-derivation revisions.
type Strategy int

const (
	// StrategyFirstOccurrence returns the first occurrence of the target
	// weekday in the target month.
	StrategyFirstOccurrence Strategy = iota
	// StrategyShifted additionally moves the result forward by exactly one
	// calendar day after the first-occurrence computation.
	StrategyShifted
)

// ParseStrategy maps a config value to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "first-occurrence":
		return StrategyFirstOccurrence, nil
	case "shifted":
		return StrategyShifted, nil
	}
	return StrategyFirstOccurrence, fmt.Errorf("unknown date strategy %q", s)
}

var monthByCode = map[string]time.Month{
	"JAN": time.January, "FEB": time.February, "MAR": time.March,
	"APR": time.April, "MAY": time.May, "JUN": time.June,
	"JUL": time.July, "AUG": time.August, "SEP": time.September,
	"OCT": time.October, "NOV": time.November, "DEC": time.December,
}

var codeByMonth = map[time.Month]string{}

func init() {
	for code, m := range monthByCode {
		codeByMonth[m] = code
	}
}

// MonthFromCode resolves a JAN..DEC code, case-insensitively.
func MonthFromCode(code string) (time.Month, bool) {
	m, ok := monthByCode[strings.ToUpper(strings.TrimSpace(code))]
	return m, ok
}

// MonthCode returns the JAN..DEC code for a month.
func MonthCode(m time.Month) string {
	return codeByMonth[m]
}

// WeekdayFromDow resolves a D1..D7 code. D1..D6 are Monday..Saturday and D7
// is Sunday.
func WeekdayFromDow(code string) (time.Weekday, bool) {
	c := strings.ToUpper(strings.TrimSpace(code))
	if len(c) != 2 || c[0] != 'D' {
		return 0, false
	}
	n := int(c[1] - '0')
	if n < 1 || n > 7 {
		return 0, false
	}
	if n == 7 {
		return time.Sunday, true
	}
	return time.Weekday(n), true
}

// DowCode returns the D1..D7 code for a weekday.
func DowCode(d time.Weekday) string {
	if d == time.Sunday {
		return "D7"
	}
	return fmt.Sprintf("D%d", int(d))
}

// NearestDate derives the concrete calendar date for a (month, dow) pair in
// the given year: the first occurrence of that weekday in that month,
// shifted one day forward under StrategyShifted. Pure in its inputs.
func NearestDate(monthCode, dowCode string, year int, strategy Strategy) (time.Time, error) {
	month, ok := MonthFromCode(monthCode)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: month %q", ErrInvalidCode, monthCode)
	}
	target, ok := WeekdayFromDow(dowCode)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: dow %q", ErrInvalidCode, dowCode)
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(target) - int(first.Weekday()) + 7) % 7
	date := first.AddDate(0, 0, offset)
	if strategy == StrategyShifted {
		date = date.AddDate(0, 0, 1)
	}
	return date, nil
}

// SentinelDate is the documented fallback for invalid (month, dow) input:
// January 1 of the target year.
func SentinelDate(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}
