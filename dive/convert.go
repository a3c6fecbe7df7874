package dive

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date is a calendar date as written by the dive computer
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Clock is a time of day with second precision
type Clock struct {
	Hour   int
	Minute int
	Second int
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

// Splits s on sep and parses exactly n integer components
func splitInts(s, sep string, n int) ([]int, error) {
	parts := strings.Split(strings.TrimSpace(s), sep)
	if len(parts) != n {
		return nil, fmt.Errorf("%w: expected %d components separated by '%s', got %d", ErrMalformed, n, sep, len(parts))
	}

	out := make([]int, n)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%w: component '%s' is not an integer", ErrMalformed, p)
		}
		out[i] = v
	}
	return out, nil
}

// Parses a "DD.MM.YYYY hh:mm:ss" timestamp into its date and time of day
func ParseDateTime(s string) (Date, Clock, error) {
	parts := strings.Split(s, " ")
	if len(parts) != 2 {
		return Date{}, Clock{}, fmt.Errorf("%w: expected 'DD.MM.YYYY hh:mm:ss', got '%s'", ErrMalformed, s)
	}
	d, t := parts[0], parts[1]

	dmy, err := splitInts(d, ".", 3)
	if err != nil {
		return Date{}, Clock{}, err
	}
	hms, err := splitInts(t, ":", 3)
	if err != nil {
		return Date{}, Clock{}, err
	}

	date := Date{Year: dmy[2], Month: time.Month(dmy[1]), Day: dmy[0]}
	if !validDate(date) {
		return Date{}, Clock{}, fmt.Errorf("%w: date '%s' out of range", ErrMalformed, d)
	}

	clock := Clock{Hour: hms[0], Minute: hms[1], Second: hms[2]}
	if clock.Hour < 0 || clock.Hour > 23 || !validMinSec(clock.Minute, clock.Second) {
		return Date{}, Clock{}, fmt.Errorf("%w: time '%s' out of range", ErrMalformed, t)
	}

	return date, clock, nil
}

// time.Date normalizes overflowing components, so a round trip detects them
func validDate(d Date) bool {
	if d.Year < 1 || d.Year > 9999 {
		return false
	}
	norm := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	return norm.Year() == d.Year && norm.Month() == d.Month && norm.Day() == d.Day
}

func validMinSec(m, s int) bool {
	return m >= 0 && m < 60 && s >= 0 && s < 60
}

// Parses a "hh:mm:ss" elapsed span
func ParseDuration(s string) (time.Duration, error) {
	hms, err := splitInts(s, ":", 3)
	if err != nil {
		return 0, err
	}
	if hms[0] < 0 || !validMinSec(hms[1], hms[2]) {
		return 0, fmt.Errorf("%w: duration '%s' out of range", ErrMalformed, s)
	}
	return time.Duration(hms[0])*time.Hour +
		time.Duration(hms[1])*time.Minute +
		time.Duration(hms[2])*time.Second, nil
}

// Parses a "mm:ss" offset within a dive. Minutes do not roll over into hours.
func ParseDiveTime(s string) (time.Duration, error) {
	ms, err := splitInts(s, ":", 2)
	if err != nil {
		return 0, err
	}
	if ms[0] < 0 || ms[1] < 0 || ms[1] >= 60 {
		return 0, fmt.Errorf("%w: dive time '%s' out of range", ErrMalformed, s)
	}
	return time.Duration(ms[0])*time.Minute + time.Duration(ms[1])*time.Second, nil
}

func ParseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: '%s' is not a number", ErrMalformed, s)
	}
	return v, nil
}

// Only the exact value "Y" is true
func ParseFlag(s string) bool {
	return s == "Y"
}
