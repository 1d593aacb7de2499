package calendar

import (
	"fmt"
	"time"
)

const (
	// DayKeyLayout is the canonical format for a local calendar day.
	DayKeyLayout = "2006-01-02"
	clockLayout  = "15:04"
)

// Parts holds the local wall-clock components of an instant in a zone.
type Parts struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Second int
}

// PartsIn returns the local calendar parts of t as observed in the given IANA
// timezone. The process default timezone is never consulted.
func PartsIn(t time.Time, zone string) (Parts, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return Parts{}, fmt.Errorf("invalid timezone %q: %w", zone, err)
	}
	local := t.In(loc)
	return Parts{
		Year:   local.Year(),
		Month:  local.Month(),
		Day:    local.Day(),
		Hour:   local.Hour(),
		Minute: local.Minute(),
		Second: local.Second(),
	}, nil
}

// FromLocal converts a local date ("YYYY-MM-DD") and clock ("HH:mm") in the
// given zone to the absolute instant that shows those wall-clock parts there.
//
// The first guess assumes a zero offset; reading the guess back in the target
// zone yields a residual (desired minus observed wall time) which is applied
// to the guess. Two rounds are enough: offsets are bounded and change at most
// once across a single DST transition.
func FromLocal(date string, clock string, zone string) (time.Time, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", zone, err)
	}

	d, err := time.Parse(DayKeyLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	c, err := time.Parse(clockLayout, clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid clock %q: %w", clock, err)
	}

	want := time.Date(d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute(), 0, 0, time.UTC)
	guess := want

	for range 2 {
		observed := guess.In(loc)
		got := time.Date(
			observed.Year(), observed.Month(), observed.Day(),
			observed.Hour(), observed.Minute(), 0, 0, time.UTC,
		)
		residual := want.Sub(got)
		if residual == 0 {
			break
		}
		guess = guess.Add(residual)
	}

	return guess, nil
}

// DayKey returns the "YYYY-MM-DD" key of the local day containing t in zone.
func DayKey(t time.Time, zone string) (string, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return "", fmt.Errorf("invalid timezone %q: %w", zone, err)
	}
	return t.In(loc).Format(DayKeyLayout), nil
}

// ParseDayKey parses a "YYYY-MM-DD" day key.
func ParseDayKey(key string) (time.Time, error) {
	t, err := time.Parse(DayKeyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day key %q: %w", key, err)
	}
	return t, nil
}

// DaysBetween enumerates every local day key in [start, end] inclusive.
// The keys are pure calendar values, so enumeration needs no timezone; the
// caller is expected to have derived both keys in the same company zone.
func DaysBetween(start, end string) ([]string, error) {
	s, err := ParseDayKey(start)
	if err != nil {
		return nil, err
	}
	e, err := ParseDayKey(end)
	if err != nil {
		return nil, err
	}
	if e.Before(s) {
		return nil, fmt.Errorf("end day %s is before start day %s", end, start)
	}

	var days []string
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(DayKeyLayout))
	}
	return days, nil
}

// NextDayStart returns the absolute instant at which the local day after key
// begins in zone, which is also the exclusive end of the day named by key.
func NextDayStart(key string, zone string) (time.Time, error) {
	d, err := ParseDayKey(key)
	if err != nil {
		return time.Time{}, err
	}
	next := d.AddDate(0, 0, 1).Format(DayKeyLayout)
	return FromLocal(next, "00:00", zone)
}

// MonthLength returns the number of calendar days in the given month.
func MonthLength(year int, month time.Month) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
