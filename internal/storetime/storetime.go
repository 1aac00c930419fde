// Package storetime centralizes the conversion from absolute timestamps to the
// store-local calendar. Stores operate on a fixed UTC-3 clock with no
// daylight-saving adjustment, so the conversion is plain offset arithmetic
// with no timezone database involved. Every place that needs a "local day" or
// "local hour" must go through this package.
package storetime

import "time"

// Offset is the fixed store timezone offset relative to UTC.
const Offset = -3 * time.Hour

// ToLocal shifts an absolute timestamp to the store-local clock.
func ToLocal(t time.Time) time.Time {
	return t.UTC().Add(Offset)
}

// DayKey returns the store-local calendar date as YYYY-MM-DD.
func DayKey(t time.Time) string {
	return ToLocal(t).Format("2006-01-02")
}

// HourKey returns the store-local hour bucket as "HH:00".
func HourKey(t time.Time) string {
	return ToLocal(t).Format("15") + ":00"
}

// ClockKey returns the store-local wall-clock time as "HH:MM".
func ClockKey(t time.Time) string {
	return ToLocal(t).Format("15:04")
}
