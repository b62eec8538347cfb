// Package timerange holds the pure interval logic the reservation admission
// check is built on. All ranges are half-open [start, end): the start instant
// is included, the end instant is excluded, so back-to-back reservations do
// not conflict.
package timerange

import "time"

// IsValidRange reports whether start is strictly before end. Zero-length
// ranges are invalid.
func IsValidRange(start, end time.Time) bool {
	return start.Before(end)
}

// Overlaps reports whether the half-open ranges [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching endpoints do not count. If either range
// is invalid the answer is false, never an error.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return IsValidRange(aStart, aEnd) &&
		IsValidRange(bStart, bEnd) &&
		aStart.Before(bEnd) &&
		bStart.Before(aEnd)
}

// SlotsBetween returns every instant start, start+step, start+2*step, ...
// strictly before end. Empty when start >= end or stepMinutes <= 0.
func SlotsBetween(start, end time.Time, stepMinutes int) []time.Time {
	out := []time.Time{}
	if stepMinutes <= 0 {
		return out
	}
	step := time.Duration(stepMinutes) * time.Minute
	for t := start; t.Before(end); t = t.Add(step) {
		out = append(out, t)
	}
	return out
}

// IsCapacityOk reports whether partySize fits in capacity.
func IsCapacityOk(capacity, partySize int) bool {
	return partySize <= capacity
}

// DurationMinutes is the whole-minute difference end - start, truncated
// toward zero. Negative when end is before start.
func DurationMinutes(start, end time.Time) int {
	return int(end.Sub(start) / time.Minute)
}
