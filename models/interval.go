package models

import "time"

// TimeInterval is a half-open time range [Start, End).
type TimeInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// IsValid reports whether the interval has positive length.
func (iv TimeInterval) IsValid() bool {
	return iv.Start.Before(iv.End)
}

// Overlaps reports whether two half-open intervals intersect.
// Touching intervals (a.End == b.Start) do not overlap.
func (iv TimeInterval) Overlaps(other TimeInterval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// Clamp returns the intersection of the interval with [windowStart, windowEnd].
// The second return value is false when the interval lies entirely outside the window.
func (iv TimeInterval) Clamp(windowStart, windowEnd time.Time) (TimeInterval, bool) {
	start := iv.Start
	end := iv.End
	if start.Before(windowStart) {
		start = windowStart
	}
	if end.After(windowEnd) {
		end = windowEnd
	}
	if !start.Before(end) {
		return TimeInterval{}, false
	}
	return TimeInterval{Start: start, End: end}, true
}
