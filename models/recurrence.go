package models

import "time"

// Recurrence pattern types.
const (
	RecurrenceDaily  = "daily"
	RecurrenceWeekly = "weekly"
)

// RecurrenceSpec describes a recurring booking request. Dates use the
// "2006-01-02" layout and times of day use "15:04"; both are interpreted in
// the engine's configured location.
type RecurrenceSpec struct {
	Type       string         `json:"type"`
	Interval   int            `json:"interval"`
	DaysOfWeek []time.Weekday `json:"daysOfWeek,omitempty"` // 0 = Sunday, 6 = Saturday
	StartDate  string         `json:"startDate"`
	EndDate    string         `json:"endDate"`
	StartTime  string         `json:"startTime"`
	EndTime    string         `json:"endTime"`
	RoomID     string         `json:"roomId"`
	Purpose    string         `json:"purpose,omitempty"`
	Notes      string         `json:"notes,omitempty"`
}

// Occurrence is one concrete date+time instance produced by expanding a
// recurrence pattern. IsAvailable and Conflict are populated by the conflict
// classifier; occurrences are transient and never persisted directly.
type Occurrence struct {
	Date        string           `json:"date"`
	Start       time.Time        `json:"start"`
	End         time.Time        `json:"end"`
	IsAvailable bool             `json:"isAvailable"`
	Conflict    *BookingConflict `json:"conflict,omitempty"`
}

// Interval returns the occurrence's candidate time range.
func (o Occurrence) Interval() TimeInterval {
	return TimeInterval{Start: o.Start, End: o.End}
}

// BookingConflict carries the denormalized display fields of the first
// booking found to overlap a candidate occurrence.
type BookingConflict struct {
	BookingID string    `json:"bookingId"`
	Purpose   string    `json:"purpose,omitempty"`
	OwnerName string    `json:"ownerName,omitempty"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
}

// ScheduleSummary totals a classified occurrence list.
type ScheduleSummary struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Conflicts int `json:"conflicts"`
}

// AvailabilityResult is the outcome of a single-interval availability check.
type AvailabilityResult struct {
	IsAvailable bool             `json:"isAvailable"`
	Conflict    *BookingConflict `json:"conflict,omitempty"`
}
