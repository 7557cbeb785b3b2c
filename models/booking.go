package models

import "time"

// Booking status values recognised by the scheduling engine.
const (
	BookingStatusPending   = "pending"
	BookingStatusApproved  = "approved"
	BookingStatusRejected  = "rejected"
	BookingStatusCancelled = "cancelled"
)

// Booking represents a booking record owned by the external booking-records
// service. The scheduling engine never mutates bookings; it only reads them
// to render timetables and detect conflicts.
type Booking struct {
	ID        string    `json:"id"`
	RoomID    string    `json:"roomId"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Status    string    `json:"status"`
	OwnerName string    `json:"ownerName,omitempty"`
	Purpose   string    `json:"purpose,omitempty"`
	Location  string    `json:"location,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsActive reports whether the booking participates in grid and conflict
// computations. Cancelled and rejected bookings do not occupy the calendar.
func (b Booking) IsActive() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusApproved
}

// Interval returns the booking's occupied time range.
func (b Booking) Interval() TimeInterval {
	return TimeInterval{Start: b.Start, End: b.End}
}

// Room is a bookable room exposed by the records service.
type Room struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity,omitempty"`
	Location string `json:"location,omitempty"`
}
