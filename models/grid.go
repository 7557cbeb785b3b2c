package models

// DaySlot is one fixed-width unit of the display grid, expressed as whole
// hours within the operating window (e.g. {7, 8} for the 07:00-08:00 slot).
type DaySlot struct {
	StartHour int `json:"startHour"`
	EndHour   int `json:"endHour"`
}

// GridCell is one rendered cell of a room's day row. An empty cell spans a
// single slot; an occupied cell carries its booking and spans every slot the
// booking covers within the operating window.
type GridCell struct {
	SpanSlots int      `json:"spanSlots"`
	Booking   *Booking `json:"booking,omitempty"`
}

// Occupied reports whether the cell renders a booking.
func (c GridCell) Occupied() bool {
	return c.Booking != nil
}

// DayGrid is the full cell sequence for one room and calendar date. The cell
// spans always sum to the slot count of the operating window.
type DayGrid struct {
	Date  string     `json:"date"`
	Cells []GridCell `json:"cells"`
}

// WeekTimetable is the rendered weekly view returned to the client.
type WeekTimetable struct {
	RoomID    string    `json:"roomId,omitempty"`
	WeekStart string    `json:"weekStart"`
	Slots     []DaySlot `json:"slots"`
	Days      []DayGrid `json:"days"`
}
