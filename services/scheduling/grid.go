// File: services/scheduling/grid.go
package scheduling

import (
	"sort"
	"time"

	"roomly/models"
)

const dateLayout = "2006-01-02"

// OperatingWindow is the daily hour range rendered by the timetable grid.
// Bookings are clamped to it; anything fully outside it is not drawn.
type OperatingWindow struct {
	OpenHour  int
	CloseHour int
}

// Slots returns the window's one-hour display slots.
func (w OperatingWindow) Slots() []models.DaySlot {
	slots := make([]models.DaySlot, 0, w.CloseHour-w.OpenHour)
	for h := w.OpenHour; h < w.CloseHour; h++ {
		slots = append(slots, models.DaySlot{StartHour: h, EndHour: h + 1})
	}
	return slots
}

// SortBookings orders bookings by start time, then creation time, then id.
// Every place that picks a "first" booking (the grid cursor, the conflict
// classifier) relies on this ordering so the pick is deterministic.
func SortBookings(bookings []models.Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		a, b := bookings[i], bookings[j]
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
}

// BuildDayGrid renders one room's bookings for a single calendar day into a
// gapless cell sequence over the operating window's hourly slots. Consecutive
// slots covered by the same booking are merged into one spanning cell; a
// partial hour at either edge counts as a full occupied slot. The emitted
// spans always sum to the slot count.
func BuildDayGrid(day time.Time, roomID string, bookings []models.Booking, window OperatingWindow, loc *time.Location) []models.GridCell {
	day = day.In(loc)
	dayStr := day.Format(dateLayout)

	matched := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if roomID != "" && b.RoomID != roomID {
			continue
		}
		if b.Start.In(loc).Format(dateLayout) != dayStr {
			continue
		}
		matched = append(matched, b)
	}
	SortBookings(matched)

	year, month, dayOfMonth := day.Date()
	windowStart := time.Date(year, month, dayOfMonth, window.OpenHour, 0, 0, 0, loc)
	windowEnd := time.Date(year, month, dayOfMonth, window.CloseHour, 0, 0, 0, loc)
	slots := window.Slots()

	cells := make([]models.GridCell, 0, len(slots))
	for cursor := 0; cursor < len(slots); {
		slot := slots[cursor]
		slotInterval := models.TimeInterval{
			Start: time.Date(year, month, dayOfMonth, slot.StartHour, 0, 0, 0, loc),
			End:   time.Date(year, month, dayOfMonth, slot.EndHour, 0, 0, 0, loc),
		}

		var hit *models.Booking
		for i := range matched {
			if matched[i].Interval().Overlaps(slotInterval) {
				hit = &matched[i]
				break
			}
		}
		if hit == nil {
			cells = append(cells, models.GridCell{SpanSlots: 1})
			cursor++
			continue
		}

		span := 1
		if visible, ok := hit.Interval().Clamp(windowStart, windowEnd); ok {
			span = occupiedSpan(visible, loc)
		}
		if remaining := len(slots) - cursor; span > remaining {
			span = remaining
		}

		booking := *hit
		cells = append(cells, models.GridCell{SpanSlots: span, Booking: &booking})
		cursor += span
	}
	return cells
}

// occupiedSpan converts a clamped booking interval to whole display slots.
// Both edges round up to the next hour boundary.
func occupiedSpan(visible models.TimeInterval, loc *time.Location) int {
	start := visible.Start.In(loc)
	end := visible.End.In(loc)

	startHour := start.Hour()
	if start.Minute() > 0 || start.Second() > 0 || start.Nanosecond() > 0 {
		startHour++
	}
	endHour := end.Hour()
	if end.Minute() > 0 || end.Second() > 0 || end.Nanosecond() > 0 {
		endHour++
	}

	span := endHour - startHour
	if span < 1 {
		span = 1
	}
	return span
}

// BuildWeekGrid renders seven consecutive day grids starting at weekStart.
func BuildWeekGrid(weekStart time.Time, roomID string, bookings []models.Booking, window OperatingWindow, loc *time.Location) []models.DayGrid {
	days := make([]models.DayGrid, 0, 7)
	start := weekStart.In(loc)
	for offset := 0; offset < 7; offset++ {
		day := start.AddDate(0, 0, offset)
		days = append(days, models.DayGrid{
			Date:  day.Format(dateLayout),
			Cells: BuildDayGrid(day, roomID, bookings, window, loc),
		})
	}
	return days
}
