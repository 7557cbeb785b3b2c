// File: services/scheduling/conflicts.go
package scheduling

import "roomly/models"

// ClassifyOccurrences labels each candidate occurrence as available or
// conflicting against the room's existing bookings. Only pending and approved
// bookings count; a booking matching excludeBookingID is ignored so a
// reschedule never conflicts with its own current slot. The first conflicting
// booking (per SortBookings order) is attached for display.
//
// Classification is pure: the caller fetches the existing bookings and owns
// the result.
func ClassifyOccurrences(candidates []models.Occurrence, existing []models.Booking, excludeBookingID string) ([]models.Occurrence, models.ScheduleSummary) {
	active := make([]models.Booking, 0, len(existing))
	for _, b := range existing {
		if !b.IsActive() {
			continue
		}
		if excludeBookingID != "" && b.ID == excludeBookingID {
			continue
		}
		active = append(active, b)
	}
	SortBookings(active)

	classified := make([]models.Occurrence, len(candidates))
	summary := models.ScheduleSummary{Total: len(candidates)}
	for i, occ := range candidates {
		occ.IsAvailable = true
		occ.Conflict = nil
		for j := range active {
			if active[j].Interval().Overlaps(occ.Interval()) {
				occ.IsAvailable = false
				occ.Conflict = conflictOf(active[j])
				break
			}
		}
		if occ.IsAvailable {
			summary.Available++
		}
		classified[i] = occ
	}
	summary.Conflicts = summary.Total - summary.Available
	return classified, summary
}

func conflictOf(b models.Booking) *models.BookingConflict {
	return &models.BookingConflict{
		BookingID: b.ID,
		Purpose:   b.Purpose,
		OwnerName: b.OwnerName,
		Start:     b.Start,
		End:       b.End,
	}
}
