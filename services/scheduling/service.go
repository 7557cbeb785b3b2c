// File: services/scheduling/service.go
package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"roomly/models"
	"roomly/services/records"
)

// PreviewSchedule expands the recurrence spec, classifies every occurrence
// against the room's existing bookings and caches the result as a session.
// Validation failures surface before any network I/O.
func (s *DefaultScheduleService) PreviewSchedule(ctx context.Context, spec models.RecurrenceSpec, excludeBookingID string) (*models.ScheduleSession, error) {
	if spec.RoomID == "" {
		return nil, newValidationError("roomId", "required")
	}

	occurrences, err := GenerateOccurrences(spec, s.Location)
	if err != nil {
		return nil, err
	}

	var existing []models.Booking
	if len(occurrences) > 0 {
		from := occurrences[0].Start
		to := occurrences[len(occurrences)-1].End
		existing, err = s.Records.ListBookings(ctx, spec.RoomID, from, to)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch existing bookings: %w", err)
		}
	}
	occurrences, summary := ClassifyOccurrences(occurrences, existing, excludeBookingID)

	session := &models.ScheduleSession{
		SessionID:        uuid.New().String(),
		Spec:             spec,
		ExcludeBookingID: excludeBookingID,
		Occurrences:      occurrences,
		Summary:          summary,
		CreatedAt:        time.Now(),
	}
	if err := s.Sessions.Save(ctx, session, s.SessionTTL); err != nil {
		return nil, err
	}

	s.Logger.Debug("schedule preview created",
		zap.String("sessionID", session.SessionID),
		zap.String("roomID", spec.RoomID),
		zap.Int("total", summary.Total),
		zap.Int("conflicts", summary.Conflicts))
	return session, nil
}

// ConfirmSchedule submits one booking-create call per available occurrence of
// the session, in ascending date order. Conflicting occurrences are dropped.
// Submission is best-effort: a failed create is recorded in the result and
// does not stop the remaining submissions, and nothing is rolled back.
func (s *DefaultScheduleService) ConfirmSchedule(ctx context.Context, sessionID string) (*models.ScheduleConfirmation, error) {
	session, err := s.Sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	confirmation := &models.ScheduleConfirmation{SessionID: sessionID}
	for _, occ := range session.Occurrences {
		if !occ.IsAvailable {
			continue
		}
		result := models.SubmissionResult{Date: occ.Date, Start: occ.Start, End: occ.End}
		booking, err := s.Records.CreateBooking(ctx, records.CreateBookingRequest{
			RoomID:  session.Spec.RoomID,
			Start:   occ.Start,
			End:     occ.End,
			Purpose: session.Spec.Purpose,
			Notes:   session.Spec.Notes,
		})
		if err != nil {
			s.Logger.Warn("occurrence submission failed",
				zap.String("sessionID", sessionID),
				zap.String("date", occ.Date),
				zap.Error(err))
			result.Error = err.Error()
			confirmation.Failed++
		} else {
			result.Booking = booking
			confirmation.Created++
		}
		confirmation.Results = append(confirmation.Results, result)
	}

	if err := s.Sessions.Delete(ctx, sessionID); err != nil {
		s.Logger.Warn("failed to drop confirmed session", zap.String("sessionID", sessionID), zap.Error(err))
	}
	return confirmation, nil
}

// CancelSession discards a preview session without submitting anything.
func (s *DefaultScheduleService) CancelSession(ctx context.Context, sessionID string) error {
	return s.Sessions.Delete(ctx, sessionID)
}

// CheckAvailability classifies a single candidate interval for a room, with
// an optional exclusion id for reschedule flows.
func (s *DefaultScheduleService) CheckAvailability(ctx context.Context, roomID string, slot models.TimeInterval, excludeBookingID string) (*models.AvailabilityResult, error) {
	if roomID == "" {
		return nil, newValidationError("roomId", "required")
	}
	if !slot.IsValid() {
		return nil, newValidationError("end", "must be after start")
	}

	existing, err := s.Records.ListBookings(ctx, roomID, slot.Start, slot.End)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch existing bookings: %w", err)
	}

	candidate := models.Occurrence{
		Date:  slot.Start.In(s.Location).Format(dateLayout),
		Start: slot.Start,
		End:   slot.End,
	}
	classified, _ := ClassifyOccurrences([]models.Occurrence{candidate}, existing, excludeBookingID)
	return &models.AvailabilityResult{
		IsAvailable: classified[0].IsAvailable,
		Conflict:    classified[0].Conflict,
	}, nil
}

// WeekTimetable renders the weekly grid for a room starting at weekStart
// (YYYY-MM-DD). A failed bookings fetch degrades to an empty calendar rather
// than blocking the view.
func (s *DefaultScheduleService) WeekTimetable(ctx context.Context, roomID, weekStart string) (*models.WeekTimetable, error) {
	start, err := time.ParseInLocation(dateLayout, weekStart, s.Location)
	if err != nil {
		return nil, newValidationError("weekStart", fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", weekStart))
	}

	bookings, err := s.Records.ListBookings(ctx, roomID, start, start.AddDate(0, 0, 7))
	if err != nil {
		s.Logger.Warn("bookings fetch failed, rendering empty timetable",
			zap.String("roomID", roomID),
			zap.String("weekStart", weekStart),
			zap.Error(err))
		bookings = nil
	}

	return &models.WeekTimetable{
		RoomID:    roomID,
		WeekStart: weekStart,
		Slots:     s.Window.Slots(),
		Days:      BuildWeekGrid(start, roomID, bookings, s.Window, s.Location),
	}, nil
}

// ListRooms passes the bookable-room listing through from the records service.
func (s *DefaultScheduleService) ListRooms(ctx context.Context) ([]models.Room, error) {
	return s.Records.ListRooms(ctx)
}
