package scheduling

import (
	"context"
	"time"

	"go.uber.org/zap"

	"roomly/models"
	"roomly/services/records"
)

// ScheduleService drives the recurring-booking preview/confirm flow, the
// single-interval availability check and the timetable rendering.
type ScheduleService interface {
	PreviewSchedule(ctx context.Context, spec models.RecurrenceSpec, excludeBookingID string) (*models.ScheduleSession, error)
	ConfirmSchedule(ctx context.Context, sessionID string) (*models.ScheduleConfirmation, error)
	CancelSession(ctx context.Context, sessionID string) error
	CheckAvailability(ctx context.Context, roomID string, slot models.TimeInterval, excludeBookingID string) (*models.AvailabilityResult, error)
	WeekTimetable(ctx context.Context, roomID, weekStart string) (*models.WeekTimetable, error)
	ListRooms(ctx context.Context) ([]models.Room, error)
}

// DefaultScheduleService implements ScheduleService against the external
// booking-records client, with preview sessions held in the session store.
type DefaultScheduleService struct {
	Records    records.Client
	Sessions   SessionStore
	Window     OperatingWindow
	Location   *time.Location
	SessionTTL time.Duration
	Logger     *zap.Logger
}
