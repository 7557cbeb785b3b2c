package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"roomly/handlers"
	"roomly/models"
	"roomly/routes"
	"roomly/services/records"
	"roomly/services/scheduling"
)

type fakeScheduleService struct {
	previewSession *models.ScheduleSession
	previewErr     error
	confirmation   *models.ScheduleConfirmation
	confirmErr     error
	availability   *models.AvailabilityResult
	timetable      *models.WeekTimetable
	cancelled      []string
}

func (f *fakeScheduleService) PreviewSchedule(_ context.Context, _ models.RecurrenceSpec, _ string) (*models.ScheduleSession, error) {
	return f.previewSession, f.previewErr
}

func (f *fakeScheduleService) ConfirmSchedule(_ context.Context, _ string) (*models.ScheduleConfirmation, error) {
	return f.confirmation, f.confirmErr
}

func (f *fakeScheduleService) CancelSession(_ context.Context, sessionID string) error {
	f.cancelled = append(f.cancelled, sessionID)
	return nil
}

func (f *fakeScheduleService) CheckAvailability(_ context.Context, _ string, _ models.TimeInterval, _ string) (*models.AvailabilityResult, error) {
	return f.availability, nil
}

func (f *fakeScheduleService) WeekTimetable(_ context.Context, _, _ string) (*models.WeekTimetable, error) {
	return f.timetable, nil
}

func (f *fakeScheduleService) ListRooms(_ context.Context) ([]models.Room, error) {
	return []models.Room{{ID: "room-1", Name: "Aurora"}}, nil
}

func newTestRouter(svc scheduling.ScheduleService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := handlers.NewScheduleHandler(svc, zap.NewNop())
	routes.RegisterScheduleRoutes(router, handler)
	routes.RegisterTimetableRoutes(router, handler)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestPreviewScheduleEndpoint(t *testing.T) {
	svc := &fakeScheduleService{
		previewSession: &models.ScheduleSession{
			SessionID: "session-1",
			Summary:   models.ScheduleSummary{Total: 4, Available: 3, Conflicts: 1},
		},
	}
	router := newTestRouter(svc)

	recorder := postJSON(t, router, "/api/schedule/preview", gin.H{
		"spec": models.RecurrenceSpec{Type: models.RecurrenceDaily, Interval: 1, RoomID: "room-1"},
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	var response struct {
		SessionID string                 `json:"sessionID"`
		Summary   models.ScheduleSummary `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "session-1", response.SessionID)
	assert.Equal(t, 1, response.Summary.Conflicts)
}

func TestPreviewScheduleValidationStatus(t *testing.T) {
	svc := &fakeScheduleService{
		previewErr: &scheduling.ValidationError{Field: "endDate", Message: "must not be before startDate"},
	}
	router := newTestRouter(svc)

	recorder := postJSON(t, router, "/api/schedule/preview", gin.H{"spec": models.RecurrenceSpec{}})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestPreviewScheduleTransportStatus(t *testing.T) {
	svc := &fakeScheduleService{
		previewErr: &records.TransportError{Op: "list bookings", Err: errors.New("down")},
	}
	router := newTestRouter(svc)

	recorder := postJSON(t, router, "/api/schedule/preview", gin.H{"spec": models.RecurrenceSpec{}})
	assert.Equal(t, http.StatusBadGateway, recorder.Code)
}

func TestConfirmScheduleEndpoint(t *testing.T) {
	svc := &fakeScheduleService{
		confirmation: &models.ScheduleConfirmation{SessionID: "session-1", Created: 3, Failed: 0},
	}
	router := newTestRouter(svc)

	recorder := postJSON(t, router, "/api/schedule/confirm", gin.H{"sessionID": "session-1"})
	require.Equal(t, http.StatusOK, recorder.Code)

	var confirmation models.ScheduleConfirmation
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &confirmation))
	assert.Equal(t, 3, confirmation.Created)
}

func TestConfirmScheduleUnknownSessionStatus(t *testing.T) {
	svc := &fakeScheduleService{confirmErr: scheduling.ErrSessionNotFound}
	router := newTestRouter(svc)

	recorder := postJSON(t, router, "/api/schedule/confirm", gin.H{"sessionID": "missing"})
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestCancelSessionEndpoint(t *testing.T) {
	svc := &fakeScheduleService{}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/schedule/session/session-9", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, []string{"session-9"}, svc.cancelled)
}

func TestCheckAvailabilityEndpoint(t *testing.T) {
	svc := &fakeScheduleService{
		availability: &models.AvailabilityResult{IsAvailable: false, Conflict: &models.BookingConflict{BookingID: "b1"}},
	}
	router := newTestRouter(svc)

	start := time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC)
	recorder := postJSON(t, router, "/api/schedule/check", gin.H{
		"roomId": "room-1",
		"slot":   models.TimeInterval{Start: start, End: start.Add(time.Hour)},
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	var result models.AvailabilityResult
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	assert.False(t, result.IsAvailable)
	assert.Equal(t, "b1", result.Conflict.BookingID)
}

func TestWeekTimetableEndpoint(t *testing.T) {
	svc := &fakeScheduleService{
		timetable: &models.WeekTimetable{WeekStart: "2024-01-01", Days: make([]models.DayGrid, 7)},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/timetable?roomId=room-1&weekStart=2024-01-01", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)

	// weekStart is mandatory.
	req = httptest.NewRequest(http.MethodGet, "/api/timetable?roomId=room-1", nil)
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
