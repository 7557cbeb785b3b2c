// File: handlers/schedule.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"roomly/models"
	"roomly/services/records"
	"roomly/services/scheduling"
	"roomly/utils"
)

// ScheduleHandler exposes the scheduling engine endpoints.
type ScheduleHandler struct {
	Service scheduling.ScheduleService
	Logger  *zap.Logger
}

// NewScheduleHandler builds a ScheduleHandler.
func NewScheduleHandler(service scheduling.ScheduleService, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{Service: service, Logger: logger}
}

// respondError maps domain errors onto HTTP statuses.
func (h *ScheduleHandler) respondError(c *gin.Context, err error) {
	var validationErr *scheduling.ValidationError
	var transportErr *records.TransportError
	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, "invalid request", validationErr.Error())
	case errors.Is(err, scheduling.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "session not found", err.Error())
	case errors.As(err, &transportErr):
		utils.JSONError(c, http.StatusBadGateway, "booking records service unavailable", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}

// PreviewSchedule expands a recurrence spec, classifies its occurrences and
// opens a preview session.
func (h *ScheduleHandler) PreviewSchedule(c *gin.Context) {
	var input struct {
		Spec             models.RecurrenceSpec `json:"spec"`
		ExcludeBookingID string                `json:"excludeBookingId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.PreviewSchedule(c.Request.Context(), input.Spec, input.ExcludeBookingID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionID":   session.SessionID,
		"occurrences": session.Occurrences,
		"summary":     session.Summary,
	})
}

// ConfirmSchedule submits the available occurrences of a preview session.
func (h *ScheduleHandler) ConfirmSchedule(c *gin.Context) {
	var input struct {
		SessionID string `json:"sessionID" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	confirmation, err := h.Service.ConfirmSchedule(c.Request.Context(), input.SessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, confirmation)
}

// CancelSession discards a preview session.
func (h *ScheduleHandler) CancelSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Service.CancelSession(c.Request.Context(), sessionID); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": sessionID, "cancelled": true})
}

// CheckAvailability runs the single-interval availability check used for
// one-off bookings and reschedules.
func (h *ScheduleHandler) CheckAvailability(c *gin.Context) {
	var input struct {
		RoomID           string              `json:"roomId" binding:"required"`
		Slot             models.TimeInterval `json:"slot"`
		ExcludeBookingID string              `json:"excludeBookingId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Service.CheckAvailability(c.Request.Context(), input.RoomID, input.Slot, input.ExcludeBookingID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
