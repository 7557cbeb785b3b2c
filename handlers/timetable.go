// File: handlers/timetable.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roomly/utils"
)

// WeekTimetable renders the weekly slot grid for a room.
func (h *ScheduleHandler) WeekTimetable(c *gin.Context) {
	roomID := c.Query("roomId")
	weekStart := c.Query("weekStart")
	if weekStart == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "weekStart query parameter is required")
		return
	}

	timetable, err := h.Service.WeekTimetable(c.Request.Context(), roomID, weekStart)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, timetable)
}

// ListRooms returns the bookable rooms from the records service.
func (h *ScheduleHandler) ListRooms(c *gin.Context) {
	rooms, err := h.Service.ListRooms(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}
