package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roomly/handlers"
)

// RegisterScheduleRoutes registers the endpoints of the scheduling engine.
func RegisterScheduleRoutes(r *gin.Engine, h *handlers.ScheduleHandler) {
	schedule := r.Group("/api/schedule")
	{
		schedule.POST("/preview", h.PreviewSchedule)            // Phase 1: expand + classify
		schedule.POST("/confirm", h.ConfirmSchedule)            // Phase 2: submit available occurrences
		schedule.DELETE("/session/:sessionID", h.CancelSession) // Discard a preview
		schedule.POST("/check", h.CheckAvailability)            // Single-interval check / reschedule
	}
}

// RegisterTimetableRoutes registers the calendar view endpoints.
func RegisterTimetableRoutes(r *gin.Engine, h *handlers.ScheduleHandler) {
	api := r.Group("/api")
	{
		api.GET("/timetable", h.WeekTimetable)
		api.GET("/rooms", h.ListRooms)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Roomly"})
	})
}
