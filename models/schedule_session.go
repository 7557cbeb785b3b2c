package models

import "time"

// ScheduleSession holds one preview/confirm interaction. It is cached between
// the preview and confirm requests and discarded afterwards; nothing in it
// survives the interaction.
type ScheduleSession struct {
	SessionID        string          `json:"sessionId"`
	Spec             RecurrenceSpec  `json:"spec"`
	ExcludeBookingID string          `json:"excludeBookingId,omitempty"`
	Occurrences      []Occurrence    `json:"occurrences"`
	Summary          ScheduleSummary `json:"summary"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// SubmissionResult reports the outcome of one occurrence's create call.
// Booking is set on success; Error carries the failure message otherwise.
type SubmissionResult struct {
	Date    string    `json:"date"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Booking *Booking  `json:"booking,omitempty"`
	Error   string    `json:"error,omitempty"`
}

// ScheduleConfirmation summarises a confirm call. Submissions are best-effort:
// failed creates are reported here and are not retried or rolled back.
type ScheduleConfirmation struct {
	SessionID string             `json:"sessionId"`
	Created   int                `json:"created"`
	Failed    int                `json:"failed"`
	Results   []SubmissionResult `json:"results"`
}
