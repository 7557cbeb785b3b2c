// File: services/scheduling/recurrence.go
package scheduling

import (
	"fmt"
	"time"

	"roomly/models"
)

const timeOfDayLayout = "15:04"

type timeOfDay struct {
	hour   int
	minute int
}

func parseTimeOfDay(field, value string) (timeOfDay, error) {
	t, err := time.Parse(timeOfDayLayout, value)
	if err != nil {
		return timeOfDay{}, newValidationError(field, fmt.Sprintf("invalid time %q, expected HH:MM", value))
	}
	return timeOfDay{hour: t.Hour(), minute: t.Minute()}, nil
}

func (t timeOfDay) minutes() int {
	return t.hour*60 + t.minute
}

// GenerateOccurrences expands a recurrence specification into the concrete
// date+time occurrences it implies, ordered by date ascending. Occurrences
// come back unclassified; IsAvailable is populated by ClassifyOccurrences.
//
// Daily rules emit one occurrence every Interval days from StartDate through
// EndDate inclusive. Weekly rules walk the range day by day, emitting dates
// whose weekday is in DaysOfWeek; the week interval counts 7-day blocks from
// StartDate, and only blocks where weeks%Interval == 0 emit.
func GenerateOccurrences(spec models.RecurrenceSpec, loc *time.Location) ([]models.Occurrence, error) {
	if spec.Interval < 1 {
		return nil, newValidationError("interval", "must be at least 1")
	}

	startDate, err := time.ParseInLocation(dateLayout, spec.StartDate, loc)
	if err != nil {
		return nil, newValidationError("startDate", fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", spec.StartDate))
	}
	endDate, err := time.ParseInLocation(dateLayout, spec.EndDate, loc)
	if err != nil {
		return nil, newValidationError("endDate", fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", spec.EndDate))
	}
	if endDate.Before(startDate) {
		return nil, newValidationError("endDate", "must not be before startDate")
	}

	startTime, err := parseTimeOfDay("startTime", spec.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := parseTimeOfDay("endTime", spec.EndTime)
	if err != nil {
		return nil, err
	}
	if endTime.minutes() <= startTime.minutes() {
		return nil, newValidationError("endTime", "must be after startTime")
	}

	weekdays := make(map[time.Weekday]struct{}, len(spec.DaysOfWeek))
	for _, day := range spec.DaysOfWeek {
		if day < time.Sunday || day > time.Saturday {
			return nil, newValidationError("daysOfWeek", fmt.Sprintf("invalid weekday %d", day))
		}
		weekdays[day] = struct{}{}
	}

	switch spec.Type {
	case models.RecurrenceDaily, models.RecurrenceWeekly:
	default:
		return nil, newValidationError("type", fmt.Sprintf("unsupported recurrence type %q", spec.Type))
	}
	if spec.Type == models.RecurrenceWeekly && len(weekdays) == 0 {
		return nil, newValidationError("daysOfWeek", "required for weekly recurrence")
	}

	// Walk day by day; AddDate keeps the walk correct across DST shifts where
	// adding 24h multiples would drift.
	occurrences := make([]models.Occurrence, 0)
	dayIndex := 0
	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		emit := false
		switch spec.Type {
		case models.RecurrenceDaily:
			emit = dayIndex%spec.Interval == 0
		case models.RecurrenceWeekly:
			if (dayIndex/7)%spec.Interval == 0 {
				_, emit = weekdays[d.Weekday()]
			}
		}
		if emit {
			occurrences = append(occurrences, occurrenceOn(d, startTime, endTime, loc))
		}
		dayIndex++
	}
	return occurrences, nil
}

func occurrenceOn(day time.Time, start, end timeOfDay, loc *time.Location) models.Occurrence {
	year, month, dayOfMonth := day.Date()
	return models.Occurrence{
		Date:  day.Format(dateLayout),
		Start: time.Date(year, month, dayOfMonth, start.hour, start.minute, 0, 0, loc),
		End:   time.Date(year, month, dayOfMonth, end.hour, end.minute, 0, 0, loc),
	}
}
