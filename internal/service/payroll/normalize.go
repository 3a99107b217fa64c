package payroll

import (
	"time"

	"github.com/staffdeck/staffdeck-backend-go/internal/domain/assignment"
	"github.com/staffdeck/staffdeck-backend-go/internal/domain/event"
)

// NormalizeEventStatus returns the status an event should report at the
// given wall-clock time: an event past its end that was not cancelled
// counts as completed. Callers inject now so the result stays
// deterministic in tests.
func NormalizeEventStatus(ev event.Event, now time.Time) event.Status {
	if ev.Status == event.StatusCancelled {
		return ev.Status
	}
	if ev.EndAt.Before(now) {
		return event.StatusCompleted
	}
	return ev.Status
}

// NormalizeAttendance applies the attendance default for finished
// events: unset attendance on a non-cancelled event that already ended
// becomes present. Explicitly recorded statuses are never touched.
func NormalizeAttendance(ev event.Event, status assignment.AttendanceStatus, now time.Time) assignment.AttendanceStatus {
	if status != assignment.AttendanceUnset && status != "" {
		return status
	}
	if ev.Status == event.StatusCancelled {
		return assignment.AttendanceUnset
	}
	if ev.EndAt.Before(now) {
		return assignment.AttendancePresent
	}
	return assignment.AttendanceUnset
}
