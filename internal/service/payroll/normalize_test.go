package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/staffdeck/staffdeck-backend-go/internal/domain/assignment"
	"github.com/staffdeck/staffdeck-backend-go/internal/domain/event"
)

func TestNormalizeEventStatus(t *testing.T) {
	now := date(2024, time.March, 10, 12, 0)

	past := event.Event{
		Status: event.StatusConfirmed,
		EndAt:  date(2024, time.March, 8, 18, 0),
	}
	assert.Equal(t, event.StatusCompleted, NormalizeEventStatus(past, now))

	// Cancelled is terminal, the clock never promotes it.
	past.Status = event.StatusCancelled
	assert.Equal(t, event.StatusCancelled, NormalizeEventStatus(past, now))

	future := event.Event{
		Status: event.StatusConfirmed,
		EndAt:  date(2024, time.March, 12, 18, 0),
	}
	assert.Equal(t, event.StatusConfirmed, NormalizeEventStatus(future, now))

	draft := event.Event{
		Status: event.StatusDraft,
		EndAt:  date(2024, time.March, 12, 18, 0),
	}
	assert.Equal(t, event.StatusDraft, NormalizeEventStatus(draft, now))
}

func TestNormalizeAttendance(t *testing.T) {
	now := date(2024, time.March, 10, 12, 0)

	ended := event.Event{
		Status: event.StatusConfirmed,
		EndAt:  date(2024, time.March, 8, 18, 0),
	}
	running := event.Event{
		Status: event.StatusConfirmed,
		EndAt:  date(2024, time.March, 12, 18, 0),
	}
	cancelled := event.Event{
		Status: event.StatusCancelled,
		EndAt:  date(2024, time.March, 8, 18, 0),
	}

	// Unset on a finished event defaults to present.
	assert.Equal(t, assignment.AttendancePresent, NormalizeAttendance(ended, assignment.AttendanceUnset, now))
	assert.Equal(t, assignment.AttendancePresent, NormalizeAttendance(ended, "", now))

	// Unset stays unset while the event is still running or cancelled.
	assert.Equal(t, assignment.AttendanceUnset, NormalizeAttendance(running, assignment.AttendanceUnset, now))
	assert.Equal(t, assignment.AttendanceUnset, NormalizeAttendance(cancelled, assignment.AttendanceUnset, now))

	// Recorded statuses are never rewritten.
	assert.Equal(t, assignment.AttendanceAbsent, NormalizeAttendance(ended, assignment.AttendanceAbsent, now))
	assert.Equal(t, assignment.AttendanceLate, NormalizeAttendance(ended, assignment.AttendanceLate, now))
	assert.Equal(t, assignment.AttendanceCompleted, NormalizeAttendance(running, assignment.AttendanceCompleted, now))
}
