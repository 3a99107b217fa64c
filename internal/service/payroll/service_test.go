package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdeck/staffdeck-backend-go/internal/domain/assignment"
	"github.com/staffdeck/staffdeck-backend-go/internal/domain/event"
)

type stubEventRepo struct {
	events map[string]event.Event
}

func (r *stubEventRepo) GetByID(ctx context.Context, id string) (event.Event, error) {
	ev, ok := r.events[id]
	if !ok {
		return event.Event{}, event.ErrEventNotFound
	}
	return ev, nil
}

func (r *stubEventRepo) Create(ctx context.Context, newEvent event.Event) (event.Event, error) {
	return newEvent, nil
}

func (r *stubEventRepo) Update(ctx context.Context, id string, req event.UpdateEventRequest) error {
	return nil
}

func (r *stubEventRepo) List(ctx context.Context, filter event.EventFilter) ([]event.Event, int64, error) {
	return nil, 0, nil
}

func (r *stubEventRepo) ListBetween(ctx context.Context, from, to time.Time) ([]event.Event, error) {
	var result []event.Event
	for _, ev := range r.events {
		if ev.StartAt.Before(to) && ev.EndAt.After(from) {
			result = append(result, ev)
		}
	}
	return result, nil
}

func (r *stubEventRepo) SoftDelete(ctx context.Context, id string) error { return nil }

func (r *stubEventRepo) ReplaceShiftTemplates(ctx context.Context, eventID string, templates []event.ShiftTemplate) error {
	return nil
}

func (r *stubEventRepo) GetShiftTemplates(ctx context.Context, eventID string) ([]event.ShiftTemplate, error) {
	return nil, nil
}

type stubAssignmentRepo struct {
	byEvent map[string][]assignment.Assignment
}

func (r *stubAssignmentRepo) GetByID(ctx context.Context, id string) (assignment.Assignment, error) {
	return assignment.Assignment{}, assignment.ErrAssignmentNotFound
}

func (r *stubAssignmentRepo) ExistsByEventAndOperator(ctx context.Context, eventID, operatorID string) (bool, error) {
	return false, nil
}

func (r *stubAssignmentRepo) Create(ctx context.Context, newAssignment assignment.Assignment) (assignment.Assignment, error) {
	return newAssignment, nil
}

func (r *stubAssignmentRepo) Update(ctx context.Context, id string, req assignment.UpdateAssignmentRequest) error {
	return nil
}

func (r *stubAssignmentRepo) ListByEventID(ctx context.Context, eventID string) ([]assignment.Assignment, error) {
	return r.byEvent[eventID], nil
}

func (r *stubAssignmentRepo) ListByOperatorID(ctx context.Context, operatorID string) ([]assignment.Assignment, error) {
	return nil, nil
}

func (r *stubAssignmentRepo) SetAttendance(ctx context.Context, id string, status assignment.AttendanceStatus) error {
	return nil
}

func (r *stubAssignmentRepo) SetCheckIn(ctx context.Context, id string, at time.Time, status assignment.AttendanceStatus) error {
	return nil
}

func (r *stubAssignmentRepo) SetCheckOut(ctx context.Context, id string, at time.Time) error {
	return nil
}

func (r *stubAssignmentRepo) SoftDelete(ctx context.Context, id string) error { return nil }

func newTestService(events map[string]event.Event, byEvent map[string][]assignment.Assignment, now time.Time) *PayrollServiceImpl {
	return &PayrollServiceImpl{
		eventRepo:      &stubEventRepo{events: events},
		assignmentRepo: &stubAssignmentRepo{byEvent: byEvent},
		engine:         NewEngine(DefaultEngineConfig()),
		now:            func() time.Time { return now },
	}
}

func TestEventPayroll(t *testing.T) {
	ev := weekEvent()
	ev.Title = "Spring fair crew"
	ev.BreakStart = strPtr("13:00")
	ev.BreakEnd = strPtr("14:00")
	ev.ShiftTemplates = []event.ShiftTemplate{
		{DayToken: event.DayWeekdays, StartTime: "09:00", EndTime: "18:00"},
	}

	alice := "Alice Rossi"
	bob := "Bob Verdi"
	assignments := []assignment.Assignment{
		{
			ID:               "as-1",
			EventID:          ev.ID,
			OperatorID:       "op-1",
			OperatorName:     &alice,
			HourlyRateCost:   decPtr("15"),
			AttendanceStatus: assignment.AttendancePresent,
		},
		{
			ID:               "as-2",
			EventID:          ev.ID,
			OperatorID:       "op-2",
			OperatorName:     &bob,
			HourlyRateCost:   decPtr("15"),
			AttendanceStatus: assignment.AttendanceAbsent,
		},
	}

	// The event is still in the future relative to now.
	now := date(2024, time.March, 1, 12, 0)
	svc := newTestService(map[string]event.Event{ev.ID: ev}, map[string][]assignment.Assignment{ev.ID: assignments}, now)

	resp, err := svc.EventPayroll(context.Background(), ev.ID)
	require.NoError(t, err)

	assert.Equal(t, "Spring fair crew", resp.EventTitle)
	assert.Equal(t, string(event.StatusConfirmed), resp.EventStatus)
	require.Len(t, resp.Calculations, 2)

	assert.Equal(t, "Alice Rossi", resp.Calculations[0].OperatorName)
	assert.Equal(t, 45.0, resp.Calculations[0].GrossHours)
	assert.Equal(t, 40.0, resp.Calculations[0].NetHours)
	assert.Equal(t, "600", resp.Calculations[0].Compensation.String())

	// The absent operator stays visible but out of the totals.
	assert.Equal(t, 1, resp.Summary.PayableCount)
	assert.Equal(t, 1, resp.Summary.ExcludedCount)
	assert.Equal(t, "600", resp.Summary.TotalCompensation.String())
}

func TestEventPayroll_AttendanceDefaultAfterEventEnds(t *testing.T) {
	ev := weekEvent()

	assignments := []assignment.Assignment{
		{ID: "as-1", EventID: ev.ID, OperatorID: "op-1", AttendanceStatus: assignment.AttendanceUnset},
	}

	now := date(2024, time.March, 20, 12, 0)
	svc := newTestService(map[string]event.Event{ev.ID: ev}, map[string][]assignment.Assignment{ev.ID: assignments}, now)

	resp, err := svc.EventPayroll(context.Background(), ev.ID)
	require.NoError(t, err)

	assert.Equal(t, string(event.StatusCompleted), resp.EventStatus)
	require.Len(t, resp.Calculations, 1)
	assert.Equal(t, string(assignment.AttendancePresent), resp.Calculations[0].AttendanceStatus,
		"unset attendance on a finished event defaults to present")
	assert.Equal(t, 1, resp.Summary.PayableCount)
}

func TestEventPayroll_EventNotFound(t *testing.T) {
	svc := newTestService(map[string]event.Event{}, nil, date(2024, time.March, 1, 0, 0))

	_, err := svc.EventPayroll(context.Background(), "missing")
	assert.ErrorIs(t, err, event.ErrEventNotFound)
}

func TestPeriodSummary(t *testing.T) {
	ev1 := weekEvent()
	ev2 := event.Event{
		ID:      "ev-2",
		StartAt: date(2024, time.March, 16, 10, 0), // Saturday
		EndAt:   date(2024, time.March, 16, 18, 0),
		Status:  event.StatusConfirmed,
	}

	events := map[string]event.Event{ev1.ID: ev1, ev2.ID: ev2}
	byEvent := map[string][]assignment.Assignment{
		ev1.ID: {
			{ID: "as-1", EventID: ev1.ID, OperatorID: "op-1", HourlyRateCost: decPtr("10"), ActualHours: floatPtr(40), AttendanceStatus: assignment.AttendancePresent},
		},
		ev2.ID: {
			{ID: "as-2", EventID: ev2.ID, OperatorID: "op-2", HourlyRateCost: decPtr("20"), AttendanceStatus: assignment.AttendanceCompleted},
		},
	}

	now := date(2024, time.April, 1, 0, 0)
	svc := newTestService(events, byEvent, now)

	resp, err := svc.PeriodSummary(context.Background(),
		date(2024, time.March, 1, 0, 0), date(2024, time.April, 1, 0, 0))
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Events)
	assert.Equal(t, 2, resp.Summary.PayableCount)
	// 40h x 10 for the first event, 8h x 20 for the second.
	assert.Equal(t, "560", resp.Summary.TotalCompensation.String())
}
