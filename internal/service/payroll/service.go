package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/staffdeck/staffdeck-backend-go/internal/domain/assignment"
	"github.com/staffdeck/staffdeck-backend-go/internal/domain/event"
	"github.com/staffdeck/staffdeck-backend-go/internal/domain/payroll"
)

type PayrollServiceImpl struct {
	eventRepo      event.EventRepository
	assignmentRepo assignment.AssignmentRepository
	engine         *Engine
	now            func() time.Time
}

func NewPayrollService(
	eventRepo event.EventRepository,
	assignmentRepo assignment.AssignmentRepository,
	engine *Engine,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		eventRepo:      eventRepo,
		assignmentRepo: assignmentRepo,
		engine:         engine,
		now:            time.Now,
	}
}

func (s *PayrollServiceImpl) EventPayroll(ctx context.Context, eventID string) (payroll.EventPayrollResponse, error) {
	ev, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return payroll.EventPayrollResponse{}, err
	}

	assignments, err := s.assignmentRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return payroll.EventPayrollResponse{}, fmt.Errorf("failed to list assignments for event %s: %w", eventID, err)
	}

	now := s.now()
	calcs := s.calculate(ev, assignments, now)

	result := make([]payroll.CalculationResponse, 0, len(calcs))
	for _, c := range calcs {
		result = append(result, payroll.ToCalculationResponse(c))
	}

	return payroll.EventPayrollResponse{
		EventID:      ev.ID,
		EventTitle:   ev.Title,
		EventStatus:  string(NormalizeEventStatus(ev, now)),
		Calculations: result,
		Summary:      payroll.ToSummaryResponse(Summarize(calcs)),
	}, nil
}

func (s *PayrollServiceImpl) PeriodSummary(ctx context.Context, from, to time.Time) (payroll.PeriodSummaryResponse, error) {
	events, err := s.eventRepo.ListBetween(ctx, from, to)
	if err != nil {
		return payroll.PeriodSummaryResponse{}, fmt.Errorf("failed to list events between %s and %s: %w",
			from.Format("2006-01-02"), to.Format("2006-01-02"), err)
	}

	now := s.now()

	var all []payroll.Calculation
	for _, ev := range events {
		assignments, err := s.assignmentRepo.ListByEventID(ctx, ev.ID)
		if err != nil {
			return payroll.PeriodSummaryResponse{}, fmt.Errorf("failed to list assignments for event %s: %w", ev.ID, err)
		}
		all = append(all, s.calculate(ev, assignments, now)...)
	}

	return payroll.PeriodSummaryResponse{
		From:    from.Format("2006-01-02"),
		To:      to.Format("2006-01-02"),
		Events:  len(events),
		Summary: payroll.ToSummaryResponse(Summarize(all)),
	}, nil
}

// calculate runs the attendance default and the engine over every
// assignment of one event. The normalization happens here, outside the
// engine, so the engine itself stays free of wall-clock reads.
func (s *PayrollServiceImpl) calculate(ev event.Event, assignments []assignment.Assignment, now time.Time) []payroll.Calculation {
	calcs := make([]payroll.Calculation, 0, len(assignments))
	for _, a := range assignments {
		a.AttendanceStatus = NormalizeAttendance(ev, a.AttendanceStatus, now)
		calcs = append(calcs, s.engine.Calculate(ev, a))
	}
	return calcs
}
