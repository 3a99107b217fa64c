package assignment

import (
	"context"
	"fmt"
	"time"

	"github.com/staffdeck/staffdeck-backend-go/internal/domain/assignment"
	"github.com/staffdeck/staffdeck-backend-go/internal/domain/event"
	"github.com/staffdeck/staffdeck-backend-go/internal/domain/operator"
	"github.com/staffdeck/staffdeck-backend-go/internal/service/payroll"
)

// checkInGrace is how long after the scheduled shift start a check-in
// still counts as present rather than late.
const checkInGrace = 15 * time.Minute

type AssignmentServiceImpl struct {
	assignmentRepo assignment.AssignmentRepository
	eventRepo      event.EventRepository
	operatorRepo   operator.OperatorRepository
	now            func() time.Time
}

func NewAssignmentService(
	assignmentRepo assignment.AssignmentRepository,
	eventRepo event.EventRepository,
	operatorRepo operator.OperatorRepository,
) assignment.AssignmentService {
	return &AssignmentServiceImpl{
		assignmentRepo: assignmentRepo,
		eventRepo:      eventRepo,
		operatorRepo:   operatorRepo,
		now:            time.Now,
	}
}

func (s *AssignmentServiceImpl) CreateAssignment(ctx context.Context, req assignment.CreateAssignmentRequest) (assignment.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return assignment.AssignmentResponse{}, err
	}

	ev, err := s.eventRepo.GetByID(ctx, req.EventID)
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}
	if ev.Status == event.StatusCancelled {
		return assignment.AssignmentResponse{}, event.ErrEventCancelled
	}

	op, err := s.operatorRepo.GetByID(ctx, req.OperatorID)
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}
	if !op.IsActive {
		return assignment.AssignmentResponse{}, operator.ErrOperatorInactive
	}

	exists, err := s.assignmentRepo.ExistsByEventAndOperator(ctx, req.EventID, req.OperatorID)
	if err != nil {
		return assignment.AssignmentResponse{}, fmt.Errorf("failed to check existing assignment: %w", err)
	}
	if exists {
		return assignment.AssignmentResponse{}, assignment.ErrAlreadyAssigned
	}

	rateCost := req.HourlyRateCost
	if rateCost == nil {
		rateCost = op.DefaultRateCost
	}
	rateSell := req.HourlyRateSell
	if rateSell == nil {
		rateSell = op.DefaultRateSell
	}

	created, err := s.assignmentRepo.Create(ctx, assignment.Assignment{
		EventID:          req.EventID,
		OperatorID:       req.OperatorID,
		HourlyRateCost:   rateCost,
		HourlyRateSell:   rateSell,
		MealAllowance:    req.MealAllowance,
		TravelAllowance:  req.TravelAllowance,
		AttendanceStatus: assignment.AttendanceUnset,
		Notes:            req.Notes,
	})
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}

	name := op.FullName()
	created.OperatorName = &name
	created.EventTitle = &ev.Title

	return assignment.ToAssignmentResponse(created), nil
}

func (s *AssignmentServiceImpl) GetAssignment(ctx context.Context, id string) (assignment.AssignmentResponse, error) {
	found, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}

	return assignment.ToAssignmentResponse(found), nil
}

func (s *AssignmentServiceImpl) UpdateAssignment(ctx context.Context, req assignment.UpdateAssignmentRequest) (assignment.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return assignment.AssignmentResponse{}, err
	}

	if _, err := s.assignmentRepo.GetByID(ctx, req.ID); err != nil {
		return assignment.AssignmentResponse{}, err
	}

	if err := s.assignmentRepo.Update(ctx, req.ID, req); err != nil {
		return assignment.AssignmentResponse{}, err
	}

	return s.GetAssignment(ctx, req.ID)
}

func (s *AssignmentServiceImpl) DeleteAssignment(ctx context.Context, id string) error {
	if _, err := s.assignmentRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return s.assignmentRepo.SoftDelete(ctx, id)
}

func (s *AssignmentServiceImpl) ListByEvent(ctx context.Context, eventID string) ([]assignment.AssignmentResponse, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}

	assignments, err := s.assignmentRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments for event %s: %w", eventID, err)
	}

	result := make([]assignment.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		result = append(result, assignment.ToAssignmentResponse(a))
	}
	return result, nil
}

func (s *AssignmentServiceImpl) CheckIn(ctx context.Context, id string) (assignment.AssignmentResponse, error) {
	current, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}
	if current.CheckInAt != nil {
		return assignment.AssignmentResponse{}, assignment.ErrAlreadyCheckedIn
	}

	ev, err := s.eventRepo.GetByID(ctx, current.EventID)
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}
	if ev.Status == event.StatusCancelled {
		return assignment.AssignmentResponse{}, assignment.ErrEventCancelled
	}

	now := s.now()
	status := assignment.AttendancePresent
	if now.After(scheduledStart(ev, now).Add(checkInGrace)) {
		status = assignment.AttendanceLate
	}

	if err := s.assignmentRepo.SetCheckIn(ctx, id, now, status); err != nil {
		return assignment.AssignmentResponse{}, err
	}

	return s.GetAssignment(ctx, id)
}

func (s *AssignmentServiceImpl) CheckOut(ctx context.Context, id string) (assignment.AssignmentResponse, error) {
	current, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}
	if current.CheckInAt == nil {
		return assignment.AssignmentResponse{}, assignment.ErrNotCheckedIn
	}

	if err := s.assignmentRepo.SetCheckOut(ctx, id, s.now()); err != nil {
		return assignment.AssignmentResponse{}, err
	}

	return s.GetAssignment(ctx, id)
}

func (s *AssignmentServiceImpl) SetAttendance(ctx context.Context, req assignment.SetAttendanceRequest) (assignment.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return assignment.AssignmentResponse{}, err
	}

	current, err := s.assignmentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}

	ev, err := s.eventRepo.GetByID(ctx, current.EventID)
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}
	if ev.Status == event.StatusCancelled {
		return assignment.AssignmentResponse{}, assignment.ErrEventCancelled
	}

	if err := s.assignmentRepo.SetAttendance(ctx, req.ID, assignment.AttendanceStatus(req.Status)); err != nil {
		return assignment.AssignmentResponse{}, err
	}

	return s.GetAssignment(ctx, req.ID)
}

// scheduledStart resolves when work begins on the given day: the
// earliest shift template matching that weekday, or the event start
// when no template applies. Day-token matching and clock placement go
// through the payroll helpers so check-in grace and hours calculation
// share one set of semantics.
func scheduledStart(ev event.Event, day time.Time) time.Time {
	earliest := time.Time{}
	for _, tpl := range ev.ShiftTemplates {
		if payroll.MatchingDayCount(tpl.DayToken, day, day) == 0 {
			continue
		}
		start := payroll.CombineDateAndTime(day, tpl.StartTime)
		if earliest.IsZero() || start.Before(earliest) {
			earliest = start
		}
	}
	if !earliest.IsZero() {
		return earliest
	}
	return ev.StartAt
}
