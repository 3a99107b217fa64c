package assignment

import (
	"context"
	"time"
)

type AssignmentRepository interface {
	GetByID(ctx context.Context, id string) (Assignment, error)
	ExistsByEventAndOperator(ctx context.Context, eventID, operatorID string) (bool, error)
	Create(ctx context.Context, newAssignment Assignment) (Assignment, error)
	Update(ctx context.Context, id string, req UpdateAssignmentRequest) error
	ListByEventID(ctx context.Context, eventID string) ([]Assignment, error)
	ListByOperatorID(ctx context.Context, operatorID string) ([]Assignment, error)
	SetAttendance(ctx context.Context, id string, status AttendanceStatus) error
	SetCheckIn(ctx context.Context, id string, at time.Time, status AttendanceStatus) error
	SetCheckOut(ctx context.Context, id string, at time.Time) error
	SoftDelete(ctx context.Context, id string) error
}
