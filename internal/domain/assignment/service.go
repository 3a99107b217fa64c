package assignment

import "context"

// AssignmentService defines business logic for assignment and
// attendance operations
type AssignmentService interface {
	CreateAssignment(ctx context.Context, req CreateAssignmentRequest) (AssignmentResponse, error)
	GetAssignment(ctx context.Context, id string) (AssignmentResponse, error)
	UpdateAssignment(ctx context.Context, req UpdateAssignmentRequest) (AssignmentResponse, error)
	DeleteAssignment(ctx context.Context, id string) error
	ListByEvent(ctx context.Context, eventID string) ([]AssignmentResponse, error)

	// Attendance tracking. Check-in marks the operator present, or late
	// when arriving after the day's shift start plus the grace period.
	CheckIn(ctx context.Context, id string) (AssignmentResponse, error)
	CheckOut(ctx context.Context, id string) (AssignmentResponse, error)
	SetAttendance(ctx context.Context, req SetAttendanceRequest) (AssignmentResponse, error)
}
