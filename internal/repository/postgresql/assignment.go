package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/staffdeck/staffdeck-backend-go/internal/domain/assignment"
	"github.com/staffdeck/staffdeck-backend-go/internal/pkg/database"
)

type assignmentRepositoryImpl struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) assignment.AssignmentRepository {
	return &assignmentRepositoryImpl{db: db}
}

const assignmentColumns = `a.id, a.event_id, a.operator_id, a.hourly_rate_cost, a.hourly_rate_sell,
	a.gross_hours_override, a.net_hours_override, a.actual_hours, a.attendance_status,
	a.check_in_at, a.check_out_at, a.meal_allowance, a.travel_allowance, a.notes,
	a.created_at, a.updated_at`

func scanAssignment(row pgx.Row) (assignment.Assignment, error) {
	var a assignment.Assignment
	var operatorName, eventTitle string
	err := row.Scan(&a.ID, &a.EventID, &a.OperatorID, &a.HourlyRateCost, &a.HourlyRateSell,
		&a.GrossHoursOverride, &a.NetHoursOverride, &a.ActualHours, &a.AttendanceStatus,
		&a.CheckInAt, &a.CheckOutAt, &a.MealAllowance, &a.TravelAllowance, &a.Notes,
		&a.CreatedAt, &a.UpdatedAt, &operatorName, &eventTitle)
	if err != nil {
		return assignment.Assignment{}, err
	}
	a.OperatorName = &operatorName
	a.EventTitle = &eventTitle
	return a, nil
}

const assignmentJoin = `
	FROM assignments a
	JOIN operators o ON o.id = a.operator_id
	JOIN events e ON e.id = a.event_id
`

// GetByID implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) GetByID(ctx context.Context, id string) (assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + assignmentColumns + `, o.first_name || ' ' || o.last_name, e.title` +
		assignmentJoin + `WHERE a.id = $1 AND a.deleted_at IS NULL`

	found, err := scanAssignment(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return assignment.Assignment{}, assignment.ErrAssignmentNotFound
		}
		return assignment.Assignment{}, fmt.Errorf("failed to get assignment with id %s: %w", id, err)
	}
	return found, nil
}

// ExistsByEventAndOperator implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) ExistsByEventAndOperator(ctx context.Context, eventID, operatorID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM assignments
			WHERE event_id = $1 AND operator_id = $2 AND deleted_at IS NULL
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, eventID, operatorID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Create implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) Create(ctx context.Context, newAssignment assignment.Assignment) (assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO assignments (event_id, operator_id, hourly_rate_cost, hourly_rate_sell,
			attendance_status, meal_allowance, travel_allowance, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, event_id, operator_id, hourly_rate_cost, hourly_rate_sell,
			gross_hours_override, net_hours_override, actual_hours, attendance_status,
			check_in_at, check_out_at, meal_allowance, travel_allowance, notes,
			created_at, updated_at
	`

	var created assignment.Assignment
	err := q.QueryRow(ctx, query,
		newAssignment.EventID, newAssignment.OperatorID, newAssignment.HourlyRateCost,
		newAssignment.HourlyRateSell, newAssignment.AttendanceStatus, newAssignment.MealAllowance,
		newAssignment.TravelAllowance, newAssignment.Notes).
		Scan(&created.ID, &created.EventID, &created.OperatorID, &created.HourlyRateCost,
			&created.HourlyRateSell, &created.GrossHoursOverride, &created.NetHoursOverride,
			&created.ActualHours, &created.AttendanceStatus, &created.CheckInAt, &created.CheckOutAt,
			&created.MealAllowance, &created.TravelAllowance, &created.Notes,
			&created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return assignment.Assignment{}, fmt.Errorf("failed to create assignment: %w", err)
	}
	return created, nil
}

// Update implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) Update(ctx context.Context, id string, req assignment.UpdateAssignmentRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})

	if req.HourlyRateCost != nil {
		updates["hourly_rate_cost"] = *req.HourlyRateCost
	}
	if req.HourlyRateSell != nil {
		updates["hourly_rate_sell"] = *req.HourlyRateSell
	}
	if req.GrossHoursOverride != nil {
		updates["gross_hours_override"] = *req.GrossHoursOverride
	}
	if req.NetHoursOverride != nil {
		updates["net_hours_override"] = *req.NetHoursOverride
	}
	if req.ActualHours != nil {
		updates["actual_hours"] = *req.ActualHours
	}
	if req.MealAllowance != nil {
		updates["meal_allowance"] = *req.MealAllowance
	}
	if req.TravelAllowance != nil {
		updates["travel_allowance"] = *req.TravelAllowance
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+1)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	sql := "UPDATE assignments SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE id = $%d AND deleted_at IS NULL", i)
	args = append(args, id)

	var updatedID string
	if err := q.QueryRow(ctx, sql+" RETURNING id", args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return assignment.ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to update assignment with id %s: %w", id, err)
	}
	return nil
}

// ListByEventID implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) ListByEventID(ctx context.Context, eventID string) ([]assignment.Assignment, error) {
	return r.list(ctx, "a.event_id", eventID)
}

// ListByOperatorID implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) ListByOperatorID(ctx context.Context, operatorID string) ([]assignment.Assignment, error) {
	return r.list(ctx, "a.operator_id", operatorID)
}

func (r *assignmentRepositoryImpl) list(ctx context.Context, column, value string) ([]assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + assignmentColumns + `, o.first_name || ' ' || o.last_name, e.title` +
		assignmentJoin + `WHERE ` + column + ` = $1 AND a.deleted_at IS NULL
	ORDER BY o.last_name, o.first_name`

	rows, err := q.Query(ctx, query, value)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	defer rows.Close()

	var assignments []assignment.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment row: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

// SetAttendance implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) SetAttendance(ctx context.Context, id string, status assignment.AttendanceStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE assignments
		SET attendance_status = $2, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, id, status).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return assignment.ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to set attendance for assignment %s: %w", id, err)
	}
	return nil
}

// SetCheckIn implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) SetCheckIn(ctx context.Context, id string, at time.Time, status assignment.AttendanceStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE assignments
		SET check_in_at = $2, attendance_status = $3, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, id, at, status).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return assignment.ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to set check-in for assignment %s: %w", id, err)
	}
	return nil
}

// SetCheckOut implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) SetCheckOut(ctx context.Context, id string, at time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE assignments
		SET check_out_at = $2, attendance_status = $3, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, id, at, assignment.AttendanceCompleted).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return assignment.ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to set check-out for assignment %s: %w", id, err)
	}
	return nil
}

// SoftDelete implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE assignments
		SET deleted_at = now(), updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`

	var deletedID string
	if err := q.QueryRow(ctx, query, id).Scan(&deletedID); err != nil {
		if err == pgx.ErrNoRows {
			return assignment.ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to delete assignment with id %s: %w", id, err)
	}
	return nil
}
