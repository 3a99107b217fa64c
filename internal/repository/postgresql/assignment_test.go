package postgresql

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdeck/staffdeck-backend-go/internal/domain/assignment"
)

func assignmentRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "event_id", "operator_id", "hourly_rate_cost", "hourly_rate_sell",
		"gross_hours_override", "net_hours_override", "actual_hours", "attendance_status",
		"check_in_at", "check_out_at", "meal_allowance", "travel_allowance", "notes",
		"created_at", "updated_at", "operator_name", "event_title",
	})
}

func TestAssignmentRepository_GetByID(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewAssignmentRepository(db)

	now := time.Now()
	rate := decimal.NewFromInt(15)
	mock.ExpectQuery(`SELECT (.+) FROM assignments`).
		WithArgs("as-1").
		WillReturnRows(assignmentRows().
			AddRow("as-1", "ev-1", "op-1", &rate, nil, nil, nil, nil, assignment.AttendanceStatus("present"),
				nil, nil, nil, nil, nil, now, now, "Alice Rossi", "Spring fair"))

	found, err := repo.GetByID(context.Background(), "as-1")
	require.NoError(t, err)

	assert.Equal(t, assignment.AttendancePresent, found.AttendanceStatus)
	require.NotNil(t, found.HourlyRateCost)
	assert.True(t, found.HourlyRateCost.Equal(rate))
	require.NotNil(t, found.OperatorName)
	assert.Equal(t, "Alice Rossi", *found.OperatorName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentRepository_GetByID_NotFound(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewAssignmentRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM assignments`).
		WithArgs("missing").
		WillReturnRows(assignmentRows())

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, assignment.ErrAssignmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentRepository_ExistsByEventAndOperator(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewAssignmentRepository(db)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("ev-1", "op-1").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByEventAndOperator(context.Background(), "ev-1", "op-1")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentRepository_SetCheckIn(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewAssignmentRepository(db)

	at := time.Date(2024, time.March, 4, 9, 5, 0, 0, time.UTC)
	mock.ExpectQuery(`UPDATE assignments`).
		WithArgs("as-1", at, assignment.AttendanceLate).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("as-1"))

	err := repo.SetCheckIn(context.Background(), "as-1", at, assignment.AttendanceLate)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentRepository_SetCheckOut_NotFound(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewAssignmentRepository(db)

	at := time.Date(2024, time.March, 4, 18, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`UPDATE assignments`).
		WithArgs("missing", at, assignment.AttendanceCompleted).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	err := repo.SetCheckOut(context.Background(), "missing", at)
	assert.ErrorIs(t, err, assignment.ErrAssignmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentRepository_SetAttendance(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewAssignmentRepository(db)

	mock.ExpectQuery(`UPDATE assignments`).
		WithArgs("as-1", assignment.AttendanceAbsent).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("as-1"))

	err := repo.SetAttendance(context.Background(), "as-1", assignment.AttendanceAbsent)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
