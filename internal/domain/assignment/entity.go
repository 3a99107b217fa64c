package assignment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Assignment links one operator to one event. Rate and hour fields are
// optional overrides; when nil the payroll engine falls back to computed
// values and configured defaults.
type Assignment struct {
	ID                 string
	EventID            string
	OperatorID         string
	HourlyRateCost     *decimal.Decimal
	HourlyRateSell     *decimal.Decimal
	GrossHoursOverride *float64
	NetHoursOverride   *float64
	ActualHours        *float64
	AttendanceStatus   AttendanceStatus
	CheckInAt          *time.Time
	CheckOutAt         *time.Time
	MealAllowance      *decimal.Decimal
	TravelAllowance    *decimal.Decimal
	Notes              *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          *time.Time

	// DTO
	OperatorName *string
	EventTitle   *string
}

// AttendanceStatus is recorded by operators/admins (check-in, check-out,
// manual edits); payroll only reads the current value.
type AttendanceStatus string

const (
	AttendanceUnset     AttendanceStatus = "unset"
	AttendancePresent   AttendanceStatus = "present"
	AttendanceAbsent    AttendanceStatus = "absent"
	AttendanceLate      AttendanceStatus = "late"
	AttendanceCompleted AttendanceStatus = "completed"
)

var AttendanceStatusValues = []string{
	string(AttendanceUnset),
	string(AttendancePresent),
	string(AttendanceAbsent),
	string(AttendanceLate),
	string(AttendanceCompleted),
}

// Payable reports whether the assignment counts toward payroll totals.
// Absent and unset entries stay visible individually but are excluded
// from summary sums.
func (s AttendanceStatus) Payable() bool {
	switch s {
	case AttendancePresent, AttendanceLate, AttendanceCompleted:
		return true
	}
	return false
}
