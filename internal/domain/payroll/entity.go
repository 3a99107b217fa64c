package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/staffdeck/staffdeck-backend-go/internal/domain/assignment"
)

// Calculation is the derived payroll record for one assignment. It is
// never persisted; it is recomputed from the event and assignment each
// time it is needed.
type Calculation struct {
	AssignmentID     string
	EventID          string
	OperatorID       string
	OperatorName     string
	GrossHours       float64
	NetHours         float64
	EffectiveHours   float64
	HourlyRateCost   decimal.Decimal
	HourlyRateSell   decimal.Decimal
	Compensation     decimal.Decimal
	MealAllowance    decimal.Decimal
	TravelAllowance  decimal.Decimal
	TotalRevenue     decimal.Decimal
	AttendanceStatus assignment.AttendanceStatus
}

// Summary aggregates a set of calculations. Only entries whose
// attendance status is payable (present, late, completed) contribute to
// the sums; the rest are counted but excluded.
type Summary struct {
	TotalGrossHours     float64
	TotalEffectiveHours float64
	TotalCompensation   decimal.Decimal
	TotalAllowances     decimal.Decimal
	TotalRevenue        decimal.Decimal
	PayableCount        int
	ExcludedCount       int
}
