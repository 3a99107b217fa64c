package payroll

import (
	"github.com/shopspring/decimal"
)

type CalculationResponse struct {
	AssignmentID     string          `json:"assignment_id"`
	EventID          string          `json:"event_id"`
	OperatorID       string          `json:"operator_id"`
	OperatorName     string          `json:"operator_name"`
	GrossHours       float64         `json:"gross_hours"`
	NetHours         float64         `json:"net_hours"`
	EffectiveHours   float64         `json:"effective_hours"`
	HourlyRateCost   decimal.Decimal `json:"hourly_rate_cost"`
	HourlyRateSell   decimal.Decimal `json:"hourly_rate_sell"`
	Compensation     decimal.Decimal `json:"compensation"`
	MealAllowance    decimal.Decimal `json:"meal_allowance"`
	TravelAllowance  decimal.Decimal `json:"travel_allowance"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	AttendanceStatus string          `json:"attendance_status"`
}

type SummaryResponse struct {
	TotalGrossHours     float64         `json:"total_gross_hours"`
	TotalEffectiveHours float64         `json:"total_effective_hours"`
	TotalCompensation   decimal.Decimal `json:"total_compensation"`
	TotalAllowances     decimal.Decimal `json:"total_allowances"`
	TotalRevenue        decimal.Decimal `json:"total_revenue"`
	PayableCount        int             `json:"payable_count"`
	ExcludedCount       int             `json:"excluded_count"`
}

type EventPayrollResponse struct {
	EventID      string                `json:"event_id"`
	EventTitle   string                `json:"event_title"`
	EventStatus  string                `json:"event_status"`
	Calculations []CalculationResponse `json:"calculations"`
	Summary      SummaryResponse       `json:"summary"`
}

type PeriodSummaryResponse struct {
	From    string          `json:"from"`
	To      string          `json:"to"`
	Events  int             `json:"events"`
	Summary SummaryResponse `json:"summary"`
}

func ToCalculationResponse(c Calculation) CalculationResponse {
	return CalculationResponse{
		AssignmentID:     c.AssignmentID,
		EventID:          c.EventID,
		OperatorID:       c.OperatorID,
		OperatorName:     c.OperatorName,
		GrossHours:       c.GrossHours,
		NetHours:         c.NetHours,
		EffectiveHours:   c.EffectiveHours,
		HourlyRateCost:   c.HourlyRateCost,
		HourlyRateSell:   c.HourlyRateSell,
		Compensation:     c.Compensation,
		MealAllowance:    c.MealAllowance,
		TravelAllowance:  c.TravelAllowance,
		TotalRevenue:     c.TotalRevenue,
		AttendanceStatus: string(c.AttendanceStatus),
	}
}

func ToSummaryResponse(s Summary) SummaryResponse {
	return SummaryResponse{
		TotalGrossHours:     s.TotalGrossHours,
		TotalEffectiveHours: s.TotalEffectiveHours,
		TotalCompensation:   s.TotalCompensation,
		TotalAllowances:     s.TotalAllowances,
		TotalRevenue:        s.TotalRevenue,
		PayableCount:        s.PayableCount,
		ExcludedCount:       s.ExcludedCount,
	}
}
