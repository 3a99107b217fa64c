package assignment

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffdeck/staffdeck-backend-go/internal/pkg/validator"
)

type CreateAssignmentRequest struct {
	EventID         string           `json:"-"`
	OperatorID      string           `json:"operator_id"`
	HourlyRateCost  *decimal.Decimal `json:"hourly_rate_cost"`
	HourlyRateSell  *decimal.Decimal `json:"hourly_rate_sell"`
	MealAllowance   *decimal.Decimal `json:"meal_allowance"`
	TravelAllowance *decimal.Decimal `json:"travel_allowance"`
	Notes           *string          `json:"notes"`
}

func (r *CreateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.OperatorID) {
		errs = append(errs, validator.ValidationError{
			Field:   "operator_id",
			Message: "operator_id is required",
		})
	}
	if r.HourlyRateCost != nil && r.HourlyRateCost.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate_cost",
			Message: "hourly_rate_cost cannot be negative",
		})
	}
	if r.HourlyRateSell != nil && r.HourlyRateSell.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate_sell",
			Message: "hourly_rate_sell cannot be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateAssignmentRequest struct {
	ID                 string           `json:"-"`
	HourlyRateCost     *decimal.Decimal `json:"hourly_rate_cost"`
	HourlyRateSell     *decimal.Decimal `json:"hourly_rate_sell"`
	GrossHoursOverride *float64         `json:"gross_hours_override"`
	NetHoursOverride   *float64         `json:"net_hours_override"`
	ActualHours        *float64         `json:"actual_hours"`
	MealAllowance      *decimal.Decimal `json:"meal_allowance"`
	TravelAllowance    *decimal.Decimal `json:"travel_allowance"`
	Notes              *string          `json:"notes"`
}

func (r *UpdateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.GrossHoursOverride != nil && *r.GrossHoursOverride < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "gross_hours_override",
			Message: "gross_hours_override cannot be negative",
		})
	}
	if r.NetHoursOverride != nil && *r.NetHoursOverride < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "net_hours_override",
			Message: "net_hours_override cannot be negative",
		})
	}
	if r.ActualHours != nil && *r.ActualHours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "actual_hours",
			Message: "actual_hours cannot be negative",
		})
	}
	if r.HourlyRateCost != nil && r.HourlyRateCost.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate_cost",
			Message: "hourly_rate_cost cannot be negative",
		})
	}
	if r.HourlyRateSell != nil && r.HourlyRateSell.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate_sell",
			Message: "hourly_rate_sell cannot be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SetAttendanceRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *SetAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, AttendanceStatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(AttendanceStatusValues, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AssignmentResponse struct {
	ID                 string           `json:"id"`
	EventID            string           `json:"event_id"`
	EventTitle         *string          `json:"event_title,omitempty"`
	OperatorID         string           `json:"operator_id"`
	OperatorName       *string          `json:"operator_name,omitempty"`
	HourlyRateCost     *decimal.Decimal `json:"hourly_rate_cost,omitempty"`
	HourlyRateSell     *decimal.Decimal `json:"hourly_rate_sell,omitempty"`
	GrossHoursOverride *float64         `json:"gross_hours_override,omitempty"`
	NetHoursOverride   *float64         `json:"net_hours_override,omitempty"`
	ActualHours        *float64         `json:"actual_hours,omitempty"`
	AttendanceStatus   string           `json:"attendance_status"`
	CheckInAt          *string          `json:"check_in_at,omitempty"`
	CheckOutAt         *string          `json:"check_out_at,omitempty"`
	MealAllowance      *decimal.Decimal `json:"meal_allowance,omitempty"`
	TravelAllowance    *decimal.Decimal `json:"travel_allowance,omitempty"`
	Notes              *string          `json:"notes,omitempty"`
	CreatedAt          string           `json:"created_at"`
	UpdatedAt          string           `json:"updated_at"`
}

func ToAssignmentResponse(a Assignment) AssignmentResponse {
	var checkIn, checkOut *string
	if a.CheckInAt != nil {
		s := a.CheckInAt.Format(time.RFC3339)
		checkIn = &s
	}
	if a.CheckOutAt != nil {
		s := a.CheckOutAt.Format(time.RFC3339)
		checkOut = &s
	}

	return AssignmentResponse{
		ID:                 a.ID,
		EventID:            a.EventID,
		EventTitle:         a.EventTitle,
		OperatorID:         a.OperatorID,
		OperatorName:       a.OperatorName,
		HourlyRateCost:     a.HourlyRateCost,
		HourlyRateSell:     a.HourlyRateSell,
		GrossHoursOverride: a.GrossHoursOverride,
		NetHoursOverride:   a.NetHoursOverride,
		ActualHours:        a.ActualHours,
		AttendanceStatus:   string(a.AttendanceStatus),
		CheckInAt:          checkIn,
		CheckOutAt:         checkOut,
		MealAllowance:      a.MealAllowance,
		TravelAllowance:    a.TravelAllowance,
		Notes:              a.Notes,
		CreatedAt:          a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          a.UpdatedAt.Format(time.RFC3339),
	}
}
