package operator

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffdeck/staffdeck-backend-go/internal/pkg/validator"
)

type CreateOperatorRequest struct {
	FirstName       string           `json:"first_name"`
	LastName        string           `json:"last_name"`
	Email           string           `json:"email"`
	PhoneNumber     *string          `json:"phone_number"`
	TaxCode         *string          `json:"tax_code"`
	DefaultRateCost *decimal.Decimal `json:"default_rate_cost"`
	DefaultRateSell *decimal.Decimal `json:"default_rate_sell"`
	Notes           *string          `json:"notes"`
}

func (r *CreateOperatorRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if r.DefaultRateCost != nil && r.DefaultRateCost.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "default_rate_cost",
			Message: "default_rate_cost cannot be negative",
		})
	}
	if r.DefaultRateSell != nil && r.DefaultRateSell.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "default_rate_sell",
			Message: "default_rate_sell cannot be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateOperatorRequest struct {
	ID              string           `json:"-"`
	FirstName       *string          `json:"first_name"`
	LastName        *string          `json:"last_name"`
	Email           *string          `json:"email"`
	PhoneNumber     *string          `json:"phone_number"`
	TaxCode         *string          `json:"tax_code"`
	DefaultRateCost *decimal.Decimal `json:"default_rate_cost"`
	DefaultRateSell *decimal.Decimal `json:"default_rate_sell"`
	IsActive        *bool            `json:"is_active"`
	Notes           *string          `json:"notes"`
}

func (r *UpdateOperatorRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name cannot be empty",
		})
	}
	if r.LastName != nil && validator.IsEmpty(*r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name cannot be empty",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type OperatorResponse struct {
	ID              string           `json:"id"`
	FirstName       string           `json:"first_name"`
	LastName        string           `json:"last_name"`
	Email           string           `json:"email"`
	PhoneNumber     *string          `json:"phone_number,omitempty"`
	TaxCode         *string          `json:"tax_code,omitempty"`
	DefaultRateCost *decimal.Decimal `json:"default_rate_cost,omitempty"`
	DefaultRateSell *decimal.Decimal `json:"default_rate_sell,omitempty"`
	IsActive        bool             `json:"is_active"`
	Notes           *string          `json:"notes,omitempty"`
	CreatedAt       string           `json:"created_at"`
	UpdatedAt       string           `json:"updated_at"`
}

type ListOperatorResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	Operators  []OperatorResponse `json:"operators"`
}

type OperatorFilter struct {
	Search     *string `json:"search,omitempty"`
	ActiveOnly bool    `json:"active_only"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
}

func (f *OperatorFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}
	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 || f.Limit > 100 {
		f.Limit = 20
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func ToOperatorResponse(o Operator) OperatorResponse {
	return OperatorResponse{
		ID:              o.ID,
		FirstName:       o.FirstName,
		LastName:        o.LastName,
		Email:           o.Email,
		PhoneNumber:     o.PhoneNumber,
		TaxCode:         o.TaxCode,
		DefaultRateCost: o.DefaultRateCost,
		DefaultRateSell: o.DefaultRateSell,
		IsActive:        o.IsActive,
		Notes:           o.Notes,
		CreatedAt:       o.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       o.UpdatedAt.Format(time.RFC3339),
	}
}
