package event

import (
	"strings"
	"time"

	"github.com/staffdeck/staffdeck-backend-go/internal/pkg/validator"
)

type ShiftTemplateRequest struct {
	DayToken  string `json:"day_token"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func (r *ShiftTemplateRequest) validate(prefix string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.DayToken, DayTokenValues) {
		errs = append(errs, validator.ValidationError{
			Field:   prefix + ".day_token",
			Message: "day_token must be one of: " + strings.Join(DayTokenValues, ", "),
		})
	}
	if !validator.IsValidClock(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   prefix + ".start_time",
			Message: "start_time must be in HH:MM format",
		})
	}
	if !validator.IsValidClock(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   prefix + ".end_time",
			Message: "end_time must be in HH:MM format",
		})
	}

	return errs
}

type CreateEventRequest struct {
	ClientID       string                 `json:"client_id"`
	Title          string                 `json:"title"`
	Location       *string                `json:"location"`
	StartAt        string                 `json:"start_at"`
	EndAt          string                 `json:"end_at"`
	BreakStart     *string                `json:"break_start"`
	BreakEnd       *string                `json:"break_end"`
	Status         *string                `json:"status"`
	Notes          *string                `json:"notes"`
	ShiftTemplates []ShiftTemplateRequest `json:"shift_templates"`
}

func (r *CreateEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ClientID) {
		errs = append(errs, validator.ValidationError{
			Field:   "client_id",
			Message: "client_id is required",
		})
	}
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	startAt, startOK := validator.IsValidDateTime(r.StartAt)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_at",
			Message: "start_at must be a valid ISO8601 timestamp",
		})
	}
	endAt, endOK := validator.IsValidDateTime(r.EndAt)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_at",
			Message: "end_at must be a valid ISO8601 timestamp",
		})
	}
	if startOK && endOK && !endAt.After(startAt) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_at",
			Message: "end_at must be after start_at",
		})
	}

	if r.BreakStart != nil && !validator.IsValidClock(*r.BreakStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "break_start",
			Message: "break_start must be in HH:MM format",
		})
	}
	if r.BreakEnd != nil && !validator.IsValidClock(*r.BreakEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "break_end",
			Message: "break_end must be in HH:MM format",
		})
	}
	if (r.BreakStart == nil) != (r.BreakEnd == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "break_start",
			Message: "break_start and break_end must be set together",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(StatusValues, ", "),
		})
	}

	for i := range r.ShiftTemplates {
		errs = append(errs, r.ShiftTemplates[i].validate("shift_templates["+validator.Itoa(i)+"]")...)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEventRequest struct {
	ID             string                  `json:"-"`
	ClientID       *string                 `json:"client_id"`
	Title          *string                 `json:"title"`
	Location       *string                 `json:"location"`
	StartAt        *string                 `json:"start_at"`
	EndAt          *string                 `json:"end_at"`
	BreakStart     *string                 `json:"break_start"`
	BreakEnd       *string                 `json:"break_end"`
	Status         *string                 `json:"status"`
	Notes          *string                 `json:"notes"`
	ShiftTemplates *[]ShiftTemplateRequest `json:"shift_templates"`
}

func (r *UpdateEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title cannot be empty",
		})
	}
	if r.StartAt != nil {
		if _, ok := validator.IsValidDateTime(*r.StartAt); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_at",
				Message: "start_at must be a valid ISO8601 timestamp",
			})
		}
	}
	if r.EndAt != nil {
		if _, ok := validator.IsValidDateTime(*r.EndAt); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_at",
				Message: "end_at must be a valid ISO8601 timestamp",
			})
		}
	}
	if r.BreakStart != nil && *r.BreakStart != "" && !validator.IsValidClock(*r.BreakStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "break_start",
			Message: "break_start must be in HH:MM format",
		})
	}
	if r.BreakEnd != nil && *r.BreakEnd != "" && !validator.IsValidClock(*r.BreakEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "break_end",
			Message: "break_end must be in HH:MM format",
		})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(StatusValues, ", "),
		})
	}
	if r.ShiftTemplates != nil {
		for i := range *r.ShiftTemplates {
			errs = append(errs, (*r.ShiftTemplates)[i].validate("shift_templates["+validator.Itoa(i)+"]")...)
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ShiftTemplateResponse struct {
	ID        string `json:"id"`
	DayToken  string `json:"day_token"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Position  int    `json:"position"`
}

type EventResponse struct {
	ID             string                  `json:"id"`
	ClientID       string                  `json:"client_id"`
	ClientName     *string                 `json:"client_name,omitempty"`
	Title          string                  `json:"title"`
	Location       *string                 `json:"location,omitempty"`
	StartAt        string                  `json:"start_at"`
	EndAt          string                  `json:"end_at"`
	BreakStart     *string                 `json:"break_start,omitempty"`
	BreakEnd       *string                 `json:"break_end,omitempty"`
	Status         string                  `json:"status"`
	Notes          *string                 `json:"notes,omitempty"`
	ShiftTemplates []ShiftTemplateResponse `json:"shift_templates"`
	CreatedAt      string                  `json:"created_at"`
	UpdatedAt      string                  `json:"updated_at"`
}

type ListEventResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	Events     []EventResponse `json:"events"`
}

type EventFilter struct {
	ClientID *string    `json:"client_id,omitempty"`
	Status   *string    `json:"status,omitempty"`
	From     *time.Time `json:"from,omitempty"`
	To       *time.Time `json:"to,omitempty"`
	Page     int        `json:"page"`
	Limit    int        `json:"limit"`
}

func (f *EventFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && !validator.IsInSlice(*f.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(StatusValues, ", "),
		})
	}
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

// CalendarDay groups the events visible on one calendar date.
type CalendarDay struct {
	Date   string          `json:"date"`
	Events []EventResponse `json:"events"`
}

type CalendarResponse struct {
	Year  int           `json:"year"`
	Month int           `json:"month"`
	Days  []CalendarDay `json:"days"`
}

func ToShiftTemplateResponse(s ShiftTemplate) ShiftTemplateResponse {
	return ShiftTemplateResponse{
		ID:        s.ID,
		DayToken:  string(s.DayToken),
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Position:  s.Position,
	}
}

func ToEventResponse(e Event) EventResponse {
	templates := make([]ShiftTemplateResponse, 0, len(e.ShiftTemplates))
	for _, s := range e.ShiftTemplates {
		templates = append(templates, ToShiftTemplateResponse(s))
	}

	return EventResponse{
		ID:             e.ID,
		ClientID:       e.ClientID,
		ClientName:     e.ClientName,
		Title:          e.Title,
		Location:       e.Location,
		StartAt:        e.StartAt.Format(time.RFC3339),
		EndAt:          e.EndAt.Format(time.RFC3339),
		BreakStart:     e.BreakStart,
		BreakEnd:       e.BreakEnd,
		Status:         string(e.Status),
		Notes:          e.Notes,
		ShiftTemplates: templates,
		CreatedAt:      e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      e.UpdatedAt.Format(time.RFC3339),
	}
}
