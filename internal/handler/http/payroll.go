package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/staffdeck/staffdeck-backend-go/internal/domain/payroll"
	"github.com/staffdeck/staffdeck-backend-go/internal/handler/http/response"
	"github.com/staffdeck/staffdeck-backend-go/internal/pkg/validator"
)

type PayrollHandler interface {
	EventPayroll(w http.ResponseWriter, r *http.Request)
	PeriodSummary(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// EventPayroll implements PayrollHandler.
func (p *PayrollHandlerImpl) EventPayroll(w http.ResponseWriter, r *http.Request) {
	result, err := p.payrollService.EventPayroll(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("EventPayroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// PeriodSummary implements PayrollHandler.
func (p *PayrollHandlerImpl) PeriodSummary(w http.ResponseWriter, r *http.Request) {
	from, fromOK := parseDateParam(r.URL.Query().Get("from"))
	to, toOK := parseDateParam(r.URL.Query().Get("to"))

	var errs validator.ValidationErrors
	if !fromOK {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be a YYYY-MM-DD date",
		})
	}
	if !toOK {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be a YYYY-MM-DD date",
		})
	}
	if fromOK && toOK && !to.After(from) {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be after from",
		})
	}
	if len(errs) > 0 {
		response.HandleError(w, errs)
		return
	}

	result, err := p.payrollService.PeriodSummary(r.Context(), from, to)
	if err != nil {
		slog.Error("PeriodSummary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// parseDateParam accepts a calendar date or a full RFC3339 timestamp.
func parseDateParam(value string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	return time.Time{}, false
}
