package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/staffdeck/staffdeck-backend-go/internal/domain/report"
	"github.com/staffdeck/staffdeck-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	ExportEventPayroll(w http.ResponseWriter, r *http.Request)
	Payslip(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// ExportEventPayroll implements ReportHandler. The format query
// parameter selects csv (default) or xlsx.
func (h *ReportHandlerImpl) ExportEventPayroll(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")

	var (
		file report.ExportFile
		err  error
	)
	switch format := r.URL.Query().Get("format"); format {
	case "", "csv":
		file, err = h.reportService.EventPayrollCSV(r.Context(), eventID)
	case "xlsx":
		file, err = h.reportService.EventPayrollXLSX(r.Context(), eventID)
	default:
		response.BadRequest(w, "format must be csv or xlsx", nil)
		return
	}
	if err != nil {
		slog.Error("Export payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	writeFile(w, file)
}

// Payslip implements ReportHandler.
func (h *ReportHandlerImpl) Payslip(w http.ResponseWriter, r *http.Request) {
	file, err := h.reportService.AssignmentPayslipPDF(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Payslip service error", "error", err)
		response.HandleError(w, err)
		return
	}

	writeFile(w, file)
}

func writeFile(w http.ResponseWriter, file report.ExportFile) {
	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, file.FileName))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(file.Data)
}
