package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/staffdeck/staffdeck-backend-go/internal/domain/assignment"
	"github.com/staffdeck/staffdeck-backend-go/internal/domain/event"
	"github.com/staffdeck/staffdeck-backend-go/internal/domain/payroll"
	"github.com/staffdeck/staffdeck-backend-go/internal/domain/report"
)

var payrollColumns = []string{
	"Operator",
	"Attendance",
	"Gross Hours",
	"Net Hours",
	"Effective Hours",
	"Rate (Cost)",
	"Rate (Sell)",
	"Compensation",
	"Meal Allowance",
	"Travel Allowance",
	"Revenue",
}

type ReportServiceImpl struct {
	payrollService payroll.PayrollService
	assignmentRepo assignment.AssignmentRepository
	eventRepo      event.EventRepository
}

func NewReportService(
	payrollService payroll.PayrollService,
	assignmentRepo assignment.AssignmentRepository,
	eventRepo event.EventRepository,
) report.ReportService {
	return &ReportServiceImpl{
		payrollService: payrollService,
		assignmentRepo: assignmentRepo,
		eventRepo:      eventRepo,
	}
}

func (s *ReportServiceImpl) EventPayrollCSV(ctx context.Context, eventID string) (report.ExportFile, error) {
	data, err := s.payrollService.EventPayroll(ctx, eventID)
	if err != nil {
		return report.ExportFile{}, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(payrollColumns); err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, c := range data.Calculations {
		if err := w.Write(calculationRow(c)); err != nil {
			return report.ExportFile{}, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	// Blank separator, then the attendance-gated totals.
	if err := w.Write(make([]string, len(payrollColumns))); err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to write csv separator: %w", err)
	}
	if err := w.Write(summaryRow(data.Summary)); err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to write csv summary: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to flush csv: %w", err)
	}

	return report.ExportFile{
		FileName:    fmt.Sprintf("payroll-%s.csv", data.EventID),
		ContentType: report.ContentTypeCSV,
		Data:        buf.Bytes(),
	}, nil
}

func (s *ReportServiceImpl) EventPayrollXLSX(ctx context.Context, eventID string) (report.ExportFile, error) {
	data, err := s.payrollService.EventPayroll(ctx, eventID)
	if err != nil {
		return report.ExportFile{}, err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Payroll"
	f.SetSheetName(f.GetSheetName(0), sheet)

	header := make([]interface{}, len(payrollColumns))
	for i, col := range payrollColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to write xlsx header: %w", err)
	}

	row := 2
	for _, c := range data.Calculations {
		cells := []interface{}{
			c.OperatorName,
			c.AttendanceStatus,
			c.GrossHours,
			c.NetHours,
			c.EffectiveHours,
			c.HourlyRateCost.InexactFloat64(),
			c.HourlyRateSell.InexactFloat64(),
			c.Compensation.InexactFloat64(),
			c.MealAllowance.InexactFloat64(),
			c.TravelAllowance.InexactFloat64(),
			c.TotalRevenue.InexactFloat64(),
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return report.ExportFile{}, err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return report.ExportFile{}, fmt.Errorf("failed to write xlsx row: %w", err)
		}
		row++
	}

	totals := []interface{}{
		fmt.Sprintf("Totals (%d payable, %d excluded)", data.Summary.PayableCount, data.Summary.ExcludedCount),
		"",
		data.Summary.TotalGrossHours,
		"",
		data.Summary.TotalEffectiveHours,
		"",
		"",
		data.Summary.TotalCompensation.InexactFloat64(),
		data.Summary.TotalAllowances.InexactFloat64(),
		"",
		data.Summary.TotalRevenue.InexactFloat64(),
	}
	cell, err := excelize.CoordinatesToCellName(1, row+1)
	if err != nil {
		return report.ExportFile{}, err
	}
	if err := f.SetSheetRow(sheet, cell, &totals); err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to write xlsx totals: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to render xlsx: %w", err)
	}

	return report.ExportFile{
		FileName:    fmt.Sprintf("payroll-%s.xlsx", data.EventID),
		ContentType: report.ContentTypeXLSX,
		Data:        buf.Bytes(),
	}, nil
}

func (s *ReportServiceImpl) AssignmentPayslipPDF(ctx context.Context, assignmentID string) (report.ExportFile, error) {
	a, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return report.ExportFile{}, err
	}

	ev, err := s.eventRepo.GetByID(ctx, a.EventID)
	if err != nil {
		return report.ExportFile{}, err
	}

	data, err := s.payrollService.EventPayroll(ctx, a.EventID)
	if err != nil {
		return report.ExportFile{}, err
	}

	var calc *payroll.CalculationResponse
	for i := range data.Calculations {
		if data.Calculations[i].AssignmentID == assignmentID {
			calc = &data.Calculations[i]
			break
		}
	}
	if calc == nil {
		return report.ExportFile{}, assignment.ErrAssignmentNotFound
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Operator: %s", calc.OperatorName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Event: %s", ev.Title))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s",
		ev.StartAt.Format("2006-01-02"), ev.EndAt.Format("2006-01-02")))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Attendance: %s", calc.AttendanceStatus))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Gross hours: %.2f", calc.GrossHours))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Net hours: %.2f", calc.NetHours))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Effective hours: %.2f", calc.EffectiveHours))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Hourly rate: %s", calc.HourlyRateCost.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Compensation: %s", calc.Compensation.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Meal allowance: %s", calc.MealAllowance.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Travel allowance: %s", calc.TravelAllowance.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Total: %s",
		calc.Compensation.Add(calc.MealAllowance).Add(calc.TravelAllowance).StringFixed(2)))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 8, fmt.Sprintf("Generated %s", time.Now().Format("2006-01-02 15:04")))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to render payslip pdf: %w", err)
	}

	return report.ExportFile{
		FileName:    fmt.Sprintf("payslip-%s.pdf", assignmentID),
		ContentType: report.ContentTypePDF,
		Data:        buf.Bytes(),
	}, nil
}

func calculationRow(c payroll.CalculationResponse) []string {
	return []string{
		c.OperatorName,
		c.AttendanceStatus,
		formatHours(c.GrossHours),
		formatHours(c.NetHours),
		formatHours(c.EffectiveHours),
		c.HourlyRateCost.StringFixed(2),
		c.HourlyRateSell.StringFixed(2),
		c.Compensation.StringFixed(2),
		c.MealAllowance.StringFixed(2),
		c.TravelAllowance.StringFixed(2),
		c.TotalRevenue.StringFixed(2),
	}
}

func summaryRow(s payroll.SummaryResponse) []string {
	return []string{
		fmt.Sprintf("Totals (%d payable, %d excluded)", s.PayableCount, s.ExcludedCount),
		"",
		formatHours(s.TotalGrossHours),
		"",
		formatHours(s.TotalEffectiveHours),
		"",
		"",
		s.TotalCompensation.StringFixed(2),
		s.TotalAllowances.StringFixed(2),
		"",
		s.TotalRevenue.StringFixed(2),
	}
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', 2, 64)
}
