package report

import "context"

// ReportService renders payroll data into downloadable documents. The
// figures always come from the payroll service; exports never compute
// hours or money themselves.
type ReportService interface {
	EventPayrollCSV(ctx context.Context, eventID string) (ExportFile, error)
	EventPayrollXLSX(ctx context.Context, eventID string) (ExportFile, error)
	AssignmentPayslipPDF(ctx context.Context, assignmentID string) (ExportFile, error)
}
