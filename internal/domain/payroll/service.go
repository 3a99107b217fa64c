package payroll

import (
	"context"
	"time"
)

// PayrollService computes payroll figures on demand. Nothing here is
// persisted; the figures always reflect the current event and
// assignment data.
type PayrollService interface {
	EventPayroll(ctx context.Context, eventID string) (EventPayrollResponse, error)
	PeriodSummary(ctx context.Context, from, to time.Time) (PeriodSummaryResponse, error)
}
