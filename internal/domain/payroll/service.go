package payroll

import "context"

// PayrollService aggregates attendance, leave and holiday facts over a date
// range into payable days and an estimated salary. Read-only.
type PayrollService interface {
	ComputePayroll(ctx context.Context, req ComputePayrollRequest) (Snapshot, error)
}
