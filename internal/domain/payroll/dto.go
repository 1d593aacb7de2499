package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/worknai009/worknai-HRMS-sub000/internal/pkg/validator"
)

type ComputePayrollRequest struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

func (r *ComputePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	// Range ordering is the engine's concern: end before start surfaces as
	// ErrInvalidRange from the computation, not as a field error.
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be YYYY-MM-DD",
		})
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be YYYY-MM-DD",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DayBreakdown is the audit trace for one classified day: which rule fired
// and what weight it contributed. The engine never produces a number without
// one of these per day.
type DayBreakdown struct {
	Date   string          `json:"date"`
	Rule   string          `json:"rule"`
	Weight decimal.Decimal `json:"weight"`
	Note   string          `json:"note,omitempty"`
}

// Snapshot is the recomputed-on-demand output of one payroll query. It is
// never persisted.
type Snapshot struct {
	EmployeeID       string          `json:"employee_id"`
	StartDate        string          `json:"start_date"`
	EndDate          string          `json:"end_date"`
	TotalPayableDays decimal.Decimal `json:"total_payable_days"`
	PresentDays      decimal.Decimal `json:"present_days"`
	AbsentDays       int             `json:"absent_days"`
	HolidayCount     int             `json:"holiday_count"`
	PaidLeaveDays    decimal.Decimal `json:"paid_leave_days"`
	UnpaidLeaveDays  decimal.Decimal `json:"unpaid_leave_days"`
	EstimatedSalary  decimal.Decimal `json:"estimated_salary"`
	Breakdown        []DayBreakdown  `json:"breakdown"`
}
