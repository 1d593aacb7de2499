package attendance

import "context"

// AttendanceRepository defines data access for attendance records. All reads
// take companyID to prevent cross-company access. Writes are conditional:
// Create fails on an existing (employee_id, date) pair and UpdateIf fails
// unless the stored status is one of the expected ones, so a lost race is a
// clean conflict instead of a double transition.
type AttendanceRepository interface {
	// Create inserts a new record. Returns ErrRecordExists if a record for
	// (employeeID, date) already exists.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByEmployeeAndDate retrieves the record for one local day.
	// Returns ErrRecordNotFound when absent, which is itself meaningful.
	GetByEmployeeAndDate(ctx context.Context, employeeID, date, companyID string) (Attendance, error)

	// UpdateIf persists att only while the stored status is one of expected.
	// Returns ErrInvalidTransition when the state already advanced.
	UpdateIf(ctx context.Context, att Attendance, expected []Status) error

	// Upsert overwrites the record for (employeeID, date), creating it if
	// missing. Used only by HR manual correction and reconciliation.
	Upsert(ctx context.Context, att Attendance) (Attendance, error)

	// ListByEmployee returns an employee's records, newest day first.
	ListByEmployee(ctx context.Context, employeeID, companyID string) ([]Attendance, error)

	// ListByEmployeeRange returns records with date in [startDate, endDate].
	ListByEmployeeRange(ctx context.Context, employeeID, startDate, endDate, companyID string) ([]Attendance, error)

	// ListOpen returns every record still in present or on_break, across
	// companies. Used by the end-of-day reconciliation pass.
	ListOpen(ctx context.Context) ([]Attendance, error)
}
