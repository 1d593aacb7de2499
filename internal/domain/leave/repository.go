package leave

import "context"

type LeaveRepository interface {
	// Create inserts a new request in pending status.
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)

	// GetByID retrieves a request with company isolation.
	GetByID(ctx context.Context, id, companyID string) (LeaveRequest, error)

	// Decide transitions pending -> approved|rejected. Returns
	// ErrLeaveRequestAlreadyProcessed when the request is no longer pending.
	Decide(ctx context.Context, id, companyID string, status LeaveStatus, decidedBy string) (LeaveRequest, error)

	// ListByEmployee returns an employee's requests, newest first.
	ListByEmployee(ctx context.Context, employeeID, companyID string) ([]LeaveRequest, error)

	// ListActiveOverlapping returns non-rejected requests whose range
	// intersects [startDate, endDate].
	ListActiveOverlapping(ctx context.Context, employeeID, startDate, endDate string) ([]LeaveRequest, error)

	// ListApprovedInRange returns approved requests intersecting the range,
	// the payroll engine's read path.
	ListApprovedInRange(ctx context.Context, employeeID, startDate, endDate string) ([]LeaveRequest, error)
}
