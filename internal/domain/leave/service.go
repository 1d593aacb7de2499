package leave

import "context"

type LeaveService interface {
	// Apply submits a leave request for the calling employee.
	Apply(ctx context.Context, req ApplyLeaveRequest) (LeaveResponse, error)

	// Decide approves or rejects a pending request. Terminal.
	Decide(ctx context.Context, req DecideLeaveRequest) (LeaveResponse, error)

	// ListMine returns the calling employee's requests.
	ListMine(ctx context.Context) ([]LeaveResponse, error)
}
