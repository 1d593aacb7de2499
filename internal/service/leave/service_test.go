package leave

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worknai009/worknai-HRMS-sub000/internal/domain/leave"
	"github.com/worknai009/worknai-HRMS-sub000/internal/repository/memory"
)

const (
	testCompanyID  = "company-1"
	testEmployeeID = "employee-1"
	testDeciderID  = "user-hr"
)

func authContext(t *testing.T, employeeID, userID string) context.Context {
	t.Helper()

	auth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := auth.Encode(map[string]interface{}{
		"user_id":     userID,
		"employee_id": employeeID,
		"company_id":  testCompanyID,
		"role":        "hr",
		"type":        "access",
	})
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

func newService() (leave.LeaveService, *memory.LeaveRepositoryMemory) {
	repo := memory.NewLeaveRepository()
	return NewLeaveService(repo), repo
}

func apply() leave.ApplyLeaveRequest {
	return leave.ApplyLeaveRequest{
		LeaveType: leave.LeaveTypePaid,
		DayType:   leave.DayTypeFull,
		StartDate: "2026-02-10",
		EndDate:   "2026-02-12",
		Reason:    "family trip",
	}
}

func TestApply(t *testing.T) {
	svc, _ := newService()
	ctx := authContext(t, testEmployeeID, "user-1")

	resp, err := svc.Apply(ctx, apply())
	require.NoError(t, err)

	assert.Equal(t, leave.LeaveStatusPending, resp.Status)
	assert.Equal(t, testEmployeeID, resp.EmployeeID)
	assert.NotEmpty(t, resp.ID)
}

func TestApplyOverlapRejected(t *testing.T) {
	svc, _ := newService()
	ctx := authContext(t, testEmployeeID, "user-1")

	_, err := svc.Apply(ctx, apply())
	require.NoError(t, err)

	// Even a pending request blocks an intersecting range.
	req := apply()
	req.StartDate, req.EndDate = "2026-02-12", "2026-02-14"
	_, err = svc.Apply(ctx, req)
	assert.ErrorIs(t, err, leave.ErrOverlappingRequest)
}

func TestApplyAfterRejection(t *testing.T) {
	svc, _ := newService()
	ctx := authContext(t, testEmployeeID, "user-1")

	first, err := svc.Apply(ctx, apply())
	require.NoError(t, err)

	_, err = svc.Decide(authContext(t, "hr-emp", testDeciderID), leave.DecideLeaveRequest{
		LeaveID: first.ID,
		Status:  leave.LeaveStatusRejected,
	})
	require.NoError(t, err)

	// A rejected request frees the range.
	_, err = svc.Apply(ctx, apply())
	assert.NoError(t, err)
}

func TestDecide(t *testing.T) {
	svc, _ := newService()
	ctx := authContext(t, testEmployeeID, "user-1")

	created, err := svc.Apply(ctx, apply())
	require.NoError(t, err)

	decided, err := svc.Decide(authContext(t, "hr-emp", testDeciderID), leave.DecideLeaveRequest{
		LeaveID: created.ID,
		Status:  leave.LeaveStatusApproved,
	})
	require.NoError(t, err)

	assert.Equal(t, leave.LeaveStatusApproved, decided.Status)
	require.NotNil(t, decided.DecidedBy)
	assert.Equal(t, testDeciderID, *decided.DecidedBy)
}

func TestDecideTerminal(t *testing.T) {
	svc, _ := newService()
	ctx := authContext(t, testEmployeeID, "user-1")

	created, err := svc.Apply(ctx, apply())
	require.NoError(t, err)

	hrCtx := authContext(t, "hr-emp", testDeciderID)
	_, err = svc.Decide(hrCtx, leave.DecideLeaveRequest{LeaveID: created.ID, Status: leave.LeaveStatusApproved})
	require.NoError(t, err)

	_, err = svc.Decide(hrCtx, leave.DecideLeaveRequest{LeaveID: created.ID, Status: leave.LeaveStatusRejected})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
}

func TestDecideUnknownRequest(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Decide(authContext(t, "hr-emp", testDeciderID), leave.DecideLeaveRequest{
		LeaveID: "nope",
		Status:  leave.LeaveStatusApproved,
	})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestListMine(t *testing.T) {
	svc, _ := newService()
	ctx := authContext(t, testEmployeeID, "user-1")

	_, err := svc.Apply(ctx, apply())
	require.NoError(t, err)

	other := authContext(t, "employee-2", "user-2")
	req := apply()
	req.StartDate, req.EndDate = "2026-03-01", "2026-03-02"
	_, err = svc.Apply(other, req)
	require.NoError(t, err)

	mine, err := svc.ListMine(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, testEmployeeID, mine[0].EmployeeID)
}
