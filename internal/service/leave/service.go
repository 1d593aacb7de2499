package leave

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/worknai009/worknai-HRMS-sub000/internal/domain/leave"
)

type LeaveServiceImpl struct {
	leaveRepo leave.LeaveRepository
}

func NewLeaveService(leaveRepo leave.LeaveRepository) leave.LeaveService {
	return &LeaveServiceImpl{leaveRepo: leaveRepo}
}

func claimsFromContext(ctx context.Context) (employeeID, companyID, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	employeeID, ok = claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", "", "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	userID, _ = claims["user_id"].(string)

	return employeeID, companyID, userID, nil
}

// Apply implements leave.LeaveService.
func (s *LeaveServiceImpl) Apply(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	employeeID, companyID, _, err := claimsFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	// Pending and approved requests both block the range; only a rejection
	// frees it up for re-application.
	existing, err := s.leaveRepo.ListActiveOverlapping(ctx, employeeID, req.StartDate, req.EndDate)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to check overlapping requests: %w", err)
	}
	if len(existing) > 0 {
		return leave.LeaveResponse{}, leave.ErrOverlappingRequest
	}

	created, err := s.leaveRepo.Create(ctx, leave.LeaveRequest{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		CompanyID:  companyID,
		LeaveType:  req.LeaveType,
		DayType:    req.DayType,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Reason:     req.Reason,
		Status:     leave.LeaveStatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return leave.ToResponse(created), nil
}

// Decide implements leave.LeaveService.
func (s *LeaveServiceImpl) Decide(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	_, companyID, userID, err := claimsFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	decided, err := s.leaveRepo.Decide(ctx, req.LeaveID, companyID, req.Status, userID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return leave.ToResponse(decided), nil
}

// ListMine implements leave.LeaveService.
func (s *LeaveServiceImpl) ListMine(ctx context.Context) ([]leave.LeaveResponse, error) {
	employeeID, companyID, _, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := s.leaveRepo.ListByEmployee(ctx, employeeID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, leave.ToResponse(r))
	}
	return responses, nil
}
