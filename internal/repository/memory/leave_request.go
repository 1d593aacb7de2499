package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/worknai009/worknai-HRMS-sub000/internal/domain/leave"
)

type LeaveRepositoryMemory struct {
	mu       sync.Mutex
	requests map[string]leave.LeaveRequest
}

func NewLeaveRepository() *LeaveRepositoryMemory {
	return &LeaveRepositoryMemory{requests: make(map[string]leave.LeaveRequest)}
}

func (r *LeaveRepositoryMemory) Create(_ context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req.CreatedAt = time.Now().UTC()
	req.UpdatedAt = req.CreatedAt
	r.requests[req.ID] = req
	return req, nil
}

func (r *LeaveRepositoryMemory) GetByID(_ context.Context, id, companyID string) (leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.requests[id]
	if !ok || req.CompanyID != companyID {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return req, nil
}

func (r *LeaveRepositoryMemory) Decide(_ context.Context, id, companyID string, status leave.LeaveStatus, decidedBy string) (leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.requests[id]
	if !ok || req.CompanyID != companyID {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	if req.Status != leave.LeaveStatusPending {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	now := time.Now().UTC()
	req.Status = status
	req.DecidedBy = &decidedBy
	req.DecidedAt = &now
	req.UpdatedAt = now
	r.requests[id] = req
	return req, nil
}

func (r *LeaveRepositoryMemory) ListByEmployee(_ context.Context, employeeID, companyID string) ([]leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []leave.LeaveRequest
	for _, req := range r.requests {
		if req.EmployeeID == employeeID && req.CompanyID == companyID {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *LeaveRepositoryMemory) ListActiveOverlapping(_ context.Context, employeeID, startDate, endDate string) ([]leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []leave.LeaveRequest
	for _, req := range r.requests {
		if req.EmployeeID != employeeID || req.Status == leave.LeaveStatusRejected {
			continue
		}
		if req.StartDate <= endDate && startDate <= req.EndDate {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *LeaveRepositoryMemory) ListApprovedInRange(_ context.Context, employeeID, startDate, endDate string) ([]leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []leave.LeaveRequest
	for _, req := range r.requests {
		if req.EmployeeID != employeeID || req.Status != leave.LeaveStatusApproved {
			continue
		}
		if req.StartDate <= endDate && startDate <= req.EndDate {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate < out[j].StartDate })
	return out, nil
}
