package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/worknai009/worknai-HRMS-sub000/internal/domain/leave"
	"github.com/worknai009/worknai-HRMS-sub000/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

const leaveColumns = `
	id, employee_id, company_id, leave_type, day_type, start_date, end_date,
	reason, status, decided_by, decided_at, created_at, updated_at`

func scanLeave(row pgx.Row) (leave.LeaveRequest, error) {
	var req leave.LeaveRequest
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.CompanyID, &req.LeaveType, &req.DayType,
		&req.StartDate, &req.EndDate, &req.Reason, &req.Status,
		&req.DecidedBy, &req.DecidedAt, &req.CreatedAt, &req.UpdatedAt,
	)
	return req, err
}

// Create implements leave.LeaveRepository.
func (l *leaveRepository) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, company_id, leave_type, day_type,
			start_date, end_date, reason, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.ID, req.EmployeeID, req.CompanyID, req.LeaveType, req.DayType,
		req.StartDate, req.EndDate, req.Reason, req.Status,
	).Scan(&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return req, nil
}

// GetByID implements leave.LeaveRepository.
func (l *leaveRepository) GetByID(ctx context.Context, id, companyID string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests
		WHERE id = $1 AND company_id = $2
	`

	req, err := scanLeave(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return req, nil
}

// Decide implements leave.LeaveRepository. The pending guard makes the
// decision terminal: a second decision updates nothing.
func (l *leaveRepository) Decide(ctx context.Context, id, companyID string, status leave.LeaveStatus, decidedBy string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		UPDATE leave_requests
		SET status = $1, decided_by = $2, decided_at = NOW(), updated_at = NOW()
		WHERE id = $3 AND company_id = $4 AND status = 'pending'
		RETURNING ` + leaveColumns

	req, err := scanLeave(q.QueryRow(ctx, query, status, decidedBy, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Either missing or already decided; look it up to tell which.
			if _, getErr := l.GetByID(ctx, id, companyID); getErr != nil {
				return leave.LeaveRequest{}, getErr
			}
			return leave.LeaveRequest{}, leave.ErrLeaveRequestAlreadyProcessed
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to decide leave request: %w", err)
	}
	return req, nil
}

func (l *leaveRepository) list(ctx context.Context, query string, args ...interface{}) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var out []leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

// ListByEmployee implements leave.LeaveRepository.
func (l *leaveRepository) ListByEmployee(ctx context.Context, employeeID, companyID string) ([]leave.LeaveRequest, error) {
	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests
		WHERE employee_id = $1 AND company_id = $2
		ORDER BY created_at DESC
	`
	return l.list(ctx, query, employeeID, companyID)
}

// ListActiveOverlapping implements leave.LeaveRepository.
func (l *leaveRepository) ListActiveOverlapping(ctx context.Context, employeeID, startDate, endDate string) ([]leave.LeaveRequest, error) {
	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests
		WHERE employee_id = $1
		  AND status != 'rejected'
		  AND start_date <= $3 AND end_date >= $2
	`
	return l.list(ctx, query, employeeID, startDate, endDate)
}

// ListApprovedInRange implements leave.LeaveRepository.
func (l *leaveRepository) ListApprovedInRange(ctx context.Context, employeeID, startDate, endDate string) ([]leave.LeaveRequest, error) {
	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests
		WHERE employee_id = $1
		  AND status = 'approved'
		  AND start_date <= $3 AND end_date >= $2
		ORDER BY start_date ASC
	`
	return l.list(ctx, query, employeeID, startDate, endDate)
}
