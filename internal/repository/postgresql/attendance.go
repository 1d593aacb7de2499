package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/worknai009/worknai-HRMS-sub000/internal/domain/attendance"
	"github.com/worknai009/worknai-HRMS-sub000/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, employee_id, company_id, date, status, mode,
	punch_in_at, punch_out_at, breaks, net_work_minutes,
	daily_report, remarks, corrected_by, created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	var breaksJSON []byte

	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.CompanyID, &att.Date, &att.Status, &att.Mode,
		&att.PunchInAt, &att.PunchOutAt, &breaksJSON, &att.NetWorkMinutes,
		&att.DailyReport, &att.Remarks, &att.CorrectedBy, &att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}

	if len(breaksJSON) > 0 {
		if err := json.Unmarshal(breaksJSON, &att.Breaks); err != nil {
			return attendance.Attendance{}, fmt.Errorf("failed to decode breaks: %w", err)
		}
	}
	return att, nil
}

func encodeBreaks(breaks []attendance.BreakInterval) ([]byte, error) {
	if breaks == nil {
		breaks = []attendance.BreakInterval{}
	}
	return json.Marshal(breaks)
}

// Create implements attendance.AttendanceRepository. The partial index on
// (employee_id, date) makes the insert conditional: a second record for the
// same local day hits ON CONFLICT and inserts nothing.
func (a *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	breaksJSON, err := encodeBreaks(att.Breaks)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to encode breaks: %w", err)
	}

	query := `
		INSERT INTO attendances (
			id, employee_id, company_id, date, status, mode,
			punch_in_at, punch_out_at, breaks, net_work_minutes,
			daily_report, remarks, corrected_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		)
		ON CONFLICT (employee_id, date) DO NOTHING
		RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		att.ID, att.EmployeeID, att.CompanyID, att.Date, att.Status, att.Mode,
		att.PunchInAt, att.PunchOutAt, breaksJSON, att.NetWorkMinutes,
		att.DailyReport, att.Remarks, att.CorrectedBy,
	).Scan(&att.CreatedAt, &att.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrRecordExists
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID, date, companyID string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1 AND date = $2 AND company_id = $3
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrRecordNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	return att, nil
}

// UpdateIf implements attendance.AttendanceRepository. The status guard in
// the WHERE clause is the compare-and-set: zero affected rows means the
// record moved under us and the transition is rejected.
func (a *attendanceRepository) UpdateIf(ctx context.Context, att attendance.Attendance, expected []attendance.Status) error {
	q := GetQuerier(ctx, a.db)

	breaksJSON, err := encodeBreaks(att.Breaks)
	if err != nil {
		return fmt.Errorf("failed to encode breaks: %w", err)
	}

	expectedStrs := make([]string, 0, len(expected))
	for _, status := range expected {
		expectedStrs = append(expectedStrs, string(status))
	}

	query := `
		UPDATE attendances
		SET status = $1, punch_in_at = $2, punch_out_at = $3, breaks = $4,
			net_work_minutes = $5, daily_report = $6, remarks = $7,
			corrected_by = $8, updated_at = NOW()
		WHERE employee_id = $9 AND date = $10 AND company_id = $11
		  AND status = ANY($12)
	`

	tag, err := q.Exec(ctx, query,
		att.Status, att.PunchInAt, att.PunchOutAt, breaksJSON,
		att.NetWorkMinutes, att.DailyReport, att.Remarks,
		att.CorrectedBy, att.EmployeeID, att.Date, att.CompanyID,
		expectedStrs,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrInvalidTransition
	}
	return nil
}

// Upsert implements attendance.AttendanceRepository.
func (a *attendanceRepository) Upsert(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	breaksJSON, err := encodeBreaks(att.Breaks)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to encode breaks: %w", err)
	}

	query := `
		INSERT INTO attendances (
			id, employee_id, company_id, date, status, mode,
			punch_in_at, punch_out_at, breaks, net_work_minutes,
			daily_report, remarks, corrected_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			status = EXCLUDED.status,
			punch_in_at = COALESCE(attendances.punch_in_at, EXCLUDED.punch_in_at),
			punch_out_at = COALESCE(EXCLUDED.punch_out_at, attendances.punch_out_at),
			breaks = EXCLUDED.breaks,
			net_work_minutes = EXCLUDED.net_work_minutes,
			daily_report = COALESCE(EXCLUDED.daily_report, attendances.daily_report),
			remarks = EXCLUDED.remarks,
			corrected_by = EXCLUDED.corrected_by,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		att.ID, att.EmployeeID, att.CompanyID, att.Date, att.Status, att.Mode,
		att.PunchInAt, att.PunchOutAt, breaksJSON, att.NetWorkMinutes,
		att.DailyReport, att.Remarks, att.CorrectedBy,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}
	return att, nil
}

func (a *attendanceRepository) list(ctx context.Context, query string, args ...interface{}) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var out []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		out = append(out, att)
	}
	return out, rows.Err()
}

// ListByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployee(ctx context.Context, employeeID, companyID string) ([]attendance.Attendance, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1 AND company_id = $2
		ORDER BY date DESC
	`
	return a.list(ctx, query, employeeID, companyID)
}

// ListByEmployeeRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployeeRange(ctx context.Context, employeeID, startDate, endDate, companyID string) ([]attendance.Attendance, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1 AND company_id = $2
		  AND date >= $3 AND date <= $4
		ORDER BY date ASC
	`
	return a.list(ctx, query, employeeID, companyID, startDate, endDate)
}

// ListOpen implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListOpen(ctx context.Context) ([]attendance.Attendance, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE status IN ('present', 'on_break')
		ORDER BY date ASC
	`
	return a.list(ctx, query)
}
