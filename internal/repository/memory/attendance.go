package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/worknai009/worknai-HRMS-sub000/internal/domain/attendance"
)

// AttendanceRepositoryMemory keeps records keyed by (employeeID, date) under
// one mutex, so Create and UpdateIf get the same check-and-set semantics the
// SQL implementation gets from conditional statements.
type AttendanceRepositoryMemory struct {
	mu      sync.Mutex
	records map[string]attendance.Attendance
}

func NewAttendanceRepository() *AttendanceRepositoryMemory {
	return &AttendanceRepositoryMemory{records: make(map[string]attendance.Attendance)}
}

func attendanceKey(employeeID, date string) string {
	return employeeID + "|" + date
}

func (r *AttendanceRepositoryMemory) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := attendanceKey(att.EmployeeID, att.Date)
	if _, ok := r.records[key]; ok {
		return attendance.Attendance{}, attendance.ErrRecordExists
	}
	r.records[key] = att
	return att, nil
}

func (r *AttendanceRepositoryMemory) GetByEmployeeAndDate(_ context.Context, employeeID, date, companyID string) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	att, ok := r.records[attendanceKey(employeeID, date)]
	if !ok || att.CompanyID != companyID {
		return attendance.Attendance{}, attendance.ErrRecordNotFound
	}
	return att, nil
}

func (r *AttendanceRepositoryMemory) UpdateIf(_ context.Context, att attendance.Attendance, expected []attendance.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := attendanceKey(att.EmployeeID, att.Date)
	stored, ok := r.records[key]
	if !ok {
		return attendance.ErrRecordNotFound
	}

	match := false
	for _, status := range expected {
		if stored.Status == status {
			match = true
			break
		}
	}
	if !match {
		return attendance.ErrInvalidTransition
	}

	r.records[key] = att
	return nil
}

func (r *AttendanceRepositoryMemory) Upsert(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := attendanceKey(att.EmployeeID, att.Date)
	if stored, ok := r.records[key]; ok {
		att.ID = stored.ID
	}
	r.records[key] = att
	return att, nil
}

func (r *AttendanceRepositoryMemory) ListByEmployee(_ context.Context, employeeID, companyID string) ([]attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []attendance.Attendance
	for _, att := range r.records {
		if att.EmployeeID == employeeID && att.CompanyID == companyID {
			out = append(out, att)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (r *AttendanceRepositoryMemory) ListByEmployeeRange(_ context.Context, employeeID, startDate, endDate, companyID string) ([]attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []attendance.Attendance
	for _, att := range r.records {
		if att.EmployeeID == employeeID && att.CompanyID == companyID &&
			startDate <= att.Date && att.Date <= endDate {
			out = append(out, att)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *AttendanceRepositoryMemory) ListOpen(_ context.Context) ([]attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []attendance.Attendance
	for _, att := range r.records {
		if att.Status == attendance.StatusPresent || att.Status == attendance.StatusOnBreak {
			out = append(out, att)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}
