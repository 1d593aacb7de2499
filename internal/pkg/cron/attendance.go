package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/worknai009/worknai-HRMS-sub000/internal/domain/attendance"
	"github.com/worknai009/worknai-HRMS-sub000/internal/domain/company"
	"github.com/worknai009/worknai-HRMS-sub000/internal/pkg/calendar"
)

const autoCloseRemark = "auto-closed at end of day without a punch-out; flagged for HR review"

// AttendanceJobs owns the end-of-day reconciliation pass: any record still
// present or on_break after its local day has ended is closed at that day's
// local midnight and flagged for manual correction.
type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	companyRepo    company.CompanyRepository
	now            func() time.Time
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	companyRepo company.CompanyRepository,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		companyRepo:    companyRepo,
		now:            time.Now,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.Register("close_stale_attendance", 1*time.Hour, j.CloseStaleAttendance)
}

// CloseStaleAttendance closes every open record whose local day is over.
// Running hourly keeps the lag under one hour for every company timezone.
func (j *AttendanceJobs) CloseStaleAttendance(ctx context.Context) error {
	open, err := j.attendanceRepo.ListOpen(ctx)
	if err != nil {
		return fmt.Errorf("failed to list open attendance records: %w", err)
	}

	timezones := make(map[string]string)
	closed := 0

	for _, record := range open {
		zone, ok := timezones[record.CompanyID]
		if !ok {
			comp, err := j.companyRepo.GetByID(ctx, record.CompanyID)
			if err != nil {
				slog.Error("cron: failed to resolve company timezone",
					"company_id", record.CompanyID, "error", err)
				continue
			}
			zone = comp.Timezone
			timezones[record.CompanyID] = zone
		}

		today, err := calendar.DayKey(j.now(), zone)
		if err != nil {
			slog.Error("cron: failed to compute local day", "zone", zone, "error", err)
			continue
		}
		if record.Date >= today {
			// The record's local day is still running.
			continue
		}

		dayEnd, err := calendar.NextDayStart(record.Date, zone)
		if err != nil {
			slog.Error("cron: failed to compute day end",
				"date", record.Date, "zone", zone, "error", err)
			continue
		}

		expected := record.Status
		if idx := record.OpenBreak(); idx >= 0 {
			record.Breaks[idx].EndAt = &dayEnd
		}
		if record.PunchInAt != nil {
			net := int(dayEnd.Sub(*record.PunchInAt).Minutes()) - record.BreakMinutes()
			record.NetWorkMinutes = &net
		}
		remark := autoCloseRemark
		record.Status = attendance.StatusPunchedOut
		record.PunchOutAt = &dayEnd
		record.Remarks = &remark

		err = j.attendanceRepo.UpdateIf(ctx, record, []attendance.Status{expected})
		if err != nil {
			// A lost race means someone else moved the record; leave it be.
			if !errors.Is(err, attendance.ErrInvalidTransition) {
				slog.Error("cron: failed to auto-close attendance",
					"attendance_id", record.ID, "employee_id", record.EmployeeID, "error", err)
			}
			continue
		}
		closed++
	}

	if closed > 0 {
		slog.Info("cron: auto-closed stale attendance records", "count", closed)
	}
	return nil
}
