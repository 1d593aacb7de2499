package attendance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/worknai009/worknai-HRMS-sub000/internal/domain/attendance"
	"github.com/worknai009/worknai-HRMS-sub000/internal/domain/company"
	"github.com/worknai009/worknai-HRMS-sub000/internal/domain/employee"
	"github.com/worknai009/worknai-HRMS-sub000/internal/domain/leave"
	"github.com/worknai009/worknai-HRMS-sub000/internal/pkg/biometric"
	"github.com/worknai009/worknai-HRMS-sub000/internal/pkg/calendar"
	"github.com/worknai009/worknai-HRMS-sub000/internal/pkg/geofence"
)

type AttendanceServiceImpl struct {
	attendanceRepo  attendance.AttendanceRepository
	employeeRepo    employee.EmployeeRepository
	companyRepo     company.CompanyRepository
	leaveRepo       leave.LeaveRepository
	verifier        *biometric.Verifier
	minReportLength int

	// now is the single clock for the whole state machine; every calendar
	// computation takes an explicit (instant, timezone) pair from here.
	now func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	companyRepo company.CompanyRepository,
	leaveRepo leave.LeaveRepository,
	verifier *biometric.Verifier,
	minReportLength int,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo:  attendanceRepo,
		employeeRepo:    employeeRepo,
		companyRepo:     companyRepo,
		leaveRepo:       leaveRepo,
		verifier:        verifier,
		minReportLength: minReportLength,
		now:             time.Now,
	}
}

// claimsFromContext extracts the identity claims every operation needs.
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

// verifyIdentity runs the biometric gate for a punch attempt. A failure here
// is a rejection of the attempt, never a state transition.
func (s *AttendanceServiceImpl) verifyIdentity(ctx context.Context, employeeID string, capture attendance.Capture) error {
	profile, err := s.employeeRepo.GetBiometricProfile(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("failed to get biometric profile: %w", err)
	}

	if err := s.verifier.Verify(profile.Descriptor, capture.Descriptor, capture.FaceDetected); err != nil {
		return fmt.Errorf("%w: %s", attendance.ErrVerificationFailed, err)
	}
	return nil
}

// checkLocation runs the geofence gate. WFH mode replaces the geofence check
// with a lookup for an approved WFH leave covering the local day.
func (s *AttendanceServiceImpl) checkLocation(ctx context.Context, employeeID, companyID, dayKey string, mode attendance.Mode, lat, lon float64) (zoneName string, err error) {
	if mode == attendance.ModeWFH {
		approved, err := s.leaveRepo.ListApprovedInRange(ctx, employeeID, dayKey, dayKey)
		if err != nil {
			return "", fmt.Errorf("failed to look up WFH approval: %w", err)
		}
		for _, l := range approved {
			if l.LeaveType == leave.LeaveTypeWFH && l.Covers(dayKey) {
				return "", nil
			}
		}
		return "", attendance.ErrWFHNotApproved
	}

	locations, err := s.companyRepo.ListLocations(ctx, companyID)
	if err != nil {
		return "", fmt.Errorf("failed to list company locations: %w", err)
	}

	zones := make([]geofence.Zone, 0, len(locations))
	for _, loc := range locations {
		zones = append(zones, geofence.Zone{
			Name:         loc.Name,
			Latitude:     loc.Latitude,
			Longitude:    loc.Longitude,
			RadiusMeters: loc.RadiusMeters,
		})
	}

	result := geofence.Evaluate(lat, lon, zones)
	if !result.Inside {
		return "", attendance.ErrOutOfGeofence
	}
	return result.ZoneName, nil
}

// localDay resolves the current instant and its day key in the company zone.
func (s *AttendanceServiceImpl) localDay(ctx context.Context, companyID string) (time.Time, string, error) {
	comp, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("failed to get company: %w", err)
	}

	nowUTC := s.now().UTC()
	dayKey, err := calendar.DayKey(nowUTC, comp.Timezone)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("failed to compute local day: %w", err)
	}
	return nowUTC, dayKey, nil
}

// PunchIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) PunchIn(ctx context.Context, req attendance.PunchInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	employeeID, companyID, _, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID, companyID); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if err := s.verifyIdentity(ctx, employeeID, req.Capture); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	nowUTC, dayKey, err := s.localDay(ctx, companyID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	zoneName, err := s.checkLocation(ctx, employeeID, companyID, dayKey, req.Mode, req.Latitude, req.Longitude)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	var remarks *string
	if zoneName != "" {
		r := fmt.Sprintf("punched in inside zone %q", zoneName)
		remarks = &r
	}

	record := attendance.Attendance{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		CompanyID:  companyID,
		Date:       dayKey,
		Status:     attendance.StatusPresent,
		Mode:       req.Mode,
		PunchInAt:  &nowUTC,
		Remarks:    remarks,
	}

	created, err := s.attendanceRepo.Create(ctx, record)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordExists) {
			// The day already advanced past NotStarted, possibly through a
			// concurrent punch-in; this attempt loses cleanly.
			return attendance.AttendanceResponse{}, attendance.ErrInvalidTransition
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return attendance.ToResponse(created), nil
}

// BreakStart implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) BreakStart(ctx context.Context) (attendance.AttendanceResponse, error) {
	employeeID, companyID, _, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	nowUTC, dayKey, err := s.localDay(ctx, companyID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, dayKey, companyID)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrInvalidTransition
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	if record.Status != attendance.StatusPresent {
		return attendance.AttendanceResponse{}, attendance.ErrInvalidTransition
	}

	record.Breaks = append(record.Breaks, attendance.BreakInterval{StartAt: nowUTC})
	record.Status = attendance.StatusOnBreak

	if err := s.attendanceRepo.UpdateIf(ctx, record, []attendance.Status{attendance.StatusPresent}); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(record), nil
}

// BreakEnd implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) BreakEnd(ctx context.Context) (attendance.AttendanceResponse, error) {
	employeeID, companyID, _, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	nowUTC, dayKey, err := s.localDay(ctx, companyID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, dayKey, companyID)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrInvalidTransition
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	open := record.OpenBreak()
	if record.Status != attendance.StatusOnBreak || open < 0 {
		return attendance.AttendanceResponse{}, attendance.ErrInvalidTransition
	}

	record.Breaks[open].EndAt = &nowUTC
	record.Status = attendance.StatusPresent

	if err := s.attendanceRepo.UpdateIf(ctx, record, []attendance.Status{attendance.StatusOnBreak}); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(record), nil
}

// PunchOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) PunchOut(ctx context.Context, req attendance.PunchOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	employeeID, companyID, _, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if len(strings.TrimSpace(req.DailyReport)) < s.minReportLength {
		return attendance.AttendanceResponse{}, attendance.ErrMissingDailyReport
	}

	nowUTC, dayKey, err := s.localDay(ctx, companyID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, dayKey, companyID)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrInvalidTransition
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	if record.Status != attendance.StatusPresent && record.Status != attendance.StatusOnBreak {
		return attendance.AttendanceResponse{}, attendance.ErrInvalidTransition
	}

	if err := s.verifyIdentity(ctx, employeeID, req.Capture); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := s.checkLocation(ctx, employeeID, companyID, dayKey, record.Mode, req.Latitude, req.Longitude); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	expected := record.Status

	// A break still open at punch-out closes at the punch-out instant.
	if open := record.OpenBreak(); open >= 0 {
		record.Breaks[open].EndAt = &nowUTC
	}

	// A manually corrected day can be Present without a punch-in instant;
	// there is nothing to measure work against, so net minutes stay unset.
	if record.PunchInAt != nil {
		net := int(nowUTC.Sub(*record.PunchInAt).Minutes()) - record.BreakMinutes()
		record.NetWorkMinutes = &net
	}
	report := strings.TrimSpace(req.DailyReport)

	record.Status = attendance.StatusPunchedOut
	record.PunchOutAt = &nowUTC
	record.DailyReport = &report

	if err := s.attendanceRepo.UpdateIf(ctx, record, []attendance.Status{expected}); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(record), nil
}

// ManualCorrect implements attendance.AttendanceService. This is the HR
// escape hatch for forgotten punches and disputes: it overwrites the day's
// status outright and records who did it. Capability is enforced at the
// route boundary; no biometric or geofence check applies here.
func (s *AttendanceServiceImpl) ManualCorrect(ctx context.Context, req attendance.ManualCorrectRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	_, companyID, userID, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, req.Date, companyID)
	if err != nil && !errors.Is(err, attendance.ErrRecordNotFound) {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	if errors.Is(err, attendance.ErrRecordNotFound) {
		record = attendance.Attendance{
			ID:         uuid.NewString(),
			EmployeeID: req.EmployeeID,
			CompanyID:  companyID,
			Date:       req.Date,
			Mode:       attendance.ModeOffice,
		}
	}

	record.Status = req.Status
	record.Remarks = &req.Remarks
	record.CorrectedBy = &userID

	updated, err := s.attendanceRepo.Upsert(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to apply manual correction: %w", err)
	}

	return attendance.ToResponse(updated), nil
}

// History implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) History(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	employeeID, companyID, _, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListByEmployee(ctx, employeeID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance history: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToResponse(rec))
	}
	return responses, nil
}
