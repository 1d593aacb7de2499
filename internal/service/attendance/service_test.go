package attendance

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worknai009/worknai-HRMS-sub000/internal/domain/attendance"
	"github.com/worknai009/worknai-HRMS-sub000/internal/domain/company"
	"github.com/worknai009/worknai-HRMS-sub000/internal/domain/employee"
	"github.com/worknai009/worknai-HRMS-sub000/internal/domain/leave"
	"github.com/worknai009/worknai-HRMS-sub000/internal/pkg/biometric"
	"github.com/worknai009/worknai-HRMS-sub000/internal/repository/memory"
)

const (
	testCompanyID  = "company-1"
	testEmployeeID = "employee-1"
	testUserID     = "user-1"

	// HQ coordinates used by the seeded punch zone.
	hqLat = -6.2
	hqLng = 106.8167
)

var enrolledDescriptor = []float64{0.1, 0.2, 0.3, 0.4}

func authContext(t *testing.T, employeeID string) context.Context {
	t.Helper()

	auth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := auth.Encode(map[string]interface{}{
		"user_id":     testUserID,
		"employee_id": employeeID,
		"company_id":  testCompanyID,
		"role":        "employee",
		"type":        "access",
	})
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

type fixture struct {
	svc            *AttendanceServiceImpl
	attendanceRepo *memory.AttendanceRepositoryMemory
	leaveRepo      *memory.LeaveRepositoryMemory
	ctx            context.Context
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	attendanceRepo := memory.NewAttendanceRepository()
	employeeRepo := memory.NewEmployeeRepository()
	companyRepo := memory.NewCompanyRepository()
	leaveRepo := memory.NewLeaveRepository()

	companyRepo.Seed(company.Company{
		ID:       testCompanyID,
		Name:     "Acme",
		Timezone: "Asia/Jakarta",
	})
	_, err := companyRepo.ReplaceLocations(context.Background(), testCompanyID, []company.Location{
		{ID: "loc-1", CompanyID: testCompanyID, Name: "HQ", Latitude: hqLat, Longitude: hqLng, RadiusMeters: 200},
	})
	require.NoError(t, err)

	employeeRepo.Seed(employee.Employee{
		ID:          testEmployeeID,
		CompanyID:   testCompanyID,
		FullName:    "Jamie Doe",
		BasicSalary: decimal.NewFromInt(3000),
	})
	require.NoError(t, employeeRepo.SaveBiometricProfile(context.Background(), employee.BiometricProfile{
		EmployeeID: testEmployeeID,
		Descriptor: enrolledDescriptor,
	}))

	svc := NewAttendanceService(
		attendanceRepo, employeeRepo, companyRepo, leaveRepo,
		biometric.NewVerifier(0.55), 10,
	).(*AttendanceServiceImpl)

	// 2026-01-12 09:00 in Asia/Jakarta (UTC+7).
	svc.now = func() time.Time {
		return time.Date(2026, 1, 12, 2, 0, 0, 0, time.UTC)
	}

	return &fixture{
		svc:            svc,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		ctx:            authContext(t, testEmployeeID),
	}
}

func matchingCapture() attendance.Capture {
	return attendance.Capture{
		Descriptor:   enrolledDescriptor,
		FaceDetected: true,
	}
}

func punchIn(f *fixture) attendance.PunchInRequest {
	return attendance.PunchInRequest{
		Capture:  matchingCapture(),
		Latitude: hqLat, Longitude: hqLng,
		Mode: attendance.ModeOffice,
	}
}

func TestPunchIn(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.PunchIn(f.ctx, punchIn(f))
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusPresent, resp.Status)
	assert.Equal(t, "2026-01-12", resp.Date)
	require.NotNil(t, resp.PunchInTime)
	assert.Equal(t, "2026-01-12T02:00:00Z", *resp.PunchInTime)
	require.NotNil(t, resp.Remarks)
	assert.Contains(t, *resp.Remarks, "HQ")
}

func TestPunchInTwiceSameDay(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.PunchIn(f.ctx, punchIn(f))
	require.NoError(t, err)

	_, err = f.svc.PunchIn(f.ctx, punchIn(f))
	assert.ErrorIs(t, err, attendance.ErrInvalidTransition)
}

func TestPunchInConcurrent(t *testing.T) {
	f := newFixture(t)

	const attempts = 16
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.svc.PunchIn(f.ctx, punchIn(f))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, attendance.ErrInvalidTransition)
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one concurrent punch-in must win")
}

func TestPunchInOutsideGeofence(t *testing.T) {
	f := newFixture(t)

	req := punchIn(f)
	req.Latitude = -6.25 // ~5km south of HQ
	_, err := f.svc.PunchIn(f.ctx, req)
	assert.ErrorIs(t, err, attendance.ErrOutOfGeofence)

	// A rejected attempt must not leave a record behind.
	_, err = f.attendanceRepo.GetByEmployeeAndDate(f.ctx, testEmployeeID, "2026-01-12", testCompanyID)
	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
}

func TestPunchInBiometricMismatch(t *testing.T) {
	f := newFixture(t)

	req := punchIn(f)
	req.Capture.Descriptor = []float64{0.9, 0.9, 0.9, 0.9}
	_, err := f.svc.PunchIn(f.ctx, req)
	assert.ErrorIs(t, err, attendance.ErrVerificationFailed)
}

func TestPunchInNoFaceDetected(t *testing.T) {
	f := newFixture(t)

	req := punchIn(f)
	req.Capture.FaceDetected = false
	_, err := f.svc.PunchIn(f.ctx, req)
	assert.ErrorIs(t, err, attendance.ErrVerificationFailed)
}

func TestPunchInWFHWithoutApproval(t *testing.T) {
	f := newFixture(t)

	req := punchIn(f)
	req.Mode = attendance.ModeWFH
	req.Latitude, req.Longitude = 48.85, 2.35 // far from any zone
	_, err := f.svc.PunchIn(f.ctx, req)
	assert.ErrorIs(t, err, attendance.ErrWFHNotApproved)
}

func TestPunchInWFHApproved(t *testing.T) {
	f := newFixture(t)

	_, err := f.leaveRepo.Create(f.ctx, leave.LeaveRequest{
		ID:         "leave-1",
		EmployeeID: testEmployeeID,
		CompanyID:  testCompanyID,
		LeaveType:  leave.LeaveTypeWFH,
		DayType:    leave.DayTypeFull,
		StartDate:  "2026-01-12",
		EndDate:    "2026-01-14",
		Status:     leave.LeaveStatusApproved,
	})
	require.NoError(t, err)

	req := punchIn(f)
	req.Mode = attendance.ModeWFH
	req.Latitude, req.Longitude = 48.85, 2.35
	resp, err := f.svc.PunchIn(f.ctx, req)
	require.NoError(t, err)
	assert.Equal(t, attendance.ModeWFH, resp.Mode)
}

func TestBreakCycle(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.PunchIn(f.ctx, punchIn(f))
	require.NoError(t, err)

	// Break from 12:00 to 12:45 local.
	f.svc.now = func() time.Time { return time.Date(2026, 1, 12, 5, 0, 0, 0, time.UTC) }
	resp, err := f.svc.BreakStart(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusOnBreak, resp.Status)

	// Starting another break while on break is rejected.
	_, err = f.svc.BreakStart(f.ctx)
	assert.ErrorIs(t, err, attendance.ErrInvalidTransition)

	f.svc.now = func() time.Time { return time.Date(2026, 1, 12, 5, 45, 0, 0, time.UTC) }
	resp, err = f.svc.BreakEnd(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, resp.Status)

	// Ending a break twice is rejected.
	_, err = f.svc.BreakEnd(f.ctx)
	assert.ErrorIs(t, err, attendance.ErrInvalidTransition)
}

func TestBreakStartWithoutPunchIn(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.BreakStart(f.ctx)
	assert.ErrorIs(t, err, attendance.ErrInvalidTransition)
}

func TestPunchOut(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.PunchIn(f.ctx, punchIn(f))
	require.NoError(t, err)

	// 45 minute break.
	f.svc.now = func() time.Time { return time.Date(2026, 1, 12, 5, 0, 0, 0, time.UTC) }
	_, err = f.svc.BreakStart(f.ctx)
	require.NoError(t, err)
	f.svc.now = func() time.Time { return time.Date(2026, 1, 12, 5, 45, 0, 0, time.UTC) }
	_, err = f.svc.BreakEnd(f.ctx)
	require.NoError(t, err)

	// Punch out at 18:00 local: 9h elapsed minus 45m break.
	f.svc.now = func() time.Time { return time.Date(2026, 1, 12, 11, 0, 0, 0, time.UTC) }
	resp, err := f.svc.PunchOut(f.ctx, attendance.PunchOutRequest{
		Capture:     matchingCapture(),
		Latitude:    hqLat,
		Longitude:   hqLng,
		DailyReport: "shipped the quarterly reconciliation job",
	})
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusPunchedOut, resp.Status)
	require.NotNil(t, resp.NetWorkHours)
	assert.InDelta(t, 8.25, *resp.NetWorkHours, 0.001)
}

func TestPunchOutClosesOpenBreak(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.PunchIn(f.ctx, punchIn(f))
	require.NoError(t, err)

	f.svc.now = func() time.Time { return time.Date(2026, 1, 12, 5, 0, 0, 0, time.UTC) }
	_, err = f.svc.BreakStart(f.ctx)
	require.NoError(t, err)

	// Punch out while still on break; the break closes at punch-out time.
	f.svc.now = func() time.Time { return time.Date(2026, 1, 12, 6, 0, 0, 0, time.UTC) }
	resp, err := f.svc.PunchOut(f.ctx, attendance.PunchOutRequest{
		Capture:     matchingCapture(),
		Latitude:    hqLat,
		Longitude:   hqLng,
		DailyReport: "left early for a site visit",
	})
	require.NoError(t, err)

	require.Len(t, resp.Breaks, 1)
	require.NotNil(t, resp.Breaks[0].EndAt)
	require.NotNil(t, resp.NetWorkHours)
	assert.InDelta(t, 3.0, *resp.NetWorkHours, 0.001) // 4h elapsed minus 1h break
}

func TestPunchOutWithoutReport(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.PunchIn(f.ctx, punchIn(f))
	require.NoError(t, err)

	_, err = f.svc.PunchOut(f.ctx, attendance.PunchOutRequest{
		Capture:     matchingCapture(),
		Latitude:    hqLat,
		Longitude:   hqLng,
		DailyReport: "   ok   ",
	})
	assert.ErrorIs(t, err, attendance.ErrMissingDailyReport)
}

func TestPunchOutWithoutPunchIn(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.PunchOut(f.ctx, attendance.PunchOutRequest{
		Capture:     matchingCapture(),
		Latitude:    hqLat,
		Longitude:   hqLng,
		DailyReport: "wrapped up the onboarding flows",
	})
	assert.ErrorIs(t, err, attendance.ErrInvalidTransition)
}

func TestPunchOutTwice(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.PunchIn(f.ctx, punchIn(f))
	require.NoError(t, err)

	out := attendance.PunchOutRequest{
		Capture:     matchingCapture(),
		Latitude:    hqLat,
		Longitude:   hqLng,
		DailyReport: "wrapped up the onboarding flows",
	}
	_, err = f.svc.PunchOut(f.ctx, out)
	require.NoError(t, err)

	_, err = f.svc.PunchOut(f.ctx, out)
	assert.ErrorIs(t, err, attendance.ErrInvalidTransition)
}

func TestManualCorrectExistingRecord(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.PunchIn(f.ctx, punchIn(f))
	require.NoError(t, err)

	resp, err := f.svc.ManualCorrect(f.ctx, attendance.ManualCorrectRequest{
		EmployeeID: testEmployeeID,
		Date:       "2026-01-12",
		Status:     attendance.StatusHalfDay,
		Remarks:    "left sick at noon, confirmed by manager",
	})
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusHalfDay, resp.Status)
	require.NotNil(t, resp.CorrectedBy)
	assert.Equal(t, testUserID, *resp.CorrectedBy)
	// The original punch-in survives the correction.
	assert.NotNil(t, resp.PunchInTime)
}

func TestManualCorrectCreatesRecord(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.ManualCorrect(f.ctx, attendance.ManualCorrectRequest{
		EmployeeID: testEmployeeID,
		Date:       "2026-01-09",
		Status:     attendance.StatusPresent,
		Remarks:    "badge reader outage, punch confirmed on camera",
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-01-09", resp.Date)
	assert.Equal(t, attendance.StatusPresent, resp.Status)
}

func TestPunchOutAfterManualCorrectPresent(t *testing.T) {
	f := newFixture(t)

	// HR marks today Present for a forgotten punch-in; the record carries no
	// punch-in instant.
	_, err := f.svc.ManualCorrect(f.ctx, attendance.ManualCorrectRequest{
		EmployeeID: testEmployeeID,
		Date:       "2026-01-12",
		Status:     attendance.StatusPresent,
		Remarks:    "badge reader outage, punch confirmed on camera",
	})
	require.NoError(t, err)

	f.svc.now = func() time.Time { return time.Date(2026, 1, 12, 11, 0, 0, 0, time.UTC) }
	resp, err := f.svc.PunchOut(f.ctx, attendance.PunchOutRequest{
		Capture:     matchingCapture(),
		Latitude:    hqLat,
		Longitude:   hqLng,
		DailyReport: "wrapped up the onboarding flows",
	})
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusPunchedOut, resp.Status)
	require.NotNil(t, resp.PunchOutTime)
	// Without a punch-in instant there is nothing to measure work against.
	assert.Nil(t, resp.NetWorkHours)
}

func TestHistory(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.ManualCorrect(f.ctx, attendance.ManualCorrectRequest{
		EmployeeID: testEmployeeID,
		Date:       "2026-01-09",
		Status:     attendance.StatusPresent,
		Remarks:    "backfill",
	})
	require.NoError(t, err)
	_, err = f.svc.PunchIn(f.ctx, punchIn(f))
	require.NoError(t, err)

	history, err := f.svc.History(f.ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "2026-01-12", history[0].Date)
	assert.Equal(t, "2026-01-09", history[1].Date)
}
