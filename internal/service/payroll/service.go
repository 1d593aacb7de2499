package payroll

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/worknai009/worknai-HRMS-sub000/internal/domain/attendance"
	"github.com/worknai009/worknai-HRMS-sub000/internal/domain/employee"
	"github.com/worknai009/worknai-HRMS-sub000/internal/domain/holiday"
	"github.com/worknai009/worknai-HRMS-sub000/internal/domain/leave"
	"github.com/worknai009/worknai-HRMS-sub000/internal/domain/payroll"
	"github.com/worknai009/worknai-HRMS-sub000/internal/domain/user"
	"github.com/worknai009/worknai-HRMS-sub000/internal/pkg/calendar"
)

var (
	weightFull = decimal.NewFromInt(1)
	weightHalf = decimal.New(5, -1) // 0.5
)

type PayrollServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRepository
	holidayRepo    holiday.HolidayRepository
	employeeRepo   employee.EmployeeRepository
}

func NewPayrollService(
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
	holidayRepo holiday.HolidayRepository,
	employeeRepo employee.EmployeeRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		holidayRepo:    holidayRepo,
		employeeRepo:   employeeRepo,
	}
}

func claimsFromContext(ctx context.Context) (employeeID, companyID string, role user.Role, err error) {
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

	roleStr, _ := claims["role"].(string)

	return employeeID, companyID, user.Role(roleStr), nil
}

// ComputePayroll implements payroll.PayrollService. The computation is a pure
// read: it enumerates local days in [start, end], classifies each one by
// precedence (holiday, then approved leave, then the attendance record, else
// absent) and prices every payable day at that month's per-day rate.
func (s *PayrollServiceImpl) ComputePayroll(ctx context.Context, req payroll.ComputePayrollRequest) (payroll.Snapshot, error) {
	if err := req.Validate(); err != nil {
		return payroll.Snapshot{}, err
	}

	callerEmployeeID, companyID, role, err := claimsFromContext(ctx)
	if err != nil {
		return payroll.Snapshot{}, err
	}

	// An employee may price their own range; anyone else's requires the
	// view-all capability.
	if req.EmployeeID != callerEmployeeID && !user.HasPermission(role, user.PermissionPayrollViewAll) {
		return payroll.Snapshot{}, user.ErrPermissionDenied
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID)
	if err != nil {
		return payroll.Snapshot{}, fmt.Errorf("failed to get employee: %w", err)
	}

	days, err := calendar.DaysBetween(req.StartDate, req.EndDate)
	if err != nil {
		return payroll.Snapshot{}, fmt.Errorf("%w: %s", payroll.ErrInvalidRange, err)
	}

	records, err := s.attendanceRepo.ListByEmployeeRange(ctx, req.EmployeeID, req.StartDate, req.EndDate, companyID)
	if err != nil {
		return payroll.Snapshot{}, fmt.Errorf("failed to list attendance: %w", err)
	}
	byDate := make(map[string]attendance.Attendance, len(records))
	for _, rec := range records {
		byDate[rec.Date] = rec
	}

	leaves, err := s.leaveRepo.ListApprovedInRange(ctx, req.EmployeeID, req.StartDate, req.EndDate)
	if err != nil {
		return payroll.Snapshot{}, fmt.Errorf("failed to list approved leave: %w", err)
	}

	holidays, err := s.holidayRepo.ListInRange(ctx, companyID, req.StartDate, req.EndDate)
	if err != nil {
		return payroll.Snapshot{}, fmt.Errorf("failed to list holidays: %w", err)
	}
	holidayByDate := make(map[string]holiday.Holiday, len(holidays))
	for _, h := range holidays {
		holidayByDate[h.Date] = h
	}

	snap := payroll.Snapshot{
		EmployeeID: req.EmployeeID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Breakdown:  make([]payroll.DayBreakdown, 0, len(days)),
	}

	salary := decimal.Zero
	rateByMonth := make(map[string]decimal.Decimal)

	for _, day := range days {
		bd := s.classifyDay(day, byDate, leaves, holidayByDate, &snap)
		snap.Breakdown = append(snap.Breakdown, bd)
		snap.TotalPayableDays = snap.TotalPayableDays.Add(bd.Weight)

		if bd.Weight.IsZero() {
			continue
		}

		monthKey := day[:7] // YYYY-MM
		rate, ok := rateByMonth[monthKey]
		if !ok {
			parsed, err := calendar.ParseDayKey(day)
			if err != nil {
				return payroll.Snapshot{}, fmt.Errorf("failed to parse day key: %w", err)
			}
			length := calendar.MonthLength(parsed.Year(), parsed.Month())
			rate = emp.BasicSalary.Div(decimal.NewFromInt(int64(length)))
			rateByMonth[monthKey] = rate
		}
		salary = salary.Add(rate.Mul(bd.Weight))
	}

	snap.EstimatedSalary = salary.Round(2)
	return snap, nil
}

// classifyDay applies the precedence rules to one local day and updates the
// snapshot tallies as a side effect.
func (s *PayrollServiceImpl) classifyDay(
	day string,
	byDate map[string]attendance.Attendance,
	leaves []leave.LeaveRequest,
	holidayByDate map[string]holiday.Holiday,
	snap *payroll.Snapshot,
) payroll.DayBreakdown {
	if h, ok := holidayByDate[day]; ok {
		snap.HolidayCount++
		return payroll.DayBreakdown{Date: day, Rule: "holiday", Weight: weightFull, Note: h.Reason}
	}

	// WFH approvals are not leave for pay purposes; the day falls through to
	// its attendance record.
	for _, l := range leaves {
		if l.LeaveType == leave.LeaveTypeWFH || !l.Covers(day) {
			continue
		}

		weight := weightFull
		if l.DayType == leave.DayTypeHalf {
			weight = weightHalf
		}

		if l.LeaveType == leave.LeaveTypeUnpaid {
			snap.UnpaidLeaveDays = snap.UnpaidLeaveDays.Add(weight)
			if l.DayType == leave.DayTypeHalf {
				// The half not on leave is presumed worked and stays payable.
				snap.PresentDays = snap.PresentDays.Add(weightHalf)
				return payroll.DayBreakdown{Date: day, Rule: "unpaid_leave_half", Weight: weightHalf, Note: l.Reason}
			}
			return payroll.DayBreakdown{Date: day, Rule: "unpaid_leave", Weight: decimal.Zero, Note: l.Reason}
		}

		snap.PaidLeaveDays = snap.PaidLeaveDays.Add(weight)
		rule := "paid_leave"
		if l.DayType == leave.DayTypeHalf {
			rule = "paid_leave_half"
			// The other half follows the attendance record if one exists.
			if rec, ok := byDate[day]; ok && countsAsWorked(rec.Status) {
				snap.PresentDays = snap.PresentDays.Add(weightHalf)
				return payroll.DayBreakdown{Date: day, Rule: rule, Weight: weightFull, Note: "half leave, half worked"}
			}
		}
		return payroll.DayBreakdown{Date: day, Rule: rule, Weight: weight, Note: l.Reason}
	}

	rec, ok := byDate[day]
	if !ok {
		snap.AbsentDays++
		return payroll.DayBreakdown{Date: day, Rule: "absent", Weight: decimal.Zero}
	}

	switch rec.Status {
	case attendance.StatusPunchedOut, attendance.StatusPresent, attendance.StatusOnBreak:
		snap.PresentDays = snap.PresentDays.Add(weightFull)
		note := ""
		if rec.Mode == attendance.ModeWFH {
			note = "worked from home"
		}
		return payroll.DayBreakdown{Date: day, Rule: "worked", Weight: weightFull, Note: note}
	case attendance.StatusHalfDay:
		snap.PresentDays = snap.PresentDays.Add(weightHalf)
		return payroll.DayBreakdown{Date: day, Rule: "half_day", Weight: weightHalf}
	case attendance.StatusOnLeave:
		// Set by manual correction without a leave request; treated as paid.
		snap.PaidLeaveDays = snap.PaidLeaveDays.Add(weightFull)
		return payroll.DayBreakdown{Date: day, Rule: "corrected_leave", Weight: weightFull}
	default:
		snap.AbsentDays++
		return payroll.DayBreakdown{Date: day, Rule: "absent", Weight: decimal.Zero}
	}
}

func countsAsWorked(status attendance.Status) bool {
	switch status {
	case attendance.StatusPunchedOut, attendance.StatusPresent, attendance.StatusOnBreak, attendance.StatusHalfDay:
		return true
	}
	return false
}
