package user

type Permission string

const (
	// Attendance
	PermissionAttendancePunch   Permission = "attendance.punch"
	PermissionAttendanceViewOwn Permission = "attendance.view_own"
	PermissionAttendanceViewAll Permission = "attendance.view_all"
	PermissionAttendanceCorrect Permission = "attendance.correct"

	// Leave
	PermissionLeaveApply  Permission = "leave.apply"
	PermissionLeaveDecide Permission = "leave.decide"

	// Holidays
	PermissionHolidayManage Permission = "holiday.manage"

	// Payroll
	PermissionPayrollViewOwn Permission = "payroll.view_own"
	PermissionPayrollViewAll Permission = "payroll.view_all"

	// Company
	PermissionCompanyManage Permission = "company.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionAttendancePunch,
		PermissionAttendanceViewOwn,
		PermissionAttendanceViewAll,
		PermissionAttendanceCorrect,
		PermissionLeaveApply,
		PermissionLeaveDecide,
		PermissionHolidayManage,
		PermissionPayrollViewOwn,
		PermissionPayrollViewAll,
		PermissionCompanyManage,
	},
	RoleHR: {
		PermissionAttendancePunch,
		PermissionAttendanceViewOwn,
		PermissionAttendanceViewAll,
		PermissionAttendanceCorrect,
		PermissionLeaveApply,
		PermissionLeaveDecide,
		PermissionHolidayManage,
		PermissionPayrollViewOwn,
		PermissionPayrollViewAll,
	},
	RoleEmployee: {
		PermissionAttendancePunch,
		PermissionAttendanceViewOwn,
		PermissionLeaveApply,
		PermissionPayrollViewOwn,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
