package leave

import "time"

type LeaveType string

const (
	LeaveTypePaid   LeaveType = "paid"
	LeaveTypeUnpaid LeaveType = "unpaid"
	LeaveTypeSick   LeaveType = "sick"
	LeaveTypeCasual LeaveType = "casual"
	LeaveTypeWFH    LeaveType = "wfh"
)

var LeaveTypes = []LeaveType{LeaveTypePaid, LeaveTypeUnpaid, LeaveTypeSick, LeaveTypeCasual, LeaveTypeWFH}

type DayType string

const (
	DayTypeFull DayType = "full_day"
	DayTypeHalf DayType = "half_day"
)

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

// LeaveRequest lifecycle: pending -> approved | rejected, terminal once
// decided. StartDate/EndDate are local day keys in the company timezone.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	CompanyID  string
	LeaveType  LeaveType
	DayType    DayType
	StartDate  string
	EndDate    string
	Reason     string
	Status     LeaveStatus
	DecidedBy  *string
	DecidedAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Covers reports whether the request's date range includes the given day key.
// Day keys compare lexicographically because of the fixed YYYY-MM-DD layout.
func (l *LeaveRequest) Covers(date string) bool {
	return l.StartDate <= date && date <= l.EndDate
}
