package leave

import (
	"github.com/worknai009/worknai-HRMS-sub000/internal/pkg/validator"
)

type ApplyLeaveRequest struct {
	LeaveType LeaveType `json:"leave_type"`
	DayType   DayType   `json:"day_type"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Reason    string    `json:"reason"`
}

func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	typeOK := false
	for _, t := range LeaveTypes {
		if r.LeaveType == t {
			typeOK = true
			break
		}
	}
	if !typeOK {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of paid, unpaid, sick, casual, wfh",
		})
	}

	if r.DayType == "" {
		r.DayType = DayTypeFull
	} else if r.DayType != DayTypeFull && r.DayType != DayTypeHalf {
		errs = append(errs, validator.ValidationError{
			Field:   "day_type",
			Message: "day_type must be full_day or half_day",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be YYYY-MM-DD",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be YYYY-MM-DD",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DecideLeaveRequest struct {
	LeaveID string      `json:"leave_id"`
	Status  LeaveStatus `json:"status"`
}

func (r *DecideLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_id",
			Message: "leave_id is required",
		})
	}

	if r.Status != LeaveStatusApproved && r.Status != LeaveStatusRejected {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be approved or rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveResponse struct {
	ID         string      `json:"id"`
	EmployeeID string      `json:"employee_id"`
	LeaveType  LeaveType   `json:"leave_type"`
	DayType    DayType     `json:"day_type"`
	StartDate  string      `json:"start_date"`
	EndDate    string      `json:"end_date"`
	Reason     string      `json:"reason"`
	Status     LeaveStatus `json:"status"`
	DecidedBy  *string     `json:"decided_by,omitempty"`
}

func ToResponse(l LeaveRequest) LeaveResponse {
	return LeaveResponse{
		ID:         l.ID,
		EmployeeID: l.EmployeeID,
		LeaveType:  l.LeaveType,
		DayType:    l.DayType,
		StartDate:  l.StartDate,
		EndDate:    l.EndDate,
		Reason:     l.Reason,
		Status:     l.Status,
		DecidedBy:  l.DecidedBy,
	}
}
