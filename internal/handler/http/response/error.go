package response

import (
	"errors"
	"net/http"

	"github.com/worknai009/worknai-HRMS-sub000/internal/domain/attendance"
	"github.com/worknai009/worknai-HRMS-sub000/internal/domain/company"
	"github.com/worknai009/worknai-HRMS-sub000/internal/domain/employee"
	"github.com/worknai009/worknai-HRMS-sub000/internal/domain/holiday"
	"github.com/worknai009/worknai-HRMS-sub000/internal/domain/leave"
	"github.com/worknai009/worknai-HRMS-sub000/internal/domain/payroll"
	"github.com/worknai009/worknai-HRMS-sub000/internal/domain/user"
	"github.com/worknai009/worknai-HRMS-sub000/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth / capability errors
	case errors.Is(err, user.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing access token")
	case errors.Is(err, user.ErrPermissionDenied):
		Forbidden(w, "Insufficient permissions")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrVerificationFailed):
		Forbidden(w, "Biometric verification failed")
	case errors.Is(err, attendance.ErrOutOfGeofence):
		Forbidden(w, "Location is outside all registered punch zones")
	case errors.Is(err, attendance.ErrWFHNotApproved):
		Forbidden(w, "No approved work-from-home leave covers today")
	case errors.Is(err, attendance.ErrMissingDailyReport):
		BadRequest(w, "A daily report is required to punch out", nil)
	case errors.Is(err, attendance.ErrInvalidTransition):
		Conflict(w, "The attendance record does not allow this action")
	case errors.Is(err, attendance.ErrRecordExists):
		Conflict(w, "An attendance record already exists for this day")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrOverlappingRequest):
		Conflict(w, "An existing leave request overlaps this range")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "A holiday already exists on this date")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidRange):
		BadRequest(w, "End date is before start date", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrProfileNotFound):
		NotFound(w, "No biometric profile enrolled for this employee")

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
