package attendance

import (
	"time"

	"github.com/worknai009/worknai-HRMS-sub000/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// Capture is the output of the external face capability for one punch
// attempt: a descriptor vector plus whether a face was present at all.
type Capture struct {
	Descriptor   []float64 `json:"descriptor"`
	FaceDetected bool      `json:"face_detected"`
	ImageRef     string    `json:"image_ref"`
}

type PunchInRequest struct {
	Capture   Capture `json:"capture"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Mode      Mode    `json:"mode"`
}

func (r *PunchInRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Capture.Descriptor) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "capture.descriptor",
			Message: "descriptor is required",
		})
	}

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if r.Mode == "" {
		r.Mode = ModeOffice
	} else if r.Mode != ModeOffice && r.Mode != ModeWFH {
		errs = append(errs, validator.ValidationError{
			Field:   "mode",
			Message: "mode must be office or wfh",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PunchOutRequest struct {
	Capture     Capture `json:"capture"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	DailyReport string  `json:"daily_report"`
}

func (r *PunchOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Capture.Descriptor) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "capture.descriptor",
			Message: "descriptor is required",
		})
	}

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ManualCorrectRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     Status `json:"status"`
	Remarks    string `json:"remarks"`
}

func (r *ManualCorrectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}

	valid := false
	for _, s := range CorrectableStatuses {
		if r.Status == s {
			valid = true
			break
		}
	}
	if !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of present, absent, half_day, on_leave",
		})
	}

	if validator.IsEmpty(r.Remarks) {
		errs = append(errs, validator.ValidationError{
			Field:   "remarks",
			Message: "remarks are required for a manual correction",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	Date         string          `json:"date"`
	Status       Status          `json:"status"`
	Mode         Mode            `json:"mode"`
	PunchInTime  *string         `json:"punch_in_time"`
	PunchOutTime *string         `json:"punch_out_time"`
	Breaks       []BreakInterval `json:"breaks,omitempty"`
	NetWorkHours *float64        `json:"net_work_hours,omitempty"`
	DailyReport  *string         `json:"daily_report,omitempty"`
	Remarks      *string         `json:"remarks,omitempty"`
	CorrectedBy  *string         `json:"corrected_by,omitempty"`
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.UTC().Format(time.RFC3339)
	return &format
}

// ToResponse converts an Attendance entity to its transport shape.
func ToResponse(att Attendance) AttendanceResponse {
	var netHours *float64
	if att.NetWorkMinutes != nil {
		h := float64(*att.NetWorkMinutes) / 60.0
		netHours = &h
	}

	return AttendanceResponse{
		ID:           att.ID,
		EmployeeID:   att.EmployeeID,
		Date:         att.Date,
		Status:       att.Status,
		Mode:         att.Mode,
		PunchInTime:  timePtrToString(att.PunchInAt),
		PunchOutTime: timePtrToString(att.PunchOutAt),
		Breaks:       att.Breaks,
		NetWorkHours: netHours,
		DailyReport:  att.DailyReport,
		Remarks:      att.Remarks,
		CorrectedBy:  att.CorrectedBy,
	}
}
