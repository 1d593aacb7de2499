package employee

import (
	"github.com/worknai009/worknai-HRMS-sub000/internal/pkg/validator"
)

type EnrollBiometricRequest struct {
	EmployeeID string    `json:"employee_id"`
	Descriptor []float64 `json:"descriptor"`
	ImageRef   string    `json:"image_ref"`
}

func (r *EnrollBiometricRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(r.Descriptor) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "descriptor",
			Message: "descriptor is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EnrollBiometricResponse struct {
	EmployeeID string `json:"employee_id"`
	EnrolledAt string `json:"enrolled_at"`
}
