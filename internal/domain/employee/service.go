package employee

import "context"

type EmployeeService interface {
	// EnrollBiometric stores or replaces an employee's face descriptor.
	EnrollBiometric(ctx context.Context, req EnrollBiometricRequest) (EnrollBiometricResponse, error)
}
