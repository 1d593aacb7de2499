package employee

import "context"

type EmployeeRepository interface {
	// GetByID retrieves an employee with company isolation.
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)

	// GetBiometricProfile retrieves the enrolled descriptor for an employee.
	GetBiometricProfile(ctx context.Context, employeeID string) (BiometricProfile, error)

	// SaveBiometricProfile stores or wholesale-replaces an enrolled profile.
	SaveBiometricProfile(ctx context.Context, profile BiometricProfile) error
}
