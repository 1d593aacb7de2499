package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/worknai009/worknai-HRMS-sub000/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	now          func() time.Time
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		now:          time.Now,
	}
}

func companyFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}
	return companyID, nil
}

// EnrollBiometric implements employee.EmployeeService.
func (s *EmployeeServiceImpl) EnrollBiometric(ctx context.Context, req employee.EnrollBiometricRequest) (employee.EnrollBiometricResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EnrollBiometricResponse{}, err
	}

	companyID, err := companyFromContext(ctx)
	if err != nil {
		return employee.EnrollBiometricResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID); err != nil {
		return employee.EnrollBiometricResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	enrolledAt := s.now().UTC()
	err = s.employeeRepo.SaveBiometricProfile(ctx, employee.BiometricProfile{
		EmployeeID: req.EmployeeID,
		Descriptor: req.Descriptor,
		ImageRef:   req.ImageRef,
		EnrolledAt: enrolledAt,
	})
	if err != nil {
		return employee.EnrollBiometricResponse{}, fmt.Errorf("failed to save biometric profile: %w", err)
	}

	return employee.EnrollBiometricResponse{
		EmployeeID: req.EmployeeID,
		EnrolledAt: enrolledAt.Format(time.RFC3339),
	}, nil
}
