package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/worknai009/worknai-HRMS-sub000/internal/domain/employee"
	"github.com/worknai009/worknai-HRMS-sub000/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepository) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, company_id, full_name, basic_salary, created_at, updated_at
		FROM employees
		WHERE id = $1 AND company_id = $2
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&emp.ID, &emp.CompanyID, &emp.FullName, &emp.BasicSalary, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

// GetBiometricProfile implements employee.EmployeeRepository.
func (e *employeeRepository) GetBiometricProfile(ctx context.Context, employeeID string) (employee.BiometricProfile, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT employee_id, descriptor, image_ref, enrolled_at
		FROM biometric_profiles
		WHERE employee_id = $1
	`

	var profile employee.BiometricProfile
	var descriptorJSON []byte
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&profile.EmployeeID, &descriptorJSON, &profile.ImageRef, &profile.EnrolledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.BiometricProfile{}, employee.ErrProfileNotFound
		}
		return employee.BiometricProfile{}, fmt.Errorf("failed to get biometric profile: %w", err)
	}

	if err := json.Unmarshal(descriptorJSON, &profile.Descriptor); err != nil {
		return employee.BiometricProfile{}, fmt.Errorf("failed to decode descriptor: %w", err)
	}
	return profile, nil
}

// SaveBiometricProfile implements employee.EmployeeRepository. Re-enrollment
// replaces the stored descriptor wholesale.
func (e *employeeRepository) SaveBiometricProfile(ctx context.Context, profile employee.BiometricProfile) error {
	q := GetQuerier(ctx, e.db)

	descriptorJSON, err := json.Marshal(profile.Descriptor)
	if err != nil {
		return fmt.Errorf("failed to encode descriptor: %w", err)
	}

	query := `
		INSERT INTO biometric_profiles (employee_id, descriptor, image_ref, enrolled_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (employee_id) DO UPDATE SET
			descriptor = EXCLUDED.descriptor,
			image_ref = EXCLUDED.image_ref,
			enrolled_at = EXCLUDED.enrolled_at
	`

	_, err = q.Exec(ctx, query, profile.EmployeeID, descriptorJSON, profile.ImageRef, profile.EnrolledAt)
	if err != nil {
		return fmt.Errorf("failed to save biometric profile: %w", err)
	}
	return nil
}
