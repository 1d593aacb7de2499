package memory

import (
	"context"
	"sync"

	"github.com/worknai009/worknai-HRMS-sub000/internal/domain/employee"
)

type EmployeeRepositoryMemory struct {
	mu        sync.Mutex
	employees map[string]employee.Employee
	profiles  map[string]employee.BiometricProfile
}

func NewEmployeeRepository() *EmployeeRepositoryMemory {
	return &EmployeeRepositoryMemory{
		employees: make(map[string]employee.Employee),
		profiles:  make(map[string]employee.BiometricProfile),
	}
}

// Seed registers an employee, for wiring up tests.
func (r *EmployeeRepositoryMemory) Seed(e employee.Employee) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.employees[e.ID] = e
}

func (r *EmployeeRepositoryMemory) GetByID(_ context.Context, id string, companyID string) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.employees[id]
	if !ok || e.CompanyID != companyID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *EmployeeRepositoryMemory) GetBiometricProfile(_ context.Context, employeeID string) (employee.BiometricProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.profiles[employeeID]
	if !ok {
		return employee.BiometricProfile{}, employee.ErrProfileNotFound
	}
	return p, nil
}

func (r *EmployeeRepositoryMemory) SaveBiometricProfile(_ context.Context, profile employee.BiometricProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.profiles[profile.EmployeeID] = profile
	return nil
}
