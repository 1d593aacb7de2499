package memory

import (
	"context"
	"sync"

	"github.com/worknai009/worknai-HRMS-sub000/internal/domain/company"
)

type CompanyRepositoryMemory struct {
	mu        sync.Mutex
	companies map[string]company.Company
	locations map[string][]company.Location // keyed by companyID
}

func NewCompanyRepository() *CompanyRepositoryMemory {
	return &CompanyRepositoryMemory{
		companies: make(map[string]company.Company),
		locations: make(map[string][]company.Location),
	}
}

// Seed registers a company, for wiring up tests.
func (r *CompanyRepositoryMemory) Seed(c company.Company) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.companies[c.ID] = c
}

func (r *CompanyRepositoryMemory) GetByID(_ context.Context, id string) (company.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.companies[id]
	if !ok {
		return company.Company{}, company.ErrCompanyNotFound
	}
	return c, nil
}

func (r *CompanyRepositoryMemory) ListLocations(_ context.Context, companyID string) ([]company.Location, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]company.Location, len(r.locations[companyID]))
	copy(out, r.locations[companyID])
	return out, nil
}

func (r *CompanyRepositoryMemory) ReplaceLocations(_ context.Context, companyID string, locations []company.Location) ([]company.Location, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]company.Location, len(locations))
	copy(stored, locations)
	r.locations[companyID] = stored
	return stored, nil
}
