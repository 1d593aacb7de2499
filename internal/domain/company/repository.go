package company

import "context"

type CompanyRepository interface {
	// GetByID retrieves a company with its timezone.
	GetByID(ctx context.Context, id string) (Company, error)

	// ListLocations returns every registered punch zone for a company.
	ListLocations(ctx context.Context, companyID string) ([]Location, error)

	// ReplaceLocations atomically swaps a company's zone set for the given one.
	ReplaceLocations(ctx context.Context, companyID string, locations []Location) ([]Location, error)
}
