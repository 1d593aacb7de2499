package company

import "context"

type CompanyService interface {
	// ConfigureLocations replaces the calling company's punch zone set.
	ConfigureLocations(ctx context.Context, req ConfigureLocationsRequest) ([]LocationResponse, error)

	// ListLocations returns the calling company's punch zones.
	ListLocations(ctx context.Context) ([]LocationResponse, error)
}
