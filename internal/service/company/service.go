package company

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/worknai009/worknai-HRMS-sub000/internal/domain/company"
)

type CompanyServiceImpl struct {
	companyRepo   company.CompanyRepository
	defaultRadius float64
}

func NewCompanyService(companyRepo company.CompanyRepository, defaultRadius float64) company.CompanyService {
	if defaultRadius <= 0 {
		defaultRadius = company.DefaultRadiusMeters
	}
	return &CompanyServiceImpl{
		companyRepo:   companyRepo,
		defaultRadius: defaultRadius,
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

// ConfigureLocations implements company.CompanyService.
func (s *CompanyServiceImpl) ConfigureLocations(ctx context.Context, req company.ConfigureLocationsRequest) ([]company.LocationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	companyID, err := companyFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.companyRepo.GetByID(ctx, companyID); err != nil {
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	locations := make([]company.Location, 0, len(req.Locations))
	for _, in := range req.Locations {
		radius := s.defaultRadius
		if in.RadiusMeters != nil {
			radius = *in.RadiusMeters
		}
		locations = append(locations, company.Location{
			ID:           uuid.NewString(),
			CompanyID:    companyID,
			Name:         in.Name,
			Latitude:     in.Latitude,
			Longitude:    in.Longitude,
			RadiusMeters: radius,
		})
	}

	saved, err := s.companyRepo.ReplaceLocations(ctx, companyID, locations)
	if err != nil {
		return nil, fmt.Errorf("failed to replace locations: %w", err)
	}

	return toLocationResponses(saved), nil
}

// ListLocations implements company.CompanyService.
func (s *CompanyServiceImpl) ListLocations(ctx context.Context) ([]company.LocationResponse, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return nil, err
	}

	locations, err := s.companyRepo.ListLocations(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	return toLocationResponses(locations), nil
}

func toLocationResponses(locations []company.Location) []company.LocationResponse {
	responses := make([]company.LocationResponse, 0, len(locations))
	for _, loc := range locations {
		responses = append(responses, company.LocationResponse{
			ID:           loc.ID,
			Name:         loc.Name,
			Latitude:     loc.Latitude,
			Longitude:    loc.Longitude,
			RadiusMeters: loc.RadiusMeters,
		})
	}
	return responses
}
