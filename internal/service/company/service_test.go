package company

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worknai009/worknai-HRMS-sub000/internal/domain/company"
	"github.com/worknai009/worknai-HRMS-sub000/internal/repository/memory"
)

const testCompanyID = "company-1"

func authContext(t *testing.T) context.Context {
	t.Helper()

	auth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := auth.Encode(map[string]interface{}{
		"user_id":     "user-admin",
		"employee_id": "employee-admin",
		"company_id":  testCompanyID,
		"role":        "admin",
		"type":        "access",
	})
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

func newService(defaultRadius float64) company.CompanyService {
	repo := memory.NewCompanyRepository()
	repo.Seed(company.Company{ID: testCompanyID, Name: "Acme", Timezone: "Asia/Jakarta"})
	return NewCompanyService(repo, defaultRadius)
}

func TestConfigureLocations(t *testing.T) {
	svc := newService(500)
	ctx := authContext(t)

	radius := 150.0
	saved, err := svc.ConfigureLocations(ctx, company.ConfigureLocationsRequest{
		Locations: []company.LocationInput{
			{Name: "HQ", Latitude: -6.2, Longitude: 106.8167, RadiusMeters: &radius},
			{Name: "Warehouse", Latitude: -6.3, Longitude: 106.9},
		},
	})
	require.NoError(t, err)
	require.Len(t, saved, 2)

	assert.Equal(t, "HQ", saved[0].Name)
	assert.Equal(t, 150.0, saved[0].RadiusMeters)
	assert.NotEmpty(t, saved[0].ID)

	// No explicit radius falls back to the configured default.
	assert.Equal(t, 500.0, saved[1].RadiusMeters)
}

func TestConfigureLocationsReplacesExisting(t *testing.T) {
	svc := newService(500)
	ctx := authContext(t)

	_, err := svc.ConfigureLocations(ctx, company.ConfigureLocationsRequest{
		Locations: []company.LocationInput{
			{Name: "HQ", Latitude: -6.2, Longitude: 106.8167},
			{Name: "Warehouse", Latitude: -6.3, Longitude: 106.9},
		},
	})
	require.NoError(t, err)

	saved, err := svc.ConfigureLocations(ctx, company.ConfigureLocationsRequest{
		Locations: []company.LocationInput{
			{Name: "New Office", Latitude: -6.25, Longitude: 106.85},
		},
	})
	require.NoError(t, err)
	require.Len(t, saved, 1)

	listed, err := svc.ListLocations(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "New Office", listed[0].Name)
}

func TestConfigureLocationsRejectsNonPositiveRadius(t *testing.T) {
	svc := newService(500)
	ctx := authContext(t)

	radius := 0.0
	_, err := svc.ConfigureLocations(ctx, company.ConfigureLocationsRequest{
		Locations: []company.LocationInput{
			{Name: "HQ", Latitude: -6.2, Longitude: 106.8167, RadiusMeters: &radius},
		},
	})
	assert.Error(t, err)
}

func TestConfigureLocationsUnknownCompany(t *testing.T) {
	repo := memory.NewCompanyRepository()
	svc := NewCompanyService(repo, 500)
	ctx := authContext(t)

	_, err := svc.ConfigureLocations(ctx, company.ConfigureLocationsRequest{
		Locations: []company.LocationInput{
			{Name: "HQ", Latitude: -6.2, Longitude: 106.8167},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, company.ErrCompanyNotFound)
}

func TestListLocationsEmpty(t *testing.T) {
	svc := newService(500)
	ctx := authContext(t)

	listed, err := svc.ListLocations(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)
}
