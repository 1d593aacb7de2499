package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/worknai009/worknai-HRMS-sub000/internal/domain/company"
	"github.com/worknai009/worknai-HRMS-sub000/internal/pkg/database"
)

type companyRepository struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepository{db: db}
}

// GetByID implements company.CompanyRepository.
func (c *companyRepository) GetByID(ctx context.Context, id string) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, name, timezone, created_at, updated_at
		FROM companies
		WHERE id = $1
	`

	var comp company.Company
	err := q.QueryRow(ctx, query, id).Scan(
		&comp.ID, &comp.Name, &comp.Timezone, &comp.CreatedAt, &comp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company: %w", err)
	}
	return comp, nil
}

// ListLocations implements company.CompanyRepository.
func (c *companyRepository) ListLocations(ctx context.Context, companyID string) ([]company.Location, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, company_id, name, latitude, longitude, radius_meters, created_at
		FROM company_locations
		WHERE company_id = $1
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	defer rows.Close()

	var out []company.Location
	for rows.Next() {
		var loc company.Location
		err := rows.Scan(&loc.ID, &loc.CompanyID, &loc.Name,
			&loc.Latitude, &loc.Longitude, &loc.RadiusMeters, &loc.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		out = append(out, loc)
	}
	return out, rows.Err()
}

// ReplaceLocations implements company.CompanyRepository. Delete and insert
// run in one transaction so readers never see a partial zone set.
func (c *companyRepository) ReplaceLocations(ctx context.Context, companyID string, locations []company.Location) ([]company.Location, error) {
	err := WithTransaction(ctx, c.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, c.db)

		if _, err := q.Exec(txCtx, `DELETE FROM company_locations WHERE company_id = $1`, companyID); err != nil {
			return fmt.Errorf("failed to clear locations: %w", err)
		}

		query := `
			INSERT INTO company_locations (id, company_id, name, latitude, longitude, radius_meters)
			VALUES ($1, $2, $3, $4, $5, $6)
		`
		for _, loc := range locations {
			_, err := q.Exec(txCtx, query,
				loc.ID, companyID, loc.Name, loc.Latitude, loc.Longitude, loc.RadiusMeters)
			if err != nil {
				return fmt.Errorf("failed to insert location %q: %w", loc.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.ListLocations(ctx, companyID)
}
