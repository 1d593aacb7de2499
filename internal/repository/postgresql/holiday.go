package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/worknai009/worknai-HRMS-sub000/internal/domain/holiday"
	"github.com/worknai009/worknai-HRMS-sub000/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}

// Create implements holiday.HolidayRepository.
func (h *holidayRepository) Create(ctx context.Context, hol holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		INSERT INTO holidays (id, company_id, date, reason)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (company_id, date) DO NOTHING
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, hol.ID, hol.CompanyID, hol.Date, hol.Reason).Scan(&hol.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.Holiday{}, holiday.ErrHolidayExists
		}
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}
	return hol, nil
}

// ListInRange implements holiday.HolidayRepository.
func (h *holidayRepository) ListInRange(ctx context.Context, companyID, startDate, endDate string) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		SELECT id, company_id, date, reason, created_at
		FROM holidays
		WHERE company_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, companyID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var out []holiday.Holiday
	for rows.Next() {
		var hol holiday.Holiday
		if err := rows.Scan(&hol.ID, &hol.CompanyID, &hol.Date, &hol.Reason, &hol.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		out = append(out, hol)
	}
	return out, rows.Err()
}
