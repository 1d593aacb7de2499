package holiday

import "context"

type HolidayRepository interface {
	// Create inserts a holiday. Returns ErrHolidayExists on a duplicate date
	// for the same company.
	Create(ctx context.Context, h Holiday) (Holiday, error)

	// ListInRange returns a company's holidays with date in [start, end].
	ListInRange(ctx context.Context, companyID, startDate, endDate string) ([]Holiday, error)
}
