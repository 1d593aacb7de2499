package holiday

import "context"

type HolidayService interface {
	// Mark records a company-wide holiday on a local date.
	Mark(ctx context.Context, req MarkHolidayRequest) (HolidayResponse, error)

	// ListInRange returns the company's holidays within [startDate, endDate].
	ListInRange(ctx context.Context, startDate, endDate string) ([]HolidayResponse, error)
}
