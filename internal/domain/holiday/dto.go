package holiday

import (
	"github.com/worknai009/worknai-HRMS-sub000/internal/pkg/validator"
)

type MarkHolidayRequest struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

func (r *MarkHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type HolidayResponse struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

func ToResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:     h.ID,
		Date:   h.Date,
		Reason: h.Reason,
	}
}
