package payroll

import "errors"

var (
	ErrInvalidRange = errors.New("end date is before start date")
)
