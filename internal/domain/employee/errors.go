package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrProfileNotFound  = errors.New("biometric profile not found")
)
