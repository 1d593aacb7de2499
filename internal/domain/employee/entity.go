package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID          string
	CompanyID   string
	FullName    string
	BasicSalary decimal.Decimal // monthly
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BiometricProfile holds the enrolled face descriptor for one employee. It is
// written once at registration and only ever replaced wholesale by
// re-enrollment, never partially updated.
type BiometricProfile struct {
	EmployeeID string
	Descriptor []float64 // fixed-length vector from the external face model
	ImageRef   string
	EnrolledAt time.Time
}
