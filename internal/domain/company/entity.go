package company

import "time"

// Company owns the timezone every attendance and payroll calculation for its
// employees is anchored to.
type Company struct {
	ID        string
	Name      string
	Timezone  string // IANA identifier, e.g. "Asia/Jakarta"
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultRadiusMeters applies when a location is configured without an
// explicit radius.
const DefaultRadiusMeters = 3000

// Location is a circular punch-in zone registered for a company.
type Location struct {
	ID           string
	CompanyID    string
	Name         string
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
	CreatedAt    time.Time
}
