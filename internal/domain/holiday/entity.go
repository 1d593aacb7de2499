package holiday

import "time"

// Holiday is a company-wide paid non-working day. Immutable once created.
type Holiday struct {
	ID        string
	CompanyID string
	Date      string // local day key
	Reason    string
	CreatedAt time.Time
}
