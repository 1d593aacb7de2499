package attendance

import (
	"time"
)

// Status is the state of one attendance record. NotStarted is implicit: the
// absence of a record for a local day.
type Status string

const (
	StatusPresent    Status = "present"
	StatusOnBreak    Status = "on_break"
	StatusPunchedOut Status = "punched_out"

	// Set only through HR manual correction, never by employee self-action.
	StatusAbsent  Status = "absent"
	StatusOnLeave Status = "on_leave"
	StatusHalfDay Status = "half_day"
)

// CorrectableStatuses are the targets HR manual correction may set.
var CorrectableStatuses = []Status{StatusPresent, StatusAbsent, StatusHalfDay, StatusOnLeave}

type Mode string

const (
	ModeOffice Mode = "office"
	ModeWFH    Mode = "wfh"
)

// BreakInterval is one entry in a record's ordered break sequence. EndAt is
// nil while the break is open.
type BreakInterval struct {
	StartAt time.Time  `json:"start_at"`
	EndAt   *time.Time `json:"end_at"`
}

// Attendance is the record of one employee's attendance for one local
// calendar day. Date is a "YYYY-MM-DD" key in the company timezone and
// (EmployeeID, Date) is unique: at most one record per employee per local day.
type Attendance struct {
	ID             string
	EmployeeID     string
	CompanyID      string
	Date           string
	Status         Status
	Mode           Mode
	PunchInAt      *time.Time
	PunchOutAt     *time.Time
	Breaks         []BreakInterval
	NetWorkMinutes *int
	DailyReport    *string
	Remarks        *string
	CorrectedBy    *string // user id of the HR corrector, distinguishes override from self-report
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// OpenBreak returns the index of the unterminated break, or -1.
func (a *Attendance) OpenBreak() int {
	for i := len(a.Breaks) - 1; i >= 0; i-- {
		if a.Breaks[i].EndAt == nil {
			return i
		}
	}
	return -1
}

// BreakMinutes sums the durations of all closed breaks.
func (a *Attendance) BreakMinutes() int {
	var total time.Duration
	for _, b := range a.Breaks {
		if b.EndAt == nil {
			continue
		}
		total += b.EndAt.Sub(b.StartAt)
	}
	return int(total.Minutes())
}
