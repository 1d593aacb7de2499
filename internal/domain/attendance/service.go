package attendance

import "context"

// AttendanceService owns the per-day attendance state machine.
type AttendanceService interface {
	// PunchIn verifies biometrics and geofence, then opens today's record.
	PunchIn(ctx context.Context, req PunchInRequest) (AttendanceResponse, error)

	// PunchOut verifies biometrics, geofence and the daily report, closes any
	// open break, computes net work minutes and finalizes the record.
	PunchOut(ctx context.Context, req PunchOutRequest) (AttendanceResponse, error)

	// BreakStart opens a break on today's record.
	BreakStart(ctx context.Context) (AttendanceResponse, error)

	// BreakEnd closes the open break on today's record.
	BreakEnd(ctx context.Context) (AttendanceResponse, error)

	// ManualCorrect overwrites a day's status, bypassing all transition rules.
	// The caller's identity is recorded; capability is checked at the route.
	ManualCorrect(ctx context.Context, req ManualCorrectRequest) (AttendanceResponse, error)

	// History lists the calling employee's records, newest first.
	History(ctx context.Context) ([]AttendanceResponse, error)
}
