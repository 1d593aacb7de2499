package attendance

import "errors"

// Attendance domain errors
var (
	// Punch rejections; the attempt is not a transition and mutates nothing.
	ErrVerificationFailed = errors.New("biometric verification failed")
	ErrOutOfGeofence      = errors.New("you are outside every allowed zone")
	ErrWFHNotApproved     = errors.New("no approved WFH leave covers today")

	// State machine conflicts
	ErrInvalidTransition = errors.New("attendance state does not allow this transition")
	ErrRecordExists      = errors.New("attendance record already exists for this day")

	// Validation
	ErrMissingDailyReport = errors.New("daily report is required before punch-out")

	// General
	ErrRecordNotFound = errors.New("attendance record not found")
)
