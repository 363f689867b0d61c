package checkin

import "errors"

// RejectionError is a request-scoped, user-correctable rejection. The
// transport layer maps it to an unprocessable-entity response carrying the
// reason verbatim. It is never process-fatal.
type RejectionError struct {
	Reason string
}

func (e *RejectionError) Error() string { return e.Reason }

var (
	// ErrNotAllowed rejects attempts where the caller is not the check-in subject.
	ErrNotAllowed = &RejectionError{Reason: "User is not allowed to perform this action"}
	// ErrScheduleNotFound rejects attempts referencing an unknown schedule.
	ErrScheduleNotFound = &RejectionError{Reason: "Schedule not found for this room"}
	// ErrTooLate rejects attempts outside the check-in window. Nothing is persisted.
	ErrTooLate = &RejectionError{Reason: "Check-in window has already closed"}
	// ErrAlreadyCheckedIn rejects the second and later attempts for the same tuple.
	ErrAlreadyCheckedIn = &RejectionError{Reason: "User has been checked-in previously"}
)

// ErrDuplicateCheckIn is returned by the record store when the uniqueness
// constraint on (room schedule, class room, user) fires. The engine
// translates it to ErrAlreadyCheckedIn.
var ErrDuplicateCheckIn = errors.New("check-in already recorded for this schedule, room and user")

// IsRejection reports whether err is a user-facing rejection rather than an
// internal failure.
func IsRejection(err error) bool {
	var rej *RejectionError
	return errors.As(err, &rej)
}
