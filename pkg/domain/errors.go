package domain

import "errors"

// Booking errors
var (
	ErrInvalidName      = errors.New("meeting name cannot be empty")
	ErrDateInThePast    = errors.New("cannot create a meeting in the past")
	ErrDateAlreadyTaken = errors.New("a meeting with the same date already exists")
)

// Admission errors
var (
	ErrMeetingNotFound = errors.New("meeting not found")
	ErrTooLate         = errors.New("it is too late to join the meeting")
)

// Identity errors
var (
	ErrInvalidStudioID  = errors.New("invalid studio id")
	ErrInvalidMeetingID = errors.New("invalid meeting id")
)

// Collaborator error kinds. Failures coming from the meeting store or the
// room credential issuer are wrapped with one of these so callers can tell
// infrastructure failures apart from business rule violations.
var (
	ErrStore      = errors.New("meeting store failure")
	ErrCredential = errors.New("room credential failure")
)
