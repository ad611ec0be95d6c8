package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MeetingID identifies a meeting. It is always generated by the booking
// service, never supplied by a caller.
type MeetingID uuid.UUID

// NewMeetingID generates a random meeting id.
func NewMeetingID() MeetingID {
	return MeetingID(uuid.New())
}

// ParseMeetingID parses a meeting id taken from a request path.
func ParseMeetingID(s string) (MeetingID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return MeetingID{}, fmt.Errorf("%w: %v", ErrInvalidMeetingID, err)
	}
	return MeetingID(id), nil
}

// UUID returns the underlying UUID.
func (id MeetingID) UUID() uuid.UUID {
	return uuid.UUID(id)
}

func (id MeetingID) String() string {
	return uuid.UUID(id).String()
}

// MarshalText implements encoding.TextMarshaler.
func (id MeetingID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}

// MeetingName is a validated, non-empty meeting name.
// The zero value is not a valid name; use NewMeetingName.
type MeetingName struct {
	value string
}

// NewMeetingName validates name. Names made only of whitespace are rejected.
func NewMeetingName(name string) (MeetingName, error) {
	if strings.TrimSpace(name) == "" {
		return MeetingName{}, ErrInvalidName
	}
	return MeetingName{value: name}, nil
}

func (n MeetingName) String() string {
	return n.value
}

// IsZero reports whether n was not built through NewMeetingName.
func (n MeetingName) IsZero() bool {
	return n.value == ""
}

// MarshalText implements encoding.TextMarshaler.
func (n MeetingName) MarshalText() ([]byte, error) {
	return []byte(n.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler and applies the same
// validation as NewMeetingName.
func (n *MeetingName) UnmarshalText(text []byte) error {
	name, err := NewMeetingName(string(text))
	if err != nil {
		return err
	}
	*n = name
	return nil
}

// DatePrecision is the resolution meeting dates are stored and compared at.
// It matches Postgres timestamptz.
const DatePrecision = time.Microsecond

// Meeting is a scheduled meeting owned by a studio.
// Meetings are never updated once created.
type Meeting struct {
	ID       MeetingID
	StudioID StudioID
	Name     MeetingName
	Date     time.Time
}

// IsAfter reports whether the meeting is scheduled strictly after t.
func (m *Meeting) IsAfter(t time.Time) bool {
	return m.Date.After(t)
}

// HasStarted reports whether the meeting date is strictly before now.
// A meeting scheduled exactly at now has not started yet.
func (m *Meeting) HasStarted(now time.Time) bool {
	return m.Date.Before(now)
}

// CollidesWith reports whether date is the exact same instant as the meeting.
func (m *Meeting) CollidesWith(date time.Time) bool {
	return m.Date.Equal(date)
}
