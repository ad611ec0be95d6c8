package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// StudioID identifies a tenant owning meetings.
type StudioID uuid.UUID

// NewStudioID generates a random studio id.
func NewStudioID() StudioID {
	return StudioID(uuid.New())
}

// ParseStudioID parses a studio id coming from an already authenticated source.
func ParseStudioID(s string) (StudioID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return StudioID{}, fmt.Errorf("%w: %v", ErrInvalidStudioID, err)
	}
	return StudioID(id), nil
}

// UUID returns the underlying UUID.
func (id StudioID) UUID() uuid.UUID {
	return uuid.UUID(id)
}

func (id StudioID) String() string {
	return uuid.UUID(id).String()
}

// MarshalText implements encoding.TextMarshaler.
func (id StudioID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}
