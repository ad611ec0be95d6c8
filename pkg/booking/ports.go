//go:generate go run go.uber.org/mock/mockgen -source=ports.go -destination=../../mocks/mock_ports.go -package=mocks
package booking

import (
	"context"

	"github.com/tendant/simple-meet/pkg/domain"
)

// MeetingStore persists meetings. Implementations must be safe for concurrent use.
type MeetingStore interface {
	// CreateMeeting persists a new meeting. It never silently drops a duplicate.
	CreateMeeting(ctx context.Context, meeting *domain.Meeting) error
	// ListMeetings returns every meeting owned by studio, in any order.
	ListMeetings(ctx context.Context, studio domain.StudioID) ([]*domain.Meeting, error)
	// FindMeeting returns domain.ErrMeetingNotFound when no meeting has the given id.
	FindMeeting(ctx context.Context, id domain.MeetingID) (*domain.Meeting, error)
}

// RoomCredentials mints join credentials for meeting rooms. Each call binds
// the credential to a fresh anonymous participant identity.
type RoomCredentials interface {
	CreateToken(ctx context.Context, meeting domain.MeetingID) (domain.RoomToken, error)
}
