// Package booking holds the rules governing when a meeting may be created,
// listed and joined.
//
// Every operation takes the current time from its caller, so the service
// never reads the wall clock itself.
package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"
	"github.com/tendant/simple-meet/pkg/domain"
)

// Service orchestrates meeting creation, listing and join admission.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	store       MeetingStore
	credentials RoomCredentials
	logger      *slog.Logger
}

// NewService creates a new booking service.
func NewService(store MeetingStore, credentials RoomCredentials, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:       store,
		credentials: credentials,
		logger:      logger,
	}
}

// CreateMeeting schedules a meeting named name at date for studio.
//
// The date may equal now but not precede it, and no other meeting of the
// studio may be scheduled at the exact same instant. Overlapping meetings
// at different instants are accepted. Dates are truncated to
// domain.DatePrecision before they are compared or stored.
func (s *Service) CreateMeeting(ctx context.Context, name string, date time.Time, studio domain.StudioID, now time.Time) (*domain.Meeting, error) {
	meetingName, err := domain.NewMeetingName(name)
	if err != nil {
		return nil, err
	}

	if date.Before(now) {
		return nil, domain.ErrDateInThePast
	}
	date = date.Truncate(domain.DatePrecision)

	existing, err := s.store.ListMeetings(ctx, studio)
	if err != nil {
		return nil, storeError("list meetings", err)
	}

	taken := lo.ContainsBy(existing, func(m *domain.Meeting) bool {
		return m.CollidesWith(date)
	})
	if taken {
		return nil, domain.ErrDateAlreadyTaken
	}

	meeting := &domain.Meeting{
		ID:       domain.NewMeetingID(),
		StudioID: studio,
		Name:     meetingName,
		Date:     date,
	}

	if err := s.store.CreateMeeting(ctx, meeting); err != nil {
		// A store enforcing (studio, date) uniqueness reports the race lost
		// against a concurrent creation this way.
		if errors.Is(err, domain.ErrDateAlreadyTaken) {
			return nil, domain.ErrDateAlreadyTaken
		}
		return nil, storeError("create meeting", err)
	}

	s.logger.Debug("meeting created",
		"meeting_id", meeting.ID.String(),
		"studio_id", studio.String(),
		"date", date,
	)

	return meeting, nil
}

// ListMeetings returns the meetings of studio scheduled strictly after after,
// in the order the store returned them.
func (s *Service) ListMeetings(ctx context.Context, studio domain.StudioID, after time.Time) ([]*domain.Meeting, error) {
	meetings, err := s.store.ListMeetings(ctx, studio)
	if err != nil {
		return nil, storeError("list meetings", err)
	}

	return lo.Filter(meetings, func(m *domain.Meeting, _ int) bool {
		return m.IsAfter(after)
	}), nil
}

// JoinMeeting returns a join credential for the meeting with the given id.
// Joining exactly at the scheduled instant is allowed; afterwards it is too late.
func (s *Service) JoinMeeting(ctx context.Context, id domain.MeetingID, now time.Time) (domain.RoomToken, error) {
	meeting, err := s.store.FindMeeting(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrMeetingNotFound) {
			return domain.RoomToken{}, domain.ErrMeetingNotFound
		}
		return domain.RoomToken{}, storeError("find meeting", err)
	}
	if meeting == nil {
		return domain.RoomToken{}, domain.ErrMeetingNotFound
	}

	if meeting.HasStarted(now) {
		return domain.RoomToken{}, domain.ErrTooLate
	}

	token, err := s.credentials.CreateToken(ctx, meeting.ID)
	if err != nil {
		return domain.RoomToken{}, fmt.Errorf("create room token: %w: %w", domain.ErrCredential, err)
	}

	s.logger.Debug("join token issued",
		"meeting_id", meeting.ID.String(),
		"identity", token.Identity,
	)

	return token, nil
}

func storeError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStore, err)
}
