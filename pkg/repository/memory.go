package repository

import (
	"context"
	"sync"

	"github.com/tendant/simple-meet/pkg/domain"
)

// MemoryMeetingsRepository keeps meetings in process memory. It enforces the
// same (studio, date) uniqueness as the Postgres schema and is meant for
// development and tests.
type MemoryMeetingsRepository struct {
	mu       sync.RWMutex
	meetings map[domain.MeetingID]domain.Meeting
	byStudio map[domain.StudioID][]domain.MeetingID
}

// NewMemoryMeetingsRepository creates an empty in-memory repository.
func NewMemoryMeetingsRepository() *MemoryMeetingsRepository {
	return &MemoryMeetingsRepository{
		meetings: make(map[domain.MeetingID]domain.Meeting),
		byStudio: make(map[domain.StudioID][]domain.MeetingID),
	}
}

// CreateMeeting stores a copy of meeting.
func (r *MemoryMeetingsRepository) CreateMeeting(_ context.Context, meeting *domain.Meeting) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.byStudio[meeting.StudioID] {
		existing := r.meetings[id]
		if existing.CollidesWith(meeting.Date) {
			return domain.ErrDateAlreadyTaken
		}
	}

	r.meetings[meeting.ID] = *meeting
	r.byStudio[meeting.StudioID] = append(r.byStudio[meeting.StudioID], meeting.ID)
	return nil
}

// ListMeetings returns copies of the meetings of studio in creation order.
func (r *MemoryMeetingsRepository) ListMeetings(_ context.Context, studio domain.StudioID) ([]*domain.Meeting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byStudio[studio]
	meetings := make([]*domain.Meeting, 0, len(ids))
	for _, id := range ids {
		meeting := r.meetings[id]
		meetings = append(meetings, &meeting)
	}
	return meetings, nil
}

// FindMeeting returns a copy of the meeting with the given id.
func (r *MemoryMeetingsRepository) FindMeeting(_ context.Context, id domain.MeetingID) (*domain.Meeting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meeting, ok := r.meetings[id]
	if !ok {
		return nil, domain.ErrMeetingNotFound
	}
	return &meeting, nil
}
