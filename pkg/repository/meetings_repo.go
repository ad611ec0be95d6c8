package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/tendant/simple-meet/pkg/domain"
)

// uniqueViolation is the Postgres SQLSTATE for unique_violation.
const uniqueViolation = "23505"

const studioDateConstraint = "meetings_studio_date_key"

// MeetingsRepository handles meeting persistence in Postgres.
type MeetingsRepository struct {
	db *sql.DB
}

// NewMeetingsRepository creates a new meetings repository.
func NewMeetingsRepository(db *sql.DB) *MeetingsRepository {
	return &MeetingsRepository{db: db}
}

// CreateMeeting inserts a new meeting. A second meeting for the same studio
// at the same instant is reported as domain.ErrDateAlreadyTaken.
func (r *MeetingsRepository) CreateMeeting(ctx context.Context, meeting *domain.Meeting) error {
	return r.CreateMeetingTx(ctx, r.db, meeting)
}

// CreateMeetingTx inserts a new meeting within a transaction.
func (r *MeetingsRepository) CreateMeetingTx(ctx context.Context, q Querier, meeting *domain.Meeting) error {
	query := `
		INSERT INTO meetings (id, studio_id, name, date)
		VALUES ($1, $2, $3, $4)
	`
	_, err := q.ExecContext(ctx, query,
		meeting.ID.UUID(),
		meeting.StudioID.UUID(),
		meeting.Name.String(),
		meeting.Date,
	)
	return translateError(err)
}

// ListMeetings retrieves all meetings owned by a studio.
func (r *MeetingsRepository) ListMeetings(ctx context.Context, studio domain.StudioID) ([]*domain.Meeting, error) {
	query := `
		SELECT id, studio_id, name, date
		FROM meetings
		WHERE studio_id = $1
	`
	rows, err := r.db.QueryContext(ctx, query, studio.UUID())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meetings []*domain.Meeting
	for rows.Next() {
		meeting, err := scanMeeting(rows)
		if err != nil {
			return nil, err
		}
		meetings = append(meetings, meeting)
	}

	return meetings, rows.Err()
}

// FindMeeting retrieves a meeting by ID.
func (r *MeetingsRepository) FindMeeting(ctx context.Context, id domain.MeetingID) (*domain.Meeting, error) {
	query := `
		SELECT id, studio_id, name, date
		FROM meetings
		WHERE id = $1
	`
	meeting, err := scanMeeting(r.db.QueryRowContext(ctx, query, id.UUID()))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrMeetingNotFound
	}
	if err != nil {
		return nil, err
	}
	return meeting, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMeeting(row scanner) (*domain.Meeting, error) {
	var (
		id       uuid.UUID
		studioID uuid.UUID
		name     string
		date     time.Time
	)
	if err := row.Scan(&id, &studioID, &name, &date); err != nil {
		return nil, err
	}

	meetingName, err := domain.NewMeetingName(name)
	if err != nil {
		return nil, fmt.Errorf("meeting %s has an invalid stored name: %v", id, err)
	}

	return &domain.Meeting{
		ID:       domain.MeetingID(id),
		StudioID: domain.StudioID(studioID),
		Name:     meetingName,
		Date:     date,
	}, nil
}

// translateError maps the (studio_id, date) unique violation to the domain
// error and leaves everything else untouched.
func translateError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation && pqErr.Constraint == studioDateConstraint {
		return errors.Join(domain.ErrDateAlreadyTaken, err)
	}
	return err
}
