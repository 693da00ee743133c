package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/bde-polytech/backend/internal/app/models"
	"github.com/bde-polytech/backend/internal/db"
	"github.com/bde-polytech/backend/internal/pkg/apperrors"
	"github.com/bde-polytech/backend/internal/pkg/dberrors"
)

// Event uuids are generated by the caller and assumed globally unique, so a
// primary key collision is an infrastructure fault, not a domain conflict.
var createEventConstraints = dberrors.ConstraintMap{
	"pk_events":     apperrors.ErrInternal,
	"fk_events_bde": apperrors.ErrOrganizationNotFound,
}

// EventRepository handles database operations for events
type EventRepository struct {
	db *db.PostgresDB
}

// NewEventRepository creates a new event repository
func NewEventRepository(database *db.PostgresDB) *EventRepository {
	return &EventRepository{
		db: database,
	}
}

// Create inserts an event. Booking window bounds and the event date are each
// independently nullable.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	_, err := r.db.Pool.Exec(ctx, `
		INSERT INTO events (event_uuid, event_name, bde_uuid, booking_start, booking_end, event_date, is_draft)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		event.UUID, event.Name, event.BDEUUID,
		event.BookingStart, event.BookingEnd, event.EventDate, event.IsDraft)
	if err != nil {
		return dberrors.Translate(err, createEventConstraints, apperrors.ErrInternal)
	}

	return nil
}

// GetByUUID retrieves one event.
func (r *EventRepository) GetByUUID(ctx context.Context, uuid string) (*models.Event, error) {
	var event models.Event
	err := r.db.Pool.QueryRow(ctx, `
		SELECT event_uuid, event_name, bde_uuid, booking_start, booking_end, event_date, is_draft
		FROM events
		WHERE event_uuid = $1`,
		uuid).Scan(
		&event.UUID, &event.Name, &event.BDEUUID,
		&event.BookingStart, &event.BookingEnd, &event.EventDate, &event.IsDraft)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, dberrors.Translate(err, nil, apperrors.ErrInternal)
	}

	return &event, nil
}

// GetAllForOrganization retrieves every event of one organization, drafts
// included. Excluding drafts from public listings is the caller's concern.
func (r *EventRepository) GetAllForOrganization(ctx context.Context, bdeUUID string) ([]*models.Event, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT event_uuid, event_name, bde_uuid, booking_start, booking_end, event_date, is_draft
		FROM events
		WHERE bde_uuid = $1`,
		bdeUUID)
	if err != nil {
		return nil, dberrors.Translate(err, nil, apperrors.ErrInternal)
	}
	defer rows.Close()

	return scanEventRows(rows)
}

// GetAll retrieves every event.
func (r *EventRepository) GetAll(ctx context.Context) ([]*models.Event, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT event_uuid, event_name, bde_uuid, booking_start, booking_end, event_date, is_draft
		FROM events`)
	if err != nil {
		return nil, dberrors.Translate(err, nil, apperrors.ErrInternal)
	}
	defer rows.Close()

	return scanEventRows(rows)
}

func scanEventRows(rows pgx.Rows) ([]*models.Event, error) {
	var events []*models.Event
	for rows.Next() {
		var event models.Event
		if err := rows.Scan(&event.UUID, &event.Name, &event.BDEUUID,
			&event.BookingStart, &event.BookingEnd, &event.EventDate, &event.IsDraft); err != nil {
			return nil, dberrors.Translate(err, nil, apperrors.ErrInternal)
		}
		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, dberrors.Translate(err, nil, apperrors.ErrInternal)
	}

	return events, nil
}
