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

var createBookingConstraints = dberrors.ConstraintMap{
	"pk_bookings":        apperrors.ErrBookingAlreadyExists,
	"fk_bookings_users":  apperrors.ErrUserNotFound,
	"fk_bookings_events": apperrors.ErrEventNotFound,
}

// BookingRepository handles database operations for bookings
type BookingRepository struct {
	db *db.PostgresDB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(database *db.PostgresDB) *BookingRepository {
	return &BookingRepository{
		db: database,
	}
}

// Create inserts a booking linking a user to an event. Both ends must exist
// and the pair is unique.
func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	_, err := r.db.Pool.Exec(ctx, `
		INSERT INTO bookings (user_uuid, event_uuid)
		VALUES ($1, $2)`,
		booking.UserUUID, booking.EventUUID)
	if err != nil {
		return dberrors.Translate(err, createBookingConstraints, apperrors.ErrInternal)
	}

	return nil
}

// GetOne retrieves the booking of one user for one event, flattened with the
// event it targets.
func (r *BookingRepository) GetOne(ctx context.Context, userUUID, eventUUID string) (*models.EventBooking, error) {
	var booking models.EventBooking
	err := r.db.Pool.QueryRow(ctx, `
		SELECT b.user_uuid, e.event_uuid, e.event_name, e.bde_uuid, e.booking_start, e.booking_end, e.event_date, e.is_draft
		FROM bookings b
		JOIN events e ON e.event_uuid = b.event_uuid
		WHERE b.user_uuid = $1 AND b.event_uuid = $2`,
		userUUID, eventUUID).Scan(
		&booking.UserUUID, &booking.Event.UUID, &booking.Event.Name, &booking.Event.BDEUUID,
		&booking.Event.BookingStart, &booking.Event.BookingEnd, &booking.Event.EventDate, &booking.Event.IsDraft)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, dberrors.Translate(err, nil, apperrors.ErrInternal)
	}

	return &booking, nil
}

// GetAllForEvent retrieves every booking of one event, each carrying a
// partial projection of the booking user.
func (r *BookingRepository) GetAllForEvent(ctx context.Context, eventUUID string) ([]*models.EventBooking, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT b.user_uuid, e.event_uuid, e.event_name, e.bde_uuid, e.booking_start, e.booking_end, e.event_date, e.is_draft,
		       u.email, u.firstname, u.lastname
		FROM bookings b
		JOIN events e ON e.event_uuid = b.event_uuid
		JOIN users u ON u.uuid = b.user_uuid
		WHERE b.event_uuid = $1`,
		eventUUID)
	if err != nil {
		return nil, dberrors.Translate(err, nil, apperrors.ErrInternal)
	}
	defer rows.Close()

	var bookings []*models.EventBooking
	for rows.Next() {
		var (
			booking models.EventBooking
			user    models.PartialUser
		)
		if err := rows.Scan(
			&booking.UserUUID, &booking.Event.UUID, &booking.Event.Name, &booking.Event.BDEUUID,
			&booking.Event.BookingStart, &booking.Event.BookingEnd, &booking.Event.EventDate, &booking.Event.IsDraft,
			&user.Email, &user.FirstName, &user.LastName); err != nil {
			return nil, dberrors.Translate(err, nil, apperrors.ErrInternal)
		}
		user.UUID = booking.UserUUID
		booking.User = &user
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, dberrors.Translate(err, nil, apperrors.ErrInternal)
	}

	return bookings, nil
}

// GetAllForUser retrieves every booking of one user with the events they
// target.
func (r *BookingRepository) GetAllForUser(ctx context.Context, userUUID string) ([]*models.EventBooking, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT b.user_uuid, e.event_uuid, e.event_name, e.bde_uuid, e.booking_start, e.booking_end, e.event_date, e.is_draft
		FROM bookings b
		JOIN events e ON e.event_uuid = b.event_uuid
		WHERE b.user_uuid = $1`,
		userUUID)
	if err != nil {
		return nil, dberrors.Translate(err, nil, apperrors.ErrInternal)
	}
	defer rows.Close()

	var bookings []*models.EventBooking
	for rows.Next() {
		var booking models.EventBooking
		if err := rows.Scan(
			&booking.UserUUID, &booking.Event.UUID, &booking.Event.Name, &booking.Event.BDEUUID,
			&booking.Event.BookingStart, &booking.Event.BookingEnd, &booking.Event.EventDate, &booking.Event.IsDraft); err != nil {
			return nil, dberrors.Translate(err, nil, apperrors.ErrInternal)
		}
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, dberrors.Translate(err, nil, apperrors.ErrInternal)
	}

	return bookings, nil
}
