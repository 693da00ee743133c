package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/bde-polytech/backend/internal/app/models"
	"github.com/bde-polytech/backend/internal/db"
	"github.com/bde-polytech/backend/internal/pkg/apperrors"
	"github.com/bde-polytech/backend/internal/pkg/dberrors"
)

var createRequestConstraints = dberrors.ConstraintMap{
	"pk_user_requests":           apperrors.ErrUserAlreadyExists,
	"fk_user_requests_bde":       apperrors.ErrOrganizationNotFound,
	"fk_user_requests_specialty": apperrors.ErrInvalidSpecialty,
}

// promoteRequestConstraints covers the accept path. Two concurrent accepts of
// the same request are not mutually excluded; the loser surfaces here as
// ErrUserAlreadyExists once the winner's user row exists.
var promoteRequestConstraints = dberrors.ConstraintMap{
	"pk_users":     apperrors.ErrUserAlreadyExists,
	"unique_email": apperrors.ErrUserAlreadyExists,
	"fk_users_bde": apperrors.ErrOrganizationNotFound,
}

// UserRequestRepository handles database operations for join requests
type UserRequestRepository struct {
	db *db.PostgresDB
}

// NewUserRequestRepository creates a new user request repository
func NewUserRequestRepository(database *db.PostgresDB) *UserRequestRepository {
	return &UserRequestRepository{
		db: database,
	}
}

// Create registers a join request. The email is normalized to lower case and
// pre-checked against existing accounts; the pre-check is best effort, the
// unique constraint remains the authoritative guard.
func (r *UserRequestRepository) Create(ctx context.Context, request *models.UserRequest) error {
	request.Email = strings.ToLower(request.Email)

	var exists bool
	err := r.db.Pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`,
		request.Email).Scan(&exists)
	if err != nil {
		return dberrors.Translate(err, nil, apperrors.ErrInternal)
	}
	if exists {
		return apperrors.ErrUserAlreadyExists
	}

	_, err = r.db.Pool.Exec(ctx, `
		INSERT INTO user_requests (email, firstname, lastname, bde_uuid, specialty_name, specialty_year)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		request.Email, request.FirstName, request.LastName, request.BDEUUID,
		request.SpecialtyName, request.SpecialtyYear)
	if err != nil {
		return dberrors.Translate(err, createRequestConstraints, apperrors.ErrInternal)
	}

	return nil
}

// GetAllForOrganization retrieves the pending requests of one organization.
// Refused requests never reappear here.
func (r *UserRequestRepository) GetAllForOrganization(ctx context.Context, bdeUUID string) ([]*models.UserRequest, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT email, firstname, lastname, bde_uuid, specialty_name, specialty_year
		FROM user_requests
		WHERE bde_uuid = $1 AND NOT refused`,
		bdeUUID)
	if err != nil {
		return nil, dberrors.Translate(err, nil, apperrors.ErrInternal)
	}
	defer rows.Close()

	var requests []*models.UserRequest
	for rows.Next() {
		var request models.UserRequest
		if err := rows.Scan(&request.Email, &request.FirstName, &request.LastName,
			&request.BDEUUID, &request.SpecialtyName, &request.SpecialtyYear); err != nil {
			return nil, dberrors.Translate(err, nil, apperrors.ErrInternal)
		}
		requests = append(requests, &request)
	}

	if err := rows.Err(); err != nil {
		return nil, dberrors.Translate(err, nil, apperrors.ErrInternal)
	}

	return requests, nil
}

// Process resolves the pending request matching email and organization.
//
// Accepted, the request is promoted: a fresh unregistered account (new uuid,
// no permissions, not a member) is inserted and the request row deleted, in
// one transaction, and the new account is returned. Refused, the row is kept
// with the refused marker, which makes the decision terminal, and no account
// is returned.
func (r *UserRequestRepository) Process(ctx context.Context, email, bdeUUID string, accepted bool) (*models.UnregisteredUser, error) {
	email = strings.ToLower(email)

	var request models.UserRequest
	err := r.db.Pool.QueryRow(ctx, `
		SELECT email, firstname, lastname, bde_uuid, specialty_name, specialty_year
		FROM user_requests
		WHERE email = $1 AND bde_uuid = $2 AND NOT refused`,
		email, bdeUUID).Scan(
		&request.Email, &request.FirstName, &request.LastName,
		&request.BDEUUID, &request.SpecialtyName, &request.SpecialtyYear)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, dberrors.Translate(err, nil, apperrors.ErrInternal)
	}

	if !accepted {
		_, err := r.db.Pool.Exec(ctx, `
			UPDATE user_requests
			SET refused = TRUE
			WHERE email = $1 AND bde_uuid = $2`,
			email, bdeUUID)
		if err != nil {
			return nil, dberrors.Translate(err, nil, apperrors.ErrInternal)
		}
		return nil, nil
	}

	user := &models.UnregisteredUser{
		UUID:      uuid.New().String(),
		Email:     request.Email,
		BDEUUID:   request.BDEUUID,
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Member:    false,
	}

	err = r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			INSERT INTO users (uuid, email, bde_uuid, firstname, lastname, password, permissions, member)
			VALUES ($1, $2, $3, $4, $5, '', '{}', FALSE)`,
			user.UUID, user.Email, user.BDEUUID, user.FirstName, user.LastName); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `
			DELETE FROM user_requests
			WHERE email = $1 AND bde_uuid = $2`,
			email, bdeUUID); err != nil {
			return err
		}

		return nil
	})

	if err != nil {
		return nil, dberrors.Translate(err, promoteRequestConstraints, apperrors.ErrInternal)
	}

	return user, nil
}
