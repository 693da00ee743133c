package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/bde-polytech/backend/internal/app/models"
	"github.com/bde-polytech/backend/internal/db"
	"github.com/bde-polytech/backend/internal/pkg/apperrors"
	"github.com/bde-polytech/backend/internal/pkg/dberrors"
	"github.com/bde-polytech/backend/internal/pkg/helpers"
)

var createUserConstraints = dberrors.ConstraintMap{
	"pk_users":     apperrors.ErrUserAlreadyExists,
	"unique_email": apperrors.ErrUserAlreadyExists,
	"fk_users_bde": apperrors.ErrOrganizationNotFound,
}

// UserRepository handles database operations for user accounts
type UserRepository struct {
	db *db.PostgresDB
}

// NewUserRepository creates a new user repository
func NewUserRepository(database *db.PostgresDB) *UserRepository {
	return &UserRepository{
		db: database,
	}
}

// Create inserts an unregistered user: an account row with an empty
// credential. The permission set is stored as a list of capability names.
func (r *UserRepository) Create(ctx context.Context, user *models.UnregisteredUser) error {
	_, err := r.db.Pool.Exec(ctx, `
		INSERT INTO users (uuid, email, bde_uuid, firstname, lastname, password, permissions, member)
		VALUES ($1, $2, $3, $4, $5, '', $6, $7)`,
		user.UUID, user.Email, user.BDEUUID, user.FirstName, user.LastName,
		models.EncodePermissions(user.Permissions), user.Member)
	if err != nil {
		return dberrors.Translate(err, createUserConstraints, apperrors.ErrInternal)
	}

	return nil
}

// FinishRegistration completes an account: name, credential and chosen
// specialty, keyed by uuid. An update that affects no row is not reported;
// the caller is expected to have resolved the account beforehand.
func (r *UserRepository) FinishRegistration(ctx context.Context, user *models.RegisteredUser) error {
	_, err := r.db.Pool.Exec(ctx, `
		UPDATE users
		SET firstname = $1, lastname = $2, password = $3, specialty_name = $4, specialty_year = $5
		WHERE uuid = $6`,
		user.FirstName, user.LastName, user.Password, user.SpecialtyName, user.SpecialtyYear, user.UUID)
	if err != nil {
		return dberrors.Translate(err, nil, apperrors.ErrInternal)
	}

	return nil
}

// GetUnregisteredByUUID retrieves an account that has not completed
// registration, through the unregistered_users view.
func (r *UserRepository) GetUnregisteredByUUID(ctx context.Context, uuid string) (*models.UnregisteredUser, error) {
	var (
		user        models.UnregisteredUser
		permissions []string
	)
	err := r.db.Pool.QueryRow(ctx, `
		SELECT uuid, email, bde_uuid, firstname, lastname, permissions, member
		FROM unregistered_users
		WHERE uuid = $1`,
		uuid).Scan(
		&user.UUID, &user.Email, &user.BDEUUID, &user.FirstName, &user.LastName,
		&permissions, &user.Member)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, dberrors.Translate(err, nil, apperrors.ErrInternal)
	}

	user.Permissions = models.DecodePermissions(permissions)
	return &user, nil
}

// GetByUUID retrieves an account by uuid, in whichever lifecycle shape the
// row is in.
func (r *UserRepository) GetByUUID(ctx context.Context, uuid string) (*models.User, error) {
	row := r.db.Pool.QueryRow(ctx, `
		SELECT uuid, email, bde_uuid, firstname, lastname, password, specialty_name, specialty_year, permissions, member
		FROM users
		WHERE uuid = $1`,
		uuid)

	return scanUserRow(row)
}

// GetByEmail retrieves an account by email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.Pool.QueryRow(ctx, `
		SELECT uuid, email, bde_uuid, firstname, lastname, password, specialty_name, specialty_year, permissions, member
		FROM users
		WHERE email = $1`,
		email)

	return scanUserRow(row)
}

// GetAll retrieves every account.
func (r *UserRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT uuid, email, bde_uuid, firstname, lastname, password, specialty_name, specialty_year, permissions, member
		FROM users`)
	if err != nil {
		return nil, dberrors.Translate(err, nil, apperrors.ErrInternal)
	}
	defer rows.Close()

	return scanUserRows(rows)
}

// GetAllForOrganization retrieves the accounts of one organization. An empty
// result is reported as the organization being absent; "organization exists
// with zero members" is indistinguishable here.
func (r *UserRepository) GetAllForOrganization(ctx context.Context, bdeUUID string) ([]*models.User, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT uuid, email, bde_uuid, firstname, lastname, password, specialty_name, specialty_year, permissions, member
		FROM users
		WHERE bde_uuid = $1`,
		bdeUUID)
	if err != nil {
		return nil, dberrors.Translate(err, nil, apperrors.ErrInternal)
	}
	defer rows.Close()

	users, err := scanUserRows(rows)
	if err != nil {
		return nil, err
	}

	if len(users) == 0 {
		return nil, apperrors.ErrOrganizationNotFound
	}

	return users, nil
}

// EmailExists checks whether any account uses the email.
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`,
		email).Scan(&exists)
	if err != nil {
		return false, dberrors.Translate(err, nil, apperrors.ErrInternal)
	}

	return exists, nil
}

// scanUserRow maps one users row into the Registered/Unregistered union. The
// discriminant is decided here, once: a non-empty stored credential means the
// account is registered. Callers never re-infer it.
func scanUserRow(row pgx.Row) (*models.User, error) {
	var (
		uuid, email, bdeUUID          string
		firstname, lastname, password *string
		specialtyName                 *string
		specialtyYear                 *int
		permissions                   []string
		member                        bool
	)

	err := row.Scan(&uuid, &email, &bdeUUID, &firstname, &lastname, &password,
		&specialtyName, &specialtyYear, &permissions, &member)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, dberrors.Translate(err, nil, apperrors.ErrInternal)
	}

	perms := models.DecodePermissions(permissions)

	if password != nil && *password != "" {
		return &models.User{
			Registered: &models.RegisteredUser{
				UUID:          uuid,
				Email:         email,
				BDEUUID:       bdeUUID,
				FirstName:     helpers.StringValue(firstname),
				LastName:      helpers.StringValue(lastname),
				Password:      *password,
				SpecialtyName: helpers.StringValue(specialtyName),
				SpecialtyYear: helpers.IntValue(specialtyYear),
				Permissions:   perms,
				Member:        member,
			},
		}, nil
	}

	return &models.User{
		Unregistered: &models.UnregisteredUser{
			UUID:        uuid,
			Email:       email,
			BDEUUID:     bdeUUID,
			FirstName:   firstname,
			LastName:    lastname,
			Permissions: perms,
			Member:      member,
		},
	}, nil
}

func scanUserRows(rows pgx.Rows) ([]*models.User, error) {
	var users []*models.User
	for rows.Next() {
		user, err := scanUserRow(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, dberrors.Translate(err, nil, apperrors.ErrInternal)
	}

	return users, nil
}
