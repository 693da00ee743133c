package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/bde-polytech/backend/internal/app/models"
	"github.com/bde-polytech/backend/internal/db"
	"github.com/bde-polytech/backend/internal/pkg/apperrors"
	"github.com/bde-polytech/backend/internal/pkg/dberrors"
)

// createOrganizationConstraints maps the constraints the creation transaction
// can violate. Anything else (including a duplicate specialty name inside the
// payload) falls through to ErrInternal.
var createOrganizationConstraints = dberrors.ConstraintMap{
	"pk_bde":       apperrors.ErrOrganizationAlreadyExists,
	"unique_name":  apperrors.ErrOrganizationAlreadyExists,
	"pk_users":     apperrors.ErrUserAlreadyExists,
	"unique_email": apperrors.ErrUserAlreadyExists,
}

// OrganizationRepository handles database operations for organizations and
// their specialties.
type OrganizationRepository struct {
	db *db.PostgresDB
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(database *db.PostgresDB) *OrganizationRepository {
	return &OrganizationRepository{
		db: database,
	}
}

// Create inserts an organization, its specialties and the initial owner
// account in a single transaction. The owner row is created without a
// credential, so it surfaces through the unregistered_users view. Either all
// rows are written or none.
func (r *OrganizationRepository) Create(ctx context.Context, org *models.Organization, owner *models.UnregisteredUser) error {
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			INSERT INTO bde (uuid, name)
			VALUES ($1, $2)`,
			org.UUID, org.Name); err != nil {
			return err
		}

		for i, specialty := range org.Specialties {
			if _, err := tx.Exec(ctx, `
				INSERT INTO specialties (bde_uuid, name, min_year, max_year, position)
				VALUES ($1, $2, $3, $4, $5)`,
				org.UUID, specialty.Name, specialty.MinYear, specialty.MaxYear, i); err != nil {
				return err
			}
		}

		if _, err := tx.Exec(ctx, `
			INSERT INTO users (uuid, email, bde_uuid, firstname, lastname, password, permissions, member)
			VALUES ($1, $2, $3, $4, $5, '', $6, $7)`,
			owner.UUID, owner.Email, org.UUID, owner.FirstName, owner.LastName,
			models.EncodePermissions(owner.Permissions), owner.Member); err != nil {
			return err
		}

		return nil
	})

	if err != nil {
		return dberrors.Translate(err, createOrganizationConstraints, apperrors.ErrInternal)
	}

	return nil
}

// GetAll retrieves every organization with its specialty list, rebuilt from
// one joined query. Organizations come back in the order their uuid was
// first seen.
func (r *OrganizationRepository) GetAll(ctx context.Context) ([]*models.Organization, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT b.uuid, b.name, s.name, s.min_year, s.max_year
		FROM bde b
		LEFT JOIN specialties s ON s.bde_uuid = b.uuid
		ORDER BY b.uuid, s.position`)
	if err != nil {
		return nil, dberrors.Translate(err, nil, apperrors.ErrInternal)
	}
	defer rows.Close()

	organizations, err := groupOrganizationRows(rows)
	if err != nil {
		return nil, dberrors.Translate(err, nil, apperrors.ErrInternal)
	}

	return organizations, nil
}

// GetByUUID retrieves one organization with its specialties.
func (r *OrganizationRepository) GetByUUID(ctx context.Context, uuid string) (*models.Organization, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT b.uuid, b.name, s.name, s.min_year, s.max_year
		FROM bde b
		LEFT JOIN specialties s ON s.bde_uuid = b.uuid
		WHERE b.uuid = $1
		ORDER BY s.position`,
		uuid)
	if err != nil {
		return nil, dberrors.Translate(err, nil, apperrors.ErrInternal)
	}
	defer rows.Close()

	organizations, err := groupOrganizationRows(rows)
	if err != nil {
		return nil, dberrors.Translate(err, nil, apperrors.ErrInternal)
	}

	if len(organizations) == 0 {
		return nil, apperrors.ErrOrganizationNotFound
	}

	return organizations[0], nil
}

// Delete is intentionally unimplemented: cascading deletion semantics for an
// organization (members, events, bookings) are undefined.
func (r *OrganizationRepository) Delete(ctx context.Context, uuid string) error {
	return apperrors.ErrNotImplemented
}

// groupOrganizationRows folds flat joined rows into organization aggregates.
// The first row of a uuid opens the aggregate; subsequent rows append
// specialties. Specialty columns are NULL for organizations without any.
func groupOrganizationRows(rows pgx.Rows) ([]*models.Organization, error) {
	var organizations []*models.Organization
	byUUID := make(map[string]*models.Organization)

	for rows.Next() {
		var (
			uuid, name       string
			specialtyName    *string
			minYear, maxYear *int
		)
		if err := rows.Scan(&uuid, &name, &specialtyName, &minYear, &maxYear); err != nil {
			return nil, err
		}

		org, ok := byUUID[uuid]
		if !ok {
			org = &models.Organization{
				UUID:        uuid,
				Name:        name,
				Specialties: []models.Specialty{},
			}
			byUUID[uuid] = org
			organizations = append(organizations, org)
		}

		if specialtyName != nil {
			org.Specialties = append(org.Specialties, models.Specialty{
				Name:    *specialtyName,
				MinYear: *minYear,
				MaxYear: *maxYear,
			})
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return organizations, nil
}
