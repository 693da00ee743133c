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

var createVoteConstraints = dberrors.ConstraintMap{
	"fk_votes_users": apperrors.ErrInvalidUser,
}

// VoteRepository handles database operations for votes
type VoteRepository struct {
	db *db.PostgresDB
}

// NewVoteRepository creates a new vote repository
func NewVoteRepository(database *db.PostgresDB) *VoteRepository {
	return &VoteRepository{
		db: database,
	}
}

// Create appends a vote row. A nil choice records an abstention.
func (r *VoteRepository) Create(ctx context.Context, choice *string, userUUID string) error {
	_, err := r.db.Pool.Exec(ctx, `
		INSERT INTO votes (user_uuid, liste)
		VALUES ($1, $2)`,
		userUUID, choice)
	if err != nil {
		return dberrors.Translate(err, createVoteConstraints, apperrors.ErrInternal)
	}

	return nil
}

// GetForUser returns the most recent choice of the user. The second return
// value distinguishes "never voted" from a recorded abstention; timestamp
// ties are broken by insertion order, most recent write winning.
func (r *VoteRepository) GetForUser(ctx context.Context, userUUID string) (*string, bool, error) {
	var choice *string
	err := r.db.Pool.QueryRow(ctx, `
		SELECT liste
		FROM votes
		WHERE user_uuid = $1
		ORDER BY voted_on DESC, id DESC
		LIMIT 1`,
		userUUID).Scan(&choice)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, dberrors.Translate(err, nil, apperrors.ErrInternal)
	}

	return choice, true, nil
}

// GetCurrent returns the vote that currently counts for each user who ever
// voted, abstentions included.
func (r *VoteRepository) GetCurrent(ctx context.Context) ([]*models.Vote, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT DISTINCT ON (user_uuid) user_uuid, liste, voted_on
		FROM votes
		ORDER BY user_uuid, voted_on DESC, id DESC`)
	if err != nil {
		return nil, dberrors.Translate(err, nil, apperrors.ErrInternal)
	}
	defer rows.Close()

	var votes []*models.Vote
	for rows.Next() {
		var vote models.Vote
		if err := rows.Scan(&vote.UserUUID, &vote.Choice, &vote.VotedOn); err != nil {
			return nil, dberrors.Translate(err, nil, apperrors.ErrInternal)
		}
		votes = append(votes, &vote)
	}

	if err := rows.Err(); err != nil {
		return nil, dberrors.Translate(err, nil, apperrors.ErrInternal)
	}

	return votes, nil
}
