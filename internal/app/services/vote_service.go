package services

import (
	"context"

	"github.com/bde-polytech/backend/internal/app/models/dto"
	"github.com/bde-polytech/backend/internal/app/repositories"
	"github.com/bde-polytech/backend/internal/pkg/metrics"
)

// VoteService handles voting business logic
type VoteService struct {
	voteRepo *repositories.VoteRepository
	metrics  *metrics.Metrics
}

// NewVoteService creates a new VoteService
func NewVoteService(voteRepo *repositories.VoteRepository, m *metrics.Metrics) *VoteService {
	return &VoteService{
		voteRepo: voteRepo,
		metrics:  m,
	}
}

// Cast records a vote for the user. Voting again replaces the previous choice
// because only the most recent vote counts.
func (s *VoteService) Cast(ctx context.Context, userUUID string, choice *string) error {
	if err := s.voteRepo.Create(ctx, choice, userUUID); err != nil {
		return err
	}

	s.metrics.VotesCast.Inc()
	return nil
}

// GetForUser returns the current choice of the user.
func (s *VoteService) GetForUser(ctx context.Context, userUUID string) (*dto.VoteResponse, error) {
	choice, hasVoted, err := s.voteRepo.GetForUser(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	return &dto.VoteResponse{
		Choice:   choice,
		HasVoted: hasVoted,
	}, nil
}

// Results tallies the current vote of every voter. Only the latest vote of a
// user counts; abstentions are reported separately from the per-choice counts.
func (s *VoteService) Results(ctx context.Context) (*dto.VoteResultsResponse, error) {
	votes, err := s.voteRepo.GetCurrent(ctx)
	if err != nil {
		return nil, err
	}

	results := &dto.VoteResultsResponse{Counts: map[string]int{}}
	for _, vote := range votes {
		if vote.Choice == nil {
			results.Abstentions++
			continue
		}
		results.Counts[*vote.Choice]++
	}

	return results, nil
}
