//go:build integration

package repositories_test

import (
	"github.com/bde-polytech/backend/internal/app/models"
	"github.com/bde-polytech/backend/internal/pkg/apperrors"
	"github.com/bde-polytech/backend/internal/pkg/helpers"
)

func (s *RepositorySuite) TestVoteNeverVoted() {
	s.createOrganization("org-1", "BDE Lyon", "owner-1", "owner@bde.fr")

	choice, hasVoted, err := s.repos.VoteRepository.GetForUser(s.ctx, "owner-1")
	s.Require().NoError(err)
	s.False(hasVoted)
	s.Nil(choice)
}

func (s *RepositorySuite) TestVoteMostRecentWins() {
	s.createOrganization("org-1", "BDE Lyon", "owner-1", "owner@bde.fr")

	s.Require().NoError(s.repos.VoteRepository.Create(s.ctx, helpers.StringPtr("liste-a"), "owner-1"))
	s.Require().NoError(s.repos.VoteRepository.Create(s.ctx, helpers.StringPtr("liste-b"), "owner-1"))

	choice, hasVoted, err := s.repos.VoteRepository.GetForUser(s.ctx, "owner-1")
	s.Require().NoError(err)
	s.True(hasVoted)
	s.Require().NotNil(choice)
	s.Equal("liste-b", *choice)
}

func (s *RepositorySuite) TestVoteAbstentionOverridesChoice() {
	s.createOrganization("org-1", "BDE Lyon", "owner-1", "owner@bde.fr")

	s.Require().NoError(s.repos.VoteRepository.Create(s.ctx, helpers.StringPtr("liste-a"), "owner-1"))
	s.Require().NoError(s.repos.VoteRepository.Create(s.ctx, nil, "owner-1"))

	// An abstention is a recorded vote with no choice, not "never voted"
	choice, hasVoted, err := s.repos.VoteRepository.GetForUser(s.ctx, "owner-1")
	s.Require().NoError(err)
	s.True(hasVoted)
	s.Nil(choice)
}

func (s *RepositorySuite) TestVoteGetCurrentOnePerVoter() {
	s.createOrganization("org-1", "BDE Lyon", "owner-1", "owner@bde.fr")
	s.Require().NoError(s.repos.UserRepository.Create(s.ctx,
		&models.UnregisteredUser{UUID: "user-2", Email: "jean@etu.fr", BDEUUID: "org-1"}))

	s.Require().NoError(s.repos.VoteRepository.Create(s.ctx, helpers.StringPtr("liste-a"), "owner-1"))
	s.Require().NoError(s.repos.VoteRepository.Create(s.ctx, helpers.StringPtr("liste-b"), "owner-1"))
	s.Require().NoError(s.repos.VoteRepository.Create(s.ctx, nil, "user-2"))

	votes, err := s.repos.VoteRepository.GetCurrent(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(votes, 2)

	byUser := map[string]*models.Vote{}
	for _, vote := range votes {
		byUser[vote.UserUUID] = vote
	}
	s.Require().NotNil(byUser["owner-1"].Choice)
	s.Equal("liste-b", *byUser["owner-1"].Choice)
	s.Nil(byUser["user-2"].Choice)
}

func (s *RepositorySuite) TestVoteUnknownUserRejected() {
	err := s.repos.VoteRepository.Create(s.ctx, helpers.StringPtr("liste-a"), "ghost")
	s.ErrorIs(err, apperrors.ErrInvalidUser)
}
