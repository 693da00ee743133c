//go:build integration

package repositories_test

import (
	"github.com/bde-polytech/backend/internal/app/models"
	"github.com/bde-polytech/backend/internal/pkg/apperrors"
	"github.com/bde-polytech/backend/internal/pkg/helpers"
)

func (s *RepositorySuite) newRequest(email string) *models.UserRequest {
	return &models.UserRequest{
		Email:         email,
		FirstName:     helpers.StringPtr("Jean"),
		LastName:      helpers.StringPtr("Dupont"),
		BDEUUID:       "org-1",
		SpecialtyName: "INFO",
		SpecialtyYear: 3,
	}
}

func (s *RepositorySuite) TestRequestCreateAndList() {
	s.createOrganization("org-1", "BDE Lyon", "owner-1", "owner@bde.fr")

	err := s.repos.UserRequestRepository.Create(s.ctx, s.newRequest("Jean.Dupont@etu.fr"))
	s.Require().NoError(err)

	requests, err := s.repos.UserRequestRepository.GetAllForOrganization(s.ctx, "org-1")
	s.Require().NoError(err)
	s.Require().Len(requests, 1)
	// Email was normalized on the way in
	s.Equal("jean.dupont@etu.fr", requests[0].Email)
	s.Equal("INFO", requests[0].SpecialtyName)
}

func (s *RepositorySuite) TestRequestRejectedWhenEmailHasAccount() {
	s.createOrganization("org-1", "BDE Lyon", "owner-1", "owner@bde.fr")

	err := s.repos.UserRequestRepository.Create(s.ctx, s.newRequest("owner@bde.fr"))
	s.ErrorIs(err, apperrors.ErrUserAlreadyExists)
}

func (s *RepositorySuite) TestRequestRejectedWhenDuplicate() {
	s.createOrganization("org-1", "BDE Lyon", "owner-1", "owner@bde.fr")

	s.Require().NoError(s.repos.UserRequestRepository.Create(s.ctx, s.newRequest("jean@etu.fr")))

	err := s.repos.UserRequestRepository.Create(s.ctx, s.newRequest("jean@etu.fr"))
	s.ErrorIs(err, apperrors.ErrUserAlreadyExists)
}

func (s *RepositorySuite) TestRequestRejectedForUnknownOrganization() {
	request := s.newRequest("jean@etu.fr")
	request.BDEUUID = "no-such-org"

	err := s.repos.UserRequestRepository.Create(s.ctx, request)
	s.ErrorIs(err, apperrors.ErrOrganizationNotFound)
}

func (s *RepositorySuite) TestRequestRejectedForUnknownSpecialty() {
	s.createOrganization("org-1", "BDE Lyon", "owner-1", "owner@bde.fr")

	request := s.newRequest("jean@etu.fr")
	request.SpecialtyName = "CHIMIE"

	err := s.repos.UserRequestRepository.Create(s.ctx, request)
	s.ErrorIs(err, apperrors.ErrInvalidSpecialty)
}

func (s *RepositorySuite) TestRequestAcceptPromotesToAccount() {
	s.createOrganization("org-1", "BDE Lyon", "owner-1", "owner@bde.fr")
	s.Require().NoError(s.repos.UserRequestRepository.Create(s.ctx, s.newRequest("jean@etu.fr")))

	user, err := s.repos.UserRequestRepository.Process(s.ctx, "jean@etu.fr", "org-1", true)
	s.Require().NoError(err)
	s.Require().NotNil(user)
	s.NotEmpty(user.UUID)
	s.Equal("jean@etu.fr", user.Email)
	s.False(user.Member)
	s.Empty(user.Permissions)

	// The request is gone
	requests, err := s.repos.UserRequestRepository.GetAllForOrganization(s.ctx, "org-1")
	s.Require().NoError(err)
	s.Empty(requests)

	// The account exists and is unregistered
	created, err := s.repos.UserRepository.GetUnregisteredByUUID(s.ctx, user.UUID)
	s.Require().NoError(err)
	s.Equal("jean@etu.fr", created.Email)
}

func (s *RepositorySuite) TestRequestRefuseIsTerminal() {
	s.createOrganization("org-1", "BDE Lyon", "owner-1", "owner@bde.fr")
	s.Require().NoError(s.repos.UserRequestRepository.Create(s.ctx, s.newRequest("jean@etu.fr")))

	user, err := s.repos.UserRequestRepository.Process(s.ctx, "jean@etu.fr", "org-1", false)
	s.Require().NoError(err)
	s.Nil(user)

	// A refused request never reappears in listings
	requests, err := s.repos.UserRequestRepository.GetAllForOrganization(s.ctx, "org-1")
	s.Require().NoError(err)
	s.Empty(requests)

	// And cannot be processed again
	_, err = s.repos.UserRequestRepository.Process(s.ctx, "jean@etu.fr", "org-1", true)
	s.ErrorIs(err, apperrors.ErrUserNotFound)
}

func (s *RepositorySuite) TestRequestResubmissionAfterRefusalRejected() {
	s.createOrganization("org-1", "BDE Lyon", "owner-1", "owner@bde.fr")
	s.Require().NoError(s.repos.UserRequestRepository.Create(s.ctx, s.newRequest("jean@etu.fr")))

	user, err := s.repos.UserRequestRepository.Process(s.ctx, "jean@etu.fr", "org-1", false)
	s.Require().NoError(err)
	s.Nil(user)

	// The refused row keeps the primary key, so applying again is rejected
	err = s.repos.UserRequestRepository.Create(s.ctx, s.newRequest("jean@etu.fr"))
	s.ErrorIs(err, apperrors.ErrUserAlreadyExists)
}

func (s *RepositorySuite) TestRequestProcessUnknownRequest() {
	s.createOrganization("org-1", "BDE Lyon", "owner-1", "owner@bde.fr")

	_, err := s.repos.UserRequestRepository.Process(s.ctx, "ghost@etu.fr", "org-1", true)
	s.ErrorIs(err, apperrors.ErrUserNotFound)
}
