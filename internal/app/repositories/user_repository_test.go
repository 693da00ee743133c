//go:build integration

package repositories_test

import (
	"github.com/bde-polytech/backend/internal/app/models"
	"github.com/bde-polytech/backend/internal/pkg/apperrors"
)

func (s *RepositorySuite) TestUserCreateAndGetUnregistered() {
	s.createOrganization("org-1", "BDE Lyon", "owner-1", "owner@bde.fr")

	user := &models.UnregisteredUser{
		UUID:    "user-1",
		Email:   "jean@etu.fr",
		BDEUUID: "org-1",
	}
	s.Require().NoError(s.repos.UserRepository.Create(s.ctx, user))

	got, err := s.repos.UserRepository.GetUnregisteredByUUID(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal("jean@etu.fr", got.Email)
	s.False(got.Member)
}

func (s *RepositorySuite) TestUserCreateDuplicateEmailRejected() {
	s.createOrganization("org-1", "BDE Lyon", "owner-1", "owner@bde.fr")

	user := &models.UnregisteredUser{UUID: "user-1", Email: "owner@bde.fr", BDEUUID: "org-1"}
	err := s.repos.UserRepository.Create(s.ctx, user)
	s.ErrorIs(err, apperrors.ErrUserAlreadyExists)
}

func (s *RepositorySuite) TestUserCreateUnknownOrganizationRejected() {
	user := &models.UnregisteredUser{UUID: "user-1", Email: "jean@etu.fr", BDEUUID: "no-such-org"}
	err := s.repos.UserRepository.Create(s.ctx, user)
	s.ErrorIs(err, apperrors.ErrOrganizationNotFound)
}

func (s *RepositorySuite) TestUserUnionDecidedByCredential() {
	s.createOrganization("org-1", "BDE Lyon", "owner-1", "owner@bde.fr")

	got, err := s.repos.UserRepository.GetByUUID(s.ctx, "owner-1")
	s.Require().NoError(err)
	s.False(got.IsRegistered())
	s.Require().NotNil(got.Unregistered)
	s.Nil(got.Registered)

	registered := &models.RegisteredUser{
		UUID:          "owner-1",
		FirstName:     "Marie",
		LastName:      "Curie",
		Password:      "$2a$12$fakehashforthetestonly",
		SpecialtyName: "INFO",
		SpecialtyYear: 4,
	}
	s.Require().NoError(s.repos.UserRepository.FinishRegistration(s.ctx, registered))

	got, err = s.repos.UserRepository.GetByUUID(s.ctx, "owner-1")
	s.Require().NoError(err)
	s.True(got.IsRegistered())
	s.Require().NotNil(got.Registered)
	s.Nil(got.Unregistered)
	s.Equal("Marie", got.Registered.FirstName)
	s.Equal("INFO", got.Registered.SpecialtyName)
	s.Equal(4, got.Registered.SpecialtyYear)

	// A completed account no longer surfaces through the unregistered view
	_, err = s.repos.UserRepository.GetUnregisteredByUUID(s.ctx, "owner-1")
	s.ErrorIs(err, apperrors.ErrUserNotFound)
}

func (s *RepositorySuite) TestFinishRegistrationUnknownUUIDIsSilent() {
	s.createOrganization("org-1", "BDE Lyon", "owner-1", "owner@bde.fr")

	// Updating an absent account affects zero rows and is not reported;
	// resolving the account beforehand is the caller's job.
	err := s.repos.UserRepository.FinishRegistration(s.ctx, &models.RegisteredUser{
		UUID:          "no-such-user",
		FirstName:     "Marie",
		LastName:      "Curie",
		Password:      "$2a$12$fakehashforthetestonly",
		SpecialtyName: "INFO",
		SpecialtyYear: 4,
	})
	s.Require().NoError(err)

	// No account appeared under that uuid
	_, err = s.repos.UserRepository.GetByUUID(s.ctx, "no-such-user")
	s.ErrorIs(err, apperrors.ErrUserNotFound)

	users, err := s.repos.UserRepository.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Len(users, 1)
}

func (s *RepositorySuite) TestUserGetByEmail() {
	s.createOrganization("org-1", "BDE Lyon", "owner-1", "owner@bde.fr")

	got, err := s.repos.UserRepository.GetByEmail(s.ctx, "owner@bde.fr")
	s.Require().NoError(err)
	s.Equal("owner-1", got.UUID())

	_, err = s.repos.UserRepository.GetByEmail(s.ctx, "ghost@bde.fr")
	s.ErrorIs(err, apperrors.ErrUserNotFound)
}

func (s *RepositorySuite) TestUserGetAllForOrganization() {
	s.createOrganization("org-1", "BDE Lyon", "owner-1", "owner@bde.fr")
	s.createOrganization("org-2", "BDE Paris", "owner-2", "paris@bde.fr")

	s.Require().NoError(s.repos.UserRepository.Create(s.ctx, &models.UnregisteredUser{
		UUID: "user-1", Email: "jean@etu.fr", BDEUUID: "org-1",
	}))

	users, err := s.repos.UserRepository.GetAllForOrganization(s.ctx, "org-1")
	s.Require().NoError(err)
	s.Len(users, 2)

	// An organization with no member rows is indistinguishable from a
	// missing one here
	_, err = s.repos.UserRepository.GetAllForOrganization(s.ctx, "no-such-org")
	s.ErrorIs(err, apperrors.ErrOrganizationNotFound)
}

func (s *RepositorySuite) TestUserEmailExists() {
	s.createOrganization("org-1", "BDE Lyon", "owner-1", "owner@bde.fr")

	exists, err := s.repos.UserRepository.EmailExists(s.ctx, "owner@bde.fr")
	s.Require().NoError(err)
	s.True(exists)

	exists, err = s.repos.UserRepository.EmailExists(s.ctx, "ghost@bde.fr")
	s.Require().NoError(err)
	s.False(exists)
}
