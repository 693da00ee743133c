//go:build integration

package repositories_test

import (
	"github.com/bde-polytech/backend/internal/app/models"
	"github.com/bde-polytech/backend/internal/pkg/apperrors"
)

func (s *RepositorySuite) TestOrganizationCreateAndGet() {
	s.createOrganization("org-1", "BDE Lyon", "owner-1", "owner@bde-lyon.fr")

	org, err := s.repos.OrganizationRepository.GetByUUID(s.ctx, "org-1")
	s.Require().NoError(err)
	s.Equal("org-1", org.UUID)
	s.Equal("BDE Lyon", org.Name)
	s.Require().Len(org.Specialties, 2)
	s.Equal("INFO", org.Specialties[0].Name)
	s.Equal("MAT", org.Specialties[1].Name)

	// The owner account exists and is unregistered
	owner, err := s.repos.UserRepository.GetUnregisteredByUUID(s.ctx, "owner-1")
	s.Require().NoError(err)
	s.Equal("owner@bde-lyon.fr", owner.Email)
	s.True(owner.Member)
	s.True(models.HasPermission(owner.Permissions, models.PermissionManageOrganization))
}

func (s *RepositorySuite) TestOrganizationSpecialtiesKeepInsertionOrder() {
	org := &models.Organization{
		UUID: "org-ordered",
		Name: "BDE Ordered",
		Specialties: []models.Specialty{
			{Name: "ZULU", MinYear: 3, MaxYear: 5},
			{Name: "ALPHA", MinYear: 3, MaxYear: 5},
			{Name: "MIKE", MinYear: 3, MaxYear: 4},
		},
	}
	owner := &models.UnregisteredUser{UUID: "owner-ordered", Email: "ordered@bde.fr", BDEUUID: org.UUID}

	s.Require().NoError(s.repos.OrganizationRepository.Create(s.ctx, org, owner))

	got, err := s.repos.OrganizationRepository.GetByUUID(s.ctx, "org-ordered")
	s.Require().NoError(err)
	s.Require().Len(got.Specialties, 3)
	s.Equal("ZULU", got.Specialties[0].Name)
	s.Equal("ALPHA", got.Specialties[1].Name)
	s.Equal("MIKE", got.Specialties[2].Name)
}

func (s *RepositorySuite) TestOrganizationGetAll() {
	s.createOrganization("org-a", "BDE A", "owner-a", "a@bde.fr")
	s.createOrganization("org-b", "BDE B", "owner-b", "b@bde.fr")

	orgs, err := s.repos.OrganizationRepository.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Len(orgs, 2)
}

func (s *RepositorySuite) TestOrganizationWithoutSpecialties() {
	org := &models.Organization{UUID: "org-bare", Name: "BDE Bare"}
	owner := &models.UnregisteredUser{UUID: "owner-bare", Email: "bare@bde.fr", BDEUUID: org.UUID}

	s.Require().NoError(s.repos.OrganizationRepository.Create(s.ctx, org, owner))

	got, err := s.repos.OrganizationRepository.GetByUUID(s.ctx, "org-bare")
	s.Require().NoError(err)
	s.Empty(got.Specialties)
}

func (s *RepositorySuite) TestOrganizationDuplicateNameRejected() {
	s.createOrganization("org-1", "BDE Lyon", "owner-1", "owner1@bde.fr")

	org := &models.Organization{UUID: "org-2", Name: "BDE Lyon"}
	owner := &models.UnregisteredUser{UUID: "owner-2", Email: "owner2@bde.fr", BDEUUID: "org-2"}

	err := s.repos.OrganizationRepository.Create(s.ctx, org, owner)
	s.ErrorIs(err, apperrors.ErrOrganizationAlreadyExists)
}

func (s *RepositorySuite) TestOrganizationDuplicateUUIDRejected() {
	s.createOrganization("org-1", "BDE Lyon", "owner-1", "owner1@bde.fr")

	org := &models.Organization{UUID: "org-1", Name: "BDE Autre"}
	owner := &models.UnregisteredUser{UUID: "owner-2", Email: "owner2@bde.fr", BDEUUID: "org-1"}

	err := s.repos.OrganizationRepository.Create(s.ctx, org, owner)
	s.ErrorIs(err, apperrors.ErrOrganizationAlreadyExists)
}

func (s *RepositorySuite) TestOrganizationCreateIsAtomic() {
	// A duplicate specialty name inside the payload fails mid-transaction;
	// no partial organization may survive.
	org := &models.Organization{
		UUID: "org-dup",
		Name: "BDE Dup",
		Specialties: []models.Specialty{
			{Name: "INFO", MinYear: 3, MaxYear: 5},
			{Name: "INFO", MinYear: 3, MaxYear: 5},
		},
	}
	owner := &models.UnregisteredUser{UUID: "owner-dup", Email: "dup@bde.fr", BDEUUID: org.UUID}

	err := s.repos.OrganizationRepository.Create(s.ctx, org, owner)
	s.ErrorIs(err, apperrors.ErrInternal)

	_, err = s.repos.OrganizationRepository.GetByUUID(s.ctx, "org-dup")
	s.ErrorIs(err, apperrors.ErrOrganizationNotFound)

	_, err = s.repos.UserRepository.GetByUUID(s.ctx, "owner-dup")
	s.ErrorIs(err, apperrors.ErrUserNotFound)
}

func (s *RepositorySuite) TestOrganizationGetByUUIDNotFound() {
	_, err := s.repos.OrganizationRepository.GetByUUID(s.ctx, "no-such-org")
	s.ErrorIs(err, apperrors.ErrOrganizationNotFound)
}

func (s *RepositorySuite) TestOrganizationDeleteNotImplemented() {
	err := s.repos.OrganizationRepository.Delete(s.ctx, "org-1")
	s.ErrorIs(err, apperrors.ErrNotImplemented)
}
