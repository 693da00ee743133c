//go:build integration

package repositories_test

import (
	"time"

	"github.com/bde-polytech/backend/internal/app/models"
	"github.com/bde-polytech/backend/internal/pkg/apperrors"
)

func (s *RepositorySuite) TestEventCreateAndGet() {
	s.createOrganization("org-1", "BDE Lyon", "owner-1", "owner@bde.fr")

	start := time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)
	date := start.Add(7 * 24 * time.Hour)

	event := &models.Event{
		UUID:         "event-1",
		Name:         "Soirée d'intégration",
		BDEUUID:      "org-1",
		BookingStart: &start,
		BookingEnd:   &end,
		EventDate:    &date,
		IsDraft:      false,
	}
	s.Require().NoError(s.repos.EventRepository.Create(s.ctx, event))

	got, err := s.repos.EventRepository.GetByUUID(s.ctx, "event-1")
	s.Require().NoError(err)
	s.Equal("Soirée d'intégration", got.Name)
	s.Require().NotNil(got.BookingStart)
	s.True(got.BookingStart.Equal(start))
	s.False(got.IsDraft)
}

func (s *RepositorySuite) TestEventNullableDates() {
	s.createOrganization("org-1", "BDE Lyon", "owner-1", "owner@bde.fr")

	event := &models.Event{UUID: "event-1", Name: "TBD", BDEUUID: "org-1", IsDraft: true}
	s.Require().NoError(s.repos.EventRepository.Create(s.ctx, event))

	got, err := s.repos.EventRepository.GetByUUID(s.ctx, "event-1")
	s.Require().NoError(err)
	s.Nil(got.BookingStart)
	s.Nil(got.BookingEnd)
	s.Nil(got.EventDate)
	s.True(got.IsDraft)
}

func (s *RepositorySuite) TestEventCreateUnknownOrganizationRejected() {
	event := &models.Event{UUID: "event-1", Name: "Orphan", BDEUUID: "no-such-org"}
	err := s.repos.EventRepository.Create(s.ctx, event)
	s.ErrorIs(err, apperrors.ErrOrganizationNotFound)
}

func (s *RepositorySuite) TestEventGetByUUIDNotFound() {
	_, err := s.repos.EventRepository.GetByUUID(s.ctx, "no-such-event")
	s.ErrorIs(err, apperrors.ErrEventNotFound)
}

func (s *RepositorySuite) TestEventGetAllForOrganizationIncludesDrafts() {
	s.createOrganization("org-1", "BDE Lyon", "owner-1", "owner@bde.fr")

	s.Require().NoError(s.repos.EventRepository.Create(s.ctx,
		&models.Event{UUID: "event-1", Name: "Public", BDEUUID: "org-1", IsDraft: false}))
	s.Require().NoError(s.repos.EventRepository.Create(s.ctx,
		&models.Event{UUID: "event-2", Name: "Draft", BDEUUID: "org-1", IsDraft: true}))

	events, err := s.repos.EventRepository.GetAllForOrganization(s.ctx, "org-1")
	s.Require().NoError(err)
	s.Len(events, 2)

	events, err = s.repos.EventRepository.GetAllForOrganization(s.ctx, "no-such-org")
	s.Require().NoError(err)
	s.Empty(events)
}
