//go:build integration

package repositories_test

import (
	"github.com/bde-polytech/backend/internal/app/models"
	"github.com/bde-polytech/backend/internal/pkg/apperrors"
)

// seedEventFixture creates an organization, one member and one event.
func (s *RepositorySuite) seedEventFixture() {
	s.createOrganization("org-1", "BDE Lyon", "owner-1", "owner@bde.fr")
	s.Require().NoError(s.repos.EventRepository.Create(s.ctx,
		&models.Event{UUID: "event-1", Name: "Soirée", BDEUUID: "org-1"}))
}

func (s *RepositorySuite) TestBookingCreateAndGetOne() {
	s.seedEventFixture()

	booking := &models.Booking{UserUUID: "owner-1", EventUUID: "event-1"}
	s.Require().NoError(s.repos.BookingRepository.Create(s.ctx, booking))

	got, err := s.repos.BookingRepository.GetOne(s.ctx, "owner-1", "event-1")
	s.Require().NoError(err)
	s.Equal("owner-1", got.UserUUID)
	s.Equal("event-1", got.Event.UUID)
	s.Equal("Soirée", got.Event.Name)
}

func (s *RepositorySuite) TestBookingDuplicateRejected() {
	s.seedEventFixture()

	booking := &models.Booking{UserUUID: "owner-1", EventUUID: "event-1"}
	s.Require().NoError(s.repos.BookingRepository.Create(s.ctx, booking))

	err := s.repos.BookingRepository.Create(s.ctx, booking)
	s.ErrorIs(err, apperrors.ErrBookingAlreadyExists)
}

func (s *RepositorySuite) TestBookingUnknownUserRejected() {
	s.seedEventFixture()

	err := s.repos.BookingRepository.Create(s.ctx,
		&models.Booking{UserUUID: "ghost", EventUUID: "event-1"})
	s.ErrorIs(err, apperrors.ErrUserNotFound)
}

func (s *RepositorySuite) TestBookingUnknownEventRejected() {
	s.seedEventFixture()

	err := s.repos.BookingRepository.Create(s.ctx,
		&models.Booking{UserUUID: "owner-1", EventUUID: "no-such-event"})
	s.ErrorIs(err, apperrors.ErrEventNotFound)
}

func (s *RepositorySuite) TestBookingGetOneNotFound() {
	s.seedEventFixture()

	_, err := s.repos.BookingRepository.GetOne(s.ctx, "owner-1", "event-1")
	s.ErrorIs(err, apperrors.ErrBookingNotFound)
}

func (s *RepositorySuite) TestBookingGetAllForEventCarriesUser() {
	s.seedEventFixture()
	s.Require().NoError(s.repos.UserRepository.Create(s.ctx,
		&models.UnregisteredUser{UUID: "user-2", Email: "jean@etu.fr", BDEUUID: "org-1"}))

	s.Require().NoError(s.repos.BookingRepository.Create(s.ctx,
		&models.Booking{UserUUID: "owner-1", EventUUID: "event-1"}))
	s.Require().NoError(s.repos.BookingRepository.Create(s.ctx,
		&models.Booking{UserUUID: "user-2", EventUUID: "event-1"}))

	bookings, err := s.repos.BookingRepository.GetAllForEvent(s.ctx, "event-1")
	s.Require().NoError(err)
	s.Require().Len(bookings, 2)

	for _, booking := range bookings {
		s.Require().NotNil(booking.User)
		s.Equal(booking.UserUUID, booking.User.UUID)
		s.NotEmpty(booking.User.Email)
	}
}

func (s *RepositorySuite) TestBookingGetAllForUser() {
	s.seedEventFixture()
	s.Require().NoError(s.repos.EventRepository.Create(s.ctx,
		&models.Event{UUID: "event-2", Name: "Gala", BDEUUID: "org-1"}))

	s.Require().NoError(s.repos.BookingRepository.Create(s.ctx,
		&models.Booking{UserUUID: "owner-1", EventUUID: "event-1"}))
	s.Require().NoError(s.repos.BookingRepository.Create(s.ctx,
		&models.Booking{UserUUID: "owner-1", EventUUID: "event-2"}))

	bookings, err := s.repos.BookingRepository.GetAllForUser(s.ctx, "owner-1")
	s.Require().NoError(err)
	s.Len(bookings, 2)
}
