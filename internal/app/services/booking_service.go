package services

import (
	"context"

	"github.com/bde-polytech/backend/internal/app/models"
	"github.com/bde-polytech/backend/internal/app/models/dto"
	"github.com/bde-polytech/backend/internal/app/repositories"
	"github.com/bde-polytech/backend/internal/pkg/metrics"
)

// BookingService handles booking business logic
type BookingService struct {
	bookingRepo *repositories.BookingRepository
	metrics     *metrics.Metrics
}

// NewBookingService creates a new BookingService
func NewBookingService(bookingRepo *repositories.BookingRepository, m *metrics.Metrics) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		metrics:     m,
	}
}

// Create books a user onto an event.
func (s *BookingService) Create(ctx context.Context, req *dto.CreateBookingRequest) error {
	booking := &models.Booking{
		UserUUID:  req.UserUUID,
		EventUUID: req.EventUUID,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return err
	}

	s.metrics.BookingsCreated.Inc()
	return nil
}

// GetOne returns the booking of one user for one event.
func (s *BookingService) GetOne(ctx context.Context, userUUID, eventUUID string) (*models.EventBooking, error) {
	return s.bookingRepo.GetOne(ctx, userUUID, eventUUID)
}

// GetAllForEvent returns every booking of one event.
func (s *BookingService) GetAllForEvent(ctx context.Context, eventUUID string) ([]*models.EventBooking, error) {
	return s.bookingRepo.GetAllForEvent(ctx, eventUUID)
}

// GetAllForUser returns every booking of one user.
func (s *BookingService) GetAllForUser(ctx context.Context, userUUID string) ([]*models.EventBooking, error) {
	return s.bookingRepo.GetAllForUser(ctx, userUUID)
}
