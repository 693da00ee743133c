package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/bde-polytech/backend/internal/app/models"
	"github.com/bde-polytech/backend/internal/app/models/dto"
	"github.com/bde-polytech/backend/internal/app/repositories"
)

// EventService handles event business logic
type EventService struct {
	eventRepo *repositories.EventRepository
}

// NewEventService creates a new EventService
func NewEventService(eventRepo *repositories.EventRepository) *EventService {
	return &EventService{
		eventRepo: eventRepo,
	}
}

// Create creates an event with a server-generated uuid.
func (s *EventService) Create(ctx context.Context, req *dto.CreateEventRequest) (*models.Event, error) {
	event := &models.Event{
		UUID:         uuid.New().String(),
		Name:         req.Name,
		BDEUUID:      req.BDEUUID,
		BookingStart: req.BookingStart,
		BookingEnd:   req.BookingEnd,
		EventDate:    req.EventDate,
		IsDraft:      req.IsDraft,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

// GetByUUID returns one event.
func (s *EventService) GetByUUID(ctx context.Context, eventUUID string) (*models.Event, error) {
	return s.eventRepo.GetByUUID(ctx, eventUUID)
}

// GetAll returns events. Drafts are only included when the caller manages
// events.
func (s *EventService) GetAll(ctx context.Context, includeDrafts bool) ([]*models.Event, error) {
	events, err := s.eventRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return filterDrafts(events, includeDrafts), nil
}

// GetAllForOrganization returns the events of one organization, with the same
// draft visibility rule as GetAll.
func (s *EventService) GetAllForOrganization(ctx context.Context, bdeUUID string, includeDrafts bool) ([]*models.Event, error) {
	events, err := s.eventRepo.GetAllForOrganization(ctx, bdeUUID)
	if err != nil {
		return nil, err
	}

	return filterDrafts(events, includeDrafts), nil
}

func filterDrafts(events []*models.Event, includeDrafts bool) []*models.Event {
	if includeDrafts {
		return events
	}

	visible := make([]*models.Event, 0, len(events))
	for _, event := range events {
		if !event.IsDraft {
			visible = append(visible, event)
		}
	}
	return visible
}
