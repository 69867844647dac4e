package app

import (
	"context"
	"fmt"
	"time"

	"codingevents/internal/domain"
)

// EventService encapsulates event CRUD use cases.
type EventService struct {
	repo domain.EventRepository
}

// NewEventService creates an EventService backed by the given repository.
func NewEventService(repo domain.EventRepository) *EventService {
	return &EventService{repo: repo}
}

// List returns all events.
func (s *EventService) List(ctx context.Context) ([]domain.Event, error) {
	return s.repo.ListEvents(ctx)
}

// Create validates and stores a new event.
func (s *EventService) Create(ctx context.Context, form EventForm) (*domain.Event, error) {
	if verr := form.Validate(); verr != nil {
		return nil, verr
	}
	event, err := s.repo.CreateEvent(ctx, form.Name, form.Description, form.ContactEmail, form.Type, time.Now())
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

// Delete removes the events with the given ids. Unknown ids are ignored.
func (s *EventService) Delete(ctx context.Context, ids []int64) error {
	for _, id := range ids {
		if err := s.repo.DeleteEvent(ctx, id); err != nil {
			return fmt.Errorf("delete event %d: %w", id, err)
		}
	}
	return nil
}
