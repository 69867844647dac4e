package domain

import (
	"context"
	"time"
)

// EventType categorizes an event.
type EventType string

const (
	EventTypeConference EventType = "conference"
	EventTypeMeetup     EventType = "meetup"
	EventTypeWorkshop   EventType = "workshop"
	EventTypeOther      EventType = "other"
)

// EventTypes lists all valid event types in display order.
func EventTypes() []EventType {
	return []EventType{EventTypeConference, EventTypeMeetup, EventTypeWorkshop, EventTypeOther}
}

// Valid reports whether t is a known event type.
func (t EventType) Valid() bool {
	switch t {
	case EventTypeConference, EventTypeMeetup, EventTypeWorkshop, EventTypeOther:
		return true
	}
	return false
}

// Event represents a coding event.
type Event struct {
	ID           int64
	Name         string
	Description  string
	ContactEmail string
	Type         EventType
	CreatedAt    time.Time
}

// EventRepository is the port for event persistence.
type EventRepository interface {
	ListEvents(ctx context.Context) ([]Event, error)
	CreateEvent(ctx context.Context, name, description, contactEmail string, typ EventType, createdAt time.Time) (*Event, error)
	DeleteEvent(ctx context.Context, id int64) error
}
