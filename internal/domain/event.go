package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventType classifies an event.
type EventType string

const (
	EventTypeWorkshop    EventType = "Workshop"
	EventTypeFestival    EventType = "Festival"
	EventTypeIntensive   EventType = "Intensive"
	EventTypeSocial      EventType = "Social"
	EventTypeCompetition EventType = "Competition"
)

// Valid reports whether t is one of the defined event types.
func (t EventType) Valid() bool {
	switch t {
	case EventTypeWorkshop, EventTypeFestival, EventTypeIntensive, EventTypeSocial, EventTypeCompetition:
		return true
	}
	return false
}

func (t EventType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("unknown event type %q", string(t))
	}
	return []byte(t), nil
}

func (t *EventType) UnmarshalText(b []byte) error {
	v := EventType(b)
	if !v.Valid() {
		return fmt.Errorf("unknown event type %q", string(b))
	}
	*t = v
	return nil
}

// Event is a scheduled happening at a venue.
// CurrentParticipants is a soft counter: it is never checked against MaxParticipants.
// swagger:model Event
type Event struct {
	ID                  uuid.UUID `json:"id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	StartDate           time.Time `json:"start_date"`
	EndDate             time.Time `json:"end_date"`
	VenueID             uuid.UUID `json:"venue_id"`
	MaxParticipants     uint32    `json:"max_participants"`
	CurrentParticipants uint32    `json:"current_participants"`
	Price               float64   `json:"price"`
	EventType           EventType `json:"event_type"`
}

// NewEvent returns an Event with a fresh id and no participants.
func NewEvent(title, description string, start, end time.Time, venueID uuid.UUID, maxParticipants uint32, price float64, eventType EventType) *Event {
	return &Event{
		ID:              uuid.New(),
		Title:           title,
		Description:     description,
		StartDate:       start,
		EndDate:         end,
		VenueID:         venueID,
		MaxParticipants: maxParticipants,
		Price:           price,
		EventType:       eventType,
	}
}

// RecordID returns the storage identifier of the event.
func (e *Event) RecordID() uuid.UUID { return e.ID }

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	// IncrementParticipants adds one participant. A missing event is not an error.
	IncrementParticipants(ctx context.Context, id uuid.UUID) error
}

// CatalogService covers the browse and create operations on venues, packages and events.
type CatalogService interface {
	ListEvents(ctx context.Context) ([]*Event, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*Event, error)
	CreateEvent(ctx context.Context, event *Event) error
	ListVenues(ctx context.Context) ([]*Venue, error)
	CreateVenue(ctx context.Context, venue *Venue) error
	ListPackages(ctx context.Context) ([]*Package, error)
	CreatePackage(ctx context.Context, pkg *Package) error
}
