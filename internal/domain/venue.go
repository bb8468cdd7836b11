package domain

import (
	"context"

	"github.com/google/uuid"
)

// Venue is a physical location hosting events.
// swagger:model Venue
type Venue struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Capacity    uint32    `json:"capacity"`
	Description *string   `json:"description"`
}

// NewVenue returns a Venue with a fresh id.
func NewVenue(name, address string, capacity uint32, description *string) *Venue {
	return &Venue{
		ID:          uuid.New(),
		Name:        name,
		Address:     address,
		Capacity:    capacity,
		Description: description,
	}
}

// RecordID returns the storage identifier of the venue.
func (v *Venue) RecordID() uuid.UUID { return v.ID }

// VenueRepository defines the interface for venue storage.
type VenueRepository interface {
	Create(ctx context.Context, venue *Venue) error
	GetByID(ctx context.Context, id uuid.UUID) (*Venue, error)
	List(ctx context.Context) ([]*Venue, error)
}
