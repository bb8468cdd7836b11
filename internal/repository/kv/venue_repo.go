package kv

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"

	"eventbooking/internal/domain"
	"eventbooking/internal/storage"
)

type venueRepository struct {
	Store storage.Engine
}

func NewVenueRepository(store storage.Engine) domain.VenueRepository {
	return &venueRepository{Store: store}
}

func (r *venueRepository) Create(ctx context.Context, v *domain.Venue) error {
	return putRecord(ctx, r.Store, storage.KindVenue, v)
}

func (r *venueRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Venue, error) {
	return getRecord[domain.Venue](ctx, r.Store, storage.KindVenue, id)
}

// List returns all venues ordered by name.
func (r *venueRepository) List(ctx context.Context) ([]*domain.Venue, error) {
	venues, err := listRecords[domain.Venue](ctx, r.Store, storage.KindVenue, nil)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(venues, func(a, b *domain.Venue) int {
		return strings.Compare(a.Name, b.Name)
	})
	return venues, nil
}
