package kv

import (
	"context"
	"errors"
	"slices"

	"github.com/google/uuid"

	"eventbooking/internal/domain"
	"eventbooking/internal/storage"
)

type eventRepository struct {
	Store storage.Engine
}

func NewEventRepository(store storage.Engine) domain.EventRepository {
	return &eventRepository{Store: store}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	return putRecord(ctx, r.Store, storage.KindEvent, e)
}

func (r *eventRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	return getRecord[domain.Event](ctx, r.Store, storage.KindEvent, id)
}

// List returns all events ordered by start date.
func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	events, err := listRecords[domain.Event](ctx, r.Store, storage.KindEvent, nil)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(events, func(a, b *domain.Event) int {
		return a.StartDate.Compare(b.StartDate)
	})
	return events, nil
}

// IncrementParticipants is a read-modify-write over two separate store calls.
// Concurrent callers can lose updates, and MaxParticipants is not enforced.
func (r *eventRepository) IncrementParticipants(ctx context.Context, id uuid.UUID) error {
	e, err := r.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	e.CurrentParticipants++
	return putRecord(ctx, r.Store, storage.KindEvent, e)
}
