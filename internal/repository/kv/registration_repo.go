package kv

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"eventbooking/internal/domain"
	"eventbooking/internal/storage"
)

type registrationRepository struct {
	Store storage.Engine
}

func NewRegistrationRepository(store storage.Engine) domain.RegistrationRepository {
	return &registrationRepository{Store: store}
}

func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	return putRecord(ctx, r.Store, storage.KindRegistration, reg)
}

func (r *registrationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Registration, error) {
	return getRecord[domain.Registration](ctx, r.Store, storage.KindRegistration, id)
}

// List returns all registrations, newest first.
func (r *registrationRepository) List(ctx context.Context) ([]*domain.Registration, error) {
	return r.list(ctx, nil)
}

// ListByUserID scans every registration and keeps the user's. There is no user index.
func (r *registrationRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Registration, error) {
	return r.list(ctx, func(reg *domain.Registration) bool { return reg.UserID == userID })
}

func (r *registrationRepository) list(ctx context.Context, keep func(*domain.Registration) bool) ([]*domain.Registration, error) {
	regs, err := listRecords[domain.Registration](ctx, r.Store, storage.KindRegistration, keep)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(regs, func(a, b *domain.Registration) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return regs, nil
}
