package kv

import (
	"context"
	"errors"
	"slices"

	"github.com/google/uuid"

	"eventbooking/internal/domain"
	"eventbooking/internal/storage"
)

type userRepository struct {
	Store storage.Engine
}

func NewUserRepository(store storage.Engine) domain.UserRepository {
	return &userRepository{Store: store}
}

// Create writes the user record and its email index in one atomic batch.
// It does not check email uniqueness; an existing index entry is overwritten.
func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	b, err := storage.Encode(storage.KindUser, u)
	if err != nil {
		return err
	}
	return r.Store.Batch(ctx, []storage.KV{
		{Key: storage.KindUser.Key(u.ID), Value: b},
		{Key: storage.UserEmailIndex.Key(u.Email), Value: storage.IndexValue(u.ID)},
	})
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return getRecord[domain.User](ctx, r.Store, storage.KindUser, id)
}

// GetByEmail resolves the email index, then loads the user. The two reads are not atomic.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	b, err := r.Store.Get(ctx, storage.UserEmailIndex.Key(email))
	if errors.Is(err, storage.ErrKeyNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	id, err := storage.ParseIndexValue(storage.KindUser, b)
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// List returns all users, oldest first.
func (r *userRepository) List(ctx context.Context) ([]*domain.User, error) {
	users, err := listRecords[domain.User](ctx, r.Store, storage.KindUser, nil)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(users, func(a, b *domain.User) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return users, nil
}

