package kv

import (
	"cmp"
	"context"
	"slices"

	"github.com/google/uuid"

	"eventbooking/internal/domain"
	"eventbooking/internal/storage"
)

type packageRepository struct {
	Store storage.Engine
}

func NewPackageRepository(store storage.Engine) domain.PackageRepository {
	return &packageRepository{Store: store}
}

func (r *packageRepository) Create(ctx context.Context, p *domain.Package) error {
	return putRecord(ctx, r.Store, storage.KindPackage, p)
}

func (r *packageRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Package, error) {
	return getRecord[domain.Package](ctx, r.Store, storage.KindPackage, id)
}

// List returns all packages, cheapest first.
func (r *packageRepository) List(ctx context.Context) ([]*domain.Package, error) {
	pkgs, err := listRecords[domain.Package](ctx, r.Store, storage.KindPackage, nil)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(pkgs, func(a, b *domain.Package) int {
		return cmp.Compare(a.Price, b.Price)
	})
	return pkgs, nil
}
