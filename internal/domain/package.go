package domain

import (
	"context"

	"github.com/google/uuid"
)

// Package is a bookable bundle spanning one or more days.
// swagger:model Package
type Package struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	DurationDays    uint32    `json:"duration_days"`
	MaxParticipants uint32    `json:"max_participants"`
}

// NewPackage returns a Package with a fresh id.
func NewPackage(name, description string, price float64, durationDays, maxParticipants uint32) *Package {
	return &Package{
		ID:              uuid.New(),
		Name:            name,
		Description:     description,
		Price:           price,
		DurationDays:    durationDays,
		MaxParticipants: maxParticipants,
	}
}

// RecordID returns the storage identifier of the package.
func (p *Package) RecordID() uuid.UUID { return p.ID }

// PackageRepository defines the interface for package storage.
type PackageRepository interface {
	Create(ctx context.Context, pkg *Package) error
	GetByID(ctx context.Context, id uuid.UUID) (*Package, error)
	List(ctx context.Context) ([]*Package, error)
}
