package services

import (
	"context"
	"fmt"
	"html"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"eventbooking/internal/domain"
)

type catalogService struct {
	venues   domain.VenueRepository
	packages domain.PackageRepository
	events   domain.EventRepository
	policy   *bluemonday.Policy
}

// NewCatalogService returns a CatalogService. Free text fields are stripped of markup before they are stored.
func NewCatalogService(venues domain.VenueRepository, packages domain.PackageRepository, events domain.EventRepository) domain.CatalogService {
	return &catalogService{
		venues:   venues,
		packages: packages,
		events:   events,
		policy:   bluemonday.StrictPolicy(),
	}
}

// sanitize strips tags and keeps entities as plain characters, so "Blues & Fusion" survives unchanged.
func (s *catalogService) sanitize(v string) string {
	return html.UnescapeString(s.policy.Sanitize(v))
}

func (s *catalogService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	return s.events.List(ctx)
}

func (s *catalogService) GetEvent(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	return s.events.GetByID(ctx, id)
}

// CreateEvent does not check that the venue exists.
func (s *catalogService) CreateEvent(ctx context.Context, event *domain.Event) error {
	if !event.EndDate.After(event.StartDate) {
		return fmt.Errorf("%w: end date must be after start date", domain.ErrInvalidInput)
	}
	if !event.EventType.Valid() {
		return fmt.Errorf("%w: unknown event type %q", domain.ErrInvalidInput, event.EventType)
	}
	event.Title = s.sanitize(event.Title)
	event.Description = s.sanitize(event.Description)
	return s.events.Create(ctx, event)
}

func (s *catalogService) ListVenues(ctx context.Context) ([]*domain.Venue, error) {
	return s.venues.List(ctx)
}

func (s *catalogService) CreateVenue(ctx context.Context, venue *domain.Venue) error {
	venue.Name = s.sanitize(venue.Name)
	venue.Address = s.sanitize(venue.Address)
	if venue.Description != nil {
		d := s.sanitize(*venue.Description)
		venue.Description = &d
	}
	return s.venues.Create(ctx, venue)
}

func (s *catalogService) ListPackages(ctx context.Context) ([]*domain.Package, error) {
	return s.packages.List(ctx)
}

func (s *catalogService) CreatePackage(ctx context.Context, pkg *domain.Package) error {
	if pkg.Price < 0 {
		return fmt.Errorf("%w: price must be non-negative", domain.ErrInvalidInput)
	}
	pkg.Name = s.sanitize(pkg.Name)
	pkg.Description = s.sanitize(pkg.Description)
	return s.packages.Create(ctx, pkg)
}
