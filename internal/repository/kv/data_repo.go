package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"eventbooking/internal/domain"
	"eventbooking/internal/storage"
)

type dataRepository struct {
	Store         storage.Engine
	Users         domain.UserRepository
	Venues        domain.VenueRepository
	Packages      domain.PackageRepository
	Events        domain.EventRepository
	Registrations domain.RegistrationRepository
	Now           func() time.Time
}

// NewDataRepository builds the aggregation layer over the entity repositories sharing store.
func NewDataRepository(store storage.Engine) domain.DataRepository {
	return &dataRepository{
		Store:         store,
		Users:         NewUserRepository(store),
		Venues:        NewVenueRepository(store),
		Packages:      NewPackageRepository(store),
		Events:        NewEventRepository(store),
		Registrations: NewRegistrationRepository(store),
		Now:           time.Now,
	}
}

// ExportAll lists every kind concurrently. There is no cross-kind snapshot, so
// a write racing the export may or may not appear in its kind.
func (r *dataRepository) ExportAll(ctx context.Context) (*domain.DatabaseExport, error) {
	out := &domain.DatabaseExport{Version: domain.ExportVersion}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Users, err = r.Users.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Venues, err = r.Venues.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Packages, err = r.Packages.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Events, err = r.Events.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Registrations, err = r.Registrations.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	out.ExportedAt = r.Now().UTC()
	return out, nil
}

// checkEntries rejects null entries and entries without an id.
func checkEntries[T any, P recordPtr[T]](name string, entries []P) error {
	for i, e := range entries {
		if e == nil {
			return fmt.Errorf("import: %w: %s[%d] is null", domain.ErrInvalidInput, name, i)
		}
		if e.RecordID() == uuid.Nil {
			return fmt.Errorf("import: %w: %s[%d] has no id", domain.ErrInvalidInput, name, i)
		}
	}
	return nil
}

func checkSnapshot(s *domain.DatabaseExport) error {
	if s == nil {
		return fmt.Errorf("import: %w: empty snapshot", domain.ErrInvalidInput)
	}
	return errors.Join(
		checkEntries("venues", s.Venues),
		checkEntries("users", s.Users),
		checkEntries("packages", s.Packages),
		checkEntries("events", s.Events),
		checkEntries("registrations", s.Registrations),
	)
}

// ImportAll creates every record of snapshot in the order venues, users,
// packages, events, registrations. Existing records are kept; records with the
// same id are overwritten. The snapshot is checked before anything is written.
func (r *dataRepository) ImportAll(ctx context.Context, snapshot *domain.DatabaseExport) (*domain.ImportSummary, error) {
	if err := checkSnapshot(snapshot); err != nil {
		return nil, err
	}
	sum := &domain.ImportSummary{}
	for _, v := range snapshot.Venues {
		if err := r.Venues.Create(ctx, v); err != nil {
			return sum, fmt.Errorf("import venue %s: %w", v.ID, err)
		}
		sum.Venues++
	}
	for _, u := range snapshot.Users {
		if err := r.Users.Create(ctx, u); err != nil {
			return sum, fmt.Errorf("import user %s: %w", u.ID, err)
		}
		sum.Users++
	}
	for _, p := range snapshot.Packages {
		if err := r.Packages.Create(ctx, p); err != nil {
			return sum, fmt.Errorf("import package %s: %w", p.ID, err)
		}
		sum.Packages++
	}
	for _, e := range snapshot.Events {
		if err := r.Events.Create(ctx, e); err != nil {
			return sum, fmt.Errorf("import event %s: %w", e.ID, err)
		}
		sum.Events++
	}
	for _, reg := range snapshot.Registrations {
		if err := r.Registrations.Create(ctx, reg); err != nil {
			return sum, fmt.Errorf("import registration %s: %w", reg.ID, err)
		}
		sum.Registrations++
	}
	return sum, nil
}

// Statistics counts keys per kind prefix. Index keys are not counted.
func (r *dataRepository) Statistics(ctx context.Context) (*domain.DataStatistics, error) {
	counts := make(map[storage.Kind]int, len(storage.Kinds))
	for _, kind := range storage.Kinds {
		n, err := r.Store.Count(ctx, kind.Prefix())
		if err != nil {
			return nil, err
		}
		counts[kind] = n
	}
	stats := &domain.DataStatistics{
		Users:         counts[storage.KindUser],
		Events:        counts[storage.KindEvent],
		Venues:        counts[storage.KindVenue],
		Packages:      counts[storage.KindPackage],
		Registrations: counts[storage.KindRegistration],
		LastUpdated:   r.Now().UTC(),
	}
	stats.TotalRecords = stats.Users + stats.Events + stats.Venues + stats.Packages + stats.Registrations
	return stats, nil
}

// ClearAll erases every key of every kind, indexes included.
func (r *dataRepository) ClearAll(ctx context.Context) error {
	return r.Store.Clear(ctx)
}

// SeedIfEmpty inserts dataset unless at least one event exists. The check and
// the writes are not atomic; concurrent first boots must be serialized by the caller.
func (r *dataRepository) SeedIfEmpty(ctx context.Context, dataset *domain.SeedDataset) (bool, error) {
	seeded, err := storage.HasPrefix(ctx, r.Store, storage.KindEvent.Prefix())
	if err != nil {
		return false, err
	}
	if seeded {
		return false, nil
	}
	if dataset == nil {
		return false, fmt.Errorf("seed: %w: no dataset", domain.ErrInvalidInput)
	}
	if err := dataset.Validate(); err != nil {
		return false, fmt.Errorf("seed %s: %w", dataset.Name, err)
	}

	venueIDs := make(map[string]*domain.Venue, len(dataset.Venues))
	for _, sv := range dataset.Venues {
		v := domain.NewVenue(sv.Name, sv.Address, sv.Capacity, sv.Description)
		if err := r.Venues.Create(ctx, v); err != nil {
			return false, fmt.Errorf("seed venue %q: %w", sv.Name, err)
		}
		venueIDs[sv.Key] = v
	}
	for _, sp := range dataset.Packages {
		p := domain.NewPackage(sp.Name, sp.Description, sp.Price, sp.DurationDays, sp.MaxParticipants)
		if err := r.Packages.Create(ctx, p); err != nil {
			return false, fmt.Errorf("seed package %q: %w", sp.Name, err)
		}
	}
	for _, se := range dataset.Events {
		venue := venueIDs[se.Venue]
		e := domain.NewEvent(se.Title, se.Description, se.StartDate, se.EndDate, venue.ID, se.MaxParticipants, se.Price, se.EventType)
		e.CurrentParticipants = se.CurrentParticipants
		if err := r.Events.Create(ctx, e); err != nil {
			return false, fmt.Errorf("seed event %q: %w", se.Title, err)
		}
	}
	return true, nil
}
