package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"eventbooking/internal/domain"
)

// fakeUserRepo implements domain.UserRepository for tests.
type fakeUserRepo struct {
	mu        sync.Mutex
	byID      map[uuid.UUID]*domain.User
	byEmail   map[string]uuid.UUID
	getErr    error
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[uuid.UUID]*domain.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u.ID
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	id, ok := f.byEmail[email]
	getErr := f.getErr
	f.mu.Unlock()
	if getErr != nil {
		return nil, getErr
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	return f.GetByID(ctx, id)
}

func (f *fakeUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.User
	for _, u := range f.byID {
		out = append(out, u)
	}
	return out, nil
}

// fakePasswordHasher implements domain.PasswordHasher for tests.
type fakePasswordHasher struct {
	hashErr error
}

func (f *fakePasswordHasher) Hash(password string) (string, error) {
	if f.hashErr != nil {
		return "", f.hashErr
	}
	return "hash-" + password, nil
}

func (f *fakePasswordHasher) Compare(hash, password string) error {
	if hash != "hash-"+password {
		return domain.ErrInvalidCredentials
	}
	return nil
}

// fakeTokenIssuer implements domain.TokenIssuer for tests.
type fakeTokenIssuer struct {
	err        error
	lastExpiry time.Duration
}

func (f *fakeTokenIssuer) Issue(userID uuid.UUID, email string, expiry time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.lastExpiry = expiry
	return "token-" + userID.String(), nil
}

// fakeEmailService records what would have been sent.
type fakeEmailService struct {
	mu            sync.Mutex
	welcomes      []*domain.WelcomeMessageEmailData
	registrations []*domain.RegistrationEmailData
	err           error
}

func (f *fakeEmailService) SendWelcomeMessage(ctx context.Context, data *domain.WelcomeMessageEmailData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.welcomes = append(f.welcomes, data)
	return f.err
}

func (f *fakeEmailService) SendRegistrationConfirmation(ctx context.Context, data *domain.RegistrationEmailData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registrations = append(f.registrations, data)
	return f.err
}

// fakeEventRepo implements domain.EventRepository for tests.
type fakeEventRepo struct {
	byID         map[uuid.UUID]*domain.Event
	created      []*domain.Event
	incremented  []uuid.UUID
	incrementErr error
}

func newFakeEventRepo(events ...*domain.Event) *fakeEventRepo {
	f := &fakeEventRepo{byID: make(map[uuid.UUID]*domain.Event)}
	for _, e := range events {
		f.byID[e.ID] = e
	}
	return f
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	f.byID[e.ID] = e
	f.created = append(f.created, e)
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	if e, ok := f.byID[id]; ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	return f.created, nil
}

func (f *fakeEventRepo) IncrementParticipants(ctx context.Context, id uuid.UUID) error {
	if f.incrementErr != nil {
		return f.incrementErr
	}
	f.incremented = append(f.incremented, id)
	if e, ok := f.byID[id]; ok {
		e.CurrentParticipants++
	}
	return nil
}

// fakeVenueRepo implements domain.VenueRepository for tests.
type fakeVenueRepo struct {
	created []*domain.Venue
}

func (f *fakeVenueRepo) Create(ctx context.Context, v *domain.Venue) error {
	f.created = append(f.created, v)
	return nil
}

func (f *fakeVenueRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Venue, error) {
	for _, v := range f.created {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeVenueRepo) List(ctx context.Context) ([]*domain.Venue, error) {
	return f.created, nil
}

// fakePackageRepo implements domain.PackageRepository for tests.
type fakePackageRepo struct {
	created []*domain.Package
	getErr  error
}

func (f *fakePackageRepo) Create(ctx context.Context, p *domain.Package) error {
	f.created = append(f.created, p)
	return nil
}

func (f *fakePackageRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Package, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, p := range f.created {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakePackageRepo) List(ctx context.Context) ([]*domain.Package, error) {
	return f.created, nil
}

// fakeRegistrationRepo implements domain.RegistrationRepository for tests.
type fakeRegistrationRepo struct {
	created   []*domain.Registration
	createErr error
}

func (f *fakeRegistrationRepo) Create(ctx context.Context, r *domain.Registration) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, r)
	return nil
}

func (f *fakeRegistrationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Registration, error) {
	for _, r := range f.created {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRegistrationRepo) List(ctx context.Context) ([]*domain.Registration, error) {
	return f.created, nil
}

func (f *fakeRegistrationRepo) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Registration, error) {
	var out []*domain.Registration
	for _, r := range f.created {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

// fakeDataRepo implements domain.DataRepository for tests.
type fakeDataRepo struct {
	seeded    bool
	seedCalls int
	cleared   bool
	err       error
	imported  *domain.DatabaseExport
}

func (f *fakeDataRepo) ExportAll(ctx context.Context) (*domain.DatabaseExport, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.DatabaseExport{Version: domain.ExportVersion}, nil
}

func (f *fakeDataRepo) ImportAll(ctx context.Context, snapshot *domain.DatabaseExport) (*domain.ImportSummary, error) {
	if f.err != nil {
		return &domain.ImportSummary{Venues: 1}, f.err
	}
	f.imported = snapshot
	return &domain.ImportSummary{Venues: len(snapshot.Venues), Users: len(snapshot.Users)}, nil
}

func (f *fakeDataRepo) Statistics(ctx context.Context) (*domain.DataStatistics, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.DataStatistics{Users: 2, Events: 1, TotalRecords: 3}, nil
}

func (f *fakeDataRepo) ClearAll(ctx context.Context) error {
	if f.err != nil {
		return f.err
	}
	f.cleared = true
	return nil
}

func (f *fakeDataRepo) SeedIfEmpty(ctx context.Context, dataset *domain.SeedDataset) (bool, error) {
	f.seedCalls++
	if f.err != nil {
		return false, f.err
	}
	if f.seeded {
		return false, nil
	}
	f.seeded = true
	return true, nil
}

var errBoom = errors.New("boom")
