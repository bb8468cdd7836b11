package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"eventbooking/internal/delivery/http/helpers"
	"eventbooking/internal/delivery/http/middleware"
	"eventbooking/internal/domain"
)

var (
	testLogger = zerolog.Nop()
	errBoom    = errors.New("bolt: database not open")
)

// serve runs handler on a request with an optional JSON body and authenticated user.
func serve(t *testing.T, handler http.Handler, method, target, body string, userID *uuid.UUID) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if userID != nil {
		req = req.WithContext(middleware.SetUserID(req.Context(), *userID))
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

// envelope decodes the response envelope, unmarshalling data into dst when dst is not nil.
func envelope(t *testing.T, rr *httptest.ResponseRecorder, dst any) helpers.APIResponse {
	t.Helper()
	var raw struct {
		helpers.APIResponse
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
	if dst != nil {
		require.NoError(t, json.Unmarshal(raw.Data, dst))
	}
	return raw.APIResponse
}

type fakeAuthService struct {
	result       *domain.AuthResult
	err          error
	lastRegister domain.RegisterParams
	lastEmail    string
}

func (f *fakeAuthService) Register(ctx context.Context, params domain.RegisterParams) (*domain.AuthResult, error) {
	f.lastRegister = params
	return f.result, f.err
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	f.lastEmail = email
	return f.result, f.err
}

type fakeUserService struct {
	profile *domain.UserProfile
	err     error
	lastID  uuid.UUID
}

func (f *fakeUserService) GetProfile(ctx context.Context, id uuid.UUID) (*domain.UserProfile, error) {
	f.lastID = id
	return f.profile, f.err
}

type fakeRegistrationService struct {
	regs          []*domain.Registration
	err           error
	lastUserID    uuid.UUID
	lastEventID   *uuid.UUID
	lastPackageID *uuid.UUID
}

func (f *fakeRegistrationService) Register(ctx context.Context, userID uuid.UUID, eventID, packageID *uuid.UUID) (*domain.Registration, error) {
	f.lastUserID, f.lastEventID, f.lastPackageID = userID, eventID, packageID
	if f.err != nil {
		return nil, f.err
	}
	return domain.NewRegistration(userID, eventID, packageID, fixedTime), nil
}

func (f *fakeRegistrationService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Registration, error) {
	f.lastUserID = userID
	return f.regs, f.err
}

// fakeCatalogService records created entities. createErr applies to every create,
// unless failName names the only item that should fail.
type fakeCatalogService struct {
	events    []*domain.Event
	venues    []*domain.Venue
	packages  []*domain.Package
	listErr   error
	getErr    error
	createErr error
	failName  string
}

func (f *fakeCatalogService) createFails(name string) error {
	if f.failName != "" && f.failName != name {
		return nil
	}
	return f.createErr
}

func (f *fakeCatalogService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	return f.events, f.listErr
}

func (f *fakeCatalogService) GetEvent(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, e := range f.events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCatalogService) CreateEvent(ctx context.Context, event *domain.Event) error {
	if err := f.createFails(event.Title); err != nil {
		return err
	}
	f.events = append(f.events, event)
	return nil
}

func (f *fakeCatalogService) ListVenues(ctx context.Context) ([]*domain.Venue, error) {
	return f.venues, f.listErr
}

func (f *fakeCatalogService) CreateVenue(ctx context.Context, venue *domain.Venue) error {
	if err := f.createFails(venue.Name); err != nil {
		return err
	}
	f.venues = append(f.venues, venue)
	return nil
}

func (f *fakeCatalogService) ListPackages(ctx context.Context) ([]*domain.Package, error) {
	return f.packages, f.listErr
}

func (f *fakeCatalogService) CreatePackage(ctx context.Context, pkg *domain.Package) error {
	if err := f.createFails(pkg.Name); err != nil {
		return err
	}
	f.packages = append(f.packages, pkg)
	return nil
}

type fakeDataService struct {
	snapshot *domain.DatabaseExport
	summary  *domain.ImportSummary
	stats    *domain.DataStatistics
	err      error
	imported *domain.DatabaseExport
	cleared  bool
}

func (f *fakeDataService) Export(ctx context.Context) (*domain.DatabaseExport, error) {
	return f.snapshot, f.err
}

func (f *fakeDataService) Import(ctx context.Context, snapshot *domain.DatabaseExport) (*domain.ImportSummary, error) {
	f.imported = snapshot
	return f.summary, f.err
}

func (f *fakeDataService) Statistics(ctx context.Context) (*domain.DataStatistics, error) {
	return f.stats, f.err
}

func (f *fakeDataService) Clear(ctx context.Context) error {
	if f.err != nil {
		return f.err
	}
	f.cleared = true
	return nil
}

func (f *fakeDataService) Seed(ctx context.Context) (bool, error) {
	return false, f.err
}
