package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventbooking/internal/domain"
)

type registrationFixture struct {
	svc           domain.RegistrationService
	registrations *fakeRegistrationRepo
	events        *fakeEventRepo
	packages      *fakePackageRepo
	users         *fakeUserRepo
	emails        *fakeEmailService
	user          *domain.User
	event         *domain.Event
	pkg           *domain.Package
}

func newRegistrationFixture(t *testing.T) *registrationFixture {
	t.Helper()
	f := &registrationFixture{
		registrations: &fakeRegistrationRepo{},
		packages:      &fakePackageRepo{},
		users:         newFakeUserRepo(),
		emails:        &fakeEmailService{},
	}
	f.user = domain.NewUser("ada@example.com", "h", "Ada", "L", nil, domain.ExperienceBeginner, time.Now())
	require.NoError(t, f.users.Create(context.Background(), f.user))
	f.event = domain.NewEvent("Rooftop Sunrise Sessions", "House and techno", time.Now(), time.Now().Add(time.Hour), uuid.New(), 1, 45, domain.EventTypeSocial)
	f.event.CurrentParticipants = 1
	f.events = newFakeEventRepo(f.event)
	f.pkg = domain.NewPackage("VIP Scene Access", "Exclusive", 450, 5, 8)
	f.packages.created = append(f.packages.created, f.pkg)
	f.svc = NewRegistrationService(f.registrations, f.events, f.packages, f.users, f.emails, zerolog.Nop())
	return f
}

func TestRegistrationService_Register(t *testing.T) {
	ctx := context.Background()
	f := newRegistrationFixture(t)

	reg, err := f.svc.Register(ctx, f.user.ID, &f.event.ID, &f.pkg.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RegistrationPending, reg.Status)
	assert.Equal(t, domain.PaymentPending, reg.PaymentStatus)
	assert.Equal(t, f.user.ID, reg.UserID)
	require.Len(t, f.registrations.created, 1)

	assert.Equal(t, []uuid.UUID{f.event.ID}, f.events.incremented)
	assert.Equal(t, uint32(2), f.event.CurrentParticipants, "capacity is not enforced")

	require.Len(t, f.emails.registrations, 1)
	sent := f.emails.registrations[0]
	assert.Equal(t, "ada@example.com", sent.Email)
	assert.Equal(t, "Rooftop Sunrise Sessions", sent.EventTitle)
	assert.Equal(t, "VIP Scene Access", sent.PackageName)
	assert.Equal(t, reg.ID.String(), sent.RegistrationID)
}

func TestRegistrationService_Register_package_only(t *testing.T) {
	f := newRegistrationFixture(t)
	_, err := f.svc.Register(context.Background(), f.user.ID, nil, &f.pkg.ID)
	require.NoError(t, err)
	assert.Empty(t, f.events.incremented)
}

func TestRegistrationService_Register_side_effects_are_best_effort(t *testing.T) {
	f := newRegistrationFixture(t)
	f.events.incrementErr = errBoom
	f.emails.err = errBoom
	f.packages.getErr = errBoom

	missing := uuid.New()
	reg, err := f.svc.Register(context.Background(), f.user.ID, &missing, &f.pkg.ID)
	require.NoError(t, err)
	require.NotNil(t, reg)
	require.Len(t, f.emails.registrations, 1)
	assert.Empty(t, f.emails.registrations[0].EventTitle)
	assert.Empty(t, f.emails.registrations[0].PackageName)
}

func TestRegistrationService_Register_create_failure(t *testing.T) {
	f := newRegistrationFixture(t)
	f.registrations.createErr = errBoom
	_, err := f.svc.Register(context.Background(), f.user.ID, &f.event.ID, nil)
	require.ErrorIs(t, err, errBoom)
	assert.Empty(t, f.events.incremented)
	assert.Empty(t, f.emails.registrations)
}

func TestRegistrationService_ListForUser(t *testing.T) {
	ctx := context.Background()
	f := newRegistrationFixture(t)
	_, err := f.svc.Register(ctx, f.user.ID, &f.event.ID, nil)
	require.NoError(t, err)
	_, err = f.svc.Register(ctx, uuid.New(), &f.event.ID, nil)
	require.NoError(t, err)

	mine, err := f.svc.ListForUser(ctx, f.user.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}
