package storage_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventbooking/internal/domain"
	"eventbooking/internal/storage"
)

func strPtr(s string) *string { return &s }

func uuidPtr(id uuid.UUID) *uuid.UUID { return &id }

var created = time.Date(2025, 9, 1, 10, 30, 0, 0, time.UTC)

func roundTrip[T any, P interface {
	*T
	storage.Record
}](t *testing.T, kind storage.Kind, in P) P {
	t.Helper()
	b, err := storage.Encode(kind, in)
	require.NoError(t, err)
	out := P(new(T))
	require.NoError(t, storage.Decode(kind, kind.Key(in.RecordID()), b, out))
	return out
}

func TestCodec_UserRoundTrip(t *testing.T) {
	levels := []domain.Experience{
		domain.ExperienceBeginner,
		domain.ExperienceIntermediate,
		domain.ExperienceAdvanced,
		domain.ExperienceProfessional,
	}
	for _, level := range levels {
		for _, phone := range []*string{nil, strPtr("+49 30 1234567")} {
			u := domain.NewUser("dancer@example.com", "$2a$10$hash", "Ada", "Lovelace", phone, level, created)
			got := roundTrip[domain.User](t, storage.KindUser, u)
			assert.Equal(t, u, got)
		}
	}
	inactive := domain.NewUser("off@example.com", "h", "Off", "Line", nil, domain.ExperienceBeginner, created)
	inactive.IsActive = false
	assert.Equal(t, inactive, roundTrip[domain.User](t, storage.KindUser, inactive))
}

func TestCodec_VenueAndPackageRoundTrip(t *testing.T) {
	for _, desc := range []*string{nil, strPtr("Studio with a sprung floor")} {
		v := domain.NewVenue("Dance Studio Berlin", "Mitte, Berlin, Germany", 50, desc)
		assert.Equal(t, v, roundTrip[domain.Venue](t, storage.KindVenue, v))
	}
	p := domain.NewPackage("Beginner Blues", "Perfect introduction to Blues dancing", 45.5, 1, 20)
	assert.Equal(t, p, roundTrip[domain.Package](t, storage.KindPackage, p))
}

func TestCodec_EventRoundTrip(t *testing.T) {
	types := []domain.EventType{
		domain.EventTypeWorkshop,
		domain.EventTypeFestival,
		domain.EventTypeIntensive,
		domain.EventTypeSocial,
		domain.EventTypeCompetition,
	}
	for _, et := range types {
		e := domain.NewEvent("Alumni Training", "Advanced training for experienced dancers",
			created, created.Add(72*time.Hour), uuid.New(), 15, 180, et)
		e.CurrentParticipants = 8
		assert.Equal(t, e, roundTrip[domain.Event](t, storage.KindEvent, e))
	}
}

func TestCodec_RegistrationRoundTrip(t *testing.T) {
	statuses := []domain.RegistrationStatus{
		domain.RegistrationPending,
		domain.RegistrationConfirmed,
		domain.RegistrationCancelled,
		domain.RegistrationWaitingList,
	}
	payments := []domain.PaymentStatus{
		domain.PaymentPending,
		domain.PaymentCompleted,
		domain.PaymentFailed,
		domain.PaymentRefunded,
	}
	refs := []struct {
		event, pkg *uuid.UUID
	}{
		{nil, nil},
		{uuidPtr(uuid.New()), nil},
		{nil, uuidPtr(uuid.New())},
		{uuidPtr(uuid.New()), uuidPtr(uuid.New())},
	}
	for i, st := range statuses {
		r := domain.NewRegistration(uuid.New(), refs[i].event, refs[i].pkg, created)
		r.Status = st
		r.PaymentStatus = payments[i]
		r.AmountPaid = 85
		assert.Equal(t, r, roundTrip[domain.Registration](t, storage.KindRegistration, r))
	}
}

func TestCodec_EncodeRejectsUnknownEnum(t *testing.T) {
	e := domain.NewEvent("Title", "Description", created, created.Add(time.Hour), uuid.New(), 10, 0, "Rave")
	_, err := storage.Encode(storage.KindEvent, e)
	require.Error(t, err)
}

func TestCodec_MissingIDIsRejectedBothWays(t *testing.T) {
	venue := &domain.Venue{Name: "Hall", Address: "Main street 1", Capacity: 100}

	_, err := storage.Encode(storage.KindVenue, venue)
	require.ErrorIs(t, err, storage.ErrMissingID)

	err = storage.Decode(storage.KindVenue, []byte("venue:x"), []byte(`{"name":"Hall"}`), &domain.Venue{})
	require.ErrorIs(t, err, storage.ErrMissingID)
	require.ErrorIs(t, err, storage.ErrDecode)
}

func TestCodec_DecodeErrors(t *testing.T) {
	venue := domain.NewVenue("Tresor", "Köpenicker Str. 70, Berlin", 800, nil)
	venueBytes, err := storage.Encode(storage.KindVenue, venue)
	require.NoError(t, err)

	event := domain.NewEvent("Title", "Description", created, created.Add(time.Hour), venue.ID, 10, 0, domain.EventTypeSocial)
	eventBytes, err := storage.Encode(storage.KindEvent, event)
	require.NoError(t, err)

	tests := []struct {
		name string
		kind storage.Kind
		data []byte
		dst  storage.Record
	}{
		{name: "truncated", kind: storage.KindEvent, data: eventBytes[:len(eventBytes)/2], dst: &domain.Event{}},
		{name: "not json", kind: storage.KindEvent, data: []byte("\x00\x01garbage"), dst: &domain.Event{}},
		{name: "empty", kind: storage.KindUser, data: []byte{}, dst: &domain.User{}},
		{name: "venue bytes decoded as event", kind: storage.KindEvent, data: venueBytes, dst: &domain.Event{}},
		{name: "event bytes decoded as venue", kind: storage.KindVenue, data: eventBytes, dst: &domain.Venue{}},
		{name: "unknown enum tag", kind: storage.KindEvent,
			data: []byte(`{"id":"` + event.ID.String() + `","event_type":"Rave"}`), dst: &domain.Event{}},
		{name: "wrong field type", kind: storage.KindVenue,
			data: []byte(`{"id":"` + venue.ID.String() + `","capacity":"many"}`), dst: &domain.Venue{}},
		{name: "negative capacity", kind: storage.KindVenue,
			data: []byte(`{"id":"` + venue.ID.String() + `","capacity":-1}`), dst: &domain.Venue{}},
		{name: "trailing data", kind: storage.KindVenue, data: append(append([]byte{}, venueBytes...), []byte(`{}`)...), dst: &domain.Venue{}},
		{name: "missing id", kind: storage.KindVenue, data: []byte(`{"name":"x"}`), dst: &domain.Venue{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() {
				err = storage.Decode(tt.kind, []byte("k"), tt.data, tt.dst)
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, storage.ErrDecode)
			var de *storage.DecodeError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tt.kind, de.Kind)
		})
	}
}
