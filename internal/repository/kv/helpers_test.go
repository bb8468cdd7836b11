package kv

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"eventbooking/internal/domain"
	"eventbooking/internal/storage"
	"eventbooking/internal/storage/bolt"
)

func newStore(t *testing.T) storage.Engine {
	t.Helper()
	e, err := bolt.Open(filepath.Join(t.TempDir(), "store"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = e.Close() })
	return e
}

func day(month time.Month, d int) time.Time {
	return time.Date(2025, month, d, 18, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

func testDataset() *domain.SeedDataset {
	return &domain.SeedDataset{
		Name: "test",
		Venues: []domain.SeedVenue{
			{Key: "studio", Name: "Dance Studio Berlin", Address: "Mitte, Berlin, Germany", Capacity: 50, Description: strPtr("Studio")},
			{Key: "center", Name: "Community Center Kreuzberg", Address: "Kreuzberg, Berlin, Germany", Capacity: 80},
		},
		Packages: []domain.SeedPackage{
			{Name: "Beginner Blues", Description: "Perfect introduction", Price: 45, DurationDays: 1, MaxParticipants: 20},
			{Name: "Fusion Experience", Description: "Explore fusion", Price: 85, DurationDays: 2, MaxParticipants: 25},
		},
		Events: []domain.SeedEvent{
			{Title: "Alumni Training", Description: "Advanced training", StartDate: day(9, 25), EndDate: day(10, 1),
				Venue: "studio", MaxParticipants: 15, CurrentParticipants: 8, Price: 180, EventType: domain.EventTypeWorkshop},
			{Title: "Experience", Description: "Weekend festival", StartDate: day(10, 2), EndDate: day(10, 5),
				Venue: "center", MaxParticipants: 80, CurrentParticipants: 45, Price: 85, EventType: domain.EventTypeFestival},
			{Title: "Immersion", Description: "Week-long immersion", StartDate: day(10, 6), EndDate: day(10, 12),
				Venue: "studio", MaxParticipants: 20, CurrentParticipants: 12, Price: 280, EventType: domain.EventTypeIntensive},
		},
	}
}
