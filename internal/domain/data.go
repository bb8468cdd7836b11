package domain

import (
	"context"
	"fmt"
	"time"
)

// ExportVersion tags every snapshot produced by ExportAll. It is informational only.
const ExportVersion = "1.0"

// DatabaseExport is a full snapshot of every entity kind.
// swagger:model DatabaseExport
type DatabaseExport struct {
	Users         []*User         `json:"users"`
	Events        []*Event        `json:"events"`
	Venues        []*Venue        `json:"venues"`
	Packages      []*Package      `json:"packages"`
	Registrations []*Registration `json:"registrations"`
	ExportedAt    time.Time       `json:"exported_at"`
	Version       string          `json:"version"`
}

// DataStatistics holds per-kind record counts. LastUpdated is the time the counts were taken.
// swagger:model DataStatistics
type DataStatistics struct {
	Users         int       `json:"users"`
	Events        int       `json:"events"`
	Venues        int       `json:"venues"`
	Packages      int       `json:"packages"`
	Registrations int       `json:"registrations"`
	TotalRecords  int       `json:"total_records"`
	LastUpdated   time.Time `json:"last_updated"`
}

// ImportSummary counts what ImportAll wrote, per kind.
// swagger:model ImportSummary
type ImportSummary struct {
	Venues        int `json:"venues"`
	Users         int `json:"users"`
	Packages      int `json:"packages"`
	Events        int `json:"events"`
	Registrations int `json:"registrations"`
}

// SeedVenue is a venue in a sample dataset. Key is local to the dataset and lets events refer to it.
type SeedVenue struct {
	Key         string  `yaml:"key"`
	Name        string  `yaml:"name"`
	Address     string  `yaml:"address"`
	Capacity    uint32  `yaml:"capacity"`
	Description *string `yaml:"description"`
}

// SeedPackage is a package in a sample dataset.
type SeedPackage struct {
	Name            string  `yaml:"name"`
	Description     string  `yaml:"description"`
	Price           float64 `yaml:"price"`
	DurationDays    uint32  `yaml:"duration_days"`
	MaxParticipants uint32  `yaml:"max_participants"`
}

// SeedEvent is an event in a sample dataset, attached to a SeedVenue by key.
type SeedEvent struct {
	Title               string    `yaml:"title"`
	Description         string    `yaml:"description"`
	StartDate           time.Time `yaml:"start_date"`
	EndDate             time.Time `yaml:"end_date"`
	Venue               string    `yaml:"venue"`
	MaxParticipants     uint32    `yaml:"max_participants"`
	CurrentParticipants uint32    `yaml:"current_participants"`
	Price               float64   `yaml:"price"`
	EventType           EventType `yaml:"event_type"`
}

// SeedDataset is the literal sample content inserted into an empty store.
type SeedDataset struct {
	Name     string        `yaml:"name"`
	Venues   []SeedVenue   `yaml:"venues"`
	Packages []SeedPackage `yaml:"packages"`
	Events   []SeedEvent   `yaml:"events"`
}

// Validate checks that every event refers to a venue of the dataset and that
// every enum and date range is well formed.
func (d *SeedDataset) Validate() error {
	keys := make(map[string]bool, len(d.Venues))
	for _, v := range d.Venues {
		if v.Key == "" {
			return fmt.Errorf("%w: venue %q has no key", ErrInvalidInput, v.Name)
		}
		if keys[v.Key] {
			return fmt.Errorf("%w: duplicate venue key %q", ErrInvalidInput, v.Key)
		}
		keys[v.Key] = true
	}
	for _, e := range d.Events {
		if !keys[e.Venue] {
			return fmt.Errorf("%w: event %q refers to unknown venue %q", ErrInvalidInput, e.Title, e.Venue)
		}
		if !e.EventType.Valid() {
			return fmt.Errorf("%w: event %q has unknown type %q", ErrInvalidInput, e.Title, e.EventType)
		}
		if !e.EndDate.After(e.StartDate) {
			return fmt.Errorf("%w: event %q ends before it starts", ErrInvalidInput, e.Title)
		}
	}
	return nil
}

// DataRepository is the cross-kind aggregation layer over the entity repositories.
type DataRepository interface {
	ExportAll(ctx context.Context) (*DatabaseExport, error)
	// ImportAll replays snapshot through Create in dependency order. Existing data is kept.
	ImportAll(ctx context.Context, snapshot *DatabaseExport) (*ImportSummary, error)
	Statistics(ctx context.Context) (*DataStatistics, error)
	ClearAll(ctx context.Context) error
	// SeedIfEmpty inserts dataset unless an event already exists. It reports whether it seeded.
	SeedIfEmpty(ctx context.Context, dataset *SeedDataset) (bool, error)
}

// DataService exposes data management to the HTTP layer and the CLI.
type DataService interface {
	Export(ctx context.Context) (*DatabaseExport, error)
	Import(ctx context.Context, snapshot *DatabaseExport) (*ImportSummary, error)
	Statistics(ctx context.Context) (*DataStatistics, error)
	Clear(ctx context.Context) error
	Seed(ctx context.Context) (bool, error)
}

// SnapshotFetcher pulls an export snapshot from another running instance.
type SnapshotFetcher interface {
	Fetch(ctx context.Context, baseURL string) (*DatabaseExport, error)
}
