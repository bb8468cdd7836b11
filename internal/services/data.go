package services

import (
	"context"

	"github.com/rs/zerolog"

	"eventbooking/internal/domain"
	"eventbooking/internal/metrics"
	"eventbooking/internal/storage"
)

type dataService struct {
	repo    domain.DataRepository
	dataset *domain.SeedDataset
	logger  zerolog.Logger
}

// NewDataService returns a DataService. dataset is what Seed inserts into an empty store.
func NewDataService(repo domain.DataRepository, dataset *domain.SeedDataset, logger zerolog.Logger) domain.DataService {
	return &dataService{repo: repo, dataset: dataset, logger: logger}
}

func (s *dataService) Export(ctx context.Context) (*domain.DatabaseExport, error) {
	snap, err := s.repo.ExportAll(ctx)
	metrics.DataOperations.WithLabelValues("export", metrics.Result(err)).Inc()
	return snap, err
}

func (s *dataService) Import(ctx context.Context, snapshot *domain.DatabaseExport) (*domain.ImportSummary, error) {
	sum, err := s.repo.ImportAll(ctx, snapshot)
	metrics.DataOperations.WithLabelValues("import", metrics.Result(err)).Inc()
	if sum != nil {
		s.logger.Info().
			Int("venues", sum.Venues).
			Int("users", sum.Users).
			Int("packages", sum.Packages).
			Int("events", sum.Events).
			Int("registrations", sum.Registrations).
			Msg("imported snapshot")
	}
	return sum, err
}

func (s *dataService) Statistics(ctx context.Context) (*domain.DataStatistics, error) {
	stats, err := s.repo.Statistics(ctx)
	if err != nil {
		return nil, err
	}
	counts := map[storage.Kind]int{
		storage.KindUser:         stats.Users,
		storage.KindVenue:        stats.Venues,
		storage.KindPackage:      stats.Packages,
		storage.KindEvent:        stats.Events,
		storage.KindRegistration: stats.Registrations,
	}
	for kind, n := range counts {
		metrics.StoreRecords.WithLabelValues(kind.String()).Set(float64(n))
	}
	return stats, nil
}

func (s *dataService) Clear(ctx context.Context) error {
	err := s.repo.ClearAll(ctx)
	metrics.DataOperations.WithLabelValues("clear", metrics.Result(err)).Inc()
	if err != nil {
		return err
	}
	s.logger.Warn().Msg("all data cleared")
	return nil
}

func (s *dataService) Seed(ctx context.Context) (bool, error) {
	seeded, err := s.repo.SeedIfEmpty(ctx, s.dataset)
	metrics.DataOperations.WithLabelValues("seed", metrics.Result(err)).Inc()
	if err != nil {
		return false, err
	}
	if seeded {
		s.logger.Info().Str("dataset", s.dataset.Name).Msg("sample data inserted")
	} else {
		s.logger.Debug().Msg("events present, sample data skipped")
	}
	return seeded, nil
}
