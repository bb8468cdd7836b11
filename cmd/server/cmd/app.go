package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"eventbooking/config"
	"eventbooking/internal/adapters/email"
	"eventbooking/internal/domain"
	"eventbooking/internal/repository/kv"
	"eventbooking/internal/seed"
	"eventbooking/internal/services"
	"eventbooking/internal/storage"
	boltstore "eventbooking/internal/storage/bolt"
	pgstore "eventbooking/internal/storage/postgres"
)

// app holds the opened store and everything built on top of it.
type app struct {
	cfg    *config.Config
	logger zerolog.Logger
	store  storage.Engine

	users         domain.UserRepository
	venues        domain.VenueRepository
	packages      domain.PackageRepository
	events        domain.EventRepository
	registrations domain.RegistrationRepository

	data domain.DataService
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}
	if storeEngine != "" {
		cfg.Store.Engine = storeEngine
	}
	if storePath != "" {
		cfg.Store.Path = storePath
	}
	return cfg, cfg.Validate()
}

func openStore(ctx context.Context, cfg config.StoreConfig) (storage.Engine, error) {
	switch cfg.Engine {
	case config.EnginePostgres:
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		return pgstore.Open(ctx, cfg.DatabaseURL)
	default:
		return boltstore.Open(cfg.Path)
	}
}

// newApp opens the configured store and wires the repositories and the data service.
func newApp(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*app, error) {
	dataset, err := seed.Load(cfg.Seed.Dataset)
	if err != nil {
		return nil, fmt.Errorf("seed dataset: %w", err)
	}
	store, err := openStore(ctx, cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	logger.Info().Str("engine", cfg.Store.Engine).Str("path", cfg.Store.Path).Msg("store opened")

	return &app{
		cfg:           cfg,
		logger:        logger,
		store:         store,
		users:         kv.NewUserRepository(store),
		venues:        kv.NewVenueRepository(store),
		packages:      kv.NewPackageRepository(store),
		events:        kv.NewEventRepository(store),
		registrations: kv.NewRegistrationRepository(store),
		data:          services.NewDataService(kv.NewDataRepository(store), dataset, logger),
	}, nil
}

func (a *app) emailService() (domain.EmailService, error) {
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    a.cfg.Email.Provider,
		FromAddress: a.cfg.Email.FromAddress,
		FromName:    a.cfg.Email.FromName,
		SES: email.SESConfig{
			Region:          a.cfg.Email.AWSRegion,
			AccessKeyID:     a.cfg.Email.AWSAccessKeyID,
			SecretAccessKey: a.cfg.Email.AWSSecretAccessKey,
		},
	}, a.logger)
	if err != nil {
		return nil, err
	}
	return services.NewEmailService(mailer, email.NewTemplateRenderer(), a.logger), nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.logger.Error().Err(err).Msg("store close failed")
	}
}
