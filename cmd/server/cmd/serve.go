package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"eventbooking/config"
	"eventbooking/internal/adapters/auth"
	httpdelivery "eventbooking/internal/delivery/http"
	"eventbooking/internal/delivery/http/controllers"
	"eventbooking/internal/services"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the HTTP API server.

The store is opened (and seeded when SEED_ON_START is true and it holds no
events), then the REST API, /health, /metrics and /swagger are served until
SIGINT or SIGTERM.

Examples:
  # Start with defaults from the environment
  server serve

  # Listen on all interfaces, port 9090
  server serve --host 0.0.0.0 --port 9090`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serverHost, "host", "", "host to bind (overrides HOST)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "port to listen on (overrides PORT)")
}

func runServer() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if serverHost != "" {
		cfg.Server.Host = serverHost
	}
	if serverPort != 0 {
		cfg.Server.Port = serverPort
	}
	logger := config.NewLogger(cfg.Logging)

	ctx := context.Background()
	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	if cfg.Seed.OnStart {
		if _, err := a.data.Seed(ctx); err != nil {
			return fmt.Errorf("seed store: %w", err)
		}
	}

	handler, err := newHandler(a)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", server.Addr).Str("env", cfg.Environment).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	return gracefulShutdown(server, serverErr, logger)
}

// newHandler wires the services and controllers of a into the API router.
func newHandler(a *app) (http.Handler, error) {
	emails, err := a.emailService()
	if err != nil {
		return nil, fmt.Errorf("email: %w", err)
	}
	tokens := auth.NewJWTManager(a.cfg.Auth.JWTSecret)

	authSvc := services.NewAuthService(a.users, auth.NewBcryptHasher(0), tokens, emails, a.cfg.Auth.TokenExpiry, a.logger)
	userSvc := services.NewUserService(a.users)
	catalogSvc := services.NewCatalogService(a.venues, a.packages, a.events)
	regSvc := services.NewRegistrationService(a.registrations, a.events, a.packages, a.users, emails, a.logger)

	return httpdelivery.NewRouter(
		httpdelivery.RouterConfig{
			AllowedOrigins:    a.cfg.Server.AllowedOrigins,
			AuthRatePerMinute: a.cfg.Server.AuthRatePerMinute,
		},
		a.logger,
		tokens,
		httpdelivery.Controllers{
			Auth:          controllers.NewAuthController(a.logger, authSvc),
			Users:         controllers.NewUserController(a.logger, userSvc, regSvc),
			Catalog:       controllers.NewCatalogController(a.logger, catalogSvc),
			Registrations: controllers.NewRegistrationController(a.logger, regSvc),
			Data:          controllers.NewDataController(a.logger, a.data, catalogSvc),
		},
	), nil
}

func gracefulShutdown(server *http.Server, serverErr <-chan error, logger zerolog.Logger) error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err, ok := <-serverErr:
		if ok && err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-stop:
	}
	logger.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown error")
		return err
	}

	logger.Info().Msg("server stopped")
	return nil
}
