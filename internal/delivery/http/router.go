package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "eventbooking/docs"
	"eventbooking/internal/delivery/http/controllers"
	"eventbooking/internal/delivery/http/middleware"
	"eventbooking/internal/domain"
	"eventbooking/internal/metrics"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Auth          *controllers.AuthController
	Users         *controllers.UserController
	Catalog       *controllers.CatalogController
	Registrations *controllers.RegistrationController
	Data          *controllers.DataController
}

// RouterConfig holds the HTTP settings that do not belong to a controller.
type RouterConfig struct {
	AllowedOrigins    []string
	AuthRatePerMinute int
}

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(cfg RouterConfig, logger zerolog.Logger, verifier domain.TokenVerifier, c Controllers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logging(logger))
	r.Use(chimw.Recoverer)
	r.Use(metrics.HTTPMiddleware)
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	requireAuth := middleware.RequireAuth(verifier, logger)

	r.Get("/health", controllers.Health)
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.RateLimit(cfg.AuthRatePerMinute))
			r.Post("/register", c.Auth.Register)
			r.Post("/login", c.Auth.Login)
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/profile", c.Users.GetProfile)
			r.Get("/registrations", c.Users.ListRegistrations)
		})

		r.Get("/events", c.Catalog.ListEvents)
		r.Post("/events", c.Catalog.CreateEvent)
		r.Get("/events/{id}", c.Catalog.GetEvent)
		r.Get("/venues", c.Catalog.ListVenues)
		r.Post("/venues", c.Catalog.CreateVenue)
		r.Get("/packages", c.Catalog.ListPackages)
		r.Post("/packages", c.Catalog.CreatePackage)

		r.With(requireAuth).Post("/registrations", c.Registrations.Create)

		r.Route("/data", func(r chi.Router) {
			r.Get("/statistics", c.Data.Statistics)
			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Get("/export", c.Data.Export)
				r.Post("/import", c.Data.Import)
				r.Delete("/clear", c.Data.Clear)
				r.Post("/bulk/events", c.Data.BulkEvents)
				r.Post("/bulk/venues", c.Data.BulkVenues)
				r.Post("/bulk/packages", c.Data.BulkPackages)
			})
		})
	})

	return r
}
