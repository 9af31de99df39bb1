package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"elderguard/internal/api/handlers"
	apimiddleware "elderguard/internal/api/middleware"
	"elderguard/internal/config"
	"elderguard/internal/infrastructure/cache"
	"elderguard/pkg/logger"
)

// Router holds dependencies for the API router
type Router struct {
	config   config.Config
	handlers *handlers.Handlers
	cache    *cache.RedisCache
	logger   *logger.Logger
}

// NewRouter creates a new Router instance
func NewRouter(cfg config.Config, h *handlers.Handlers, c *cache.RedisCache, log *logger.Logger) *Router {
	return &Router{
		config:   cfg,
		handlers: h,
		cache:    c,
		logger:   log.WithComponent("router"),
	}
}

// Setup sets up the Chi router with all routes and middleware
func (r *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Core middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(apimiddleware.Logger(r.logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	// CORS
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   r.config.CORS.AllowedOrigins,
		AllowedMethods:   r.config.CORS.AllowedMethods,
		AllowedHeaders:   r.config.CORS.AllowedHeaders,
		AllowCredentials: r.config.CORS.AllowCredentials,
		MaxAge:           r.config.CORS.MaxAge,
	}))

	// Rate limiting
	if r.config.RateLimit.Enabled {
		router.Use(apimiddleware.RateLimiter(r.cache, r.config.RateLimit))
	}

	// Health checks
	router.Get("/health", r.handlers.Health.Check)
	router.Get("/ready", r.handlers.Health.Ready)

	// API v1 routes
	router.Route("/api/v1", func(api chi.Router) {
		if r.config.Auth.Enabled {
			api.Use(apimiddleware.APIKeyAuth(r.config.Auth.APIKey))
		}

		// UPI handle registry
		api.Route("/handles", func(h chi.Router) {
			h.Get("/", r.handlers.Handles.List)
			h.Get("/{suffix}", r.handlers.Handles.Get)
		})

		// Scan sessions
		api.Route("/sessions", func(sessions chi.Router) {
			sessions.Post("/", r.handlers.Sessions.Create)

			sessions.Route("/{id}", func(sess chi.Router) {
				sess.Get("/intel", r.handlers.Sessions.Intel)

				sess.Post("/scan/text", r.handlers.Scan.Text)
				sess.Post("/scan/warrant", r.handlers.Scan.Warrant)
				sess.Post("/scan/qr", r.handlers.Scan.QR)

				sess.Post("/bait", r.handlers.Bait.Reply)
				sess.Post("/report", r.handlers.Report.Build)
			})
		})

		// Archived reports, only when a database backs them
		if r.config.Database.Enabled {
			api.Route("/admin", func(admin chi.Router) {
				admin.Use(apimiddleware.AdminAuth(r.config.Auth.AdminToken))

				admin.Get("/reports", r.handlers.Admin.ListReports)
				admin.Get("/reports/{id}", r.handlers.Admin.GetReport)
			})
		}
	})

	return router
}
