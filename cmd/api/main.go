package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"elderguard/internal/api"
	"elderguard/internal/api/handlers"
	"elderguard/internal/config"
	"elderguard/internal/domain/services"
	"elderguard/internal/domain/services/ai"
	"elderguard/internal/infrastructure/cache"
	"elderguard/internal/infrastructure/database"
	"elderguard/internal/infrastructure/database/repository"
	"elderguard/internal/infrastructure/qrdecode"
	"elderguard/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadDefault()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	var log *logger.Logger
	if cfg.App.Environment == "production" {
		log = logger.NewProduction()
	} else {
		log = logger.NewDevelopment()
	}
	logger.SetGlobal(log)

	log.Info().
		Str("app", cfg.App.Name).
		Str("env", cfg.App.Environment).
		Str("version", cfg.App.Version).
		Msg("starting ElderGuard")

	if cfg.Gemini.APIKey == "" {
		log.Warn().Msg("no Gemini API key configured, model calls will fail")
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize optional infrastructure
	db, redisCache := initInfrastructure(ctx, cfg, log)
	defer func() {
		if db != nil {
			db.Close()
		}
		if redisCache != nil {
			redisCache.Close()
		}
	}()

	// Report archive, only with a database
	var reportRepo *repository.ReportRepository
	if db != nil {
		reportRepo = repository.NewReportRepository(db.Pool())
		if err := reportRepo.Migrate(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to migrate report archive")
		}
		log.Info().Msg("report archive initialized")
	} else {
		log.Warn().Msg("running without database, reports will not be archived")
	}

	// Session store: Redis when available, in-memory otherwise
	var sessions services.SessionStore
	if redisCache != nil {
		sessions = services.NewRedisSessionStore(redisCache, cfg.Session.TTL, log)
		log.Info().Msg("sessions backed by Redis")
	} else {
		memStore := services.NewMemorySessionStore(cfg.Session.TTL, cfg.Session.CleanupInterval, log)
		defer memStore.Close()
		sessions = memStore
		log.Info().Msg("sessions backed by memory")
	}

	// Generative model client
	provider := ai.NewGeminiClient(cfg.Gemini, log)

	// Domain services
	extractor := services.NewIntelExtractor(log)
	analyzer := services.NewAccountContextAnalyzer()
	decoder := qrdecode.New()

	protectService := services.NewProtectService(extractor, analyzer, provider, sessions, log)
	warrantService := services.NewWarrantService(provider, extractor, sessions, log)
	qrService := services.NewQRService(decoder, provider, extractor, sessions, log)
	baitService := services.NewBaitService(provider, extractor, sessions, log)
	reportService := services.NewReportService(sessions, reportRepo, log)

	// Handlers and router
	h := handlers.NewHandlers(handlers.Dependencies{
		Protect:  protectService,
		Warrant:  warrantService,
		QR:       qrService,
		Bait:     baitService,
		Report:   reportService,
		Sessions: sessions,
		Cache:    redisCache,
		DB:       db,
		Config:   cfg,
		Logger:   log,
	})

	router := api.NewRouter(*cfg, h, redisCache, log)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.HTTPPort),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info().
			Str("addr", httpServer.Addr).
			Msg("starting HTTP server")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("shutdown complete")
}

// initInfrastructure connects the optional backends. Either may be disabled
// or unreachable; the service still runs.
func initInfrastructure(ctx context.Context, cfg *config.Config, log *logger.Logger) (*database.PostgresDB, *cache.RedisCache) {
	var db *database.PostgresDB
	if cfg.Database.Enabled {
		var err error
		db, err = database.NewPostgres(ctx, cfg.Database, log)
		if err != nil {
			log.Warn().Err(err).Msg("failed to connect to PostgreSQL, continuing without database")
			db = nil
		}
	}

	var redisCache *cache.RedisCache
	if cfg.Redis.Enabled {
		var err error
		redisCache, err = cache.NewRedis(ctx, cfg.Redis, log)
		if err != nil {
			log.Warn().Err(err).Msg("failed to connect to Redis, continuing with in-memory sessions")
			redisCache = nil
		}
	}

	return db, redisCache
}
