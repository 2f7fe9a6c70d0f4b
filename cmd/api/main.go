package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/moodbrew/moodbrew-backend/internal/adapters/cache"
	"github.com/moodbrew/moodbrew-backend/internal/adapters/providers/geolocation"
	"github.com/moodbrew/moodbrew-backend/internal/adapters/storage"
	"github.com/moodbrew/moodbrew-backend/internal/api/handlers"
	"github.com/moodbrew/moodbrew-backend/internal/api/routes"
	"github.com/moodbrew/moodbrew-backend/internal/application/services"
	"github.com/moodbrew/moodbrew-backend/internal/domain/providers"
	"github.com/moodbrew/moodbrew-backend/internal/infrastructure/clients/gemini"
	"github.com/moodbrew/moodbrew-backend/internal/infrastructure/clients/postgres"
	"github.com/moodbrew/moodbrew-backend/internal/infrastructure/clients/redis"
	"github.com/moodbrew/moodbrew-backend/internal/infrastructure/observability"
	"github.com/moodbrew/moodbrew-backend/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Environment)

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			log.Info().Msg("OpenTelemetry initialized")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Redis backs both the redis store backend and the cache layer, so it
	// is connected whenever either needs it.
	var redisClient *redis.Client
	if cfg.Store.Backend == config.StoreBackendRedis || cfg.Redis.Host != "" {
		redisClient, err = redis.NewClient(&cfg.Redis)
		if err != nil {
			if cfg.Store.Backend == config.StoreBackendRedis {
				log.Fatal().Err(err).Msg("failed to initialize Redis client")
			}
			log.Warn().Err(err).Msg("Redis unavailable, continuing without cache")
			redisClient = nil
		} else {
			defer redisClient.Close()
			log.Info().Msg("Redis client initialized")
		}
	}

	// Select the store backend
	var store providers.StoreProvider
	switch cfg.Store.Backend {
	case config.StoreBackendRedis:
		store = storage.NewRedisStore(redisClient)
		log.Info().Msg("using redis store backend")
	case config.StoreBackendPostgres:
		pgClient, err := postgres.NewClient(&cfg.Database)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize PostgreSQL client")
		}
		defer pgClient.Close()
		store, err = storage.NewPostgresStore(ctx, pgClient)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize postgres store backend")
		}
		log.Info().Msg("using postgres store backend")
	default:
		store, err = storage.NewFileStore(cfg.Store.DataDir)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize file store backend")
		}
		log.Info().Str("dir", cfg.Store.DataDir).Msg("using file store backend")
	}

	// Cache layer: Redis when available, otherwise in-process
	var cacheProvider providers.CacheProvider
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient)
	} else {
		cacheProvider = cache.NewMemoryAdapter()
	}

	// Repositories
	userRepo := storage.NewUserAdapter(store)
	logRepo := storage.NewEmotionLogAdapter(store)
	favoriteRepo := storage.NewFavoriteAdapter(store)
	reviewRepo := storage.NewReviewAdapter(store)

	// Mood classifier: Gemini when configured, keyword fallback otherwise
	var classifier providers.MoodClassifier
	if cfg.Gemini.APIKey != "" {
		geminiClient, err := gemini.NewClient(&cfg.Gemini)
		if err != nil {
			log.Warn().Err(err).Msg("failed to initialize Gemini client, using keyword fallback")
		} else {
			classifier = geminiClient
			log.Info().Str("model", cfg.Gemini.Model).Msg("Gemini classifier initialized")
		}
	} else {
		log.Info().Msg("no Gemini API key configured, using keyword fallback")
	}

	// Services
	accountService := services.NewAccountService(userRepo, cacheProvider)
	engagementService := services.NewEngagementService(logRepo, favoriteRepo, reviewRepo, cacheProvider)
	statsService := services.NewStatsService(reviewRepo, logRepo, cacheProvider)
	moodService := services.NewMoodService(classifier)

	// Seed the admin account
	if err := accountService.Init(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin account")
	}

	// Handlers
	development := cfg.Environment != "production"
	authHandler := handlers.NewAuthHandler(accountService, development)
	adminHandler := handlers.NewAdminHandler(accountService, statsService)
	engagementHandler := handlers.NewEngagementHandler(engagementService)
	cafeHandler := handlers.NewCafeHandler(statsService, engagementService)
	chatHandler := handlers.NewChatHandler(moodService)
	geolocationHandler := handlers.NewGeolocationHandler(geolocation.NewHaversineProvider())

	router := routes.NewRouter(
		authHandler,
		adminHandler,
		engagementHandler,
		cafeHandler,
		chatHandler,
		geolocationHandler,
		metrics,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
	log.Info().Msg("server stopped")
}
