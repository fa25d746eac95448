package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cypherlabdev/event-betting-service/internal/cache"
	"github.com/cypherlabdev/event-betting-service/internal/config"
	httpHandler "github.com/cypherlabdev/event-betting-service/internal/handler/http"
	"github.com/cypherlabdev/event-betting-service/internal/i18n"
	"github.com/cypherlabdev/event-betting-service/internal/messaging"
	"github.com/cypherlabdev/event-betting-service/internal/metrics"
	"github.com/cypherlabdev/event-betting-service/internal/scheduler"
	"github.com/cypherlabdev/event-betting-service/internal/service"
	"github.com/cypherlabdev/event-betting-service/internal/store"
)

func main() {
	// Load configuration; the file is optional
	cfg, err := config.LoadConfig(os.Getenv("EVENT_BETTING_CONFIG_FILE"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logger := setupLogger(cfg.Logging)
	logger.Info().Msg("starting event-betting-service")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Persistence gateway
	st, err := openStore(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open store")
	}
	defer st.Close()

	// Odds cache
	var oddsCache service.OddsCache
	var redisCache *cache.RedisCache
	if cfg.Redis.Enabled {
		redisCache = cache.NewRedisCache(cfg.Redis.ToCacheConfig(), logger)
		defer redisCache.Close()

		if err := redisCache.Ping(ctx); err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to Redis")
		}
		// Snapshots from a previous run may predate writes made while we were down
		if _, err := redisCache.Purge(ctx); err != nil {
			logger.Warn().Err(err).Msg("failed to purge cached odds")
		}
		oddsCache = redisCache
		logger.Info().Str("addr", cfg.Redis.Addr).Msg("connected to Redis")
	}

	// Notifications
	var publisher service.Publisher
	if cfg.Kafka.Enabled {
		producer := messaging.NewKafkaProducer(cfg.Kafka.ToProducerConfig(), logger)
		defer producer.Close()
		publisher = producer
	}

	collector, err := metrics.NewCollector(prometheus.DefaultRegisterer)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to register metrics")
	}

	bettingService := service.NewBettingService(st, oddsCache, publisher, collector, cfg.Betting.ToBettingConfig(), logger)
	gamblerService := service.NewGamblerService(st, publisher, collector, cfg.Gambler.ToGamblerConfig(), logger)
	logger.Info().Msg("betting services initialized")

	// Bet requests from background workers
	if cfg.Kafka.Enabled {
		consumer := messaging.NewKafkaConsumer(cfg.Kafka.ToConsumerConfig(), bettingService, logger)
		defer consumer.Close()

		go func() {
			if err := consumer.Start(ctx); err != nil {
				logger.Error().Err(err).Msg("Kafka consumer failed")
			}
		}()
	}

	// Daily subscription sweep
	runner := scheduler.New(ctx, logger)
	if _, err := runner.AddSubscriptionSweep(cfg.Gambler.SweepSchedule, gamblerService, time.Now); err != nil {
		logger.Fatal().Err(err).Msg("failed to schedule subscription sweep")
	}
	runner.Start()

	translator, err := i18n.NewTranslator(cfg.I18n.DefaultLanguage)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load translations")
	}

	bettingHandler := httpHandler.NewBettingHandler(bettingService, gamblerService, translator, logger)

	mux := http.NewServeMux()

	// Health and monitoring endpoints
	mux.HandleFunc("/health", healthHandler)
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		readyHandler(w, r, st, redisCache)
	})
	mux.Handle("/metrics", promhttp.Handler())

	bettingHandler.RegisterRoutes(mux)
	logger.Info().Msg("API routes registered")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("HTTP server failed")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info().Msg("shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}

	// Stop intake before the store goes away
	cancel()
	runner.Stop()

	logger.Info().Msg("shutdown complete")
}

// openStore returns the Postgres gateway when enabled, the in-memory one otherwise
func openStore(ctx context.Context, cfg config.PostgresConfig, logger zerolog.Logger) (store.Store, error) {
	if !cfg.Enabled {
		logger.Warn().Msg("postgres disabled, using in-memory store")
		return store.NewMemory(), nil
	}

	db, err := store.OpenPostgres(ctx, cfg.ToStoreConfig())
	if err != nil {
		return nil, err
	}

	pg := store.NewPostgres(db, logger)
	if cfg.Migrate {
		if err := pg.Migrate(ctx); err != nil {
			pg.Close()
			return nil, err
		}
	}

	logger.Info().Msg("connected to Postgres")
	return pg, nil
}

// setupLogger configures the logger based on config
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	return log.Logger.With().Str("service", "event-betting").Logger()
}

// healthHandler returns 200 if service is running
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// readyHandler returns 200 if the store and cache are reachable
func readyHandler(w http.ResponseWriter, r *http.Request, st store.Store, redisCache *cache.RedisCache) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := st.Ping(ctx); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("store unavailable"))
		return
	}
	if redisCache != nil {
		if err := redisCache.Ping(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("Redis unavailable"))
			return
		}
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("READY"))
}
