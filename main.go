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

	"pocketbook/db"
	"pocketbook/db/memory"
	_ "pocketbook/docs"
	"pocketbook/internal/config"
	"pocketbook/internal/events"
	"pocketbook/internal/logger"
	"pocketbook/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var repo *store.Store

// @title Pocketbook API
// @version 1.0
// @description Personal finance tracker: accounts, categories, transactions and user settings.
// @host localhost:8080
// @BasePath /
func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.IsDevelopment())

	if err := run(cfg, log); err != nil {
		log.Error().Err(err).Msg("Server stopped")
		os.Exit(1)
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner, closeRunner, err := openRunner(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeRunner()

	opts := []store.Option{store.WithLogger(log)}
	if cfg.AMQPURL != "" {
		publisher, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange, log)
		if err != nil {
			return fmt.Errorf("connect to AMQP: %w", err)
		}
		defer publisher.Close()
		log.Info().Str("exchange", cfg.AMQPExchange).Msg("Publishing change events")
		opts = append(opts, store.WithPublisher(publisher))
	}
	repo = store.New(runner, opts...)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           setupRouter(cfg, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Str("environment", cfg.Environment).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// openRunner selects the storage backend
func openRunner(ctx context.Context, cfg *config.Config, log zerolog.Logger) (store.TxRunner, func(), error) {
	if cfg.DataBackend == config.BackendMemory {
		log.Warn().Msg("Using in-memory storage, data is lost on restart")
		return memory.New(), func() {}, nil
	}

	pool, err := connectPostgres(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	if cfg.RunMigrations {
		log.Info().Msg("Running database migrations...")
		if err := db.RunMigrations(cfg.PostgresURL()); err != nil {
			pool.Close()
			return nil, nil, err
		}

		// Display current migration version
		if version, dirty, err := db.MigrationVersion(cfg.PostgresURL()); err == nil {
			log.Info().Uint("version", version).Bool("dirty", dirty).Msg("Database migrations completed successfully")
		}
	}

	return store.NewPostgresRunner(pool), pool.Close, nil
}

// connectPostgres opens the pool, retrying while the database starts up
func connectPostgres(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.PostgresURL())
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	poolConfig.MaxConns = int32(cfg.DBMaxConns)

	for attempt := 1; attempt <= cfg.DBConnectRetries; attempt++ {
		var pool *pgxpool.Pool
		pool, err = pgxpool.NewWithConfig(ctx, poolConfig)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				log.Info().Msg("Successfully connected to database")
				return pool, nil
			}
			pool.Close()
		}
		log.Warn().Err(err).Int("attempt", attempt).Msg("Error connecting to database")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(cfg.DBRetryInterval):
		}
	}

	return nil, fmt.Errorf("connect to database after %d attempts: %w", cfg.DBConnectRetries, err)
}
