package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/career-toolkit/internal/config"
	"github.com/sbilibin2017/career-toolkit/internal/events"
	"github.com/sbilibin2017/career-toolkit/internal/hasher"
	"github.com/sbilibin2017/career-toolkit/internal/jwt"
	"github.com/sbilibin2017/career-toolkit/internal/logger"
	"github.com/sbilibin2017/career-toolkit/internal/metrics"
	"github.com/sbilibin2017/career-toolkit/internal/migrations"
	"github.com/sbilibin2017/career-toolkit/internal/repositories"
	"github.com/sbilibin2017/career-toolkit/internal/server"
	"github.com/sbilibin2017/career-toolkit/internal/services"
)

// directory bundles the account directory backend selected by STORAGE_DRIVER.
type directory struct {
	accounts interface {
		services.AccountReader
		services.LegacyAccountReader
	}
	writer interface {
		services.AccountWriter
		services.UsernameWriter
	}
	profiles interface {
		services.ProfileCreator
		services.ProfileStore
	}
	tx      services.Transactor
	closers []func() error
}

// Close releases every resource held by the directory.
func (d *directory) Close() error {
	var errs []error
	for i := len(d.closers) - 1; i >= 0; i-- {
		errs = append(errs, d.closers[i]())
	}
	return errors.Join(errs...)
}

// openPostgres connects to PostgreSQL and applies pending migrations.
func openPostgres(ctx context.Context, cfg config.PostgresConfig) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)

	if err := migrations.Up(ctx, db.DB); err != nil {
		db.Close()
		return nil, err
	}

	logger.Log.Infow("Connected to database", "host", cfg.Host, "db", cfg.DB)
	return db, nil
}

func openDirectory(ctx context.Context, cfg config.Config) (*directory, error) {
	switch cfg.App.StorageDriver {
	case config.StorageMemory:
		logger.Log.Warn("Using in-memory storage, data is lost on restart")
		store := repositories.NewMemoryStore()
		return &directory{accounts: store, writer: store, profiles: store, tx: store}, nil

	case config.StoragePostgres:
		db, err := openPostgres(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		return &directory{
			accounts: repositories.NewAccountReadRepository(db, repositories.GetTxFromContext),
			writer:   repositories.NewAccountWriteRepository(db, repositories.GetTxFromContext),
			profiles: repositories.NewProfileRepository(db, repositories.GetTxFromContext),
			tx:       repositories.NewTxManager(db),
			closers:  []func() error{db.Close},
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.App.StorageDriver)
	}
}

// app is a fully wired HTTP service.
type app struct {
	handler http.Handler
	dir     *directory
}

// Close releases the storage, cache and broker connections.
func (a *app) Close() error {
	return a.dir.Close()
}

// newApp wires storage, cache, events, services and the router from cfg.
func newApp(ctx context.Context, cfg config.Config) (*app, error) {
	dir, err := openDirectory(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var cache services.ProfileCache
	if cfg.Redis.Enabled() {
		client := redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Addr(),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Log.Warnw("Redis unreachable, profile cache will retry per request", "addr", cfg.Redis.Addr(), "error", err)
		}
		dir.closers = append(dir.closers, client.Close)
		cache = repositories.NewProfileCacheRepository(client, cfg.Redis.ProfileTTL)
	}

	var writer events.Writer
	if cfg.Kafka.Enabled() {
		writer = events.NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		logger.Log.Infow("Publishing account events", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	}
	publisher := events.NewPublisher(writer)
	dir.closers = append(dir.closers, publisher.Close)

	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWT.SecretKey),
		jwt.WithExpiration(cfg.JWT.Expiration),
	)

	authService := services.NewAuthService(
		dir.accounts,
		dir.writer,
		dir.profiles,
		dir.tx,
		hasher.New(cfg.Bcrypt.Cost),
		tokens,
		publisher,
	)
	profileService := services.NewProfileService(dir.profiles, cache, publisher)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.RegisterMetrics(reg)

	handler := server.NewRouter(server.Options{
		AppName:        cfg.App.Name,
		AllowedOrigins: cfg.App.CORSAllowedOrigins,
		Gatherer:       reg,
	}, tokens, authService, profileService)

	return &app{handler: handler, dir: dir}, nil
}
