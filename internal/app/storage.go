package app

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adanyl0v/go-tasks/internal/config"
	"github.com/adanyl0v/go-tasks/internal/storage"
)

var globalSlot storage.Slot

func MustOpenStorage() {
	cfg := config.Global().Storage

	var (
		slot storage.Slot
		err  error
	)
	switch cfg.Driver {
	case storage.DriverFile:
		slot, err = storage.NewFileSlot(cfg.FilePath)
	case storage.DriverBolt:
		slot, err = storage.NewBoltSlot(cfg.BoltPath)
	case storage.DriverPostgres:
		slot, err = openPostgresSlot(cfg.Postgres)
	case storage.DriverNATS:
		slot, err = openNATSSlot(cfg.NATS)
	case storage.DriverMemory:
		slot = storage.NewMemorySlot()
	default:
		globalLogger.Error().
			Str("driver", cfg.Driver).
			Msg("unknown storage driver")
		panic(fmt.Errorf("unknown storage driver: %s", cfg.Driver))
	}
	if err != nil {
		globalLogger.Error().
			Err(err).
			Str("driver", cfg.Driver).
			Msg("failed to open storage")
		panic(err)
	}

	globalSlot = slot
	globalLogger.Info().
		Str("driver", cfg.Driver).
		Msg("opened storage")
}

func openPostgresSlot(cfg config.PostgresConfig) (storage.Slot, error) {
	connURL := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.Username, cfg.Password, cfg.Host,
		cfg.Port, cfg.Database, cfg.SSLMode)

	poolCfg, err := pgxpool.ParseConfig(connURL)
	if err != nil {
		return nil, fmt.Errorf("parse postgres config: %w", err)
	}
	poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	pingCtx, cancelPing := context.WithTimeout(context.Background(), cfg.PingTimeout)
	defer cancelPing()
	if err = pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	globalLogger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Msg("connected to postgres")

	createCtx, cancelCreate := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancelCreate()
	slot, err := storage.NewPostgresSlot(createCtx, pool)
	if err != nil {
		pool.Close()
		return nil, err
	}
	return slot, nil
}

func openNATSSlot(cfg config.NATSConfig) (storage.Slot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	slot, err := storage.NewNATSSlot(ctx, cfg.URL, cfg.Bucket)
	if err != nil {
		return nil, err
	}
	globalLogger.Info().
		Str("url", cfg.URL).
		Str("bucket", cfg.Bucket).
		Msg("connected to nats")
	return slot, nil
}

func CloseStorage() {
	err := globalSlot.Close()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to close storage")
		return
	}
	globalLogger.Info().Msg("closed storage")
}
