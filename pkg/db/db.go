package db

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/thesrcielos/TypingSite/internal/config"
	"github.com/thesrcielos/TypingSite/internal/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connections holds the process-wide storage handles. They are opened once at
// startup, handed to repositories and closed on shutdown.
type Connections struct {
	DB  *gorm.DB
	Rdb *redis.Client
}

func Init(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Connections, error) {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	rdb, err := redisConnection(ctx, cfg.Redis)
	if err != nil {
		closeGorm(db)
		return nil, err
	}
	log.Info("storage connected", "postgres", cfg.Database.Host, "redis", cfg.Redis.Addr)

	return &Connections{DB: db, Rdb: rdb}, nil
}

func redisConnection(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	var tlsConfig *tls.Config
	if cfg.TLS {
		tlsConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:      cfg.Addr,
		Username:  cfg.Username,
		Password:  cfg.Password,
		DB:        cfg.DB,
		TLSConfig: tlsConfig,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}
	return rdb, nil
}

// Ping checks both stores; used by the health endpoint.
func (c *Connections) Ping(ctx context.Context) error {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	if err := c.Rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	return nil
}

func (c *Connections) Close() error {
	var errs []error
	if sqlDB, err := c.DB.DB(); err == nil {
		errs = append(errs, sqlDB.Close())
	}
	errs = append(errs, c.Rdb.Close())
	return errors.Join(errs...)
}

func closeGorm(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
