package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"tindev/internal/config"
	"tindev/internal/database"
	"tindev/internal/database/migration"
	dbpostgres "tindev/internal/database/postgres"
	"tindev/internal/infrastructure/cache"
	"tindev/internal/infrastructure/media"
)

// Container owns the process-wide collaborators: database pool, cache,
// media client and the shared logger.
type Container struct {
	Config config.Config
	Logger *log.Logger
	DB     database.DB
	Cache  *cache.Redis
	Media  media.Client
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags|log.Lmicroseconds)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	runner := migration.Runner{Dir: cfg.Database.MigrationsDir}
	if err := runner.Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  cache.NewRedis(logger),
		Media:  media.NewClient(cfg.Media, logger),
	}, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
