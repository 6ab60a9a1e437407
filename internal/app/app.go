// Package app wires configuration into a ready directory service.  Both
// the HTTP server and fyyurctl build their dependencies through it.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/fyyur/internal/config"
	"github.com/iliyamo/fyyur/internal/database"
	"github.com/iliyamo/fyyur/internal/middleware"
	"github.com/iliyamo/fyyur/internal/repository"
	"github.com/iliyamo/fyyur/internal/service"
)

// App holds the long lived resources of a process.
type App struct {
	Config config.Config
	Log    logrus.FieldLogger
	DB     *sqlx.DB
	Redis  *redis.Client // nil when Redis is disabled or unreachable
	Dir    *service.Directory
}

// New opens the database, migrates it when configured to, connects to
// Redis and builds the directory service.
func New(ctx context.Context, cfg config.Config, log logrus.FieldLogger) (*App, error) {
	db, err := database.Open(cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		return nil, err
	}
	if cfg.DB.AutoMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			return nil, errors.Join(err, db.Close())
		}
	}

	rdb := config.NewRedisClient(cfg.Redis)
	if cfg.Redis.Enabled && rdb == nil {
		log.WithField("addr", cfg.Redis.Addr).Warn("redis unreachable, caching and rate limiting disabled")
	}

	var pub service.Publisher = service.NopPublisher{}
	if cfg.Events.Enabled {
		pub = service.RabbitPublisher{URL: cfg.Events.URL}
	}

	dir := service.NewDirectory(repository.NewStore(db),
		service.WithPublisher(pub),
		service.WithInvalidator(middleware.NewCachePurger(cfg.Cache, rdb)),
		service.WithLogger(log),
	)
	log.WithFields(logrus.Fields{
		"driver": cfg.DB.Driver,
		"events": cfg.Events.Enabled,
		"redis":  rdb != nil,
	}).Info("directory ready")

	return &App{Config: cfg, Log: log, DB: db, Redis: rdb, Dir: dir}, nil
}

// Close releases the database and Redis connections.
func (a *App) Close() error {
	var errs []error
	if a.Redis != nil {
		errs = append(errs, a.Redis.Close())
	}
	if err := a.DB.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close database: %w", err))
	}
	return errors.Join(errs...)
}
