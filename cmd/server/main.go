package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/iliyamo/fyyur/internal/app"
	"github.com/iliyamo/fyyur/internal/config"
	"github.com/iliyamo/fyyur/internal/handler"
	"github.com/iliyamo/fyyur/internal/logging"
	"github.com/iliyamo/fyyur/internal/queue"
	"github.com/iliyamo/fyyur/internal/router"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := config.LoadEnvFile(""); err != nil {
		logrus.WithError(err).Fatal("load environment")
	}
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}
	log := logging.New(cfg.Log.Level, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
	log.Info("server stopped")
}

func run(ctx context.Context, cfg config.Config, log *logrus.Logger) error {
	a, err := app.New(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.WithError(err).Warn("closing resources")
		}
	}()

	e, err := router.New(router.Deps{
		Handler:      handler.NewDirectoryHandler(a.Dir, log),
		Log:          log,
		Redis:        a.Redis,
		Cache:        cfg.Cache,
		Limiter:      cfg.Limiter,
		EditorSecret: cfg.Editor.Secret,
	})
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		addr := ":" + cfg.Port
		log.WithFields(logrus.Fields{"addr": addr, "env": cfg.Env}).Info("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	if cfg.Events.ConsumerEnabled {
		g.Go(func() error {
			err := queue.StartActivityConsumer(ctx, cfg.Events.URL, cfg.Events.ActivityLogPath, log)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		})
	}
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(sctx)
	})
	return g.Wait()
}
