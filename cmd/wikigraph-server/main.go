// Command wikigraph-server serves the wikigraph HTTP API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/persistorai/wikigraph/internal/api"
	"github.com/persistorai/wikigraph/internal/config"
	"github.com/persistorai/wikigraph/internal/db"
	"github.com/persistorai/wikigraph/internal/db/migrations"
	"github.com/persistorai/wikigraph/internal/dbpool"
	"github.com/persistorai/wikigraph/internal/graph"
	"github.com/persistorai/wikigraph/internal/service"
	"github.com/persistorai/wikigraph/internal/store"
	"github.com/persistorai/wikigraph/internal/wikipedia"
)

var _ graph.ContentProvider = (*wikipedia.Client)(nil)

const shutdownTimeout = 15 * time.Second

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("loading config")
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithError(err).Fatal("parsing log level")
	}
	log.SetLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.WithError(err).Fatal("server exited")
	}
	log.Info("shutdown complete")
}

func run(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	provider, err := wikipedia.New(wikipedia.Config{
		RESTURL:     cfg.WikipediaRESTURL,
		APIURL:      cfg.WikipediaAPIURL,
		PageURL:     cfg.WikipediaPageURL,
		UserAgent:   cfg.UserAgent,
		Timeout:     cfg.FetchTimeout,
		Concurrency: cfg.FetchConcurrency,
		RatePerSec:  cfg.FetchRate,
		CacheSize:   cfg.ArticleCacheSize,
		MaxRetries:  uint64(cfg.FetchMaxRetries), //nolint:gosec // bounded 0..5 by config.
	}, log)
	if err != nil {
		return err
	}

	engine := graph.NewEngine(provider, graph.NewMemoryCache(), log, graph.WithPathFetchLimit(cfg.PathFetchLimit))

	deps := &api.RouterDeps{
		Log:         log,
		Provider:    provider,
		Graph:       service.NewGraphService(engine, provider, cfg.WikipediaPageURL, log),
		Search:      service.NewSearchService(provider, log),
		CORSOrigins: cfg.CORSOrigins,
		Version:     config.Version,
	}

	if cfg.PersistenceEnabled() {
		pool, err := dbpool.NewPool(ctx, cfg.DatabaseURL.Value(), int32(cfg.DBMaxConns)) //nolint:gosec // bounded 2..200 by config.
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := db.RunMigrations(ctx, pool, log, migrations.FS); err != nil {
			return err
		}

		st := store.NewExplorationStore(store.Base{Pool: pool, Log: log})
		deps.Pool = pool
		deps.Explorations = service.NewExplorationService(st, log)
		log.Info("saved explorations enabled")
	} else {
		log.Warn("DATABASE_URL not set; saved explorations disabled")
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           api.NewRouter(ctx, deps),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      3 * time.Minute,
		IdleTimeout:       2 * time.Minute,
	}

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsSrv := &http.Server{
		Addr:              cfg.MetricsAddr(),
		Handler:           metricsMux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.WithField("addr", srv.Addr).WithField("version", config.Version).Info("api server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		log.WithField("addr", metricsSrv.Addr).Info("metrics server listening")
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return errors.Join(srv.Shutdown(shutdownCtx), metricsSrv.Shutdown(shutdownCtx))
	})

	return g.Wait()
}
