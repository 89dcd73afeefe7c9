// Package main provides a standalone schema tool for the wikigraph
// explorations database. It reports migration status and, unless DRY_RUN is
// set, applies pending migrations without starting the server.
//
// Usage:
//
//	DATABASE_URL=postgres://... go run ./scripts/migrate
//	DRY_RUN=1 DATABASE_URL=postgres://... go run ./scripts/migrate
package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/persistorai/wikigraph/internal/db"
	"github.com/persistorai/wikigraph/internal/db/migrations"
	"github.com/persistorai/wikigraph/internal/dbpool"
)

// config holds environment-driven migration settings.
type config struct {
	DatabaseURL string
	DryRun      bool
}

// report holds the final migration summary.
type report struct {
	Target   string
	Before   []db.Status
	After    []db.Status
	Duration time.Duration
	DryRun   bool
	Err      error
}

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := loadConfig()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	log.WithFields(logrus.Fields{
		"target":  sanitizeURL(cfg.DatabaseURL),
		"dry_run": cfg.DryRun,
	}).Info("starting migration")

	start := time.Now()
	r, err := runMigration(context.Background(), cfg, log)
	r.Duration = time.Since(start)
	if err != nil {
		r.Err = err
		log.WithError(err).Error("migration failed")
	}
	printReport(&r)
	if err != nil {
		os.Exit(1)
	}
}

// loadConfig reads configuration from environment variables.
func loadConfig() config {
	return config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DryRun:      os.Getenv("DRY_RUN") == "true" || os.Getenv("DRY_RUN") == "1",
	}
}

// runMigration reads the current status, applies pending migrations unless
// this is a dry run, then reads the status again.
func runMigration(ctx context.Context, cfg config, log *logrus.Logger) (report, error) {
	r := report{Target: sanitizeURL(cfg.DatabaseURL), DryRun: cfg.DryRun}

	pool, err := dbpool.NewPool(ctx, cfg.DatabaseURL, 2)
	if err != nil {
		return r, err
	}
	defer pool.Close()

	r.Before, err = db.MigrationStatus(ctx, pool, migrations.FS)
	if err != nil {
		return r, err
	}

	if cfg.DryRun {
		log.Info("dry run, skipping apply")
		r.After = r.Before
		return r, nil
	}

	if err := db.RunMigrations(ctx, pool, log, migrations.FS); err != nil {
		return r, err
	}

	r.After, err = db.MigrationStatus(ctx, pool, migrations.FS)
	return r, err
}

func pending(statuses []db.Status) int {
	n := 0
	for _, s := range statuses {
		if !s.Applied {
			n++
		}
	}
	return n
}

// sanitizeURL strips credentials from a database URL for display.
func sanitizeURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "(unparseable)"
	}
	u.User = nil
	return u.String()
}

func printReport(r *report) {
	fmt.Println()
	fmt.Println("=== wikigraph schema migration ===")
	fmt.Printf("Target:   %s\n", r.Target)
	fmt.Printf("Dry run:  %v\n", r.DryRun)
	fmt.Printf("Duration: %s\n", r.Duration.Round(time.Millisecond))
	fmt.Printf("Pending before: %d\n", pending(r.Before))
	fmt.Printf("Pending after:  %d\n", pending(r.After))
	fmt.Println()
	for _, s := range r.After {
		state := "pending"
		if s.Applied {
			state = "applied " + s.AppliedAt.Format(time.RFC3339)
		}
		fmt.Printf("  %03d  %-32s %s\n", s.Version, s.File, state)
	}
	if r.Err != nil {
		fmt.Printf("\nERROR: %v\n", r.Err)
	}
}
