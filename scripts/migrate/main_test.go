package main

import (
	"testing"

	"github.com/persistorai/wikigraph/internal/db"
)

func TestSanitizeURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgres://user:secret@db:5432/wikigraph?sslmode=disable", "postgres://db:5432/wikigraph?sslmode=disable"},
		{"postgres://db/wikigraph", "postgres://db/wikigraph"},
		{"://bad", "(unparseable)"},
	}
	for _, tc := range tests {
		if got := sanitizeURL(tc.in); got != tc.want {
			t.Errorf("sanitizeURL(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPending(t *testing.T) {
	statuses := []db.Status{{Version: 1, Applied: true}, {Version: 2}, {Version: 3}}
	if got := pending(statuses); got != 2 {
		t.Errorf("pending = %d, want 2", got)
	}
	if got := pending(nil); got != 0 {
		t.Errorf("pending(nil) = %d, want 0", got)
	}
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		dryRun string
		want   bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"yes", false},
	}
	for _, tc := range tests {
		t.Setenv("DATABASE_URL", "postgres://db/wikigraph")
		t.Setenv("DRY_RUN", tc.dryRun)
		cfg := loadConfig()
		if cfg.DryRun != tc.want {
			t.Errorf("DRY_RUN=%q: got %v, want %v", tc.dryRun, cfg.DryRun, tc.want)
		}
		if cfg.DatabaseURL != "postgres://db/wikigraph" {
			t.Errorf("database url: got %q", cfg.DatabaseURL)
		}
	}
}
