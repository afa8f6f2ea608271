package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "dev" {
		t.Fatalf("expected App.Env to default to dev, got %q", cfg.App.Env)
	}
	if !cfg.App.IsDev() {
		t.Fatal("expected IsDev() for default environment")
	}
	if cfg.DB.Path != "orders.db" {
		t.Fatalf("unexpected default DB path %q", cfg.DB.Path)
	}
	if cfg.Ingest.BatchSize != 500 {
		t.Fatalf("unexpected default batch size %d", cfg.Ingest.BatchSize)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvAppEnv, "production")
	t.Setenv(EnvDBPath, "/var/data/orders.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if !cfg.App.IsProd() {
		t.Fatal("expected IsProd() after override")
	}
	if cfg.DB.Path != "/var/data/orders.db" {
		t.Fatalf("unexpected DB path %q", cfg.DB.Path)
	}
}

func TestDBConfig_DSNCarriesPragmas(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	dsn := cfg.DB.DSN()
	if !strings.HasPrefix(dsn, "orders.db?") {
		t.Fatalf("expected DSN to start with the db path, got %q", dsn)
	}
	for _, param := range []string{"_busy_timeout=5000", "_journal_mode=WAL", "_synchronous=NORMAL"} {
		if !strings.Contains(dsn, param) {
			t.Fatalf("expected DSN to contain %q, got %q", param, dsn)
		}
	}
}
