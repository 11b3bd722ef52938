package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Success(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "production" {
		t.Fatalf("expected App.Env to be production, got %q", cfg.App.Env)
	}
	if cfg.Redis.URL != "redis://localhost:6379/0" {
		t.Fatalf("unexpected Redis URL: %q", cfg.Redis.URL)
	}
	if cfg.Snapshot.Backend != SnapshotBackendRedis {
		t.Fatalf("expected default snapshot backend redis, got %q", cfg.Snapshot.Backend)
	}
	if cfg.Snapshot.Key != "shopsuite_db_v2" {
		t.Fatalf("unexpected snapshot key %q", cfg.Snapshot.Key)
	}
	if got := cfg.Auth.SessionTTL(); got != 720*time.Minute {
		t.Fatalf("expected default session ttl 12h, got %v", got)
	}
	if cfg.Guards.GuardRepairTransitions || cfg.Guards.ClampNegativeStock || cfg.Guards.RejectReimport {
		t.Fatal("guards must default to the permissive legacy behavior")
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setMinimalEnv(t)
	if err := os.Unsetenv(EnvAppEnv); err != nil {
		t.Fatalf("failed to unset %s: %v", EnvAppEnv, err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected missing required env to return an error")
	}
}

func TestLoad_RequiresPINOrHash(t *testing.T) {
	setMinimalEnv(t)
	if err := os.Unsetenv(EnvAuthPIN); err != nil {
		t.Fatalf("failed to unset %s: %v", EnvAuthPIN, err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected missing PIN config to return an error")
	}
}

func TestLoad_DBBackendNeedsDSNOrSQLite(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvSnapBackend, SnapshotBackendDB)

	if _, err := Load(); err == nil {
		t.Fatal("expected db backend without DSN to fail")
	}

	t.Setenv(EnvUseSQLite, "true")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected sqlite flag to satisfy db backend, got %v", err)
	}
	if !cfg.Snapshot.UseSQLite {
		t.Fatal("expected UseSQLite to be true")
	}
}

func TestLoad_RejectsUnknownSnapshotBackend(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvSnapBackend, "carousel")

	if _, err := Load(); err == nil {
		t.Fatal("expected unknown snapshot backend to fail")
	}
}

func setMinimalEnv(t *testing.T) {
	t.Helper()

	t.Setenv(EnvAppEnv, "production")
	t.Setenv(EnvAppPort, "8081")
	t.Setenv(EnvAuthPIN, "123456")
	t.Setenv(EnvJWTSecret, "secret")
	t.Setenv(EnvRedisURL, "redis://localhost:6379/0")
}
