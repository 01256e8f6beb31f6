package config

import (
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Env != "development" {
		t.Errorf("expected default ENV development, got %q", cfg.Env)
	}
	if cfg.DataDir != "data" {
		t.Errorf("expected default DATA_DIR data, got %q", cfg.DataDir)
	}
	if !cfg.LegacyPrescriptionIDs {
		t.Error("expected LEGACY_PRESCRIPTION_IDS to default to true")
	}
	if !cfg.IsDev() {
		t.Error("expected IsDev true for default config")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("DATA_DIR", "/var/lib/dentcare")
	t.Setenv("LEGACY_PRESCRIPTION_IDS", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Env != "production" {
		t.Errorf("expected ENV production, got %q", cfg.Env)
	}
	if cfg.DataDir != "/var/lib/dentcare" {
		t.Errorf("expected DATA_DIR override, got %q", cfg.DataDir)
	}
	if cfg.LegacyPrescriptionIDs {
		t.Error("expected LEGACY_PRESCRIPTION_IDS false")
	}
	if cfg.IsDev() {
		t.Error("expected IsDev false in production")
	}
}

func TestCollectionPath(t *testing.T) {
	cfg := &Config{DataDir: "data"}
	want := filepath.Join("data", "users.json")
	if got := cfg.CollectionPath("users"); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
