package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != DefaultPort {
		t.Errorf("port = %d, want %d", cfg.Port, DefaultPort)
	}
	if cfg.Sanity.Dataset != DefaultDataset || cfg.Sanity.APIVersion != DefaultAPIVersion {
		t.Errorf("sanity defaults wrong: %+v", cfg.Sanity)
	}
	if cfg.IsDev() {
		t.Error("default env must be production")
	}
}

func TestLoadYAMLAndNormalize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
port: 4000
env: development
site:
  base_url: "https://example.com/"
allowed_origins:
  - " example.com "
sanity:
  project_id: abc123
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != 4000 || !cfg.IsDev() {
		t.Errorf("port/env wrong: %d %s", cfg.Port, cfg.Env)
	}
	if cfg.Site.BaseURL != "https://example.com" {
		t.Errorf("base url not normalized: %q", cfg.Site.BaseURL)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "example.com" {
		t.Errorf("origins not trimmed: %v", cfg.AllowedOrigins)
	}
	if cfg.Sanity.ProjectID != "abc123" {
		t.Errorf("project id = %q", cfg.Sanity.ProjectID)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("port: 4000\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PORT", "5000")
	t.Setenv("SANITY_PROJECT_ID", "from-env")
	t.Setenv("ALLOWED_ORIGINS", "a.com, b.com")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != 5000 {
		t.Errorf("port = %d, want env override 5000", cfg.Port)
	}
	if cfg.Sanity.ProjectID != "from-env" {
		t.Errorf("project id = %q", cfg.Sanity.ProjectID)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "b.com" {
		t.Errorf("origins = %v", cfg.AllowedOrigins)
	}
}

func TestLoadMalformedYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("port: [not a number"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}
