package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads the YAML config at path (missing file is fine, defaults apply),
// then applies environment variable overrides. A .env file in the working
// directory is loaded first when present.
func Load(path string) (*AppConfig, error) {
	_ = godotenv.Load()

	cfg := &AppConfig{
		Port: DefaultPort,
		Env:  "production",
		Sanity: SanityConfig{
			Dataset:    DefaultDataset,
			APIVersion: DefaultAPIVersion,
			UseCDN:     true,
		},
	}

	raw, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnv(cfg)
	normalize(cfg)
	return cfg, nil
}

func applyEnv(cfg *AppConfig) {
	if v := os.Getenv("PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Port = n
		}
	}
	setIfEnv(&cfg.Env, "APP_ENV", "NODE_ENV")
	setIfEnv(&cfg.DSN, "DATABASE_DSN", "DSN")
	setIfEnv(&cfg.RedisURL, "REDIS_URL")
	setIfEnv(&cfg.Site.BaseURL, "SITE_BASE_URL")
	setIfEnv(&cfg.Site.Title, "SITE_TITLE")
	setIfEnv(&cfg.Sanity.ProjectID, "SANITY_PROJECT_ID")
	setIfEnv(&cfg.Sanity.Dataset, "SANITY_DATASET")
	setIfEnv(&cfg.Sanity.APIVersion, "SANITY_API_VERSION")
	setIfEnv(&cfg.Sanity.Token, "SANITY_API_TOKEN")
	setIfEnv(&cfg.Turnstile.Secret, "TURNSTILE_SECRET_KEY")
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = splitList(v)
	}
}

func normalize(cfg *AppConfig) {
	if cfg.Port <= 0 {
		cfg.Port = DefaultPort
	}
	if cfg.Sanity.Dataset == "" {
		cfg.Sanity.Dataset = DefaultDataset
	}
	if cfg.Sanity.APIVersion == "" {
		cfg.Sanity.APIVersion = DefaultAPIVersion
	}
	cfg.Site.BaseURL = strings.TrimSuffix(strings.TrimSpace(cfg.Site.BaseURL), "/")
	for i, origin := range cfg.AllowedOrigins {
		cfg.AllowedOrigins[i] = strings.TrimSpace(origin)
	}
}

func setIfEnv(dst *string, keys ...string) {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			*dst = v
			return
		}
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
