package config

// AppConfig holds runtime startup configuration loaded from YAML plus
// environment overrides.
type AppConfig struct {
	Port           int             `yaml:"port"`
	Env            string          `yaml:"env"` // "development" | "production"
	DSN            string          `yaml:"dsn"` // MySQL DSN for the comment store
	RedisURL       string          `yaml:"redis_url"`
	AllowedOrigins []string        `yaml:"allowed_origins"`
	Site           SiteConfig      `yaml:"site"`
	Sanity         SanityConfig    `yaml:"sanity"`
	Turnstile      TurnstileConfig `yaml:"turnstile"`
}

// SiteConfig describes the public site this backend serves.
type SiteConfig struct {
	BaseURL string `yaml:"base_url"`
	Title   string `yaml:"title"`
}

// SanityConfig configures the content store client. An empty (or placeholder)
// ProjectID means the store is not set up yet; every content query then
// degrades to an empty result without a network call.
type SanityConfig struct {
	ProjectID  string `yaml:"project_id"`
	Dataset    string `yaml:"dataset"`
	APIVersion string `yaml:"api_version"`
	UseCDN     bool   `yaml:"use_cdn"`
	// Token enables the draft-inclusive preview perspective. Server-held
	// only; it must never reach a browser.
	Token string `yaml:"token"`
	// Endpoint overrides the derived API base URL. Used by tests.
	Endpoint string `yaml:"endpoint"`
}

// TurnstileConfig configures the comment challenge gate. An empty secret
// disables verification entirely.
type TurnstileConfig struct {
	Secret string `yaml:"secret"`
}

func (c *AppConfig) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}
