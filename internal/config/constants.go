package config

const (
	// DefaultConfigPath is where the server looks for its YAML config.
	DefaultConfigPath = "config.yaml"

	DefaultPort       = 3580
	DefaultDataset    = "production"
	DefaultAPIVersion = "2024-01-01"

	// PlaceholderProjectID marks an unconfigured content store.
	PlaceholderProjectID = "placeholder"
)
