// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	Intervals IntervalsConfig `toml:"intervals"`
	LLM       LLMConfig       `toml:"llm"`
}

// IntervalsConfig holds intervals.icu credentials.
type IntervalsConfig struct {
	APIKey    string `toml:"api_key"`
	AthleteID string `toml:"athlete_id"` // e.g., "i12345"
	BaseURL   string `toml:"base_url"`
}

// LLMConfig holds LLM provider settings.
type LLMConfig struct {
	Provider string `toml:"provider"` // "openrouter" or "ollama"
	Model    string `toml:"model"`    // e.g., "google/gemini-2.5-flash"
	BaseURL  string `toml:"base_url"` // e.g., "http://localhost:11434" for ollama
	APIKey   string `toml:"api_key"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider: "openrouter",
			Model:    "google/gemini-2.5-flash",
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "fast", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	// Not validated here: commands like setup and version must work
	// before any credentials exist. Callers validate before querying.
	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	// Intervals overrides. INTERVALS_API and ATHLETE_ID are the legacy
	// names, kept so existing shells keep working.
	if v := os.Getenv("INTERVALS_API_KEY"); v != "" {
		cfg.Intervals.APIKey = v
	} else if v := os.Getenv("INTERVALS_API"); v != "" {
		cfg.Intervals.APIKey = v
	}
	if v := os.Getenv("INTERVALS_ATHLETE_ID"); v != "" {
		cfg.Intervals.AthleteID = v
	} else if v := os.Getenv("ATHLETE_ID"); v != "" {
		cfg.Intervals.AthleteID = v
	}
	if v := os.Getenv("INTERVALS_BASE_URL"); v != "" {
		cfg.Intervals.BaseURL = v
	}

	// LLM overrides
	if v := os.Getenv("FAST_LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("OPENROUTER_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("FAST_LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("OPENROUTER_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	} else if v := os.Getenv("OPENROUTER"); v != "" {
		cfg.LLM.APIKey = v
	}
}

// Validate checks if the configuration is valid. It names every missing
// credential at once so setup is a single round trip.
func (c *Config) Validate() error {
	var missing []string
	if c.Intervals.APIKey == "" {
		missing = append(missing, "intervals.api_key (or INTERVALS_API_KEY)")
	}
	if c.Intervals.AthleteID == "" {
		missing = append(missing, "intervals.athlete_id (or INTERVALS_ATHLETE_ID)")
	}
	if strings.EqualFold(c.LLM.Provider, "openrouter") || c.LLM.Provider == "" {
		if c.LLM.APIKey == "" {
			missing = append(missing, "llm.api_key (or OPENROUTER_API_KEY)")
		}
	}
	if c.LLM.Model == "" {
		missing = append(missing, "llm.model (or OPENROUTER_MODEL)")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing configuration: %s (run 'fast setup' for help)", strings.Join(missing, ", "))
	}
	return nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	// Holds credentials, keep it private to the owner.
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
