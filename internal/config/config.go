package config

import (
	"encoding/json"
	"os"
	"sync"
)

// Defaults contains the validation defaults applied when flags are not
// given on the command line.
type Defaults struct {
	Strict            bool   `json:"strict"`            // Treat recommended fields as blocking (default: false)
	Format            string `json:"format"`            // "text", "json", "markdown", "compact" (default: text)
	CheckGitignore    bool   `json:"checkGitignore"`    // Soften findings for gitignored files (default: true)
	CheckCodePatterns bool   `json:"checkCodePatterns"` // Flag curl|sh style patterns (default: true)
	Backend           string `json:"backend"`           // "auto", "jq", "native" (default: auto)
}

// Config represents the main configuration file structure
type Config struct {
	Locale   string   `json:"locale"` // "auto" or ISO format (e.g., "ko-KR", "en-US")
	Defaults Defaults `json:"defaults"`
}

var (
	cfg     *Config
	cfgOnce sync.Once
	cfgMu   sync.RWMutex
)

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Locale: "auto", // default: auto-detect system locale
		Defaults: Defaults{
			Strict:            false,
			Format:            "text",
			CheckGitignore:    true,
			CheckCodePatterns: true,
			Backend:           "auto",
		},
	}
}

// Load loads the configuration from file
func Load() (*Config, error) {
	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return NewConfig(), nil
		}
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Set defaults for fields missing from older config files
	if config.Locale == "" {
		config.Locale = "auto"
	}
	if config.Defaults.Format == "" {
		config.Defaults.Format = "text"
	}
	if config.Defaults.Backend == "" {
		config.Defaults.Backend = "auto"
	}

	return &config, nil
}

// Save saves the configuration to file
func Save(config *Config) error {
	cfgMu.Lock()
	defer cfgMu.Unlock()

	if err := EnsureDir(MarketlintDir()); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(ConfigPath(), data, 0644)
}

// Get returns the current configuration (singleton)
func Get() *Config {
	cfgOnce.Do(func() {
		var err error
		cfg, err = Load()
		if err != nil {
			cfg = NewConfig()
		}
	})
	return cfg
}

// Reload reloads the configuration from file
func Reload() error {
	cfgMu.Lock()
	defer cfgMu.Unlock()

	newCfg, err := Load()
	if err != nil {
		return err
	}
	cfg = newCfg
	return nil
}

// GetLocale returns the configured locale
func GetLocale() string {
	return Get().Locale
}

// SetLocale sets the locale and saves
func SetLocale(locale string) error {
	config := Get()
	config.Locale = locale
	return Save(config)
}

// SetStrict sets the strict default and saves
func SetStrict(strict bool) error {
	config := Get()
	config.Defaults.Strict = strict
	return Save(config)
}

// SetFormat sets the default output format and saves
func SetFormat(format string) error {
	config := Get()
	config.Defaults.Format = format
	return Save(config)
}
