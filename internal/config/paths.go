package config

import (
	"os"
	"path/filepath"
)

var (
	homeDir string
)

func init() {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		homeDir = "~"
	}
}

// MarketlintDir returns the marketlint config directory path
// ~/.config/marketlint/
func MarketlintDir() string {
	return filepath.Join(homeDir, ".config", "marketlint")
}

// ConfigPath returns the config.json file path
// ~/.config/marketlint/config.json
func ConfigPath() string {
	return filepath.Join(MarketlintDir(), "config.json")
}

// ReportsDir returns the default directory for written report files
// ~/.config/marketlint/reports/
func ReportsDir() string {
	return filepath.Join(MarketlintDir(), "reports")
}

// EnsureDir creates a directory if it doesn't exist
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
