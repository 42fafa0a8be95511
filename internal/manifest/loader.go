package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ManifestDir is the directory containing the manifest files
	ManifestDir = ".claude-plugin"
	// PluginFile is the plugin manifest filename
	PluginFile = "plugin.json"
	// MarketplaceFile is the marketplace manifest filename
	MarketplaceFile = "marketplace.json"
)

// PluginManifestPath returns the plugin.json path under dir.
func PluginManifestPath(dir string) string {
	return filepath.Join(dir, ManifestDir, PluginFile)
}

// MarketplaceManifestPath returns the marketplace.json path under dir.
func MarketplaceManifestPath(dir string) string {
	return filepath.Join(dir, ManifestDir, MarketplaceFile)
}

// LoadPlugin loads a plugin manifest from the given directory
func LoadPlugin(pluginPath string) (*PluginManifest, error) {
	manifestPath := PluginManifestPath(pluginPath)

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("manifest not found: %s", manifestPath)
		}
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var manifest PluginManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	return &manifest, nil
}

// LoadMarketplace loads a marketplace manifest from the given directory
func LoadMarketplace(marketplacePath string) (*MarketplaceManifest, error) {
	manifestPath := MarketplaceManifestPath(marketplacePath)

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("manifest not found: %s", manifestPath)
		}
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var manifest MarketplaceManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	return &manifest, nil
}

// PluginSourcePath resolves a plugin entry's local source directory relative
// to the marketplace root. Returns "" for remote (github:/URL) sources.
func (m *MarketplaceManifest) PluginSourcePath(marketplacePath string, entry *PluginEntry) string {
	if !IsLocalSource(entry.Source) {
		return ""
	}

	basePath := marketplacePath
	if m.Metadata != nil && m.Metadata.PluginRoot != "" {
		basePath = filepath.Join(marketplacePath, m.Metadata.PluginRoot)
	}

	return filepath.Join(basePath, entry.Source)
}

// IsLocalSource reports whether a plugin entry source is a relative path
// within the marketplace repository.
func IsLocalSource(source string) bool {
	return len(source) >= 2 && source[:2] == "./"
}
