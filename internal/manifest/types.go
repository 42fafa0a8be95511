package manifest

// TargetType identifies what kind of manifest a directory carries.
type TargetType string

const (
	TargetPlugin      TargetType = "plugin"
	TargetMarketplace TargetType = "marketplace"
	// TargetMulti means the directory carries both manifests.
	TargetMulti TargetType = "multi"
)

// PluginManifest represents the .claude-plugin/plugin.json structure
type PluginManifest struct {
	Name        string   `json:"name"`
	Version     string   `json:"version,omitempty"`
	Description string   `json:"description,omitempty"`
	Author      *Author  `json:"author,omitempty"`
	Homepage    string   `json:"homepage,omitempty"`
	Repository  string   `json:"repository,omitempty"`
	License     string   `json:"license,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	Category    string   `json:"category,omitempty"`
}

// Author represents the plugin author information
type Author struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	URL   string `json:"url,omitempty"`
}

// MarketplaceManifest represents the .claude-plugin/marketplace.json structure
type MarketplaceManifest struct {
	Name     string               `json:"name"`
	Owner    Owner                `json:"owner"`
	Version  string               `json:"version,omitempty"`
	Metadata *MarketplaceMetadata `json:"metadata,omitempty"`
	Plugins  []PluginEntry        `json:"plugins"`
}

// Owner represents the marketplace owner information
type Owner struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// MarketplaceMetadata contains optional metadata for the marketplace
type MarketplaceMetadata struct {
	Description string `json:"description,omitempty"`
	Homepage    string `json:"homepage,omitempty"`
	Repository  string `json:"repository,omitempty"`
	PluginRoot  string `json:"pluginRoot,omitempty"`
}

// PluginEntry represents a plugin entry in a marketplace's plugins array
type PluginEntry struct {
	Name        string   `json:"name"`
	Source      string   `json:"source"`
	Description string   `json:"description,omitempty"`
	Version     string   `json:"version,omitempty"`
	Author      *Author  `json:"author,omitempty"`
	Homepage    string   `json:"homepage,omitempty"`
	Repository  string   `json:"repository,omitempty"`
	License     string   `json:"license,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	Category    string   `json:"category,omitempty"`
}

// FindPlugin finds a plugin entry by name in the manifest
func (m *MarketplaceManifest) FindPlugin(name string) *PluginEntry {
	for i := range m.Plugins {
		if m.Plugins[i].Name == name {
			return &m.Plugins[i]
		}
	}
	return nil
}
