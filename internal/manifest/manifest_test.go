package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, dir, file, content string) {
	t.Helper()
	path := filepath.Join(dir, ManifestDir, file)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestDetectTarget(t *testing.T) {
	pluginDir := t.TempDir()
	writeManifest(t, pluginDir, PluginFile, `{"name": "a"}`)

	marketDir := t.TempDir()
	writeManifest(t, marketDir, MarketplaceFile, `{"name": "b"}`)

	bothDir := t.TempDir()
	writeManifest(t, bothDir, PluginFile, `{"name": "a"}`)
	writeManifest(t, bothDir, MarketplaceFile, `{"name": "b"}`)

	tt, err := DetectTarget(pluginDir)
	require.NoError(t, err)
	assert.Equal(t, TargetPlugin, tt)

	tt, err = DetectTarget(marketDir)
	require.NoError(t, err)
	assert.Equal(t, TargetMarketplace, tt)

	tt, err = DetectTarget(bothDir)
	require.NoError(t, err)
	assert.Equal(t, TargetMulti, tt)
}

func TestDetectTargetNoManifest(t *testing.T) {
	_, err := DetectTarget(t.TempDir())
	assert.ErrorIs(t, err, ErrNoManifest)
	assert.Contains(t, err.Error(), PluginFile, "error names the expected files")
}

func TestLoadPlugin(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, PluginFile, `{
		"name": "my-plugin",
		"version": "1.0.0",
		"author": {"name": "Jane", "email": "jane@example.com"},
		"keywords": ["a", "b"]
	}`)

	m, err := LoadPlugin(dir)
	require.NoError(t, err)
	assert.Equal(t, "my-plugin", m.Name)
	assert.Equal(t, "1.0.0", m.Version)
	require.NotNil(t, m.Author)
	assert.Equal(t, "jane@example.com", m.Author.Email)
	assert.Len(t, m.Keywords, 2)

	_, err = LoadPlugin(t.TempDir())
	assert.ErrorContains(t, err, "manifest not found")
}

func TestLoadMarketplaceAndFindPlugin(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, MarketplaceFile, `{
		"name": "my-marketplace",
		"owner": {"name": "Jane"},
		"plugins": [
			{"name": "one", "source": "./plugins/one"},
			{"name": "two", "source": "github:jane/two"}
		]
	}`)

	m, err := LoadMarketplace(dir)
	require.NoError(t, err)
	assert.Equal(t, "my-marketplace", m.Name)
	require.Len(t, m.Plugins, 2)

	assert.NotNil(t, m.FindPlugin("one"))
	assert.Nil(t, m.FindPlugin("three"))
}

func TestPluginSourcePath(t *testing.T) {
	m := &MarketplaceManifest{}
	local := &PluginEntry{Source: "./plugins/one"}
	remote := &PluginEntry{Source: "github:jane/two"}

	assert.Equal(t, filepath.Join("root", "plugins", "one"), m.PluginSourcePath("root", local))
	assert.Equal(t, "", m.PluginSourcePath("root", remote))

	rooted := &MarketplaceManifest{Metadata: &MarketplaceMetadata{PluginRoot: "pkgs"}}
	assert.Equal(t, filepath.Join("root", "pkgs", "plugins", "one"), rooted.PluginSourcePath("root", local))
}

func TestIsLocalSource(t *testing.T) {
	assert.True(t, IsLocalSource("./plugins/a"))
	assert.False(t, IsLocalSource("github:owner/repo"))
	assert.False(t, IsLocalSource("https://example.com/a.git"))
	assert.False(t, IsLocalSource(""))
}
