package manifest

import (
	"errors"
	"fmt"
	"os"
)

// ErrNoManifest is returned when a directory carries no recognizable
// manifest file.
var ErrNoManifest = errors.New("no manifest found")

// DetectTarget inspects dir and reports which manifests it carries.
func DetectTarget(dir string) (TargetType, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", dir)
	}

	hasPlugin := fileExists(PluginManifestPath(dir))
	hasMarketplace := fileExists(MarketplaceManifestPath(dir))

	switch {
	case hasPlugin && hasMarketplace:
		return TargetMulti, nil
	case hasPlugin:
		return TargetPlugin, nil
	case hasMarketplace:
		return TargetMarketplace, nil
	default:
		return "", fmt.Errorf("%w: expected %s or %s under %s",
			ErrNoManifest, PluginManifestPath(dir), MarketplaceManifestPath(dir), dir)
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
