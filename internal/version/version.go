// Package version holds build-time version information.
package version

// These variables are set at build time via -ldflags.
var (
	// Version is the semantic version of the build.
	Version = "dev"
	// GitCommit is the git commit hash the binary was built from.
	GitCommit = "unknown"
	// BuildDate is the UTC date of the build.
	BuildDate = "unknown"
)
