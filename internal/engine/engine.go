// Package engine orchestrates one validation run: backend resolution,
// target detection, the parallel schema/security/docs scans, and the final
// aggregation. The engine holds no state between runs; concurrent runs
// against different targets are fully independent.
package engine

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/marketlint/marketlint/internal/backend"
	"github.com/marketlint/marketlint/internal/docs"
	"github.com/marketlint/marketlint/internal/finding"
	"github.com/marketlint/marketlint/internal/manifest"
	"github.com/marketlint/marketlint/internal/report"
	"github.com/marketlint/marketlint/internal/schema"
	"github.com/marketlint/marketlint/internal/security"
)

// ErrTargetNotFound means the target path does not exist or carries no
// recognizable manifest. Fatal; the run aborts with guidance on expected
// file locations.
var ErrTargetNotFound = errors.New("target not found")

// ErrPrerequisiteMissing mirrors the backend resolver's fatal error so
// callers only need this package's taxonomy.
var ErrPrerequisiteMissing = backend.ErrPrerequisiteMissing

// Options controls a validation run.
type Options struct {
	// TargetType overrides auto-detection.
	TargetType manifest.TargetType
	// Backend selects the JSON backend preference.
	Backend backend.Preference
	// Strict makes missing recommended fields blocking.
	Strict bool
	// SeverityThreshold drops findings ranked below it. Empty keeps all.
	SeverityThreshold finding.Severity
	// Recurse validates the plugin manifests of a marketplace's local
	// (./path) entries. One unparsable entry manifest does not stop the
	// others.
	Recurse bool
	// SkipDocs disables the README/LICENSE checks.
	SkipDocs bool
	// Security carries the security-scan options.
	Security security.Options
}

// DefaultOptions returns the engine defaults used by the CLI.
func DefaultOptions() Options {
	return Options{
		Backend:  backend.PreferAuto,
		Recurse:  true,
		Security: security.DefaultOptions(),
	}
}

// Run validates the target directory and returns its report.
func Run(ctx context.Context, targetPath string, opts Options) (*report.ValidationReport, error) {
	if _, err := os.Stat(targetPath); err != nil {
		return nil, fmt.Errorf("%w: %s (expected a directory containing %s or %s)",
			ErrTargetNotFound, targetPath,
			manifest.PluginManifestPath("."), manifest.MarketplaceManifestPath("."))
	}

	b, err := backend.Resolve(opts.Backend)
	if err != nil {
		return nil, err
	}

	targetType := opts.TargetType
	if targetType == "" {
		targetType, err = manifest.DetectTarget(targetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTargetNotFound, err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"target":  targetPath,
		"type":    targetType,
		"backend": b.Name(),
	}).Debug("starting validation run")

	var schemaFindings, securityFindings, docsFindings []finding.Finding

	// The three scans have no data dependency on each other; each owns
	// only its own read access to the file tree.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		schemaFindings, err = runSchema(gctx, b, targetPath, targetType, opts)
		return err
	})

	g.Go(func() error {
		var err error
		securityFindings, err = security.Scan(gctx, targetPath, opts.Security)
		return err
	})

	if !opts.SkipDocs {
		g.Go(func() error {
			var err error
			docsFindings, err = docs.Check(gctx, targetPath, manifestLicense(targetPath, targetType))
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	schemaFindings = applyThreshold(schemaFindings, opts.SeverityThreshold)
	securityFindings = applyThreshold(securityFindings, opts.SeverityThreshold)
	docsFindings = applyThreshold(docsFindings, opts.SeverityThreshold)

	r := report.Aggregate(targetPath, targetType, b.Name(), schemaFindings, securityFindings, docsFindings)

	logrus.WithFields(logrus.Fields{
		"findings": len(r.Findings),
		"score":    r.Score.Value,
		"security": r.SecurityScore.Value,
	}).Debug("validation run complete")

	return r, nil
}

// runSchema validates the manifests the target carries. Multi-target
// directories validate both; marketplace targets optionally recurse into
// their local plugin entries.
func runSchema(ctx context.Context, b backend.Backend, targetPath string, targetType manifest.TargetType, opts Options) ([]finding.Finding, error) {
	schemaOpts := schema.Options{Strict: opts.Strict}
	var findings []finding.Finding

	if targetType == manifest.TargetPlugin || targetType == manifest.TargetMulti {
		fs, err := schema.Validate(ctx, b, manifest.PluginManifestPath(targetPath), manifest.TargetPlugin, schemaOpts)
		if err != nil {
			return nil, err
		}
		findings = append(findings, fs...)
	}

	if targetType == manifest.TargetMarketplace || targetType == manifest.TargetMulti {
		fs, err := schema.Validate(ctx, b, manifest.MarketplaceManifestPath(targetPath), manifest.TargetMarketplace, schemaOpts)
		if err != nil {
			return nil, err
		}
		findings = append(findings, fs...)

		if opts.Recurse {
			fs, err := recurseEntries(ctx, b, targetPath, schemaOpts)
			if err != nil {
				return nil, err
			}
			findings = append(findings, fs...)
		}
	}

	return findings, nil
}

// recurseEntries validates the plugin manifest of every local marketplace
// entry whose source directory exists. A syntax failure in one entry
// degrades to a finding and the scan continues with the next.
func recurseEntries(ctx context.Context, b backend.Backend, targetPath string, schemaOpts schema.Options) ([]finding.Finding, error) {
	m, err := manifest.LoadMarketplace(targetPath)
	if err != nil {
		// The marketplace manifest itself was unparsable or unreadable;
		// the top-level validation already reported it.
		return nil, nil
	}

	var findings []finding.Finding
	for i := range m.Plugins {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		entryDir := m.PluginSourcePath(targetPath, &m.Plugins[i])
		if entryDir == "" {
			continue // remote source, nothing local to validate
		}
		entryManifest := manifest.PluginManifestPath(entryDir)
		if _, err := os.Stat(entryManifest); err != nil {
			continue // entry ships no plugin.json of its own
		}

		fs, err := schema.Validate(ctx, b, entryManifest, manifest.TargetPlugin, schemaOpts)
		if err != nil {
			return nil, err
		}
		findings = append(findings, fs...)

		// The nested manifest's own name must be listed somewhere in the
		// marketplace, or consumers resolve the entry to a plugin that
		// identifies itself differently.
		if nested, err := manifest.LoadPlugin(entryDir); err == nil && nested.Name != "" {
			if m.FindPlugin(nested.Name) == nil {
				findings = append(findings, finding.Finding{
					Severity:     finding.SeverityImportant,
					Category:     finding.CategoryConventionViolation,
					Message:      fmt.Sprintf("plugins.%d.name %q does not match the plugin manifest name %q", i, m.Plugins[i].Name, nested.Name),
					Location:     entryManifest,
					SuggestedFix: "Keep the marketplace entry name and the plugin's own name in sync",
					ScoreImpact:  -10,
				})
			}
		}
	}

	return findings, nil
}

// manifestLicense best-effort reads the license field for the docs check.
func manifestLicense(targetPath string, targetType manifest.TargetType) string {
	if targetType == manifest.TargetPlugin || targetType == manifest.TargetMulti {
		if m, err := manifest.LoadPlugin(targetPath); err == nil {
			return m.License
		}
	}
	return ""
}

func applyThreshold(findings []finding.Finding, threshold finding.Severity) []finding.Finding {
	if threshold == "" {
		return findings
	}
	min := threshold.Rank()
	kept := findings[:0:0]
	for _, f := range findings {
		if f.Severity.Rank() >= min {
			kept = append(kept, f)
		}
	}
	return kept
}
