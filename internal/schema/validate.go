// Package schema walks a manifest against per-target required and
// recommended field tables, attaching format checks from internal/format.
package schema

import (
	"context"
	"fmt"
	"strings"

	"github.com/marketlint/marketlint/internal/backend"
	"github.com/marketlint/marketlint/internal/finding"
	"github.com/marketlint/marketlint/internal/manifest"
)

// Options controls schema validation behavior.
type Options struct {
	// Strict makes missing recommended fields blocking.
	Strict bool
}

// Validate checks the manifest at manifestPath against the field table for
// targetType and returns the findings in declaration order.
//
// A manifest that fails JSON-syntax validation short-circuits with a single
// fatal finding: field lookups are meaningless on unparsable input.
func Validate(ctx context.Context, b backend.Backend, manifestPath string, targetType manifest.TargetType, opts Options) ([]finding.Finding, error) {
	if err := b.ValidateSyntax(ctx, manifestPath); err != nil {
		return []finding.Finding{{
			Severity:     finding.SeverityCritical,
			Category:     finding.CategoryInvalidJSON,
			Message:      err.Error(),
			Location:     manifestPath,
			SuggestedFix: "Fix the JSON syntax: check comma placement, bracket matching and string quoting",
			ScoreImpact:  -20,
		}}, nil
	}

	var table []fieldSpec
	switch targetType {
	case manifest.TargetPlugin:
		table = pluginFields
	case manifest.TargetMarketplace:
		table = marketplaceFields
	default:
		return nil, fmt.Errorf("unsupported target type %q", targetType)
	}

	findings, err := walkFields(ctx, b, manifestPath, "", table, opts)
	if err != nil {
		return nil, err
	}

	if targetType == manifest.TargetMarketplace {
		entryFindings, err := validateEntries(ctx, b, manifestPath, opts)
		if err != nil {
			return nil, err
		}
		findings = append(findings, entryFindings...)
	}

	return findings, nil
}

// walkFields applies one field table. prefix scopes paths to a plugins
// array entry ("plugins.3."), empty for top-level fields.
func walkFields(ctx context.Context, b backend.Backend, manifestPath, prefix string, table []fieldSpec, opts Options) ([]finding.Finding, error) {
	var findings []finding.Finding
	absentObjects := make(map[string]bool)

	for _, spec := range table {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// A missing parent object is one omission; its children would only
		// restate it.
		if dot := strings.LastIndex(spec.Path, "."); dot >= 0 && absentObjects[prefix+spec.Path[:dot]] {
			continue
		}

		path := prefix + spec.Path
		f, present, err := checkField(ctx, b, manifestPath, path, spec, opts)
		if err != nil {
			return nil, err
		}
		if spec.Object && !present {
			absentObjects[path] = true
		}
		if f != nil {
			findings = append(findings, *f)
		}
	}

	return findings, nil
}

func checkField(ctx context.Context, b backend.Backend, manifestPath, path string, spec fieldSpec, opts Options) (*finding.Finding, bool, error) {
	if spec.Array {
		return checkArrayField(ctx, b, manifestPath, path, spec, opts)
	}

	value, present, err := b.GetField(ctx, manifestPath, path)
	if err != nil {
		return nil, false, err
	}

	// Object fields report present with an empty scalar form; only their
	// presence can be judged here.
	empty := !spec.Object && strings.TrimSpace(value) == ""

	if !present || empty {
		if !spec.Required && !spec.Recommended {
			return nil, present, nil // format-only field, absence is fine
		}
		return missingFinding(manifestPath, path, spec, opts, present), present, nil
	}

	if spec.Verify == nil {
		return nil, true, nil
	}
	if f := spec.Verify(path, value); f != nil {
		f.Location = manifestPath
		return f, true, nil
	}
	return nil, true, nil
}

func checkArrayField(ctx context.Context, b backend.Backend, manifestPath, path string, spec fieldSpec, opts Options) (*finding.Finding, bool, error) {
	length, present, isArray, err := b.GetArrayLength(ctx, manifestPath, path)
	if err != nil {
		return nil, false, err
	}

	if !present {
		if !spec.Required && !spec.Recommended {
			return nil, false, nil
		}
		return missingFinding(manifestPath, path, spec, opts, false), false, nil
	}

	// Valid JSON of the wrong type is a reportable defect, not a crash.
	if !isArray {
		return &finding.Finding{
			Severity:     finding.SeverityImportant,
			Category:     finding.CategoryFormatViolation,
			Message:      fmt.Sprintf("field %s must be an array", path),
			Location:     manifestPath,
			SuggestedFix: fmt.Sprintf(`Change %s to a JSON array, e.g. ["value"]`, path),
			ScoreImpact:  -10,
		}, true, nil
	}

	// A required array that is present but empty is incomplete: the key
	// alone says nothing.
	if spec.Required && length == 0 {
		return &finding.Finding{
			Severity:     finding.SeverityCritical,
			Category:     finding.CategoryMissingRequired,
			Message:      fmt.Sprintf("empty %s array", path),
			Location:     manifestPath,
			SuggestedFix: spec.MissingFix,
			ScoreImpact:  -20,
		}, true, nil
	}

	if spec.VerifyLength != nil {
		if f := spec.VerifyLength(path, length); f != nil {
			f.Location = manifestPath
			return f, true, nil
		}
	}
	return nil, true, nil
}

func missingFinding(manifestPath, path string, spec fieldSpec, opts Options, presentButEmpty bool) *finding.Finding {
	verb := "missing"
	if presentButEmpty {
		verb = "empty"
	}

	if spec.Required {
		return &finding.Finding{
			Severity:     finding.SeverityCritical,
			Category:     finding.CategoryMissingRequired,
			Message:      fmt.Sprintf("required field %s is %s", path, verb),
			Location:     manifestPath,
			SuggestedFix: spec.MissingFix,
			ScoreImpact:  -20,
		}
	}

	severity := finding.SeverityImportant
	impact := -5
	if opts.Strict {
		// Strict mode makes recommended fields blocking.
		severity = finding.SeverityCritical
		impact = -20
	}
	return &finding.Finding{
		Severity:     severity,
		Category:     finding.CategoryMissingRecommended,
		Message:      fmt.Sprintf("recommended field %s is %s", path, verb),
		Location:     manifestPath,
		SuggestedFix: spec.MissingFix,
		ScoreImpact:  impact,
	}
}

// validateEntries re-applies the plugin-entry schema to each element of the
// plugins array and checks entry-name uniqueness.
func validateEntries(ctx context.Context, b backend.Backend, manifestPath string, opts Options) ([]finding.Finding, error) {
	length, present, isArray, err := b.GetArrayLength(ctx, manifestPath, "plugins")
	if err != nil || !present || !isArray || length == 0 {
		return nil, err
	}

	var findings []finding.Finding
	seen := make(map[string]int)

	for i := 0; i < length; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		prefix := fmt.Sprintf("plugins.%d.", i)
		entryFindings, err := walkFields(ctx, b, manifestPath, prefix, entryFields, opts)
		if err != nil {
			return nil, err
		}
		findings = append(findings, entryFindings...)

		name, ok, err := b.GetField(ctx, manifestPath, prefix+"name")
		if err != nil {
			return nil, err
		}
		if !ok || name == "" {
			continue
		}
		if first, dup := seen[name]; dup {
			findings = append(findings, finding.Finding{
				Severity:     finding.SeverityImportant,
				Category:     finding.CategoryDuplicateEntry,
				Message:      fmt.Sprintf("plugins.%d.name %q duplicates plugins.%d.name", i, name, first),
				Location:     manifestPath,
				SuggestedFix: "Rename one of the entries: plugin names must be unique within a marketplace",
				ScoreImpact:  -10,
			})
		} else {
			seen[name] = i
		}
	}

	return findings, nil
}
