package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketlint/marketlint/internal/finding"
	"github.com/marketlint/marketlint/internal/manifest"
)

func sampleReport() *ValidationReport {
	schema := []finding.Finding{
		{Severity: finding.SeverityCritical, Category: finding.CategoryMissingRequired, Message: "required field version is missing"},
		{Severity: finding.SeverityImportant, Category: finding.CategoryMissingRecommended, Message: "recommended field category is missing"},
		{Severity: finding.SeverityRecommended, Category: finding.CategoryBestPractice, Message: "keywords has only 2 entries"},
	}
	security := []finding.Finding{
		{Severity: finding.SeverityCritical, Category: finding.CategorySecurityVulnerability, Message: "Environment File: .env"},
		{Severity: finding.SeverityLow, Category: finding.CategoryConventionViolation, Message: "executable without shebang: run"},
	}
	docsF := []finding.Finding{
		{Severity: finding.SeverityRecommended, Category: finding.CategoryDocumentationGap, Message: "README has no code examples"},
	}
	return Aggregate("./demo", manifest.TargetPlugin, "native", schema, security, docsF)
}

func TestAggregateSeverityBuckets(t *testing.T) {
	r := sampleReport()

	assert.Len(t, r.Errors, 2, "both criticals land in errors")
	assert.Len(t, r.Warnings, 1)
	assert.Len(t, r.Recommendations, 3, "low security, keywords and recommended docs")
	assert.Len(t, r.Findings, 6)
}

func TestAggregateScoresAreSeparate(t *testing.T) {
	r := sampleReport()

	// Quality only sees schema and docs findings: one critical, one
	// missing recommended.
	assert.Equal(t, 75, r.Score.Value)

	// Security only sees the scanner's findings: one critical, one low.
	assert.Equal(t, 100-25-2, r.SecurityScore.Value)
}

func TestAggregatePriorities(t *testing.T) {
	r := sampleReport()

	assert.Len(t, r.Priorities.P0, 2)
	assert.Len(t, r.Priorities.P1, 3, "missing recommended, low-severity convention and docs gap")
	assert.Len(t, r.Priorities.P2, 1)

	// Schema findings come before security findings within a tier.
	assert.Contains(t, r.Priorities.P0[0].Message, "version")
	assert.Contains(t, r.Priorities.P0[1].Message, ".env")
}

func TestHasBlocking(t *testing.T) {
	r := sampleReport()
	assert.True(t, r.HasBlocking(false))

	clean := Aggregate("./demo", manifest.TargetPlugin, "native", nil, nil, nil)
	assert.False(t, clean.HasBlocking(false))
	assert.False(t, clean.HasBlocking(true))

	warnOnly := Aggregate("./demo", manifest.TargetPlugin, "native",
		[]finding.Finding{{Severity: finding.SeverityImportant, Category: finding.CategoryMissingRecommended}}, nil, nil)
	assert.False(t, warnOnly.HasBlocking(false))
	assert.True(t, warnOnly.HasBlocking(true), "strict mode gates on warnings")
}

func TestJSONFieldNames(t *testing.T) {
	data, err := sampleReport().JSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	for _, key := range []string{
		"target_path", "target_type", "backend", "findings", "score",
		"security_score", "priorities", "errors", "warnings", "recommendations",
	} {
		assert.Contains(t, decoded, key)
	}

	priorities, ok := decoded["priorities"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, priorities, "p0")
	assert.Contains(t, priorities, "p1")
	assert.Contains(t, priorities, "p2")

	scoreObj, ok := decoded["score"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, scoreObj, "value")
	assert.Contains(t, scoreObj, "breakdown")
}

func TestRenderText(t *testing.T) {
	out := RenderText(sampleReport(), false)

	assert.Contains(t, out, "Validation Report")
	assert.Contains(t, out, "./demo")
	assert.Contains(t, out, "P0 (blocking): 2")
	assert.Contains(t, out, "required field version is missing")
}

func TestRenderTextTruncation(t *testing.T) {
	var p1 []finding.Finding
	for i := 0; i < 8; i++ {
		p1 = append(p1, finding.Finding{
			Severity: finding.SeverityImportant,
			Category: finding.CategoryMissingRecommended,
			Message:  "recommended field is missing",
		})
	}
	r := Aggregate("./demo", manifest.TargetPlugin, "native", p1, nil, nil)

	truncated := RenderText(r, false)
	assert.Contains(t, truncated, "and 3 more (use --full)")

	full := RenderText(r, true)
	assert.NotContains(t, full, "use --full")
}

func TestRenderCompact(t *testing.T) {
	clean := Aggregate("./demo", manifest.TargetPlugin, "native", nil, nil, nil)
	assert.Equal(t, "100/100 ★★★★★ (Excellent)", RenderCompact(clean))
}

func TestRenderMarkdown(t *testing.T) {
	out := RenderMarkdown(sampleReport())

	assert.Contains(t, out, "# Quality Assessment Report")
	assert.Contains(t, out, "## Executive Summary")
	assert.Contains(t, out, "**Quality Score**: 75/100")
	assert.Contains(t, out, "## Priority 0 (Blocking): 2")
	assert.Contains(t, out, "## Score Breakdown")
}
