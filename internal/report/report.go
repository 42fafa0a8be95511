// Package report assembles and renders the final validation report.
package report

import (
	"encoding/json"

	"github.com/marketlint/marketlint/internal/finding"
	"github.com/marketlint/marketlint/internal/manifest"
	"github.com/marketlint/marketlint/internal/priority"
	"github.com/marketlint/marketlint/internal/score"
)

// ValidationReport is the terminal aggregate of one validation run. It is
// owned by the caller; the engine retains nothing between invocations.
//
// Findings appear twice on purpose: bucketed by severity
// (errors/warnings/recommendations) and by priority (p0/p1/p2). Both views
// aggregate the same underlying finding set. The quality and security
// scores use separate deduction scales and are reported side by side.
type ValidationReport struct {
	TargetPath    string              `json:"target_path"`
	TargetType    manifest.TargetType `json:"target_type"`
	Backend       string              `json:"backend"`
	Findings      []finding.Finding   `json:"findings"`
	Score         score.QualityScore  `json:"score"`
	SecurityScore score.SecurityScore `json:"security_score"`
	Priorities    priority.Buckets    `json:"priorities"`

	Errors          []finding.Finding `json:"errors"`
	Warnings        []finding.Finding `json:"warnings"`
	Recommendations []finding.Finding `json:"recommendations"`
}

// Aggregate merges the scan outputs into one report. Schema and docs
// findings feed the quality score; security findings feed the security
// score; all of them feed the priority buckets, in schema, security, docs
// order.
func Aggregate(targetPath string, targetType manifest.TargetType, backendName string, schemaFindings, securityFindings, docsFindings []finding.Finding) *ValidationReport {
	all := make([]finding.Finding, 0, len(schemaFindings)+len(securityFindings)+len(docsFindings))
	all = append(all, schemaFindings...)
	all = append(all, securityFindings...)
	all = append(all, docsFindings...)

	quality := make([]finding.Finding, 0, len(schemaFindings)+len(docsFindings))
	quality = append(quality, schemaFindings...)
	quality = append(quality, docsFindings...)

	r := &ValidationReport{
		TargetPath:    targetPath,
		TargetType:    targetType,
		Backend:       backendName,
		Findings:      all,
		Score:         score.Quality(quality),
		SecurityScore: score.Security(securityFindings),
		Priorities:    priority.Assign(all),
	}

	for _, f := range all {
		switch f.Severity {
		case finding.SeverityCritical:
			r.Errors = append(r.Errors, f)
		case finding.SeverityImportant, finding.SeverityHigh, finding.SeverityMedium:
			r.Warnings = append(r.Warnings, f)
		default:
			r.Recommendations = append(r.Recommendations, f)
		}
	}

	return r
}

// HasBlocking reports whether the run should fail a CI gate: P0 findings,
// or any warnings when strict is set.
func (r *ValidationReport) HasBlocking(strict bool) bool {
	if len(r.Priorities.P0) > 0 {
		return true
	}
	return strict && len(r.Warnings) > 0
}

// JSON serializes the report with stable field names.
func (r *ValidationReport) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
