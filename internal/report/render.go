package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/marketlint/marketlint/internal/finding"
	"github.com/marketlint/marketlint/internal/i18n"
	"github.com/marketlint/marketlint/internal/score"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	ruleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	criticalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

const rule = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

// RenderText renders the report for a terminal.
func RenderText(r *ValidationReport, full bool) string {
	var sb strings.Builder

	fmt.Fprintln(&sb, ruleStyle.Render(rule))
	fmt.Fprintln(&sb, headerStyle.Render(i18n.T("ReportTitle", nil)))
	fmt.Fprintln(&sb, ruleStyle.Render(rule))
	fmt.Fprintln(&sb, i18n.T("ReportTarget", map[string]interface{}{"Path": r.TargetPath}))
	fmt.Fprintln(&sb, i18n.T("ReportType", map[string]interface{}{"Type": r.TargetType}))
	fmt.Fprintf(&sb, "%s\n\n", i18n.T("ReportBackend", map[string]interface{}{"Backend": r.Backend}))

	scoreLine := i18n.T("ReportQualityScore", map[string]interface{}{
		"Value":  r.Score.Value,
		"Stars":  score.Stars(r.Score.Stars),
		"Rating": r.Score.Rating,
	})
	if r.Score.Value >= 90 {
		fmt.Fprintln(&sb, okStyle.Render(scoreLine))
	} else if r.Score.Value >= 60 {
		fmt.Fprintln(&sb, warnStyle.Render(scoreLine))
	} else {
		fmt.Fprintln(&sb, criticalStyle.Render(scoreLine))
	}
	fmt.Fprintln(&sb, i18n.T("ReportSecurityScore", map[string]interface{}{"Value": r.SecurityScore.Value}))
	fmt.Fprintf(&sb, "%s\n\n", i18n.T("ReportPublication", map[string]interface{}{"Ready": r.Score.PublicationReady}))

	fmt.Fprintln(&sb, i18n.T("ReportFindingsSummary", map[string]interface{}{
		"P0": len(r.Priorities.P0),
		"P1": len(r.Priorities.P1),
		"P2": len(r.Priorities.P2),
	}))

	renderTier(&sb, i18n.T("TierBlocking", nil), r.Priorities.P0, criticalStyle, full, 0)
	renderTier(&sb, i18n.T("TierShouldFix", nil), r.Priorities.P1, warnStyle, full, 5)
	renderTier(&sb, i18n.T("TierNiceToHave", nil), r.Priorities.P2, dimStyle, full, 3)

	return sb.String()
}

// renderTier prints one priority bucket. When full is false, limit caps the
// entries shown (0 = always show all, P0 is never truncated).
func renderTier(sb *strings.Builder, title string, findings []finding.Finding, style lipgloss.Style, full bool, limit int) {
	if len(findings) == 0 {
		return
	}

	fmt.Fprintf(sb, "\n%s\n", headerStyle.Render(fmt.Sprintf("%s: %d", title, len(findings))))
	shown := findings
	if !full && limit > 0 && len(findings) > limit {
		shown = findings[:limit]
	}
	for _, f := range shown {
		fmt.Fprintf(sb, "  %s\n", style.Render(fmt.Sprintf("[%s] %s", f.Severity, f.Message)))
		if f.Location != "" {
			fmt.Fprintf(sb, "      %s\n", i18n.T("FindingLocation", map[string]interface{}{"Location": f.Location}))
		}
		if f.SuggestedFix != "" {
			fmt.Fprintf(sb, "      %s\n", i18n.T("FindingFix", map[string]interface{}{"Fix": f.SuggestedFix}))
		}
	}
	if len(shown) < len(findings) {
		fmt.Fprintf(sb, "  %s\n", dimStyle.Render(i18n.T("ReportMore", map[string]interface{}{"Count": len(findings) - len(shown)})))
	}
}

// RenderCompact renders the one-line summary form.
func RenderCompact(r *ValidationReport) string {
	return fmt.Sprintf("%d/100 %s (%s)", r.Score.Value, score.Stars(r.Score.Stars), r.Score.Rating)
}

// RenderMarkdown renders the report as a markdown document suitable for CI
// artifacts and pull-request comments.
func RenderMarkdown(r *ValidationReport) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Quality Assessment Report\n\n")
	fmt.Fprintf(&sb, "**Target**: %s\n", r.TargetPath)
	fmt.Fprintf(&sb, "**Type**: %s\n\n", r.TargetType)
	fmt.Fprintf(&sb, "## Executive Summary\n\n")
	fmt.Fprintf(&sb, "**Quality Score**: %d/100 %s (%s)\n", r.Score.Value, score.Stars(r.Score.Stars), r.Score.Rating)
	fmt.Fprintf(&sb, "**Security Score**: %d/100\n", r.SecurityScore.Value)
	fmt.Fprintf(&sb, "**Publication Ready**: %s\n", r.Score.PublicationReady)
	fmt.Fprintf(&sb, "**Critical Issues**: %d\n", len(r.Priorities.P0))
	fmt.Fprintf(&sb, "**Total Issues**: %d\n\n", len(r.Findings))

	markdownTier(&sb, "Priority 0 (Blocking)", r.Priorities.P0)
	markdownTier(&sb, "Priority 1 (Should Fix)", r.Priorities.P1)
	markdownTier(&sb, "Priority 2 (Nice to Have)", r.Priorities.P2)

	fmt.Fprintf(&sb, "## Score Breakdown\n\n")
	fmt.Fprintf(&sb, "| Component | Value |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Base score | %d |\n", r.Score.Breakdown.Base)
	fmt.Fprintf(&sb, "| Critical errors | -%d |\n", r.Score.Breakdown.ErrorPenalty)
	fmt.Fprintf(&sb, "| Warnings | -%d |\n", r.Score.Breakdown.WarningPenalty)
	fmt.Fprintf(&sb, "| Missing recommended fields | -%d |\n", r.Score.Breakdown.MissingPenalty)
	fmt.Fprintf(&sb, "| **Final** | **%d** |\n", r.Score.Value)

	return sb.String()
}

func markdownTier(sb *strings.Builder, title string, findings []finding.Finding) {
	fmt.Fprintf(sb, "## %s: %d\n\n", title, len(findings))
	if len(findings) == 0 {
		fmt.Fprintf(sb, "None.\n\n")
		return
	}
	for i, f := range findings {
		fmt.Fprintf(sb, "%d. **%s** (%s, effort: %s)\n", i+1, f.Message, f.Severity, f.Effort)
		if f.Location != "" {
			fmt.Fprintf(sb, "   - Location: `%s`\n", f.Location)
		}
		if f.SuggestedFix != "" {
			fmt.Fprintf(sb, "   - Fix: %s\n", f.SuggestedFix)
		}
	}
	fmt.Fprintf(sb, "\n")
}
