package finding

import "fmt"

// Category groups findings by what kind of problem they describe.
type Category string

const (
	CategoryMissingRequired       Category = "missing_required"
	CategoryMissingRecommended    Category = "missing_recommended"
	CategoryInvalidJSON           Category = "invalid_json"
	CategoryFormatViolation       Category = "format_violation"
	CategorySecurityVulnerability Category = "security_vulnerability"
	CategoryDocumentationGap      Category = "documentation_gap"
	CategoryConventionViolation   Category = "convention_violation"
	CategoryDuplicateEntry        Category = "duplicate_entry"
	CategoryPerformance           Category = "performance"
	CategoryArchitecture          Category = "architecture"
	CategoryBestPractice          Category = "best_practice"
)

// Finding is a single validation result. Findings are immutable once
// produced; the prioritizer fills in Priority on its own copies and leaves
// every other field untouched.
type Finding struct {
	Severity     Severity `json:"severity"`
	Category     Category `json:"category"`
	Message      string   `json:"message"`
	Location     string   `json:"location,omitempty"` // file or file:line
	SuggestedFix string   `json:"suggested_fix,omitempty"`
	ScoreImpact  int      `json:"score_impact"`
	Effort       Effort   `json:"effort,omitempty"`
	Priority     Priority `json:"priority,omitempty"`
}

// Locate returns a "file:line" location string. Line 0 means the whole file.
func Locate(file string, line int) string {
	if line <= 0 {
		return file
	}
	return fmt.Sprintf("%s:%d", file, line)
}

// CountBySeverity returns how many findings carry each severity.
func CountBySeverity(findings []Finding) map[Severity]int {
	counts := make(map[Severity]int)
	for _, f := range findings {
		counts[f.Severity]++
	}
	return counts
}
