// Package priority classifies findings into P0/P1/P2 presentation tiers
// with an effort estimate per category.
package priority

import "github.com/marketlint/marketlint/internal/finding"

// Buckets groups findings by priority tier. Within a tier, findings keep
// their input order; no secondary ranking is applied.
type Buckets struct {
	P0 []finding.Finding `json:"p0"`
	P1 []finding.Finding `json:"p1"`
	P2 []finding.Finding `json:"p2"`
}

var p0Categories = map[finding.Category]bool{
	finding.CategoryMissingRequired:       true,
	finding.CategoryInvalidJSON:           true,
	finding.CategorySecurityVulnerability: true,
	finding.CategoryFormatViolation:       true,
}

var p1Categories = map[finding.Category]bool{
	finding.CategoryMissingRecommended:  true,
	finding.CategoryDocumentationGap:    true,
	finding.CategoryConventionViolation: true,
	finding.CategoryPerformance:         true,
}

var highEffortCategories = map[finding.Category]bool{
	finding.CategorySecurityVulnerability: true,
	finding.CategoryPerformance:           true,
	finding.CategoryArchitecture:          true,
}

var mediumEffortCategories = map[finding.Category]bool{
	finding.CategoryDocumentationGap:    true,
	finding.CategoryConventionViolation: true,
	finding.CategoryMissingRecommended:  true,
}

// Classify returns the priority tier for one finding. First match wins:
// classifying the same finding twice always yields the same tier.
func Classify(f finding.Finding) finding.Priority {
	switch {
	case f.Severity == finding.SeverityCritical || p0Categories[f.Category]:
		return finding.PriorityP0
	case f.Severity == finding.SeverityImportant || p1Categories[f.Category]:
		return finding.PriorityP1
	default:
		return finding.PriorityP2
	}
}

// EffortFor estimates the fix effort for a category, independent of the
// priority tier.
func EffortFor(c finding.Category) finding.Effort {
	switch {
	case highEffortCategories[c]:
		return finding.EffortHigh
	case mediumEffortCategories[c]:
		return finding.EffortMedium
	default:
		return finding.EffortLow
	}
}

// Assign classifies every finding and returns the tier buckets. Inputs are
// never mutated; each bucket holds copies with Priority and Effort filled
// in.
func Assign(findings []finding.Finding) Buckets {
	var buckets Buckets
	for _, f := range findings {
		f.Priority = Classify(f)
		if f.Effort == "" {
			f.Effort = EffortFor(f.Category)
		}
		switch f.Priority {
		case finding.PriorityP0:
			buckets.P0 = append(buckets.P0, f)
		case finding.PriorityP1:
			buckets.P1 = append(buckets.P1, f)
		default:
			buckets.P2 = append(buckets.P2, f)
		}
	}
	return buckets
}

// All returns the bucketed findings flattened back in P0, P1, P2 order.
func (b Buckets) All() []finding.Finding {
	out := make([]finding.Finding, 0, len(b.P0)+len(b.P1)+len(b.P2))
	out = append(out, b.P0...)
	out = append(out, b.P1...)
	out = append(out, b.P2...)
	return out
}
