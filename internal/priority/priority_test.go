package priority

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marketlint/marketlint/internal/finding"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		f    finding.Finding
		want finding.Priority
	}{
		{"critical severity", finding.Finding{Severity: finding.SeverityCritical, Category: finding.CategoryBestPractice}, finding.PriorityP0},
		{"missing required", finding.Finding{Severity: finding.SeverityImportant, Category: finding.CategoryMissingRequired}, finding.PriorityP0},
		{"security", finding.Finding{Severity: finding.SeverityLow, Category: finding.CategorySecurityVulnerability}, finding.PriorityP0},
		{"format violation", finding.Finding{Severity: finding.SeverityImportant, Category: finding.CategoryFormatViolation}, finding.PriorityP0},
		{"missing recommended", finding.Finding{Severity: finding.SeverityRecommended, Category: finding.CategoryMissingRecommended}, finding.PriorityP1},
		{"docs gap", finding.Finding{Severity: finding.SeverityRecommended, Category: finding.CategoryDocumentationGap}, finding.PriorityP1},
		{"important severity", finding.Finding{Severity: finding.SeverityImportant, Category: finding.CategoryBestPractice}, finding.PriorityP1},
		{"best practice", finding.Finding{Severity: finding.SeverityRecommended, Category: finding.CategoryBestPractice}, finding.PriorityP2},
		{"architecture", finding.Finding{Severity: finding.SeverityLow, Category: finding.CategoryArchitecture}, finding.PriorityP2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.f))
		})
	}
}

func TestClassifyIdempotent(t *testing.T) {
	f := finding.Finding{Severity: finding.SeverityImportant, Category: finding.CategoryFormatViolation}
	first := Classify(f)
	f.Priority = first
	assert.Equal(t, first, Classify(f), "reclassifying a classified finding changes nothing")
}

func TestEffortFor(t *testing.T) {
	assert.Equal(t, finding.EffortHigh, EffortFor(finding.CategorySecurityVulnerability))
	assert.Equal(t, finding.EffortMedium, EffortFor(finding.CategoryDocumentationGap))
	assert.Equal(t, finding.EffortLow, EffortFor(finding.CategoryMissingRequired))
}

func TestAssign(t *testing.T) {
	input := []finding.Finding{
		{Severity: finding.SeverityCritical, Category: finding.CategoryMissingRequired, Message: "a"},
		{Severity: finding.SeverityImportant, Category: finding.CategoryMissingRecommended, Message: "b"},
		{Severity: finding.SeverityRecommended, Category: finding.CategoryBestPractice, Message: "c"},
		{Severity: finding.SeverityCritical, Category: finding.CategoryInvalidJSON, Message: "d"},
	}

	buckets := Assign(input)

	assert.Len(t, buckets.P0, 2)
	assert.Len(t, buckets.P1, 1)
	assert.Len(t, buckets.P2, 1)

	// Input order survives within a tier.
	assert.Equal(t, "a", buckets.P0[0].Message)
	assert.Equal(t, "d", buckets.P0[1].Message)

	for _, f := range buckets.All() {
		assert.NotEmpty(t, f.Priority)
		assert.NotEmpty(t, f.Effort)
	}

	// Inputs are untouched.
	for _, f := range input {
		assert.Empty(t, f.Priority)
	}
}

func TestAssignKeepsExistingEffort(t *testing.T) {
	input := []finding.Finding{
		{Severity: finding.SeverityCritical, Category: finding.CategoryMissingRequired, Effort: finding.EffortHigh},
	}
	buckets := Assign(input)
	assert.Equal(t, finding.EffortHigh, buckets.P0[0].Effort)
}

func TestAllOrder(t *testing.T) {
	buckets := Assign([]finding.Finding{
		{Severity: finding.SeverityRecommended, Category: finding.CategoryBestPractice},
		{Severity: finding.SeverityCritical, Category: finding.CategoryMissingRequired},
		{Severity: finding.SeverityImportant, Category: finding.CategoryMissingRecommended},
	})

	all := buckets.All()
	assert.Equal(t, finding.PriorityP0, all[0].Priority)
	assert.Equal(t, finding.PriorityP1, all[1].Priority)
	assert.Equal(t, finding.PriorityP2, all[2].Priority)
}
