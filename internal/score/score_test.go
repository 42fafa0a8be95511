package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marketlint/marketlint/internal/finding"
)

func critical() finding.Finding {
	return finding.Finding{Severity: finding.SeverityCritical, Category: finding.CategoryMissingRequired}
}

func warning() finding.Finding {
	return finding.Finding{Severity: finding.SeverityImportant, Category: finding.CategoryFormatViolation}
}

func missingRecommended() finding.Finding {
	return finding.Finding{Severity: finding.SeverityImportant, Category: finding.CategoryMissingRecommended}
}

func TestQualityCleanIsExcellent(t *testing.T) {
	s := Quality(nil)
	assert.Equal(t, 100, s.Value)
	assert.Equal(t, RatingExcellent, s.Rating)
	assert.Equal(t, 5, s.Stars)
	assert.Contains(t, s.PublicationReady, "Yes")
}

func TestQualityDeductions(t *testing.T) {
	tests := []struct {
		name     string
		findings []finding.Finding
		want     int
	}{
		{"one critical", []finding.Finding{critical()}, 80},
		{"two criticals", []finding.Finding{critical(), critical()}, 60},
		{"one warning", []finding.Finding{warning()}, 90},
		{"one missing recommended", []finding.Finding{missingRecommended()}, 95},
		{"mixed", []finding.Finding{critical(), warning(), missingRecommended()}, 65},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Quality(tt.findings).Value)
		})
	}
}

func TestQualityFloor(t *testing.T) {
	var findings []finding.Finding
	for i := 0; i < 10; i++ {
		findings = append(findings, critical())
	}
	s := Quality(findings)
	assert.Equal(t, 0, s.Value, "score never goes below zero")
	assert.Equal(t, RatingPoor, s.Rating)
	assert.Equal(t, 1, s.Stars)
	assert.Equal(t, 200, s.Breakdown.ErrorPenalty, "breakdown keeps the unclamped penalty")
}

func TestQualityMonotonicity(t *testing.T) {
	findings := []finding.Finding{warning(), missingRecommended()}
	before := Quality(findings).Value
	after := Quality(append(findings, warning())).Value
	assert.LessOrEqual(t, after, before, "adding a finding never raises the score")
}

func TestQualityOrderIndependence(t *testing.T) {
	a := []finding.Finding{critical(), warning(), missingRecommended()}
	b := []finding.Finding{missingRecommended(), critical(), warning()}
	assert.Equal(t, Quality(a), Quality(b))
}

func TestQualityStrictUpgradeDeductsAsCritical(t *testing.T) {
	// A missing recommended field upgraded to critical severity deducts 20,
	// not 5: classification looks at severity first.
	upgraded := finding.Finding{Severity: finding.SeverityCritical, Category: finding.CategoryMissingRecommended}
	assert.Equal(t, 80, Quality([]finding.Finding{upgraded}).Value)
}

func TestQualityRatingBands(t *testing.T) {
	tests := []struct {
		value  int
		rating Rating
		stars  int
	}{
		{100, RatingExcellent, 5},
		{90, RatingExcellent, 5},
		{89, RatingGood, 4},
		{75, RatingGood, 4},
		{74, RatingFair, 3},
		{60, RatingFair, 3},
		{59, RatingNeedsImprovement, 2},
		{40, RatingNeedsImprovement, 2},
		{39, RatingPoor, 1},
		{0, RatingPoor, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.rating, ratingFor(tt.value), "value %d", tt.value)
		assert.Equal(t, tt.stars, starsFor(tt.value), "value %d", tt.value)
	}
}

func TestQualityPublicationReadiness(t *testing.T) {
	blocked := Quality([]finding.Finding{critical()})
	assert.Contains(t, blocked.PublicationReady, "Not Ready")

	minor := FromCounts(0, 2, 0) // 80
	assert.Contains(t, minor.PublicationReady, "Minor Changes")
}

func TestSecurityScore(t *testing.T) {
	findings := []finding.Finding{
		{Severity: finding.SeverityCritical},
		{Severity: finding.SeverityHigh},
		{Severity: finding.SeverityHigh},
		{Severity: finding.SeverityMedium},
		{Severity: finding.SeverityLow},
	}

	s := Security(findings)
	assert.Equal(t, 1, s.Critical)
	assert.Equal(t, 2, s.High)
	assert.Equal(t, 1, s.Medium)
	assert.Equal(t, 1, s.Low)
	assert.Equal(t, 100-25-20-5-2, s.Value)

	assert.Equal(t, 100, Security(nil).Value)
}

func TestSecurityFloor(t *testing.T) {
	var findings []finding.Finding
	for i := 0; i < 6; i++ {
		findings = append(findings, finding.Finding{Severity: finding.SeverityCritical})
	}
	assert.Equal(t, 0, Security(findings).Value)
}

func TestStars(t *testing.T) {
	assert.Equal(t, "★★★", Stars(3))
	assert.Equal(t, "", Stars(0))
}
