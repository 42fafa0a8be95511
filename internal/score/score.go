// Package score reduces finding lists into quality and security scores.
//
// The two scales are deliberately separate: the quality score uses the
// schema deduction weights (-20/-10/-5) while the security score uses the
// scanner's weights (-25/-10/-5/-2). Neither feeds the other.
package score

import "github.com/marketlint/marketlint/internal/finding"

// Rating is the human-readable quality band.
type Rating string

const (
	RatingExcellent        Rating = "Excellent"
	RatingGood             Rating = "Good"
	RatingFair             Rating = "Fair"
	RatingNeedsImprovement Rating = "Needs Improvement"
	RatingPoor             Rating = "Poor"
)

// Breakdown explains how a quality score was computed.
type Breakdown struct {
	Base           int `json:"base_score"`
	ErrorPenalty   int `json:"errors_penalty"`
	WarningPenalty int `json:"warnings_penalty"`
	MissingPenalty int `json:"missing_penalty"`
}

// QualityScore is the 0-100 quality result with its rating band.
type QualityScore struct {
	Value            int       `json:"value"`
	Rating           Rating    `json:"rating"`
	Stars            int       `json:"stars"`
	PublicationReady string    `json:"publication_ready"`
	Breakdown        Breakdown `json:"breakdown"`
}

// SecurityScore is the 0-100 security result on the scanner's own scale.
type SecurityScore struct {
	Value    int `json:"value"`
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// Quality computes the quality score from a finding list:
//
//	score = clamp(100 - 20*critical - 10*warning - 5*missingRecommended, 0, 100)
//
// A finding counts as critical by severity first (so strict-mode upgrades
// deduct like any other blocker), then as a missing recommended field by
// category, then as a warning by important severity. Pure function: the
// same finding multiset always produces the same score regardless of order.
func Quality(findings []finding.Finding) QualityScore {
	var criticals, warnings, missing int
	for _, f := range findings {
		switch {
		case f.Severity == finding.SeverityCritical:
			criticals++
		case f.Category == finding.CategoryMissingRecommended:
			missing++
		case f.Severity == finding.SeverityImportant:
			warnings++
		}
	}

	return FromCounts(criticals, warnings, missing)
}

// FromCounts computes a quality score from raw finding counts.
func FromCounts(criticals, warnings, missing int) QualityScore {
	breakdown := Breakdown{
		Base:           100,
		ErrorPenalty:   criticals * 20,
		WarningPenalty: warnings * 10,
		MissingPenalty: missing * 5,
	}
	value := clamp(breakdown.Base - breakdown.ErrorPenalty - breakdown.WarningPenalty - breakdown.MissingPenalty)

	return QualityScore{
		Value:            value,
		Rating:           ratingFor(value),
		Stars:            starsFor(value),
		PublicationReady: readinessFor(value, criticals),
		Breakdown:        breakdown,
	}
}

// Security computes the security score on the -25/-10/-5/-2 scale.
func Security(findings []finding.Finding) SecurityScore {
	counts := finding.CountBySeverity(findings)
	s := SecurityScore{
		Critical: counts[finding.SeverityCritical],
		High:     counts[finding.SeverityHigh],
		Medium:   counts[finding.SeverityMedium],
		Low:      counts[finding.SeverityLow],
	}
	s.Value = clamp(100 - 25*s.Critical - 10*s.High - 5*s.Medium - 2*s.Low)
	return s
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func ratingFor(value int) Rating {
	switch {
	case value >= 90:
		return RatingExcellent
	case value >= 75:
		return RatingGood
	case value >= 60:
		return RatingFair
	case value >= 40:
		return RatingNeedsImprovement
	default:
		return RatingPoor
	}
}

func starsFor(value int) int {
	switch {
	case value >= 90:
		return 5
	case value >= 75:
		return 4
	case value >= 60:
		return 3
	case value >= 40:
		return 2
	default:
		return 1
	}
}

func readinessFor(value, criticals int) string {
	switch {
	case criticals > 0:
		return "Not Ready - blocking issues present"
	case value >= 90:
		return "Yes - ready to publish"
	case value >= 75:
		return "With Minor Changes - nearly ready"
	case value >= 60:
		return "Needs Work - significant improvements needed"
	default:
		return "Not Ready - major overhaul required"
	}
}

// Stars renders a star rating as the usual unicode string.
func Stars(n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += "★"
	}
	return out
}
