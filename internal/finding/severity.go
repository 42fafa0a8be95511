package finding

// Severity classifies how serious a finding is.
//
// Schema validation uses the critical/important/recommended scale; the
// security scanner uses the critical/high/medium/low scale. The two scales
// feed separate scores and are never mixed (see internal/score).
type Severity string

const (
	SeverityCritical    Severity = "critical"
	SeverityImportant   Severity = "important"
	SeverityRecommended Severity = "recommended"

	// Security scan scale. Critical is shared between both scales.
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Rank returns an integer rank for ordering (higher is more severe).
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 5
	case SeverityHigh:
		return 4
	case SeverityImportant:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow, SeverityRecommended:
		return 1
	default:
		return 0
	}
}

func (s Severity) String() string {
	return string(s)
}

// Priority is the presentation tier assigned by the prioritizer.
type Priority string

const (
	PriorityP0 Priority = "P0" // blocking
	PriorityP1 Priority = "P1" // should fix
	PriorityP2 Priority = "P2" // nice to have
)

// Effort estimates how much work a fix takes.
type Effort string

const (
	EffortLow    Effort = "low"
	EffortMedium Effort = "medium"
	EffortHigh   Effort = "high"
)
