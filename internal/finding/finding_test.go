package finding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityRank(t *testing.T) {
	assert.Greater(t, SeverityCritical.Rank(), SeverityHigh.Rank())
	assert.Greater(t, SeverityHigh.Rank(), SeverityImportant.Rank())
	assert.Greater(t, SeverityImportant.Rank(), SeverityMedium.Rank())
	assert.Greater(t, SeverityMedium.Rank(), SeverityLow.Rank())
	assert.Equal(t, SeverityLow.Rank(), SeverityRecommended.Rank())
	assert.Equal(t, 0, Severity("bogus").Rank())
}

func TestLocate(t *testing.T) {
	assert.Equal(t, "plugin.json", Locate("plugin.json", 0))
	assert.Equal(t, "plugin.json:12", Locate("plugin.json", 12))
}

func TestCountBySeverity(t *testing.T) {
	counts := CountBySeverity([]Finding{
		{Severity: SeverityCritical},
		{Severity: SeverityCritical},
		{Severity: SeverityLow},
	})
	assert.Equal(t, 2, counts[SeverityCritical])
	assert.Equal(t, 1, counts[SeverityLow])
	assert.Equal(t, 0, counts[SeverityHigh])
}
