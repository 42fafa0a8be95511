package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTDefaultsToEnglish(t *testing.T) {
	// No Init: the compiled-in English messages must answer.
	assert.Equal(t, "Validation Report", T("ReportTitle", nil))
	assert.Equal(t, "No security findings.", T("ScanClean", nil))
}

func TestTTemplateData(t *testing.T) {
	got := T("ReportTarget", map[string]interface{}{"Path": "./my-plugin"})
	assert.Equal(t, "Target:  ./my-plugin", got)

	got = T("ReportMore", map[string]interface{}{"Count": 3})
	assert.Equal(t, "... and 3 more (use --full)", got)
}

func TestTUnknownIDFallsBack(t *testing.T) {
	assert.Equal(t, "NoSuchMessage", T("NoSuchMessage", nil))
}
