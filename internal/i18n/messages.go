package i18n

import "github.com/nicksnyder/go-i18n/v2/i18n"

// defaultMessages are the compiled-in English strings. Locale files layer
// translations on top; a missing or partial locale file falls back here.
var defaultMessages = []*i18n.Message{
	{ID: "ReportTitle", Other: "Validation Report"},
	{ID: "ReportTarget", Other: "Target:  {{.Path}}"},
	{ID: "ReportType", Other: "Type:    {{.Type}}"},
	{ID: "ReportBackend", Other: "Backend: {{.Backend}}"},
	{ID: "ReportQualityScore", Other: "Quality Score:  {{.Value}}/100 {{.Stars}} ({{.Rating}})"},
	{ID: "ReportSecurityScore", Other: "Security Score: {{.Value}}/100"},
	{ID: "ReportPublication", Other: "Publication:    {{.Ready}}"},
	{ID: "ReportFindingsSummary", Other: "Findings: {{.P0}} blocking, {{.P1}} should fix, {{.P2}} nice to have"},
	{ID: "TierBlocking", Other: "P0 (blocking)"},
	{ID: "TierShouldFix", Other: "P1 (should fix)"},
	{ID: "TierNiceToHave", Other: "P2 (nice to have)"},
	{ID: "ReportMore", Other: "... and {{.Count}} more (use --full)"},
	{ID: "FindingLocation", Other: "at {{.Location}}"},
	{ID: "FindingFix", Other: "fix: {{.Fix}}"},

	{ID: "ScanHeader", Other: "Security scan: {{.Path}}"},
	{ID: "ScanScore", Other: "Score: {{.Value}}/100 ({{.Critical}} critical, {{.High}} high, {{.Medium}} medium, {{.Low}} low)"},
	{ID: "ScanClean", Other: "No security findings."},

	{ID: "ScoreSummary", Other: "Score: {{.Value}}/100 {{.Stars}} ({{.Rating}})"},
	{ID: "ScoreBase", Other: "Base score:        {{.Base}}"},
	{ID: "ScoreErrorsPenalty", Other: "Errors penalty:   -{{.Penalty}} ({{.Count}} x 20)"},
	{ID: "ScoreWarningsPenalty", Other: "Warnings penalty: -{{.Penalty}} ({{.Count}} x 10)"},
	{ID: "ScoreMissingPenalty", Other: "Missing penalty:  -{{.Penalty}} ({{.Count}} x 5)"},
	{ID: "ScorePublicationReady", Other: "Publication ready: {{.Ready}}"},
	{ID: "InvalidCount", Other: "invalid {{.Name}} count \"{{.Value}}\" (expected a non-negative integer)"},

	{ID: "ConfigHeader", Other: "Configuration:"},
	{ID: "ConfigLocaleAuto", Other: "auto: System locale is auto-detected"},
	{ID: "ConfigLocaleFixed", Other: "{{.Locale}}: Using fixed locale"},
	{ID: "ConfigLocaleSet", Other: "Locale set to '{{.Locale}}'. Restart marketlint to apply."},
	{ID: "InvalidConfigValue", Other: "invalid value '{{.Value}}' for {{.Key}}. Valid values: {{.Valid}}"},
	{ID: "UnknownConfigKey", Other: "unknown config key: {{.Key}}"},

	{ID: "ReportSaved", Other: "Report saved to {{.Path}}"},

	{ID: "InvalidType", Other: "invalid --type \"{{.Value}}\" (expected plugin or marketplace)"},
	{ID: "InvalidBackend", Other: "invalid --backend \"{{.Value}}\" (expected auto, jq or native)"},
	{ID: "InvalidThreshold", Other: "invalid --severity-threshold \"{{.Value}}\""},
	{ID: "InvalidFormat", Other: "invalid --format \"{{.Value}}\" (expected text, json, markdown or compact)"},

	{ID: "BrowserHeader", Other: "Findings ({{.Count}}) | score {{.Score}}/100"},
	{ID: "BrowserPreviewEmpty", Other: "No finding selected"},
	{ID: "BrowserNoFindings", Other: "no findings to browse"},
}
