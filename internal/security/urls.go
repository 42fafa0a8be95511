package security

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/marketlint/marketlint/internal/finding"
)

const maxScanSize = 1 << 20 // skip files over 1 MiB, they are not manifests

var (
	urlPattern = regexp.MustCompile(`https?://[^\s"'<>\)\]]+`)

	// Remote-code-execution shapes: a fetched script piped straight into a
	// shell can run anything.
	dangerousPatterns = []struct {
		Name    string
		Pattern *regexp.Regexp
	}{
		{"curl piped to shell", regexp.MustCompile(`(?i)curl\s+[^|\n]+\|\s*(sh|bash)`)},
		{"wget piped to shell", regexp.MustCompile(`(?i)wget\s+[^|\n]+\|\s*(sh|bash)`)},
		{"shell process substitution of curl", regexp.MustCompile(`(?i)bash\s+<\s*\(\s*curl`)},
		{"eval of fetched content", regexp.MustCompile(`(?i)eval[^\n]*(curl|wget|fetch\s*\()`)},
	}

	localhostHosts = []string{"http://localhost", "http://127.0.0.1", "http://0.0.0.0"}
)

// scanContent runs the URL-safety and code-pattern sub-scans over one text
// file.
func scanContent(path, rel string, opts Options) []finding.Finding {
	info, err := os.Stat(path)
	if err != nil || info.Size() > maxScanSize {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil || !isText(head(data)) {
		return nil
	}
	content := string(data)

	var findings []finding.Finding

	if opts.CheckCodePatterns {
		for _, dp := range dangerousPatterns {
			for _, loc := range dp.Pattern.FindAllStringIndex(content, -1) {
				line := 1 + strings.Count(content[:loc[0]], "\n")
				match := content[loc[0]:loc[1]]
				findings = append(findings, finding.Finding{
					Severity:     finding.SeverityCritical,
					Category:     finding.CategorySecurityVulnerability,
					Message:      fmt.Sprintf("remote code execution pattern (%s): %s", dp.Name, match),
					Location:     finding.Locate(rel, line),
					SuggestedFix: "Download the script, verify its checksum, review it, then execute it",
					ScoreImpact:  impactFor(finding.SeverityCritical),
				})
			}
		}
	}

	for lineIdx, lineText := range strings.Split(content, "\n") {
		for _, url := range urlPattern.FindAllString(lineText, -1) {
			if !strings.HasPrefix(url, "http://") {
				continue
			}
			if opts.AllowLocalhost && isLocalhost(url) {
				continue
			}

			severity := finding.SeverityMedium
			if opts.HTTPSOnly {
				severity = finding.SeverityHigh
			}
			findings = append(findings, finding.Finding{
				Severity:     severity,
				Category:     finding.CategorySecurityVulnerability,
				Message:      fmt.Sprintf("non-HTTPS URL: %s", url),
				Location:     finding.Locate(rel, lineIdx+1),
				SuggestedFix: "Change to " + strings.Replace(url, "http://", "https://", 1),
				ScoreImpact:  impactFor(severity),
			})
		}
	}

	return findings
}

func isLocalhost(url string) bool {
	for _, prefix := range localhostHosts {
		if strings.HasPrefix(url, prefix) {
			return true
		}
	}
	return false
}

func head(data []byte) []byte {
	if len(data) > 512 {
		return data[:512]
	}
	return data
}
