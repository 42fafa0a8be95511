// Package docs checks README and LICENSE completeness for a plugin or
// marketplace directory.
package docs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/marketlint/marketlint/internal/finding"
)

var readmeNames = []string{"README.md", "readme.md", "README.txt", "README"}

var licenseNames = []string{"LICENSE", "LICENSE.md", "LICENSE.txt", "COPYING"}

// requiredSections must appear as headings in a README.
var requiredSections = []struct {
	Name    string
	Pattern *regexp.Regexp
}{
	{"overview", regexp.MustCompile(`(?im)^#{1,3}\s*(overview|description|about)`)},
	{"installation", regexp.MustCompile(`(?im)^#{1,3}\s*installation`)},
	{"usage", regexp.MustCompile(`(?im)^#{1,3}\s*usage`)},
	{"examples", regexp.MustCompile(`(?im)^#{1,3}\s*(examples?|demonstrations?)`)},
	{"license", regexp.MustCompile(`(?im)^#{1,3}\s*licen[cs]e`)},
}

// recommendedSections are nice to have.
var recommendedSections = []struct {
	Name    string
	Pattern *regexp.Regexp
}{
	{"configuration", regexp.MustCompile(`(?im)^#{1,3}\s*(configuration|setup|config)`)},
	{"troubleshooting", regexp.MustCompile(`(?im)^#{1,3}\s*(troubleshooting|faq|common.?issues)`)},
	{"contributing", regexp.MustCompile(`(?im)^#{1,3}\s*contribut`)},
	{"changelog", regexp.MustCompile(`(?im)^#{1,3}\s*(changelog|version.?history|releases)`)},
}

var placeholderPattern = regexp.MustCompile(`(?i)(TODO|FIXME|XXX|placeholder|your-[a-z]+-here)`)

// Check inspects the documentation of the directory at rootPath.
// manifestLicense is the manifest's license field, used to cross-check the
// LICENSE file; pass "" when the manifest has none.
func Check(ctx context.Context, rootPath, manifestLicense string) ([]finding.Finding, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var findings []finding.Finding

	readmePath := findFirst(rootPath, readmeNames)
	if readmePath == "" {
		findings = append(findings, finding.Finding{
			Severity:     finding.SeverityImportant,
			Category:     finding.CategoryDocumentationGap,
			Message:      "no README found",
			Location:     rootPath,
			SuggestedFix: "Add a README.md with overview, installation, usage, examples and license sections",
			ScoreImpact:  -10,
		})
	} else {
		readmeFindings, err := checkReadme(readmePath)
		if err != nil {
			return nil, err
		}
		findings = append(findings, readmeFindings...)
	}

	findings = append(findings, checkLicenseFile(rootPath, manifestLicense)...)

	return findings, nil
}

func checkReadme(path string) ([]finding.Finding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	content := string(data)
	rel := filepath.Base(path)

	var findings []finding.Finding

	for _, section := range requiredSections {
		if !section.Pattern.MatchString(content) {
			findings = append(findings, finding.Finding{
				Severity:     finding.SeverityRecommended,
				Category:     finding.CategoryDocumentationGap,
				Message:      fmt.Sprintf("README is missing a %s section", section.Name),
				Location:     rel,
				SuggestedFix: fmt.Sprintf("Add a \"## %s\" heading", capitalize(section.Name)),
				ScoreImpact:  -5,
			})
		}
	}

	for _, section := range recommendedSections {
		if !section.Pattern.MatchString(content) {
			findings = append(findings, finding.Finding{
				Severity:     finding.SeverityRecommended,
				Category:     finding.CategoryDocumentationGap,
				Message:      fmt.Sprintf("README could use a %s section", section.Name),
				Location:     rel,
				SuggestedFix: fmt.Sprintf("Consider adding a \"## %s\" heading", capitalize(section.Name)),
				ScoreImpact:  0,
			})
		}
	}

	if !strings.Contains(content, "```") {
		findings = append(findings, finding.Finding{
			Severity:     finding.SeverityRecommended,
			Category:     finding.CategoryDocumentationGap,
			Message:      "README has no code examples",
			Location:     rel,
			SuggestedFix: "Add at least one fenced code block showing how to use the plugin",
			ScoreImpact:  0,
		})
	}

	if matches := placeholderPattern.FindAllString(content, -1); len(matches) > 2 {
		findings = append(findings, finding.Finding{
			Severity:     finding.SeverityRecommended,
			Category:     finding.CategoryDocumentationGap,
			Message:      fmt.Sprintf("README contains %d placeholder markers", len(matches)),
			Location:     rel,
			SuggestedFix: "Replace TODO/FIXME/placeholder text with real content before publishing",
			ScoreImpact:  0,
		})
	}

	return findings, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func checkLicenseFile(rootPath, manifestLicense string) []finding.Finding {
	licensePath := findFirst(rootPath, licenseNames)

	if licensePath == "" {
		if manifestLicense == "" {
			return nil
		}
		return []finding.Finding{{
			Severity:     finding.SeverityRecommended,
			Category:     finding.CategoryDocumentationGap,
			Message:      fmt.Sprintf("manifest declares license %q but no LICENSE file exists", manifestLicense),
			Location:     rootPath,
			SuggestedFix: "Add a LICENSE file with the full license text",
			ScoreImpact:  0,
		}}
	}

	data, err := os.ReadFile(licensePath)
	if err != nil {
		return nil
	}
	rel := filepath.Base(licensePath)
	detected, complete := detectLicense(string(data))

	var findings []finding.Finding

	// Only a positively identified license can disagree with the manifest;
	// an unrecognized file stays quiet rather than guessing.
	if detected != "" && manifestLicense != "" && detected != normalizeLicense(manifestLicense) {
		findings = append(findings, finding.Finding{
			Severity:     finding.SeverityImportant,
			Category:     finding.CategoryDocumentationGap,
			Message:      fmt.Sprintf("LICENSE file is %s but the manifest declares %q", detected, manifestLicense),
			Location:     rel,
			SuggestedFix: "Align the manifest license field with the LICENSE file content",
			ScoreImpact:  -10,
		})
	}

	if detected != "" && !complete {
		findings = append(findings, finding.Finding{
			Severity:     finding.SeverityRecommended,
			Category:     finding.CategoryDocumentationGap,
			Message:      "LICENSE contains only the license name, not the full text",
			Location:     rel,
			SuggestedFix: fmt.Sprintf("Replace the LICENSE file with the full %s text", detected),
			ScoreImpact:  0,
		})
	}

	return findings
}

func findFirst(dir string, names []string) string {
	for _, name := range names {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
