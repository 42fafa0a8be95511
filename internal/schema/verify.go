package schema

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/marketlint/marketlint/internal/finding"
	"github.com/marketlint/marketlint/internal/format"
)

var (
	githubSourcePattern = regexp.MustCompile(`^github:[A-Za-z0-9_.-]+/[A-Za-z0-9_.-]+$`)

	// Archive and VCS suffixes accepted for URL-type plugin sources.
	sourceSuffixes = []string{".git", ".tar.gz", ".tgz", ".zip"}
)

// formatViolation builds the standard present-but-malformed finding. A bad
// format on a present field is a warning, never a missing-field critical.
func formatViolation(field, msg, fix string) *finding.Finding {
	return &finding.Finding{
		Severity:     finding.SeverityImportant,
		Category:     finding.CategoryFormatViolation,
		Message:      msg,
		SuggestedFix: fix,
		ScoreImpact:  -10,
	}
}

func verifySemver(field, value string) *finding.Finding {
	if format.IsSemver(value) {
		return nil
	}
	return formatViolation(field,
		fmt.Sprintf("%s %q is not a valid semantic version", field, value),
		"Use MAJOR.MINOR.PATCH with numeric components, e.g. 1.0.0 or 2.1.5")
}

func verifyHyphenName(field, value string) *finding.Finding {
	if format.IsHyphenName(value) {
		return nil
	}
	return formatViolation(field,
		fmt.Sprintf("%s %q is not lowercase-hyphen formatted", field, value),
		"Use lowercase letters, digits and single hyphens, e.g. my-plugin or plugin123")
}

func verifyEmail(field, value string) *finding.Finding {
	if format.IsEmail(value) {
		return nil
	}
	return formatViolation(field,
		fmt.Sprintf("%s %q is not a valid email address", field, value),
		"Use user@domain.tld, e.g. developer@example.com")
}

func verifyURL(field, value string) *finding.Finding {
	if !format.IsURL(value) {
		return formatViolation(field,
			fmt.Sprintf("%s %q is not a valid URL", field, value),
			"Use an absolute http(s) URL, e.g. https://github.com/user/repo")
	}
	if !format.IsHTTPSURL(value) {
		return &finding.Finding{
			Severity:     finding.SeverityImportant,
			Category:     finding.CategoryConventionViolation,
			Message:      fmt.Sprintf("%s %q uses http instead of https", field, value),
			SuggestedFix: "Change to " + strings.Replace(value, "http://", "https://", 1),
			ScoreImpact:  -10,
		}
	}
	return nil
}

func verifyLicense(field, value string) *finding.Finding {
	if format.IsKnownLicense(value) {
		return nil
	}
	// Unknown identifiers are a soft warning: SPDX has hundreds of valid
	// identifiers not worth enumerating exhaustively.
	fix := "Use a common SPDX identifier such as MIT, Apache-2.0 or BSD-3-Clause (see https://spdx.org/licenses/)"
	if suggestion := format.SuggestLicense(value); suggestion != "" {
		fix = fmt.Sprintf("Did you mean %q? %s", suggestion, fix)
	}
	return &finding.Finding{
		Severity:     finding.SeverityRecommended,
		Category:     finding.CategoryConventionViolation,
		Message:      fmt.Sprintf("%s %q is not a recognized SPDX identifier", field, value),
		SuggestedFix: fix,
		ScoreImpact:  0,
	}
}

func verifyCategory(field, value string) *finding.Finding {
	if format.IsApprovedCategory(value) {
		return nil
	}
	fix := "Use one of: " + strings.Join(format.ApprovedCategories, ", ")
	if suggestion := format.SuggestCategory(value); suggestion != "" {
		fix = fmt.Sprintf("Did you mean %q? %s", suggestion, fix)
	}
	return formatViolation(field,
		fmt.Sprintf("%s %q is not an approved category", field, value), fix)
}

func verifyDescription(field, value string) *finding.Finding {
	length := len(value)
	switch {
	case length < format.DescriptionMinLength:
		return &finding.Finding{
			Severity:     finding.SeverityImportant,
			Category:     finding.CategoryDocumentationGap,
			Message:      fmt.Sprintf("%s is too short (%d chars)", field, length),
			SuggestedFix: fmt.Sprintf("Expand the description to %d-%d characters so consumers understand what it does", format.DescriptionMinLength, format.DescriptionMaxLength),
			ScoreImpact:  -10,
		}
	case length > format.DescriptionMaxLength:
		return &finding.Finding{
			Severity:     finding.SeverityRecommended,
			Category:     finding.CategoryDocumentationGap,
			Message:      fmt.Sprintf("%s is long (%d chars)", field, length),
			SuggestedFix: fmt.Sprintf("Consider keeping the description under %d characters", format.DescriptionMaxLength),
			ScoreImpact:  0,
		}
	default:
		return nil
	}
}

func verifySource(field, value string) *finding.Finding {
	if strings.HasPrefix(value, "./") {
		return nil
	}
	if githubSourcePattern.MatchString(value) {
		return nil
	}
	if format.IsURL(value) {
		for _, suffix := range sourceSuffixes {
			if strings.HasSuffix(value, suffix) {
				return nil
			}
		}
	}
	return formatViolation(field,
		fmt.Sprintf("%s %q is not an accepted source shape", field, value),
		"Use a relative path (./plugins/my-plugin), github:owner/repo, or an absolute URL ending in "+strings.Join(sourceSuffixes, ", "))
}

func verifyKeywordCount(field string, n int) *finding.Finding {
	const minKeywords, maxKeywords = 3, 7
	switch {
	case n < minKeywords:
		return &finding.Finding{
			Severity:     finding.SeverityRecommended,
			Category:     finding.CategoryBestPractice,
			Message:      fmt.Sprintf("%s has only %d entries", field, n),
			SuggestedFix: fmt.Sprintf("Use %d-%d keywords mixing functionality and technology terms", minKeywords, maxKeywords),
			ScoreImpact:  0,
		}
	case n > maxKeywords:
		return &finding.Finding{
			Severity:     finding.SeverityRecommended,
			Category:     finding.CategoryBestPractice,
			Message:      fmt.Sprintf("%s has %d entries", field, n),
			SuggestedFix: fmt.Sprintf("Trim to the %d most relevant keywords", maxKeywords),
			ScoreImpact:  0,
		}
	default:
		return nil
	}
}
