// Package format provides pure, side-effect-free format predicates for
// manifest field values. Each predicate returns only a boolean; callers
// attach the human-readable message.
package format

import "regexp"

var (
	// Semantic versioning: MAJOR.MINOR.PATCH with optional -prerelease
	// and +build metadata. Numeric components must not have leading zeros.
	semverPattern = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(-[a-zA-Z0-9.-]+)?(\+[a-zA-Z0-9.-]+)?$`)

	// Lowercase-hyphen naming: my-plugin, test-tool, plugin123
	hyphenNamePattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

	// Conservative local@domain.tld check, nowhere near RFC 5322 complete.
	// False negatives are acceptable; false positives should be rare.
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	urlPattern   = regexp.MustCompile(`^https?://[^\s]+$`)
	httpsPattern = regexp.MustCompile(`^https://[^\s]+$`)
)

// KnownLicenses is the allow-list of common SPDX identifiers. SPDX has
// hundreds of valid identifiers; anything outside this list is a soft
// warning, not a hard failure.
var KnownLicenses = []string{
	"MIT", "Apache-2.0", "GPL-2.0", "GPL-3.0", "LGPL-2.1", "LGPL-3.0",
	"BSD-2-Clause", "BSD-3-Clause", "ISC", "MPL-2.0", "AGPL-3.0",
	"Unlicense", "CC0-1.0",
}

// ApprovedCategories is the fixed set of plugin categories.
var ApprovedCategories = []string{
	"development", "testing", "deployment", "documentation", "security",
	"database", "monitoring", "productivity", "quality", "collaboration",
}

// Recommended description length bounds, in characters.
const (
	DescriptionMinLength = 50
	DescriptionMaxLength = 200
)

// IsSemver reports whether s is a valid semantic version string.
func IsSemver(s string) bool {
	return semverPattern.MatchString(s)
}

// IsHyphenName reports whether s uses lowercase-hyphen naming: lowercase
// ASCII letters and digits, hyphen-separated, no leading/trailing/double
// hyphens.
func IsHyphenName(s string) bool {
	return hyphenNamePattern.MatchString(s)
}

// IsEmail reports whether s looks like an email address.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsURL reports whether s is an http or https URL.
func IsURL(s string) bool {
	return urlPattern.MatchString(s)
}

// IsHTTPSURL reports whether s is an https URL. Plain http is rejected.
func IsHTTPSURL(s string) bool {
	return httpsPattern.MatchString(s)
}

// IsKnownLicense reports whether s is one of the common SPDX identifiers in
// KnownLicenses. Matching is exact and case-sensitive, as SPDX identifiers
// are.
func IsKnownLicense(s string) bool {
	for _, l := range KnownLicenses {
		if s == l {
			return true
		}
	}
	return false
}

// IsApprovedCategory reports whether s is one of the approved categories.
func IsApprovedCategory(s string) bool {
	for _, c := range ApprovedCategories {
		if s == c {
			return true
		}
	}
	return false
}
