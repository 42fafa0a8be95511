package schema

import "github.com/marketlint/marketlint/internal/finding"

// fieldSpec describes one manifest field: where it lives, whether it is
// required or recommended, and how to verify its format when present.
// Tables are evaluated in declaration order for reproducible output.
type fieldSpec struct {
	Path        string
	Required    bool
	Recommended bool
	// Object fields only get a presence check; they have no scalar value.
	Object bool
	// Array fields are checked through the backend's array-length query.
	Array bool
	// Verify inspects a present scalar value and returns a format finding,
	// or nil when the value is fine.
	Verify func(field, value string) *finding.Finding
	// VerifyLength inspects a present array's length.
	VerifyLength func(field string, n int) *finding.Finding
	// MissingFix is the remediation text when the field is absent.
	MissingFix string
}

// pluginFields is the field table for .claude-plugin/plugin.json.
var pluginFields = []fieldSpec{
	{Path: "name", Required: true, Verify: verifyHyphenName,
		MissingFix: `Add "name" using lowercase-hyphen format, e.g. "my-plugin"`},
	{Path: "version", Required: true, Verify: verifySemver,
		MissingFix: `Add "version" using semantic versioning, e.g. "1.0.0"`},
	{Path: "description", Required: true, Verify: verifyDescription,
		MissingFix: `Add a "description" of 50-200 characters explaining what the plugin does`},
	{Path: "author", Required: true, Object: true,
		MissingFix: `Add "author" with at least a name, e.g. {"name": "Jane Doe"}`},
	{Path: "author.email", Verify: verifyEmail},
	{Path: "license", Required: true, Verify: verifyLicense,
		MissingFix: `Add "license" with an SPDX identifier, e.g. "MIT"`},
	{Path: "repository", Recommended: true, Verify: verifyURL,
		MissingFix: `Add "repository" pointing at the source repository URL`},
	{Path: "homepage", Recommended: true, Verify: verifyURL,
		MissingFix: `Add "homepage" with the project website or repository URL`},
	{Path: "keywords", Recommended: true, Array: true, VerifyLength: verifyKeywordCount,
		MissingFix: `Add 3-7 "keywords" describing functionality and technology`},
	{Path: "category", Recommended: true, Verify: verifyCategory,
		MissingFix: `Add "category" from the approved category list`},
}

// marketplaceFields is the field table for .claude-plugin/marketplace.json.
// The plugins array itself is specified here; its entries are validated
// separately against entryFields.
var marketplaceFields = []fieldSpec{
	{Path: "name", Required: true, Verify: verifyHyphenName,
		MissingFix: `Add "name" using lowercase-hyphen format, e.g. "my-marketplace"`},
	{Path: "owner", Required: true, Object: true,
		MissingFix: `Add "owner" with name and email, e.g. {"name": "Jane", "email": "jane@example.com"}`},
	{Path: "owner.name", Required: true,
		MissingFix: `Add "owner.name" identifying the marketplace maintainer`},
	{Path: "owner.email", Recommended: true, Verify: verifyEmail,
		MissingFix: `Add "owner.email" so plugin authors can reach the maintainer`},
	{Path: "plugins", Required: true, Array: true,
		MissingFix: `Add a non-empty "plugins" array listing the marketplace entries`},
	{Path: "version", Verify: verifySemver},
	{Path: "metadata.description", Verify: verifyDescription},
	{Path: "metadata.homepage", Verify: verifyURL},
	{Path: "metadata.repository", Verify: verifyURL},
}

// entryFields is the per-entry table for elements of a marketplace's
// plugins array. Paths are relative to the entry.
var entryFields = []fieldSpec{
	{Path: "name", Required: true, Verify: verifyHyphenName,
		MissingFix: `Add "name" using lowercase-hyphen format`},
	{Path: "source", Required: true, Verify: verifySource,
		MissingFix: `Add "source" as a relative path (./plugins/x), github:owner/repo, or an archive URL`},
	{Path: "description", Required: true, Verify: verifyDescription,
		MissingFix: `Add a "description" explaining what the plugin does`},
	{Path: "version", Recommended: true, Verify: verifySemver,
		MissingFix: `Add "version" so consumers can pin the plugin`},
	{Path: "author", Recommended: true, Object: true,
		MissingFix: `Add "author" crediting the plugin maintainer`},
	{Path: "keywords", Recommended: true, Array: true, VerifyLength: verifyKeywordCount,
		MissingFix: `Add "keywords" so the plugin is discoverable`},
	{Path: "license", Recommended: true, Verify: verifyLicense,
		MissingFix: `Add "license" with an SPDX identifier`},
}
