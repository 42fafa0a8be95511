package security

import (
	"path/filepath"

	"github.com/marketlint/marketlint/internal/finding"
)

// filePattern classifies a dangerous filename. Patterns are shell globs
// matched against the basename.
type filePattern struct {
	Glob     string
	Label    string
	Severity finding.Severity
	Fix      string
}

// dangerousFilePatterns is one ordered table shared by the whole scanner:
// first matching entry wins, so critical patterns come before lower
// severities.
var dangerousFilePatterns = []filePattern{
	// Environment files carry live credentials more often than not.
	{".env", "Environment File", finding.SeverityCritical, "Add it to .gitignore, delete it from the tree and rotate any credentials it contains"},
	{".env.*", "Environment File", finding.SeverityCritical, "Add it to .gitignore, delete it from the tree and rotate any credentials it contains"},
	{"*.env", "Environment File", finding.SeverityCritical, "Add it to .gitignore, delete it from the tree and rotate any credentials it contains"},

	{"*.pem", "Private Key", finding.SeverityCritical, "Remove the key from the tree and revoke it; keys never belong in a plugin repository"},
	{"*.key", "Private Key", finding.SeverityCritical, "Remove the key from the tree and revoke it; keys never belong in a plugin repository"},
	{"*.p12", "Private Key", finding.SeverityCritical, "Remove the key from the tree and revoke it; keys never belong in a plugin repository"},
	{"*.pfx", "Private Key", finding.SeverityCritical, "Remove the key from the tree and revoke it; keys never belong in a plugin repository"},
	{"*.keystore", "Private Key", finding.SeverityCritical, "Remove the key from the tree and revoke it; keys never belong in a plugin repository"},
	{"id_rsa*", "Private Key", finding.SeverityCritical, "Remove the key from the tree and revoke it; keys never belong in a plugin repository"},
	{"id_dsa*", "Private Key", finding.SeverityCritical, "Remove the key from the tree and revoke it; keys never belong in a plugin repository"},
	{"id_ecdsa*", "Private Key", finding.SeverityCritical, "Remove the key from the tree and revoke it; keys never belong in a plugin repository"},
	{"id_ed25519*", "Private Key", finding.SeverityCritical, "Remove the key from the tree and revoke it; keys never belong in a plugin repository"},

	{"credentials*", "Credential File", finding.SeverityCritical, "Remove the file, add it to .gitignore and rotate the credentials"},
	{"secrets.*", "Credential File", finding.SeverityCritical, "Remove the file, add it to .gitignore and rotate the credentials"},
	{".netrc", "Credential File", finding.SeverityCritical, "Remove the file, add it to .gitignore and rotate the credentials"},

	{"*.sql", "Database Dump", finding.SeverityHigh, "Remove the dump from the tree; ship schema migrations instead of data"},
	{"*.dump", "Database Dump", finding.SeverityHigh, "Remove the dump from the tree; ship schema migrations instead of data"},
	{"*.sqlite", "Database Dump", finding.SeverityHigh, "Remove the dump from the tree; ship schema migrations instead of data"},
	{"*.sqlite3", "Database Dump", finding.SeverityHigh, "Remove the dump from the tree; ship schema migrations instead of data"},
	{"*.db", "Database Dump", finding.SeverityHigh, "Remove the dump from the tree; ship schema migrations instead of data"},

	{"*.bak", "Backup File", finding.SeverityMedium, "Delete editor and config backups before publishing"},
	{"*.backup", "Backup File", finding.SeverityMedium, "Delete editor and config backups before publishing"},
	{"*.old", "Backup File", finding.SeverityMedium, "Delete editor and config backups before publishing"},
	{"*.orig", "Backup File", finding.SeverityMedium, "Delete editor and config backups before publishing"},
	{"*.swp", "Backup File", finding.SeverityMedium, "Delete editor and config backups before publishing"},

	{"*.log", "Log File", finding.SeverityLow, "Delete log files and add *.log to .gitignore"},
	{"npm-debug.log*", "Log File", finding.SeverityLow, "Delete log files and add *.log to .gitignore"},
	{"yarn-error.log*", "Log File", finding.SeverityLow, "Delete log files and add *.log to .gitignore"},
}

// excludedDirs are never descended into.
var excludedDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
	"__pycache__":  true,
}

// classifyFilename returns the first matching pattern for a basename.
func classifyFilename(base string) *filePattern {
	for i := range dangerousFilePatterns {
		if ok, _ := filepath.Match(dangerousFilePatterns[i].Glob, base); ok {
			return &dangerousFilePatterns[i]
		}
	}
	return nil
}

// impactFor maps security severities onto the security deduction scale.
// This scale is deliberately distinct from the schema scorer's weights.
func impactFor(sev finding.Severity) int {
	switch sev {
	case finding.SeverityCritical:
		return -25
	case finding.SeverityHigh:
		return -10
	case finding.SeverityMedium:
		return -5
	default:
		return -2
	}
}
