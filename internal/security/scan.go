// Package security scans plugin and marketplace file trees for dangerous
// files, unsafe URLs and suspicious permissions. It never reads manifests
// semantically; everything here works off filenames, file modes and raw
// text.
package security

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/marketlint/marketlint/internal/finding"
)

// Options controls the security scan.
type Options struct {
	// IncludeHidden descends into hidden directories. Hidden files are
	// always classified; .env would be invisible otherwise.
	IncludeHidden bool
	// CheckGitignore softens remediation text for dangerous files that are
	// already gitignored.
	CheckGitignore bool
	// HTTPSOnly raises non-HTTPS URL findings from medium to high.
	HTTPSOnly bool
	// AllowLocalhost exempts http://localhost-style URLs.
	AllowLocalhost bool
	// CheckCodePatterns scans text content for remote-code-execution
	// patterns like curl | sh.
	CheckCodePatterns bool
}

// DefaultOptions returns the scan defaults used by the CLI.
func DefaultOptions() Options {
	return Options{
		IncludeHidden:     true,
		CheckGitignore:    true,
		AllowLocalhost:    true,
		CheckCodePatterns: true,
	}
}

// Scan walks the file tree under rootPath and returns the union of the
// dangerous-file, URL-safety and permission sub-scans. The walk order is
// lexical, so output is deterministic.
func Scan(ctx context.Context, rootPath string, opts Options) ([]finding.Finding, error) {
	var gi *ignore.GitIgnore
	if opts.CheckGitignore {
		// Best effort: a missing or unreadable .gitignore just disables
		// the membership check.
		if compiled, err := ignore.CompileIgnoreFile(filepath.Join(rootPath, ".gitignore")); err == nil {
			gi = compiled
		}
	}

	var findings []finding.Finding

	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		base := d.Name()
		if d.IsDir() {
			if path == rootPath {
				return nil
			}
			if excludedDirs[base] {
				return filepath.SkipDir
			}
			if !opts.IncludeHidden && strings.HasPrefix(base, ".") && base != ".claude-plugin" {
				return filepath.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(rootPath, path)
		if relErr != nil {
			rel = path
		}

		if f := scanFilename(rel, base, gi); f != nil {
			findings = append(findings, *f)
		}
		findings = append(findings, scanPermissions(path, rel)...)
		findings = append(findings, scanContent(path, rel, opts)...)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return findings, nil
}

// scanFilename classifies one file against the dangerous-filename table.
func scanFilename(rel, base string, gi *ignore.GitIgnore) *finding.Finding {
	pattern := classifyFilename(base)
	if pattern == nil {
		return nil
	}

	fix := pattern.Fix
	ignored := gi != nil && gi.MatchesPath(rel)
	if ignored && (pattern.Severity == finding.SeverityCritical || pattern.Severity == finding.SeverityHigh) {
		// Lower urgency, not lower severity: the file still sits in the
		// published tree.
		fix += " (already listed in .gitignore, so it will not be committed again; remove the tracked copy)"
	}

	return &finding.Finding{
		Severity:     pattern.Severity,
		Category:     finding.CategorySecurityVulnerability,
		Message:      fmt.Sprintf("%s: %s", pattern.Label, rel),
		Location:     rel,
		SuggestedFix: fix,
		ScoreImpact:  impactFor(pattern.Severity),
	}
}

// scanPermissions flags world-writable files and executables without a
// shebang.
func scanPermissions(path, rel string) []finding.Finding {
	info, err := os.Lstat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil
	}

	var findings []finding.Finding
	mode := info.Mode().Perm()

	if mode&0o002 != 0 {
		findings = append(findings, finding.Finding{
			Severity:     finding.SeverityHigh,
			Category:     finding.CategorySecurityVulnerability,
			Message:      fmt.Sprintf("world-writable file: %s (%04o)", rel, mode),
			Location:     rel,
			SuggestedFix: fmt.Sprintf("Run chmod o-w %s; any local process can modify this file", rel),
			ScoreImpact:  impactFor(finding.SeverityHigh),
		})
	}

	if mode&0o111 != 0 {
		if head, readable := readHead(path, 256); readable && isText(head) && !strings.HasPrefix(string(head), "#!") {
			findings = append(findings, finding.Finding{
				Severity:     finding.SeverityLow,
				Category:     finding.CategoryConventionViolation,
				Message:      fmt.Sprintf("executable without shebang: %s", rel),
				Location:     rel,
				SuggestedFix: "Add a shebang line (e.g. #!/usr/bin/env bash) or drop the execute bit",
				ScoreImpact:  impactFor(finding.SeverityLow),
			})
		}
	}

	return findings
}

// readHead returns up to n leading bytes of a file.
func readHead(path string, n int) ([]byte, bool) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false
	}
	defer f.Close()

	buf := make([]byte, n)
	read, err := f.Read(buf)
	if read == 0 && err != nil {
		return nil, false
	}
	return buf[:read], true
}

// binaryMagics are executable formats whose leading bytes carry no NUL, so
// the NUL scan alone would misread them as text.
var binaryMagics = [][]byte{
	{0x7f, 'E', 'L', 'F'},
	{'M', 'Z'},
	{0xfe, 0xed, 0xfa, 0xce},
	{0xfe, 0xed, 0xfa, 0xcf},
	{0xcf, 0xfa, 0xed, 0xfe},
	{0xca, 0xfe, 0xba, 0xbe},
}

func isText(head []byte) bool {
	for _, magic := range binaryMagics {
		if bytes.HasPrefix(head, magic) {
			return false
		}
	}
	for _, b := range head {
		if b == 0 {
			return false
		}
	}
	return true
}
