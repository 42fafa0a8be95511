package docs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketlint/marketlint/internal/finding"
)

const completeReadme = `# My Plugin

## Overview
Formats source files on save.

## Installation
Use the marketplace installer.

## Usage
` + "```bash\nmarketlint validate .\n```" + `

## Examples
See above.

## Configuration
Optional.

## Troubleshooting
None known.

## Contributing
PRs welcome.

## Changelog
1.0.0 initial release.

## License
MIT
`

const mitLicenseText = `MIT License

Copyright (c) 2025 Jane Doe

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND.
`

const gplLicenseText = `GNU GENERAL PUBLIC LICENSE
Version 3, 29 June 2007

Copyright (C) 2007 Free Software Foundation, Inc.

Everyone is permitted to copy and distribute verbatim copies of this license
document, but changing it is not allowed. This program is free software: you
can redistribute it and/or modify it under the terms of the GNU General
Public License as published by the Free Software Foundation.
`

func writeDocs(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func messages(findings []finding.Finding) []string {
	var out []string
	for _, f := range findings {
		out = append(out, f.Message)
	}
	return out
}

func TestCheckCompleteDocs(t *testing.T) {
	dir := writeDocs(t, map[string]string{
		"README.md": completeReadme,
		"LICENSE":   mitLicenseText,
	})

	findings, err := Check(context.Background(), dir, "MIT")
	require.NoError(t, err)
	assert.Empty(t, findings)
}

func TestCheckMissingReadme(t *testing.T) {
	dir := writeDocs(t, nil)

	findings, err := Check(context.Background(), dir, "")
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, finding.SeverityImportant, findings[0].Severity)
	assert.Equal(t, finding.CategoryDocumentationGap, findings[0].Category)
	assert.Equal(t, -10, findings[0].ScoreImpact)
	assert.Contains(t, findings[0].Message, "README")
}

func TestCheckMissingSections(t *testing.T) {
	dir := writeDocs(t, map[string]string{
		"README.md": "# My Plugin\n\n## Overview\nDoes things.\n\n```go\nexample()\n```\n",
	})

	findings, err := Check(context.Background(), dir, "")
	require.NoError(t, err)

	msgs := messages(findings)
	assert.Contains(t, msgs, "README is missing a installation section")
	assert.Contains(t, msgs, "README is missing a usage section")
	assert.Contains(t, msgs, "README is missing a examples section")
	assert.Contains(t, msgs, "README is missing a license section")
	assert.NotContains(t, msgs, "README is missing a overview section")

	for _, f := range findings {
		if f.ScoreImpact != 0 {
			assert.Equal(t, -5, f.ScoreImpact, "missing required sections deduct 5")
		}
	}
}

func TestCheckNoCodeBlocks(t *testing.T) {
	dir := writeDocs(t, map[string]string{
		"README.md": completeReadmeWithoutCode(),
	})

	findings, err := Check(context.Background(), dir, "")
	require.NoError(t, err)
	assert.Contains(t, messages(findings), "README has no code examples")
}

func completeReadmeWithoutCode() string {
	return `# My Plugin

## Overview
x

## Installation
x

## Usage
x

## Examples
x

## Configuration
x

## Troubleshooting
x

## Contributing
x

## Changelog
x

## License
MIT
`
}

func TestCheckPlaceholders(t *testing.T) {
	dir := writeDocs(t, map[string]string{
		"README.md": completeReadme + "\nTODO one\nTODO two\nFIXME three\n",
	})

	findings, err := Check(context.Background(), dir, "")
	require.NoError(t, err)

	assert.Contains(t, messages(findings), "README contains 3 placeholder markers")
}

func TestCheckLicenseFileCrossCheck(t *testing.T) {
	dir := writeDocs(t, map[string]string{"README.md": completeReadme})

	// Manifest declares a license but the tree has no LICENSE file.
	findings, err := Check(context.Background(), dir, "MIT")
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Message, "no LICENSE file")

	// No declared license: nothing to cross-check.
	findings, err = Check(context.Background(), dir, "")
	require.NoError(t, err)
	assert.Empty(t, findings)
}

func TestCheckLicenseFileMismatch(t *testing.T) {
	// A GPL LICENSE under an MIT manifest must not pass silently.
	dir := writeDocs(t, map[string]string{
		"README.md": completeReadme,
		"LICENSE":   gplLicenseText,
	})

	findings, err := Check(context.Background(), dir, "MIT")
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, finding.SeverityImportant, findings[0].Severity)
	assert.Equal(t, finding.CategoryDocumentationGap, findings[0].Category)
	assert.Equal(t, -10, findings[0].ScoreImpact)
	assert.Equal(t, `LICENSE file is GPL-3.0 but the manifest declares "MIT"`, findings[0].Message)

	// Alias spellings of the same license agree.
	dir = writeDocs(t, map[string]string{
		"README.md": completeReadme,
		"LICENSE":   mitLicenseText,
	})
	findings, err = Check(context.Background(), dir, "MIT License")
	require.NoError(t, err)
	assert.Empty(t, findings)
}

func TestCheckLicenseNameOnly(t *testing.T) {
	dir := writeDocs(t, map[string]string{
		"README.md": completeReadme,
		"LICENSE":   "MIT License\n",
	})

	findings, err := Check(context.Background(), dir, "MIT")
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, finding.SeverityRecommended, findings[0].Severity)
	assert.Equal(t, "LICENSE contains only the license name, not the full text", findings[0].Message)
	assert.Equal(t, 0, findings[0].ScoreImpact)
}

func TestDetectLicense(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		wantID       string
		wantComplete bool
	}{
		{"mit full text", mitLicenseText, "MIT", true},
		{"gpl3 full text", gplLicenseText, "GPL-3.0", true},
		{"mit name only", "MIT License", "MIT", false},
		{"gplv3 alias", "Released under GPLv3.", "GPL-3.0", false},
		{"unknown", "All rights reserved.", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, complete := detectLicense(tt.content)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantComplete, complete)
		})
	}
}

func TestNormalizeLicense(t *testing.T) {
	assert.Equal(t, "MIT", normalizeLicense("mit"))
	assert.Equal(t, "MIT", normalizeLicense("MIT License"))
	assert.Equal(t, "Apache-2.0", normalizeLicense("Apache 2.0"))
	assert.Equal(t, "GPL-3.0", normalizeLicense("GPLv3"))
	assert.Equal(t, "BSD-3-Clause", normalizeLicense("bsd 3 clause"))
	assert.Equal(t, "Custom-1.0", normalizeLicense("Custom-1.0"))
}

func TestCheckCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Check(ctx, t.TempDir(), "")
	assert.ErrorIs(t, err, context.Canceled)
}
