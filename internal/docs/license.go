package docs

import (
	"regexp"
	"strings"
)

// licensePatterns identify a license from its body text. Order matters:
// GPL-3.0 before GPL-2.0 and BSD-3-Clause before BSD-2-Clause, since the
// broader pattern would otherwise win.
var licensePatterns = []struct {
	ID      string
	Pattern *regexp.Regexp
}{
	{"MIT", regexp.MustCompile(`(?i)Permission is hereby granted, free of charge`)},
	{"Apache-2.0", regexp.MustCompile(`(?i)Licensed under the Apache License, Version 2\.0`)},
	{"GPL-3.0", regexp.MustCompile(`(?is)GNU GENERAL PUBLIC LICENSE.*Version 3`)},
	{"GPL-2.0", regexp.MustCompile(`(?is)GNU GENERAL PUBLIC LICENSE.*Version 2`)},
	{"MPL-2.0", regexp.MustCompile(`(?i)Mozilla Public License Version 2\.0`)},
	{"BSD-3-Clause", regexp.MustCompile(`(?is)Redistribution and use in source and binary forms.*3\.`)},
	{"BSD-2-Clause", regexp.MustCompile(`(?i)Redistribution and use in source and binary forms`)},
	{"ISC", regexp.MustCompile(`(?i)Permission to use, copy, modify, and/or distribute`)},
}

// licenseAliases map common spellings to SPDX identifiers. Longer aliases
// come first so "GNU GPL v3" wins over a bare "GPL" fragment.
var licenseAliases = []struct {
	Name string
	ID   string
}{
	{"Apache License 2.0", "Apache-2.0"},
	{"GNU GPL v3", "GPL-3.0"},
	{"GNU GPL v2", "GPL-2.0"},
	{"BSD 3-Clause", "BSD-3-Clause"},
	{"BSD 2-Clause", "BSD-2-Clause"},
	{"MIT License", "MIT"},
	{"Apache 2.0", "Apache-2.0"},
	{"Apache-2", "Apache-2.0"},
	{"GPLv3", "GPL-3.0"},
	{"GPLv2", "GPL-2.0"},
}

// detectLicense identifies the license in a LICENSE file's content.
// complete reports whether the file holds the full license text rather than
// just a name. An empty id means no known license was recognized.
func detectLicense(content string) (id string, complete bool) {
	for _, lp := range licensePatterns {
		if lp.Pattern.MatchString(content) {
			return lp.ID, len(strings.TrimSpace(content)) >= 200
		}
	}

	lower := strings.ToLower(content)
	for _, alias := range licenseAliases {
		if strings.Contains(lower, strings.ToLower(alias.Name)) {
			return alias.ID, false
		}
	}
	return "", false
}

// normalizeLicense folds a manifest license value onto an SPDX identifier
// so "MIT License" and "mit" both compare equal to "MIT".
func normalizeLicense(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	for _, lp := range licensePatterns {
		if strings.EqualFold(name, lp.ID) {
			return lp.ID
		}
	}
	for _, alias := range licenseAliases {
		if strings.EqualFold(name, alias.Name) {
			return alias.ID
		}
	}
	folded := foldLicense(name)
	for _, lp := range licensePatterns {
		if folded == foldLicense(lp.ID) {
			return lp.ID
		}
	}
	return name
}

func foldLicense(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "")
	return strings.ReplaceAll(s, " ", "")
}
