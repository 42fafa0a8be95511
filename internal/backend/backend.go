// Package backend abstracts the JSON tooling used to read manifest fields.
//
// The resolver prefers host jq for its precise syntax diagnostics and falls
// back to the native Go decoder. Whichever backend wins is used for the
// entire validation run so that edge cases (null vs. missing keys) are
// handled consistently: both normalize to "absent".
package backend

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// Preference selects which backend the resolver may use.
type Preference string

const (
	// PreferAuto picks jq when available, otherwise the native decoder.
	PreferAuto Preference = "auto"
	// PreferJQ requires host jq.
	PreferJQ Preference = "jq"
	// PreferNative forces the built-in Go decoder.
	PreferNative Preference = "native"
)

// ErrPrerequisiteMissing is returned when no usable JSON backend satisfies
// the requested preference. It is fatal: the run aborts with no partial
// report.
var ErrPrerequisiteMissing = errors.New("no usable JSON backend")

// Backend reads fields out of JSON manifest files.
//
// Field paths use dotted notation with numeric indices, e.g. "owner.email"
// or "plugins.3.name". A null value and a missing key both report absent.
type Backend interface {
	// Name identifies the backend ("jq" or "native").
	Name() string
	// ValidateSyntax returns nil when file parses as JSON, or an error
	// describing the first syntax problem.
	ValidateSyntax(ctx context.Context, file string) error
	// GetField returns the string form of the value at path and whether it
	// is present. Objects and arrays report present with an empty string.
	GetField(ctx context.Context, file, path string) (value string, present bool, err error)
	// GetArrayLength returns the length of the array at path and whether
	// the key is present. A present value of a non-array type reports
	// isArray false with length 0; type mismatches on valid JSON are data
	// for the caller, not errors.
	GetArrayLength(ctx context.Context, file, path string) (length int, present, isArray bool, err error)
}

// Resolve picks a backend according to pref.
func Resolve(pref Preference) (Backend, error) {
	switch pref {
	case PreferJQ:
		jqPath, err := exec.LookPath("jq")
		if err != nil {
			return nil, fmt.Errorf("%w: jq requested but not found on PATH", ErrPrerequisiteMissing)
		}
		return &jqBackend{binary: jqPath}, nil
	case PreferNative:
		return newNativeBackend(), nil
	case PreferAuto, "":
		if jqPath, err := exec.LookPath("jq"); err == nil {
			return &jqBackend{binary: jqPath}, nil
		}
		return newNativeBackend(), nil
	default:
		return nil, fmt.Errorf("%w: unknown backend preference %q", ErrPrerequisiteMissing, pref)
	}
}
