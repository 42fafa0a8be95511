package backend

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jqOrSkip(t *testing.T) *jqBackend {
	t.Helper()
	path, err := exec.LookPath("jq")
	if err != nil {
		t.Skip("jq not installed")
	}
	return &jqBackend{binary: path}
}

func TestJQPathExpr(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"", "."},
		{".", "."},
		{"name", `.["name"]?`},
		{"owner.email", `.["owner"]["email"]?`},
		{"plugins.3.name", `.["plugins"][3]["name"]?`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, jqPathExpr(tt.path), "path %q", tt.path)
	}
}

func TestJQBackendMatchesNative(t *testing.T) {
	jq := jqOrSkip(t)
	native := newNativeBackend()
	ctx := context.Background()

	path := writeManifest(t, `{
		"name": "my-plugin",
		"version": "1.0.0",
		"owner": {"email": null},
		"plugins": [{"name": "a"}, {"name": "b"}]
	}`)

	for _, field := range []string{"name", "version", "owner.email", "plugins.1.name", "missing", "owner"} {
		jv, jp, err := jq.GetField(ctx, path, field)
		require.NoError(t, err, field)
		nv, np, err := native.GetField(ctx, path, field)
		require.NoError(t, err, field)

		assert.Equal(t, np, jp, "presence for %q", field)
		assert.Equal(t, nv, jv, "value for %q", field)
	}

	jn, jp, ja, err := jq.GetArrayLength(ctx, path, "plugins")
	require.NoError(t, err)
	assert.True(t, jp)
	assert.True(t, ja)
	assert.Equal(t, 2, jn)

	_, jp, _, err = jq.GetArrayLength(ctx, path, "absent")
	require.NoError(t, err)
	assert.False(t, jp)

	// jq's length on a string answers its rune count, so the type gate has
	// to keep both backends agreeing on wrong-typed fields.
	jn, jp, ja, err = jq.GetArrayLength(ctx, path, "name")
	require.NoError(t, err)
	nn, np, na, err2 := native.GetArrayLength(ctx, path, "name")
	require.NoError(t, err2)
	assert.Equal(t, np, jp)
	assert.Equal(t, na, ja)
	assert.Equal(t, nn, jn)
	assert.False(t, ja)
}

func TestJQValidateSyntax(t *testing.T) {
	jq := jqOrSkip(t)

	good := writeManifest(t, `{"ok": true}`)
	assert.NoError(t, jq.ValidateSyntax(context.Background(), good))

	bad := writeManifest(t, `{"ok": `)
	assert.Error(t, jq.ValidateSyntax(context.Background(), bad))
}
