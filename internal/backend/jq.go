package backend

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// jqBackend shells out to host jq. jq produces better syntax diagnostics
// than encoding/json, which is why it is the preferred backend.
type jqBackend struct {
	binary string
}

func (b *jqBackend) Name() string { return "jq" }

func (b *jqBackend) ValidateSyntax(ctx context.Context, file string) error {
	_, stderr, err := b.run(ctx, "empty", file)
	if err != nil {
		msg := strings.TrimSpace(stderr)
		if msg == "" {
			msg = err.Error()
		}
		return fmt.Errorf("invalid JSON: %s", msg)
	}
	return nil
}

func (b *jqBackend) GetField(ctx context.Context, file, path string) (string, bool, error) {
	expr := jqPathExpr(path)
	// First answer presence: null and missing both count as absent.
	out, stderr, err := b.run(ctx, fmt.Sprintf("%s != null", expr), file)
	if err != nil {
		return "", false, fmt.Errorf("jq: %s", strings.TrimSpace(stderr))
	}
	if strings.TrimSpace(out) != "true" {
		return "", false, nil
	}

	// -r prints raw strings, so no unquoting is needed here.
	out, stderr, err = b.run(ctx, fmt.Sprintf("%s | if type == \"object\" or type == \"array\" then \"\" else tostring end", expr), file)
	if err != nil {
		return "", false, fmt.Errorf("jq: %s", strings.TrimSpace(stderr))
	}
	return strings.TrimSuffix(out, "\n"), true, nil
}

func (b *jqBackend) GetArrayLength(ctx context.Context, file, path string) (int, bool, bool, error) {
	expr := jqPathExpr(path)
	// length on a string or object would answer something, so the type gate
	// has to happen inside jq before length runs.
	program := fmt.Sprintf("if %s == null then \"absent\" elif (%s | type) != \"array\" then \"notarray\" else (%s | length) end", expr, expr, expr)
	out, stderr, err := b.run(ctx, program, file)
	if err != nil {
		return 0, false, false, fmt.Errorf("jq: %s", strings.TrimSpace(stderr))
	}
	val := strings.TrimSpace(out)
	switch val {
	case "absent":
		return 0, false, false, nil
	case "notarray":
		return 0, true, false, nil
	}
	n, convErr := strconv.Atoi(val)
	if convErr != nil {
		return 0, true, true, fmt.Errorf("jq: unexpected length output %q", val)
	}
	return n, true, true, nil
}

func (b *jqBackend) run(ctx context.Context, program, file string) (stdout, stderr string, err error) {
	cmd := exec.CommandContext(ctx, b.binary, "-r", program, file)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err = cmd.Run()
	return outBuf.String(), errBuf.String(), err
}

// jqPathExpr converts a dotted path ("plugins.3.name") into a jq expression
// (`.["plugins"][3]["name"]?`). The trailing ? keeps lookups on non-objects
// from erroring out.
func jqPathExpr(path string) string {
	if path == "" || path == "." {
		return "."
	}
	var sb strings.Builder
	sb.WriteString(".")
	for _, seg := range strings.Split(path, ".") {
		if _, err := strconv.Atoi(seg); err == nil {
			fmt.Fprintf(&sb, "[%s]", seg)
		} else {
			fmt.Fprintf(&sb, "[%q]", seg)
		}
	}
	sb.WriteString("?")
	return sb.String()
}
