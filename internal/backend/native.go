package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// nativeBackend reads manifests with encoding/json. Parsed documents are
// cached per file for the lifetime of the backend, which is one validation
// run.
type nativeBackend struct {
	mu   sync.Mutex
	docs map[string]any
}

func newNativeBackend() *nativeBackend {
	return &nativeBackend{docs: make(map[string]any)}
}

func (b *nativeBackend) Name() string { return "native" }

func (b *nativeBackend) ValidateSyntax(ctx context.Context, file string) error {
	_, err := b.load(file)
	return err
}

func (b *nativeBackend) GetField(ctx context.Context, file, path string) (string, bool, error) {
	doc, err := b.load(file)
	if err != nil {
		return "", false, err
	}
	val, present := walkPath(doc, path)
	if !present || val == nil {
		return "", false, nil
	}
	switch v := val.(type) {
	case string:
		return v, true, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true, nil
	case bool:
		return strconv.FormatBool(v), true, nil
	default:
		// object or array: present, no scalar form
		return "", true, nil
	}
}

func (b *nativeBackend) GetArrayLength(ctx context.Context, file, path string) (int, bool, bool, error) {
	doc, err := b.load(file)
	if err != nil {
		return 0, false, false, err
	}
	val, present := walkPath(doc, path)
	if !present || val == nil {
		return 0, false, false, nil
	}
	arr, ok := val.([]any)
	if !ok {
		return 0, true, false, nil
	}
	return len(arr), true, true, nil
}

func (b *nativeBackend) load(file string) (any, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if doc, ok := b.docs[file]; ok {
		return doc, nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		if syn, ok := err.(*json.SyntaxError); ok {
			line, col := offsetPosition(data, syn.Offset)
			return nil, fmt.Errorf("invalid JSON at line %d, column %d: %s", line, col, syn.Error())
		}
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	b.docs[file] = doc
	return doc, nil
}

// walkPath resolves a dotted path with numeric indices against a decoded
// JSON document.
func walkPath(doc any, path string) (any, bool) {
	if path == "" || path == "." {
		return doc, true
	}
	cur := doc
	for _, seg := range strings.Split(path, ".") {
		switch node := cur.(type) {
		case map[string]any:
			val, ok := node[seg]
			if !ok {
				return nil, false
			}
			cur = val
		case []any:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			cur = node[idx]
		default:
			return nil, false
		}
	}
	return cur, true
}

// offsetPosition converts a byte offset into a 1-based line and column.
func offsetPosition(data []byte, offset int64) (line, col int) {
	line, col = 1, 1
	for i := int64(0); i < offset && i < int64(len(data)); i++ {
		if data[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
