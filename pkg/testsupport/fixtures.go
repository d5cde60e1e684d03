package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kei-mag/survey-form-test/internal/formconfig/normalize"
	"github.com/kei-mag/survey-form-test/pkg/formconfig"
)

// MustLoadFormConfig reads a YAML fixture and validates it, failing the test
// on any error.
func MustLoadFormConfig(t *testing.T, path string) formconfig.FormConfig {
	t.Helper()

	cfg, err := LoadFormConfig(path)
	if err != nil {
		t.Fatalf("load form config: %v", err)
	}
	return cfg
}

// LoadFormConfig reads and validates a YAML fixture without requiring
// testing.T, for setup code outside a test body.
func LoadFormConfig(path string) (formconfig.FormConfig, error) {
	if path == "" {
		return formconfig.FormConfig{}, errors.New("testsupport: form config path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return formconfig.FormConfig{}, fmt.Errorf("testsupport: read form config: %w", err)
	}
	return normalize.Bytes(data, path)
}

// MustParseFormConfig validates an inline YAML document.
func MustParseFormConfig(t *testing.T, yamlDoc string) formconfig.FormConfig {
	t.Helper()

	cfg, err := normalize.Bytes([]byte(yamlDoc), "inline")
	if err != nil {
		t.Fatalf("parse form config: %v", err)
	}
	return cfg
}

// WriteFile writes content under dir, creating parents, and returns the path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir fixture dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

// WriteGolden writes a JSON golden file when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	WriteMaybeGolden(t, path, payload)
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set and
// reports whether it did, so the caller can return early.
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureOutput runs render against a buffer and returns both the returned
// string and what was written, so tests can assert they agree.
func CaptureOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out, buf.String()
}
