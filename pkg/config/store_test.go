// ABOUTME: Tests for the process-wide configuration store
// ABOUTME: Covers lazy instance creation, initialization and lookups

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestInstanceWithoutInitialize(t *testing.T) {
	reset()
	t.Cleanup(reset)

	first := Instance()
	second := Instance()

	if first != second {
		t.Fatal("Instance returned different stores")
	}
	if len(first.Keys()) != 0 || len(second.Keys()) != 0 {
		t.Errorf("Expected empty store, got keys %v", first.Keys())
	}
	if first.Has("anything") {
		t.Error("Empty store reports a key")
	}
	if first.Path() != "" {
		t.Errorf("Expected empty path, got %q", first.Path())
	}
}

func TestInitializeAndGet(t *testing.T) {
	reset()
	t.Cleanup(reset)

	path := writeConfig(t, `{"author": "lab", "toolboxes": {"dir": "/opt/tools"}, "threads": 4}`)

	s, err := Initialize(path)
	if err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if s != Instance() {
		t.Error("Initialize did not return the singleton")
	}
	if s.Path() != path {
		t.Errorf("Expected path %s, got %s", path, s.Path())
	}

	if !s.Has("author") || !s.Has("toolboxes") {
		t.Error("Expected top-level keys to be present")
	}
	if s.Has("dir") {
		t.Error("Nested key reported as top-level")
	}

	author, err := s.GetString("author")
	if err != nil || author != "lab" {
		t.Errorf("Expected author 'lab', got %q (%v)", author, err)
	}

	nested, err := s.Get("toolboxes")
	if err != nil {
		t.Fatalf("Get toolboxes failed: %v", err)
	}
	if m, ok := nested.(map[string]any); !ok || m["dir"] != "/opt/tools" {
		t.Errorf("Unexpected nested value: %#v", nested)
	}

	if _, err := s.GetString("threads"); err == nil {
		t.Error("Expected type error for numeric key")
	}

	want := []string{"author", "threads", "toolboxes"}
	got := s.Keys()
	if len(got) != len(want) {
		t.Fatalf("Expected keys %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Key %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestGetMissingKey(t *testing.T) {
	reset()
	t.Cleanup(reset)

	_, err := Instance().Get("missing")
	if !errors.Is(err, ErrConfigKeyNotFound) {
		t.Errorf("Expected ErrConfigKeyNotFound, got %v", err)
	}
}

func TestDoubleInitialization(t *testing.T) {
	reset()
	t.Cleanup(reset)

	path := writeConfig(t, `{"a": 1}`)
	if _, err := Initialize(path); err != nil {
		t.Fatalf("First Initialize failed: %v", err)
	}

	other := writeConfig(t, `{"b": 2}`)
	if _, err := Initialize(other); !errors.Is(err, ErrDoubleInitialization) {
		t.Errorf("Expected ErrDoubleInitialization, got %v", err)
	}
	if _, err := Initialize(path); !errors.Is(err, ErrDoubleInitialization) {
		t.Errorf("Expected ErrDoubleInitialization for same path, got %v", err)
	}

	if !Instance().Has("a") || Instance().Has("b") {
		t.Error("Store changed after rejected initialization")
	}
}

func TestInitializeAfterLazyInstance(t *testing.T) {
	reset()
	t.Cleanup(reset)

	early := Instance()
	path := writeConfig(t, `{"author": "lab"}`)
	if _, err := Initialize(path); !errors.Is(err, ErrDoubleInitialization) {
		t.Fatalf("Expected ErrDoubleInitialization, got %v", err)
	}

	if early != Instance() {
		t.Error("Rejected initialization replaced the lazily created store")
	}
	if Instance().Has("author") || Instance().Path() != "" {
		t.Error("Rejected initialization changed the lazily created store")
	}
}

func TestInitializeErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.json") }},
		{"malformed", func(t *testing.T) string { return writeConfig(t, `{"a": `) }},
		{"not an object", func(t *testing.T) string { return writeConfig(t, `[1, 2]`) }},
		{"null", func(t *testing.T) string { return writeConfig(t, `null`) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reset()
			t.Cleanup(reset)

			if _, err := Initialize(tt.path(t)); !errors.Is(err, ErrConfigRead) {
				t.Errorf("Expected ErrConfigRead, got %v", err)
			}
			// A failed initialization does not consume the single allowed one
			if _, err := Initialize(writeConfig(t, `{}`)); err != nil {
				t.Errorf("Initialize after failure: %v", err)
			}
		})
	}
}

func TestInitializeEmptyFile(t *testing.T) {
	reset()
	t.Cleanup(reset)

	s, err := Initialize(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if len(s.Keys()) != 0 {
		t.Errorf("Expected no keys, got %v", s.Keys())
	}
}
