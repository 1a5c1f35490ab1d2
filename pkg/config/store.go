// ABOUTME: Process-wide configuration store loaded once from a JSON file
// ABOUTME: Initialize once, then read through Instance from anywhere

// Package config holds the process-wide configuration.
//
// Initialize must be called at most once, before anything calls Instance.
// Instance lazily creates an empty store if Initialize has not run yet, and
// from then on Initialize fails. There is no locking: concurrent
// initialization is a race the caller must avoid.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/goccy/go-json"
)

var (
	// ErrDoubleInitialization indicates Initialize was called once a store
	// already exists, explicitly initialized or lazily created
	ErrDoubleInitialization = errors.New("config: store can be initialized only once")

	// ErrConfigRead indicates the config file is missing or not a JSON object
	ErrConfigRead = errors.New("config: read error")

	// ErrConfigKeyNotFound indicates a lookup of an absent top-level key
	ErrConfigKeyNotFound = errors.New("config: key not found")
)

// Store holds the top-level fields of a configuration file
type Store struct {
	path   string
	fields map[string]any
}

// initialized is set as soon as the process-wide store exists
var (
	instance    *Store
	initialized bool
)

// Initialize loads path into a new process-wide store. A failed read leaves
// the process uninitialized.
func Initialize(path string) (*Store, error) {
	if initialized {
		return nil, ErrDoubleInitialization
	}

	fields, err := readFields(path)
	if err != nil {
		return nil, err
	}

	instance = &Store{path: path, fields: fields}
	initialized = true
	return instance, nil
}

// Instance returns the process-wide store, creating an empty one if needed
func Instance() *Store {
	if !initialized {
		instance = &Store{fields: map[string]any{}}
		initialized = true
	}
	return instance
}

// Path returns the file the store was initialized from, "" if none
func (s *Store) Path() string {
	return s.path
}

// Has reports whether key is a top-level field
func (s *Store) Has(key string) bool {
	_, ok := s.fields[key]
	return ok
}

// Get returns the value stored under key
func (s *Store) Get(key string) (any, error) {
	v, ok := s.fields[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrConfigKeyNotFound, key)
	}
	return v, nil
}

// GetString returns the value stored under key, which must be a string
func (s *Store) GetString(key string) (string, error) {
	v, err := s.Get(key)
	if err != nil {
		return "", err
	}
	str, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("config: key %s is %T, not a string", key, v)
	}
	return str, nil
}

// Keys returns the top-level keys in sorted order
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.fields))
	for k := range s.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func readFields(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigRead, err)
	}

	if len(data) == 0 {
		return map[string]any{}, nil
	}

	var v any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigRead, path, err)
	}
	fields, ok := v.(map[string]any)
	if !ok || dec.More() {
		return nil, fmt.Errorf("%w: %s: not a single JSON object", ErrConfigRead, path)
	}
	return fields, nil
}
