// ABOUTME: JSON-backed metadata document bound to a file path
// ABOUTME: Provides load/write primitives and path helpers for all entities

package metadata

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
)

// Document is a generic JSON object persisted as a sidecar file.
// The path is fixed at construction; fields change only in memory until
// Write is called.
type Document struct {
	path   string
	fields map[string]any
}

// NewDocument binds a document to an existing file and loads it
func NewDocument(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrMissingDocument, path)
	}

	d := &Document{path: path, fields: map[string]any{}}
	if err := d.Load(); err != nil {
		return nil, err
	}
	return d, nil
}

// Load re-reads the backing file, replacing the in-memory fields.
// A zero-byte file yields an empty field map.
func (d *Document) Load() (err error) {
	start := time.Now()
	defer func() { observer.DocumentOperation(OpLoad, d.path, time.Since(start), err) }()

	data, err := os.ReadFile(d.path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDocumentRead, d.path, err)
	}

	fields, err := decodeObject(data)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDocumentRead, d.path, err)
	}
	d.fields = fields
	return nil
}

// Write serializes the fields to the backing file, overwriting it.
// The write is not atomic.
func (d *Document) Write() (err error) {
	start := time.Now()
	defer func() { observer.DocumentOperation(OpWrite, d.path, time.Since(start), err) }()

	data, err := json.MarshalIndent(d.fields, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDocumentWrite, d.path, err)
	}
	if err := os.WriteFile(d.path, data, 0644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDocumentWrite, d.path, err)
	}
	return nil
}

// Path returns the path the document was constructed with
func (d *Document) Path() string {
	return d.path
}

// Fields exposes the live field map
func (d *Document) Fields() map[string]any {
	return d.fields
}

// FileName returns the bare file name of the backing file
func (d *Document) FileName() string {
	return filepath.Base(d.path)
}

// Directory returns the absolute directory containing the backing file
func (d *Document) Directory() string {
	abs, err := filepath.Abs(d.path)
	if err != nil {
		return filepath.Dir(d.path)
	}
	return filepath.Dir(abs)
}

// Display writes the identity of the document
func (d *Document) Display(w io.Writer) {
	fmt.Fprintf(w, "Document: %s\n", d.path)
}

// decodeObject parses a JSON object, keeping numbers as json.Number so they
// are written back exactly as read.
func decodeObject(data []byte) (map[string]any, error) {
	if len(data) == 0 {
		return map[string]any{}, nil
	}

	var v any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	fields, ok := v.(map[string]any)
	if !ok || dec.More() {
		return nil, fmt.Errorf("not a single JSON object")
	}
	return fields, nil
}

// section returns the sub-object stored under key
func (d *Document) section(key string) (map[string]any, error) {
	raw, ok := d.fields[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingField, key)
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not an object", ErrFieldType, key)
	}
	return obj, nil
}

// ensureSection returns the sub-object under key, creating it when it is
// absent or not an object.
func (d *Document) ensureSection(key string) map[string]any {
	if obj, ok := d.fields[key].(map[string]any); ok {
		return obj
	}
	obj := map[string]any{}
	d.fields[key] = obj
	return obj
}

// sectionString returns fields[section][key] as a string
func (d *Document) sectionString(section, key string) (string, error) {
	obj, err := d.section(section)
	if err != nil {
		return "", err
	}
	raw, ok := obj[key]
	if !ok {
		return "", fmt.Errorf("%w: %s.%s", ErrMissingField, section, key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s.%s is not a string", ErrFieldType, section, key)
	}
	return s, nil
}

// Resolve maps a stored path to a filesystem path. An absolute path naming
// an existing file is returned unchanged; anything else is joined to baseDir.
func Resolve(baseDir, stored string) string {
	if filepath.IsAbs(stored) {
		if info, err := os.Stat(stored); err == nil && !info.IsDir() {
			return stored
		}
	}
	return filepath.Join(baseDir, stored)
}

// createEmptyFile truncates or creates path so a document can be bound to it
func createEmptyFile(path string) error {
	start := time.Now()
	f, err := os.Create(path)
	if err == nil {
		err = f.Close()
	}
	observer.DocumentOperation(OpCreate, path, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDocumentWrite, path, err)
	}
	return nil
}
