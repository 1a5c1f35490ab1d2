// ABOUTME: Dataset model: an ordered list of data record urls
// ABOUTME: Resolves entries lazily and caches them per index

package metadata

import (
	"fmt"
	"io"
)

const (
	keyURLs = "urls"
)

// Dataset is an ordered collection of references to data record documents.
// Entries are resolved against the dataset directory and cached by index on
// first access; a cached index is never re-read, even if its url changes.
type Dataset struct {
	*Document
	cache map[int]Record
}

// NewDataset loads a dataset document from path
func NewDataset(path string) (*Dataset, error) {
	doc, err := NewDocument(path)
	if err != nil {
		return nil, err
	}
	return &Dataset{Document: doc, cache: make(map[int]Record)}, nil
}

// Name returns the dataset name, or "" if it has none
func (d *Dataset) Name() string {
	name, _ := d.fields[keyName].(string)
	return name
}

func (d *Dataset) SetName(name string) {
	d.fields[keyName] = name
}

// Size returns the number of urls
func (d *Dataset) Size() int {
	return len(d.urlList())
}

// URLs returns the urls as stored
func (d *Dataset) URLs() ([]string, error) {
	list := d.urlList()
	urls := make([]string, len(list))
	for i, raw := range list {
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s[%d] is not a string", ErrFieldType, keyURLs, i)
		}
		urls[i] = s
	}
	return urls, nil
}

// URL returns the url stored at position i
func (d *Dataset) URL(i int) (string, error) {
	list := d.urlList()
	if i < 0 || i >= len(list) {
		return "", fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfRange, i, len(list))
	}
	s, ok := list[i].(string)
	if !ok {
		return "", fmt.Errorf("%w: %s[%d] is not a string", ErrFieldType, keyURLs, i)
	}
	return s, nil
}

// AddDataMDFile appends a url without resolving it or touching the cache
func (d *Dataset) AddDataMDFile(url string) {
	d.fields[keyURLs] = append(d.urlList(), url)
}

// Data returns the record at position i, loading it on the first access
func (d *Dataset) Data(i int) (Record, error) {
	if rec, ok := d.cache[i]; ok {
		observer.CacheLookup(true)
		return rec, nil
	}
	observer.CacheLookup(false)

	path, err := d.entryPath(i)
	if err != nil {
		return nil, err
	}
	rec, err := NewDataRecord(path)
	if err != nil {
		return nil, err
	}
	d.cache[i] = rec
	return rec, nil
}

// Cached reports whether position i has been resolved
func (d *Dataset) Cached(i int) bool {
	_, ok := d.cache[i]
	return ok
}

// Display writes the identity, name and urls
func (d *Dataset) Display(w io.Writer) {
	d.Document.Display(w)

	fmt.Fprintf(w, "Name: %s\n", d.Name())
	fmt.Fprintf(w, "Size: %d\n", d.Size())
	for i, raw := range d.urlList() {
		fmt.Fprintf(w, "  [%d] %v\n", i, raw)
	}
}

// entryPath resolves position i against the dataset directory
func (d *Dataset) entryPath(i int) (string, error) {
	url, err := d.URL(i)
	if err != nil {
		return "", err
	}
	return Resolve(d.Directory(), url), nil
}

func (d *Dataset) urlList() []any {
	list, _ := d.fields[keyURLs].([]any)
	return list
}

// cachedRecord looks up position i in the cache. Typed datasets rewrap an
// entry cached as a plain *DataRecord without reading the disk.
func (d *Dataset) cachedRecord(i int) (Record, bool) {
	rec, ok := d.cache[i]
	observer.CacheLookup(ok)
	return rec, ok
}

// RawDataset is a dataset whose entries are raw data records
type RawDataset struct {
	Dataset
}

// NewRawDataset loads a raw dataset document from path
func NewRawDataset(path string) (*RawDataset, error) {
	ds, err := NewDataset(path)
	if err != nil {
		return nil, err
	}
	return &RawDataset{Dataset: *ds}, nil
}

// CreateRawDataset creates (or truncates) path and returns an empty raw
// dataset. Nothing is written until Write is called.
func CreateRawDataset(path string) (*RawDataset, error) {
	if err := createEmptyFile(path); err != nil {
		return nil, err
	}
	ds, err := NewRawDataset(path)
	if err != nil {
		return nil, err
	}
	ds.fields[keyName] = ""
	ds.fields[keyURLs] = []any{}
	return ds, nil
}

// Data returns the raw record at position i through the cache
func (d *RawDataset) Data(i int) (*RawData, error) {
	if rec, ok := d.cachedRecord(i); ok {
		switch r := rec.(type) {
		case *RawData:
			return r, nil
		case *DataRecord:
			raw := &RawData{DataRecord: *r}
			d.cache[i] = raw
			return raw, nil
		}
	}

	raw, err := d.RawData(i)
	if err != nil {
		return nil, err
	}
	d.cache[i] = raw
	return raw, nil
}

// RawData loads the raw record at position i from disk. It neither reads
// nor fills the cache.
func (d *RawDataset) RawData(i int) (*RawData, error) {
	path, err := d.entryPath(i)
	if err != nil {
		return nil, err
	}
	return NewRawData(path)
}

// AddData appends the record's file name to the urls and caches the record
// at the new last index, so Data returns it without a disk read.
func (d *RawDataset) AddData(r *RawData) {
	d.AddDataMDFile(r.FileName())
	d.cache[d.Size()-1] = r
}

// ToList loads every entry from disk, bypassing the cache
func (d *RawDataset) ToList() ([]*RawData, error) {
	list := make([]*RawData, 0, d.Size())
	for i := 0; i < d.Size(); i++ {
		r, err := d.RawData(i)
		if err != nil {
			return nil, err
		}
		list = append(list, r)
	}
	return list, nil
}

// ProcessedDataset is a dataset whose entries are processed data records
type ProcessedDataset struct {
	Dataset
}

// NewProcessedDataset loads a processed dataset document from path
func NewProcessedDataset(path string) (*ProcessedDataset, error) {
	ds, err := NewDataset(path)
	if err != nil {
		return nil, err
	}
	return &ProcessedDataset{Dataset: *ds}, nil
}

// Data returns the processed record at position i through the cache
func (d *ProcessedDataset) Data(i int) (*ProcessedData, error) {
	if rec, ok := d.cachedRecord(i); ok {
		switch r := rec.(type) {
		case *ProcessedData:
			return r, nil
		case *DataRecord:
			p := &ProcessedData{DataRecord: *r}
			d.cache[i] = p
			return p, nil
		}
	}

	p, err := d.ProcessedData(i)
	if err != nil {
		return nil, err
	}
	d.cache[i] = p
	return p, nil
}

// ProcessedData loads the processed record at position i from disk. It
// neither reads nor fills the cache.
func (d *ProcessedDataset) ProcessedData(i int) (*ProcessedData, error) {
	path, err := d.entryPath(i)
	if err != nil {
		return nil, err
	}
	return NewProcessedData(path)
}
