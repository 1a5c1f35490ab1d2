// ABOUTME: Raw data record with free-form tags and field mutators
// ABOUTME: Includes the factory that creates a new empty raw record on disk

package metadata

import (
	"fmt"
	"io"
	"sort"
)

// RawData is an acquired data item. Mutators only change memory; call Write
// to persist.
type RawData struct {
	DataRecord
}

// NewRawData loads a raw data record from path
func NewRawData(path string) (*RawData, error) {
	rec, err := NewDataRecord(path)
	if err != nil {
		return nil, err
	}
	return &RawData{DataRecord: *rec}, nil
}

// CreateRawData creates (or truncates) path and returns a raw record with
// every common field set to "" and origin.type set to "raw". Nothing is
// written until Write is called.
func CreateRawData(path string) (*RawData, error) {
	if err := createEmptyFile(path); err != nil {
		return nil, err
	}
	r, err := NewRawData(path)
	if err != nil {
		return nil, err
	}

	r.fields[sectionCommon] = map[string]any{
		keyAuthor:      "",
		keyCreatedDate: "",
		keyDatatype:    "",
		keyName:        "",
		keyThumbnail:   "",
		keyURL:         "",
	}
	r.fields[sectionOrigin] = map[string]any{
		keyType: OriginRaw,
	}
	return r, nil
}

// Tag returns the value of tag key, or "" if it is not set
func (r *RawData) Tag(key string) string {
	tags, ok := r.fields[sectionTags].(map[string]any)
	if !ok {
		return ""
	}
	v, ok := tags[key].(string)
	if !ok {
		return ""
	}
	return v
}

// SetTag sets a tag, creating the tags object on first use
func (r *RawData) SetTag(key, value string) {
	r.ensureSection(sectionTags)[key] = value
}

// Tags returns a copy of the string-valued tags
func (r *RawData) Tags() map[string]string {
	out := map[string]string{}
	tags, ok := r.fields[sectionTags].(map[string]any)
	if !ok {
		return out
	}
	for k, v := range tags {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}

func (r *RawData) SetName(name string) {
	r.setCommon(keyName, name)
}

func (r *RawData) SetAuthor(author string) {
	r.setCommon(keyAuthor, author)
}

func (r *RawData) SetCreatedDate(date string) {
	r.setCommon(keyCreatedDate, date)
}

func (r *RawData) SetDatatype(datatype string) {
	r.setCommon(keyDatatype, datatype)
}

func (r *RawData) SetURL(url string) {
	r.setCommon(keyURL, url)
}

func (r *RawData) SetThumbnail(thumbnail string) {
	r.setCommon(keyThumbnail, thumbnail)
}

func (r *RawData) setCommon(key, value string) {
	r.ensureSection(sectionCommon)[key] = value
}

// Display writes the common fields followed by the tags in key order
func (r *RawData) Display(w io.Writer) {
	r.DataRecord.Display(w)

	fmt.Fprintln(w, "Tags ---------------")
	tags := r.Tags()
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%s: %s\n", k, tags[k])
	}
}
