// ABOUTME: Data record model shared by raw and processed data
// ABOUTME: Common field accessors, url resolution and origin dispatch

package metadata

import (
	"fmt"
	"io"
)

// Sections and keys of a data record document
const (
	sectionCommon = "common"
	sectionOrigin = "origin"
	sectionTags   = "tags"

	keyName        = "name"
	keyAuthor      = "author"
	keyCreatedDate = "createddate"
	keyDatatype    = "datatype"
	keyURL         = "url"
	keyThumbnail   = "thumbnail"
	keyType        = "type"
	keyRunURL      = "runurl"
)

// Origin types discriminating raw from processed data
const (
	OriginRaw       = "raw"
	OriginProcessed = "processed"
)

// Record is the capability set shared by every data entity
type Record interface {
	Path() string
	FileName() string
	Directory() string
	Name() (string, error)
	Author() (string, error)
	CreatedDate() (string, error)
	Datatype() (string, error)
	URL() (string, error)
	URLAsStored() (string, error)
	Thumbnail() (string, error)
	ThumbnailAsStored() string
	OriginType() (string, error)
	Display(w io.Writer)
	Write() error
}

// DataRecord holds the common/origin fields of a data item
type DataRecord struct {
	*Document
}

// NewDataRecord loads a data record without interpreting its origin
func NewDataRecord(path string) (*DataRecord, error) {
	doc, err := NewDocument(path)
	if err != nil {
		return nil, err
	}
	return &DataRecord{Document: doc}, nil
}

// Open loads the document at path and returns the variant named by its
// origin.type: *RawData, *ProcessedData, or *DataRecord for anything else.
func Open(path string) (Record, error) {
	rec, err := NewDataRecord(path)
	if err != nil {
		return nil, err
	}

	originType, _ := rec.OriginType()
	switch originType {
	case OriginRaw:
		return &RawData{DataRecord: *rec}, nil
	case OriginProcessed:
		return &ProcessedData{DataRecord: *rec}, nil
	default:
		return rec, nil
	}
}

func (r *DataRecord) Name() (string, error) {
	return r.sectionString(sectionCommon, keyName)
}

func (r *DataRecord) Author() (string, error) {
	return r.sectionString(sectionCommon, keyAuthor)
}

func (r *DataRecord) CreatedDate() (string, error) {
	return r.sectionString(sectionCommon, keyCreatedDate)
}

func (r *DataRecord) Datatype() (string, error) {
	return r.sectionString(sectionCommon, keyDatatype)
}

// URLAsStored returns the data file location exactly as written in the file
func (r *DataRecord) URLAsStored() (string, error) {
	return r.sectionString(sectionCommon, keyURL)
}

// URL returns the data file location resolved against the record directory
func (r *DataRecord) URL() (string, error) {
	stored, err := r.URLAsStored()
	if err != nil {
		return "", err
	}
	return Resolve(r.Directory(), stored), nil
}

// ThumbnailAsStored returns the stored thumbnail, or "" when there is none
func (r *DataRecord) ThumbnailAsStored() string {
	s, err := r.sectionString(sectionCommon, keyThumbnail)
	if err != nil {
		return ""
	}
	return s
}

// Thumbnail returns the resolved thumbnail location. An empty stored value
// stays empty.
func (r *DataRecord) Thumbnail() (string, error) {
	stored, err := r.sectionString(sectionCommon, keyThumbnail)
	if err != nil {
		return "", err
	}
	if stored == "" {
		return "", nil
	}
	return Resolve(r.Directory(), stored), nil
}

func (r *DataRecord) OriginType() (string, error) {
	return r.sectionString(sectionOrigin, keyType)
}

// Display writes the identity followed by the common and origin sections.
// Missing values are shown as empty.
func (r *DataRecord) Display(w io.Writer) {
	r.Document.Display(w)

	name, _ := r.Name()
	url, _ := r.URLAsStored()
	author, _ := r.Author()
	datatype, _ := r.Datatype()
	created, _ := r.CreatedDate()
	origin, _ := r.OriginType()

	fmt.Fprintln(w, "Common ---------------")
	fmt.Fprintf(w, "Name: %s\n", name)
	fmt.Fprintf(w, "Url: %s\n", url)
	fmt.Fprintf(w, "Author: %s\n", author)
	fmt.Fprintf(w, "Datatype: %s\n", datatype)
	fmt.Fprintf(w, "Created Date: %s\n", created)
	if thumb := r.ThumbnailAsStored(); thumb != "" {
		fmt.Fprintf(w, "Thumbnail: %s\n", thumb)
	}
	fmt.Fprintln(w, "Origin ---------------")
	fmt.Fprintf(w, "Type: %s\n", origin)
}
