// ABOUTME: Sentinel errors returned by metadata documents
// ABOUTME: Callers match them with errors.Is

package metadata

import "errors"

var (
	// ErrMissingDocument indicates the backing file of a document does not exist
	ErrMissingDocument = errors.New("metadata: missing document")

	// ErrDocumentRead indicates a document file is unreadable or not a JSON object
	ErrDocumentRead = errors.New("metadata: document read error")

	// ErrDocumentWrite indicates a document could not be serialized or written
	ErrDocumentWrite = errors.New("metadata: document write error")

	// ErrMissingField indicates a required sub-object or key is absent
	ErrMissingField = errors.New("metadata: missing field")

	// ErrFieldType indicates a field is present but holds an unexpected JSON type
	ErrFieldType = errors.New("metadata: unexpected field type")

	// ErrIndexOutOfRange indicates a dataset position outside [0, Size())
	ErrIndexOutOfRange = errors.New("metadata: index out of range")

	// ErrMissingRunURL indicates a processed record without origin.runurl
	ErrMissingRunURL = errors.New("metadata: processed data has no run url")
)
