// ABOUTME: Processed data record derived from a run
// ABOUTME: Resolves its origin back to the producing run

package metadata

import (
	"errors"
	"fmt"
	"io"
)

// ProcessedData is a data item produced by a run
type ProcessedData struct {
	DataRecord
}

// NewProcessedData loads a processed data record. The run url is checked on
// access, not here.
func NewProcessedData(path string) (*ProcessedData, error) {
	rec, err := NewDataRecord(path)
	if err != nil {
		return nil, err
	}
	return &ProcessedData{DataRecord: *rec}, nil
}

// RunURL returns origin.runurl as stored. The error matches both
// ErrMissingRunURL and ErrMissingField when it is absent.
func (p *ProcessedData) RunURL() (string, error) {
	url, err := p.sectionString(sectionOrigin, keyRunURL)
	if errors.Is(err, ErrMissingField) {
		return "", fmt.Errorf("%w: %w", ErrMissingRunURL, err)
	}
	return url, err
}

// Display writes the common fields followed by the run url
func (p *ProcessedData) Display(w io.Writer) {
	p.DataRecord.Display(w)

	url, _ := p.RunURL()
	fmt.Fprintf(w, "Runurl: %s\n", url)
}
