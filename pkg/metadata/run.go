// ABOUTME: Run provenance document linking a process and its parameters
// ABOUTME: to the processed dataset it produced

package metadata

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

const (
	sectionProcess      = "process"
	keyProcessedDataset = "processeddataset"
	keyParameters       = "parameters"
	keyValue            = "value"
)

// RunParameter is one name/value pair passed to a process
type RunParameter struct {
	Name  string
	Value string
}

// Run records which process produced a processed dataset
type Run struct {
	*Document
}

// NewRun loads a run document from path
func NewRun(path string) (*Run, error) {
	doc, err := NewDocument(path)
	if err != nil {
		return nil, err
	}
	return &Run{Document: doc}, nil
}

func (r *Run) ProcessName() (string, error) {
	return r.sectionString(sectionProcess, keyName)
}

func (r *Run) SetProcessName(name string) {
	r.ensureSection(sectionProcess)[keyName] = name
}

func (r *Run) ProcessURL() (string, error) {
	return r.sectionString(sectionProcess, keyURL)
}

func (r *Run) SetProcessURL(url string) {
	r.ensureSection(sectionProcess)[keyURL] = url
}

// ProcessedDataset returns the stored reference to the produced dataset.
// It is not resolved.
func (r *Run) ProcessedDataset() (string, error) {
	raw, ok := r.fields[keyProcessedDataset]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingField, keyProcessedDataset)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is not a string", ErrFieldType, keyProcessedDataset)
	}
	return s, nil
}

func (r *Run) SetProcessedDataset(path string) {
	r.fields[keyProcessedDataset] = path
}

// ParametersCount returns the number of parameters, 0 if none are stored
func (r *Run) ParametersCount() int {
	return len(r.parameterList())
}

// ClearParameters resets the parameters to an empty list
func (r *Run) ClearParameters() {
	r.fields[keyParameters] = []any{}
}

// AddParameter appends a parameter
func (r *Run) AddParameter(p RunParameter) {
	r.fields[keyParameters] = append(r.parameterList(), map[string]any{
		keyName:  p.Name,
		keyValue: p.Value,
	})
}

// Parameter returns the parameter at position i. Like slice indexing it
// panics when i is out of range.
func (r *Run) Parameter(i int) RunParameter {
	entry, _ := r.parameterList()[i].(map[string]any)
	return RunParameter{Name: scalarString(entry[keyName]), Value: scalarString(entry[keyValue])}
}

// Display writes the identity, process, dataset reference and parameters
func (r *Run) Display(w io.Writer) {
	r.Document.Display(w)

	name, _ := r.ProcessName()
	url, _ := r.ProcessURL()
	dataset, _ := r.ProcessedDataset()

	fmt.Fprintln(w, "Process ---------------")
	fmt.Fprintf(w, "Name: %s\n", name)
	fmt.Fprintf(w, "Url: %s\n", url)
	fmt.Fprintf(w, "Processed dataset: %s\n", dataset)
	fmt.Fprintln(w, "Parameters ---------------")
	for i := 0; i < r.ParametersCount(); i++ {
		p := r.Parameter(i)
		fmt.Fprintf(w, "%s: %s\n", p.Name, p.Value)
	}
}

// scalarString renders a decoded JSON scalar as text; values written by
// other tools may hold numbers or booleans.
func scalarString(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func (r *Run) parameterList() []any {
	list, _ := r.fields[keyParameters].([]any)
	return list
}
