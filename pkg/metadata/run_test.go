// ABOUTME: Tests for run provenance documents
// ABOUTME: Verifies process fields, dataset reference and parameter list

package metadata

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

const runJSON = `{
	"process": {"name": "threshold", "url": "/toolboxes/threshold.xml"},
	"processeddataset": "processeddataset.md.json",
	"parameters": [{"name": "level", "value": "128"}, {"name": "iterations", "value": 3}]
}`

func TestRunAccessors(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "run.md.json"), runJSON)

	run, err := NewRun(path)
	if err != nil {
		t.Fatalf("NewRun failed: %v", err)
	}

	if name, err := run.ProcessName(); err != nil || name != "threshold" {
		t.Errorf("ProcessName = %q (%v)", name, err)
	}
	if url, err := run.ProcessURL(); err != nil || url != "/toolboxes/threshold.xml" {
		t.Errorf("ProcessURL = %q (%v)", url, err)
	}
	// The reference is returned unresolved
	if ds, err := run.ProcessedDataset(); err != nil || ds != "processeddataset.md.json" {
		t.Errorf("ProcessedDataset = %q (%v)", ds, err)
	}

	if run.ParametersCount() != 2 {
		t.Fatalf("Expected 2 parameters, got %d", run.ParametersCount())
	}
	if p := run.Parameter(0); p != (RunParameter{Name: "level", Value: "128"}) {
		t.Errorf("Unexpected parameter 0: %+v", p)
	}
	if p := run.Parameter(1); p != (RunParameter{Name: "iterations", Value: "3"}) {
		t.Errorf("Unexpected parameter 1: %+v", p)
	}
}

func TestRunParameterOutOfRangePanics(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "run.md.json"), runJSON)
	run, err := NewRun(path)
	if err != nil {
		t.Fatal(err)
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected panic for out-of-range parameter")
		}
	}()
	run.Parameter(5)
}

func TestRunMutatorsAndWrite(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "run.md.json"), "")
	run, err := NewRun(path)
	if err != nil {
		t.Fatal(err)
	}

	if run.ParametersCount() != 0 {
		t.Errorf("Expected no parameters, got %d", run.ParametersCount())
	}
	if _, err := run.ProcessName(); !errors.Is(err, ErrMissingField) {
		t.Errorf("Expected ErrMissingField, got %v", err)
	}
	if _, err := run.ProcessedDataset(); !errors.Is(err, ErrMissingField) {
		t.Errorf("Expected ErrMissingField, got %v", err)
	}

	run.SetProcessName("blur")
	run.SetProcessURL("blur.xml")
	run.SetProcessedDataset("out/processeddataset.md.json")
	run.AddParameter(RunParameter{Name: "sigma", Value: "1.5"})
	run.AddParameter(RunParameter{Name: "mode", Value: "reflect"})
	if err := run.Write(); err != nil {
		t.Fatal(err)
	}

	reopened, err := NewRun(path)
	if err != nil {
		t.Fatal(err)
	}
	if name, _ := reopened.ProcessName(); name != "blur" {
		t.Errorf("Expected blur, got %q", name)
	}
	if reopened.ParametersCount() != 2 || reopened.Parameter(1).Value != "reflect" {
		t.Errorf("Unexpected parameters after reload")
	}

	reopened.ClearParameters()
	if reopened.ParametersCount() != 0 {
		t.Errorf("Expected 0 parameters after clear, got %d", reopened.ParametersCount())
	}
	if _, ok := reopened.Fields()["parameters"].([]any); !ok {
		t.Error("ClearParameters did not leave an empty list")
	}
}

func TestRunDisplay(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "run.md.json"), runJSON)
	run, err := NewRun(path)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	run.Display(&buf)
	for _, want := range []string{"Name: threshold", "Processed dataset: processeddataset.md.json", "level: 128", "iterations: 3"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("Display missing %q:\n%s", want, buf.String())
		}
	}
}
