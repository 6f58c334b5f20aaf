package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"
)

func TestFormatJSON(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
	}{
		{
			name:  "simple map",
			input: map[string]string{"key": "value"},
		},
		{
			name:  "empty map",
			input: map[string]string{},
		},
		{
			name:  "array",
			input: []string{"a", "b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatJSON(tt.input)
			if err != nil {
				t.Fatalf("formatJSON() error = %v", err)
			}

			// Verify it's valid JSON
			var v interface{}
			if err := json.Unmarshal([]byte(got), &v); err != nil {
				t.Errorf("formatJSON() produced invalid JSON: %v", err)
			}
		})
	}
}

func TestFormatError(t *testing.T) {
	err := os.ErrNotExist
	got := formatError(err)
	if got == "" {
		t.Error("formatError() returned empty string")
	}
	if !contains(got, "Error:") {
		t.Errorf("formatError() = %q, expected to contain 'Error:'", got)
	}
}

func TestOutputJSON(t *testing.T) {
	data := map[string]string{"test": "value"}

	var buf bytes.Buffer
	if err := outputJSON(&buf, data); err != nil {
		t.Fatalf("outputJSON() error = %v", err)
	}

	// Verify it's valid JSON
	var v interface{}
	if err := json.Unmarshal(buf.Bytes(), &v); err != nil {
		t.Errorf("outputJSON() produced invalid JSON: %v", err)
	}
}

func TestPrintFunctions(t *testing.T) {
	// Capture stdout/stderr
	oldStdout := os.Stdout
	oldStderr := os.Stderr
	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()
	os.Stdout = wOut
	os.Stderr = wErr

	PrintSuccess("Success message")
	PrintWarning("Warning message")
	PrintError("Error message")
	PrintInfo("Info message")

	_ = wOut.Close()
	_ = wErr.Close()
	os.Stdout = oldStdout
	os.Stderr = oldStderr

	var bufOut, bufErr bytes.Buffer
	_, _ = bufOut.ReadFrom(rOut)
	_, _ = bufErr.ReadFrom(rErr)

	if bufOut.String() == "" {
		t.Error("PrintSuccess/PrintInfo should write to stdout")
	}
	if bufErr.String() == "" {
		t.Error("PrintError should write to stderr")
	}
}
