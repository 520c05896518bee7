package output

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"gopkg.in/yaml.v3"
)

// captureStdout runs fn with os.Stdout redirected and returns what it wrote.
func captureStdout(t *testing.T, fn func() error) string {
	t.Helper()
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := fn()
	w.Close()
	os.Stdout = old

	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestPrintYAML(t *testing.T) {
	result := PerformResult{OK: true, Pattern: "alignment", PerformanceTime: "now"}

	output := captureStdout(t, func() error { return PrintYAML(result) })

	// YAML output should be multi-line
	if bytes.Count([]byte(output), []byte("\n")) <= 1 {
		t.Errorf("YAML output should be multi-line, got:\n%s", output)
	}

	var decoded PerformResult
	if err := yaml.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded != result {
		t.Errorf("decoded %+v, want %+v", decoded, result)
	}
}

func TestPrintJSON_Compact(t *testing.T) {
	result := SupportResult{Supported: true, Server: "ws://localhost:8080/ws"}

	output := captureStdout(t, func() error { return PrintJSON(result) })

	// Compact output should be a single line (plus newline from Encode)
	if bytes.Count([]byte(output), []byte("\n")) > 1 {
		t.Errorf("compact output should be single line, got:\n%s", output)
	}

	var decoded SupportResult
	if err := json.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded != result {
		t.Errorf("decoded %+v, want %+v", decoded, result)
	}
}

func TestPrintJSON_Pretty(t *testing.T) {
	output := captureStdout(t, func() error {
		return PrintPrettyJSON(VocabularyResult{Patterns: []VocabularyEntry{{Name: "generic", Wire: 2}}})
	})
	if bytes.Count([]byte(output), []byte("\n")) <= 1 {
		t.Errorf("pretty output should be multi-line, got:\n%s", output)
	}
}

func TestPrint_UsesOutputFormat(t *testing.T) {
	oldFormat := OutputFormat
	defer func() { OutputFormat = oldFormat }()

	OutputFormat = FormatJSON
	output := captureStdout(t, func() error { return Print(SupportResult{Supported: false}) })
	if output != "{\"supported\":false}\n" {
		t.Errorf("json output = %q", output)
	}

	OutputFormat = FormatYAML
	output = captureStdout(t, func() error { return Print(SupportResult{Supported: false}) })
	if output != "supported: false\n" {
		t.Errorf("yaml output = %q", output)
	}

	OutputFormat = "xml"
	if err := Print(SupportResult{}); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestPerformResult_OmitEmptyError(t *testing.T) {
	data, err := yaml.Marshal(PerformResult{OK: true, Pattern: "generic", PerformanceTime: "default"})
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if _, ok := m["error"]; ok {
		t.Error("empty error should be omitted")
	}
	if _, ok := m["ok"]; !ok {
		t.Error("ok should always be present")
	}
}
