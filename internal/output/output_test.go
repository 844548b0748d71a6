package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestPrinter_JSON_Success(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false)

	if err := printer.Success(map[string]any{"weekday": "Monday", "emoji": "☕"}); err != nil {
		t.Fatalf("Success() error = %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, buf.String())
	}
	if result["weekday"] != "Monday" {
		t.Errorf("weekday = %v, want %q", result["weekday"], "Monday")
	}
	if result["emoji"] != "☕" {
		t.Errorf("emoji = %v, want %q", result["emoji"], "☕")
	}
}

func TestPrinter_JSON_ErrorWithHint(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false)

	printer.Error(NewDependencyError("required template engine is not available", "reinstall readmegen", nil))

	var result struct {
		Error string `json:"error"`
		Code  int    `json:"code"`
		Hint  string `json:"hint"`
	}
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, buf.String())
	}
	if result.Code != ExitMissingDependency {
		t.Errorf("code = %d, want %d", result.Code, ExitMissingDependency)
	}
	if result.Hint != "reinstall readmegen" {
		t.Errorf("hint = %q", result.Hint)
	}
}

func TestPrinter_Human_Success(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	if err := printer.Success(map[string]any{"message": "Rendered README.md with weekday: Monday"}); err != nil {
		t.Fatalf("Success() error = %v", err)
	}
	if buf.String() != "Rendered README.md with weekday: Monday\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestPrinter_Human_ErrorGoesToStderr(t *testing.T) {
	var out, errOut bytes.Buffer
	printer := NewPrinter(&out, false, false).WithStderr(&errOut)

	printer.Error(&ExitError{Code: ExitUserError, Message: "template not found at /tmp/README.md.j2", Hint: "create the template"})

	if out.Len() != 0 {
		t.Errorf("stdout should be empty, got %q", out.String())
	}
	got := errOut.String()
	if !strings.Contains(got, "Error: template not found at /tmp/README.md.j2") {
		t.Errorf("stderr = %q", got)
	}
	if !strings.Contains(got, "hint: create the template") {
		t.Errorf("stderr should contain hint: %q", got)
	}
}

func TestPrinter_Warn(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false, false).Warn("output %s is unchanged", "README.md")
	if !strings.Contains(buf.String(), "Warning: output README.md is unchanged") {
		t.Errorf("output = %q", buf.String())
	}

	buf.Reset()
	NewPrinter(&buf, true, false).Warn("dirty")
	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v", err)
	}
	if result["warning"] != "dirty" {
		t.Errorf("warning = %v", result["warning"])
	}
}

func TestPrinter_KeyValue(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false, false).KeyValue("Weekday", "Friday")
	if buf.String() != "Weekday: Friday\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestPrinter_Table(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false, false).Table(
		[]string{"Season", "Start"},
		[][]string{{"holiday", "2025-12-01"}, {"bunny", "2025-04-03"}},
	)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %q", len(lines), buf.String())
	}
	if lines[0] != "Season   Start" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[2] != "bunny    2025-04-03" {
		t.Errorf("row = %q", lines[2])
	}
}

func TestPrinter_Box_Plain(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false, false).Box("README.md", "Hello")
	if buf.String() != "README.md\n\nHello\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestPrinter_Section_Plain(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false, false).Section("RUNTIME")
	if buf.String() != "\nRUNTIME\n───────\n" {
		t.Errorf("output = %q", buf.String())
	}
}
