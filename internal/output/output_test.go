package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestPrinter_JSON_Success(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false)

	data := map[string]any{
		"output":  "include/version.h",
		"written": true,
	}

	if err := printer.Success(data); err != nil {
		t.Fatalf("Success() error = %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, buf.String())
	}

	if result["output"] != "include/version.h" {
		t.Errorf("output = %v, want %q", result["output"], "include/version.h")
	}
	if result["written"] != true {
		t.Errorf("written = %v, want true", result["written"])
	}
}

func TestPrinter_JSON_Error(t *testing.T) {
	var buf bytes.Buffer
	var errBuf bytes.Buffer
	printer := NewPrinter(&buf, true, false).WithStderr(&errBuf)

	printer.Error(NewUserError("path not found: base.h"))

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, buf.String())
	}

	if result["error"] != "path not found: base.h" {
		t.Errorf("error = %v, want %q", result["error"], "path not found: base.h")
	}
	if code, ok := result["code"].(float64); !ok || int(code) != ExitUserError {
		t.Errorf("code = %v, want %d", result["code"], ExitUserError)
	}
	if errBuf.Len() != 0 {
		t.Errorf("JSON errors should not go to stderr, got %q", errBuf.String())
	}
}

func TestPrinter_Human_SuccessIsSilent(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	if err := printer.Success(map[string]any{"written": false}); err != nil {
		t.Fatalf("Success() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("human Success should print nothing, got %q", buf.String())
	}
}

func TestPrinter_WriteJSON(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false)

	data := map[string]any{"fallback": true, "error": "not a git repository root: /src", "code": ExitUserError}
	if err := printer.WriteJSON(data); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, buf.String())
	}
	if result["fallback"] != true || result["error"] != "not a git repository root: /src" {
		t.Errorf("result = %v", result)
	}
	if code, ok := result["code"].(float64); !ok || int(code) != ExitUserError {
		t.Errorf("code = %v, want %d", result["code"], ExitUserError)
	}
}

func TestPrinter_Stderr(t *testing.T) {
	var out, errBuf bytes.Buffer
	printer := NewPrinter(&out, false, false).WithStderr(&errBuf)

	printer.Stderr("hint: %s\n", "pass the repository root")

	if out.Len() != 0 {
		t.Errorf("Stderr should not write to stdout, got %q", out.String())
	}
	if got := errBuf.String(); got != "hint: pass the repository root\n" {
		t.Errorf("stderr = %q", got)
	}

	errBuf.Reset()
	NewPrinter(&out, true, false).WithStderr(&errBuf).Stderr("hint\n")
	if out.Len() != 0 || errBuf.Len() != 0 {
		t.Errorf("Stderr should be silent in JSON mode, got %q / %q", out.String(), errBuf.String())
	}
}

func TestPrinter_Human_Error(t *testing.T) {
	var out bytes.Buffer
	var errBuf bytes.Buffer
	printer := NewPrinter(&out, false, false).WithStderr(&errBuf)

	printer.Error(NewSystemErrorWithCause("failed to write output.h", errors.New("permission denied")))

	if out.Len() != 0 {
		t.Errorf("human errors should not go to stdout, got %q", out.String())
	}
	got := errBuf.String()
	if !strings.HasPrefix(got, "Error: ") {
		t.Errorf("output should start with 'Error: ': %q", got)
	}
	if !strings.Contains(got, "failed to write output.h: permission denied") {
		t.Errorf("output should contain message and cause: %q", got)
	}
}

func TestPrinter_Human_ErrorUntyped(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Error(errors.New("accepts 2 arg(s), received 1"))

	if !strings.Contains(buf.String(), "accepts 2 arg(s), received 1") {
		t.Errorf("output should contain error message: %q", buf.String())
	}
}

func TestPrinter_IsJSON(t *testing.T) {
	var buf bytes.Buffer

	if !NewPrinter(&buf, true, false).IsJSON() {
		t.Error("IsJSON() should return true for JSON printer")
	}
	if NewPrinter(&buf, false, false).IsJSON() {
		t.Error("IsJSON() should return false for human printer")
	}
}

func TestPrinter_Warn(t *testing.T) {
	t.Run("human", func(t *testing.T) {
		var buf bytes.Buffer
		printer := NewPrinter(&buf, false, false)

		printer.Warn("not a git repository root: %s", "/src/app")

		got := buf.String()
		if !strings.Contains(got, "Warning") || !strings.Contains(got, "/src/app") {
			t.Errorf("unexpected warning output: %q", got)
		}
	})

	t.Run("json drops warnings", func(t *testing.T) {
		var buf bytes.Buffer
		printer := NewPrinter(&buf, true, false)

		printer.Warn("not a git repository root: %s", "/src/app")

		if buf.Len() != 0 {
			t.Errorf("JSON mode should not print warnings, got %q", buf.String())
		}
	})
}

func TestPrinter_KeyValue(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Section("Stamp")
	printer.KeyValue("Hash", "09fff368d273878896277311ac4a01604eedc3ca")

	want := "Stamp\n─────\nHash: 09fff368d273878896277311ac4a01604eedc3ca\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestErrorJSON_Format(t *testing.T) {
	result := ErrorJSON("test error", ExitUserError)

	var parsed struct {
		Error string `json:"error"`
		Code  int    `json:"code"`
	}
	if err := json.Unmarshal(result, &parsed); err != nil {
		t.Fatalf("Failed to parse ErrorJSON output: %v", err)
	}

	if parsed.Error != "test error" {
		t.Errorf("error = %q, want %q", parsed.Error, "test error")
	}
	if parsed.Code != ExitUserError {
		t.Errorf("code = %d, want %d", parsed.Code, ExitUserError)
	}
}
