package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeCongressWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Evento", "Fecha inicio", "Fecha fin", "Deadline"})
	f.SetSheetRow("Sheet1", "A2", &[]interface{}{"ICSE", "5/3/2025", "7/3/2025", ""})

	path := filepath.Join(t.TempDir(), "List_congreso.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCongresosThenCheck(t *testing.T) {
	input := writeCongressWorkbook(t)
	output := filepath.Join(t.TempDir(), "public", "congresses.json")

	_, logs, err := execute(t, "congresos", "-i", input, "-o", output, "--log-format", "json")
	if err != nil {
		t.Fatalf("congresos failed: %v\n%s", err, logs)
	}
	if !strings.Contains(logs, `"msg":"congresses written"`) || !strings.Contains(logs, `"run_id"`) {
		t.Errorf("unexpected logs: %s", logs)
	}
	if _, err := os.Stat(output); err != nil {
		t.Fatalf("output not written: %v", err)
	}

	out, _, err := execute(t, "check", "-i", output)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "Evento ") || lines[1] != strings.Repeat("-", 80) {
		t.Errorf("unexpected header:\n%s", out)
	}
	expected := "ICSE" + strings.Repeat(" ", 26) + " | 2025-03-05   | 2025-03-07   | null"
	if lines[2] != expected {
		t.Errorf("row = %q, expected %q", lines[2], expected)
	}
}

func TestRevistasMissingInput(t *testing.T) {
	dir := t.TempDir()

	_, logs, err := execute(t, "revistas", "-i", filepath.Join(dir, "none.xlsx"), "-o", filepath.Join(dir, "out.json"))
	if err == nil {
		t.Fatal("expected error for missing input")
	}
	if !strings.Contains(logs, "file not found") {
		t.Errorf("diagnostic missing from logs: %s", logs)
	}
}

func TestConvertRejectsArgs(t *testing.T) {
	if _, _, err := execute(t, "congresos", "extra"); err == nil {
		t.Error("expected error for positional argument")
	}
}
