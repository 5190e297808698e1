package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunFileInterpreter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.js")
	if err := os.WriteFile(path, []byte(`console.log(1 + 2 * 3);`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var buf strings.Builder
	if err := RunFile(path, false, &buf); err != nil {
		t.Fatalf("RunFile: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "7" {
		t.Errorf("got %q, want %q", got, "7")
	}
}

func TestRunFileVM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.js")
	if err := os.WriteFile(path, []byte(`1 + 2 * 3;`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var buf strings.Builder
	if err := RunFile(path, true, &buf); err != nil {
		t.Fatalf("RunFile: %v", err)
	}
}

func TestRunREPLExitsOnExitCall(t *testing.T) {
	in := strings.NewReader("let a = 1;\na + 1;\nexit()\na + 100;\n")
	var out strings.Builder
	if err := RunREPL(false, in, &out); err != nil {
		t.Fatalf("RunREPL: %v", err)
	}
	if strings.Contains(out.String(), "101") {
		t.Errorf("exit() did not stop the REPL loop: %q", out.String())
	}
	if !strings.Contains(out.String(), "2") {
		t.Errorf("expected echoed result 2 in output, got %q", out.String())
	}
}

func TestRunREPLVMPrintCommands(t *testing.T) {
	in := strings.NewReader("1 + 2;\n%PrintIr()\n%PrintBytes()\n%PrintDump()\nexit()\n")
	var out strings.Builder
	if err := RunREPL(true, in, &out); err != nil {
		t.Fatalf("RunREPL: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "LdaSmi") {
		t.Errorf("expected %%PrintIr() output to mention LdaSmi, got %q", got)
	}
}

func TestRunREPLReportsRuntimeErrorsWithoutHalting(t *testing.T) {
	in := strings.NewReader("undefinedVariable;\n1 + 1;\nexit()\n")
	var out strings.Builder
	if err := RunREPL(false, in, &out); err != nil {
		t.Fatalf("RunREPL: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "ReferenceError") {
		t.Errorf("expected ReferenceError in output, got %q", got)
	}
	if !strings.Contains(got, "2") {
		t.Errorf("expected the REPL to keep accepting input after an error, got %q", got)
	}
}
