package jsengine

import (
	"bytes"
	"strings"
	"testing"
)

func TestScriptRunReturnsLastStatementValue(t *testing.T) {
	ctx := NewContext(nil)
	script, err := Compile(ctx, "<test>", "let a = 1; let b = a + 1; b;")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	v, err := script.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if v.Number != 2 {
		t.Errorf("got %v, want 2", v.Number)
	}
}

func TestConsoleLogWritesToContextWriter(t *testing.T) {
	var buf bytes.Buffer
	ctx := NewContext(&buf)
	script, err := Compile(ctx, "<test>", `console.log("hello", 1, true);`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if _, err := script.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "hello 1 true" {
		t.Errorf("got %q, want %q", got, "hello 1 true")
	}
}

func TestCompileErrorRetainsPartialProgram(t *testing.T) {
	ctx := NewContext(nil)
	script, err := Compile(ctx, "<test>", "let a = 1; let = ;")
	if err == nil {
		t.Fatal("expected a compile error")
	}
	if _, ok := err.(*CompileError); !ok {
		t.Fatalf("got %T, want *CompileError", err)
	}
	if script == nil || len(script.program.Statements) != 1 {
		t.Errorf("expected the partial Script to keep the 1 statement parsed before the error")
	}
}

func TestArrayGlobalHasPrototype(t *testing.T) {
	ctx := NewContext(nil)
	script, err := Compile(ctx, "<test>", "typeof Array.prototype;")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	v, err := script.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if v.Str != "object" {
		t.Errorf("got %q, want %q", v.Str, "object")
	}
}

func TestStringCaseFolding(t *testing.T) {
	ctx := NewContext(nil)
	script, err := Compile(ctx, "<test>", `String.toUpperCase("Café") + " " + String.toLowerCase("HELLO");`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	v, err := script.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if want := "CAFÉ hello"; v.Str != want {
		t.Errorf("got %q, want %q", v.Str, want)
	}
}
