package vm_test

import (
	"testing"

	"github.com/cwbudde/go-jsengine/internal/lexer"
	"github.com/cwbudde/go-jsengine/internal/parser"
	"github.com/cwbudde/go-jsengine/internal/vm"
)

func run(t *testing.T, src string) *vm.Cell {
	t.Helper()
	l := lexer.New(src)
	p := parser.New(l)
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("parse errors for %q: %v", src, errs)
	}

	g := vm.NewCodegen()
	chunk, err := g.Compile(program)
	if err != nil {
		t.Fatalf("Compile(%q): %v", src, err)
	}

	m := vm.New(1 << 16)
	cell, err := m.Run(chunk)
	if err != nil {
		t.Fatalf("Run(%q): %v", src, err)
	}
	return cell
}

func TestVMArithmeticPrecedence(t *testing.T) {
	if got := run(t, "1 + 2 * 3;").String(); got != "7" {
		t.Errorf("got %q, want %q", got, "7")
	}
}

func TestVMLetBindingsAndIdentifierLoads(t *testing.T) {
	if got := run(t, "let a = 1; let b = a + 1; b;").String(); got != "2" {
		t.Errorf("got %q, want %q", got, "2")
	}
}

func TestVMIfStatement(t *testing.T) {
	if got := run(t, "let a = 1; if (a < 2) { a = 10; } else { a = 20; } a;").String(); got != "10" {
		t.Errorf("got %q, want %q", got, "10")
	}
}

func TestVMIfStatementElseBranch(t *testing.T) {
	if got := run(t, "let a = 5; if (a < 2) { a = 10; } else { a = 20; } a;").String(); got != "20" {
		t.Errorf("got %q, want %q", got, "20")
	}
}

func TestVMForLoopSum(t *testing.T) {
	if got := run(t, "let s = 0; for (let i = 0; i < 5; i = i + 1) { s = s + i; } s;").String(); got != "10" {
		t.Errorf("got %q, want %q", got, "10")
	}
}

func TestVMForLoopBreak(t *testing.T) {
	if got := run(t, "let s = 0; for (let i = 0; i < 10; i = i + 1) { if (i === 3) { break; } s = s + i; } s;").String(); got != "3" {
		t.Errorf("got %q, want %q", got, "3")
	}
}

func TestVMForLoopContinue(t *testing.T) {
	if got := run(t, "let s = 0; for (let i = 0; i < 5; i = i + 1) { if (i === 2) { continue; } s = s + i; } s;").String(); got != "8" {
		t.Errorf("got %q, want %q", got, "8")
	}
}

func TestVMStringConcatenation(t *testing.T) {
	if got := run(t, `"foo" + "bar";`).String(); got != "foobar" {
		t.Errorf("got %q, want %q", got, "foobar")
	}
}

func TestVMTypeOf(t *testing.T) {
	if got := run(t, `typeof "x";`).String(); got != "string" {
		t.Errorf("got %q, want %q", got, "string")
	}
}

func TestVMHeapExhaustionSurfacesRangeError(t *testing.T) {
	// A single page (512 cells) is far fewer than the allocations a
	// 2000-iteration loop performs (one Number cell per LdaSmi/Add), so this
	// deterministically exhausts the arena rather than racing on heap size.
	src := "let s = 0; for (let i = 0; i < 2000; i = i + 1) { s = s + i; } s;"

	l := lexer.New(src)
	p := parser.New(l)
	program := p.ParseProgram()
	g := vm.NewCodegen()
	chunk, err := g.Compile(program)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	m := vm.New(0) // rounds up to exactly one page.
	_, err = m.Run(chunk)
	if err == nil {
		t.Fatal("expected heap exhaustion, got nil error")
	}
	verr, ok := err.(*vm.VMError)
	if !ok {
		t.Fatalf("error %v is not a *vm.VMError", err)
	}
	if verr.Kind != vm.ErrRange {
		t.Errorf("Kind = %v, want ErrRange", verr.Kind)
	}
}
