package interp

import (
	"testing"

	"github.com/cwbudde/go-jsengine/internal/lexer"
	"github.com/cwbudde/go-jsengine/internal/parser"
	"github.com/cwbudde/go-jsengine/internal/runtime"
	"github.com/gkampitakis/go-snaps/snaps"
)

func run(t *testing.T, src string) runtime.Value {
	t.Helper()
	l := lexer.New(src)
	p := parser.New(l)
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("parse errors for %q: %v", src, errs)
	}
	in := New(NewContext())
	v, err := in.Run(program)
	if err != nil {
		t.Fatalf("eval error for %q: %v", src, err)
	}
	return v
}

func TestArithmeticPrecedence(t *testing.T) {
	v := run(t, "1 + 2 * 3;")
	if v.Number != 7 {
		t.Errorf("got %v, want 7", v.Number)
	}
}

func TestRightAssociativePower(t *testing.T) {
	v := run(t, "2 ** 3 ** 2;")
	if v.Number != 512 {
		t.Errorf("got %v, want 512", v.Number)
	}
}

func TestLetConstScoping(t *testing.T) {
	v := run(t, `
		let total = 0;
		for (let i = 0; i < 5; i = i + 1) {
			total = total + i;
		}
		total;
	`)
	if v.Number != 10 {
		t.Errorf("got %v, want 10", v.Number)
	}
}

func TestConstReassignmentErrors(t *testing.T) {
	l := lexer.New("const x = 1; x = 2;")
	p := parser.New(l)
	program := p.ParseProgram()
	in := New(NewContext())
	_, err := in.Run(program)
	if err == nil {
		t.Fatal("expected error reassigning const")
	}
}

func TestFunctionDefaultParameters(t *testing.T) {
	v := run(t, `
		function greet(name, greeting = "hello") {
			return greeting + " " + name;
		}
		greet("world");
	`)
	if v.Str != "hello world" {
		t.Errorf("got %q, want %q", v.Str, "hello world")
	}
}

func TestThisBindingOnMethodCall(t *testing.T) {
	v := run(t, `
		let o = {
			value: 41,
			bump: function() { return this.value + 1; }
		};
		o.bump();
	`)
	if v.Number != 42 {
		t.Errorf("got %v, want 42", v.Number)
	}
}

func TestSwitchFallthroughAfterMatch(t *testing.T) {
	v := run(t, `
		function label(n) {
			switch (n) {
			case 1:
			case 2:
				return "small";
			default:
				return "large";
			}
		}
		label(2);
	`)
	if v.Str != "small" {
		t.Errorf("got %q, want %q", v.Str, "small")
	}
}

func TestTypeofOperator(t *testing.T) {
	cases := map[string]string{
		"typeof 1;":           "number",
		"typeof 'x';":         "string",
		"typeof true;":        "boolean",
		"typeof undefined;":   "undefined",
		"typeof null;":        "object",
		"typeof {};":          "object",
		"typeof function(){}": "function",
	}
	for src, want := range cases {
		v := run(t, src)
		if v.Str != want {
			t.Errorf("%s => %q, want %q", src, v.Str, want)
		}
	}
}

func TestClosureCapturesEnclosingScope(t *testing.T) {
	v := run(t, `
		function makeCounter() {
			let count = 0;
			return function() {
				count = count + 1;
				return count;
			};
		}
		let counter = makeCounter();
		counter();
		counter();
		counter();
	`)
	if v.Number != 3 {
		t.Errorf("got %v, want 3", v.Number)
	}
}

func TestBreakAndContinueInLoop(t *testing.T) {
	v := run(t, `
		let sum = 0;
		for (let i = 0; i < 10; i = i + 1) {
			if (i == 5) { break; }
			if (i % 2 == 0) { continue; }
			sum = sum + i;
		}
		sum;
	`)
	if v.Number != 4 {
		t.Errorf("got %v, want 4 (1+3)", v.Number)
	}
}

func TestPrototypeChainPropertyLookup(t *testing.T) {
	v := run(t, `
		let base = { greet: function() { return "hi"; } };
		let child = {};
		child.__proto__ = base;
		child.greet();
	`)
	if v.Str != "hi" {
		t.Errorf("got %q, want %q", v.Str, "hi")
	}
}

func TestUndeclaredAssignmentCreatesImplicitVar(t *testing.T) {
	l := lexer.New("x = 10; x;")
	p := parser.New(l)
	program := p.ParseProgram()
	in := New(NewContext())
	v, err := in.Run(program)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Number != 10 {
		t.Errorf("got %v, want 10", v.Number)
	}
}

// TestEndToEndScenarios snapshots a handful of small programs end-to-end,
// exercising the lexer, parser, and interpreter together the way the
// spec's worked examples do.
func TestEndToEndScenarios(t *testing.T) {
	scenarios := map[string]string{
		"fibonacci": `
			function fib(n) {
				if (n < 2) { return n; }
				return fib(n - 1) + fib(n - 2);
			}
			fib(10);
		`,
		"array_like_object": `
			let arr = [1, 2, 3];
			arr.length;
		`,
		"nullish_coalescing": `
			let a = null;
			let b = a ?? "fallback";
			b;
		`,
	}
	for name, src := range scenarios {
		v := run(t, src)
		snaps.MatchSnapshot(t, name, v.String())
	}
}
