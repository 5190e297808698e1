// Package jsengine is the host-embeddable façade over the lexer, parser,
// and interpreter: Isolate owns a Context, Context owns a Global and a
// lexical scope, and Script compiles source into a bound AST that can be
// run repeatedly (§4.5).
package jsengine

import (
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/go-jsengine/internal/ast"
	"github.com/cwbudde/go-jsengine/internal/interp"
	"github.com/cwbudde/go-jsengine/internal/lexer"
	"github.com/cwbudde/go-jsengine/internal/parser"
	"github.com/cwbudde/go-jsengine/internal/runtime"
)

// Isolate is the top-level handle a host program creates once; it owns
// exactly one Context in this engine (the spec does not require multiple
// isolated heaps per process).
type Isolate struct {
	ctx *Context
}

// NewIsolate creates an Isolate with a fresh Context, writing console
// output to out.
func NewIsolate(out io.Writer) *Isolate {
	return &Isolate{ctx: NewContext(out)}
}

// Context returns the isolate's single Context.
func (iso *Isolate) Context() *Context { return iso.ctx }

// Context bundles a lexical scope chain with a Global object populated with
// host built-ins (console, Array), matching §3's Context/Global split and
// §4.5's Host API description.
type Context struct {
	interp *interp.Interpreter
	global *runtime.Object
	out    io.Writer
}

// NewContext creates a Context with a fresh Global installed per §4.5:
// console.{log,debug,warn} and a built-in Array object carrying an empty
// prototype.
func NewContext(out io.Writer) *Context {
	if out == nil {
		out = os.Stdout
	}
	ic := interp.NewContext()
	c := &Context{interp: interp.New(ic), global: ic.Global, out: out}
	installGlobals(c)
	return c
}

// Global exposes the Context's Global object, e.g. so a host can register
// additional native bindings before running a Script.
func (c *Context) Global() *runtime.Object { return c.global }

func installGlobals(c *Context) {
	console := runtime.NewObject()
	console.Set("log", runtime.Builtin(c.consoleWrite("")))
	console.Set("debug", runtime.Builtin(c.consoleWrite("[debug] ")))
	console.Set("warn", runtime.Builtin(c.consoleWrite("[warn] ")))
	c.global.Set("console", runtime.Obj(console))

	arrayProto := runtime.NewObject()
	arrayCtor := runtime.NewObject()
	arrayCtor.Set("prototype", runtime.Obj(arrayProto))
	c.global.Set("Array", runtime.Obj(arrayCtor))

	// String has no primitive-wrapper prototype chain to hang instance
	// methods off (member access requires a KindObject receiver, and string
	// literals are KindString), so toLowerCase/toUpperCase are exposed as
	// static functions on the String namespace object, called as
	// String.toLowerCase(s) rather than s.toLowerCase().
	stringCtor := runtime.NewObject()
	stringCtor.Set("toLowerCase", runtime.Builtin(stringCase(runtime.ToLowerCase)))
	stringCtor.Set("toUpperCase", runtime.Builtin(stringCase(runtime.ToUpperCase)))
	c.global.Set("String", runtime.Obj(stringCtor))
}

// stringCase adapts a case-folding function from internal/runtime into a
// BuiltinFunc callable as `String.toLowerCase(s)`/`String.toUpperCase(s)`,
// folding the first argument's string representation.
func stringCase(fold func(string) string) runtime.BuiltinFunc {
	return func(_ runtime.Caller, _ *runtime.Object, args []runtime.Value) (runtime.Value, error) {
		if len(args) == 0 {
			return runtime.String(fold("")), nil
		}
		return runtime.String(fold(runtime.ToString(args[0]))), nil
	}
}

// consoleWrite builds a BuiltinFunc that prints its arguments space
// separated, prefixed by prefix, matching §4.5's "prints arguments
// separated by spaces".
func (c *Context) consoleWrite(prefix string) runtime.BuiltinFunc {
	return func(_ runtime.Caller, _ *runtime.Object, args []runtime.Value) (runtime.Value, error) {
		fmt.Fprint(c.out, prefix)
		for i, a := range args {
			if i > 0 {
				fmt.Fprint(c.out, " ")
			}
			fmt.Fprint(c.out, a.String())
		}
		fmt.Fprintln(c.out)
		return runtime.Undefined(), nil
	}
}

// Script is source compiled into an AST bound to a Context; Run executes
// it via the tree-walking interpreter and returns the value of its last
// statement (§4.5).
type Script struct {
	ctx     *Context
	program *ast.Program
}

// Compile lexes and parses source, returning a Script bound to ctx. Parser
// diagnostics are joined into a single error, mirroring §7's "parser
// errors print a diagnostic and stop the enclosing parse_program loop;
// already-parsed statements are retained" — Compile still returns the
// partial Script alongside the error so a caller may inspect what parsed.
func Compile(ctx *Context, filename, src string) (*Script, error) {
	l := lexer.New(src)
	p := parser.New(l)
	program := p.ParseProgram()

	script := &Script{ctx: ctx, program: program}
	if errs := p.Errors(); len(errs) > 0 {
		return script, &CompileError{Filename: filename, Errors: errs}
	}
	return script, nil
}

// Run executes the compiled program against the Script's Context.
func (s *Script) Run() (runtime.Value, error) {
	return s.ctx.interp.Run(s.program)
}

// CompileError wraps one or more parser diagnostics under a single error
// value, tagged with the source file they came from (§7: Syntax errors).
type CompileError struct {
	Filename string
	Errors   []parser.Error
}

func (e *CompileError) Error() string {
	msg := fmt.Sprintf("%s: %d parse error(s)", e.Filename, len(e.Errors))
	for _, pe := range e.Errors {
		msg += "\n  " + pe.Error()
	}
	return msg
}
