// Package interp implements the tree-walking evaluator: a lexically scoped
// interpreter over internal/ast, with JS-style type coercion, prototype
// chain lookups, and return/break/continue propagated as in-band control
// values (§4.3, §9).
package interp

import (
	"fmt"

	"github.com/cwbudde/go-jsengine/internal/ast"
	"github.com/cwbudde/go-jsengine/internal/runtime"
)

// scopeKind tags whether a block being evaluated is inside a function body,
// so that `return` can be rejected outside one (§4.3).
type scopeKind int

const (
	scopeBlock scopeKind = iota
	scopeFunction
)

// Context bundles the lexical scope chain (HandleScope) with the host
// Global bindings (console, built-ins), matching §3's Context/Global split.
type Context struct {
	Scope  *runtime.Scope
	Global *runtime.Object
}

// NewContext creates an empty Context with a fresh root scope and global
// object. Host APIs (pkg/jsengine) populate Global with built-ins.
func NewContext() *Context {
	return &Context{Scope: runtime.NewScope(), Global: runtime.NewObject()}
}

// Interpreter evaluates a Program against a Context, tracking the current
// `this` receiver as a mutable field updated by member-expression
// evaluation (§9: "the interpreter tracks a mutable current-receiver field,
// updated on member-expression evaluation").
type Interpreter struct {
	ctx  *Context
	this *runtime.Object
}

// New creates an Interpreter bound to ctx, with `this` initialized to a
// fresh empty object (the program-level receiver).
func New(ctx *Context) *Interpreter {
	return &Interpreter{ctx: ctx, this: runtime.NewObject()}
}

// Run evaluates every statement in program in order and returns the value
// of the last statement executed, or the unwrapped value of an early
// Return.
func (in *Interpreter) Run(program *ast.Program) (runtime.Value, error) {
	var result runtime.Value
	for _, stmt := range program.Statements {
		v, err := in.evalStatement(stmt, scopeBlock)
		if err != nil {
			return runtime.Undefined(), err
		}
		if v.Kind == runtime.KindReturn {
			return v.Wrapped, nil
		}
		result = v
	}
	return result, nil
}

// CallFunction invokes fn (a Function or BuiltinFunc value) with the given
// receiver and arguments, satisfying runtime.Caller so host builtins can
// call back into user code (e.g. an Array.prototype-style callback).
func (in *Interpreter) CallFunction(fn runtime.Value, this *runtime.Object, args []runtime.Value) (runtime.Value, error) {
	switch fn.Kind {
	case runtime.KindBuiltin:
		return fn.Builtin(in, this, args)
	case runtime.KindFunction:
		return in.callUserFunction(fn.Fn, this, args)
	default:
		return runtime.Undefined(), fmt.Errorf("TypeError: value is not a function")
	}
}

func (in *Interpreter) callUserFunction(fn *runtime.Function, this *runtime.Object, args []runtime.Value) (runtime.Value, error) {
	savedScope := in.ctx.Scope
	savedThis := in.this

	in.ctx.Scope = fn.Closure.Clone()
	in.ctx.Scope.Push()
	if this != nil {
		in.this = this
	}

	for i, param := range fn.Parameters {
		var argVal runtime.Value
		switch {
		case i < len(args):
			argVal = args[i]
		case param.Default != nil:
			v, err := in.evalExpression(param.Default)
			if err != nil {
				in.ctx.Scope = savedScope
				in.this = savedThis
				return runtime.Undefined(), err
			}
			argVal = v
		default:
			argVal = runtime.Undefined()
		}
		in.ctx.Scope.Declare(param.Name.Value, runtime.KindLet, argVal)
	}

	result, err := in.evalBlockStatement(fn.Body, scopeFunction)

	in.ctx.Scope.Pop()
	in.ctx.Scope = savedScope
	in.this = savedThis

	if err != nil {
		return runtime.Undefined(), err
	}
	if result.Kind == runtime.KindReturn {
		return result.Wrapped, nil
	}
	return runtime.Undefined(), nil
}
