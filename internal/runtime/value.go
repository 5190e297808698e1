// Package runtime holds the value model, coercion rules, object model, and
// lexical scope chain shared by the tree-walking interpreter. The bytecode
// VM in internal/vm has its own heap-allocated cell representation and its
// own arithmetic and comparison rules; it does not use this package's
// coercion helpers.
package runtime

import (
	"fmt"
	"strconv"

	"github.com/cwbudde/go-jsengine/internal/ast"
)

// Kind tags the variant held by a Value.
type Kind int

const (
	KindUndefined Kind = iota
	KindNull
	KindBoolean
	KindNumber
	KindString
	KindObject
	KindFunction
	KindBuiltin
	// Control-flow sentinels: produced by statement evaluation, consumed by
	// the nearest enclosing construct that understands them (§9 "in-band
	// control signals").
	KindReturn
	KindBreak
	KindContinue
)

// BuiltinFunc is a host-implemented callback reachable from script code
// (e.g. console.log).
type BuiltinFunc func(interp Caller, this *Object, args []Value) (Value, error)

// Caller is the minimal surface the runtime package needs from the
// interpreter to let a builtin invoke back into user code (used by
// Array.prototype-style callbacks). Defined here to avoid an import cycle
// with package interp.
type Caller interface {
	CallFunction(fn Value, this *Object, args []Value) (Value, error)
}

// Value is a tagged union over every runtime value the interpreter can
// produce. Only the field matching Kind is meaningful.
type Value struct {
	Kind    Kind
	Boolean bool
	Number  float64
	Str     string
	Object  *Object
	Fn      *Function
	Builtin BuiltinFunc
	Wrapped Value // for Return: the wrapped result value
}

// Function is a user-defined closure: its parameter list, body, and the
// lexical scope it closed over at definition time.
type Function struct {
	Name       string
	Parameters []ast.Parameter
	Body       *ast.BlockStatement
	Closure    *Scope
}

func Undefined() Value                { return Value{Kind: KindUndefined} }
func Null() Value                     { return Value{Kind: KindNull} }
func Bool(b bool) Value               { return Value{Kind: KindBoolean, Boolean: b} }
func Number(n float64) Value          { return Value{Kind: KindNumber, Number: n} }
func String(s string) Value           { return Value{Kind: KindString, Str: s} }
func Obj(o *Object) Value             { return Value{Kind: KindObject, Object: o} }
func Fn(f *Function) Value            { return Value{Kind: KindFunction, Fn: f} }
func Builtin(b BuiltinFunc) Value     { return Value{Kind: KindBuiltin, Builtin: b} }
func Return(v Value) Value            { return Value{Kind: KindReturn, Wrapped: v} }
func BreakSignal() Value              { return Value{Kind: KindBreak} }
func ContinueSignal() Value           { return Value{Kind: KindContinue} }

// IsControlSignal reports whether v is a Return/Break/Continue sentinel
// that must short-circuit the enclosing block rather than be treated as an
// ordinary expression result.
func (v Value) IsControlSignal() bool {
	return v.Kind == KindReturn || v.Kind == KindBreak || v.Kind == KindContinue
}

// TypeOf implements the `typeof` operator's string tags.
func (v Value) TypeOf() string {
	switch v.Kind {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "object" // JS quirk: typeof null === "object"; kept for fidelity.
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindFunction, KindBuiltin:
		return "function"
	case KindObject:
		return "object"
	default:
		return "undefined"
	}
}

// String renders v for printing (console.log, REPL echo).
func (v Value) String() string {
	switch v.Kind {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBoolean:
		if v.Boolean {
			return "true"
		}
		return "false"
	case KindNumber:
		return formatNumber(v.Number)
	case KindString:
		return v.Str
	case KindObject:
		return v.Object.String()
	case KindFunction:
		if v.Fn.Name != "" {
			return fmt.Sprintf("function %s() { ... }", v.Fn.Name)
		}
		return "function () { ... }"
	case KindBuiltin:
		return "function () { [native code] }"
	default:
		return ""
	}
}

func formatNumber(n float64) string {
	if n != n {
		return "NaN"
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}

// StrictEquals implements `===`: types must match, and objects/functions
// compare by identity.
func StrictEquals(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindUndefined, KindNull:
		return true
	case KindBoolean:
		return a.Boolean == b.Boolean
	case KindNumber:
		return a.Number == b.Number
	case KindString:
		return a.Str == b.Str
	case KindObject:
		return a.Object == b.Object
	case KindFunction:
		return a.Fn == b.Fn
	case KindBuiltin:
		return &a.Builtin == &b.Builtin
	default:
		return false
	}
}

// LooseEquals implements `==` with the coercions this engine supports:
// null and undefined compare equal to each other and nothing else; numbers
// and strings coerce to number before comparing; booleans coerce to number.
func LooseEquals(a, b Value) bool {
	if a.Kind == b.Kind {
		return StrictEquals(a, b)
	}
	if (a.Kind == KindNull || a.Kind == KindUndefined) && (b.Kind == KindNull || b.Kind == KindUndefined) {
		return true
	}
	if a.Kind == KindNull || a.Kind == KindUndefined || b.Kind == KindNull || b.Kind == KindUndefined {
		return false
	}
	return ToNumber(a) == ToNumber(b)
}
