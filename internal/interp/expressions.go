package interp

import (
	"fmt"
	"math"

	"github.com/cwbudde/go-jsengine/internal/ast"
	"github.com/cwbudde/go-jsengine/internal/runtime"
)

func (in *Interpreter) evalExpression(expr ast.Expression) (runtime.Value, error) {
	switch e := expr.(type) {
	case *ast.NumberLiteral:
		return runtime.Number(e.Value), nil
	case *ast.BooleanLiteral:
		return runtime.Bool(e.Value), nil
	case *ast.StringLiteral:
		return runtime.String(e.Value), nil
	case *ast.NullLiteral:
		return runtime.Null(), nil
	case *ast.UndefinedLiteral:
		return runtime.Undefined(), nil
	case *ast.NaNLiteral:
		return runtime.Number(math.NaN()), nil
	case *ast.ThisExpression:
		return runtime.Obj(in.this), nil
	case *ast.Identifier:
		return in.evalIdentifier(e)
	case *ast.ObjectLiteral:
		return in.evalObjectLiteral(e)
	case *ast.ArrayLiteral:
		return in.evalArrayLiteral(e)
	case *ast.MemberExpression:
		return in.evalMemberExpression(e)
	case *ast.UnaryExpression:
		return in.evalUnaryExpression(e)
	case *ast.UpdateExpression:
		return in.evalUpdateExpression(e)
	case *ast.BinaryExpression:
		return in.evalBinaryExpression(e)
	case *ast.FunctionLiteral:
		return in.evalFunctionLiteral(e)
	case *ast.CallExpression:
		return in.evalCallExpression(e)
	default:
		return runtime.Undefined(), fmt.Errorf("SyntaxError: unsupported expression %T", expr)
	}
}

func (in *Interpreter) evalIdentifier(e *ast.Identifier) (runtime.Value, error) {
	if v, ok := in.ctx.Scope.Get(e.Value); ok {
		return v.Value, nil
	}
	if in.ctx.Global.Has(e.Value) {
		return in.ctx.Global.Get(e.Value), nil
	}
	return runtime.Undefined(), fmt.Errorf("ReferenceError: %s is not defined", e.Value)
}

func (in *Interpreter) evalObjectLiteral(e *ast.ObjectLiteral) (runtime.Value, error) {
	obj := runtime.NewObject()
	for _, prop := range e.Properties {
		v, err := in.evalExpression(prop.Value)
		if err != nil {
			return runtime.Undefined(), err
		}
		obj.Set(prop.Key.Value, v)
	}
	return runtime.Obj(obj), nil
}

// evalArrayLiteral models arrays as objects with numeric-string keys and a
// "length" property, matching §3's "plain objects with prototype chains"
// scope (no distinct array variant in the tree-walking path).
func (in *Interpreter) evalArrayLiteral(e *ast.ArrayLiteral) (runtime.Value, error) {
	obj := runtime.NewObject()
	for i, elem := range e.Elements {
		v, err := in.evalExpression(elem)
		if err != nil {
			return runtime.Undefined(), err
		}
		obj.Set(fmt.Sprintf("%d", i), v)
	}
	obj.Set("length", runtime.Number(float64(len(e.Elements))))
	return runtime.Obj(obj), nil
}

// evalMemberExpression reads obj.prop / obj[expr]. Reading a member updates
// the interpreter's current `this` to the object read from, so a
// subsequent Call on the resulting function receives the correct receiver
// (§4.3, §9).
func (in *Interpreter) evalMemberExpression(e *ast.MemberExpression) (runtime.Value, error) {
	objVal, err := in.evalExpression(e.Object)
	if err != nil {
		return runtime.Undefined(), err
	}
	if objVal.Kind != runtime.KindObject {
		return runtime.Undefined(), fmt.Errorf("TypeError: cannot read properties of %s", objVal.TypeOf())
	}

	var key string
	if e.Computed {
		propVal, err := in.evalExpression(e.Property)
		if err != nil {
			return runtime.Undefined(), err
		}
		key = runtime.ToString(propVal)
	} else {
		key = e.Property.(*ast.Identifier).Value
	}

	in.this = objVal.Object
	return objVal.Object.Get(key), nil
}

func (in *Interpreter) evalUnaryExpression(e *ast.UnaryExpression) (runtime.Value, error) {
	right, err := in.evalExpression(e.Right)
	if err != nil {
		return runtime.Undefined(), err
	}

	switch e.Operator {
	case "!":
		return runtime.Bool(!runtime.ToBoolean(right)), nil
	case "-":
		return runtime.Number(-runtime.ToNumber(right)), nil
	case "+":
		return runtime.Number(runtime.ToNumber(right)), nil
	case "~":
		return runtime.Number(float64(^runtime.ToInt64(right))), nil
	case "typeof":
		return runtime.String(right.TypeOf()), nil
	default:
		return runtime.Undefined(), fmt.Errorf("SyntaxError: unknown unary operator %q", e.Operator)
	}
}

func (in *Interpreter) evalUpdateExpression(e *ast.UpdateExpression) (runtime.Value, error) {
	v, ok := in.ctx.Scope.Get(e.Target.Value)
	if !ok {
		return runtime.Undefined(), fmt.Errorf("ReferenceError: %s is not defined", e.Target.Value)
	}
	old := runtime.ToNumber(v.Value)
	var next float64
	if e.Operator == "++" {
		next = old + 1
	} else {
		next = old - 1
	}
	if err := in.ctx.Scope.Assign(e.Target.Value, runtime.Number(next)); err != nil {
		return runtime.Undefined(), err
	}
	if e.Prefix {
		return runtime.Number(next), nil
	}
	return runtime.Number(old), nil
}

func (in *Interpreter) evalFunctionLiteral(e *ast.FunctionLiteral) (runtime.Value, error) {
	fn := &runtime.Function{
		Name:       e.Name,
		Parameters: e.Parameters,
		Body:       e.Body,
		Closure:    in.ctx.Scope.Clone(),
	}
	return runtime.Fn(fn), nil
}

func (in *Interpreter) evalCallExpression(e *ast.CallExpression) (runtime.Value, error) {
	// Evaluating a member-expression callee updates in.this to the object
	// the method was read from; evaluate it first so the call below sees
	// the right receiver (§4.3 scenario 7: `o.c()` receives `this == o`).
	savedThis := in.this
	callee, err := in.evalExpression(e.Callee)
	if err != nil {
		return runtime.Undefined(), err
	}
	receiver := in.this
	in.this = savedThis

	if callee.Kind != runtime.KindFunction && callee.Kind != runtime.KindBuiltin {
		return runtime.Undefined(), fmt.Errorf("TypeError: value is not a function")
	}

	args := make([]runtime.Value, len(e.Arguments))
	for i, a := range e.Arguments {
		v, err := in.evalExpression(a)
		if err != nil {
			return runtime.Undefined(), err
		}
		args[i] = v
	}

	return in.CallFunction(callee, receiver, args)
}
