package interp

import (
	"fmt"
	"math"

	"github.com/cwbudde/go-jsengine/internal/ast"
	"github.com/cwbudde/go-jsengine/internal/runtime"
)

func (in *Interpreter) evalBinaryExpression(e *ast.BinaryExpression) (runtime.Value, error) {
	if e.Operator == "=" {
		return in.evalAssignExpression(e)
	}

	// Short-circuit operators must not evaluate the right side eagerly.
	switch e.Operator {
	case "&&":
		left, err := in.evalExpression(e.Left)
		if err != nil {
			return runtime.Undefined(), err
		}
		if !runtime.ToBoolean(left) {
			return left, nil
		}
		return in.evalExpression(e.Right)
	case "||":
		left, err := in.evalExpression(e.Left)
		if err != nil {
			return runtime.Undefined(), err
		}
		if runtime.ToBoolean(left) {
			return left, nil
		}
		return in.evalExpression(e.Right)
	case "??":
		left, err := in.evalExpression(e.Left)
		if err != nil {
			return runtime.Undefined(), err
		}
		if left.Kind != runtime.KindNull && left.Kind != runtime.KindUndefined {
			return left, nil
		}
		return in.evalExpression(e.Right)
	}

	left, err := in.evalExpression(e.Left)
	if err != nil {
		return runtime.Undefined(), err
	}
	right, err := in.evalExpression(e.Right)
	if err != nil {
		return runtime.Undefined(), err
	}

	switch e.Operator {
	case "+":
		if left.Kind == runtime.KindString || right.Kind == runtime.KindString {
			return runtime.String(runtime.ToString(left) + runtime.ToString(right)), nil
		}
		return runtime.Number(runtime.ToNumber(left) + runtime.ToNumber(right)), nil
	case "-":
		return runtime.Number(runtime.ToNumber(left) - runtime.ToNumber(right)), nil
	case "*":
		return runtime.Number(runtime.ToNumber(left) * runtime.ToNumber(right)), nil
	case "/":
		return runtime.Number(runtime.ToNumber(left) / runtime.ToNumber(right)), nil
	case "%":
		return runtime.Number(math.Mod(runtime.ToNumber(left), runtime.ToNumber(right))), nil
	case "**":
		return runtime.Number(math.Pow(runtime.ToNumber(left), runtime.ToNumber(right))), nil
	case "&":
		return runtime.Number(float64(runtime.ToInt64(left) & runtime.ToInt64(right))), nil
	case "|":
		return runtime.Number(float64(runtime.ToInt64(left) | runtime.ToInt64(right))), nil
	case "^":
		return runtime.Number(float64(runtime.ToInt64(left) ^ runtime.ToInt64(right))), nil
	case "<<":
		return runtime.Number(float64(runtime.ToInt64(left) << uint(runtime.ToInt64(right)&31))), nil
	case ">>":
		return runtime.Number(float64(runtime.ToInt64(left) >> uint(runtime.ToInt64(right)&31))), nil
	case ">>>":
		return runtime.Number(float64(uint32(runtime.ToInt64(left)) >> uint(runtime.ToInt64(right)&31))), nil
	case "<":
		return runtime.Bool(compare(left, right) < 0), nil
	case ">":
		return runtime.Bool(compare(left, right) > 0), nil
	case "<=":
		return runtime.Bool(compare(left, right) <= 0), nil
	case ">=":
		return runtime.Bool(compare(left, right) >= 0), nil
	case "==":
		return runtime.Bool(runtime.LooseEquals(left, right)), nil
	case "!=":
		return runtime.Bool(!runtime.LooseEquals(left, right)), nil
	case "===":
		return runtime.Bool(runtime.StrictEquals(left, right)), nil
	case "!==":
		return runtime.Bool(!runtime.StrictEquals(left, right)), nil
	default:
		return runtime.Undefined(), fmt.Errorf("SyntaxError: unknown binary operator %q", e.Operator)
	}
}

// compare orders two values numerically unless both are strings, in which
// case it defers to runtime.CompareStrings (a collation order, not JS's
// code-unit order; the full abstract-relational-comparison algorithm is not
// implemented).
func compare(left, right runtime.Value) int {
	if left.Kind == runtime.KindString && right.Kind == runtime.KindString {
		return runtime.CompareStrings(left.Str, right.Str)
	}
	ln, rn := runtime.ToNumber(left), runtime.ToNumber(right)
	switch {
	case ln < rn:
		return -1
	case ln > rn:
		return 1
	default:
		return 0
	}
}

// evalAssignExpression handles `target = value`. A member target is read
// through exactly once: the object expression is evaluated a single time and
// the result is mutated in place, so the interpreter never re-derives the
// binding from a second evaluation of the object expression (§9's resolved
// Open Question on member-assignment visibility).
func (in *Interpreter) evalAssignExpression(e *ast.BinaryExpression) (runtime.Value, error) {
	value, err := in.evalExpression(e.Right)
	if err != nil {
		return runtime.Undefined(), err
	}

	switch target := e.Left.(type) {
	case *ast.Identifier:
		if err := in.ctx.Scope.Assign(target.Value, value); err != nil {
			return runtime.Undefined(), err
		}
		return value, nil

	case *ast.MemberExpression:
		objVal, err := in.evalExpression(target.Object)
		if err != nil {
			return runtime.Undefined(), err
		}
		if objVal.Kind != runtime.KindObject {
			return runtime.Undefined(), fmt.Errorf("TypeError: cannot set properties of %s", objVal.TypeOf())
		}

		var key string
		if target.Computed {
			propVal, err := in.evalExpression(target.Property)
			if err != nil {
				return runtime.Undefined(), err
			}
			key = runtime.ToString(propVal)
		} else {
			key = target.Property.(*ast.Identifier).Value
		}

		objVal.Object.Set(key, value)
		return value, nil

	default:
		return runtime.Undefined(), fmt.Errorf("SyntaxError: invalid assignment target")
	}
}
