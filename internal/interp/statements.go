package interp

import (
	"fmt"

	"github.com/cwbudde/go-jsengine/internal/ast"
	"github.com/cwbudde/go-jsengine/internal/runtime"
)

func (in *Interpreter) evalStatement(stmt ast.Statement, kind scopeKind) (runtime.Value, error) {
	switch s := stmt.(type) {
	case *ast.ExpressionStatement:
		return in.evalExpression(s.Expression)
	case *ast.LetStatement:
		return in.evalLetStatement(s)
	case *ast.ConstStatement:
		return in.evalConstStatement(s)
	case *ast.FunctionStatement:
		return in.evalFunctionStatement(s)
	case *ast.BlockStatement:
		return in.evalBlockStatement(s, kind)
	case *ast.IfStatement:
		return in.evalIfStatement(s, kind)
	case *ast.SwitchStatement:
		return in.evalSwitchStatement(s, kind)
	case *ast.ForStatement:
		return in.evalForStatement(s, kind)
	case *ast.ReturnStatement:
		return in.evalReturnStatement(s, kind)
	case *ast.BreakStatement:
		return runtime.BreakSignal(), nil
	case *ast.ContinueStatement:
		return runtime.ContinueSignal(), nil
	default:
		return runtime.Undefined(), fmt.Errorf("SyntaxError: unsupported statement %T", stmt)
	}
}

func (in *Interpreter) evalLetStatement(s *ast.LetStatement) (runtime.Value, error) {
	if existing, ok := in.ctx.Scope.Get(s.Name.Value); ok && existing.VarKind == runtime.KindConst {
		return runtime.Undefined(), fmt.Errorf("TypeError: cannot redeclare constant %q", s.Name.Value)
	}

	value := runtime.Undefined()
	if s.Value != nil {
		v, err := in.evalExpression(s.Value)
		if err != nil {
			return runtime.Undefined(), err
		}
		value = v
	}
	in.ctx.Scope.Declare(s.Name.Value, runtime.KindLet, value)
	return runtime.Undefined(), nil
}

func (in *Interpreter) evalConstStatement(s *ast.ConstStatement) (runtime.Value, error) {
	if existing, ok := in.ctx.Scope.Get(s.Name.Value); ok && existing.VarKind == runtime.KindConst {
		return runtime.Undefined(), fmt.Errorf("TypeError: cannot redeclare constant %q", s.Name.Value)
	}
	value, err := in.evalExpression(s.Value)
	if err != nil {
		return runtime.Undefined(), err
	}
	in.ctx.Scope.Declare(s.Name.Value, runtime.KindConst, value)
	return runtime.Undefined(), nil
}

// evalFunctionStatement declares s's name in the enclosing scope, bound to
// a closure over that same scope, before the function is ever called. The
// scope frame captured by Closure is shared (by reference) with the frame
// Declare writes into, so the function's own name resolves inside its body
// the same way an outer binding mutated after closure-capture does —
// enabling recursion without a separate self-binding step.
func (in *Interpreter) evalFunctionStatement(s *ast.FunctionStatement) (runtime.Value, error) {
	if existing, ok := in.ctx.Scope.Get(s.Name.Value); ok && existing.VarKind == runtime.KindConst {
		return runtime.Undefined(), fmt.Errorf("TypeError: cannot redeclare constant %q", s.Name.Value)
	}

	fn := &runtime.Function{
		Name:       s.Name.Value,
		Parameters: s.Function.Parameters,
		Body:       s.Function.Body,
		Closure:    in.ctx.Scope.Clone(),
	}
	in.ctx.Scope.Declare(s.Name.Value, runtime.KindVar, runtime.Fn(fn))
	return runtime.Undefined(), nil
}

// evalBlockStatement pushes a new lexical frame, evaluates each statement in
// order, and short-circuits on the first non-plain-value outcome
// (Return/Break/Continue), always popping the frame on every exit path.
func (in *Interpreter) evalBlockStatement(block *ast.BlockStatement, kind scopeKind) (runtime.Value, error) {
	in.ctx.Scope.Push()
	defer in.ctx.Scope.Pop()

	var result runtime.Value
	for _, stmt := range block.Statements {
		v, err := in.evalStatement(stmt, kind)
		if err != nil {
			return runtime.Undefined(), err
		}
		if v.IsControlSignal() {
			return v, nil
		}
		result = v
	}
	return result, nil
}

func (in *Interpreter) evalIfStatement(s *ast.IfStatement, kind scopeKind) (runtime.Value, error) {
	test, err := in.evalExpression(s.Test)
	if err != nil {
		return runtime.Undefined(), err
	}
	if runtime.ToBoolean(test) {
		return in.evalStatement(s.Consequent, kind)
	}
	if s.Alternate != nil {
		return in.evalStatement(s.Alternate, kind)
	}
	return runtime.Undefined(), nil
}

func (in *Interpreter) evalSwitchStatement(s *ast.SwitchStatement, kind scopeKind) (runtime.Value, error) {
	discriminant, err := in.evalExpression(s.Discriminant)
	if err != nil {
		return runtime.Undefined(), err
	}

	in.ctx.Scope.Push()
	defer in.ctx.Scope.Pop()

	matched := false
	for _, c := range s.Cases {
		if !matched {
			if c.Test == nil {
				matched = true
			} else {
				testVal, err := in.evalExpression(c.Test)
				if err != nil {
					return runtime.Undefined(), err
				}
				if runtime.StrictEquals(discriminant, testVal) {
					matched = true
				}
			}
		}
		if !matched {
			continue
		}
		for _, stmt := range c.Statements {
			v, err := in.evalStatement(stmt, kind)
			if err != nil {
				return runtime.Undefined(), err
			}
			if v.Kind == runtime.KindReturn || v.Kind == runtime.KindBreak {
				return v, nil
			}
			if v.Kind == runtime.KindContinue {
				return v, nil
			}
		}
	}
	return runtime.Undefined(), nil
}

func (in *Interpreter) evalForStatement(s *ast.ForStatement, kind scopeKind) (runtime.Value, error) {
	in.ctx.Scope.Push()
	defer in.ctx.Scope.Pop()

	if s.Init != nil {
		if _, err := in.evalStatement(s.Init, kind); err != nil {
			return runtime.Undefined(), err
		}
	}

	for {
		if s.Test != nil {
			test, err := in.evalExpression(s.Test)
			if err != nil {
				return runtime.Undefined(), err
			}
			if !runtime.ToBoolean(test) {
				break
			}
		}

		v, err := in.evalStatement(s.Body, kind)
		if err != nil {
			return runtime.Undefined(), err
		}
		if v.Kind == runtime.KindReturn {
			return v, nil
		}
		if v.Kind == runtime.KindBreak {
			break
		}
		// Continue falls through to the update expression, same as a
		// normal loop iteration.

		if s.Update != nil {
			if _, err := in.evalExpression(s.Update); err != nil {
				return runtime.Undefined(), err
			}
		}
	}

	return runtime.Undefined(), nil
}

func (in *Interpreter) evalReturnStatement(s *ast.ReturnStatement, kind scopeKind) (runtime.Value, error) {
	if kind != scopeFunction {
		return runtime.Undefined(), fmt.Errorf("SyntaxError: return is only valid inside a function")
	}
	if s.ReturnValue == nil {
		return runtime.Return(runtime.Undefined()), nil
	}
	v, err := in.evalExpression(s.ReturnValue)
	if err != nil {
		return runtime.Undefined(), err
	}
	return runtime.Return(v), nil
}
