package vm

import (
	"fmt"
	"math"

	"github.com/cwbudde/go-jsengine/internal/ast"
)

// Codegen walks an AST and emits bytecode into a Chunk, left-to-right,
// exactly following §4.4's "Codegen" description for the subset it
// supports, plus jump-based control flow for if/else, for, break, and
// continue.
//
// Unsupported forms (user function literals/calls, computed member access,
// switch, the logical operators && / || / ??) return an error rather than
// silently mis-compiling; callers
// should fall back to the tree-walking interpreter for those programs, per
// §9's explicit guidance.
type Codegen struct {
	chunk *Chunk
	loops []loopContext
}

// loopContext tracks, for one enclosing loop, the still-unpatched forward
// jumps emitted by break and continue inside its body. Both land forward of
// where they're emitted (break at the loop's end, continue at the update
// expression just after the body), so both are patched the same way once
// their target position is known — unlike breakPatches, continuePatches is
// patched mid-loop-compile rather than after the whole loop is done.
type loopContext struct {
	continuePatches []int
	breakPatches    []int
}

// NewCodegen creates a Codegen emitting into a fresh Chunk.
func NewCodegen() *Codegen {
	return &Codegen{chunk: NewChunk()}
}

// Compile emits bytecode for every statement in program and returns the
// finished Chunk.
func (g *Codegen) Compile(program *ast.Program) (*Chunk, error) {
	for _, stmt := range program.Statements {
		if err := g.statement(stmt); err != nil {
			return nil, err
		}
	}
	g.chunk.emitOp(OpHlt)
	return g.chunk, nil
}

func (g *Codegen) statement(stmt ast.Statement) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStatement:
		return g.expression(s.Expression)

	case *ast.LetStatement, *ast.ConstStatement:
		return g.declaration(s)

	case *ast.BlockStatement:
		// No scope frame here: break/continue compile to forward jumps that
		// can leap out of a nested block (see the ContinueStatement case),
		// and a jump can't also unwind the scope-frame pushes it skips past
		// without leaking frames. The VM's flat context-slot model accepts
		// that tradeoff rather than track per-jump unwind depth.
		for _, inner := range s.Statements {
			if err := g.statement(inner); err != nil {
				return err
			}
		}
		return nil

	case *ast.IfStatement:
		return g.ifStatement(s)

	case *ast.ForStatement:
		return g.forStatement(s)

	case *ast.ReturnStatement:
		if s.ReturnValue != nil {
			if err := g.expression(s.ReturnValue); err != nil {
				return err
			}
		} else {
			g.chunk.emitOp(OpLdaUndefined)
		}
		g.chunk.emitOp(OpReturn)
		return nil

	case *ast.BreakStatement:
		if len(g.loops) == 0 {
			return fmt.Errorf("vm codegen: break outside a loop")
		}
		pos := g.chunk.emitJump(OpJump)
		idx := len(g.loops) - 1
		g.loops[idx].breakPatches = append(g.loops[idx].breakPatches, pos)
		return nil

	case *ast.ContinueStatement:
		if len(g.loops) == 0 {
			return fmt.Errorf("vm codegen: continue outside a loop")
		}
		// The update-expression position isn't known yet (the body is still
		// being compiled), so emit a placeholder forward jump and record it
		// for forStatement to patch once that position is fixed, exactly as
		// break's placeholder is patched once the loop's end is fixed.
		pos := g.chunk.emitJump(OpJumpLoop)
		idx := len(g.loops) - 1
		g.loops[idx].continuePatches = append(g.loops[idx].continuePatches, pos)
		return nil

	default:
		return fmt.Errorf("vm codegen: unsupported statement %T", stmt)
	}
}

func (g *Codegen) declaration(stmt ast.Statement) error {
	var name string
	var value ast.Expression
	switch s := stmt.(type) {
	case *ast.LetStatement:
		name, value = s.Name.Value, s.Value
	case *ast.ConstStatement:
		name, value = s.Name.Value, s.Value
	}

	if value != nil {
		if err := g.expression(value); err != nil {
			return err
		}
	} else {
		g.chunk.emitOp(OpLdaUndefined)
	}
	g.chunk.emitOp(OpStaContextSlot)
	g.chunk.emitName(name)
	return nil
}

func (g *Codegen) ifStatement(s *ast.IfStatement) error {
	if err := g.expression(s.Test); err != nil {
		return err
	}
	elseJump := g.chunk.emitJump(OpJumpIfFalse)

	if err := g.statement(s.Consequent); err != nil {
		return err
	}

	if s.Alternate != nil {
		endJump := g.chunk.emitJump(OpJump)
		g.chunk.patchJump(elseJump)
		if err := g.statement(s.Alternate); err != nil {
			return err
		}
		g.chunk.patchJump(endJump)
	} else {
		g.chunk.patchJump(elseJump)
	}
	return nil
}

func (g *Codegen) forStatement(s *ast.ForStatement) error {
	if s.Init != nil {
		if err := g.statement(s.Init); err != nil {
			return err
		}
	}

	loopStart := len(g.chunk.Code)

	var exitJump int
	hasExit := false
	if s.Test != nil {
		if err := g.expression(s.Test); err != nil {
			return err
		}
		exitJump = g.chunk.emitJump(OpJumpIfFalse)
		hasExit = true
	}

	g.loops = append(g.loops, loopContext{})
	loopIdx := len(g.loops) - 1

	if err := g.statement(s.Body); err != nil {
		return err
	}

	// The update expression starts here, so every continue site recorded
	// while compiling the body lands here too. Re-index rather than reusing
	// a pointer taken before the body compiled: a nested loop's own append
	// to g.loops may have grown its backing array out from under it.
	for _, pos := range g.loops[loopIdx].continuePatches {
		g.chunk.patchJump(pos)
	}
	if s.Update != nil {
		if err := g.expression(s.Update); err != nil {
			return err
		}
	}

	g.chunk.emitLoopJump(loopStart)

	if hasExit {
		g.chunk.patchJump(exitJump)
	}

	finished := g.loops[loopIdx]
	g.loops = g.loops[:loopIdx]
	for _, pos := range finished.breakPatches {
		g.chunk.patchJump(pos)
	}
	return nil
}

func (g *Codegen) expression(expr ast.Expression) error {
	switch e := expr.(type) {
	case *ast.NumberLiteral:
		g.chunk.emitOp(OpLdaSmi)
		g.chunk.emitImm64(math.Float64bits(e.Value))
		return nil

	case *ast.StringLiteral:
		idx := g.chunk.Constants.Add(e.Value)
		g.chunk.emitOp(OpLdaConstant)
		g.chunk.emitImm64(uint64(idx))
		return nil

	case *ast.BooleanLiteral:
		g.chunk.emitOp(OpLdaBoolean)
		if e.Value {
			g.chunk.emitByte(1)
		} else {
			g.chunk.emitByte(0)
		}
		return nil

	case *ast.NullLiteral:
		g.chunk.emitOp(OpLdaNull)
		return nil

	case *ast.UndefinedLiteral:
		g.chunk.emitOp(OpLdaUndefined)
		return nil

	case *ast.Identifier:
		g.chunk.emitOp(OpLdaContextSlot)
		g.chunk.emitName(e.Value)
		return nil

	case *ast.UnaryExpression:
		return g.unary(e)

	case *ast.BinaryExpression:
		return g.binary(e)

	case *ast.MemberExpression:
		if e.Computed {
			return fmt.Errorf("vm codegen: computed member access is not supported")
		}
		if err := g.expression(e.Object); err != nil {
			return err
		}
		g.chunk.emitOp(OpPush)
		g.chunk.emitReg(R0)
		g.chunk.emitOp(OpPop)
		g.chunk.emitReg(R1)
		prop := e.Property.(*ast.Identifier).Value
		idx := g.chunk.Constants.Add(prop)
		g.chunk.emitOp(OpGetNamedProperty)
		g.chunk.emitReg(R1)
		g.chunk.emitImm64(uint64(idx))
		return nil

	default:
		return fmt.Errorf("vm codegen: unsupported expression %T", expr)
	}
}

func (g *Codegen) unary(e *ast.UnaryExpression) error {
	if err := g.expression(e.Right); err != nil {
		return err
	}

	switch e.Operator {
	case "-":
		g.chunk.emitOp(OpNegate)
		g.chunk.emitReg(R0)
	case "~":
		g.chunk.emitOp(OpBitwiseNot)
		g.chunk.emitReg(R0)
	case "typeof":
		g.chunk.emitOp(OpTypeOf)
		g.chunk.emitReg(R0)
	default:
		return fmt.Errorf("vm codegen: unsupported unary operator %q", e.Operator)
	}
	return nil
}

func (g *Codegen) binary(e *ast.BinaryExpression) error {
	if e.Operator == "=" {
		ident, ok := e.Left.(*ast.Identifier)
		if !ok {
			return fmt.Errorf("vm codegen: only identifier assignment targets are supported")
		}
		if err := g.expression(e.Right); err != nil {
			return err
		}
		g.chunk.emitOp(OpStaContextSlot)
		g.chunk.emitName(ident.Value)
		return nil
	}

	// Evaluate left-then-right (§5), stashing Left on the data stack across
	// the Right evaluation since both land in the shared R0 accumulator.
	if err := g.expression(e.Left); err != nil {
		return err
	}
	g.chunk.emitOp(OpPush)
	g.chunk.emitReg(R0)
	if err := g.expression(e.Right); err != nil {
		return err
	}
	g.chunk.emitOp(OpPop)
	g.chunk.emitReg(R1)
	// R1 now holds Left, R0 holds Right; arithmetic/test ops below read
	// (R1 op R0) to preserve left-to-right operand order.

	switch e.Operator {
	case "+":
		g.chunk.emitOp(OpAdd)
		g.chunk.emitReg(R1)
		g.chunk.emitReg(R0)
	case "-":
		g.chunk.emitOp(OpSub)
		g.chunk.emitReg(R1)
		g.chunk.emitReg(R0)
	case "*":
		g.chunk.emitOp(OpMul)
		g.chunk.emitReg(R1)
		g.chunk.emitReg(R0)
	case "/":
		g.chunk.emitOp(OpDiv)
		g.chunk.emitReg(R1)
		g.chunk.emitReg(R0)
	case "%":
		g.chunk.emitOp(OpMod)
		g.chunk.emitReg(R1)
		g.chunk.emitReg(R0)
	case "<":
		g.chunk.emitOp(OpTestLessThan)
		g.chunk.emitReg(R1)
		g.chunk.emitReg(R0)
	case ">":
		g.chunk.emitOp(OpTestGreaterThan)
		g.chunk.emitReg(R1)
		g.chunk.emitReg(R0)
	case "==", "===":
		g.chunk.emitOp(OpTestReferenceEqual)
		g.chunk.emitReg(R1)
		g.chunk.emitReg(R0)
	default:
		return fmt.Errorf("vm codegen: unsupported binary operator %q", e.Operator)
	}
	return nil
}
