package vm

import (
	"fmt"
	"math"
)

// ErrorKind tags a VMError the way §4.4/§7 define: Type, Reference, Syntax,
// Range, Eval, or Internal failures abort the current run without
// terminating the VM.
type ErrorKind int

const (
	ErrType ErrorKind = iota
	ErrReference
	ErrSyntax
	ErrRange
	ErrEval
	ErrInternal
)

func (k ErrorKind) String() string {
	switch k {
	case ErrType:
		return "Type"
	case ErrReference:
		return "Reference"
	case ErrSyntax:
		return "Syntax"
	case ErrRange:
		return "Range"
	case ErrEval:
		return "Eval"
	default:
		return "Internal"
	}
}

// VMError is the typed error surfaced by the execution loop (§4.4).
type VMError struct {
	Kind    ErrorKind
	Message string
}

func (e *VMError) Error() string { return fmt.Sprintf("%s: %s", e.Kind, e.Message) }

func newErr(kind ErrorKind, format string, args ...any) *VMError {
	return &VMError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// VM owns one Heap, one ExecutionContext chain, a register file, and a data
// stack; these are all single-owner resources per §5 (no locks required).
type VM struct {
	Heap      *Heap
	Context   *ExecutionContext
	Registers [NumRegisters]*Cell
	Stack     []*Cell

	undefined *Cell
}

// New creates a VM with a heap of the given byte size (rounded up to a
// page), binding the shared Undefined cell under "undefined" in the root
// context (§3's invariant).
func New(heapSize int) *VM {
	h := NewHeap(heapSize)
	undef, _ := h.Alloc() // first allocation always succeeds on a fresh heap.
	undef.Kind = CellUndefined

	ctx := NewExecutionContext()
	ctx.Bind("undefined", undef)

	v := &VM{Heap: h, Context: ctx, undefined: undef}
	for i := range v.Registers {
		v.Registers[i] = undef
	}
	return v
}

func (vm *VM) alloc() (*Cell, error) {
	cell, ok := vm.Heap.Alloc()
	if !ok {
		return nil, newErr(ErrRange, "heap exhausted")
	}
	return cell, nil
}

func (vm *VM) push(c *Cell) { vm.Stack = append(vm.Stack, c) }

func (vm *VM) pop() (*Cell, error) {
	if len(vm.Stack) == 0 {
		return nil, newErr(ErrInternal, "data stack underflow")
	}
	top := vm.Stack[len(vm.Stack)-1]
	vm.Stack = vm.Stack[:len(vm.Stack)-1]
	return top, nil
}

// Run executes chunk to completion (Hlt, Return at the top frame, or
// end-of-code) and returns R0, the accumulator's final value, matching the
// interpreter's "last expression value" convention.
func (vm *VM) Run(chunk *Chunk) (*Cell, error) {
	code := chunk.Code
	pc := 0

	for pc < len(code) {
		op := OpCode(code[pc])
		pc++

		switch op {
		case OpHlt, OpReturn:
			return vm.Registers[R0], nil

		case OpMov:
			rd := Register(code[pc])
			imm := readImm64(code, pc+1)
			pc += 9
			cell, err := vm.alloc()
			if err != nil {
				return nil, err
			}
			cell.Kind = CellNumber
			cell.Number = math.Float64frombits(imm)
			vm.Registers[rd] = cell

		case OpPush:
			rs := Register(code[pc])
			pc++
			vm.push(vm.Registers[rs])

		case OpPop:
			rd := Register(code[pc])
			pc++
			cell, err := vm.pop()
			if err != nil {
				return nil, err
			}
			vm.Registers[rd] = cell

		case OpLdaUndefined:
			vm.Registers[R0] = vm.undefined

		case OpLdaNull:
			cell, err := vm.alloc()
			if err != nil {
				return nil, err
			}
			cell.Kind = CellNull
			vm.Registers[R0] = cell

		case OpLdaBoolean:
			b := code[pc]
			pc++
			cell, err := vm.alloc()
			if err != nil {
				return nil, err
			}
			cell.Kind = CellBoolean
			cell.Boolean = b != 0
			vm.Registers[R0] = cell

		case OpLdaSmi:
			bits := readImm64(code, pc)
			pc += 8
			cell, err := vm.alloc()
			if err != nil {
				return nil, err
			}
			cell.Kind = CellNumber
			cell.Number = math.Float64frombits(bits)
			vm.Registers[R0] = cell

		case OpLdaConstant:
			idx := readImm64(code, pc)
			pc += 8
			cell, err := vm.alloc()
			if err != nil {
				return nil, err
			}
			cell.Kind = CellString
			cell.Str = chunk.Constants.Get(uint32(idx))
			vm.Registers[R0] = cell

		case OpLdaContextSlot:
			name, next := readName(code, pc)
			pc = next
			cell, ok := vm.Context.Resolve(name)
			if !ok {
				return nil, newErr(ErrReference, "%s is not defined", name)
			}
			vm.Registers[R0] = cell

		case OpStaContextSlot:
			name, next := readName(code, pc)
			pc = next
			vm.Context.Bind(name, vm.Registers[R0])

		case OpGetNamedProperty:
			robj := Register(code[pc])
			idx := readImm64(code, pc+1)
			pc += 9
			obj := vm.Registers[robj]
			name := chunk.Constants.Get(uint32(idx))
			if cell, ok := obj.Properties[name]; ok {
				vm.Registers[R0] = cell
			} else {
				vm.Registers[R0] = vm.undefined
			}

		case OpCallProperty:
			rcallee := Register(code[pc])
			rparent := Register(code[pc+1])
			pc += 2
			callee := vm.Registers[rcallee]
			if callee.Kind != CellNativeFunction || callee.Native == nil {
				return nil, newErr(ErrType, "value is not a native function")
			}
			vm.Registers[R0] = callee.Native(vm, vm.Registers[rparent], nil)

		case OpAdd, OpSub, OpMul, OpDiv, OpMod:
			r1 := Register(code[pc])
			r2 := Register(code[pc+1])
			pc += 2
			result, err := vm.binaryArith(op, vm.Registers[r1], vm.Registers[r2])
			if err != nil {
				return nil, err
			}
			vm.Registers[R0] = result

		case OpInc, OpDec:
			rd := Register(code[pc])
			pc++
			cur := vm.Registers[rd]
			cell, err := vm.alloc()
			if err != nil {
				return nil, err
			}
			cell.Kind = CellNumber
			if op == OpInc {
				cell.Number = cur.Number + 1
			} else {
				cell.Number = cur.Number - 1
			}
			vm.Registers[rd] = cell
			vm.Registers[R0] = cell

		case OpNegate:
			rd := Register(code[pc])
			pc++
			cell, err := vm.alloc()
			if err != nil {
				return nil, err
			}
			cell.Kind = CellNumber
			cell.Number = -vm.Registers[rd].Number
			vm.Registers[R0] = cell

		case OpBitwiseNot:
			rd := Register(code[pc])
			pc++
			cell, err := vm.alloc()
			if err != nil {
				return nil, err
			}
			cell.Kind = CellNumber
			cell.Number = float64(^int64(vm.Registers[rd].Number))
			vm.Registers[R0] = cell

		case OpTypeOf:
			rd := Register(code[pc])
			pc++
			cell, err := vm.alloc()
			if err != nil {
				return nil, err
			}
			cell.Kind = CellString
			cell.Str = vm.Registers[rd].TypeOf()
			vm.Registers[R0] = cell

		case OpTestReferenceEqual, OpTestLessThan, OpTestGreaterThan:
			r1 := Register(code[pc])
			r2 := Register(code[pc+1])
			pc += 2
			cell, err := vm.alloc()
			if err != nil {
				return nil, err
			}
			cell.Kind = CellBoolean
			cell.Boolean = vm.test(op, vm.Registers[r1], vm.Registers[r2])
			vm.Registers[R0] = cell

		case OpTestNull, OpTestUndefined:
			rd := Register(code[pc])
			pc++
			cell, err := vm.alloc()
			if err != nil {
				return nil, err
			}
			cell.Kind = CellBoolean
			if op == OpTestNull {
				cell.Boolean = vm.Registers[rd].Kind == CellNull
			} else {
				cell.Boolean = vm.Registers[rd].Kind == CellUndefined
			}
			vm.Registers[R0] = cell

		case OpJump:
			offset := readJumpOffset(code, pc)
			pc = pc + 4 + int(offset)

		case OpJumpLoop:
			offset := readJumpOffset(code, pc)
			pc = pc + 4 + int(offset)

		case OpJumpIfTrue:
			offset := readJumpOffset(code, pc)
			pc += 4
			if vm.Registers[R0].Boolean {
				pc += int(offset)
			}

		case OpJumpIfFalse:
			offset := readJumpOffset(code, pc)
			pc += 4
			if !vm.Registers[R0].Boolean {
				pc += int(offset)
			}

		case OpJumpIfUndefined:
			offset := readJumpOffset(code, pc)
			pc += 4
			if vm.Registers[R0].Kind == CellUndefined {
				pc += int(offset)
			}

		case OpJumpIfNotUndefined:
			offset := readJumpOffset(code, pc)
			pc += 4
			if vm.Registers[R0].Kind != CellUndefined {
				pc += int(offset)
			}

		case OpJumpIfNull:
			offset := readJumpOffset(code, pc)
			pc += 4
			if vm.Registers[R0].Kind == CellNull {
				pc += int(offset)
			}

		case OpJumpIfNotNull:
			offset := readJumpOffset(code, pc)
			pc += 4
			if vm.Registers[R0].Kind != CellNull {
				pc += int(offset)
			}

		default:
			return nil, newErr(ErrInternal, "unimplemented opcode %s", op)
		}
	}

	return vm.Registers[R0], nil
}

func (vm *VM) binaryArith(op OpCode, a, b *Cell) (*Cell, error) {
	cell, err := vm.alloc()
	if err != nil {
		return nil, err
	}

	if op == OpAdd && (a.Kind == CellString || b.Kind == CellString) {
		cell.Kind = CellString
		cell.Str = a.String() + b.String()
		return cell, nil
	}
	if a.Kind != CellNumber || b.Kind != CellNumber {
		cell.Kind = CellNumber
		cell.Number = math.NaN()
		return cell, nil
	}

	cell.Kind = CellNumber
	switch op {
	case OpAdd:
		cell.Number = a.Number + b.Number
	case OpSub:
		cell.Number = a.Number - b.Number
	case OpMul:
		cell.Number = a.Number * b.Number
	case OpDiv:
		cell.Number = a.Number / b.Number
	case OpMod:
		cell.Number = math.Mod(a.Number, b.Number)
	}
	return cell, nil
}

func (vm *VM) test(op OpCode, a, b *Cell) bool {
	switch op {
	case OpTestReferenceEqual:
		if a.Kind != b.Kind {
			return false
		}
		switch a.Kind {
		case CellNumber:
			return a.Number == b.Number
		case CellString:
			return a.Str == b.Str
		case CellBoolean:
			return a.Boolean == b.Boolean
		default:
			return a == b
		}
	case OpTestLessThan:
		return a.Number < b.Number
	case OpTestGreaterThan:
		return a.Number > b.Number
	default:
		return false
	}
}
