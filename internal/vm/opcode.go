// Package vm implements the register-based bytecode virtual machine: a
// constant table, a bump-allocated heap of uniform cells, a code generator
// from internal/ast, and a fetch-decode-execute loop (§4.4). The opcode
// catalogue follows the original engine's bytecodes.rs more closely than
// spec.md's §4.4 subset, completing the "VM completeness" gap spec.md's
// design notes flag (jumps, Inc/Dec, the Test family).
package vm

// OpCode is a single byte instruction tag.
type OpCode byte

const (
	OpMov OpCode = iota // Mov Rd, imm64
	OpPush
	OpPop

	OpLdaUndefined // loads Undefined into R0
	OpLdaNull
	OpLdaBoolean  // LdaBoolean imm8: allocates a Boolean cell into R0
	OpLdaSmi      // LdaSmi imm64: allocates a Number cell into R0 (bits reinterpreted as float64)
	OpLdaConstant // LdaConstant idx64: allocates a String cell from the constant table into R0
	OpLdaContextSlot
	OpStaContextSlot

	OpGetNamedProperty // GetNamedProperty Robj, idx64 (constant-table index of the property name)
	OpCallProperty      // CallProperty Rcallee, Rparent
	OpCallAnyReceiver

	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod

	OpInc // register increment/decrement (original engine's Inc/Dec)
	OpDec
	OpNegate
	OpBitwiseNot
	OpTypeOf

	OpTestReferenceEqual
	OpTestNull
	OpTestUndefined
	OpTestLessThan
	OpTestGreaterThan

	OpJump
	OpJumpLoop
	OpJumpIfTrue
	OpJumpIfFalse
	OpJumpIfUndefined
	OpJumpIfNotUndefined
	OpJumpIfNull
	OpJumpIfNotNull

	OpConstruct
	OpReturn
	OpHlt
)

var opNames = map[OpCode]string{
	OpMov:                "Mov",
	OpPush:                "Push",
	OpPop:                 "Pop",
	OpLdaUndefined:        "LdaUndefined",
	OpLdaNull:             "LdaNull",
	OpLdaBoolean:          "LdaBoolean",
	OpLdaSmi:              "LdaSmi",
	OpLdaConstant:         "LdaConstant",
	OpLdaContextSlot:      "LdaContextSlot",
	OpStaContextSlot:      "StaContextSlot",
	OpGetNamedProperty:    "GetNamedProperty",
	OpCallProperty:        "CallProperty",
	OpCallAnyReceiver:     "CallAnyReceiver",
	OpAdd:                 "Add",
	OpSub:                 "Sub",
	OpMul:                 "Mul",
	OpDiv:                 "Div",
	OpMod:                 "Mod",
	OpInc:                 "Inc",
	OpDec:                 "Dec",
	OpNegate:              "Negate",
	OpBitwiseNot:          "BitwiseNot",
	OpTypeOf:              "TypeOf",
	OpTestReferenceEqual:  "TestReferenceEqual",
	OpTestNull:            "TestNull",
	OpTestUndefined:       "TestUndefined",
	OpTestLessThan:        "TestLessThan",
	OpTestGreaterThan:     "TestGreaterThan",
	OpJump:                "Jump",
	OpJumpLoop:            "JumpLoop",
	OpJumpIfTrue:          "JumpIfTrue",
	OpJumpIfFalse:         "JumpIfFalse",
	OpJumpIfUndefined:     "JumpIfUndefined",
	OpJumpIfNotUndefined:  "JumpIfNotUndefined",
	OpJumpIfNull:          "JumpIfNull",
	OpJumpIfNotNull:       "JumpIfNotNull",
	OpConstruct:           "Construct",
	OpReturn:              "Return",
	OpHlt:                 "Hlt",
}

func (op OpCode) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return "Unknown"
}

// Register names R0..R7, matching the original engine's RName enumeration
// used by the disassembler.
type Register byte

const (
	R0 Register = iota
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	NumRegisters
)

func (r Register) String() string {
	names := [...]string{"R0", "R1", "R2", "R3", "R4", "R5", "R6", "R7"}
	if int(r) < len(names) {
		return names[r]
	}
	return "R?"
}
