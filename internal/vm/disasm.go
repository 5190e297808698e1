package vm

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

// ANSI color codes for the execution log (§6: "numbers yellow, strings
// green, undefined dim").
const (
	colorReset  = "\x1b[0m"
	colorYellow = "\x1b[33m"
	colorGreen  = "\x1b[32m"
	colorDim    = "\x1b[2m"
)

// Instruction is one decoded bytecode instruction, the unit the
// disassembler walks a Chunk into for %PrintIr/%PrintDump.
type Instruction struct {
	Offset   int
	Op       OpCode
	Operands string
	Width    int // total bytes consumed, opcode byte included
}

// Disassemble decodes chunk.Code into a linear instruction list. It mirrors
// the operand widths the VM's fetch-decode loop (vm.go) itself assumes;
// adding an opcode there requires a matching case here.
func Disassemble(chunk *Chunk) []Instruction {
	code := chunk.Code
	var out []Instruction
	pc := 0
	for pc < len(code) {
		start := pc
		op := OpCode(code[pc])
		pc++

		var operands string
		switch op {
		case OpMov:
			rd := Register(code[pc])
			imm := readImm64(code, pc+1)
			operands = fmt.Sprintf("%s, %s", rd, formatNumber(math.Float64frombits(imm)))
			pc += 9

		case OpPush, OpPop:
			r := Register(code[pc])
			operands = r.String()
			pc++

		case OpLdaUndefined, OpLdaNull:
			// no operands

		case OpLdaBoolean:
			operands = strconv.FormatBool(code[pc] != 0)
			pc++

		case OpLdaSmi:
			bits := readImm64(code, pc)
			operands = formatNumber(math.Float64frombits(bits))
			pc += 8

		case OpLdaConstant:
			idx := readImm64(code, pc)
			operands = fmt.Sprintf("[%d] %q", idx, chunk.Constants.Get(uint32(idx)))
			pc += 8

		case OpLdaContextSlot, OpStaContextSlot:
			name, next := readName(code, pc)
			operands = name
			pc = next

		case OpGetNamedProperty:
			robj := Register(code[pc])
			idx := readImm64(code, pc+1)
			operands = fmt.Sprintf("%s, [%d] %q", robj, idx, chunk.Constants.Get(uint32(idx)))
			pc += 9

		case OpCallProperty, OpCallAnyReceiver:
			r1 := Register(code[pc])
			r2 := Register(code[pc+1])
			operands = fmt.Sprintf("%s, %s", r1, r2)
			pc += 2

		case OpAdd, OpSub, OpMul, OpDiv, OpMod,
			OpTestReferenceEqual, OpTestLessThan, OpTestGreaterThan:
			r1 := Register(code[pc])
			r2 := Register(code[pc+1])
			operands = fmt.Sprintf("%s, %s", r1, r2)
			pc += 2

		case OpInc, OpDec, OpNegate, OpBitwiseNot, OpTypeOf, OpTestNull, OpTestUndefined:
			r := Register(code[pc])
			operands = r.String()
			pc++

		case OpJump, OpJumpLoop, OpJumpIfTrue, OpJumpIfFalse,
			OpJumpIfUndefined, OpJumpIfNotUndefined, OpJumpIfNull, OpJumpIfNotNull:
			offset := readJumpOffset(code, pc)
			target := pc + 4 + int(offset)
			operands = fmt.Sprintf("-> %04d", target)
			pc += 4

		case OpConstruct, OpReturn, OpHlt:
			// no operands

		default:
			operands = "?"
		}

		out = append(out, Instruction{Offset: start, Op: op, Operands: operands, Width: pc - start})
	}
	return out
}

// FormatIR renders Disassemble's output as a human-readable listing, one
// instruction per line, e.g. "0003 LdaSmi            1". When color is true,
// numeric and string operands are ANSI-colored (numbers yellow, strings
// green) and a bare "undefined" is dimmed, matching §6's execution log.
func FormatIR(chunk *Chunk, color bool) string {
	instrs := Disassemble(chunk)
	var sb strings.Builder
	for _, in := range instrs {
		name := in.Op.String()
		pad := displayWidth(name)
		sb.WriteString(fmt.Sprintf("%04d ", in.Offset))
		sb.WriteString(name)
		for i := pad; i < 18; i++ {
			sb.WriteByte(' ')
		}
		if color {
			sb.WriteString(colorizeOperands(in.Operands))
		} else {
			sb.WriteString(in.Operands)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// colorizeOperands applies §6's ANSI scheme to an already-formatted operand
// string: quoted runs are green (strings), "undefined" is dimmed, and a
// standalone numeric token is yellow.
func colorizeOperands(operands string) string {
	if operands == "" {
		return operands
	}
	if operands == "undefined" {
		return colorDim + operands + colorReset
	}
	if strings.Contains(operands, "\"") {
		first := strings.Index(operands, "\"")
		last := strings.LastIndex(operands, "\"")
		if last > first {
			return operands[:first] + colorGreen + operands[first:last+1] + colorReset + operands[last+1:]
		}
	}
	if _, err := strconv.ParseFloat(operands, 64); err == nil {
		return colorYellow + operands + colorReset
	}
	return operands
}

// displayWidth measures s in terminal columns using East-Asian width (wide
// and full-width runes count as two). FormatIR uses it to pad the
// opcode-name column; operands are the last column and are not padded.
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

// HexDump renders chunk.Code as a classic 16-bytes-per-row hex dump with an
// ASCII gutter, for %PrintDump.
func HexDump(chunk *Chunk) string {
	var sb strings.Builder
	code := chunk.Code
	for i := 0; i < len(code); i += 16 {
		end := i + 16
		if end > len(code) {
			end = len(code)
		}
		row := code[i:end]
		sb.WriteString(fmt.Sprintf("%08x  ", i))
		for j := 0; j < 16; j++ {
			if j < len(row) {
				sb.WriteString(fmt.Sprintf("%02x ", row[j]))
			} else {
				sb.WriteString("   ")
			}
			if j == 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(" |")
		for _, b := range row {
			if b >= 0x20 && b < 0x7f {
				sb.WriteByte(b)
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteString("|\n")
	}
	return sb.String()
}

// BytesDump renders chunk.Code as a flat space-separated hex byte stream,
// for %PrintBytes.
func BytesDump(chunk *Chunk) string {
	parts := make([]string, len(chunk.Code))
	for i, b := range chunk.Code {
		parts[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(parts, " ")
}
