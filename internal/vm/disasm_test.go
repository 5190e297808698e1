package vm_test

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-jsengine/internal/lexer"
	"github.com/cwbudde/go-jsengine/internal/parser"
	"github.com/cwbudde/go-jsengine/internal/vm"
)

func compile(t *testing.T, src string) *vm.Chunk {
	t.Helper()
	l := lexer.New(src)
	p := parser.New(l)
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("parse errors for %q: %v", src, errs)
	}
	chunk, err := vm.NewCodegen().Compile(program)
	if err != nil {
		t.Fatalf("Compile(%q): %v", src, err)
	}
	return chunk
}

func TestDisassembleCoversEveryByte(t *testing.T) {
	chunk := compile(t, `let a = 1; let b = "x"; a + b;`)
	instrs := vm.Disassemble(chunk)

	total := 0
	for _, in := range instrs {
		if in.Offset != total {
			t.Fatalf("instruction at reported offset %d, expected %d (gap or overlap in decoding)", in.Offset, total)
		}
		total += in.Width
	}
	if total != len(chunk.Code) {
		t.Errorf("decoded %d bytes, chunk has %d", total, len(chunk.Code))
	}
}

func TestFormatIRMentionsOpcodeNames(t *testing.T) {
	chunk := compile(t, "1 + 2;")
	ir := vm.FormatIR(chunk, false)
	for _, want := range []string{"LdaSmi", "Add", "Hlt"} {
		if !strings.Contains(ir, want) {
			t.Errorf("IR listing missing %q:\n%s", want, ir)
		}
	}
}

func TestBytesDumpMatchesChunkLength(t *testing.T) {
	chunk := compile(t, "1 + 2;")
	dump := vm.BytesDump(chunk)
	fields := strings.Fields(dump)
	if len(fields) != len(chunk.Code) {
		t.Errorf("BytesDump produced %d byte fields, want %d", len(fields), len(chunk.Code))
	}
}

func TestHexDumpContainsEveryByteValue(t *testing.T) {
	chunk := compile(t, "1 + 2;")
	dump := vm.HexDump(chunk)
	if dump == "" {
		t.Fatal("HexDump returned empty output for a non-empty chunk")
	}
}
