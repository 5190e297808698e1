package cmd

import (
	"fmt"
	"io"

	"github.com/cwbudde/go-jsengine/internal/lexer"
	"github.com/cwbudde/go-jsengine/internal/parser"
	"github.com/cwbudde/go-jsengine/internal/runtime"
	"github.com/cwbudde/go-jsengine/internal/source"
	"github.com/cwbudde/go-jsengine/internal/vm"
	"github.com/cwbudde/go-jsengine/pkg/jsengine"
)

// defaultHeapSize is the VM arena size a CLI-driven run gets; large enough
// for a REPL session or a small script, matching the teacher's practice of
// picking one sane default rather than exposing a tuning flag for it.
const defaultHeapSize = 1 << 20 // 1 MiB

// RunFile loads path (handling a BOM per internal/source), then executes it
// via the interpreter or, if useVM, the bytecode VM. Script output such as
// console.log goes to out; a load, parse or runtime failure is returned as
// an error (§7: errors carry a kind prefix and a message) and is not
// written to out. The value of the last statement is not printed.
func RunFile(path string, useVM bool, out io.Writer) error {
	src, err := source.Load(path)
	if err != nil {
		return err
	}

	if useVM {
		_, _, err := runVMSource(vm.New(defaultHeapSize), src)
		return err
	}

	ctx := jsengine.NewContext(out)
	_, err = runInterpreterSource(ctx, path, src)
	return err
}

// runInterpreterSource compiles and runs src against ctx, returning the
// value of its last statement the way pkg/jsengine.Script.Run does.
func runInterpreterSource(ctx *jsengine.Context, filename, src string) (runtime.Value, error) {
	script, err := jsengine.Compile(ctx, filename, src)
	if err != nil {
		return runtime.Undefined(), err
	}
	return script.Run()
}

// runVMSource compiles src with the bytecode codegen and executes it on m,
// returning both the resulting chunk (so the REPL's %PrintDump/%PrintIr/
// %PrintBytes commands can inspect the most recently executed compilation)
// and R0's final cell.
func runVMSource(m *vm.VM, src string) (*vm.Chunk, *vm.Cell, error) {
	l := lexer.New(src)
	p := parser.New(l)
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		return nil, nil, fmt.Errorf("Syntax: %d parse error(s): %s", len(errs), errs[0].Error())
	}

	g := vm.NewCodegen()
	chunk, err := g.Compile(program)
	if err != nil {
		return nil, nil, err
	}

	cell, err := m.Run(chunk)
	if err != nil {
		return chunk, nil, err
	}
	return chunk, cell, nil
}
