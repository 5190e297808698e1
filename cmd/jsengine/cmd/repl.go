package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cwbudde/go-jsengine/internal/runtime"
	"github.com/cwbudde/go-jsengine/internal/vm"
	"github.com/cwbudde/go-jsengine/pkg/jsengine"
)

const prompt = "> "

// RunREPL drives the interactive loop (§6): one line of input at a time,
// until EOF or the `exit()` command. `exit()` quits immediately; in VM
// mode, %PrintDump(), %PrintIr(), and %PrintBytes() inspect the most
// recently executed compilation instead of being evaluated as script
// source.
func RunREPL(useVM bool, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	ctx := jsengine.NewContext(out)
	vmInst := vm.New(defaultHeapSize)
	var lastChunk *vm.Chunk

	fmt.Fprint(out, prompt)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			fmt.Fprint(out, prompt)
			continue
		case line == "exit()":
			return nil
		case useVM && line == "%PrintDump()":
			printLastChunk(out, lastChunk, vm.HexDump)
			fmt.Fprint(out, prompt)
			continue
		case useVM && line == "%PrintIr()":
			printLastChunk(out, lastChunk, func(c *vm.Chunk) string { return vm.FormatIR(c, true) })
			fmt.Fprint(out, prompt)
			continue
		case useVM && line == "%PrintBytes()":
			printLastChunk(out, lastChunk, vm.BytesDump)
			fmt.Fprint(out, prompt)
			continue
		}

		if useVM {
			chunk, cell, err := runVMSource(vmInst, line)
			if chunk != nil {
				lastChunk = chunk
			}
			if err != nil {
				fmt.Fprintln(out, err)
			} else if cell != nil {
				fmt.Fprintln(out, cell.String())
			}
		} else {
			v, err := runInterpreterSource(ctx, "<repl>", line)
			if err != nil {
				fmt.Fprintln(out, err)
			} else if v.Kind != runtime.KindUndefined {
				fmt.Fprintln(out, v.String())
			}
		}

		fmt.Fprint(out, prompt)
	}
	return scanner.Err()
}

func printLastChunk(out io.Writer, chunk *vm.Chunk, render func(*vm.Chunk) string) {
	if chunk == nil {
		fmt.Fprintln(out, "no compilation has run yet")
		return
	}
	fmt.Fprint(out, render(chunk))
}
