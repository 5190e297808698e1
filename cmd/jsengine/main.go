// Command jsengine is the CLI entrypoint: no argument starts an
// interactive REPL, a single path argument executes that file, and --vm
// selects the bytecode VM instead of the tree-walking interpreter (§6).
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-jsengine/cmd/jsengine/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
