// Package cmd wires the jsengine CLI: a single root command that selects
// interactive vs file execution and picks between the tree-walking
// interpreter and the bytecode VM (§6). The CLI, file reading, and banners
// are the engine's external, interface-only collaborator (spec.md §1); this
// package supplies a minimal faithful one in the teacher's cobra style.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information, overridable by build flags the way the teacher's
// cmd/dwscript/cmd/root.go is.
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var useVM bool
var showVersion bool

var rootCmd = &cobra.Command{
	Use:   "jsengine [file]",
	Short: "A small JavaScript execution engine",
	Long: `jsengine is a Go implementation of a pragmatic ECMAScript subset:
a lexer/parser, a tree-walking interpreter, and a register-based bytecode
virtual machine.

With no argument, jsengine starts an interactive REPL. Given a single file
path, it executes that file. --vm selects the bytecode VM in either mode;
the tree-walking interpreter is the default.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&useVM, "vm", false, "execute via the bytecode VM instead of the tree-walking interpreter")
	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "print version information")
}

// Execute runs the root command; main.go reports whatever error it returns.
func Execute() error {
	return rootCmd.Execute()
}

func runRoot(_ *cobra.Command, args []string) error {
	if showVersion {
		printVersion(os.Stdout)
		return nil
	}

	if len(args) == 1 {
		return RunFile(args[0], useVM, os.Stdout)
	}
	return RunREPL(useVM, os.Stdin, os.Stdout)
}

func printVersion(w *os.File) {
	fmt.Fprintf(w, "jsengine version %s\n", Version)
	fmt.Fprintf(w, "Commit: %s\n", GitCommit)
	fmt.Fprintf(w, "Built:  %s\n", BuildDate)
}
