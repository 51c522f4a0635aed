package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "csiface",
	Short: "Extract and maintain C# interfaces from class source",
	Long: `csiface - C# interface extraction toolkit

csiface reads the source text of a C# class, collects its public members
(methods, properties, events) and synthesizes a matching interface file,
rewriting the class declaration to implement it. It also supports the
incremental operations: adding a single member to an existing interface,
and generating stub implementations for interface members a class declares
but does not define.

Parsing is best-effort pattern matching over raw text, not a compiler:
constructs it does not recognize are skipped, never fatal.

Quick Start:
  csiface extract Dice.cs              Extract IDice.cs from Dice.cs
  csiface add Dice.cs RollDice         Add one member to the interface
  csiface implement Dice.cs            Stub out missing interface members
  csiface list Dice.cs                 Show implemented interfaces
  csiface serve                        Start MCP server for IDE integration`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(implementCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}
