package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"csiface/internal/parser"
)

var listCmd = &cobra.Command{
	Use:   "list <class-file>",
	Short: "List the interfaces a class implements",
	Long: `List the interface names in a class's inheritance clause.

Entries are filtered by the I-prefix naming convention; a base class in
the clause is not reported (and an I-prefixed base class would be - this
is a convention filter, not type resolution).`,
	Args: cobra.ExactArgs(1),
	Run:  runList,
}

func runList(cmd *cobra.Command, args []string) {
	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	names := parser.ImplementedInterfaces(string(data))
	if len(names) == 0 {
		fmt.Println("No implemented interfaces found.")
		return
	}
	for _, name := range names {
		fmt.Println(name)
	}
}
