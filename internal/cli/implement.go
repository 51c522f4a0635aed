package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"csiface/internal/parser"
	"csiface/internal/stubs"
	"csiface/pkg/types"
)

var implementInterface string

var implementCmd = &cobra.Command{
	Use:   "implement <class-file>",
	Short: "Stub out interface members the class does not define",
	Long: `Generate placeholder implementations for interface members missing
from a class.

Members the class already defines (matched by name) are skipped. Stubs are
inserted before the class's closing brace in a fixed order: properties,
then events, then methods. Method bodies throw NotImplementedException.

Without --interface the first interface the class implements (by the
I-prefix naming convention) is used.

Example:
  csiface implement Dice.cs
  csiface implement Dice.cs --interface IDice`,
	Args: cobra.ExactArgs(1),
	Run:  runImplement,
}

func init() {
	implementCmd.Flags().StringVarP(&implementInterface, "interface", "i", "", "Interface name or file (default: first implemented interface)")
}

func runImplement(cmd *cobra.Command, args []string) {
	classFile := args[0]
	cfg := loadConfig()

	data, err := os.ReadFile(classFile)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	classText := string(data)

	target := implementInterface
	if target == "" {
		implemented := parser.ImplementedInterfaces(classText)
		if len(implemented) == 0 {
			fmt.Printf("Error: %s implements no interfaces; pass --interface\n", classFile)
			return
		}
		target = implemented[0]
	}

	ifacePath, err := resolveInterfaceFile(cfg, classFile, target)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	ifaceData, err := os.ReadFile(ifacePath)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	members := stubs.ParseInterfaceMembers(string(ifaceData))
	if members.Empty() {
		fmt.Printf("No members found in %s\n", ifacePath)
		return
	}

	missing := stubs.FilterUnimplemented(members, classText)
	if missing.Empty() {
		fmt.Printf("%s already implements all %d members\n", classFile, members.Count())
		return
	}

	updated := stubs.InsertIntoClass(classText, stubs.GenerateStubs(missing))
	if updated == classText {
		warnf("could not locate the class body in %s; no stubs inserted", classFile)
		return
	}
	if err := os.WriteFile(classFile, []byte(updated), 0644); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Stubbed %d of %d members in %s\n", missing.Count(), members.Count(), classFile)

	recordOperation(cfg, types.Operation{
		Kind:      "implement",
		ClassName: parser.ClassName(classText),
		Interface: parser.InterfaceName(string(ifaceData)),
		File:      classFile,
		Detail:    fmt.Sprintf("%d stubs", missing.Count()),
	})
}
