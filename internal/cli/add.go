package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"csiface/internal/editor"
	"csiface/internal/parser"
	"csiface/pkg/types"
)

var addInterface string

var addCmd = &cobra.Command{
	Use:   "add <class-file> <member-name>",
	Short: "Add one public member of a class to its interface",
	Long: `Add a newly written public method or property to an existing interface.

The member is located by name in the class file and its signature is
spliced into the interface's member list, preserving the file's ambient
indentation. Adding a member that is already present is a no-op, so the
command is safe to repeat.

Without --interface the first interface the class implements (by the
I-prefix naming convention) is used, resolved to a file by searching the
workspace.

Example:
  csiface add Dice.cs RollDice
  csiface add Dice.cs Sides --interface IDice
  csiface add Dice.cs Sides --interface Contracts/IDice.cs`,
	Args: cobra.ExactArgs(2),
	Run:  runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addInterface, "interface", "i", "", "Target interface name or file (default: first implemented interface)")
}

func runAdd(cmd *cobra.Command, args []string) {
	classFile, member := args[0], args[1]
	cfg := loadConfig()

	data, err := os.ReadFile(classFile)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	classText := string(data)

	target := addInterface
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
	ifaceText := string(ifaceData)

	line := parser.FindMemberLine(classText, member)
	if line == "" {
		fmt.Printf("Error: no public member named %q in %s\n", member, classFile)
		return
	}

	var updated string
	var kind string
	if m := parser.ParseMethodLine(line, classText); m != nil {
		updated = editor.AddMethod(ifaceText, *m)
		kind = "add-method"
	} else if p := parser.ParsePropertyLine(line); p != nil {
		updated = editor.AddProperty(ifaceText, *p)
		kind = "add-property"
	} else {
		fmt.Printf("Error: %q is not a recognizable public method or property\n", member)
		return
	}

	if updated == ifaceText {
		fmt.Printf("%s already declares %s; nothing to do\n", ifacePath, member)
		return
	}
	if err := os.WriteFile(ifacePath, []byte(updated), 0644); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Added %s to %s\n", member, ifacePath)

	recordOperation(cfg, types.Operation{
		Kind:      kind,
		ClassName: parser.ClassName(classText),
		Interface: parser.InterfaceName(updated),
		File:      ifacePath,
		Detail:    member,
	})
}
