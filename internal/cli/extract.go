package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"csiface/internal/editor"
	"csiface/internal/extract"
	"csiface/internal/parser"
	"csiface/pkg/types"
)

var extractName string
var extractDryRun bool

var extractCmd = &cobra.Command{
	Use:   "extract <class-file>",
	Short: "Extract an interface from a class's public members",
	Long: `Extract an interface from the public methods and events of a class.

The interface file keeps the class's using directives and namespace. The
class declaration is rewritten to implement the new interface; when the
declaration cannot be located the interface file is still created and a
warning is printed.

Example:
  csiface extract Dice.cs
  csiface extract Dice.cs --name IGameDice
  csiface extract Dice.cs --name Contracts/IDice.cs`,
	Args: cobra.ExactArgs(1),
	Run:  runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractName, "name", "n", "", "Interface name or relative path (default: I<ClassFileName>)")
	extractCmd.Flags().BoolVar(&extractDryRun, "dry-run", false, "Print the generated interface instead of writing files")
}

func runExtract(cmd *cobra.Command, args []string) {
	classFile := args[0]
	cfg := loadConfig()

	data, err := os.ReadFile(classFile)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	classText := string(data)

	base := strings.TrimSuffix(filepath.Base(classFile), ".cs")
	result := extract.GenerateInterfaceCode(classText, extractName, base)

	if extractDryRun {
		fmt.Print(result.Body)
		return
	}

	outPath := interfaceOutputPath(cfg.Output.Dir, classFile, result.FileName)
	if _, err := os.Stat(outPath); err == nil {
		fmt.Printf("Error: %s already exists\n", outPath)
		return
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if err := os.WriteFile(outPath, []byte(result.Body), 0644); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Created %s\n", outPath)

	className := parser.ClassName(classText)
	updated, ok := editor.AddInterfaceToClass(classText, className, result.InterfaceName)
	if !ok {
		warnf("could not locate the declaration of class %q in %s; add \": %s\" by hand", className, classFile, result.InterfaceName)
	} else if updated != classText {
		if err := os.WriteFile(classFile, []byte(updated), 0644); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Updated %s to implement %s\n", classFile, result.InterfaceName)
	}

	recordOperation(cfg, types.Operation{
		Kind:      "extract",
		ClassName: className,
		Interface: result.InterfaceName,
		File:      classFile,
		Detail:    outPath,
	})
}

// interfaceOutputPath places the generated file next to the class unless
// the requested name carried a path or the config sets an output dir.
func interfaceOutputPath(outputDir, classFile, fileName string) string {
	classDir := filepath.Dir(classFile)
	if strings.ContainsRune(fileName, '/') {
		return filepath.Join(classDir, filepath.FromSlash(fileName))
	}
	if outputDir != "" {
		return filepath.Join(classDir, outputDir, fileName)
	}
	return filepath.Join(classDir, fileName)
}
