package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"csiface/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file in the current directory",
	Run:   runInit,
}

func runInit(cmd *cobra.Command, args []string) {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	path := filepath.Join(cwd, config.FileName)
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("%s already exists\n", path)
		return
	}

	if err := config.Save(cwd, config.DefaultConfig()); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Created %s\n", path)
}
