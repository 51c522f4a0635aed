package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"csiface/internal/config"
	"csiface/internal/storage"
	"csiface/pkg/types"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history [query]",
	Short: "Show or search applied refactorings",
	Long: `Show the operation history, newest first.

With a query argument, full-text search over kind, class, interface, file
and detail.

Example:
  csiface history
  csiface history IDice
  csiface history extract --limit 5`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "Max results")
}

func runHistory(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	if !cfg.History.Enabled {
		fmt.Printf("History is disabled in %s.\n", config.FileName)
		return
	}

	h, err := storage.OpenHistory(cfg.History.Dir)
	if err != nil {
		fmt.Printf("Error opening history: %v\n", err)
		return
	}
	defer h.Close()

	var ops []types.Operation
	if len(args) == 1 {
		ops, err = h.Search(args[0], historyLimit)
	} else {
		ops, err = h.Recent(historyLimit)
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	if len(ops) == 0 {
		fmt.Println("No operations found.")
		return
	}
	for _, op := range ops {
		fmt.Printf("%s  %-12s %s -> %s\n", op.CreatedAt.Format("2006-01-02 15:04"), op.Kind, op.ClassName, op.Interface)
		if op.Detail != "" {
			fmt.Printf("                    %s\n", op.Detail)
		}
	}
	fmt.Printf("\nTotal: %d operations\n", len(ops))
}
