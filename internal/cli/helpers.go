package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"csiface/internal/config"
	"csiface/internal/storage"
	"csiface/internal/workspace"
	"csiface/pkg/types"
)

// warnf prints a non-fatal diagnostic to stderr. Recoverable conditions
// (an unrecognized class header, a history write failure) are reported
// this way and never abort the command: partial success beats rollback.
func warnf(format string, args ...interface{}) {
	yellow := color.New(color.FgYellow, color.Bold)
	yellow.Fprint(os.Stderr, "! ")
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

func loadConfig() *config.Config {
	cwd, err := os.Getwd()
	if err != nil {
		return config.DefaultConfig()
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		warnf("config: %v (using defaults)", err)
		return config.DefaultConfig()
	}
	return cfg
}

// recordOperation appends to the history index when it is enabled. History
// failures are warnings, never command failures.
func recordOperation(cfg *config.Config, op types.Operation) {
	if !cfg.History.Enabled {
		return
	}
	h, err := storage.OpenHistory(cfg.History.Dir)
	if err != nil {
		warnf("history: %v", err)
		return
	}
	defer h.Close()
	if _, err := h.Record(op); err != nil {
		warnf("history: %v", err)
	}
}

// resolveInterfaceFile turns a --interface value into a file path: a value
// with a path separator or .cs suffix is used as-is; a bare name is
// resolved by searching the workspace from the current directory.
func resolveInterfaceFile(cfg *config.Config, classFile, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("no interface name given")
	}
	if filepath.Ext(name) == ".cs" || filepath.Dir(name) != "." {
		return name, nil
	}

	root, err := os.Getwd()
	if err != nil {
		root = filepath.Dir(classFile)
	}
	finder := workspace.NewFinder(cfg.Search.Includes, cfg.Search.Excludes)
	path, err := finder.FindInterfaceFile(root, name)
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", fmt.Errorf("no file declaring interface %s found under %s", name, root)
	}
	return path, nil
}
