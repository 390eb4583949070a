package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/gridpath/gridmap"
	"github.com/pdrpinto/gridpath/internal/logging"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gridpath",
		Short:         "gridpath finds walkable routes across tile maps",
		Long:          `gridpath loads a YAML or JSON tile map and searches four-directional routes between cells.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(newFindCmd(), newServeCmd(), newVersionCmd())
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func loggerFor(cmd *cobra.Command) (*slog.Logger, error) {
	levelName, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	return logging.NewWithWriter(cmd.ErrOrStderr(), level), nil
}

func loadMap(cmd *cobra.Command) (*gridmap.Map, error) {
	path, _ := cmd.Flags().GetString("map")
	if path == "" {
		return nil, fmt.Errorf("--map is required")
	}
	return gridmap.Load(path)
}
