package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rowset/rowset/adapters"
	"github.com/rowset/rowset/config"
	"github.com/rowset/rowset/core"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "rowset",
	Short: "Export tables from SQL sources into row-oriented files",
	Long: `Rowset reads tables from configured SQL sources and writes them out as
delimited text, JSON, XLSX or terminal previews. Exports stream row by
row, so tables of any size fit in constant memory.

Sources are named in a YAML config file; sqlite, postgres, mysql and
duckdb are supported out of the box.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", defaultConfigPath(), "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "rowset.yaml"
	}
	return filepath.Join(dir, "rowset", "config.yaml")
}

// openConnection resolves nameOrID against the config file and connects to
// the matching source. The caller owns the returned connection.
func openConnection(nameOrID string) (*core.Connection, *config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("config.Load: %w", err)
	}

	entry, err := cfg.GetConnection(nameOrID)
	if err != nil {
		return nil, nil, err
	}

	conn, err := adapters.NewConnection(&core.ConnectionParams{
		ID:   core.ConnectionID(entry.ID),
		Name: entry.Name,
		Type: entry.Type,
		URL:  entry.URL,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("adapters.NewConnection: %w", err)
	}

	return conn, cfg, nil
}
