package main

import (
	"fmt"
	"os"

	"github.com/awnumar/memguard"
	"github.com/spf13/cobra"

	"github.com/systmms/fecops/cmd/fecops/commands"
	"github.com/systmms/fecops/internal/config"
	"github.com/systmms/fecops/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	err := run()
	// os.Exit skips defers, so purge protected memory explicitly
	// before the process ends.
	memguard.Purge()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Global flags
	var (
		noColor    bool
		debug      bool
		keyCommand string
	)

	// Create config placeholder
	cfg := &config.Config{}

	rootCmd := &cobra.Command{
		Use:   "fecops",
		Short: "Query the FEC API with the key held behind a trust boundary",
		Long: `fecops proxies a fixed set of FEC API queries for AI agents. The API
key lives in the system keyring and is loaded into process memory on
first use; tool callers only ever see query results and sanitized
error text.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Logger = logging.New(debug, noColor)
			cfg.KeyCommand = keyCommand
			return cfg.Load()
		},
	}

	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&keyCommand, "key-command", "", "External command whose stdout is the FEC API key (overrides the keyring)")

	commands.Version = version

	rootCmd.AddCommand(
		commands.NewServeCommand(cfg),
		commands.NewSearchCommitteesCommand(cfg),
		commands.NewGetFilingsCommand(cfg),
		commands.NewKeyCommand(cfg),
	)

	return rootCmd.Execute()
}
