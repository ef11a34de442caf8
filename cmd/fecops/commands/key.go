package commands

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/systmms/fecops/internal/config"
	"github.com/systmms/fecops/internal/keystore"
)

func NewKeyCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Manage the FEC API key in the system keyring",
	}

	cmd.AddCommand(
		newKeySetCommand(cfg),
		newKeyCheckCommand(cfg),
		newKeyDeleteCommand(cfg),
	)
	return cmd
}

func newKeySetCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "set",
		Short: "Store the API key from stdin",
		Long: `Read an API key from stdin and store it in the system keyring.

The key never appears on the command line (and so never in shell
history or the process table).

Examples:
  fecops key set < key.txt
  pass show fec/api-key | fecops key set`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(cmd.InOrStdin())
			line, err := reader.ReadString('\n')
			if err != nil && line == "" {
				return fmt.Errorf("reading key from stdin: %w", err)
			}

			key := strings.TrimSpace(line)
			if key == "" {
				return fmt.Errorf("no key provided on stdin")
			}

			store := cfg.Store()
			if err := store.Put(key); err != nil {
				return fmt.Errorf("storing key: %w", err)
			}
			cfg.Logger.Info("FEC API key stored in keyring %s/%s", store.Service(), store.Account())
			return nil
		},
	}
}

func newKeyCheckCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that an API key can be resolved",
		Long: `Attempt key resolution and report the outcome. The key value itself
is never printed. Exits non-zero when no key can be resolved.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver := newResolver(cfg)
			if _, err := resolver.APIKey(cmd.Context()); err != nil {
				return sanitized(resolver, err)
			}
			if cfg.KeyCommand != "" {
				fmt.Fprintln(cmd.OutOrStdout(), "FEC API key resolved via external command")
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "FEC API key resolved from keyring %s/%s\n", cfg.KeyringService, cfg.KeyringAccount)
			}
			return nil
		},
	}
}

func newKeyDeleteCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Remove the API key from the system keyring",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := cfg.Store()
			if err := store.Delete(); err != nil {
				if stderrors.Is(err, keystore.ErrNotFound) {
					fmt.Fprintf(cmd.ErrOrStderr(), "No key stored in keyring %s/%s\n", store.Service(), store.Account())
					return nil
				}
				return fmt.Errorf("deleting key: %w", err)
			}
			cfg.Logger.Info("FEC API key removed from keyring %s/%s", store.Service(), store.Account())
			return nil
		},
	}
}
