package commands

import (
	"github.com/spf13/cobra"

	"github.com/systmms/fecops/internal/config"
	"github.com/systmms/fecops/internal/mcpserver"
)

func NewServeCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server over stdio",
		Long: `Run the FEC API MCP server on stdin/stdout.

The server exposes two tools, search_committees and get_filings. The
API key is resolved lazily on the first tool call that needs it, so
starting the server never triggers a keyring unlock prompt on its own.

Examples:
  # Register with an MCP-capable agent runtime
  fecops serve

  # Use an external credential helper instead of the keyring
  fecops serve --key-command "pass show fec/api-key"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver := newResolver(cfg)
			client := newClient(cfg, resolver)

			cfg.Logger.Info("fecops MCP server starting (stdio)")
			if cfg.KeyCommand != "" {
				cfg.Logger.Debug("Key source: external command override")
			} else {
				cfg.Logger.Debug("Key source: system keyring %s/%s", cfg.KeyringService, cfg.KeyringAccount)
			}
			cfg.Logger.Debug("Key resolution deferred until the first tool call")

			srv := mcpserver.New(Version, resolver, client, cfg.Logger)
			return srv.ServeStdio()
		},
	}
}
