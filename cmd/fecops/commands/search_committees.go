package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/systmms/fecops/internal/config"
	"github.com/systmms/fecops/internal/fecapi"
)

func NewSearchCommitteesCommand(cfg *config.Config) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search-committees <query>",
		Short: "Search for FEC committees by name",
		Long: `Search for committees by name or partial name and print the matching
records as JSON. Committee IDs from the results feed get-filings.

Examples:
  fecops search-committees "Utah Republican Party"
  fecops search-committees Harris --limit 5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver := newResolver(cfg)
			client := newClient(cfg, resolver)

			results, err := client.SearchCommittees(cmd.Context(), fecapi.SearchRequest{
				Query: args[0],
				Limit: limit,
			})
			if err != nil {
				return sanitized(resolver, err)
			}

			if len(results) == 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "No committees found matching '%s'\n", args[0])
				return nil
			}
			return printJSON(cmd.OutOrStdout(), results)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum results to return (values above 100 are clamped)")
	return cmd
}
