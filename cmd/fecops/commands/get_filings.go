package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/systmms/fecops/internal/config"
	"github.com/systmms/fecops/internal/fecapi"
)

func NewGetFilingsCommand(cfg *config.Config) *cobra.Command {
	var (
		limit          int
		formType       string
		cycle          int
		reportType     string
		sort           string
		includeAmended bool
	)

	cmd := &cobra.Command{
		Use:   "get-filings <committee-id>",
		Short: "Get filings for a committee",
		Long: `List filings for one committee and print filing summaries as JSON.

By default only the most recent version of each filing is returned;
pass --include-amended to also see superseded amendments.

Examples:
  fecops get-filings C00089482 --limit 5
  fecops get-filings C00703975 --form-type F3P --cycle 2024
  fecops get-filings C00089482 --sort total_receipts --include-amended`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver := newResolver(cfg)
			client := newClient(cfg, resolver)

			filings, err := client.GetFilings(cmd.Context(), fecapi.FilingsRequest{
				CommitteeID:    args[0],
				Limit:          limit,
				FormType:       formType,
				Cycle:          cycle,
				ReportType:     reportType,
				Sort:           sort,
				MostRecentOnly: !includeAmended,
			})
			if err != nil {
				return sanitized(resolver, err)
			}

			if len(filings) == 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "No filings found for committee '%s'\n", args[0])
				return nil
			}
			return printJSON(cmd.OutOrStdout(), filings)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum results to return (values above 100 are clamped)")
	cmd.Flags().StringVar(&formType, "form-type", "", "Filter by form type (e.g. F3, F3P, F3X)")
	cmd.Flags().IntVar(&cycle, "cycle", 0, "Filter by two-year election cycle (e.g. 2024)")
	cmd.Flags().StringVar(&reportType, "report-type", "", "Filter by report type (e.g. Q1, Q2, MY, YE, 12G, 30G)")
	cmd.Flags().StringVar(&sort, "sort", fecapi.DefaultSort, "Sort field, '-' prefix for descending")
	cmd.Flags().BoolVar(&includeAmended, "include-amended", false, "Include superseded amendments")
	return cmd
}
