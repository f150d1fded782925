// internal/cli/careers.go
package cli

import (
	"fmt"

	"career-match/internal/api"

	"github.com/spf13/cobra"
)

func newCareersCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "careers",
		Short: "List the career catalog with resolved profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(cmd.Context(), opts, runtimeOptions{})
			if err != nil {
				return err
			}
			defer rt.Close()

			resp := api.SummarizeCareers(rt.handler.Engine().Dataset())
			if opts.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}

			rows := make([][]string, 0, len(resp.Careers))
			for _, c := range resp.Careers {
				profile := "curated"
				if !c.Curated {
					profile = "minimal"
				}
				rows = append(rows, []string{c.ID, c.Name, c.Category, profile})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Dataset: %s\n", resp.Version)
			return renderTable(cmd.OutOrStdout(), []string{"ID", "Career", "Category", "Profile"}, rows)
		},
	}
}
