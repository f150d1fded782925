// internal/cli/registry.go
package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"career-match/internal/common/validation"
	"career-match/pkg/registry"

	"github.com/spf13/cobra"
)

func newRegistryCmd(opts *rootOptions) *cobra.Command {
	var path string

	load := func() (*registry.ActivityRegistry, error) {
		if path == "" {
			return registry.Default()
		}
		return registry.LoadRegistry(path)
	}

	cmd := &cobra.Command{
		Use:   "registry",
		Short: "Inspect the activity registry the job worker is built from",
	}
	cmd.PersistentFlags().StringVar(&path, "path", "", "registry file (default is the registry compiled into the binary)")

	list := &cobra.Command{
		Use:   "list",
		Short: "List registered activities",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := load()
			if err != nil {
				return err
			}
			if opts.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), reg)
			}

			rows := make([][]string, 0, len(reg.Activities))
			for _, a := range reg.Activities {
				rows = append(rows, []string{
					a.TaskType,
					a.DisplayName,
					a.Version,
					a.ImplementationStatus,
					a.Timeout,
					strconv.Itoa(a.Retries),
					strings.Join(a.Workflows, ", "),
					strings.Join(a.ErrorCodes, ", "),
				})
			}
			return renderTable(cmd.OutOrStdout(), []string{"Task type", "Activity", "Version", "Status", "Timeout", "Retries", "Workflows", "Error codes"}, rows)
		},
	}

	validate := &cobra.Command{
		Use:   "validate",
		Short: "Check required fields and compile every input and output schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := load()
			if err != nil {
				return fmt.Errorf("failed to load registry: %w", err)
			}

			errs := []error{reg.Validate()}
			for _, a := range reg.Activities {
				schemas := []struct {
					kind   string
					schema map[string]interface{}
				}{{"input", a.InputSchema}, {"output", a.OutputSchema}}
				for _, s := range schemas {
					if len(s.schema) == 0 {
						continue
					}
					if _, err := validation.NewValidator(s.schema); err != nil {
						errs = append(errs, fmt.Errorf("activity %s %s schema: %w", a.ID, s.kind, err))
					}
				}
			}
			if err := errors.Join(errs...); err != nil {
				return fmt.Errorf("registry validation failed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Registry validation passed. Found %d activities.\n", len(reg.Activities))
			return nil
		},
	}

	cmd.AddCommand(list, validate)
	return cmd
}
