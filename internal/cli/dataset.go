// internal/cli/dataset.go
package cli

import (
	"errors"
	"fmt"

	"career-match/internal/common/database"
	"career-match/internal/common/logger"
	"career-match/internal/dataset"

	"github.com/spf13/cobra"
)

// errAuditFindings makes `dataset audit --strict` exit non-zero.
var errAuditFindings = errors.New("dataset audit found vocabulary drift")

func newDatasetCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Inspect and publish the questionnaire and career dataset",
	}
	cmd.AddCommand(newDatasetAuditCmd(opts), newDatasetPublishCmd(opts))
	return cmd
}

func newDatasetAuditCmd(opts *rootOptions) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Report tags, levels and profiles that can never contribute to a score",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(cmd.Context(), opts, runtimeOptions{})
			if err != nil {
				return err
			}
			defer rt.Close()

			eng := rt.handler.Engine()
			report := eng.Dataset().Audit(eng.Config().RadarDimensions)

			if opts.output == outputJSON {
				err = writeJSON(cmd.OutOrStdout(), report)
			} else {
				err = renderAudit(cmd.OutOrStdout(), report)
			}
			if err != nil {
				return err
			}

			if strict && !report.Clean() {
				return errAuditFindings
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error when the audit finds anything")
	return cmd
}

func newDatasetPublishCmd(opts *rootOptions) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Validate a dataset and store it in PostgreSQL under its version",
		Long: `Validate a dataset and store it in PostgreSQL under its version.

Without --from the dataset compiled into the binary is published. Services
started with dataset.source=postgres load the latest published version, or
the one named by dataset.version.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return fmt.Errorf("config load failed: %w", err)
			}

			log := opts.log
			if log == nil {
				zapLog, err := opts.newLogger(cfg.Logging, false)
				if err != nil {
					return fmt.Errorf("logger init failed: %w", err)
				}
				defer zapLog.Sync()
				log = logger.NewZapAdapter(zapLog)
			}

			var ds *dataset.Dataset
			if from != "" {
				ds, err = dataset.LoadDir(from)
			} else {
				ds, err = dataset.LoadEmbedded()
			}
			if err != nil {
				return err
			}

			pg, err := database.NewPostgres(cfg.Database.Postgres)
			if err != nil {
				return err
			}
			defer pg.Close()

			if err := dataset.Publish(cmd.Context(), pg, ds); err != nil {
				return err
			}

			log.Info("dataset published", map[string]interface{}{
				"version":   ds.Version(),
				"questions": len(ds.Questions()),
				"careers":   len(ds.Catalog()),
			})
			fmt.Fprintf(cmd.OutOrStdout(), "published dataset %s\n", ds.Version())
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "directory holding questions.json, taxonomy.json and catalog.json")
	return cmd
}
