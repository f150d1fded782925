// internal/cli/root.go
package cli

import (
	"fmt"
	"io"
	"os"

	"career-match/internal/common/logger"

	"github.com/spf13/cobra"
)

const app = "career-match"

var (
	// Version info set from main
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// SetVersionInfo sets version information from build flags
func SetVersionInfo(v, c, b string) {
	version = v
	commit = c
	buildTime = b
}

const (
	outputTable = "table"
	outputJSON  = "json"
)

// rootOptions carries the persistent flags and the streams every subcommand
// writes to.
type rootOptions struct {
	configPath string
	output     string
	debug      bool
	jsonLogs   bool

	in    io.Reader
	out   io.Writer
	asker Asker
	// log replaces the configured logger when set.
	log logger.Logger
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd(&rootOptions{in: os.Stdin, out: os.Stdout}).Execute()
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   app,
		Short: "career-match scores PhD career questionnaires against a career catalog",
		Long: `career-match turns questionnaire answers into ranked career matches.

It provides:
  - An HTTP API and a Zeebe job worker for the match-career activity
  - One-shot scoring of an answers file and an interactive quiz
  - Dataset auditing and publishing to PostgreSQL
  - Activity registry checks`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch opts.output {
			case outputTable, outputJSON:
				return nil
			default:
				return fmt.Errorf("unknown output format %q, want table or json", opts.output)
			}
		},
	}

	cmd.SetIn(opts.in)
	cmd.SetOut(opts.out)

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "a config file (default is configs/config.yaml)")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", outputTable, "output format (table, json)")
	cmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "verbose/debug output")
	cmd.PersistentFlags().BoolVarP(&opts.jsonLogs, "json", "j", false, "json format for logging")

	cmd.AddCommand(
		newServeCmd(opts),
		newMatchCmd(opts),
		newQuizCmd(opts),
		newCareersCmd(opts),
		newDatasetCmd(opts),
		newRegistryCmd(opts),
		newVersionCmd(),
	)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", app, version)
			fmt.Fprintf(out, "  commit: %s\n", commit)
			fmt.Fprintf(out, "  built:  %s\n", buildTime)
		},
	}
}
