// internal/cli/match.go
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	apperrors "career-match/internal/common/errors"
	"career-match/internal/common/metrics"

	"github.com/spf13/cobra"
)

type matchOptions struct {
	answersPath string
	limit       int
	gaps        bool
}

func newMatchCmd(opts *rootOptions) *cobra.Command {
	mo := &matchOptions{}

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Score an answers file and print the ranked careers",
		Long: `Score an answers file and print the ranked careers.

The file holds either a full request ({"answers": {...}, "limit": 3}) or a
bare answers object keyed by question id. Use "-" to read from stdin.`,
		Example: `  career-match match --answers answers.json
  career-match match --answers - --limit 3 --gaps -o json < answers.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readAnswers(cmd.InOrStdin(), mo.answersPath)
			if err != nil {
				return err
			}

			body, err := buildRequest(raw, mo, cmd)
			if err != nil {
				return err
			}

			rt, err := openRuntime(cmd.Context(), opts, runtimeOptions{})
			if err != nil {
				return err
			}
			defer rt.Close()

			input, err := rt.handler.ParseInput(body)
			if err != nil {
				return describeError(err)
			}

			output, err := rt.handler.Execute(cmd.Context(), metrics.ChannelCLI, input)
			if err != nil {
				return describeError(err)
			}

			if opts.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), output.Assessment)
			}
			return renderAssessment(cmd.OutOrStdout(), output.Assessment)
		},
	}

	cmd.Flags().StringVarP(&mo.answersPath, "answers", "a", "", "answers file, or - for stdin")
	cmd.Flags().IntVarP(&mo.limit, "limit", "l", 0, "number of matches to return (default engine.top_n)")
	cmd.Flags().BoolVar(&mo.gaps, "gaps", false, "include disqualified careers as gaps")
	_ = cmd.MarkFlagRequired("answers")

	return cmd
}

func readAnswers(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading answers file: %w", err)
	}
	return data, nil
}

// buildRequest wraps a bare answers object into a request and applies the
// --limit and --gaps flags when they were set.
func buildRequest(raw []byte, mo *matchOptions, cmd *cobra.Command) ([]byte, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, describeError(apperrors.NewInvalidAnswersFormatError(err.Error()))
	}

	if _, ok := doc["answers"]; !ok {
		doc = map[string]json.RawMessage{"answers": raw}
	}

	if cmd.Flags().Changed("limit") {
		doc["limit"] = json.RawMessage(fmt.Sprintf("%d", mo.limit))
	}
	if cmd.Flags().Changed("gaps") {
		doc["includeGaps"] = json.RawMessage(fmt.Sprintf("%t", mo.gaps))
	}

	return json.Marshal(doc)
}

// describeError flattens the error code and its details into the message
// printed by main.
func describeError(err error) error {
	stdErr := apperrors.AsStandardError(err)
	details, _ := stdErr.Metadata["errors"].([]string)
	if len(details) == 0 && stdErr.Details != "" {
		details = []string{stdErr.Details}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", stdErr.Code, stdErr.Message)
	for _, d := range details {
		b.WriteString("\n  - ")
		b.WriteString(d)
	}
	return errors.New(b.String())
}
