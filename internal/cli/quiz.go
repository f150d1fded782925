// internal/cli/quiz.go
package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"career-match/internal/common/metrics"
	"career-match/internal/models"
	matchcareer "career-match/internal/workers/assessment/match-career"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

const doneItem = "Done"

// Asker asks one question at a time.
type Asker interface {
	// Choose returns the index of the selected item.
	Choose(label string, items []string) (int, error)
	// Number returns an integer in [min, max].
	Number(label string, min, max int) (int, error)
}

type promptAsker struct{}

func (promptAsker) Choose(label string, items []string) (int, error) {
	prompt := promptui.Select{
		Label: label,
		Items: items,
		Size:  len(items),
	}
	idx, _, err := prompt.Run()
	return idx, err
}

func (promptAsker) Number(label string, min, max int) (int, error) {
	prompt := promptui.Prompt{
		Label: fmt.Sprintf("%s [%d-%d]", label, min, max),
		Validate: func(input string) error {
			v, err := strconv.Atoi(input)
			if err != nil {
				return errors.New("enter a whole number")
			}
			if v < min || v > max {
				return fmt.Errorf("enter a value between %d and %d", min, max)
			}
			return nil
		},
	}
	result, err := prompt.Run()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(result)
}

type quizOptions struct {
	limit int
	gaps  bool
	save  string
}

func newQuizCmd(opts *rootOptions) *cobra.Command {
	qo := &quizOptions{}

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Answer the questionnaire interactively and print your matches",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(cmd.Context(), opts, runtimeOptions{})
			if err != nil {
				return err
			}
			defer rt.Close()

			asker := opts.asker
			if asker == nil {
				asker = promptAsker{}
			}

			answers, err := collectAnswers(rt.handler.Engine().Dataset().Questions(), asker)
			if err != nil {
				if errors.Is(err, promptui.ErrInterrupt) {
					return errors.New("quiz cancelled")
				}
				return err
			}

			if qo.save != "" {
				if err := saveAnswers(qo.save, answers); err != nil {
					return err
				}
			}

			output, err := rt.handler.Execute(cmd.Context(), metrics.ChannelCLI, &matchcareer.Input{
				Answers:     answers,
				Limit:       qo.limit,
				IncludeGaps: qo.gaps,
			})
			if err != nil {
				return describeError(err)
			}

			if opts.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), output.Assessment)
			}
			return renderAssessment(cmd.OutOrStdout(), output.Assessment)
		},
	}

	cmd.Flags().IntVarP(&qo.limit, "limit", "l", 0, "number of matches to return (default engine.top_n)")
	cmd.Flags().BoolVar(&qo.gaps, "gaps", false, "include disqualified careers as gaps")
	cmd.Flags().StringVar(&qo.save, "save", "", "write the collected answers to this file for use with match")
	return cmd
}

// collectAnswers walks the questionnaire in order. Select and ranking
// questions repeat the prompt until Done, removing each picked option.
func collectAnswers(questions []models.Question, asker Asker) (models.Answers, error) {
	answers := make(models.Answers, len(questions))

	for i, q := range questions {
		label := fmt.Sprintf("(%d/%d) %s", i+1, len(questions), q.Text)

		switch q.Type {
		case models.QuestionTypeMultipleChoice:
			idx, err := asker.Choose(label, optionTexts(q.Options))
			if err != nil {
				return nil, err
			}
			answers[q.ID] = models.SingleAnswer(q.Options[idx].ID)

		case models.QuestionTypeScale:
			values := q.ScaleValues()
			if len(values) == 0 {
				continue
			}
			v, err := asker.Number(label, values[0], values[len(values)-1])
			if err != nil {
				return nil, err
			}
			answers[q.ID] = models.SingleAnswer(strconv.Itoa(v))

		case models.QuestionTypeMultipleSelect, models.QuestionTypeRanking:
			picked, err := pickMany(label, q, asker)
			if err != nil {
				return nil, err
			}
			answers[q.ID] = models.ListAnswer(picked...)
		}
	}

	return answers, nil
}

func pickMany(label string, q models.Question, asker Asker) ([]string, error) {
	remaining := append([]models.Option(nil), q.Options...)
	var picked []string

	for len(remaining) > 0 {
		items := optionTexts(remaining)
		if len(picked) > 0 {
			items = append(items, doneItem)
		}

		idx, err := asker.Choose(label, items)
		if err != nil {
			return nil, err
		}
		if idx == len(remaining) {
			break
		}

		picked = append(picked, remaining[idx].ID)
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}

	return picked, nil
}

func optionTexts(options []models.Option) []string {
	texts := make([]string, len(options))
	for i, opt := range options {
		texts[i] = opt.Text
	}
	return texts
}

func saveAnswers(path string, answers models.Answers) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("saving answers: %w", err)
	}
	defer f.Close()
	return writeJSON(f, map[string]interface{}{"answers": answers})
}
