// internal/cli/cli_test.go
package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"career-match/internal/api"
	"career-match/internal/common/logger"
	"career-match/internal/dataset"
	"career-match/internal/models"

	"github.com/manifoldco/promptui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
app:
  name: career-match-test
dataset:
  source: embedded
cache:
  enabled: false
logging:
  level: error
  format: console
  output: stderr
`

const answersFile = `{
	"skills_technical_1": "a",
	"programming_experience": 4,
	"data_analysis_experience": 4,
	"mathematics_background": 4,
	"phd_domain_1": "d",
	"retired_question": "a"
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

type cliResult struct {
	out string
	err error
}

func runCLI(t *testing.T, asker Asker, stdin string, args ...string) cliResult {
	t.Helper()

	var out bytes.Buffer
	opts := &rootOptions{
		in:    strings.NewReader(stdin),
		out:   &out,
		asker: asker,
		log:   logger.NewTestLogger(t),
	}
	cmd := newRootCmd(opts)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--config", writeFile(t, "config.yaml", testConfig)}, args...))

	err := cmd.Execute()
	return cliResult{out: out.String(), err: err}
}

// scriptedAsker picks the first option, stops multi-picks after one choice
// and answers scales with their maximum.
type scriptedAsker struct {
	labels []string
	err    error
}

func (a *scriptedAsker) Choose(label string, items []string) (int, error) {
	if a.err != nil {
		return 0, a.err
	}
	a.labels = append(a.labels, label)
	if items[len(items)-1] == doneItem {
		return len(items) - 1, nil
	}
	return 0, nil
}

func (a *scriptedAsker) Number(label string, min, max int) (int, error) {
	if a.err != nil {
		return 0, a.err
	}
	a.labels = append(a.labels, label)
	return max, nil
}

func TestVersion(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "today")
	defer SetVersionInfo("dev", "unknown", "unknown")

	res := runCLI(t, nil, "", "version")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "career-match 1.2.3")
	assert.Contains(t, res.out, "commit: abc123")
}

func TestRoot_RejectsUnknownOutput(t *testing.T) {
	res := runCLI(t, nil, "", "careers", "-o", "yaml")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "unknown output format")
}

func TestMatch_TableOutput(t *testing.T) {
	path := writeFile(t, "answers.json", answersFile)

	res := runCLI(t, nil, "", "match", "--answers", path)
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Status:")
	assert.Contains(t, res.out, "Domain:  mathematical")
	assert.Contains(t, res.out, "DIMENSION")
	assert.Contains(t, res.out, "retired_question unknown_question")
}

func TestRenderAssessment_RadarPercent(t *testing.T) {
	var out bytes.Buffer
	err := renderAssessment(&out, models.Assessment{
		Status: models.StatusNoMatch,
		RadarData: models.RadarData{
			Categories: []string{"Leadership", "Creativity"},
			Scores:     []float64{0.42, 0.61},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "42%")
	assert.Contains(t, out.String(), "61%")
}

func TestMatch_JSONFromStdin(t *testing.T) {
	res := runCLI(t, nil, `{"answers": `+answersFile+`, "limit": 5}`, "match", "--answers", "-", "--limit", "2", "--gaps", "-o", "json")
	require.NoError(t, res.err)

	var a models.Assessment
	require.NoError(t, json.Unmarshal([]byte(res.out), &a))
	assert.LessOrEqual(t, len(a.Matches), 2)
	assert.Equal(t, models.DomainMathematical, a.UserProfile.Domain)
	assert.NotEmpty(t, a.DatasetVersion)
}

func TestMatch_Errors(t *testing.T) {
	tests := []struct {
		name    string
		stdin   string
		args    []string
		wantErr string
	}{
		{name: "malformed json", stdin: `{"q":`, args: []string{"--answers", "-"}, wantErr: "INVALID_ANSWERS_FORMAT"},
		{name: "boolean answer", stdin: `{"q": true}`, args: []string{"--answers", "-"}, wantErr: "INPUT_VALIDATION_FAILED"},
		{name: "limit out of range", stdin: `{}`, args: []string{"--answers", "-", "--limit", "500"}, wantErr: "INPUT_VALIDATION_FAILED"},
		{name: "missing file", args: []string{"--answers", "/nonexistent/answers.json"}, wantErr: "reading answers file"},
		{name: "missing flag", wantErr: "answers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCLI(t, nil, tt.stdin, append([]string{"match"}, tt.args...)...)
			require.Error(t, res.err)
			assert.Contains(t, res.err.Error(), tt.wantErr)
		})
	}
}

func TestBuildRequest(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		args  []string
		check func(t *testing.T, doc map[string]interface{})
	}{
		{
			name: "bare answers are wrapped",
			raw:  `{"q1": "a"}`,
			check: func(t *testing.T, doc map[string]interface{}) {
				assert.Equal(t, map[string]interface{}{"q1": "a"}, doc["answers"])
				assert.NotContains(t, doc, "limit")
			},
		},
		{
			name: "full request kept",
			raw:  `{"answers": {"q1": "a"}, "limit": 4}`,
			check: func(t *testing.T, doc map[string]interface{}) {
				assert.Equal(t, float64(4), doc["limit"])
			},
		},
		{
			name: "flags override the file",
			raw:  `{"answers": {}, "limit": 4}`,
			args: []string{"--limit", "2", "--gaps"},
			check: func(t *testing.T, doc map[string]interface{}) {
				assert.Equal(t, float64(2), doc["limit"])
				assert.Equal(t, true, doc["includeGaps"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newMatchCmd(&rootOptions{})
			require.NoError(t, cmd.ParseFlags(tt.args))
			mo := &matchOptions{}
			mo.limit, _ = cmd.Flags().GetInt("limit")
			mo.gaps, _ = cmd.Flags().GetBool("gaps")

			body, err := buildRequest([]byte(tt.raw), mo, cmd)
			require.NoError(t, err)

			var doc map[string]interface{}
			require.NoError(t, json.Unmarshal(body, &doc))
			tt.check(t, doc)
		})
	}
}

func TestCareers_JSON(t *testing.T) {
	res := runCLI(t, nil, "", "careers", "-o", "json")
	require.NoError(t, res.err)

	var resp api.CareersResponse
	require.NoError(t, json.Unmarshal([]byte(res.out), &resp))
	assert.NotEmpty(t, resp.Version)
	assert.NotEmpty(t, resp.Careers)
}

func TestCareers_Table(t *testing.T) {
	res := runCLI(t, nil, "", "careers")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Dataset:")
	assert.Contains(t, res.out, "curated")
	assert.Contains(t, res.out, "minimal")
}

func TestDatasetAudit(t *testing.T) {
	res := runCLI(t, nil, "", "dataset", "audit", "-o", "json")
	require.NoError(t, res.err)

	var report dataset.AuditReport
	require.NoError(t, json.Unmarshal([]byte(res.out), &report))
	assert.NotEmpty(t, report.Version)
	assert.NotEmpty(t, report.MinimalProfileCareers)

	res = runCLI(t, nil, "", "dataset", "audit", "--strict")
	assert.ErrorIs(t, res.err, errAuditFindings)
	assert.Contains(t, res.out, "minimal profile")
}

func TestDatasetPublish_PostgresUnreachable(t *testing.T) {
	cfgPath := writeFile(t, "pg.yaml", testConfig+`
database:
  postgres:
    host: 127.0.0.1
    port: 1
    database: career_match
    user: test
    sslmode: disable
`)

	var out bytes.Buffer
	cmd := newRootCmd(&rootOptions{out: &out, in: strings.NewReader(""), log: logger.NewTestLogger(t)})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfgPath, "dataset", "publish"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.NotContains(t, out.String(), "published")
}

func TestQuiz(t *testing.T) {
	asker := &scriptedAsker{}
	savePath := filepath.Join(t.TempDir(), "answers.json")

	res := runCLI(t, asker, "", "quiz", "-o", "json", "--save", savePath)
	require.NoError(t, res.err)

	var a models.Assessment
	require.NoError(t, json.Unmarshal([]byte(res.out), &a))
	assert.Empty(t, a.Diagnostics.Unresolved, "every quiz answer resolves")
	assert.NotEmpty(t, asker.labels)
	assert.True(t, strings.HasPrefix(asker.labels[0], "(1/"))

	// the saved answers replay to the same assessment
	replay := runCLI(t, nil, "", "match", "--answers", savePath, "-o", "json")
	require.NoError(t, replay.err)
	assert.JSONEq(t, res.out, replay.out)
}

func TestQuiz_Cancelled(t *testing.T) {
	res := runCLI(t, &scriptedAsker{err: promptui.ErrInterrupt}, "", "quiz")
	require.Error(t, res.err)
	assert.Equal(t, "quiz cancelled", res.err.Error())
}

func TestCollectAnswers(t *testing.T) {
	questions := []models.Question{
		{
			ID:   "choice",
			Type: models.QuestionTypeMultipleChoice,
			Options: []models.Option{
				{ID: "a", Text: "A"},
				{ID: "b", Text: "B"},
			},
		},
		{ID: "scale", Type: models.QuestionTypeScale, ScaleMin: 1, ScaleMax: 5},
		{
			ID:   "rank",
			Type: models.QuestionTypeRanking,
			Options: []models.Option{
				{ID: "x", Text: "X"},
				{ID: "y", Text: "Y"},
				{ID: "z", Text: "Z"},
			},
		},
	}

	// choice: B; rank: Z, then X, then Done
	picks := [][]int{{1}, {2, 0, 1}}
	asker := &sequenceAsker{picks: append(picks[0], picks[1]...), number: 3}

	answers, err := collectAnswers(questions, asker)
	require.NoError(t, err)

	assert.Equal(t, models.SingleAnswer("b"), answers["choice"])
	assert.Equal(t, models.SingleAnswer("3"), answers["scale"])
	assert.Equal(t, models.ListAnswer("z", "x"), answers["rank"])
}

func TestCollectAnswers_PropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	_, err := collectAnswers([]models.Question{
		{ID: "q", Type: models.QuestionTypeMultipleChoice, Options: []models.Option{{ID: "a", Text: "A"}}},
	}, &scriptedAsker{err: boom})
	assert.ErrorIs(t, err, boom)
}

type sequenceAsker struct {
	picks  []int
	number int
}

func (a *sequenceAsker) Choose(label string, items []string) (int, error) {
	idx := a.picks[0]
	a.picks = a.picks[1:]
	return idx, nil
}

func (a *sequenceAsker) Number(label string, min, max int) (int, error) {
	return a.number, nil
}

func TestRegistry(t *testing.T) {
	res := runCLI(t, nil, "", "registry", "list")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "match-career")
	assert.Contains(t, res.out, "INVALID_ANSWERS")
	assert.Contains(t, res.out, "10s")
	assert.Contains(t, res.out, "career-assessment")

	res = runCLI(t, nil, "", "registry", "validate")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Found 1 activities")
}

func TestRegistry_ValidateFile(t *testing.T) {
	path := writeFile(t, "registry.json", `{
		"version": "1",
		"activities": [
			{"id": "a", "displayName": "A", "category": "c", "taskType": "a", "inputSchema": {"type": 12}},
			{"id": "b", "taskType": "b", "outputSchema": {"type": 12}}
		]
	}`)

	res := runCLI(t, nil, "", "registry", "validate", "--path", path)
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "activity a input schema:")
	assert.Contains(t, res.err.Error(), "activity b output schema:")
	assert.Contains(t, res.err.Error(), "activity b missing required field: DisplayName")
}
