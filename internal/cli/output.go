// internal/cli/output.go
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"career-match/internal/dataset"
	"career-match/internal/models"

	"github.com/olekukonko/tablewriter"
)

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderTable(w io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header(header)
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

func renderAssessment(w io.Writer, a models.Assessment) error {
	fmt.Fprintf(w, "Status:  %s\n", a.Status)
	fmt.Fprintf(w, "Dataset: %s\n", a.DatasetVersion)
	fmt.Fprintf(w, "Domain:  %s\n", a.UserProfile.Domain)
	if len(a.UserProfile.TopTags) > 0 {
		fmt.Fprintf(w, "Top tags: %s\n", strings.Join(a.UserProfile.TopTags, ", "))
	}
	fmt.Fprintln(w)

	if len(a.Matches) == 0 {
		fmt.Fprintln(w, "No qualifying careers.")
	} else {
		rows := make([][]string, 0, len(a.Matches))
		for i, m := range a.Matches {
			rows = append(rows, []string{
				fmt.Sprintf("%d", i+1),
				m.Name,
				m.Category,
				fmt.Sprintf("%d%%", m.Score),
				m.TierLabel,
				fmt.Sprintf("%.2f", m.CategoryScores.Skills),
				fmt.Sprintf("%.2f", m.CategoryScores.Values),
				fmt.Sprintf("%.2f", m.CategoryScores.Temperament),
			})
		}
		if err := renderTable(w, []string{"#", "Career", "Category", "Score", "Tier", "Skills", "Values", "Temperament"}, rows); err != nil {
			return err
		}
	}

	fmt.Fprintln(w)
	radar := make([][]string, 0, len(a.RadarData.Categories))
	for i, dim := range a.RadarData.Categories {
		radar = append(radar, []string{dim, fmt.Sprintf("%d%%", int(math.Round(a.RadarData.Scores[i]*100)))})
	}
	if err := renderTable(w, []string{"Dimension", "Score"}, radar); err != nil {
		return err
	}

	if len(a.Gaps) > 0 {
		fmt.Fprintln(w)
		gaps := make([][]string, 0, len(a.Gaps))
		for _, g := range a.Gaps {
			failed := make([]string, 0, len(g.FailedRequirements))
			for _, fr := range g.FailedRequirements {
				failed = append(failed, fr.Description)
			}
			gaps = append(gaps, []string{g.Name, fmt.Sprintf("%d%%", g.Score), strings.Join(failed, "; ")})
		}
		if err := renderTable(w, []string{"Career to bridge", "Score", "Missing"}, gaps); err != nil {
			return err
		}
	}

	if n := len(a.Diagnostics.Unresolved); n > 0 {
		fmt.Fprintf(w, "\n%d answer(s) were ignored:\n", n)
		for _, ref := range a.Diagnostics.Unresolved {
			line := fmt.Sprintf("  - %s %s", ref.QuestionID, ref.Kind)
			if ref.Value != "" {
				line += fmt.Sprintf(" (%s)", ref.Value)
			}
			fmt.Fprintln(w, line)
		}
	}
	return nil
}

func renderAudit(w io.Writer, r dataset.AuditReport) error {
	fmt.Fprintf(w, "Dataset: %s\n", r.Version)
	if r.Clean() {
		fmt.Fprintln(w, "No vocabulary drift found.")
		return nil
	}

	var rows [][]string
	for _, ref := range r.UnreachableProfileTags {
		rows = append(rows, []string{"unreachable profile tag", ref.Owner, ref.Tag})
	}
	for _, ref := range r.UnreachableRadarTags {
		rows = append(rows, []string{"unreachable radar tag", ref.Owner, ref.Tag})
	}
	for _, ref := range r.UnknownComplexityLevels {
		rows = append(rows, []string{"unknown complexity level", ref.Owner, ref.Tag})
	}
	for _, id := range r.MinimalProfileCareers {
		rows = append(rows, []string{"minimal profile", id, ""})
	}
	for _, id := range r.UncatalogedProfiles {
		rows = append(rows, []string{"uncataloged profile", id, ""})
	}
	for _, id := range r.OrphanKnockoutRules {
		rows = append(rows, []string{"orphan knockout rules", id, ""})
	}
	return renderTable(w, []string{"Finding", "Owner", "Value"}, rows)
}
