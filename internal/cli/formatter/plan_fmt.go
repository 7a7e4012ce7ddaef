package formatter

import (
	"fmt"
	"strings"

	"github.com/crewplanhq/crewplan/internal/contract"
)

// FormatPlan renders a full scheduling run: the assignment table, per-project
// summaries, and any warnings.
func FormatPlan(resp *contract.PlanResponse) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Schedule from %s", resp.RunStart)))
	b.WriteString("\n\n")

	rows := make([][]string, 0, len(resp.Assignments))
	for _, a := range resp.Assignments {
		rows = append(rows, []string{
			a.ProjectName,
			a.Phase,
			a.TeamName,
			fmt.Sprintf("%.2g", a.Headcount),
			dateCell(a.Start),
			dateCell(a.End),
			skipCell(a.SkipReason),
		})
	}
	b.WriteString(RenderTable(
		[]string{"Project", "Phase", "Team", "People", "Start", "End", ""},
		rows,
	))
	b.WriteString("\n\n")
	b.WriteString(FormatSummaries(resp.Summaries))

	if resp.ClampWarnings > 0 {
		b.WriteString("\n\n")
		b.WriteString(StyleYellow.Render(fmt.Sprintf(
			"%d date(s) fell outside the supported range and were clamped", resp.ClampWarnings)))
	}
	b.WriteString("\n\n")
	b.WriteString(Dim("fingerprint " + resp.Fingerprint))
	return b.String()
}

// FormatSummaries renders the per-project rollup table.
func FormatSummaries(summaries []contract.ProjectSummaryView) string {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		name := s.Name
		if s.ShortID != "" {
			name = fmt.Sprintf("%s [%s]", s.Name, s.ShortID)
		}
		rows = append(rows, []string{
			name,
			StateStyle(s.State).Render(s.State),
			dateCell(s.Start),
			dateCell(s.End),
		})
	}
	return RenderTable([]string{"Project", "State", "Start", "End"}, rows)
}

// FormatDrift renders a saved-plan comparison verdict.
func FormatDrift(d *contract.PlanDrift) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Plan %q", d.Label)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("saved      %s\n", Dim(d.SavedAt)))
	b.WriteString(fmt.Sprintf("saved hash %s\n", Dim(shortHash(d.SavedFingerprint))))
	b.WriteString(fmt.Sprintf("plan hash  %s\n\n", Dim(shortHash(d.PlanFingerprint))))
	if d.Drifted {
		b.WriteString(StyleRed.Render("✗ schedule has drifted from the saved plan"))
	} else {
		b.WriteString(StyleGreen.Render("✓ schedule matches the saved plan"))
	}
	return b.String()
}

func dateCell(s *string) string {
	if s == nil {
		return Dim("-")
	}
	return *s
}

func skipCell(reason string) string {
	if reason == "" {
		return ""
	}
	return StyleRed.Render("skipped: " + reason)
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}
