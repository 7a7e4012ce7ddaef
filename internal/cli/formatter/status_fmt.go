package formatter

import (
	"fmt"
	"strings"

	"github.com/crewplanhq/crewplan/internal/contract"
	"github.com/crewplanhq/crewplan/internal/domain"
)

// FormatStatus renders the stored-schedule status view.
func FormatStatus(resp *contract.StatusResponse) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Status on %s", resp.Reference)))
	b.WriteString("\n\n")

	if len(resp.Projects) == 0 {
		b.WriteString(Dim("No scheduled projects. Run \"crewplan plan run --persist\" first."))
		return b.String()
	}

	b.WriteString(FormatSummaries(resp.Projects))

	var active int
	for _, p := range resp.Projects {
		if p.State != domain.StateDone && p.State != domain.StateNotStarted {
			active++
		}
	}
	b.WriteString("\n\n")
	b.WriteString(Dim(fmt.Sprintf("%d project(s), %d in flight", len(resp.Projects), active)))
	return b.String()
}
