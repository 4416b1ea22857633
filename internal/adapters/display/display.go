// Package display renders core entities for terminal output.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/pomokids/internal/domain"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C6FE0"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	scoreStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ECDC4"))
	msgStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#2ECC71"))
)

// Profiles renders the profile list.
func Profiles(profiles []domain.TaskProfile) string {
	if len(profiles) == 0 {
		return dimStyle.Render("No profiles yet.")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("🍅 Profiles (%d)", len(profiles))))
	b.WriteString("\n\n")
	for _, p := range profiles {
		b.WriteString(fmt.Sprintf("  %s %s\n", p.Title, dimStyle.Render("(ID: "+p.ID+")")))
		b.WriteString(dimStyle.Render(fmt.Sprintf("    total %dm · focus %dm · break %dm · alert %dm before end",
			p.TotalMinutes, p.FocusMinutes, p.BreakMinutes, p.AlertBeforeEnd)))
		b.WriteString("\n")
	}
	return b.String()
}

// ProgressRow is one period's next-reward line.
type ProgressRow struct {
	Period    domain.Period
	Title     string
	Remaining int
}

// Scores renders the score snapshot and next-reward progress.
func Scores(scores domain.ScoreSnapshot, rows []ProgressRow) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("⭐ Scores"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  Weekly:  %s\n", scoreStyle.Render(fmt.Sprintf("%d", scores.Weekly))))
	b.WriteString(fmt.Sprintf("  Monthly: %s\n", scoreStyle.Render(fmt.Sprintf("%d", scores.Monthly))))
	b.WriteString(fmt.Sprintf("  Yearly:  %s\n", scoreStyle.Render(fmt.Sprintf("%d", scores.Yearly))))

	if len(rows) > 0 {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("🎁 Next rewards"))
		b.WriteString("\n\n")
		for _, row := range rows {
			if row.Title == "" {
				b.WriteString(fmt.Sprintf("  %-8s %s\n", row.Period.Label()+":", dimStyle.Render("all rewards reached")))
				continue
			}
			b.WriteString(fmt.Sprintf("  %-8s %s %s\n", row.Period.Label()+":", row.Title,
				dimStyle.Render(fmt.Sprintf("(%d points to go)", row.Remaining))))
		}
	}
	return b.String()
}

// Sessions renders the session history, most recent last.
func Sessions(sessions []domain.SessionRecord) string {
	if len(sessions) == 0 {
		return dimStyle.Render("No sessions recorded yet.")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("📊 Sessions (%d)", len(sessions))))
	b.WriteString("\n\n")
	for _, s := range sessions {
		b.WriteString(fmt.Sprintf("  %s  %s\n", s.SessionDate, dimStyle.Render(
			fmt.Sprintf("%d/%dm · %d focus blocks · profile %s",
				s.CompletedMinutes, s.PlannedMinutes, s.CompletedFocusBlocks, s.ProfileID))))
	}
	return b.String()
}

// Status renders a session result message.
func Status(message string) string {
	return msgStyle.Render(message)
}
