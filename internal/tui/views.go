package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jlsnow301/payroll-app/internal/common"
	"github.com/jlsnow301/payroll-app/internal/intake"
	"github.com/jlsnow301/payroll-app/internal/review"
)

const zoneHeight = 7

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case ScreenReview:
		return m.renderReview()
	case ScreenHelp:
		return m.renderHelp()
	default:
		return m.renderHome()
	}
}

// renderHome renders the two drop zones, the tolerance setting, and the
// submission status.
func (m Model) renderHome() string {
	zones := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderZone("Caterease orders", m.session.Caterease),
		m.renderZone("Intuit timesheet", m.session.Intuit),
	)

	sections := []string{zones, "", m.renderPrecision(), ""}

	if m.typing {
		prompt := m.theme.Subtitle.Render(
			fmt.Sprintf("Enter %s file path:", m.pathTarget))
		sections = append(sections, prompt, m.pathInput.View(), "")
	}

	sections = append(sections, m.renderSubmission())

	if errs := m.session.Errors(); len(errs) > 0 {
		sections = append(sections, "")
		for _, e := range errs {
			sections = append(sections, m.theme.StatusError.Render(e))
		}
	}

	sections = append(sections, "", m.renderStatusBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderZone renders one drop zone with its intake status.
func (m Model) renderZone(title string, machine *intake.Machine) string {
	var status string
	style := m.theme.ZoneIdle

	switch {
	case machine.Pending():
		status = m.theme.StatusPending.Render(m.spinner.View() + " uploading...")
	case machine.Succeeded():
		status = m.theme.StatusSuccess.Render("✓ " + machine.Label())
		style = m.theme.ZoneActive
	case machine.Failed():
		status = m.theme.StatusError.Render("✗ " + common.UserMessage(machine.Err()))
	default:
		status = m.theme.Subtitle.Render("drop or press key to load")
	}

	width := m.width/2 - 2
	if width < 20 {
		width = 20
	}

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.Bold.Render(title),
		"",
		status,
	)

	return style.Width(width).Render(content)
}

// renderPrecision shows the matching tolerance in hours.
func (m Model) renderPrecision() string {
	return m.theme.Normal.Render(
		fmt.Sprintf("Tolerance: %s %d hour(s)  (+/- to adjust)",
			m.theme.Bold.Render("±"), m.session.Precision()))
}

// renderSubmission shows the automatic submission lifecycle and, once
// resolved, the driver statistics.
func (m Model) renderSubmission() string {
	sub := m.session.Submission()

	switch {
	case sub.IsPending():
		return m.theme.StatusPending.Render(m.spinner.View() + " processing...")

	case sub.IsError():
		return m.theme.StatusError.Render("Processing failed: " + sub.Err().Error())

	case sub.IsSuccess():
		return m.renderStats()
	}

	if m.session.Ready() {
		return m.theme.StatusInfoLine("Both files linked. Press Enter to submit, r to review.")
	}
	return m.theme.Subtitle.Render("Link both files to enable submission.")
}

// StatusInfoLine renders a highlighted informational line.
func (t Theme) StatusInfoLine(s string) string {
	return lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Render(s)
}

// renderStats renders the completed run's driver statistics box.
func (m Model) renderStats() string {
	result := m.session.Submission().Value()

	lines := []string{
		m.theme.Title.Render("Payroll written"),
		fmt.Sprintf("Matched %d of %d deliveries (%d skipped, %d expanded)",
			result.Matched, result.Total, result.Skipped, result.Expanded),
		"",
	}

	if result.TopUsed != "" {
		lines = append(lines, fmt.Sprintf("Most deliveries: %s (%d)",
			m.theme.Bold.Render(result.TopUsed), result.TopUsedCount))
	}
	if result.Punctual != "" {
		lines = append(lines, fmt.Sprintf("Most punctual: %s (avg %.0f min off)",
			m.theme.Bold.Render(result.Punctual), result.PunctualAvg))
	}
	if result.MostLate != "" {
		lines = append(lines, fmt.Sprintf("Most lates: %s (%d)",
			m.theme.Bold.Render(result.MostLate), result.MostLateCount))
	}
	if result.HighestLatePercentDriver != "" {
		lines = append(lines, fmt.Sprintf("Highest late rate: %s (%.0f%%)",
			m.theme.Bold.Render(result.HighestLatePercentDriver), result.HighestLatePercent))
	}
	if result.LatestClockInDriver != "" {
		lines = append(lines, fmt.Sprintf("Latest arrival: %s (%.0f min late)",
			m.theme.Bold.Render(result.LatestClockInDriver), result.LatestClockInDiffMinutes))
	}

	return m.theme.BorderedBox.Render(
		lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderReview renders the manual review list.
func (m Model) renderReview() string {
	title := m.theme.Title.Render("Manual review")

	if len(m.visible) == 0 {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			title,
			m.theme.Subtitle.Render("No matched rows to review."),
			"",
			m.renderStatusBar(),
		)
	}

	header := m.theme.Subtitle.Render(fmt.Sprintf(
		"  %-20s %-20s %-10s %-8s %-8s %s",
		"Driver", "Client", "Clock-in", "Hours", "Miles", ""))

	lines := []string{title, header}

	for i, id := range m.visible {
		row, ok := m.store.Row(id)
		if !ok {
			continue
		}

		clockIn := "-"
		band := review.BandGray
		if row.SuggestedIn != nil {
			clockIn = row.SuggestedIn.Format("3:04 PM")
			band = review.Classify(float64(m.session.Precision()), row.Order.Ready, *row.SuggestedIn)
		}

		line := fmt.Sprintf("%-20s %-20s %-10s %-8.2f %-8.1f",
			truncate(row.Order.Employee, 20),
			truncate(row.Order.Client, 20),
			clockIn,
			row.Hours,
			row.Miles,
		)

		marker := "  "
		style := m.theme.BandStyle(band)
		if !row.Approved {
			marker = "✗ "
			style = m.theme.Denied
		}
		if i == m.cursor {
			style = m.theme.Selected
		}

		lines = append(lines, style.Render(marker+line))
	}

	lines = append(lines, "", m.renderReviewSubmission(), "", m.renderStatusBar())

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderReviewSubmission shows the manual submission lifecycle.
func (m Model) renderReviewSubmission() string {
	sub := m.store.Submission()

	switch {
	case sub.IsPending():
		return m.theme.StatusPending.Render(m.spinner.View() + " writing...")
	case sub.IsError():
		return m.theme.StatusError.Render("Write failed: " + sub.Err().Error())
	case m.confirmation != "":
		return m.theme.StatusSuccess.Render(m.confirmation)
	}
	return m.theme.Subtitle.Render("x/Space deny row, Enter submit, Esc back")
}

// renderHelp renders the help screen.
func (m Model) renderHelp() string {
	title := m.theme.Title.Render("Payroll reconciler - Help")

	sections := []struct {
		title string
		items []string
	}{
		{
			"Files",
			[]string{
				"o           Load Caterease orders file",
				"t           Load Intuit timesheet file",
				"click zone  Load into that zone",
			},
		},
		{
			"Processing",
			[]string{
				"Enter       Submit (write payroll)",
				"r           Open manual review",
				"+/-         Adjust match tolerance",
			},
		},
		{
			"Review",
			[]string{
				"↑/k, ↓/j    Move up/down",
				"x/Space     Approve/deny row",
				"Enter       Submit reviewed batch",
				"Esc         Back to home",
			},
		},
		{
			"Application",
			[]string{
				"Ctrl+R      Reset session",
				"?           Toggle help",
				"q           Quit",
			},
		},
	}

	var content []string
	for _, section := range sections {
		content = append(content, m.theme.Subtitle.Render(section.title))
		for _, item := range section.items {
			content = append(content, "  "+m.theme.Normal.Render(item))
		}
		content = append(content, "")
	}

	body := lipgloss.JoinVertical(lipgloss.Left, content...)
	footer := lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Press ? or Esc to close help")

	return m.theme.BorderedBox.Width(50).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, body, footer))
}

// renderStatusBar renders the bottom hint line.
func (m Model) renderStatusBar() string {
	var hints []string
	for _, b := range m.keymap.ShortHelp() {
		hints = append(hints, fmt.Sprintf("%s %s", b.Help().Key, b.Help().Desc))
	}

	return lipgloss.NewStyle().
		Foreground(m.theme.Muted).
		Render(strings.Join(hints, "  ·  "))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
