package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jlsnow301/payroll-app/internal/review"
)

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Selected      lipgloss.Style
	Denied        lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusWarning lipgloss.Style
	StatusError   lipgloss.Style
	StatusPending lipgloss.Style
	BandGreen     lipgloss.Style
	BandYellow    lipgloss.Style
	BandRed       lipgloss.Style
	BandGray      lipgloss.Style
	Box           lipgloss.Style
	BorderedBox   lipgloss.Style
	ZoneIdle      lipgloss.Style
	ZoneActive    lipgloss.Style
	Primary       lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
}

// DefaultTheme is the default theme.
var DefaultTheme = Theme{
	Primary: lipgloss.Color("#7c3aed"),
	Muted:   lipgloss.Color("#737373"),
	Border:  lipgloss.Color("#404040"),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")).
		MarginBottom(1),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fafafa")),
	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#7c3aed")).
		Foreground(lipgloss.Color("#fafafa")).
		Bold(true),
	Denied: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")).
		Strikethrough(true),

	StatusSuccess: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10b981")).
		Bold(true),
	StatusWarning: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f59e0b")).
		Bold(true),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ef4444")).
		Bold(true),
	StatusPending: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")).
		Italic(true),

	BandGreen: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10b981")),
	BandYellow: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f59e0b")),
	BandRed: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ef4444")),
	BandGray: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")),

	Box: lipgloss.NewStyle().
		Padding(1, 2),
	BorderedBox: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(1, 2),
	ZoneIdle: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(1, 2).
		Align(lipgloss.Center),
	ZoneActive: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#7c3aed")).
		Padding(1, 2).
		Align(lipgloss.Center),
}

// BandStyle maps a punctuality band to its display style.
func (t Theme) BandStyle(b review.Band) lipgloss.Style {
	switch b {
	case review.BandGreen:
		return t.BandGreen
	case review.BandYellow:
		return t.BandYellow
	case review.BandRed:
		return t.BandRed
	default:
		return t.BandGray
	}
}
