package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
const (
	colorAccent   = lipgloss.Color("214")
	colorMuted    = lipgloss.Color("244")
	colorBorder   = lipgloss.Color("240")
	colorSelectFg = lipgloss.Color("229")
	colorSelectBg = lipgloss.Color("57")
	colorError    = lipgloss.Color("196")
	colorMatch    = lipgloss.Color("42")
)

//nolint:gochecknoglobals // Shared read-only styles.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			MarginBottom(1)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(colorBorder).
			BorderBottom(true)

	CardStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(colorBorder).
			BorderLeft(true)

	SelectedCardStyle = CardStyle.
				BorderForeground(colorAccent).
				Foreground(colorSelectFg).
				Background(colorSelectBg)

	NameStyle   = lipgloss.NewStyle().Bold(true)
	MutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	MatchStyle  = lipgloss.NewStyle().Foreground(colorMatch)
	ErrorStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	LabelStyle  = lipgloss.NewStyle().Foreground(colorMuted).Width(detailLabelWidth)
	DetailStyle = lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent)
)
