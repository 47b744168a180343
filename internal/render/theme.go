package render

import (
	"charm.land/lipgloss/v2"

	"github.com/AnuSaha545/ai-study-planner-agent/internal/planner"
)

// Color palette
var (
	Primary   = lipgloss.Color("#8B5CF6") // Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Border    = lipgloss.Color("#334155")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			Border(lipgloss.DoubleBorder(), true, false).
			BorderForeground(Border).
			Padding(0, 2)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Secondary).
			MarginTop(1)

	dayStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Accent)

	subjectStyle = lipgloss.NewStyle().Bold(true)

	dimStyle = lipgloss.NewStyle().Foreground(TextDim)

	hintStyle = lipgloss.NewStyle().
			Foreground(TextDim).
			Italic(true)

	successStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	linkStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Underline(true)
)

// sessionTypeStyles tints each learning phase.
var sessionTypeStyles = map[planner.SessionType]lipgloss.Style{
	planner.SessionConcept:  lipgloss.NewStyle().Foreground(Primary).Bold(true),
	planner.SessionPractice: lipgloss.NewStyle().Foreground(Accent).Bold(true),
	planner.SessionRevision: lipgloss.NewStyle().Foreground(Success).Bold(true),
}

func sessionTypeStyle(t planner.SessionType) lipgloss.Style {
	if s, ok := sessionTypeStyles[t]; ok {
		return s
	}
	return dimStyle
}
