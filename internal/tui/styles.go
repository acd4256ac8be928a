package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/unitytechnetwork/Afifi-sub000/models"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	selectedStyle   = lipgloss.NewStyle().Bold(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

var statusStyles = map[models.Status]lipgloss.Style{
	models.StatusNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	models.StatusFault:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	models.StatusNA:      lipgloss.NewStyle().Faint(true),
	models.StatusPending: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
}

var severityStyles = map[models.Severity]lipgloss.Style{
	models.SeverityCritical: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	models.SeverityMajor:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	models.SeverityMinor:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
}

func renderStatus(s models.Status) string {
	if style, ok := statusStyles[s]; ok {
		return style.Render(s.String())
	}
	return s.String()
}

func renderSeverity(s models.Severity) string {
	if style, ok := severityStyles[s]; ok {
		return style.Render(s.String())
	}
	return s.String()
}
