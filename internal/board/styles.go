package board

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/spec-kit/teamboard/internal/domain"
	"github.com/spec-kit/teamboard/internal/status"
)

// Color palette
var (
	colorPrimary   = lipgloss.Color("#6C63FF")
	colorMuted     = lipgloss.Color("#666666")
	colorSuccess   = lipgloss.Color("#2ECC71")
	colorWarning   = lipgloss.Color("#F39C12")
	colorError     = lipgloss.Color("#E74C3C")
	colorFg        = lipgloss.Color("#C0CAF5")
	colorSubtle    = lipgloss.Color("#414868")
	colorHighlight = lipgloss.Color("#7AA2F7")
)

// Styles
var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(0, 1)

	errorPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorError).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	headerCellStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorFg)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	highlightStyle = lipgloss.NewStyle().
			Foreground(colorHighlight)
)

// statusStyles colors status labels by how healthy they read. Ticket and certification
// vocabularies overlap, so labels map to one style regardless of entity.
var statusStyles = map[string]lipgloss.Style{
	string(domain.TicketStatusDone):          successStyle,
	string(domain.TicketStatusCompleted):     successStyle,
	string(domain.ProjectStatusCompleted):    successStyle,
	string(domain.TicketStatusBlocked):       errorStyle,
	string(status.CertificationExpired):      errorStyle,
	string(domain.ProjectStatusOnHold):       warningStyle,
	string(status.CertificationExpiringSoon): warningStyle,
	string(domain.ProjectStatusPipeline):     mutedStyle,
}

func statusStyle(label string) lipgloss.Style {
	if style, ok := statusStyles[label]; ok {
		return style
	}
	return highlightStyle
}
