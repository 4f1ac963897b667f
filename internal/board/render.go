// Package board renders dashboard collections for terminal output.
package board

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/spec-kit/teamboard/internal/domain"
	"github.com/spec-kit/teamboard/internal/service"
	"github.com/spec-kit/teamboard/internal/status"
	"github.com/spec-kit/teamboard/internal/view"
)

const idWidth = 8

// Renderer writes styled sections to an output stream.
type Renderer struct {
	out        io.Writer
	classifier *status.Classifier
}

// New creates a renderer. The classifier derives certification statuses.
func New(out io.Writer, classifier *status.Classifier) *Renderer {
	if classifier == nil {
		classifier = status.NewClassifier()
	}
	return &Renderer{out: out, classifier: classifier}
}

// Tickets renders tickets as one table, or one table per non-empty status when grouped.
func (r *Renderer) Tickets(tickets []domain.Ticket, grouped bool) error {
	headers := []string{"ID", "TITLE", "STATUS", "PRIORITY", "ASSIGNEE", "PROJECT", "PROGRESS", "HOURS"}
	row := func(t domain.Ticket) []string {
		hours := fmt.Sprintf("%g/%g", t.TimeSpent, t.TimeEstimate)
		if status.OverBudget(t) {
			hours = errorStyle.Render(hours + " over")
		}
		return []string{
			shortID(t.ID),
			t.Title,
			statusStyle(string(t.Status)).Render(string(t.Status)),
			string(t.Priority),
			t.Assignee,
			t.Project,
			fmt.Sprintf("%d%%", status.TicketProgress(t.TimeSpent, t.TimeEstimate)),
			hours,
		}
	}
	if grouped {
		return writeGroups(r.out, "Tickets", view.GroupTickets(tickets), headers, row)
	}
	return r.write(section("Tickets", len(tickets), table(headers, rows(tickets, row))))
}

// Projects renders projects under their canonical status.
func (r *Renderer) Projects(projects []domain.Project, grouped bool) error {
	headers := []string{"ID", "NAME", "STATUS", "PROGRESS", "BUDGET", "TEAM", "END"}
	row := func(p domain.Project) []string {
		canonical := string(status.NormalizeProjectStatus(p.Status))
		budget := fmt.Sprintf("%g/%g", p.Spent, p.Budget)
		if p.Budget > 0 && p.Spent > p.Budget {
			budget = errorStyle.Render(budget)
		}
		return []string{
			shortID(p.ID),
			p.Name,
			statusStyle(canonical).Render(canonical),
			percent(p.Progress),
			budget,
			strings.Join(p.Team, ", "),
			p.EndDate,
		}
	}
	if grouped {
		return writeGroups(r.out, "Projects", view.GroupProjects(projects), headers, row)
	}
	return r.write(section("Projects", len(projects), table(headers, rows(projects, row))))
}

// Members renders the team roster.
func (r *Renderer) Members(members []domain.TeamMember) error {
	headers := []string{"ID", "NAME", "ROLE", "PROJECTS", "PERFORMANCE", "ATTENDANCE", "HOURS"}
	row := func(m domain.TeamMember) []string {
		return []string{
			shortID(m.ID),
			m.Name,
			m.Role,
			strings.Join(m.Projects, ", "),
			percent(m.Performance),
			percent(m.Attendance),
			fmt.Sprintf("%g/%g", m.ActualHours, m.PlannedHours),
		}
	}
	return r.write(section("Team", len(members), table(headers, rows(members, row))))
}

// Certifications renders certifications with their derived status. Under a strict classifier
// the table is still written and the MalformedDatesError is returned afterwards.
func (r *Renderer) Certifications(certs []domain.Certification, grouped bool) error {
	statusOf, dateErr := view.CertificationStatuses(certs, r.classifier)
	headers := []string{"ID", "NAME", "PROVIDER", "STATUS", "ASSIGNED", "PROGRESS", "EXPIRES"}
	row := func(c domain.Certification) []string {
		derived := statusOf(c)
		expires := mutedStyle.Render("never")
		if c.ExpirationDate != nil {
			expires = *c.ExpirationDate
		}
		return []string{
			shortID(c.ID),
			c.Name,
			c.Provider,
			statusStyle(derived).Render(derived),
			c.AssignedTo,
			percent(c.Progress),
			expires,
		}
	}
	var err error
	if grouped {
		err = writeGroups(r.out, "Certifications", view.Group(certs, view.CertificationOrder(), statusOf), headers, row)
	} else {
		err = r.write(section("Certifications", len(certs), table(headers, rows(certs, row))))
	}
	if err != nil {
		return err
	}
	return dateErr
}

// Holidays renders calendar entries in the order given.
func (r *Renderer) Holidays(holidays []domain.Holiday) error {
	headers := []string{"DATE", "NAME", "TYPE"}
	row := func(h domain.Holiday) []string {
		return []string{h.Date, h.Name, string(h.Type)}
	}
	return r.write(section("Holidays", len(holidays), table(headers, rows(holidays, row))))
}

// Summary renders headline figures in a panel.
func (r *Renderer) Summary(summary view.Summary) error {
	var ticketOrder, projectOrder, certOrder []string
	for _, s := range domain.TicketStatuses() {
		ticketOrder = append(ticketOrder, string(s))
	}
	for _, s := range domain.ProjectStatuses() {
		projectOrder = append(projectOrder, string(s))
	}
	for _, s := range status.CertificationStatuses() {
		certOrder = append(certOrder, string(s))
	}

	lines := []string{
		titleStyle.Render("Summary"),
		"Tickets         " + countLine(summary.TicketsByStatus, ticketOrder),
		"Over budget     " + overBudget(summary.OverBudgetTickets),
		"Projects        " + countLine(summary.ProjectsByStatus, projectOrder),
		"Avg progress    " + highlightStyle.Render(percent(summary.AverageProjectProgress)),
		"Certifications  " + countLine(summary.CertificationsByStatus, certOrder),
		"Utilization     " + highlightStyle.Render(fmt.Sprintf("%g%%", summary.TeamUtilization)),
	}
	if len(summary.UpcomingHolidays) == 0 {
		lines = append(lines, "Holidays        "+mutedStyle.Render("none upcoming"))
	} else {
		for i, h := range summary.UpcomingHolidays {
			label := "                "
			if i == 0 {
				label = "Holidays        "
			}
			lines = append(lines, label+h.Date+"  "+h.Name)
		}
	}
	return r.write(panelStyle.Render(strings.Join(lines, "\n")))
}

// Notices renders pending notices. Nothing is written when there are none.
func (r *Renderer) Notices(notices []service.Notice) error {
	if len(notices) == 0 {
		return nil
	}
	lines := make([]string, 0, len(notices))
	for _, notice := range notices {
		lines = append(lines, errorStyle.Render("✗ ")+notice.Message+"  "+mutedStyle.Render(shortID(notice.ID)))
	}
	return r.write(errorPanelStyle.Render(strings.Join(lines, "\n")))
}

func (r *Renderer) write(block string) error {
	_, err := fmt.Fprintln(r.out, block)
	return err
}

func writeGroups[T any](out io.Writer, title string, groups view.Groups[T], headers []string, row func(T) []string) error {
	blocks := []string{titleStyle.Render(title)}
	buckets := groups.NonEmpty()
	if len(buckets) == 0 {
		blocks = append(blocks, mutedStyle.Render("  nothing to show"))
	}
	for _, bucket := range buckets {
		heading := statusStyle(bucket.Name).Bold(true).Render(bucket.Name) +
			mutedStyle.Render(fmt.Sprintf(" (%d)", len(bucket.Records)))
		blocks = append(blocks, "", heading, table(headers, rows(bucket.Records, row)))
	}
	_, err := fmt.Fprintln(out, lipgloss.JoinVertical(lipgloss.Left, blocks...))
	return err
}

func section(title string, count int, body string) string {
	heading := titleStyle.Render(title) + mutedStyle.Render(fmt.Sprintf(" (%d)", count))
	if count == 0 {
		body = mutedStyle.Render("  nothing to show")
	}
	return lipgloss.JoinVertical(lipgloss.Left, heading, body)
}

func rows[T any](records []T, row func(T) []string) [][]string {
	out := make([][]string, 0, len(records))
	for _, record := range records {
		out = append(out, row(record))
	}
	return out
}

// table aligns cells by their printable width so styled cells line up.
func table(headers []string, body [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, cells := range body {
		for i, cell := range cells {
			if w := lipgloss.Width(cell); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}

	line := func(cells []string, style *lipgloss.Style) string {
		parts := make([]string, 0, len(cells))
		for i, cell := range cells {
			if style != nil {
				cell = style.Render(cell)
			}
			if i < len(cells)-1 {
				cell += strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
			}
			parts = append(parts, cell)
		}
		return "  " + strings.TrimRight(strings.Join(parts, "  "), " ")
	}

	lines := []string{line(headers, &headerCellStyle)}
	for _, cells := range body {
		lines = append(lines, line(cells, nil))
	}
	return strings.Join(lines, "\n")
}

func countLine(counts map[string]int, order []string) string {
	keys := slices.Clone(order)
	for _, key := range slices.Sorted(maps.Keys(counts)) {
		if !slices.Contains(keys, key) {
			keys = append(keys, key)
		}
	}
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		n, ok := counts[key]
		if !ok || n == 0 {
			continue
		}
		parts = append(parts, statusStyle(key).Render(key)+" "+fmt.Sprint(n))
	}
	if len(parts) == 0 {
		return mutedStyle.Render("none")
	}
	return strings.Join(parts, mutedStyle.Render(" · "))
}

func overBudget(n int) string {
	if n == 0 {
		return successStyle.Render("0")
	}
	return errorStyle.Render(fmt.Sprint(n))
}

func percent(v float64) string {
	return fmt.Sprintf("%g%%", status.ClampProgress(v))
}

func shortID(id string) string {
	if len(id) <= idWidth {
		return id
	}
	return id[:idWidth]
}
