package view

import (
	"math"
	"slices"
	"time"

	"github.com/spec-kit/teamboard/internal/domain"
	"github.com/spec-kit/teamboard/internal/status"
)

// SummaryInput is the snapshot a dashboard summary is computed from.
type SummaryInput struct {
	Tickets        []domain.Ticket
	Projects       []domain.Project
	Members        []domain.TeamMember
	Certifications []domain.Certification
	Holidays       []domain.Holiday
}

// Summary holds dashboard headline figures.
type Summary struct {
	TicketsByStatus        map[string]int   `json:"ticketsByStatus"`
	OverBudgetTickets      int              `json:"overBudgetTickets"`
	ProjectsByStatus       map[string]int   `json:"projectsByStatus"`
	AverageProjectProgress float64          `json:"averageProjectProgress"`
	CertificationsByStatus map[string]int   `json:"certificationsByStatus"`
	TeamUtilization        float64          `json:"teamUtilization"`
	UpcomingHolidays       []domain.Holiday `json:"upcomingHolidays"`
}

// Summarize computes headline figures. Utilization is actual over planned hours as a
// percentage; holidays are those within holidayWindowDays of the classifier's today.
// The summary is complete even when a strict classifier reports malformed dates.
func Summarize(in SummaryInput, classifier *status.Classifier, holidayWindowDays int) (Summary, error) {
	certs, dateErr := GroupCertifications(in.Certifications, classifier)
	summary := Summary{
		TicketsByStatus:        GroupTickets(in.Tickets).Counts(),
		ProjectsByStatus:       GroupProjects(in.Projects).Counts(),
		CertificationsByStatus: certs.Counts(),
		UpcomingHolidays:       UpcomingHolidays(in.Holidays, classifier.Now(), holidayWindowDays),
	}

	for _, ticket := range in.Tickets {
		if status.OverBudget(ticket) {
			summary.OverBudgetTickets++
		}
	}

	if len(in.Projects) > 0 {
		var total float64
		for _, project := range in.Projects {
			total += status.ClampProgress(project.Progress)
		}
		summary.AverageProjectProgress = roundTenth(total / float64(len(in.Projects)))
	}

	var actual, planned float64
	for _, member := range in.Members {
		actual += member.ActualHours
		planned += member.PlannedHours
	}
	if planned > 0 {
		summary.TeamUtilization = roundTenth(actual / planned * 100)
	}
	return summary, dateErr
}

// UpcomingHolidays returns holidays from today (inclusive) to today+days (exclusive) sorted by
// date. Holidays with unparseable dates are skipped.
func UpcomingHolidays(holidays []domain.Holiday, now time.Time, days int) []domain.Holiday {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	end := today.AddDate(0, 0, days)

	type dated struct {
		at      time.Time
		holiday domain.Holiday
	}
	var matched []dated
	for _, holiday := range holidays {
		at, err := status.ParseCalendarDate(holiday.Date, now.Location())
		if err != nil {
			continue
		}
		if !at.Before(today) && at.Before(end) {
			matched = append(matched, dated{at: at, holiday: holiday})
		}
	}
	slices.SortStableFunc(matched, func(a, b dated) int { return a.at.Compare(b.at) })

	out := make([]domain.Holiday, 0, len(matched))
	for _, entry := range matched {
		out = append(out, entry.holiday)
	}
	return out
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
