package view

import (
	"github.com/spec-kit/teamboard/internal/domain"
	"github.com/spec-kit/teamboard/internal/status"
)

// TicketAccessors searches title and description, filters on the stored status and the
// assignee, and ranks by time-based progress.
func TicketAccessors() Accessors[domain.Ticket] {
	return Accessors[domain.Ticket]{
		Text:     func(t domain.Ticket) []string { return []string{t.Title, t.Description} },
		Status:   func(t domain.Ticket) string { return string(t.Status) },
		Members:  func(t domain.Ticket) []string { return []string{t.Assignee} },
		Progress: func(t domain.Ticket) float64 { return float64(status.TicketProgress(t.TimeSpent, t.TimeEstimate)) },
	}
}

// ProjectAccessors searches the name and filters on the normalized status and the team.
func ProjectAccessors() Accessors[domain.Project] {
	return Accessors[domain.Project]{
		Text:     func(p domain.Project) []string { return []string{p.Name} },
		Status:   func(p domain.Project) string { return string(status.NormalizeProjectStatus(p.Status)) },
		Members:  func(p domain.Project) []string { return p.Team },
		Progress: func(p domain.Project) float64 { return status.ClampProgress(p.Progress) },
	}
}

// certificationAccessors filters on a derived status looked up by statusOf.
func certificationAccessors(statusOf func(domain.Certification) string) Accessors[domain.Certification] {
	return Accessors[domain.Certification]{
		Text:    func(c domain.Certification) []string { return []string{c.Name, c.Provider} },
		Status:  statusOf,
		Members: func(c domain.Certification) []string { return []string{c.AssignedTo} },
		Progress: func(c domain.Certification) float64 {
			if c.IsCompleted {
				return 100
			}
			return status.ClampProgress(c.Progress)
		},
	}
}

// MemberAccessors ranks members by performance. Members carry no status.
func MemberAccessors() Accessors[domain.TeamMember] {
	return Accessors[domain.TeamMember]{
		Text:     func(m domain.TeamMember) []string { return []string{m.Name, m.Role} },
		Status:   func(domain.TeamMember) string { return "" },
		Members:  func(m domain.TeamMember) []string { return []string{m.Name} },
		Progress: func(m domain.TeamMember) float64 { return status.ClampProgress(m.Performance) },
	}
}

func FilterTickets(tickets []domain.Ticket, criteria Criteria) []domain.Ticket {
	return Filter(tickets, criteria, TicketAccessors())
}

func FilterProjects(projects []domain.Project, criteria Criteria) []domain.Project {
	return Filter(projects, criteria, ProjectAccessors())
}

// FilterCertifications classifies each cert once. The filtered slice is returned even when a
// strict classifier reports malformed dates.
func FilterCertifications(certs []domain.Certification, criteria Criteria, classifier *status.Classifier) ([]domain.Certification, error) {
	statusOf, err := CertificationStatuses(certs, classifier)
	return Filter(certs, criteria, certificationAccessors(statusOf)), err
}

type certificationKey struct {
	completed  bool
	dated      bool
	expiration string
}

func keyOf(c domain.Certification) certificationKey {
	if c.ExpirationDate == nil {
		return certificationKey{completed: c.IsCompleted}
	}
	return certificationKey{completed: c.IsCompleted, dated: true, expiration: *c.ExpirationDate}
}

// CertificationStatuses classifies certs in one pass and returns a lookup of their derived
// statuses, plus the strict classifier's MalformedDatesError if any.
func CertificationStatuses(certs []domain.Certification, classifier *status.Classifier) (func(domain.Certification) string, error) {
	statuses, err := classifier.Certifications(certs)
	derived := make(map[certificationKey]status.CertificationStatus, len(certs))
	for i, c := range certs {
		derived[keyOf(c)] = statuses[i]
	}
	return func(c domain.Certification) string {
		if s, ok := derived[keyOf(c)]; ok {
			return string(s)
		}
		return string(classifier.CertificationStatus(c))
	}, err
}

func FilterMembers(members []domain.TeamMember, criteria Criteria) []domain.TeamMember {
	return Filter(members, criteria, MemberAccessors())
}
