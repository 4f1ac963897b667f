package dto

import (
	"github.com/spec-kit/teamboard/internal/domain"
	"github.com/spec-kit/teamboard/internal/status"
	"github.com/spec-kit/teamboard/internal/view"
)

// ListQuery captures the shared list filters.
type ListQuery struct {
	Search string `query:"search"`
	Status string `query:"status"`
	Member string `query:"member"`
}

// Criteria converts the query into filter criteria.
func (q ListQuery) Criteria() view.Criteria {
	return view.Criteria{Search: q.Search, Status: q.Status, Member: q.Member}
}

// TicketResponse adds derived progress to a ticket.
type TicketResponse struct {
	domain.Ticket
	Progress   int  `json:"progress"`
	OverBudget bool `json:"overBudget"`
}

func NewTicketResponse(ticket domain.Ticket) TicketResponse {
	return TicketResponse{
		Ticket:     ticket,
		Progress:   status.TicketProgress(ticket.TimeSpent, ticket.TimeEstimate),
		OverBudget: status.OverBudget(ticket),
	}
}

func NewTicketResponses(tickets []domain.Ticket) []TicketResponse {
	out := make([]TicketResponse, 0, len(tickets))
	for _, ticket := range tickets {
		out = append(out, NewTicketResponse(ticket))
	}
	return out
}

// ProjectResponse adds the canonical status. The stored status is returned untouched.
type ProjectResponse struct {
	domain.Project
	CanonicalStatus domain.ProjectStatus `json:"canonicalStatus"`
}

func NewProjectResponse(project domain.Project) ProjectResponse {
	return ProjectResponse{Project: project, CanonicalStatus: status.NormalizeProjectStatus(project.Status)}
}

func NewProjectResponses(projects []domain.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, project := range projects {
		out = append(out, NewProjectResponse(project))
	}
	return out
}

// CertificationResponse adds the derived status.
type CertificationResponse struct {
	domain.Certification
	Status status.CertificationStatus `json:"status"`
}

func NewCertificationResponse(cert domain.Certification, classifier *status.Classifier) (CertificationResponse, error) {
	out, err := NewCertificationResponses([]domain.Certification{cert}, classifier)
	if err != nil {
		return CertificationResponse{}, err
	}
	return out[0], nil
}

// NewCertificationResponses fails with the classifier's MalformedDatesError in strict mode.
func NewCertificationResponses(certs []domain.Certification, classifier *status.Classifier) ([]CertificationResponse, error) {
	derived, err := classifier.Certifications(certs)
	if err != nil {
		return nil, err
	}
	out := make([]CertificationResponse, 0, len(certs))
	for i, cert := range certs {
		out = append(out, CertificationResponse{Certification: cert, Status: derived[i]})
	}
	return out, nil
}
