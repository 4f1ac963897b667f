package apiclient

import (
	"context"

	"github.com/spec-kit/teamboard/internal/domain"
)

const (
	resourceTickets        = "tickets"
	resourceProjects       = "projects"
	resourceMembers        = "members"
	resourceCertifications = "certifications"
	resourceHolidays       = "holidays"
)

func (c *Client) ListTickets(ctx context.Context) ([]domain.Ticket, error) {
	return list[domain.Ticket](ctx, c, resourceTickets)
}

func (c *Client) CreateTicket(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error) {
	return create(ctx, c, resourceTickets, ticket)
}

func (c *Client) UpdateTicket(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error) {
	return update(ctx, c, resourceTickets, ticket.ID, ticket)
}

func (c *Client) DeleteTicket(ctx context.Context, id string) error {
	return c.remove(ctx, resourceTickets, id)
}

func (c *Client) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return list[domain.Project](ctx, c, resourceProjects)
}

func (c *Client) CreateProject(ctx context.Context, project domain.Project) (domain.Project, error) {
	return create(ctx, c, resourceProjects, project)
}

func (c *Client) UpdateProject(ctx context.Context, project domain.Project) (domain.Project, error) {
	return update(ctx, c, resourceProjects, project.ID, project)
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.remove(ctx, resourceProjects, id)
}

func (c *Client) ListMembers(ctx context.Context) ([]domain.TeamMember, error) {
	return list[domain.TeamMember](ctx, c, resourceMembers)
}

func (c *Client) CreateMember(ctx context.Context, member domain.TeamMember) (domain.TeamMember, error) {
	return create(ctx, c, resourceMembers, member)
}

func (c *Client) UpdateMember(ctx context.Context, member domain.TeamMember) (domain.TeamMember, error) {
	return update(ctx, c, resourceMembers, member.ID, member)
}

func (c *Client) DeleteMember(ctx context.Context, id string) error {
	return c.remove(ctx, resourceMembers, id)
}

func (c *Client) ListCertifications(ctx context.Context) ([]domain.Certification, error) {
	return list[domain.Certification](ctx, c, resourceCertifications)
}

func (c *Client) CreateCertification(ctx context.Context, cert domain.Certification) (domain.Certification, error) {
	return create(ctx, c, resourceCertifications, cert)
}

func (c *Client) UpdateCertification(ctx context.Context, cert domain.Certification) (domain.Certification, error) {
	return update(ctx, c, resourceCertifications, cert.ID, cert)
}

func (c *Client) DeleteCertification(ctx context.Context, id string) error {
	return c.remove(ctx, resourceCertifications, id)
}

func (c *Client) ListHolidays(ctx context.Context) ([]domain.Holiday, error) {
	return list[domain.Holiday](ctx, c, resourceHolidays)
}
