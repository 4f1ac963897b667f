package service

import (
	"context"
	"strings"

	"github.com/spec-kit/teamboard/internal/domain"
	"github.com/spec-kit/teamboard/internal/events"
	"github.com/spec-kit/teamboard/internal/view"
)

// TicketService coordinates ticket persistence.
type TicketService struct {
	deps Dependencies
}

// NewTicketService constructs the service.
func NewTicketService(deps Dependencies) *TicketService {
	return &TicketService{deps: deps}
}

// List returns tickets matching criteria, highest progress first.
func (s *TicketService) List(ctx context.Context, criteria view.Criteria) ([]domain.Ticket, error) {
	tickets, err := s.deps.TicketRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return view.FilterTickets(tickets, criteria), nil
}

func (s *TicketService) Get(ctx context.Context, id string) (*domain.Ticket, error) {
	ticket, err := s.deps.TicketRepo.GetByID(ctx, id)
	return ticket, mapRepoError("ticket", id, err)
}

// Create validates and stores a ticket, keeping a client supplied id.
func (s *TicketService) Create(ctx context.Context, ticket domain.Ticket) (*domain.Ticket, error) {
	ticket.Title = strings.TrimSpace(ticket.Title)
	ticket.Description = strings.TrimSpace(ticket.Description)
	ticket.ApplyDefaults()
	if err := ticket.Validate(); err != nil {
		return nil, err
	}
	if ticket.ID == "" {
		ticket.ID = domain.NewID()
	}
	now := s.deps.now()
	if ticket.CreatedAt.IsZero() {
		ticket.CreatedAt = now
	}
	if ticket.UpdatedAt.IsZero() {
		ticket.UpdatedAt = now
	}

	if err := s.deps.TicketRepo.Create(ctx, &ticket); err != nil {
		return nil, mapRepoError("ticket", ticket.ID, err)
	}
	publishEvent(ctx, s.deps.Dispatcher, entityEvent(events.EventEntityCreated, events.EntityTicket, ticket.ID, ticket.Title))
	return &ticket, nil
}

// Update replaces the ticket stored under id. createdAt is preserved.
func (s *TicketService) Update(ctx context.Context, id string, ticket domain.Ticket) (*domain.Ticket, error) {
	existing, err := s.deps.TicketRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError("ticket", id, err)
	}
	ticket.ID = id
	ticket.CreatedAt = existing.CreatedAt
	ticket.ApplyDefaults()
	if err := ticket.Validate(); err != nil {
		return nil, err
	}
	if ticket.UpdatedAt.IsZero() || !ticket.UpdatedAt.After(existing.UpdatedAt) {
		ticket.UpdatedAt = s.deps.now()
	}

	if err := s.deps.TicketRepo.Update(ctx, &ticket); err != nil {
		return nil, mapRepoError("ticket", id, err)
	}
	publishEvent(ctx, s.deps.Dispatcher, entityEvent(events.EventEntityUpdated, events.EntityTicket, id, ticket.Title))
	return &ticket, nil
}

func (s *TicketService) Delete(ctx context.Context, id string) error {
	if err := s.deps.TicketRepo.Delete(ctx, id); err != nil {
		return mapRepoError("ticket", id, err)
	}
	publishEvent(ctx, s.deps.Dispatcher, entityEvent(events.EventEntityDeleted, events.EntityTicket, id, ""))
	return nil
}
