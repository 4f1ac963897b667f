package store

import (
	"context"
	"strings"

	"github.com/spec-kit/teamboard/internal/domain"
	"github.com/spec-kit/teamboard/internal/events"
	"github.com/spec-kit/teamboard/pkg/util/errorutil"
)

func (s *Store) ticketOps() entityOps[domain.Ticket] {
	ops := entityOps[domain.Ticket]{
		entity:   events.EntityTicket,
		coll:     &s.tickets,
		label:    func(t domain.Ticket) string { return t.Title },
		validate: domain.Ticket.Validate,
	}
	if s.backend != nil {
		ops.create = s.backend.CreateTicket
		ops.update = s.backend.UpdateTicket
		ops.remove = s.backend.DeleteTicket
	}
	return ops
}

// AddTicket validates and creates a ticket. Missing id, status, priority and timestamps are
// filled in.
func (s *Store) AddTicket(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error) {
	ticket.ApplyDefaults()
	if err := ticket.Validate(); err != nil {
		return domain.Ticket{}, err
	}
	if ticket.ID == "" {
		ticket.ID = domain.NewID()
	}
	now := s.now()
	if ticket.CreatedAt.IsZero() {
		ticket.CreatedAt = now
	}
	ticket.UpdatedAt = now
	return create(ctx, s, s.ticketOps(), ticket)
}

// UpdateTicket applies patch to the ticket and refreshes its updatedAt.
func (s *Store) UpdateTicket(ctx context.Context, id string, patch TicketPatch) (domain.Ticket, error) {
	return update(ctx, s, s.ticketOps(), id, func(t *domain.Ticket) {
		patch.apply(t)
		t.UpdatedAt = s.now()
	})
}

// DeleteTicket removes a ticket. Unknown ids are ignored.
func (s *Store) DeleteTicket(ctx context.Context, id string) error {
	return remove(ctx, s, s.ticketOps(), id)
}

// AddComment appends a comment stamped with the current time.
func (s *Store) AddComment(ctx context.Context, ticketID, author, text string) (domain.Ticket, error) {
	details := map[string]any{}
	if strings.TrimSpace(author) == "" {
		details["author"] = "required"
	}
	if strings.TrimSpace(text) == "" {
		details["text"] = "required"
	}
	if len(details) > 0 {
		return domain.Ticket{}, errorutil.NewValidationError("comment validation failed", details)
	}
	return update(ctx, s, s.ticketOps(), ticketID, func(t *domain.Ticket) {
		now := s.now()
		t.Comments = append(t.Comments, domain.Comment{Author: author, Text: text, Timestamp: now})
		t.UpdatedAt = now
	})
}
