// Package store holds the session's canonical collections and is the only place they are
// mutated. Mutations are confirmed by the backend before they are committed locally.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/teamboard/internal/domain"
	"github.com/spec-kit/teamboard/internal/events"
	"github.com/spec-kit/teamboard/internal/view"
	"github.com/spec-kit/teamboard/pkg/util/errorutil"
)

// Backend persists the collections. The API client implements it.
type Backend interface {
	ListTickets(ctx context.Context) ([]domain.Ticket, error)
	CreateTicket(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error)
	UpdateTicket(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error)
	DeleteTicket(ctx context.Context, id string) error

	ListProjects(ctx context.Context) ([]domain.Project, error)
	CreateProject(ctx context.Context, project domain.Project) (domain.Project, error)
	UpdateProject(ctx context.Context, project domain.Project) (domain.Project, error)
	DeleteProject(ctx context.Context, id string) error

	ListMembers(ctx context.Context) ([]domain.TeamMember, error)
	CreateMember(ctx context.Context, member domain.TeamMember) (domain.TeamMember, error)
	UpdateMember(ctx context.Context, member domain.TeamMember) (domain.TeamMember, error)
	DeleteMember(ctx context.Context, id string) error

	ListCertifications(ctx context.Context) ([]domain.Certification, error)
	CreateCertification(ctx context.Context, cert domain.Certification) (domain.Certification, error)
	UpdateCertification(ctx context.Context, cert domain.Certification) (domain.Certification, error)
	DeleteCertification(ctx context.Context, id string) error

	ListHolidays(ctx context.Context) ([]domain.Holiday, error)
}

// Options configures a Store.
type Options struct {
	// Backend may be nil, in which case the store lives purely in memory.
	Backend    Backend
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	Now        func() time.Time
}

// Store is the session state container.
type Store struct {
	backend    Backend
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        func() time.Time

	mu             sync.RWMutex
	tickets        collection[domain.Ticket]
	projects       collection[domain.Project]
	members        collection[domain.TeamMember]
	certifications collection[domain.Certification]
	holidays       []domain.Holiday
}

// New builds an empty store.
func New(opts Options) *Store {
	s := &Store{
		backend:    opts.Backend,
		dispatcher: opts.Dispatcher,
		logger:     opts.Logger,
		now:        opts.Now,

		tickets:        newCollection(func(t domain.Ticket) string { return t.ID }, domain.Ticket.Clone),
		projects:       newCollection(func(p domain.Project) string { return p.ID }, domain.Project.Clone),
		members:        newCollection(func(m domain.TeamMember) string { return m.ID }, domain.TeamMember.Clone),
		certifications: newCollection(func(c domain.Certification) string { return c.ID }, domain.Certification.Clone),
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Load replaces every collection with the backend's. Nothing changes unless every list succeeds.
func (s *Store) Load(ctx context.Context) error {
	if s.backend == nil {
		return nil
	}
	tickets, err := s.backend.ListTickets(ctx)
	if err != nil {
		return errorutil.NewNetworkError(err)
	}
	projects, err := s.backend.ListProjects(ctx)
	if err != nil {
		return errorutil.NewNetworkError(err)
	}
	members, err := s.backend.ListMembers(ctx)
	if err != nil {
		return errorutil.NewNetworkError(err)
	}
	certs, err := s.backend.ListCertifications(ctx)
	if err != nil {
		return errorutil.NewNetworkError(err)
	}
	holidays, err := s.backend.ListHolidays(ctx)
	if err != nil {
		return errorutil.NewNetworkError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickets.reset(tickets)
	s.projects.reset(projects)
	s.members.reset(members)
	s.certifications.reset(certs)
	s.holidays = append([]domain.Holiday(nil), holidays...)
	s.logger.Debug("store loaded",
		zap.Int("tickets", len(tickets)),
		zap.Int("projects", len(projects)),
		zap.Int("members", len(members)),
		zap.Int("certifications", len(certs)),
		zap.Int("holidays", len(holidays)))
	return nil
}

func (s *Store) Tickets() []domain.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tickets.all()
}

func (s *Store) Projects() []domain.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.projects.all()
}

func (s *Store) Members() []domain.TeamMember {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.members.all()
}

func (s *Store) Certifications() []domain.Certification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.certifications.all()
}

func (s *Store) Holidays() []domain.Holiday {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Holiday(nil), s.holidays...)
}

func (s *Store) Ticket(id string) (domain.Ticket, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tickets.get(id)
}

func (s *Store) Project(id string) (domain.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.projects.get(id)
}

func (s *Store) Member(id string) (domain.TeamMember, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.members.get(id)
}

func (s *Store) Certification(id string) (domain.Certification, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.certifications.get(id)
}

// Snapshot copies every collection for summary computation.
func (s *Store) Snapshot() view.SummaryInput {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return view.SummaryInput{
		Tickets:        s.tickets.all(),
		Projects:       s.projects.all(),
		Members:        s.members.all(),
		Certifications: s.certifications.all(),
		Holidays:       append([]domain.Holiday(nil), s.holidays...),
	}
}

// entityOps binds one collection to its backend calls.
type entityOps[T any] struct {
	entity   events.Entity
	coll     *collection[T]
	label    func(T) string
	validate func(T) error
	create   func(context.Context, T) (T, error)
	update   func(context.Context, T) (T, error)
	remove   func(context.Context, string) error
}

func create[T any](ctx context.Context, s *Store, ops entityOps[T], record T) (T, error) {
	var zero T
	id := ops.coll.id(record)

	s.mu.RLock()
	_, exists := ops.coll.get(id)
	s.mu.RUnlock()
	if exists {
		return zero, duplicate(ops.entity)
	}

	persisted := record
	if s.backend != nil {
		var err error
		persisted, err = ops.create(ctx, record)
		if err != nil {
			return zero, s.syncFailed(ctx, ops.entity, id, "create", err)
		}
	}

	// the lock was released across the backend call
	s.mu.Lock()
	if _, exists := ops.coll.get(ops.coll.id(persisted)); exists {
		s.mu.Unlock()
		return zero, duplicate(ops.entity)
	}
	ops.coll.add(persisted)
	s.mu.Unlock()

	s.publish(ctx, events.EventEntityCreated, ops.entity, ops.coll.id(persisted), ops.label(persisted))
	return ops.coll.clone(persisted), nil
}

func duplicate(entity events.Entity) error {
	return errorutil.NewValidationError(string(entity)+" already exists", map[string]any{"id": "duplicate"})
}

func update[T any](ctx context.Context, s *Store, ops entityOps[T], id string, apply func(*T)) (T, error) {
	var zero T

	s.mu.RLock()
	next, ok := ops.coll.get(id)
	s.mu.RUnlock()
	if !ok {
		return zero, errorutil.NewNotFound(string(ops.entity), map[string]any{"id": id})
	}

	apply(&next)
	if err := ops.validate(next); err != nil {
		return zero, err
	}

	persisted := next
	if s.backend != nil {
		var err error
		persisted, err = ops.update(ctx, next)
		if err != nil {
			return zero, s.syncFailed(ctx, ops.entity, id, "update", err)
		}
	}

	s.mu.Lock()
	replaced := ops.coll.replace(persisted)
	s.mu.Unlock()
	if !replaced {
		// deleted while the backend call was in flight
		return zero, errorutil.NewNotFound(string(ops.entity), map[string]any{"id": id})
	}

	s.publish(ctx, events.EventEntityUpdated, ops.entity, id, ops.label(persisted))
	return ops.coll.clone(persisted), nil
}

func remove[T any](ctx context.Context, s *Store, ops entityOps[T], id string) error {
	s.mu.RLock()
	current, ok := ops.coll.get(id)
	s.mu.RUnlock()
	if !ok {
		s.logger.Warn("delete of unknown id ignored",
			zap.String("entity", string(ops.entity)),
			zap.String("id", id))
		return nil
	}

	if s.backend != nil {
		if err := ops.remove(ctx, id); err != nil && !isNotFound(err) {
			return s.syncFailed(ctx, ops.entity, id, "delete", err)
		}
	}

	s.mu.Lock()
	ops.coll.remove(id)
	s.mu.Unlock()

	s.publish(ctx, events.EventEntityDeleted, ops.entity, id, ops.label(current))
	return nil
}

// notFounder is satisfied by backend errors that can tell a 404 apart.
type notFounder interface {
	NotFound() bool
}

// statusCoder is satisfied by backend errors carrying an HTTP status.
type statusCoder interface {
	StatusCode() int
}

func isNotFound(err error) bool {
	if errorutil.IsNotFound(err) {
		return true
	}
	var nf notFounder
	return errors.As(err, &nf) && nf.NotFound()
}

func (s *Store) syncFailed(ctx context.Context, entity events.Entity, id, operation string, err error) error {
	payload := events.SyncFailedPayload{Operation: operation, Error: err.Error()}
	var sc statusCoder
	if errors.As(err, &sc) {
		payload.Status = sc.StatusCode()
	}
	s.logger.Warn("backend rejected mutation",
		zap.String("entity", string(entity)),
		zap.String("id", id),
		zap.String("operation", operation),
		zap.Error(err))
	s.dispatch(ctx, events.Event{
		Type:     events.EventSyncFailed,
		Entity:   entity,
		EntityID: id,
		Payload:  payload,
	})
	return errorutil.NewNetworkError(err)
}

func (s *Store) publish(ctx context.Context, eventType events.EventType, entity events.Entity, id, label string) {
	s.dispatch(ctx, events.Event{
		Type:     eventType,
		Entity:   entity,
		EntityID: id,
		Payload:  events.EntityChangedPayload{Label: label},
	})
}

func (s *Store) dispatch(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
