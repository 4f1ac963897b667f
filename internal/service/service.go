package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/spec-kit/teamboard/internal/events"
	"github.com/spec-kit/teamboard/internal/persistence"
	"github.com/spec-kit/teamboard/internal/repository"
	"github.com/spec-kit/teamboard/internal/status"
	"github.com/spec-kit/teamboard/pkg/util/errorutil"
)

// Dependencies bundles repositories and collaborators shared by the services.
type Dependencies struct {
	TicketRepo        repository.TicketRepository
	ProjectRepo       repository.ProjectRepository
	MemberRepo        repository.MemberRepository
	CertificationRepo repository.CertificationRepository
	HolidayRepo       repository.HolidayRepository
	Dispatcher        events.Dispatcher
	Cache             *persistence.Cache
	Classifier        *status.Classifier
	Logger            *zap.Logger
	Clock             func() time.Time
}

func (d Dependencies) now() time.Time {
	if d.Clock != nil {
		return d.Clock()
	}
	return time.Now()
}

func (d Dependencies) logger() *zap.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return zap.NewNop()
}

func (d Dependencies) classifier() *status.Classifier {
	if d.Classifier != nil {
		return d.Classifier
	}
	return status.NewClassifier(status.WithClock(d.now), status.WithLogger(d.logger()))
}

// publishEvent stamps and dispatches an entity change.
func publishEvent(ctx context.Context, dispatcher events.Dispatcher, event events.Event) {
	if dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = dispatcher.Publish(ctx, event)
}

func entityEvent(eventType events.EventType, entity events.Entity, id, label string) events.Event {
	return events.Event{
		Type:     eventType,
		Entity:   entity,
		EntityID: id,
		Payload:  events.EntityChangedPayload{Label: label},
	}
}

const pgUniqueViolation = "23505"

// mapRepoError translates repository failures into the shared error taxonomy.
func mapRepoError(resource, id string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return errorutil.NewNotFound(resource, map[string]any{"id": id})
	}
	var pgErr *pgconn.PgError
	if errors.Is(err, repository.ErrDuplicateID) || (errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation) {
		return errorutil.NewValidationError(resource+" already exists", map[string]any{"id": "duplicate"})
	}
	return err
}
