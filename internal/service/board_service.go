package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/teamboard/internal/domain"
	"github.com/spec-kit/teamboard/internal/events"
	"github.com/spec-kit/teamboard/internal/status"
	"github.com/spec-kit/teamboard/internal/view"
)

const (
	cacheKeyHolidays        = "holidays"
	cacheKeyDashboardPrefix = "dashboard:"
)

// BoardService serves the holiday calendar and the dashboard summary, both read through the
// cache. Entity changes invalidate the cached summary.
type BoardService struct {
	deps              Dependencies
	classifier        *status.Classifier
	holidayWindowDays int
	logger            *zap.Logger
}

func NewBoardService(deps Dependencies, holidayWindowDays int) *BoardService {
	return &BoardService{
		deps:              deps,
		classifier:        deps.classifier(),
		holidayWindowDays: holidayWindowDays,
		logger:            deps.logger(),
	}
}

// dashboardKey scopes the cached summary to the classifier's calendar day, since certification
// buckets and upcoming holidays change at midnight.
func (s *BoardService) dashboardKey() string {
	return cacheKeyDashboardPrefix + s.classifier.Now().Format("2006-01-02")
}

// RegisterHandlers subscribes cache invalidation to entity events.
func (s *BoardService) RegisterHandlers() {
	if s.deps.Dispatcher == nil {
		return
	}
	invalidate := func(ctx context.Context, _ events.Event) error {
		s.deps.Cache.Invalidate(ctx, s.dashboardKey())
		return nil
	}
	s.deps.Dispatcher.Subscribe(events.EventEntityCreated, invalidate)
	s.deps.Dispatcher.Subscribe(events.EventEntityUpdated, invalidate)
	s.deps.Dispatcher.Subscribe(events.EventEntityDeleted, invalidate)
}

func (s *BoardService) Holidays(ctx context.Context) ([]domain.Holiday, error) {
	var holidays []domain.Holiday
	if s.deps.Cache.Get(ctx, cacheKeyHolidays, &holidays) {
		return holidays, nil
	}
	holidays, err := s.deps.HolidayRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.deps.Cache.Set(ctx, cacheKeyHolidays, holidays)
	return holidays, nil
}

// Summary computes dashboard figures across every collection.
func (s *BoardService) Summary(ctx context.Context) (view.Summary, error) {
	key := s.dashboardKey()
	var summary view.Summary
	if s.deps.Cache.Get(ctx, key, &summary) {
		return summary, nil
	}

	var (
		in  view.SummaryInput
		err error
	)
	if in.Tickets, err = s.deps.TicketRepo.List(ctx); err != nil {
		return summary, err
	}
	if in.Projects, err = s.deps.ProjectRepo.List(ctx); err != nil {
		return summary, err
	}
	if in.Members, err = s.deps.MemberRepo.List(ctx); err != nil {
		return summary, err
	}
	if in.Certifications, err = s.deps.CertificationRepo.List(ctx); err != nil {
		return summary, err
	}
	if in.Holidays, err = s.Holidays(ctx); err != nil {
		return summary, err
	}

	if summary, err = view.Summarize(in, s.classifier, s.holidayWindowDays); err != nil {
		return summary, err
	}
	s.deps.Cache.Set(ctx, key, summary)
	s.logger.Debug("dashboard summary computed",
		zap.Int("tickets", len(in.Tickets)),
		zap.Int("projects", len(in.Projects)))
	return summary, nil
}
