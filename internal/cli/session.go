package cli

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/spec-kit/teamboard/internal/apiclient"
	"github.com/spec-kit/teamboard/internal/board"
	"github.com/spec-kit/teamboard/internal/config"
	"github.com/spec-kit/teamboard/internal/events"
	"github.com/spec-kit/teamboard/internal/observability"
	"github.com/spec-kit/teamboard/internal/service"
	"github.com/spec-kit/teamboard/internal/status"
	"github.com/spec-kit/teamboard/internal/store"
	"github.com/spec-kit/teamboard/internal/worker"
)

// session is one loaded dashboard: a store synced from the API plus its renderer.
type session struct {
	cfg        *config.Config
	logger     *zap.Logger
	classifier *status.Classifier
	store      *store.Store
	notices    *service.NotificationService
	render     *board.Renderer
}

func openSession(ctx context.Context, cfg *config.Config, out io.Writer) (*session, error) {
	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		return nil, err
	}

	classifier := status.NewClassifier(
		status.WithLogger(logger),
		status.WithStrictDates(cfg.Board.StrictDates),
	)
	dispatcher := events.NewInMemoryDispatcher(logger)
	notices := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartSubscribers(notices)

	st := store.New(store.Options{
		Backend:    apiclient.New(cfg.Client, logger),
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	if err := st.Load(ctx); err != nil {
		_ = logger.Sync()
		return nil, err
	}

	return &session{
		cfg:        cfg,
		logger:     logger,
		classifier: classifier,
		store:      st,
		notices:    notices,
		render:     board.New(out, classifier),
	}, nil
}

// finish shows pending notices and passes err through.
func (s *session) finish(err error) error {
	if renderErr := s.render.Notices(s.notices.Notices()); renderErr != nil && err == nil {
		err = renderErr
	}
	_ = s.logger.Sync()
	return err
}
