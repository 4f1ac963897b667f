package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/teamboard/internal/config"
	"github.com/spec-kit/teamboard/internal/events"
)

// NoticeLevel grades a user-visible notice.
type NoticeLevel string

const NoticeError NoticeLevel = "error"

// Notice is a dismissible, non-blocking message for the user.
type Notice struct {
	ID        string      `json:"id"`
	Level     NoticeLevel `json:"level"`
	Message   string      `json:"message"`
	CreatedAt time.Time   `json:"createdAt"`
}

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig

	mu      sync.Mutex
	notices []Notice
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventEntityCreated, n.handleEntityChanged)
	n.dispatcher.Subscribe(events.EventEntityUpdated, n.handleEntityChanged)
	n.dispatcher.Subscribe(events.EventEntityDeleted, n.handleEntityChanged)
	n.dispatcher.Subscribe(events.EventSyncFailed, n.handleSyncFailed)
}

// Notices returns pending notices, oldest first.
func (n *NotificationService) Notices() []Notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Notice(nil), n.notices...)
}

// Dismiss removes a notice. It reports whether the notice existed.
func (n *NotificationService) Dismiss(id string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, notice := range n.notices {
		if notice.ID == id {
			n.notices = append(n.notices[:i], n.notices[i+1:]...)
			return true
		}
	}
	return false
}

func (n *NotificationService) handleEntityChanged(ctx context.Context, event events.Event) error {
	n.logger.Info(string(event.Type),
		zap.String("entity", string(event.Entity)),
		zap.String("entity_id", event.EntityID),
		zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleSyncFailed(ctx context.Context, event events.Event) error {
	message := "Could not save " + string(event.Entity)
	if payload, ok := event.Payload.(events.SyncFailedPayload); ok {
		message = "Could not " + payload.Operation + " " + string(event.Entity) + ": " + payload.Error
	}
	n.mu.Lock()
	n.notices = append(n.notices, Notice{
		ID:        uuid.NewString(),
		Level:     NoticeError,
		Message:   message,
		CreatedAt: event.Timestamp,
	})
	n.mu.Unlock()

	n.logger.Warn("sync failed",
		zap.String("entity", string(event.Entity)),
		zap.String("entity_id", event.EntityID),
		zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("entity_id", event.EntityID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("entity_id", event.EntityID),
		zap.String("event_type", string(event.Type)))
}
