package worker_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/spec-kit/teamboard/internal/config"
	"github.com/spec-kit/teamboard/internal/events"
	"github.com/spec-kit/teamboard/internal/service"
	"github.com/spec-kit/teamboard/internal/worker"
)

func TestStartSubscribers(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher(nil)
	notifications := service.NewNotificationService(dispatcher, nil, config.NotificationConfig{})
	worker.StartSubscribers(notifications, nil)

	gt.NoError(t, dispatcher.Publish(context.Background(), events.Event{
		Type:    events.EventSyncFailed,
		Entity:  events.EntityTicket,
		Payload: events.SyncFailedPayload{Operation: "create", Error: "timeout"},
	}))
	gt.A(t, notifications.Notices()).Length(1)
}
