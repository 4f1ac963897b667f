package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEntityCreated EventType = "entity_created"
	EventEntityUpdated EventType = "entity_updated"
	EventEntityDeleted EventType = "entity_deleted"
	EventSyncFailed    EventType = "sync_failed"
)

// Entity names the collection an event refers to.
type Entity string

const (
	EntityTicket        Entity = "ticket"
	EntityProject       Entity = "project"
	EntityMember        Entity = "member"
	EntityCertification Entity = "certification"
)

// Event represents a change to one of the board collections.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Entity    Entity      `json:"entity"`
	EntityID  string      `json:"entity_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// EntityChangedPayload carries a short label for created/updated/deleted events.
type EntityChangedPayload struct {
	Label string `json:"label"`
}

// SyncFailedPayload describes a mutation the backend rejected or never acknowledged.
type SyncFailedPayload struct {
	Operation string `json:"operation"`
	Error     string `json:"error"`
	Status    int    `json:"status,omitempty"`
}
