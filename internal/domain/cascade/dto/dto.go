package dto

import "time"

// Event types carried in entity-created events
const (
	EventTypeUserCreated           = "user_created"
	EventTypeSubscriberCreated     = "subscriber_created"
	EventTypeServiceChannelCreated = "service_channel_created"
)

// EntityEvent is the wire form of an entity-created event
type EntityEvent struct {
	Type      string `json:"type"`
	EntityID  string `json:"entity_id"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

// NewEntityEvent creates an EntityEvent with current timestamp
func NewEntityEvent(eventType, entityID string) *EntityEvent {
	return &EntityEvent{
		Type:      eventType,
		EntityID:  entityID,
		Timestamp: time.Now().Unix(),
	}
}
