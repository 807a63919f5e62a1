package deps

import (
	"context"

	"github.com/hexanotify/notifier-service/internal/domain/cascade/dto"
	"github.com/hexanotify/notifier-service/internal/domain/entities"
)

// CascadeRepository is the storage surface the cascade engine writes
// derived rows through. Uniqueness is enforced by composite keys at the
// storage layer; Create methods surface violations as typed sentinels.
type CascadeRepository interface {
	// CreateSubscriber creates the subscriber row for a user.
	// Returns errors.ErrDuplicateSubscriber when the user already has one.
	CreateSubscriber(ctx context.Context, subscriber *entities.Subscriber) error

	// CreateChannelRow creates one (subscriber, channel) join row.
	// Returns errors.ErrChannelRowExists when the pair is already present.
	CreateChannelRow(ctx context.Context, row *entities.SubscriberServiceChannel) error

	// ListSubscriberIDs returns the ids of all subscribers
	ListSubscriberIDs(ctx context.Context) ([]uint, error)

	// ListServiceChannelIDs returns the ids of all service channels
	ListServiceChannelIDs(ctx context.Context) ([]uint, error)
}

// EntityEventProducer publishes entity-created events for external consumers
type EntityEventProducer interface {
	SendEntityCreated(ctx context.Context, eventType string, entityID uint) error
}

// Engine is the consumer-side contract of the cascade engine, used by the
// creating usecases and the Kafka delivery handler.
type Engine interface {
	OnUserCreated(ctx context.Context, userID uint) (*entities.Subscriber, error)
	OnSubscriberCreated(ctx context.Context, subscriberID uint) error
	OnServiceChannelCreated(ctx context.Context, channelID uint) error
}

// EntityEventHandler dispatches decoded entity-created events
type EntityEventHandler interface {
	Handle(ctx context.Context, event *dto.EntityEvent) error
}
