package deps

import (
	"context"

	"github.com/hexanotify/notifier-service/internal/domain/entities"
)

// ChannelRepository is the storage surface for service channels and
// per-subscriber channel rows.
type ChannelRepository interface {
	// CreateServiceChannel creates a service channel.
	// Returns errors.ErrChannelExists when the name is taken.
	CreateServiceChannel(ctx context.Context, channel *entities.ServiceChannel) error

	// GetPair returns the row for a (subscriber, service channel) pair.
	// Returns errors.ErrChannelNotFound when it does not exist.
	GetPair(ctx context.Context, subscriberID, channelID uint) (*entities.SubscriberServiceChannel, error)

	// Update persists changes to a channel row
	Update(ctx context.Context, row *entities.SubscriberServiceChannel) error

	// FirstActiveBySubscriber returns the active, verified row with the
	// lowest service channel id for the subscriber, or nil when none.
	FirstActiveBySubscriber(ctx context.Context, subscriberID uint) (*entities.SubscriberServiceChannel, error)
}

// Tracker is the consumer-side contract of the activation tracker
type Tracker interface {
	CreateServiceChannel(ctx context.Context, name string) (*entities.ServiceChannel, error)
	RequestVerification(ctx context.Context, subscriberID, channelID uint) (string, error)
	Verify(ctx context.Context, subscriberID, channelID uint, username, token string) (*entities.SubscriberServiceChannel, error)
	Activate(ctx context.Context, subscriberID, channelID uint) (*entities.SubscriberServiceChannel, error)
	Deactivate(ctx context.Context, subscriberID, channelID uint) error
	FirstActiveChannel(ctx context.Context, subscriberID uint) (*entities.SubscriberServiceChannel, error)
}
