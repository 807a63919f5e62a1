package deps

import (
	"context"

	"github.com/hexanotify/notifier-service/internal/domain/entities"
	"github.com/hexanotify/notifier-service/internal/domain/notification/dto"
)

// NotificationRepository is the storage surface for notifications and
// list subscriptions.
type NotificationRepository interface {
	// CreateNotification persists one notification row
	CreateNotification(ctx context.Context, notification *entities.Notification) error

	// CreateSubscription links a subscriber to a list over one channel.
	// Returns errors.ErrSubscriptionExists on a duplicate.
	CreateSubscription(ctx context.Context, subscription *entities.Subscription) error

	// ListSubscriptionsByList returns all subscriptions of a list
	ListSubscriptionsByList(ctx context.Context, listID uint) ([]entities.Subscription, error)

	// GetChannelPair returns the (subscriber, service channel) row, or nil
	// when the pair is not materialized
	GetChannelPair(ctx context.Context, subscriberID, channelID uint) (*entities.SubscriberServiceChannel, error)
}

// DeliveryProducer emits delivery intents for eligible recipients
type DeliveryProducer interface {
	SendDeliveryIntent(ctx context.Context, intent *dto.DeliveryIntent) error
}

// Fanout is the consumer-side contract of the notification fan-out
type Fanout interface {
	Publish(ctx context.Context, listID uint, notifType entities.NotificationType, title, message string) (*entities.Notification, *dto.Tally, error)
	Subscribe(ctx context.Context, subscriberID, listID, channelID uint) (*entities.Subscription, error)
}
