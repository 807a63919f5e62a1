package postgres

import (
	"context"
	"errors"

	"github.com/hexanotify/notifier-service/internal/domain/entities"
	"github.com/hexanotify/notifier-service/internal/domain/notification/deps"
	notiferrors "github.com/hexanotify/notifier-service/internal/domain/notification/errors"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) deps.NotificationRepository {
	return &Repository{db: db}
}

func (r *Repository) CreateNotification(ctx context.Context, notification *entities.Notification) error {
	result := r.db.WithContext(ctx).Create(notification)
	if result.Error != nil {
		return notiferrors.ErrDatabaseOperation
	}
	return nil
}

func (r *Repository) CreateSubscription(ctx context.Context, subscription *entities.Subscription) error {
	result := r.db.WithContext(ctx).Create(subscription)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return notiferrors.ErrSubscriptionExists
		}
		return notiferrors.ErrDatabaseOperation
	}
	return nil
}

func (r *Repository) ListSubscriptionsByList(ctx context.Context, listID uint) ([]entities.Subscription, error) {
	var subscriptions []entities.Subscription
	result := r.db.WithContext(ctx).
		Where("publisher_list_id = ?", listID).
		Order("id ASC").
		Find(&subscriptions)

	if result.Error != nil {
		return nil, notiferrors.ErrDatabaseOperation
	}

	return subscriptions, nil
}

func (r *Repository) GetChannelPair(ctx context.Context, subscriberID, channelID uint) (*entities.SubscriberServiceChannel, error) {
	var row entities.SubscriberServiceChannel
	result := r.db.WithContext(ctx).
		Where("subscriber_id = ? AND service_channel_id = ?", subscriberID, channelID).
		First(&row)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, notiferrors.ErrDatabaseOperation
	}

	return &row, nil
}
