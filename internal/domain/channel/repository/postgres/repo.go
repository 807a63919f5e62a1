package postgres

import (
	"context"
	"errors"

	"github.com/hexanotify/notifier-service/internal/domain/channel/deps"
	channelerrors "github.com/hexanotify/notifier-service/internal/domain/channel/errors"
	"github.com/hexanotify/notifier-service/internal/domain/entities"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) deps.ChannelRepository {
	return &Repository{db: db}
}

func (r *Repository) CreateServiceChannel(ctx context.Context, channel *entities.ServiceChannel) error {
	result := r.db.WithContext(ctx).Create(channel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return channelerrors.ErrChannelExists
		}
		return channelerrors.ErrDatabaseOperation
	}
	return nil
}

func (r *Repository) GetPair(ctx context.Context, subscriberID, channelID uint) (*entities.SubscriberServiceChannel, error) {
	var row entities.SubscriberServiceChannel
	result := r.db.WithContext(ctx).
		Where("subscriber_id = ? AND service_channel_id = ?", subscriberID, channelID).
		First(&row)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, channelerrors.ErrChannelNotFound
		}
		return nil, channelerrors.ErrDatabaseOperation
	}

	return &row, nil
}

func (r *Repository) Update(ctx context.Context, row *entities.SubscriberServiceChannel) error {
	result := r.db.WithContext(ctx).Save(row)
	if result.Error != nil {
		return channelerrors.ErrDatabaseOperation
	}
	return nil
}

func (r *Repository) FirstActiveBySubscriber(ctx context.Context, subscriberID uint) (*entities.SubscriberServiceChannel, error) {
	var row entities.SubscriberServiceChannel
	result := r.db.WithContext(ctx).
		Where("subscriber_id = ? AND is_active = ? AND verified_at IS NOT NULL", subscriberID, true).
		Order("service_channel_id ASC").
		First(&row)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, channelerrors.ErrDatabaseOperation
	}

	return &row, nil
}
