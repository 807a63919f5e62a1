package postgres

import (
	"context"
	"errors"

	"github.com/hexanotify/notifier-service/internal/domain/cascade/deps"
	cascadeerrors "github.com/hexanotify/notifier-service/internal/domain/cascade/errors"
	"github.com/hexanotify/notifier-service/internal/domain/entities"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) deps.CascadeRepository {
	return &Repository{db: db}
}

func (r *Repository) CreateSubscriber(ctx context.Context, subscriber *entities.Subscriber) error {
	result := r.db.WithContext(ctx).Create(subscriber)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return cascadeerrors.ErrDuplicateSubscriber
		}
		return cascadeerrors.ErrDatabaseOperation
	}
	return nil
}

func (r *Repository) CreateChannelRow(ctx context.Context, row *entities.SubscriberServiceChannel) error {
	result := r.db.WithContext(ctx).Create(row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return cascadeerrors.ErrChannelRowExists
		}
		return cascadeerrors.ErrDatabaseOperation
	}
	return nil
}

func (r *Repository) ListSubscriberIDs(ctx context.Context) ([]uint, error) {
	var ids []uint
	result := r.db.WithContext(ctx).
		Model(&entities.Subscriber{}).
		Order("id ASC").
		Pluck("id", &ids)

	if result.Error != nil {
		return nil, cascadeerrors.ErrDatabaseOperation
	}

	return ids, nil
}

func (r *Repository) ListServiceChannelIDs(ctx context.Context) ([]uint, error) {
	var ids []uint
	result := r.db.WithContext(ctx).
		Model(&entities.ServiceChannel{}).
		Order("id ASC").
		Pluck("id", &ids)

	if result.Error != nil {
		return nil, cascadeerrors.ErrDatabaseOperation
	}

	return ids, nil
}
