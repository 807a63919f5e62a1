package postgres

import (
	"context"
	"errors"

	"github.com/hexanotify/notifier-service/internal/domain/directmessage/deps"
	dmerrors "github.com/hexanotify/notifier-service/internal/domain/directmessage/errors"
	"github.com/hexanotify/notifier-service/internal/domain/entities"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) deps.DirectMessageRepository {
	return &Repository{db: db}
}

func (r *Repository) GetAuthorizedSender(ctx context.Context, receiverID, senderID uint) (*entities.AuthorizedSender, error) {
	var grant entities.AuthorizedSender
	result := r.db.WithContext(ctx).
		Where("receiver_id = ? AND sender_id = ?", receiverID, senderID).
		First(&grant)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, dmerrors.ErrDatabaseOperation
	}

	return &grant, nil
}

func (r *Repository) CreateAuthorizedSender(ctx context.Context, grant *entities.AuthorizedSender) error {
	result := r.db.WithContext(ctx).Create(grant)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return dmerrors.ErrSenderAlreadyGranted
		}
		return dmerrors.ErrDatabaseOperation
	}
	return nil
}

func (r *Repository) GetChannelRow(ctx context.Context, id uint) (*entities.SubscriberServiceChannel, error) {
	var row entities.SubscriberServiceChannel
	result := r.db.WithContext(ctx).First(&row, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, dmerrors.ErrDatabaseOperation
	}

	return &row, nil
}

func (r *Repository) AppendLog(ctx context.Context, log *entities.DirectMessageLog) error {
	result := r.db.WithContext(ctx).Create(log)
	if result.Error != nil {
		return dmerrors.ErrDatabaseOperation
	}
	return nil
}
