package postgres

import (
	"context"
	"errors"

	"github.com/hexanotify/notifier-service/internal/domain/account/deps"
	accounterrors "github.com/hexanotify/notifier-service/internal/domain/account/errors"
	"github.com/hexanotify/notifier-service/internal/domain/entities"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) deps.UserRepository {
	return &Repository{db: db}
}

func (r *Repository) CreateUser(ctx context.Context, user *entities.User) error {
	result := r.db.WithContext(ctx).Create(user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return accounterrors.ErrUserExists
		}
		return accounterrors.ErrDatabaseOperation
	}
	return nil
}

func (r *Repository) ListSubscribers(ctx context.Context) ([]entities.Subscriber, error) {
	var subscribers []entities.Subscriber
	result := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&subscribers)

	if result.Error != nil {
		return nil, accounterrors.ErrDatabaseOperation
	}

	return subscribers, nil
}
