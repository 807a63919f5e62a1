package deps

import (
	"context"

	"github.com/hexanotify/notifier-service/internal/domain/account/dto"
	"github.com/hexanotify/notifier-service/internal/domain/entities"
)

// UserRepository is the storage surface for users and the subscriber
// read endpoint.
type UserRepository interface {
	// CreateUser persists a new user.
	// Returns errors.ErrUserExists when username or email is taken.
	CreateUser(ctx context.Context, user *entities.User) error

	// ListSubscribers returns all subscribers
	ListSubscribers(ctx context.Context) ([]entities.Subscriber, error)
}

// Registry is the consumer-side contract of the account registry
type Registry interface {
	Register(ctx context.Context, input dto.RegisterInput) (*entities.User, error)
	ListSubscribers(ctx context.Context) ([]entities.Subscriber, error)
}
