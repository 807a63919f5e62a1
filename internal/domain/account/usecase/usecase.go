package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/hexanotify/notifier-service/internal/domain/account/deps"
	"github.com/hexanotify/notifier-service/internal/domain/account/dto"
	accounterrors "github.com/hexanotify/notifier-service/internal/domain/account/errors"
	cascadedeps "github.com/hexanotify/notifier-service/internal/domain/cascade/deps"
	cascadedto "github.com/hexanotify/notifier-service/internal/domain/cascade/dto"
	cascadeerrors "github.com/hexanotify/notifier-service/internal/domain/cascade/errors"
	"github.com/hexanotify/notifier-service/internal/domain/entities"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// Registry creates users and serves the subscriber read endpoint. Every
// successful registration dispatches the user-created event to the
// cascade engine synchronously and publishes it for external consumers.
type Registry struct {
	repo     deps.UserRepository
	cascade  cascadedeps.Engine
	producer cascadedeps.EntityEventProducer
	logger   zerolog.Logger
}

func NewRegistry(
	repo deps.UserRepository,
	cascade cascadedeps.Engine,
	producer cascadedeps.EntityEventProducer,
	logger zerolog.Logger,
) *Registry {
	return &Registry{
		repo:     repo,
		cascade:  cascade,
		producer: producer,
		logger:   logger,
	}
}

// Register validates and persists a new user and materializes its
// subscriber through the cascade engine.
func (r *Registry) Register(ctx context.Context, input dto.RegisterInput) (*entities.User, error) {
	username := normalize(input.Username)
	email := normalize(input.Email)

	if username == "" {
		return nil, accounterrors.ErrInvalidUsername
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, accounterrors.ErrInvalidEmail
	}
	if len(input.Password) < minPasswordLength {
		return nil, accounterrors.ErrInvalidPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Username:     username,
		Password:     string(hash),
		Email:        email,
		Mobile:       strings.TrimSpace(input.Mobile),
		IsSuperadmin: input.IsSuperadmin,
		IsAdmin:      input.IsAdmin,
		IsPublisher:  input.IsPublisher,
		IsSubscriber: input.IsSubscriber,
	}

	if err := r.repo.CreateUser(ctx, user); err != nil {
		r.logger.Error().Err(err).
			Str("username", username).
			Msg("failed to create user")
		return nil, err
	}

	if _, err := r.cascade.OnUserCreated(ctx, user.ID); err != nil {
		// a replayed registration already converged
		if !errors.Is(err, cascadeerrors.ErrDuplicateSubscriber) {
			return nil, err
		}
	}

	if err := r.producer.SendEntityCreated(ctx, cascadedto.EventTypeUserCreated, user.ID); err != nil {
		r.logger.Error().Err(err).
			Uint("user_id", user.ID).
			Msg("failed to publish user created event")
		// user and subscriber are already persisted
	}

	r.logger.Info().
		Uint("user_id", user.ID).
		Str("username", username).
		Msg("user registered")

	return user, nil
}

// ListSubscribers returns all subscribers for the read endpoint
func (r *Registry) ListSubscribers(ctx context.Context) ([]entities.Subscriber, error) {
	subscribers, err := r.repo.ListSubscribers(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to list subscribers")
		return nil, err
	}
	return subscribers, nil
}

// normalize lowercases and strips whitespace, matching the stored form of
// usernames and emails
func normalize(v string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(v), " ", ""))
}
