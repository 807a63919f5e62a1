package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	cascadedeps "github.com/hexanotify/notifier-service/internal/domain/cascade/deps"
	"github.com/hexanotify/notifier-service/internal/domain/cascade/dto"
	"github.com/hexanotify/notifier-service/internal/domain/channel/deps"
	channelerrors "github.com/hexanotify/notifier-service/internal/domain/channel/errors"
	"github.com/hexanotify/notifier-service/internal/domain/entities"
	"github.com/rs/zerolog"
)

// Tracker owns per-subscriber, per-channel verification and activation
// state. Activation is only possible after the channel identity has been
// verified; deactivation keeps the verification.
type Tracker struct {
	repo     deps.ChannelRepository
	cascade  cascadedeps.Engine
	producer cascadedeps.EntityEventProducer
	logger   zerolog.Logger
}

func NewTracker(
	repo deps.ChannelRepository,
	cascade cascadedeps.Engine,
	producer cascadedeps.EntityEventProducer,
	logger zerolog.Logger,
) *Tracker {
	return &Tracker{
		repo:     repo,
		cascade:  cascade,
		producer: producer,
		logger:   logger,
	}
}

// CreateServiceChannel registers a new delivery medium and dispatches the
// creation event to the cascade engine so every existing subscriber gets
// an unverified, inactive row for it.
func (t *Tracker) CreateServiceChannel(ctx context.Context, name string) (*entities.ServiceChannel, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, channelerrors.ErrInvalidChannelName
	}

	channel := &entities.ServiceChannel{Name: name}
	if err := t.repo.CreateServiceChannel(ctx, channel); err != nil {
		t.logger.Error().Err(err).
			Str("name", name).
			Msg("failed to create service channel")
		return nil, err
	}

	if err := t.cascade.OnServiceChannelCreated(ctx, channel.ID); err != nil {
		return nil, err
	}

	if err := t.producer.SendEntityCreated(ctx, dto.EventTypeServiceChannelCreated, channel.ID); err != nil {
		t.logger.Error().Err(err).
			Uint("service_channel_id", channel.ID).
			Msg("failed to publish service channel created event")
		// channel and cascade rows are already persisted
	}

	t.logger.Info().
		Uint("service_channel_id", channel.ID).
		Str("name", name).
		Msg("service channel created")

	return channel, nil
}

// RequestVerification issues a fresh verification token for the pair
func (t *Tracker) RequestVerification(ctx context.Context, subscriberID, channelID uint) (string, error) {
	row, err := t.repo.GetPair(ctx, subscriberID, channelID)
	if err != nil {
		return "", err
	}

	token, err := generateToken()
	if err != nil {
		return "", err
	}

	row.VerificationToken = &token
	if err := t.repo.Update(ctx, row); err != nil {
		t.logger.Error().Err(err).
			Uint("subscriber_id", subscriberID).
			Uint("service_channel_id", channelID).
			Msg("failed to store verification token")
		return "", err
	}

	t.logger.Info().
		Uint("subscriber_id", subscriberID).
		Uint("service_channel_id", channelID).
		Msg("verification token issued")

	return token, nil
}

// Verify confirms the subscriber's identity on the channel. The activation
// flag is left untouched.
func (t *Tracker) Verify(ctx context.Context, subscriberID, channelID uint, username, token string) (*entities.SubscriberServiceChannel, error) {
	row, err := t.repo.GetPair(ctx, subscriberID, channelID)
	if err != nil {
		return nil, err
	}

	if row.VerificationToken == nil || *row.VerificationToken != token {
		t.logger.Warn().
			Uint("subscriber_id", subscriberID).
			Uint("service_channel_id", channelID).
			Msg("verification attempted with invalid token")
		return nil, channelerrors.ErrInvalidToken
	}

	now := time.Now()
	row.VerifiedAt = &now
	row.ServiceChannelUsername = &username

	if err := t.repo.Update(ctx, row); err != nil {
		t.logger.Error().Err(err).
			Uint("subscriber_id", subscriberID).
			Uint("service_channel_id", channelID).
			Msg("failed to store verification")
		return nil, err
	}

	t.logger.Info().
		Uint("subscriber_id", subscriberID).
		Uint("service_channel_id", channelID).
		Msg("channel verified")

	return row, nil
}

// Activate marks a verified channel row active
func (t *Tracker) Activate(ctx context.Context, subscriberID, channelID uint) (*entities.SubscriberServiceChannel, error) {
	row, err := t.repo.GetPair(ctx, subscriberID, channelID)
	if err != nil {
		return nil, err
	}

	if !row.Verified() {
		return nil, channelerrors.ErrNotVerified
	}

	row.IsActive = true
	if err := t.repo.Update(ctx, row); err != nil {
		t.logger.Error().Err(err).
			Uint("subscriber_id", subscriberID).
			Uint("service_channel_id", channelID).
			Msg("failed to activate channel")
		return nil, err
	}

	t.logger.Info().
		Uint("subscriber_id", subscriberID).
		Uint("service_channel_id", channelID).
		Msg("channel activated")

	return row, nil
}

// Deactivate clears the active flag without touching verification
func (t *Tracker) Deactivate(ctx context.Context, subscriberID, channelID uint) error {
	row, err := t.repo.GetPair(ctx, subscriberID, channelID)
	if err != nil {
		return err
	}

	row.IsActive = false
	if err := t.repo.Update(ctx, row); err != nil {
		t.logger.Error().Err(err).
			Uint("subscriber_id", subscriberID).
			Uint("service_channel_id", channelID).
			Msg("failed to deactivate channel")
		return err
	}

	t.logger.Info().
		Uint("subscriber_id", subscriberID).
		Uint("service_channel_id", channelID).
		Msg("channel deactivated")

	return nil
}

// FirstActiveChannel returns the subscriber's active, verified channel row
// with the lowest service channel id, or nil when the subscriber has none.
func (t *Tracker) FirstActiveChannel(ctx context.Context, subscriberID uint) (*entities.SubscriberServiceChannel, error) {
	return t.repo.FirstActiveBySubscriber(ctx, subscriberID)
}

func generateToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
