package usecase

import (
	"context"
	"errors"

	"github.com/hexanotify/notifier-service/internal/domain/cascade/deps"
	cascadeerrors "github.com/hexanotify/notifier-service/internal/domain/cascade/errors"
	"github.com/hexanotify/notifier-service/internal/domain/entities"
	"github.com/hexanotify/notifier-service/internal/infrastructure/metrics"
	"github.com/rs/zerolog"
)

// Engine reacts to entity-created events and restores the invariant that
// the full Subscriber x ServiceChannel cross-product is materialized as
// subscriber_service_channels rows. All operations are replay-safe:
// already-present rows are skipped, never duplicated.
type Engine struct {
	repo    deps.CascadeRepository
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

func NewEngine(
	repo deps.CascadeRepository,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *Engine {
	return &Engine{
		repo:    repo,
		metrics: m,
		logger:  logger,
	}
}

// OnUserCreated creates the single subscriber owned by the user and then
// materializes its channel rows. A user that already has a subscriber is
// reported as ErrDuplicateSubscriber so replaying consumers can treat it
// as already processed.
func (e *Engine) OnUserCreated(ctx context.Context, userID uint) (*entities.Subscriber, error) {
	if userID == 0 {
		return nil, cascadeerrors.ErrInvalidEntityID
	}

	subscriber := &entities.Subscriber{
		UserID:   userID,
		IsActive: false,
	}

	if err := e.repo.CreateSubscriber(ctx, subscriber); err != nil {
		if errors.Is(err, cascadeerrors.ErrDuplicateSubscriber) {
			return nil, err
		}
		e.metrics.RecordCascadeError("user_created")
		e.logger.Error().Err(err).
			Uint("user_id", userID).
			Msg("failed to create subscriber for user")
		return nil, err
	}

	e.metrics.SubscribersCreated.Inc()
	e.logger.Info().
		Uint("user_id", userID).
		Uint("subscriber_id", subscriber.ID).
		Msg("subscriber created for user")

	if err := e.OnSubscriberCreated(ctx, subscriber.ID); err != nil {
		return nil, err
	}

	return subscriber, nil
}

// OnSubscriberCreated materializes one channel row per existing service
// channel for the subscriber, skipping pairs that already exist.
func (e *Engine) OnSubscriberCreated(ctx context.Context, subscriberID uint) error {
	if subscriberID == 0 {
		return cascadeerrors.ErrInvalidEntityID
	}

	channelIDs, err := e.repo.ListServiceChannelIDs(ctx)
	if err != nil {
		e.metrics.RecordCascadeError("subscriber_created")
		e.logger.Error().Err(err).
			Uint("subscriber_id", subscriberID).
			Msg("failed to list service channels")
		return err
	}

	created, skipped := 0, 0
	for _, channelID := range channelIDs {
		switch err := e.createChannelRow(ctx, subscriberID, channelID); {
		case err == nil:
			created++
		case errors.Is(err, cascadeerrors.ErrChannelRowExists):
			skipped++
		default:
			e.metrics.RecordCascadeError("subscriber_created")
			e.logger.Error().Err(err).
				Uint("subscriber_id", subscriberID).
				Uint("service_channel_id", channelID).
				Msg("failed to create channel row")
			return err
		}
	}

	e.logger.Info().
		Uint("subscriber_id", subscriberID).
		Int("created", created).
		Int("skipped", skipped).
		Msg("channel rows materialized for subscriber")

	return nil
}

// OnServiceChannelCreated materializes one channel row per existing
// subscriber for the new service channel, skipping pairs that already
// exist.
func (e *Engine) OnServiceChannelCreated(ctx context.Context, channelID uint) error {
	if channelID == 0 {
		return cascadeerrors.ErrInvalidEntityID
	}

	subscriberIDs, err := e.repo.ListSubscriberIDs(ctx)
	if err != nil {
		e.metrics.RecordCascadeError("service_channel_created")
		e.logger.Error().Err(err).
			Uint("service_channel_id", channelID).
			Msg("failed to list subscribers")
		return err
	}

	created, skipped := 0, 0
	for _, subscriberID := range subscriberIDs {
		switch err := e.createChannelRow(ctx, subscriberID, channelID); {
		case err == nil:
			created++
		case errors.Is(err, cascadeerrors.ErrChannelRowExists):
			skipped++
		default:
			e.metrics.RecordCascadeError("service_channel_created")
			e.logger.Error().Err(err).
				Uint("subscriber_id", subscriberID).
				Uint("service_channel_id", channelID).
				Msg("failed to create channel row")
			return err
		}
	}

	e.logger.Info().
		Uint("service_channel_id", channelID).
		Int("created", created).
		Int("skipped", skipped).
		Msg("channel rows materialized for service channel")

	return nil
}

func (e *Engine) createChannelRow(ctx context.Context, subscriberID, channelID uint) error {
	row := &entities.SubscriberServiceChannel{
		SubscriberID:     subscriberID,
		ServiceChannelID: channelID,
		IsActive:         false,
	}

	err := e.repo.CreateChannelRow(ctx, row)
	if err != nil {
		if errors.Is(err, cascadeerrors.ErrChannelRowExists) {
			e.metrics.ChannelRowsSkipped.Inc()
		}
		return err
	}

	e.metrics.ChannelRowsCreated.Inc()
	return nil
}
