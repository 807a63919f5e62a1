package usecase

import (
	"context"

	"github.com/hexanotify/notifier-service/internal/domain/entities"
	"github.com/hexanotify/notifier-service/internal/domain/notification/deps"
	"github.com/hexanotify/notifier-service/internal/domain/notification/dto"
	notiferrors "github.com/hexanotify/notifier-service/internal/domain/notification/errors"
	"github.com/hexanotify/notifier-service/internal/infrastructure/metrics"
	"github.com/rs/zerolog"
)

// Fanout resolves the eligible recipient set of a publisher list and
// emits one delivery intent per recipient whose channel row is verified
// and active. Transport delivery is downstream of the emitted intents.
type Fanout struct {
	repo     deps.NotificationRepository
	producer deps.DeliveryProducer
	metrics  *metrics.Metrics
	logger   zerolog.Logger
}

func NewFanout(
	repo deps.NotificationRepository,
	producer deps.DeliveryProducer,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *Fanout {
	return &Fanout{
		repo:     repo,
		producer: producer,
		metrics:  m,
		logger:   logger,
	}
}

// Publish validates the type, persists the notification and resolves the
// list's subscriptions into attempted and skipped recipients. Nothing is
// written when the type is unknown.
func (f *Fanout) Publish(ctx context.Context, listID uint, notifType entities.NotificationType, title, message string) (*entities.Notification, *dto.Tally, error) {
	if !notifType.Valid() {
		return nil, nil, notiferrors.ErrInvalidNotificationType
	}

	notification := &entities.Notification{
		PublisherListID: listID,
		Type:            notifType,
		Title:           title,
		Message:         message,
	}

	if err := f.repo.CreateNotification(ctx, notification); err != nil {
		f.logger.Error().Err(err).
			Uint("publisher_list_id", listID).
			Msg("failed to persist notification")
		return nil, nil, err
	}

	subscriptions, err := f.repo.ListSubscriptionsByList(ctx, listID)
	if err != nil {
		f.logger.Error().Err(err).
			Uint("publisher_list_id", listID).
			Msg("failed to list subscriptions")
		return nil, nil, err
	}

	tally := &dto.Tally{}
	for _, sub := range subscriptions {
		row, err := f.repo.GetChannelPair(ctx, sub.SubscriberID, sub.ServiceChannelID)
		if err != nil {
			return nil, nil, err
		}

		if row == nil || !row.IsActive || !row.Verified() {
			tally.Skipped++
			continue
		}

		intent := dto.NewDeliveryIntent(
			notification.ID,
			listID,
			sub.SubscriberID,
			sub.ServiceChannelID,
			string(notifType),
			title,
		)
		if err := f.producer.SendDeliveryIntent(ctx, intent); err != nil {
			f.logger.Error().Err(err).
				Uint("subscriber_id", sub.SubscriberID).
				Uint("service_channel_id", sub.ServiceChannelID).
				Msg("failed to emit delivery intent")
			// recipient stays attempted; delivery retries downstream
		}
		tally.Attempted++
	}

	f.metrics.RecordFanout(tally.Attempted, tally.Skipped)
	f.logger.Info().
		Uint("publisher_list_id", listID).
		Uint("notification_id", notification.ID).
		Str("type", string(notifType)).
		Int("attempted", tally.Attempted).
		Int("skipped", tally.Skipped).
		Msg("notification published")

	return notification, tally, nil
}

// Subscribe joins a subscriber to a list over one specific channel
func (f *Fanout) Subscribe(ctx context.Context, subscriberID, listID, channelID uint) (*entities.Subscription, error) {
	subscription := &entities.Subscription{
		SubscriberID:     subscriberID,
		PublisherListID:  listID,
		ServiceChannelID: channelID,
	}

	if err := f.repo.CreateSubscription(ctx, subscription); err != nil {
		f.logger.Error().Err(err).
			Uint("subscriber_id", subscriberID).
			Uint("publisher_list_id", listID).
			Msg("failed to create subscription")
		return nil, err
	}

	f.logger.Info().
		Uint("subscriber_id", subscriberID).
		Uint("publisher_list_id", listID).
		Uint("service_channel_id", channelID).
		Msg("subscription created")

	return subscription, nil
}
