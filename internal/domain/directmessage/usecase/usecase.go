package usecase

import (
	"context"
	"time"

	"github.com/hexanotify/notifier-service/internal/domain/directmessage/deps"
	dmerrors "github.com/hexanotify/notifier-service/internal/domain/directmessage/errors"
	"github.com/hexanotify/notifier-service/internal/domain/entities"
	"github.com/hexanotify/notifier-service/internal/infrastructure/metrics"
	"github.com/rs/zerolog"
)

// Gate decides whether a sender may direct-message a receiver. Every send
// attempt is written to the audit log, authorized or not.
type Gate struct {
	repo     deps.DirectMessageRepository
	channels deps.ChannelResolver
	metrics  *metrics.Metrics
	logger   zerolog.Logger
}

func NewGate(
	repo deps.DirectMessageRepository,
	channels deps.ChannelResolver,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *Gate {
	return &Gate{
		repo:     repo,
		channels: channels,
		metrics:  m,
		logger:   logger,
	}
}

// IsAuthorized reports whether the sender is whitelisted to message the
// receiver over the given channel row. Self-messaging is always denied.
// A missing whitelist row means not authorized, never an error.
func (g *Gate) IsAuthorized(ctx context.Context, senderID, receiverID, channelRowID uint) (bool, error) {
	if senderID == receiverID {
		return false, nil
	}

	grant, err := g.repo.GetAuthorizedSender(ctx, receiverID, senderID)
	if err != nil {
		g.logger.Error().Err(err).
			Uint("receiver_id", receiverID).
			Uint("sender_id", senderID).
			Msg("failed to look up authorized sender")
		return false, err
	}

	if grant == nil || grant.SubscriberServiceChannelID != channelRowID {
		return false, nil
	}

	row, err := g.repo.GetChannelRow(ctx, grant.SubscriberServiceChannelID)
	if err != nil {
		g.logger.Error().Err(err).
			Uint("channel_row_id", grant.SubscriberServiceChannelID).
			Msg("failed to look up channel row")
		return false, err
	}

	return row != nil && row.IsActive, nil
}

// SendDirectMessage authorizes the sender against the receiver's first
// active channel and appends exactly one audit row with the outcome. On
// denial the log is written first, then ErrUnauthorizedSender surfaces.
func (g *Gate) SendDirectMessage(ctx context.Context, senderID, receiverID uint) error {
	authorized := false

	first, err := g.channels.FirstActiveChannel(ctx, receiverID)
	if err != nil {
		return err
	}

	if first != nil {
		authorized, err = g.IsAuthorized(ctx, senderID, receiverID, first.ID)
		if err != nil {
			return err
		}
	}

	logRow := &entities.DirectMessageLog{
		ReceiverID: receiverID,
		SenderID:   senderID,
		SentAt:     time.Now(),
		Status:     authorized,
	}
	if err := g.repo.AppendLog(ctx, logRow); err != nil {
		g.logger.Error().Err(err).
			Uint("receiver_id", receiverID).
			Uint("sender_id", senderID).
			Msg("failed to append direct message log")
		return err
	}

	if !authorized {
		g.metrics.DirectMessagesDenied.Inc()
		g.logger.Warn().
			Uint("receiver_id", receiverID).
			Uint("sender_id", senderID).
			Msg("direct message denied")
		return dmerrors.ErrUnauthorizedSender
	}

	g.metrics.DirectMessagesAllowed.Inc()
	g.logger.Info().
		Uint("receiver_id", receiverID).
		Uint("sender_id", senderID).
		Uint("channel_row_id", first.ID).
		Msg("direct message authorized")

	return nil
}

// GrantSender whitelists a sender for a receiver over one channel row
func (g *Gate) GrantSender(ctx context.Context, receiverID, senderID, channelRowID uint) (*entities.AuthorizedSender, error) {
	if receiverID == senderID {
		return nil, dmerrors.ErrSelfGrant
	}

	grant := &entities.AuthorizedSender{
		ReceiverID:                 receiverID,
		SenderID:                   senderID,
		SubscriberServiceChannelID: channelRowID,
	}

	if err := g.repo.CreateAuthorizedSender(ctx, grant); err != nil {
		g.logger.Error().Err(err).
			Uint("receiver_id", receiverID).
			Uint("sender_id", senderID).
			Msg("failed to grant sender")
		return nil, err
	}

	g.logger.Info().
		Uint("receiver_id", receiverID).
		Uint("sender_id", senderID).
		Uint("channel_row_id", channelRowID).
		Msg("sender granted")

	return grant, nil
}
