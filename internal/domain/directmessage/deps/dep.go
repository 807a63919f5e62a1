package deps

import (
	"context"

	"github.com/hexanotify/notifier-service/internal/domain/entities"
)

// DirectMessageRepository is the storage surface for the sender whitelist
// and the append-only message audit log.
type DirectMessageRepository interface {
	// GetAuthorizedSender returns the whitelist row for (receiver, sender),
	// or nil when none exists. Absence is not an error.
	GetAuthorizedSender(ctx context.Context, receiverID, senderID uint) (*entities.AuthorizedSender, error)

	// CreateAuthorizedSender creates a whitelist row.
	// Returns errors.ErrSenderAlreadyGranted when the pair exists.
	CreateAuthorizedSender(ctx context.Context, grant *entities.AuthorizedSender) error

	// GetChannelRow returns a subscriber service channel row by id, or nil
	// when it does not exist
	GetChannelRow(ctx context.Context, id uint) (*entities.SubscriberServiceChannel, error)

	// AppendLog appends one audit row. Mandatory on every send attempt.
	AppendLog(ctx context.Context, log *entities.DirectMessageLog) error
}

// ChannelResolver resolves a subscriber's first active channel
type ChannelResolver interface {
	FirstActiveChannel(ctx context.Context, subscriberID uint) (*entities.SubscriberServiceChannel, error)
}

// Gate is the consumer-side contract of the authorization gate
type Gate interface {
	IsAuthorized(ctx context.Context, senderID, receiverID, channelRowID uint) (bool, error)
	SendDirectMessage(ctx context.Context, senderID, receiverID uint) error
	GrantSender(ctx context.Context, receiverID, senderID, channelRowID uint) (*entities.AuthorizedSender, error)
}
