package channel

import (
	"github.com/hexanotify/notifier-service/internal/domain/channel/deps"
	"github.com/hexanotify/notifier-service/internal/domain/channel/repository/postgres"
	"github.com/hexanotify/notifier-service/internal/domain/channel/usecase"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module(
	"channel",
	fx.Provide(
		NewRepository,
		usecase.NewTracker,
		NewTracker,
	),
)

func NewRepository(db *gorm.DB) deps.ChannelRepository {
	return postgres.NewRepository(db)
}

func NewTracker(tracker *usecase.Tracker) deps.Tracker {
	return tracker
}
