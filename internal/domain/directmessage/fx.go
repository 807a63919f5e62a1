package directmessage

import (
	channeldeps "github.com/hexanotify/notifier-service/internal/domain/channel/deps"
	"github.com/hexanotify/notifier-service/internal/domain/directmessage/deps"
	"github.com/hexanotify/notifier-service/internal/domain/directmessage/repository/postgres"
	"github.com/hexanotify/notifier-service/internal/domain/directmessage/usecase"
	"github.com/hexanotify/notifier-service/internal/infrastructure/metrics"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module(
	"directmessage",
	fx.Provide(
		NewRepository,
		NewGate,
		NewGateContract,
	),
)

func NewRepository(db *gorm.DB) deps.DirectMessageRepository {
	return postgres.NewRepository(db)
}

func NewGate(
	repo deps.DirectMessageRepository,
	tracker channeldeps.Tracker,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *usecase.Gate {
	return usecase.NewGate(repo, tracker, m, logger)
}

func NewGateContract(gate *usecase.Gate) deps.Gate {
	return gate
}
