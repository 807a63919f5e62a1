package notification

import (
	"github.com/hexanotify/notifier-service/internal/domain/notification/deps"
	"github.com/hexanotify/notifier-service/internal/domain/notification/repository/postgres"
	"github.com/hexanotify/notifier-service/internal/domain/notification/usecase"
	kafkaInfra "github.com/hexanotify/notifier-service/internal/infrastructure/kafka"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module(
	"notification",
	fx.Provide(
		NewRepository,
		NewDeliveryProducer,
		usecase.NewFanout,
		NewFanout,
	),
)

func NewRepository(db *gorm.DB) deps.NotificationRepository {
	return postgres.NewRepository(db)
}

func NewDeliveryProducer(adapter *kafkaInfra.ProducerAdapter) deps.DeliveryProducer {
	return adapter
}

func NewFanout(fanout *usecase.Fanout) deps.Fanout {
	return fanout
}
