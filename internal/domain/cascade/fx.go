package cascade

import (
	"context"

	"github.com/hexanotify/notifier-service/config"
	"github.com/hexanotify/notifier-service/internal/domain/cascade/consts"
	cascadekafka "github.com/hexanotify/notifier-service/internal/domain/cascade/delivery/kafka"
	"github.com/hexanotify/notifier-service/internal/domain/cascade/deps"
	"github.com/hexanotify/notifier-service/internal/domain/cascade/repository/postgres"
	"github.com/hexanotify/notifier-service/internal/domain/cascade/usecase"
	kafkaInfra "github.com/hexanotify/notifier-service/internal/infrastructure/kafka"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module(
	"cascade",
	fx.Provide(
		NewRepository,
		usecase.NewEngine,
		NewEngine,
		cascadekafka.NewEventHandler,
		NewEntityEventHandler,
	),
	fx.Invoke(registerKafkaConsumer),
)

func NewRepository(db *gorm.DB) deps.CascadeRepository {
	return postgres.NewRepository(db)
}

func NewEngine(engine *usecase.Engine) deps.Engine {
	return engine
}

func NewEntityEventHandler(handler *cascadekafka.EventHandler) deps.EntityEventHandler {
	return handler
}

func registerKafkaConsumer(
	lc fx.Lifecycle,
	cfg *config.KafkaConfig,
	handler deps.EntityEventHandler,
	log zerolog.Logger,
) error {
	consumer, err := kafkaInfra.NewKafkaConsumer(
		cfg.Brokers,
		cfg.GroupID,
		consts.ConsumerTopics,
		handler,
		log,
	)
	if err != nil {
		return err
	}

	consumerCtx, cancelConsumer := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			consumer.Start(consumerCtx)
			log.Info().Msg("kafka consumer started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("stopping kafka consumer...")
			cancelConsumer()
			return consumer.Close()
		},
	})

	return nil
}
