package kafka

import (
	"context"

	"github.com/hexanotify/notifier-service/config"
	cascadedeps "github.com/hexanotify/notifier-service/internal/domain/cascade/deps"
	"github.com/hexanotify/notifier-service/internal/infrastructure/metrics"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

var Module = fx.Module(
	"kafka",
	fx.Provide(
		NewProducer,
		NewAdapter,
		NewEntityEventProducer,
	),
)

func NewProducer(lc fx.Lifecycle, cfg *config.KafkaConfig, m *metrics.Metrics, log zerolog.Logger) (*KafkaProducer, error) {
	producer, err := NewKafkaProducer(cfg.Brokers, m, log)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("closing kafka producer...")
			return producer.Close()
		},
	})

	return producer, nil
}

func NewAdapter(producer *KafkaProducer) *ProducerAdapter {
	return NewProducerAdapter(producer)
}

func NewEntityEventProducer(adapter *ProducerAdapter) cascadedeps.EntityEventProducer {
	return adapter
}
