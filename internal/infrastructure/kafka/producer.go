package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/hexanotify/notifier-service/internal/infrastructure/metrics"
	"github.com/rs/zerolog"
)

type KafkaProducer struct {
	producer sarama.SyncProducer
	metrics  *metrics.Metrics
	logger   zerolog.Logger
}

func NewKafkaProducer(brokers []string, m *metrics.Metrics, logger zerolog.Logger) (*KafkaProducer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 5
	config.Producer.Retry.Backoff = 500 * time.Millisecond
	config.Producer.Timeout = 10 * time.Second
	config.Producer.RequiredAcks = sarama.WaitForAll

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		logger.Error().Err(err).Msg("failed to create Kafka SyncProducer")
		return nil, err
	}

	logger.Info().Msg("Kafka SyncProducer successfully initialized")

	return &KafkaProducer{
		producer: producer,
		metrics:  m,
		logger:   logger,
	}, nil
}

func (p *KafkaProducer) Close() error {
	if p.producer == nil {
		p.logger.Info().Msg("Kafka producer already closed or not initialized")
		return nil
	}

	err := p.producer.Close()
	if err != nil {
		p.logger.Error().Err(err).Msg("failed to close Kafka producer")
		return err
	}

	p.logger.Info().Msg("Kafka producer successfully closed")
	return nil
}

// SendToTopic sends any event to a specific topic
func (p *KafkaProducer) SendToTopic(ctx context.Context, topic string, key string, event any) error {
	bytes, err := json.Marshal(event)
	if err != nil {
		p.metrics.KafkaProduceErrors.WithLabelValues(topic).Inc()
		p.logger.Error().Err(err).
			Str("topic", topic).
			Msg("failed to marshal event")
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(bytes),
	}

	start := time.Now()
	partition, offset, err := p.producer.SendMessage(msg)
	latency := time.Since(start)
	p.metrics.KafkaProduceDuration.Observe(latency.Seconds())

	if err != nil {
		p.metrics.KafkaProduceErrors.WithLabelValues(topic).Inc()
		p.logger.Error().Err(err).
			Str("topic", topic).
			Str("key", key).
			Dur("latency", latency).
			Msg("failed to send event to kafka")
		return err
	}

	p.metrics.KafkaMessagesProduced.Inc()

	p.logger.Info().
		Str("topic", topic).
		Str("key", key).
		Int32("partition", partition).
		Int64("offset", offset).
		Dur("latency", latency).
		Msg("event sent to kafka")

	return nil
}
