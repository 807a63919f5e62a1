package kafka

import (
	"context"
	"fmt"
	"strconv"

	cascadeconsts "github.com/hexanotify/notifier-service/internal/domain/cascade/consts"
	cascadedto "github.com/hexanotify/notifier-service/internal/domain/cascade/dto"
	notifconsts "github.com/hexanotify/notifier-service/internal/domain/notification/consts"
	notifdto "github.com/hexanotify/notifier-service/internal/domain/notification/dto"
)

// ProducerAdapter maps domain events onto Kafka topics
type ProducerAdapter struct {
	producer *KafkaProducer
}

func NewProducerAdapter(producer *KafkaProducer) *ProducerAdapter {
	return &ProducerAdapter{producer: producer}
}

// SendEntityCreated publishes an entity-created event on its topic
func (a *ProducerAdapter) SendEntityCreated(ctx context.Context, eventType string, entityID uint) error {
	topic, err := topicForEventType(eventType)
	if err != nil {
		return err
	}

	event := cascadedto.NewEntityEvent(eventType, strconv.FormatUint(uint64(entityID), 10))
	return a.producer.SendToTopic(ctx, topic, event.EntityID, event)
}

// SendDeliveryIntent publishes one fan-out delivery intent
func (a *ProducerAdapter) SendDeliveryIntent(ctx context.Context, intent *notifdto.DeliveryIntent) error {
	key := strconv.FormatUint(uint64(intent.SubscriberID), 10)
	return a.producer.SendToTopic(ctx, notifconsts.TopicNotificationDelivery, key, intent)
}

func (a *ProducerAdapter) Close() error {
	return a.producer.Close()
}

func topicForEventType(eventType string) (string, error) {
	switch eventType {
	case cascadedto.EventTypeUserCreated:
		return cascadeconsts.TopicUserCreated, nil
	case cascadedto.EventTypeSubscriberCreated:
		return cascadeconsts.TopicSubscriberCreated, nil
	case cascadedto.EventTypeServiceChannelCreated:
		return cascadeconsts.TopicServiceChannelCreated, nil
	default:
		return "", fmt.Errorf("unknown entity event type: %s", eventType)
	}
}
