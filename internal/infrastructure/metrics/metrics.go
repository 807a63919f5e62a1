package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the notifier service
type Metrics struct {
	// Cascade metrics
	SubscribersCreated    prometheus.Counter
	ChannelRowsCreated    prometheus.Counter
	ChannelRowsSkipped    prometheus.Counter
	CascadeErrors         *prometheus.CounterVec

	// Direct message metrics
	DirectMessagesAllowed prometheus.Counter
	DirectMessagesDenied  prometheus.Counter

	// Notification metrics
	NotificationsPublished prometheus.Counter
	DeliveriesAttempted    prometheus.Counter
	DeliveriesSkipped      prometheus.Counter

	// Kafka metrics
	KafkaMessagesProduced prometheus.Counter
	KafkaProduceErrors    *prometheus.CounterVec
	KafkaProduceDuration  prometheus.Histogram
}

var (
	defaultMetrics *Metrics
	once           sync.Once
)

// Default returns the singleton metrics instance
func Default() *Metrics {
	once.Do(func() {
		defaultMetrics = newMetrics()
	})
	return defaultMetrics
}

func newMetrics() *Metrics {
	return &Metrics{
		SubscribersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "notifier_service_subscribers_created_total",
			Help: "Total number of subscriber rows created by the cascade engine",
		}),
		ChannelRowsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "notifier_service_channel_rows_created_total",
			Help: "Total number of subscriber service channel rows created",
		}),
		ChannelRowsSkipped: promauto.NewCounter(prometheus.CounterOpts{
			Name: "notifier_service_channel_rows_skipped_total",
			Help: "Total number of already-present channel rows skipped by the cascade",
		}),
		CascadeErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notifier_service_cascade_errors_total",
				Help: "Total number of cascade engine errors",
			},
			[]string{"trigger"},
		),
		DirectMessagesAllowed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "notifier_service_direct_messages_allowed_total",
			Help: "Total number of authorized direct messages",
		}),
		DirectMessagesDenied: promauto.NewCounter(prometheus.CounterOpts{
			Name: "notifier_service_direct_messages_denied_total",
			Help: "Total number of denied direct messages",
		}),
		NotificationsPublished: promauto.NewCounter(prometheus.CounterOpts{
			Name: "notifier_service_notifications_published_total",
			Help: "Total number of notifications published to lists",
		}),
		DeliveriesAttempted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "notifier_service_deliveries_attempted_total",
			Help: "Total number of delivery intents emitted during fan-out",
		}),
		DeliveriesSkipped: promauto.NewCounter(prometheus.CounterOpts{
			Name: "notifier_service_deliveries_skipped_total",
			Help: "Total number of recipients skipped during fan-out",
		}),
		KafkaMessagesProduced: promauto.NewCounter(prometheus.CounterOpts{
			Name: "notifier_service_kafka_messages_produced_total",
			Help: "Total number of messages produced to Kafka",
		}),
		KafkaProduceErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notifier_service_kafka_produce_errors_total",
				Help: "Total number of Kafka produce errors",
			},
			[]string{"topic"},
		),
		KafkaProduceDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "notifier_service_kafka_produce_duration_seconds",
			Help:    "Duration of Kafka produce operations in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// RecordCascadeError records a cascade failure with its triggering event kind
func (m *Metrics) RecordCascadeError(trigger string) {
	if trigger == "" {
		trigger = "unknown"
	}
	m.CascadeErrors.WithLabelValues(trigger).Inc()
}

// RecordFanout records one fan-out resolution outcome
func (m *Metrics) RecordFanout(attempted, skipped int) {
	m.NotificationsPublished.Inc()
	if attempted > 0 {
		m.DeliveriesAttempted.Add(float64(attempted))
	}
	if skipped > 0 {
		m.DeliveriesSkipped.Add(float64(skipped))
	}
}
