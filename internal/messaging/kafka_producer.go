package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/cypherlabdev/event-betting-service/internal/models"
)

// messageWriter is the part of *kafka.Writer the producer uses
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaProducer publishes betting notifications to Kafka
type KafkaProducer struct {
	writer messageWriter
	now    func() time.Time
	logger zerolog.Logger
}

// KafkaProducerConfig holds Kafka producer configuration
type KafkaProducerConfig struct {
	Brokers []string // e.g., ["localhost:9092"]
	Topic   string   // e.g., "betting_notifications"
}

// NewKafkaProducer creates a new Kafka producer
func NewKafkaProducer(config KafkaProducerConfig, logger zerolog.Logger) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(config.Brokers...),
		Topic:        config.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
	}
	return newKafkaProducer(writer, logger)
}

func newKafkaProducer(writer messageWriter, logger zerolog.Logger) *KafkaProducer {
	return &KafkaProducer{
		writer: writer,
		now:    time.Now,
		logger: logger.With().Str("component", "kafka_producer").Logger(),
	}
}

// PublishBetPlaced announces a committed bet with the odds it produced
func (p *KafkaProducer) PublishBetPlaced(ctx context.Context, bet *models.Bet, odds *models.EventOdds) error {
	eventID := bet.EventID
	return p.publish(ctx, eventID.String(), models.Notification{
		Kind:    models.NotificationBetPlaced,
		EventID: &eventID,
		UserID:  bet.UserID,
		Bet:     bet,
		Odds:    odds,
	})
}

// PublishEventSettled announces the winner of an event
func (p *KafkaProducer) PublishEventSettled(ctx context.Context, event *models.Event) error {
	eventID := event.ID
	return p.publish(ctx, eventID.String(), models.Notification{
		Kind:     models.NotificationEventSettled,
		EventID:  &eventID,
		WinnerID: event.WinnerOptionID,
	})
}

// PublishSubscriptionsExpired announces the result of a subscription sweep
func (p *KafkaProducer) PublishSubscriptionsExpired(ctx context.Context, today time.Time, count int) error {
	return p.publish(ctx, "gamblers", models.Notification{
		Kind:  models.NotificationSubscriptionsExpired,
		Date:  models.Date(today).Format(time.DateOnly),
		Count: count,
	})
}

func (p *KafkaProducer) publish(ctx context.Context, key string, n models.Notification) error {
	n.Timestamp = p.now().UTC()

	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: data,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(n.Kind)},
		},
	}); err != nil {
		return fmt.Errorf("failed to write notification: %w", err)
	}

	p.logger.Debug().
		Str("kind", string(n.Kind)).
		Str("key", key).
		Msg("published notification")

	return nil
}

// Close flushes and closes the Kafka writer
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}
