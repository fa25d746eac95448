package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/cypherlabdev/event-betting-service/internal/models"
	"github.com/cypherlabdev/event-betting-service/internal/service"
)

// messageReader is the part of *kafka.Reader the consumer uses
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaConsumer consumes bet requests from Kafka and places them
type KafkaConsumer struct {
	reader       messageReader
	betting      service.Betting
	topic        string
	groupID      string
	now          func() time.Time
	retryBackoff time.Duration // First wait before retrying a failed message
	maxBackoff   time.Duration
	logger       zerolog.Logger
}

// KafkaConsumerConfig holds Kafka consumer configuration
type KafkaConsumerConfig struct {
	Brokers []string // e.g., ["localhost:9092"]
	Topic   string   // e.g., "bet_requests"
	GroupID string   // e.g., "event-betting"
}

// NewKafkaConsumer creates a new Kafka consumer
func NewKafkaConsumer(
	config KafkaConsumerConfig,
	betting service.Betting,
	logger zerolog.Logger,
) *KafkaConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        config.Brokers,
		Topic:          config.Topic,
		GroupID:        config.GroupID,
		MinBytes:       1,
		MaxBytes:       10e6, // 10MB
		CommitInterval: time.Second,
	})

	return newKafkaConsumer(reader, config, betting, logger)
}

func newKafkaConsumer(reader messageReader, config KafkaConsumerConfig, betting service.Betting, logger zerolog.Logger) *KafkaConsumer {
	return &KafkaConsumer{
		reader:       reader,
		betting:      betting,
		topic:        config.Topic,
		groupID:      config.GroupID,
		now:          time.Now,
		retryBackoff: 200 * time.Millisecond,
		maxBackoff:   10 * time.Second,
		logger:       logger.With().Str("component", "kafka_consumer").Logger(),
	}
}

// Start begins consuming messages from Kafka. It returns when ctx is done.
func (c *KafkaConsumer) Start(ctx context.Context) error {
	c.logger.Info().
		Str("topic", c.topic).
		Str("group_id", c.groupID).
		Msg("started consuming from Kafka")

	for {
		select {
		case <-ctx.Done():
			c.logger.Info().Msg("stopping Kafka consumer")
			return nil

		default:
			msg, err := c.reader.FetchMessage(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) || ctx.Err() != nil {
					return nil
				}
				c.logger.Error().Err(err).Msg("failed to fetch message")
				continue
			}

			// Don't fetch past a message that has not been processed
			if err := c.processWithRetry(ctx, msg); err != nil {
				return nil
			}

			if err := c.reader.CommitMessages(ctx, msg); err != nil {
				c.logger.Error().Err(err).Msg("failed to commit message")
			}
		}
	}
}

// processWithRetry retries msg in place until it is processed or ctx ends.
// It only returns an error when ctx ended first.
func (c *KafkaConsumer) processWithRetry(ctx context.Context, msg kafka.Message) error {
	delay := c.retryBackoff
	for attempt := 1; ; attempt++ {
		err := c.processMessage(ctx, msg)
		if err == nil {
			return nil
		}

		c.logger.Error().
			Err(err).
			Int64("offset", msg.Offset).
			Str("key", string(msg.Key)).
			Int("attempt", attempt).
			Dur("retry_in", delay).
			Msg("failed to process message")

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			c.logger.Warn().Int64("offset", msg.Offset).Msg("leaving message uncommitted for redelivery")
			return ctx.Err()
		case <-timer.C:
		}

		delay *= 2
		if delay > c.maxBackoff {
			delay = c.maxBackoff
		}
	}
}

// processMessage places the bet carried by msg. Only retryable failures are
// returned; malformed messages and rejected bets are logged and committed.
func (c *KafkaConsumer) processMessage(ctx context.Context, msg kafka.Message) error {
	var cmd models.PlaceBetCommand
	if err := json.Unmarshal(msg.Value, &cmd); err != nil {
		c.logger.Warn().Err(err).Int64("offset", msg.Offset).Msg("dropping malformed bet request")
		return nil
	}
	if cmd.EventID == uuid.Nil || cmd.OptionID == uuid.Nil {
		c.logger.Warn().Str("request_id", cmd.RequestID).Msg("dropping bet request without event or option")
		return nil
	}

	bet, err := c.betting.PlaceBet(ctx, cmd.EventID, cmd.UserID, cmd.OptionID, c.now())
	if err != nil {
		kind := service.KindOf(err)
		if kind.Retryable() {
			return fmt.Errorf("failed to place bet: %w", err)
		}
		c.logger.Info().
			Str("request_id", cmd.RequestID).
			Str("event_id", cmd.EventID.String()).
			Str("user_id", cmd.UserID).
			Str("reason", kind.String()).
			Msg("bet request rejected")
		return nil
	}

	c.logger.Debug().
		Str("request_id", cmd.RequestID).
		Str("bet_id", bet.ID.String()).
		Msg("processed bet request")

	return nil
}

// Close closes the Kafka reader
func (c *KafkaConsumer) Close() error {
	return c.reader.Close()
}
