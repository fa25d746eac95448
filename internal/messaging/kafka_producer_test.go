package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cypherlabdev/event-betting-service/internal/models"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func setupTestProducer() (*KafkaProducer, *fakeWriter) {
	writer := &fakeWriter{}
	producer := newKafkaProducer(writer, zerolog.Nop())
	producer.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return producer, writer
}

func decodeNotification(t *testing.T, msg kafka.Message) models.Notification {
	t.Helper()
	var n models.Notification
	require.NoError(t, json.Unmarshal(msg.Value, &n))
	return n
}

func TestPublishBetPlaced(t *testing.T) {
	producer, writer := setupTestProducer()
	bet := &models.Bet{
		ID:       uuid.New(),
		EventID:  uuid.New(),
		OptionID: uuid.New(),
		UserID:   "u1",
		Odds:     decimal.RequireFromString("2.00"),
	}
	snapshot := &models.EventOdds{EventID: bet.EventID, State: models.EventStateOpen, TotalBets: 1}

	require.NoError(t, producer.PublishBetPlaced(context.Background(), bet, snapshot))

	require.Len(t, writer.messages, 1)
	msg := writer.messages[0]
	assert.Equal(t, bet.EventID.String(), string(msg.Key))
	assert.Equal(t, "bet_placed", string(msg.Headers[0].Value))

	n := decodeNotification(t, msg)
	assert.Equal(t, models.NotificationBetPlaced, n.Kind)
	require.NotNil(t, n.EventID)
	assert.Equal(t, bet.EventID, *n.EventID)
	assert.Equal(t, "u1", n.UserID)
	require.NotNil(t, n.Bet)
	assert.True(t, n.Bet.Odds.Equal(bet.Odds))
	assert.Equal(t, 1, n.Odds.TotalBets)
	assert.Equal(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), n.Timestamp)
}

func TestPublishEventSettled(t *testing.T) {
	producer, writer := setupTestProducer()
	winner := uuid.New()
	event := &models.Event{ID: uuid.New(), WinnerOptionID: &winner}

	require.NoError(t, producer.PublishEventSettled(context.Background(), event))

	require.Len(t, writer.messages, 1)
	n := decodeNotification(t, writer.messages[0])
	assert.Equal(t, models.NotificationEventSettled, n.Kind)
	require.NotNil(t, n.WinnerID)
	assert.Equal(t, winner, *n.WinnerID)
}

func TestPublishSubscriptionsExpired(t *testing.T) {
	producer, writer := setupTestProducer()

	require.NoError(t, producer.PublishSubscriptionsExpired(context.Background(), time.Date(2026, 5, 1, 0, 5, 0, 0, time.UTC), 4))

	require.Len(t, writer.messages, 1)
	assert.Equal(t, "gamblers", string(writer.messages[0].Key))
	n := decodeNotification(t, writer.messages[0])
	assert.Equal(t, "2026-05-01", n.Date)
	assert.Equal(t, 4, n.Count)
	assert.Nil(t, n.EventID)
}

func TestPublish_WriteFailure(t *testing.T) {
	producer, writer := setupTestProducer()
	writer.err = errors.New("broker unavailable")

	err := producer.PublishSubscriptionsExpired(context.Background(), time.Now(), 1)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write notification")
}

func TestKafkaProducer_Close(t *testing.T) {
	producer, writer := setupTestProducer()

	require.NoError(t, producer.Close())
	assert.True(t, writer.closed)
}
