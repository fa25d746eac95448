package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cypherlabdev/event-betting-service/internal/mocks"
	"github.com/cypherlabdev/event-betting-service/internal/models"
	"github.com/cypherlabdev/event-betting-service/internal/service"
)

// fakeReader replays a fixed set of messages and cancels the consumer once drained
type fakeReader struct {
	mu        sync.Mutex
	messages  []kafka.Message
	committed []int64
	cancel    context.CancelFunc
	closed    bool
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.messages) == 0 {
		r.cancel()
		return kafka.Message{}, ctx.Err()
	}
	msg := r.messages[0]
	r.messages = r.messages[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func (r *fakeReader) Close() error {
	r.closed = true
	return nil
}

// testKafkaConsumerSetup is a helper struct to hold test dependencies
type testKafkaConsumerSetup struct {
	consumer    *KafkaConsumer
	reader      *fakeReader
	mockBetting *mocks.MockBetting
	ctx         context.Context
	now         time.Time
}

// setupTestKafkaConsumer creates a test consumer over a fake reader and a mocked betting core
func setupTestKafkaConsumer(t *testing.T, messages ...kafka.Message) *testKafkaConsumerSetup {
	ctrl := gomock.NewController(t)
	mockBetting := mocks.NewMockBetting(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	reader := &fakeReader{messages: messages, cancel: cancel}
	consumer := newKafkaConsumer(reader, KafkaConsumerConfig{Topic: "bet_requests", GroupID: "test-group"}, mockBetting, zerolog.Nop())

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	consumer.now = func() time.Time { return now }
	consumer.retryBackoff = time.Millisecond
	consumer.maxBackoff = 4 * time.Millisecond

	return &testKafkaConsumerSetup{
		consumer:    consumer,
		reader:      reader,
		mockBetting: mockBetting,
		ctx:         ctx,
		now:         now,
	}
}

func commandMessage(t *testing.T, offset int64, cmd models.PlaceBetCommand) kafka.Message {
	t.Helper()
	data, err := json.Marshal(cmd)
	require.NoError(t, err)
	return kafka.Message{Offset: offset, Key: []byte(cmd.EventID.String()), Value: data}
}

func TestNewKafkaConsumer(t *testing.T) {
	ctrl := gomock.NewController(t)
	config := KafkaConsumerConfig{
		Brokers: []string{"localhost:9092"},
		Topic:   "bet_requests",
		GroupID: "test-group",
	}

	consumer := NewKafkaConsumer(config, mocks.NewMockBetting(ctrl), zerolog.Nop())
	defer consumer.Close()

	assert.NotNil(t, consumer.reader)
	assert.Equal(t, "bet_requests", consumer.topic)
	assert.Equal(t, "test-group", consumer.groupID)
}

// TestStart_CommitsHandledMessages tests that rejected and malformed requests are
// committed and a transient failure is retried before moving on
func TestStart_CommitsHandledMessages(t *testing.T) {
	eventID, optionID := uuid.New(), uuid.New()
	cmd := func(user string) models.PlaceBetCommand {
		return models.PlaceBetCommand{RequestID: "req-" + user, EventID: eventID, OptionID: optionID, UserID: user}
	}

	setup := setupTestKafkaConsumer(t,
		commandMessage(t, 1, cmd("u1")),
		commandMessage(t, 2, cmd("u2")),
		commandMessage(t, 3, cmd("u3")),
		kafka.Message{Offset: 4, Value: []byte("invalid json data")},
	)

	setup.mockBetting.EXPECT().
		PlaceBet(gomock.Any(), eventID, "u1", optionID, setup.now).
		Return(&models.Bet{ID: uuid.New(), EventID: eventID, OptionID: optionID, UserID: "u1", Odds: decimal.NewFromInt(2)}, nil)
	setup.mockBetting.EXPECT().
		PlaceBet(gomock.Any(), eventID, "u2", optionID, setup.now).
		Return(nil, service.ErrDuplicateBet)
	gomock.InOrder(
		setup.mockBetting.EXPECT().
			PlaceBet(gomock.Any(), eventID, "u3", optionID, setup.now).
			Return(nil, fmt.Errorf("store: %w", service.ErrTransientFailure)),
		setup.mockBetting.EXPECT().
			PlaceBet(gomock.Any(), eventID, "u3", optionID, setup.now).
			Return(&models.Bet{ID: uuid.New(), EventID: eventID, OptionID: optionID, UserID: "u3", Odds: decimal.NewFromInt(2)}, nil),
	)

	err := setup.consumer.Start(setup.ctx)

	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4}, setup.reader.committed)
}

// TestStart_RetriesTransientFailureInPlace tests that a failed request is retried
// before the next one is fetched, so commits never skip it
func TestStart_RetriesTransientFailureInPlace(t *testing.T) {
	eventID, optionID := uuid.New(), uuid.New()
	cmd := func(user string) models.PlaceBetCommand {
		return models.PlaceBetCommand{RequestID: "req-" + user, EventID: eventID, OptionID: optionID, UserID: user}
	}

	setup := setupTestKafkaConsumer(t,
		commandMessage(t, 10, cmd("u1")),
		commandMessage(t, 11, cmd("u2")),
	)

	gomock.InOrder(
		setup.mockBetting.EXPECT().
			PlaceBet(gomock.Any(), eventID, "u1", optionID, setup.now).
			Return(nil, service.ErrTransientFailure).
			Times(2),
		setup.mockBetting.EXPECT().
			PlaceBet(gomock.Any(), eventID, "u1", optionID, setup.now).
			Return(&models.Bet{ID: uuid.New(), EventID: eventID, OptionID: optionID, UserID: "u1", Odds: decimal.NewFromInt(2)}, nil),
		setup.mockBetting.EXPECT().
			PlaceBet(gomock.Any(), eventID, "u2", optionID, setup.now).
			Return(&models.Bet{ID: uuid.New(), EventID: eventID, OptionID: optionID, UserID: "u2", Odds: decimal.NewFromInt(2)}, nil),
	)

	err := setup.consumer.Start(setup.ctx)

	require.NoError(t, err)
	assert.Equal(t, []int64{10, 11}, setup.reader.committed)
}

// TestStart_StopsWhileRetrying tests that shutting down mid-retry leaves the
// failed request uncommitted and nothing behind it fetched
func TestStart_StopsWhileRetrying(t *testing.T) {
	eventID, optionID := uuid.New(), uuid.New()
	cmd := func(user string) models.PlaceBetCommand {
		return models.PlaceBetCommand{EventID: eventID, OptionID: optionID, UserID: user}
	}

	setup := setupTestKafkaConsumer(t,
		commandMessage(t, 10, cmd("u1")),
		commandMessage(t, 11, cmd("u2")),
	)

	calls := 0
	setup.mockBetting.EXPECT().
		PlaceBet(gomock.Any(), eventID, "u1", optionID, setup.now).
		DoAndReturn(func(context.Context, uuid.UUID, string, uuid.UUID, time.Time) (*models.Bet, error) {
			calls++
			if calls == 3 {
				setup.reader.cancel()
			}
			return nil, service.ErrTransientFailure
		}).
		Times(3)

	err := setup.consumer.Start(setup.ctx)

	require.NoError(t, err)
	assert.Empty(t, setup.reader.committed)
	assert.Len(t, setup.reader.messages, 1, "request behind the failed one is not fetched")
}

func TestProcessMessage_MissingIDs(t *testing.T) {
	setup := setupTestKafkaConsumer(t)

	msg := commandMessage(t, 1, models.PlaceBetCommand{RequestID: "req", UserID: "u1"})

	assert.NoError(t, setup.consumer.processMessage(setup.ctx, msg))
}

func TestProcessMessage_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{name: "event closed", err: service.ErrEventClosed},
		{name: "invalid option", err: service.ErrInvalidOption},
		{name: "not found", err: service.ErrNotFound},
		{name: "invariant violation", err: service.ErrInvariantViolation},
		{name: "transient", err: service.ErrTransientFailure, wantErr: true},
		{name: "unclassified", err: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupTestKafkaConsumer(t)
			cmd := models.PlaceBetCommand{EventID: uuid.New(), OptionID: uuid.New(), UserID: "u1"}

			setup.mockBetting.EXPECT().
				PlaceBet(gomock.Any(), cmd.EventID, cmd.UserID, cmd.OptionID, setup.now).
				Return(nil, tt.err)

			err := setup.consumer.processMessage(setup.ctx, commandMessage(t, 1, cmd))

			if tt.wantErr {
				assert.ErrorIs(t, err, tt.err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStart_ContextCanceled(t *testing.T) {
	setup := setupTestKafkaConsumer(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, setup.consumer.Start(ctx))
	assert.Empty(t, setup.reader.committed)
}

func TestKafkaConsumer_Close(t *testing.T) {
	setup := setupTestKafkaConsumer(t)

	require.NoError(t, setup.consumer.Close())
	assert.True(t, setup.reader.closed)
}
