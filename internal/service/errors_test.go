package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cypherlabdev/event-betting-service/internal/store"
)

func TestError_Is(t *testing.T) {
	err := newError(KindEventClosed, "PlaceBet", errors.New("event is closed"))
	wrapped := fmt.Errorf("handler: %w", err)

	assert.ErrorIs(t, wrapped, ErrEventClosed)
	assert.NotErrorIs(t, wrapped, ErrDuplicateBet)
	assert.Equal(t, KindEventClosed, KindOf(wrapped))
	assert.Equal(t, "PlaceBet: event_closed: event is closed", err.Error())
}

func TestKindOf_Unclassified(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestKind_Retryable(t *testing.T) {
	assert.True(t, KindTransientFailure.Retryable())
	for _, k := range []Kind{KindNotFound, KindInvalidOption, KindEventClosed, KindDuplicateBet, KindInvariantViolation} {
		assert.False(t, k.Retryable(), k.String())
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "not found", err: store.ErrNotFound, want: KindNotFound},
		{name: "duplicate bet", err: fmt.Errorf("insert: %w", store.ErrDuplicateBet), want: KindDuplicateBet},
		{name: "duplicate gambler", err: store.ErrDuplicateGambler, want: KindInvalidInput},
		{name: "conflict", err: store.ErrConflict, want: KindTransientFailure},
		{name: "context", err: context.DeadlineExceeded, want: KindTransientFailure},
		{name: "already classified", err: newError(KindInvalidOption, "PlaceBet", nil), want: KindInvalidOption},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify("Op", tt.err)
			assert.Equal(t, tt.want, KindOf(err))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
