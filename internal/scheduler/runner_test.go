package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cypherlabdev/event-betting-service/internal/mocks"
)

func TestAdd_InvalidSpec(t *testing.T) {
	r := New(context.Background(), zerolog.Nop())

	_, err := r.Add("broken", "not a cron spec", func(context.Context) error { return nil })

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to schedule broken")
}

func TestAdd_DefaultSweepSpec(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := New(context.Background(), zerolog.Nop())

	_, err := r.AddSubscriptionSweep("0 5 0 * * *", mocks.NewMockGamblers(ctrl), time.Now)

	require.NoError(t, err)
	require.Len(t, r.cron.Entries(), 1)
}

func TestSubscriptionSweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	gamblers := mocks.NewMockGamblers(ctrl)
	now := time.Date(2026, 5, 1, 0, 5, 0, 0, time.UTC)

	gamblers.EXPECT().ExpireOverdueSubscriptions(gomock.Any(), now).Return(3, nil)
	gamblers.EXPECT().ExpireOverdueSubscriptions(gomock.Any(), now).Return(0, errors.New("database unavailable"))

	job := subscriptionSweep(gamblers, func() time.Time { return now })

	assert.NoError(t, job(context.Background()))
	assert.Error(t, job(context.Background()))
}

// TestRunner_RunsJobs tests that scheduled jobs fire and receive the base context
func TestRunner_RunsJobs(t *testing.T) {
	type ctxKey struct{}
	baseCtx := context.WithValue(context.Background(), ctxKey{}, "base")
	r := New(baseCtx, zerolog.Nop())

	var runs atomic.Int32
	_, err := r.Add("tick", "* * * * * *", func(ctx context.Context) error {
		if ctx.Value(ctxKey{}) == "base" {
			runs.Add(1)
		}
		return errors.New("job errors are logged, not fatal")
	})
	require.NoError(t, err)

	r.Start()
	defer r.Stop()

	assert.Eventually(t, func() bool { return runs.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)
}
