package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)

	c.BetPlaced()
	c.BetPlaced()
	c.BetRejected("duplicate_bet")
	c.BetRejected("event_closed")
	c.BetRejected("duplicate_bet")
	c.ObserveLockWait(3 * time.Millisecond)
	c.GamblersExpired(4)
	c.GamblersExpired(0)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.betsPlaced))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.rejections.WithLabelValues("duplicate_bet")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.rejections.WithLabelValues("event_closed")))
	assert.Equal(t, 4.0, testutil.ToFloat64(c.gamblersExpired))
	assert.Equal(t, 1, testutil.CollectAndCount(c.lockWait))
}

func TestNewCollector_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()

	_, err := NewCollector(reg)
	require.NoError(t, err)

	_, err = NewCollector(reg)
	assert.Error(t, err)
}
