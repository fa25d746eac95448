// Package metrics exposes the betting core's Prometheus collectors.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "event_betting"

// Collector records betting activity
type Collector struct {
	betsPlaced      prometheus.Counter
	rejections      *prometheus.CounterVec
	lockWait        prometheus.Histogram
	gamblersExpired prometheus.Counter
}

// NewCollector creates the collectors and registers them with reg
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		betsPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bets_placed_total",
			Help:      "Bets committed together with their repriced odds.",
		}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bet_rejections_total",
			Help:      "Failed betting operations by error kind.",
		}, []string{"kind"}),
		lockWait: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "bet_lock_wait_seconds",
			Help:      "Time spent waiting for an event's serialization slot.",
			Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		}),
		gamblersExpired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gamblers_expired_total",
			Help:      "Gambler subscriptions moved to expired by the daily sweep.",
		}),
	}

	for _, collector := range []prometheus.Collector{c.betsPlaced, c.rejections, c.lockWait, c.gamblersExpired} {
		if err := reg.Register(collector); err != nil {
			return nil, fmt.Errorf("failed to register collector: %w", err)
		}
	}
	return c, nil
}

func (c *Collector) BetPlaced() {
	c.betsPlaced.Inc()
}

func (c *Collector) BetRejected(kind string) {
	c.rejections.WithLabelValues(kind).Inc()
}

func (c *Collector) ObserveLockWait(d time.Duration) {
	c.lockWait.Observe(d.Seconds())
}

func (c *Collector) GamblersExpired(n int) {
	c.gamblersExpired.Add(float64(n))
}
