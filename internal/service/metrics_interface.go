package service

import "time"

// Metrics records betting activity
type Metrics interface {
	BetPlaced()
	BetRejected(kind string)
	ObserveLockWait(d time.Duration)
	GamblersExpired(n int)
}
