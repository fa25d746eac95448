package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/cypherlabdev/event-betting-service/internal/models"
)

var errNoCache = errors.New("odds cache disabled")

type nopCache struct{}

func (nopCache) SetEventOdds(context.Context, *models.EventOdds) error { return nil }

func (nopCache) GetEventOdds(context.Context, uuid.UUID) (*models.EventOdds, error) {
	return nil, errNoCache
}

func (nopCache) Invalidate(context.Context, uuid.UUID) error { return nil }

type nopPublisher struct{}

func (nopPublisher) PublishBetPlaced(context.Context, *models.Bet, *models.EventOdds) error {
	return nil
}

func (nopPublisher) PublishEventSettled(context.Context, *models.Event) error { return nil }

func (nopPublisher) PublishSubscriptionsExpired(context.Context, time.Time, int) error { return nil }

type nopMetrics struct{}

func (nopMetrics) BetPlaced()                    {}
func (nopMetrics) BetRejected(string)            {}
func (nopMetrics) ObserveLockWait(time.Duration) {}
func (nopMetrics) GamblersExpired(int)           {}
