package service

import (
	"context"
	"time"

	"github.com/cypherlabdev/event-betting-service/internal/models"
)

//go:generate mockgen -destination=../mocks/mock_publisher.go -package=mocks github.com/cypherlabdev/event-betting-service/internal/service Publisher

// Publisher announces committed changes to downstream consumers
type Publisher interface {
	PublishBetPlaced(ctx context.Context, bet *models.Bet, odds *models.EventOdds) error
	PublishEventSettled(ctx context.Context, event *models.Event) error
	PublishSubscriptionsExpired(ctx context.Context, today time.Time, count int) error
}
