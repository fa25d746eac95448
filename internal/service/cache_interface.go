package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/cypherlabdev/event-betting-service/internal/models"
)

//go:generate mockgen -destination=../mocks/mock_cache.go -package=mocks github.com/cypherlabdev/event-betting-service/internal/service OddsCache

// OddsCache is an interface that abstracts the odds vector cache
// This allows for easier testing and mocking
type OddsCache interface {
	SetEventOdds(ctx context.Context, odds *models.EventOdds) error
	GetEventOdds(ctx context.Context, eventID uuid.UUID) (*models.EventOdds, error)
	Invalidate(ctx context.Context, eventID uuid.UUID) error
}
