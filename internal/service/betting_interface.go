package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cypherlabdev/event-betting-service/internal/models"
)

//go:generate mockgen -destination=../mocks/mock_service.go -package=mocks github.com/cypherlabdev/event-betting-service/internal/service Betting,Gamblers

// Betting is the betting core as seen by transports
type Betting interface {
	CreateEvent(ctx context.Context, in models.NewEvent, now time.Time) (*models.Event, []models.EventOption, error)
	GetEvent(ctx context.Context, eventID uuid.UUID) (*models.Event, []models.EventOption, error)
	GetEventOdds(ctx context.Context, eventID uuid.UUID, now time.Time) (*models.EventOdds, error)
	PlaceBet(ctx context.Context, eventID uuid.UUID, userID string, optionID uuid.UUID, now time.Time) (*models.Bet, error)
	GetUserBet(ctx context.Context, eventID uuid.UUID, userID string) (*models.Bet, error)
	ListEventBets(ctx context.Context, eventID uuid.UUID) ([]models.Bet, error)
	AssignWinner(ctx context.Context, eventID, optionID uuid.UUID, now time.Time) (*models.Event, error)
}

// Gamblers manages gambler profiles and their subscriptions
type Gamblers interface {
	RegisterGambler(ctx context.Context, userID string, dateOfBirth *time.Time, now time.Time) (*models.Gambler, error)
	GetGambler(ctx context.Context, userID string) (*models.Gambler, error)
	ExpireOverdueSubscriptions(ctx context.Context, today time.Time) (int, error)
}
