// Package store holds the persistence gateways for events, options, bets and gamblers.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/event-betting-service/internal/models"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrDuplicateBet     = errors.New("bet already exists for event and user")
	ErrDuplicateGambler = errors.New("gambler already exists for user")
	ErrConflict         = errors.New("transaction conflict")
)

// Reader exposes the explicit lookups keyed by event and user
type Reader interface {
	GetEvent(ctx context.Context, eventID uuid.UUID) (*models.Event, error)
	// ListOptions returns the event's options in creation order
	ListOptions(ctx context.Context, eventID uuid.UUID) ([]models.EventOption, error)
	// CountBets returns the number of bets per option; options without bets are absent
	CountBets(ctx context.Context, eventID uuid.UUID) (map[uuid.UUID]int, error)
	FindBet(ctx context.Context, eventID uuid.UUID, userID string) (*models.Bet, error)
	ListBets(ctx context.Context, eventID uuid.UUID) ([]models.Bet, error)
}

// Tx is one atomic unit scoped to a single event. Reads observe the unit's own writes.
type Tx interface {
	Reader
	// LockEvent reads the event and holds it against concurrent units until commit or abort
	LockEvent(ctx context.Context, eventID uuid.UUID) (*models.Event, error)
	InsertBet(ctx context.Context, bet *models.Bet) error
	UpdateOptionOdds(ctx context.Context, optionID uuid.UUID, odds decimal.Decimal, at time.Time) error
	SetWinner(ctx context.Context, eventID, optionID uuid.UUID, at time.Time) error
}

// Store is the persistence gateway the betting core runs against
type Store interface {
	Reader

	// WithinEventTx runs fn as one all-or-nothing unit. If fn returns an error
	// or the commit fails, none of fn's writes become visible.
	WithinEventTx(ctx context.Context, eventID uuid.UUID, fn func(tx Tx) error) error

	CreateEvent(ctx context.Context, event *models.Event, options []models.EventOption) error
	CreateGambler(ctx context.Context, gambler *models.Gambler) error
	GetGambler(ctx context.Context, userID string) (*models.Gambler, error)
	// ExpireGamblers moves active gamblers whose subscription ended before today to expired
	ExpireGamblers(ctx context.Context, today time.Time, at time.Time) (int, error)

	Ping(ctx context.Context) error
	Close() error
}
