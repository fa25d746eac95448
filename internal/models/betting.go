package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Event option bounds enforced when an event is created
const (
	MinEventOptions = 2
	MaxEventOptions = 7
)

// Event is a proposition users can bet on until its deadline
type Event struct {
	ID             uuid.UUID  `json:"id"`
	Title          string     `json:"title"`
	Subtitle       string     `json:"subtitle,omitempty"`
	Description    string     `json:"description"`
	ImageRef       string     `json:"image_ref,omitempty"`
	Deadline       time.Time  `json:"deadline"`
	CreatorID      string     `json:"creator_id"`
	IsPublic       bool       `json:"is_public"`
	WinnerOptionID *uuid.UUID `json:"winner_option_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// EventOption is one mutually exclusive outcome of an event
type EventOption struct {
	ID          uuid.UUID       `json:"id"`
	EventID     uuid.UUID       `json:"event_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	InitialOdds decimal.Decimal `json:"initial_odds"`
	CurrentOdds decimal.Decimal `json:"current_odds"` // Only the odds engine moves this
	IsActive    bool            `json:"is_active"`
	IsWinner    bool            `json:"is_winner"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Bet is a single user's wager on one option of one event.
// Odds holds the option's current odds at the moment the bet was accepted.
type Bet struct {
	ID        uuid.UUID       `json:"id"`
	EventID   uuid.UUID       `json:"event_id"`
	OptionID  uuid.UUID       `json:"option_id"`
	UserID    string          `json:"user_id"`
	Odds      decimal.Decimal `json:"odds"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewEvent carries the fields needed to create an event with its options
type NewEvent struct {
	Title       string      `json:"title"`
	Subtitle    string      `json:"subtitle,omitempty"`
	Description string      `json:"description"`
	ImageRef    string      `json:"image_ref,omitempty"`
	Deadline    time.Time   `json:"deadline"`
	CreatorID   string      `json:"creator_id"`
	IsPublic    bool        `json:"is_public"`
	Options     []NewOption `json:"options"`
}

// NewOption describes one option of a NewEvent
type NewOption struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	InitialOdds decimal.Decimal `json:"initial_odds"`
}

// OptionOdds is the read view of one option's pricing
type OptionOdds struct {
	OptionID    uuid.UUID       `json:"option_id"`
	Title       string          `json:"title"`
	InitialOdds decimal.Decimal `json:"initial_odds"`
	CurrentOdds decimal.Decimal `json:"current_odds"`
	Bets        int             `json:"bets"`
	IsWinner    bool            `json:"is_winner"`
}

// EventOdds is the current odds vector of an event
type EventOdds struct {
	EventID   uuid.UUID    `json:"event_id"`
	State     EventState   `json:"state"`
	Deadline  time.Time    `json:"deadline"`
	TotalBets int          `json:"total_bets"`
	Options   []OptionOdds `json:"options"`
	UpdatedAt time.Time    `json:"updated_at"`
}
