package models

import (
	"time"

	"github.com/google/uuid"
)

// PlaceBetCommand is the Kafka message asking for a bet to be placed
type PlaceBetCommand struct {
	RequestID   string    `json:"request_id"`
	EventID     uuid.UUID `json:"event_id"`
	OptionID    uuid.UUID `json:"option_id"`
	UserID      string    `json:"user_id"`
	RequestedAt time.Time `json:"requested_at"`
}

// NotificationKind tags outbound betting notifications
type NotificationKind string

const (
	NotificationBetPlaced            NotificationKind = "bet_placed"
	NotificationEventSettled         NotificationKind = "event_settled"
	NotificationSubscriptionsExpired NotificationKind = "subscriptions_expired"
)

// Notification is the Kafka message published after a committed change
type Notification struct {
	Kind      NotificationKind `json:"kind"`
	EventID   *uuid.UUID       `json:"event_id,omitempty"`
	UserID    string           `json:"user_id,omitempty"`
	Bet       *Bet             `json:"bet,omitempty"`
	Odds      *EventOdds       `json:"odds,omitempty"`
	WinnerID  *uuid.UUID       `json:"winner_option_id,omitempty"`
	Date      string           `json:"date,omitempty"`
	Count     int              `json:"count,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}
