package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/event-betting-service/internal/models"
	"github.com/cypherlabdev/event-betting-service/pkg/odds"
)

// CreateEventRequest is the body of POST /api/v1/events
type CreateEventRequest struct {
	Title       string                `json:"title"`
	Subtitle    string                `json:"subtitle"`
	Description string                `json:"description"`
	ImageRef    string                `json:"image_ref"`
	Deadline    time.Time             `json:"deadline"`
	CreatorID   string                `json:"creator_id"`
	IsPublic    bool                  `json:"is_public"`
	Options     []CreateOptionRequest `json:"options"`
}

// CreateOptionRequest is one option of a new event. Odds may be sent as a JSON string or number.
type CreateOptionRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	InitialOdds decimal.Decimal `json:"initial_odds"`
}

func (r CreateEventRequest) toNewEvent() models.NewEvent {
	options := make([]models.NewOption, len(r.Options))
	for i, o := range r.Options {
		options[i] = models.NewOption{
			Title:       o.Title,
			Description: o.Description,
			InitialOdds: o.InitialOdds,
		}
	}
	return models.NewEvent{
		Title:       r.Title,
		Subtitle:    r.Subtitle,
		Description: r.Description,
		ImageRef:    r.ImageRef,
		Deadline:    r.Deadline,
		CreatorID:   r.CreatorID,
		IsPublic:    r.IsPublic,
		Options:     options,
	}
}

// PlaceBetRequest is the body of POST /api/v1/events/:event_id/bets
type PlaceBetRequest struct {
	UserID   string    `json:"user_id"`
	OptionID uuid.UUID `json:"option_id"`
}

// AssignWinnerRequest is the body of POST /api/v1/events/:event_id/winner
type AssignWinnerRequest struct {
	OptionID uuid.UUID `json:"option_id"`
}

// RegisterGamblerRequest is the body of POST /api/v1/gamblers
type RegisterGamblerRequest struct {
	UserID      string `json:"user_id"`
	DateOfBirth string `json:"date_of_birth,omitempty"` // YYYY-MM-DD
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error   string   `json:"error"`
	Code    string   `json:"code"`
	Details []string `json:"details,omitempty"`
}

// EventResponse represents the API response for an event
type EventResponse struct {
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	Subtitle       string           `json:"subtitle,omitempty"`
	Description    string           `json:"description"`
	ImageRef       string           `json:"image_ref,omitempty"`
	Deadline       string           `json:"deadline"`
	CreatorID      string           `json:"creator_id"`
	IsPublic       bool             `json:"is_public"`
	State          string           `json:"state"`
	WinnerOptionID string           `json:"winner_option_id,omitempty"`
	Options        []OptionResponse `json:"options,omitempty"`
}

// OptionResponse represents one option of an event
type OptionResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	InitialOdds string `json:"initial_odds"`
	CurrentOdds string `json:"current_odds"`
	IsActive    bool   `json:"is_active"`
	IsWinner    bool   `json:"is_winner"`
}

// ToEventResponse converts an event and its options to API response format
func ToEventResponse(event *models.Event, options []models.EventOption, now time.Time) *EventResponse {
	resp := &EventResponse{
		ID:          event.ID.String(),
		Title:       event.Title,
		Subtitle:    event.Subtitle,
		Description: event.Description,
		ImageRef:    event.ImageRef,
		Deadline:    event.Deadline.UTC().Format(time.RFC3339),
		CreatorID:   event.CreatorID,
		IsPublic:    event.IsPublic,
		State:       string(event.State(now)),
	}
	if event.WinnerOptionID != nil {
		resp.WinnerOptionID = event.WinnerOptionID.String()
	}
	for _, o := range options {
		resp.Options = append(resp.Options, OptionResponse{
			ID:          o.ID.String(),
			Title:       o.Title,
			Description: o.Description,
			InitialOdds: o.InitialOdds.StringFixed(odds.Places),
			CurrentOdds: o.CurrentOdds.StringFixed(odds.Places),
			IsActive:    o.IsActive,
			IsWinner:    o.IsWinner,
		})
	}
	return resp
}

// EventOddsResponse represents the API response for an event's odds vector
type EventOddsResponse struct {
	EventID   string               `json:"event_id"`
	State     string               `json:"state"`
	Deadline  string               `json:"deadline"`
	TotalBets int                  `json:"total_bets"`
	Options   []OptionOddsResponse `json:"options"`
	UpdatedAt string               `json:"updated_at"`
}

// OptionOddsResponse represents one option's odds and bet count
type OptionOddsResponse struct {
	OptionID    string `json:"option_id"`
	Title       string `json:"title"`
	InitialOdds string `json:"initial_odds"`
	CurrentOdds string `json:"current_odds"`
	Bets        int    `json:"bets"`
	IsWinner    bool   `json:"is_winner"`
}

// ToEventOddsResponse converts an odds snapshot to API response format
func ToEventOddsResponse(snapshot *models.EventOdds) *EventOddsResponse {
	resp := &EventOddsResponse{
		EventID:   snapshot.EventID.String(),
		State:     string(snapshot.State),
		Deadline:  snapshot.Deadline.UTC().Format(time.RFC3339),
		TotalBets: snapshot.TotalBets,
		Options:   make([]OptionOddsResponse, len(snapshot.Options)),
		UpdatedAt: snapshot.UpdatedAt.UTC().Format(time.RFC3339),
	}
	for i, o := range snapshot.Options {
		resp.Options[i] = OptionOddsResponse{
			OptionID:    o.OptionID.String(),
			Title:       o.Title,
			InitialOdds: o.InitialOdds.StringFixed(odds.Places),
			CurrentOdds: o.CurrentOdds.StringFixed(odds.Places),
			Bets:        o.Bets,
			IsWinner:    o.IsWinner,
		}
	}
	return resp
}

// BetResponse represents the API response for a bet
type BetResponse struct {
	ID        string `json:"id"`
	EventID   string `json:"event_id"`
	OptionID  string `json:"option_id"`
	UserID    string `json:"user_id"`
	Odds      string `json:"odds"`
	CreatedAt string `json:"created_at"`
}

// ToBetResponse converts a bet to API response format
func ToBetResponse(bet *models.Bet) *BetResponse {
	return &BetResponse{
		ID:        bet.ID.String(),
		EventID:   bet.EventID.String(),
		OptionID:  bet.OptionID.String(),
		UserID:    bet.UserID,
		Odds:      bet.Odds.StringFixed(odds.Places),
		CreatedAt: bet.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// GamblerResponse represents the API response for a gambler profile
type GamblerResponse struct {
	UserID           string `json:"user_id"`
	Points           int64  `json:"points"`
	DateOfBirth      string `json:"date_of_birth,omitempty"`
	Status           string `json:"status"`
	SubscriptionDate string `json:"subscription_date"`
}

// ToGamblerResponse converts a gambler to API response format
func ToGamblerResponse(g *models.Gambler) *GamblerResponse {
	resp := &GamblerResponse{
		UserID:           g.UserID,
		Points:           g.Points,
		Status:           string(g.Status),
		SubscriptionDate: g.SubscriptionDate.Format(time.DateOnly),
	}
	if g.DateOfBirth != nil {
		resp.DateOfBirth = g.DateOfBirth.Format(time.DateOnly)
	}
	return resp
}
