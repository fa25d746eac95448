package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/cypherlabdev/event-betting-service/internal/models"
	"github.com/cypherlabdev/event-betting-service/internal/store"
)

// DefaultSubscriptionMonths is how far ahead a new gambler's subscription runs
const DefaultSubscriptionMonths = 3

// GamblerConfig holds gambler profile settings
type GamblerConfig struct {
	SubscriptionMonths int
}

// GamblerService manages gambler profiles. It shares no state with the
// betting coordinator.
type GamblerService struct {
	store     store.Store
	publisher Publisher
	metrics   Metrics
	config    GamblerConfig
	logger    zerolog.Logger
}

// NewGamblerService creates a new gambler service. publisher and metrics may be nil.
func NewGamblerService(
	st store.Store,
	publisher Publisher,
	metrics Metrics,
	config GamblerConfig,
	logger zerolog.Logger,
) *GamblerService {
	if publisher == nil {
		publisher = nopPublisher{}
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if config.SubscriptionMonths <= 0 {
		config.SubscriptionMonths = DefaultSubscriptionMonths
	}
	return &GamblerService{
		store:     st,
		publisher: publisher,
		metrics:   metrics,
		config:    config,
		logger:    logger.With().Str("component", "gambler_service").Logger(),
	}
}

// RegisterGambler creates the gambler profile for userID
func (s *GamblerService) RegisterGambler(ctx context.Context, userID string, dateOfBirth *time.Time, now time.Time) (*models.Gambler, error) {
	const op = "RegisterGambler"

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, newError(KindInvalidInput, op, errors.New("user id is required"))
	}
	if dateOfBirth != nil {
		dob := models.Date(*dateOfBirth)
		if dob.After(now) {
			return nil, newError(KindInvalidInput, op, errors.New("date of birth is in the future"))
		}
		dateOfBirth = &dob
	}

	gambler := &models.Gambler{
		UserID:           userID,
		Points:           0,
		DateOfBirth:      dateOfBirth,
		Status:           models.GamblerStatusActive,
		SubscriptionDate: models.AddMonths(now, s.config.SubscriptionMonths),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.store.CreateGambler(ctx, gambler); err != nil {
		return nil, classify(op, err)
	}

	s.logger.Info().
		Str("user_id", userID).
		Time("subscription_date", gambler.SubscriptionDate).
		Msg("gambler registered")

	return gambler, nil
}

// GetGambler returns the gambler profile of userID
func (s *GamblerService) GetGambler(ctx context.Context, userID string) (*models.Gambler, error) {
	gambler, err := s.store.GetGambler(ctx, strings.TrimSpace(userID))
	if err != nil {
		return nil, classify("GetGambler", err)
	}
	return gambler, nil
}

// ExpireOverdueSubscriptions moves every active gambler whose subscription
// ended before today to expired. Running it again the same day changes nothing.
func (s *GamblerService) ExpireOverdueSubscriptions(ctx context.Context, today time.Time) (int, error) {
	const op = "ExpireOverdueSubscriptions"

	count, err := s.store.ExpireGamblers(ctx, models.Date(today), today)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to expire subscriptions")
		return 0, classify(op, err)
	}

	s.metrics.GamblersExpired(count)
	if count > 0 {
		if err := s.publisher.PublishSubscriptionsExpired(ctx, models.Date(today), count); err != nil {
			s.logger.Warn().Err(err).Msg("failed to publish expired subscriptions")
		}
	}

	s.logger.Info().
		Str("date", models.Date(today).Format(time.DateOnly)).
		Int("count", count).
		Msg("updated gamblers to expired status")

	return count, nil
}
