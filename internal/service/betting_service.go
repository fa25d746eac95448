package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/event-betting-service/internal/lock"
	"github.com/cypherlabdev/event-betting-service/internal/models"
	"github.com/cypherlabdev/event-betting-service/internal/store"
	"github.com/cypherlabdev/event-betting-service/pkg/odds"
)

// BettingConfig holds coordinator tuning
type BettingConfig struct {
	LockTimeout        time.Duration // Longest a caller waits for an event's slot
	MaxConflictRetries int           // Extra attempts after a storage serialization conflict
}

// BettingService places bets one event at a time and keeps odds in step with them.
// Calls for different events run in parallel.
type BettingService struct {
	store     store.Store
	locks     *lock.Keyed[uuid.UUID]
	cache     OddsCache
	publisher Publisher
	metrics   Metrics
	config    BettingConfig
	logger    zerolog.Logger
}

// NewBettingService creates a new betting service. cache, publisher and metrics may be nil.
func NewBettingService(
	st store.Store,
	cache OddsCache,
	publisher Publisher,
	metrics Metrics,
	config BettingConfig,
	logger zerolog.Logger,
) *BettingService {
	if cache == nil {
		cache = nopCache{}
	}
	if publisher == nil {
		publisher = nopPublisher{}
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &BettingService{
		store:     st,
		locks:     lock.NewKeyed[uuid.UUID](),
		cache:     cache,
		publisher: publisher,
		metrics:   metrics,
		config:    config,
		logger:    logger.With().Str("component", "betting_service").Logger(),
	}
}

// PlaceBet records userID's bet on optionID and reprices every option of the event.
// The deadline, duplicate check, insert and repricing run as one unit while
// the event's slot is held, so a bet is either fully visible with its odds or absent.
func (s *BettingService) PlaceBet(ctx context.Context, eventID uuid.UUID, userID string, optionID uuid.UUID, now time.Time) (*models.Bet, error) {
	const op = "PlaceBet"

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, s.reject(op, eventID, newError(KindInvalidInput, op, errors.New("user id is required")))
	}
	if err := ctx.Err(); err != nil {
		return nil, s.reject(op, eventID, newError(KindTransientFailure, op, err))
	}

	release, err := s.acquire(ctx, eventID)
	if err != nil {
		return nil, s.reject(op, eventID, newError(KindTransientFailure, op, err))
	}
	defer release()

	var bet *models.Bet
	var snapshot *models.EventOdds
	for attempt := 0; ; attempt++ {
		bet, snapshot, err = s.placeBetTx(ctx, eventID, userID, optionID, now)
		if err == nil || !errors.Is(err, store.ErrConflict) || attempt >= s.config.MaxConflictRetries {
			break
		}
		s.logger.Warn().
			Err(err).
			Str("event_id", eventID.String()).
			Int("attempt", attempt+1).
			Msg("retrying bet after transaction conflict")
	}
	if err != nil {
		return nil, s.reject(op, eventID, classify(op, err))
	}

	s.metrics.BetPlaced()

	if err := s.cache.SetEventOdds(ctx, snapshot); err != nil {
		s.logger.Warn().Err(err).Str("event_id", eventID.String()).Msg("failed to cache event odds")
		// Don't fail the bet on cache errors; drop the stale entry instead
		_ = s.cache.Invalidate(ctx, eventID)
	}
	if err := s.publisher.PublishBetPlaced(ctx, bet, snapshot); err != nil {
		s.logger.Warn().Err(err).Str("bet_id", bet.ID.String()).Msg("failed to publish bet placed")
	}

	s.logger.Info().
		Str("event_id", eventID.String()).
		Str("option_id", optionID.String()).
		Str("user_id", userID).
		Str("odds", bet.Odds.StringFixed(odds.Places)).
		Int("total_bets", snapshot.TotalBets).
		Msg("bet placed")

	return bet, nil
}

func (s *BettingService) placeBetTx(ctx context.Context, eventID uuid.UUID, userID string, optionID uuid.UUID, now time.Time) (*models.Bet, *models.EventOdds, error) {
	const op = "PlaceBet"

	var bet *models.Bet
	var snapshot *models.EventOdds

	err := s.store.WithinEventTx(ctx, eventID, func(tx store.Tx) error {
		event, err := tx.LockEvent(ctx, eventID)
		if err != nil {
			return err
		}
		if !event.AcceptsBets(now) {
			return newError(KindEventClosed, op, fmt.Errorf("event is %s", event.State(now)))
		}

		options, err := tx.ListOptions(ctx, eventID)
		if err != nil {
			return err
		}
		option := findOption(options, optionID)
		if option == nil {
			return newError(KindInvalidOption, op, fmt.Errorf("option %s does not belong to event", optionID))
		}
		if !option.IsActive {
			return newError(KindInvalidOption, op, fmt.Errorf("option %s is not active", optionID))
		}

		if _, err := tx.FindBet(ctx, eventID, userID); err == nil {
			return newError(KindDuplicateBet, op, nil)
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		bet = &models.Bet{
			ID:        uuid.New(),
			EventID:   eventID,
			OptionID:  option.ID,
			UserID:    userID,
			Odds:      option.CurrentOdds,
			CreatedAt: now,
		}
		if err := tx.InsertBet(ctx, bet); err != nil {
			return err
		}

		counts, err := tx.CountBets(ctx, eventID)
		if err != nil {
			return err
		}
		updated, err := reprice(options, counts)
		if err != nil {
			return newError(KindInvariantViolation, op, err)
		}
		for i := range options {
			if err := tx.UpdateOptionOdds(ctx, options[i].ID, updated[i], now); err != nil {
				return err
			}
			options[i].CurrentOdds = updated[i]
		}

		snapshot = buildEventOdds(event, options, counts, now)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return bet, snapshot, nil
}

// GetEventOdds returns the event's current odds vector, cache first
func (s *BettingService) GetEventOdds(ctx context.Context, eventID uuid.UUID, now time.Time) (*models.EventOdds, error) {
	cached, err := s.cache.GetEventOdds(ctx, eventID)
	if err == nil && cached != nil {
		s.logger.Debug().Str("event_id", eventID.String()).Msg("cache hit for event odds")
		cached.State = stateOf(cached, now)
		return cached, nil
	}

	// Fill the cache only while holding the event's slot so a commit's
	// snapshot is never overwritten by an older read.
	release, err := s.lockEvent(ctx, eventID)
	if err != nil {
		s.logger.Warn().Err(err).Str("event_id", eventID.String()).Msg("serving event odds without cache fill")
		return s.loadEventOdds(ctx, eventID, now)
	}
	defer release()

	if cached, err := s.cache.GetEventOdds(ctx, eventID); err == nil && cached != nil {
		cached.State = stateOf(cached, now)
		return cached, nil
	}

	snapshot, err := s.loadEventOdds(ctx, eventID, now)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetEventOdds(ctx, snapshot); err != nil {
		s.logger.Warn().Err(err).Str("event_id", eventID.String()).Msg("failed to cache event odds")
	}
	return snapshot, nil
}

func (s *BettingService) loadEventOdds(ctx context.Context, eventID uuid.UUID, now time.Time) (*models.EventOdds, error) {
	const op = "GetEventOdds"

	event, err := s.store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, classify(op, err)
	}
	options, err := s.store.ListOptions(ctx, eventID)
	if err != nil {
		return nil, classify(op, err)
	}
	counts, err := s.store.CountBets(ctx, eventID)
	if err != nil {
		return nil, classify(op, err)
	}
	return buildEventOdds(event, options, counts, now), nil
}

// GetUserBet returns the bet userID holds on the event
func (s *BettingService) GetUserBet(ctx context.Context, eventID uuid.UUID, userID string) (*models.Bet, error) {
	bet, err := s.store.FindBet(ctx, eventID, strings.TrimSpace(userID))
	if err != nil {
		return nil, classify("GetUserBet", err)
	}
	return bet, nil
}

// ListEventBets returns every bet placed on the event, oldest first
func (s *BettingService) ListEventBets(ctx context.Context, eventID uuid.UUID) ([]models.Bet, error) {
	const op = "ListEventBets"

	if _, err := s.store.GetEvent(ctx, eventID); err != nil {
		return nil, classify(op, err)
	}
	bets, err := s.store.ListBets(ctx, eventID)
	if err != nil {
		return nil, classify(op, err)
	}
	return bets, nil
}

// GetEvent returns the event with its options
func (s *BettingService) GetEvent(ctx context.Context, eventID uuid.UUID) (*models.Event, []models.EventOption, error) {
	const op = "GetEvent"

	event, err := s.store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, nil, classify(op, err)
	}
	options, err := s.store.ListOptions(ctx, eventID)
	if err != nil {
		return nil, nil, classify(op, err)
	}
	return event, options, nil
}

// CreateEvent validates and stores a new event together with its options.
// Every option starts with its current odds equal to its initial odds.
func (s *BettingService) CreateEvent(ctx context.Context, in models.NewEvent, now time.Time) (*models.Event, []models.EventOption, error) {
	const op = "CreateEvent"

	if err := validateNewEvent(in, now); err != nil {
		return nil, nil, newError(KindInvalidInput, op, err)
	}

	event := &models.Event{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(in.Title),
		Subtitle:    strings.TrimSpace(in.Subtitle),
		Description: in.Description,
		ImageRef:    in.ImageRef,
		Deadline:    in.Deadline,
		CreatorID:   in.CreatorID,
		IsPublic:    in.IsPublic,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	options := make([]models.EventOption, len(in.Options))
	for i, o := range in.Options {
		price := odds.Normalize(o.InitialOdds)
		options[i] = models.EventOption{
			ID:          uuid.New(),
			EventID:     event.ID,
			Title:       strings.TrimSpace(o.Title),
			Description: o.Description,
			InitialOdds: price,
			CurrentOdds: price,
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}

	if err := s.store.CreateEvent(ctx, event, options); err != nil {
		s.logger.Error().Err(err).Msg("failed to create event")
		return nil, nil, classify(op, err)
	}

	s.logger.Info().
		Str("event_id", event.ID.String()).
		Str("creator_id", event.CreatorID).
		Int("options", len(options)).
		Time("deadline", event.Deadline).
		Msg("event created")

	return event, options, nil
}

// AssignWinner settles a closed event on one of its own options.
// Settlement is final: a settled event cannot be given another winner.
func (s *BettingService) AssignWinner(ctx context.Context, eventID, optionID uuid.UUID, now time.Time) (*models.Event, error) {
	const op = "AssignWinner"

	if err := ctx.Err(); err != nil {
		return nil, s.reject(op, eventID, newError(KindTransientFailure, op, err))
	}

	release, err := s.acquire(ctx, eventID)
	if err != nil {
		return nil, s.reject(op, eventID, newError(KindTransientFailure, op, err))
	}
	defer release()

	var settled *models.Event
	err = s.store.WithinEventTx(ctx, eventID, func(tx store.Tx) error {
		event, err := tx.LockEvent(ctx, eventID)
		if err != nil {
			return err
		}
		switch event.State(now) {
		case models.EventStateOpen:
			return newError(KindInvalidInput, op, errors.New("event is still open for bets"))
		case models.EventStateSettled:
			return newError(KindAlreadySettled, op, nil)
		}

		options, err := tx.ListOptions(ctx, eventID)
		if err != nil {
			return err
		}
		if findOption(options, optionID) == nil {
			return newError(KindInvalidOption, op, fmt.Errorf("option %s does not belong to event", optionID))
		}
		if err := tx.SetWinner(ctx, eventID, optionID, now); err != nil {
			return err
		}

		event.WinnerOptionID = &optionID
		event.UpdatedAt = now
		settled = event
		return nil
	})
	if err != nil {
		return nil, s.reject(op, eventID, classify(op, err))
	}

	if err := s.cache.Invalidate(ctx, eventID); err != nil {
		s.logger.Warn().Err(err).Str("event_id", eventID.String()).Msg("failed to invalidate event odds")
	}
	if err := s.publisher.PublishEventSettled(ctx, settled); err != nil {
		s.logger.Warn().Err(err).Str("event_id", eventID.String()).Msg("failed to publish event settled")
	}

	s.logger.Info().
		Str("event_id", eventID.String()).
		Str("winner_option_id", optionID.String()).
		Msg("event settled")

	return settled, nil
}

// acquire waits for the event's slot and records the wait
func (s *BettingService) acquire(ctx context.Context, eventID uuid.UUID) (func(), error) {
	start := time.Now()
	release, err := s.lockEvent(ctx, eventID)
	s.metrics.ObserveLockWait(time.Since(start))
	return release, err
}

// lockEvent waits for the event's slot, bounded by the configured lock timeout
func (s *BettingService) lockEvent(ctx context.Context, eventID uuid.UUID) (func(), error) {
	if s.config.LockTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.LockTimeout)
		defer cancel()
	}

	release, err := s.locks.Acquire(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire event slot: %w", err)
	}
	return release, nil
}

// reject logs a failed operation and counts it when it was a bet
func (s *BettingService) reject(op string, eventID uuid.UUID, err error) error {
	kind := KindOf(err)
	if op == "PlaceBet" {
		s.metrics.BetRejected(kind.String())
	}

	switch kind {
	case KindTransientFailure, KindInvariantViolation, KindUnknown:
		s.logger.Error().Err(err).Str("op", op).Str("event_id", eventID.String()).Msg("operation failed")
	default:
		s.logger.Debug().Err(err).Str("op", op).Str("event_id", eventID.String()).Msg("operation rejected")
	}
	return err
}

// reprice runs the odds engine over the event's full bet distribution
func reprice(options []models.EventOption, counts map[uuid.UUID]int) ([]decimal.Decimal, error) {
	perOption := make([]int, len(options))
	initial := make([]decimal.Decimal, len(options))
	total := 0
	for i, option := range options {
		perOption[i] = counts[option.ID]
		initial[i] = option.InitialOdds
		total += perOption[i]
	}

	all := 0
	for _, n := range counts {
		all += n
	}
	if all != total {
		return nil, fmt.Errorf("%d bets reference options outside the event", all-total)
	}

	return odds.Recompute(total, perOption, initial)
}

func buildEventOdds(event *models.Event, options []models.EventOption, counts map[uuid.UUID]int, now time.Time) *models.EventOdds {
	snapshot := &models.EventOdds{
		EventID:   event.ID,
		State:     event.State(now),
		Deadline:  event.Deadline,
		Options:   make([]models.OptionOdds, len(options)),
		UpdatedAt: now,
	}
	for i, option := range options {
		snapshot.Options[i] = models.OptionOdds{
			OptionID:    option.ID,
			Title:       option.Title,
			InitialOdds: option.InitialOdds,
			CurrentOdds: option.CurrentOdds,
			Bets:        counts[option.ID],
			IsWinner:    option.IsWinner,
		}
		snapshot.TotalBets += counts[option.ID]
	}
	return snapshot
}

// stateOf re-evaluates a cached snapshot's state against now
func stateOf(snapshot *models.EventOdds, now time.Time) models.EventState {
	if snapshot.State == models.EventStateSettled {
		return models.EventStateSettled
	}
	if now.Before(snapshot.Deadline) {
		return models.EventStateOpen
	}
	return models.EventStateClosed
}

func findOption(options []models.EventOption, optionID uuid.UUID) *models.EventOption {
	for i := range options {
		if options[i].ID == optionID {
			return &options[i]
		}
	}
	return nil
}

func validateNewEvent(in models.NewEvent, now time.Time) error {
	var problems []error

	title := strings.TrimSpace(in.Title)
	switch {
	case title == "":
		problems = append(problems, errors.New("title is required"))
	case len(title) > 200:
		problems = append(problems, errors.New("title is longer than 200 characters"))
	}
	if len(strings.TrimSpace(in.Subtitle)) > 200 {
		problems = append(problems, errors.New("subtitle is longer than 200 characters"))
	}
	if strings.TrimSpace(in.Description) == "" {
		problems = append(problems, errors.New("description is required"))
	}
	if strings.TrimSpace(in.CreatorID) == "" {
		problems = append(problems, errors.New("creator is required"))
	}
	if !in.Deadline.After(now) {
		problems = append(problems, errors.New("deadline must be in the future"))
	}

	if n := len(in.Options); n < models.MinEventOptions || n > models.MaxEventOptions {
		problems = append(problems, fmt.Errorf("event needs between %d and %d options, got %d",
			models.MinEventOptions, models.MaxEventOptions, n))
	}
	for i, o := range in.Options {
		optionTitle := strings.TrimSpace(o.Title)
		if optionTitle == "" {
			problems = append(problems, fmt.Errorf("option %d: title is required", i+1))
		} else if len(optionTitle) > 255 {
			problems = append(problems, fmt.Errorf("option %d: title is longer than 255 characters", i+1))
		}
		if !odds.Normalize(o.InitialOdds).IsPositive() {
			problems = append(problems, fmt.Errorf("option %d: initial odds must be greater than 0", i+1))
		}
	}

	return errors.Join(problems...)
}
