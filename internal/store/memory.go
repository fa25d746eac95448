package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/event-betting-service/internal/lock"
	"github.com/cypherlabdev/event-betting-service/internal/models"
)

// Memory is an in-process Store. Units of work are buffered and applied
// under a single write lock on commit; a per-event lock stands in for row locks.
type Memory struct {
	mu       sync.RWMutex
	events   map[uuid.UUID]models.Event
	options  map[uuid.UUID][]models.EventOption
	bets     map[uuid.UUID][]models.Bet
	gamblers map[string]models.Gambler
	rows     *lock.Keyed[uuid.UUID]
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{
		events:   make(map[uuid.UUID]models.Event),
		options:  make(map[uuid.UUID][]models.EventOption),
		bets:     make(map[uuid.UUID][]models.Bet),
		gamblers: make(map[string]models.Gambler),
		rows:     lock.NewKeyed[uuid.UUID](),
	}
}

func (m *Memory) GetEvent(ctx context.Context, eventID uuid.UUID) (*models.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	event, ok := m.events[eventID]
	if !ok {
		return nil, ErrNotFound
	}
	return copyEvent(event), nil
}

func (m *Memory) ListOptions(ctx context.Context, eventID uuid.UUID) ([]models.EventOption, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]models.EventOption(nil), m.options[eventID]...), nil
}

func (m *Memory) CountBets(ctx context.Context, eventID uuid.UUID) (map[uuid.UUID]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	counts := make(map[uuid.UUID]int)
	for _, bet := range m.bets[eventID] {
		counts[bet.OptionID]++
	}
	return counts, nil
}

func (m *Memory) FindBet(ctx context.Context, eventID uuid.UUID, userID string) (*models.Bet, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, bet := range m.bets[eventID] {
		if bet.UserID == userID {
			found := bet
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) ListBets(ctx context.Context, eventID uuid.UUID) ([]models.Bet, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]models.Bet(nil), m.bets[eventID]...), nil
}

// WithinEventTx implements Store
func (m *Memory) WithinEventTx(ctx context.Context, eventID uuid.UUID, fn func(tx Tx) error) error {
	release, err := m.rows.Acquire(ctx, eventID)
	if err != nil {
		return err
	}
	defer release()

	tx := &memoryTx{
		m:       m,
		eventID: eventID,
		odds:    make(map[uuid.UUID]oddsWrite),
	}
	if err := fn(tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return m.commit(tx)
}

func (m *Memory) CreateEvent(ctx context.Context, event *models.Event, options []models.EventOption) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.events[event.ID]; exists {
		return ErrConflict
	}
	m.events[event.ID] = *copyEvent(*event)
	m.options[event.ID] = append([]models.EventOption(nil), options...)
	return nil
}

func (m *Memory) CreateGambler(ctx context.Context, gambler *models.Gambler) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.gamblers[gambler.UserID]; exists {
		return ErrDuplicateGambler
	}
	m.gamblers[gambler.UserID] = *gambler
	return nil
}

func (m *Memory) GetGambler(ctx context.Context, userID string) (*models.Gambler, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	gambler, ok := m.gamblers[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return &gambler, nil
}

func (m *Memory) ExpireGamblers(ctx context.Context, today time.Time, at time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	today = models.Date(today)
	count := 0
	for userID, gambler := range m.gamblers {
		if gambler.Status != models.GamblerStatusActive || !gambler.SubscriptionDate.Before(today) {
			continue
		}
		gambler.Status = models.GamblerStatusExpired
		gambler.UpdatedAt = at
		m.gamblers[userID] = gambler
		count++
	}
	return count, nil
}

func (m *Memory) Ping(ctx context.Context) error { return nil }

func (m *Memory) Close() error { return nil }

// commit validates every buffered write before applying any of them
func (m *Memory) commit(tx *memoryTx) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	event, ok := m.events[tx.eventID]
	if !ok {
		return ErrNotFound
	}

	options := m.options[tx.eventID]
	index := make(map[uuid.UUID]int, len(options))
	for i, option := range options {
		index[option.ID] = i
	}
	for optionID := range tx.odds {
		if _, ok := index[optionID]; !ok {
			return ErrNotFound
		}
	}
	if tx.winner != nil {
		if _, ok := index[*tx.winner]; !ok {
			return ErrNotFound
		}
	}

	users := make(map[string]struct{}, len(m.bets[tx.eventID]))
	for _, bet := range m.bets[tx.eventID] {
		users[bet.UserID] = struct{}{}
	}
	for _, bet := range tx.bets {
		if _, dup := users[bet.UserID]; dup {
			return ErrDuplicateBet
		}
		users[bet.UserID] = struct{}{}
	}

	updated := append([]models.EventOption(nil), options...)
	for optionID, write := range tx.odds {
		i := index[optionID]
		updated[i].CurrentOdds = write.odds
		updated[i].UpdatedAt = write.at
	}
	if tx.winner != nil {
		i := index[*tx.winner]
		updated[i].IsWinner = true
		updated[i].UpdatedAt = tx.winnerAt
		winner := *tx.winner
		event.WinnerOptionID = &winner
		event.UpdatedAt = tx.winnerAt
		m.events[tx.eventID] = event
	}

	m.options[tx.eventID] = updated
	m.bets[tx.eventID] = append(m.bets[tx.eventID], tx.bets...)
	return nil
}

type oddsWrite struct {
	odds decimal.Decimal
	at   time.Time
}

type memoryTx struct {
	m        *Memory
	eventID  uuid.UUID
	bets     []models.Bet
	odds     map[uuid.UUID]oddsWrite
	winner   *uuid.UUID
	winnerAt time.Time
}

func (tx *memoryTx) GetEvent(ctx context.Context, eventID uuid.UUID) (*models.Event, error) {
	event, err := tx.m.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if eventID == tx.eventID && tx.winner != nil {
		winner := *tx.winner
		event.WinnerOptionID = &winner
	}
	return event, nil
}

func (tx *memoryTx) LockEvent(ctx context.Context, eventID uuid.UUID) (*models.Event, error) {
	// The event is already held by WithinEventTx
	return tx.GetEvent(ctx, eventID)
}

func (tx *memoryTx) ListOptions(ctx context.Context, eventID uuid.UUID) ([]models.EventOption, error) {
	options, err := tx.m.ListOptions(ctx, eventID)
	if err != nil || eventID != tx.eventID {
		return options, err
	}
	for i := range options {
		if write, ok := tx.odds[options[i].ID]; ok {
			options[i].CurrentOdds = write.odds
			options[i].UpdatedAt = write.at
		}
		if tx.winner != nil && *tx.winner == options[i].ID {
			options[i].IsWinner = true
		}
	}
	return options, nil
}

func (tx *memoryTx) CountBets(ctx context.Context, eventID uuid.UUID) (map[uuid.UUID]int, error) {
	counts, err := tx.m.CountBets(ctx, eventID)
	if err != nil || eventID != tx.eventID {
		return counts, err
	}
	for _, bet := range tx.bets {
		counts[bet.OptionID]++
	}
	return counts, nil
}

func (tx *memoryTx) FindBet(ctx context.Context, eventID uuid.UUID, userID string) (*models.Bet, error) {
	if eventID == tx.eventID {
		for _, bet := range tx.bets {
			if bet.UserID == userID {
				found := bet
				return &found, nil
			}
		}
	}
	return tx.m.FindBet(ctx, eventID, userID)
}

func (tx *memoryTx) ListBets(ctx context.Context, eventID uuid.UUID) ([]models.Bet, error) {
	bets, err := tx.m.ListBets(ctx, eventID)
	if err != nil || eventID != tx.eventID {
		return bets, err
	}
	bets = append(bets, tx.bets...)
	sort.SliceStable(bets, func(i, j int) bool { return bets[i].CreatedAt.Before(bets[j].CreatedAt) })
	return bets, nil
}

func (tx *memoryTx) InsertBet(ctx context.Context, bet *models.Bet) error {
	if bet.EventID != tx.eventID {
		return ErrConflict
	}
	if !tx.hasOption(bet.OptionID) {
		return ErrNotFound
	}
	if _, err := tx.FindBet(ctx, bet.EventID, bet.UserID); err == nil {
		return ErrDuplicateBet
	}
	tx.bets = append(tx.bets, *bet)
	return nil
}

func (tx *memoryTx) UpdateOptionOdds(ctx context.Context, optionID uuid.UUID, odds decimal.Decimal, at time.Time) error {
	if !tx.hasOption(optionID) {
		return ErrNotFound
	}
	tx.odds[optionID] = oddsWrite{odds: odds, at: at}
	return nil
}

func (tx *memoryTx) SetWinner(ctx context.Context, eventID, optionID uuid.UUID, at time.Time) error {
	if eventID != tx.eventID {
		return ErrConflict
	}
	if !tx.hasOption(optionID) {
		return ErrNotFound
	}
	tx.winner = &optionID
	tx.winnerAt = at
	return nil
}

func (tx *memoryTx) hasOption(optionID uuid.UUID) bool {
	tx.m.mu.RLock()
	defer tx.m.mu.RUnlock()

	for _, option := range tx.m.options[tx.eventID] {
		if option.ID == optionID {
			return true
		}
	}
	return false
}

func copyEvent(event models.Event) *models.Event {
	if event.WinnerOptionID != nil {
		winner := *event.WinnerOptionID
		event.WinnerOptionID = &winner
	}
	return &event
}
