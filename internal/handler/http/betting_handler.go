package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/event-betting-service/internal/i18n"
	"github.com/cypherlabdev/event-betting-service/internal/service"
)

const maxBodyBytes = 1 << 20

// BettingHandler handles HTTP requests for events, bets and gamblers
type BettingHandler struct {
	betting    service.Betting
	gamblers   service.Gamblers
	translator *i18n.Translator
	now        func() time.Time
	logger     zerolog.Logger
}

// NewBettingHandler creates a new betting HTTP handler
func NewBettingHandler(
	betting service.Betting,
	gamblers service.Gamblers,
	translator *i18n.Translator,
	logger zerolog.Logger,
) *BettingHandler {
	return &BettingHandler{
		betting:    betting,
		gamblers:   gamblers,
		translator: translator,
		now:        time.Now,
		logger:     logger.With().Str("component", "betting_handler").Logger(),
	}
}

// RegisterRoutes registers HTTP routes with the provided mux
func (h *BettingHandler) RegisterRoutes(mux *http.ServeMux) {
	// POST /api/v1/events - Create an event with its options
	mux.HandleFunc("/api/v1/events", h.handleCreateEvent)

	// /api/v1/events/:event_id[/odds|/bets[/:user_id]|/winner]
	mux.HandleFunc("/api/v1/events/", h.handleEvent)

	// POST /api/v1/gamblers - Register a gambler profile
	mux.HandleFunc("/api/v1/gamblers", h.handleRegisterGambler)

	// GET /api/v1/gamblers/:user_id - Get a gambler profile
	mux.HandleFunc("/api/v1/gamblers/", h.handleGetGambler)
}

// handleCreateEvent handles POST /api/v1/events
func (h *BettingHandler) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.methodNotAllowed(w)
		return
	}

	var req CreateEventRequest
	if !h.decode(w, r, &req) {
		return
	}

	event, options, err := h.betting.CreateEvent(r.Context(), req.toNewEvent(), h.now())
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.jsonResponse(w, http.StatusCreated, ToEventResponse(event, options, h.now()))
}

// handleEvent dispatches the routes under /api/v1/events/:event_id
func (h *BettingHandler) handleEvent(w http.ResponseWriter, r *http.Request) {
	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/v1/events/"), "/")
	parts := strings.Split(path, "/")

	eventID, err := uuid.Parse(parts[0])
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "invalid event_id")
		return
	}

	switch {
	case len(parts) == 1:
		h.getEvent(w, r, eventID)
	case len(parts) == 2 && parts[1] == "odds":
		h.getEventOdds(w, r, eventID)
	case len(parts) == 2 && parts[1] == "bets":
		switch r.Method {
		case http.MethodPost:
			h.placeBet(w, r, eventID)
		case http.MethodGet:
			h.listBets(w, r, eventID)
		default:
			h.methodNotAllowed(w)
		}
	case len(parts) == 3 && parts[1] == "bets" && parts[2] != "":
		h.getUserBet(w, r, eventID, parts[2])
	case len(parts) == 2 && parts[1] == "winner":
		h.assignWinner(w, r, eventID)
	default:
		h.errorResponse(w, http.StatusNotFound, "route not found")
	}
}

// getEvent handles GET /api/v1/events/:event_id
func (h *BettingHandler) getEvent(w http.ResponseWriter, r *http.Request, eventID uuid.UUID) {
	if r.Method != http.MethodGet {
		h.methodNotAllowed(w)
		return
	}

	event, options, err := h.betting.GetEvent(r.Context(), eventID)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.jsonResponse(w, http.StatusOK, ToEventResponse(event, options, h.now()))
}

// getEventOdds handles GET /api/v1/events/:event_id/odds
func (h *BettingHandler) getEventOdds(w http.ResponseWriter, r *http.Request, eventID uuid.UUID) {
	if r.Method != http.MethodGet {
		h.methodNotAllowed(w)
		return
	}

	odds, err := h.betting.GetEventOdds(r.Context(), eventID, h.now())
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.jsonResponse(w, http.StatusOK, ToEventOddsResponse(odds))
}

// placeBet handles POST /api/v1/events/:event_id/bets
func (h *BettingHandler) placeBet(w http.ResponseWriter, r *http.Request, eventID uuid.UUID) {
	var req PlaceBetRequest
	if !h.decode(w, r, &req) {
		return
	}

	bet, err := h.betting.PlaceBet(r.Context(), eventID, req.UserID, req.OptionID, h.now())
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.jsonResponse(w, http.StatusCreated, ToBetResponse(bet))
}

// listBets handles GET /api/v1/events/:event_id/bets
func (h *BettingHandler) listBets(w http.ResponseWriter, r *http.Request, eventID uuid.UUID) {
	bets, err := h.betting.ListEventBets(r.Context(), eventID)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	out := make([]*BetResponse, len(bets))
	for i := range bets {
		out[i] = ToBetResponse(&bets[i])
	}
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"event_id": eventID,
		"count":    len(out),
		"bets":     out,
	})
}

// getUserBet handles GET /api/v1/events/:event_id/bets/:user_id
func (h *BettingHandler) getUserBet(w http.ResponseWriter, r *http.Request, eventID uuid.UUID, userID string) {
	if r.Method != http.MethodGet {
		h.methodNotAllowed(w)
		return
	}

	bet, err := h.betting.GetUserBet(r.Context(), eventID, userID)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.jsonResponse(w, http.StatusOK, ToBetResponse(bet))
}

// assignWinner handles POST /api/v1/events/:event_id/winner
func (h *BettingHandler) assignWinner(w http.ResponseWriter, r *http.Request, eventID uuid.UUID) {
	if r.Method != http.MethodPost {
		h.methodNotAllowed(w)
		return
	}

	var req AssignWinnerRequest
	if !h.decode(w, r, &req) {
		return
	}

	event, err := h.betting.AssignWinner(r.Context(), eventID, req.OptionID, h.now())
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.jsonResponse(w, http.StatusOK, ToEventResponse(event, nil, h.now()))
}

// handleRegisterGambler handles POST /api/v1/gamblers
func (h *BettingHandler) handleRegisterGambler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.methodNotAllowed(w)
		return
	}

	var req RegisterGamblerRequest
	if !h.decode(w, r, &req) {
		return
	}

	var dob *time.Time
	if req.DateOfBirth != "" {
		parsed, err := time.Parse(time.DateOnly, req.DateOfBirth)
		if err != nil {
			h.errorResponse(w, http.StatusBadRequest, "date_of_birth must be YYYY-MM-DD")
			return
		}
		dob = &parsed
	}

	gambler, err := h.gamblers.RegisterGambler(r.Context(), req.UserID, dob, h.now())
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.jsonResponse(w, http.StatusCreated, ToGamblerResponse(gambler))
}

// handleGetGambler handles GET /api/v1/gamblers/:user_id
func (h *BettingHandler) handleGetGambler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.methodNotAllowed(w)
		return
	}

	userID := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/v1/gamblers/"), "/")
	if userID == "" || strings.Contains(userID, "/") {
		h.errorResponse(w, http.StatusBadRequest, "invalid path: expected /api/v1/gamblers/:user_id")
		return
	}

	gambler, err := h.gamblers.GetGambler(r.Context(), userID)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.jsonResponse(w, http.StatusOK, ToGamblerResponse(gambler))
}

// decode reads a JSON request body into dst, answering 400 on failure
func (h *BettingHandler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		h.logger.Debug().Err(err).Str("path", r.URL.Path).Msg("malformed request body")
		h.jsonResponse(w, http.StatusBadRequest, ErrorResponse{
			Error: h.translator.Message(r.Header.Get("Accept-Language"), i18n.KeyMalformedRequest),
			Code:  i18n.KeyMalformedRequest,
		})
		return false
	}
	return true
}

// serviceError maps a service failure to a status code and a localized message.
// Storage details stay in the log.
func (h *BettingHandler) serviceError(w http.ResponseWriter, r *http.Request, err error) {
	kind := service.KindOf(err)
	status := statusForKind(kind)

	resp := ErrorResponse{
		Error: h.translator.Message(r.Header.Get("Accept-Language"), kind.String()),
		Code:  kind.String(),
	}

	switch kind {
	case service.KindInvalidInput:
		var svcErr *service.Error
		if errors.As(err, &svcErr) && svcErr.Err != nil {
			resp.Details = strings.Split(svcErr.Err.Error(), "\n")
		}
	case service.KindTransientFailure:
		w.Header().Set("Retry-After", "1")
	}

	if status >= http.StatusInternalServerError {
		h.logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	} else {
		h.logger.Debug().Err(err).Str("path", r.URL.Path).Msg("request rejected")
	}

	h.jsonResponse(w, status, resp)
}

func statusForKind(kind service.Kind) int {
	switch kind {
	case service.KindNotFound:
		return http.StatusNotFound
	case service.KindInvalidOption:
		return http.StatusUnprocessableEntity
	case service.KindEventClosed, service.KindDuplicateBet, service.KindAlreadySettled:
		return http.StatusConflict
	case service.KindInvalidInput:
		return http.StatusBadRequest
	case service.KindTransientFailure:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (h *BettingHandler) methodNotAllowed(w http.ResponseWriter) {
	h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
}

// jsonResponse writes a JSON response
func (h *BettingHandler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// errorResponse writes a JSON error response
func (h *BettingHandler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{
		"error": message,
	})
}
