package game

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mindplayhq/mindplay-server/internal/auth"
	httperrors "github.com/mindplayhq/mindplay-server/pkg/http/errors"
)

// HTTPHandlers provides REST endpoints for game sessions.
type HTTPHandlers struct {
	manager *Manager
	logger  zerolog.Logger
}

// NewHTTPHandlers creates HTTP handlers for game endpoints.
func NewHTTPHandlers(manager *Manager, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		manager: manager,
		logger:  logger.With().Str("component", "game_http").Logger(),
	}
}

// HandleGames dispatches /v1/games requests.
// Routes:
//
//	POST   /v1/games                       start a session
//	GET    /v1/games/{id}                  session state
//	DELETE /v1/games/{id}                  tear down
//	POST   /v1/games/{id}/answer           quiz and true/false
//	POST   /v1/games/{id}/tiles            tile selection
//	POST   /v1/games/{id}/flip             memory card flip
//	POST   /v1/games/{id}/word             scramble guess
//	POST   /v1/games/{id}/skip             scramble skip
//	POST   /v1/games/{id}/shooter/{op}     start, replay, next, hit
//	POST   /v1/games/{id}/finalize         terminal result
func (h *HTTPHandlers) HandleGames(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/games"), "/")

	if rest == "" {
		if r.Method != http.MethodPost {
			httperrors.RespondError(w, http.StatusMethodNotAllowed, httperrors.ErrCodeInvalidRequest, "method not allowed")
			return
		}
		h.start(w, r)
		return
	}

	parts := strings.Split(rest, "/")
	sessionID, err := uuid.Parse(parts[0])
	if err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidSessionID, "session id must be a UUID")
		return
	}

	switch {
	case len(parts) == 1 && r.Method == http.MethodGet:
		h.state(w, sessionID)
	case len(parts) == 1 && r.Method == http.MethodDelete:
		h.teardown(w, sessionID)
	case len(parts) == 2 && r.Method == http.MethodPost:
		h.action(w, r, sessionID, parts[1])
	case len(parts) == 3 && parts[1] == "shooter" && r.Method == http.MethodPost:
		h.shooterAction(w, r, sessionID, parts[2])
	default:
		httperrors.RespondNotFound(w, httperrors.ErrCodeInvalidRequest, "unknown game route")
	}
}

type startGameRequest struct {
	Variant string `json:"variant"`
	Subject string `json:"subject"`
	Chapter string `json:"chapter,omitempty"`
}

func (h *HTTPHandlers) start(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFrom(r.Context())
	if claims == nil {
		httperrors.RespondUnauthorized(w, httperrors.ErrCodeUnauthorized, "authentication required")
		return
	}

	var req startGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "invalid JSON payload")
		return
	}
	if req.Variant == "" {
		httperrors.RespondValidationError(w, httperrors.ErrCodeMissingField, "variant is required", "variant")
		return
	}
	if req.Subject == "" {
		httperrors.RespondValidationError(w, httperrors.ErrCodeMissingField, "subject is required", "subject")
		return
	}

	id, state, err := h.manager.Start(r.Context(), StartRequest{
		Variant:     req.Variant,
		Subject:     req.Subject,
		Chapter:     req.Chapter,
		StudentID:   claims.UserID,
		DisplayName: claims.DisplayName,
	})
	if err != nil {
		if errors.Is(err, ErrUnknownVariant) {
			httperrors.RespondBadRequest(w, httperrors.ErrCodeUnknownGameType, err.Error())
			return
		}
		h.logger.Error().Err(err).Str("variant", req.Variant).Msg("failed to start session")
		httperrors.RespondError(w, http.StatusInternalServerError, httperrors.ErrCodeStartFailed, "failed to start session")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]any{
		"session_id": id.String(),
		"state":      state,
	})
}

func (h *HTTPHandlers) state(w http.ResponseWriter, id uuid.UUID) {
	state, err := h.manager.State(id)
	if err != nil {
		h.respondGameError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, state)
}

func (h *HTTPHandlers) teardown(w http.ResponseWriter, id uuid.UUID) {
	if err := h.manager.Teardown(id); err != nil {
		h.respondGameError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type actionRequest struct {
	Option *int   `json:"option,omitempty"`
	Side   string `json:"side,omitempty"`
	Index  *int   `json:"index,omitempty"`
	Guess  string `json:"guess,omitempty"`
}

func (h *HTTPHandlers) action(w http.ResponseWriter, r *http.Request, id uuid.UUID, op string) {
	var req actionRequest
	if op != "skip" && op != "finalize" {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "invalid JSON payload")
			return
		}
	}

	switch op {
	case "answer":
		if req.Option == nil {
			httperrors.RespondValidationError(w, httperrors.ErrCodeMissingField, "option is required", "option")
			return
		}
		outcome, err := h.manager.SubmitAnswer(id, *req.Option)
		h.respondOutcome(w, outcome, err)
	case "tiles":
		if req.Index == nil {
			httperrors.RespondValidationError(w, httperrors.ErrCodeMissingField, "index is required", "index")
			return
		}
		outcome, err := h.manager.SelectTile(id, req.Side, *req.Index)
		h.respondOutcome(w, outcome, err)
	case "flip":
		if req.Index == nil {
			httperrors.RespondValidationError(w, httperrors.ErrCodeMissingField, "index is required", "index")
			return
		}
		outcome, err := h.manager.FlipCard(id, *req.Index)
		h.respondOutcome(w, outcome, err)
	case "word":
		if strings.TrimSpace(req.Guess) == "" {
			httperrors.RespondValidationError(w, httperrors.ErrCodeMissingField, "guess is required", "guess")
			return
		}
		outcome, err := h.manager.SubmitWord(id, req.Guess)
		h.respondOutcome(w, outcome, err)
	case "skip":
		outcome, err := h.manager.SkipWord(id)
		h.respondOutcome(w, outcome, err)
	case "finalize":
		result, err := h.manager.Finalize(r.Context(), id)
		if err != nil {
			h.respondGameError(w, err)
			return
		}
		h.respondJSON(w, http.StatusOK, result)
	default:
		httperrors.RespondNotFound(w, httperrors.ErrCodeInvalidRequest, "unknown game action")
	}
}

type shooterRequest struct {
	BalloonID string `json:"balloon_id"`
}

func (h *HTTPHandlers) shooterAction(w http.ResponseWriter, r *http.Request, id uuid.UUID, op string) {
	switch op {
	case "start":
		if err := h.manager.StartShooterLevel(id); err != nil {
			h.respondGameError(w, err)
			return
		}
		h.state(w, id)
	case "replay":
		if err := h.manager.ReplayShooterLevel(id); err != nil {
			h.respondGameError(w, err)
			return
		}
		h.state(w, id)
	case "next":
		done, err := h.manager.NextShooterLevel(id)
		if err != nil {
			h.respondGameError(w, err)
			return
		}
		h.respondJSON(w, http.StatusOK, map[string]any{"complete": done})
	case "hit":
		var req shooterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.BalloonID == "" {
			httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "balloon_id is required")
			return
		}
		outcome, err := h.manager.HitBalloon(id, req.BalloonID)
		h.respondOutcome(w, outcome, err)
	default:
		httperrors.RespondNotFound(w, httperrors.ErrCodeInvalidRequest, "unknown shooter action")
	}
}

func (h *HTTPHandlers) respondOutcome(w http.ResponseWriter, outcome any, err error) {
	if err != nil {
		h.respondGameError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, outcome)
}

func (h *HTTPHandlers) respondGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		httperrors.RespondNotFound(w, httperrors.ErrCodeSessionNotFound, "session not found")
	case errors.Is(err, ErrSessionComplete):
		httperrors.RespondConflict(w, httperrors.ErrCodeSessionComplete, "session already complete")
	case errors.Is(err, ErrInputLocked):
		httperrors.RespondConflict(w, httperrors.ErrCodeInputLocked, "input locked during reveal")
	case errors.Is(err, ErrWrongVariant), errors.Is(err, ErrInvalidSelection):
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, err.Error())
	default:
		h.logger.Error().Err(err).Msg("game operation failed")
		httperrors.RespondError(w, http.StatusInternalServerError, httperrors.ErrCodeSubmitFailed, "operation failed")
	}
}

func (h *HTTPHandlers) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Warn().Err(err).Msg("failed to encode response")
	}
}
