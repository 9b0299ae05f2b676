package leaderboard

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	httperrors "github.com/mindplayhq/mindplay-server/pkg/http/errors"
)

// HTTPHandler exposes REST endpoints for leaderboard queries.
type HTTPHandler struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandler constructs a leaderboard HTTP handler.
func NewHTTPHandler(svc *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		svc:    svc,
		logger: logger.With().Str("component", "leaderboard_http").Logger(),
	}
}

// HandleGet responds with the current standings for a board.
// Route: GET /v1/leaderboards/{board}?limit=10
func (h *HTTPHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondError(w, http.StatusMethodNotAllowed, httperrors.ErrCodeInvalidRequest, "method not allowed")
		return
	}

	board := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/leaderboards/"), "/")
	if board == "" {
		board = BoardOverall
	}
	if !h.svc.ValidBoard(board) {
		httperrors.RespondNotFound(w, httperrors.ErrCodeUnknownBoard, "unknown leaderboard")
		return
	}

	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	entries, err := h.svc.Top(r.Context(), board, limit)
	if err != nil {
		h.logger.Warn().Err(err).Str("board", board).Msg("leaderboard fetch failed")
		httperrors.RespondError(w, http.StatusInternalServerError, httperrors.ErrCodeLeaderboardFetchFailed, "failed to fetch leaderboard")
		return
	}

	resp := map[string]interface{}{
		"board":       board,
		"top":         toWSEntries(entries),
		"retrievedAt": time.Now().UTC().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Warn().Err(err).Msg("failed to encode response")
	}
}
