package progress

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/mindplayhq/mindplay-server/internal/auth"
	httperrors "github.com/mindplayhq/mindplay-server/pkg/http/errors"
)

// HTTPHandler exposes the progress endpoint.
type HTTPHandler struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandler constructs a progress HTTP handler.
func NewHTTPHandler(svc *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		svc:    svc,
		logger: logger.With().Str("component", "progress_http").Logger(),
	}
}

// HandleGet responds with the caller's score totals.
// Route: GET /v1/progress
func (h *HTTPHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondError(w, http.StatusMethodNotAllowed, httperrors.ErrCodeInvalidRequest, "method not allowed")
		return
	}
	claims := auth.ClaimsFrom(r.Context())
	if claims == nil {
		httperrors.RespondUnauthorized(w, httperrors.ErrCodeUnauthorized, "authentication required")
		return
	}

	totals, err := h.svc.Totals(r.Context(), claims.UserID)
	if err != nil {
		h.logger.Error().Err(err).Msg("progress fetch failed")
		httperrors.RespondInternalError(w, "failed to fetch progress")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(totals); err != nil {
		h.logger.Warn().Err(err).Msg("failed to encode response")
	}
}
