package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	httperrors "github.com/mindplayhq/mindplay-server/pkg/http/errors"
)

// HTTPHandlers provides REST endpoints for the login flow.
type HTTPHandlers struct {
	service *Service
	logger  zerolog.Logger
}

// NewHTTPHandlers creates HTTP handlers for auth endpoints.
func NewHTTPHandlers(service *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		service: service,
		logger:  logger.With().Str("component", "auth_http").Logger(),
	}
}

type loginRequest struct {
	Role        string `json:"role"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name,omitempty"`
}

// HandleLogin handles POST /v1/auth/login.
func (h *HTTPHandlers) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperrors.RespondError(w, http.StatusMethodNotAllowed, httperrors.ErrCodeInvalidRequest, "method not allowed")
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "invalid JSON payload")
		return
	}
	if req.Role == "" {
		httperrors.RespondValidationError(w, httperrors.ErrCodeMissingField, "role is required", "role")
		return
	}

	result, err := h.service.Login(r.Context(), LoginRequest{
		Role:        req.Role,
		Password:    req.Password,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownRole):
			httperrors.RespondBadRequest(w, httperrors.ErrCodeValidationFailed, "role must be student or teacher")
		case errors.Is(err, ErrInvalidCredentials):
			httperrors.RespondUnauthorized(w, httperrors.ErrCodeInvalidCredentials, "invalid credentials")
		default:
			h.logger.Error().Err(err).Msg("login failed")
			httperrors.RespondInternalError(w, "login failed")
		}
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// HandleLogout handles POST /v1/auth/logout.
func (h *HTTPHandlers) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperrors.RespondError(w, http.StatusMethodNotAllowed, httperrors.ErrCodeInvalidRequest, "method not allowed")
		return
	}
	if err := h.service.Logout(r.Context()); err != nil {
		h.logger.Error().Err(err).Msg("logout failed")
		httperrors.RespondInternalError(w, "logout failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleSession handles GET /v1/auth/session, reporting the active role.
func (h *HTTPHandlers) HandleSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondError(w, http.StatusMethodNotAllowed, httperrors.ErrCodeInvalidRequest, "method not allowed")
		return
	}
	role, err := h.service.ActiveRole(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("active role lookup failed")
		httperrors.RespondInternalError(w, "session lookup failed")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"role": role})
}

func (h *HTTPHandlers) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Warn().Err(err).Msg("failed to encode response")
	}
}
