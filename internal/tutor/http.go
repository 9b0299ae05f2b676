package tutor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	httperrors "github.com/mindplayhq/mindplay-server/pkg/http/errors"
)

// HTTPHandlers provides REST endpoints for tutoring sessions.
type HTTPHandlers struct {
	manager *Manager
	logger  zerolog.Logger
}

// NewHTTPHandlers creates HTTP handlers for tutor endpoints.
func NewHTTPHandlers(manager *Manager, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		manager: manager,
		logger:  logger.With().Str("component", "tutor_http").Logger(),
	}
}

// HandleTutor dispatches /v1/tutor requests.
// Routes:
//
//	POST   /v1/tutor                      start a conversation
//	GET    /v1/tutor/{id}                 transcript
//	DELETE /v1/tutor/{id}                 tear down
//	POST   /v1/tutor/{id}/message         send a chat or quiz request
//	POST   /v1/tutor/{id}/answer          answer the current quiz question
func (h *HTTPHandlers) HandleTutor(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/tutor"), "/")

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
		h.transcript(w, sessionID)
	case len(parts) == 1 && r.Method == http.MethodDelete:
		h.teardown(w, sessionID)
	case len(parts) == 2 && parts[1] == "message" && r.Method == http.MethodPost:
		h.message(w, r, sessionID)
	case len(parts) == 2 && parts[1] == "answer" && r.Method == http.MethodPost:
		h.answer(w, r, sessionID)
	default:
		httperrors.RespondNotFound(w, httperrors.ErrCodeInvalidRequest, "unknown tutor route")
	}
}

type startTutorRequest struct {
	Subject   string `json:"subject"`
	ShowSteps bool   `json:"show_steps"`
}

func (h *HTTPHandlers) start(w http.ResponseWriter, r *http.Request) {
	var req startTutorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "invalid JSON payload")
		return
	}
	if req.Subject == "" {
		httperrors.RespondValidationError(w, httperrors.ErrCodeMissingField, "subject is required", "subject")
		return
	}

	ctrl := h.manager.Start(req.Subject, req.ShowSteps)
	h.respondJSON(w, http.StatusCreated, map[string]any{
		"session_id": ctrl.ID().String(),
		"subject":    ctrl.Subject(),
	})
}

type tutorMessageRequest struct {
	Text string `json:"text"`
	Mode string `json:"mode,omitempty"`
}

func (h *HTTPHandlers) message(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	ctrl, err := h.manager.Get(id)
	if err != nil {
		h.respondTutorError(w, err)
		return
	}

	var req tutorMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "invalid JSON payload")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		httperrors.RespondValidationError(w, httperrors.ErrCodeMissingField, "text is required", "text")
		return
	}
	mode := req.Mode
	if mode == "" {
		mode = ModeChat
	}

	result, err := ctrl.Send(r.Context(), req.Text, mode)
	if err != nil {
		h.respondTutorError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, result)
}

type tutorAnswerRequest struct {
	Option *int `json:"option"`
}

func (h *HTTPHandlers) answer(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	ctrl, err := h.manager.Get(id)
	if err != nil {
		h.respondTutorError(w, err)
		return
	}

	var req tutorAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Option == nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "option is required")
		return
	}

	result, err := ctrl.AnswerQuiz(*req.Option)
	if err != nil {
		h.respondTutorError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, result)
}

func (h *HTTPHandlers) transcript(w http.ResponseWriter, id uuid.UUID) {
	ctrl, err := h.manager.Get(id)
	if err != nil {
		h.respondTutorError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"session_id": id.String(),
		"subject":    ctrl.Subject(),
		"messages":   ctrl.Transcript(),
		"question":   ctrl.CurrentQuestion(),
		"awaiting":   ctrl.Awaiting(),
	})
}

func (h *HTTPHandlers) teardown(w http.ResponseWriter, id uuid.UUID) {
	if err := h.manager.Teardown(id); err != nil {
		h.respondTutorError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandlers) respondTutorError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		httperrors.RespondNotFound(w, httperrors.ErrCodeSessionNotFound, "tutor session not found")
	case errors.Is(err, ErrBusy):
		httperrors.RespondConflict(w, httperrors.ErrCodeTutorBusy, "a reply is already in flight")
	case errors.Is(err, ErrClosed):
		httperrors.RespondConflict(w, httperrors.ErrCodeTutorSessionClosed, "tutor session closed")
	case errors.Is(err, ErrNoActiveQuiz):
		httperrors.RespondConflict(w, httperrors.ErrCodeNoActiveQuiz, "no quiz in progress")
	case errors.Is(err, ErrEmptyMessage), errors.Is(err, ErrInvalidAnswer):
		httperrors.RespondBadRequest(w, httperrors.ErrCodeValidationFailed, err.Error())
	default:
		h.logger.Error().Err(err).Msg("tutor operation failed")
		httperrors.RespondInternalError(w, "tutor operation failed")
	}
}

func (h *HTTPHandlers) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Warn().Err(err).Msg("failed to encode response")
	}
}
