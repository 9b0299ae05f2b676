package errors

// Error codes for standardized error responses
const (
	// Authentication errors
	ErrCodeUnauthorized       = "unauthorized"
	ErrCodeInvalidToken       = "invalid_token"
	ErrCodeInvalidCredentials = "invalid_credentials"

	// Validation errors
	ErrCodeInvalidRequest   = "invalid_request"
	ErrCodeValidationFailed = "validation_failed"
	ErrCodeMissingField     = "missing_field"

	// Game session errors
	ErrCodeInvalidSessionID = "invalid_session_id"
	ErrCodeSessionNotFound  = "session_not_found"
	ErrCodeSessionComplete  = "session_complete"
	ErrCodeInputLocked      = "input_locked"
	ErrCodeUnknownGameType  = "unknown_game_type"
	ErrCodeSubmitFailed     = "submit_failed"
	ErrCodeStartFailed      = "start_failed"

	// Tutor errors
	ErrCodeTutorBusy          = "tutor_busy"
	ErrCodeNoActiveQuiz       = "no_active_quiz"
	ErrCodeTutorSessionClosed = "tutor_session_closed"

	// Leaderboard errors
	ErrCodeLeaderboardFetchFailed = "leaderboard_fetch_failed"
	ErrCodeUnknownBoard           = "unknown_leaderboard"

	// Server errors
	ErrCodeInternalError      = "internal_error"
	ErrCodeServiceUnavailable = "service_unavailable"
	ErrCodeUpstreamError      = "upstream_error"
)
