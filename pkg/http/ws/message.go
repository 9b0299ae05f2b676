package ws

import "encoding/json"

// MessageType constants for the WebSocket protocol.
const (
	// Client -> Server
	TypeWatchSession   = "watch_session"
	TypeUnwatchSession = "unwatch_session"

	// Server -> Client
	TypeShooterFrame      = "shooter_frame"
	TypeLeaderboardUpdate = "leaderboard_update"
	TypeSessionComplete   = "session_complete"
	TypeError             = "error"
	TypePing              = "ping"
	TypePong              = "pong"
)

// Message wraps all WebSocket payloads with type and optional request ID.
type Message struct {
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	RequestID string          `json:"request_id,omitempty"`
}

// Client Messages (incoming)

type WatchSessionPayload struct {
	SessionID string `json:"session_id"`
}

// Server Messages (outgoing)

type SessionCompletePayload struct {
	SessionID string `json:"session_id"`
	Variant   string `json:"variant"`
	Subject   string `json:"subject"`
	Score     int    `json:"score"`
	Points    int    `json:"points"`
}

type LeaderboardUpdatePayload struct {
	Board string             `json:"board"`
	Top   []LeaderboardEntry `json:"top"`
}

type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Points      int    `json:"points"`
	Games       int    `json:"games"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
