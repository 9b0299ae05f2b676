package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/mindplayhq/mindplay-server/internal/game"
	ws "github.com/mindplayhq/mindplay-server/pkg/http/ws"
)

// WSUpgrader handles WebSocket upgrades.
var WSUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// WSHandler upgrades connections and routes subscription messages from
// clients watching game sessions or the leaderboard.
type WSHandler struct {
	hub    *ws.Hub
	logger zerolog.Logger
}

// NewWSHandler constructs the WebSocket endpoint handler.
func NewWSHandler(hub *ws.Hub, logger zerolog.Logger) *WSHandler {
	return &WSHandler{
		hub:    hub,
		logger: logger.With().Str("component", "ws_handler").Logger(),
	}
}

// HandleWebSocket handles GET /ws.
func (h *WSHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := WSUpgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	clientID := uuid.New()
	connection := ws.NewConnection(conn, h.logger)
	h.hub.RegisterConnection(clientID, connection)

	go connection.WritePump()
	connection.ReadPump(func(msg ws.Message) error {
		return h.handleMessage(clientID, connection, msg)
	})
	h.hub.UnregisterConnection(clientID)
}

func (h *WSHandler) handleMessage(clientID uuid.UUID, conn *ws.Connection, msg ws.Message) error {
	switch msg.Type {
	case ws.TypeWatchSession:
		var payload ws.WatchSessionPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil || payload.SessionID == "" {
			return h.sendError(conn, "invalid_payload", "session_id is required")
		}
		h.hub.Subscribe(payload.SessionID, clientID)
	case ws.TypeUnwatchSession:
		var payload ws.WatchSessionPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil || payload.SessionID == "" {
			return h.sendError(conn, "invalid_payload", "session_id is required")
		}
		h.hub.Unsubscribe(payload.SessionID, clientID)
	case ws.TypePing:
		return conn.Send(ws.Message{Type: ws.TypePong, RequestID: msg.RequestID})
	default:
		return h.sendError(conn, "unknown_type", "unsupported message type")
	}
	return nil
}

func (h *WSHandler) sendError(conn *ws.Connection, code, message string) error {
	raw, err := json.Marshal(ws.ErrorPayload{Code: code, Message: message})
	if err != nil {
		return err
	}
	return conn.Send(ws.Message{Type: ws.TypeError, Payload: raw})
}

// HubFrameSink fans shooter frames out to the session's watchers.
type HubFrameSink struct {
	hub    *ws.Hub
	logger zerolog.Logger
}

// NewHubFrameSink constructs a frame sink backed by the hub.
func NewHubFrameSink(hub *ws.Hub, logger zerolog.Logger) *HubFrameSink {
	return &HubFrameSink{
		hub:    hub,
		logger: logger.With().Str("component", "frame_sink").Logger(),
	}
}

// PublishFrame broadcasts one shooter snapshot to the session topic.
func (s *HubFrameSink) PublishFrame(sessionID uuid.UUID, state game.ShooterState) {
	raw, err := json.Marshal(state)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to marshal shooter frame")
		return
	}
	if err := s.hub.BroadcastToTopic(sessionID.String(), ws.Message{
		Type:    ws.TypeShooterFrame,
		Payload: raw,
	}); err != nil {
		s.logger.Debug().Err(err).Msg("shooter frame broadcast failed")
	}
}

// PublishCompletion announces a finished session to its watchers.
func (s *HubFrameSink) PublishCompletion(evt game.CompletionEvent) {
	raw, err := json.Marshal(ws.SessionCompletePayload{
		SessionID: evt.SessionID.String(),
		Variant:   evt.Variant,
		Subject:   evt.Subject,
		Score:     evt.Score,
		Points:    evt.Points,
	})
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to marshal completion event")
		return
	}
	if err := s.hub.BroadcastToTopic(evt.SessionID.String(), ws.Message{
		Type:    ws.TypeSessionComplete,
		Payload: raw,
	}); err != nil {
		s.logger.Debug().Err(err).Msg("completion broadcast failed")
	}
}
