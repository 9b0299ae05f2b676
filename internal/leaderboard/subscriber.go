package leaderboard

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	ws "github.com/mindplayhq/mindplay-server/pkg/http/ws"
)

// Broadcaster relays leaderboard updates published over Redis Pub/Sub
// to every connected WebSocket client. Running it in each API replica
// keeps their clients in sync through the shared Redis.
type Broadcaster struct {
	redis   *redis.Client
	hub     *ws.Hub
	channel string
	logger  zerolog.Logger
}

// NewBroadcaster creates a Pub/Sub powered leaderboard broadcaster.
func NewBroadcaster(redisClient *redis.Client, hub *ws.Hub, channel string, logger zerolog.Logger) *Broadcaster {
	if channel == "" {
		channel = "lb:updates"
	}
	return &Broadcaster{
		redis:   redisClient,
		hub:     hub,
		channel: channel,
		logger:  logger.With().Str("component", "leaderboard_broadcaster").Logger(),
	}
}

// Run subscribes to the update channel and blocks until the context is cancelled.
func (b *Broadcaster) Run(ctx context.Context) error {
	if b.redis == nil || b.hub == nil {
		return nil
	}

	sub := b.redis.Subscribe(ctx, b.channel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			b.fanOut(msg.Payload)
		}
	}
}

// fanOut validates one published update and rebroadcasts its raw bytes.
// Malformed or empty updates are dropped so a bad publisher cannot push
// junk to every client.
func (b *Broadcaster) fanOut(payload string) {
	update, ok := decodeUpdate(payload)
	if !ok {
		b.logger.Warn().Msg("dropping malformed leaderboard update")
		return
	}

	if err := b.hub.BroadcastAll(ws.Message{
		Type:    ws.TypeLeaderboardUpdate,
		Payload: json.RawMessage(payload),
	}); err != nil {
		b.logger.Warn().Err(err).Str("board", update.Board).Msg("failed to broadcast leaderboard update")
	}
}

// decodeUpdate rejects payloads that do not carry a named board with at
// least one entry.
func decodeUpdate(payload string) (ws.LeaderboardUpdatePayload, bool) {
	var update ws.LeaderboardUpdatePayload
	if err := json.Unmarshal([]byte(payload), &update); err != nil {
		return update, false
	}
	if update.Board == "" || len(update.Top) == 0 {
		return update, false
	}
	return update, true
}
