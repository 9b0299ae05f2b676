// Package leaderboard ranks students by accumulated points. Rankings
// live in Redis sorted sets, one board per subject plus an overall
// board, and every update is announced over Pub/Sub for WebSocket
// fan-out.
package leaderboard

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	ws "github.com/mindplayhq/mindplay-server/pkg/http/ws"
)

// BoardOverall aggregates every subject.
const BoardOverall = "overall"

// Entry represents a leaderboard record sent to clients.
type Entry struct {
	UserID      uuid.UUID `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Points      int       `json:"points"`
	Games       int       `json:"games"`
}

// RecordRequest captures the data required to update board aggregates.
type RecordRequest struct {
	UserID      uuid.UUID
	DisplayName string
	Subject     string
	Points      int
}

// ServiceOptions configures leaderboard service behavior.
type ServiceOptions struct {
	TopN           int
	PubSubChannel  string
	Boards         []string
	EntryTTL       time.Duration
	RedisKeyPrefix string
}

// Service manages leaderboard state in Redis and emits updates over Pub/Sub.
type Service struct {
	redis         *redis.Client
	logger        zerolog.Logger
	topN          int
	pubsubChannel string
	boards        map[string]bool
	entryTTL      time.Duration
	prefix        string
}

// NewService constructs a leaderboard service instance. Boards beyond
// the overall one are the subjects passed in.
func NewService(redisClient *redis.Client, logger zerolog.Logger, opts ServiceOptions) *Service {
	topN := opts.TopN
	if topN <= 0 {
		topN = 50
	}
	channel := opts.PubSubChannel
	if channel == "" {
		channel = "lb:updates"
	}
	prefix := opts.RedisKeyPrefix
	if prefix == "" {
		prefix = "lb"
	}
	boards := map[string]bool{BoardOverall: true}
	for _, b := range opts.Boards {
		boards[b] = true
	}

	return &Service{
		redis:         redisClient,
		logger:        logger.With().Str("component", "leaderboard").Logger(),
		topN:          topN,
		pubsubChannel: channel,
		boards:        boards,
		entryTTL:      opts.EntryTTL,
		prefix:        prefix,
	}
}

// ValidBoard reports whether a board name is served.
func (s *Service) ValidBoard(board string) bool {
	return s.boards[board]
}

// RecordResult credits a finished game's points to the subject board
// and the overall board.
func (s *Service) RecordResult(ctx context.Context, req RecordRequest) error {
	if s.redis == nil {
		return nil
	}

	boards := []string{BoardOverall}
	if s.boards[req.Subject] {
		boards = append(boards, req.Subject)
	}

	for _, board := range boards {
		if err := s.updateBoard(ctx, board, req); err != nil {
			return err
		}
	}

	// Publish aggregate update for WebSocket consumers.
	go s.publishUpdate(context.Background(), boards)
	return nil
}

// Top retrieves the top N entries for a given board.
func (s *Service) Top(ctx context.Context, board string, limit int) ([]Entry, error) {
	if limit <= 0 || limit > s.topN {
		limit = s.topN
	}

	zKey := s.boardKey(board)
	results, err := s.redis.ZRevRangeWithScores(ctx, zKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("fetch leaderboard: %w", err)
	}

	entries := make([]Entry, 0, len(results))
	for _, z := range results {
		meta, err := s.readMeta(ctx, board, z.Member.(string))
		if err != nil {
			s.logger.Warn().Err(err).Msg("failed to read leaderboard metadata")
			continue
		}
		meta.Points = int(z.Score)
		entries = append(entries, *meta)
	}
	return entries, nil
}

func (s *Service) updateBoard(ctx context.Context, board string, req RecordRequest) error {
	zKey := s.boardKey(board)
	metaKey := s.metaKey(board, req.UserID)

	pipe := s.redis.TxPipeline()
	pipe.ZIncrBy(ctx, zKey, float64(req.Points), req.UserID.String())
	pipe.HIncrBy(ctx, metaKey, "games", 1)
	pipe.HSet(ctx, metaKey, map[string]interface{}{
		"display_name": req.DisplayName,
	})
	if s.entryTTL > 0 {
		pipe.Expire(ctx, zKey, s.entryTTL)
		pipe.Expire(ctx, metaKey, s.entryTTL)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("update leaderboard %s: %w", board, err)
	}
	return nil
}

func (s *Service) publishUpdate(ctx context.Context, boards []string) {
	for _, board := range boards {
		entries, err := s.Top(ctx, board, 10)
		if err != nil {
			s.logger.Warn().Err(err).Str("board", board).Msg("failed to collect leaderboard update")
			continue
		}
		if len(entries) == 0 {
			continue
		}

		payload := ws.LeaderboardUpdatePayload{
			Board: board,
			Top:   toWSEntries(entries),
		}
		data, err := json.Marshal(payload)
		if err != nil {
			s.logger.Warn().Err(err).Msg("failed to marshal leaderboard update")
			continue
		}
		if err := s.redis.Publish(ctx, s.pubsubChannel, data).Err(); err != nil {
			s.logger.Warn().Err(err).Msg("failed to publish leaderboard update")
		}
	}
}

func (s *Service) readMeta(ctx context.Context, board string, userIDStr string) (*Entry, error) {
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, fmt.Errorf("parse leaderboard member: %w", err)
	}

	data, err := s.redis.HGetAll(ctx, s.metaKey(board, userID)).Result()
	if err != nil {
		return nil, err
	}

	entry := &Entry{UserID: userID}
	if len(data) == 0 {
		// No metadata yet; fallback minimal entry.
		return entry, nil
	}
	entry.DisplayName = data["display_name"]
	entry.Games = parseInt(data["games"])
	return entry, nil
}

func (s *Service) boardKey(board string) string {
	return fmt.Sprintf("%s:%s", s.prefix, board)
}

func (s *Service) metaKey(board string, userID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:meta:%s", s.prefix, board, userID.String())
}

func toWSEntries(entries []Entry) []ws.LeaderboardEntry {
	out := make([]ws.LeaderboardEntry, len(entries))
	for i, e := range entries {
		out[i] = ws.LeaderboardEntry{
			Rank:        i + 1,
			UserID:      e.UserID.String(),
			DisplayName: e.DisplayName,
			Points:      e.Points,
			Games:       e.Games,
		}
	}
	return out
}

func parseInt(val string) int {
	if val == "" {
		return 0
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return i
}
