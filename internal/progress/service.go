// Package progress aggregates per-student points by subject. Totals
// live in Redis with a rolling TTL so they track the active session
// rather than forming a permanent record.
package progress

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const totalField = "__total"

// Totals is a student's accumulated points.
type Totals struct {
	Total     int            `json:"total"`
	Games     int            `json:"games"`
	BySubject map[string]int `json:"by_subject"`
}

// ServiceOptions configures the progress service.
type ServiceOptions struct {
	KeyPrefix string
	EntryTTL  time.Duration
}

// Service tracks score totals in Redis.
type Service struct {
	redis  *redis.Client
	prefix string
	ttl    time.Duration
	logger zerolog.Logger
}

// NewService constructs a progress service instance.
func NewService(redisClient *redis.Client, logger zerolog.Logger, opts ServiceOptions) *Service {
	prefix := opts.KeyPrefix
	if prefix == "" {
		prefix = "progress"
	}
	ttl := opts.EntryTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Service{
		redis:  redisClient,
		prefix: prefix,
		ttl:    ttl,
		logger: logger.With().Str("component", "progress").Logger(),
	}
}

// AddPoints credits a finished game's points against the subject.
func (s *Service) AddPoints(ctx context.Context, studentID uuid.UUID, subject string, points int) error {
	if s.redis == nil {
		return nil
	}
	key := s.key(studentID)

	pipe := s.redis.TxPipeline()
	pipe.HIncrBy(ctx, key, subject, int64(points))
	pipe.HIncrBy(ctx, key, totalField, int64(points))
	pipe.HIncrBy(ctx, key, gamesField(subject), 1)
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("record progress for %s: %w", studentID, err)
	}
	return nil
}

// Totals reads a student's accumulated points.
func (s *Service) Totals(ctx context.Context, studentID uuid.UUID) (Totals, error) {
	totals := Totals{BySubject: make(map[string]int)}
	if s.redis == nil {
		return totals, nil
	}

	data, err := s.redis.HGetAll(ctx, s.key(studentID)).Result()
	if err != nil {
		return totals, fmt.Errorf("fetch progress for %s: %w", studentID, err)
	}

	for field, raw := range data {
		value, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		switch {
		case field == totalField:
			totals.Total = value
		case isGamesField(field):
			totals.Games += value
		default:
			totals.BySubject[field] = value
		}
	}
	return totals, nil
}

func (s *Service) key(studentID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", s.prefix, studentID)
}

func gamesField(subject string) string { return "games:" + subject }

func isGamesField(field string) bool {
	return len(field) > 6 && field[:6] == "games:"
}
