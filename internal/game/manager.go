package game

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mindplayhq/mindplay-server/internal/content"
	"github.com/mindplayhq/mindplay-server/internal/game/scoring"
)

// CompletionEvent is emitted exactly once per session when it is
// finalized, carrying the points that feed progress and leaderboards.
type CompletionEvent struct {
	SessionID   uuid.UUID
	StudentID   uuid.UUID
	DisplayName string
	Variant     string
	Subject     string
	Score       int
	Points      int
}

// ManagerOptions configures session behavior.
type ManagerOptions struct {
	RevealDelay       time.Duration // answer reveal window, default 2s
	MemoryRevealDelay time.Duration // memory flip-back window, default 1s
	TrueFalseLimit    int           // statements per true/false round
	ShooterFrameRate  int           // physics frames per second
	ShooterLevelSecs  int           // countdown per shooter level
	SessionTTL        time.Duration // idle session expiry, default 1h
}

type managed struct {
	engine      Engine
	runner      *shooterRunner
	studentID   uuid.UUID
	displayName string
	createdAt   time.Time
	touchedAt   time.Time
	reported    bool
}

// Manager owns every live game session. All variant input is routed
// through it so that lifecycle, expiry, and completion reporting stay
// in one place.
type Manager struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*managed

	catalog *content.Catalog
	policy  *scoring.Policy
	clock   Clock
	rng     *rand.Rand
	frames  FrameSink
	opts    ManagerOptions
	logger  zerolog.Logger

	// onComplete runs outside the manager lock.
	onComplete func(context.Context, CompletionEvent)
}

// NewManager constructs a session manager.
func NewManager(catalog *content.Catalog, policy *scoring.Policy, clock Clock, frames FrameSink, opts ManagerOptions, logger zerolog.Logger) *Manager {
	if catalog == nil {
		catalog = content.NewCatalog()
	}
	if policy == nil {
		policy = scoring.NewPolicy(scoring.DefaultConfig())
	}
	if clock == nil {
		clock = RealClock()
	}
	if opts.RevealDelay <= 0 {
		opts.RevealDelay = 2 * time.Second
	}
	if opts.MemoryRevealDelay <= 0 {
		opts.MemoryRevealDelay = time.Second
	}
	if opts.TrueFalseLimit <= 0 {
		opts.TrueFalseLimit = 3
	}
	if opts.ShooterFrameRate <= 0 {
		opts.ShooterFrameRate = 30
	}
	if opts.ShooterLevelSecs <= 0 {
		opts.ShooterLevelSecs = 60
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = time.Hour
	}
	return &Manager{
		sessions: make(map[uuid.UUID]*managed),
		catalog:  catalog,
		policy:   policy,
		clock:    clock,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		frames:   frames,
		opts:     opts,
		logger:   logger.With().Str("component", "game_manager").Logger(),
	}
}

// SetCompletionHandler registers the callback invoked once per
// finalized session. Call before serving traffic.
func (m *Manager) SetCompletionHandler(fn func(context.Context, CompletionEvent)) {
	m.onComplete = fn
}

// StartRequest describes a new session.
type StartRequest struct {
	Variant     string
	Subject     string
	Chapter     string
	StudentID   uuid.UUID
	DisplayName string
}

// Start creates an engine for the requested variant and returns its
// initial state.
func (m *Manager) Start(ctx context.Context, req StartRequest) (uuid.UUID, any, error) {
	engineLogger := m.logger.With().Str("subject", req.Subject).Logger()

	var engine Engine
	switch req.Variant {
	case VariantQuiz:
		engine = NewQuizEngine(m.catalog, req.Subject, req.Chapter, m.opts.RevealDelay, m.clock, m.policy, engineLogger)
	case VariantTrueFalse:
		engine = NewTrueFalseEngine(m.catalog, req.Subject, m.opts.TrueFalseLimit, m.opts.RevealDelay, m.clock, m.policy, engineLogger)
	case VariantTileMatch:
		engine = NewTileEngine(m.catalog, req.Subject, m.rng, m.policy, engineLogger)
	case VariantMemoryMatch:
		engine = NewMemoryEngine(m.catalog, req.Subject, m.opts.MemoryRevealDelay, m.rng, m.clock, m.policy, engineLogger)
	case VariantWordScramble:
		engine = NewWordEngine(m.catalog, req.Subject, m.opts.RevealDelay, m.rng, m.clock, m.policy, engineLogger)
	case VariantFractionShooter:
		engine = NewShooterEngine(m.catalog, req.Subject, m.opts.ShooterLevelSecs, m.rng, m.policy, engineLogger)
	default:
		return uuid.Nil, nil, fmt.Errorf("%w: %s", ErrUnknownVariant, req.Variant)
	}

	entry := &managed{
		engine:      engine,
		studentID:   req.StudentID,
		displayName: req.DisplayName,
		createdAt:   m.clock.Now(),
		touchedAt:   m.clock.Now(),
	}
	if shooter, ok := engine.(*ShooterEngine); ok {
		entry.runner = newShooterRunner(shooter, m.frames, m.opts.ShooterFrameRate, m.logger)
		entry.runner.start(context.Background())
	}

	m.mu.Lock()
	m.sessions[engine.ID()] = entry
	m.mu.Unlock()

	gamesStarted.WithLabelValues(req.Variant).Inc()
	m.logger.Info().
		Str("session_id", engine.ID().String()).
		Str("variant", req.Variant).
		Str("subject", req.Subject).
		Msg("session started")
	return engine.ID(), engine.State(), nil
}

func (m *Manager) lookup(id uuid.UUID) (*managed, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	entry.touchedAt = m.clock.Now()
	return entry, nil
}

// State returns the current snapshot of a session.
func (m *Manager) State(id uuid.UUID) (any, error) {
	entry, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	return entry.engine.State(), nil
}

// SubmitAnswer routes an option submission to a quiz or true/false
// session.
func (m *Manager) SubmitAnswer(id uuid.UUID, option int) (AnswerOutcome, error) {
	entry, err := m.lookup(id)
	if err != nil {
		return AnswerOutcome{}, err
	}
	engine, ok := entry.engine.(*QuizEngine)
	if !ok {
		return AnswerOutcome{}, ErrWrongVariant
	}
	return engine.Submit(option)
}

// SelectTile routes a tile pick to a tile-matching session.
func (m *Manager) SelectTile(id uuid.UUID, side string, index int) (SelectOutcome, error) {
	entry, err := m.lookup(id)
	if err != nil {
		return SelectOutcome{}, err
	}
	engine, ok := entry.engine.(*TileEngine)
	if !ok {
		return SelectOutcome{}, ErrWrongVariant
	}
	return engine.Select(side, index)
}

// FlipCard routes a card flip to a memory session.
func (m *Manager) FlipCard(id uuid.UUID, index int) (FlipOutcome, error) {
	entry, err := m.lookup(id)
	if err != nil {
		return FlipOutcome{}, err
	}
	engine, ok := entry.engine.(*MemoryEngine)
	if !ok {
		return FlipOutcome{}, ErrWrongVariant
	}
	return engine.Flip(index)
}

// SubmitWord routes a guess to a word-scramble session.
func (m *Manager) SubmitWord(id uuid.UUID, guess string) (AnswerOutcome, error) {
	entry, err := m.lookup(id)
	if err != nil {
		return AnswerOutcome{}, err
	}
	engine, ok := entry.engine.(*WordEngine)
	if !ok {
		return AnswerOutcome{}, ErrWrongVariant
	}
	return engine.Submit(guess)
}

// SkipWord skips the current word in a scramble session.
func (m *Manager) SkipWord(id uuid.UUID) (AnswerOutcome, error) {
	entry, err := m.lookup(id)
	if err != nil {
		return AnswerOutcome{}, err
	}
	engine, ok := entry.engine.(*WordEngine)
	if !ok {
		return AnswerOutcome{}, ErrWrongVariant
	}
	return engine.Skip()
}

func (m *Manager) shooter(id uuid.UUID) (*ShooterEngine, error) {
	entry, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	engine, ok := entry.engine.(*ShooterEngine)
	if !ok {
		return nil, ErrWrongVariant
	}
	return engine, nil
}

// StartShooterLevel begins the current level countdown.
func (m *Manager) StartShooterLevel(id uuid.UUID) error {
	engine, err := m.shooter(id)
	if err != nil {
		return err
	}
	return engine.StartLevel()
}

// ReplayShooterLevel restarts the current level.
func (m *Manager) ReplayShooterLevel(id uuid.UUID) error {
	engine, err := m.shooter(id)
	if err != nil {
		return err
	}
	return engine.ReplayLevel()
}

// NextShooterLevel advances past a completed level.
func (m *Manager) NextShooterLevel(id uuid.UUID) (bool, error) {
	engine, err := m.shooter(id)
	if err != nil {
		return false, err
	}
	return engine.NextLevel()
}

// HitBalloon pops a balloon in a shooter session.
func (m *Manager) HitBalloon(id uuid.UUID, balloonID string) (HitOutcome, error) {
	engine, err := m.shooter(id)
	if err != nil {
		return HitOutcome{}, err
	}
	return engine.Hit(balloonID)
}

// Finalize computes a session's terminal result. The first call
// reports the completion downstream; repeats return the same result
// without reporting again.
func (m *Manager) Finalize(ctx context.Context, id uuid.UUID) (Result, error) {
	entry, err := m.lookup(id)
	if err != nil {
		return Result{}, err
	}
	result := entry.engine.Finalize()

	m.mu.Lock()
	report := !entry.reported
	entry.reported = true
	m.mu.Unlock()

	if report {
		gamesCompleted.WithLabelValues(entry.engine.Variant()).Inc()
	}
	if report && m.onComplete != nil {
		m.onComplete(ctx, CompletionEvent{
			SessionID:   id,
			StudentID:   entry.studentID,
			DisplayName: entry.displayName,
			Variant:     entry.engine.Variant(),
			Subject:     entry.engine.Subject(),
			Score:       result.Score,
			Points:      result.Points,
		})
	}
	return result, nil
}

// Teardown releases a session: timers cancelled, runner stopped,
// state dropped. An unfinalized session reports nothing.
func (m *Manager) Teardown(id uuid.UUID) error {
	m.mu.Lock()
	entry, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	entry.engine.Close()
	if entry.runner != nil {
		entry.runner.stop()
	}
	m.logger.Info().Str("session_id", id.String()).Msg("session torn down")
	return nil
}

// RunJanitor sweeps idle sessions past the TTL until the context is
// cancelled.
func (m *Manager) RunJanitor(ctx context.Context) error {
	interval := m.opts.SessionTTL / 10
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			m.sweep()
		}
	}
}

func (m *Manager) sweep() {
	cutoff := m.clock.Now().Add(-m.opts.SessionTTL)

	m.mu.Lock()
	var expired []uuid.UUID
	for id, entry := range m.sessions {
		if entry.touchedAt.Before(cutoff) {
			expired = append(expired, id)
		}
	}
	m.mu.Unlock()

	for _, id := range expired {
		if err := m.Teardown(id); err == nil {
			m.logger.Info().Str("session_id", id.String()).Msg("expired session swept")
		}
	}
}

// CloseAll tears down every live session, used at shutdown.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	ids := make([]uuid.UUID, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	m.mu.Unlock()

	for _, id := range ids {
		_ = m.Teardown(id)
	}
}

// ActiveSessions reports the number of live sessions.
func (m *Manager) ActiveSessions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
