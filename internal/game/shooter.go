package game

import (
	"math"
	"math/rand"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mindplayhq/mindplay-server/internal/content"
	"github.com/mindplayhq/mindplay-server/internal/game/scoring"
)

// Shooter phases.
const (
	ShooterPhaseReady         = "ready"
	ShooterPhasePlaying       = "playing"
	ShooterPhaseLevelComplete = "level_complete"
	ShooterPhaseComplete      = "complete"
)

// Geometry and pacing constants. Positions are percentages of the play
// field; balloons rise from below the bottom edge and escape past the
// top.
const (
	shooterSpawnChance = 0.02
	shooterMinSpeed    = 0.3
	shooterMaxSpeed    = 0.8
	shooterMinX        = 10.0
	shooterMaxX        = 90.0
	shooterSpawnY      = 100.0
	shooterEscapeY     = -10.0
	shooterEpsilon     = 0.01
)

var balloonColors = []string{"#ef4444", "#3b82f6", "#22c55e", "#eab308", "#a855f7", "#ec4899"}

// Balloon is one floating fraction on the field.
type Balloon struct {
	ID      string  `json:"id"`
	Display string  `json:"display"`
	Value   float64 `json:"-"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Speed   float64 `json:"-"`
	Color   string  `json:"color"`
}

// ShooterEngine runs the fraction shooter. The level countdown is the
// only thing that ends a level; escapes and misses just cost points.
// The score accumulates across levels and is clamped at finalization.
type ShooterEngine struct {
	mu sync.Mutex

	id      uuid.UUID
	subject string

	levels   []content.ShooterLevel
	levelIdx int
	phase    string

	balloons   []Balloon
	timeLeft   int
	levelSecs  int
	score      int
	levelStart int // score at level start, restored on replay

	rng    *rand.Rand
	policy *scoring.Policy
	logger zerolog.Logger

	finalized bool
	result    Result
	closed    bool
}

// NewShooterEngine builds a fraction-shooter session from the catalog.
func NewShooterEngine(catalog *content.Catalog, subject string, levelSecs int, rng *rand.Rand, policy *scoring.Policy, logger zerolog.Logger) *ShooterEngine {
	if levelSecs <= 0 {
		levelSecs = 60
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	if policy == nil {
		policy = scoring.NewPolicy(scoring.DefaultConfig())
	}
	return &ShooterEngine{
		id:        uuid.New(),
		subject:   subject,
		levels:    catalog.ShooterLevels(),
		phase:     ShooterPhaseReady,
		levelSecs: levelSecs,
		rng:       rng,
		policy:    policy,
		logger:    logger.With().Str("component", "shooter_engine").Logger(),
	}
}

func (e *ShooterEngine) ID() uuid.UUID   { return e.id }
func (e *ShooterEngine) Variant() string { return VariantFractionShooter }
func (e *ShooterEngine) Subject() string { return e.subject }

// StartLevel begins the countdown for the current level.
func (e *ShooterEngine) StartLevel() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed || e.phase == ShooterPhaseComplete {
		return ErrSessionComplete
	}
	if e.phase == ShooterPhasePlaying {
		return ErrInvalidSelection
	}
	e.phase = ShooterPhasePlaying
	e.balloons = nil
	e.timeLeft = e.levelSecs
	e.levelStart = e.score
	return nil
}

// ReplayLevel restarts the current level and restores the score it
// started with.
func (e *ShooterEngine) ReplayLevel() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed || e.phase == ShooterPhaseComplete {
		return ErrSessionComplete
	}
	e.score = e.levelStart
	e.phase = ShooterPhasePlaying
	e.balloons = nil
	e.timeLeft = e.levelSecs
	return nil
}

// NextLevel advances past a completed level. It reports whether the
// whole game finished.
func (e *ShooterEngine) NextLevel() (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed || e.phase == ShooterPhaseComplete {
		return true, ErrSessionComplete
	}
	if e.phase != ShooterPhaseLevelComplete {
		return false, ErrInvalidSelection
	}
	if e.levelIdx >= len(e.levels)-1 {
		e.phase = ShooterPhaseComplete
		return true, nil
	}
	e.levelIdx++
	e.phase = ShooterPhaseReady
	return false, nil
}

// HitOutcome reports the effect of shooting one balloon.
type HitOutcome struct {
	Target     bool `json:"target"`
	ScoreDelta int  `json:"score_delta"`
	Score      int  `json:"score"`
}

// Hit pops a balloon. Popping a target-equivalent fraction rewards,
// anything else penalizes.
func (e *ShooterEngine) Hit(balloonID string) (HitOutcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed || e.phase == ShooterPhaseComplete {
		return HitOutcome{}, ErrSessionComplete
	}
	if e.phase != ShooterPhasePlaying {
		return HitOutcome{}, ErrInvalidSelection
	}

	idx := -1
	for i := range e.balloons {
		if e.balloons[i].ID == balloonID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return HitOutcome{}, ErrInvalidSelection
	}

	target := e.isTarget(e.balloons[idx].Value)
	e.balloons = append(e.balloons[:idx], e.balloons[idx+1:]...)

	delta := e.policy.ShooterHitDelta(target)
	e.score += delta
	return HitOutcome{Target: target, ScoreDelta: delta, Score: e.score}, nil
}

// AdvanceOutcome reports the effect of one physics frame.
type AdvanceOutcome struct {
	Escaped    int `json:"escaped"`
	ScoreDelta int `json:"score_delta"`
	Score      int `json:"score"`
}

// Advance steps the field by the given number of frames: balloons rise,
// target-equivalent escapes are penalized, and new balloons may spawn.
func (e *ShooterEngine) Advance(frames int) AdvanceOutcome {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := AdvanceOutcome{Score: e.score}
	if e.closed || e.phase != ShooterPhasePlaying {
		return out
	}

	for f := 0; f < frames; f++ {
		kept := e.balloons[:0]
		for _, b := range e.balloons {
			b.Y -= b.Speed
			if b.Y < shooterEscapeY {
				if e.isTarget(b.Value) {
					out.Escaped++
				}
				continue
			}
			kept = append(kept, b)
		}
		e.balloons = kept

		if e.rng.Float64() < shooterSpawnChance {
			e.spawn()
		}
	}

	if out.Escaped > 0 {
		out.ScoreDelta = e.policy.ShooterEscapeDelta(out.Escaped)
		e.score += out.ScoreDelta
	}
	out.Score = e.score
	return out
}

// TickSecond decrements the level countdown. Reaching zero is the sole
// level terminator.
func (e *ShooterEngine) TickSecond() (timeLeft int, levelDone bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed || e.phase != ShooterPhasePlaying {
		return e.timeLeft, false
	}
	e.timeLeft--
	if e.timeLeft <= 0 {
		e.timeLeft = 0
		e.phase = ShooterPhaseLevelComplete
		e.balloons = nil
		return 0, true
	}
	return e.timeLeft, false
}

func (e *ShooterEngine) spawn() {
	level := e.levels[e.levelIdx]
	if len(level.Pool) == 0 {
		return
	}
	f := level.Pool[e.rng.Intn(len(level.Pool))]
	e.balloons = append(e.balloons, Balloon{
		ID:      uuid.NewString(),
		Display: f.Display,
		Value:   f.Value,
		X:       shooterMinX + e.rng.Float64()*(shooterMaxX-shooterMinX),
		Y:       shooterSpawnY,
		Speed:   shooterMinSpeed + e.rng.Float64()*(shooterMaxSpeed-shooterMinSpeed),
		Color:   balloonColors[e.rng.Intn(len(balloonColors))],
	})
}

// isTarget compares fraction values within epsilon so that distinct
// renderings of the target ratio all count.
func (e *ShooterEngine) isTarget(value float64) bool {
	return math.Abs(value-e.levels[e.levelIdx].Target.Value) < shooterEpsilon
}

func (e *ShooterEngine) IsComplete() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.phase == ShooterPhaseComplete
}

func (e *ShooterEngine) Finalize() Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.finalized {
		return e.result
	}
	e.finalized = true
	score, points := e.policy.ShooterFinal(e.score)
	e.result = Result{Score: score, Points: points}
	return e.result
}

func (e *ShooterEngine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
}

// ShooterState is the client-facing snapshot of a shooter session.
type ShooterState struct {
	SessionID string    `json:"session_id"`
	Variant   string    `json:"variant"`
	Subject   string    `json:"subject"`
	Phase     string    `json:"phase"`
	Level     int       `json:"level"`
	Levels    int       `json:"levels"`
	Target    string    `json:"target"`
	TimeLeft  int       `json:"time_left"`
	Score     int       `json:"score"`
	Balloons  []Balloon `json:"balloons"`
}

func (e *ShooterEngine) State() any {
	e.mu.Lock()
	defer e.mu.Unlock()

	balloons := make([]Balloon, len(e.balloons))
	copy(balloons, e.balloons)

	return ShooterState{
		SessionID: e.id.String(),
		Variant:   VariantFractionShooter,
		Subject:   e.subject,
		Phase:     e.phase,
		Level:     e.levels[e.levelIdx].Level,
		Levels:    len(e.levels),
		Target:    e.levels[e.levelIdx].Target.Display,
		TimeLeft:  e.timeLeft,
		Score:     e.score,
		Balloons:  balloons,
	}
}
