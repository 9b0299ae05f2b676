package game

import (
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/mindplayhq/mindplay-server/internal/content"
)

func newTestShooter(t *testing.T) *ShooterEngine {
	t.Helper()
	catalog := content.NewCatalog()
	rng := rand.New(rand.NewSource(99))
	return NewShooterEngine(catalog, content.SubjectMath, 60, rng, nil, zerolog.Nop())
}

func spawnSome(t *testing.T, engine *ShooterEngine) ShooterState {
	t.Helper()
	for i := 0; i < 50; i++ {
		engine.Advance(20)
		state := engine.State().(ShooterState)
		if len(state.Balloons) > 0 {
			return state
		}
	}
	t.Fatal("no balloons spawned")
	return ShooterState{}
}

func TestShooterCountdownIsSoleLevelTerminator(t *testing.T) {
	engine := newTestShooter(t)
	assert.NoError(t, engine.StartLevel())

	state := engine.State().(ShooterState)
	assert.Equal(t, ShooterPhasePlaying, state.Phase)
	assert.Equal(t, 60, state.TimeLeft)

	for i := 0; i < 59; i++ {
		left, done := engine.TickSecond()
		assert.False(t, done)
		assert.Equal(t, 59-i, left)
	}
	left, done := engine.TickSecond()
	assert.True(t, done)
	assert.Equal(t, 0, left)

	state = engine.State().(ShooterState)
	assert.Equal(t, ShooterPhaseLevelComplete, state.Phase)
	assert.Empty(t, state.Balloons)
}

func TestShooterTargetEquivalenceEpsilon(t *testing.T) {
	engine := newTestShooter(t)
	assert.NoError(t, engine.StartLevel())

	// Level 1 target is 1/2.
	assert.True(t, engine.isTarget(0.5))
	assert.True(t, engine.isTarget(0.5049))
	assert.True(t, engine.isTarget(0.4951))
	assert.False(t, engine.isTarget(0.52))
	assert.False(t, engine.isTarget(0.333))
}

func TestShooterHitScoring(t *testing.T) {
	engine := newTestShooter(t)
	assert.NoError(t, engine.StartLevel())

	state := spawnSome(t, engine)
	balloon := state.Balloons[0]

	outcome, err := engine.Hit(balloon.ID)
	assert.NoError(t, err)
	if engine.isTarget(balloon.Value) {
		assert.True(t, outcome.Target)
		assert.Equal(t, 10, outcome.ScoreDelta)
	} else {
		assert.False(t, outcome.Target)
		assert.Equal(t, -5, outcome.ScoreDelta)
	}

	// A popped balloon cannot be hit twice.
	_, err = engine.Hit(balloon.ID)
	assert.ErrorIs(t, err, ErrInvalidSelection)
}

func TestShooterEscapePenalty(t *testing.T) {
	engine := newTestShooter(t)
	assert.NoError(t, engine.StartLevel())

	spawnSome(t, engine)
	before := engine.State().(ShooterState).Score

	var escaped, total int
	// Plenty of frames for every spawned balloon to cross the field.
	for i := 0; i < 20; i++ {
		out := engine.Advance(100)
		escaped += out.Escaped
		total += out.ScoreDelta
	}
	assert.Greater(t, escaped, 0)
	assert.Equal(t, -2*escaped, total)

	state := engine.State().(ShooterState)
	assert.Equal(t, before+total, state.Score)
}

func TestShooterLevelProgressionAndFinalize(t *testing.T) {
	engine := newTestShooter(t)

	for level := 0; level < 3; level++ {
		assert.NoError(t, engine.StartLevel())
		for i := 0; i < 60; i++ {
			engine.TickSecond()
		}
		done, err := engine.NextLevel()
		assert.NoError(t, err)
		assert.Equal(t, level == 2, done)
	}

	assert.True(t, engine.IsComplete())
	assert.Error(t, engine.StartLevel())

	result := engine.Finalize()
	if result.Score < 0 {
		assert.Equal(t, 0, result.Points)
	} else {
		assert.Equal(t, result.Score, result.Points)
	}
	assert.Equal(t, result, engine.Finalize())
}

func TestShooterReplayRestoresLevelScore(t *testing.T) {
	engine := newTestShooter(t)
	assert.NoError(t, engine.StartLevel())

	state := spawnSome(t, engine)
	_, err := engine.Hit(state.Balloons[0].ID)
	assert.NoError(t, err)

	assert.NoError(t, engine.ReplayLevel())
	after := engine.State().(ShooterState)
	assert.Equal(t, 0, after.Score)
	assert.Equal(t, 60, after.TimeLeft)
	assert.Empty(t, after.Balloons)
}

func TestShooterAdvanceIgnoredOutsidePlay(t *testing.T) {
	engine := newTestShooter(t)

	out := engine.Advance(100)
	assert.Zero(t, out.Escaped)
	state := engine.State().(ShooterState)
	assert.Empty(t, state.Balloons)
	assert.Equal(t, ShooterPhaseReady, state.Phase)
}
