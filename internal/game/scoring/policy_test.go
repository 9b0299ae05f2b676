package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeltas(t *testing.T) {
	p := NewPolicy(DefaultConfig())

	assert.Equal(t, 10, p.QuizDelta(true))
	assert.Equal(t, 0, p.QuizDelta(false))
	assert.Equal(t, 8, p.TrueFalseDelta(true))
	assert.Equal(t, 5, p.TileMatchDelta(true))
	assert.Equal(t, 0, p.TileMatchDelta(false))
	assert.Equal(t, 10, p.WordDelta(true))
	assert.Equal(t, 10, p.ShooterHitDelta(true))
	assert.Equal(t, -5, p.ShooterHitDelta(false))
	assert.Equal(t, -6, p.ShooterEscapeDelta(3))
}

func TestMemoryFinal(t *testing.T) {
	p := NewPolicy(DefaultConfig())

	score, points := p.MemoryFinal(10)
	assert.Equal(t, 80, score)
	assert.Equal(t, 160, points)

	// Floor kicks in for sloppy runs.
	score, points = p.MemoryFinal(30)
	assert.Equal(t, 60, score)
	assert.Equal(t, 120, points)
}

func TestWordFinal(t *testing.T) {
	p := NewPolicy(DefaultConfig())

	score, points := p.WordFinal(6, 8)
	assert.Equal(t, 75, score)
	assert.Equal(t, 150, points)

	score, points = p.WordFinal(0, 8)
	assert.Equal(t, 0, score)
	assert.Equal(t, 0, points)

	score, points = p.WordFinal(3, 0)
	assert.Equal(t, 0, score)
	assert.Equal(t, 0, points)
}

func TestShooterFinalClampsPoints(t *testing.T) {
	p := NewPolicy(DefaultConfig())

	score, points := p.ShooterFinal(-14)
	assert.Equal(t, -14, score)
	assert.Equal(t, 0, points)

	score, points = p.ShooterFinal(120)
	assert.Equal(t, 120, score)
	assert.Equal(t, 120, points)
}

func TestZeroConfigFallsBackToDefaults(t *testing.T) {
	p := NewPolicy(Config{})
	assert.Equal(t, 10, p.QuizDelta(true))
	assert.Equal(t, 8, p.TrueFalseDelta(true))
}
