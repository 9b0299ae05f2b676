package game

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/mindplayhq/mindplay-server/internal/content"
)

func newTestWords(t *testing.T) (*WordEngine, []content.WordItem, *ManualClock) {
	t.Helper()
	catalog := content.NewCatalog()
	clock := NewManualClock(time.Unix(0, 0))
	rng := rand.New(rand.NewSource(11))
	engine := NewWordEngine(catalog, content.SubjectMath, 2*time.Second, rng, clock, nil, zerolog.Nop())
	return engine, catalog.Words(content.SubjectMath), clock
}

func TestWordScrambleIsNotIdentity(t *testing.T) {
	engine, words, _ := newTestWords(t)

	for i := range words {
		state := engine.State().(WordState)
		assert.NotEqual(t, words[i].Word, state.Scrambled)
		assert.Equal(t, len(words[i].Word), len(state.Scrambled))
		_, err := engine.Skip()
		assert.NoError(t, err)
	}
}

func TestWordCorrectGuessAdvancesImmediately(t *testing.T) {
	engine, words, _ := newTestWords(t)

	// Case differences are ignored.
	outcome, err := engine.Submit(strings.ToUpper(words[0].Word))
	assert.NoError(t, err)
	assert.True(t, outcome.Correct)
	assert.Equal(t, 10, outcome.ScoreDelta)

	state := engine.State().(WordState)
	assert.Equal(t, 1, state.Index)
	assert.Equal(t, 10, state.Score)
	assert.False(t, state.Locked)
}

func TestWordWrongGuessRevealsThenAdvances(t *testing.T) {
	engine, words, clock := newTestWords(t)

	outcome, err := engine.Submit("definitely-wrong")
	assert.NoError(t, err)
	assert.False(t, outcome.Correct)
	assert.Equal(t, words[0].Word, outcome.CorrectAnswer)

	_, err = engine.Submit(words[0].Word)
	assert.ErrorIs(t, err, ErrInputLocked)
	_, err = engine.Skip()
	assert.ErrorIs(t, err, ErrInputLocked)

	clock.Advance(2 * time.Second)
	state := engine.State().(WordState)
	assert.Equal(t, 1, state.Index)
	assert.Equal(t, 0, state.Score)
}

func TestWordEmptyGuessRejected(t *testing.T) {
	engine, _, _ := newTestWords(t)

	_, err := engine.Submit("   ")
	assert.ErrorIs(t, err, ErrInvalidSelection)
}

func TestWordFinalScoring(t *testing.T) {
	engine, words, _ := newTestWords(t)
	assert.Len(t, words, 8)

	// Six correct answers, two skips.
	for i, w := range words {
		if i < 6 {
			outcome, err := engine.Submit(w.Word)
			assert.NoError(t, err)
			assert.True(t, outcome.Correct)
		} else {
			_, err := engine.Skip()
			assert.NoError(t, err)
		}
	}

	assert.True(t, engine.IsComplete())
	result := engine.Finalize()
	assert.Equal(t, 75, result.Score)
	assert.Equal(t, 150, result.Points)
	assert.Equal(t, result, engine.Finalize())

	_, err := engine.Submit(words[0].Word)
	assert.ErrorIs(t, err, ErrSessionComplete)
}
