package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/mindplayhq/mindplay-server/internal/content"
)

func newTestMemory(t *testing.T) (*MemoryEngine, []content.MatchPair, *ManualClock) {
	t.Helper()
	catalog := content.NewCatalog()
	clock := NewManualClock(time.Unix(0, 0))
	rng := rand.New(rand.NewSource(7))
	engine := NewMemoryEngine(catalog, content.SubjectMath, time.Second, rng, clock, nil, zerolog.Nop())
	return engine, catalog.MemoryPairs(content.SubjectMath), clock
}

// isContentPair mirrors the game rule: two values match when they form
// any (prompt, answer) pair from the table, in either order.
func isContentPair(pairs []content.MatchPair, a, b string) bool {
	for _, p := range pairs {
		if (a == p.Prompt && b == p.Answer) || (a == p.Answer && b == p.Prompt) {
			return true
		}
	}
	return false
}

// cardIndex returns the position of the nth card holding a value.
func cardIndex(e *MemoryEngine, value string, nth int) int {
	seen := 0
	for i, c := range e.cards {
		if c.Value == value {
			if seen == nth {
				return i
			}
			seen++
		}
	}
	return -1
}

func TestMemorySecondFlipCountsMoveAndLocks(t *testing.T) {
	engine, _, clock := newTestMemory(t)

	outcome, err := engine.Flip(0)
	assert.NoError(t, err)
	assert.False(t, outcome.Evaluating)
	assert.Equal(t, 0, outcome.Moves)

	outcome, err = engine.Flip(1)
	assert.NoError(t, err)
	assert.True(t, outcome.Evaluating)
	assert.Equal(t, 1, outcome.Moves)

	// Third flip is rejected until the evaluation runs.
	_, err = engine.Flip(2)
	assert.ErrorIs(t, err, ErrInputLocked)

	clock.Advance(time.Second)
	_, err = engine.Flip(2)
	assert.NoError(t, err)
}

func TestMemoryMismatchFlipsBackMatchResolves(t *testing.T) {
	engine, pairs, clock := newTestMemory(t)

	state := engine.State().(MemoryState)
	assert.Len(t, state.Cards, 16)

	_, err := engine.Flip(0)
	assert.NoError(t, err)
	first := engine.State().(MemoryState).Cards[0].Value

	// Find a partner by trying candidates; failed attempts must flip
	// both cards face down again.
	matched := false
	for j := 1; j < len(state.Cards) && !matched; j++ {
		if _, err := engine.Flip(j); err != nil {
			continue
		}
		second := engine.State().(MemoryState).Cards[j].Value
		isMatch := isContentPair(pairs, first, second)
		clock.Advance(time.Second)

		after := engine.State().(MemoryState)
		if isMatch {
			assert.True(t, after.Cards[0].Resolved)
			assert.True(t, after.Cards[j].Resolved)
			assert.Equal(t, 1, after.Matched)
			matched = true
		} else {
			assert.False(t, after.Cards[0].FaceUp)
			assert.False(t, after.Cards[j].FaceUp)
			_, err := engine.Flip(0)
			assert.NoError(t, err)
		}
	}
	assert.True(t, matched)
}

// The math table repeats answers across pairs ("4" twice, "5" three
// times). A card matches any pair it completes by content, so either
// "4" resolves against "√16" regardless of which pair produced it.
func TestMemoryDuplicateValuesInterchange(t *testing.T) {
	catalog := content.NewCatalog()
	for nth := 0; nth < 2; nth++ {
		clock := NewManualClock(time.Unix(0, 0))
		rng := rand.New(rand.NewSource(7))
		engine := NewMemoryEngine(catalog, content.SubjectMath, time.Second, rng, clock, nil, zerolog.Nop())

		root := cardIndex(engine, "√16", 0)
		four := cardIndex(engine, "4", nth)
		assert.GreaterOrEqual(t, root, 0)
		assert.GreaterOrEqual(t, four, 0)

		_, err := engine.Flip(root)
		assert.NoError(t, err)
		outcome, err := engine.Flip(four)
		assert.NoError(t, err)
		assert.True(t, outcome.Evaluating)
		clock.Advance(time.Second)

		after := engine.State().(MemoryState)
		assert.True(t, after.Cards[root].Resolved)
		assert.True(t, after.Cards[four].Resolved)
		assert.Equal(t, 1, after.Matched)
	}
}

// Two cards sharing a value do not form a pair; no table entry has
// prompt equal to answer.
func TestMemoryEqualValuesAreNotAPair(t *testing.T) {
	engine, _, clock := newTestMemory(t)

	first := cardIndex(engine, "5", 0)
	second := cardIndex(engine, "5", 1)
	assert.GreaterOrEqual(t, first, 0)
	assert.GreaterOrEqual(t, second, 0)

	_, err := engine.Flip(first)
	assert.NoError(t, err)
	_, err = engine.Flip(second)
	assert.NoError(t, err)
	clock.Advance(time.Second)

	after := engine.State().(MemoryState)
	assert.False(t, after.Cards[first].FaceUp)
	assert.False(t, after.Cards[second].FaceUp)
	assert.Equal(t, 0, after.Matched)
}

func TestMemoryFaceUpCardRejected(t *testing.T) {
	engine, _, _ := newTestMemory(t)

	_, err := engine.Flip(3)
	assert.NoError(t, err)
	_, err = engine.Flip(3)
	assert.ErrorIs(t, err, ErrInvalidSelection)
}

func TestMemoryFullGameScoring(t *testing.T) {
	engine, pairs, clock := newTestMemory(t)

	// Learn the deck by flipping it in adjacent pairs; a lucky learn
	// flip may already resolve. Values stay visible while both cards
	// are up.
	values := make([]string, 16)
	for i := 0; i < 16; i += 2 {
		_, err := engine.Flip(i)
		assert.NoError(t, err)
		_, err = engine.Flip(i + 1)
		assert.NoError(t, err)
		st := engine.State().(MemoryState)
		values[i] = st.Cards[i].Value
		values[i+1] = st.Cards[i+1].Value
		clock.Advance(time.Second)
	}

	// Sweep known partners. Every unresolved card always has a
	// content-equivalent partner left because prompts and answers never
	// collide in this table.
	for !engine.IsComplete() {
		st := engine.State().(MemoryState)
		first := -1
		for i, c := range st.Cards {
			if c.Resolved {
				continue
			}
			first = i
			break
		}
		partner := -1
		for j := first + 1; j < len(st.Cards); j++ {
			if st.Cards[j].Resolved {
				continue
			}
			if isContentPair(pairs, values[first], values[j]) {
				partner = j
				break
			}
		}
		if partner < 0 {
			t.Fatalf("no partner left for %q", values[first])
		}
		_, err := engine.Flip(first)
		assert.NoError(t, err)
		_, err = engine.Flip(partner)
		assert.NoError(t, err)
		clock.Advance(time.Second)
	}

	moves := engine.Moves()
	result := engine.Finalize()
	expected := 100 - 2*moves
	if expected < 60 {
		expected = 60
	}
	assert.Equal(t, expected, result.Score)
	assert.Equal(t, expected*2, result.Points)
	assert.Equal(t, result, engine.Finalize())

	_, err := engine.Flip(0)
	assert.ErrorIs(t, err, ErrSessionComplete)
}
