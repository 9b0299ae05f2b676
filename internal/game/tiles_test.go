package game

import (
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/mindplayhq/mindplay-server/internal/content"
)

func newTestTiles(t *testing.T) (*TileEngine, []content.MatchPair) {
	t.Helper()
	catalog := content.NewCatalog()
	rng := rand.New(rand.NewSource(42))
	engine := NewTileEngine(catalog, content.SubjectMath, rng, nil, zerolog.Nop())
	return engine, catalog.MatchPairs(content.SubjectMath)
}

// findTile locates a value in the engine's shuffled columns.
func findTile(t *testing.T, state TileState, value string) (string, int) {
	t.Helper()
	for i, tile := range state.Left {
		if tile.Value == value {
			return SideLeft, i
		}
	}
	for i, tile := range state.Right {
		if tile.Value == value {
			return SideRight, i
		}
	}
	t.Fatalf("tile %q not found", value)
	return "", 0
}

func TestTileMatchEitherClickOrder(t *testing.T) {
	engine, pairs := newTestTiles(t)
	state := engine.State().(TileState)

	// Answer side first, prompt side second.
	answerSide, answerIdx := findTile(t, state, pairs[0].Answer)
	promptSide, promptIdx := findTile(t, state, pairs[0].Prompt)

	outcome, err := engine.Select(answerSide, answerIdx)
	assert.NoError(t, err)
	assert.False(t, outcome.Resolved)

	outcome, err = engine.Select(promptSide, promptIdx)
	assert.NoError(t, err)
	assert.True(t, outcome.Resolved)
	assert.True(t, outcome.Matched)
	assert.Equal(t, 5, outcome.ScoreDelta)
	assert.Equal(t, len(pairs)-1, outcome.Remaining)
}

func TestTileMismatchKeepsPair(t *testing.T) {
	engine, pairs := newTestTiles(t)
	state := engine.State().(TileState)

	side1, idx1 := findTile(t, state, pairs[0].Prompt)
	side2, idx2 := findTile(t, state, pairs[1].Answer)

	_, err := engine.Select(side1, idx1)
	assert.NoError(t, err)
	outcome, err := engine.Select(side2, idx2)
	assert.NoError(t, err)
	assert.True(t, outcome.Resolved)
	assert.False(t, outcome.Matched)
	assert.Equal(t, 0, outcome.ScoreDelta)
	assert.Equal(t, len(pairs), engine.RemainingPairs())
}

func TestTileSameSideReplacesSelection(t *testing.T) {
	engine, pairs := newTestTiles(t)
	state := engine.State().(TileState)

	_, firstIdx := findTile(t, state, pairs[0].Prompt)
	_, secondIdx := findTile(t, state, pairs[1].Prompt)

	_, err := engine.Select(SideLeft, firstIdx)
	assert.NoError(t, err)
	outcome, err := engine.Select(SideLeft, secondIdx)
	assert.NoError(t, err)
	assert.False(t, outcome.Resolved)

	// The replaced selection pairs with the second prompt's answer.
	answerSide, answerIdx := findTile(t, state, pairs[1].Answer)
	outcome, err = engine.Select(answerSide, answerIdx)
	assert.NoError(t, err)
	assert.True(t, outcome.Matched)
}

func TestTileCompletionExhaustsAllPairs(t *testing.T) {
	engine, pairs := newTestTiles(t)
	state := engine.State().(TileState)

	for i, pair := range pairs {
		side, idx := findTile(t, state, pair.Prompt)
		_, err := engine.Select(side, idx)
		assert.NoError(t, err)
		side, idx = findTile(t, state, pair.Answer)
		outcome, err := engine.Select(side, idx)
		assert.NoError(t, err)
		assert.True(t, outcome.Matched)
		assert.Equal(t, i == len(pairs)-1, outcome.Complete)
	}

	assert.True(t, engine.IsComplete())
	assert.Equal(t, 0, engine.RemainingPairs())

	result := engine.Finalize()
	assert.Equal(t, len(pairs), result.Score)
	assert.Equal(t, len(pairs)*5, result.Points)

	_, err := engine.Select(SideLeft, 0)
	assert.ErrorIs(t, err, ErrSessionComplete)
}

func TestTileMatchedTileRejected(t *testing.T) {
	engine, pairs := newTestTiles(t)
	state := engine.State().(TileState)

	side, idx := findTile(t, state, pairs[0].Prompt)
	_, err := engine.Select(side, idx)
	assert.NoError(t, err)
	otherSide, otherIdx := findTile(t, state, pairs[0].Answer)
	_, err = engine.Select(otherSide, otherIdx)
	assert.NoError(t, err)

	_, err = engine.Select(side, idx)
	assert.ErrorIs(t, err, ErrInvalidSelection)
}
