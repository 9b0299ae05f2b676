package game

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/mindplayhq/mindplay-server/internal/content"
	"github.com/mindplayhq/mindplay-server/internal/game/scoring"
)

func newTestQuiz(t *testing.T) (*QuizEngine, []content.Question, *ManualClock) {
	t.Helper()
	catalog := content.NewCatalog()
	clock := NewManualClock(time.Unix(0, 0))
	engine := NewQuizEngine(catalog, content.SubjectMath, "algebra", 2*time.Second, clock, scoring.NewPolicy(scoring.DefaultConfig()), zerolog.Nop())
	return engine, catalog.Questions(content.SubjectMath, "algebra"), clock
}

func TestQuizCorrectAnswerScoresAndLocks(t *testing.T) {
	engine, questions, clock := newTestQuiz(t)

	outcome, err := engine.Submit(questions[0].Correct)
	assert.NoError(t, err)
	assert.True(t, outcome.Correct)
	assert.Equal(t, 10, outcome.ScoreDelta)
	assert.Equal(t, questions[0].Options[questions[0].Correct], outcome.CorrectAnswer)

	// Input stays locked until the reveal window passes.
	_, err = engine.Submit(questions[0].Correct)
	assert.ErrorIs(t, err, ErrInputLocked)

	clock.Advance(2 * time.Second)

	state := engine.State().(QuizState)
	assert.Equal(t, 1, state.Index)
	assert.False(t, state.Locked)
	assert.Equal(t, 10, state.Score)
}

func TestQuizWrongAnswerRevealsWithoutScoring(t *testing.T) {
	engine, questions, clock := newTestQuiz(t)

	wrong := (questions[0].Correct + 1) % len(questions[0].Options)
	outcome, err := engine.Submit(wrong)
	assert.NoError(t, err)
	assert.False(t, outcome.Correct)
	assert.Equal(t, 0, outcome.ScoreDelta)
	assert.Equal(t, questions[0].Options[questions[0].Correct], outcome.CorrectAnswer)
	assert.Equal(t, questions[0].Explanation, outcome.Explanation)

	clock.Advance(2 * time.Second)
	state := engine.State().(QuizState)
	assert.Equal(t, 0, state.Score)
	assert.Equal(t, 1, state.Index)
}

func TestQuizInvalidOption(t *testing.T) {
	engine, questions, _ := newTestQuiz(t)

	_, err := engine.Submit(len(questions[0].Options))
	assert.ErrorIs(t, err, ErrInvalidSelection)
	_, err = engine.Submit(-1)
	assert.ErrorIs(t, err, ErrInvalidSelection)
}

func TestQuizCompletionAndIdempotentFinalize(t *testing.T) {
	engine, questions, clock := newTestQuiz(t)

	for i, q := range questions {
		outcome, err := engine.Submit(q.Correct)
		assert.NoError(t, err)
		assert.True(t, outcome.Correct)
		if i == len(questions)-1 {
			assert.True(t, outcome.Complete)
		}
		clock.Advance(2 * time.Second)
	}

	assert.True(t, engine.IsComplete())

	first := engine.Finalize()
	assert.Equal(t, len(questions), first.Score)
	assert.Equal(t, len(questions)*10, first.Points)
	assert.Equal(t, first, engine.Finalize())

	_, err := engine.Submit(0)
	assert.ErrorIs(t, err, ErrSessionComplete)
}

func TestQuizCompleteWhileFinalRevealPending(t *testing.T) {
	engine, questions, clock := newTestQuiz(t)

	for range questions[:len(questions)-1] {
		_, err := engine.Submit(0)
		assert.NoError(t, err)
		clock.Advance(2 * time.Second)
	}

	_, err := engine.Submit(questions[len(questions)-1].Correct)
	assert.NoError(t, err)
	// The last answer is in; the pending reveal no longer gates the result.
	assert.True(t, engine.IsComplete())
}

func TestTrueFalseScoring(t *testing.T) {
	catalog := content.NewCatalog()
	clock := NewManualClock(time.Unix(0, 0))
	engine := NewTrueFalseEngine(catalog, content.SubjectScience, 3, 2*time.Second, clock, nil, zerolog.Nop())

	statements := catalog.TrueFalse(content.SubjectScience, 3)
	option := 1
	if statements[0].Answer {
		option = 0
	}

	outcome, err := engine.Submit(option)
	assert.NoError(t, err)
	assert.True(t, outcome.Correct)
	assert.Equal(t, 8, outcome.ScoreDelta)
}

func TestQuizCloseCancelsPendingAdvance(t *testing.T) {
	engine, questions, clock := newTestQuiz(t)

	_, err := engine.Submit(questions[0].Correct)
	assert.NoError(t, err)

	engine.Close()
	clock.Advance(2 * time.Second)

	_, err = engine.Submit(0)
	assert.ErrorIs(t, err, ErrSessionComplete)
}
