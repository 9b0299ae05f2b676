package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionsKnownChapter(t *testing.T) {
	c := NewCatalog()

	qs := c.Questions(SubjectMath, "algebra")
	assert.NotEmpty(t, qs)
	for _, q := range qs {
		assert.NotEmpty(t, q.Prompt)
		assert.Len(t, q.Options, 4)
		assert.GreaterOrEqual(t, q.Correct, 0)
		assert.Less(t, q.Correct, len(q.Options))
	}
}

func TestQuestionsUnknownChapterFallsBack(t *testing.T) {
	c := NewCatalog()

	qs := c.Questions(SubjectMath, "no-such-chapter")
	assert.Len(t, qs, 1)
	assert.Equal(t, "default", qs[0].ID)
	assert.Len(t, qs[0].Options, 4)
}

func TestTrueFalseLimitAndFallback(t *testing.T) {
	c := NewCatalog()

	items := c.TrueFalse(SubjectScience, 2)
	assert.Len(t, items, 2)

	fallback := c.TrueFalse("astrology", 0)
	assert.Equal(t, c.TrueFalse(SubjectMath, 0), fallback)
}

func TestMatchPairsFallback(t *testing.T) {
	c := NewCatalog()

	assert.NotEmpty(t, c.MatchPairs(SubjectEnglish))
	assert.Equal(t, c.MatchPairs("unknown"), matchPairBank[defaultSubjectKey])
}

func TestMemoryPairsPerSubject(t *testing.T) {
	c := NewCatalog()

	for _, subject := range c.Subjects() {
		pairs := c.MemoryPairs(subject)
		assert.Len(t, pairs, 8, "subject %s", subject)
	}
}

func TestWordsHaveHints(t *testing.T) {
	c := NewCatalog()

	for _, subject := range c.Subjects() {
		words := c.Words(subject)
		assert.NotEmpty(t, words)
		for _, w := range words {
			assert.NotEmpty(t, w.Word)
			assert.NotEmpty(t, w.Hint)
		}
	}
}

func TestShooterLevels(t *testing.T) {
	c := NewCatalog()

	levels := c.ShooterLevels()
	assert.Len(t, levels, 3)
	assert.InDelta(t, 0.5, levels[0].Target.Value, 1e-9)
	for _, level := range levels {
		assert.NotEmpty(t, level.Pool)
		// Every pool contains at least one rendering of the target value.
		found := false
		for _, f := range level.Pool {
			if f.Value == level.Target.Value {
				found = true
				break
			}
		}
		assert.True(t, found, "level %d pool lacks target", level.Level)
	}
}
