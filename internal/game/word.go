package game

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mindplayhq/mindplay-server/internal/content"
	"github.com/mindplayhq/mindplay-server/internal/game/scoring"
)

// WordEngine runs the unscramble variant. A correct submission scores
// and advances immediately; a wrong one reveals the word and locks
// input for the reveal window. Skipping advances without reward.
type WordEngine struct {
	mu sync.Mutex

	id      uuid.UUID
	subject string

	items     []content.WordItem
	scrambled []string
	index     int

	correct int
	points  int
	locked  bool

	clock       Clock
	revealDelay time.Duration
	revealTimer Timer

	rng    *rand.Rand
	policy *scoring.Policy
	logger zerolog.Logger

	finalized bool
	result    Result
	closed    bool
}

// NewWordEngine builds a word-scramble session from the catalog.
func NewWordEngine(catalog *content.Catalog, subject string, revealDelay time.Duration, rng *rand.Rand, clock Clock, policy *scoring.Policy, logger zerolog.Logger) *WordEngine {
	if revealDelay <= 0 {
		revealDelay = 2 * time.Second
	}
	if clock == nil {
		clock = RealClock()
	}
	if policy == nil {
		policy = scoring.NewPolicy(scoring.DefaultConfig())
	}

	items := catalog.Words(subject)
	e := &WordEngine{
		id:          uuid.New(),
		subject:     subject,
		items:       items,
		scrambled:   make([]string, len(items)),
		clock:       clock,
		revealDelay: revealDelay,
		rng:         rng,
		policy:      policy,
		logger:      logger.With().Str("component", "word_engine").Logger(),
	}
	for i, item := range items {
		e.scrambled[i] = e.scramble(item.Word)
	}
	return e
}

// scramble shuffles the letters, rejecting the identity permutation for
// words longer than one rune.
func (e *WordEngine) scramble(word string) string {
	runes := []rune(word)
	if len(runes) < 2 {
		return word
	}

	shuffle := rand.Shuffle
	if e.rng != nil {
		shuffle = e.rng.Shuffle
	}
	for attempt := 0; attempt < 10; attempt++ {
		shuffle(len(runes), func(i, j int) {
			runes[i], runes[j] = runes[j], runes[i]
		})
		if string(runes) != word {
			return string(runes)
		}
	}
	// Any rotation of a non-uniform word differs from it; swapping the
	// first two runes handles the two-rune case.
	runes[0], runes[1] = runes[1], runes[0]
	return string(runes)
}

func (e *WordEngine) ID() uuid.UUID   { return e.id }
func (e *WordEngine) Variant() string { return VariantWordScramble }
func (e *WordEngine) Subject() string { return e.subject }

// Submit checks a guess against the current word, case-insensitively.
func (e *WordEngine) Submit(guess string) (AnswerOutcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed || e.index >= len(e.items) {
		return AnswerOutcome{}, ErrSessionComplete
	}
	if e.locked {
		return AnswerOutcome{}, ErrInputLocked
	}

	guess = strings.TrimSpace(guess)
	if guess == "" {
		return AnswerOutcome{}, ErrInvalidSelection
	}

	word := e.items[e.index].Word
	outcome := AnswerOutcome{CorrectAnswer: word}
	if strings.EqualFold(guess, word) {
		outcome.Correct = true
		outcome.ScoreDelta = e.policy.WordDelta(true)
		e.correct++
		e.points += outcome.ScoreDelta
		e.index++
		outcome.Complete = e.index == len(e.items)
		return outcome, nil
	}

	// Wrong guess reveals the word before moving on.
	e.locked = true
	outcome.Complete = e.index == len(e.items)-1
	e.revealTimer = e.clock.AfterFunc(e.revealDelay, e.advance)
	return outcome, nil
}

// Skip moves past the current word without reward. It is a no-op while
// a wrong-answer reveal is pending.
func (e *WordEngine) Skip() (AnswerOutcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed || e.index >= len(e.items) {
		return AnswerOutcome{}, ErrSessionComplete
	}
	if e.locked {
		return AnswerOutcome{}, ErrInputLocked
	}

	word := e.items[e.index].Word
	e.index++
	return AnswerOutcome{CorrectAnswer: word, Complete: e.index == len(e.items)}, nil
}

func (e *WordEngine) advance() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed || !e.locked {
		return
	}
	e.index++
	e.locked = false
	e.revealTimer = nil
}

func (e *WordEngine) IsComplete() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.isCompleteLocked()
}

func (e *WordEngine) isCompleteLocked() bool {
	if e.index >= len(e.items) {
		return true
	}
	return e.locked && e.index == len(e.items)-1
}

func (e *WordEngine) Finalize() Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.finalized {
		return e.result
	}
	e.finalized = true
	score, points := e.policy.WordFinal(e.correct, len(e.items))
	e.result = Result{Score: score, Points: points}
	return e.result
}

func (e *WordEngine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.closed = true
	if e.revealTimer != nil {
		e.revealTimer.Stop()
		e.revealTimer = nil
	}
}

// WordState is the client-facing snapshot of a scramble session.
type WordState struct {
	SessionID string `json:"session_id"`
	Variant   string `json:"variant"`
	Subject   string `json:"subject"`
	Index     int    `json:"index"`
	Total     int    `json:"total"`
	Scrambled string `json:"scrambled,omitempty"`
	Hint      string `json:"hint,omitempty"`
	Score     int    `json:"score"`
	Locked    bool   `json:"locked"`
	Complete  bool   `json:"complete"`
}

func (e *WordEngine) State() any {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := WordState{
		SessionID: e.id.String(),
		Variant:   VariantWordScramble,
		Subject:   e.subject,
		Index:     e.index,
		Total:     len(e.items),
		Score:     e.points,
		Locked:    e.locked,
		Complete:  e.isCompleteLocked(),
	}
	if e.index < len(e.items) {
		st.Scrambled = e.scrambled[e.index]
		st.Hint = e.items[e.index].Hint
	}
	return st
}
