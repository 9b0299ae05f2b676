package game

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mindplayhq/mindplay-server/internal/content"
	"github.com/mindplayhq/mindplay-server/internal/game/scoring"
)

// quizItem is one sequential prompt. True/false statements are folded
// into the same shape with a two-option answer set.
type quizItem struct {
	Prompt      string
	Options     []string
	Correct     int
	Explanation string
}

// QuizEngine runs the sequential answer variants: multiple choice and
// true/false. After each submission the correct answer is revealed and
// input stays locked until the engine advances to the next item.
type QuizEngine struct {
	mu sync.Mutex

	id      uuid.UUID
	variant string
	subject string
	chapter string

	items []quizItem
	index int

	correct int
	points  int
	locked  bool

	clock       Clock
	revealDelay time.Duration
	revealTimer Timer

	policy *scoring.Policy
	logger zerolog.Logger

	closed    bool
	finalized bool
	result    Result
}

// NewQuizEngine builds a multiple choice session from the catalog.
func NewQuizEngine(catalog *content.Catalog, subject, chapter string, revealDelay time.Duration, clock Clock, policy *scoring.Policy, logger zerolog.Logger) *QuizEngine {
	questions := catalog.Questions(subject, chapter)
	items := make([]quizItem, 0, len(questions))
	for _, q := range questions {
		items = append(items, quizItem{
			Prompt:      q.Prompt,
			Options:     q.Options,
			Correct:     q.Correct,
			Explanation: q.Explanation,
		})
	}
	return newQuizEngine(VariantQuiz, subject, chapter, items, revealDelay, clock, policy, logger)
}

// NewTrueFalseEngine builds a true/false session from the catalog.
func NewTrueFalseEngine(catalog *content.Catalog, subject string, limit int, revealDelay time.Duration, clock Clock, policy *scoring.Policy, logger zerolog.Logger) *QuizEngine {
	statements := catalog.TrueFalse(subject, limit)
	items := make([]quizItem, 0, len(statements))
	for _, s := range statements {
		correct := 1
		if s.Answer {
			correct = 0
		}
		items = append(items, quizItem{
			Prompt:  s.Statement,
			Options: []string{"True", "False"},
			Correct: correct,
		})
	}
	return newQuizEngine(VariantTrueFalse, subject, "", items, revealDelay, clock, policy, logger)
}

func newQuizEngine(variant, subject, chapter string, items []quizItem, revealDelay time.Duration, clock Clock, policy *scoring.Policy, logger zerolog.Logger) *QuizEngine {
	if revealDelay <= 0 {
		revealDelay = 2 * time.Second
	}
	if clock == nil {
		clock = RealClock()
	}
	if policy == nil {
		policy = scoring.NewPolicy(scoring.DefaultConfig())
	}
	return &QuizEngine{
		id:          uuid.New(),
		variant:     variant,
		subject:     subject,
		chapter:     chapter,
		items:       items,
		clock:       clock,
		revealDelay: revealDelay,
		policy:      policy,
		logger:      logger.With().Str("component", "quiz_engine").Str("variant", variant).Logger(),
	}
}

func (e *QuizEngine) ID() uuid.UUID   { return e.id }
func (e *QuizEngine) Variant() string { return e.variant }
func (e *QuizEngine) Subject() string { return e.subject }

// Submit records an answer for the current item. The index advances
// only after the reveal delay elapses; submissions arriving during the
// reveal window return ErrInputLocked.
func (e *QuizEngine) Submit(option int) (AnswerOutcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed || e.isCompleteLocked() {
		return AnswerOutcome{}, ErrSessionComplete
	}
	if e.locked {
		return AnswerOutcome{}, ErrInputLocked
	}

	item := e.items[e.index]
	if option < 0 || option >= len(item.Options) {
		return AnswerOutcome{}, ErrInvalidSelection
	}

	outcome := AnswerOutcome{
		CorrectAnswer: item.Options[item.Correct],
		Explanation:   item.Explanation,
	}
	if option == item.Correct {
		outcome.Correct = true
		e.correct++
		switch e.variant {
		case VariantTrueFalse:
			outcome.ScoreDelta = e.policy.TrueFalseDelta(true)
		default:
			outcome.ScoreDelta = e.policy.QuizDelta(true)
		}
		e.points += outcome.ScoreDelta
	}

	e.locked = true
	outcome.Complete = e.index == len(e.items)-1
	e.revealTimer = e.clock.AfterFunc(e.revealDelay, e.advance)
	return outcome, nil
}

// advance runs on timer expiry and unlocks the next item.
func (e *QuizEngine) advance() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed || !e.locked {
		return
	}
	e.index++
	e.locked = false
	e.revealTimer = nil
}

func (e *QuizEngine) IsComplete() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.isCompleteLocked()
}

// Completion counts a locked final item: once the last answer is in,
// the pending reveal no longer gates the result.
func (e *QuizEngine) isCompleteLocked() bool {
	if e.index >= len(e.items) {
		return true
	}
	return e.locked && e.index == len(e.items)-1
}

func (e *QuizEngine) Finalize() Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.finalized {
		return e.result
	}
	e.finalized = true
	score, points := e.policy.QuizFinal(e.correct, e.points)
	e.result = Result{Score: score, Points: points}
	return e.result
}

func (e *QuizEngine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.closed = true
	if e.revealTimer != nil {
		e.revealTimer.Stop()
		e.revealTimer = nil
	}
}

// QuizState is the client-facing snapshot of a sequential session.
type QuizState struct {
	SessionID string   `json:"session_id"`
	Variant   string   `json:"variant"`
	Subject   string   `json:"subject"`
	Chapter   string   `json:"chapter,omitempty"`
	Index     int      `json:"index"`
	Total     int      `json:"total"`
	Prompt    string   `json:"prompt,omitempty"`
	Options   []string `json:"options,omitempty"`
	Score     int      `json:"score"`
	Locked    bool     `json:"locked"`
	Complete  bool     `json:"complete"`
}

func (e *QuizEngine) State() any {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := QuizState{
		SessionID: e.id.String(),
		Variant:   e.variant,
		Subject:   e.subject,
		Chapter:   e.chapter,
		Index:     e.index,
		Total:     len(e.items),
		Score:     e.points,
		Locked:    e.locked,
		Complete:  e.isCompleteLocked(),
	}
	if e.index < len(e.items) {
		item := e.items[e.index]
		st.Prompt = item.Prompt
		st.Options = item.Options
	}
	return st
}
