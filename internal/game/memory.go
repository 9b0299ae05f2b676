package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mindplayhq/mindplay-server/internal/content"
	"github.com/mindplayhq/mindplay-server/internal/game/scoring"
)

type memoryCard struct {
	Value    string
	FaceUp   bool
	Resolved bool
}

// MemoryEngine runs the concentration variant. Each source pair yields
// two cards shuffled into one deck. Flipping a second card counts a
// move and schedules an evaluation; until it runs, further flips are
// locked.
type MemoryEngine struct {
	mu sync.Mutex

	id      uuid.UUID
	subject string

	cards     []memoryCard
	pairTable []content.MatchPair
	faceUp    []int
	moves     int
	matched   int
	pairs     int

	clock      Clock
	flipDelay  time.Duration
	flipTimer  Timer
	evaluating bool

	policy *scoring.Policy
	logger zerolog.Logger

	finalized bool
	result    Result
	closed    bool
}

// NewMemoryEngine builds a memory-match session from the catalog.
func NewMemoryEngine(catalog *content.Catalog, subject string, flipDelay time.Duration, rng *rand.Rand, clock Clock, policy *scoring.Policy, logger zerolog.Logger) *MemoryEngine {
	if flipDelay <= 0 {
		flipDelay = time.Second
	}
	if clock == nil {
		clock = RealClock()
	}
	if policy == nil {
		policy = scoring.NewPolicy(scoring.DefaultConfig())
	}

	pairs := catalog.MemoryPairs(subject)
	cards := make([]memoryCard, 0, len(pairs)*2)
	for _, p := range pairs {
		cards = append(cards,
			memoryCard{Value: p.Prompt},
			memoryCard{Value: p.Answer},
		)
	}
	shuffle := rand.Shuffle
	if rng != nil {
		shuffle = rng.Shuffle
	}
	shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	return &MemoryEngine{
		id:        uuid.New(),
		subject:   subject,
		cards:     cards,
		pairTable: pairs,
		pairs:     len(pairs),
		clock:     clock,
		flipDelay: flipDelay,
		policy:    policy,
		logger:    logger.With().Str("component", "memory_engine").Logger(),
	}
}

func (e *MemoryEngine) ID() uuid.UUID   { return e.id }
func (e *MemoryEngine) Variant() string { return VariantMemoryMatch }
func (e *MemoryEngine) Subject() string { return e.subject }

// FlipOutcome reports the effect of flipping one card.
type FlipOutcome struct {
	// Evaluating is set when this flip completed a pair and the
	// match check is pending.
	Evaluating bool `json:"evaluating"`
	Moves      int  `json:"moves"`
	Matched    int  `json:"matched"`
	Complete   bool `json:"complete"`
}

// Flip turns a card face up. The second card of an attempt counts one
// move and locks input until the scheduled evaluation either resolves
// the pair or turns both cards back down.
func (e *MemoryEngine) Flip(index int) (FlipOutcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed || e.matched == e.pairs {
		return FlipOutcome{}, ErrSessionComplete
	}
	if e.evaluating {
		return FlipOutcome{}, ErrInputLocked
	}
	if index < 0 || index >= len(e.cards) {
		return FlipOutcome{}, ErrInvalidSelection
	}
	card := &e.cards[index]
	if card.FaceUp || card.Resolved {
		return FlipOutcome{}, ErrInvalidSelection
	}

	card.FaceUp = true
	e.faceUp = append(e.faceUp, index)

	outcome := FlipOutcome{Moves: e.moves, Matched: e.matched}
	if len(e.faceUp) == 2 {
		e.moves++
		e.evaluating = true
		outcome.Moves = e.moves
		outcome.Evaluating = true
		e.flipTimer = e.clock.AfterFunc(e.flipDelay, e.evaluate)
	}
	return outcome, nil
}

// evaluate runs on timer expiry and settles the current attempt.
func (e *MemoryEngine) evaluate() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed || len(e.faceUp) != 2 {
		return
	}
	a, b := &e.cards[e.faceUp[0]], &e.cards[e.faceUp[1]]
	if e.isPair(a.Value, b.Value) {
		a.Resolved = true
		b.Resolved = true
		e.matched++
	} else {
		a.FaceUp = false
		b.FaceUp = false
	}
	e.faceUp = e.faceUp[:0]
	e.evaluating = false
	e.flipTimer = nil
}

// isPair holds when the two values form any (prompt, answer) pair from
// the source table, in either order. Duplicate values across pairs
// therefore interchange: any content-equivalent partner resolves.
func (e *MemoryEngine) isPair(a, b string) bool {
	for _, p := range e.pairTable {
		if (a == p.Prompt && b == p.Answer) || (a == p.Answer && b == p.Prompt) {
			return true
		}
	}
	return false
}

func (e *MemoryEngine) IsComplete() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.matched == e.pairs
}

// Moves reports how many evaluated pair attempts were made.
func (e *MemoryEngine) Moves() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.moves
}

func (e *MemoryEngine) Finalize() Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.finalized {
		return e.result
	}
	e.finalized = true
	score, points := e.policy.MemoryFinal(e.moves)
	e.result = Result{Score: score, Points: points}
	return e.result
}

func (e *MemoryEngine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.closed = true
	if e.flipTimer != nil {
		e.flipTimer.Stop()
		e.flipTimer = nil
	}
}

// MemoryState is the client-facing snapshot of a memory session.
type MemoryState struct {
	SessionID string           `json:"session_id"`
	Variant   string           `json:"variant"`
	Subject   string           `json:"subject"`
	Cards     []MemoryCardView `json:"cards"`
	Moves     int              `json:"moves"`
	Matched   int              `json:"matched"`
	Pairs     int              `json:"pairs"`
	Complete  bool             `json:"complete"`
}

// MemoryCardView hides face-down values from the client.
type MemoryCardView struct {
	Value    string `json:"value,omitempty"`
	FaceUp   bool   `json:"face_up"`
	Resolved bool   `json:"resolved"`
}

func (e *MemoryEngine) State() any {
	e.mu.Lock()
	defer e.mu.Unlock()

	cards := make([]MemoryCardView, len(e.cards))
	for i, c := range e.cards {
		view := MemoryCardView{FaceUp: c.FaceUp, Resolved: c.Resolved}
		if c.FaceUp || c.Resolved {
			view.Value = c.Value
		}
		cards[i] = view
	}

	return MemoryState{
		SessionID: e.id.String(),
		Variant:   VariantMemoryMatch,
		Subject:   e.subject,
		Cards:     cards,
		Moves:     e.moves,
		Matched:   e.matched,
		Pairs:     e.pairs,
		Complete:  e.matched == e.pairs,
	}
}
