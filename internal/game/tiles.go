package game

import (
	"math/rand"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mindplayhq/mindplay-server/internal/content"
	"github.com/mindplayhq/mindplay-server/internal/game/scoring"
)

// Tile sides.
const (
	SideLeft  = "left"
	SideRight = "right"
)

type tile struct {
	Value   string
	Matched bool
}

// TileEngine runs the two-column matching variant. Left holds prompts,
// right holds answers, both independently shuffled. A selection pair
// resolves as soon as one tile from each side is picked, in either
// click order.
type TileEngine struct {
	mu sync.Mutex

	id      uuid.UUID
	subject string

	left  []tile
	right []tile
	pairs map[string]string // prompt -> answer

	selectedSide  string
	selectedIndex int
	hasSelection  bool

	matches int
	points  int

	policy *scoring.Policy
	logger zerolog.Logger

	finalized bool
	result    Result
	closed    bool
}

// NewTileEngine builds a tile-matching session from the catalog.
func NewTileEngine(catalog *content.Catalog, subject string, rng *rand.Rand, policy *scoring.Policy, logger zerolog.Logger) *TileEngine {
	if policy == nil {
		policy = scoring.NewPolicy(scoring.DefaultConfig())
	}

	pairs := catalog.MatchPairs(subject)
	byPrompt := make(map[string]string, len(pairs))
	left := make([]tile, 0, len(pairs))
	right := make([]tile, 0, len(pairs))
	for _, p := range pairs {
		byPrompt[p.Prompt] = p.Answer
		left = append(left, tile{Value: p.Prompt})
		right = append(right, tile{Value: p.Answer})
	}
	shuffleTiles(left, rng)
	shuffleTiles(right, rng)

	return &TileEngine{
		id:      uuid.New(),
		subject: subject,
		left:    left,
		right:   right,
		pairs:   byPrompt,
		policy:  policy,
		logger:  logger.With().Str("component", "tile_engine").Logger(),
	}
}

func shuffleTiles(tiles []tile, rng *rand.Rand) {
	shuffle := rand.Shuffle
	if rng != nil {
		shuffle = rng.Shuffle
	}
	shuffle(len(tiles), func(i, j int) {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	})
}

func (e *TileEngine) ID() uuid.UUID   { return e.id }
func (e *TileEngine) Variant() string { return VariantTileMatch }
func (e *TileEngine) Subject() string { return e.subject }

// SelectOutcome reports the result of a single tile selection.
type SelectOutcome struct {
	// Resolved is set when this selection completed a pair attempt.
	Resolved   bool `json:"resolved"`
	Matched    bool `json:"matched"`
	ScoreDelta int  `json:"score_delta"`
	Remaining  int  `json:"remaining"`
	Complete   bool `json:"complete"`
}

// Select picks a tile. The first pick of a pair parks a selection; the
// second pick, on the opposite side, resolves the attempt. Picking a
// second tile on the same side replaces the parked selection.
func (e *TileEngine) Select(side string, index int) (SelectOutcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed || e.remainingLocked() == 0 {
		return SelectOutcome{}, ErrSessionComplete
	}

	column, err := e.column(side)
	if err != nil {
		return SelectOutcome{}, err
	}
	if index < 0 || index >= len(column) {
		return SelectOutcome{}, ErrInvalidSelection
	}
	if column[index].Matched {
		return SelectOutcome{}, ErrInvalidSelection
	}

	if !e.hasSelection || e.selectedSide == side {
		e.selectedSide = side
		e.selectedIndex = index
		e.hasSelection = true
		return SelectOutcome{Remaining: e.remainingLocked()}, nil
	}

	first, _ := e.column(e.selectedSide)
	outcome := SelectOutcome{Resolved: true}
	if e.isPair(first[e.selectedIndex].Value, column[index].Value) {
		first[e.selectedIndex].Matched = true
		column[index].Matched = true
		e.matches++
		outcome.Matched = true
		outcome.ScoreDelta = e.policy.TileMatchDelta(true)
		e.points += outcome.ScoreDelta
	}
	e.hasSelection = false

	outcome.Remaining = e.remainingLocked()
	outcome.Complete = outcome.Remaining == 0
	return outcome, nil
}

func (e *TileEngine) column(side string) ([]tile, error) {
	switch side {
	case SideLeft:
		return e.left, nil
	case SideRight:
		return e.right, nil
	default:
		return nil, ErrInvalidSelection
	}
}

// isPair holds for (prompt, answer) regardless of which side was
// clicked first.
func (e *TileEngine) isPair(a, b string) bool {
	if answer, ok := e.pairs[a]; ok && answer == b {
		return true
	}
	if answer, ok := e.pairs[b]; ok && answer == a {
		return true
	}
	return false
}

// RemainingPairs reports how many pairs are still unmatched.
func (e *TileEngine) RemainingPairs() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.remainingLocked()
}

func (e *TileEngine) remainingLocked() int {
	return len(e.pairs) - e.matches
}

// IsComplete is authoritative when every pair is matched, independent
// of any pending selection.
func (e *TileEngine) IsComplete() bool {
	return e.RemainingPairs() == 0
}

func (e *TileEngine) Finalize() Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.finalized {
		return e.result
	}
	e.finalized = true
	e.result = Result{Score: e.matches, Points: e.points}
	return e.result
}

func (e *TileEngine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
}

// TileState is the client-facing snapshot of a tile session.
type TileState struct {
	SessionID string     `json:"session_id"`
	Variant   string     `json:"variant"`
	Subject   string     `json:"subject"`
	Left      []TileView `json:"left"`
	Right     []TileView `json:"right"`
	Score     int        `json:"score"`
	Remaining int        `json:"remaining"`
	Complete  bool       `json:"complete"`
}

type TileView struct {
	Value    string `json:"value"`
	Matched  bool   `json:"matched"`
	Selected bool   `json:"selected"`
}

func (e *TileEngine) State() any {
	e.mu.Lock()
	defer e.mu.Unlock()

	view := func(side string, tiles []tile) []TileView {
		out := make([]TileView, len(tiles))
		for i, t := range tiles {
			out[i] = TileView{
				Value:    t.Value,
				Matched:  t.Matched,
				Selected: e.hasSelection && e.selectedSide == side && e.selectedIndex == i,
			}
		}
		return out
	}

	return TileState{
		SessionID: e.id.String(),
		Variant:   VariantTileMatch,
		Subject:   e.subject,
		Left:      view(SideLeft, e.left),
		Right:     view(SideRight, e.right),
		Score:     e.points,
		Remaining: e.remainingLocked(),
		Complete:  e.remainingLocked() == 0,
	}
}
