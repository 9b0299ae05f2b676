package game

import (
	"errors"

	"github.com/google/uuid"
)

// Supported game variants.
const (
	VariantQuiz            = "quiz"
	VariantTrueFalse       = "true_false"
	VariantTileMatch       = "tile_match"
	VariantMemoryMatch     = "memory_match"
	VariantWordScramble    = "word_scramble"
	VariantFractionShooter = "fraction_shooter"
)

// Sentinel errors shared by the engines and the session manager.
var (
	ErrSessionNotFound  = errors.New("game session not found")
	ErrSessionComplete  = errors.New("game session already complete")
	ErrInputLocked      = errors.New("input locked during reveal")
	ErrUnknownVariant   = errors.New("unknown game variant")
	ErrInvalidSelection = errors.New("invalid selection")
	ErrWrongVariant     = errors.New("operation not supported by game variant")
)

// Result is the outcome handed back to the host when a session ends.
// Score is the variant's display score, Points is what feeds progress
// totals and the leaderboard.
type Result struct {
	Score  int `json:"score"`
	Points int `json:"points"`
}

// Engine is the contract every variant implements. Variant-specific
// input goes through the concrete types; the manager only needs this
// shared surface for lifecycle handling.
type Engine interface {
	ID() uuid.UUID
	Variant() string
	Subject() string
	IsComplete() bool
	// Finalize computes the terminal result. It is idempotent and
	// returns the same Result on repeat calls.
	Finalize() Result
	// Close cancels any pending timers. A closed engine rejects input.
	Close()
	// State returns a client-facing snapshot of the session.
	State() any
}

// AnswerOutcome reports the effect of one answer submission on a
// sequential engine (quiz, true/false, word scramble).
type AnswerOutcome struct {
	Correct       bool   `json:"correct"`
	ScoreDelta    int    `json:"score_delta"`
	CorrectAnswer string `json:"correct_answer,omitempty"`
	Explanation   string `json:"explanation,omitempty"`
	// Complete is set when this submission resolved the final item.
	Complete bool `json:"complete"`
}
