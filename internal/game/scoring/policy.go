// Package scoring computes point deltas and final results for every
// mini-game variant. All functions are stateless and referentially
// transparent so they can be tested in isolation from the engines.
package scoring

// Config holds the per-variant reward and penalty constants.
type Config struct {
	QuizReward      int // multiple-choice correct answer
	TrueFalseReward int // true/false correct answer
	TileMatchReward int // tile-matching correct pair
	WordReward      int // word-scramble correct word

	ShooterHitReward     int // hit on a target-equivalent balloon
	ShooterMissPenalty   int // hit on a non-equivalent balloon (negative)
	ShooterEscapePenalty int // per escaped target-equivalent balloon (negative)

	MemoryBaseScore   int // memory-match starting score
	MemoryMovePenalty int // deducted per evaluated pair
	MemoryFloorScore  int // memory-match score floor
}

// DefaultConfig returns the production constants.
func DefaultConfig() Config {
	return Config{
		QuizReward:           10,
		TrueFalseReward:      8,
		TileMatchReward:      5,
		WordReward:           10,
		ShooterHitReward:     10,
		ShooterMissPenalty:   -5,
		ShooterEscapePenalty: -2,
		MemoryBaseScore:      100,
		MemoryMovePenalty:    2,
		MemoryFloorScore:     60,
	}
}

// Policy evaluates scoring events against a fixed config.
type Policy struct {
	config Config
}

// NewPolicy creates a policy with the provided config. A zero QuizReward
// selects the defaults, mirroring how the match service guards its config.
func NewPolicy(config Config) *Policy {
	if config.QuizReward == 0 {
		config = DefaultConfig()
	}
	return &Policy{config: config}
}

// QuizDelta returns the point delta for a multiple-choice answer.
func (p *Policy) QuizDelta(correct bool) int {
	if correct {
		return p.config.QuizReward
	}
	return 0
}

// TrueFalseDelta returns the point delta for a true/false answer.
func (p *Policy) TrueFalseDelta(correct bool) int {
	if correct {
		return p.config.TrueFalseReward
	}
	return 0
}

// TileMatchDelta returns the point delta for a tile selection pair.
func (p *Policy) TileMatchDelta(matched bool) int {
	if matched {
		return p.config.TileMatchReward
	}
	return 0
}

// WordDelta returns the running-score delta for a scramble submission.
func (p *Policy) WordDelta(correct bool) int {
	if correct {
		return p.config.WordReward
	}
	return 0
}

// WordFinal computes the terminal (score, points) for word scramble:
// score = floor(correct/total * 100), points = score * 2.
func (p *Policy) WordFinal(correctCount, total int) (score, points int) {
	if total <= 0 {
		return 0, 0
	}
	score = correctCount * 100 / total
	return score, score * 2
}

// MemoryFinal computes the terminal (score, points) for memory match:
// score = max(base - moves*penalty, floor), points = score * 2.
func (p *Policy) MemoryFinal(moves int) (score, points int) {
	score = p.config.MemoryBaseScore - moves*p.config.MemoryMovePenalty
	if score < p.config.MemoryFloorScore {
		score = p.config.MemoryFloorScore
	}
	return score, score * 2
}

// ShooterHitDelta returns the delta for shooting a balloon.
func (p *Policy) ShooterHitDelta(targetEquivalent bool) int {
	if targetEquivalent {
		return p.config.ShooterHitReward
	}
	return p.config.ShooterMissPenalty
}

// ShooterEscapeDelta returns the delta for n escaped target balloons.
func (p *Policy) ShooterEscapeDelta(escaped int) int {
	return escaped * p.config.ShooterEscapePenalty
}

// ShooterFinal clamps the cumulative raw score to a non-negative points
// value; the raw score is reported unchanged.
func (p *Policy) ShooterFinal(rawScore int) (score, points int) {
	points = rawScore
	if points < 0 {
		points = 0
	}
	return rawScore, points
}

// QuizFinal computes the terminal (score, points) for the linear quiz
// variants: score is the correct count, points the accumulated rewards.
func (p *Policy) QuizFinal(correctCount, accumulatedPoints int) (score, points int) {
	return correctCount, accumulatedPoints
}
