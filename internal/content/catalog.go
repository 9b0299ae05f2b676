// Package content holds the static curriculum tables the mini-games run on:
// multiple-choice question sets keyed by (subject, chapter), plus per-subject
// true/false statements, matching pairs, memory decks, word lists, and the
// fraction-shooter level configs. Pure data, no behavior beyond lookup.
package content

// Question is a single multiple-choice item. Immutable once loaded.
type Question struct {
	ID          string   `json:"id"`
	Prompt      string   `json:"prompt"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
}

// TrueFalseItem is a statement with a boolean answer.
type TrueFalseItem struct {
	Statement string `json:"statement"`
	Answer    bool   `json:"answer"`
}

// MatchPair couples a prompt with its answer. Correctness is symmetric:
// either string of the pair may be selected first.
type MatchPair struct {
	Prompt string `json:"prompt"`
	Answer string `json:"answer"`
}

// WordItem is a scramble target with its hint.
type WordItem struct {
	Word string `json:"word"`
	Hint string `json:"hint"`
}

// Fraction is a labeled numeric value used by the shooter.
type Fraction struct {
	Display string  `json:"display"`
	Value   float64 `json:"value"`
}

// ShooterLevel declares the target fraction and the candidate pool balloons
// are labeled from.
type ShooterLevel struct {
	Level  int        `json:"level"`
	Target Fraction   `json:"target"`
	Pool   []Fraction `json:"pool"`
}

// Catalog resolves content keys to question sets and game material.
// The zero value is not usable; construct with NewCatalog.
type Catalog struct {
	questions map[string]map[string][]Question
	trueFalse map[string][]TrueFalseItem
	pairs     map[string][]MatchPair
	memory    map[string][]MatchPair
	words     map[string][]WordItem
	levels    []ShooterLevel
}

// NewCatalog builds the catalog from the built-in curriculum tables.
func NewCatalog() *Catalog {
	return &Catalog{
		questions: questionBank,
		trueFalse: trueFalseBank,
		pairs:     matchPairBank,
		memory:    memoryBank,
		words:     wordBank,
		levels:    shooterLevels,
	}
}

// Questions returns the question set for (subject, chapter). Unknown keys
// fall back to a single placeholder question so a session can always start.
func (c *Catalog) Questions(subject, chapter string) []Question {
	if byChapter, ok := c.questions[subject]; ok {
		if qs, ok := byChapter[chapter]; ok && len(qs) > 0 {
			return qs
		}
	}
	return []Question{placeholderQuestion(subject, chapter)}
}

// TrueFalse returns up to limit statements for a subject, falling back to the
// math set for unknown subjects.
func (c *Catalog) TrueFalse(subject string, limit int) []TrueFalseItem {
	items, ok := c.trueFalse[subject]
	if !ok || len(items) == 0 {
		items = c.trueFalse[SubjectMath]
	}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

// MatchPairs returns the tile-matching pairs for a subject.
func (c *Catalog) MatchPairs(subject string) []MatchPair {
	if pairs, ok := c.pairs[subject]; ok && len(pairs) > 0 {
		return pairs
	}
	return c.pairs[defaultSubjectKey]
}

// MemoryPairs returns the memory-match deck content for a subject.
func (c *Catalog) MemoryPairs(subject string) []MatchPair {
	if pairs, ok := c.memory[subject]; ok && len(pairs) > 0 {
		return pairs
	}
	return c.memory[SubjectMath]
}

// Words returns the scramble word list for a subject.
func (c *Catalog) Words(subject string) []WordItem {
	if words, ok := c.words[subject]; ok && len(words) > 0 {
		return words
	}
	return c.words[SubjectMath]
}

// ShooterLevels returns the ordered fraction-shooter level configs.
func (c *Catalog) ShooterLevels() []ShooterLevel {
	return c.levels
}

// Subjects lists the subjects with multiple-choice content.
func (c *Catalog) Subjects() []string {
	return []string{SubjectMath, SubjectScience, SubjectEnglish, SubjectHistory}
}

func placeholderQuestion(subject, chapter string) Question {
	return Question{
		ID:          "default",
		Prompt:      "This is a sample question for " + subject + " - " + chapter,
		Options:     []string{"Option A", "Option B", "Option C", "Option D"},
		Correct:     0,
		Explanation: "This is a sample explanation",
	}
}
