package tutor

import (
	"encoding/json"
	"strings"
)

// QuizQuestion is one generated practice question.
type QuizQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
}

type quizPayload struct {
	Questions []QuizQuestion `json:"questions"`
}

// parseQuizReply extracts a generated quiz from a model reply. Models
// often wrap JSON in a markdown fence, so fences are stripped before
// decoding. A false return means the reply should be shown as plain
// chat instead.
func parseQuizReply(raw string) ([]QuizQuestion, bool) {
	text := stripFences(raw)

	var payload quizPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, false
	}
	if len(payload.Questions) == 0 {
		return nil, false
	}
	for _, q := range payload.Questions {
		if q.Question == "" || len(q.Options) != 4 || q.Correct < 0 || q.Correct >= len(q.Options) {
			return nil, false
		}
	}
	return payload.Questions, true
}

// stripFences removes a surrounding markdown code fence, with or
// without a language tag.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")
	if idx := strings.Index(text, "\n"); idx >= 0 {
		// Drop the language tag line, e.g. "json".
		first := strings.TrimSpace(text[:idx])
		if first == "" || !strings.ContainsAny(first, "{}[]") {
			text = text[idx+1:]
		}
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
