package tutor

import "fmt"

// Chat modes.
const (
	ModeChat = "chat"
	ModeQuiz = "quiz"
)

func chatSystemPrompt(subject string, showSteps bool) string {
	prompt := fmt.Sprintf(
		"You are a friendly and patient tutor helping a school student learn %s. "+
			"Explain concepts in simple language with concrete examples. "+
			"Keep answers short and encouraging, and end with a question that checks understanding.",
		subjectLabel(subject))
	if showSteps {
		prompt += " Always work through problems step by step, numbering each step."
	}
	return prompt
}

func quizSystemPrompt(subject string) string {
	return fmt.Sprintf(
		"You are a quiz generator for school students studying %s. "+
			"Create exactly 5 multiple-choice questions based on the student's request. "+
			"Respond with ONLY a JSON object, no other text, in this format: "+
			`{"questions":[{"question":"...","options":["...","...","...","..."],"correct":0,"explanation":"..."}]}. `+
			"Each question has exactly 4 options and correct is the zero-based index of the right one.",
		subjectLabel(subject))
}

func subjectLabel(subject string) string {
	switch subject {
	case "math":
		return "mathematics"
	case "science":
		return "science"
	case "english":
		return "English"
	case "history":
		return "history"
	default:
		return "their school subjects"
	}
}
