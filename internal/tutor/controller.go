package tutor

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

const apologyReply = "Sorry, I'm having trouble connecting right now. Please try again in a moment."

var (
	ErrBusy          = errors.New("tutor request already in flight")
	ErrClosed        = errors.New("tutor session closed")
	ErrNoActiveQuiz  = errors.New("no active quiz")
	ErrEmptyMessage  = errors.New("message is empty")
	ErrInvalidAnswer = errors.New("invalid answer option")
)

// Message is one transcript entry.
type Message struct {
	ID        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// quizRun tracks an in-conversation practice quiz.
type quizRun struct {
	questions []QuizQuestion
	index     int
	correct   int
}

// Controller owns one tutoring conversation. A single model request
// may be in flight at a time; replies landing after Close or a reset
// are discarded via the generation counter.
type Controller struct {
	mu sync.Mutex

	id        uuid.UUID
	subject   string
	showSteps bool

	transcript []Message
	awaiting   bool
	generation int
	quiz       *quizRun
	closed     bool

	completer Completer
	clock     func() time.Time
	logger    zerolog.Logger
}

// NewController starts a tutoring conversation for a subject.
func NewController(completer Completer, subject string, showSteps bool, logger zerolog.Logger) *Controller {
	return &Controller{
		id:        uuid.New(),
		subject:   subject,
		showSteps: showSteps,
		completer: completer,
		clock:     time.Now,
		logger:    logger.With().Str("component", "tutor_controller").Str("subject", subject).Logger(),
	}
}

func (c *Controller) ID() uuid.UUID   { return c.id }
func (c *Controller) Subject() string { return c.subject }

// SendResult carries the messages appended by one exchange.
type SendResult struct {
	Messages    []Message     `json:"messages"`
	QuizStarted bool          `json:"quiz_started"`
	Question    *QuizQuestion `json:"question,omitempty"`
}

// Send appends the student's message and asks the model for a reply.
// In quiz mode a parseable reply starts a practice quiz; anything else
// is shown as plain chat. Transport failures surface as an apology
// reply rather than an error.
func (c *Controller) Send(ctx context.Context, text, mode string) (SendResult, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return SendResult{}, ErrClosed
	}
	if c.awaiting {
		c.mu.Unlock()
		return SendResult{}, ErrBusy
	}
	if text == "" {
		c.mu.Unlock()
		return SendResult{}, ErrEmptyMessage
	}

	userMsg := c.append(RoleUser, text)
	c.awaiting = true
	gen := c.generation

	system := chatSystemPrompt(c.subject, c.showSteps)
	if mode == ModeQuiz {
		system = quizSystemPrompt(c.subject)
	}
	c.mu.Unlock()

	tutorRequests.WithLabelValues(mode).Inc()

	reply, err := c.completer.Complete(ctx, system, text)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || gen != c.generation {
		// The session moved on while the request was in flight.
		return SendResult{}, ErrClosed
	}
	c.awaiting = false

	result := SendResult{Messages: []Message{userMsg}}
	if err != nil {
		c.logger.Warn().Err(err).Msg("completion failed")
		result.Messages = append(result.Messages, c.append(RoleAssistant, apologyReply))
		return result, nil
	}

	if mode == ModeQuiz {
		if questions, ok := parseQuizReply(reply); ok {
			c.quiz = &quizRun{questions: questions}
			intro := c.append(RoleAssistant, "I've put together a quick practice quiz for you. Let's see how you do!")
			result.Messages = append(result.Messages, intro)
			result.QuizStarted = true
			q := questions[0]
			result.Question = &q
			return result, nil
		}
		quizParseFallbacks.Inc()
		c.logger.Debug().Msg("quiz reply did not parse, falling back to chat")
	}

	result.Messages = append(result.Messages, c.append(RoleAssistant, reply))
	return result, nil
}

// AnswerResult reports one quiz answer evaluation.
type AnswerResult struct {
	Correct      bool          `json:"correct"`
	Explanation  string        `json:"explanation"`
	Messages     []Message     `json:"messages"`
	NextQuestion *QuizQuestion `json:"next_question,omitempty"`
	Done         bool          `json:"done"`
	Percent      int           `json:"percent,omitempty"`
}

// AnswerQuiz evaluates the student's option for the current quiz
// question and advances. Finishing the last question appends a summary
// with the rounded percentage.
func (c *Controller) AnswerQuiz(option int) (AnswerResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return AnswerResult{}, ErrClosed
	}
	if c.quiz == nil {
		return AnswerResult{}, ErrNoActiveQuiz
	}

	q := c.quiz.questions[c.quiz.index]
	if option < 0 || option >= len(q.Options) {
		return AnswerResult{}, ErrInvalidAnswer
	}

	result := AnswerResult{Explanation: q.Explanation}
	feedback := "Not quite. The right answer is " + q.Options[q.Correct] + ". " + q.Explanation
	if option == q.Correct {
		c.quiz.correct++
		result.Correct = true
		feedback = "Correct! " + q.Explanation
	}
	result.Messages = append(result.Messages, c.append(RoleAssistant, feedback))

	c.quiz.index++
	if c.quiz.index < len(c.quiz.questions) {
		next := c.quiz.questions[c.quiz.index]
		result.NextQuestion = &next
		return result, nil
	}

	percent := int(math.Round(float64(c.quiz.correct) / float64(len(c.quiz.questions)) * 100))
	summary := c.append(RoleAssistant, quizSummary(c.quiz.correct, len(c.quiz.questions), percent))
	result.Messages = append(result.Messages, summary)
	result.Done = true
	result.Percent = percent
	c.quiz = nil
	return result, nil
}

// Transcript returns a copy of the conversation so far.
func (c *Controller) Transcript() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Message, len(c.transcript))
	copy(out, c.transcript)
	return out
}

// CurrentQuestion returns the active quiz question, nil when none.
func (c *Controller) CurrentQuestion() *QuizQuestion {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.quiz == nil {
		return nil
	}
	q := c.quiz.questions[c.quiz.index]
	return &q
}

// Awaiting reports whether a model request is in flight.
func (c *Controller) Awaiting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.awaiting
}

// Close ends the conversation. Any in-flight reply is discarded.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	c.generation++
	c.awaiting = false
}

// append must be called with the lock held.
func (c *Controller) append(role, content string) Message {
	msg := Message{
		ID:        uuid.New(),
		Role:      role,
		Content:   content,
		CreatedAt: c.clock(),
	}
	c.transcript = append(c.transcript, msg)
	return msg
}

func quizSummary(correct, total, percent int) string {
	switch {
	case percent >= 80:
		return fmtSummary(correct, total, percent, "Excellent work!")
	case percent >= 50:
		return fmtSummary(correct, total, percent, "Good effort, keep practicing!")
	default:
		return fmtSummary(correct, total, percent, "Let's review this topic together.")
	}
}

func fmtSummary(correct, total, percent int, note string) string {
	return fmt.Sprintf("Quiz complete! You got %d out of %d (%d%%). %s", correct, total, percent, note)
}
