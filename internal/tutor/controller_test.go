package tutor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// stubCompleter returns canned replies or errors, optionally blocking
// until released so tests can observe in-flight behavior.
type stubCompleter struct {
	reply   string
	err     error
	started chan struct{}
	release chan struct{}
}

func (s *stubCompleter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if s.started != nil {
		close(s.started)
	}
	if s.release != nil {
		<-s.release
	}
	return s.reply, s.err
}

func TestSendAppendsUserAndAssistantMessages(t *testing.T) {
	ctrl := NewController(&stubCompleter{reply: "A fraction is part of a whole."}, "math", false, zerolog.Nop())

	result, err := ctrl.Send(context.Background(), "What is a fraction?", ModeChat)
	assert.NoError(t, err)
	assert.Len(t, result.Messages, 2)
	assert.Equal(t, RoleUser, result.Messages[0].Role)
	assert.Equal(t, RoleAssistant, result.Messages[1].Role)
	assert.Equal(t, "A fraction is part of a whole.", result.Messages[1].Content)

	transcript := ctrl.Transcript()
	assert.Len(t, transcript, 2)
}

func TestSendTransportErrorYieldsApology(t *testing.T) {
	ctrl := NewController(&stubCompleter{err: errors.New("connection refused")}, "math", false, zerolog.Nop())

	result, err := ctrl.Send(context.Background(), "help", ModeChat)
	assert.NoError(t, err)
	assert.Len(t, result.Messages, 2)
	assert.Equal(t, apologyReply, result.Messages[1].Content)
}

func TestQuizFlowScoring(t *testing.T) {
	ctrl := NewController(&stubCompleter{reply: validQuizJSON}, "math", false, zerolog.Nop())

	result, err := ctrl.Send(context.Background(), "quiz me on arithmetic", ModeQuiz)
	assert.NoError(t, err)
	assert.True(t, result.QuizStarted)
	assert.NotNil(t, result.Question)
	assert.Equal(t, "What is 2+2?", result.Question.Question)

	// Four right, one wrong: 4/5 rounds to 80%.
	answers := []int{1, 1, 0, 2, 1}
	for i, option := range answers {
		res, err := ctrl.AnswerQuiz(option)
		assert.NoError(t, err)
		if i < len(answers)-1 {
			assert.NotNil(t, res.NextQuestion)
			assert.False(t, res.Done)
		} else {
			assert.False(t, res.Correct)
			assert.True(t, res.Done)
			assert.Equal(t, 80, res.Percent)
			last := res.Messages[len(res.Messages)-1]
			assert.True(t, strings.Contains(last.Content, "4 out of 5"))
			assert.True(t, strings.Contains(last.Content, "80%"))
		}
	}

	assert.Nil(t, ctrl.CurrentQuestion())
	_, err = ctrl.AnswerQuiz(0)
	assert.ErrorIs(t, err, ErrNoActiveQuiz)
}

func TestQuizModeFallsBackToChatOnUnparseableReply(t *testing.T) {
	ctrl := NewController(&stubCompleter{reply: "Let's talk about fractions instead."}, "math", false, zerolog.Nop())

	result, err := ctrl.Send(context.Background(), "quiz me", ModeQuiz)
	assert.NoError(t, err)
	assert.False(t, result.QuizStarted)
	assert.Len(t, result.Messages, 2)
	assert.Equal(t, "Let's talk about fractions instead.", result.Messages[1].Content)
	assert.Nil(t, ctrl.CurrentQuestion())
}

func TestSendRejectsConcurrentRequests(t *testing.T) {
	stub := &stubCompleter{
		reply:   "thinking...",
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	ctrl := NewController(stub, "science", false, zerolog.Nop())

	done := make(chan error, 1)
	go func() {
		_, err := ctrl.Send(context.Background(), "first", ModeChat)
		done <- err
	}()

	<-stub.started
	_, err := ctrl.Send(context.Background(), "second", ModeChat)
	assert.ErrorIs(t, err, ErrBusy)

	close(stub.release)
	assert.NoError(t, <-done)
}

func TestCloseDiscardsInFlightReply(t *testing.T) {
	stub := &stubCompleter{
		reply:   "too late",
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	ctrl := NewController(stub, "science", false, zerolog.Nop())

	done := make(chan error, 1)
	go func() {
		_, err := ctrl.Send(context.Background(), "question", ModeChat)
		done <- err
	}()

	<-stub.started
	ctrl.Close()
	close(stub.release)

	assert.ErrorIs(t, <-done, ErrClosed)
	// The discarded reply never reached the transcript.
	for _, msg := range ctrl.Transcript() {
		assert.NotEqual(t, "too late", msg.Content)
	}
}

func TestSendAfterCloseRejected(t *testing.T) {
	ctrl := NewController(&stubCompleter{reply: "hi"}, "math", false, zerolog.Nop())
	ctrl.Close()

	_, err := ctrl.Send(context.Background(), "hello", ModeChat)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestManagerLifecycle(t *testing.T) {
	manager := NewManager(&stubCompleter{reply: "hello"}, zerolog.Nop())

	ctrl := manager.Start("history", true)
	got, err := manager.Get(ctrl.ID())
	assert.NoError(t, err)
	assert.Equal(t, ctrl, got)

	assert.NoError(t, manager.Teardown(ctrl.ID()))
	_, err = manager.Get(ctrl.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, manager.Teardown(ctrl.ID()), ErrSessionNotFound)
}

func TestMessagesCarryTimestampsAndIDs(t *testing.T) {
	ctrl := NewController(&stubCompleter{reply: "ok"}, "math", false, zerolog.Nop())
	before := time.Now()

	result, err := ctrl.Send(context.Background(), "hi", ModeChat)
	assert.NoError(t, err)
	for _, msg := range result.Messages {
		assert.NotEqual(t, msg.ID.String(), "00000000-0000-0000-0000-000000000000")
		assert.False(t, msg.CreatedAt.Before(before))
	}
}
