package game

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/mindplayhq/mindplay-server/internal/content"
)

func newTestManager(t *testing.T) (*Manager, *ManualClock) {
	t.Helper()
	clock := NewManualClock(time.Unix(0, 0))
	manager := NewManager(content.NewCatalog(), nil, clock, nil, ManagerOptions{}, zerolog.Nop())
	return manager, clock
}

func TestManagerStartUnknownVariant(t *testing.T) {
	manager, _ := newTestManager(t)

	_, _, err := manager.Start(context.Background(), StartRequest{Variant: "chess", Subject: content.SubjectMath})
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestManagerRoutesByVariant(t *testing.T) {
	manager, _ := newTestManager(t)

	id, state, err := manager.Start(context.Background(), StartRequest{
		Variant:   VariantWordScramble,
		Subject:   content.SubjectMath,
		StudentID: uuid.New(),
	})
	assert.NoError(t, err)
	assert.IsType(t, WordState{}, state)

	// Quiz input against a word session is a variant mismatch.
	_, err = manager.SubmitAnswer(id, 0)
	assert.ErrorIs(t, err, ErrWrongVariant)

	_, err = manager.SkipWord(id)
	assert.NoError(t, err)
}

func TestManagerSessionNotFound(t *testing.T) {
	manager, _ := newTestManager(t)

	_, err := manager.State(uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, manager.Teardown(uuid.New()), ErrSessionNotFound)
}

func TestManagerFinalizeReportsOnce(t *testing.T) {
	manager, _ := newTestManager(t)

	var events []CompletionEvent
	manager.SetCompletionHandler(func(_ context.Context, evt CompletionEvent) {
		events = append(events, evt)
	})

	student := uuid.New()
	id, _, err := manager.Start(context.Background(), StartRequest{
		Variant:     VariantWordScramble,
		Subject:     content.SubjectScience,
		StudentID:   student,
		DisplayName: "Asha",
	})
	assert.NoError(t, err)

	words := content.NewCatalog().Words(content.SubjectScience)
	for range words {
		_, err := manager.SkipWord(id)
		assert.NoError(t, err)
	}

	first, err := manager.Finalize(context.Background(), id)
	assert.NoError(t, err)
	second, err := manager.Finalize(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, first, second)

	assert.Len(t, events, 1)
	assert.Equal(t, student, events[0].StudentID)
	assert.Equal(t, "Asha", events[0].DisplayName)
	assert.Equal(t, content.SubjectScience, events[0].Subject)
	assert.Equal(t, VariantWordScramble, events[0].Variant)
	assert.Equal(t, first.Points, events[0].Points)
}

func TestManagerTeardownDropsSession(t *testing.T) {
	manager, _ := newTestManager(t)

	id, _, err := manager.Start(context.Background(), StartRequest{
		Variant: VariantTileMatch,
		Subject: content.SubjectMath,
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, manager.ActiveSessions())

	assert.NoError(t, manager.Teardown(id))
	assert.Equal(t, 0, manager.ActiveSessions())

	_, err = manager.State(id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManagerSweepExpiresIdleSessions(t *testing.T) {
	manager, clock := newTestManager(t)

	_, _, err := manager.Start(context.Background(), StartRequest{
		Variant: VariantTileMatch,
		Subject: content.SubjectMath,
	})
	assert.NoError(t, err)

	clock.Advance(2 * time.Hour)
	manager.sweep()
	assert.Equal(t, 0, manager.ActiveSessions())
}
