package game

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// FrameSink receives shooter field snapshots for fan-out to clients.
type FrameSink interface {
	PublishFrame(sessionID uuid.UUID, state ShooterState)
}

// shooterRunner drives one shooter engine: physics frames at the
// configured rate and the countdown at 1 Hz. It stops when its context
// is cancelled at session teardown.
type shooterRunner struct {
	engine    *ShooterEngine
	frames    FrameSink
	frameRate int
	cancel    context.CancelFunc
	done      chan struct{}
	logger    zerolog.Logger
}

func newShooterRunner(engine *ShooterEngine, frames FrameSink, frameRate int, logger zerolog.Logger) *shooterRunner {
	if frameRate <= 0 {
		frameRate = 30
	}
	return &shooterRunner{
		engine:    engine,
		frames:    frames,
		frameRate: frameRate,
		done:      make(chan struct{}),
		logger:    logger.With().Str("component", "shooter_runner").Str("session_id", engine.ID().String()).Logger(),
	}
}

func (r *shooterRunner) start(parent context.Context) {
	ctx, cancel := context.WithCancel(parent)
	r.cancel = cancel
	go r.run(ctx)
}

func (r *shooterRunner) stop() {
	if r.cancel != nil {
		r.cancel()
		<-r.done
	}
}

func (r *shooterRunner) run(ctx context.Context) {
	defer close(r.done)

	frameTick := time.NewTicker(time.Second / time.Duration(r.frameRate))
	defer frameTick.Stop()
	secondTick := time.NewTicker(time.Second)
	defer secondTick.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-frameTick.C:
			r.engine.Advance(1)
			r.publish()
		case <-secondTick.C:
			if _, levelDone := r.engine.TickSecond(); levelDone {
				r.logger.Debug().Msg("level countdown reached zero")
				r.publish()
			}
		}
	}
}

func (r *shooterRunner) publish() {
	if r.frames == nil {
		return
	}
	if state, ok := r.engine.State().(ShooterState); ok {
		r.frames.PublishFrame(r.engine.ID(), state)
	}
}
