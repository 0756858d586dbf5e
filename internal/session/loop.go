package session

import (
	"context"
	"sync"
	"time"

	"github.com/vovakirdan/bdaygames/internal/assets"
	"github.com/vovakirdan/bdaygames/internal/core"
)

// InputFunc produces the input for the next tick from the state after the
// previous one. It stands in for a player when no terminal is attached.
type InputFunc func(tick int, st core.GameState) core.InputFrame

// EndReason says why a Loop stopped.
type EndReason string

const (
	EndFinished  EndReason = "finished"
	EndCancelled EndReason = "cancelled"
	EndStopped   EndReason = "stopped"
	EndMaxTicks  EndReason = "max ticks"
)

// Result summarizes a Loop run.
type Result struct {
	SessionID string
	GameID    string
	Phase     core.Phase
	State     core.GameState
	Ticks     int
	Reason    EndReason
}

// Loop drives a Controller on a fixed schedule without a terminal. It is
// what `arcade sim` runs, and what tests use to play whole sessions.
type Loop struct {
	ctrl     *Controller
	input    InputFunc
	batch    *assets.Batch
	interval time.Duration
	maxTicks int
	onFrame  func(*Controller)

	inputs   chan core.InputFrame
	done     chan struct{}
	doneOnce sync.Once
}

// LoopOpt configures a Loop.
type LoopOpt func(*Loop)

// WithInput sets the input generator.
func WithInput(f InputFunc) LoopOpt {
	return func(l *Loop) { l.input = f }
}

// WithAssets makes Run wait for the batch before beginning the session.
func WithAssets(b *assets.Batch) LoopOpt {
	return func(l *Loop) { l.batch = b }
}

// WithFastForward runs ticks back to back instead of at the tick rate.
func WithFastForward() LoopOpt {
	return func(l *Loop) { l.interval = 0 }
}

// WithMaxTicks stops the loop after n simulation ticks.
func WithMaxTicks(n int) LoopOpt {
	return func(l *Loop) { l.maxTicks = n }
}

// WithFrameHook is called after every tick, for rendering or tracing.
func WithFrameHook(f func(*Controller)) LoopOpt {
	return func(l *Loop) { l.onFrame = f }
}

// NewLoop creates a loop for ctrl, ticking at the controller's tick rate.
func NewLoop(ctrl *Controller, opts ...LoopOpt) *Loop {
	l := &Loop{
		ctrl:     ctrl,
		interval: time.Second / time.Duration(ctrl.opts.Runtime.TickRate),
		inputs:   make(chan core.InputFrame, 16),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Submit queues input for the next tick. Frames submitted between two ticks
// are merged. When the queue is full the frame is dropped.
func (l *Loop) Submit(in core.InputFrame) {
	select {
	case l.inputs <- in.Clone():
	default:
	}
}

// Done is closed when Run returns.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Stop ends Run at the next tick boundary. Safe to call more than once.
func (l *Loop) Stop() {
	l.doneOnce.Do(func() {
		close(l.done)
	})
}

// Run loads assets if needed, begins the session and ticks it until it
// ends, ctx is cancelled, Stop is called or the tick limit is reached.
func (l *Loop) Run(ctx context.Context) Result {
	defer l.Stop()

	if reason, ok := l.begin(ctx); !ok {
		return l.result(reason)
	}

	var tick <-chan time.Time
	if l.interval > 0 {
		ticker := time.NewTicker(l.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		if tick != nil {
			select {
			case <-tick:
			case <-ctx.Done():
				return l.result(EndCancelled)
			case <-l.done:
				return l.result(EndStopped)
			}
		} else {
			select {
			case <-ctx.Done():
				return l.result(EndCancelled)
			case <-l.done:
				return l.result(EndStopped)
			default:
			}
		}

		l.ctrl.Tick(l.nextInput())
		if l.onFrame != nil {
			l.onFrame(l.ctrl)
		}
		if l.ctrl.Phase().Terminal() {
			return l.result(EndFinished)
		}
		if l.maxTicks > 0 && l.ctrl.Ticks() >= l.maxTicks {
			return l.result(EndMaxTicks)
		}
	}
}

func (l *Loop) begin(ctx context.Context) (EndReason, bool) {
	if l.ctrl.Phase() != core.PhaseLoading {
		return "", true
	}
	var sprites core.SpriteSet
	if l.batch != nil {
		select {
		case <-l.batch.Done():
			sprites = l.batch.Sprites()
		case <-ctx.Done():
			return EndCancelled, false
		case <-l.done:
			return EndStopped, false
		}
	}
	l.ctrl.Begin(sprites)
	return "", true
}

// nextInput merges queued frames with the generator's frame.
func (l *Loop) nextInput() core.InputFrame {
	in := core.NewInputFrame()
	if l.input != nil {
		in = l.input(l.ctrl.Ticks(), l.ctrl.State()).Clone()
	}
	for {
		select {
		case q := <-l.inputs:
			for a := range q.Actions {
				in.Set(a)
			}
			for a := range q.Held {
				in.SetHeld(a)
			}
		default:
			return in
		}
	}
}

func (l *Loop) result(reason EndReason) Result {
	return Result{
		SessionID: l.ctrl.ID(),
		GameID:    l.ctrl.Game().ID(),
		Phase:     l.ctrl.Phase(),
		State:     l.ctrl.State(),
		Ticks:     l.ctrl.Ticks(),
		Reason:    reason,
	}
}
