package session

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pixil98/go-testutil"

	"github.com/vovakirdan/bdaygames/internal/assets"
	"github.com/vovakirdan/bdaygames/internal/core"
)

func TestLoopRunsToCompletion(t *testing.T) {
	g := &countdownGame{endAt: 25}
	c := New(g, testOptions(nil, nil))

	frames := 0
	l := NewLoop(c, WithFastForward(), WithFrameHook(func(*Controller) { frames++ }))
	res := l.Run(context.Background())

	testutil.AssertEqual(t, "reason", res.Reason, EndFinished)
	testutil.AssertEqual(t, "phase", res.Phase, core.PhaseGameOver)
	testutil.AssertEqual(t, "ticks", res.Ticks, 25)
	testutil.AssertEqual(t, "frames", frames, 25)
	testutil.AssertEqual(t, "game", res.GameID, "countdown")
	testutil.AssertEqual(t, "session", res.SessionID, c.ID())

	select {
	case <-l.Done():
	default:
		t.Error("Done should be closed after Run")
	}
}

func TestLoopMaxTicks(t *testing.T) {
	c := New(&countdownGame{endAt: 1000}, testOptions(nil, nil))
	res := NewLoop(c, WithFastForward(), WithMaxTicks(10)).Run(context.Background())
	testutil.AssertEqual(t, "reason", res.Reason, EndMaxTicks)
	testutil.AssertEqual(t, "ticks", res.Ticks, 10)
	testutil.AssertEqual(t, "phase", res.Phase, core.PhaseRunning)
}

func TestLoopInputStartsReadyGame(t *testing.T) {
	g := &countdownGame{endAt: 3, needStart: true}
	c := New(g, testOptions(nil, nil))
	input := func(tick int, st core.GameState) core.InputFrame {
		in := core.NewInputFrame()
		if st.Ready && tick >= 5 {
			in.Set(core.ActionJump)
		}
		return in
	}
	res := NewLoop(c, WithFastForward(), WithInput(input)).Run(context.Background())
	testutil.AssertEqual(t, "reason", res.Reason, EndFinished)
	testutil.AssertEqual(t, "ticks", res.Ticks, 6+3)
}

func TestLoopSubmitMergesInput(t *testing.T) {
	g := &countdownGame{endAt: 1, needStart: true}
	c := New(g, testOptions(nil, nil))
	l := NewLoop(c, WithFastForward(), WithMaxTicks(5))
	l.Submit(jump())
	res := l.Run(context.Background())
	testutil.AssertEqual(t, "reason", res.Reason, EndFinished)
	testutil.AssertEqual(t, "ticks", res.Ticks, 2)
}

func TestLoopCancelledWhileLoading(t *testing.T) {
	dir := t.TempDir()
	batch := assets.Load(context.Background(), dir, nil, log.New(io.Discard))
	<-batch.Done()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New(&countdownGame{endAt: 1000}, testOptions(nil, nil))
	res := NewLoop(c, WithAssets(batch)).Run(ctx)
	if res.Reason != EndCancelled && res.Reason != EndFinished {
		t.Fatalf("unexpected reason %q", res.Reason)
	}
	testutil.AssertEqual(t, "no ticks", res.Ticks <= 1, true)
}

func TestLoopStop(t *testing.T) {
	c := New(&countdownGame{endAt: 1 << 30}, testOptions(nil, nil))
	l := NewLoop(c)

	results := make(chan Result, 1)
	go func() { results <- l.Run(context.Background()) }()

	time.Sleep(50 * time.Millisecond)
	l.Stop()
	l.Stop()

	select {
	case res := <-results:
		testutil.AssertEqual(t, "reason", res.Reason, EndStopped)
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop")
	}
}

func TestLoopWaitsForAssets(t *testing.T) {
	batch := assets.Load(context.Background(), t.TempDir(), []string{"Armando_head"}, log.New(io.Discard))
	c := New(&countdownGame{endAt: 2}, testOptions(nil, nil))
	res := NewLoop(c, WithAssets(batch), WithFastForward()).Run(context.Background())

	testutil.AssertEqual(t, "settled", batch.Settled(), true)
	testutil.AssertEqual(t, "failed", batch.Failed(), []string{"Armando_head"})
	testutil.AssertEqual(t, "reason", res.Reason, EndFinished)
}
