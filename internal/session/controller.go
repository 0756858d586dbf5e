// Package session runs one game from asset loading to game over or win.
//
// The Controller is the only thing that steps a game. It gates simulation
// by phase: nothing runs while loading, nothing runs after the session
// ends, and a restart rebuilds the game synchronously. Finished sessions
// are persisted and announced exactly once.
package session

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/bdaygames/internal/core"
	"github.com/vovakirdan/bdaygames/internal/feed"
	"github.com/vovakirdan/bdaygames/internal/registry"
	"github.com/vovakirdan/bdaygames/internal/storage"
)

// Store is the persistence the controller needs. *storage.Store satisfies it.
type Store interface {
	SaveScore(e storage.ScoreEntry) (int64, error)
	BestScore(ctx context.Context, key string) (int, error)
	RecordBest(ctx context.Context, key string, score int) (int, error)
}

// Options configures a Controller. Every field is optional.
type Options struct {
	Runtime core.RuntimeConfig
	Store   Store
	Feed    feed.Publisher
	Logger  *log.Logger
	Context context.Context
	Now     func() time.Time
}

// Controller owns a game for the lifetime of one player session.
// It is not safe for concurrent use; the frame loop that owns it calls every method.
type Controller struct {
	game registry.Game
	opts Options
	id   string

	phase    core.Phase
	paused   bool
	state    core.GameState
	best     int
	restarts int
	ticks    int
}

// New wraps g in a controller in the Loading phase.
func New(g registry.Game, opts Options) *Controller {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Feed == nil {
		opts.Feed = feed.Discard
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if !opts.Runtime.Character.Valid() {
		opts.Runtime.Character = core.DefaultCharacter
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}

	c := &Controller{
		game:  g,
		opts:  opts,
		id:    uuid.New().String(),
		phase: core.PhaseLoading,
	}
	c.opts.Logger = opts.Logger.With("session", c.id[:8], "game", g.ID())
	return c
}

// ID is the session's unique identifier.
func (c *Controller) ID() string { return c.id }

// Game returns the wrapped game.
func (c *Controller) Game() registry.Game { return c.game }

// Phase is the current lifecycle phase.
func (c *Controller) Phase() core.Phase { return c.phase }

// Paused reports whether a running session is paused.
func (c *Controller) Paused() bool { return c.paused }

// Ticks counts simulation steps since the last reset.
func (c *Controller) Ticks() int { return c.ticks }

// Character is the player's character for this session.
func (c *Controller) Character() core.Character { return c.opts.Runtime.Character }

// State returns the latest game state, with controller-owned flags applied.
func (c *Controller) State() core.GameState {
	st := c.state
	st.Paused = c.paused
	return st
}

// Assets lists the sprites this session needs.
func (c *Controller) Assets() []string {
	return registry.AssetsFor(c.game, c.opts.Runtime.Character)
}

// Begin leaves the Loading phase once the sprite batch has settled. Calls
// outside Loading are ignored.
func (c *Controller) Begin(sprites core.SpriteSet) {
	if c.phase != core.PhaseLoading {
		return
	}
	c.opts.Runtime.Sprites = sprites

	if bs, ok := c.game.(registry.BestScorer); ok && c.opts.Store != nil {
		best, err := c.opts.Store.BestScore(c.opts.Context, bs.BestScoreKey())
		if err != nil {
			c.opts.Logger.Warn("cannot read best score", "key", bs.BestScoreKey(), "err", err)
		}
		c.best = best
	}

	c.reset()
	c.opts.Logger.Info("session started", "phase", c.phase, "character", c.opts.Runtime.Character, "sprites", len(sprites))
	c.publish(feed.SessionStarted(c.id, c.game.ID(), c.opts.Runtime.Character.String(), c.opts.Now()))
}

// Tick advances the game by one step when the session is live. While
// loading, paused or finished it returns the current state untouched.
func (c *Controller) Tick(in core.InputFrame) core.GameState {
	if c.phase == core.PhaseLoading || c.phase.Terminal() || c.paused {
		return c.State()
	}

	res := c.game.Step(in)
	c.ticks++
	c.state = res.State
	c.phase = core.PhaseOf(res.State)
	if c.phase.Terminal() {
		c.finish()
	}
	return c.State()
}

// TogglePause pauses or resumes a running session.
func (c *Controller) TogglePause() {
	if c.phase != core.PhaseRunning {
		return
	}
	c.paused = !c.paused
}

// Restart rebuilds the game and returns to its initial phase without
// reloading sprites. It is ignored while loading.
func (c *Controller) Restart() {
	if c.phase == core.PhaseLoading {
		return
	}
	c.restarts++
	c.reset()
	c.opts.Logger.Debug("session restarted", "restarts", c.restarts)
}

// Render draws the game.
func (c *Controller) Render(dst *core.Screen) {
	if c.phase == core.PhaseLoading {
		return
	}
	c.game.Render(dst)
}

// reset starts a fresh run. A fixed seed advances by one per restart, so
// every run differs but the whole sequence replays from the same seed.
func (c *Controller) reset() {
	cfg := c.opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	} else {
		cfg.Seed += int64(c.restarts)
	}
	c.game.Reset(cfg)
	if bs, ok := c.game.(registry.BestScorer); ok {
		bs.SetBestScore(c.best)
	}
	c.paused = false
	c.ticks = 0
	c.state = c.game.State()
	c.phase = core.PhaseOf(c.state)
}

// finish runs once per session on entry to a terminal phase.
func (c *Controller) finish() {
	score := c.state.Score
	character := c.opts.Runtime.Character.String()
	evt := feed.SessionEnded(c.id, c.game.ID(), character, c.phase.String(), score, c.opts.Now())

	if c.opts.Store != nil && score > 0 {
		_, err := c.opts.Store.SaveScore(storage.ScoreEntry{
			GameID:    c.game.ID(),
			Score:     score,
			Character: character,
			SessionID: c.id,
		})
		if err != nil {
			c.opts.Logger.Warn("cannot save score", "err", err)
		}
	}

	if bs, ok := c.game.(registry.BestScorer); ok {
		prev := c.best
		best := max(prev, score)
		if c.opts.Store != nil {
			stored, err := c.opts.Store.RecordBest(c.opts.Context, bs.BestScoreKey(), score)
			if err != nil {
				c.opts.Logger.Warn("cannot record best score", "key", bs.BestScoreKey(), "err", err)
			} else {
				best = stored
			}
		}
		c.best = best
		bs.SetBestScore(best)
		c.state = c.game.State()
		evt.Best = best
		evt.NewBest = score > prev
	}

	c.opts.Logger.Info("session ended", "outcome", c.phase, "score", score, "ticks", c.ticks)
	c.publish(evt)
}

func (c *Controller) publish(evt feed.Event) {
	if err := c.opts.Feed.Publish(evt); err != nil {
		c.opts.Logger.Warn("cannot publish feed event", "kind", evt.Kind, "err", err)
	}
}
