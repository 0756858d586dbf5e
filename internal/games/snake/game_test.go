package snake

import (
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/bdaygames/internal/config"
	"github.com/vovakirdan/bdaygames/internal/core"
)

// One move per tick keeps the tests free of timer arithmetic.
func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		TickRate:  5,
		Seed:      seed,
		Character: core.Armando,
	}
}

func newGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.cfg = config.DefaultSnakeConfig()
	g.configured = true
	g.Reset(testConfig(seed))
	return g
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func TestDeterminism(t *testing.T) {
	g1 := newGame(t, 12345)
	g2 := newGame(t, 12345)

	for i := range 60 {
		in := core.NewInputFrame()
		switch i % 7 {
		case 2:
			in.Set(core.ActionDown)
		case 5:
			in.Set(core.ActionLeft)
		}
		g1.Step(in)
		g2.Step(in)
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Errorf("snapshots differ:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestInitialState(t *testing.T) {
	g := newGame(t, 1)
	snap := g.Snapshot()
	if !reflect.DeepEqual(snap.Body, []Point{{5, 5}}) {
		t.Errorf("body = %v, expected [(5,5)]", snap.Body)
	}
	if snap.Dir != DirRight {
		t.Errorf("dir = %v, expected right", snap.Dir)
	}
	if snap.Food == (Point{5, 5}) {
		t.Error("food spawned on the snake")
	}
}

func TestWrapsAtEdges(t *testing.T) {
	g := newGame(t, 1)
	g.food = Point{0, 0}

	for range 5 {
		g.Step(core.NewInputFrame())
	}
	if head := g.snake[0]; head != (Point{0, 5}) {
		t.Errorf("head = %v, expected (0,5) after wrapping", head)
	}
}

func TestReversalRejected(t *testing.T) {
	g := newGame(t, 1)
	g.food = Point{0, 0}

	g.Step(press(core.ActionLeft))
	if g.dir != DirRight {
		t.Errorf("dir = %v, reversal should be ignored", g.dir)
	}
	if head := g.snake[0]; head != (Point{6, 5}) {
		t.Errorf("head = %v, expected (6,5)", head)
	}
}

func TestTurnApplies(t *testing.T) {
	g := newGame(t, 1)
	g.food = Point{0, 0}

	g.Step(press(core.ActionUp))
	if head := g.snake[0]; head != (Point{5, 4}) {
		t.Errorf("head = %v, expected (5,4)", head)
	}
}

func TestHorizontalWinsOverVertical(t *testing.T) {
	g := newGame(t, 1)
	g.food = Point{0, 0}
	g.dir, g.nextDir = DirUp, DirUp

	in := core.NewInputFrame()
	in.Set(core.ActionDown)
	in.Set(core.ActionLeft)
	g.Step(in)
	if g.dir != DirLeft {
		t.Errorf("dir = %v, expected left", g.dir)
	}
}

func TestEatingGrows(t *testing.T) {
	g := newGame(t, 1)
	g.food = Point{6, 5}

	st := g.Step(core.NewInputFrame())
	if st.State.Score != 1 {
		t.Errorf("score = %d, expected 1", st.State.Score)
	}
	if len(g.snake) != 2 {
		t.Errorf("length = %d, expected 2", len(g.snake))
	}
	if slices.Contains(g.snake, g.food) {
		t.Errorf("food %v respawned on the snake %v", g.food, g.snake)
	}
}

func TestSelfCollisionEndsGame(t *testing.T) {
	g := newGame(t, 1)
	g.food = Point{0, 0}
	g.snake = []Point{{5, 5}, {6, 5}, {6, 6}, {5, 6}, {4, 6}}
	g.dir, g.nextDir = DirLeft, DirLeft

	st := g.Step(press(core.ActionDown))
	if !st.State.GameOver {
		t.Fatal("moving into the body should end the game")
	}

	before := g.Snapshot()
	for range 10 {
		g.Step(press(core.ActionRight))
	}
	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("steps after game over should not change anything")
	}
}

func TestFullBoardWins(t *testing.T) {
	g := New()
	g.cfg = config.SnakeConfig{Grid: 3, MoveIntervalMs: 200, StartX: 1, StartY: 1}
	g.configured = true
	g.Reset(testConfig(3))

	g.snake = []Point{{1, 0}, {0, 0}, {0, 1}, {1, 1}, {2, 1}, {2, 2}, {1, 2}, {0, 2}}
	g.dir, g.nextDir = DirRight, DirRight
	g.food = Point{2, 0}

	st := g.Step(core.NewInputFrame())
	if !st.State.Won {
		t.Errorf("filling the board should win, state %+v", st.State)
	}
	if st.State.Score != 1 {
		t.Errorf("score = %d, expected 1", st.State.Score)
	}
}

func TestFoodNeverOnSnake(t *testing.T) {
	g := newGame(t, 99)
	g.snake = []Point{{5, 5}, {4, 5}, {3, 5}, {2, 5}, {1, 5}, {0, 5}, {0, 4}, {0, 3}}
	for range 200 {
		g.spawnFood()
		if slices.Contains(g.snake, g.food) {
			t.Fatalf("food %v on snake", g.food)
		}
	}
}

func TestMoveInterval(t *testing.T) {
	g := New()
	g.cfg = config.DefaultSnakeConfig()
	g.configured = true
	cfg := testConfig(1)
	cfg.TickRate = 10
	g.Reset(cfg)
	g.food = Point{0, 0}

	g.Step(core.NewInputFrame())
	if head := g.snake[0]; head != (Point{5, 5}) {
		t.Errorf("moved after 100ms: %v", head)
	}
	g.Step(core.NewInputFrame())
	if head := g.snake[0]; head != (Point{6, 5}) {
		t.Errorf("head = %v after 200ms, expected (6,5)", head)
	}
}

func TestRestartReproducesStart(t *testing.T) {
	g := newGame(t, 7)
	first := g.Snapshot()
	for range 30 {
		g.Step(press(core.ActionUp))
	}
	g.Reset(testConfig(7))
	if !reflect.DeepEqual(first, g.Snapshot()) {
		t.Errorf("restart differs:\n%+v\n%+v", first, g.Snapshot())
	}
}

func TestConfigureRejectsUnknownPreset(t *testing.T) {
	if err := New().Configure("", "brutal"); err == nil {
		t.Error("expected an error for an unknown preset")
	}
}

func TestRenderFallback(t *testing.T) {
	g := newGame(t, 1)
	scr := core.NewScreen(80, 24)
	g.Render(scr)

	if !strings.Contains(scr.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q", scr.Row(0))
	}
	if !strings.Contains(scr.String(), "█") {
		t.Error("snake head should be drawn")
	}
	if !strings.Contains(scr.String(), "●") {
		t.Error("food should fall back to a circle")
	}
}

func TestRenderUsesSprites(t *testing.T) {
	g := New()
	g.cfg = config.DefaultSnakeConfig()
	g.configured = true
	cfg := testConfig(1)
	cfg.Sprites = core.SpriteSet{"Ananya_head": {Name: "Ananya_head", Glyph: '☻', Color: core.ColorPink}}
	g.Reset(cfg)

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	if !strings.Contains(scr.String(), "☻") {
		t.Error("food should use the opponent sprite")
	}
	if strings.Contains(scr.String(), "●") {
		t.Error("fallback drawn despite a loaded sprite")
	}
}
