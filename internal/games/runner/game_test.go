package runner

import (
	"math"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/bdaygames/internal/config"
	"github.com/vovakirdan/bdaygames/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		TickRate:  50, // 20ms ticks add up exactly
		Seed:      seed,
		Character: core.Armando,
	}
}

func newGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.cfg = config.DefaultRunnerConfig()
	g.configured = true
	g.Reset(testConfig(seed))
	return g
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func started(t *testing.T, seed int64) *Game {
	t.Helper()
	g := newGame(t, seed)
	g.Step(press(core.ActionJump))
	if g.ready {
		t.Fatal("jump should start the run")
	}
	return g
}

func TestReadyUntilJump(t *testing.T) {
	g := newGame(t, 1)
	for range 20 {
		st := g.Step(core.NewInputFrame())
		if !st.State.Ready {
			t.Fatal("run started without input")
		}
	}
	if g.elapsedMs != 0 || len(g.obstacles.Obstacles()) != 0 {
		t.Error("nothing should advance while ready")
	}

	st := g.Step(press(core.ActionUp))
	if st.State.Ready {
		t.Error("up should also start the run")
	}
	if !g.player.OnGround {
		t.Error("the starting press should not jump")
	}
}

func TestJumpArc(t *testing.T) {
	g := started(t, 1)
	g.Step(press(core.ActionJump))

	if g.player.OnGround {
		t.Fatal("player should be airborne")
	}
	if got, want := g.player.Y, 160-15+0.8; math.Abs(got-want) > 1e-9 {
		t.Errorf("y = %v, expected %v", got, want)
	}

	for range 60 {
		g.Step(core.NewInputFrame())
	}
	if !g.player.OnGround || g.player.Y != g.cfg.Player.GroundY {
		t.Errorf("player should land, got %+v", g.player)
	}
}

func TestNoJumpWhileDucking(t *testing.T) {
	g := started(t, 1)
	in := press(core.ActionJump)
	in.SetHeld(core.ActionDown)
	g.Step(in)

	if !g.player.OnGround || !g.player.Ducking {
		t.Errorf("ducking player should stay down, got %+v", g.player)
	}

	g.Step(core.NewInputFrame())
	if g.player.Ducking {
		t.Error("releasing down should stand up")
	}
}

func TestHitbox(t *testing.T) {
	g := started(t, 1)

	stand := g.Hitbox()
	want := core.RectF{X: 90, Y: 100, W: 20, H: 55}
	if stand != want {
		t.Errorf("standing hitbox = %+v, expected %+v", stand, want)
	}

	g.player.Ducking = true
	duck := g.Hitbox()
	if duck.Y != 130 || duck.Bottom() != 155 {
		t.Errorf("ducking hitbox = %+v", duck)
	}
}

func TestDuckingPassesUnderFloatingBlock(t *testing.T) {
	g := started(t, 1)
	om := g.obstacles
	om.obstacles = append(om.obstacles, Obstacle{X: 95, Blocks: []float64{80}, Floating: true})

	if !om.CheckCollision(g.Hitbox()) {
		t.Error("standing player should hit a block reaching y=115")
	}
	g.player.Ducking = true
	if om.CheckCollision(g.Hitbox()) {
		t.Error("ducking player should pass under it")
	}
}

func TestTouchingEdgesCollide(t *testing.T) {
	g := started(t, 1)
	om := g.obstacles
	// block left edge exactly at the hitbox right edge
	om.obstacles = append(om.obstacles, Obstacle{X: 110, Blocks: []float64{125}})
	if !om.CheckCollision(g.Hitbox()) {
		t.Error("touching edges should count as a hit")
	}
}

func TestShapes(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	om := NewObstacleManager(rand.New(rand.NewSource(5)), &cfg, config.NewDifficultyManager(cfg.Difficulty))

	seen := map[string]bool{}
	for range 500 {
		om.obstacles = om.obstacles[:0]
		om.spawn()
		o := om.obstacles[0]
		if o.X != 600 {
			t.Fatalf("spawned at x=%v", o.X)
		}
		switch {
		case !o.Floating && reflect.DeepEqual(o.Blocks, []float64{125}):
			seen["ground1"] = true
		case !o.Floating && reflect.DeepEqual(o.Blocks, []float64{125, 88}):
			seen["ground2"] = true
		case !o.Floating && reflect.DeepEqual(o.Blocks, []float64{125, 88, 51}):
			seen["ground3"] = true
		case o.Floating && len(o.Blocks) == 1 && o.Blocks[0] > 45 && o.Blocks[0] <= 65:
			seen["float1"] = true
		case o.Floating && len(o.Blocks) == 2 && o.Blocks[0] > 45 && o.Blocks[0] <= 65 &&
			math.Abs(o.Blocks[0]-o.Blocks[1]-37) < 1e-9:
			seen["float2"] = true
		default:
			t.Fatalf("unexpected obstacle %+v", o)
		}
	}
	if len(seen) != 5 {
		t.Errorf("expected all five shapes, saw %v", seen)
	}
}

func TestOffscreenObstaclesRemoved(t *testing.T) {
	g := started(t, 1)
	om := g.obstacles
	om.obstacles = append(om.obstacles, Obstacle{X: -34, Blocks: []float64{125}}, Obstacle{X: 300, Blocks: []float64{125}})
	om.Update(1, 0)

	if len(om.Obstacles()) != 1 || om.Obstacles()[0].X != 299 {
		t.Errorf("obstacles = %+v", om.Obstacles())
	}
}

func TestSpawnsWithinInterval(t *testing.T) {
	g := started(t, 3)
	// the first gap is at most 2000 * 1.4 ms
	for range 150 {
		g.Step(core.NewInputFrame())
	}
	if len(g.obstacles.Obstacles()) == 0 {
		t.Error("an obstacle should have spawned within 3s")
	}
	if g.gameOver {
		t.Error("no obstacle can reach the player this early")
	}
}

func TestSpawnGapDrawnEveryTick(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	const tickMs = 1000.0 / 60
	const runs = 300

	total := 0.0
	for seed := range int64(runs) {
		om := NewObstacleManager(rand.New(rand.NewSource(seed)), &cfg, config.NewDifficultyManager(cfg.Difficulty))
		elapsed := 0.0
		for len(om.Obstacles()) == 0 {
			elapsed += tickMs
			om.Update(0, elapsed)
			if elapsed > 3000 {
				t.Fatalf("seed %d: no spawn within 3s", seed)
			}
		}
		// the smallest factor times the base interval
		if elapsed < 0.6*1950 {
			t.Fatalf("seed %d: spawned after %.0fms, before the shortest gap", seed, elapsed)
		}
		total += elapsed
	}

	// A factor drawn once would average the base interval of 2000ms. A fresh
	// draw each tick fires at the first short draw, around 1400ms.
	mean := total / runs
	if mean < 1250 || mean > 1650 {
		t.Errorf("mean first spawn = %.0fms, expected about 1400ms", mean)
	}
}

func TestScoreFromElapsedTime(t *testing.T) {
	g := started(t, 1)
	for range 50 {
		g.Step(core.NewInputFrame())
	}
	if g.score != 10 {
		t.Errorf("score = %d after 1s, expected 10", g.score)
	}
}

func TestSpeedRamp(t *testing.T) {
	g := started(t, 1)
	if math.Abs(g.speed-3) > 1e-9 {
		t.Errorf("initial speed = %v", g.speed)
	}
	g.elapsedMs = 60000
	g.Step(core.NewInputFrame())
	if g.speed != 12 {
		t.Errorf("speed = %v after the ramp, expected 12", g.speed)
	}
}

func TestPresets(t *testing.T) {
	g := New()
	if err := g.Configure("", "hard"); err != nil {
		t.Fatal(err)
	}
	g.Reset(testConfig(1))
	if math.Abs(g.speed-(3+9*0.7)) > 1e-9 {
		t.Errorf("hard start speed = %v", g.speed)
	}

	if err := g.Configure("", "fixed"); err != nil {
		t.Fatal(err)
	}
	g.Reset(testConfig(1))
	g.Step(press(core.ActionJump))
	g.elapsedMs = 30000
	g.Step(core.NewInputFrame())
	if g.speed != 3 {
		t.Errorf("fixed speed = %v, expected 3", g.speed)
	}

	if err := g.Configure("", "insane"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestCollisionEndsRun(t *testing.T) {
	g := started(t, 1)
	g.obstacles.obstacles = append(g.obstacles.obstacles, Obstacle{X: 95, Blocks: []float64{125}})

	st := g.Step(core.NewInputFrame())
	if !st.State.GameOver {
		t.Fatal("overlap should end the run")
	}

	before := g.Snapshot()
	for range 10 {
		g.Step(press(core.ActionJump))
	}
	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("steps after game over should not change anything")
	}
}

func TestBestScoreSurvivesReset(t *testing.T) {
	g := newGame(t, 1)
	var _ interface {
		BestScoreKey() string
		SetBestScore(int)
	} = g

	if g.BestScoreKey() != "runnerBestScore" {
		t.Errorf("key = %q", g.BestScoreKey())
	}
	g.SetBestScore(42)
	g.Reset(testConfig(2))
	if g.State().Best != 42 {
		t.Errorf("best = %d, expected 42", g.State().Best)
	}
}

func TestRestartReturnsToReady(t *testing.T) {
	g := newGame(t, 9)
	first := g.Snapshot()

	g.Step(press(core.ActionJump))
	for range 200 {
		g.Step(core.NewInputFrame())
	}
	g.Reset(testConfig(9))
	if !reflect.DeepEqual(first, g.Snapshot()) {
		t.Errorf("restart differs:\n%+v\n%+v", first, g.Snapshot())
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newGame(t, 2024)
		g.Step(press(core.ActionJump))
		for i := range 400 {
			in := core.NewInputFrame()
			if i%40 == 0 {
				in.Set(core.ActionJump)
			}
			g.Step(in)
		}
		return g.Snapshot()
	}
	if a, b := run(), run(); !reflect.DeepEqual(a, b) {
		t.Errorf("runs differ:\n%+v\n%+v", a, b)
	}
}

func TestRender(t *testing.T) {
	g := started(t, 1)
	g.SetBestScore(7)
	g.obstacles.obstacles = append(g.obstacles.obstacles, Obstacle{X: 400, Blocks: []float64{125}})

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	if !strings.Contains(scr.Row(0), "Best: 7") {
		t.Errorf("HUD = %q", scr.Row(0))
	}
	out := scr.String()
	if !strings.Contains(out, "═") {
		t.Error("ground line missing")
	}
	if !strings.Contains(out, "●") {
		t.Error("fallback head and blocks should be circles")
	}
}
