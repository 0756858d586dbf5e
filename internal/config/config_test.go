package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestEmbeddedDefaultsMatchBuiltins(t *testing.T) {
	tests := []struct {
		name  string
		embed func() (any, error)
		want  any
	}{
		{"snake.yaml", func() (any, error) { return Embedded("snake.yaml", DefaultSnakeConfig) }, DefaultSnakeConfig()},
		{"pacman.yaml", func() (any, error) { return Embedded("pacman.yaml", DefaultPacmanConfig) }, DefaultPacmanConfig()},
		{"pinball.yaml", func() (any, error) { return Embedded("pinball.yaml", DefaultPinballConfig) }, DefaultPinballConfig()},
		{"asteroids.yaml", func() (any, error) { return Embedded("asteroids.yaml", DefaultAsteroidsConfig) }, DefaultAsteroidsConfig()},
		{"brickbreaker.yaml", func() (any, error) { return Embedded("brickbreaker.yaml", DefaultBrickBreakerConfig) }, DefaultBrickBreakerConfig()},
		{"runner.yaml", func() (any, error) { return Embedded("runner.yaml", DefaultRunnerConfig) }, DefaultRunnerConfig()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.embed()
			testutil.AssertEqual(t, "error", err, nil)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("embedded %s = %+v\nexpected %+v", tt.name, got, tt.want)
			}
			if err := got.(Validator).Validate(); err != nil {
				t.Errorf("embedded %s does not validate: %v", tt.name, err)
			}
		})
	}
}

func TestEmbeddedUIHasTemplates(t *testing.T) {
	ui, err := Embedded("ui.yaml", DefaultUIConfig)
	testutil.AssertEqual(t, "error", err, nil)
	testutil.AssertEqual(t, "validate", ui.Validate(), nil)
	for name, tpl := range map[string]string{
		"ready":     ui.Overlays.Ready,
		"game_over": ui.Overlays.GameOver,
		"win":       ui.Overlays.Win,
		"paused":    ui.Overlays.Paused,
		"loading":   ui.Overlays.Loading,
	} {
		if tpl == "" {
			t.Errorf("overlay %s is empty", name)
		}
	}
}

func TestLoadCustomPathPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("move_interval_ms: 120\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	testutil.AssertEqual(t, "error", err, nil)
	testutil.AssertEqual(t, "move interval", cfg.MoveIntervalMs, 120.0)
	testutil.AssertEqual(t, "grid keeps default", cfg.Grid, 10)
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.yaml")
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(broken, []byte("grid: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(invalid, []byte("grid: 1\nmove_interval_ms: -5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		path   string
		expErr string
	}{
		{"missing", filepath.Join(dir, "nope.yaml"), "config: read"},
		{"unparsable", broken, "config: parse"},
		{"invalid grid", invalid, "grid must be at least 3"},
		{"invalid interval", invalid, "move_interval_ms must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSnake(tt.path)
			testutil.AssertErrorContains(t, err, tt.expErr)
		})
	}
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	cfg := DefaultRunnerConfig()
	cfg.Player.JumpSpeed = 15
	cfg.Difficulty.Progression.Type = "vibes"

	err := cfg.Validate()
	testutil.AssertErrorContains(t, err, "jump_speed must be negative")
	testutil.AssertErrorContains(t, err, `"vibes"`)
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q): %v", s, err)
		}
	}
	_, err := ParsePreset("nightmare")
	testutil.AssertErrorContains(t, err, "unknown difficulty")
}

func TestDifficultyApply(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantEnabled bool
		wantLevel   float64
	}{
		{"", true, 0},
		{DifficultyEasy, true, 0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
		{DifficultyFixed, false, 0},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			d := DefaultRunnerConfig().Difficulty
			d.Apply(tt.preset)
			testutil.AssertEqual(t, "enabled", d.Enabled, tt.wantEnabled)
			testutil.AssertEqual(t, "initial level", d.InitialLevel, tt.wantLevel)
		})
	}
}

func TestDifficultyRunnerRamp(t *testing.T) {
	dm := NewDifficultyManager(DefaultRunnerConfig().Difficulty)

	tests := []struct {
		elapsed      float64
		wantSpeed    float64
		wantInterval float64
	}{
		{0, 3, 2000},
		{30000, 7.5, 1400},
		{60000, 12, 800},
		{120000, 12, 800},
	}
	for _, tt := range tests {
		if got := dm.Speed(0, tt.elapsed); !near(got, tt.wantSpeed) {
			t.Errorf("Speed at %vms = %v, expected %v", tt.elapsed, got, tt.wantSpeed)
		}
		if got := dm.IntervalMs(0, tt.elapsed); !near(got, tt.wantInterval) {
			t.Errorf("IntervalMs at %vms = %v, expected %v", tt.elapsed, got, tt.wantInterval)
		}
	}
}

func TestDifficultyFixedAndScore(t *testing.T) {
	fixed := DefaultRunnerConfig().Difficulty
	fixed.Apply(DifficultyFixed)
	dm := NewDifficultyManager(fixed)
	if dm.IsEnabled() {
		t.Error("fixed preset should disable the ramp")
	}
	testutil.AssertEqual(t, "fixed speed", dm.Speed(0, 90000), 3.0)

	byScore := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
	}
	dm = NewDifficultyManager(byScore)
	if got := dm.Level(50, 0); !near(got, 0.75) {
		t.Errorf("Level(50) = %v, expected 0.75", got)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	testutil.AssertEqual(t, "tilde", ExpandHome("~/.arcade/x.db"), filepath.Join(home, ".arcade/x.db"))
	testutil.AssertEqual(t, "absolute", ExpandHome("/tmp/x.db"), "/tmp/x.db")
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
