package config

import (
	"fmt"
	"math"

	"github.com/pixil98/go-errors"
)

// DifficultyConfig defines how a game ramps up over a session.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = gentlest, 1.0 = hardest
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines what drives the ramp.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time" or "none"
	MaxAt int    `yaml:"max_at"` // score, or elapsed ms, at which the level reaches 1.0
}

// ScalingConfig defines the values interpolated between level 0 and level 1.
type ScalingConfig struct {
	SpeedFrom      float64 `yaml:"speed_from"`
	SpeedTo        float64 `yaml:"speed_to"`
	IntervalFromMs float64 `yaml:"interval_from_ms"`
	IntervalToMs   float64 `yaml:"interval_to_ms"`
}

// Validate implements Validator.
func (c DifficultyConfig) Validate() error {
	el := errors.NewErrorList()
	switch c.Progression.Type {
	case "score", "time", "none":
	default:
		el.Add(fmt.Errorf("difficulty.progression.type %q is not one of score, time, none", c.Progression.Type))
	}
	el.Add(fraction("difficulty.initial_level", c.InitialLevel))
	if c.Progression.Type != "none" && c.Progression.MaxAt <= 0 {
		el.Add(fmt.Errorf("difficulty.progression.max_at must be positive"))
	}
	el.Add(positive("difficulty.scaling.speed_from", c.Scaling.SpeedFrom))
	el.Add(positive("difficulty.scaling.interval_to_ms", c.Scaling.IntervalToMs))
	return el.Err()
}

// DifficultyPreset is a named starting point for the ramp.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means "use the file".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// InitialLevelForPreset returns the starting level of a preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Apply rewrites the config for a preset. Fixed disables the ramp and keeps
// the level-0 values for the whole session.
func (c *DifficultyConfig) Apply(preset DifficultyPreset) {
	switch preset {
	case "":
	case DifficultyFixed:
		c.Enabled = false
		c.InitialLevel = 0
	default:
		c.Enabled = true
		c.InitialLevel = InitialLevelForPreset(preset)
	}
}

// DifficultyManager turns progress (score or elapsed time) into tuned values.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a manager for cfg.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0, 1),
	}
}

// IsEnabled reports whether the level moves at all.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current level in [0, 1]. It starts at the initial level
// and reaches 1.0 when score or elapsedMs hits MaxAt.
func (d *DifficultyManager) Level(score int, elapsedMs float64) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = elapsedMs / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0, 1)
	return d.initialLevel + progress*(1-d.initialLevel)
}

// Speed interpolates the scaled speed for the current level.
func (d *DifficultyManager) Speed(score int, elapsedMs float64) float64 {
	s := d.cfg.Scaling
	return s.SpeedFrom + (s.SpeedTo-s.SpeedFrom)*d.Level(score, elapsedMs)
}

// IntervalMs interpolates the scaled spawn interval for the current level.
func (d *DifficultyManager) IntervalMs(score int, elapsedMs float64) float64 {
	s := d.cfg.Scaling
	return s.IntervalFromMs + (s.IntervalToMs-s.IntervalFromMs)*d.Level(score, elapsedMs)
}

func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
