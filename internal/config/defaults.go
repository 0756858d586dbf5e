package config

import (
	"embed"
)

//go:embed defaults/*.yaml
var defaultFiles embed.FS

// DefaultSnakeConfig returns the built-in snake settings.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{Grid: 10, MoveIntervalMs: 200, StartX: 5, StartY: 5}
}

// DefaultPacmanConfig returns the built-in chase settings.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Grid:          15,
		PlayerSpeed:   0.075,
		BoostFactor:   1.5,
		ContactRadius: 0.6,
		ClearZoneMin:  6,
		ClearZoneMax:  9,
		Ghosts: PacmanGhosts{
			Speed:         0.05,
			RetargetMs:    500,
			RetargetJitMs: 500,
			TurnChance:    0.7,
			SecondAt:      0.33,
			ThirdAt:       0.66,
			SpawnAttempts: 100,
		},
		Items: PacmanItems{IntervalMs: 10000, EffectMs: 5000},
	}
}

// DefaultPinballConfig returns the built-in table.
func DefaultPinballConfig() PinballConfig {
	return PinballConfig{
		Width:  400,
		Height: 600,
		DrainY: 575,
		Physics: PinballPhysics{
			Gravity:     0.3,
			Friction:    0.98,
			Restitution: 0.7,
			MaxSpeed:    15,
		},
		Ball: PinballBall{Radius: 15, StartX: 200, StartY: 100},
		Flipper: PinballFlipper{
			Length:      180,
			BaseWidth:   20,
			TipWidth:    8,
			PivotY:      485,
			Speed:       0.3,
			ReturnSpeed: 0.15,
			Bounce:      1.8,
			Boost:       20,
		},
		Bumper: PinballBumper{Radius: 25, GlowMs: 300, Points: 10},
		Star: PinballStar{
			Radius:     15,
			X:          200,
			Y:          220,
			FirstMs:    10000,
			LifetimeMs: 30000,
			RespawnMs:  10000,
			Points:     100,
		},
	}
}

// DefaultAsteroidsConfig returns the built-in shooter settings.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		Width:  400,
		Height: 600,
		Player: AsteroidsPlayer{Size: 40, Speed: 5, Y: 570},
		Laser: AsteroidsLaser{
			Width:      4,
			Height:     15,
			Speed:      8,
			CooldownMs: 250,
			SpawnY:     550,
		},
		Asteroid: AsteroidsAsteroid{
			Size:            150,
			Speed:           0.5,
			HP:              10,
			OpponentHP:      20,
			OpponentChance:  0.3,
			SpawnIntervalMs: 5000,
			Points:          10,
		},
	}
}

// DefaultBrickBreakerConfig returns the built-in brick wall.
func DefaultBrickBreakerConfig() BrickBreakerConfig {
	return BrickBreakerConfig{
		Width:  400,
		Height: 600,
		Ball:   BrickBall{Radius: 10, Speed: 5, MinSpeed: 4, MaxSpeed: 8},
		Paddle: BrickPaddle{Width: 80, Height: 15, Y: 560, Speed: 7},
		Bricks: BrickGrid{
			Rows:    4,
			Cols:    8,
			Width:   43.5,
			Height:  40,
			Padding: 4,
			OffsetX: 10,
			OffsetY: 60,
		},
	}
}

// DefaultRunnerConfig returns the built-in runner settings.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Width:   600,
		Height:  200,
		ScoreMs: 100,
		Player: RunnerPlayer{
			X:          100,
			GroundY:    160,
			HeadSize:   30,
			BodyHeight: 50,
			HalfWidth:  10,
			Gravity:    0.8,
			JumpSpeed:  -15,
		},
		Obstacles: RunnerObstacles{
			BlockSize:   35,
			Spacing:     2,
			FloatLift:   60,
			FloatJitter: 20,
			JitterMin:   0.6,
			JitterSpan:  0.8,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0,
			Progression:  ProgressionConfig{Type: "time", MaxAt: 60000},
			Scaling: ScalingConfig{
				SpeedFrom:      3,
				SpeedTo:        12,
				IntervalFromMs: 2000,
				IntervalToMs:   800,
			},
		},
	}
}

// DefaultUIConfig returns the built-in front-end settings. Overlays are
// minimal here; the embedded ui.yaml carries the full templates.
func DefaultUIConfig() UIConfig {
	return UIConfig{
		Input: InputConfig{HoldInitialMs: 550, HoldRepeatMs: 120},
		Overlays: OverlayConfig{
			Width:    36,
			Loading:  "Loading...",
			Ready:    "{{ .Title }}\nPress SPACE to start",
			GameOver: "GAME OVER\nScore: {{ .Score }}\n{{ .Hint }}",
			Win:      "YOU WIN!\n{{ .Summary }}\n{{ .Hint }}",
			Paused:   "PAUSED",
		},
	}
}
