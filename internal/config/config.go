// Package config loads per-game YAML configuration and drives difficulty
// progression. Every game has an embedded default, so a missing file is never
// an error; a file that is present but invalid is.
package config

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// SnakeConfig configures the grid snake.
type SnakeConfig struct {
	Grid           int     `yaml:"grid"`
	MoveIntervalMs float64 `yaml:"move_interval_ms"`
	StartX         int     `yaml:"start_x"`
	StartY         int     `yaml:"start_y"`
}

// Validate implements Validator.
func (c SnakeConfig) Validate() error {
	el := errors.NewErrorList()
	if c.Grid < 3 {
		el.Add(fmt.Errorf("grid must be at least 3, got %d", c.Grid))
	}
	el.Add(positive("move_interval_ms", c.MoveIntervalMs))
	if c.StartX < 0 || c.StartX >= c.Grid || c.StartY < 0 || c.StartY >= c.Grid {
		el.Add(fmt.Errorf("start (%d,%d) outside the %dx%d grid", c.StartX, c.StartY, c.Grid, c.Grid))
	}
	return el.Err()
}

// PacmanConfig configures the chase game.
type PacmanConfig struct {
	Grid          int          `yaml:"grid"`
	PlayerSpeed   float64      `yaml:"player_speed"`
	BoostFactor   float64      `yaml:"boost_factor"`
	ContactRadius float64      `yaml:"contact_radius"`
	ClearZoneMin  int          `yaml:"clear_zone_min"`
	ClearZoneMax  int          `yaml:"clear_zone_max"`
	Ghosts        PacmanGhosts `yaml:"ghosts"`
	Items         PacmanItems  `yaml:"items"`
}

// PacmanGhosts configures ghost movement and spawn thresholds.
type PacmanGhosts struct {
	Speed         float64 `yaml:"speed"`
	RetargetMs    float64 `yaml:"retarget_ms"`
	RetargetJitMs float64 `yaml:"retarget_jitter_ms"`
	TurnChance    float64 `yaml:"turn_chance"`
	SecondAt      float64 `yaml:"second_at"`
	ThirdAt       float64 `yaml:"third_at"`
	SpawnAttempts int     `yaml:"spawn_attempts"`
}

// PacmanItems configures cherry and snowflake power-ups.
type PacmanItems struct {
	IntervalMs float64 `yaml:"interval_ms"`
	EffectMs   float64 `yaml:"effect_ms"`
}

// Validate implements Validator.
func (c PacmanConfig) Validate() error {
	el := errors.NewErrorList()
	if c.Grid < 3 {
		el.Add(fmt.Errorf("grid must be at least 3, got %d", c.Grid))
	}
	el.Add(positive("player_speed", c.PlayerSpeed))
	el.Add(positive("boost_factor", c.BoostFactor))
	el.Add(positive("contact_radius", c.ContactRadius))
	if c.ClearZoneMin > c.ClearZoneMax {
		el.Add(fmt.Errorf("clear_zone_min %d above clear_zone_max %d", c.ClearZoneMin, c.ClearZoneMax))
	}
	el.Add(positive("ghosts.speed", c.Ghosts.Speed))
	el.Add(fraction("ghosts.turn_chance", c.Ghosts.TurnChance))
	el.Add(fraction("ghosts.second_at", c.Ghosts.SecondAt))
	el.Add(fraction("ghosts.third_at", c.Ghosts.ThirdAt))
	if c.Ghosts.SpawnAttempts < 1 {
		el.Add(fmt.Errorf("ghosts.spawn_attempts must be at least 1"))
	}
	el.Add(positive("items.interval_ms", c.Items.IntervalMs))
	el.Add(positive("items.effect_ms", c.Items.EffectMs))
	return el.Err()
}

// PinballConfig configures the pinball table.
type PinballConfig struct {
	Width   float64        `yaml:"width"`
	Height  float64        `yaml:"height"`
	DrainY  float64        `yaml:"drain_y"`
	Physics PinballPhysics `yaml:"physics"`
	Ball    PinballBall    `yaml:"ball"`
	Flipper PinballFlipper `yaml:"flipper"`
	Bumper  PinballBumper  `yaml:"bumper"`
	Star    PinballStar    `yaml:"star"`
}

// PinballPhysics holds the global motion constants.
type PinballPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	Friction    float64 `yaml:"friction"`
	Restitution float64 `yaml:"restitution"`
	MaxSpeed    float64 `yaml:"max_speed"`
}

// PinballBall holds the ball size and spawn point.
type PinballBall struct {
	Radius float64 `yaml:"radius"`
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
}

// PinballFlipper holds flipper geometry and response.
type PinballFlipper struct {
	Length      float64 `yaml:"length"`
	BaseWidth   float64 `yaml:"base_width"`
	TipWidth    float64 `yaml:"tip_width"`
	PivotY      float64 `yaml:"pivot_y"`
	Speed       float64 `yaml:"speed"`
	ReturnSpeed float64 `yaml:"return_speed"`
	Bounce      float64 `yaml:"bounce"`
	Boost       float64 `yaml:"boost"`
}

// PinballBumper holds bumper size, glow and scoring.
type PinballBumper struct {
	Radius float64 `yaml:"radius"`
	GlowMs float64 `yaml:"glow_ms"`
	Points int     `yaml:"points"`
}

// PinballStar holds the star pickup position and timers.
type PinballStar struct {
	Radius     float64 `yaml:"radius"`
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	FirstMs    float64 `yaml:"first_ms"`
	LifetimeMs float64 `yaml:"lifetime_ms"`
	RespawnMs  float64 `yaml:"respawn_ms"`
	Points     int     `yaml:"points"`
}

// Validate implements Validator.
func (c PinballConfig) Validate() error {
	el := errors.NewErrorList()
	el.Add(positive("width", c.Width))
	el.Add(positive("height", c.Height))
	if c.DrainY <= 0 || c.DrainY > c.Height {
		el.Add(fmt.Errorf("drain_y %.1f outside the table", c.DrainY))
	}
	el.Add(fraction("physics.friction", c.Physics.Friction))
	el.Add(positive("physics.max_speed", c.Physics.MaxSpeed))
	el.Add(positive("ball.radius", c.Ball.Radius))
	el.Add(positive("flipper.length", c.Flipper.Length))
	el.Add(positive("flipper.speed", c.Flipper.Speed))
	el.Add(positive("flipper.return_speed", c.Flipper.ReturnSpeed))
	el.Add(positive("bumper.radius", c.Bumper.Radius))
	el.Add(positive("star.radius", c.Star.Radius))
	el.Add(positive("star.lifetime_ms", c.Star.LifetimeMs))
	return el.Err()
}

// AsteroidsConfig configures the shooter.
type AsteroidsConfig struct {
	Width    float64           `yaml:"width"`
	Height   float64           `yaml:"height"`
	Player   AsteroidsPlayer   `yaml:"player"`
	Laser    AsteroidsLaser    `yaml:"laser"`
	Asteroid AsteroidsAsteroid `yaml:"asteroid"`
}

// AsteroidsPlayer holds ship size, speed and row.
type AsteroidsPlayer struct {
	Size  float64 `yaml:"size"`
	Speed float64 `yaml:"speed"`
	Y     float64 `yaml:"y"`
}

// AsteroidsLaser holds projectile size, speed and fire rate.
type AsteroidsLaser struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Speed      float64 `yaml:"speed"`
	CooldownMs float64 `yaml:"cooldown_ms"`
	SpawnY     float64 `yaml:"spawn_y"`
}

// AsteroidsAsteroid holds rock size, durability and spawn cadence.
type AsteroidsAsteroid struct {
	Size            float64 `yaml:"size"`
	Speed           float64 `yaml:"speed"`
	HP              int     `yaml:"hp"`
	OpponentHP      int     `yaml:"opponent_hp"`
	OpponentChance  float64 `yaml:"opponent_chance"`
	SpawnIntervalMs float64 `yaml:"spawn_interval_ms"`
	Points          int     `yaml:"points"`
}

// Validate implements Validator.
func (c AsteroidsConfig) Validate() error {
	el := errors.NewErrorList()
	el.Add(positive("width", c.Width))
	el.Add(positive("height", c.Height))
	el.Add(positive("player.size", c.Player.Size))
	el.Add(positive("player.speed", c.Player.Speed))
	el.Add(positive("laser.speed", c.Laser.Speed))
	el.Add(positive("laser.cooldown_ms", c.Laser.CooldownMs))
	el.Add(positive("asteroid.size", c.Asteroid.Size))
	if c.Asteroid.HP < 1 || c.Asteroid.OpponentHP < 1 {
		el.Add(fmt.Errorf("asteroid hp values must be at least 1"))
	}
	el.Add(fraction("asteroid.opponent_chance", c.Asteroid.OpponentChance))
	el.Add(positive("asteroid.spawn_interval_ms", c.Asteroid.SpawnIntervalMs))
	return el.Err()
}

// BrickBreakerConfig configures the brick breaker.
type BrickBreakerConfig struct {
	Width  float64     `yaml:"width"`
	Height float64     `yaml:"height"`
	Ball   BrickBall   `yaml:"ball"`
	Paddle BrickPaddle `yaml:"paddle"`
	Bricks BrickGrid   `yaml:"bricks"`
}

// BrickBall holds ball size and speed limits.
type BrickBall struct {
	Radius   float64 `yaml:"radius"`
	Speed    float64 `yaml:"speed"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
}

// BrickPaddle holds paddle geometry and speed.
type BrickPaddle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Y      float64 `yaml:"y"`
	Speed  float64 `yaml:"speed"`
}

// BrickGrid holds the wall layout.
type BrickGrid struct {
	Rows    int     `yaml:"rows"`
	Cols    int     `yaml:"cols"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Padding float64 `yaml:"padding"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

// Validate implements Validator.
func (c BrickBreakerConfig) Validate() error {
	el := errors.NewErrorList()
	el.Add(positive("width", c.Width))
	el.Add(positive("height", c.Height))
	el.Add(positive("ball.radius", c.Ball.Radius))
	if c.Ball.MinSpeed <= 0 || c.Ball.MinSpeed > c.Ball.MaxSpeed {
		el.Add(fmt.Errorf("ball speed range [%.1f, %.1f] is invalid", c.Ball.MinSpeed, c.Ball.MaxSpeed))
	}
	el.Add(positive("paddle.width", c.Paddle.Width))
	el.Add(positive("paddle.speed", c.Paddle.Speed))
	if c.Bricks.Rows < 1 || c.Bricks.Cols < 1 {
		el.Add(fmt.Errorf("bricks need at least one row and column"))
	}
	return el.Err()
}

// RunnerConfig configures the side-scrolling runner.
type RunnerConfig struct {
	Width      float64          `yaml:"width"`
	Height     float64          `yaml:"height"`
	Player     RunnerPlayer     `yaml:"player"`
	Obstacles  RunnerObstacles  `yaml:"obstacles"`
	ScoreMs    float64          `yaml:"score_ms"` // elapsed ms per point
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RunnerPlayer holds the runner body and jump physics.
type RunnerPlayer struct {
	X          float64 `yaml:"x"`
	GroundY    float64 `yaml:"ground_y"`
	HeadSize   float64 `yaml:"head_size"`
	BodyHeight float64 `yaml:"body_height"`
	HalfWidth  float64 `yaml:"half_width"`
	Gravity    float64 `yaml:"gravity"`
	JumpSpeed  float64 `yaml:"jump_speed"`
}

// RunnerObstacles holds block geometry and spawn jitter.
type RunnerObstacles struct {
	BlockSize   float64 `yaml:"block_size"`
	Spacing     float64 `yaml:"spacing"`
	FloatLift   float64 `yaml:"float_lift"`
	FloatJitter float64 `yaml:"float_jitter"`
	JitterMin   float64 `yaml:"jitter_min"`
	JitterSpan  float64 `yaml:"jitter_span"`
}

// Validate implements Validator.
func (c RunnerConfig) Validate() error {
	el := errors.NewErrorList()
	el.Add(positive("width", c.Width))
	el.Add(positive("height", c.Height))
	if c.Player.GroundY <= 0 || c.Player.GroundY > c.Height {
		el.Add(fmt.Errorf("player.ground_y %.1f outside the field", c.Player.GroundY))
	}
	el.Add(positive("player.gravity", c.Player.Gravity))
	if c.Player.JumpSpeed >= 0 {
		el.Add(fmt.Errorf("player.jump_speed must be negative (upwards), got %.1f", c.Player.JumpSpeed))
	}
	el.Add(positive("obstacles.block_size", c.Obstacles.BlockSize))
	el.Add(positive("score_ms", c.ScoreMs))
	el.Add(c.Difficulty.Validate())
	return el.Err()
}

// UIConfig configures the terminal front end.
type UIConfig struct {
	Input    InputConfig   `yaml:"input"`
	Overlays OverlayConfig `yaml:"overlays"`
}

// InputConfig holds key hold windows. Terminals report presses and
// auto-repeats but no releases, so a key counts as held until its window
// expires without a repeat.
type InputConfig struct {
	HoldInitialMs int `yaml:"hold_initial_ms"`
	HoldRepeatMs  int `yaml:"hold_repeat_ms"`
}

// OverlayConfig holds text/template sources for the session overlays.
type OverlayConfig struct {
	Ready    string `yaml:"ready"`
	GameOver string `yaml:"game_over"`
	Win      string `yaml:"win"`
	Paused   string `yaml:"paused"`
	Loading  string `yaml:"loading"`
	Width    int    `yaml:"width"`
}

// Validate implements Validator.
func (c UIConfig) Validate() error {
	el := errors.NewErrorList()
	if c.Input.HoldInitialMs <= 0 || c.Input.HoldRepeatMs <= 0 {
		el.Add(fmt.Errorf("input hold windows must be positive"))
	}
	if c.Overlays.Width < 10 {
		el.Add(fmt.Errorf("overlays.width must be at least 10, got %d", c.Overlays.Width))
	}
	return el.Err()
}

func positive(field string, v float64) error {
	if v <= 0 {
		return fmt.Errorf("%s must be positive, got %v", field, v)
	}
	return nil
}

func fraction(field string, v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("%s must be within [0, 1], got %v", field, v)
	}
	return nil
}
