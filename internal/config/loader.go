package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Validator is implemented by every config struct.
type Validator interface {
	Validate() error
}

// LoadSnake loads snake settings.
func LoadSnake(customPath string) (SnakeConfig, error) {
	return load("snake.yaml", customPath, DefaultSnakeConfig)
}

// LoadPacman loads chase settings.
func LoadPacman(customPath string) (PacmanConfig, error) {
	return load("pacman.yaml", customPath, DefaultPacmanConfig)
}

// LoadPinball loads the pinball table.
func LoadPinball(customPath string) (PinballConfig, error) {
	return load("pinball.yaml", customPath, DefaultPinballConfig)
}

// LoadAsteroids loads shooter settings.
func LoadAsteroids(customPath string) (AsteroidsConfig, error) {
	return load("asteroids.yaml", customPath, DefaultAsteroidsConfig)
}

// LoadBrickBreaker loads the brick wall.
func LoadBrickBreaker(customPath string) (BrickBreakerConfig, error) {
	return load("brickbreaker.yaml", customPath, DefaultBrickBreakerConfig)
}

// LoadRunner loads runner settings.
func LoadRunner(customPath string) (RunnerConfig, error) {
	return load("runner.yaml", customPath, DefaultRunnerConfig)
}

// LoadUI loads front-end settings.
func LoadUI(customPath string) (UIConfig, error) {
	return load("ui.yaml", customPath, DefaultUIConfig)
}

// load resolves a config file in this order:
// customPath -> ~/.arcade/configs/<name> -> ./configs/<name> -> embedded default.
//
// A custom path that cannot be read, parsed or validated is an error. Files
// found by searching are skipped when broken, so a bad user file never stops
// the game from starting. Fields missing from a file keep their defaults.
func load[T Validator](name, customPath string, fallback func() T) (T, error) {
	if customPath != "" {
		cfg, err := decodeFile(customPath, fallback)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths(name) {
		cfg, err := decodeFile(path, fallback)
		if err != nil {
			continue
		}
		if cfg.Validate() == nil {
			return cfg, nil
		}
	}

	return Embedded(name, fallback)
}

// Embedded parses the embedded default for name, falling back to the
// hardcoded value if the embedded file is unusable.
func Embedded[T Validator](name string, fallback func() T) (T, error) {
	data, err := defaultFiles.ReadFile("defaults/" + name)
	if err != nil {
		return fallback(), nil
	}
	cfg := fallback()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fallback(), nil
	}
	return cfg, nil
}

func decodeFile[T any](path string, fallback func() T) (T, error) {
	cfg := fallback()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func searchPaths(name string) []string {
	var paths []string
	if p := userConfigPath(name); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", name))
}

// userConfigPath returns ~/.arcade/configs/<filename>, or "" without a home directory.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
