// Package config provides YAML-based game configuration loading and
// difficulty management for the submarine game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned by Validate for out-of-range values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// SubmarineConfig contains all configuration for the submarine game.
// Distances are in world units; the renderer scales the world to the terminal.
type SubmarineConfig struct {
	World      SubmarineWorld     `yaml:"world"`
	Physics    SubmarinePhysics   `yaml:"physics"`
	Player     SubmarinePlayer    `yaml:"player"`
	Obstacles  SubmarineObstacles `yaml:"obstacles"`
	Difficulty DifficultyConfig   `yaml:"difficulty"`
}

// SubmarineWorld defines the visible play area.
type SubmarineWorld struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SubmarinePhysics defines per-tick physics parameters.
type SubmarinePhysics struct {
	Gravity     float64 `yaml:"gravity"`      // Added to vertical velocity every tick
	SwimImpulse float64 `yaml:"swim_impulse"` // Velocity set by swim (negative = up)
}

// SubmarinePlayer defines the submarine hitbox and start position.
type SubmarinePlayer struct {
	X      float64 `yaml:"x"`
	StartY float64 `yaml:"start_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SubmarineObstacles defines obstacle geometry and spawning.
type SubmarineObstacles struct {
	Speed         float64       `yaml:"speed"`          // Leftward movement per tick
	Width         float64       `yaml:"width"`          // Horizontal size of a column
	GapSize       float64       `yaml:"gap_size"`       // Height of the passable channel
	GapOffset     float64       `yaml:"gap_offset"`     // Max distance of gap center from world center
	SpawnInterval time.Duration `yaml:"spawn_interval"` // Time between automatic spawns
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64       `yaml:"speed_multiplier"`   // Multiplier added to speed at max difficulty
	GapReduction      float64       `yaml:"gap_reduction"`      // Gap size reduction at max difficulty
	IntervalReduction time.Duration `yaml:"interval_reduction"` // Spawn interval reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the selectable difficulty presets in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a flag value to a preset.
// An empty string yields an empty preset, meaning "use the config file as is".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate checks that the configuration describes a playable world.
func (c SubmarineConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size must be positive, got %vx%v", ErrInvalidConfig, c.World.Width, c.World.Height)
	case c.Physics.SwimImpulse >= 0:
		return fmt.Errorf("%w: swim_impulse must be negative (upward), got %v", ErrInvalidConfig, c.Physics.SwimImpulse)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalidConfig)
	case c.Player.X <= 0 || c.Player.X >= c.World.Width:
		return fmt.Errorf("%w: player x %v outside world", ErrInvalidConfig, c.Player.X)
	case c.Player.StartY < 0 || c.Player.StartY+c.Player.Height > c.World.Height:
		return fmt.Errorf("%w: player start_y %v outside world", ErrInvalidConfig, c.Player.StartY)
	case c.Obstacles.Speed <= 0:
		return fmt.Errorf("%w: obstacle speed must be positive", ErrInvalidConfig)
	case c.Obstacles.Width <= 0:
		return fmt.Errorf("%w: obstacle width must be positive", ErrInvalidConfig)
	case c.Obstacles.GapSize <= 0 || c.Obstacles.GapSize >= c.World.Height:
		return fmt.Errorf("%w: gap_size must be in (0, world height), got %v", ErrInvalidConfig, c.Obstacles.GapSize)
	case c.Obstacles.GapOffset < 0:
		return fmt.Errorf("%w: gap_offset must not be negative", ErrInvalidConfig)
	case c.Obstacles.SpawnInterval <= 0:
		return fmt.Errorf("%w: spawn_interval must be positive", ErrInvalidConfig)
	case c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1:
		return fmt.Errorf("%w: initial_level must be within [0, 1]", ErrInvalidConfig)
	}
	return nil
}
