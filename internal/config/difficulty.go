package config

import (
	"math"
	"time"
)

// Floors that keep the game playable at maximum difficulty.
const (
	minSpawnInterval = 250 * time.Millisecond
	minGapFactor     = 1.5 // Gap never shrinks below this multiple of the player height
)

// DifficultyManager calculates dynamic game parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the obstacle speed for the current difficulty level.
func (d *DifficultyManager) Speed(baseSpeed float64, score int, ticks int) float64 {
	level := d.Level(score, ticks)
	// Speed increases from base to base * (1 + speedMultiplier)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// GapSize returns the gap size for the current difficulty level.
// The result never drops below minGapFactor times playerHeight.
func (d *DifficultyManager) GapSize(baseGap, playerHeight float64, score int, ticks int) float64 {
	level := d.Level(score, ticks)
	result := baseGap - level*d.cfg.Scaling.GapReduction
	floor := math.Min(baseGap, playerHeight*minGapFactor)
	return math.Max(result, floor)
}

// SpawnInterval returns the automatic spawn interval for the current level.
func (d *DifficultyManager) SpawnInterval(base time.Duration, score int, ticks int) time.Duration {
	level := d.Level(score, ticks)
	result := base - time.Duration(level*float64(d.cfg.Scaling.IntervalReduction))
	floor := min(base, minSpawnInterval)
	return max(result, floor)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
