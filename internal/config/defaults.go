package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/submarine.yaml
var defaultSubmarineYAML []byte

// DefaultSubmarineConfig returns the default submarine configuration.
// It mirrors defaults/submarine.yaml.
func DefaultSubmarineConfig() SubmarineConfig {
	return SubmarineConfig{
		World: SubmarineWorld{
			Width:  1280,
			Height: 640,
		},
		Physics: SubmarinePhysics{
			Gravity:     0.5,
			SwimImpulse: -8.0,
		},
		Player: SubmarinePlayer{
			X:      250,
			StartY: 200,
			Width:  60,
			Height: 30,
		},
		Obstacles: SubmarineObstacles{
			Speed:         5,
			Width:         80,
			GapSize:       170,
			GapOffset:     100,
			SpawnInterval: time.Second,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.6,
				GapReduction:      40,
				IntervalReduction: 300 * time.Millisecond,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSubmarineYAML
}
