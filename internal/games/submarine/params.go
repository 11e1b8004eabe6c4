package submarine

import (
	"time"

	"github.com/vovakirdan/tui-submarine/internal/config"
)

// Params are the constants Step works with for one tick.
// Difficulty may change Speed, GapH and SpawnInterval between ticks.
type Params struct {
	WorldW, WorldH float64

	Gravity     float64
	SwimImpulse float64

	PlayerX, PlayerStartY float64
	PlayerW, PlayerH      float64

	Speed         float64
	ObstacleW     float64
	GapH          float64
	GapOffset     float64
	SpawnInterval time.Duration
}

// ParamsFromConfig returns the base parameters of a configuration.
func ParamsFromConfig(cfg config.SubmarineConfig) Params {
	return Params{
		WorldW:        cfg.World.Width,
		WorldH:        cfg.World.Height,
		Gravity:       cfg.Physics.Gravity,
		SwimImpulse:   cfg.Physics.SwimImpulse,
		PlayerX:       cfg.Player.X,
		PlayerStartY:  cfg.Player.StartY,
		PlayerW:       cfg.Player.Width,
		PlayerH:       cfg.Player.Height,
		Speed:         cfg.Obstacles.Speed,
		ObstacleW:     cfg.Obstacles.Width,
		GapH:          cfg.Obstacles.GapSize,
		GapOffset:     cfg.Obstacles.GapOffset,
		SpawnInterval: cfg.Obstacles.SpawnInterval,
	}
}

// Scaled returns p adjusted to the difficulty reached at the given score and
// tick count.
func (p Params) Scaled(d *config.DifficultyManager, score, ticks int) Params {
	if d == nil {
		return p
	}
	out := p
	out.Speed = d.Speed(p.Speed, score, ticks)
	out.GapH = d.GapSize(p.GapH, p.PlayerH, score, ticks)
	out.SpawnInterval = d.SpawnInterval(p.SpawnInterval, score, ticks)
	return out
}
