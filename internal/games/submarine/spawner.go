package submarine

import (
	"math/rand"

	"github.com/vovakirdan/tui-submarine/internal/core"
)

// NewObstacle builds an obstacle at the right edge of the world.
// The gap center is drawn uniformly from world center +/- GapOffset and then
// clamped so the whole gap stays inside the world.
func NewObstacle(id uint64, p Params, rng *rand.Rand) Obstacle {
	offset := 0.0
	if p.GapOffset > 0 {
		offset = (rng.Float64()*2 - 1) * p.GapOffset
	}

	gapY := p.WorldH/2 + offset - p.GapH/2
	gapY = core.ClampF(gapY, 0, p.WorldH-p.GapH)

	return Obstacle{
		ID:   id,
		X:    p.WorldW,
		W:    p.ObstacleW,
		GapY: gapY,
		GapH: p.GapH,
	}
}

// Spawn returns s with a new obstacle appended at the right edge.
func Spawn(s State, p Params, rng *rand.Rand) State {
	out := s.clone()
	out.spawn(p, rng)
	return out
}

// spawn appends an obstacle in place. Callers must own s.Obstacles.
func (s *State) spawn(p Params, rng *rand.Rand) {
	s.Obstacles = append(s.Obstacles, NewObstacle(s.NextID, p, rng))
	s.NextID++
}
