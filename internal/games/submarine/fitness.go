package submarine

import "github.com/vovakirdan/tui-submarine/internal/core"

// NextObstacle returns the closest obstacle whose center is still ahead of
// the player's center. ok is false when no obstacle is ahead.
func NextObstacle(s State) (o Obstacle, ok bool) {
	px, _ := s.Player.Rect().Center()
	best := -1
	for i, cand := range s.Obstacles {
		cx := cand.X + cand.W/2
		if cx <= px {
			continue
		}
		if best < 0 || cx < s.Obstacles[best].X+s.Obstacles[best].W/2 {
			best = i
		}
	}
	if best < 0 {
		return Obstacle{}, false
	}
	return s.Obstacles[best], true
}

// DistanceTo returns the horizontal distance from the player's center to the
// center of o.
func DistanceTo(s State, o Obstacle) float64 {
	px, _ := s.Player.Rect().Center()
	return o.X + o.W/2 - px
}

// HeightTo returns the vertical distance from the player's center to the
// center of o's gap. Positive means the gap is below the player.
func HeightTo(s State, o Obstacle) float64 {
	_, py := s.Player.Rect().Center()
	return o.GapCenter() - py
}

// Fitness scores how well a run went: the distance traveled minus how far
// the player ended up from the next gap. Without an obstacle ahead it is the
// distance alone.
func Fitness(s State) float64 {
	d := float64(s.Distance)
	o, ok := NextObstacle(s)
	if !ok {
		return d
	}
	return d - (DistanceTo(s, o) + core.AbsF(HeightTo(s, o)))
}
