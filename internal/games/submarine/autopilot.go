package submarine

// Autopilot steers the submarine toward the gap of the nearest obstacle that
// has not been cleared yet, or toward the middle of the world when none is
// coming. It swims when falling below the target by more than half the height
// a single stroke gains, so the ride oscillates around the target.
func Autopilot(s State, p Params) Input {
	if s.Phase != PhaseRunning {
		return Input{}
	}

	target := p.WorldH / 2
	if o, ok := upcoming(s); ok {
		target = o.GapCenter()
	}

	margin := 0.0
	if p.Gravity > 0 {
		margin = p.SwimImpulse * p.SwimImpulse / (2 * p.Gravity) / 2
	}

	_, cy := s.Player.Rect().Center()
	return Input{Swim: s.Player.VY >= 0 && cy > target+margin}
}

// upcoming returns the first obstacle in spawn order whose right edge is
// still ahead of the player's left edge.
func upcoming(s State) (Obstacle, bool) {
	for _, o := range s.Obstacles {
		if o.Right() > s.Player.X {
			return o, true
		}
	}
	return Obstacle{}, false
}
