package submarine

import (
	"math/rand"
	"time"
)

// Input is the player's commands for one tick.
type Input struct {
	Swim  bool // Set velocity to the swim impulse
	Spawn bool // Add an obstacle now, independent of the timer
}

// Step advances s by one tick and returns the new state.
//
// Order within a tick: input, gravity, obstacle movement, culling, timed
// spawn, collision, scoring. A GameOver state is returned unchanged.
// rng is only used when an obstacle spawns.
func Step(s State, in Input, dt time.Duration, p Params, rng *rand.Rand) State {
	if s.Phase != PhaseRunning {
		return s
	}

	next := s.clone()
	next.Distance++

	// Input
	if in.Spawn {
		next.spawn(p, rng)
	}

	// Physics: swim overrides gravity for this tick
	if in.Swim {
		next.Player.VY = p.SwimImpulse
	} else {
		next.Player.VY += p.Gravity
	}
	next.Player.Y += next.Player.VY

	// Move obstacles left
	for i := range next.Obstacles {
		next.Obstacles[i].X -= p.Speed
	}

	// Drop obstacles whose right edge has left the world. One that crossed
	// the player on its way out still scores below.
	crossed := 0
	kept := next.Obstacles[:0]
	for _, o := range next.Obstacles {
		if o.Right() > 0 {
			kept = append(kept, o)
		} else if !o.Passed && o.Right() <= next.Player.X {
			crossed++
		}
	}
	next.Obstacles = kept

	// Timed spawn
	next.SinceSpawn += dt
	if next.SinceSpawn >= p.SpawnInterval {
		next.spawn(p, rng)
		next.SinceSpawn = 0
	}

	if Collides(next, p.WorldH) {
		next.Phase = PhaseGameOver
		return next
	}

	// Score obstacles whose right edge crossed the player's x
	next.Score += crossed
	for i := range next.Obstacles {
		o := &next.Obstacles[i]
		if !o.Passed && o.Right() <= next.Player.X {
			o.Passed = true
			next.Score++
		}
	}

	return next
}
