// Package submarine implements a side-scrolling submarine game.
// The player swims up against constant gravity and must steer through the
// gaps of obstacle columns scrolling in from the right.
//
// The simulation is a pure function, Step, over a value State. The Game type
// wraps it with configuration, difficulty, pause and rendering for the
// terminal platform.
package submarine

import (
	"time"

	"github.com/vovakirdan/tui-submarine/internal/core"
)

// Phase is the state of a single run.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "Running"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Player is the submarine. X, W and H are fixed for the whole run.
type Player struct {
	X, Y float64 // Top-left of the hitbox
	VY   float64 // Vertical velocity, positive = down
	W, H float64
}

// Rect returns the player's collision box.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Obstacle is a column with a passable gap.
// The solid parts are everything above GapY and everything below GapY+GapH.
type Obstacle struct {
	ID     uint64
	X      float64 // Left edge
	W      float64
	GapY   float64 // Top of the gap
	GapH   float64 // Height of the gap
	Passed bool    // Counted towards the score
}

// Right returns the x-coordinate of the right edge.
func (o Obstacle) Right() float64 {
	return o.X + o.W
}

// GapCenter returns the vertical center of the gap.
func (o Obstacle) GapCenter() float64 {
	return o.GapY + o.GapH/2
}

// TopRect returns the collision rectangle for the part above the gap.
func (o Obstacle) TopRect() core.Rect {
	return core.NewRect(o.X, 0, o.W, o.GapY)
}

// BottomRect returns the collision rectangle for the part below the gap.
func (o Obstacle) BottomRect(worldH float64) core.Rect {
	bottomY := o.GapY + o.GapH
	return core.NewRect(o.X, bottomY, o.W, worldH-bottomY)
}

// State is the complete simulation state of one run.
// It is a value: Step never modifies the State it is given.
type State struct {
	Phase      Phase
	Player     Player
	Obstacles  []Obstacle    // Spawn order
	Score      int           // Obstacles passed
	Distance   int           // Frames survived
	SinceSpawn time.Duration // Time since the last automatic spawn
	NextID     uint64        // ID for the next spawned obstacle
}

// NewState returns a fresh running state with the player at its start position.
func NewState(p Params) State {
	return State{
		Phase: PhaseRunning,
		Player: Player{
			X: p.PlayerX,
			Y: p.PlayerStartY,
			W: p.PlayerW,
			H: p.PlayerH,
		},
		Obstacles: make([]Obstacle, 0, 8),
		NextID:    1,
	}
}

// clone returns a copy of s that shares no memory with it.
func (s State) clone() State {
	out := s
	out.Obstacles = make([]Obstacle, len(s.Obstacles), max(len(s.Obstacles)+1, 8))
	copy(out.Obstacles, s.Obstacles)
	return out
}
