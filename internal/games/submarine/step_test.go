package submarine

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = time.Second / 60

// testParams returns a small world with round numbers and no automatic spawns.
func testParams() Params {
	return Params{
		WorldW:        1000,
		WorldH:        500,
		Gravity:       1,
		SwimImpulse:   -6,
		PlayerX:       100,
		PlayerStartY:  240,
		PlayerW:       20,
		PlayerH:       10,
		Speed:         5,
		ObstacleW:     50,
		GapH:          100,
		GapOffset:     0,
		SpawnInterval: time.Hour,
	}
}

func TestGravityFromRest(t *testing.T) {
	p := testParams()
	s := NewState(p)
	s.Player.Y = 0
	s.Player.VY = 0

	next := Step(s, Input{}, tick, p, rand.New(rand.NewSource(1)))

	assert.Equal(t, 1.0, next.Player.VY)
	assert.Equal(t, 1.0, next.Player.Y)
	assert.Equal(t, PhaseRunning, next.Phase)
}

func TestVelocityAccumulatesGravity(t *testing.T) {
	p := testParams()
	p.Gravity = 0.25
	s := NewState(p)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 20; i++ {
		prev := s.Player.VY
		s = Step(s, Input{}, tick, p, rng)
		require.Equal(t, PhaseRunning, s.Phase)
		assert.Equal(t, prev+p.Gravity, s.Player.VY, "tick %d", i)
	}
}

func TestSwimOverridesGravity(t *testing.T) {
	p := testParams()
	s := NewState(p)
	s.Player.VY = 7

	next := Step(s, Input{Swim: true}, tick, p, rand.New(rand.NewSource(1)))

	assert.Equal(t, p.SwimImpulse, next.Player.VY)
	assert.Equal(t, s.Player.Y+p.SwimImpulse, next.Player.Y)
}

func TestObstacleScrollsAndIsRemoved(t *testing.T) {
	p := testParams()
	p.Gravity = 0 // Hold the player inside the gap
	rng := rand.New(rand.NewSource(1))

	s := Spawn(NewState(p), p, rng)
	require.Len(t, s.Obstacles, 1)
	assert.Equal(t, p.WorldW, s.Obstacles[0].X)

	s = Step(s, Input{}, tick, p, rng)
	require.Len(t, s.Obstacles, 1)
	assert.Equal(t, p.WorldW-5, s.Obstacles[0].X)

	// Left edge reaches the left boundary after width/5 updates
	steps := int(p.WorldW / p.Speed)
	for i := 1; i < steps; i++ {
		prevX := s.Obstacles[0].X
		s = Step(s, Input{}, tick, p, rng)
		require.Equal(t, PhaseRunning, s.Phase)
		require.Len(t, s.Obstacles, 1)
		assert.Equal(t, prevX-p.Speed, s.Obstacles[0].X)
	}
	assert.Equal(t, 0.0, s.Obstacles[0].X)

	// It is culled once its right edge has passed the boundary too
	for i := 0; i < int(p.ObstacleW/p.Speed)-1; i++ {
		s = Step(s, Input{}, tick, p, rng)
		require.Len(t, s.Obstacles, 1)
	}
	s = Step(s, Input{}, tick, p, rng)
	assert.Empty(t, s.Obstacles)
	assert.Equal(t, 1, s.Score)
}

func TestScoreCountsEachCrossingOnce(t *testing.T) {
	p := testParams()
	p.Gravity = 0
	rng := rand.New(rand.NewSource(1))

	s := Spawn(NewState(p), p, rng)
	crossAt := int((p.WorldW - p.PlayerX + p.ObstacleW) / p.Speed)

	for i := 1; i <= crossAt+20; i++ {
		s = Step(s, Input{}, tick, p, rng)
		require.Equal(t, PhaseRunning, s.Phase)
		if i < crossAt {
			assert.Equal(t, 0, s.Score, "tick %d", i)
		} else {
			assert.Equal(t, 1, s.Score, "tick %d", i)
		}
	}
}

func TestTimedSpawn(t *testing.T) {
	p := testParams()
	p.Gravity = 0
	p.SpawnInterval = 3 * tick
	rng := rand.New(rand.NewSource(1))

	s := NewState(p)
	s = Step(s, Input{}, tick, p, rng)
	s = Step(s, Input{}, tick, p, rng)
	assert.Empty(t, s.Obstacles)
	assert.Equal(t, 2*tick, s.SinceSpawn)

	s = Step(s, Input{}, tick, p, rng)
	require.Len(t, s.Obstacles, 1)
	assert.Equal(t, p.WorldW, s.Obstacles[0].X, "timed spawns appear after movement")
	assert.Zero(t, s.SinceSpawn)
}

func TestManualSpawnIgnoresTimer(t *testing.T) {
	p := testParams()
	p.Gravity = 0
	rng := rand.New(rand.NewSource(1))

	s := Step(NewState(p), Input{Spawn: true}, tick, p, rng)
	require.Len(t, s.Obstacles, 1)
	assert.Equal(t, p.WorldW-p.Speed, s.Obstacles[0].X)
	assert.Equal(t, tick, s.SinceSpawn)

	s = Step(s, Input{Spawn: true}, tick, p, rng)
	require.Len(t, s.Obstacles, 2)
	assert.Less(t, s.Obstacles[0].ID, s.Obstacles[1].ID, "spawn order is kept")
}

func TestFallingOutOfBoundsEndsRun(t *testing.T) {
	p := testParams()
	rng := rand.New(rand.NewSource(1))

	s := NewState(p)
	s.Player.Y = p.WorldH - p.PlayerH - 0.5
	// An obstacle that would be scored this very tick
	s.Obstacles = append(s.Obstacles, Obstacle{ID: 1, X: p.PlayerX - p.ObstacleW + 1, W: p.ObstacleW, GapY: 0, GapH: p.WorldH})

	over := Step(s, Input{}, tick, p, rng)
	assert.Equal(t, PhaseGameOver, over.Phase)
	assert.Equal(t, 0, over.Score, "no score on the crash frame")

	again := Step(over, Input{Swim: true, Spawn: true}, tick, p, rng)
	assert.Equal(t, over, again, "GameOver is terminal")
}

func TestLeavingTheTopEndsRun(t *testing.T) {
	p := testParams()
	s := NewState(p)
	s.Player.Y = 0.5

	over := Step(s, Input{Swim: true}, tick, p, rand.New(rand.NewSource(1)))
	assert.Equal(t, PhaseGameOver, over.Phase)
}

func TestObstacleHitEndsRun(t *testing.T) {
	p := testParams()
	p.Gravity = 0
	s := NewState(p)
	// Gap far above the player; the bottom column is right on top of it
	s.Obstacles = []Obstacle{{ID: 1, X: p.PlayerX + 2, W: p.ObstacleW, GapY: 10, GapH: 50}}

	over := Step(s, Input{}, tick, p, rand.New(rand.NewSource(1)))
	assert.Equal(t, PhaseGameOver, over.Phase)
}

func TestStepDoesNotMutateInput(t *testing.T) {
	p := testParams()
	p.Gravity = 0
	rng := rand.New(rand.NewSource(1))
	s := Spawn(NewState(p), p, rng)
	before := s.Obstacles[0]

	_ = Step(s, Input{Spawn: true}, tick, p, rng)

	require.Len(t, s.Obstacles, 1)
	assert.Equal(t, before, s.Obstacles[0])
}

func TestScoreIsMonotonic(t *testing.T) {
	p := testParams()
	p.Gravity = 0.3
	p.SwimImpulse = -4
	p.SpawnInterval = 40 * tick
	rng := rand.New(rand.NewSource(7))
	inputs := rand.New(rand.NewSource(8))

	s := NewState(p)
	for i := 0; i < 2000 && s.Phase == PhaseRunning; i++ {
		passed := make(map[uint64]bool)
		for _, o := range s.Obstacles {
			passed[o.ID] = o.Passed
		}

		in := Autopilot(s, p)
		in.Spawn = inputs.Intn(200) == 0
		next := Step(s, in, tick, p, rng)

		newly := 0
		for _, o := range next.Obstacles {
			if o.Passed && !passed[o.ID] {
				newly++
			}
		}
		require.GreaterOrEqual(t, next.Score, s.Score)
		require.Equal(t, s.Score+newly, next.Score, "tick %d", i)
		s = next
	}
}

func TestCollisionIsStable(t *testing.T) {
	p := testParams()
	s := NewState(p)
	s.Obstacles = []Obstacle{
		{ID: 1, X: p.PlayerX - 10, W: p.ObstacleW, GapY: 100, GapH: 60},
		{ID: 2, X: 600, W: p.ObstacleW, GapY: 200, GapH: 100},
	}

	first := Collides(s, p.WorldH)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Collides(s, p.WorldH))
	}
	assert.True(t, first)

	box := s.Player.Rect()
	for _, o := range s.Obstacles {
		assert.Equal(t, box.Intersects(o.TopRect()), o.TopRect().Intersects(box))
		assert.Equal(t, box.Intersects(o.BottomRect(p.WorldH)), o.BottomRect(p.WorldH).Intersects(box))
	}
}

func TestCrossingAndLeavingInOneTickStillScores(t *testing.T) {
	p := testParams()
	p.Gravity = 0
	p.PlayerX = 2
	rng := rand.New(rand.NewSource(1))

	// Right edge at 3, one unit ahead of the player; the next tick takes it to -2
	s := NewState(p)
	s.Obstacles = []Obstacle{{ID: 1, X: -47, W: 50, GapY: 0, GapH: p.WorldH}}
	s.NextID = 2

	s = Step(s, Input{}, tick, p, rng)
	require.Equal(t, PhaseRunning, s.Phase)
	assert.Empty(t, s.Obstacles)
	assert.Equal(t, 1, s.Score)
}

func TestObstacleLeavingAfterScoringIsNotCountedTwice(t *testing.T) {
	p := testParams()
	p.Gravity = 0
	rng := rand.New(rand.NewSource(1))

	s := NewState(p)
	s.Obstacles = []Obstacle{{ID: 1, X: -48, W: 50, GapY: 0, GapH: p.WorldH, Passed: true}}
	s.Score = 1

	s = Step(s, Input{}, tick, p, rng)
	assert.Empty(t, s.Obstacles)
	assert.Equal(t, 1, s.Score)
}

func TestCrashingFrameDoesNotScoreLeavingObstacle(t *testing.T) {
	p := testParams()
	p.Gravity = 0
	p.PlayerX = 2
	rng := rand.New(rand.NewSource(1))

	s := NewState(p)
	s.Player.Y = 1
	s.Obstacles = []Obstacle{{ID: 1, X: -47, W: 50, GapY: 0, GapH: p.WorldH}}

	s = Step(s, Input{Swim: true}, tick, p, rng)
	assert.Equal(t, PhaseGameOver, s.Phase)
	assert.Equal(t, 0, s.Score)
}
