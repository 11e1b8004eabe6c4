package submarine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGapCenteredWithoutOffset(t *testing.T) {
	p := testParams()
	o := NewObstacle(3, p, rand.New(rand.NewSource(1)))

	assert.Equal(t, uint64(3), o.ID)
	assert.Equal(t, p.WorldW, o.X)
	assert.Equal(t, p.ObstacleW, o.W)
	assert.Equal(t, 200.0, o.GapY)
	assert.Equal(t, 250.0, o.GapCenter())
	assert.False(t, o.Passed)
}

func TestGapPlacementIsSeeded(t *testing.T) {
	p := testParams()
	p.GapOffset = 120

	a := rand.New(rand.NewSource(42))
	b := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		oa := NewObstacle(uint64(i), p, a)
		ob := NewObstacle(uint64(i), p, b)
		assert.Equal(t, oa, ob)

		// Gap center stays within the configured offset
		assert.InDelta(t, p.WorldH/2, oa.GapCenter(), p.GapOffset)
	}
}

func TestGapIsClampedToWorld(t *testing.T) {
	p := testParams()
	p.GapOffset = 10_000
	rng := rand.New(rand.NewSource(9))

	for i := 0; i < 100; i++ {
		o := NewObstacle(uint64(i), p, rng)
		assert.GreaterOrEqual(t, o.GapY, 0.0)
		assert.LessOrEqual(t, o.GapY+o.GapH, p.WorldH)
	}
}

func TestSpawnAssignsIncreasingIDs(t *testing.T) {
	p := testParams()
	rng := rand.New(rand.NewSource(1))

	s := NewState(p)
	for i := 0; i < 4; i++ {
		s = Spawn(s, p, rng)
	}

	assert.Len(t, s.Obstacles, 4)
	for i, o := range s.Obstacles {
		assert.Equal(t, uint64(i+1), o.ID)
	}
	assert.Equal(t, uint64(5), s.NextID)
}

func TestObstacleRects(t *testing.T) {
	o := Obstacle{X: 10, W: 5, GapY: 30, GapH: 20}

	top := o.TopRect()
	bottom := o.BottomRect(100)

	assert.Equal(t, 30.0, top.H)
	assert.Equal(t, 50.0, bottom.Y)
	assert.Equal(t, 50.0, bottom.H)
	assert.Equal(t, 15.0, o.Right())
}
