package submarine

import "github.com/vovakirdan/tui-submarine/internal/core"

// HitsObstacle reports whether box overlaps either solid part of o.
func HitsObstacle(box core.Rect, o Obstacle, worldH float64) bool {
	return box.Intersects(o.TopRect()) || box.Intersects(o.BottomRect(worldH))
}

// OutOfBounds reports whether box leaves the vertical world bounds.
func OutOfBounds(box core.Rect, worldH float64) bool {
	return box.Y < 0 || box.Bottom() > worldH
}

// Collides reports whether the player in s has crashed.
func Collides(s State, worldH float64) bool {
	box := s.Player.Rect()
	if OutOfBounds(box, worldH) {
		return true
	}
	for _, o := range s.Obstacles {
		if HitsObstacle(box, o, worldH) {
			return true
		}
	}
	return false
}
