package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// HitsObstacle reports whether body overlaps the top or bottom pipe of any
// obstacle.
func HitsObstacle(body core.Rect, obstacles []Obstacle, l Layout) bool {
	for _, o := range obstacles {
		if body.Overlaps(o.TopRect(l)) || body.Overlaps(o.BottomRect(l)) {
			return true
		}
	}
	return false
}

// OutOfBounds reports whether body has hit the ground or left the top of the field.
func OutOfBounds(body core.Rect, fieldH float64) bool {
	return body.Bottom() > fieldH || body.Y < 0
}

// CheckCollision is the full end-of-run test.
func CheckCollision(body core.Rect, obstacles []Obstacle, l Layout) bool {
	return OutOfBounds(body, l.Field.Height) || HitsObstacle(body, obstacles, l)
}
