// Package collision tests the player against the obstacle set using padded
// axis-aligned bounding boxes.
package collision

import "github.com/vovakirdan/dasher/internal/core"

// ObstacleBox returns an obstacle's collision rectangle: its frame rectangle
// inset by padding on every side.
func ObstacleBox(frame core.Rect, padding float64) core.Rect {
	return frame.Inset(padding, padding)
}

// PlayerBox returns the player's collision rectangle. The top edge and both
// dimensions are padded like an obstacle's, but the left edge stays at the
// player's x.
func PlayerBox(frame core.Rect, padding float64) core.Rect {
	return core.Rect{
		X: frame.X,
		Y: frame.Y + padding,
		W: frame.W - 2*padding,
		H: frame.H - 2*padding,
	}
}

// FirstHit returns the index of the first obstacle whose padded box overlaps
// the player's padded box, or -1 if none does.
func FirstHit(player core.Rect, obstacles []core.Rect, padding float64) int {
	pb := PlayerBox(player, padding)
	for i, o := range obstacles {
		if ObstacleBox(o, padding).Intersects(pb) {
			return i
		}
	}
	return -1
}

// Check reports whether any obstacle overlaps the player. It is stateless;
// callers keep any sticky result themselves.
func Check(player core.Rect, obstacles []core.Rect, padding float64) bool {
	return FirstHit(player, obstacles, padding) >= 0
}
