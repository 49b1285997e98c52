package gameplay

import (
	"math"

	engineinput "escaperoom/pkg/engine/input"
	"escaperoom/pkg/game/state"
)

// Speed is how far the player moves per frame for each held direction.
// Axes are independent, so diagonal movement is faster than straight movement.
const Speed = 5.0

// MovePlayer applies one frame of held-key movement and keeps the sprite inside the viewport
func MovePlayer(s *state.Session, in *engineinput.State) {
	p := s.Player
	if p == nil {
		return
	}

	maxX := s.Viewport - p.Width
	maxY := s.Viewport - p.Height

	if in.Held(engineinput.DirUp) {
		p.Y = clamp(p.Y-Speed, 0, maxY)
	}
	if in.Held(engineinput.DirDown) {
		p.Y = clamp(p.Y+Speed, 0, maxY)
	}
	if in.Held(engineinput.DirLeft) {
		p.X = clamp(p.X-Speed, 0, maxX)
	}
	if in.Held(engineinput.DirRight) {
		p.X = clamp(p.X+Speed, 0, maxX)
	}
}

// Resize handles a new window size. The play area is the largest square that fits.
func (c *Controller) Resize(width, height float64) float64 {
	size := math.Min(width, height)
	c.session.Resize(size)
	return size
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
