package entities

import "math"

// PlayerScale is the player sprite size as a fraction of the viewport
const PlayerScale = 0.05

// Player is the session-wide player sprite. X and Y are its centre.
type Player struct {
	X, Y          float64
	Width, Height float64
	Sprite        string // asset path
}

// NewPlayer creates a player centred in a square viewport of the given size
func NewPlayer(sprite string, viewport float64) *Player {
	p := &Player{
		X:      viewport / 2,
		Y:      viewport / 2,
		Sprite: sprite,
	}
	p.Rescale(viewport)
	return p
}

// Rescale sets the sprite size from the viewport. Position is left alone.
func (p *Player) Rescale(viewport float64) {
	p.Width = viewport * PlayerScale
	p.Height = p.Width
}

// Distance is the Euclidean distance between two points
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x1-x2, y1-y2)
}
