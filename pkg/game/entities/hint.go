package entities

import "escaperoom/pkg/game/room"

// defaultHintVisualRadius is used until the first resize when a hint has no radius of its own
const defaultHintVisualRadius = 10.0

// Hint is a lore object revealed by proximity and unlocked by clicking it
type Hint struct {
	ID          int
	X, Y        float64
	Radius      float64 // reveal distance
	Description string

	Unlocked     bool
	Visible      bool
	VisualRadius float64 // drawn and clickable circle
}

// NewHint creates a locked, hidden hint from its descriptor
func NewHint(h room.Hint) *Hint {
	visual := h.Radius
	if visual <= 0 {
		visual = defaultHintVisualRadius
	}
	return &Hint{
		ID:           h.ID,
		X:            h.X,
		Y:            h.Y,
		Radius:       h.EffectiveRadius(),
		Description:  h.Description,
		VisualRadius: visual,
	}
}

// ShouldShow is the visibility rule: near enough and not yet unlocked
func (h *Hint) ShouldShow(p *Player) bool {
	return Distance(p.X, p.Y, h.X, h.Y) <= h.Radius && !h.Unlocked
}

// UpdateVisibility recomputes Visible for the player's current position
func (h *Hint) UpdateVisibility(p *Player) {
	h.Visible = h.ShouldShow(p)
}

// Unlock marks the hint unlocked. It returns false if it already was.
func (h *Hint) Unlock() bool {
	if h.Unlocked {
		return false
	}
	h.Unlocked = true
	return true
}

// Contains reports whether (x, y) lies inside the hint's visual circle
func (h *Hint) Contains(x, y float64) bool {
	return Distance(x, y, h.X, h.Y) <= h.VisualRadius
}
