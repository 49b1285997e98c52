// Package room holds the room and sprite descriptors shared by the room
// service and the game client. It is pure data and has no engine imports.
package room

// Defaults applied when a descriptor leaves a distance unset
const (
	DefaultHintRadius       = 50.0
	DefaultInteractDistance = 50.0
)

// Room describes one scene: its background, the hints inside it and its exit door
type Room struct {
	Background string `json:"background"`
	Hints      []Hint `json:"hints"`
	Door       Door   `json:"door"`
}

// Hint is a proximity-revealed lore object
type Hint struct {
	ID          int     `json:"id"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Radius      float64 `json:"radius,omitempty"`
	Description string  `json:"description"`
}

// EffectiveRadius returns the reveal radius, falling back to DefaultHintRadius
func (h Hint) EffectiveRadius() float64 {
	if h.Radius <= 0 {
		return DefaultHintRadius
	}
	return h.Radius
}

// Door is the code-gated exit of a room
type Door struct {
	X                float64 `json:"x"`
	Y                float64 `json:"y"`
	NextRoom         string  `json:"nextRoom"`
	Code             string  `json:"code"`
	InteractDistance float64 `json:"interactDistance,omitempty"`
}

// EffectiveInteractDistance returns how close the player must stand to use the door
func (d Door) EffectiveInteractDistance() float64 {
	if d.InteractDistance <= 0 {
		return DefaultInteractDistance
	}
	return d.InteractDistance
}

// Sprite points at the image used to draw a player
type Sprite struct {
	Sprite string `json:"sprite"`
}

// Clone returns a deep copy so callers cannot mutate shared tables
func (r Room) Clone() Room {
	c := r
	if r.Hints != nil {
		c.Hints = make([]Hint, len(r.Hints))
		copy(c.Hints, r.Hints)
	}
	return c
}
