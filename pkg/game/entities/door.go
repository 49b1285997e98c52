// Package entities contains the interactive objects of a room and the player.
package entities

import "escaperoom/pkg/game/room"

// Door visual and hit area size
const (
	DoorWidth  = 50.0
	DoorHeight = 100.0
)

// Door is the code-gated exit of the active room.
// It has no open state: a correct code immediately triggers a room transition.
type Door struct {
	X, Y             float64 // top-left corner of the door rectangle
	NextRoom         string
	Code             string
	InteractDistance float64
}

// NewDoor creates the door for a room descriptor
func NewDoor(d room.Door) *Door {
	return &Door{
		X:                d.X,
		Y:                d.Y,
		NextRoom:         d.NextRoom,
		Code:             d.Code,
		InteractDistance: d.EffectiveInteractDistance(),
	}
}

// InReach reports whether the player stands close enough to use the door.
// Distance is measured from the player centre to the door position.
func (d *Door) InReach(p *Player) bool {
	return Distance(p.X, p.Y, d.X, d.Y) <= d.InteractDistance
}

// CheckCode compares input against the unlock code. No trimming or case folding.
func (d *Door) CheckCode(input string) bool {
	return input == d.Code
}

// Contains reports whether (x, y) lies on the door rectangle
func (d *Door) Contains(x, y float64) bool {
	return x >= d.X && x <= d.X+DoorWidth && y >= d.Y && y <= d.Y+DoorHeight
}
