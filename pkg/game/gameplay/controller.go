// Package gameplay provides the client's room loading, movement and interaction logic.
package gameplay

import (
	"context"

	engineinput "escaperoom/pkg/engine/input"
	"escaperoom/pkg/game/room"
	"escaperoom/pkg/game/state"
)

// RoomSource fetches descriptors from the room service
type RoomSource interface {
	FetchRoom(ctx context.Context, roomID string) (room.Room, error)
	FetchSprite(ctx context.Context, spriteID string) (room.Sprite, error)
}

// AssetLoader makes images available to the renderer before a room is shown
type AssetLoader interface {
	Preload(ctx context.Context, paths ...string) error
}

// Dialogs shows modal notifications and prompts.
// While Active reports true the frame loop is suspended, like a browser alert.
type Dialogs interface {
	Alert(msg string)
	// Prompt asks for a line of text; answer runs on the game thread once the
	// player submits (ok true) or cancels (ok false).
	Prompt(msg string, answer func(input string, ok bool))
	Active() bool
}

// Controller owns the session and drives it from frames, clicks and resizes.
// All methods must be called from the game thread.
type Controller struct {
	session *state.Session
	input   *engineinput.State
	source  RoomSource
	assets  AssetLoader
	dialogs Dialogs

	results chan loadResult
}

// NewController wires a session to its collaborators
func NewController(session *state.Session, in *engineinput.State, source RoomSource, assets AssetLoader, dialogs Dialogs) *Controller {
	return &Controller{
		session: session,
		input:   in,
		source:  source,
		assets:  assets,
		dialogs: dialogs,
		results: make(chan loadResult, 4),
	}
}

// Session returns the controlled session
func (c *Controller) Session() *state.Session {
	return c.session
}

// Input returns the held-key state the renderer writes into
func (c *Controller) Input() *engineinput.State {
	return c.input
}

// Update runs one frame: apply finished loads, move the player, refresh hint visibility.
// The player keeps moving while the next room loads.
func (c *Controller) Update() {
	c.applyLoadResults()

	if c.dialogs.Active() {
		return
	}

	MovePlayer(c.session, c.input)
	UpdateHintVisibility(c.session)
}
