package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"escaperoom/pkg/logger"
)

// ActivateDoor runs the door flow: reach check, code prompt, then either a
// room transition or an "incorrect code" notice. The door stays usable after a miss.
func (c *Controller) ActivateDoor() {
	s := c.session
	door, p := s.Door, s.Player
	if door == nil || p == nil {
		return
	}

	if !door.InReach(p) {
		c.dialogs.Alert(gotext.Get("You're too far from the door!"))
		return
	}

	c.dialogs.Prompt(gotext.Get("Enter the code to unlock the door:"), func(code string, ok bool) {
		// the room may have been replaced while the prompt was open
		if s.Door != door {
			return
		}
		if ok && door.CheckCode(code) {
			c.dialogs.Alert(gotext.Get("Correct! Moving to the next room..."))
			c.LoadRoom(door.NextRoom, s.PlayerID)
			return
		}
		logger.Log.WithField("room", s.RoomID).Debug("Incorrect door code")
		c.dialogs.Alert(gotext.Get("Incorrect code. Try again."))
	})
}
