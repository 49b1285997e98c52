package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"escaperoom/pkg/game/entities"
	"escaperoom/pkg/game/state"
)

// UpdateHintVisibility shows each hint the player is near and has not unlocked yet
func UpdateHintVisibility(s *state.Session) {
	if s.Player == nil {
		return
	}
	for _, h := range s.Hints {
		h.UpdateVisibility(s.Player)
	}
}

// ActivateHint unlocks h and shows its description. Unlocked hints do nothing.
func (c *Controller) ActivateHint(h *entities.Hint) {
	if !h.Unlock() {
		return
	}
	c.dialogs.Alert(gotext.Get("Hint: %s", h.Description))
}
