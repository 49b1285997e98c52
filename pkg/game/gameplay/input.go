package gameplay

// Click dispatches a pointer press at logical screen coordinates.
// The door is drawn on top of the hints, so it is tested first; hidden hints
// cannot be clicked.
func (c *Controller) Click(x, y float64) {
	s := c.session
	if c.dialogs.Active() || !s.HasRoom() {
		return
	}

	if s.Door.Contains(x, y) {
		c.ActivateDoor()
		return
	}

	for i := len(s.Hints) - 1; i >= 0; i-- {
		h := s.Hints[i]
		if h.Visible && h.Contains(x, y) {
			c.ActivateHint(h)
			return
		}
	}
}
