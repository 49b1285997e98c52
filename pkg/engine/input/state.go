package input

import (
	"github.com/zyedidia/generic/mapset"
)

// State is the set of currently held keys. Key down/up edges set and clear
// membership; the game loop reads it once per frame. It is not safe for
// concurrent use: both writes and reads belong to the game thread.
type State struct {
	held mapset.Set[string]
}

// NewState returns an empty input state
func NewState() *State {
	return &State{held: mapset.New[string]()}
}

// Apply records a reported key state
func (s *State) Apply(ev RawInput) {
	if ev.Down {
		s.Press(ev.Code)
	} else {
		s.Release(ev.Code)
	}
}

// Press marks code as held. Unbound codes are ignored.
func (s *State) Press(code string) {
	if MapToDirection(code) == DirNone {
		return
	}
	s.held.Put(code)
}

// Release clears code
func (s *State) Release(code string) {
	s.held.Remove(code)
}

// Held reports whether any key bound to dir is held
func (s *State) Held(dir Direction) bool {
	found := false
	s.held.Each(func(code string) {
		if MapToDirection(code) == dir {
			found = true
		}
	})
	return found
}

// Clear releases every key, e.g. when the window loses focus
func (s *State) Clear() {
	s.held = mapset.New[string]()
}

// Size returns the number of held keys
func (s *State) Size() int {
	return s.held.Size()
}
