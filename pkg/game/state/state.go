package state

import (
	"escaperoom/pkg/game/entities"
	"escaperoom/pkg/game/room"
)

// Viewport scales that follow a resize
const (
	HintVisualScale = 0.02
)

// Session is the client-side game state for one play session.
// The player survives room transitions; everything else belongs to the active room.
type Session struct {
	PlayerID string
	Player   *entities.Player // nil until the first room has loaded

	RoomID     string
	Background string // asset path, "" while loading
	Hints      []*entities.Hint
	Door       *entities.Door

	Loading bool

	// Viewport is the side of the square render surface
	Viewport float64

	// LoadGeneration increases on every BeginLoad; results from older loads are stale
	LoadGeneration uint64
}

// NewSession creates an empty session for a square viewport
func NewSession(playerID string, viewport float64) *Session {
	return &Session{
		PlayerID: playerID,
		Viewport: viewport,
	}
}

// BeginLoad discards the active room and enters the loading state.
// It returns the generation the caller's load result must carry.
func (s *Session) BeginLoad(roomID string) uint64 {
	s.RoomID = roomID
	s.Background = ""
	s.Hints = nil
	s.Door = nil
	s.Loading = true
	s.LoadGeneration++
	return s.LoadGeneration
}

// ApplyRoom builds the active room from fetched descriptors and leaves the loading state
func (s *Session) ApplyRoom(r room.Room, sprite room.Sprite) {
	s.Background = r.Background

	if s.Player == nil {
		s.Player = entities.NewPlayer(sprite.Sprite, s.Viewport)
	}

	s.Hints = make([]*entities.Hint, 0, len(r.Hints))
	for _, h := range r.Hints {
		s.Hints = append(s.Hints, entities.NewHint(h))
	}
	s.Door = entities.NewDoor(r.Door)

	s.Loading = false
}

// HasRoom reports whether a room is active and interactive
func (s *Session) HasRoom() bool {
	return !s.Loading && s.Door != nil
}

// Resize applies a new viewport size to everything that scales with it.
// Positions are not rescaled.
func (s *Session) Resize(viewport float64) {
	s.Viewport = viewport
	if s.Player != nil {
		s.Player.Rescale(viewport)
	}
	for _, h := range s.Hints {
		h.VisualRadius = viewport * HintVisualScale
	}
}
