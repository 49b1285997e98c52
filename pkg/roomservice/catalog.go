// Package roomservice answers room and sprite lookups from static tables.
package roomservice

import (
	"errors"
	"fmt"
	"sort"

	"escaperoom/pkg/game/room"
)

var (
	// ErrNotFound is returned for any unknown room or sprite id.
	ErrNotFound = errors.New("not found")

	ErrRoomNotFound   = fmt.Errorf("room %w", ErrNotFound)
	ErrSpriteNotFound = fmt.Errorf("sprite %w", ErrNotFound)
)

// Catalog is a read-only lookup of rooms and sprites.
// It is never mutated after construction, so concurrent readers need no locking.
type Catalog struct {
	rooms   map[string]room.Room
	sprites map[string]room.Sprite
}

// NewCatalog builds a catalog from the given tables. The maps are copied.
func NewCatalog(rooms map[string]room.Room, sprites map[string]room.Sprite) *Catalog {
	c := &Catalog{
		rooms:   make(map[string]room.Room, len(rooms)),
		sprites: make(map[string]room.Sprite, len(sprites)),
	}
	for id, r := range rooms {
		c.rooms[id] = r.Clone()
	}
	for id, s := range sprites {
		c.sprites[id] = s
	}
	return c
}

// DefaultCatalog returns the shipped rooms. room2's door leads to room3,
// which does not exist yet; the client stalls on the loading screen there.
func DefaultCatalog() *Catalog {
	rooms := map[string]room.Room{
		"room1": {
			Background: "/assets/backgrounds/room1.webp",
			Hints: []room.Hint{
				{ID: 1, X: 100, Y: 200, Description: "A shiny object on the table."},
			},
			Door: room.Door{X: 500, Y: 300, NextRoom: "room2", Code: "1234"},
		},
		"room2": {
			Background: "/assets/backgrounds/room2.png",
			Hints: []room.Hint{
				{ID: 2, X: 200, Y: 250, Description: "A key hidden under a mat."},
			},
			Door: room.Door{X: 600, Y: 350, NextRoom: "room3", Code: "5678"},
		},
	}
	sprites := map[string]room.Sprite{
		"player1": {Sprite: "/assets/sprites/player.png"},
	}
	return NewCatalog(rooms, sprites)
}

// GetRoom looks up a room by id
func (c *Catalog) GetRoom(id string) (room.Room, error) {
	r, ok := c.rooms[id]
	if !ok {
		return room.Room{}, fmt.Errorf("%w: %q", ErrRoomNotFound, id)
	}
	return r.Clone(), nil
}

// GetSprite looks up a sprite by id
func (c *Catalog) GetSprite(id string) (room.Sprite, error) {
	s, ok := c.sprites[id]
	if !ok {
		return room.Sprite{}, fmt.Errorf("%w: %q", ErrSpriteNotFound, id)
	}
	return s, nil
}

// RoomIDs returns all room ids in sorted order
func (c *Catalog) RoomIDs() []string {
	ids := make([]string, 0, len(c.rooms))
	for id := range c.rooms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
