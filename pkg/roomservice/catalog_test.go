package roomservice

import (
	"errors"
	"testing"

	"escaperoom/pkg/game/room"
)

func TestGetRoom_KnownRoomsAreComplete(t *testing.T) {
	c := DefaultCatalog()
	for _, id := range c.RoomIDs() {
		t.Run(id, func(t *testing.T) {
			r, err := c.GetRoom(id)
			if err != nil {
				t.Fatalf("GetRoom(%q) error = %v", id, err)
			}
			if r.Background == "" {
				t.Errorf("GetRoom(%q).Background is empty", id)
			}
			if r.Door.NextRoom == "" {
				t.Errorf("GetRoom(%q).Door.NextRoom is empty", id)
			}
		})
	}
}

func TestGetRoom_UnknownIsNotFound(t *testing.T) {
	c := DefaultCatalog()
	for _, id := range []string{"", "room3", "ROOM1", "room1 "} {
		_, err := c.GetRoom(id)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("GetRoom(%q) error = %v, want ErrNotFound", id, err)
		}
		if !errors.Is(err, ErrRoomNotFound) {
			t.Errorf("GetRoom(%q) error = %v, want ErrRoomNotFound", id, err)
		}
	}
}

func TestGetSprite(t *testing.T) {
	c := DefaultCatalog()
	s, err := c.GetSprite("player1")
	if err != nil {
		t.Fatalf("GetSprite(player1) error = %v", err)
	}
	if s.Sprite != "/assets/sprites/player.png" {
		t.Errorf("GetSprite(player1).Sprite = %q, want /assets/sprites/player.png", s.Sprite)
	}

	if _, err := c.GetSprite("player2"); !errors.Is(err, ErrSpriteNotFound) {
		t.Errorf("GetSprite(player2) error = %v, want ErrSpriteNotFound", err)
	}
}

func TestRoom1LeadsToRoom2(t *testing.T) {
	r, err := DefaultCatalog().GetRoom("room1")
	if err != nil {
		t.Fatal(err)
	}
	if r.Door.NextRoom != "room2" || r.Door.Code != "1234" {
		t.Errorf("room1 door = %+v, want nextRoom room2 code 1234", r.Door)
	}
}

func TestGetRoom_ReturnsCopy(t *testing.T) {
	c := NewCatalog(map[string]room.Room{
		"a": {Background: "/assets/a.png", Hints: []room.Hint{{ID: 1, Description: "x"}}},
	}, nil)

	r, _ := c.GetRoom("a")
	r.Hints[0].Description = "mutated"

	again, _ := c.GetRoom("a")
	if again.Hints[0].Description != "x" {
		t.Errorf("catalog mutated through returned room: %q", again.Hints[0].Description)
	}
}
