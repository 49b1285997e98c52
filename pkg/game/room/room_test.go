package room

import (
	"encoding/json"
	"testing"
)

func TestHintEffectiveRadius(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
		want   float64
	}{
		{"absent", 0, DefaultHintRadius},
		{"negative", -3, DefaultHintRadius},
		{"explicit", 80, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Hint{Radius: tt.radius}
			if got := h.EffectiveRadius(); got != tt.want {
				t.Errorf("EffectiveRadius() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDoorEffectiveInteractDistance(t *testing.T) {
	if got := (Door{}).EffectiveInteractDistance(); got != DefaultInteractDistance {
		t.Errorf("EffectiveInteractDistance() = %v, want %v", got, DefaultInteractDistance)
	}
	if got := (Door{InteractDistance: 120}).EffectiveInteractDistance(); got != 120 {
		t.Errorf("EffectiveInteractDistance() = %v, want 120", got)
	}
}

func TestRoomDecodesWireFormat(t *testing.T) {
	raw := `{
		"background": "/assets/backgrounds/room1.webp",
		"hints": [{"id": 1, "x": 100, "y": 200, "description": "A shiny object on the table."}],
		"door": {"x": 500, "y": 300, "nextRoom": "room2", "code": "1234"}
	}`

	var r Room
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if r.Door.NextRoom != "room2" || r.Door.Code != "1234" {
		t.Errorf("door = %+v, want nextRoom room2 code 1234", r.Door)
	}
	if len(r.Hints) != 1 || r.Hints[0].EffectiveRadius() != DefaultHintRadius {
		t.Errorf("hints = %+v, want one hint with default radius", r.Hints)
	}
}

func TestRoomCloneIsolatesHints(t *testing.T) {
	r := Room{Hints: []Hint{{ID: 1, Description: "a"}}}
	c := r.Clone()
	c.Hints[0].Description = "changed"
	if r.Hints[0].Description != "a" {
		t.Errorf("original hint mutated through clone: %q", r.Hints[0].Description)
	}
}
