package gameplay

import (
	"testing"

	engineinput "escaperoom/pkg/engine/input"
	"escaperoom/pkg/game/entities"
	"escaperoom/pkg/game/state"
)

// makeSessionWithPlayer creates a session with a 40px player at (x, y) in an 800px viewport
func makeSessionWithPlayer(t *testing.T, x, y float64) *state.Session {
	t.Helper()
	s := state.NewSession("player1", 800)
	s.Player = entities.NewPlayer("/assets/sprites/player.png", 800)
	s.Player.X, s.Player.Y = x, y
	return s
}

func TestMovePlayer_AllFourDirections(t *testing.T) {
	dirs := []struct {
		name         string
		code         string
		wantX, wantY float64
	}{
		{"Up", "arrow_up", 400, 395},
		{"Down", "arrow_down", 400, 405},
		{"Left", "arrow_left", 395, 400},
		{"Right", "arrow_right", 405, 400},
	}
	for _, d := range dirs {
		t.Run(d.name, func(t *testing.T) {
			s := makeSessionWithPlayer(t, 400, 400)
			in := engineinput.NewState()
			in.Press(d.code)

			MovePlayer(s, in)

			if s.Player.X != d.wantX || s.Player.Y != d.wantY {
				t.Errorf("after Move%s: position = (%v,%v), want (%v,%v)", d.name, s.Player.X, s.Player.Y, d.wantX, d.wantY)
			}
		})
	}
}

func TestMovePlayer_NoKeysNoMove(t *testing.T) {
	s := makeSessionWithPlayer(t, 123, 456)
	MovePlayer(s, engineinput.NewState())
	if s.Player.X != 123 || s.Player.Y != 456 {
		t.Errorf("position = (%v,%v), want unchanged (123,456)", s.Player.X, s.Player.Y)
	}
}

func TestMovePlayer_DiagonalIsNotNormalised(t *testing.T) {
	s := makeSessionWithPlayer(t, 400, 400)
	in := engineinput.NewState()
	in.Press("arrow_up")
	in.Press("arrow_right")

	MovePlayer(s, in)

	if s.Player.X != 405 || s.Player.Y != 395 {
		t.Errorf("diagonal move: position = (%v,%v), want (405,395)", s.Player.X, s.Player.Y)
	}
}

func TestMovePlayer_HeldAcrossFrames(t *testing.T) {
	s := makeSessionWithPlayer(t, 400, 400)
	in := engineinput.NewState()
	in.Press("d")
	for i := 0; i < 10; i++ {
		MovePlayer(s, in)
	}
	if s.Player.X != 450 {
		t.Errorf("after 10 frames: X = %v, want 450", s.Player.X)
	}
}

func TestMovePlayer_ClampsToViewport(t *testing.T) {
	tests := []struct {
		name         string
		x, y         float64
		code         string
		wantX, wantY float64
	}{
		{"top edge", 400, 3, "arrow_up", 400, 0},
		{"left edge", 2, 400, "arrow_left", 0, 400},
		{"right edge", 758, 400, "arrow_right", 760, 400},
		{"bottom edge", 400, 760, "arrow_down", 400, 760},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := makeSessionWithPlayer(t, tt.x, tt.y)
			in := engineinput.NewState()
			in.Press(tt.code)

			MovePlayer(s, in)

			if s.Player.X != tt.wantX || s.Player.Y != tt.wantY {
				t.Errorf("position = (%v,%v), want (%v,%v)", s.Player.X, s.Player.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestUpdate_MovesAndRevealsHint(t *testing.T) {
	f := loadedFixture(t)
	h := f.c.Session().Hints[0] // (100, 200), radius 50
	placePlayer(f.c, 100, 255)

	f.c.Update()
	if h.Visible {
		t.Fatal("hint visible at distance 55")
	}

	f.c.Input().Press("arrow_up")
	f.c.Update()
	if f.c.Session().Player.Y != 250 {
		t.Fatalf("Y = %v, want 250", f.c.Session().Player.Y)
	}
	if !h.Visible {
		t.Error("hint hidden at distance 50")
	}
}

func TestUpdate_SuspendedWhileDialogOpen(t *testing.T) {
	f := loadedFixture(t)
	placePlayer(f.c, 400, 400)
	f.c.Input().Press("arrow_left")
	f.dialogs.active = true

	f.c.Update()

	if f.c.Session().Player.X != 400 {
		t.Errorf("X = %v, want 400 while a dialog is open", f.c.Session().Player.X)
	}
}

func TestResize_AbsoluteRescale(t *testing.T) {
	sizes := [][2]float64{{1000, 700}, {640, 900}}

	f := loadedFixture(t)
	placePlayer(f.c, 300, 310)
	hint := f.c.Session().Hints[0]

	var size float64
	for _, wh := range sizes {
		size = f.c.Resize(wh[0], wh[1])
	}

	s := f.c.Session()
	if size != 640 || s.Viewport != 640 {
		t.Fatalf("viewport = %v (returned %v), want 640", s.Viewport, size)
	}
	if want := 0.05 * 640; s.Player.Width != want || s.Player.Height != want {
		t.Errorf("player size = %vx%v, want %v square", s.Player.Width, s.Player.Height, want)
	}
	if want := 0.02 * 640; hint.VisualRadius != want {
		t.Errorf("hint visual radius = %v, want %v", hint.VisualRadius, want)
	}
	// positions are not rescaled
	if s.Player.X != 300 || s.Player.Y != 310 {
		t.Errorf("player moved to (%v,%v) on resize", s.Player.X, s.Player.Y)
	}
	if hint.X != 100 || hint.Y != 200 || hint.Radius != 50 {
		t.Errorf("hint geometry changed on resize: %+v", hint)
	}
}

func TestResize_BeforeFirstRoom(t *testing.T) {
	f := newFixture(t)
	f.c.Resize(500, 600)
	f.c.LoadRoom("room1", "player1")
	waitForLoad(t, f.c)

	p := f.c.Session().Player
	if p.Width != 0.05*500 || p.X != 250 || p.Y != 250 {
		t.Errorf("player = %+v, want 25px player centred in 500px viewport", p)
	}
}

func TestUpdate_MovesWhileNextRoomLoads(t *testing.T) {
	f := loadedFixture(t)
	placePlayer(f.c, 400, 400)

	gate := make(chan struct{})
	f.source.mu.Lock()
	f.source.gate = gate
	f.source.mu.Unlock()

	f.c.LoadRoom("room2", "player1")
	f.c.Input().Press("arrow_right")
	f.c.Update()
	f.c.Update()

	s := f.c.Session()
	if !s.Loading {
		t.Fatal("room2 finished loading before the gate opened")
	}
	if s.Player.X != 410 {
		t.Errorf("X = %v after two frames of loading, want 410", s.Player.X)
	}

	close(gate)
	waitForLoad(t, f.c)
	if s.RoomID != "room2" || !s.HasRoom() || s.Player.X != 410 {
		t.Errorf("after load: room=%q HasRoom=%v X=%v, want room2 with player at 410", s.RoomID, s.HasRoom(), s.Player.X)
	}
}
