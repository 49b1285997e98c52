package gameplay

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	engineinput "escaperoom/pkg/engine/input"
	"escaperoom/pkg/game/room"
	"escaperoom/pkg/game/state"
	"escaperoom/pkg/roomservice"
)

// fakeSource serves the default catalog and records which rooms were requested
type fakeSource struct {
	catalog *roomservice.Catalog

	mu        sync.Mutex
	requested []string
	fail      error
	gate      chan struct{} // when set, FetchRoom waits for it to close
}

func (f *fakeSource) FetchRoom(ctx context.Context, roomID string) (room.Room, error) {
	f.mu.Lock()
	f.requested = append(f.requested, roomID)
	fail, gate := f.fail, f.gate
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if fail != nil {
		return room.Room{}, fail
	}
	return f.catalog.GetRoom(roomID)
}

func (f *fakeSource) FetchSprite(ctx context.Context, spriteID string) (room.Sprite, error) {
	return f.catalog.GetSprite(spriteID)
}

func (f *fakeSource) rooms() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requested...)
}

type fakeAssets struct {
	mu     sync.Mutex
	loaded []string
	fail   error
}

func (f *fakeAssets) Preload(ctx context.Context, paths ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return f.fail
	}
	f.loaded = append(f.loaded, paths...)
	return nil
}

// fakeDialogs answers prompts immediately with a scripted code
type fakeDialogs struct {
	alerts  []string
	prompts []string
	answer  string
	cancel  bool
	active  bool
}

func (f *fakeDialogs) Alert(msg string) {
	f.alerts = append(f.alerts, msg)
}

func (f *fakeDialogs) Prompt(msg string, answer func(string, bool)) {
	f.prompts = append(f.prompts, msg)
	answer(f.answer, !f.cancel)
}

func (f *fakeDialogs) Active() bool {
	return f.active
}

func (f *fakeDialogs) lastAlert() string {
	if len(f.alerts) == 0 {
		return ""
	}
	return f.alerts[len(f.alerts)-1]
}

type fixture struct {
	c       *Controller
	source  *fakeSource
	assets  *fakeAssets
	dialogs *fakeDialogs
}

// newFixture builds a controller over the default catalog with an 800px viewport
func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		source:  &fakeSource{catalog: roomservice.DefaultCatalog()},
		assets:  &fakeAssets{},
		dialogs: &fakeDialogs{},
	}
	f.c = NewController(state.NewSession("player1", 800), engineinput.NewState(), f.source, f.assets, f.dialogs)
	return f
}

// waitForLoad blocks until one loader result arrives and applies it, as Update would
func waitForLoad(t *testing.T, c *Controller) {
	t.Helper()
	select {
	case res := <-c.results:
		c.applyLoad(res)
	case <-time.After(2 * time.Second):
		t.Fatal("room load did not finish")
	}
}

// loadedFixture is newFixture with room1 active
func loadedFixture(t *testing.T) *fixture {
	t.Helper()
	f := newFixture(t)
	f.c.LoadRoom("room1", "player1")
	waitForLoad(t, f.c)
	if !f.c.Session().HasRoom() {
		t.Fatal("room1 did not load")
	}
	return f
}

func placePlayer(c *Controller, x, y float64) {
	c.Session().Player.X = x
	c.Session().Player.Y = y
}

var errOffline = fmt.Errorf("offline")
