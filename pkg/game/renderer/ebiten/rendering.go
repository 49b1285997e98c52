package ebiten

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"escaperoom/pkg/game/entities"
	"escaperoom/pkg/game/state"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	// Fill background first
	screen.Fill(colorBackground)

	s := e.controller.Session()
	if s.HasRoom() {
		e.drawRoom(screen, s)
	} else {
		e.drawLoading(screen)
	}

	// Dialogs are drawn over everything but the debug overlay
	e.drawDialog(screen)

	if e.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f\nFPS: %0.2f", ebiten.ActualTPS(), ebiten.ActualFPS()))
	}
}

// drawRoom draws the background, visible hints, the door and the player in that order
func (e *EbitenRenderer) drawRoom(screen *ebiten.Image, s *state.Session) {
	if bg := e.images.Image(s.Background); bg != nil {
		e.drawImageRect(screen, bg, 0, 0, s.Viewport, s.Viewport)
	}

	for _, h := range s.Hints {
		if !h.Visible {
			continue
		}
		vector.FillCircle(screen, float32(h.X), float32(h.Y), float32(h.VisualRadius), colorHint, true)
	}

	d := s.Door
	vector.FillRect(screen, float32(d.X), float32(d.Y), entities.DoorWidth, entities.DoorHeight, colorDoor, false)

	if s.Player != nil {
		e.drawPlayer(screen, s.Player)
	}
}

// drawPlayer draws the sprite centred on the player position
func (e *EbitenRenderer) drawPlayer(screen *ebiten.Image, p *entities.Player) {
	x := p.X - p.Width/2
	y := p.Y - p.Height/2

	sprite := e.images.Image(p.Sprite)
	if sprite == nil {
		vector.FillCircle(screen, float32(p.X), float32(p.Y), float32(p.Width/2), colorPlayerFallback, true)
		return
	}
	e.drawImageRect(screen, sprite, x, y, p.Width, p.Height)
}

// drawImageRect scales img to fill the w x h rectangle at (x, y)
func (e *EbitenRenderer) drawImageRect(screen, img *ebiten.Image, x, y, w, h float64) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// drawLoading shows the loading indicator centred on screen
func (e *EbitenRenderer) drawLoading(screen *ebiten.Image) {
	face := e.getSansFontFace()
	size := float64(e.viewport)
	e.drawCenteredText(screen, gotext.Get("Loading..."), size/2, size/2-face.Size/2, colorText, face)
}
