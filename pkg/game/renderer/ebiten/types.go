// Package ebiten provides the Ebiten-based renderer and input layer for the escape room client.
package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"escaperoom/pkg/game/dialog"
	"escaperoom/pkg/game/gameplay"
)

// Options configures the renderer
type Options struct {
	WindowSize int  // initial window side in pixels
	Debug      bool // draw the TPS/FPS overlay
}

// EbitenRenderer is the graphical client. It owns the frame loop and forwards
// input to the gameplay controller.
type EbitenRenderer struct {
	controller *gameplay.Controller
	images     *ImageCache
	dialogs    *dialog.Queue
	debug      bool

	// Side of the square logical screen, as last given to the controller
	viewport   int
	windowSize int

	// Font sources for text rendering
	sansFontSource *text.GoTextFaceSource // Sans-serif font for messages
	monoFontSource *text.GoTextFaceSource // Monospace font for prompt input

	// Cached font faces (recreated when the viewport changes)
	cachedUIFontSize float64
	cachedSansFace   *text.GoTextFace
	cachedMonoFace   *text.GoTextFace

	// Scratch buffer for ebiten.AppendInputChars
	chars []rune

	// Flag to track if we've logged window opening
	windowOpenedLogged bool
}

// keyCodes maps physical keys to the device-neutral codes of the input bindings
var keyCodes = buildKeyCodes()

func buildKeyCodes() map[ebiten.Key]string {
	codes := map[ebiten.Key]string{
		ebiten.KeyArrowUp:    "arrow_up",
		ebiten.KeyArrowDown:  "arrow_down",
		ebiten.KeyArrowLeft:  "arrow_left",
		ebiten.KeyArrowRight: "arrow_right",
	}
	// Letters are reported lower-case so rebinding to any of them works
	for k := ebiten.KeyA; k <= ebiten.KeyZ; k++ {
		codes[k] = string(rune('a' + (k - ebiten.KeyA)))
	}
	return codes
}
