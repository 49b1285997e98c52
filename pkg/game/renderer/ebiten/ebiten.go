package ebiten

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"

	"escaperoom/pkg/game/dialog"
	"escaperoom/pkg/game/gameplay"
	"escaperoom/pkg/logger"
)

// New creates a renderer for controller. images and dialogs must be the same
// instances the controller was built with.
func New(controller *gameplay.Controller, images *ImageCache, dialogs *dialog.Queue, opts Options) (*EbitenRenderer, error) {
	size := opts.WindowSize
	if size <= 0 {
		size = defaultWindowSize
	}

	e := &EbitenRenderer{
		controller: controller,
		images:     images,
		dialogs:    dialogs,
		debug:      opts.Debug,
		viewport:   int(controller.Session().Viewport),
		windowSize: size,
	}
	if err := e.loadFonts(); err != nil {
		return nil, err
	}
	return e, nil
}

// Layout returns the largest square that fits the window (Ebiten interface)
// and reports size changes to the controller.
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := min(outsideWidth, outsideHeight)
	if size <= 0 {
		size = e.viewport
	}
	if size != e.viewport {
		e.viewport = int(e.controller.Resize(float64(outsideWidth), float64(outsideHeight)))
		logger.Log.WithField("viewport", e.viewport).Debug("Viewport resized")
	}
	return e.viewport, e.viewport
}

// Run opens the window and blocks until it is closed
func (e *EbitenRenderer) Run() error {
	ebiten.SetWindowSize(e.windowSize, e.windowSize)
	ebiten.SetWindowTitle(gotext.Get("Escape Room"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// Movement is per rendered frame
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
