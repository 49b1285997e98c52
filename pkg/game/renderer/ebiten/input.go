package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	engineinput "escaperoom/pkg/engine/input"
	"escaperoom/pkg/game/dialog"
	"escaperoom/pkg/logger"
)

// Update handles input and game logic (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		logger.Log.WithFields(logrus.Fields{"width": w, "height": h}).Info("Main window opened")
	}

	if e.dialogs.Active() {
		// Keys typed into a dialog must not move the player afterwards
		if in := e.controller.Input(); in.Size() > 0 {
			in.Clear()
		}
		e.handleDialogInput()
	} else {
		e.pollMovementKeys()
		e.dispatchPointer()
	}

	e.controller.Update()
	return nil
}

// pollMovementKeys mirrors the pressed state of every mapped key into the held set
func (e *EbitenRenderer) pollMovementKeys() {
	in := e.controller.Input()
	if !ebiten.IsFocused() {
		if in.Size() > 0 {
			in.Clear()
		}
		return
	}
	for key, code := range keyCodes {
		in.Apply(engineinput.RawInput{Code: code, Down: ebiten.IsKeyPressed(key)})
	}
}

// dispatchPointer forwards a left click or new touch to the controller
func (e *EbitenRenderer) dispatchPointer() {
	if x, y, ok := justPressedPointer(); ok {
		e.controller.Click(float64(x), float64(y))
	}
}

// handleDialogInput drives the modal at the head of the queue
func (e *EbitenRenderer) handleDialogInput() {
	m := e.dialogs.Current()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		e.dialogs.Cancel()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyKPEnter) {
		e.dialogs.Confirm()
		return
	}

	switch m.Kind {
	case dialog.KindAlert:
		_, _, clicked := justPressedPointer()
		if clicked || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			e.dialogs.Confirm()
		}
	case dialog.KindPrompt:
		if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
			e.dialogs.Backspace()
			return
		}
		e.chars = ebiten.AppendInputChars(e.chars[:0])
		e.dialogs.Type(e.chars...)
	}
}

// justPressedPointer returns the logical position of a left click or new touch this frame
func justPressedPointer() (int, int, bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return x, y, true
	}
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return x, y, true
	}
	return 0, 0, false
}
