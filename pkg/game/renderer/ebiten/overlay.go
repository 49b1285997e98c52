package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"escaperoom/pkg/game/dialog"
)

// drawDialog renders the modal at the head of the queue as a centred panel
func (e *EbitenRenderer) drawDialog(screen *ebiten.Image) {
	m := e.dialogs.Current()
	if m == nil {
		return
	}

	size := float64(e.viewport)
	face := e.getSansFontFace()
	lh := lineHeight(face)

	panelW := size * dialogWidthScale
	textW := panelW - dialogPadding*2
	lines := e.wrapText(m.Message, textW, face)

	help := gotext.Get("Press Enter to continue")
	if m.Kind == dialog.KindPrompt {
		help = gotext.Get("Enter to submit, Escape to cancel")
	}

	panelH := float64(len(lines))*lh + lh + dialogPadding*2 // message + help line
	if m.Kind == dialog.KindPrompt {
		panelH += lh + dialogPadding
	}
	panelX := (size - panelW) / 2
	panelY := (size - panelH) / 2

	// Dim the room behind the dialog
	vector.FillRect(screen, 0, 0, float32(size), float32(size), colorDimmer, false)

	vector.FillRect(screen, float32(panelX), float32(panelY), float32(panelW), float32(panelH), colorPanelBackground, false)
	vector.StrokeRect(screen, float32(panelX), float32(panelY), float32(panelW), float32(panelH), 2, colorPanelBorder, false)

	y := panelY + dialogPadding
	for _, line := range lines {
		e.drawColoredTextWithFace(screen, line, panelX+dialogPadding, y, colorText, face)
		y += lh
	}

	if m.Kind == dialog.KindPrompt {
		y += dialogPadding / 2
		e.drawPromptInput(screen, m.Input, panelX+dialogPadding, y, textW, lh)
		y += lh + dialogPadding/2
	}

	e.drawColoredTextWithFace(screen, help, panelX+dialogPadding, y, colorSubtle, face)
}

// drawPromptInput draws the text field with a trailing cursor
func (e *EbitenRenderer) drawPromptInput(screen *ebiten.Image, input string, x, y, w, h float64) {
	mono := e.getMonoFontFace()
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), colorInputBackground, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, colorPanelBorder, false)

	// Cursor blinks at roughly 2Hz
	cursor := ""
	if (ebiten.Tick()/30)%2 == 0 {
		cursor = "_"
	}
	e.drawColoredTextWithFace(screen, input+cursor, x+4, y+(h-mono.Size)/2, colorText, mono)
}
