package ebiten

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// drawColoredTextWithFace draws text with a specific color and font face.
// y is the top of the line; text/v2 positions glyphs from the top-left.
func (e *EbitenRenderer) drawColoredTextWithFace(screen *ebiten.Image, str string, x, y float64, col color.Color, face *text.GoTextFace) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)

	text.Draw(screen, str, face, op)
}

// drawCenteredText draws a single line horizontally centred on cx with its top at y
func (e *EbitenRenderer) drawCenteredText(screen *ebiten.Image, str string, cx, y float64, col color.Color, face *text.GoTextFace) {
	w := e.getTextWidthWithFace(str, face)
	e.drawColoredTextWithFace(screen, str, cx-w/2, y, col, face)
}

// getTextWidthWithFace returns the width of a string in pixels using the given font face.
func (e *EbitenRenderer) getTextWidthWithFace(str string, face *text.GoTextFace) float64 {
	w, _ := text.Measure(str, face, 0)
	return w
}

// lineHeight returns the vertical advance between wrapped lines
func lineHeight(face *text.GoTextFace) float64 {
	return face.Size * 1.4
}

// wrapText splits str into lines no wider than maxWidth, breaking on spaces.
// A single word wider than maxWidth is kept on its own line.
func (e *EbitenRenderer) wrapText(str string, maxWidth float64, face *text.GoTextFace) []string {
	var lines []string
	for _, paragraph := range strings.Split(str, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if e.getTextWidthWithFace(candidate, face) > maxWidth {
				lines = append(lines, line)
				line = w
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}
