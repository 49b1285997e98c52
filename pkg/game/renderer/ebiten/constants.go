package ebiten

import "image/color"

// Color palette
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}    // Dark blue-gray, shown behind the room and while loading
	colorHint            = color.RGBA{255, 0, 0, 255}     // Red
	colorDoor            = color.RGBA{0, 128, 0, 255}     // Green
	colorPlayerFallback  = color.RGBA{0, 255, 0, 255}     // Bright green, until the sprite image is cached
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorSubtle          = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorDimmer          = color.RGBA{0, 0, 0, 140}       // Behind dialogs
	colorPanelBackground = color.RGBA{30, 30, 50, 235}
	colorPanelBorder     = color.RGBA{100, 100, 150, 255}
	colorInputBackground = color.RGBA{15, 15, 26, 255}
)

const (
	defaultWindowSize = 800

	baseFontScale = 0.025 // UI font size as a fraction of the viewport
	minFontSize   = 12.0

	dialogWidthScale = 0.7 // Dialog panel width as a fraction of the viewport
	dialogPadding    = 16
)
