package render

import "image/color"

// Icon palette and canvas size.
var (
	BellBody        = color.RGBA{R: 0x7C, G: 0x3A, B: 0xED, A: 0xFF} // #7c3aed
	BellHighlight   = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF} // #ffffff
	NotificationDot = color.RGBA{R: 0xEF, G: 0x44, B: 0x44, A: 0xFF} // #ef4444
	Transparent     = color.RGBA{}

	CanvasWidth  = 64
	CanvasHeight = 64
)
