package render

import (
	"image"
	"image/color"

	"github.com/rook-computer/alerticon/internal/render/layout"
	xdraw "golang.org/x/image/draw"
)

// Shape is a solid ellipse inscribed in Box.
type Shape struct {
	Name string
	Box  image.Rectangle
	Fill color.RGBA
}

// BellShapes lists the icon's ellipses in draw order. Later shapes overwrite
// earlier ones where they overlap.
var BellShapes = []Shape{
	{Name: "body", Box: layout.InclusiveBox(15, 15, 49, 49), Fill: BellBody},
	{Name: "highlight", Box: layout.InclusiveBox(22, 22, 42, 42), Fill: BellHighlight},
	{Name: "dot", Box: layout.InclusiveBox(42, 12, 54, 24), Fill: NotificationDot},
}

// NewCanvas allocates a fully transparent icon canvas.
func NewCanvas() *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, CanvasWidth, CanvasHeight))
	xdraw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: Transparent}, image.Point{}, xdraw.Src)
	return canvas
}

// RenderIcon draws the bell icon onto a fresh canvas.
func RenderIcon() *image.RGBA {
	canvas := NewCanvas()
	for _, s := range BellShapes {
		FillEllipse(canvas, s)
	}
	return canvas
}
