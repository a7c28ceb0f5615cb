package layout

import "image"

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// InclusiveBox returns the rectangle covering pixels x0..x1 and y0..y1,
// both corners included. Corners may be given in any order.
func InclusiveBox(x0, y0, x1, y1 int) image.Rectangle {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return image.Rect(x0, y0, x1+1, y1+1)
}

// Center returns the center point and half extents of rect in pixel-edge
// coordinates.
func Center(rect image.Rectangle) (cx, cy, rx, ry float64) {
	rect = Normalize(rect)
	rx = float64(rect.Dx()) / 2
	ry = float64(rect.Dy()) / 2
	cx = float64(rect.Min.X) + rx
	cy = float64(rect.Min.Y) + ry
	return cx, cy, rx, ry
}
