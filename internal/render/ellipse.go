package render

import (
	"image"

	"github.com/rook-computer/alerticon/internal/render/layout"
	"golang.org/x/image/vector"
)

// kappa places cubic Bézier control points for a quarter ellipse.
const kappa = 0.5522847498

// coverageThreshold is the minimum mask coverage for a pixel to be filled.
// Half coverage approximates sampling at the pixel center.
const coverageThreshold = 0x80

// FillEllipse sets every pixel of dst covered by the ellipse inscribed in
// s.Box to s.Fill. Covered pixels are replaced, alpha included; there is no
// blending and no anti-aliasing.
func FillEllipse(dst *image.RGBA, s Shape) {
	bounds := dst.Bounds()
	box := layout.Normalize(s.Box)
	if box.Empty() || !box.Overlaps(bounds) {
		return
	}

	mask := ellipseMask(bounds, box)
	clip := box.Intersect(bounds)
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		for x := clip.Min.X; x < clip.Max.X; x++ {
			if mask.AlphaAt(x, y).A >= coverageThreshold {
				dst.SetRGBA(x, y, s.Fill)
			}
		}
	}
}

// ellipseMask rasterizes the ellipse inscribed in box into a coverage mask
// sharing bounds with the destination canvas.
func ellipseMask(bounds, box image.Rectangle) *image.Alpha {
	cx, cy, rx, ry := layout.Center(box)
	// Rasterizer coordinates are relative to bounds.Min.
	cx -= float64(bounds.Min.X)
	cy -= float64(bounds.Min.Y)
	kx, ky := kappa*rx, kappa*ry

	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	z.MoveTo(f32(cx+rx), f32(cy))
	z.CubeTo(f32(cx+rx), f32(cy+ky), f32(cx+kx), f32(cy+ry), f32(cx), f32(cy+ry))
	z.CubeTo(f32(cx-kx), f32(cy+ry), f32(cx-rx), f32(cy+ky), f32(cx-rx), f32(cy))
	z.CubeTo(f32(cx-rx), f32(cy-ky), f32(cx-kx), f32(cy-ry), f32(cx), f32(cy-ry))
	z.CubeTo(f32(cx+kx), f32(cy-ry), f32(cx+rx), f32(cy-ky), f32(cx+rx), f32(cy))
	z.ClosePath()

	mask := image.NewAlpha(bounds)
	z.Draw(mask, mask.Bounds(), image.Opaque, bounds.Min)
	return mask
}

func f32(v float64) float32 { return float32(v) }
