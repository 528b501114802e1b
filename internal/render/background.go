package render

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
)

const (
	highlightCenterXRatio = 0.2
	highlightCenterYRatio = 0.3
	highlightRadiusRatio  = 0.6
	highlightRadiusStep   = 8
	highlightBlurSigma    = 60
	darkOverlayOpacity    = 0.35
)

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

func lerpColor(c1, c2 color.NRGBA, t float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(lerp(float64(c1.R), float64(c2.R), t)),
		G: uint8(lerp(float64(c1.G), float64(c2.G), t)),
		B: uint8(lerp(float64(c1.B), float64(c2.B), t)),
		A: 255,
	}
}

// Background renders the opaque banner backdrop: a horizontal gradient from
// start to end, a soft radial highlight off-center towards the top-left, and
// for the dark theme a uniform 35% black overlay. Identical inputs produce
// identical output.
func Background(width, height int, start, end color.NRGBA, dark bool) *image.NRGBA {
	// One-row gradient strip stretched to full height; the gradient varies
	// only left-to-right.
	strip := image.NewNRGBA(image.Rect(0, 0, width, 1))
	den := width - 1
	if den < 1 {
		den = 1
	}
	for x := 0; x < width; x++ {
		strip.SetNRGBA(x, 0, lerpColor(start, end, float64(x)/float64(den)))
	}
	bg := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.NearestNeighbor.Scale(bg, bg.Bounds(), strip, strip.Bounds(), xdraw.Src, nil)

	mask := highlightMask(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := float64(mask.NRGBAAt(x, y).R) / 255
			if v == 0 {
				continue
			}
			px := bg.NRGBAAt(x, y)
			bg.SetNRGBA(x, y, color.NRGBA{
				R: uint8(lerp(float64(px.R), 255, v)),
				G: uint8(lerp(float64(px.G), 255, v)),
				B: uint8(lerp(float64(px.B), 255, v)),
				A: 255,
			})
		}
	}

	if dark {
		overlay := imaging.New(width, height, color.NRGBA{A: 255})
		bg = imaging.Overlay(bg, overlay, image.Point{}, darkOverlayOpacity)
	}
	return bg
}

// highlightMask draws concentric circles of quadratically increasing
// brightness around the highlight center and blurs them into a smooth falloff.
func highlightMask(width, height int) *image.NRGBA {
	dc := gg.NewContext(width, height)
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	cx := float64(width) * highlightCenterXRatio
	cy := float64(height) * highlightCenterYRatio
	maxR := math.Hypot(float64(width), float64(height)) * highlightRadiusRatio
	for r := maxR; r > 0; r -= highlightRadiusStep {
		v := math.Pow(1-r/maxR, 2)
		dc.SetRGB(v, v, v)
		dc.DrawCircle(cx, cy, r)
		dc.Fill()
	}
	return imaging.Blur(dc.Image(), highlightBlurSigma)
}
