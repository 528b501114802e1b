package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/wss-studio/bannerkit/internal/render/layout"
)

const (
	titleMaxSize    = 112
	titleMinSize    = 32
	subtitleMaxMin  = 28 // lower bound applied to the derived subtitle maximum
	subtitleMinSize = 18
	subtitleRatio   = 0.35
	fitStep         = 2

	// Combined block height counts the subtitle at 1.6x its ink height.
	subtitleHeightFactor = 1.6
)

var (
	textColor       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	textShadowColor = color.NRGBA{R: 0, G: 0, B: 0, A: 128}
)

// measureText returns the ink width and height of text rendered with face.
func measureText(text string, face font.Face) (w, h int) {
	bounds, _ := font.BoundString(face, text)
	return (bounds.Max.X - bounds.Min.X).Ceil(), (bounds.Max.Y - bounds.Min.Y).Ceil()
}

// fitText walks down from maxSize in steps of fitStep until text fits within
// targetWidth, stopping at minSize. The chosen size is always within
// [minSize, maxSize] and refitting identical inputs picks the same size.
func (r *faceResolver) fitText(text string, targetWidth int, paths []string, maxSize, minSize int) (font.Face, int) {
	for size := maxSize; size >= minSize; size -= fitStep {
		face := r.face(paths, size)
		if w, _ := measureText(text, face); w <= targetWidth {
			return face, size
		}
	}
	return r.face(paths, minSize), minSize
}

// drawText draws text with its ink box anchored at (x, y) top-left.
func drawText(dst draw.Image, text string, x, y int, face font.Face, col color.Color) {
	bounds, _ := font.BoundString(face, text)
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(col), Face: face}
	d.Dot = fixed.Point26_6{X: fixed.I(x) - bounds.Min.X, Y: fixed.I(y) - bounds.Min.Y}
	d.DrawString(text)
}

// drawTextShadowed draws a dark offset copy first, then the solid text on top.
func drawTextShadowed(dst draw.Image, text string, x, y int, face font.Face, col color.Color, offX, offY int) {
	drawText(dst, text, x+offX, y+offY, face, textShadowColor)
	drawText(dst, text, x, y, face, col)
}

// drawTitleBlock fits the title and subtitle to the safe width, stacks them
// centered on the canvas (shifted by TextShift times the canvas height) and
// draws both with drop shadows.
func (r *faceResolver) drawTitleBlock(canvas *image.NRGBA, opts Options) {
	safe := layout.Inset(canvas.Bounds(), opts.Margin)
	safeWidth := safe.Dx()

	titleFace, titleSize := r.fitText(opts.Title, safeWidth, opts.TitleFonts, titleMaxSize, titleMinSize)
	titleW, titleH := measureText(opts.Title, titleFace)

	subMax := int(subtitleRatio * float64(titleSize))
	if subMax < subtitleMaxMin {
		subMax = subtitleMaxMin
	}
	subFace, _ := r.fitText(opts.Subtitle, safeWidth, opts.SubtitleFonts, subMax, subtitleMinSize)
	subW, subH := measureText(opts.Subtitle, subFace)

	totalH := titleH + int(float64(subH)*subtitleHeightFactor)
	startY := (opts.Height-totalH)/2 + int(opts.TextShift*float64(opts.Height))

	titleX := layout.CenterHorizontally(canvas.Bounds(), titleW)
	subX := layout.CenterHorizontally(canvas.Bounds(), subW)

	drawTextShadowed(canvas, opts.Title, titleX, startY, titleFace, textColor, 2, 3)
	subY := startY + int(float64(titleH)*opts.SubtitleGap)
	drawTextShadowed(canvas, opts.Subtitle, subX, subY, subFace, textColor, 1, 2)
}
