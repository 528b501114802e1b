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

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// AnchorBottomRight returns a rectangle of size (widthPx,heightPx) placed in the
// bottom-right corner of rect. Sizes are clamped to [0, rect dimension].
func AnchorBottomRight(rect image.Rectangle, widthPx, heightPx int) image.Rectangle {
	rect = Normalize(rect)
	if widthPx < 0 {
		widthPx = 0
	}
	if heightPx < 0 {
		heightPx = 0
	}
	if widthPx > rect.Dx() {
		widthPx = rect.Dx()
	}
	if heightPx > rect.Dy() {
		heightPx = rect.Dy()
	}
	return image.Rect(rect.Max.X-widthPx, rect.Max.Y-heightPx, rect.Max.X, rect.Max.Y)
}

// CenterHorizontally returns the x coordinate that centers a block of widthPx
// within rect.
func CenterHorizontally(rect image.Rectangle, widthPx int) int {
	rect = Normalize(rect)
	return rect.Min.X + (rect.Dx()-widthPx)/2
}
