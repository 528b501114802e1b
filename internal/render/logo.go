package render

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	log "github.com/sirupsen/logrus"

	"github.com/wss-studio/bannerkit/internal/render/layout"
)

const (
	logoWidthRatio      = 0.16
	logoMinWidth        = 16
	logoDefaultMinWidth = 140
	logoMinScale        = 0.02
	logoShadowSigma     = 6
	logoShadowOffset    = 4
)

var logoShadowColor = color.NRGBA{A: 90}

// logoTargetWidth computes the requested logo width for a canvas: 16% of the
// canvas width times the user multiplier (floored at 2%), never below 16px.
func logoTargetWidth(canvasWidth int, scale float64) int {
	if scale < logoMinScale {
		scale = logoMinScale
	}
	base := int(float64(canvasWidth) * logoWidthRatio)
	w := int(float64(base) * scale)
	if w < logoMinWidth {
		w = logoMinWidth
	}
	return w
}

// placeLogo composites the logo, preceded by a blurred drop shadow, into the
// canvas's bottom-right corner margin pixels from the edges. A missing or
// unreadable file is a no-op. targetWidth <= 0 selects the responsive default;
// with allowUpscale false the width is clamped to the logo's native width.
func placeLogo(canvas *image.NRGBA, path string, margin, targetWidth int, allowUpscale bool) *image.NRGBA {
	if path == "" {
		return canvas
	}
	logo, err := imaging.Open(path)
	if err != nil {
		log.WithField("logo", path).Warnf("logo unavailable, skipping: %v", err)
		return canvas
	}
	nativeW, nativeH := logo.Bounds().Dx(), logo.Bounds().Dy()
	if nativeW < 1 || nativeH < 1 {
		return canvas
	}

	if targetWidth <= 0 {
		targetWidth = int(float64(canvas.Bounds().Dx()) * logoWidthRatio)
		if targetWidth < logoDefaultMinWidth {
			targetWidth = logoDefaultMinWidth
		}
	}
	if !allowUpscale && targetWidth > nativeW {
		targetWidth = nativeW
	}
	targetHeight := int(float64(nativeH) * float64(targetWidth) / float64(nativeW))
	if targetHeight < 1 {
		targetHeight = 1
	}
	scaled := imaging.Resize(logo, targetWidth, targetHeight, imaging.Lanczos)

	shadow := imaging.Blur(imaging.New(targetWidth, targetHeight, logoShadowColor), logoShadowSigma)

	inner := layout.Inset(canvas.Bounds(), margin)
	dest := layout.AnchorBottomRight(inner, targetWidth, targetHeight)
	canvas = imaging.Overlay(canvas, shadow, dest.Min.Add(image.Pt(logoShadowOffset, logoShadowOffset)), 1.0)
	return imaging.Overlay(canvas, scaled, dest.Min, 1.0)
}
