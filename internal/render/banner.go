// Package render composes promotional banner images: a two-color gradient
// backdrop with a radial highlight, a fitted title/subtitle block with drop
// shadows, and an optional logo in the bottom-right corner.
package render

import (
	"fmt"
	"image"

	"github.com/wss-studio/bannerkit/internal/palette"
)

// Options carries every parameter of a single banner render.
type Options struct {
	Title    string
	Subtitle string
	LogoPath string

	Width  int
	Height int
	Margin int

	// Ordered font preference lists; the first usable path wins.
	TitleFonts    []string
	SubtitleFonts []string

	PaletteFromLogo  bool
	LogoScale        float64
	SubtitleGap      float64
	AllowUpscaleLogo bool
	TextShift        float64
	Dark             bool
}

// Defaults returns the stock banner configuration at the 1200x630 OG size.
func Defaults() Options {
	return Options{
		Title:            "Conecta Libras",
		Subtitle:         "Comunicação inclusiva sem barreiras",
		Width:            1200,
		Height:           630,
		Margin:           36,
		PaletteFromLogo:  true,
		LogoScale:        1.0,
		SubtitleGap:      1.35,
		AllowUpscaleLogo: true,
	}
}

// Build renders a complete banner. Recoverable input problems (missing logo,
// unusable font paths, degenerate palette) fall back to built-in defaults and
// never fail the render; only a non-positive canvas size is an error.
func Build(opts Options) (*image.NRGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("render: invalid canvas size %dx%d", opts.Width, opts.Height)
	}
	if opts.SubtitleGap <= 0 {
		opts.SubtitleGap = Defaults().SubtitleGap
	}

	start, end := palette.DefaultStart, palette.DefaultEnd
	if opts.PaletteFromLogo && opts.LogoPath != "" {
		if s, e, ok := palette.FromLogo(opts.LogoPath); ok {
			start, end = s, e
		}
	}

	canvas := Background(opts.Width, opts.Height, start, end, opts.Dark)

	resolver := &faceResolver{}
	resolver.drawTitleBlock(canvas, opts)

	canvas = placeLogo(canvas, opts.LogoPath, opts.Margin,
		logoTargetWidth(opts.Width, opts.LogoScale), opts.AllowUpscaleLogo)
	return canvas, nil
}
