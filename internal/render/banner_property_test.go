package render

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/wss-studio/bannerkit/internal/palette"
)

// For any positive (width, height) the background canvas SHALL have exactly
// those dimensions and stay fully opaque.
func TestPropertyBackgroundDimensions(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("background matches requested dimensions", prop.ForAll(
		func(w, h int) bool {
			bg := Background(w, h, palette.DefaultStart, palette.DefaultEnd, false)
			return bg.Bounds().Dx() == w && bg.Bounds().Dy() == h
		},
		gen.IntRange(1, 64),
		gen.IntRange(1, 64),
	))

	properties.Property("background corners are opaque", prop.ForAll(
		func(w, h int) bool {
			bg := Background(w, h, palette.DefaultStart, palette.DefaultEnd, true)
			return bg.NRGBAAt(0, 0).A == 255 && bg.NRGBAAt(w-1, h-1).A == 255
		},
		gen.IntRange(1, 64),
		gen.IntRange(1, 64),
	))

	properties.TestingRun(t)
}

// Fitting SHALL be deterministic and the chosen size SHALL stay within the
// configured bounds for any text and target width.
func TestPropertyFitText(t *testing.T) {
	fontPath := writeTempFont(t)
	resolver := &faceResolver{}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("chosen size stays within bounds", prop.ForAll(
		func(text string, targetWidth int) bool {
			_, size := resolver.fitText(text, targetWidth, []string{fontPath}, titleMaxSize, titleMinSize)
			return size >= titleMinSize && size <= titleMaxSize
		},
		gen.AlphaString(),
		gen.IntRange(1, 2000),
	))

	properties.Property("refitting picks the same size", prop.ForAll(
		func(text string, targetWidth int) bool {
			_, first := resolver.fitText(text, targetWidth, []string{fontPath}, titleMaxSize, titleMinSize)
			_, second := resolver.fitText(text, targetWidth, []string{fontPath}, titleMaxSize, titleMinSize)
			return first == second
		},
		gen.AlphaString(),
		gen.IntRange(1, 2000),
	))

	properties.TestingRun(t)
}
