// Package palette derives gradient endpoint colors from a logo image.
package palette

import (
	"image"
	"image/color"
	"image/draw"
	"sort"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	log "github.com/sirupsen/logrus"
)

// Built-in gradient endpoints used whenever no palette can be derived.
var (
	DefaultStart = color.NRGBA{R: 34, G: 110, B: 255, A: 255} // blue
	DefaultEnd   = color.NRGBA{R: 136, G: 58, B: 255, A: 255} // purple
)

const (
	paletteSize    = 8
	thumbnailBound = 256
	quantShift     = 5 // channel quantization used while counting dominants

	grayishSpread  = 12
	darkSumCutoff  = 80
	lightSumCutoff = 720
)

// FromLogo picks the two most distant dominant colors of the image at path,
// cooler color first. ok is false when the file is missing, undecodable or
// yields fewer than two candidates; callers substitute the defaults. It never
// returns an error.
func FromLogo(path string) (start, end color.NRGBA, ok bool) {
	img, err := imaging.Open(path)
	if err != nil {
		log.WithField("logo", path).Debugf("palette derivation skipped: %v", err)
		return DefaultStart, DefaultEnd, false
	}
	return FromImage(img)
}

// FromImage derives gradient endpoints from an already decoded image.
func FromImage(img image.Image) (start, end color.NRGBA, ok bool) {
	flat := flattenOverWhite(img)
	thumb := resize.Thumbnail(thumbnailBound, thumbnailBound, flat, resize.Lanczos3)

	candidates := dominantColors(thumb, paletteSize)

	filtered := make([]color.NRGBA, 0, len(candidates))
	for _, c := range candidates {
		if isGrayish(c) || isExtreme(c) {
			continue
		}
		filtered = append(filtered, c)
	}
	if len(filtered) == 0 {
		filtered = candidates
	}
	if len(filtered) < 2 {
		return DefaultStart, DefaultEnd, false
	}

	a, b := farthestPair(filtered)
	// Cooler color (lower red-minus-blue) leads the gradient.
	if warmness(a) > warmness(b) {
		a, b = b, a
	}
	return a, b, true
}

// flattenOverWhite removes transparency so alpha edges do not read as dark
// border colors.
func flattenOverWhite(img image.Image) *image.NRGBA {
	b := img.Bounds()
	flat := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(flat, flat.Bounds(), image.NewUniform(color.NRGBA{R: 255, G: 255, B: 255, A: 255}), image.Point{}, draw.Src)
	draw.Draw(flat, flat.Bounds(), img, b.Min, draw.Over)
	return flat
}

// dominantColors quantizes each channel and counts occurrences, returning up
// to n distinct colors ordered by frequency.
func dominantColors(img image.Image, n int) []color.NRGBA {
	counts := make(map[color.NRGBA]int)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			q := color.NRGBA{
				R: uint8(r>>8) >> quantShift << quantShift,
				G: uint8(g>>8) >> quantShift << quantShift,
				B: uint8(bl>>8) >> quantShift << quantShift,
				A: 255,
			}
			counts[q]++
		}
	}

	ordered := make([]color.NRGBA, 0, len(counts))
	for c := range counts {
		ordered = append(ordered, c)
	}
	sort.Slice(ordered, func(i, j int) bool {
		ci, cj := ordered[i], ordered[j]
		if counts[ci] != counts[cj] {
			return counts[ci] > counts[cj]
		}
		return packRGB(ci) < packRGB(cj)
	})
	if len(ordered) > n {
		ordered = ordered[:n]
	}
	return ordered
}

func packRGB(c color.NRGBA) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

func isGrayish(c color.NRGBA) bool {
	maxC, minC := c.R, c.R
	for _, v := range [...]uint8{c.G, c.B} {
		if v > maxC {
			maxC = v
		}
		if v < minC {
			minC = v
		}
	}
	return int(maxC)-int(minC) < grayishSpread
}

func isExtreme(c color.NRGBA) bool {
	sum := int(c.R) + int(c.G) + int(c.B)
	return sum < darkSumCutoff || sum > lightSumCutoff
}

func distanceSq(a, b color.NRGBA) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}

func farthestPair(colors []color.NRGBA) (color.NRGBA, color.NRGBA) {
	bestI, bestJ, bestD := 0, 1, -1
	for i := 0; i < len(colors); i++ {
		for j := i + 1; j < len(colors); j++ {
			if d := distanceSq(colors[i], colors[j]); d > bestD {
				bestI, bestJ, bestD = i, j, d
			}
		}
	}
	return colors[bestI], colors[bestJ]
}

func warmness(c color.NRGBA) int { return int(c.R) - int(c.B) }
