package render

import (
	"os"
	"sync"

	"github.com/golang/freetype/truetype"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// System font locations tried when no user-supplied path is usable.
var systemFontCandidates = []string{
	// Windows
	`C:\Windows\Fonts\SegoeUI-Semibold.ttf`,
	`C:\Windows\Fonts\SegoeUI-Bold.ttf`,
	`C:\Windows\Fonts\arialbd.ttf`,
	`C:\Windows\Fonts\arial.ttf`,
	// DejaVu (most Linux distributions)
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
	// macOS
	"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
}

// faceSource is a parsed font that can produce faces at arbitrary point sizes.
type faceSource interface {
	face(size float64) font.Face
}

type ttSource struct{ fnt *truetype.Font }

func (s ttSource) face(size float64) font.Face {
	return truetype.NewFace(s.fnt, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
}

type otSource struct{ fnt *sfnt.Font }

func (s otSource) face(size float64) font.Face {
	f, err := opentype.NewFace(s.fnt, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return basicfont.Face7x13
	}
	return f
}

var (
	builtinFontOnce sync.Once
	builtinFont     faceSource
)

// builtinFontSource parses the bundled Go Regular font once. It is the default
// typeface when neither user paths nor system fonts are available.
func builtinFontSource() faceSource {
	builtinFontOnce.Do(func() {
		if tt, err := truetype.Parse(goregular.TTF); err == nil {
			builtinFont = ttSource{fnt: tt}
		}
	})
	return builtinFont
}

// faceResolver resolves font faces from an ordered preference list, then from
// common system font locations, then from the bundled Go font, and finally
// from the fixed bitmap face. The zero value is ready to use. Resolution never
// fails; face always returns something drawable.
type faceResolver struct {
	parsed map[string]faceSource
}

func (r *faceResolver) face(paths []string, size int) font.Face {
	for _, p := range paths {
		if src, ok := r.lookup(p); ok {
			return src.face(float64(size))
		}
	}
	for _, p := range systemFontCandidates {
		if src, ok := r.lookup(p); ok {
			return src.face(float64(size))
		}
	}
	if src := builtinFontSource(); src != nil {
		return src.face(float64(size))
	}
	return basicfont.Face7x13
}

// lookup parses the font file at path, caching the result (including
// failures) so that fitting loops do not re-read files at every size.
func (r *faceResolver) lookup(path string) (faceSource, bool) {
	if path == "" {
		return nil, false
	}
	if r.parsed == nil {
		r.parsed = make(map[string]faceSource)
	}
	if src, seen := r.parsed[path]; seen {
		return src, src != nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		r.parsed[path] = nil
		return nil, false
	}
	if tt, terr := truetype.Parse(data); terr == nil {
		src := ttSource{fnt: tt}
		r.parsed[path] = src
		return src, true
	}
	if ot, oerr := opentype.Parse(data); oerr == nil {
		src := otSource{fnt: ot}
		r.parsed[path] = src
		return src, true
	}
	log.WithField("font", path).Warn("font file not usable, skipping")
	r.parsed[path] = nil
	return nil, false
}
