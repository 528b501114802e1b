// bannerkit renders promotional banner images (gradient background, centered
// title/subtitle, optional logo) and exports them as PNG/JPEG, either as a
// single file or as a preset batch of social-media sizes.
package main

import (
	"flag"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/wss-studio/bannerkit/internal/export"
	"github.com/wss-studio/bannerkit/internal/preset"
	"github.com/wss-studio/bannerkit/internal/render"
)

// stringList collects repeatable flag values in order.
type stringList []string

func (s *stringList) String() string     { return strings.Join(*s, ",") }
func (s *stringList) Set(v string) error { *s = append(*s, v); return nil }

func main() {
	defaults := render.Defaults()

	var titleFonts, subtitleFonts stringList
	title := flag.String("title", defaults.Title, "main title text")
	subtitle := flag.String("subtitle", defaults.Subtitle, "subtitle text")
	logoPath := flag.String("logo", "", "path to a logo PNG/JPG (optional)")
	output := flag.String("output", "banner_conecta_libras.png", "PNG output path")
	jpgOut := flag.String("jpg", "", "JPEG output path; pass an empty value to derive it from the PNG path")
	width := flag.Int("width", defaults.Width, "banner width in pixels")
	height := flag.Int("height", defaults.Height, "banner height in pixels")
	margin := flag.Int("margin", defaults.Margin, "outer margin in pixels")
	flag.Var(&titleFonts, "title-font", "title font path; repeatable, first usable wins")
	flag.Var(&subtitleFonts, "subtitle-font", "subtitle font path; repeatable, first usable wins")
	noPalette := flag.Bool("no-palette-from-logo", false, "keep the default gradient instead of deriving it from the logo")
	logoScale := flag.Float64("logo-scale", defaults.LogoScale, "scale multiplier for the default logo width (0.25 = quarter size)")
	subtitleGap := flag.Float64("subtitle-gap", defaults.SubtitleGap, "gap factor between title and subtitle relative to title height")
	noUpscale := flag.Bool("no-upscale-logo", false, "never enlarge the logo beyond its native size")
	textShift := flag.Float64("text-shift", 0, "vertical shift ratio for the text block; negative moves up")
	dark := flag.Bool("dark", false, "darker background theme")
	exifArtist := flag.String("exif-artist", "", "EXIF Artist for JPEG outputs")
	exifCopyright := flag.String("exif-copyright", "", "EXIF Copyright for JPEG outputs")
	exifDescription := flag.String("exif-description", "", "EXIF ImageDescription for JPEG outputs")
	presetName := flag.String("preset", "", "batch preset: all_social or final_kit")
	outdir := flag.String("outdir", "", "output directory for preset exports")
	zipOutputs := flag.Bool("zip", false, "zip the preset outputs into a single archive")
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	opts := defaults
	opts.Title = *title
	opts.Subtitle = *subtitle
	opts.LogoPath = *logoPath
	opts.Width = *width
	opts.Height = *height
	opts.Margin = *margin
	opts.TitleFonts = titleFonts
	opts.SubtitleFonts = subtitleFonts
	opts.PaletteFromLogo = !*noPalette
	opts.LogoScale = *logoScale
	opts.SubtitleGap = *subtitleGap
	opts.AllowUpscaleLogo = !*noUpscale
	opts.TextShift = *textShift
	opts.Dark = *dark

	meta := export.Metadata{
		Artist:      *exifArtist,
		Copyright:   *exifCopyright,
		Description: *exifDescription,
	}

	if *presetName != "" {
		entries, defaultDir, err := preset.Lookup(*presetName)
		if err != nil {
			log.Fatal(err)
		}
		dir := *outdir
		if dir == "" {
			dir = defaultDir
		}
		if err := preset.Run(entries, opts, meta, dir, *zipOutputs); err != nil {
			log.WithField("preset", *presetName).Fatal(err)
		}
		return
	}

	img, err := render.Build(opts)
	if err != nil {
		log.Fatal(err)
	}
	if err := export.SavePNG(img, *output); err != nil {
		log.Fatal(err)
	}
	log.WithField("path", *output).Info("saved banner")

	if jpgPath, want := deriveJPEGPath(*jpgOut, flagWasSet("jpg"), *output); want {
		if err := export.SaveJPEG(img, jpgPath, meta); err != nil {
			log.Fatal(err)
		}
		log.WithField("path", jpgPath).Info("saved JPEG")
	}
}

// deriveJPEGPath resolves the JPEG output path: the flag value when set and
// non-blank, the PNG path with a .jpg extension when set but blank, nothing
// when the flag was never given.
func deriveJPEGPath(jpgFlag string, jpgSet bool, pngPath string) (string, bool) {
	if !jpgSet {
		return "", false
	}
	if strings.TrimSpace(jpgFlag) == "" {
		ext := filepath.Ext(pngPath)
		return strings.TrimSuffix(pngPath, ext) + ".jpg", true
	}
	return jpgFlag, true
}

func flagWasSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
