// Package preset batches banner renders across fixed social-media size tables.
package preset

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/wss-studio/bannerkit/internal/export"
	"github.com/wss-studio/bannerkit/internal/render"
)

// Entry is one batch output target.
type Entry struct {
	Name   string
	Width  int
	Height int
	Shift  float64 // default vertical text shift ratio for this size
}

// AllSocial covers the common feed, story, cover and banner sizes of the
// major platforms.
var AllSocial = []Entry{
	// Instagram
	{Name: "IG_1080x1080", Width: 1080, Height: 1080},
	{Name: "IG_1080x1350", Width: 1080, Height: 1350, Shift: -0.02},
	{Name: "IG_1080x1920", Width: 1080, Height: 1920, Shift: -0.08}, // stories/reels want the text higher
	// Facebook
	{Name: "FacebookPost_1200x1200", Width: 1200, Height: 1200},
	{Name: "FacebookEvent_1200x628", Width: 1200, Height: 628},
	{Name: "FacebookCover_1640x924", Width: 1640, Height: 924},
	// LinkedIn
	{Name: "LinkedIn_1200x627", Width: 1200, Height: 627},
	{Name: "LinkedInCover_1584x396", Width: 1584, Height: 396},
	// Twitter/X
	{Name: "Twitter_1600x900", Width: 1600, Height: 900},
	{Name: "TwitterHeader_1500x500", Width: 1500, Height: 500},
	// YouTube
	{Name: "YouTube_1280x720", Width: 1280, Height: 720},
	{Name: "YouTubeBanner_2560x1440", Width: 2560, Height: 1440},
	{Name: "YouTubeSafe_2048x1152", Width: 2048, Height: 1152},
	// Pinterest
	{Name: "Pinterest_1000x1500", Width: 1000, Height: 1500, Shift: -0.02},
	{Name: "PinterestSquare_1000x1000", Width: 1000, Height: 1000},
	// TikTok / generic stories
	{Name: "TikTok_1080x1920", Width: 1080, Height: 1920, Shift: -0.08},
	// Open Graph generic
	{Name: "OG_1200x630", Width: 1200, Height: 630},
}

// FinalKit is the curated set shipped as the final delivery, led by
// print-grade masters.
var FinalKit = []Entry{
	{Name: "Master_4800x2520", Width: 4800, Height: 2520},
	{Name: "Master_2400x1260", Width: 2400, Height: 1260},
	{Name: "IG_1080x1350", Width: 1080, Height: 1350, Shift: -0.02},
	{Name: "IG_1080x1080", Width: 1080, Height: 1080},
	{Name: "IG_1080x1920", Width: 1080, Height: 1920, Shift: -0.08},
	{Name: "LinkedIn_1200x627", Width: 1200, Height: 627},
	{Name: "LinkedInCover_1584x396", Width: 1584, Height: 396},
	{Name: "Twitter_1600x900", Width: 1600, Height: 900},
	{Name: "TwitterHeader_1500x500", Width: 1500, Height: 500},
	{Name: "FacebookPost_1200x1200", Width: 1200, Height: 1200},
	{Name: "FacebookCover_1640x924", Width: 1640, Height: 924},
	{Name: "YouTube_1280x720", Width: 1280, Height: 720},
	{Name: "YouTubeBanner_2560x1440", Width: 2560, Height: 1440},
	{Name: "YouTubeSafe_2048x1152", Width: 2048, Height: 1152},
	{Name: "OG_1200x630", Width: 1200, Height: 630},
}

// Lookup maps a preset flag value to its table and default output directory.
func Lookup(name string) ([]Entry, string, error) {
	switch name {
	case "all_social":
		return AllSocial, fmt.Sprintf("Exports_%d", time.Now().Unix()), nil
	case "final_kit":
		return FinalKit, "Exports_Final", nil
	}
	return nil, "", fmt.Errorf("unknown preset %q (expected all_social or final_kit)", name)
}

// Run renders every entry into outdir as <Name>.png and <Name>.jpg, creating
// the directory if absent, and optionally archives it to <outdir>.zip. A
// non-zero TextShift in opts overrides each entry's default shift. The first
// write error aborts the batch.
func Run(entries []Entry, opts render.Options, meta export.Metadata, outdir string, zipOutputs bool) error {
	if err := os.MkdirAll(outdir, 0755); err != nil {
		return fmt.Errorf("create output directory %s: %w", outdir, err)
	}

	globalShift := opts.TextShift
	for _, entry := range entries {
		entryOpts := opts
		entryOpts.Width = entry.Width
		entryOpts.Height = entry.Height
		entryOpts.TextShift = effectiveShift(globalShift, entry.Shift)

		img, err := render.Build(entryOpts)
		if err != nil {
			return fmt.Errorf("render %s: %w", entry.Name, err)
		}

		pngPath := filepath.Join(outdir, entry.Name+".png")
		jpgPath := filepath.Join(outdir, entry.Name+".jpg")
		if err := export.SavePNG(img, pngPath); err != nil {
			return err
		}
		if err := export.SaveJPEG(img, jpgPath, meta); err != nil {
			return err
		}
		log.WithFields(log.Fields{"png": pngPath, "jpg": jpgPath}).Info("saved preset entry")
	}

	if zipOutputs {
		zipPath := outdir + ".zip"
		if err := export.ArchiveDir(outdir, zipPath); err != nil {
			return err
		}
		log.WithField("zip", zipPath).Info("archived preset outputs")
	}
	return nil
}

// effectiveShift prefers a non-zero global override over the entry's default.
func effectiveShift(global, entryDefault float64) float64 {
	if global != 0 {
		return global
	}
	return entryDefault
}
