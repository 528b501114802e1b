package preset

import (
	"archive/zip"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wss-studio/bannerkit/internal/export"
	"github.com/wss-studio/bannerkit/internal/render"
)

func TestTableShapes(t *testing.T) {
	tables := []struct {
		name    string
		entries []Entry
		size    int
	}{
		{"all_social", AllSocial, 17},
		{"final_kit", FinalKit, 15},
	}
	for _, tbl := range tables {
		t.Run(tbl.name, func(t *testing.T) {
			if len(tbl.entries) != tbl.size {
				t.Fatalf("%s has %d entries, want %d", tbl.name, len(tbl.entries), tbl.size)
			}
			seen := make(map[string]bool, len(tbl.entries))
			for _, e := range tbl.entries {
				if e.Name == "" {
					t.Fatal("entry with empty name")
				}
				if seen[e.Name] {
					t.Fatalf("duplicate entry name %s", e.Name)
				}
				seen[e.Name] = true
				if e.Width <= 0 || e.Height <= 0 {
					t.Fatalf("entry %s has non-positive size %dx%d", e.Name, e.Width, e.Height)
				}
			}
		})
	}
}

func TestLookup(t *testing.T) {
	entries, dir, err := Lookup("all_social")
	if err != nil || len(entries) != 17 {
		t.Fatalf("Lookup(all_social) = %d entries, err %v", len(entries), err)
	}
	if !strings.HasPrefix(dir, "Exports_") {
		t.Fatalf("all_social default dir %q lacks timestamp prefix", dir)
	}

	entries, dir, err = Lookup("final_kit")
	if err != nil || len(entries) != 15 {
		t.Fatalf("Lookup(final_kit) = %d entries, err %v", len(entries), err)
	}
	if dir != "Exports_Final" {
		t.Fatalf("final_kit default dir = %q", dir)
	}

	if _, _, err := Lookup("bogus"); err == nil {
		t.Fatal("Lookup accepted an unknown preset")
	}
}

func TestEffectiveShift(t *testing.T) {
	tests := []struct {
		global, entry, want float64
	}{
		{0, -0.08, -0.08},
		{0, 0, 0},
		{-0.05, -0.08, -0.05},
		{0.1, 0, 0.1},
	}
	for _, tt := range tests {
		if got := effectiveShift(tt.global, tt.entry); got != tt.want {
			t.Fatalf("effectiveShift(%v, %v) = %v, want %v", tt.global, tt.entry, got, tt.want)
		}
	}
}

func TestRunWritesEveryEntry(t *testing.T) {
	entries := []Entry{
		{Name: "Tiny_64x48", Width: 64, Height: 48},
		{Name: "Tiny_48x64", Width: 48, Height: 64, Shift: -0.02},
	}
	outdir := filepath.Join(t.TempDir(), "Exports_Test")

	opts := render.Defaults()
	if err := Run(entries, opts, export.Metadata{}, outdir, true); err != nil {
		t.Fatal(err)
	}

	infos, err := os.ReadDir(outdir)
	if err != nil {
		t.Fatal(err)
	}
	if len(infos) != len(entries)*2 {
		t.Fatalf("outdir has %d files, want %d", len(infos), len(entries)*2)
	}

	for _, e := range entries {
		f, err := os.Open(filepath.Join(outdir, e.Name+".png"))
		if err != nil {
			t.Fatal(err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatal(err)
		}
		if img.Bounds().Dx() != e.Width || img.Bounds().Dy() != e.Height {
			t.Fatalf("%s rendered at %v, want %dx%d", e.Name, img.Bounds(), e.Width, e.Height)
		}
		if _, err := os.Stat(filepath.Join(outdir, e.Name+".jpg")); err != nil {
			t.Fatalf("missing JPEG for %s: %v", e.Name, err)
		}
	}

	r, err := zip.OpenReader(outdir + ".zip")
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	if len(r.File) != len(entries)*2 {
		t.Fatalf("archive has %d entries, want %d", len(r.File), len(entries)*2)
	}
}

func TestRunAbortsOnBadEntry(t *testing.T) {
	entries := []Entry{{Name: "Broken", Width: 0, Height: 10}}
	outdir := filepath.Join(t.TempDir(), "Exports_Broken")
	if err := Run(entries, render.Defaults(), export.Metadata{}, outdir, false); err == nil {
		t.Fatal("expected an error for a zero-width entry")
	}
}
