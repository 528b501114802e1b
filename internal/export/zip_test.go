package export

import (
	"archive/zip"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestArchiveDir(t *testing.T) {
	dir := t.TempDir()
	outdir := filepath.Join(dir, "Exports_Test")
	if err := os.MkdirAll(outdir, 0755); err != nil {
		t.Fatal(err)
	}
	files := map[string]string{
		"OG_1200x630.png": "png bytes",
		"OG_1200x630.jpg": "jpg bytes",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(outdir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	zipPath := outdir + ".zip"
	if err := ArchiveDir(outdir, zipPath); err != nil {
		t.Fatal(err)
	}

	r, err := zip.OpenReader(zipPath)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	var names []string
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	want := []string{"OG_1200x630.jpg", "OG_1200x630.png"}
	if len(names) != len(want) {
		t.Fatalf("archive entries %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("archive entries %v, want %v", names, want)
		}
	}
}

func TestArchiveDirMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := ArchiveDir(filepath.Join(dir, "absent"), filepath.Join(dir, "out.zip"))
	if err == nil {
		t.Fatal("expected an error when the source directory is missing")
	}
}
