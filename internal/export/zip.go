package export

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ArchiveDir zips every file under dirPath into zipPath. Entry names are
// relative to dirPath so the archive's contents mirror the directory's files.
func ArchiveDir(dirPath, zipPath string) error {
	f, err := os.Create(zipPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", zipPath, err)
	}

	zipWriter := zip.NewWriter(f)
	walkErr := filepath.WalkDir(dirPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dirPath, path)
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		hdr, err := zip.FileInfoHeader(info)
		if err != nil {
			return err
		}
		hdr.Name = filepath.ToSlash(rel)
		hdr.Method = zip.Deflate

		zw, err := zipWriter.CreateHeader(hdr)
		if err != nil {
			return err
		}
		src, err := os.Open(path)
		if err != nil {
			return err
		}
		defer src.Close()
		_, err = io.Copy(zw, src)
		return err
	})
	if walkErr != nil {
		_ = zipWriter.Close()
		_ = f.Close()
		return fmt.Errorf("archive %s: %w", dirPath, walkErr)
	}
	if err := zipWriter.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("archive %s: %w", dirPath, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", zipPath, err)
	}
	return nil
}
