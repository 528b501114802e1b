// Package export writes rendered banners to disk and archives batch output.
package export

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"

	"github.com/disintegration/imaging"
	exif "github.com/dsoprea/go-exif/v3"
	exifcommon "github.com/dsoprea/go-exif/v3/common"
	jpegstructure "github.com/dsoprea/go-jpeg-image-structure/v2"
)

const (
	jpegQuality = 92
	softwareTag = "bannerkit"
)

// Metadata holds the optional EXIF fields embedded into JPEG exports.
type Metadata struct {
	Artist      string
	Copyright   string
	Description string
}

func (m Metadata) empty() bool {
	return m.Artist == "" && m.Copyright == "" && m.Description == ""
}

// SavePNG writes img to path as PNG.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// SaveJPEG flattens img over white and writes it to path at quality 92. When
// any metadata field is set, an EXIF block carrying the fields plus a Software
// tag is inserted; otherwise the file carries no EXIF at all.
func SaveJPEG(img image.Image, path string, meta Metadata) error {
	b := img.Bounds()
	flat := imaging.Overlay(
		imaging.New(b.Dx(), b.Dy(), color.NRGBA{R: 255, G: 255, B: 255, A: 255}),
		img, image.Point{}, 1.0)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, flat, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	data := buf.Bytes()

	if !meta.empty() {
		withExif, err := embedExif(data, meta)
		if err != nil {
			return fmt.Errorf("embed exif in %s: %w", path, err)
		}
		data = withExif
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// embedExif inserts an IFD0 block with the supplied fields into an encoded
// JPEG stream.
func embedExif(jpegData []byte, meta Metadata) ([]byte, error) {
	jmp := jpegstructure.NewJpegMediaParser()
	intfc, err := jmp.ParseBytes(jpegData)
	if err != nil {
		return nil, err
	}
	sl := intfc.(*jpegstructure.SegmentList)

	rootIb, err := sl.ConstructExifBuilder()
	if err != nil {
		// Freshly encoded JPEGs have no EXIF segment yet.
		im, imErr := exifcommon.NewIfdMappingWithStandard()
		if imErr != nil {
			return nil, imErr
		}
		ti := exif.NewTagIndex()
		if tErr := exif.LoadStandardTags(ti); tErr != nil {
			return nil, tErr
		}
		rootIb = exif.NewIfdBuilder(im, ti, exifcommon.IfdStandardIfdIdentity, exifcommon.EncodeDefaultByteOrder)
	}

	ifdIb, err := exif.GetOrCreateIbFromRootIb(rootIb, "IFD0")
	if err != nil {
		return nil, err
	}

	setTag := func(name, value string) error {
		if value == "" {
			return nil
		}
		return ifdIb.SetStandardWithName(name, value)
	}
	if err := setTag("Software", softwareTag); err != nil {
		return nil, err
	}
	if err := setTag("Artist", meta.Artist); err != nil {
		return nil, err
	}
	if err := setTag("Copyright", meta.Copyright); err != nil {
		return nil, err
	}
	if err := setTag("ImageDescription", meta.Description); err != nil {
		return nil, err
	}

	if err := sl.SetExif(rootIb); err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := sl.Write(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
