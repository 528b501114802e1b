package render

import (
	"image"
	"image/color"
	"strings"
	"testing"
)

func TestFitTextWithinBounds(t *testing.T) {
	fontPath := writeTempFont(t)
	r := &faceResolver{}

	tests := []struct {
		name        string
		text        string
		targetWidth int
	}{
		{"short text at wide target", "Hi", 2000},
		{"typical title", "Conecta Libras", 1128},
		{"long text at narrow target", strings.Repeat("Comunicação ", 10), 300},
		{"impossible target", strings.Repeat("W", 200), 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, size := r.fitText(tt.text, tt.targetWidth, []string{fontPath}, titleMaxSize, titleMinSize)
			if size < titleMinSize || size > titleMaxSize {
				t.Fatalf("chosen size %d outside [%d, %d]", size, titleMinSize, titleMaxSize)
			}
		})
	}
}

func TestFitTextShortTextKeepsMaxSize(t *testing.T) {
	fontPath := writeTempFont(t)
	r := &faceResolver{}
	_, size := r.fitText("Hi", 5000, []string{fontPath}, titleMaxSize, titleMinSize)
	if size != titleMaxSize {
		t.Fatalf("short text fitted at %d, want max %d", size, titleMaxSize)
	}
}

func TestFitTextIdempotent(t *testing.T) {
	fontPath := writeTempFont(t)
	r := &faceResolver{}
	text := "Comunicação inclusiva sem barreiras"
	_, first := r.fitText(text, 800, []string{fontPath}, titleMaxSize, titleMinSize)
	_, second := r.fitText(text, 800, []string{fontPath}, titleMaxSize, titleMinSize)
	if first != second {
		t.Fatalf("refit changed size: %d then %d", first, second)
	}
}

func TestFitTextLongerTextNeverLarger(t *testing.T) {
	fontPath := writeTempFont(t)
	r := &faceResolver{}
	_, short := r.fitText("Banner", 600, []string{fontPath}, titleMaxSize, titleMinSize)
	_, long := r.fitText("Banner with a considerably longer line of text", 600, []string{fontPath}, titleMaxSize, titleMinSize)
	if long > short {
		t.Fatalf("longer text fitted at %d, larger than shorter text's %d", long, short)
	}
}

func TestMeasureTextPositiveForInk(t *testing.T) {
	fontPath := writeTempFont(t)
	r := &faceResolver{}
	face := r.face([]string{fontPath}, 48)
	w, h := measureText("Conecta", face)
	if w <= 0 || h <= 0 {
		t.Fatalf("measureText returned %dx%d for non-empty text", w, h)
	}
}

func TestDrawTextChangesCanvas(t *testing.T) {
	fontPath := writeTempFont(t)
	r := &faceResolver{}
	face := r.face([]string{fontPath}, 24)

	canvas := image.NewNRGBA(image.Rect(0, 0, 200, 80))
	before := make([]byte, len(canvas.Pix))
	copy(before, canvas.Pix)

	drawText(canvas, "Test", 10, 10, face, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	changed := false
	for i := range canvas.Pix {
		if canvas.Pix[i] != before[i] {
			changed = true
			break
		}
	}
	if !changed {
		t.Fatal("drawText left the canvas untouched")
	}
}
