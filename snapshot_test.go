package arbor

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func squareArtboard(t *testing.T) *Artboard {
	t.Helper()
	ab := NewArtboard()
	ab.SetName("square")
	ab.SetWidth(10)
	ab.SetHeight(10)
	addRectShape(ab, 0, 5, 5, 10, 10, 0xffff0000)
	mustInit(t, ab)
	ab.UpdateComponents()
	return ab
}

func TestSnapshotFitsAndCenters(t *testing.T) {
	ab := squareArtboard(t)
	img := Snapshot(ab, 20, 10, ColorFromARGB(0xff0000ff))

	if b := img.Bounds(); b.Dx() != 20 || b.Dy() != 10 {
		t.Fatalf("bounds = %v, want 20x10", b)
	}
	assertPixel(t, img, 10, 5, opaqueRed)
	assertPixel(t, img, 2, 5, opaqueBlue)
	assertPixel(t, img, 17, 5, opaqueBlue)
}

func TestWriteSnapshot(t *testing.T) {
	ab := squareArtboard(t)
	path := filepath.Join(t.TempDir(), "square.png")
	if err := WriteSnapshot(ab, path, 8, 8, ColorBlack); err != nil {
		t.Fatalf("WriteSnapshot: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 8 {
		t.Errorf("bounds = %v, want 8x8", b)
	}
	if got := color.RGBAModel.Convert(img.At(4, 4)).(color.RGBA); got != opaqueRed {
		t.Errorf("center = %v, want %v", got, opaqueRed)
	}
}

func TestWriteSnapshotBadPath(t *testing.T) {
	ab := squareArtboard(t)
	path := filepath.Join(t.TempDir(), "missing", "x.png")
	if err := WriteSnapshot(ab, path, 4, 4, ColorBlack); err == nil {
		t.Error("expected error for missing directory")
	}
}

// --- Screenshots ---

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"square", "square"},
		{"walk-cycle", "walk-cycle"},
		{"frame.01", "frame.01"},
		{"two words", "two_words"},
		{"a/b\\c", "a_b_c"},
		{"", "unlabeled"},
		{"  ", "unlabeled"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotPath(t *testing.T) {
	at := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	got := screenshotPath("shots", "main board", at)
	want := filepath.Join("shots", "20240309_140507_main_board.png")
	if got != want {
		t.Errorf("screenshotPath = %q, want %q", got, want)
	}
}

func TestUnpremultiply(t *testing.T) {
	pix := []byte{
		64, 32, 0, 128,
		10, 20, 30, 255,
		0, 0, 0, 0,
	}
	unpremultiply(pix)
	want := []byte{
		127, 63, 0, 128,
		10, 20, 30, 255,
		0, 0, 0, 0,
	}
	for i := range want {
		if pix[i] != want[i] {
			t.Fatalf("pix = %v, want %v", pix, want)
		}
	}
}
