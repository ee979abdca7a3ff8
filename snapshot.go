package arbor

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Snapshot renders ab on the CPU into a w by h image cleared to bg, scaled
// to fit and centered the same way [Player] draws it.
func Snapshot(ab *Artboard, w, h int, bg Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	r := NewRasterRenderer(img)
	r.Clear(bg)
	ab.Draw(r, fitTransform(ab, float32(w), float32(h)))
	return img
}

// WriteSnapshot renders ab with [Snapshot] and writes it to path as a PNG.
func WriteSnapshot(ab *Artboard, path string, w, h int, bg Color) error {
	return writePNG(path, Snapshot(ab, w, h, bg))
}

// screenshotPath names a capture taken at t inside dir.
func screenshotPath(dir, label string, t time.Time) string {
	return filepath.Join(dir, t.Format("20060102_150405")+"_"+sanitizeLabel(label)+".png")
}

// captureScreen writes the current frame to a file in dir.
func captureScreen(screen *ebiten.Image, dir, label string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("arbor: screenshot: %w", err)
	}
	b := screen.Bounds()
	w, h := b.Dx(), b.Dy()
	pix := make([]byte, 4*w*h)
	screen.ReadPixels(pix)
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, pix)
	unpremultiply(img.Pix)
	return writePNG(screenshotPath(dir, label, time.Now()), img)
}

// unpremultiply converts premultiplied RGBA bytes to straight alpha in place.
func unpremultiply(pix []byte) {
	for i := 0; i+3 < len(pix); i += 4 {
		a := int(pix[i+3])
		if a == 0 || a == 255 {
			continue
		}
		for j := i; j < i+3; j++ {
			pix[j] = uint8(min(int(pix[j])*255/a, 255))
		}
	}
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("arbor: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("arbor: encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel keeps letters, digits, '-' and '.', replacing anything else
// with '_'. Blank labels become "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
