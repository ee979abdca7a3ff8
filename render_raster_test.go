package arbor

import (
	"image"
	"image/color"
	"testing"
)

func newRaster(w, h int) *RasterRenderer {
	return NewRasterRenderer(image.NewRGBA(image.Rect(0, 0, w, h)))
}

func rectPath(x, y, w, h float32) *CommandPath {
	var b CommandPathBuilder
	b.Rect(x, y, w, h)
	return b.Build()
}

func assertPixel(t *testing.T, img *image.RGBA, x, y int, want color.RGBA) {
	t.Helper()
	if got := img.RGBAAt(x, y); got != want {
		t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got, want)
	}
}

var (
	opaqueRed  = color.RGBA{R: 255, A: 255}
	opaqueBlue = color.RGBA{B: 255, A: 255}
	clearPixel = color.RGBA{}
)

// --- Fills ---

func TestRasterFillRect(t *testing.T) {
	r := newRaster(10, 10)
	r.Draw(rectPath(2, 2, 6, 6), IdentityMat, &RenderPaint{Color: ColorFromARGB(0xffff0000)})

	img := r.Image()
	assertPixel(t, img, 4, 4, opaqueRed)
	assertPixel(t, img, 2, 2, opaqueRed)
	assertPixel(t, img, 7, 7, opaqueRed)
	assertPixel(t, img, 1, 1, clearPixel)
	assertPixel(t, img, 8, 8, clearPixel)
}

func TestRasterFillTransformed(t *testing.T) {
	r := newRaster(10, 10)
	r.Draw(rectPath(0, 0, 2, 2), TranslateMat(6, 6), &RenderPaint{Color: ColorFromARGB(0xff0000ff)})
	assertPixel(t, r.Image(), 7, 7, opaqueBlue)
	assertPixel(t, r.Image(), 1, 1, clearPixel)
}

func TestRasterSourceOver(t *testing.T) {
	r := newRaster(4, 4)
	r.Clear(ColorFromARGB(0xffff0000))
	r.Draw(rectPath(0, 0, 4, 4), IdentityMat, &RenderPaint{Color: ColorFromARGB(0x800000ff)})

	got := r.Image().RGBAAt(1, 1)
	if got.A != 255 || got.R < 120 || got.R > 135 || got.B < 120 || got.B > 135 {
		t.Errorf("blended pixel = %v, want half red half blue", got)
	}
}

func TestRasterFillCurves(t *testing.T) {
	var b CommandPathBuilder
	b.Ellipse(10, 10, 8, 8)
	b.MoveTo(30, 2)
	b.LineTo(38, 2)
	b.LineTo(38, 10)
	r := newRaster(40, 20)
	r.Draw(b.Build(), IdentityMat, &RenderPaint{Color: ColorFromARGB(0xffff0000)})

	img := r.Image()
	for _, p := range [][2]int{{10, 10}, {10, 3}, {4, 10}, {36, 4}} {
		if got := img.RGBAAt(p[0], p[1]); got.R < 250 || got.A < 250 || got.G != 0 || got.B != 0 {
			t.Errorf("pixel %v = %v, want red", p, got)
		}
	}
	assertPixel(t, img, 3, 3, clearPixel)
	assertPixel(t, img, 17, 17, clearPixel)
	// The open triangle is closed implicitly.
	assertPixel(t, img, 31, 8, clearPixel)
	assertPixel(t, img, 20, 10, clearPixel)
}

func TestRasterSkipsEmptyInput(t *testing.T) {
	r := newRaster(4, 4)
	r.Draw(nil, IdentityMat, &RenderPaint{Color: ColorWhite})
	r.Draw(rectPath(0, 0, 4, 4), IdentityMat, nil)
	r.Draw(rectPath(0, 0, 4, 4), IdentityMat, &RenderPaint{Style: StyleStroke, Color: ColorWhite})
	assertPixel(t, r.Image(), 1, 1, clearPixel)
}

// --- Strokes ---

func TestRasterStrokeLine(t *testing.T) {
	var b CommandPathBuilder
	b.MoveTo(0, 5)
	b.LineTo(10, 5)
	r := newRaster(10, 10)
	r.Draw(b.Build(), IdentityMat, &RenderPaint{Style: StyleStroke, Color: ColorFromARGB(0xffff0000), Thickness: 2})

	assertPixel(t, r.Image(), 5, 4, opaqueRed)
	assertPixel(t, r.Image(), 5, 5, opaqueRed)
	assertPixel(t, r.Image(), 5, 1, clearPixel)
	assertPixel(t, r.Image(), 5, 8, clearPixel)
}

func TestRasterStrokeScalesWithTransform(t *testing.T) {
	var b CommandPathBuilder
	b.MoveTo(0, 2.5)
	b.LineTo(5, 2.5)
	r := newRaster(10, 10)
	r.Draw(b.Build(), ScaleMat(2, 2), &RenderPaint{Style: StyleStroke, Color: ColorFromARGB(0xffff0000), Thickness: 2})

	// A width 2 stroke scaled by 2 covers y 3 to 7.
	assertPixel(t, r.Image(), 5, 3, opaqueRed)
	assertPixel(t, r.Image(), 5, 6, opaqueRed)
	assertPixel(t, r.Image(), 5, 1, clearPixel)
}

// --- Gradients ---

func TestRasterLinearGradient(t *testing.T) {
	r := newRaster(10, 10)
	grad := &Gradient{
		Type:  GradientLinear,
		Start: Vec2{0, 0},
		End:   Vec2{10, 0},
		Stops: []ColorStop{{Position: 0, Color: ColorBlack}, {Position: 1, Color: ColorWhite}},
	}
	r.Draw(rectPath(0, 0, 10, 10), IdentityMat, &RenderPaint{Gradient: grad})

	left, right := r.Image().RGBAAt(1, 5), r.Image().RGBAAt(8, 5)
	if left.R >= right.R {
		t.Errorf("left %v not darker than right %v", left, right)
	}
	if left.A != 255 || right.A != 255 {
		t.Errorf("alpha = %d, %d, want opaque", left.A, right.A)
	}
}

// --- Artboards ---

func TestRasterDrawArtboard(t *testing.T) {
	ab := NewArtboard()
	ab.SetWidth(20)
	ab.SetHeight(20)
	front, _ := addRectShape(ab, 0, 10, 10, 10, 10, 0xff0000ff)
	addRectShape(ab, 0, 15, 15, 6, 6, 0xffff0000)
	mustInit(t, ab)
	ab.UpdateComponents()
	if ab.FirstDrawable() != front {
		t.Fatalf("FirstDrawable = %d, want %d", ab.FirstDrawable(), front)
	}

	r := newRaster(20, 20)
	ab.Draw(r, IdentityMat)
	img := r.Image()
	assertPixel(t, img, 7, 7, opaqueBlue)
	assertPixel(t, img, 13, 13, opaqueBlue)
	assertPixel(t, img, 16, 16, opaqueRed)
	assertPixel(t, img, 2, 2, clearPixel)
}
