package arbor

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenRenderer draws paths onto an ebiten image with DrawTriangles32.
// Sub-paths are fan-triangulated around their first point and the stencil
// fill rule resolves overlaps, so concave and self-intersecting paths fill
// correctly without a tessellator.
type EbitenRenderer struct {
	Target *ebiten.Image
	// AntiAlias enables ebiten's anti-aliased triangle rendering.
	AntiAlias bool
	// Tolerance is the curve flattening tolerance in device pixels.
	// Zero selects 0.25.
	Tolerance float32

	verts []ebiten.Vertex
	inds  []uint32
}

// NewEbitenRenderer returns a renderer drawing onto target.
func NewEbitenRenderer(target *ebiten.Image) *EbitenRenderer {
	return &EbitenRenderer{Target: target, AntiAlias: true}
}

// --- White pixel singleton (single-threaded, like the rest of the runtime) ---

var whitePixelImage *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// Draw fills or strokes path under transform.
func (r *EbitenRenderer) Draw(path *CommandPath, transform Mat2D, paint *RenderPaint) {
	if r.Target == nil || path.IsEmpty() || paint == nil {
		return
	}
	tol := r.Tolerance
	if tol <= 0 {
		tol = 0.25
	}
	lines := path.Transformed(transform).Flatten(tol)

	r.verts = r.verts[:0]
	r.inds = r.inds[:0]
	rule := ebiten.FillRuleNonZero
	var grad *Gradient
	if paint.Gradient != nil {
		grad = paint.Gradient.Transformed(transform)
	}

	if paint.Style == StyleStroke {
		if paint.Thickness <= 0 {
			return
		}
		for _, p := range strokePolygons(lines, strokeWidthIn(transform, paint.Thickness), paint.Cap, paint.Join) {
			r.appendFan(p, paint.Color, grad)
		}
	} else {
		for _, l := range lines {
			r.appendFan(l.Points, paint.Color, grad)
		}
		if paint.FillRule == FillRuleEvenOdd {
			rule = ebiten.FillRuleEvenOdd
		}
	}
	if len(r.inds) == 0 {
		return
	}

	var op ebiten.DrawTrianglesOptions
	op.Blend = paint.BlendMode.EbitenBlend()
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.FillRule = rule
	op.AntiAlias = r.AntiAlias
	r.Target.DrawTriangles32(r.verts, r.inds, ensureWhitePixel(), &op)
}

// appendFan adds a fan over pts. A device-space gradient, when set, colors
// each vertex.
func (r *EbitenRenderer) appendFan(pts []Vec2, solid Color, grad *Gradient) {
	n := len(pts)
	if n < 3 {
		return
	}
	base := uint32(len(r.verts))
	for _, p := range pts {
		c := solid
		if grad != nil {
			c = grad.ColorAt(grad.Param(p))
		}
		r.verts = append(r.verts, ebiten.Vertex{
			DstX:   p.X,
			DstY:   p.Y,
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: c.R * c.A,
			ColorG: c.G * c.A,
			ColorB: c.B * c.A,
			ColorA: c.A,
		})
	}
	for i := uint32(1); i+1 < uint32(n); i++ {
		r.inds = append(r.inds, base, base+i, base+i+1)
	}
}
