package arbor

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
)

// RasterRenderer draws paths into an *image.RGBA on the CPU. It needs no
// window or GPU and is what tests and thumbnail tools use.
//
// Every blend mode composites as source-over. Even-odd fills are
// approximated with the non-zero rule the rasterizer implements.
type RasterRenderer struct {
	// Tolerance is the curve flattening tolerance for stroke outlines in
	// device pixels. Zero selects 0.25. Fills hand cubics to the
	// rasterizer unflattened.
	Tolerance float32

	dst *image.RGBA
	z   *vector.Rasterizer
}

// NewRasterRenderer returns a renderer drawing into dst.
func NewRasterRenderer(dst *image.RGBA) *RasterRenderer {
	b := dst.Bounds()
	return &RasterRenderer{
		dst: dst,
		z:   vector.NewRasterizer(b.Dx(), b.Dy()),
	}
}

// Image returns the destination image.
func (r *RasterRenderer) Image() *image.RGBA { return r.dst }

// Clear fills the destination with c.
func (r *RasterRenderer) Clear(c Color) {
	draw.Draw(r.dst, r.dst.Bounds(), image.NewUniform(c.toNRGBA()), image.Point{}, draw.Src)
}

// Draw fills or strokes path under transform.
func (r *RasterRenderer) Draw(path *CommandPath, transform Mat2D, paint *RenderPaint) {
	if path.IsEmpty() || paint == nil {
		return
	}
	device := path.Transformed(transform)

	b := r.dst.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
	r.z.DrawOp = draw.Over
	origin := Vec2{float32(b.Min.X), float32(b.Min.Y)}

	if paint.Style == StyleStroke {
		width := paint.Thickness
		if width <= 0 {
			return
		}
		tol := r.Tolerance
		if tol <= 0 {
			tol = 0.25
		}
		width = strokeWidthIn(transform, width)
		polys := strokePolygons(device.Flatten(tol), width, paint.Cap, paint.Join)
		if len(polys) == 0 {
			return
		}
		for _, p := range polys {
			r.addPolygon(p, origin)
		}
	} else {
		r.addPath(device, origin)
	}

	r.z.Draw(r.dst, b, r.source(paint, transform, origin), b.Min)
}

// addPath feeds path's commands to the rasterizer, which subdivides cubics
// itself. The rasterizer accumulates signed coverage, so every sub-path is
// closed explicitly before the next MoveTo.
func (r *RasterRenderer) addPath(path *CommandPath, origin Vec2) {
	open := false
	for _, c := range path.Commands() {
		switch c.Verb {
		case VerbMove:
			if open {
				r.z.ClosePath()
			}
			p := c.Points[0].Sub(origin)
			r.z.MoveTo(p.X, p.Y)
			open = true
		case VerbLine:
			p := c.Points[0].Sub(origin)
			r.z.LineTo(p.X, p.Y)
			open = true
		case VerbCubic:
			c1, c2, p := c.Points[0].Sub(origin), c.Points[1].Sub(origin), c.Points[2].Sub(origin)
			r.z.CubeTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
			open = true
		case VerbClose:
			if open {
				r.z.ClosePath()
				open = false
			}
		}
	}
	if open {
		r.z.ClosePath()
	}
}

// addPolygon appends a closed stroke outline polygon.
func (r *RasterRenderer) addPolygon(pts []Vec2, origin Vec2) {
	p0 := pts[0].Sub(origin)
	r.z.MoveTo(p0.X, p0.Y)
	for _, p := range pts[1:] {
		p = p.Sub(origin)
		r.z.LineTo(p.X, p.Y)
	}
	r.z.ClosePath()
}

func (r *RasterRenderer) source(paint *RenderPaint, transform Mat2D, origin Vec2) image.Image {
	if paint.Gradient == nil {
		return image.NewUniform(paint.Color.toNRGBA())
	}
	g := paint.Gradient.Transformed(transform)
	g.Start = g.Start.Sub(origin)
	g.End = g.End.Sub(origin)
	return &gradientImage{g: g, bounds: r.dst.Bounds()}
}

// gradientImage samples a device-space gradient at pixel centers.
type gradientImage struct {
	g      *Gradient
	bounds image.Rectangle
}

func (gi *gradientImage) ColorModel() color.Model { return color.NRGBAModel }
func (gi *gradientImage) Bounds() image.Rectangle { return gi.bounds }

func (gi *gradientImage) At(x, y int) color.Color {
	p := Vec2{float32(x-gi.bounds.Min.X) + 0.5, float32(y-gi.bounds.Min.Y) + 0.5}
	return gi.g.ColorAt(gi.g.Param(p)).toNRGBA()
}
