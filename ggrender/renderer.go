// Package ggrender draws arbor artboards through a gogpu/gg [gg.Context].
//
//	dc := gg.NewContext(512, 512)
//	defer dc.Close()
//	ab.Draw(ggrender.New(dc), arbor.IdentityMat)
//	dc.SavePNG("frame.png")
package ggrender

import (
	"github.com/chewxy/math32"
	"github.com/gogpu/gg"

	"github.com/phanxgames/arbor"
)

// Renderer implements [arbor.Renderer] on a gg context. The context's
// transform is saved and restored around each draw.
//
// gg composites source-over only; other blend modes draw as source-over.
type Renderer struct {
	dc *gg.Context
}

// New returns a renderer drawing into dc.
func New(dc *gg.Context) *Renderer {
	return &Renderer{dc: dc}
}

// Context returns the wrapped context.
func (r *Renderer) Context() *gg.Context { return r.dc }

// Matrix converts an arbor affine matrix to gg's row layout.
func Matrix(m arbor.Mat2D) gg.Matrix {
	return gg.Matrix{
		A: float64(m[0]), B: float64(m[2]), C: float64(m[4]),
		D: float64(m[1]), E: float64(m[3]), F: float64(m[5]),
	}
}

// RGBA converts an arbor color to a gg color.
func RGBA(c arbor.Color) gg.RGBA {
	return gg.RGBA{R: float64(c.R), G: float64(c.G), B: float64(c.B), A: float64(c.A)}
}

// Draw fills or strokes path under transform.
func (r *Renderer) Draw(path *arbor.CommandPath, transform arbor.Mat2D, paint *arbor.RenderPaint) {
	if path.IsEmpty() || paint == nil {
		return
	}
	dc := r.dc
	dc.Push()
	defer dc.Pop()

	dc.SetTransform(Matrix(transform))
	dc.ClearPath()
	for _, c := range path.Commands() {
		switch c.Verb {
		case arbor.VerbMove:
			dc.MoveTo(float64(c.Points[0].X), float64(c.Points[0].Y))
		case arbor.VerbLine:
			dc.LineTo(float64(c.Points[0].X), float64(c.Points[0].Y))
		case arbor.VerbCubic:
			dc.CubicTo(
				float64(c.Points[0].X), float64(c.Points[0].Y),
				float64(c.Points[1].X), float64(c.Points[1].Y),
				float64(c.Points[2].X), float64(c.Points[2].Y),
			)
		case arbor.VerbClose:
			dc.ClosePath()
		}
	}

	// Points are transformed as they are added; brushes and widths are
	// evaluated in device space.
	dc.SetFillBrush(brush(paint, transform))

	var err error
	if paint.Style == arbor.StyleStroke {
		w := paint.Thickness * math32.Sqrt(math32.Abs(transform.Determinant()))
		if w <= 0 {
			dc.ClearPath()
			return
		}
		dc.SetLineWidth(float64(w))
		dc.SetLineCap(lineCap(paint.Cap))
		dc.SetLineJoin(lineJoin(paint.Join))
		err = dc.Stroke()
	} else {
		if paint.FillRule == arbor.FillRuleEvenOdd {
			dc.SetFillRule(gg.FillRuleEvenOdd)
		} else {
			dc.SetFillRule(gg.FillRuleNonZero)
		}
		err = dc.Fill()
	}
	if err != nil {
		arbor.Logger().Warn("ggrender: draw failed", "style", paint.Style, "error", err)
	}
}

func brush(paint *arbor.RenderPaint, transform arbor.Mat2D) gg.Brush {
	if paint.Gradient == nil {
		return gg.Solid(RGBA(paint.Color))
	}
	g := paint.Gradient.Transformed(transform)
	if g.Type == arbor.GradientRadial {
		b := gg.NewRadialGradientBrush(float64(g.Start.X), float64(g.Start.Y), 0, float64(g.Start.Distance(g.End)))
		for _, s := range g.Stops {
			b.AddColorStop(float64(s.Position), RGBA(s.Color))
		}
		return b
	}
	b := gg.NewLinearGradientBrush(float64(g.Start.X), float64(g.Start.Y), float64(g.End.X), float64(g.End.Y))
	for _, s := range g.Stops {
		b.AddColorStop(float64(s.Position), RGBA(s.Color))
	}
	return b
}

func lineCap(c arbor.StrokeCap) gg.LineCap {
	switch c {
	case arbor.StrokeCapRound:
		return gg.LineCapRound
	case arbor.StrokeCapSquare:
		return gg.LineCapSquare
	}
	return gg.LineCapButt
}

func lineJoin(j arbor.StrokeJoin) gg.LineJoin {
	switch j {
	case arbor.StrokeJoinRound:
		return gg.LineJoinRound
	case arbor.StrokeJoinBevel:
		return gg.LineJoinBevel
	}
	return gg.LineJoinMiter
}
