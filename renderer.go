package arbor

import (
	"slices"

	"github.com/chewxy/math32"
)

// PaintStyle selects fill or stroke rendering.
type PaintStyle uint8

const (
	StyleFill PaintStyle = iota
	StyleStroke
)

// GradientType distinguishes linear from radial gradients.
type GradientType uint8

const (
	GradientLinear GradientType = iota
	GradientRadial
)

// ColorStop is one gradient stop.
type ColorStop struct {
	Color    Color
	Position float32
}

// Gradient describes a gradient in the coordinate space of the path it
// paints. For radial gradients Start is the center and the distance from
// Start to End is the radius.
type Gradient struct {
	Type  GradientType
	Start Vec2
	End   Vec2
	Stops []ColorStop // sorted by Position
}

// Param returns the gradient parameter at p, unclamped.
func (g *Gradient) Param(p Vec2) float32 {
	if g.Type == GradientRadial {
		r := g.Start.Distance(g.End)
		if r == 0 {
			return 1
		}
		return g.Start.Distance(p) / r
	}
	d := g.End.Sub(g.Start)
	l2 := d.Dot(d)
	if l2 == 0 {
		return 0
	}
	return p.Sub(g.Start).Dot(d) / l2
}

// ColorAt returns the color at parameter t, clamped to the end stops.
func (g *Gradient) ColorAt(t float32) Color {
	n := len(g.Stops)
	if n == 0 {
		return ColorTransparent
	}
	if t <= g.Stops[0].Position {
		return g.Stops[0].Color
	}
	if t >= g.Stops[n-1].Position {
		return g.Stops[n-1].Color
	}
	i, _ := slices.BinarySearchFunc(g.Stops, t, func(s ColorStop, t float32) int {
		switch {
		case s.Position < t:
			return -1
		case s.Position > t:
			return 1
		}
		return 0
	})
	if i == 0 {
		return g.Stops[0].Color
	}
	a, b := g.Stops[i-1], g.Stops[i]
	span := b.Position - a.Position
	if span <= 0 {
		return b.Color
	}
	return a.Color.Lerp(b.Color, (t-a.Position)/span)
}

// Transformed returns a copy of g in the space produced by m. Radial radii
// scale by the larger axis factor.
func (g *Gradient) Transformed(m Mat2D) *Gradient {
	out := *g
	out.Start = m.Apply(g.Start)
	if g.Type == GradientRadial {
		r := g.Start.Distance(g.End) * m.MaxScale()
		out.End = out.Start.Add(Vec2{r, 0})
	} else {
		out.End = m.Apply(g.End)
	}
	return &out
}

// RenderPaint is everything a renderer needs to paint one path.
type RenderPaint struct {
	Style     PaintStyle
	Color     Color
	Gradient  *Gradient // overrides Color when set
	Thickness float32
	Cap       StrokeCap
	Join      StrokeJoin
	FillRule  FillRule
	BlendMode BlendMode
}

// withOpacity returns a copy of p with every color faded by o.
func (p RenderPaint) withOpacity(o float32) RenderPaint {
	if o >= 1 {
		return p
	}
	p.Color = p.Color.WithOpacity(o)
	if p.Gradient != nil {
		g := *p.Gradient
		g.Stops = make([]ColorStop, len(p.Gradient.Stops))
		for i, s := range p.Gradient.Stops {
			g.Stops[i] = ColorStop{Color: s.Color.WithOpacity(o), Position: s.Position}
		}
		p.Gradient = &g
	}
	return p
}

// Renderer draws one path with a transform and a paint. Implementations
// decide how to rasterize; the runtime only calls Draw.
type Renderer interface {
	Draw(path *CommandPath, transform Mat2D, paint *RenderPaint)
}

// strokeWidthIn returns the stroke width after transformation by m.
func strokeWidthIn(m Mat2D, thickness float32) float32 {
	return thickness * math32.Sqrt(math32.Abs(m.Determinant()))
}
