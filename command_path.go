package arbor

import "github.com/chewxy/math32"

// PathVerb is the kind of a path command.
type PathVerb uint8

const (
	VerbMove PathVerb = iota
	VerbLine
	VerbCubic
	VerbClose
)

// PathCommand is one drawing instruction. Move and Line use Points[0]; Cubic
// uses Points[0] and Points[1] as control points and Points[2] as the end.
type PathCommand struct {
	Verb   PathVerb
	Points [3]Vec2
}

// CommandPath is an immutable list of path commands handed to renderers.
type CommandPath struct {
	cmds []PathCommand
}

// Commands returns the command list. Callers must not modify it.
func (p *CommandPath) Commands() []PathCommand {
	if p == nil {
		return nil
	}
	return p.cmds
}

// Len returns the number of commands.
func (p *CommandPath) Len() int { return len(p.Commands()) }

// IsEmpty reports whether the path has no drawing commands.
func (p *CommandPath) IsEmpty() bool { return p.Len() == 0 }

// Bounds returns the bounding box of every point, control points included.
func (p *CommandPath) Bounds() AABB {
	b := emptyAABB
	for _, c := range p.Commands() {
		switch c.Verb {
		case VerbMove, VerbLine:
			b = b.Expand(c.Points[0])
		case VerbCubic:
			b = b.Expand(c.Points[0]).Expand(c.Points[1]).Expand(c.Points[2])
		}
	}
	return b
}

// Transformed returns a copy of p with every point mapped through m.
func (p *CommandPath) Transformed(m Mat2D) *CommandPath {
	var b CommandPathBuilder
	b.AddPath(p, m)
	return b.Build()
}

// Polyline is a flattened sub-path.
type Polyline struct {
	Points []Vec2
	Closed bool
}

// Flatten approximates every sub-path with line segments whose distance from
// the true curve stays under tolerance.
func (p *CommandPath) Flatten(tolerance float32) []Polyline {
	if tolerance <= 0 {
		tolerance = 0.25
	}
	var (
		out  []Polyline
		cur  Polyline
		pen  Vec2
		open bool
	)
	flush := func() {
		if open && len(cur.Points) > 0 {
			n := len(cur.Points)
			if cur.Closed && n > 1 && cur.Points[0] == cur.Points[n-1] {
				cur.Points = cur.Points[:n-1]
			}
			out = append(out, cur)
		}
		cur = Polyline{}
		open = false
	}
	for _, c := range p.Commands() {
		switch c.Verb {
		case VerbMove:
			flush()
			pen = c.Points[0]
			cur.Points = append(cur.Points, pen)
			open = true
		case VerbLine:
			if !open {
				cur.Points = append(cur.Points, pen)
				open = true
			}
			pen = c.Points[0]
			cur.Points = append(cur.Points, pen)
		case VerbCubic:
			if !open {
				cur.Points = append(cur.Points, pen)
				open = true
			}
			cur.Points = flattenCubic(cur.Points, pen, c.Points[0], c.Points[1], c.Points[2], tolerance)
			pen = c.Points[2]
		case VerbClose:
			if open {
				cur.Closed = true
				pen = cur.Points[0]
				flush()
			}
		}
	}
	flush()
	return out
}

// flattenCubic appends points approximating the cubic (p0, c1, c2, p3),
// excluding p0.
func flattenCubic(dst []Vec2, p0, c1, c2, p3 Vec2, tolerance float32) []Vec2 {
	dd := max(p0.Sub(c1.Scale(2)).Add(c2).Length(), c1.Sub(c2.Scale(2)).Add(p3).Length())
	n := int(math32.Ceil(math32.Sqrt(dd * 0.75 / tolerance)))
	n = max(1, min(n, 100))
	for i := 1; i <= n; i++ {
		dst = append(dst, cubicAt(p0, c1, c2, p3, float32(i)/float32(n)))
	}
	return dst
}

func cubicAt(p0, c1, c2, p3 Vec2, t float32) Vec2 {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return Vec2{
		X: a*p0.X + b*c1.X + c*c2.X + d*p3.X,
		Y: a*p0.Y + b*c1.Y + c*c2.Y + d*p3.Y,
	}
}

// CommandPathBuilder accumulates commands. The zero value is ready to use.
type CommandPathBuilder struct {
	cmds []PathCommand
}

// MoveTo starts a new sub-path at (x, y).
func (b *CommandPathBuilder) MoveTo(x, y float32) {
	b.cmds = append(b.cmds, PathCommand{Verb: VerbMove, Points: [3]Vec2{{x, y}}})
}

// LineTo adds a straight segment to (x, y).
func (b *CommandPathBuilder) LineTo(x, y float32) {
	b.cmds = append(b.cmds, PathCommand{Verb: VerbLine, Points: [3]Vec2{{x, y}}})
}

// CubicTo adds a cubic Bezier segment ending at (x, y).
func (b *CommandPathBuilder) CubicTo(c1x, c1y, c2x, c2y, x, y float32) {
	b.cmds = append(b.cmds, PathCommand{Verb: VerbCubic, Points: [3]Vec2{{c1x, c1y}, {c2x, c2y}, {x, y}}})
}

// Close closes the current sub-path.
func (b *CommandPathBuilder) Close() {
	b.cmds = append(b.cmds, PathCommand{Verb: VerbClose})
}

// Rect adds a closed axis-aligned rectangle.
func (b *CommandPathBuilder) Rect(x, y, w, h float32) {
	b.MoveTo(x, y)
	b.LineTo(x+w, y)
	b.LineTo(x+w, y+h)
	b.LineTo(x, y+h)
	b.Close()
}

// circleConstant is the control point distance for a quarter circle.
const circleConstant = 0.552284749831

// Ellipse adds a closed ellipse centered at (cx, cy).
func (b *CommandPathBuilder) Ellipse(cx, cy, rx, ry float32) {
	ox, oy := rx*circleConstant, ry*circleConstant
	b.MoveTo(cx, cy-ry)
	b.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	b.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	b.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	b.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	b.Close()
}

// AddPath appends every command of p mapped through m.
func (b *CommandPathBuilder) AddPath(p *CommandPath, m Mat2D) {
	for _, c := range p.Commands() {
		c.Points[0] = m.Apply(c.Points[0])
		if c.Verb == VerbCubic {
			c.Points[1] = m.Apply(c.Points[1])
			c.Points[2] = m.Apply(c.Points[2])
		}
		b.cmds = append(b.cmds, c)
	}
}

// Build returns the accumulated path and resets the builder.
func (b *CommandPathBuilder) Build() *CommandPath {
	p := &CommandPath{cmds: b.cmds}
	b.cmds = nil
	return p
}
