package arbor

import "github.com/chewxy/math32"

// defaultMiterLimit is the miter length, in half widths, above which a
// miter join falls back to a bevel.
const defaultMiterLimit = 4

// strokePolygons outlines polylines of the given width as a set of
// polygons. Every polygon has the same winding, so filling them together
// with a non-zero rule paints their union.
func strokePolygons(lines []Polyline, width float32, cap StrokeCap, join StrokeJoin) [][]Vec2 {
	hw := width / 2
	if hw <= 0 {
		return nil
	}
	var polys [][]Vec2
	for _, line := range lines {
		pts := dedupe(line.Points)
		if len(pts) == 1 {
			if cap == StrokeCapRound {
				polys = append(polys, circlePolygon(pts[0], hw))
			} else if cap == StrokeCapSquare {
				polys = append(polys, oriented([]Vec2{
					{pts[0].X - hw, pts[0].Y - hw}, {pts[0].X + hw, pts[0].Y - hw},
					{pts[0].X + hw, pts[0].Y + hw}, {pts[0].X - hw, pts[0].Y + hw},
				}))
			}
			continue
		}
		if len(pts) == 0 {
			continue
		}

		closed := line.Closed && len(pts) > 2
		n := len(pts)
		segs := n - 1
		if closed {
			segs = n
		}
		for i := 0; i < segs; i++ {
			a, b := pts[i], pts[(i+1)%n]
			if !closed && cap == StrokeCapSquare {
				d := b.Sub(a).Normalize().Scale(hw)
				if i == 0 {
					a = a.Sub(d)
				}
				if i == segs-1 {
					b = b.Add(d)
				}
			}
			polys = append(polys, segmentQuad(a, b, hw))
		}

		// Joins at interior vertices, and at every vertex when closed.
		for i := 0; i < n; i++ {
			if !closed && (i == 0 || i == n-1) {
				continue
			}
			prev, cur, next := pts[(i+n-1)%n], pts[i], pts[(i+1)%n]
			if p := joinPolygon(prev, cur, next, hw, join); p != nil {
				polys = append(polys, p)
			}
		}

		if !closed && cap == StrokeCapRound {
			polys = append(polys, circlePolygon(pts[0], hw), circlePolygon(pts[n-1], hw))
		}
	}
	return polys
}

// dedupe drops consecutive duplicate points.
func dedupe(pts []Vec2) []Vec2 {
	out := make([]Vec2, 0, len(pts))
	for i, p := range pts {
		if i > 0 && p == out[len(out)-1] {
			continue
		}
		out = append(out, p)
	}
	return out
}

func segmentQuad(a, b Vec2, hw float32) []Vec2 {
	d := b.Sub(a).Normalize()
	n := Vec2{-d.Y, d.X}.Scale(hw)
	return oriented([]Vec2{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)})
}

func joinPolygon(prev, cur, next Vec2, hw float32, join StrokeJoin) []Vec2 {
	d0 := cur.Sub(prev).Normalize()
	d1 := next.Sub(cur).Normalize()
	turn := d0.Cross(d1)
	if math32.Abs(turn) < 1e-6 && d0.Dot(d1) > 0 {
		return nil
	}
	if join == StrokeJoinRound {
		return circlePolygon(cur, hw)
	}

	// The outer side of the turn is opposite the direction it bends.
	side := float32(1)
	if turn > 0 {
		side = -1
	}
	o0 := Vec2{-d0.Y, d0.X}.Scale(hw * side)
	o1 := Vec2{-d1.Y, d1.X}.Scale(hw * side)

	if join == StrokeJoinMiter {
		bis := o0.Add(o1).Normalize()
		cosHalf := bis.Dot(o0) / hw
		if cosHalf > 1/float32(defaultMiterLimit) {
			tip := cur.Add(bis.Scale(hw / cosHalf))
			return oriented([]Vec2{cur, cur.Add(o0), tip, cur.Add(o1)})
		}
	}
	return oriented([]Vec2{cur, cur.Add(o0), cur.Add(o1)})
}

func circlePolygon(c Vec2, r float32) []Vec2 {
	n := int(math32.Ceil(2 * math32.Pi * r / 2))
	n = max(8, min(n, 64))
	pts := make([]Vec2, n)
	for i := range pts {
		s, co := math32.Sincos(2 * math32.Pi * float32(i) / float32(n))
		pts[i] = Vec2{c.X + co*r, c.Y + s*r}
	}
	return oriented(pts)
}

// oriented returns poly with positive signed area, reversing it in place if
// needed.
func oriented(poly []Vec2) []Vec2 {
	if signedArea(poly) < 0 {
		for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
	}
	return poly
}

func signedArea(poly []Vec2) float32 {
	var a float32
	for i := range poly {
		p, q := poly[i], poly[(i+1)%len(poly)]
		a += p.Cross(q)
	}
	return a / 2
}
