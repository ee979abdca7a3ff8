package arbor

import (
	"testing"

	"github.com/chewxy/math32"
)

const epsilon = 1e-4

func assertNear(t *testing.T, name string, got, want float32) {
	t.Helper()
	if math32.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want Mat2D) {
	t.Helper()
	for i := range got {
		if math32.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

func mustInit(t testing.TB, ab *Artboard) {
	t.Helper()
	if err := ab.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
}

// addNode appends a node under parent and returns it with its ID.
func addNode(ab *Artboard, parent uint32, x, y float32) (*Node, uint32) {
	n := NewNode()
	n.SetParentID(parent)
	n.SetX(x)
	n.SetY(y)
	return n, ab.AddObject(n)
}

// addBareShape appends a shape with no geometry.
func addBareShape(ab *Artboard, parent uint32, name string) uint32 {
	s := NewShape()
	s.SetName(name)
	s.SetParentID(parent)
	return ab.AddObject(s)
}

// addRectShape appends a filled w by h rectangle centered at (x, y) and
// returns the shape ID and the fill color ID.
func addRectShape(ab *Artboard, parent uint32, x, y, w, h float32, argb uint32) (shapeID, colorID uint32) {
	s := NewShape()
	s.SetParentID(parent)
	s.SetX(x)
	s.SetY(y)
	shapeID = ab.AddObject(s)

	c := NewPathComposer()
	c.SetParentID(shapeID)
	ab.AddObject(c)

	r := NewRectangle(w, h)
	r.SetParentID(shapeID)
	ab.AddObject(r)

	f := NewFill()
	f.SetParentID(shapeID)
	fillID := ab.AddObject(f)

	sc := NewSolidColor(argb)
	sc.SetParentID(fillID)
	colorID = ab.AddObject(sc)
	return shapeID, colorID
}

// drawListIDs walks the draw list from head to tail.
func drawListIDs(ab *Artboard) []uint32 {
	var out []uint32
	for id := ab.FirstDrawable(); id != NoID && len(out) <= len(ab.Objects()); {
		out = append(out, id)
		id = AsDrawable(ab.Resolve(id)).Next()
	}
	return out
}

func equalIDs(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
