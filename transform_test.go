package arbor

import (
	"testing"

	"github.com/chewxy/math32"
)

// --- computeLocalTransform ---

func TestLocalTransformIdentity(t *testing.T) {
	got := computeLocalTransform(0, 0, 0, 1, 1)
	assertMatrix(t, "identity", got, IdentityMat)
}

func TestLocalTransformTranslation(t *testing.T) {
	got := computeLocalTransform(10, 20, 0, 1, 1)
	assertMatrix(t, "translation", got, Mat2D{1, 0, 0, 1, 10, 20})
}

func TestLocalTransformScale(t *testing.T) {
	got := computeLocalTransform(0, 0, 0, 2, 3)
	assertMatrix(t, "scale", got, Mat2D{2, 0, 0, 3, 0, 0})
}

func TestLocalTransformRotation90(t *testing.T) {
	got := computeLocalTransform(0, 0, math32.Pi/2, 1, 1)
	// cos(90)=0, sin(90)=1 → a=0, b=1, c=-1, d=0
	assertMatrix(t, "rot90", got, Mat2D{0, 1, -1, 0, 0, 0})
}

func TestLocalTransformScaleThenRotate(t *testing.T) {
	got := computeLocalTransform(5, 0, math32.Pi/2, 2, 1)
	p := got.Apply(Vec2{1, 0})
	assertNear(t, "x", p.X, 5)
	assertNear(t, "y", p.Y, 2)
}

// --- Mat2D ---

func TestMultiplyAppliesRightFirst(t *testing.T) {
	m := TranslateMat(10, 0).Multiply(ScaleMat(2, 2))
	p := m.Apply(Vec2{1, 1})
	assertNear(t, "x", p.X, 12)
	assertNear(t, "y", p.Y, 2)
}

func TestInvertRoundTrip(t *testing.T) {
	m := TranslateMat(3, -4).Multiply(RotationMat(0.7)).Multiply(ScaleMat(2, 0.5))
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("Invert reported singular matrix")
	}
	assertMatrix(t, "m * inv", m.Multiply(inv), IdentityMat)
}

func TestInvertSingular(t *testing.T) {
	_, ok := ScaleMat(0, 1).Invert()
	if ok {
		t.Error("Invert of singular matrix = ok, want false")
	}
}

func TestMaxScale(t *testing.T) {
	assertNear(t, "MaxScale", ScaleMat(2, 3).MaxScale(), 3)
	assertNear(t, "MaxScale rotated", RotationMat(1).Multiply(ScaleMat(4, 1)).MaxScale(), 4)
}

func TestTransformAABB(t *testing.T) {
	b := transformAABB(RotationMat(math32.Pi/2), AABB{MinX: 0, MinY: 0, MaxX: 2, MaxY: 1})
	assertNear(t, "MinX", b.MinX, -1)
	assertNear(t, "MaxX", b.MaxX, 0)
	assertNear(t, "MinY", b.MinY, 0)
	assertNear(t, "MaxY", b.MaxY, 2)
}

// --- World transforms ---

func TestWorldTransformFollowsParent(t *testing.T) {
	ab := NewArtboard()
	_, parentID := addNode(ab, 0, 10, 20)
	child, _ := addNode(ab, parentID, 5, 0)
	mustInit(t, ab)
	ab.UpdateComponents()

	got := child.WorldTransform().Translation()
	assertNear(t, "x", got.X, 15)
	assertNear(t, "y", got.Y, 20)
}

func TestRenderOpacityMultiplies(t *testing.T) {
	ab := NewArtboard()
	parent, parentID := addNode(ab, 0, 0, 0)
	child, _ := addNode(ab, parentID, 0, 0)
	parent.SetOpacity(0.5)
	child.SetOpacity(0.5)
	mustInit(t, ab)
	ab.UpdateComponents()

	assertNear(t, "RenderOpacity", child.RenderOpacity(), 0.25)

	parent.SetOpacity(1)
	ab.UpdateComponents()
	assertNear(t, "RenderOpacity after change", child.RenderOpacity(), 0.5)
}
