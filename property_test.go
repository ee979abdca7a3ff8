package arbor

import (
	"slices"
	"testing"
)

// --- Lookup ---

func TestPropertyOfWalksAncestors(t *testing.T) {
	n := NewNode()

	x, ok := PropertyOf(n, PropNodeX)
	if !ok {
		t.Fatal("PropertyOf(node, x) not found")
	}
	if x.Name() != "x" || x.Field() != FieldFloat {
		t.Errorf("x = (%q, %v), want (\"x\", %v)", x.Name(), x.Field(), FieldFloat)
	}
	if _, ok := PropertyOf(n, PropRotation); !ok {
		t.Error("rotation should come from the transform component")
	}
	if _, ok := PropertyOf(n, PropComponentName); !ok {
		t.Error("name should come from the component")
	}
	if _, ok := PropertyOf(n, PropSolidColorValue); ok {
		t.Error("node should not carry a color value")
	}
	if _, ok := PropertyOf(nil, PropNodeX); ok {
		t.Error("nil object should have no properties")
	}
}

func TestPropertiesListsChain(t *testing.T) {
	keys := Properties(NewNode())
	for _, want := range []PropertyKey{PropNodeX, PropNodeY, PropRotation, PropOpacity, PropComponentName, PropComponentParentID} {
		if !slices.Contains(keys, want) {
			t.Errorf("Properties(node) missing %d", want)
		}
	}
	if slices.Index(keys, PropNodeX) > slices.Index(keys, PropComponentName) {
		t.Error("derived keys should be listed before ancestor keys")
	}
}

func TestFieldTypeOf(t *testing.T) {
	tests := []struct {
		key  PropertyKey
		want FieldType
	}{
		{PropNodeX, FieldFloat},
		{PropComponentName, FieldString},
		{PropComponentParentID, FieldUint},
		{PropSolidColorValue, FieldColor},
		{PropPaintIsVisible, FieldBool},
	}
	for _, tt := range tests {
		got, ok := FieldTypeOf(tt.key)
		if !ok || got != tt.want {
			t.Errorf("FieldTypeOf(%d) = %v, %v, want %v", tt.key, got, ok, tt.want)
		}
	}
	if _, ok := FieldTypeOf(9999); ok {
		t.Error("FieldTypeOf(9999) should be unknown")
	}
}

// --- Get, Set, Reset ---

func TestPropertySetCoerces(t *testing.T) {
	n := NewNode()
	x, _ := PropertyOf(n, PropNodeX)

	x.Set(UintValue(3))
	if n.X() != 3 {
		t.Errorf("X = %v, want 3", n.X())
	}
	if got := x.Get(); got.Field() != FieldFloat || got.Float() != 3 {
		t.Errorf("Get = %v (%v), want 3 float", got, got.Field())
	}
}

func TestPropertyReset(t *testing.T) {
	n := NewNode()
	op, _ := PropertyOf(n, PropOpacity)
	if !op.IsDefault() {
		t.Error("fresh opacity should be default")
	}
	n.SetOpacity(0.25)
	if op.IsDefault() {
		t.Error("changed opacity should not be default")
	}
	op.Reset()
	if n.Opacity() != 1 {
		t.Errorf("Opacity after Reset = %v, want 1", n.Opacity())
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{FloatValue(1.5), "1.5"},
		{UintValue(7), "7"},
		{BoolValue(true), "true"},
		{ARGBValue(0xff102030), "#ff102030"},
		{StringValue("hi"), `"hi"`},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

// --- Animate ---

func TestAnimateMixesFloats(t *testing.T) {
	n := NewNode()
	n.SetX(2)
	Animate(n, PropNodeX, FloatValue(10), 0.25)
	assertNear(t, "mixed x", n.X(), 4)

	Animate(n, PropNodeX, FloatValue(10), 1)
	assertNear(t, "replaced x", n.X(), 10)
}

func TestAnimateMixesColors(t *testing.T) {
	sc := NewSolidColor(0xff000000)
	Animate(sc, PropSolidColorValue, ARGBValue(0xffffffff), 0.5)

	got := sc.ColorValue()
	if got>>24 != 0xff {
		t.Errorf("alpha = %#x, want 0xff", got>>24)
	}
	if r := (got >> 16) & 0xff; r < 127 || r > 128 {
		t.Errorf("red = %d, want about 127", r)
	}
}

func TestAnimateUnknownKeyIgnored(t *testing.T) {
	n := NewNode()
	n.SetX(5)
	Animate(n, PropSolidColorValue, ARGBValue(0xffffffff), 1)
	if n.X() != 5 {
		t.Errorf("X = %v, want 5", n.X())
	}
}
