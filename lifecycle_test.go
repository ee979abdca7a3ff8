package arbor

import (
	"errors"
	"strings"
	"testing"
)

func initError(t *testing.T, ab *Artboard) *InitError {
	t.Helper()
	err := ab.Initialize()
	if err == nil {
		t.Fatal("Initialize succeeded, want error")
	}
	var ie *InitError
	if !errors.As(err, &ie) {
		t.Fatalf("error %T is not *InitError: %v", err, err)
	}
	return ie
}

// --- Dirty phase ---

func TestInitMissingParent(t *testing.T) {
	ab := NewArtboard()
	_, id := addNode(ab, 99, 0, 0)

	ie := initError(t, ab)
	if !errors.Is(ie, ErrMissingObject) {
		t.Errorf("errors.Is(ErrMissingObject) = false for %v", ie)
	}
	if ie.Phase != "dirty" || ie.ObjectID != id {
		t.Errorf("Phase, ObjectID = %q, %d, want dirty, %d", ie.Phase, ie.ObjectID, id)
	}
	if ab.IsInitialized() {
		t.Error("IsInitialized = true after a failed Initialize")
	}
}

func TestInitParentNotContainer(t *testing.T) {
	ab := NewArtboard()
	interp := ab.AddObject(NewCubicInterpolator(0, 0, 1, 1))
	addNode(ab, interp, 0, 0)

	ie := initError(t, ab)
	if !errors.Is(ie, ErrInvalidObject) {
		t.Errorf("errors.Is(ErrInvalidObject) = false for %v", ie)
	}
	if !strings.Contains(ie.Error(), "Node") {
		t.Errorf("Error() = %q, want it to name the type", ie.Error())
	}
}

func TestInitDrawTargetNotDrawable(t *testing.T) {
	ab := NewArtboard()
	s := addBareShape(ab, 0, "s")
	_, n := addNode(ab, 0, 0, 0)
	rules := NewDrawRules(NoID)
	rules.SetParentID(s)
	rulesID := ab.AddObject(rules)
	target := NewDrawTarget(n, PlacementBefore)
	target.SetParentID(rulesID)
	ab.AddObject(target)

	if ie := initError(t, ab); !errors.Is(ie, ErrInvalidObject) {
		t.Errorf("errors.Is(ErrInvalidObject) = false for %v", ie)
	}
}

func TestInitDrawRulesUnresolvedTargetIsInactive(t *testing.T) {
	ab := NewArtboard()
	s := addBareShape(ab, 0, "s")
	rules := NewDrawRules(s) // a shape, not a draw target
	rules.SetParentID(s)
	ab.AddObject(rules)
	mustInit(t, ab)
	if rules.ActiveTarget() != nil {
		t.Error("ActiveTarget resolved to a non-target")
	}
}

// --- Clean phase ---

func TestInitFillOutsidePaintContainer(t *testing.T) {
	ab := NewArtboard()
	_, n := addNode(ab, 0, 0, 0)
	f := NewFill()
	f.SetParentID(n)
	id := ab.AddObject(f)

	ie := initError(t, ab)
	if ie.Phase != "clean" || ie.ObjectID != id || ie.Status != StatusMissingObject {
		t.Errorf("got %+v, want clean MissingObject on %d", ie, id)
	}
}

func TestInitSolidColorOutsidePaint(t *testing.T) {
	ab := NewArtboard()
	_, n := addNode(ab, 0, 0, 0)
	sc := NewSolidColor(0xffffffff)
	sc.SetParentID(n)
	ab.AddObject(sc)

	if ie := initError(t, ab); ie.Status != StatusInvalidObject || ie.Phase != "clean" {
		t.Errorf("got %+v, want clean InvalidObject", ie)
	}
}

// --- Animations ---

func TestInitKeyedObjectMissingTarget(t *testing.T) {
	ab := NewArtboard()
	a := NewLinearAnimation("bad", 60)
	a.AddKeyedObject(NewKeyedObject(7))
	ab.AddAnimation(a)

	ie := initError(t, ab)
	if !errors.Is(ie, ErrMissingObject) {
		t.Errorf("errors.Is(ErrMissingObject) = false for %v", ie)
	}
	if ie.ObjectID != NoID || !strings.Contains(ie.Type, "bad") {
		t.Errorf("ObjectID, Type = %d, %q, want NoID and the animation name", ie.ObjectID, ie.Type)
	}
}

func TestInitKeyedPropertyNotOnTarget(t *testing.T) {
	ab := NewArtboard()
	_, id := addNode(ab, 0, 0, 0)
	ko := NewKeyedObject(id)
	ko.AddKeyedProperty(NewKeyedProperty(PropSolidColorValue))
	a := NewLinearAnimation("bad", 60)
	a.AddKeyedObject(ko)
	ab.AddAnimation(a)

	if ie := initError(t, ab); !errors.Is(ie, ErrInvalidObject) {
		t.Errorf("errors.Is(ErrInvalidObject) = false for %v", ie)
	}
}

func TestInitCubicKeyFrameNeedsInterpolator(t *testing.T) {
	ab := NewArtboard()
	_, id := addNode(ab, 0, 0, 0)
	kp := NewKeyedProperty(PropNodeX)
	kp.AddKeyFrame(NewKeyFrameDouble(0, 0, InterpolationCubic))
	ko := NewKeyedObject(id)
	ko.AddKeyedProperty(kp)
	a := NewLinearAnimation("cubic", 60)
	a.AddKeyedObject(ko)
	ab.AddAnimation(a)

	if ie := initError(t, ab); !errors.Is(ie, ErrMissingObject) {
		t.Errorf("errors.Is(ErrMissingObject) = false for %v", ie)
	}
}

func TestInitKeyFrameInterpolatorWrongType(t *testing.T) {
	ab := NewArtboard()
	_, id := addNode(ab, 0, 0, 0)
	kf := NewKeyFrameDouble(0, 0, InterpolationCubic)
	kf.SetInterpolatorID(id)
	kp := NewKeyedProperty(PropNodeX)
	kp.AddKeyFrame(kf)
	ko := NewKeyedObject(id)
	ko.AddKeyedProperty(kp)
	a := NewLinearAnimation("cubic", 60)
	a.AddKeyedObject(ko)
	ab.AddAnimation(a)

	if ie := initError(t, ab); !errors.Is(ie, ErrInvalidObject) {
		t.Errorf("errors.Is(ErrInvalidObject) = false for %v", ie)
	}
}

// --- Artboard ---

func TestInitTwice(t *testing.T) {
	ab := NewArtboard()
	mustInit(t, ab)
	if err := ab.Initialize(); !errors.Is(err, ErrAlreadyInitialized) {
		t.Errorf("second Initialize = %v, want ErrAlreadyInitialized", err)
	}
}

func TestAddObjectAfterInitPanics(t *testing.T) {
	ab := NewArtboard()
	mustInit(t, ab)
	defer func() {
		if recover() == nil {
			t.Error("AddObject after Initialize did not panic")
		}
	}()
	ab.AddObject(NewNode())
}

func TestInitMarksEverythingDirty(t *testing.T) {
	ab := NewArtboard()
	n, _ := addNode(ab, 0, 0, 0)
	mustInit(t, ab)
	if !n.HasDirt(DirtTransform | DirtWorldTransform) {
		t.Errorf("node dirt = %v, want transform dirt", n.Dirt())
	}
	if !ab.HasDirt(DirtComponents) {
		t.Error("artboard missing DirtComponents after Initialize")
	}
}

func TestStatusCodeStrings(t *testing.T) {
	tests := []struct {
		code StatusCode
		want string
	}{
		{StatusOk, "Ok"},
		{StatusMissingObject, "MissingObject"},
		{StatusInvalidObject, "InvalidObject"},
		{StatusFailedInversion, "FailedInversion"},
		{StatusCode(9), "StatusCode(9)"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
	if StatusOk.Err() != nil {
		t.Error("StatusOk.Err() != nil")
	}
}
