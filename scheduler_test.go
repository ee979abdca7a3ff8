package arbor

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// bouncer re-dirties its parent from Update, pulling the cursor backward.
// Marking the parent recursively re-dirties the bouncer as well, so without
// a budget the two never settle.
type bouncer struct {
	Component
	budget int // negative bounces forever
}

func (b *bouncer) BuildDependencies() {
	if p := AsComponent(b.ParentObject()); p != nil {
		p.AddDependent(b.id)
	}
}

func (b *bouncer) Update(ComponentDirt) {
	if b.budget == 0 {
		return
	}
	if b.budget > 0 {
		b.budget--
	}
	AsComponent(b.ParentObject()).AddDirt(DirtPaint, true)
}

func newBouncerArtboard(budget int) (*Artboard, *bouncer) {
	ab := NewArtboard()
	_, nodeID := addNode(ab, 0, 0, 0)
	b := &bouncer{budget: budget}
	b.SetParentID(nodeID)
	ab.AddObject(b)
	return ab, b
}

// --- Convergence ---

func TestAcyclicGraphConvergesInOnePass(t *testing.T) {
	ab := NewArtboard()
	ab.SetWidth(100)
	ab.SetHeight(100)
	_, groupID := addNode(ab, 0, 10, 10)
	addRectShape(ab, groupID, 0, 0, 20, 20, 0xffff0000)
	addRectShape(ab, 0, 50, 50, 10, 10, 0xff00ff00)
	mustInit(t, ab)

	if !ab.UpdateComponents() {
		t.Fatal("UpdateComponents after Initialize = false, want true")
	}
	st := ab.UpdateStats()
	if st.Passes != 1 {
		t.Errorf("Passes = %d, want 1", st.Passes)
	}
	if st.Restarts != 0 {
		t.Errorf("Restarts = %d, want 0", st.Restarts)
	}
	if st.Stalled {
		t.Error("Stalled = true, want false")
	}
	for _, id := range ab.DependencyOrder() {
		if c := AsComponent(ab.Resolve(id)); c.Dirt() != DirtNone {
			t.Errorf("object %d dirt = %v, want None", id, c.Dirt())
		}
	}
}

func TestUpdateComponentsCleanIsNoop(t *testing.T) {
	ab := NewArtboard()
	addNode(ab, 0, 0, 0)
	mustInit(t, ab)
	ab.UpdateComponents()

	if ab.UpdateComponents() {
		t.Error("UpdateComponents on clean artboard = true, want false")
	}
	if got := ab.UpdateStats().Passes; got != 0 {
		t.Errorf("Passes = %d, want 0", got)
	}
}

func TestParentDirtUpdatesChildInSamePass(t *testing.T) {
	ab := NewArtboard()
	parent, parentID := addNode(ab, 0, 10, 20)
	child, _ := addNode(ab, parentID, 5, 5)
	mustInit(t, ab)
	ab.UpdateComponents()

	parent.SetX(100)
	if !child.HasDirt(DirtWorldTransform) {
		t.Fatal("child not marked WorldTransform dirty after parent move")
	}
	ab.UpdateComponents()

	if got := ab.UpdateStats().Passes; got != 1 {
		t.Errorf("Passes = %d, want 1", got)
	}
	if parent.Dirt() != DirtNone || child.Dirt() != DirtNone {
		t.Errorf("dirt after update: parent %v, child %v, want None", parent.Dirt(), child.Dirt())
	}
	got := child.WorldTransform().Translation()
	assertNear(t, "child world x", got.X, 105)
	assertNear(t, "child world y", got.Y, 25)
}

// --- Restarts and the pass cap ---

func TestBackwardDirtRestartsPass(t *testing.T) {
	ab, b := newBouncerArtboard(1)
	mustInit(t, ab)
	ab.UpdateComponents()

	st := ab.UpdateStats()
	if st.Restarts != 1 {
		t.Errorf("Restarts = %d, want 1", st.Restarts)
	}
	if st.Passes != 2 {
		t.Errorf("Passes = %d, want 2", st.Passes)
	}
	if st.Stalled {
		t.Error("Stalled = true, want false")
	}
	if b.Dirt() != DirtNone {
		t.Errorf("bouncer dirt = %v, want None", b.Dirt())
	}
}

func TestPassCapStallsWithoutPanic(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	ab, _ := newBouncerArtboard(-1)
	ab.SetMaxUpdatePasses(5)
	mustInit(t, ab)
	ab.UpdateComponents()

	st := ab.UpdateStats()
	if !st.Stalled {
		t.Error("Stalled = false, want true")
	}
	if st.Passes != 5 {
		t.Errorf("Passes = %d, want 5", st.Passes)
	}
	if st.Restarts != 5 {
		t.Errorf("Restarts = %d, want 5", st.Restarts)
	}
	if !strings.Contains(buf.String(), "pass limit") {
		t.Errorf("log = %q, want a pass limit warning", buf.String())
	}
}

func TestStallResumesNextFrame(t *testing.T) {
	ab, b := newBouncerArtboard(3)
	ab.SetMaxUpdatePasses(2)
	mustInit(t, ab)

	ab.UpdateComponents()
	if !ab.UpdateStats().Stalled {
		t.Fatal("first frame: Stalled = false, want true")
	}
	ab.UpdateComponents()
	if ab.UpdateStats().Stalled {
		t.Error("second frame: Stalled = true, want false")
	}
	if b.budget != 0 {
		t.Errorf("budget = %d, want 0", b.budget)
	}
}

func TestSetMaxUpdatePassesDefault(t *testing.T) {
	ab := NewArtboard()
	if got := ab.MaxUpdatePasses(); got != DefaultMaxUpdatePasses {
		t.Errorf("MaxUpdatePasses = %d, want %d", got, DefaultMaxUpdatePasses)
	}
	ab.SetMaxUpdatePasses(3)
	if got := ab.MaxUpdatePasses(); got != 3 {
		t.Errorf("MaxUpdatePasses = %d, want 3", got)
	}
	ab.SetMaxUpdatePasses(0)
	if got := ab.MaxUpdatePasses(); got != DefaultMaxUpdatePasses {
		t.Errorf("MaxUpdatePasses after 0 = %d, want %d", got, DefaultMaxUpdatePasses)
	}
}

// --- Dirt ---

func TestAddDirtReportsChange(t *testing.T) {
	ab := NewArtboard()
	n, _ := addNode(ab, 0, 0, 0)
	mustInit(t, ab)
	ab.UpdateComponents()

	if !n.AddDirt(DirtPaint, false) {
		t.Error("first AddDirt = false, want true")
	}
	if n.AddDirt(DirtPaint, false) {
		t.Error("repeated AddDirt = true, want false")
	}
	if !ab.HasDirt(DirtComponents) {
		t.Error("artboard missing Components dirt")
	}
}

func TestComponentDirtString(t *testing.T) {
	if got := (DirtPath | DirtTransform).String(); got != "Path|Transform" {
		t.Errorf("String = %q, want %q", got, "Path|Transform")
	}
	if got := DirtNone.String(); got != "None" {
		t.Errorf("String = %q, want None", got)
	}
}
