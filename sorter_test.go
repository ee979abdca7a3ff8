package arbor

import (
	"strings"
	"testing"
)

func graphOf(edges map[uint32][]uint32) func(uint32) []uint32 {
	return func(id uint32) []uint32 { return edges[id] }
}

func indexOf(order []uint32, id uint32) int {
	for i, v := range order {
		if v == id {
			return i
		}
	}
	return -1
}

// --- DependencySorter ---

func TestSorterRespectsEdges(t *testing.T) {
	edges := map[uint32][]uint32{
		0: {1, 2},
		1: {3},
		2: {3, 4},
		3: {5},
		4: {5},
	}
	var s DependencySorter
	order := s.Sort(0, graphOf(edges))

	if len(order) != 6 {
		t.Fatalf("len(order) = %d, want 6 (%v)", len(order), order)
	}
	seen := map[uint32]bool{}
	for _, id := range order {
		if seen[id] {
			t.Errorf("id %d emitted twice", id)
		}
		seen[id] = true
	}
	for from, tos := range edges {
		for _, to := range tos {
			if indexOf(order, from) > indexOf(order, to) {
				t.Errorf("%d emitted after its dependent %d (%v)", from, to, order)
			}
		}
	}
	if len(s.Unsorted()) != 0 {
		t.Errorf("Unsorted = %v, want none", s.Unsorted())
	}
}

func TestSorterStableTies(t *testing.T) {
	edges := map[uint32][]uint32{0: {3, 1, 2}}
	var s DependencySorter
	order := s.Sort(0, graphOf(edges))
	want := []uint32{0, 3, 1, 2}
	if !equalIDs(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestSorterLeavesCycleOut(t *testing.T) {
	// 2 and 3 depend on each other; 4 is only reachable through them.
	edges := map[uint32][]uint32{
		0: {1, 2},
		2: {3},
		3: {2, 4},
	}
	var s DependencySorter
	order := s.Sort(0, graphOf(edges))

	want := []uint32{0, 1}
	if !equalIDs(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
	unsorted := map[uint32]bool{}
	for _, id := range s.Unsorted() {
		unsorted[id] = true
	}
	for _, id := range []uint32{2, 3, 4} {
		if !unsorted[id] {
			t.Errorf("id %d missing from Unsorted %v", id, s.Unsorted())
		}
	}
}

func TestSorterDuplicateEdges(t *testing.T) {
	edges := map[uint32][]uint32{0: {1, 1}, 1: {2}}
	var s DependencySorter
	order := s.Sort(0, graphOf(edges))
	want := []uint32{0, 1, 2}
	if !equalIDs(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

// --- Artboard dependency order ---

func TestArtboardGraphOrder(t *testing.T) {
	ab := NewArtboard()
	_, a := addNode(ab, 0, 0, 0)
	_, b := addNode(ab, a, 0, 0)
	_, c := addNode(ab, 0, 0, 0)
	mustInit(t, ab)

	order := ab.DependencyOrder()
	if order[0] != 0 {
		t.Errorf("order[0] = %d, want the artboard", order[0])
	}
	for i, id := range order {
		if got := AsComponent(ab.Resolve(id)).GraphOrder(); got != i {
			t.Errorf("GraphOrder(%d) = %d, want %d", id, got, i)
		}
	}
	if indexOf(order, a) > indexOf(order, b) {
		t.Errorf("child %d sorted before parent %d", b, a)
	}
	if indexOf(order, c) < 0 {
		t.Errorf("node %d missing from order %v", c, order)
	}
}

func TestArtboardDOT(t *testing.T) {
	ab := NewArtboard()
	ab.SetName("main")
	n, _ := addNode(ab, 0, 0, 0)
	n.SetName(`say "hi"`)
	mustInit(t, ab)

	dot := ab.DOT()
	for _, want := range []string{"digraph", "n0 -> n1", `say \"hi\"`} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}
