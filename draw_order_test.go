package arbor

import (
	"math/rand/v2"
	"testing"
)

// threeShapes builds shapes a, b and c under the artboard, with draw rules
// on c whose target places c relative to the drawable targetOf picks.
func threeShapes(t *testing.T, placement DrawTargetPlacement, targetOf func(a, b, c uint32) uint32) (ab *Artboard, a, b, c uint32, rules *DrawRules) {
	t.Helper()
	ab = NewArtboard()
	a = addBareShape(ab, 0, "a")
	b = addBareShape(ab, 0, "b")
	c = addBareShape(ab, 0, "c")

	rules = NewDrawRules(NoID)
	rules.SetParentID(c)
	rulesID := ab.AddObject(rules)

	target := NewDrawTarget(targetOf(a, b, c), placement)
	target.SetParentID(rulesID)
	rules.SetDrawTargetID(ab.AddObject(target))

	mustInit(t, ab)
	ab.UpdateComponents()
	return ab, a, b, c, rules
}

func checkDrawList(t *testing.T, ab *Artboard, want []uint32) {
	t.Helper()
	if err := ab.ValidateDrawList(); err != nil {
		t.Fatalf("ValidateDrawList: %v", err)
	}
	if got := drawListIDs(ab); !equalIDs(got, want) {
		t.Errorf("draw list = %v, want %v", got, want)
	}
	if len(want) > 0 {
		if ab.FirstDrawable() != want[0] {
			t.Errorf("FirstDrawable = %d, want %d", ab.FirstDrawable(), want[0])
		}
		if ab.LastDrawable() != want[len(want)-1] {
			t.Errorf("LastDrawable = %d, want %d", ab.LastDrawable(), want[len(want)-1])
		}
	}
}

// --- Main chain ---

func TestDrawListFollowsGraphOrder(t *testing.T) {
	ab := NewArtboard()
	a := addBareShape(ab, 0, "a")
	_, g := addNode(ab, 0, 0, 0)
	b := addBareShape(ab, g, "b")
	c := addBareShape(ab, 0, "c")
	mustInit(t, ab)
	ab.UpdateComponents()

	checkDrawList(t, ab, []uint32{a, c, b})
}

func TestDrawListEmpty(t *testing.T) {
	ab := NewArtboard()
	addNode(ab, 0, 0, 0)
	mustInit(t, ab)
	ab.UpdateComponents()

	if ab.FirstDrawable() != NoID || ab.LastDrawable() != NoID {
		t.Errorf("ends = %d, %d, want NoID", ab.FirstDrawable(), ab.LastDrawable())
	}
	if err := ab.ValidateDrawList(); err != nil {
		t.Errorf("ValidateDrawList: %v", err)
	}
	if n := len(ab.DrawOrder()); n != 0 {
		t.Errorf("len(DrawOrder) = %d, want 0", n)
	}
}

// --- Splicing ---

func TestDrawTargetBeforeHead(t *testing.T) {
	ab, a, b, c, _ := threeShapes(t, PlacementBefore, func(a, _, _ uint32) uint32 { return a })
	checkDrawList(t, ab, []uint32{c, a, b})
}

func TestDrawTargetBeforeMiddle(t *testing.T) {
	ab, a, b, c, _ := threeShapes(t, PlacementBefore, func(_, b, _ uint32) uint32 { return b })
	checkDrawList(t, ab, []uint32{a, c, b})
}

func TestDrawTargetAfterTail(t *testing.T) {
	ab, a, b, c, _ := threeShapes(t, PlacementAfter, func(_, b, _ uint32) uint32 { return b })
	checkDrawList(t, ab, []uint32{a, b, c})
}

func TestDrawTargetAfterHead(t *testing.T) {
	ab, a, b, c, _ := threeShapes(t, PlacementAfter, func(a, _, _ uint32) uint32 { return a })
	checkDrawList(t, ab, []uint32{a, c, b})
}

func TestDrawTargetOnOwnDrawableIsIgnored(t *testing.T) {
	ab, a, b, _, _ := threeShapes(t, PlacementBefore, func(_, _, c uint32) uint32 { return c })
	// c sits in its own sub-list and is never spliced back in.
	checkDrawList(t, ab, []uint32{a, b})
}

func TestDrawRulesCaptureDescendants(t *testing.T) {
	ab := NewArtboard()
	a := addBareShape(ab, 0, "a")
	b := addBareShape(ab, 0, "b")
	_, g := addNode(ab, 0, 0, 0)
	c := addBareShape(ab, g, "c")
	d := addBareShape(ab, g, "d")

	rules := NewDrawRules(NoID)
	rules.SetParentID(g)
	rulesID := ab.AddObject(rules)
	target := NewDrawTarget(a, PlacementBefore)
	target.SetParentID(rulesID)
	rules.SetDrawTargetID(ab.AddObject(target))
	mustInit(t, ab)
	ab.UpdateComponents()

	if got := AsDrawable(ab.Resolve(d)).FlattenedDrawRules(); got != rulesID {
		t.Errorf("FlattenedDrawRules = %d, want %d", got, rulesID)
	}
	checkDrawList(t, ab, []uint32{c, d, a, b})
}

func TestSwitchingDrawTargetRebuilds(t *testing.T) {
	ab, a, b, c, rules := threeShapes(t, PlacementBefore, func(a, _, _ uint32) uint32 { return a })
	targetID := rules.DrawTargetID()

	rules.SetDrawTargetID(NoID)
	if !ab.HasDirt(DirtDrawOrder) {
		t.Fatal("artboard not dirtied by SetDrawTargetID")
	}
	ab.UpdateComponents()
	checkDrawList(t, ab, []uint32{a, b, c})

	rules.SetDrawTargetID(targetID)
	ab.UpdateComponents()
	checkDrawList(t, ab, []uint32{c, a, b})

	AsDrawTarget(ab.Resolve(targetID)).SetPlacement(PlacementAfter)
	ab.UpdateComponents()
	checkDrawList(t, ab, []uint32{a, c, b})
}

func TestDrawTargetsSortedByCapture(t *testing.T) {
	// b is captured by rules r1 (target t1 before a). The second target t2
	// places c relative to b, so t2 must splice after t1 has moved b.
	ab := NewArtboard()
	a := addBareShape(ab, 0, "a")
	b := addBareShape(ab, 0, "b")
	c := addBareShape(ab, 0, "c")

	r2 := NewDrawRules(NoID)
	r2.SetParentID(c)
	r2ID := ab.AddObject(r2)
	t2 := NewDrawTarget(b, PlacementAfter)
	t2.SetParentID(r2ID)
	t2ID := ab.AddObject(t2)
	r2.SetDrawTargetID(t2ID)

	r1 := NewDrawRules(NoID)
	r1.SetParentID(b)
	r1ID := ab.AddObject(r1)
	t1 := NewDrawTarget(a, PlacementBefore)
	t1.SetParentID(r1ID)
	t1ID := ab.AddObject(t1)
	r1.SetDrawTargetID(t1ID)

	mustInit(t, ab)
	ab.UpdateComponents()

	if got := ab.DrawTargets(); !equalIDs(got, []uint32{t1ID, t2ID}) {
		t.Errorf("DrawTargets = %v, want %v", got, []uint32{t1ID, t2ID})
	}
	checkDrawList(t, ab, []uint32{b, c, a})
}

// addRules attaches draw rules to owner with one target per entry of
// drawables, all using placement. The rules activate the first target.
func addRules(ab *Artboard, owner uint32, placement DrawTargetPlacement, drawables ...uint32) (*DrawRules, []*DrawTarget) {
	rules := NewDrawRules(NoID)
	rules.SetParentID(owner)
	rulesID := ab.AddObject(rules)
	var targets []*DrawTarget
	for _, d := range drawables {
		tg := NewDrawTarget(d, placement)
		tg.SetParentID(rulesID)
		ab.AddObject(tg)
		targets = append(targets, tg)
	}
	if len(targets) > 0 {
		rules.SetDrawTargetID(targets[0].ID())
	}
	return rules, targets
}

func TestDrawTargetIntoUnsplicedSubList(t *testing.T) {
	// c's rules target c itself, so c's sub-list never joins the chain.
	// d is placed before c and has nowhere to go.
	ab := NewArtboard()
	a := addBareShape(ab, 0, "a")
	b := addBareShape(ab, 0, "b")
	c := addBareShape(ab, 0, "c")
	d := addBareShape(ab, 0, "d")
	addRules(ab, c, PlacementBefore, c)
	addRules(ab, d, PlacementBefore, c)
	mustInit(t, ab)
	ab.UpdateComponents()

	checkDrawList(t, ab, []uint32{a, b})
}

func TestRetargetReordersSplices(t *testing.T) {
	ab := NewArtboard()
	a := addBareShape(ab, 0, "a")
	b := addBareShape(ab, 0, "b")
	c := addBareShape(ab, 0, "c")
	d := addBareShape(ab, 0, "d")
	_, t2 := addRules(ab, d, PlacementBefore, a)
	_, t1 := addRules(ab, c, PlacementBefore, b)
	mustInit(t, ab)
	ab.UpdateComponents()
	checkDrawList(t, ab, []uint32{d, a, c, b})

	// d now follows c into c's spliced sub-list.
	t2[0].SetDrawableID(c)
	ab.UpdateComponents()
	checkDrawList(t, ab, []uint32{a, d, c, b})
	if got := ab.DrawTargets(); !equalIDs(got, []uint32{t1[0].ID(), t2[0].ID()}) {
		t.Errorf("DrawTargets = %v, want %v", got, []uint32{t1[0].ID(), t2[0].ID()})
	}

	t2[0].SetDrawableID(a)
	ab.UpdateComponents()
	checkDrawList(t, ab, []uint32{d, a, c, b})
}

func TestDrawTargetCycleLeavesChain(t *testing.T) {
	// a is placed against b and b against a: neither sub-list can splice.
	ab := NewArtboard()
	a := addBareShape(ab, 0, "a")
	b := addBareShape(ab, 0, "b")
	c := addBareShape(ab, 0, "c")
	addRules(ab, a, PlacementAfter, b)
	addRules(ab, b, PlacementAfter, a)
	mustInit(t, ab)
	ab.UpdateComponents()

	checkDrawList(t, ab, []uint32{c})
}

// checkReachable asserts that the list is valid and holds every drawable
// no active target captures.
func checkReachable(t *testing.T, ab *Artboard, step int) {
	t.Helper()
	if err := ab.ValidateDrawList(); err != nil {
		t.Fatalf("step %d: ValidateDrawList: %v", step, err)
	}
	in := map[uint32]bool{}
	for _, id := range drawListIDs(ab) {
		in[id] = true
	}
	for _, id := range ab.drawables {
		if ab.capturedBy(ab.drawable(id)) == nil && !in[id] {
			t.Fatalf("step %d: uncaptured drawable %d missing from %v", step, id, drawListIDs(ab))
		}
	}
}

func TestDrawListSurvivesRandomRetargets(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	placements := []DrawTargetPlacement{PlacementBefore, PlacementAfter}

	for round := range 20 {
		ab := NewArtboard()
		var shapes []uint32
		for range 6 {
			shapes = append(shapes, addBareShape(ab, 0, "s"))
		}
		pick := func() uint32 { return shapes[rng.IntN(len(shapes))] }

		var rules []*DrawRules
		var targets []*DrawTarget
		for i := range 3 {
			r, ts := addRules(ab, shapes[i], placements[rng.IntN(2)], pick(), pick())
			rules = append(rules, r)
			targets = append(targets, ts...)
		}
		mustInit(t, ab)
		ab.UpdateComponents()
		checkReachable(t, ab, round*1000)

		for step := range 50 {
			switch rng.IntN(3) {
			case 0:
				targets[rng.IntN(len(targets))].SetDrawableID(pick())
			case 1:
				targets[rng.IntN(len(targets))].SetPlacement(placements[rng.IntN(2)])
			case 2:
				r := rules[rng.IntN(len(rules))]
				if n := rng.IntN(len(targets) + 1); n == len(targets) {
					r.SetDrawTargetID(NoID)
				} else {
					r.SetDrawTargetID(targets[n].ID())
				}
			}
			ab.UpdateComponents()
			checkReachable(t, ab, round*1000+step+1)
		}
	}
}

// --- Drawing ---

func TestDrawPaintsTailFirstAndSkipsHidden(t *testing.T) {
	ab := NewArtboard()
	ab.SetWidth(100)
	ab.SetHeight(100)
	s1, _ := addRectShape(ab, 0, 10, 10, 4, 4, 0xff110000)
	s2, _ := addRectShape(ab, 0, 20, 20, 4, 4, 0xff002200)
	s3, _ := addRectShape(ab, 0, 30, 30, 4, 4, 0xff000033)
	mustInit(t, ab)
	ab.UpdateComponents()
	checkDrawList(t, ab, []uint32{s1, s2, s3})

	var rec Recorder
	ab.Draw(&rec, IdentityMat)
	want := []uint32{0xff000033, 0xff002200, 0xff110000}
	if len(rec.Calls) != len(want) {
		t.Fatalf("len(Calls) = %d, want %d", len(rec.Calls), len(want))
	}
	for i, c := range rec.Calls {
		if got := c.Paint.Color.ARGB(); got != want[i] {
			t.Errorf("call %d color = %#08x, want %#08x", i, got, want[i])
		}
	}

	AsDrawable(ab.Resolve(s2)).SetHidden(true)
	rec.Reset()
	ab.Draw(&rec, IdentityMat)
	if len(rec.Calls) != 2 {
		t.Fatalf("len(Calls) with hidden = %d, want 2", len(rec.Calls))
	}
	if err := ab.ValidateDrawList(); err != nil {
		t.Errorf("hidden drawable broke the list: %v", err)
	}

	order := ab.DrawOrder()
	if len(order) != 3 || order[0].ID() != s3 || order[2].ID() != s1 {
		t.Errorf("DrawOrder ids wrong: %v", order)
	}
}

func TestValidateDrawListDetectsBrokenLinks(t *testing.T) {
	ab := NewArtboard()
	a := addBareShape(ab, 0, "a")
	b := addBareShape(ab, 0, "b")
	mustInit(t, ab)
	ab.UpdateComponents()

	AsDrawable(ab.Resolve(b)).prev = NoID
	if err := ab.ValidateDrawList(); err == nil {
		t.Error("ValidateDrawList accepted a broken prev link")
	}
	AsDrawable(ab.Resolve(b)).prev = a
	AsDrawable(ab.Resolve(b)).next = a
	if err := ab.ValidateDrawList(); err == nil {
		t.Error("ValidateDrawList accepted a cycle")
	}
}
