package arbor

import (
	"errors"
	"fmt"
	"time"
)

// sortDrawTargets orders draw targets so that a target whose drawable is
// captured by another target splices after that target.
func (ab *Artboard) sortDrawTargets() {
	var targets []uint32
	for id, o := range ab.objects {
		if AsDrawTarget(o) != nil {
			targets = append(targets, uint32(id))
		}
	}

	// capturing target -> targets placed against one of its drawables
	edges := map[uint32][]uint32{}
	for _, id := range targets {
		d := AsDrawTarget(ab.Resolve(id)).Drawable()
		if d == nil {
			continue
		}
		if c := ab.capturedBy(d); c != nil && c.id != id {
			edges[c.id] = append(edges[c.id], id)
		}
	}

	var sorter DependencySorter
	order := sorter.Sort(NoID, func(id uint32) []uint32 {
		if id == NoID {
			return targets
		}
		return edges[id]
	})
	ab.drawTargets = ab.drawTargets[:0]
	for _, id := range order {
		if id != NoID {
			ab.drawTargets = append(ab.drawTargets, id)
		}
	}
	if u := sorter.Unsorted(); len(u) > 0 {
		Logger().Warn("arbor: draw targets form a cycle", "count", len(u), "ids", u)
	}
}

// DrawTargets returns draw target IDs in splice order.
func (ab *Artboard) DrawTargets() []uint32 { return ab.drawTargets }

// sortDrawOrder rebuilds the draw list. Drawables without active rules form
// the main chain in dependency order; drawables captured by rules form a
// sub-list per target which is then spliced in next to the target drawable.
// A target whose drawable sits in a sub-list that never reached the main
// chain is skipped, leaving its drawables out of the list.
func (ab *Artboard) sortDrawOrder() {
	var start time.Time
	if ab.debug {
		start = time.Now()
	}
	// Targets and rules may have been retargeted since the last rebuild.
	ab.sortDrawTargets()

	for _, o := range ab.objects {
		if t := AsDrawTarget(o); t != nil {
			t.first, t.last = NoID, NoID
		}
	}

	ab.firstDrawable, ab.lastDrawable = NoID, NoID
	for _, id := range ab.drawables {
		d := ab.drawable(id)
		if target := ab.capturedBy(d); target != nil {
			if target.first == NoID {
				target.first, target.last = id, id
				d.prev, d.next = NoID, NoID
			} else {
				ab.drawable(target.last).next = id
				d.prev, d.next = target.last, NoID
				target.last = id
			}
			continue
		}
		d.prev, d.next = ab.lastDrawable, NoID
		if ab.lastDrawable == NoID {
			ab.firstDrawable = id
		} else {
			ab.drawable(ab.lastDrawable).next = id
		}
		ab.lastDrawable = id
	}

	spliced := make(map[*DrawTarget]bool, len(ab.drawTargets))
	for _, id := range ab.drawTargets {
		t := AsDrawTarget(ab.Resolve(id))
		td := t.Drawable()
		if td == nil || t.first == NoID {
			continue
		}
		if c := ab.capturedBy(td); c != nil && !spliced[c] {
			continue
		}
		spliced[t] = true
		first, last := ab.drawable(t.first), ab.drawable(t.last)
		switch t.Placement() {
		case PlacementBefore:
			if td.prev != NoID {
				ab.drawable(td.prev).next = t.first
				first.prev = td.prev
			} else {
				ab.firstDrawable = t.first
			}
			td.prev = t.last
			last.next = td.id
		case PlacementAfter:
			if td.next != NoID {
				ab.drawable(td.next).prev = t.last
				last.next = td.next
			} else {
				ab.lastDrawable = t.last
			}
			td.next = t.first
			first.prev = td.id
		}
	}

	if ab.debug {
		ab.frame.sortTime = time.Since(start)
	}
}

// capturedBy returns the active target whose sub-list holds d, or nil.
func (ab *Artboard) capturedBy(d *Drawable) *DrawTarget {
	if d.flattenedDrawRules == NoID {
		return nil
	}
	if rules := AsDrawRules(ab.Resolve(d.flattenedDrawRules)); rules != nil {
		return rules.ActiveTarget()
	}
	return nil
}

func (ab *Artboard) drawable(id uint32) *Drawable {
	return AsDrawable(ab.Resolve(id))
}

// FirstDrawable returns the ID at the head of the draw list (front-most),
// or NoID when nothing is drawable.
func (ab *Artboard) FirstDrawable() uint32 { return ab.firstDrawable }

// LastDrawable returns the ID at the tail of the draw list (drawn first).
func (ab *Artboard) LastDrawable() uint32 { return ab.lastDrawable }

// DrawOrder returns the drawables in the order they are painted, starting
// at the tail of the list.
func (ab *Artboard) DrawOrder() []*Drawable {
	var out []*Drawable
	for id := ab.lastDrawable; id != NoID && len(out) <= len(ab.drawables); {
		d := ab.drawable(id)
		if d == nil {
			break
		}
		out = append(out, d)
		id = d.prev
	}
	return out
}

var errDrawList = errors.New("arbor: invalid draw list")

// ValidateDrawList checks that the draw list is a well formed doubly linked
// list: links agree in both directions, the ends have no outer links, and no
// drawable appears twice.
func (ab *Artboard) ValidateDrawList() error {
	if ab.firstDrawable == NoID || ab.lastDrawable == NoID {
		if ab.firstDrawable != ab.lastDrawable {
			return fmt.Errorf("%w: head %d and tail %d disagree on emptiness", errDrawList, ab.firstDrawable, ab.lastDrawable)
		}
		return nil
	}
	if d := ab.drawable(ab.firstDrawable); d == nil || d.prev != NoID {
		return fmt.Errorf("%w: head %d has a previous link", errDrawList, ab.firstDrawable)
	}
	seen := map[uint32]bool{}
	prev := NoID
	for id := ab.firstDrawable; id != NoID; {
		if seen[id] {
			return fmt.Errorf("%w: drawable %d appears twice", errDrawList, id)
		}
		seen[id] = true
		d := ab.drawable(id)
		if d == nil {
			return fmt.Errorf("%w: link to non-drawable %d", errDrawList, id)
		}
		if d.prev != prev {
			return fmt.Errorf("%w: drawable %d prev = %d, want %d", errDrawList, id, d.prev, prev)
		}
		prev = id
		id = d.next
	}
	if prev != ab.lastDrawable {
		return fmt.Errorf("%w: walk ended at %d, tail is %d", errDrawList, prev, ab.lastDrawable)
	}
	return nil
}
