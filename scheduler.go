package arbor

import "time"

// UpdateStats describes the most recent UpdateComponents call.
type UpdateStats struct {
	Passes   int  // outer passes over the dependency order
	Updated  int  // component Update calls
	Restarts int  // passes cut short by dirt behind the cursor
	Stalled  bool // the pass cap was hit with dirt remaining
}

// UpdateStats returns the statistics of the last UpdateComponents call.
func (ab *Artboard) UpdateStats() UpdateStats { return ab.stats }

// SetMaxUpdatePasses bounds how many passes UpdateComponents makes before
// giving up on a frame. Values below 1 restore the default.
func (ab *Artboard) SetMaxUpdatePasses(n int) {
	if n < 1 {
		n = DefaultMaxUpdatePasses
	}
	ab.maxPasses = n
}

// MaxUpdatePasses returns the pass cap.
func (ab *Artboard) MaxUpdatePasses() int { return ab.maxPasses }

// OnComponentDirty records that c has pending dirt. If c sits at or before
// the current update cursor the running pass restarts from c's position.
// Dirt ahead of the cursor is picked up by the running pass.
func (ab *Artboard) OnComponentDirty(c *Component) {
	if ab.updating && c.graphOrder > ab.dirtDepth {
		return
	}
	ab.dirt |= DirtComponents
	if c.graphOrder < ab.dirtDepth {
		ab.dirtDepth = c.graphOrder
	}
}

// UpdateComponents brings every dirty component up to date in dependency
// order. It reports whether any component was updated.
//
// Each pass walks the order from the front. An Update that dirties a
// component at or before the cursor ends the pass early; the next pass picks
// the dirt up. The loop gives up after MaxUpdatePasses passes, leaving the
// remaining dirt for the next frame.
func (ab *Artboard) UpdateComponents() bool {
	var start time.Time
	if ab.debug {
		start = time.Now()
	}
	ab.stats = UpdateStats{}
	ab.updating = true

	for ab.dirt.Has(DirtComponents) && ab.stats.Passes < ab.maxPasses {
		ab.stats.Passes++
		for i := 0; i < len(ab.dependencyOrder); i++ {
			ab.dirtDepth = i
			obj := ab.objects[ab.dependencyOrder[i]]
			c, ok := obj.(componentFacet)
			if !ok {
				continue
			}
			comp := c.componentFacet()
			d := comp.dirt
			if d == DirtNone {
				continue
			}
			comp.dirt = DirtNone
			if i == 0 {
				// The artboard leads the order; updating it consumes the
				// pass-level flag.
				d &^= DirtComponents
			}
			c.Update(d)
			ab.stats.Updated++
			if ab.dirtDepth < i {
				ab.stats.Restarts++
				break
			}
		}
	}

	ab.updating = false
	if ab.dirt.Has(DirtComponents) {
		ab.stats.Stalled = true
		Logger().Warn("arbor: update pass limit reached",
			"artboard", ab.name, "passes", ab.stats.Passes, "updated", ab.stats.Updated)
	}
	// Dirt made outside a pass must restart from the front.
	ab.dirtDepth = 0

	if ab.debug {
		ab.frame.updateTime = time.Since(start)
		ab.frame.passes = ab.stats.Passes
		ab.frame.updated = ab.stats.Updated
	}
	return ab.stats.Updated > 0
}

// Advance brings the artboard up to date after elapsed seconds of animation
// have been applied. It reports whether anything changed.
func (ab *Artboard) Advance(elapsed float32) bool {
	var start time.Time
	if ab.debug {
		start = time.Now()
	}
	changed := ab.UpdateComponents()
	if ab.debug {
		ab.frame.advanceTime = time.Since(start)
		ab.frame.elapsed = elapsed
	}
	return changed
}
