package arbor

// DrawTarget relocates the drawables captured by its rules to just before
// or after a target drawable. While the draw order is rebuilt it holds the
// first and last drawable of its captured sub-list.
type DrawTarget struct {
	Component

	drawableID     uint32
	placementValue uint64
	first, last    uint32
}

// NewDrawTarget returns a target placing its drawables relative to
// drawableID.
func NewDrawTarget(drawableID uint32, placement DrawTargetPlacement) *DrawTarget {
	return &DrawTarget{drawableID: drawableID, placementValue: uint64(placement), first: NoID, last: NoID}
}

type drawTargetFacet interface {
	drawTargetFacet() *DrawTarget
}

func (t *DrawTarget) drawTargetFacet() *DrawTarget { return t }

// AsDrawTarget returns o's DrawTarget facet, or nil.
func AsDrawTarget(o Object) *DrawTarget {
	if f, ok := o.(drawTargetFacet); ok {
		return f.drawTargetFacet()
	}
	return nil
}

func (t *DrawTarget) CoreType() TypeKey { return TypeDrawTarget }

// DrawableID returns the ID of the drawable the target is placed against.
func (t *DrawTarget) DrawableID() uint32 { return t.drawableID }

// SetDrawableID changes the target drawable and schedules a draw order
// rebuild.
func (t *DrawTarget) SetDrawableID(id uint32) {
	t.drawableID = id
	t.markDrawOrderDirty()
}

// Placement returns where captured drawables go.
func (t *DrawTarget) Placement() DrawTargetPlacement {
	return DrawTargetPlacement(t.placementValue)
}

// SetPlacement changes the placement and schedules a draw order rebuild.
func (t *DrawTarget) SetPlacement(p DrawTargetPlacement) {
	t.placementValue = uint64(p)
	t.markDrawOrderDirty()
}

// Drawable returns the target drawable, or nil.
func (t *DrawTarget) Drawable() *Drawable {
	if t.artboard == nil {
		return nil
	}
	return AsDrawable(t.artboard.Resolve(t.drawableID))
}

// First returns the first captured drawable from the last rebuild, or NoID.
func (t *DrawTarget) First() uint32 { return t.first }

// Last returns the last captured drawable from the last rebuild, or NoID.
func (t *DrawTarget) Last() uint32 { return t.last }

func (t *DrawTarget) markDrawOrderDirty() {
	if t.artboard != nil {
		t.artboard.AddDirt(DirtDrawOrder, false)
	}
}

// OnAddedDirty resolves the target drawable.
func (t *DrawTarget) OnAddedDirty(ctx Context) StatusCode {
	if code := t.Component.OnAddedDirty(ctx); code != StatusOk {
		return code
	}
	obj := ctx.Resolve(t.drawableID)
	if obj == nil {
		return StatusMissingObject
	}
	if AsDrawable(obj) == nil {
		return StatusInvalidObject
	}
	return StatusOk
}

// DrawRules captures its parent's drawables (and their descendants) into the
// active draw target.
type DrawRules struct {
	ContainerComponent

	drawTargetID uint32
	activeTarget uint32
}

// NewDrawRules returns rules pointing at drawTargetID (NoID for none).
func NewDrawRules(drawTargetID uint32) *DrawRules {
	return &DrawRules{drawTargetID: drawTargetID, activeTarget: NoID}
}

type drawRulesFacet interface {
	drawRulesFacet() *DrawRules
}

func (r *DrawRules) drawRulesFacet() *DrawRules { return r }

// AsDrawRules returns o's DrawRules facet, or nil.
func AsDrawRules(o Object) *DrawRules {
	if f, ok := o.(drawRulesFacet); ok {
		return f.drawRulesFacet()
	}
	return nil
}

func (r *DrawRules) CoreType() TypeKey { return TypeDrawRules }

// DrawTargetID returns the configured target reference.
func (r *DrawRules) DrawTargetID() uint32 { return r.drawTargetID }

// SetDrawTargetID switches the active target and schedules a draw order
// rebuild. IDs that do not name a draw target deactivate the rules.
func (r *DrawRules) SetDrawTargetID(id uint32) {
	r.drawTargetID = id
	if r.artboard == nil {
		return
	}
	r.resolveTarget(r.artboard)
	r.artboard.AddDirt(DirtDrawOrder, false)
}

// ActiveTarget returns the resolved target, or nil.
func (r *DrawRules) ActiveTarget() *DrawTarget {
	if r.artboard == nil || r.activeTarget == NoID {
		return nil
	}
	return AsDrawTarget(r.artboard.Resolve(r.activeTarget))
}

func (r *DrawRules) resolveTarget(ctx Context) {
	r.activeTarget = NoID
	if AsDrawTarget(ctx.Resolve(r.drawTargetID)) != nil {
		r.activeTarget = r.drawTargetID
	}
}

// OnAddedDirty resolves the active target. An unresolved target leaves the
// rules inactive.
func (r *DrawRules) OnAddedDirty(ctx Context) StatusCode {
	if code := r.Component.OnAddedDirty(ctx); code != StatusOk {
		return code
	}
	r.resolveTarget(ctx)
	return StatusOk
}
