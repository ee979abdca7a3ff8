package arbor

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"
)

// DefaultMaxUpdatePasses bounds UpdateComponents when components keep
// re-dirtying each other.
const DefaultMaxUpdatePasses = 100

// dirtFilthy marks every update reason; fresh components start with it.
const dirtFilthy ComponentDirt = 0xffff

// Artboard owns an object table, the dependency order over its components,
// the draw list and its animations. Object IDs are indices into the table
// and index 0 is the artboard itself.
//
// An Artboard is not safe for concurrent use; one frame driver owns it.
type Artboard struct {
	ContainerComponent
	ShapePaintContainer

	width, height    float32
	x, y             float32
	originX, originY float32

	objects    []Object
	animations []*LinearAnimation

	sorter          DependencySorter
	dependencyOrder []uint32
	drawables       []uint32
	drawTargets     []uint32
	firstDrawable   uint32
	lastDrawable    uint32

	dirtDepth int
	updating  bool
	maxPasses int
	stats     UpdateStats

	clipPath       *CommandPath
	backgroundPath *CommandPath

	initialized bool
	debug       bool
	frame       debugStats
}

// NewArtboard returns an empty artboard holding only itself at ID 0.
func NewArtboard() *Artboard {
	ab := &Artboard{
		firstDrawable: NoID,
		lastDrawable:  NoID,
		maxPasses:     DefaultMaxUpdatePasses,
	}
	ab.Component.artboard = ab
	ab.objects = []Object{ab}
	return ab
}

type artboardFacet interface {
	artboardFacet() *Artboard
}

func (ab *Artboard) artboardFacet() *Artboard { return ab }

// AsArtboard returns o as an artboard, or nil.
func AsArtboard(o Object) *Artboard {
	if f, ok := o.(artboardFacet); ok {
		return f.artboardFacet()
	}
	return nil
}

func (ab *Artboard) CoreType() TypeKey { return TypeArtboard }

// Artboard returns ab. It lets the artboard serve as a lifecycle Context.
func (ab *Artboard) Artboard() *Artboard { return ab }

func (ab *Artboard) Width() float32   { return ab.width }
func (ab *Artboard) Height() float32  { return ab.height }
func (ab *Artboard) X() float32       { return ab.x }
func (ab *Artboard) Y() float32       { return ab.y }
func (ab *Artboard) OriginX() float32 { return ab.originX }
func (ab *Artboard) OriginY() float32 { return ab.originY }

func (ab *Artboard) SetWidth(v float32)   { ab.setDim(&ab.width, v) }
func (ab *Artboard) SetHeight(v float32)  { ab.setDim(&ab.height, v) }
func (ab *Artboard) SetOriginX(v float32) { ab.setDim(&ab.originX, v) }
func (ab *Artboard) SetOriginY(v float32) { ab.setDim(&ab.originY, v) }
func (ab *Artboard) SetX(v float32)       { ab.x = v }
func (ab *Artboard) SetY(v float32)       { ab.y = v }

func (ab *Artboard) setDim(field *float32, v float32) {
	if *field == v {
		return
	}
	*field = v
	ab.AddDirt(DirtPath, false)
}

func (ab *Artboard) onDirty(ComponentDirt) {
	ab.dirt |= DirtComponents
}

// AddObject appends o to the object table and returns its ID. Objects must
// be added in reference order: a file's IDs are its insertion indices.
func (ab *Artboard) AddObject(o Object) uint32 {
	if o == nil {
		panic("arbor: AddObject called with nil object")
	}
	if ab.initialized {
		panic("arbor: AddObject after Initialize")
	}
	id := uint32(len(ab.objects))
	ab.objects = append(ab.objects, o)
	if c := AsComponent(o); c != nil {
		c.id = id
		c.artboard = ab
	}
	return id
}

// addPlaceholder reserves an ID for an object whose type is unknown so later
// references keep their meaning. The slot resolves to nil.
func (ab *Artboard) addPlaceholder() uint32 {
	ab.objects = append(ab.objects, nil)
	return uint32(len(ab.objects) - 1)
}

// AddAnimation registers a linear animation.
func (ab *Artboard) AddAnimation(a *LinearAnimation) {
	if a == nil {
		panic("arbor: AddAnimation called with nil animation")
	}
	ab.animations = append(ab.animations, a)
}

// Resolve returns the object with the given ID, or nil when out of range or
// when the slot holds an unknown object.
func (ab *Artboard) Resolve(id uint32) Object {
	if int64(id) >= int64(len(ab.objects)) {
		return nil
	}
	return ab.objects[id]
}

// Objects returns the object table. Slots may be nil.
func (ab *Artboard) Objects() []Object { return ab.objects }

// Animations returns the linear animations in file order.
func (ab *Artboard) Animations() []*LinearAnimation { return ab.animations }

// Animation returns the first animation named name, or nil.
func (ab *Artboard) Animation(name string) *LinearAnimation {
	for _, a := range ab.animations {
		if a.name == name {
			return a
		}
	}
	return nil
}

// FirstAnimation returns the first animation, or nil.
func (ab *Artboard) FirstAnimation() *LinearAnimation {
	if len(ab.animations) == 0 {
		return nil
	}
	return ab.animations[0]
}

// IsInitialized reports whether Initialize completed.
func (ab *Artboard) IsInitialized() bool { return ab.initialized }

// Initialize runs both lifecycle phases over every object and animation,
// builds the dependency graph, sorts it, prepares draw rules and marks every
// component dirty. The first non-OK status aborts with an *InitError.
func (ab *Artboard) Initialize() error {
	if ab.initialized {
		return ErrAlreadyInitialized
	}

	for id, o := range ab.objects {
		if o == nil {
			continue
		}
		if code := o.OnAddedDirty(ab); code != StatusOk {
			return &InitError{Status: code, Phase: "dirty", ObjectID: uint32(id), Type: TypeName(o)}
		}
	}
	for _, a := range ab.animations {
		if code := a.OnAddedDirty(ab); code != StatusOk {
			return &InitError{Status: code, Phase: "dirty", ObjectID: NoID, Type: "LinearAnimation " + a.name}
		}
	}

	componentDrawRules := map[uint32]uint32{}
	for id, o := range ab.objects {
		if o == nil {
			continue
		}
		if code := o.OnAddedClean(ab); code != StatusOk {
			return &InitError{Status: code, Phase: "clean", ObjectID: uint32(id), Type: TypeName(o)}
		}
		if rules := AsDrawRules(o); rules != nil {
			owner := AsComponent(rules.ParentObject())
			if owner == nil {
				return &InitError{Status: StatusMissingObject, Phase: "clean", ObjectID: uint32(id), Type: TypeName(o)}
			}
			componentDrawRules[owner.id] = rules.id
		}
	}
	for _, a := range ab.animations {
		if code := a.OnAddedClean(ab); code != StatusOk {
			return &InitError{Status: code, Phase: "clean", ObjectID: NoID, Type: "LinearAnimation " + a.name}
		}
	}

	for _, o := range ab.objects {
		if c, ok := o.(componentFacet); ok {
			c.BuildDependencies()
		}
	}

	ab.drawables = ab.drawables[:0]
	for id, o := range ab.objects {
		d := AsDrawable(o)
		if d == nil {
			continue
		}
		ab.drawables = append(ab.drawables, uint32(id))
		d.flattenedDrawRules = NoID
		if r, ok := componentDrawRules[d.id]; ok {
			d.flattenedDrawRules = r
			continue
		}
		for _, p := range d.Parents() {
			if pc := AsComponent(p); pc != nil {
				if r, ok := componentDrawRules[pc.id]; ok {
					d.flattenedDrawRules = r
					break
				}
			}
		}
	}

	ab.sortDependencies()
	slices.SortStableFunc(ab.drawables, func(a, b uint32) int {
		return cmp.Compare(AsComponent(ab.Resolve(a)).graphOrder, AsComponent(ab.Resolve(b)).graphOrder)
	})
	ab.sortDrawTargets()

	for _, o := range ab.objects {
		if c := AsComponent(o); c != nil {
			c.dirt = dirtFilthy
		}
	}
	ab.dirtDepth = 0
	ab.initialized = true
	ab.debugCheckHierarchy()

	Logger().Info("arbor: artboard initialized",
		"name", ab.name, "objects", len(ab.objects), "animations", len(ab.animations),
		"drawables", len(ab.drawables), "drawTargets", len(ab.drawTargets))
	return nil
}

// sortDependencies orders every component reachable from the artboard and
// assigns graph orders. Unreachable components sort after everything.
func (ab *Artboard) sortDependencies() {
	order := ab.sorter.Sort(0, func(id uint32) []uint32 {
		if c := AsComponent(ab.Resolve(id)); c != nil {
			return c.dependents
		}
		return nil
	})
	ab.dependencyOrder = append(ab.dependencyOrder[:0], order...)

	for _, o := range ab.objects {
		if c := AsComponent(o); c != nil {
			c.graphOrder = len(ab.dependencyOrder)
		}
	}
	for i, id := range ab.dependencyOrder {
		AsComponent(ab.Resolve(id)).graphOrder = i
	}
	if u := ab.sorter.Unsorted(); len(u) > 0 {
		Logger().Warn("arbor: dependency cycle left components unsorted", "count", len(u), "ids", u)
	}
	Logger().Debug("arbor: dependencies sorted", "order", len(ab.dependencyOrder))
}

// DependencyOrder returns component IDs in update order.
func (ab *Artboard) DependencyOrder() []uint32 { return ab.dependencyOrder }

// Update handles the artboard's own dirt: draw order and background paths.
func (ab *Artboard) Update(dirt ComponentDirt) {
	if dirt.Has(DirtDrawOrder) {
		ab.sortDrawOrder()
	}
	if dirt.Has(DirtPath) {
		var b CommandPathBuilder
		b.Rect(0, 0, ab.width, ab.height)
		ab.clipPath = b.Build()
		b.Rect(-ab.width*ab.originX, -ab.height*ab.originY, ab.width, ab.height)
		ab.backgroundPath = b.Build()
	}
}

// ClipPath returns the artboard rectangle in screen orientation.
func (ab *Artboard) ClipPath() *CommandPath { return ab.clipPath }

// BackgroundPath returns the artboard rectangle in artboard space.
func (ab *Artboard) BackgroundPath() *CommandPath { return ab.backgroundPath }

// Bounds returns the artboard rectangle in artboard space.
func (ab *Artboard) Bounds() AABB {
	minX, minY := -ab.width*ab.originX, -ab.height*ab.originY
	return AABB{MinX: minX, MinY: minY, MaxX: minX + ab.width, MaxY: minY + ab.height}
}

// PathSpace returns the union of the background paints' path spaces.
func (ab *Artboard) PathSpace() PathSpace { return ab.pathSpace(ab) }

// Draw paints the background and every visible drawable, back to front.
// transform maps the artboard's top-left corner to the target.
func (ab *Artboard) Draw(r Renderer, transform Mat2D) {
	var start time.Time
	if ab.debug {
		start = time.Now()
	}
	t := transform.Multiply(TranslateMat(ab.width*ab.originX, ab.height*ab.originY))

	for _, id := range ab.paints {
		paint := AsShapePaint(ab.Resolve(id))
		if paint == nil || !paint.isVisible || ab.backgroundPath.IsEmpty() {
			continue
		}
		rp := paint.renderPaint
		r.Draw(ab.backgroundPath, t, &rp)
	}

	drawn := 0
	for id := ab.lastDrawable; id != NoID; {
		obj := ab.Resolve(id)
		d := AsDrawable(obj)
		if d == nil {
			break
		}
		if !d.IsHidden() {
			if dr, ok := obj.(drawer); ok {
				dr.Draw(r, t)
				drawn++
			}
		}
		id = d.prev
	}
	if ab.debug {
		ab.frame.drawablesDrawn = drawn
		ab.frame.drawTime = time.Since(start)
		ab.debugLog()
	}
}

// DOT exports the dependency graph in Graphviz DOT format.
func (ab *Artboard) DOT() string {
	var b strings.Builder
	b.WriteString("digraph arbor {\n")
	b.WriteString("  rankdir=LR;\n")
	for id, o := range ab.objects {
		c := AsComponent(o)
		if c == nil {
			continue
		}
		label := TypeName(o)
		if c.name != "" {
			label += "\\n" + escapeDOT(c.name)
		}
		b.WriteString(fmt.Sprintf("  n%d [label=\"%s #%d\"];\n", id, label, id))
	}
	for id, o := range ab.objects {
		c := AsComponent(o)
		if c == nil {
			continue
		}
		for _, d := range c.dependents {
			b.WriteString(fmt.Sprintf("  n%d -> n%d;\n", id, d))
		}
	}
	b.WriteString("}\n")
	return b.String()
}

func escapeDOT(s string) string {
	return strings.ReplaceAll(s, "\"", "\\\"")
}
