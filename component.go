package arbor

// Component is the base facet of every object living in an artboard's
// object table. It carries the dirt bitset, the dependency-order position
// assigned by the sorter, and the IDs of its dependents.
type Component struct {
	id         uint32
	artboard   *Artboard
	name       string
	parentID   uint32
	dirt       ComponentDirt
	graphOrder int
	dependents []uint32
}

// componentFacet is implemented by every type embedding Component.
type componentFacet interface {
	Object
	componentFacet() *Component
	Update(dirt ComponentDirt)
	BuildDependencies()
}

// dirtyHook is implemented by components that react to their own dirt.
type dirtyHook interface {
	onDirty(dirt ComponentDirt)
}

func (c *Component) componentFacet() *Component { return c }

// AsComponent returns o's Component facet, or nil.
func AsComponent(o Object) *Component {
	if f, ok := o.(componentFacet); ok {
		return f.componentFacet()
	}
	return nil
}

func (c *Component) CoreType() TypeKey { return TypeComponent }

// ID returns the object's index in its artboard's object table.
func (c *Component) ID() uint32 { return c.id }

// Name returns the component name.
func (c *Component) Name() string { return c.name }

// SetName sets the component name.
func (c *Component) SetName(name string) { c.name = name }

// ParentID returns the ID of the parent container.
func (c *Component) ParentID() uint32 { return c.parentID }

// SetParentID sets the parent reference. Only meaningful before Initialize.
func (c *Component) SetParentID(id uint32) { c.parentID = id }

// Artboard returns the owning artboard, or nil before AddObject.
func (c *Component) Artboard() *Artboard { return c.artboard }

// Dirt returns the pending update reasons.
func (c *Component) Dirt() ComponentDirt { return c.dirt }

// HasDirt reports whether every bit of flag is pending.
func (c *Component) HasDirt(flag ComponentDirt) bool { return c.dirt.Has(flag) }

// GraphOrder returns the position in the dependency order.
func (c *Component) GraphOrder() int { return c.graphOrder }

// Dependents returns the IDs of components updated after this one.
func (c *Component) Dependents() []uint32 { return c.dependents }

// AddDependent registers id to be updated after c and to receive recursive
// dirt from c.
func (c *Component) AddDependent(id uint32) {
	c.dependents = append(c.dependents, id)
}

// self returns the outermost object embedding c.
func (c *Component) self() Object {
	if c.artboard == nil {
		return nil
	}
	return c.artboard.Resolve(c.id)
}

// Parent returns the parent container, or nil.
func (c *Component) Parent() *ContainerComponent {
	if c.artboard == nil || c.isArtboard() {
		return nil
	}
	return AsContainer(c.artboard.Resolve(c.parentID))
}

// ParentObject returns the parent as an Object, or nil.
func (c *Component) ParentObject() Object {
	if c.artboard == nil || c.isArtboard() {
		return nil
	}
	return c.artboard.Resolve(c.parentID)
}

// Parents returns the ancestor objects from the parent up to the artboard.
func (c *Component) Parents() []Object {
	var out []Object
	seen := 0
	for p := c.ParentObject(); p != nil; {
		out = append(out, p)
		pc := AsComponent(p)
		if pc == nil || pc.isArtboard() {
			break
		}
		// A malformed file can loop parent links; the table size bounds the walk.
		if seen++; seen > len(c.artboard.objects) {
			break
		}
		p = pc.ParentObject()
	}
	return out
}

func (c *Component) isArtboard() bool {
	return c.artboard != nil && &c.artboard.Component == c
}

// AddDirt ORs value into the pending dirt. It returns false and does nothing
// when every bit was already set. Otherwise it calls the owner's dirty hook,
// notifies the artboard, and with recurse set, marks every dependent too.
func (c *Component) AddDirt(value ComponentDirt, recurse bool) bool {
	if c.dirt&value == value {
		return false
	}
	c.dirt |= value
	if h, ok := c.self().(dirtyHook); ok {
		h.onDirty(c.dirt)
	}
	if c.artboard != nil {
		c.artboard.OnComponentDirty(c)
	}
	if !recurse || c.artboard == nil {
		return true
	}
	for _, id := range c.dependents {
		if d := AsComponent(c.artboard.Resolve(id)); d != nil {
			d.AddDirt(value, true)
		}
	}
	return true
}

// OnAddedDirty resolves the parent. It must be a container.
func (c *Component) OnAddedDirty(ctx Context) StatusCode {
	if c.isArtboard() {
		return StatusOk
	}
	parent := ctx.Resolve(c.parentID)
	if parent == nil {
		return StatusMissingObject
	}
	if AsContainer(parent) == nil {
		return StatusInvalidObject
	}
	return StatusOk
}

// OnAddedClean registers c with its parent container.
func (c *Component) OnAddedClean(ctx Context) StatusCode {
	if c.isArtboard() {
		return StatusOk
	}
	if parent := AsContainer(ctx.Resolve(c.parentID)); parent != nil {
		parent.addChild(c.id)
	}
	return StatusOk
}

// Update recomputes whatever dirt demands. The base component has nothing
// to compute.
func (c *Component) Update(ComponentDirt) {}

// BuildDependencies registers edges for the dependency sort. The base
// component has none.
func (c *Component) BuildDependencies() {}

// ContainerComponent is a component that may parent other components.
type ContainerComponent struct {
	Component
	children []uint32
}

type containerFacet interface {
	containerFacet() *ContainerComponent
}

func (c *ContainerComponent) containerFacet() *ContainerComponent { return c }

// AsContainer returns o's ContainerComponent facet, or nil.
func AsContainer(o Object) *ContainerComponent {
	if f, ok := o.(containerFacet); ok {
		return f.containerFacet()
	}
	return nil
}

func (c *ContainerComponent) CoreType() TypeKey { return TypeContainerComponent }

// Children returns the IDs of direct children in file order.
func (c *ContainerComponent) Children() []uint32 { return c.children }

func (c *ContainerComponent) addChild(id uint32) {
	c.children = append(c.children, id)
}
