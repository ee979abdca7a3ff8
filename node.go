package arbor

// TransformComponent is a container with a local affine transform, a world
// transform composed with its parent's, and an inherited render opacity.
type TransformComponent struct {
	ContainerComponent

	x, y           float32
	rotation       float32
	scaleX, scaleY float32
	opacity        float32

	transform      Mat2D
	worldTransform Mat2D
	renderOpacity  float32
}

func newTransformComponent() TransformComponent {
	return TransformComponent{
		scaleX: 1, scaleY: 1, opacity: 1,
		transform: IdentityMat, worldTransform: IdentityMat, renderOpacity: 1,
	}
}

type transformFacet interface {
	transformFacet() *TransformComponent
}

func (t *TransformComponent) transformFacet() *TransformComponent { return t }

// AsTransform returns o's TransformComponent facet, or nil.
func AsTransform(o Object) *TransformComponent {
	if f, ok := o.(transformFacet); ok {
		return f.transformFacet()
	}
	return nil
}

func (t *TransformComponent) CoreType() TypeKey { return TypeTransformComponent }

// X returns the local x translation.
func (t *TransformComponent) X() float32 { return t.x }

// Y returns the local y translation.
func (t *TransformComponent) Y() float32 { return t.y }

// SetX sets the local x translation.
func (t *TransformComponent) SetX(v float32) {
	if t.x == v {
		return
	}
	t.x = v
	t.MarkTransformDirty()
}

// SetY sets the local y translation.
func (t *TransformComponent) SetY(v float32) {
	if t.y == v {
		return
	}
	t.y = v
	t.MarkTransformDirty()
}

// Rotation returns the local rotation in radians.
func (t *TransformComponent) Rotation() float32 { return t.rotation }

// SetRotation sets the local rotation in radians.
func (t *TransformComponent) SetRotation(v float32) {
	if t.rotation == v {
		return
	}
	t.rotation = v
	t.MarkTransformDirty()
}

// ScaleX returns the local horizontal scale.
func (t *TransformComponent) ScaleX() float32 { return t.scaleX }

// SetScaleX sets the local horizontal scale.
func (t *TransformComponent) SetScaleX(v float32) {
	if t.scaleX == v {
		return
	}
	t.scaleX = v
	t.MarkTransformDirty()
}

// ScaleY returns the local vertical scale.
func (t *TransformComponent) ScaleY() float32 { return t.scaleY }

// SetScaleY sets the local vertical scale.
func (t *TransformComponent) SetScaleY(v float32) {
	if t.scaleY == v {
		return
	}
	t.scaleY = v
	t.MarkTransformDirty()
}

// Opacity returns the local opacity.
func (t *TransformComponent) Opacity() float32 { return t.opacity }

// SetOpacity sets the local opacity; descendants inherit it multiplicatively.
func (t *TransformComponent) SetOpacity(v float32) {
	if t.opacity == v {
		return
	}
	t.opacity = v
	t.AddDirt(DirtRenderOpacity, true)
}

// Transform returns the local transform as of the last update.
func (t *TransformComponent) Transform() Mat2D { return t.transform }

// WorldTransform returns the artboard-space transform as of the last update.
func (t *TransformComponent) WorldTransform() Mat2D { return t.worldTransform }

// RenderOpacity returns the inherited opacity as of the last update.
func (t *TransformComponent) RenderOpacity() float32 { return t.renderOpacity }

// MarkTransformDirty schedules a local transform rebuild and a world
// transform rebuild for this component and every dependent.
func (t *TransformComponent) MarkTransformDirty() {
	if !t.AddDirt(DirtTransform, false) {
		return
	}
	t.markWorldTransformDirty()
}

func (t *TransformComponent) markWorldTransformDirty() {
	t.AddDirt(DirtWorldTransform, true)
}

func (t *TransformComponent) parentTransform() *TransformComponent {
	return AsTransform(t.ParentObject())
}

// UpdateTransform rebuilds the local transform from x, y, rotation and scale.
func (t *TransformComponent) UpdateTransform() {
	t.transform = computeLocalTransform(t.x, t.y, t.rotation, t.scaleX, t.scaleY)
}

// UpdateWorldTransform composes the parent's world transform with the local one.
func (t *TransformComponent) UpdateWorldTransform() {
	if p := t.parentTransform(); p != nil {
		t.worldTransform = p.worldTransform.Multiply(t.transform)
	} else {
		t.worldTransform = t.transform
	}
}

func (t *TransformComponent) updateRenderOpacity() {
	t.renderOpacity = t.opacity
	if p := t.parentTransform(); p != nil {
		t.renderOpacity *= p.renderOpacity
	}
}

// Update recomputes the transform chain for the given dirt.
func (t *TransformComponent) Update(dirt ComponentDirt) {
	if dirt.Has(DirtTransform) {
		t.UpdateTransform()
	}
	if dirt.Has(DirtWorldTransform) {
		t.UpdateWorldTransform()
	}
	if dirt.Has(DirtRenderOpacity) {
		t.updateRenderOpacity()
	}
}

// BuildDependencies makes the component depend on its parent.
func (t *TransformComponent) BuildDependencies() {
	if p := AsComponent(t.ParentObject()); p != nil {
		p.AddDependent(t.id)
	}
}

// Node is a plain transform group.
type Node struct {
	TransformComponent
}

// NewNode returns a node with identity transform and full opacity.
func NewNode() *Node {
	return &Node{TransformComponent: newTransformComponent()}
}

type nodeFacet interface {
	nodeFacet() *Node
}

func (n *Node) nodeFacet() *Node { return n }

// AsNode returns o's Node facet, or nil.
func AsNode(o Object) *Node {
	if f, ok := o.(nodeFacet); ok {
		return f.nodeFacet()
	}
	return nil
}

func (n *Node) CoreType() TypeKey { return TypeNode }
