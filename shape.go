package arbor

// ShapePaintContainer is the capability of owning fills and strokes. Shapes
// and artboards carry it.
type ShapePaintContainer struct {
	paints []uint32
}

type paintContainerFacet interface {
	paintContainerFacet() *ShapePaintContainer
}

func (s *ShapePaintContainer) paintContainerFacet() *ShapePaintContainer { return s }

// AsShapePaintContainer returns o's ShapePaintContainer facet, or nil.
func AsShapePaintContainer(o Object) *ShapePaintContainer {
	if f, ok := o.(paintContainerFacet); ok {
		return f.paintContainerFacet()
	}
	return nil
}

// Paints returns the IDs of the owned paints in file order.
func (s *ShapePaintContainer) Paints() []uint32 { return s.paints }

func (s *ShapePaintContainer) addPaint(id uint32) {
	s.paints = append(s.paints, id)
}

// pathSpace ORs the path spaces every visible paint wants.
func (s *ShapePaintContainer) pathSpace(ab *Artboard) PathSpace {
	var space PathSpace
	for _, id := range s.paints {
		if sp, ok := ab.Resolve(id).(interface{ PathSpace() PathSpace }); ok {
			space |= sp.PathSpace()
		}
	}
	return space
}

// Shape is a drawable made of paths painted by fills and strokes.
type Shape struct {
	Drawable
	ShapePaintContainer

	paths    []uint32
	composer uint32
}

// NewShape returns an empty shape.
func NewShape() *Shape {
	return &Shape{Drawable: newDrawable(), composer: NoID}
}

type shapeFacet interface {
	shapeFacet() *Shape
}

func (s *Shape) shapeFacet() *Shape { return s }

// AsShape returns o's Shape facet, or nil.
func AsShape(o Object) *Shape {
	if f, ok := o.(shapeFacet); ok {
		return f.shapeFacet()
	}
	return nil
}

func (s *Shape) CoreType() TypeKey { return TypeShape }

// Paths returns the IDs of the shape's paths.
func (s *Shape) Paths() []uint32 { return s.paths }

// Composer returns the shape's path composer, or nil before initialization.
func (s *Shape) Composer() *PathComposer {
	if s.artboard == nil || s.composer == NoID {
		return nil
	}
	return asPathComposer(s.artboard.Resolve(s.composer))
}

func (s *Shape) addPath(id uint32) {
	s.paths = append(s.paths, id)
}

// PathSpace returns the union of the paints' path spaces.
func (s *Shape) PathSpace() PathSpace {
	if s.artboard == nil {
		return 0
	}
	return s.pathSpace(s.artboard)
}

// pathChanged asks the composer to rebuild.
func (s *Shape) pathChanged() {
	if c := s.Composer(); c != nil {
		c.AddDirt(DirtPath, true)
	}
}

// Bounds returns the world-space bounds of the composed geometry.
func (s *Shape) Bounds() AABB {
	c := s.Composer()
	if c == nil {
		return emptyAABB
	}
	if c.worldPath != nil {
		return c.worldPath.Bounds()
	}
	return transformAABB(s.worldTransform, c.localPath.Bounds())
}

// Draw hands every visible paint the composed path in the space it asks for.
func (s *Shape) Draw(r Renderer, transform Mat2D) {
	c := s.Composer()
	if c == nil {
		return
	}
	for _, id := range s.paints {
		obj := s.artboard.Resolve(id)
		paint := AsShapePaint(obj)
		if paint == nil || !paint.isVisible {
			continue
		}
		space := PathSpaceLocal
		if sp, ok := obj.(interface{ PathSpace() PathSpace }); ok {
			space = sp.PathSpace()
		}
		rp := paint.renderPaint.withOpacity(s.renderOpacity)
		rp.BlendMode = s.blendMode
		if space.Has(PathSpaceLocal) {
			if c.localPath.IsEmpty() {
				continue
			}
			r.Draw(c.localPath, transform.Multiply(s.worldTransform), &rp)
		} else {
			if c.worldPath.IsEmpty() {
				continue
			}
			r.Draw(c.worldPath, transform, &rp)
		}
	}
}

// PathComposer merges a shape's paths into one local-space and/or one
// world-space command path.
type PathComposer struct {
	Component

	shape     uint32
	localPath *CommandPath
	worldPath *CommandPath
	status    StatusCode
}

// NewPathComposer returns a detached composer.
func NewPathComposer() *PathComposer {
	return &PathComposer{shape: NoID}
}

func asPathComposer(o Object) *PathComposer {
	c, _ := o.(*PathComposer)
	return c
}

func (c *PathComposer) CoreType() TypeKey { return TypePathComposer }

// Shape returns the owning shape.
func (c *PathComposer) Shape() *Shape {
	if c.artboard == nil || c.shape == NoID {
		return nil
	}
	return AsShape(c.artboard.Resolve(c.shape))
}

// LocalPath returns the composed path in shape-local space.
func (c *PathComposer) LocalPath() *CommandPath { return c.localPath }

// WorldPath returns the composed path in artboard space.
func (c *PathComposer) WorldPath() *CommandPath { return c.worldPath }

// Status reports the outcome of the last composition. FailedInversion means
// the shape's world transform was singular and the local path is empty.
func (c *PathComposer) Status() StatusCode { return c.status }

// OnAddedClean attaches the composer to the nearest ancestor shape.
func (c *PathComposer) OnAddedClean(ctx Context) StatusCode {
	if code := c.Component.OnAddedClean(ctx); code != StatusOk {
		return code
	}
	for _, p := range c.Parents() {
		if s := AsShape(p); s != nil {
			c.shape = s.id
			s.composer = c.id
			return StatusOk
		}
	}
	return StatusMissingObject
}

// BuildDependencies makes the composer depend on its shape and every path.
func (c *PathComposer) BuildDependencies() {
	s := c.Shape()
	if s == nil {
		return
	}
	s.AddDependent(c.id)
	for _, id := range s.paths {
		if p := AsComponent(c.artboard.Resolve(id)); p != nil {
			p.AddDependent(c.id)
		}
	}
}

// Update rebuilds the composed paths on Path dirt.
func (c *PathComposer) Update(dirt ComponentDirt) {
	if !dirt.Has(DirtPath) {
		return
	}
	s := c.Shape()
	if s == nil {
		return
	}
	space := s.PathSpace()
	c.status = StatusOk
	c.localPath, c.worldPath = nil, nil

	if space.Has(PathSpaceLocal) {
		inv, ok := s.worldTransform.Invert()
		if !ok {
			c.status = StatusFailedInversion
			Logger().Warn("arbor: shape world transform not invertible",
				"shape", s.id, "name", s.name)
			c.localPath = &CommandPath{}
		} else {
			var b CommandPathBuilder
			for _, id := range s.paths {
				if p := AsPath(c.artboard.Resolve(id)); p != nil {
					b.AddPath(p.commandPath, inv.Multiply(p.worldTransform))
				}
			}
			c.localPath = b.Build()
		}
	}
	if space.Has(PathSpaceWorld) {
		var b CommandPathBuilder
		for _, id := range s.paths {
			if p := AsPath(c.artboard.Resolve(id)); p != nil {
				b.AddPath(p.commandPath, p.worldTransform)
			}
		}
		c.worldPath = b.Build()
	}
}
