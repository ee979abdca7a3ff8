package arbor

import "github.com/chewxy/math32"

// pathFlagHidden hides the path from composition.
const pathFlagHidden = 1 << 0

// Path is a node producing geometry for its ancestor shape.
type Path struct {
	Node

	pathFlags   uint64
	shape       uint32
	commandPath *CommandPath
}

func newPath() Path {
	return Path{Node: Node{TransformComponent: newTransformComponent()}, shape: NoID}
}

type pathFacet interface {
	pathFacet() *Path
}

func (p *Path) pathFacet() *Path { return p }

// AsPath returns o's Path facet, or nil.
func AsPath(o Object) *Path {
	if f, ok := o.(pathFacet); ok {
		return f.pathFacet()
	}
	return nil
}

// pathBuilder is implemented by concrete paths.
type pathBuilder interface {
	buildVertices() ([]pathVertex, bool)
}

// pathCommandBuilder is implemented by paths that emit commands directly.
type pathCommandBuilder interface {
	buildCommands(b *CommandPathBuilder)
}

func (p *Path) CoreType() TypeKey { return TypePath }

// PathFlags returns the raw flag bits.
func (p *Path) PathFlags() uint64 { return p.pathFlags }

// SetPathFlags sets the raw flag bits.
func (p *Path) SetPathFlags(v uint64) {
	if p.pathFlags == v {
		return
	}
	p.pathFlags = v
	p.MarkPathDirty()
}

// IsHidden reports whether the path is left out of composition.
func (p *Path) IsHidden() bool { return p.pathFlags&pathFlagHidden != 0 }

// CommandPath returns the path in its own local space as of the last update.
func (p *Path) CommandPath() *CommandPath { return p.commandPath }

// Shape returns the owning shape.
func (p *Path) Shape() *Shape {
	if p.artboard == nil || p.shape == NoID {
		return nil
	}
	return AsShape(p.artboard.Resolve(p.shape))
}

// OnAddedClean attaches the path to the nearest ancestor shape.
func (p *Path) OnAddedClean(ctx Context) StatusCode {
	if code := p.Component.OnAddedClean(ctx); code != StatusOk {
		return code
	}
	for _, a := range p.Parents() {
		if s := AsShape(a); s != nil {
			p.shape = s.id
			s.addPath(p.id)
			return StatusOk
		}
	}
	return StatusMissingObject
}

// MarkPathDirty schedules a geometry rebuild and recomposition.
func (p *Path) MarkPathDirty() {
	p.AddDirt(DirtPath, false)
	if s := p.Shape(); s != nil {
		s.pathChanged()
	}
}

func (p *Path) onDirty(dirt ComponentDirt) {
	if dirt.Has(DirtWorldTransform) {
		if s := p.Shape(); s != nil {
			s.pathChanged()
		}
	}
}

// Update rebuilds transforms and, on Path dirt, the command path.
func (p *Path) Update(dirt ComponentDirt) {
	p.TransformComponent.Update(dirt)
	if dirt.Has(DirtPath) {
		p.commandPath = p.build()
	}
}

func (p *Path) build() *CommandPath {
	var b CommandPathBuilder
	if p.IsHidden() {
		return b.Build()
	}
	switch pb := p.self().(type) {
	case pathCommandBuilder:
		pb.buildCommands(&b)
	case pathBuilder:
		verts, closed := pb.buildVertices()
		buildFromVertices(&b, verts, closed)
	}
	return b.Build()
}

// pathVertex is a resolved vertex: a position with optional cubic handles
// or a corner radius.
type pathVertex struct {
	pos, in, out Vec2
	cubic        bool
	radius       float32
}

// corner is a vertex after corner rounding.
type corner struct {
	entry, exit     Vec2
	inCtrl, outCtrl Vec2
	cubic           bool
	rounded         bool
	c1, c2          Vec2
}

// buildFromVertices emits line and cubic segments through verts, rounding
// straight vertices that carry a radius.
func buildFromVertices(b *CommandPathBuilder, verts []pathVertex, closed bool) {
	n := len(verts)
	if n < 2 {
		return
	}
	corners := make([]corner, n)
	for i, v := range verts {
		c := corner{entry: v.pos, exit: v.pos, inCtrl: v.pos, outCtrl: v.pos}
		if v.cubic {
			c.cubic = true
			c.inCtrl, c.outCtrl = v.in, v.out
		} else if v.radius > 0 && (closed || (i > 0 && i < n-1)) {
			prev := verts[(i+n-1)%n].pos
			next := verts[(i+1)%n].pos
			toPrev, toNext := prev.Sub(v.pos), next.Sub(v.pos)
			r := min(v.radius, toPrev.Length()/2, toNext.Length()/2)
			if r > 0 {
				toPrev, toNext = toPrev.Normalize(), toNext.Normalize()
				c.rounded = true
				c.entry = v.pos.Add(toPrev.Scale(r))
				c.exit = v.pos.Add(toNext.Scale(r))
				c.inCtrl, c.outCtrl = c.entry, c.exit
				c.c1 = v.pos.Add(toPrev.Scale(r * (1 - circleConstant)))
				c.c2 = v.pos.Add(toNext.Scale(r * (1 - circleConstant)))
			}
		}
		corners[i] = c
	}

	first := corners[0]
	b.MoveTo(first.entry.X, first.entry.Y)
	if first.rounded {
		b.CubicTo(first.c1.X, first.c1.Y, first.c2.X, first.c2.Y, first.exit.X, first.exit.Y)
	}
	segment := func(from, to corner) {
		if from.cubic || to.cubic {
			b.CubicTo(from.outCtrl.X, from.outCtrl.Y, to.inCtrl.X, to.inCtrl.Y, to.entry.X, to.entry.Y)
		} else {
			b.LineTo(to.entry.X, to.entry.Y)
		}
	}
	for i := 1; i < n; i++ {
		segment(corners[i-1], corners[i])
		if c := corners[i]; c.rounded {
			b.CubicTo(c.c1.X, c.c1.Y, c.c2.X, c.c2.Y, c.exit.X, c.exit.Y)
		}
	}
	if closed {
		last := corners[n-1]
		if last.cubic || first.cubic || last.exit != first.entry {
			segment(last, first)
		}
		b.Close()
	}
}

// ParametricPath is a path described by a size and origin.
type ParametricPath struct {
	Path

	width, height    float32
	originX, originY float32
}

func newParametricPath() ParametricPath {
	return ParametricPath{Path: newPath(), originX: 0.5, originY: 0.5}
}

type parametricFacet interface {
	parametricFacet() *ParametricPath
}

func (p *ParametricPath) parametricFacet() *ParametricPath { return p }

// AsParametricPath returns o's ParametricPath facet, or nil.
func AsParametricPath(o Object) *ParametricPath {
	if f, ok := o.(parametricFacet); ok {
		return f.parametricFacet()
	}
	return nil
}

func (p *ParametricPath) CoreType() TypeKey { return TypeParametricPath }

func (p *ParametricPath) Width() float32   { return p.width }
func (p *ParametricPath) Height() float32  { return p.height }
func (p *ParametricPath) OriginX() float32 { return p.originX }
func (p *ParametricPath) OriginY() float32 { return p.originY }

func (p *ParametricPath) SetWidth(v float32)   { p.setDim(&p.width, v) }
func (p *ParametricPath) SetHeight(v float32)  { p.setDim(&p.height, v) }
func (p *ParametricPath) SetOriginX(v float32) { p.setDim(&p.originX, v) }
func (p *ParametricPath) SetOriginY(v float32) { p.setDim(&p.originY, v) }

func (p *ParametricPath) setDim(field *float32, v float32) {
	if *field == v {
		return
	}
	*field = v
	p.MarkPathDirty()
}

// topLeft returns the local position of the box's top-left corner.
func (p *ParametricPath) topLeft() Vec2 {
	return Vec2{-p.originX * p.width, -p.originY * p.height}
}

// Rectangle is an axis-aligned box with optional rounded corners.
type Rectangle struct {
	ParametricPath
	cornerRadius float32
}

// NewRectangle returns a w by h rectangle centered on its origin.
func NewRectangle(w, h float32) *Rectangle {
	r := &Rectangle{ParametricPath: newParametricPath()}
	r.width, r.height = w, h
	return r
}

func (r *Rectangle) CoreType() TypeKey { return TypeRectangle }

// CornerRadius returns the corner radius.
func (r *Rectangle) CornerRadius() float32 { return r.cornerRadius }

// SetCornerRadius sets the corner radius.
func (r *Rectangle) SetCornerRadius(v float32) { r.setDim(&r.cornerRadius, v) }

func (r *Rectangle) buildVertices() ([]pathVertex, bool) {
	o := r.topLeft()
	rad := r.cornerRadius
	return []pathVertex{
		{pos: o, radius: rad},
		{pos: Vec2{o.X + r.width, o.Y}, radius: rad},
		{pos: Vec2{o.X + r.width, o.Y + r.height}, radius: rad},
		{pos: Vec2{o.X, o.Y + r.height}, radius: rad},
	}, true
}

// Ellipse fills its box with an ellipse.
type Ellipse struct {
	ParametricPath
}

// NewEllipse returns a w by h ellipse centered on its origin.
func NewEllipse(w, h float32) *Ellipse {
	e := &Ellipse{ParametricPath: newParametricPath()}
	e.width, e.height = w, h
	return e
}

func (e *Ellipse) CoreType() TypeKey { return TypeEllipse }

func (e *Ellipse) buildCommands(b *CommandPathBuilder) {
	o := e.topLeft()
	rx, ry := e.width/2, e.height/2
	b.Ellipse(o.X+rx, o.Y+ry, rx, ry)
}

// Triangle points up inside its box.
type Triangle struct {
	ParametricPath
}

// NewTriangle returns a w by h triangle centered on its origin.
func NewTriangle(w, h float32) *Triangle {
	t := &Triangle{ParametricPath: newParametricPath()}
	t.width, t.height = w, h
	return t
}

func (t *Triangle) CoreType() TypeKey { return TypeTriangle }

func (t *Triangle) buildVertices() ([]pathVertex, bool) {
	o := t.topLeft()
	return []pathVertex{
		{pos: Vec2{o.X + t.width/2, o.Y}},
		{pos: Vec2{o.X + t.width, o.Y + t.height}},
		{pos: Vec2{o.X, o.Y + t.height}},
	}, true
}

// Polygon is a regular polygon inscribed in its box.
type Polygon struct {
	ParametricPath
	points       uint64
	cornerRadius float32
}

// NewPolygon returns a polygon with the given number of points.
func NewPolygon(w, h float32, points uint64) *Polygon {
	p := &Polygon{ParametricPath: newParametricPath(), points: points}
	p.width, p.height = w, h
	return p
}

type polygonFacet interface {
	polygonFacet() *Polygon
}

func (p *Polygon) polygonFacet() *Polygon { return p }

// AsPolygon returns o's Polygon facet (polygons and stars), or nil.
func AsPolygon(o Object) *Polygon {
	if f, ok := o.(polygonFacet); ok {
		return f.polygonFacet()
	}
	return nil
}

func (p *Polygon) CoreType() TypeKey { return TypePolygon }

// Points returns the number of outer points.
func (p *Polygon) Points() uint64 { return p.points }

// SetPoints sets the number of outer points.
func (p *Polygon) SetPoints(v uint64) {
	if p.points == v {
		return
	}
	p.points = v
	p.MarkPathDirty()
}

// CornerRadius returns the corner radius.
func (p *Polygon) CornerRadius() float32 { return p.cornerRadius }

// SetCornerRadius sets the corner radius.
func (p *Polygon) SetCornerRadius(v float32) { p.setDim(&p.cornerRadius, v) }

func (p *Polygon) buildVertices() ([]pathVertex, bool) {
	return p.ring(int(p.points), 1), true
}

// ring lays out n points (alternating with inner points scaled by inner
// when inner < 1 and the caller asks for 2n) around the box center.
func (p *Polygon) ring(n int, inner float32) []pathVertex {
	if n < 3 {
		return nil
	}
	o := p.topLeft()
	rx, ry := p.width/2, p.height/2
	cx, cy := o.X+rx, o.Y+ry
	step := 2 * math32.Pi / float32(n)
	verts := make([]pathVertex, 0, n)
	for i := 0; i < n; i++ {
		angle := -math32.Pi/2 + step*float32(i)
		sx, sy := rx, ry
		if i%2 == 1 {
			sx, sy = rx*inner, ry*inner
		}
		sin, cos := math32.Sincos(angle)
		verts = append(verts, pathVertex{pos: Vec2{cx + cos*sx, cy + sin*sy}, radius: p.cornerRadius})
	}
	return verts
}

// Star is a polygon alternating outer and inner points.
type Star struct {
	Polygon
	innerRadius float32
}

// NewStar returns a star with the given number of outer points.
func NewStar(w, h float32, points uint64) *Star {
	s := &Star{Polygon: Polygon{ParametricPath: newParametricPath(), points: points}, innerRadius: 0.5}
	s.width, s.height = w, h
	return s
}

func (s *Star) CoreType() TypeKey { return TypeStar }

// InnerRadius returns the inner point distance as a fraction of the outer.
func (s *Star) InnerRadius() float32 { return s.innerRadius }

// SetInnerRadius sets the inner point distance.
func (s *Star) SetInnerRadius(v float32) { s.setDim(&s.innerRadius, v) }

func (s *Star) buildVertices() ([]pathVertex, bool) {
	return s.ring(int(s.points)*2, s.innerRadius), true
}

// PointsPath is a path through explicit vertex children.
type PointsPath struct {
	Path
	isClosed bool
	vertices []uint32
}

// NewPointsPath returns an empty open path.
func NewPointsPath() *PointsPath {
	return &PointsPath{Path: newPath()}
}

type pointsPathFacet interface {
	pointsPathFacet() *PointsPath
}

func (p *PointsPath) pointsPathFacet() *PointsPath { return p }

// AsPointsPath returns o's PointsPath facet, or nil.
func AsPointsPath(o Object) *PointsPath {
	if f, ok := o.(pointsPathFacet); ok {
		return f.pointsPathFacet()
	}
	return nil
}

func (p *PointsPath) CoreType() TypeKey { return TypePointsPath }

// IsClosed reports whether the last vertex connects back to the first.
func (p *PointsPath) IsClosed() bool { return p.isClosed }

// SetIsClosed opens or closes the path.
func (p *PointsPath) SetIsClosed(v bool) {
	if p.isClosed == v {
		return
	}
	p.isClosed = v
	p.MarkPathDirty()
}

// Vertices returns the vertex IDs in order.
func (p *PointsPath) Vertices() []uint32 { return p.vertices }

func (p *PointsPath) buildVertices() ([]pathVertex, bool) {
	verts := make([]pathVertex, 0, len(p.vertices))
	for _, id := range p.vertices {
		if v, ok := p.artboard.Resolve(id).(vertexObject); ok {
			verts = append(verts, v.geometry())
		}
	}
	return verts, p.isClosed
}

// --- Vertices ---

// PathVertex is a point of a PointsPath.
type PathVertex struct {
	Component
	x, y float32
}

type vertexObject interface {
	Object
	vertexFacet() *PathVertex
	geometry() pathVertex
}

func (v *PathVertex) vertexFacet() *PathVertex { return v }

// AsPathVertex returns o's PathVertex facet, or nil.
func AsPathVertex(o Object) *PathVertex {
	if f, ok := o.(vertexObject); ok {
		return f.vertexFacet()
	}
	return nil
}

func (v *PathVertex) CoreType() TypeKey { return TypePathVertex }

func (v *PathVertex) X() float32 { return v.x }
func (v *PathVertex) Y() float32 { return v.y }

func (v *PathVertex) SetX(x float32) { v.setField(&v.x, x) }
func (v *PathVertex) SetY(y float32) { v.setField(&v.y, y) }

func (v *PathVertex) setField(field *float32, val float32) {
	if *field == val {
		return
	}
	*field = val
	v.markPathDirty()
}

func (v *PathVertex) markPathDirty() {
	if p := AsPath(v.ParentObject()); p != nil {
		p.MarkPathDirty()
	}
}

func (v *PathVertex) geometry() pathVertex {
	return pathVertex{pos: Vec2{v.x, v.y}}
}

// OnAddedClean registers the vertex with its points path.
func (v *PathVertex) OnAddedClean(ctx Context) StatusCode {
	pp := AsPointsPath(ctx.Resolve(v.parentID))
	if pp == nil {
		return StatusInvalidObject
	}
	pp.vertices = append(pp.vertices, v.id)
	return StatusOk
}

// OnAddedDirty checks the parent is a points path.
func (v *PathVertex) OnAddedDirty(ctx Context) StatusCode {
	parent := ctx.Resolve(v.parentID)
	if parent == nil {
		return StatusMissingObject
	}
	if AsPointsPath(parent) == nil {
		return StatusInvalidObject
	}
	return StatusOk
}

// StraightVertex is a corner vertex with an optional rounding radius.
type StraightVertex struct {
	PathVertex
	radius float32
}

// NewStraightVertex returns a vertex at (x, y).
func NewStraightVertex(x, y float32) *StraightVertex {
	return &StraightVertex{PathVertex: PathVertex{x: x, y: y}}
}

func (v *StraightVertex) CoreType() TypeKey { return TypeStraightVertex }

// Radius returns the corner radius.
func (v *StraightVertex) Radius() float32 { return v.radius }

// SetRadius sets the corner radius.
func (v *StraightVertex) SetRadius(r float32) { v.setField(&v.radius, r) }

func (v *StraightVertex) geometry() pathVertex {
	return pathVertex{pos: Vec2{v.x, v.y}, radius: v.radius}
}

// CubicMirroredVertex has symmetric handles.
type CubicMirroredVertex struct {
	PathVertex
	rotation, distance float32
}

// NewCubicMirroredVertex returns a mirrored vertex at (x, y).
func NewCubicMirroredVertex(x, y, rotation, distance float32) *CubicMirroredVertex {
	return &CubicMirroredVertex{PathVertex: PathVertex{x: x, y: y}, rotation: rotation, distance: distance}
}

func (v *CubicMirroredVertex) CoreType() TypeKey { return TypeCubicMirroredVertex }

func (v *CubicMirroredVertex) Rotation() float32     { return v.rotation }
func (v *CubicMirroredVertex) Distance() float32     { return v.distance }
func (v *CubicMirroredVertex) SetRotation(r float32) { v.setField(&v.rotation, r) }
func (v *CubicMirroredVertex) SetDistance(d float32) { v.setField(&v.distance, d) }

func (v *CubicMirroredVertex) geometry() pathVertex {
	pos := Vec2{v.x, v.y}
	return pathVertex{
		pos:   pos,
		in:    polar(pos, v.rotation+math32.Pi, v.distance),
		out:   polar(pos, v.rotation, v.distance),
		cubic: true,
	}
}

// CubicAsymmetricVertex has collinear handles of different lengths.
type CubicAsymmetricVertex struct {
	PathVertex
	rotation, inDistance, outDistance float32
}

// NewCubicAsymmetricVertex returns an asymmetric vertex at (x, y).
func NewCubicAsymmetricVertex(x, y, rotation, inDistance, outDistance float32) *CubicAsymmetricVertex {
	return &CubicAsymmetricVertex{
		PathVertex: PathVertex{x: x, y: y},
		rotation:   rotation, inDistance: inDistance, outDistance: outDistance,
	}
}

func (v *CubicAsymmetricVertex) CoreType() TypeKey { return TypeCubicAsymmetricVertex }

func (v *CubicAsymmetricVertex) Rotation() float32        { return v.rotation }
func (v *CubicAsymmetricVertex) InDistance() float32      { return v.inDistance }
func (v *CubicAsymmetricVertex) OutDistance() float32     { return v.outDistance }
func (v *CubicAsymmetricVertex) SetRotation(r float32)    { v.setField(&v.rotation, r) }
func (v *CubicAsymmetricVertex) SetInDistance(d float32)  { v.setField(&v.inDistance, d) }
func (v *CubicAsymmetricVertex) SetOutDistance(d float32) { v.setField(&v.outDistance, d) }

func (v *CubicAsymmetricVertex) geometry() pathVertex {
	pos := Vec2{v.x, v.y}
	return pathVertex{
		pos:   pos,
		in:    polar(pos, v.rotation+math32.Pi, v.inDistance),
		out:   polar(pos, v.rotation, v.outDistance),
		cubic: true,
	}
}

// CubicDetachedVertex has independent handles.
type CubicDetachedVertex struct {
	PathVertex
	inRotation, inDistance   float32
	outRotation, outDistance float32
}

// NewCubicDetachedVertex returns a detached vertex at (x, y).
func NewCubicDetachedVertex(x, y, inRotation, inDistance, outRotation, outDistance float32) *CubicDetachedVertex {
	return &CubicDetachedVertex{
		PathVertex: PathVertex{x: x, y: y},
		inRotation: inRotation, inDistance: inDistance,
		outRotation: outRotation, outDistance: outDistance,
	}
}

func (v *CubicDetachedVertex) CoreType() TypeKey { return TypeCubicDetachedVertex }

func (v *CubicDetachedVertex) InRotation() float32        { return v.inRotation }
func (v *CubicDetachedVertex) InDistance() float32        { return v.inDistance }
func (v *CubicDetachedVertex) OutRotation() float32       { return v.outRotation }
func (v *CubicDetachedVertex) OutDistance() float32       { return v.outDistance }
func (v *CubicDetachedVertex) SetInRotation(r float32)    { v.setField(&v.inRotation, r) }
func (v *CubicDetachedVertex) SetInDistance(d float32)    { v.setField(&v.inDistance, d) }
func (v *CubicDetachedVertex) SetOutRotation(r float32)   { v.setField(&v.outRotation, r) }
func (v *CubicDetachedVertex) SetOutDistance(d float32)   { v.setField(&v.outDistance, d) }

func (v *CubicDetachedVertex) geometry() pathVertex {
	pos := Vec2{v.x, v.y}
	return pathVertex{
		pos:   pos,
		in:    polar(pos, v.inRotation, v.inDistance),
		out:   polar(pos, v.outRotation, v.outDistance),
		cubic: true,
	}
}

func polar(origin Vec2, angle, dist float32) Vec2 {
	sin, cos := math32.Sincos(angle)
	return Vec2{origin.X + cos*dist, origin.Y + sin*dist}
}
