package arbor

import "slices"

// ShapePaint is a fill or stroke owned by a shape-paint container. Its
// color comes from a single mutator child (solid color or gradient).
type ShapePaint struct {
	ContainerComponent

	isVisible   bool
	renderPaint RenderPaint
	mutator     uint32
}

func newShapePaint(style PaintStyle) ShapePaint {
	return ShapePaint{
		isVisible:   true,
		renderPaint: RenderPaint{Style: style, Color: ColorBlack, Thickness: 1, BlendMode: BlendSrcOver},
		mutator:     NoID,
	}
}

type shapePaintFacet interface {
	shapePaintFacet() *ShapePaint
}

func (p *ShapePaint) shapePaintFacet() *ShapePaint { return p }

// AsShapePaint returns o's ShapePaint facet, or nil.
func AsShapePaint(o Object) *ShapePaint {
	if f, ok := o.(shapePaintFacet); ok {
		return f.shapePaintFacet()
	}
	return nil
}

func (p *ShapePaint) CoreType() TypeKey { return TypeShapePaint }

// IsVisible reports whether the paint draws.
func (p *ShapePaint) IsVisible() bool { return p.isVisible }

// SetIsVisible shows or hides the paint.
func (p *ShapePaint) SetIsVisible(v bool) { p.isVisible = v }

// RenderPaint returns the paint handed to renderers.
func (p *ShapePaint) RenderPaint() *RenderPaint { return &p.renderPaint }

// Mutator returns the ID of the color source, or NoID.
func (p *ShapePaint) Mutator() uint32 { return p.mutator }

// PathSpace returns the space a plain paint wants its path in.
func (p *ShapePaint) PathSpace() PathSpace { return PathSpaceLocal }

// OnAddedClean registers the paint with its container.
func (p *ShapePaint) OnAddedClean(ctx Context) StatusCode {
	if code := p.Component.OnAddedClean(ctx); code != StatusOk {
		return code
	}
	container := AsShapePaintContainer(ctx.Resolve(p.parentID))
	if container == nil {
		return StatusMissingObject
	}
	container.addPaint(p.id)
	return StatusOk
}

// ownerShape returns the shape owning the paint, or nil for artboard paints.
func (p *ShapePaint) ownerShape() *Shape {
	return AsShape(p.ParentObject())
}

// Fill paints the inside of a path.
type Fill struct {
	ShapePaint
}

// NewFill returns a visible fill.
func NewFill() *Fill {
	return &Fill{ShapePaint: newShapePaint(StyleFill)}
}

func (f *Fill) CoreType() TypeKey { return TypeFill }

// FillRule returns the winding rule.
func (f *Fill) FillRule() FillRule { return f.renderPaint.FillRule }

// SetFillRule sets the winding rule.
func (f *Fill) SetFillRule(r FillRule) { f.renderPaint.FillRule = r }

// Stroke paints the outline of a path.
type Stroke struct {
	ShapePaint
	transformAffectsStroke bool
}

// NewStroke returns a visible stroke of the given thickness.
func NewStroke(thickness float32) *Stroke {
	s := &Stroke{ShapePaint: newShapePaint(StyleStroke), transformAffectsStroke: true}
	s.renderPaint.Thickness = thickness
	return s
}

func (s *Stroke) CoreType() TypeKey { return TypeStroke }

// Thickness returns the stroke width.
func (s *Stroke) Thickness() float32 { return s.renderPaint.Thickness }

// SetThickness sets the stroke width.
func (s *Stroke) SetThickness(v float32) { s.renderPaint.Thickness = v }

// Cap returns the end cap.
func (s *Stroke) Cap() StrokeCap { return s.renderPaint.Cap }

// SetCap sets the end cap.
func (s *Stroke) SetCap(c StrokeCap) { s.renderPaint.Cap = c }

// Join returns the segment join.
func (s *Stroke) Join() StrokeJoin { return s.renderPaint.Join }

// SetJoin sets the segment join.
func (s *Stroke) SetJoin(j StrokeJoin) { s.renderPaint.Join = j }

// TransformAffectsStroke reports whether the shape's world transform scales
// the stroke.
func (s *Stroke) TransformAffectsStroke() bool { return s.transformAffectsStroke }

// SetTransformAffectsStroke switches between local-space and world-space
// stroking.
func (s *Stroke) SetTransformAffectsStroke(v bool) {
	if s.transformAffectsStroke == v {
		return
	}
	s.transformAffectsStroke = v
	if sh := s.ownerShape(); sh != nil {
		sh.pathChanged()
	}
}

// PathSpace is local when the transform affects the stroke, else world.
func (s *Stroke) PathSpace() PathSpace {
	if s.transformAffectsStroke {
		return PathSpaceLocal
	}
	return PathSpaceWorld
}

// --- Mutators ---

// attachMutator validates that parent is a paint and claims it.
func attachMutator(ctx Context, parentID, id uint32) (*ShapePaint, StatusCode) {
	parent := ctx.Resolve(parentID)
	if parent == nil {
		return nil, StatusMissingObject
	}
	paint := AsShapePaint(parent)
	if paint == nil {
		return nil, StatusInvalidObject
	}
	paint.mutator = id
	return paint, StatusOk
}

// SolidColor gives its paint a flat color.
type SolidColor struct {
	Component
	colorValue uint32
	paint      *ShapePaint
}

// NewSolidColor returns a solid color mutator with the given ARGB value.
func NewSolidColor(argb uint32) *SolidColor {
	return &SolidColor{colorValue: argb}
}

func (s *SolidColor) CoreType() TypeKey { return TypeSolidColor }

// ColorValue returns the packed ARGB color.
func (s *SolidColor) ColorValue() uint32 { return s.colorValue }

// SetColorValue sets the packed ARGB color.
func (s *SolidColor) SetColorValue(v uint32) {
	s.colorValue = v
	s.apply()
}

// Color returns the color.
func (s *SolidColor) Color() Color { return ColorFromARGB(s.colorValue) }

func (s *SolidColor) apply() {
	if s.paint == nil {
		return
	}
	s.paint.renderPaint.Color = ColorFromARGB(s.colorValue)
	s.paint.renderPaint.Gradient = nil
}

// OnAddedDirty skips container validation; the parent must be a paint.
func (s *SolidColor) OnAddedDirty(ctx Context) StatusCode {
	if ctx.Resolve(s.parentID) == nil {
		return StatusMissingObject
	}
	return StatusOk
}

// OnAddedClean claims the parent paint.
func (s *SolidColor) OnAddedClean(ctx Context) StatusCode {
	paint, code := attachMutator(ctx, s.parentID, s.id)
	if code != StatusOk {
		return code
	}
	s.paint = paint
	s.apply()
	return StatusOk
}

// LinearGradient gives its paint a gradient along the start-end segment.
type LinearGradient struct {
	ContainerComponent

	startX, startY float32
	endX, endY     float32
	opacity        float32
	stops          []uint32
	paint          *ShapePaint
}

func newLinearGradient() LinearGradient {
	return LinearGradient{opacity: 1}
}

// NewLinearGradient returns a gradient from start to end.
func NewLinearGradient(start, end Vec2) *LinearGradient {
	g := newLinearGradient()
	g.startX, g.startY, g.endX, g.endY = start.X, start.Y, end.X, end.Y
	return &g
}

type gradientFacet interface {
	gradientFacet() *LinearGradient
}

func (g *LinearGradient) gradientFacet() *LinearGradient { return g }

// AsLinearGradient returns o's LinearGradient facet (radial gradients
// included), or nil.
func AsLinearGradient(o Object) *LinearGradient {
	if f, ok := o.(gradientFacet); ok {
		return f.gradientFacet()
	}
	return nil
}

func (g *LinearGradient) CoreType() TypeKey { return TypeLinearGradient }

func (g *LinearGradient) StartX() float32  { return g.startX }
func (g *LinearGradient) StartY() float32  { return g.startY }
func (g *LinearGradient) EndX() float32    { return g.endX }
func (g *LinearGradient) EndY() float32    { return g.endY }
func (g *LinearGradient) Opacity() float32 { return g.opacity }

func (g *LinearGradient) SetStartX(v float32)  { g.setField(&g.startX, v) }
func (g *LinearGradient) SetStartY(v float32)  { g.setField(&g.startY, v) }
func (g *LinearGradient) SetEndX(v float32)    { g.setField(&g.endX, v) }
func (g *LinearGradient) SetEndY(v float32)    { g.setField(&g.endY, v) }
func (g *LinearGradient) SetOpacity(v float32) { g.setField(&g.opacity, v) }

func (g *LinearGradient) setField(field *float32, v float32) {
	if *field == v {
		return
	}
	*field = v
	g.AddDirt(DirtPaint, false)
}

// Stops returns the IDs of the gradient stops, sorted by position after the
// first update.
func (g *LinearGradient) Stops() []uint32 { return g.stops }

// OnAddedDirty only requires the parent to resolve.
func (g *LinearGradient) OnAddedDirty(ctx Context) StatusCode {
	if ctx.Resolve(g.parentID) == nil {
		return StatusMissingObject
	}
	return StatusOk
}

// OnAddedClean claims the parent paint.
func (g *LinearGradient) OnAddedClean(ctx Context) StatusCode {
	paint, code := attachMutator(ctx, g.parentID, g.id)
	if code != StatusOk {
		return code
	}
	g.paint = paint
	return StatusOk
}

// BuildDependencies makes the gradient depend on the paint's owner so world
// transform and opacity changes reach it.
func (g *LinearGradient) BuildDependencies() {
	if g.paint == nil {
		return
	}
	if owner := AsComponent(g.paint.ParentObject()); owner != nil {
		owner.AddDependent(g.id)
	}
}

// Update sorts stops and rebuilds the renderer gradient.
func (g *LinearGradient) Update(dirt ComponentDirt) {
	if dirt.Has(DirtStops) {
		slices.SortStableFunc(g.stops, func(a, b uint32) int {
			pa, pb := g.stopPosition(a), g.stopPosition(b)
			switch {
			case pa < pb:
				return -1
			case pa > pb:
				return 1
			}
			return 0
		})
	}
	if !dirt.Any(DirtStops | DirtPaint | DirtTransform | DirtWorldTransform | DirtRenderOpacity) {
		return
	}
	if g.paint == nil {
		return
	}
	grad := &Gradient{
		Start: Vec2{g.startX, g.startY},
		End:   Vec2{g.endX, g.endY},
	}
	if g.self().CoreType() == TypeRadialGradient {
		grad.Type = GradientRadial
	}
	if sp, ok := g.artboard.Resolve(g.paint.id).(interface{ PathSpace() PathSpace }); ok && sp.PathSpace().Has(PathSpaceWorld) {
		if owner := AsTransform(g.paint.ParentObject()); owner != nil {
			grad.Start = owner.worldTransform.Apply(grad.Start)
			grad.End = owner.worldTransform.Apply(grad.End)
		}
	}
	for _, id := range g.stops {
		if s, ok := g.artboard.Resolve(id).(*GradientStop); ok {
			grad.Stops = append(grad.Stops, ColorStop{
				Color:    ColorFromARGB(s.colorValue).WithOpacity(g.opacity),
				Position: s.position,
			})
		}
	}
	g.paint.renderPaint.Gradient = grad
}

func (g *LinearGradient) stopPosition(id uint32) float32 {
	if s, ok := g.artboard.Resolve(id).(*GradientStop); ok {
		return s.position
	}
	return 0
}

// RadialGradient is centered on start with radius |end - start|.
type RadialGradient struct {
	LinearGradient
}

// NewRadialGradient returns a radial gradient.
func NewRadialGradient(center Vec2, radius float32) *RadialGradient {
	g := &RadialGradient{LinearGradient: newLinearGradient()}
	g.startX, g.startY = center.X, center.Y
	g.endX, g.endY = center.X+radius, center.Y
	return g
}

func (g *RadialGradient) CoreType() TypeKey { return TypeRadialGradient }

// GradientStop is one color stop of a gradient.
type GradientStop struct {
	Component
	colorValue uint32
	position   float32
}

// NewGradientStop returns a stop at position with the given ARGB color.
func NewGradientStop(argb uint32, position float32) *GradientStop {
	return &GradientStop{colorValue: argb, position: position}
}

func (s *GradientStop) CoreType() TypeKey { return TypeGradientStop }

// ColorValue returns the packed ARGB color.
func (s *GradientStop) ColorValue() uint32 { return s.colorValue }

// Position returns the stop position in [0, 1].
func (s *GradientStop) Position() float32 { return s.position }

// SetColorValue sets the packed ARGB color.
func (s *GradientStop) SetColorValue(v uint32) {
	if s.colorValue == v {
		return
	}
	s.colorValue = v
	if g := s.gradient(); g != nil {
		g.AddDirt(DirtPaint, false)
	}
}

// SetPosition moves the stop.
func (s *GradientStop) SetPosition(v float32) {
	if s.position == v {
		return
	}
	s.position = v
	if g := s.gradient(); g != nil {
		g.AddDirt(DirtStops, false)
	}
}

func (s *GradientStop) gradient() *LinearGradient {
	return AsLinearGradient(s.ParentObject())
}

// OnAddedDirty only requires the parent to resolve.
func (s *GradientStop) OnAddedDirty(ctx Context) StatusCode {
	if ctx.Resolve(s.parentID) == nil {
		return StatusMissingObject
	}
	return StatusOk
}

// OnAddedClean registers the stop with its gradient.
func (s *GradientStop) OnAddedClean(ctx Context) StatusCode {
	g := AsLinearGradient(ctx.Resolve(s.parentID))
	if g == nil {
		return StatusInvalidObject
	}
	g.stops = append(g.stops, s.id)
	return StatusOk
}

// TrimPath stores trim parameters for its stroke. Geometry is not trimmed.
type TrimPath struct {
	Component
	start, end, offset float32
	modeValue          uint64
}

// NewTrimPath returns a trim covering the whole path.
func NewTrimPath() *TrimPath { return &TrimPath{end: 1} }

func (t *TrimPath) CoreType() TypeKey { return TypeTrimPath }

func (t *TrimPath) Start() float32        { return t.start }
func (t *TrimPath) End() float32          { return t.end }
func (t *TrimPath) Offset() float32       { return t.offset }
func (t *TrimPath) ModeValue() uint64     { return t.modeValue }
func (t *TrimPath) SetStart(v float32)    { t.start = v }
func (t *TrimPath) SetEnd(v float32)      { t.end = v }
func (t *TrimPath) SetOffset(v float32)   { t.offset = v }
func (t *TrimPath) SetModeValue(v uint64) { t.modeValue = v }

// OnAddedDirty only requires the parent to resolve.
func (t *TrimPath) OnAddedDirty(ctx Context) StatusCode {
	if ctx.Resolve(t.parentID) == nil {
		return StatusMissingObject
	}
	return StatusOk
}

// OnAddedClean requires a paint parent.
func (t *TrimPath) OnAddedClean(ctx Context) StatusCode {
	if AsShapePaint(ctx.Resolve(t.parentID)) == nil {
		return StatusInvalidObject
	}
	return StatusOk
}
