package arbor

// drawableHidden is the drawableFlags bit that hides a drawable.
const drawableHidden = 1 << 0

// Drawable is a node that takes part in the draw list. Draw-list links are
// object IDs; NoID terminates the list.
type Drawable struct {
	Node

	blendMode     BlendMode
	drawableFlags uint64

	prev, next         uint32
	flattenedDrawRules uint32
}

func newDrawable() Drawable {
	return Drawable{
		Node:               Node{TransformComponent: newTransformComponent()},
		blendMode:          BlendSrcOver,
		prev:               NoID,
		next:               NoID,
		flattenedDrawRules: NoID,
	}
}

type drawableFacet interface {
	drawableFacet() *Drawable
}

func (d *Drawable) drawableFacet() *Drawable { return d }

// AsDrawable returns o's Drawable facet, or nil.
func AsDrawable(o Object) *Drawable {
	if f, ok := o.(drawableFacet); ok {
		return f.drawableFacet()
	}
	return nil
}

// drawer is implemented by drawables that emit paths.
type drawer interface {
	Draw(r Renderer, transform Mat2D)
}

func (d *Drawable) CoreType() TypeKey { return TypeDrawable }

// BlendMode returns the compositing mode.
func (d *Drawable) BlendMode() BlendMode { return d.blendMode }

// SetBlendMode sets the compositing mode.
func (d *Drawable) SetBlendMode(m BlendMode) { d.blendMode = m }

// DrawableFlags returns the raw flag bits.
func (d *Drawable) DrawableFlags() uint64 { return d.drawableFlags }

// SetDrawableFlags sets the raw flag bits.
func (d *Drawable) SetDrawableFlags(v uint64) { d.drawableFlags = v }

// IsHidden reports whether the drawable is skipped when drawing.
func (d *Drawable) IsHidden() bool { return d.drawableFlags&drawableHidden != 0 }

// SetHidden toggles the hidden flag.
func (d *Drawable) SetHidden(hidden bool) {
	if hidden {
		d.drawableFlags |= drawableHidden
	} else {
		d.drawableFlags &^= drawableHidden
	}
}

// Prev returns the ID of the previous drawable in the draw list.
func (d *Drawable) Prev() uint32 { return d.prev }

// Next returns the ID of the next drawable in the draw list.
func (d *Drawable) Next() uint32 { return d.next }

// FlattenedDrawRules returns the ID of the draw rules governing this
// drawable (its own or the nearest ancestor's), or NoID.
func (d *Drawable) FlattenedDrawRules() uint32 { return d.flattenedDrawRules }

// Draw emits nothing for a bare drawable.
func (d *Drawable) Draw(Renderer, Mat2D) {}
