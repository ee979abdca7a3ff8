package arbor

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to four float channels of one artboard object
// outside of any LinearAnimation. Create one with the convenience
// constructors and call Update(dt) each frame. Values are written through
// Animate, so setters schedule the same dirt a keyframe would. When the
// target no longer resolves the group stops immediately.
//
// There is no global tween manager; callers own and update their groups.
type TweenGroup struct {
	tweens [4]*gween.Tween
	keys   [4]PropertyKey
	count  int
	color  bool // the channels are R, G, B, A of keys[0]

	artboard *Artboard
	target   uint32
	Done     bool
}

// Update advances all tweens by dt seconds and writes the values to the
// target. If the target has gone, Done is set and nothing is written.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	obj := g.artboard.Resolve(g.target)
	if obj == nil {
		g.Done = true
		return
	}

	allDone := true
	var vals [4]float32
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		vals[i] = val
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.color {
		c := Color{R: vals[0], G: vals[1], B: vals[2], A: vals[3]}
		Animate(obj, g.keys[0], ColorValue(c), 1)
		return
	}
	for i := 0; i < g.count; i++ {
		Animate(obj, g.keys[i], FloatValue(vals[i]), 1)
	}
}

// Reset rewinds every channel to its starting value.
func (g *TweenGroup) Reset() {
	for i := 0; i < g.count; i++ {
		g.tweens[i].Reset()
	}
	g.Done = false
}

func newTweenGroup(ab *Artboard, id uint32) (*TweenGroup, Object) {
	g := &TweenGroup{artboard: ab, target: id}
	obj := ab.Resolve(id)
	if obj == nil {
		g.Done = true
	}
	return g, obj
}

func (g *TweenGroup) addFloat(obj Object, key PropertyKey, to, duration float32, fn ease.TweenFunc) {
	p, ok := PropertyOf(obj, key)
	if !ok || p.Field() != FieldFloat {
		return
	}
	g.tweens[g.count] = gween.New(p.Get().Float(), to, duration, fn)
	g.keys[g.count] = key
	g.count++
}

// TweenProperty animates the float property key of object id to the given
// value. A missing object or a non-float key yields a finished group.
func TweenProperty(ab *Artboard, id uint32, key PropertyKey, to, duration float32, fn ease.TweenFunc) *TweenGroup {
	g, obj := newTweenGroup(ab, id)
	if obj != nil {
		g.addFloat(obj, key, to, duration, fn)
	}
	if g.count == 0 {
		g.Done = true
	}
	return g
}

// TweenPosition animates a node's x and y.
func TweenPosition(ab *Artboard, id uint32, toX, toY, duration float32, fn ease.TweenFunc) *TweenGroup {
	g, obj := newTweenGroup(ab, id)
	if obj != nil {
		g.addFloat(obj, PropNodeX, toX, duration, fn)
		g.addFloat(obj, PropNodeY, toY, duration, fn)
	}
	if g.count == 0 {
		g.Done = true
	}
	return g
}

// TweenScale animates a transform's scaleX and scaleY.
func TweenScale(ab *Artboard, id uint32, toSX, toSY, duration float32, fn ease.TweenFunc) *TweenGroup {
	g, obj := newTweenGroup(ab, id)
	if obj != nil {
		g.addFloat(obj, PropScaleX, toSX, duration, fn)
		g.addFloat(obj, PropScaleY, toSY, duration, fn)
	}
	if g.count == 0 {
		g.Done = true
	}
	return g
}

// TweenRotation animates a transform's rotation in radians.
func TweenRotation(ab *Artboard, id uint32, to, duration float32, fn ease.TweenFunc) *TweenGroup {
	return TweenProperty(ab, id, PropRotation, to, duration, fn)
}

// TweenOpacity animates a transform's opacity.
func TweenOpacity(ab *Artboard, id uint32, to, duration float32, fn ease.TweenFunc) *TweenGroup {
	return TweenProperty(ab, id, PropOpacity, to, duration, fn)
}

// TweenColor animates the color property key (a solid color or gradient
// stop value) channel by channel.
func TweenColor(ab *Artboard, id uint32, key PropertyKey, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g, obj := newTweenGroup(ab, id)
	if obj == nil {
		return g
	}
	p, ok := PropertyOf(obj, key)
	if !ok || p.Field() != FieldColor {
		g.Done = true
		return g
	}
	from := p.Get().Color()
	g.color = true
	g.count = 4
	g.keys[0] = key
	g.tweens[0] = gween.New(from.R, to.R, duration, fn)
	g.tweens[1] = gween.New(from.G, to.G, duration, fn)
	g.tweens[2] = gween.New(from.B, to.B, duration, fn)
	g.tweens[3] = gween.New(from.A, to.A, duration, fn)
	return g
}
