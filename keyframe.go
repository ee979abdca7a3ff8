package arbor

import (
	"github.com/tanema/gween/ease"
)

// Interpolation types stored in KeyFrame.interpolationType.
const (
	InterpolationHold   uint64 = 0
	InterpolationLinear uint64 = 1
	InterpolationCubic  uint64 = 2
	// Values from InterpolationEase index EaseFuncs.
	InterpolationEase uint64 = 3
)

// EaseFuncs are the easing presets selectable by interpolation type,
// starting at InterpolationEase.
var EaseFuncs = []ease.TweenFunc{
	ease.InQuad, ease.OutQuad, ease.InOutQuad,
	ease.InCubic, ease.OutCubic, ease.InOutCubic,
	ease.InSine, ease.OutSine, ease.InOutSine,
	ease.OutBounce, ease.OutElastic,
}

// EaseFunc returns the preset for an interpolation type, or nil when the
// type is not an ease preset.
func EaseFunc(interpolationType uint64) ease.TweenFunc {
	if interpolationType < InterpolationEase {
		return nil
	}
	i := interpolationType - InterpolationEase
	if i >= uint64(len(EaseFuncs)) {
		return nil
	}
	return EaseFuncs[i]
}

// KeyFrame is a value pinned to a frame of a keyed property.
type KeyFrame interface {
	Object
	keyFrameBase() *KeyFrameBase
	// Apply writes the keyframe's own value.
	Apply(target Object, key PropertyKey, mix float32)
	// ApplyInterpolation writes the value between this keyframe and next at
	// seconds.
	ApplyInterpolation(target Object, key PropertyKey, seconds float32, next KeyFrame, mix float32)
}

// KeyFrameBase holds the timing shared by every keyframe type.
type KeyFrameBase struct {
	frame             uint64
	interpolationType uint64
	interpolatorID    uint32
	seconds           float32
	interpolator      *CubicInterpolator
}

func newKeyFrameBase(frame uint64, interpolation uint64) KeyFrameBase {
	return KeyFrameBase{frame: frame, interpolationType: interpolation, interpolatorID: NoID}
}

func (k *KeyFrameBase) keyFrameBase() *KeyFrameBase { return k }

// AsKeyFrame returns o's KeyFrameBase, or nil.
func AsKeyFrame(o Object) *KeyFrameBase {
	if kf, ok := o.(KeyFrame); ok {
		return kf.keyFrameBase()
	}
	return nil
}

func (k *KeyFrameBase) Frame() uint64                 { return k.frame }
func (k *KeyFrameBase) InterpolationType() uint64     { return k.interpolationType }
func (k *KeyFrameBase) InterpolatorID() uint32        { return k.interpolatorID }
func (k *KeyFrameBase) SetFrame(v uint64)             { k.frame = v }
func (k *KeyFrameBase) SetInterpolationType(v uint64) { k.interpolationType = v }
func (k *KeyFrameBase) SetInterpolatorID(v uint32)    { k.interpolatorID = v }

// Seconds returns the frame converted to seconds by the owning animation.
func (k *KeyFrameBase) Seconds() float32 { return k.seconds }

// Interpolator returns the resolved cubic interpolator, or nil.
func (k *KeyFrameBase) Interpolator() *CubicInterpolator { return k.interpolator }

func (k *KeyFrameBase) computeSeconds(fps float32) {
	k.seconds = float32(k.frame) / fps
}

// OnAddedDirty resolves the interpolator. A cubic keyframe needs one.
func (k *KeyFrameBase) OnAddedDirty(ctx Context) StatusCode {
	k.interpolator = nil
	if k.interpolatorID == NoID {
		if k.interpolationType == InterpolationCubic {
			return StatusMissingObject
		}
		return StatusOk
	}
	obj := ctx.Resolve(k.interpolatorID)
	if obj == nil {
		return StatusMissingObject
	}
	ci, ok := obj.(*CubicInterpolator)
	if !ok {
		return StatusInvalidObject
	}
	k.interpolator = ci
	return StatusOk
}

func (k *KeyFrameBase) OnAddedClean(Context) StatusCode { return StatusOk }

// progress maps seconds between k and next to an eased 0..1 factor.
func (k *KeyFrameBase) progress(seconds float32, next KeyFrame) float32 {
	span := next.keyFrameBase().seconds - k.seconds
	if span <= 0 {
		return 1
	}
	f := (seconds - k.seconds) / span
	switch {
	case k.interpolationType == InterpolationCubic && k.interpolator != nil:
		return k.interpolator.Transform(f)
	case k.interpolationType >= InterpolationEase:
		if fn := EaseFunc(k.interpolationType); fn != nil {
			return fn(f, 0, 1, 1)
		}
	}
	return f
}

// KeyFrameDouble keys a float property.
type KeyFrameDouble struct {
	KeyFrameBase
	value float32
}

// NewKeyFrameDouble returns a float keyframe.
func NewKeyFrameDouble(frame uint64, value float32, interpolation uint64) *KeyFrameDouble {
	return &KeyFrameDouble{KeyFrameBase: newKeyFrameBase(frame, interpolation), value: value}
}

func (k *KeyFrameDouble) CoreType() TypeKey  { return TypeKeyFrameDouble }
func (k *KeyFrameDouble) Value() float32     { return k.value }
func (k *KeyFrameDouble) SetValue(v float32) { k.value = v }

func (k *KeyFrameDouble) Apply(target Object, key PropertyKey, mix float32) {
	Animate(target, key, FloatValue(k.value), mix)
}

func (k *KeyFrameDouble) ApplyInterpolation(target Object, key PropertyKey, seconds float32, next KeyFrame, mix float32) {
	to, ok := next.(*KeyFrameDouble)
	if !ok {
		k.Apply(target, key, mix)
		return
	}
	f := k.progress(seconds, next)
	Animate(target, key, FloatValue(k.value+(to.value-k.value)*f), mix)
}

// KeyFrameColor keys a color property. Colors blend per channel.
type KeyFrameColor struct {
	KeyFrameBase
	value uint32
}

// NewKeyFrameColor returns a color keyframe with an ARGB value.
func NewKeyFrameColor(frame uint64, argb uint32, interpolation uint64) *KeyFrameColor {
	return &KeyFrameColor{KeyFrameBase: newKeyFrameBase(frame, interpolation), value: argb}
}

func (k *KeyFrameColor) CoreType() TypeKey { return TypeKeyFrameColor }
func (k *KeyFrameColor) Value() uint32     { return k.value }
func (k *KeyFrameColor) SetValue(v uint32) { k.value = v }

func (k *KeyFrameColor) Apply(target Object, key PropertyKey, mix float32) {
	Animate(target, key, ARGBValue(k.value), mix)
}

func (k *KeyFrameColor) ApplyInterpolation(target Object, key PropertyKey, seconds float32, next KeyFrame, mix float32) {
	to, ok := next.(*KeyFrameColor)
	if !ok {
		k.Apply(target, key, mix)
		return
	}
	f := k.progress(seconds, next)
	c := ColorFromARGB(k.value).Lerp(ColorFromARGB(to.value), f)
	Animate(target, key, ColorValue(c), mix)
}

// KeyFrameID keys an object reference, such as a draw rules target. IDs do
// not interpolate.
type KeyFrameID struct {
	KeyFrameBase
	value uint32
}

// NewKeyFrameID returns an ID keyframe.
func NewKeyFrameID(frame uint64, id uint32) *KeyFrameID {
	return &KeyFrameID{KeyFrameBase: newKeyFrameBase(frame, InterpolationHold), value: id}
}

func (k *KeyFrameID) CoreType() TypeKey { return TypeKeyFrameID }
func (k *KeyFrameID) Value() uint32     { return k.value }
func (k *KeyFrameID) SetValue(v uint32) { k.value = v }

func (k *KeyFrameID) Apply(target Object, key PropertyKey, _ float32) {
	Animate(target, key, UintValue(uint64(k.value)), 1)
}

func (k *KeyFrameID) ApplyInterpolation(target Object, key PropertyKey, _ float32, _ KeyFrame, mix float32) {
	k.Apply(target, key, mix)
}
