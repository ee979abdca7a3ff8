package arbor

import "slices"

// KeyedObject animates the properties of one artboard object.
type KeyedObject struct {
	objectID   uint32
	properties []*KeyedProperty
}

// NewKeyedObject returns a keyed object targeting objectID.
func NewKeyedObject(objectID uint32) *KeyedObject {
	return &KeyedObject{objectID: objectID}
}

func (ko *KeyedObject) CoreType() TypeKey { return TypeKeyedObject }

// ObjectID returns the animated object's ID.
func (ko *KeyedObject) ObjectID() uint32 { return ko.objectID }

// SetObjectID retargets the keyed object.
func (ko *KeyedObject) SetObjectID(id uint32) { ko.objectID = id }

// KeyedProperties returns the animated properties.
func (ko *KeyedObject) KeyedProperties() []*KeyedProperty { return ko.properties }

// AddKeyedProperty appends kp.
func (ko *KeyedObject) AddKeyedProperty(kp *KeyedProperty) {
	if kp == nil {
		panic("arbor: AddKeyedProperty called with nil")
	}
	kp.owner = ko
	ko.properties = append(ko.properties, kp)
}

// OnAddedDirty requires the target to resolve and every keyed property to
// exist on it.
func (ko *KeyedObject) OnAddedDirty(ctx Context) StatusCode {
	target := ctx.Resolve(ko.objectID)
	if target == nil {
		return StatusMissingObject
	}
	for _, kp := range ko.properties {
		if code := kp.validate(target); code != StatusOk {
			return code
		}
		for _, kf := range kp.keyFrames {
			if code := kf.OnAddedDirty(ctx); code != StatusOk {
				return code
			}
		}
	}
	return StatusOk
}

func (ko *KeyedObject) OnAddedClean(Context) StatusCode { return StatusOk }

// Apply samples every keyed property at seconds and animates the target.
// An unresolved target is skipped.
func (ko *KeyedObject) Apply(ab *Artboard, seconds, mix float32) {
	target := ab.Resolve(ko.objectID)
	if target == nil {
		return
	}
	for _, kp := range ko.properties {
		kp.Apply(target, seconds, mix)
	}
}

// KeyedProperty holds the ordered keyframes of one property.
type KeyedProperty struct {
	propertyKey PropertyKey
	keyFrames   []KeyFrame
	owner       *KeyedObject
}

// NewKeyedProperty returns a keyed property animating key.
func NewKeyedProperty(key PropertyKey) *KeyedProperty {
	return &KeyedProperty{propertyKey: key}
}

func (kp *KeyedProperty) CoreType() TypeKey { return TypeKeyedProperty }

// PropertyKey returns the animated property key.
func (kp *KeyedProperty) PropertyKey() PropertyKey { return kp.propertyKey }

// SetPropertyKey changes the animated property key.
func (kp *KeyedProperty) SetPropertyKey(key PropertyKey) { kp.propertyKey = key }

// KeyFrames returns the keyframes in time order.
func (kp *KeyedProperty) KeyFrames() []KeyFrame { return kp.keyFrames }

// AddKeyFrame appends kf. Keyframes must be added in time order.
func (kp *KeyedProperty) AddKeyFrame(kf KeyFrame) {
	if kf == nil {
		panic("arbor: AddKeyFrame called with nil")
	}
	kp.keyFrames = append(kp.keyFrames, kf)
}

// OnAddedDirty validates the key against the owner's target when known.
func (kp *KeyedProperty) OnAddedDirty(ctx Context) StatusCode {
	if kp.owner == nil {
		return StatusOk
	}
	target := ctx.Resolve(kp.owner.objectID)
	if target == nil {
		return StatusMissingObject
	}
	return kp.validate(target)
}

func (kp *KeyedProperty) OnAddedClean(Context) StatusCode { return StatusOk }

func (kp *KeyedProperty) validate(target Object) StatusCode {
	if _, ok := PropertyOf(target, kp.propertyKey); !ok {
		return StatusInvalidObject
	}
	return StatusOk
}

// closestFrameIndex returns the index of the first keyframe at or after
// seconds, or len(keyFrames) when seconds is past the last one.
func (kp *KeyedProperty) closestFrameIndex(seconds float32) int {
	idx, _ := slices.BinarySearchFunc(kp.keyFrames, seconds, func(kf KeyFrame, s float32) int {
		switch t := kf.keyFrameBase().seconds; {
		case t < s:
			return -1
		case t > s:
			return 1
		default:
			return 0
		}
	})
	return idx
}

// Apply animates target's property to its value at seconds. Before the
// first keyframe the first value holds; after the last, the last holds.
func (kp *KeyedProperty) Apply(target Object, seconds, mix float32) {
	n := len(kp.keyFrames)
	if n == 0 {
		return
	}
	idx := kp.closestFrameIndex(seconds)
	switch {
	case idx == 0:
		kp.keyFrames[0].Apply(target, kp.propertyKey, mix)
	case idx < n:
		from, to := kp.keyFrames[idx-1], kp.keyFrames[idx]
		if seconds == to.keyFrameBase().seconds {
			to.Apply(target, kp.propertyKey, mix)
		} else if from.keyFrameBase().interpolationType == InterpolationHold {
			from.Apply(target, kp.propertyKey, mix)
		} else {
			from.ApplyInterpolation(target, kp.propertyKey, seconds, to, mix)
		}
	default:
		kp.keyFrames[n-1].Apply(target, kp.propertyKey, mix)
	}
}
