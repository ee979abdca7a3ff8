package arbor

// Animation is the named base of every animation asset.
type Animation struct {
	name string
}

func (a *Animation) CoreType() TypeKey { return TypeAnimation }

// Name returns the animation name.
func (a *Animation) Name() string { return a.name }

// SetName sets the animation name.
func (a *Animation) SetName(name string) { a.name = name }

func (a *Animation) OnAddedDirty(Context) StatusCode { return StatusOk }
func (a *Animation) OnAddedClean(Context) StatusCode { return StatusOk }

// LinearAnimation is an immutable timeline: keyed objects sampled at a time
// in seconds. Frame counts are converted to seconds with fps. Playback state
// lives in LinearAnimationInstance so one asset can drive many players.
type LinearAnimation struct {
	Animation

	fps            uint64
	duration       uint64
	speed          float32
	loopValue      uint64
	workStart      uint32
	workEnd        uint32
	enableWorkArea bool

	keyedObjects []*KeyedObject
}

// NewLinearAnimation returns a one-shot animation at 60 fps lasting
// duration frames.
func NewLinearAnimation(name string, duration uint64) *LinearAnimation {
	a := newLinearAnimation()
	a.name = name
	a.duration = duration
	return a
}

func newLinearAnimation() *LinearAnimation {
	return &LinearAnimation{
		fps:       60,
		duration:  60,
		speed:     1,
		workStart: NoID,
		workEnd:   NoID,
	}
}

func (a *LinearAnimation) CoreType() TypeKey { return TypeLinearAnimation }

func (a *LinearAnimation) Fps() uint64          { return a.fps }
func (a *LinearAnimation) Duration() uint64     { return a.duration }
func (a *LinearAnimation) Speed() float32       { return a.speed }
func (a *LinearAnimation) LoopValue() uint64    { return a.loopValue }
func (a *LinearAnimation) Loop() Loop           { return Loop(a.loopValue) }
func (a *LinearAnimation) WorkStart() uint32    { return a.workStart }
func (a *LinearAnimation) WorkEnd() uint32      { return a.workEnd }
func (a *LinearAnimation) EnableWorkArea() bool { return a.enableWorkArea }

func (a *LinearAnimation) SetFps(v uint64)          { a.fps = v }
func (a *LinearAnimation) SetDuration(v uint64)     { a.duration = v }
func (a *LinearAnimation) SetSpeed(v float32)       { a.speed = v }
func (a *LinearAnimation) SetLoopValue(v uint64)    { a.loopValue = v }
func (a *LinearAnimation) SetLoop(l Loop)           { a.loopValue = uint64(l) }
func (a *LinearAnimation) SetWorkStart(v uint32)    { a.workStart = v }
func (a *LinearAnimation) SetWorkEnd(v uint32)      { a.workEnd = v }
func (a *LinearAnimation) SetEnableWorkArea(v bool) { a.enableWorkArea = v }

// framesPerSecond returns fps as a float, treating 0 as 60.
func (a *LinearAnimation) framesPerSecond() float32 {
	if a.fps == 0 {
		return 60
	}
	return float32(a.fps)
}

// StartFrame returns the first frame of the playable range.
func (a *LinearAnimation) StartFrame() float32 {
	if a.enableWorkArea {
		return float32(a.workStart)
	}
	return 0
}

// EndFrame returns the last frame of the playable range.
func (a *LinearAnimation) EndFrame() float32 {
	if a.enableWorkArea {
		return float32(a.workEnd)
	}
	return float32(a.duration)
}

// StartSeconds returns the start of the playable range in seconds.
func (a *LinearAnimation) StartSeconds() float32 { return a.StartFrame() / a.framesPerSecond() }

// EndSeconds returns the end of the playable range in seconds.
func (a *LinearAnimation) EndSeconds() float32 { return a.EndFrame() / a.framesPerSecond() }

// DurationSeconds returns the length of the playable range in seconds.
func (a *LinearAnimation) DurationSeconds() float32 { return a.EndSeconds() - a.StartSeconds() }

// KeyedObjects returns the animated targets.
func (a *LinearAnimation) KeyedObjects() []*KeyedObject { return a.keyedObjects }

// AddKeyedObject appends a keyed object.
func (a *LinearAnimation) AddKeyedObject(ko *KeyedObject) {
	if ko == nil {
		panic("arbor: AddKeyedObject called with nil")
	}
	a.keyedObjects = append(a.keyedObjects, ko)
}

// OnAddedDirty validates every keyed object against ctx and converts
// keyframe frames to seconds.
func (a *LinearAnimation) OnAddedDirty(ctx Context) StatusCode {
	fps := a.framesPerSecond()
	for _, ko := range a.keyedObjects {
		if code := ko.OnAddedDirty(ctx); code != StatusOk {
			return code
		}
		for _, kp := range ko.properties {
			for _, kf := range kp.keyFrames {
				kf.keyFrameBase().computeSeconds(fps)
			}
		}
	}
	return StatusOk
}

// OnAddedClean runs the clean phase of every keyed object.
func (a *LinearAnimation) OnAddedClean(ctx Context) StatusCode {
	for _, ko := range a.keyedObjects {
		if code := ko.OnAddedClean(ctx); code != StatusOk {
			return code
		}
	}
	return StatusOk
}

// Apply writes the values every keyed property holds at seconds into ab,
// blended with the current values by mix. Targets that do not resolve are
// skipped.
func (a *LinearAnimation) Apply(ab *Artboard, seconds, mix float32) {
	for _, ko := range a.keyedObjects {
		ko.Apply(ab, seconds, mix)
	}
}
