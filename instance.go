package arbor

import "github.com/chewxy/math32"

// LinearAnimationInstance is a playhead over a shared LinearAnimation.
// Many instances may read one animation; each instance belongs to a single
// frame driver.
type LinearAnimationInstance struct {
	animation *LinearAnimation
	time      float32
	direction Direction
	didLoop   bool
}

// NewLinearAnimationInstance returns an instance positioned at the start of
// the work area when one is enabled, else at zero.
func NewLinearAnimationInstance(a *LinearAnimation) *LinearAnimationInstance {
	if a == nil {
		panic("arbor: NewLinearAnimationInstance called with nil animation")
	}
	inst := &LinearAnimationInstance{animation: a}
	inst.Reset()
	return inst
}

// Animation returns the animation being played.
func (li *LinearAnimationInstance) Animation() *LinearAnimation { return li.animation }

// Time returns the playhead in seconds.
func (li *LinearAnimationInstance) Time() float32 { return li.time }

// Direction returns the current playback direction.
func (li *LinearAnimationInstance) Direction() Direction { return li.direction }

// DidLoop reports whether the last Advance wrapped, bounced or clamped.
func (li *LinearAnimationInstance) DidLoop() bool { return li.didLoop }

// SetTime moves the playhead and resets the direction to Forwards.
func (li *LinearAnimationInstance) SetTime(seconds float32) {
	if seconds == li.time {
		return
	}
	li.time = seconds
	li.direction = Forwards
}

// Reset rewinds to the initial position and direction.
func (li *LinearAnimationInstance) Reset() {
	li.time = 0
	if li.animation.enableWorkArea {
		li.time = float32(li.animation.workStart) / li.animation.framesPerSecond()
	}
	li.direction = Forwards
	li.didLoop = false
}

// Advance moves the playhead by elapsed seconds scaled by the animation
// speed and applies the loop mode. It returns false once a one-shot
// animation has reached its end.
//
// A negative speed or elapsed plays in reverse: a one-shot animation clamps
// at the start and reports false there, and a looping one wraps from the
// start back to the end.
func (li *LinearAnimationInstance) Advance(elapsed float32) bool {
	a := li.animation
	step := elapsed * a.speed * li.direction.sign()
	li.time += step

	fps := a.framesPerSecond()
	frames := li.time * fps
	start, end := a.StartFrame(), a.EndFrame()
	rangeFrames := end - start

	li.didLoop = false
	keepGoing := true

	switch a.Loop() {
	case LoopOneShot:
		switch {
		case frames > end:
			keepGoing = false
			frames = end
			li.time = frames / fps
			li.didLoop = true
		case frames < start && step < 0:
			keepGoing = false
			frames = start
			li.time = frames / fps
			li.didLoop = true
		}
	case LoopLoop:
		if rangeFrames <= 0 {
			li.time = start / fps
			break
		}
		switch {
		case frames >= end:
			frames = start + math32.Mod(frames-start, rangeFrames)
			li.time = frames / fps
			li.didLoop = true
		case frames < start && step < 0:
			frames = end - math32.Mod(start-frames, rangeFrames)
			li.time = frames / fps
			li.didLoop = true
		}
	case LoopPingPong:
		if rangeFrames <= 0 {
			li.time = start / fps
			break
		}
		for {
			if li.direction == Forwards && frames >= end {
				li.direction = Backwards
				frames = end + (end - frames)
			} else if li.direction == Backwards && frames < start {
				li.direction = Forwards
				frames = start + (start - frames)
			} else {
				break
			}
			li.time = frames / fps
			li.didLoop = true
		}
	}
	return keepGoing
}

// Apply writes the animation's values at the playhead into ab.
func (li *LinearAnimationInstance) Apply(ab *Artboard, mix float32) {
	li.animation.Apply(ab, li.time, mix)
}
