package arbor

// DrawCall is one recorded Renderer.Draw invocation.
type DrawCall struct {
	Path      *CommandPath
	Transform Mat2D
	Paint     RenderPaint
}

// Recorder is a Renderer that keeps every draw call. Useful for tests and
// tools that inspect the draw list.
type Recorder struct {
	Calls []DrawCall
}

// Draw records the call. The paint is copied.
func (r *Recorder) Draw(path *CommandPath, transform Mat2D, paint *RenderPaint) {
	r.Calls = append(r.Calls, DrawCall{Path: path, Transform: transform, Paint: *paint})
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() { r.Calls = r.Calls[:0] }
