package arbor

import "github.com/chewxy/math32"

const (
	cubicSamples          = 11
	cubicSampleStep       = 1.0 / (cubicSamples - 1)
	newtonIterations      = 4
	newtonMinSlope        = 0.001
	subdivisionPrecision  = 0.0000001
	subdivisionIterations = 10
)

// CubicInterpolator eases keyframes along a cubic bezier from (0,0) to
// (1,1) with control points (x1,y1) and (x2,y2). It lives in the artboard
// object table and is referenced by keyframes through interpolatorId.
type CubicInterpolator struct {
	x1, y1, x2, y2 float32
	samples        [cubicSamples]float32
}

// NewCubicInterpolator returns an interpolator with the given control points.
func NewCubicInterpolator(x1, y1, x2, y2 float32) *CubicInterpolator {
	c := &CubicInterpolator{x1: x1, y1: y1, x2: x2, y2: y2}
	c.computeSamples()
	return c
}

func newDefaultCubicInterpolator() *CubicInterpolator {
	return NewCubicInterpolator(0.42, 0, 0.58, 1)
}

func (c *CubicInterpolator) CoreType() TypeKey { return TypeCubicInterpolator }

func (c *CubicInterpolator) X1() float32 { return c.x1 }
func (c *CubicInterpolator) Y1() float32 { return c.y1 }
func (c *CubicInterpolator) X2() float32 { return c.x2 }
func (c *CubicInterpolator) Y2() float32 { return c.y2 }

func (c *CubicInterpolator) SetX1(v float32) { c.x1 = v; c.computeSamples() }
func (c *CubicInterpolator) SetY1(v float32) { c.y1 = v }
func (c *CubicInterpolator) SetX2(v float32) { c.x2 = v; c.computeSamples() }
func (c *CubicInterpolator) SetY2(v float32) { c.y2 = v }

// OnAddedDirty rebuilds the sample table.
func (c *CubicInterpolator) OnAddedDirty(Context) StatusCode {
	c.computeSamples()
	return StatusOk
}

func (c *CubicInterpolator) OnAddedClean(Context) StatusCode { return StatusOk }

func (c *CubicInterpolator) computeSamples() {
	for i := range c.samples {
		c.samples[i] = calcBezier(float32(i)*cubicSampleStep, c.x1, c.x2)
	}
}

// Transform maps a linear factor in [0,1] through the curve.
func (c *CubicInterpolator) Transform(f float32) float32 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 1
	}
	return calcBezier(c.tForX(f), c.y1, c.y2)
}

// tForX solves the curve's x polynomial for t: Newton-Raphson from a
// sampled guess, falling back to bisection on flat slopes.
func (c *CubicInterpolator) tForX(x float32) float32 {
	var start float32
	i := 1
	for ; i < cubicSamples-1 && c.samples[i] <= x; i++ {
		start += cubicSampleStep
	}
	i--

	dist := (x - c.samples[i]) / (c.samples[i+1] - c.samples[i])
	guess := start + dist*cubicSampleStep

	slope := bezierSlope(guess, c.x1, c.x2)
	switch {
	case slope >= newtonMinSlope:
		for range newtonIterations {
			s := bezierSlope(guess, c.x1, c.x2)
			if s == 0 {
				break
			}
			guess -= (calcBezier(guess, c.x1, c.x2) - x) / s
		}
		return guess
	case slope == 0:
		return guess
	default:
		return binarySubdivide(x, start, start+cubicSampleStep, c.x1, c.x2)
	}
}

func binarySubdivide(x, a, b, x1, x2 float32) float32 {
	var cur, t float32
	for i := 0; i < subdivisionIterations; i++ {
		t = a + (b-a)/2
		cur = calcBezier(t, x1, x2) - x
		if cur > 0 {
			b = t
		} else {
			a = t
		}
		if math32.Abs(cur) <= subdivisionPrecision {
			break
		}
	}
	return t
}

// calcBezier evaluates one axis of the curve at t.
func calcBezier(t, a1, a2 float32) float32 {
	return ((bezA(a1, a2)*t+bezB(a1, a2))*t + bezC(a1)) * t
}

func bezierSlope(t, a1, a2 float32) float32 {
	return 3*bezA(a1, a2)*t*t + 2*bezB(a1, a2)*t + bezC(a1)
}

func bezA(a1, a2 float32) float32 { return 1 - 3*a2 + 3*a1 }
func bezB(a1, a2 float32) float32 { return 3*a2 - 6*a1 }
func bezC(a1 float32) float32     { return 3 * a1 }
