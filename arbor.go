package arbor

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/hajimehoshi/ebiten/v2"
)

// NoID marks an unset object reference. File references are indices into the
// artboard object table, so the all-ones value never names a real object.
const NoID uint32 = ^uint32(0)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// The file format stores colors as 32-bit ARGB.
type Color struct {
	R, G, B, A float32
}

// Commonly used colors.
var (
	ColorWhite       = Color{1, 1, 1, 1}
	ColorBlack       = Color{0, 0, 0, 1}
	ColorTransparent = Color{}
)

// ColorFromARGB unpacks a 0xAARRGGBB value.
func ColorFromARGB(v uint32) Color {
	return Color{
		R: float32((v>>16)&0xff) / 255,
		G: float32((v>>8)&0xff) / 255,
		B: float32(v&0xff) / 255,
		A: float32((v>>24)&0xff) / 255,
	}
}

// ARGB packs the color into 0xAARRGGBB, rounding each channel.
func (c Color) ARGB() uint32 {
	return uint32(channel8(c.A))<<24 | uint32(channel8(c.R))<<16 |
		uint32(channel8(c.G))<<8 | uint32(channel8(c.B))
}

// Lerp blends c toward to by t (0 returns c, 1 returns to).
func (c Color) Lerp(to Color, t float32) Color {
	return Color{
		R: c.R + (to.R-c.R)*t,
		G: c.G + (to.G-c.G)*t,
		B: c.B + (to.B-c.B)*t,
		A: c.A + (to.A-c.A)*t,
	}
}

// WithOpacity returns c with its alpha multiplied by o.
func (c Color) WithOpacity(o float32) Color {
	c.A *= o
	return c
}

// toNRGBA converts to a non-premultiplied 8-bit color.
func (c Color) toNRGBA() color.NRGBA {
	return color.NRGBA{R: channel8(c.R), G: channel8(c.G), B: channel8(c.B), A: channel8(c.A)}
}

func channel8(v float32) uint8 {
	return uint8(math32.Round(clamp01(v) * 255))
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, control points and directions.
type Vec2 struct {
	X, Y float32
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Lerp returns the point t of the way from v to o.
func (v Vec2) Lerp(o Vec2, t float32) Vec2 {
	return Vec2{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float32 { return math32.Hypot(v.X, v.Y) }

// Distance returns the distance between v and o.
func (v Vec2) Distance(o Vec2) float32 { return o.Sub(v).Length() }

// Normalize returns v scaled to unit length, or the zero vector.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float32 { return v.X*o.X + v.Y*o.Y }

// Cross returns the z component of the 3D cross product of v and o.
func (v Vec2) Cross(o Vec2) float32 { return v.X*o.Y - v.Y*o.X }

// AABB is an axis-aligned bounding box. The coordinate system has its origin
// at the top-left, with Y increasing downward.
type AABB struct {
	MinX, MinY, MaxX, MaxY float32
}

// emptyAABB is the identity for Union.
var emptyAABB = AABB{
	MinX: math32.MaxFloat32, MinY: math32.MaxFloat32,
	MaxX: -math32.MaxFloat32, MaxY: -math32.MaxFloat32,
}

// Width returns the horizontal extent.
func (b AABB) Width() float32 { return b.MaxX - b.MinX }

// Height returns the vertical extent.
func (b AABB) Height() float32 { return b.MaxY - b.MinY }

// IsEmpty reports whether the box contains no points.
func (b AABB) IsEmpty() bool { return b.MaxX < b.MinX || b.MaxY < b.MinY }

// Contains reports whether the point p lies inside the box.
// Points on the edge are considered inside.
func (b AABB) Contains(p Vec2) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Expand grows the box to include p.
func (b AABB) Expand(p Vec2) AABB {
	b.MinX = min(b.MinX, p.X)
	b.MinY = min(b.MinY, p.Y)
	b.MaxX = max(b.MaxX, p.X)
	b.MaxY = max(b.MaxY, p.Y)
	return b
}

// Union returns the smallest box containing both b and o.
func (b AABB) Union(o AABB) AABB {
	if o.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return o
	}
	return AABB{min(b.MinX, o.MinX), min(b.MinY, o.MinY), max(b.MaxX, o.MaxX), max(b.MaxY, o.MaxY)}
}

// BlendMode selects a compositing operation. Values match the file format.
type BlendMode uint8

const (
	BlendSrcOver    BlendMode = 3  // source-over (standard alpha blending)
	BlendScreen     BlendMode = 14 // 1 - (1-src)*(1-dst); only brightens
	BlendOverlay    BlendMode = 15
	BlendDarken     BlendMode = 16 // per-channel minimum
	BlendLighten    BlendMode = 17 // per-channel maximum
	BlendColorDodge BlendMode = 18
	BlendColorBurn  BlendMode = 19
	BlendHardLight  BlendMode = 20
	BlendSoftLight  BlendMode = 21
	BlendDifference BlendMode = 22
	BlendExclusion  BlendMode = 23
	BlendMultiply   BlendMode = 24 // src * dst; only darkens
	BlendHue        BlendMode = 25
	BlendSaturation BlendMode = 26
	BlendColor      BlendMode = 27
	BlendLuminosity BlendMode = 28
)

var blendModeNames = map[BlendMode]string{
	BlendSrcOver: "srcOver", BlendScreen: "screen", BlendOverlay: "overlay",
	BlendDarken: "darken", BlendLighten: "lighten", BlendColorDodge: "colorDodge",
	BlendColorBurn: "colorBurn", BlendHardLight: "hardLight", BlendSoftLight: "softLight",
	BlendDifference: "difference", BlendExclusion: "exclusion", BlendMultiply: "multiply",
	BlendHue: "hue", BlendSaturation: "saturation", BlendColor: "color",
	BlendLuminosity: "luminosity",
}

func (b BlendMode) String() string {
	if s, ok := blendModeNames[b]; ok {
		return s
	}
	return "unknown"
}

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
// Separable modes ebiten cannot express with fixed-function blending fall
// back to source-over.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendMultiply:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
			BlendFactorSourceAlpha:      ebiten.BlendFactorDestinationAlpha,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceAlpha,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendScreen:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceColor,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendDarken:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOne,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationMin,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendLighten:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOne,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationMax,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	default:
		return ebiten.BlendSourceOver
	}
}

// FillRule selects how path winding decides inside-ness.
type FillRule uint8

const (
	FillRuleNonZero FillRule = iota
	FillRuleEvenOdd
)

func (f FillRule) String() string {
	if f == FillRuleEvenOdd {
		return "evenOdd"
	}
	return "nonZero"
}

// StrokeCap is the shape drawn at the open ends of a stroked path.
type StrokeCap uint8

const (
	StrokeCapButt StrokeCap = iota
	StrokeCapRound
	StrokeCapSquare
)

func (c StrokeCap) String() string {
	switch c {
	case StrokeCapRound:
		return "round"
	case StrokeCapSquare:
		return "square"
	default:
		return "butt"
	}
}

// StrokeJoin is the shape drawn where two stroked segments meet.
type StrokeJoin uint8

const (
	StrokeJoinMiter StrokeJoin = iota
	StrokeJoinRound
	StrokeJoinBevel
)

func (j StrokeJoin) String() string {
	switch j {
	case StrokeJoinRound:
		return "round"
	case StrokeJoinBevel:
		return "bevel"
	default:
		return "miter"
	}
}

// Loop is the playback mode of a linear animation.
type Loop uint8

const (
	LoopOneShot  Loop = iota // play once and hold the last frame
	LoopLoop                 // wrap back to the start
	LoopPingPong             // reverse direction at either end
)

func (l Loop) String() string {
	switch l {
	case LoopLoop:
		return "loop"
	case LoopPingPong:
		return "pingPong"
	default:
		return "oneShot"
	}
}

// Direction is the current playback direction of an animation instance.
type Direction uint8

const (
	Forwards Direction = iota
	Backwards
)

func (d Direction) String() string {
	if d == Backwards {
		return "backwards"
	}
	return "forwards"
}

// sign returns +1 for Forwards and -1 for Backwards.
func (d Direction) sign() float32 {
	if d == Backwards {
		return -1
	}
	return 1
}

// DrawTargetPlacement says where a draw target's captured drawables go
// relative to the target drawable.
type DrawTargetPlacement uint8

const (
	PlacementBefore DrawTargetPlacement = iota
	PlacementAfter
)

func (p DrawTargetPlacement) String() string {
	if p == PlacementAfter {
		return "after"
	}
	return "before"
}

// PathSpace is a bitset describing which coordinate space a paint wants its
// path in.
type PathSpace uint8

const (
	PathSpaceLocal PathSpace = 1 << iota
	PathSpaceWorld
	PathSpaceDifference
	PathSpaceClipping
)

// Has reports whether all bits of o are set in s.
func (s PathSpace) Has(o PathSpace) bool { return s&o == o }
