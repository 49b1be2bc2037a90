package footlight

// Base stage dimensions in logical units. Both backends map object positions
// into this space; Reset scales it to the surface's pixel size.
const (
	StageWidth  = 480
	StageHeight = 360
)

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Left returns the smallest X coordinate covered by the rectangle.
func (r Rect) Left() float64 { return r.X }

// Right returns the largest X coordinate covered by the rectangle.
func (r Rect) Right() float64 { return r.X + r.Width }

// Top returns the smallest Y coordinate covered by the rectangle.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the largest Y coordinate covered by the rectangle.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// RotationStyle selects how an object's direction affects its drawn
// orientation.
type RotationStyle uint8

const (
	RotationNormal    RotationStyle = iota // rotate by direction-90 degrees
	RotationLeftRight                      // horizontal flip when direction is negative, no rotation
	RotationNone                           // direction never affects orientation
)

// Effect identifies one graphic effect slot on an object.
type Effect uint8

const (
	EffectColor      Effect = iota // hue shift; a full cycle every 200 units
	EffectBrightness               // brightness offset in percentage points
	EffectGhost                    // translucency; 0 opaque, 100 invisible
	EffectFisheye                  // accepted but not rendered
	EffectWhirl                    // accepted but not rendered
	EffectPixelate                 // accepted but not rendered
	EffectMosaic                   // accepted but not rendered
)

// EffectSet holds an object's current graphic effect values. Values are
// unbounded caller input; renderers clamp internally where their filter
// primitives require it. The renderer only reacts to Color, Brightness, and
// Ghost — the remaining effects are carried for the object model but have no
// visual approximation here.
type EffectSet struct {
	Color      float64
	Brightness float64
	Ghost      float64
	Fisheye    float64
	Whirl      float64
	Pixelate   float64
	Mosaic     float64
}

// value returns a pointer to the field holding the given effect.
func (e *EffectSet) value(effect Effect) *float64 {
	switch effect {
	case EffectColor:
		return &e.Color
	case EffectBrightness:
		return &e.Brightness
	case EffectGhost:
		return &e.Ghost
	case EffectFisheye:
		return &e.Fisheye
	case EffectWhirl:
		return &e.Whirl
	case EffectPixelate:
		return &e.Pixelate
	case EffectMosaic:
		return &e.Mosaic
	default:
		panic("footlight: unknown effect")
	}
}

// Config carries caller-provided rendering configuration. It replaces any
// process-global state: two renderers with different configs can coexist.
type Config struct {
	// Scale is the global multiplier applied on top of the scale passed to
	// Reset by the compositing backend. Zero means 1 (no extra scaling).
	Scale float64
}

// scaleOrDefault returns the configured global scale, treating the zero
// value as 1.
func (c Config) scaleOrDefault() float64 {
	if c.Scale == 0 {
		return 1
	}
	return c.Scale
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
