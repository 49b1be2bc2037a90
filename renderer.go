package footlight

import (
	"image"
	"math"
)

// Renderer is the capability surface shared by both backends. A frame-loop
// caller constructs a backend against a concrete surface, invokes Reset once
// per surface-size change, then draws each visible object back to front with
// DrawChild. Renderers are single-threaded; all draw operations on one
// instance must come from the same goroutine.
type Renderer interface {
	// Reset resizes the target surface to scale times the base stage
	// dimensions, clears it to transparent, and re-establishes draw state.
	// Safe to call repeatedly with the same scale.
	Reset(scale float64)

	// DrawChild draws one object through the full transform pipeline.
	// Objects without a current costume are skipped silently.
	DrawChild(obj Drawable)

	// DrawImage draws a raw image at a fixed surface position in logical
	// stage units, bypassing the object transform pipeline. Used for
	// overlay content such as pen layers or debug output.
	DrawImage(img image.Image, x, y float64)
}

// Drawable is the read-only view of a stage object consumed by the draw
// operations. The object model owning position, heading, costume and effect
// state lives outside the renderer; Sprite is the built-in implementation.
type Drawable interface {
	// Position returns the object's stage position: origin at the stage
	// center, x growing right, y growing up.
	Position() (x, y float64)

	// Direction returns the heading in degrees, 90 pointing right.
	Direction() float64

	// RotationStyle reports how the heading affects drawn orientation.
	RotationStyle() RotationStyle

	// Scale returns the uniform object scale factor, 1 meaning natural
	// size.
	Scale() float64

	// Costume returns the current costume. ok is false when the object
	// has no usable costume; draw operations skip the object in that
	// case.
	Costume() (Costume, bool)

	// Effects returns the object's current effect values. Values are
	// unbounded inputs; the renderer clamps internally where its filter
	// primitives require it.
	Effects() EffectSet
}

// Costume is a bitmap plus the per-image metadata the draw pipeline needs:
// a resolution scale and the rotation origin anchoring the image to the
// object's position.
type Costume struct {
	// Image holds the decoded bitmap. A nil Image makes the costume
	// unusable; objects wearing it are skipped.
	Image image.Image

	// Region selects the sub-rectangle of Image holding the costume
	// pixels, for costumes packed into a shared sheet. The zero rectangle
	// means the full image.
	Region image.Rectangle

	// Scale converts costume pixels to stage units. A costume authored at
	// double resolution carries 0.5. Zero is treated as 1.
	Scale float64

	// CenterX and CenterY are the rotation origin in costume pixels. The
	// origin lands on the object's stage position, and rotation happens
	// around it.
	CenterX, CenterY float64
}

// bounds returns the pixel rectangle holding the costume: Region when set,
// the full image bounds otherwise.
func (c Costume) bounds() image.Rectangle {
	if c.Image == nil {
		return image.Rectangle{}
	}
	if c.Region.Empty() {
		return c.Image.Bounds()
	}
	return c.Region
}

func (c Costume) scaleOrDefault() float64 {
	if c.Scale == 0 {
		return 1
	}
	return c.Scale
}

// costumeSize returns the costume's pixel dimensions.
func costumeSize(c Costume) (w, h float64) {
	b := c.bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// snapToGrid snaps a logical coordinate to the nearest device pixel at the
// given zoom, returning it in logical units. Keeps sprite edges from
// shimmering across sub-pixel positions.
func snapToGrid(v, zoom float64) float64 {
	return math.Round(v*zoom) / zoom
}

// drawTransform builds the local-to-surface matrix for one object, in the
// strict order both backends share:
//
//  1. Translate to the object's surface position (stage position recentered
//     to the top-left origin, y flipped), snapped to the device grid when
//     snapZoom > 0.
//  2. For sprites only: heading per the rotation style, then the object
//     scale. The stage never rotates or scales this way.
//  3. Costume scale, then the shift that puts the rotation origin at the
//     transformed position.
//
// The matrix maps costume pixels to logical surface coordinates (origin at
// the stage's top-left corner, y growing down).
func drawTransform(obj Drawable, c Costume, snapZoom float64, sprite bool) [6]float64 {
	x, y := obj.Position()
	sx := x + StageWidth/2
	sy := StageHeight/2 - y
	if snapZoom > 0 {
		sx = snapToGrid(sx, snapZoom)
		sy = snapToGrid(sy, snapZoom)
	}
	m := translateAffine(identityTransform, sx, sy)

	if sprite {
		switch obj.RotationStyle() {
		case RotationNormal:
			if d := obj.Direction(); d != 90 {
				m = rotateAffine(m, (d-90)*math.Pi/180)
			}
		case RotationLeftRight:
			if obj.Direction() < 0 {
				m = scaleAffine(m, -1, 1)
			}
		}
		if s := obj.Scale(); s != 1 {
			m = scaleAffine(m, s, s)
		}
	}

	if cs := c.scaleOrDefault(); cs != 1 {
		m = scaleAffine(m, cs, cs)
	}
	return translateAffine(m, -c.CenterX, -c.CenterY)
}

// RotatedBounds returns the axis-aligned bounding box of an object's
// footprint after its full transform applies, in logical surface units
// (origin at the stage's top-left, y down). The box bounds the rotated
// footprint, not the unrotated image rectangle. ok is false when the object
// has no current costume.
func RotatedBounds(obj Drawable) (bounds Rect, ok bool) {
	c, ok := obj.Costume()
	if !ok {
		return Rect{}, false
	}
	w, h := costumeSize(c)
	return transformedAABB(drawTransform(obj, c, 0, true), w, h), true
}
