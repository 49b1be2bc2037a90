package footlight

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// CompositeRenderer is the CPU backend. It paints objects onto an in-memory
// RGBA surface through an affine transform stack, one save/restore frame per
// object. Effects apply per draw: ghost as a uniform source mask, brightness
// and hue through the shared color matrix.
type CompositeRenderer struct {
	cfg    Config
	target *image.RGBA

	// zoom converts logical stage units to device pixels: the Reset scale
	// times the configured global multiplier.
	zoom float64

	base    [6]float64
	current [6]float64
	stack   [][6]float64

	pool  bufferPool
	stats DrawStats

	// suppressEffects drops per-draw ghost and filter handling. The stage
	// variant sets it and applies effects at the surface level instead.
	suppressEffects bool
}

// NewCompositeRenderer creates a CPU compositing renderer with a surface at
// the base stage size. Call Reset when the surface scale changes.
func NewCompositeRenderer(cfg Config) *CompositeRenderer {
	r := &CompositeRenderer{cfg: cfg}
	r.Reset(1)
	return r
}

// Reset resizes the surface to scale times the configured global multiplier
// times the base stage dimensions, clears it to transparent, and rebuilds
// the painter's base transform so draws operate in logical units. Calling it
// twice with the same scale leaves the surface identical to calling it once;
// the backing image is only reallocated when the size actually changes.
func (r *CompositeRenderer) Reset(scale float64) {
	zoom := scale * r.cfg.scaleOrDefault()
	w := max(int(math.Round(zoom*StageWidth)), 1)
	h := max(int(math.Round(zoom*StageHeight)), 1)
	if r.target == nil || r.target.Rect.Dx() != w || r.target.Rect.Dy() != h {
		r.target = image.NewRGBA(image.Rect(0, 0, w, h))
	} else {
		clear(r.target.Pix)
	}
	r.zoom = zoom
	r.base = scaleAffine(identityTransform, zoom, zoom)
	r.current = r.base
	r.stack = r.stack[:0]
}

// Target returns the backing surface. The image is reused across Reset calls
// of the same size; copy it if it must survive the next draw.
func (r *CompositeRenderer) Target() *image.RGBA { return r.target }

// Stats returns a snapshot of the cumulative draw counters.
func (r *CompositeRenderer) Stats() DrawStats { return r.stats }

// --- Transform stack ---

func (r *CompositeRenderer) save() { r.stack = append(r.stack, r.current) }

func (r *CompositeRenderer) restore() {
	r.current = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *CompositeRenderer) concat(m [6]float64) {
	r.current = multiplyAffine(r.current, m)
}

// DrawChild draws one object through the sprite transform pipeline. Objects
// without a current costume are skipped silently.
func (r *CompositeRenderer) DrawChild(obj Drawable) {
	r.drawObject(obj, true)
}

// drawObject runs the shared draw path. The transform frame is restored on
// every exit, including the missing-costume return.
func (r *CompositeRenderer) drawObject(obj Drawable, sprite bool) {
	r.save()
	defer r.restore()

	c, ok := obj.Costume()
	if !ok {
		r.stats.Skipped++
		return
	}
	r.concat(drawTransform(obj, c, r.zoom, sprite))

	alpha := 1.0
	var filter EffectFilter
	if !r.suppressEffects {
		e := obj.Effects()
		alpha = GhostOpacity(e.Ghost)
		filter = MakeEffectFilter(e)
	}
	r.drawCostume(c, filter, alpha)
}

// drawCostume paints the costume's source rectangle through the current
// transform. A non-empty filter routes the pixels through a pooled scratch
// copy first.
func (r *CompositeRenderer) drawCostume(c Costume, filter EffectFilter, alpha float64) {
	sr := c.bounds()
	if sr.Empty() {
		return
	}

	src := image.Image(c.Image)
	var scratch *image.RGBA
	if !filter.IsZero() {
		scratch = r.filteredCopy(c.Image, sr, filter)
		src = scratch
		sr = scratch.Rect
		r.stats.Filtered++
	}

	// Source points map through the matrix from the rectangle's own origin,
	// so fold the min offset in first.
	m := translateAffine(r.current, -float64(sr.Min.X), -float64(sr.Min.Y))
	aff := f64.Aff3{m[0], m[2], m[4], m[1], m[3], m[5]}

	var opts *draw.Options
	if alpha < 1 {
		opts = &draw.Options{
			SrcMask: image.NewUniform(color.Alpha{A: uint8(alpha*255 + 0.5)}),
		}
	}
	draw.BiLinear.Transform(r.target, aff, src, sr, draw.Over, opts)
	r.stats.Drawn++

	if scratch != nil {
		r.pool.release(scratch.Pix)
	}
}

// filteredCopy copies the source rectangle into a pooled contiguous RGBA
// buffer and applies the filter's color matrix in place.
func (r *CompositeRenderer) filteredCopy(src image.Image, sr image.Rectangle, filter EffectFilter) *image.RGBA {
	w, h := sr.Dx(), sr.Dy()
	scratch := &image.RGBA{
		Pix:    r.pool.acquire(4 * w * h),
		Stride: 4 * w,
		Rect:   image.Rect(0, 0, w, h),
	}
	draw.Draw(scratch, scratch.Rect, src, sr.Min, draw.Src)
	applyColorMatrix(scratch.Pix, filter.ColorMatrix())
	return scratch
}

// DrawImage draws img with its top-left corner at (x, y) in logical stage
// units, scaled to the surface zoom but outside the object pipeline. Overlay
// layers such as pen output use this path.
func (r *CompositeRenderer) DrawImage(img image.Image, x, y float64) {
	if img == nil {
		return
	}
	sr := img.Bounds()
	if sr.Empty() {
		return
	}
	m := translateAffine(r.base, x, y)
	m = translateAffine(m, -float64(sr.Min.X), -float64(sr.Min.Y))
	aff := f64.Aff3{m[0], m[2], m[4], m[1], m[3], m[5]}
	draw.BiLinear.Transform(r.target, aff, img, sr, draw.Over, nil)
	r.stats.Drawn++
}
