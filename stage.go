package footlight

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// StageRenderer is the compositing backend specialized for the stage
// backdrop. Per-draw effect handling is suppressed; the backdrop's filter
// and ghost state live on the surface itself, the way a windowing layer
// styles a whole canvas rather than each draw.
type StageRenderer struct {
	*CompositeRenderer
	stage Drawable
	style surfaceStyle
}

// NewStageRenderer creates a stage renderer bound to the given backdrop
// object. The backdrop is drawn without sprite rotation or scaling; a Sprite
// holding the backdrop costumes works fine as the object.
func NewStageRenderer(cfg Config, stage Drawable) *StageRenderer {
	r := NewCompositeRenderer(cfg)
	r.suppressEffects = true
	return &StageRenderer{
		CompositeRenderer: r,
		stage:             stage,
		style:             surfaceStyle{opacity: 1},
	}
}

// DrawStage draws the backdrop, then refreshes the surface-level effect
// style: the filter is written only when it changed since the last call,
// opacity is rewritten every time.
func (r *StageRenderer) DrawStage() {
	r.drawObject(r.stage, false)
	e := r.stage.Effects()
	r.style.writeFilter(MakeEffectFilter(e))
	r.style.writeOpacity(GhostOpacity(e.Ghost))
}

// Filter returns the surface filter most recently applied by DrawStage.
func (r *StageRenderer) Filter() EffectFilter { return r.style.filter }

// Opacity returns the surface opacity most recently applied by DrawStage.
func (r *StageRenderer) Opacity() float64 { return r.style.opacity }

// Present composites the stage surface onto dst at its bounds origin with
// the persistent surface style applied.
func (r *StageRenderer) Present(dst draw.Image) {
	src := image.Image(r.target)
	sr := r.target.Rect
	var scratch *image.RGBA
	if !r.style.filter.IsZero() {
		scratch = r.filteredCopy(r.target, sr, r.style.filter)
		src = scratch
		sr = scratch.Rect
	}
	var opts *draw.Options
	if r.style.opacity < 1 {
		opts = &draw.Options{
			SrcMask: image.NewUniform(color.Alpha{A: uint8(r.style.opacity*255 + 0.5)}),
		}
	}
	draw.Copy(dst, dst.Bounds().Min, src, sr, draw.Over, opts)
	if scratch != nil {
		r.pool.release(scratch.Pix)
	}
}
