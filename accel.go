package footlight

import (
	"fmt"
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// effectShaderSrc applies the brightness and hue color matrix on the GPU.
// Ebitengine uses premultiplied alpha; the shader un-premultiplies before the
// matrix, re-premultiplies after, then folds in the vertex alpha carrying the
// ghost effect. Mirrors applyColorMatrix; keep the two in sync.
const effectShaderSrc = `//kage:unit pixels
package main

var Matrix [20]float

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	c := imageSrc0At(src)
	// Un-premultiply alpha.
	if c.a > 0 {
		c.rgb /= c.a
	}
	// Apply 4x5 color matrix (row-major, offset in elements 4,9,14,19).
	r := Matrix[0]*c.r + Matrix[1]*c.g + Matrix[2]*c.b + Matrix[3]*c.a + Matrix[4]
	g := Matrix[5]*c.r + Matrix[6]*c.g + Matrix[7]*c.b + Matrix[8]*c.a + Matrix[9]
	b := Matrix[10]*c.r + Matrix[11]*c.g + Matrix[12]*c.b + Matrix[13]*c.a + Matrix[14]
	a := Matrix[15]*c.r + Matrix[16]*c.g + Matrix[17]*c.b + Matrix[18]*c.a + Matrix[19]
	// Clamp and re-premultiply.
	r = clamp(r, 0, 1)
	g = clamp(g, 0, 1)
	b = clamp(b, 0, 1)
	a = clamp(a, 0, 1)
	return vec4(r*a, g*a, b*a, a) * color.a
}
`

// AccelRenderer is the GPU backend. Each object becomes a textured quad whose
// four corners carry the object's full transform, submitted as two indexed
// triangles. Costume bitmaps are uploaded on first use and cached for the
// renderer's lifetime; eviction is the caller's concern.
type AccelRenderer struct {
	shader *ebiten.Shader
	target *ebiten.Image
	zoom   float64

	textures map[image.Image]*ebiten.Image
	overlay  *ebiten.Image

	verts []ebiten.Vertex
	inds  []uint32

	uniforms    map[string]any
	matrixF32   [20]float32 // persistent buffer to avoid per-frame slice escape
	matrixSlice []float32   // persistent slice header pointing into matrixF32
	shaderOp    ebiten.DrawTrianglesShaderOptions
	triOp       ebiten.DrawTrianglesOptions
	imgOp       ebiten.DrawImageOptions

	stats DrawStats
}

// NewAccelRenderer creates the GPU backend with a surface at the base stage
// size. The effect shader compiles here; a compile failure makes the backend
// unusable and is returned with the compiler's message.
func NewAccelRenderer() (*AccelRenderer, error) {
	shader, err := ebiten.NewShader([]byte(effectShaderSrc))
	if err != nil {
		return nil, fmt.Errorf("footlight: failed to compile effect shader: %w", err)
	}
	r := &AccelRenderer{
		shader:   shader,
		textures: make(map[image.Image]*ebiten.Image),
		uniforms: make(map[string]any, 1),
	}
	r.matrixSlice = r.matrixF32[:]
	r.uniforms["Matrix"] = r.matrixSlice
	r.shaderOp.Uniforms = r.uniforms
	r.triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	r.triOp.Filter = ebiten.FilterLinear
	r.Reset(1)
	return r, nil
}

// Reset resizes the surface to scale times the base stage dimensions, clears
// it to transparent, and stores the zoom used to place vertices. Safe to call
// on every resize; the surface is only reallocated when the size actually
// changes.
func (r *AccelRenderer) Reset(scale float64) {
	w := max(int(math.Round(scale*StageWidth)), 1)
	h := max(int(math.Round(scale*StageHeight)), 1)
	if r.target == nil || r.target.Bounds().Dx() != w || r.target.Bounds().Dy() != h {
		if r.target != nil {
			r.target.Deallocate()
		}
		r.target = ebiten.NewImage(w, h)
	} else {
		r.target.Clear()
	}
	r.zoom = scale
}

// Image returns the surface the backend draws into. The caller composites it
// into the frame; the image is reused across Reset calls of the same size.
func (r *AccelRenderer) Image() *ebiten.Image { return r.target }

// Stats returns a snapshot of the cumulative draw counters.
func (r *AccelRenderer) Stats() DrawStats { return r.stats }

// TextureCount reports how many costume bitmaps have been uploaded.
func (r *AccelRenderer) TextureCount() int { return len(r.textures) }

// texture returns the GPU texture for a costume bitmap, uploading it on
// first use. Sources that are already GPU images pass through untouched.
func (r *AccelRenderer) texture(src image.Image) *ebiten.Image {
	if img, ok := src.(*ebiten.Image); ok {
		return img
	}
	tex, ok := r.textures[src]
	if !ok {
		tex = ebiten.NewImageFromImage(src)
		r.textures[src] = tex
		r.stats.Uploads++
		debugf("uploaded %dx%d texture (%d cached)", tex.Bounds().Dx(), tex.Bounds().Dy(), len(r.textures))
	}
	return tex
}

// DrawChild draws one object as a textured quad. The corners carry the full
// object transform, so their axis-aligned extent matches RotatedBounds, and
// the texture coordinates cover the costume's source rectangle, sheet
// regions included. Objects without a current costume are skipped silently.
// The vertex buffer is refilled on every call; its contents do not persist.
func (r *AccelRenderer) DrawChild(obj Drawable) {
	c, ok := obj.Costume()
	if !ok {
		r.stats.Skipped++
		return
	}
	sr := c.bounds()
	if sr.Empty() {
		r.stats.Skipped++
		return
	}

	tex := r.texture(c.Image)
	// Texture coordinates live in the texture's own space. Uploaded CPU
	// images land with their bounds min at the origin.
	var off image.Point
	if _, direct := c.Image.(*ebiten.Image); !direct {
		off = c.Image.Bounds().Min
	}

	m := multiplyAffine(
		scaleAffine(identityTransform, r.zoom, r.zoom),
		drawTransform(obj, c, r.zoom, true),
	)

	w, h := costumeSize(c)
	lx := [4]float64{0, w, 0, w}
	ly := [4]float64{0, 0, h, h}

	sx0 := float32(sr.Min.X - off.X)
	sy0 := float32(sr.Min.Y - off.Y)
	sx1 := float32(sr.Max.X - off.X)
	sy1 := float32(sr.Max.Y - off.Y)
	sx := [4]float32{sx0, sx1, sx0, sx1}
	sy := [4]float32{sy0, sy0, sy1, sy1}

	e := obj.Effects()
	alpha := float32(GhostOpacity(e.Ghost))
	filter := MakeEffectFilter(e)

	r.verts = r.verts[:0]
	r.inds = r.inds[:0]
	for i := 0; i < 4; i++ {
		r.verts = append(r.verts, ebiten.Vertex{
			DstX:   float32(m[0]*lx[i] + m[2]*ly[i] + m[4]),
			DstY:   float32(m[1]*lx[i] + m[3]*ly[i] + m[5]),
			SrcX:   sx[i],
			SrcY:   sy[i],
			ColorR: alpha,
			ColorG: alpha,
			ColorB: alpha,
			ColorA: alpha,
		})
	}
	// Two triangles: TL-TR-BL, TR-BR-BL
	r.inds = append(r.inds, 0, 1, 2, 1, 3, 2)

	if filter.IsZero() {
		r.target.DrawTriangles32(r.verts, r.inds, tex, &r.triOp)
	} else {
		for i, v := range filter.ColorMatrix() {
			r.matrixF32[i] = float32(v)
		}
		r.shaderOp.Images[0] = tex
		r.target.DrawTrianglesShader32(r.verts, r.inds, r.shader, &r.shaderOp)
		r.stats.Filtered++
	}
	r.stats.Drawn++
}

// DrawImage draws img with its top-left corner at (x, y) in logical stage
// units, outside the object pipeline. Overlay bitmaps mutate between frames,
// so CPU sources are uploaded fresh on every call rather than cached by
// identity; the previous upload is released one call later, after its draw
// has flushed.
func (r *AccelRenderer) DrawImage(img image.Image, x, y float64) {
	if img == nil {
		return
	}
	src, direct := img.(*ebiten.Image)
	if !direct {
		if r.overlay != nil {
			r.overlay.Deallocate()
		}
		r.overlay = ebiten.NewImageFromImage(img)
		src = r.overlay
		r.stats.Uploads++
	}
	op := &r.imgOp
	op.GeoM.Reset()
	op.GeoM.Translate(x, y)
	op.GeoM.Scale(r.zoom, r.zoom)
	op.ColorScale.Reset()
	op.Filter = ebiten.FilterLinear
	r.target.DrawImage(src, op)
	r.stats.Drawn++
}

// Present composites the backend's surface onto dst at the origin with a
// surface-level style applied: opacity through the color scale, a non-zero
// filter through the effect shader.
func (r *AccelRenderer) Present(dst *ebiten.Image, filter EffectFilter, opacity float64) {
	if filter.IsZero() {
		op := &r.imgOp
		op.GeoM.Reset()
		op.Filter = ebiten.FilterLinear
		op.ColorScale.Reset()
		op.ColorScale.ScaleAlpha(float32(clamp01(opacity)))
		dst.DrawImage(r.target, op)
		return
	}

	b := r.target.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	alpha := float32(clamp01(opacity))
	r.verts = r.verts[:0]
	r.inds = r.inds[:0]
	lx := [4]float32{0, w, 0, w}
	ly := [4]float32{0, 0, h, h}
	for i := 0; i < 4; i++ {
		r.verts = append(r.verts, ebiten.Vertex{
			DstX:   lx[i],
			DstY:   ly[i],
			SrcX:   lx[i],
			SrcY:   ly[i],
			ColorR: alpha,
			ColorG: alpha,
			ColorB: alpha,
			ColorA: alpha,
		})
	}
	r.inds = append(r.inds, 0, 1, 2, 1, 3, 2)
	for i, v := range filter.ColorMatrix() {
		r.matrixF32[i] = float32(v)
	}
	r.shaderOp.Images[0] = r.target
	dst.DrawTrianglesShader32(r.verts, r.inds, r.shader, &r.shaderOp)
}

// Dispose releases the surface, the overlay upload and every cached texture.
// The renderer must not be used afterwards.
func (r *AccelRenderer) Dispose() {
	if r.target != nil {
		r.target.Deallocate()
		r.target = nil
	}
	if r.overlay != nil {
		r.overlay.Deallocate()
		r.overlay = nil
	}
	for _, tex := range r.textures {
		tex.Deallocate()
	}
	clear(r.textures)
}
