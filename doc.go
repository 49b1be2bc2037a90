// Package footlight renders a stage of 2D sprites to a drawing surface
// through two interchangeable backends built on [Ebitengine] and
// [golang.org/x/image].
//
// The package models the renderer core of a sprite stage: a fixed 480×360
// logical coordinate space, drawable objects with a costume, position,
// direction, scale, rotation style, and visual effects, and a background
// "stage" object with surface-level filter state. It does not own the
// window, the frame loop, or the object model that mutates sprites between
// frames — those belong to the caller.
//
// # Backends
//
// [AccelRenderer] rasterizes each object as a textured two-triangle quad on
// an *ebiten.Image, with a Kage color-matrix shader approximating the
// brightness and color effects and a lazy texture cache keyed by costume
// bitmap. [CompositeRenderer] paints into an *image.RGBA with an explicit
// transform stack and affine image transforms, applying the same color
// matrix on the CPU. Both implement [Renderer]:
//
//	r, err := footlight.NewAccelRenderer()
//	if err != nil {
//		log.Fatal(err)
//	}
//	r.Reset(1)                    // 480×360 surface
//	for _, obj := range visible { // back to front
//		r.DrawChild(obj)
//	}
//
// [StageRenderer] is the compositing variant for the background object: it
// never applies per-draw effects and instead maintains the surface's
// persistent filter and opacity style, refreshed by [StageRenderer.DrawStage].
//
// # Effects
//
// Sprite effects are approximations, not exact blends. Brightness becomes a
// percentage multiplier, the color effect becomes a hue rotation (a full
// cycle every 200 units), and ghost becomes compositing alpha. Ghost never
// enters the filter descriptor; see [MakeEffectFilter] and [GhostOpacity].
//
// # Extras
//
// [Sprite] is a ready-made drawable for tests and examples, [CostumeSheet]
// loads packed costume rectangles from TexturePacker-style JSON, and
// [TweenGroup] animates sprite fields over time via [gween]. The ecs
// subdirectory bridges a [Donburi] world to a renderer.
//
// All types are single-threaded: one renderer instance must only ever be
// used from the caller's render loop.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package footlight
