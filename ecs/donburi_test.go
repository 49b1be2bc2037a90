package ecs

import (
	"image"
	"image/color"
	"testing"

	"github.com/phanxgames/footlight"

	"github.com/yohamta/donburi"
)

// recorder captures the order sprites are handed to the renderer.
type recorder struct {
	drawn []footlight.Drawable
}

func (r *recorder) Reset(scale float64)                     {}
func (r *recorder) DrawChild(obj footlight.Drawable)        { r.drawn = append(r.drawn, obj) }
func (r *recorder) DrawImage(img image.Image, x, y float64) {}

func addRenderable(w donburi.World, s *footlight.Sprite, layer int) {
	entity := w.Create(Renderable)
	Renderable.SetValue(w.Entry(entity), RenderableData{Sprite: s, Layer: layer})
}

func TestDrawWorld_LayerOrder(t *testing.T) {
	world := donburi.NewWorld()
	back := footlight.NewSprite()
	mid := footlight.NewSprite()
	front := footlight.NewSprite()
	addRenderable(world, front, 2)
	addRenderable(world, back, 0)
	addRenderable(world, mid, 1)

	rec := &recorder{}
	DrawWorld(world, rec)

	want := []footlight.Drawable{back, mid, front}
	if len(rec.drawn) != len(want) {
		t.Fatalf("drew %d sprites, want %d", len(rec.drawn), len(want))
	}
	for i, s := range want {
		if rec.drawn[i] != s {
			t.Errorf("draw %d out of layer order", i)
		}
	}
}

func TestDrawWorld_SkipsNilSprite(t *testing.T) {
	world := donburi.NewWorld()
	addRenderable(world, nil, 0)
	s := footlight.NewSprite()
	addRenderable(world, s, 1)

	rec := &recorder{}
	DrawWorld(world, rec)

	if len(rec.drawn) != 1 || rec.drawn[0] != s {
		t.Errorf("drew %d sprites, want only the non-nil one", len(rec.drawn))
	}
}

func TestDrawWorld_EmptyWorld(t *testing.T) {
	world := donburi.NewWorld()
	rec := &recorder{}
	DrawWorld(world, rec)
	if len(rec.drawn) != 0 {
		t.Errorf("drew %d sprites from an empty world", len(rec.drawn))
	}
}

func TestDrawWorld_CompositeRenderer(t *testing.T) {
	world := donburi.NewWorld()
	costume := footlight.BoxCostume(4, 4, color.RGBA{R: 255, A: 255})
	addRenderable(world, footlight.NewSprite(costume), 0)
	addRenderable(world, footlight.NewSprite(costume), 1)

	r := footlight.NewCompositeRenderer(footlight.Config{})
	DrawWorld(world, r)

	if st := r.Stats(); st.Drawn != 2 {
		t.Errorf("Drawn = %d, want 2", st.Drawn)
	}
}

func TestCompositeRenderer_ImplementsRenderer(t *testing.T) {
	var r footlight.Renderer = footlight.NewCompositeRenderer(footlight.Config{})
	_ = r // compile-time interface check
}
