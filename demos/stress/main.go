// stress spawns five thousand sprites that rotate, scale, fade, and bounce
// around the stage simultaneously, all through the accelerated backend. The
// sprites share four costume bitmaps, so the texture cache stays at four
// uploads; a stats overlay reports the per-frame draw counters.
package main

import (
	"image/color"
	"log"
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/footlight"
)

const (
	windowTitle = "Footlight — Stress Demo"
	screenW     = 960
	screenH     = 720
	count       = 5_000
)

type mover struct {
	sprite    *footlight.Sprite
	dx, dy    float64
	turnSpeed float64
	scaleBase float64
	scaleAmp  float64
	phase     float64
}

type game struct {
	renderer *footlight.AccelRenderer
	movers   []mover
	overlay  *footlight.StatsOverlay
	elapsed  float64
}

func (g *game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	g.elapsed += dt

	for i := range g.movers {
		m := &g.movers[i]
		s := m.sprite

		x, y := s.Position()
		x += m.dx
		y += m.dy
		if x < -footlight.StageWidth/2 || x > footlight.StageWidth/2 {
			m.dx = -m.dx
		}
		if y < -footlight.StageHeight/2 || y > footlight.StageHeight/2 {
			m.dy = -m.dy
		}
		s.SetPosition(x, y)
		s.SetDirection(s.Direction() + m.turnSpeed)
		s.SetScale(m.scaleBase + m.scaleAmp*math.Sin(g.elapsed*2+m.phase))
		s.SetEffect(footlight.EffectGhost, 20+20*math.Sin(g.elapsed+m.phase))
	}

	g.overlay.Update(dt)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	r := g.renderer
	r.Reset(2)
	for i := range g.movers {
		r.DrawChild(g.movers[i].sprite)
	}
	r.DrawImage(g.overlay.Image(), 4, 4)
	screen.DrawImage(r.Image(), nil)
}

func (g *game) Layout(_, _ int) (int, int) {
	return screenW, screenH
}

func main() {
	renderer, err := footlight.NewAccelRenderer()
	if err != nil {
		log.Fatal(err)
	}
	renderer.Reset(2)

	costumes := []footlight.Costume{
		footlight.CircleCostume(8, color.RGBA{R: 255, G: 120, B: 120, A: 255}),
		footlight.CircleCostume(8, color.RGBA{R: 120, G: 255, B: 140, A: 255}),
		footlight.CircleCostume(8, color.RGBA{R: 130, G: 170, B: 255, A: 255}),
		footlight.BoxCostume(12, 12, color.RGBA{R: 250, G: 220, B: 90, A: 255}),
	}

	movers := make([]mover, count)
	for i := range movers {
		s := footlight.NewSprite(costumes[i%len(costumes)])
		s.SetPosition(
			(rand.Float64()-0.5)*footlight.StageWidth,
			(rand.Float64()-0.5)*footlight.StageHeight,
		)
		s.SetDirection(rand.Float64() * 360)
		if i%8 == 0 {
			// A slice of the population exercises the shader path.
			s.SetEffect(footlight.EffectBrightness, 30)
		}
		movers[i] = mover{
			sprite:    s,
			dx:        (rand.Float64() - 0.5) * 4,
			dy:        (rand.Float64() - 0.5) * 4,
			turnSpeed: (rand.Float64() - 0.5) * 6,
			scaleBase: 0.7 + rand.Float64()*0.8,
			scaleAmp:  rand.Float64() * 0.4,
			phase:     rand.Float64() * math.Pi * 2,
		}
	}

	g := &game{
		renderer: renderer,
		movers:   movers,
		overlay:  footlight.NewStatsOverlay(renderer.Stats),
	}

	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle(windowTitle)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
