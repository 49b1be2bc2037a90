package footlight

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 2 float64 fields on a Sprite simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenDirection,
// TweenScale, TweenEffect) and call Update(dt) each frame.
//
// There is no global animation manager — users call Update themselves.
type TweenGroup struct {
	tweens [2]*gween.Tween
	count  int
	fields [2]*float64
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values to the
// sprite fields. Done is set once every tween in the group has finished.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenPosition creates a TweenGroup that glides the sprite to the given
// stage position over the specified duration using the easing function.
func TweenPosition(s *Sprite, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(s.x), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(s.y), float32(toY), duration, fn)
	g.fields[0] = &s.x
	g.fields[1] = &s.y
	return g
}

// TweenDirection creates a TweenGroup that turns the sprite's heading to the
// target direction over the specified duration using the easing function.
// The heading is written raw, without wrapping, so a tween from 90 to 270
// passes through 180 rather than snapping across the wrap point.
func TweenDirection(s *Sprite, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(s.direction), float32(to), duration, fn)
	g.fields[0] = &s.direction
	return g
}

// TweenScale creates a TweenGroup that animates the sprite's uniform scale
// to the target value over the specified duration using the easing function.
func TweenScale(s *Sprite, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(s.scale), float32(to), duration, fn)
	g.fields[0] = &s.scale
	return g
}

// TweenEffect creates a TweenGroup that animates one of the sprite's effect
// values to the target over the specified duration. Panics on an unknown
// effect, like SetEffect.
func TweenEffect(s *Sprite, effect Effect, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	field := s.effects.value(effect)
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[0] = field
	return g
}
