package footlight

import "math"

// Sprite is the built-in Drawable: a stage object holding position, heading,
// scale, rotation style, a costume list and effect values. A single flat
// struct serves both sprites and the stage background; the renderer decides
// which parts of the transform pipeline apply.
//
// Fields are unexported and mutated through setters so heading stays
// normalized and effect writes go through one place. Reads happen through
// the Drawable methods.
type Sprite struct {
	x, y      float64
	direction float64
	scale     float64
	style     RotationStyle
	effects   EffectSet
	costumes  []Costume
	costume   int
}

// NewSprite creates a sprite at the stage center, facing right at natural
// size, wearing the first of the given costumes.
func NewSprite(costumes ...Costume) *Sprite {
	return &Sprite{
		direction: 90,
		scale:     1,
		costumes:  costumes,
	}
}

// Position returns the sprite's stage position.
func (s *Sprite) Position() (x, y float64) {
	return s.x, s.y
}

// SetPosition moves the sprite to the given stage position.
func (s *Sprite) SetPosition(x, y float64) {
	s.x = x
	s.y = y
}

// Direction returns the heading in degrees, 90 pointing right.
func (s *Sprite) Direction() float64 {
	return s.direction
}

// SetDirection sets the heading, normalized into (-180, 180].
func (s *Sprite) SetDirection(d float64) {
	s.direction = wrapDirection(d)
}

// wrapDirection normalizes a heading into (-180, 180].
func wrapDirection(d float64) float64 {
	d = math.Mod(d, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}

// RotationStyle reports how the heading affects drawn orientation.
func (s *Sprite) RotationStyle() RotationStyle {
	return s.style
}

// SetRotationStyle sets the rotation style.
func (s *Sprite) SetRotationStyle(style RotationStyle) {
	s.style = style
}

// Scale returns the uniform scale factor, 1 meaning natural size.
func (s *Sprite) Scale() float64 {
	return s.scale
}

// SetScale sets the uniform scale factor.
func (s *Sprite) SetScale(scale float64) {
	s.scale = scale
}

// Costume returns the current costume. ok is false when the costume list is
// empty, the current index is out of range, or the costume has no image.
func (s *Sprite) Costume() (Costume, bool) {
	if s.costume < 0 || s.costume >= len(s.costumes) {
		return Costume{}, false
	}
	c := s.costumes[s.costume]
	if c.Image == nil {
		return Costume{}, false
	}
	return c, true
}

// CostumeIndex returns the current costume index as set, which may be out
// of range.
func (s *Sprite) CostumeIndex() int {
	return s.costume
}

// SetCostume selects a costume by index. Out-of-range indices are stored
// as-is; the sprite simply stops drawing until a valid index is set.
func (s *Sprite) SetCostume(index int) {
	s.costume = index
}

// NextCostume advances to the next costume, wrapping at the end of the
// list. No-op when the list is empty.
func (s *Sprite) NextCostume() {
	if len(s.costumes) == 0 {
		return
	}
	s.costume = (s.costume + 1) % len(s.costumes)
	if s.costume < 0 {
		s.costume += len(s.costumes)
	}
}

// AddCostume appends a costume to the list and returns its index.
func (s *Sprite) AddCostume(c Costume) int {
	s.costumes = append(s.costumes, c)
	return len(s.costumes) - 1
}

// Effects returns the sprite's current effect values.
func (s *Sprite) Effects() EffectSet {
	return s.effects
}

// SetEffect sets one effect value. Values are stored unclamped; each
// backend saturates where its filter primitives require it.
func (s *Sprite) SetEffect(effect Effect, value float64) {
	*s.effects.value(effect) = value
}

// ChangeEffect adds delta to one effect value.
func (s *Sprite) ChangeEffect(effect Effect, delta float64) {
	*s.effects.value(effect) += delta
}

// ClearEffects resets every effect to zero.
func (s *Sprite) ClearEffects() {
	s.effects = EffectSet{}
}

// RotatedBounds returns the axis-aligned bounding box of the sprite's
// footprint on the stage surface. ok is false when the sprite has no
// current costume.
func (s *Sprite) RotatedBounds() (Rect, bool) {
	return RotatedBounds(s)
}
