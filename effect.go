package footlight

import (
	"fmt"
	"math"
	"strings"
)

// EffectFilter is the per-draw filter descriptor derived from an object's
// effect set. Brightness is the raw percentage-point offset (0 = unchanged,
// rendered as a (100+b)% multiplier) and Hue is the hue rotation in degrees.
// Ghost is never part of the descriptor; it is compositing alpha, obtained
// separately via GhostOpacity.
//
// The zero value is the canonical "no filter". Backends compare against it
// to skip filter state changes entirely, which matters on the paths where a
// filter write costs a shader dispatch or a pixel pass.
type EffectFilter struct {
	Brightness float64
	Hue        float64
}

// MakeEffectFilter derives the filter descriptor from an effect set.
// Inputs are not clamped here; clamping is each backend's concern for its
// own filter primitive's valid domain. The color effect maps linearly onto
// hue degrees, one full rotation every 200 units.
func MakeEffectFilter(e EffectSet) EffectFilter {
	var f EffectFilter
	if e.Brightness != 0 {
		f.Brightness = e.Brightness
	}
	if e.Color != 0 {
		f.Hue = e.Color / 200 * 360
	}
	return f
}

// IsZero reports whether the descriptor is the canonical empty filter.
func (f EffectFilter) IsZero() bool {
	return f.Brightness == 0 && f.Hue == 0
}

// String renders the descriptor in CSS filter syntax, or "" for the empty
// filter. Brightness renders as a percentage multiplier: an offset of 50
// becomes "brightness(150%)".
func (f EffectFilter) String() string {
	if f.IsZero() {
		return ""
	}
	var b strings.Builder
	if f.Brightness != 0 {
		fmt.Fprintf(&b, "brightness(%g%%)", 100+f.Brightness)
	}
	if f.Hue != 0 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "hue-rotate(%gdeg)", f.Hue)
	}
	return b.String()
}

// GhostOpacity converts a ghost effect value into compositing alpha,
// clamped to [0, 1]. Ghost 0 is opaque, 100 fully transparent; values
// outside that range saturate.
func GhostOpacity(ghost float64) float64 {
	return clamp01(1 - ghost/100)
}

// --- Color matrix ---
// Both backends apply effects through the same 4x5 row-major color matrix
// so their output stays consistent: the accelerated backend feeds it to the
// effect shader, the compositing backend runs it over pixels on the CPU.
// Layout: [R_r, R_g, R_b, R_a, R_off, G_r, ...] with channel values and
// offsets normalized to [0, 1].

// identityColorMatrix has ones on the channel diagonal and zero offsets.
var identityColorMatrix = [20]float64{
	1, 0, 0, 0, 0,
	0, 1, 0, 0, 0,
	0, 0, 1, 0, 0,
	0, 0, 0, 1, 0,
}

// Luminance weights for hue rotation (Rec. 709, as used by SVG/CSS
// hue-rotate).
const (
	lumR = 0.213
	lumG = 0.715
	lumB = 0.072
)

// ColorMatrix returns the 4x5 color matrix realizing this descriptor:
// a brightness multiplier composed with a luminance-preserving hue
// rotation. Negative multipliers are clamped to zero, the lower bound of
// the brightness primitive's domain.
func (f EffectFilter) ColorMatrix() [20]float64 {
	m := identityColorMatrix
	if f.Brightness != 0 {
		s := (100 + f.Brightness) / 100
		if s < 0 {
			s = 0
		}
		m = brightnessMatrix(s)
	}
	if f.Hue != 0 {
		m = multiplyColorMatrix(hueRotateMatrix(f.Hue), m)
	}
	return m
}

// brightnessMatrix scales the RGB channels by s and leaves alpha alone.
func brightnessMatrix(s float64) [20]float64 {
	return [20]float64{
		s, 0, 0, 0, 0,
		0, s, 0, 0, 0,
		0, 0, s, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// hueRotateMatrix rotates hue by the given angle in degrees around the
// luminance axis.
func hueRotateMatrix(degrees float64) [20]float64 {
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	return [20]float64{
		lumR + cos*(1-lumR) - sin*lumR, lumG - cos*lumG - sin*lumG, lumB - cos*lumB + sin*(1-lumB), 0, 0,
		lumR - cos*lumR + sin*0.143, lumG + cos*(1-lumG) + sin*0.140, lumB - cos*lumB - sin*0.283, 0, 0,
		lumR - cos*lumR - sin*(1-lumR), lumG - cos*lumG + sin*lumG, lumB + cos*(1-lumB) + sin*lumB, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// multiplyColorMatrix composes two 4x5 matrices: the result applies b first,
// then a. The fifth column is the offset term, so a's rows fold b's offsets
// through the channel weights before adding their own.
func multiplyColorMatrix(a, b [20]float64) [20]float64 {
	var out [20]float64
	for row := 0; row < 4; row++ {
		ar := a[row*5 : row*5+5]
		for col := 0; col < 5; col++ {
			v := ar[0]*b[col] + ar[1]*b[5+col] + ar[2]*b[10+col] + ar[3]*b[15+col]
			if col == 4 {
				v += ar[4]
			}
			out[row*5+col] = v
		}
	}
	return out
}

// applyColorMatrix runs a 4x5 color matrix over premultiplied RGBA pixels in
// place: un-premultiply, transform, clamp, re-premultiply. This is the CPU
// mirror of the effect shader; keep the two in sync.
func applyColorMatrix(pix []byte, m [20]float64) {
	for i := 0; i+3 < len(pix); i += 4 {
		a := float64(pix[i+3]) / 255
		if a == 0 {
			continue
		}
		r := float64(pix[i]) / 255 / a
		g := float64(pix[i+1]) / 255 / a
		b := float64(pix[i+2]) / 255 / a

		nr := m[0]*r + m[1]*g + m[2]*b + m[3]*a + m[4]
		ng := m[5]*r + m[6]*g + m[7]*b + m[8]*a + m[9]
		nb := m[10]*r + m[11]*g + m[12]*b + m[13]*a + m[14]
		na := m[15]*r + m[16]*g + m[17]*b + m[18]*a + m[19]

		nr = clamp01(nr)
		ng = clamp01(ng)
		nb = clamp01(nb)
		na = clamp01(na)

		pix[i] = byte(nr*na*255 + 0.5)
		pix[i+1] = byte(ng*na*255 + 0.5)
		pix[i+2] = byte(nb*na*255 + 0.5)
		pix[i+3] = byte(na*255 + 0.5)
	}
}
