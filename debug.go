package footlight

import (
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// globalDebug gates diagnostic warnings. A package-level flag rather than
// per-renderer state so helpers without a renderer pointer can check it
// cheaply. Plain bool (no atomic — footlight is single-threaded).
var globalDebug bool

// SetDebug enables or disables diagnostic output. When enabled, recoverable
// oddities (missing sheet costumes, discarded draw work) are reported on
// stderr. Per-draw skip conditions stay silent either way.
func SetDebug(enabled bool) {
	globalDebug = enabled
}

// debugf prints one diagnostic line to stderr when debug mode is on.
func debugf(format string, args ...any) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[footlight] "+format+"\n", args...)
}

// DrawStats counts renderer work since construction. Counters only grow;
// subtract two snapshots for per-frame numbers.
type DrawStats struct {
	Drawn    uint64 // objects drawn through DrawChild
	Skipped  uint64 // objects skipped for a missing costume
	Uploads  uint64 // textures created from costume bitmaps
	Filtered uint64 // draws routed through a color-matrix pass
}

// StatsOverlay renders renderer counters and the current FPS into a small
// image for on-screen display. The text refreshes every half second; draw
// the Image each frame.
type StatsOverlay struct {
	img     *ebiten.Image
	source  func() DrawStats
	elapsed float64
	last    DrawStats
}

// NewStatsOverlay creates an overlay reading counters from source, usually
// a bound Stats method:
//
//	overlay := footlight.NewStatsOverlay(renderer.Stats)
func NewStatsOverlay(source func() DrawStats) *StatsOverlay {
	o := &StatsOverlay{
		img:    ebiten.NewImage(160, 48),
		source: source,
		// Force a refresh on the first Update.
		elapsed: 1,
	}
	return o
}

// Update advances the overlay clock by dt seconds and refreshes the text
// when due.
func (o *StatsOverlay) Update(dt float64) {
	o.elapsed += dt
	if o.elapsed < 0.5 {
		return
	}
	o.elapsed = 0

	stats := o.source()
	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf(
		"FPS: %.1f\ndrawn: %d  skipped: %d\nuploads: %d  filtered: %d",
		ebiten.ActualFPS(),
		stats.Drawn-o.last.Drawn, stats.Skipped-o.last.Skipped,
		stats.Uploads, stats.Filtered-o.last.Filtered))
	o.last = stats
}

// Image returns the rendered overlay, sized 160x48.
func (o *StatsOverlay) Image() *ebiten.Image {
	return o.img
}
