package footlight

import (
	"io"
	"os"
	"strings"
	"testing"
)

// captureStderr runs fn with os.Stderr redirected to a pipe and returns
// everything written to it.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	orig := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	os.Stderr = w
	defer func() { os.Stderr = orig }()

	fn()

	w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("reading captured stderr: %v", err)
	}
	return string(out)
}

func TestDebugfSilentByDefault(t *testing.T) {
	SetDebug(false)
	out := captureStderr(t, func() {
		debugf("sheet %q missing costume %d", "hero", 3)
	})
	if out != "" {
		t.Errorf("debugf wrote %q with debug disabled", out)
	}
}

func TestDebugfOutput(t *testing.T) {
	SetDebug(true)
	defer SetDebug(false)

	out := captureStderr(t, func() {
		debugf("sheet %q missing costume %d", "hero", 3)
	})
	if !strings.HasPrefix(out, "[footlight] ") {
		t.Errorf("debugf output %q missing prefix", out)
	}
	if !strings.Contains(out, `sheet "hero" missing costume 3`) {
		t.Errorf("debugf output %q missing message", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Errorf("debugf output %q missing trailing newline", out)
	}
}

func TestStatsOverlayRefreshCadence(t *testing.T) {
	stats := DrawStats{Drawn: 10}
	overlay := NewStatsOverlay(func() DrawStats { return stats })

	// The first Update always refreshes.
	overlay.Update(0.1)
	if overlay.last.Drawn != 10 {
		t.Fatalf("after first Update last.Drawn = %d, want 10", overlay.last.Drawn)
	}

	// Below the half-second cadence the text is left alone.
	stats.Drawn = 25
	overlay.Update(0.1)
	if overlay.last.Drawn != 10 {
		t.Errorf("refresh fired after 0.1s, last.Drawn = %d", overlay.last.Drawn)
	}

	// Crossing the threshold picks up the new counters.
	overlay.Update(0.5)
	if overlay.last.Drawn != 25 {
		t.Errorf("after cadence elapsed last.Drawn = %d, want 25", overlay.last.Drawn)
	}
}

func TestStatsOverlayImage(t *testing.T) {
	overlay := NewStatsOverlay(func() DrawStats { return DrawStats{} })
	img := overlay.Image()
	if img == nil {
		t.Fatal("Image returned nil")
	}
	b := img.Bounds()
	if b.Dx() != 160 || b.Dy() != 48 {
		t.Errorf("overlay size = %dx%d, want 160x48", b.Dx(), b.Dy())
	}
}
