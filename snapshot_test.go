package footlight

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSnapshotStraightAlpha(t *testing.T) {
	r := NewCompositeRenderer(Config{})
	s := NewSprite(testCostume(10, 10))
	s.SetEffect(EffectGhost, 50)
	r.DrawChild(s)

	snap := r.Snapshot()

	// The surface stores premultiplied half-red; the snapshot recovers the
	// straight color.
	got := snap.NRGBAAt(240, 180)
	want := color.NRGBA{R: 255, A: 128}
	if absDiff(got.R, want.R) > 1 || got.G != 0 || got.B != 0 || absDiff(got.A, want.A) > 1 {
		t.Errorf("center = %v, want %v", got, want)
	}
	if got := snap.NRGBAAt(0, 0); got != (color.NRGBA{}) {
		t.Errorf("empty corner = %v, want transparent", got)
	}
}

func TestSnapshotNRGBAConversion(t *testing.T) {
	pix := []byte{
		128, 0, 0, 128, // premultiplied half-transparent red
		255, 255, 255, 255, // opaque white
		0, 0, 0, 0, // fully transparent
	}

	img := snapshotNRGBA(pix, 3, 1)

	want := []color.NRGBA{
		{R: 255, A: 128},
		{R: 255, G: 255, B: 255, A: 255},
		{},
	}
	for x, w := range want {
		if got := img.NRGBAAt(x, 0); got != w {
			t.Errorf("pixel %d = %v, want %v", x, got, w)
		}
	}
}

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"hello", "hello"},
		{"two words", "two_words"},
		{"v1.2-rc", "v1.2-rc"},
		{"a/b:c", "a_b_c"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.label); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestSaveSnapshot(t *testing.T) {
	r := NewCompositeRenderer(Config{})
	r.DrawChild(NewSprite(testCostume(10, 10)))

	dir := t.TempDir()
	path, err := SaveSnapshot(dir, "test run", r.Snapshot())
	if err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	if !strings.HasSuffix(path, "_test_run.png") {
		t.Errorf("path = %q, want a _test_run.png suffix", path)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("path %q not inside %q", path, dir)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	b := decoded.Bounds()
	if b.Dx() != 480 || b.Dy() != 360 {
		t.Errorf("decoded size = %dx%d, want 480x360", b.Dx(), b.Dy())
	}
}

func TestSaveSnapshotCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots", "run1")
	r := NewCompositeRenderer(Config{})

	path, err := SaveSnapshot(dir, "first", r.Snapshot())
	if err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("stat %s: %v", path, err)
	}
}
