package footlight

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"
	"time"
)

// Snapshot returns the surface contents as a straight-alpha image, suitable
// for PNG encoding or pixel assertions.
func (r *CompositeRenderer) Snapshot() *image.NRGBA {
	b := r.target.Rect
	return snapshotNRGBA(r.target.Pix, b.Dx(), b.Dy())
}

// Snapshot reads the surface back from the GPU and returns it as a
// straight-alpha image. Reading pixels is only valid while the game loop is
// running.
func (r *AccelRenderer) Snapshot() *image.NRGBA {
	b := r.target.Bounds()
	pix := make([]byte, 4*b.Dx()*b.Dy())
	r.target.ReadPixels(pix)
	return snapshotNRGBA(pix, b.Dx(), b.Dy())
}

// snapshotNRGBA converts premultiplied RGBA bytes to a straight-alpha NRGBA
// image.
func snapshotNRGBA(pix []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(pix); i += 4 {
		r, g, b, a := pix[i], pix[i+1], pix[i+2], pix[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// SaveSnapshot writes img as a timestamped PNG into dir, creating the
// directory if needed, and returns the written path.
func SaveSnapshot(dir, label string, img *image.NRGBA) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("snapshot: mkdir %s: %w", dir, err)
	}
	stamp := time.Now().Format("20060102_150405")
	path := fmt.Sprintf("%s/%s_%s.png", dir, stamp, sanitizeLabel(label))
	if err := writePNG(path, img); err != nil {
		return "", fmt.Errorf("snapshot: %w", err)
	}
	return path, nil
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
