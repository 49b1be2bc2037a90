package footlight

import "math"

// --- Pixel buffer pool ---

// bufferPool recycles pixel buffers for effect passes, bucketed by
// power-of-two byte size. After warmup, acquire/release are alloc-free.
type bufferPool struct {
	buckets map[int][][]byte
}

// acquire returns a buffer of exactly n bytes with stale contents; callers
// overwrite it fully before reading.
func (p *bufferPool) acquire(n int) []byte {
	size := nextPowerOfTwo(n)
	if p.buckets != nil {
		if stack := p.buckets[size]; len(stack) > 0 {
			buf := stack[len(stack)-1]
			p.buckets[size] = stack[:len(stack)-1]
			return buf[:n]
		}
	}
	return make([]byte, n, size)
}

// release returns a buffer for reuse.
func (p *bufferPool) release(buf []byte) {
	size := cap(buf)
	if size == 0 {
		return
	}
	if p.buckets == nil {
		p.buckets = make(map[int][][]byte)
	}
	p.buckets[size] = append(p.buckets[size], buf[:0])
}

// nextPowerOfTwo returns the smallest power of two >= n (minimum 1).
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << int(math.Ceil(math.Log2(float64(n))))
}

// --- Surface style ---

// surfaceStyle is the persistent presentation state of an output surface:
// the stage's filter descriptor and its opacity. The filter is
// write-on-change since a filter write forces a style recomputation on the
// presenting side; opacity is rewritten on every refresh because ghost
// never enters the filter descriptor and so cannot ride its change
// detection.
type surfaceStyle struct {
	filter  EffectFilter
	opacity float64

	// Write counters, for tests and the stats overlay.
	filterWrites  int
	opacityWrites int
}

// writeFilter applies a filter descriptor only when it differs from the one
// already applied.
func (s *surfaceStyle) writeFilter(f EffectFilter) {
	if f == s.filter {
		return
	}
	s.filter = f
	s.filterWrites++
}

// writeOpacity applies opacity unconditionally.
func (s *surfaceStyle) writeOpacity(v float64) {
	s.opacity = v
	s.opacityWrites++
}
