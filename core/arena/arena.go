package arena

// Arena is a bump allocator over a single retained byte slice. Allocations
// slice windows off the backing array; Reset drops them all at once while
// keeping the capacity, so the next request on the same slot reuses the
// backing memory without going back to the runtime allocator.
//
// An Arena is not safe for concurrent use. The Pool guarantees that no two
// in-flight requests ever share one.
type Arena struct {
	buf []byte
}

// New returns an arena with an initial backing capacity of size bytes.
func New(size int) *Arena {
	if size < 0 {
		size = 0
	}
	return &Arena{buf: make([]byte, 0, size)}
}

// Alloc returns a zeroed slice of n bytes carved out of the arena. The slice
// is valid until the next Reset. Growing beyond the current capacity falls
// back to the runtime allocator; the enlarged backing array is retained.
func (a *Arena) Alloc(n int) []byte {
	if n <= 0 {
		return nil
	}
	off := len(a.buf)
	if off+n > cap(a.buf) {
		grown := make([]byte, off, nextCap(cap(a.buf), off+n))
		copy(grown, a.buf)
		a.buf = grown
	}
	a.buf = a.buf[:off+n]
	window := a.buf[off : off+n : off+n]
	// The backing array may hold bytes written by a previous request on this
	// slot; a fresh allocation must never expose them.
	clear(window)
	return window
}

// Copy allocates len(b) bytes and copies b into them.
func (a *Arena) Copy(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	dst := a.Alloc(len(b))
	copy(dst, b)
	return dst
}

// CopyString allocates a request-scoped copy of s.
func (a *Arena) CopyString(s string) string {
	if s == "" {
		return ""
	}
	dst := a.Alloc(len(s))
	copy(dst, s)
	return string(dst)
}

// Reset discards all allocations while retaining the backing capacity.
func (a *Arena) Reset() {
	a.buf = a.buf[:0]
}

// Len returns the number of bytes currently allocated.
func (a *Arena) Len() int {
	return len(a.buf)
}

// Cap returns the retained backing capacity.
func (a *Arena) Cap() int {
	return cap(a.buf)
}

// nextCap doubles the capacity until it covers need, starting from a minimum
// block so tiny arenas do not thrash on early growth. Doubling that overflows
// falls back to the exact need.
func nextCap(current, need int) int {
	c := current
	if c < 64 {
		c = 64
	}
	for c < need {
		c *= 2
		if c <= 0 {
			return need
		}
	}
	return c
}
