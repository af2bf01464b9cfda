// Package arena provides the string store that owns every byte produced while
// lexing one compilation unit.
package arena

// Ref addresses a byte range owned by an Arena. The zero Ref is the empty
// string.
type Ref struct {
	off int
	n   int
}

// Len returns the number of bytes addressed by r.
func (r Ref) Len() int {
	return r.n
}

// Arena is a bump allocator over a single growable buffer. An Arena belongs to
// one compilation; it is not safe for concurrent use.
type Arena struct {
	buf []byte
}

// New creates an empty arena.
func New() *Arena {
	return &Arena{buf: make([]byte, 0, 256)}
}

// Store copies b into the arena.
func (a *Arena) Store(b []byte) Ref {
	if len(b) == 0 {
		return Ref{}
	}

	r := Ref{off: len(a.buf), n: len(b)}
	a.buf = append(a.buf, b...)

	return r
}

// StoreString copies s into the arena.
func (a *Arena) StoreString(s string) Ref {
	if len(s) == 0 {
		return Ref{}
	}

	r := Ref{off: len(a.buf), n: len(s)}
	a.buf = append(a.buf, s...)

	return r
}

// Bytes returns the bytes addressed by r. The slice aliases the arena and must
// not be modified.
func (a *Arena) Bytes(r Ref) []byte {
	if r.n == 0 {
		return nil
	}
	if r.off < 0 || r.off+r.n > len(a.buf) {
		panic("arena: ref out of range")
	}

	return a.buf[r.off : r.off+r.n : r.off+r.n]
}

// String returns a copy of the bytes addressed by r.
func (a *Arena) String(r Ref) string {
	return string(a.Bytes(r))
}

// Len returns the number of bytes stored.
func (a *Arena) Len() int {
	return len(a.buf)
}

// Reset discards all contents. Refs handed out before Reset become invalid.
func (a *Arena) Reset() {
	a.buf = a.buf[:0]
}
