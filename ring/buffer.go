package ring

// Buffer is an in-memory PointCloud. Renderers poll Dirty or Version to decide
// when to re-upload the position data.
type Buffer struct {
	positions []float32
	colors    []float32
	dirty     bool
	version   uint64
}

// NewBuffer wraps the given slices without copying.
func NewBuffer(positions, colors []float32) *Buffer {
	return &Buffer{positions: positions, colors: colors, dirty: true}
}

// NewBufferFor allocates a buffer sized for n particles.
func NewBufferFor(n int) *Buffer {
	return NewBuffer(make([]float32, 3*n), make([]float32, 3*n))
}

func (b *Buffer) Positions() []float32 { return b.positions }
func (b *Buffer) Colors() []float32    { return b.colors }
func (b *Buffer) Len() int             { return len(b.positions) / 3 }

func (b *Buffer) MarkDirty() {
	b.dirty = true
	b.version++
}

func (b *Buffer) Dirty() bool { return b.dirty }

// Version counts MarkDirty calls.
func (b *Buffer) Version() uint64 { return b.version }

// Upload hands the positions to fn if they changed since the last upload and
// clears the dirty flag. It reports whether fn was called.
func (b *Buffer) Upload(fn func(positions []float32)) bool {
	if !b.dirty {
		return false
	}
	fn(b.positions)
	b.dirty = false
	return true
}

// Point returns particle i as (x, y, z, r, g, b).
func (b *Buffer) Point(i int) (x, y, z, r, g, bl float32) {
	p, c := b.positions[3*i:3*i+3], b.colors[3*i:3*i+3]
	return p[0], p[1], p[2], c[0], c[1], c[2]
}
