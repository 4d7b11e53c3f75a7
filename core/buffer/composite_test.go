package buffer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-buf/api"
	"github.com/momentics/hioload-buf/core/buffer"
)

func newTestComposite(t *testing.T, order api.ByteOrder, parts ...[]byte) api.Buf {
	t.Helper()
	components := make([]api.Buf, len(parts))
	for i, p := range parts {
		components[i] = buffer.Wrap(p, order)
	}
	return buffer.NewComposite(order, components)
}

func TestCompositeDegenerateSizes(t *testing.T) {
	require.Same(t, buffer.Empty(api.BigEndian), buffer.NewComposite(api.BigEndian, nil))

	single := buffer.Wrap([]byte{1}, api.BigEndian)
	require.Same(t, single, buffer.NewComposite(api.BigEndian, []api.Buf{single}),
		"single component must be returned unchanged, no wrapper")
}

func TestCompositeConcatenation(t *testing.T) {
	c := newTestComposite(t, api.BigEndian, []byte{1, 2}, []byte{3}, []byte{4, 5, 6})

	assert.Equal(t, 6, c.Capacity())
	assert.Equal(t, 6, c.ReadableBytes())
	for i := 0; i < 6; i++ {
		assert.Equal(t, byte(i+1), c.GetByte(i), "index %d", i)
	}

	dst := make([]byte, 6)
	c.GetBytes(0, dst)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, dst)
}

func TestCompositeMixedOrderPanics(t *testing.T) {
	be := buffer.Wrap([]byte{1}, api.BigEndian)
	le := buffer.Wrap([]byte{2}, api.LittleEndian)
	assert.Panics(t, func() { buffer.NewComposite(api.BigEndian, []api.Buf{be, le}) })
}

func TestCompositeBoundaryReads(t *testing.T) {
	// Component boundary falls inside every multi-byte read.
	c := newTestComposite(t, api.BigEndian, []byte{0x01}, []byte{0x02, 0x03}, []byte{0x04, 0x05, 0x06, 0x07, 0x08})
	flat := buffer.Wrap([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}, api.BigEndian)

	for i := 0; i <= 6; i++ {
		assert.Equal(t, flat.GetShort(i), c.GetShort(i), "short at %d", i)
	}
	for i := 0; i <= 4; i++ {
		assert.Equal(t, flat.GetInt(i), c.GetInt(i), "int at %d", i)
	}
	assert.Equal(t, flat.GetLong(0), c.GetLong(0))
	assert.Equal(t, flat.GetMedium(1), c.GetMedium(1))
}

func TestCompositeBoundaryReadsLittleEndian(t *testing.T) {
	c := newTestComposite(t, api.LittleEndian, []byte{0x01, 0x02}, []byte{0x03, 0x04})
	flat := buffer.Wrap([]byte{0x01, 0x02, 0x03, 0x04}, api.LittleEndian)

	assert.Equal(t, flat.GetInt(0), c.GetInt(0))
	assert.Equal(t, flat.GetShort(1), c.GetShort(1))
}

func TestCompositeSpanningWrites(t *testing.T) {
	a := []byte{0, 0}
	b := []byte{0, 0, 0, 0, 0, 0}
	c := newTestComposite(t, api.BigEndian, a, b)

	c.SetLong(0, 0x0102030405060708)
	assert.Equal(t, []byte{0x01, 0x02}, a, "write propagates into first component")
	assert.Equal(t, []byte{0x03, 0x04, 0x05, 0x06, 0x07, 0x08}, b)

	c.SetInt(1, -1)
	assert.Equal(t, byte(0xff), a[1])
	assert.Equal(t, byte(0xff), b[2])
}

func TestCompositeAliasesComponents(t *testing.T) {
	a := []byte{1, 2}
	c := newTestComposite(t, api.BigEndian, a, []byte{3})

	a[0] = 9
	assert.Equal(t, byte(9), c.GetByte(0), "composite views, not copies, its sources")
}

func TestCompositeDecompose(t *testing.T) {
	c := newTestComposite(t, api.BigEndian, []byte{1, 2}, []byte{3, 4, 5}, []byte{6})
	d, ok := c.(api.Decomposer)
	require.True(t, ok)

	// Full range: one part per component.
	parts := d.Decompose(0, 6)
	require.Len(t, parts, 3)
	assert.Equal(t, 2, parts[0].Capacity())
	assert.Equal(t, 3, parts[1].Capacity())
	assert.Equal(t, 1, parts[2].Capacity())

	// Sub-range splitting boundary components into partial slices.
	parts = d.Decompose(1, 3)
	require.Len(t, parts, 2)
	assert.Equal(t, 1, parts[0].Capacity())
	assert.Equal(t, byte(2), parts[0].GetByte(0))
	assert.Equal(t, 2, parts[1].Capacity())
	assert.Equal(t, byte(3), parts[1].GetByte(0))

	// Parts are never composites.
	for _, p := range parts {
		_, nested := p.(api.Decomposer)
		assert.False(t, nested)
	}

	assert.Empty(t, d.Decompose(3, 0))
}

func TestCompositeSliceAndCopy(t *testing.T) {
	c := newTestComposite(t, api.BigEndian, []byte{1, 2}, []byte{3, 4})

	s := c.SliceRange(1, 2)
	assert.Equal(t, byte(2), s.GetByte(0))
	assert.Equal(t, byte(3), s.GetByte(1))

	cp := c.Copy()
	c.SetByte(0, 9)
	assert.Equal(t, byte(1), cp.GetByte(0), "copy is independent of composite sources")
}

func TestCompositeCursorInvariants(t *testing.T) {
	c := newTestComposite(t, api.BigEndian, []byte{1}, []byte{2})
	assert.Equal(t, 0, c.ReaderIndex())
	assert.Equal(t, 2, c.WriterIndex())
	assert.Panics(t, func() { c.SetWriterIndex(3) })
}
