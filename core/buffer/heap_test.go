package buffer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-buf/api"
	"github.com/momentics/hioload-buf/core/buffer"
)

func TestWrapAliasing(t *testing.T) {
	a := []byte{1, 2, 3, 4}
	v := buffer.Wrap(a, api.BigEndian)

	a[1] = 9
	assert.Equal(t, byte(9), v.GetByte(1), "array writes visible through view")

	v.SetByte(2, 7)
	assert.Equal(t, byte(7), a[2], "view writes visible through array")
}

func TestWrapCursors(t *testing.T) {
	v := buffer.Wrap([]byte{1, 2, 3}, api.BigEndian)
	assert.Equal(t, 0, v.ReaderIndex())
	assert.Equal(t, 3, v.WriterIndex())
	assert.Equal(t, 3, v.ReadableBytes())
	assert.True(t, v.Readable())

	v.SetReaderIndex(2)
	assert.Equal(t, 1, v.ReadableBytes())

	assert.Panics(t, func() { v.SetReaderIndex(4) })
	assert.Panics(t, func() { v.SetWriterIndex(1) })
}

func TestNewStartsEmpty(t *testing.T) {
	v := buffer.New(8)
	assert.Equal(t, 8, v.Capacity())
	assert.Equal(t, 0, v.WriterIndex())
	assert.False(t, v.Readable())

	v.WriteInt(0x01020304)
	assert.Equal(t, 4, v.WriterIndex())
	assert.Equal(t, byte(0x01), v.GetByte(0))
	assert.Equal(t, byte(0x04), v.GetByte(3))
}

func TestMultiByteAccess(t *testing.T) {
	be := buffer.Wrap([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}, api.BigEndian)
	le := buffer.Wrap([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}, api.LittleEndian)

	assert.Equal(t, int16(0x0102), be.GetShort(0))
	assert.Equal(t, int16(0x0201), le.GetShort(0))
	assert.Equal(t, int32(0x010203), be.GetMedium(0))
	assert.Equal(t, int32(0x030201), le.GetMedium(0))
	assert.Equal(t, int32(0x01020304), be.GetInt(0))
	assert.Equal(t, int32(0x04030201), le.GetInt(0))
	assert.Equal(t, int64(0x0102030405060708), be.GetLong(0))
	assert.Equal(t, int64(0x0807060504030201), le.GetLong(0))
	assert.Equal(t, uint32(0x01020304), be.GetUint(0))
}

func TestMediumSignExtension(t *testing.T) {
	v := buffer.Wrap([]byte{0xff, 0xff, 0xfe}, api.BigEndian)
	assert.Equal(t, int32(-2), v.GetMedium(0))
}

func TestSetRoundTrip(t *testing.T) {
	v := buffer.New(8)
	v.SetLong(0, -2)
	assert.Equal(t, int64(-2), v.GetLong(0))

	v.SetInt(0, -0x01020304)
	assert.Equal(t, int32(-0x01020304), v.GetInt(0))

	v.SetShort(0, -2)
	assert.Equal(t, int16(-2), v.GetShort(0))

	v.SetMedium(0, -2)
	assert.Equal(t, int32(-2), v.GetMedium(0))
}

func TestSliceZeroCopy(t *testing.T) {
	a := []byte{1, 2, 3, 4, 5}
	v := buffer.Wrap(a, api.BigEndian)
	s := v.SliceRange(1, 3)

	assert.Equal(t, 3, s.Capacity())
	assert.Equal(t, byte(2), s.GetByte(0))

	a[2] = 9
	assert.Equal(t, byte(9), s.GetByte(1), "slice aliases source storage")

	s.SetByte(2, 8)
	assert.Equal(t, byte(8), a[3], "writes through slice reach source")
}

func TestSliceOfReadableRange(t *testing.T) {
	v := buffer.Wrap([]byte{1, 2, 3, 4}, api.BigEndian)
	v.SetReaderIndex(1)
	v.SetWriterIndex(3)

	s := v.Slice()
	assert.Equal(t, 2, s.Capacity())
	assert.Equal(t, byte(2), s.GetByte(0))
	assert.Equal(t, byte(3), s.GetByte(1))
}

func TestCopyIndependence(t *testing.T) {
	a := []byte{1, 2, 3}
	v := buffer.Wrap(a, api.BigEndian)
	c := v.Copy()

	a[0] = 9
	assert.Equal(t, byte(1), c.GetByte(0), "copy must not alias source")
	assert.Equal(t, 3, c.Capacity())
}

func TestBoundsPanics(t *testing.T) {
	v := buffer.Wrap([]byte{1, 2}, api.BigEndian)
	assert.Panics(t, func() { v.GetByte(2) })
	assert.Panics(t, func() { v.GetByte(-1) })
	assert.Panics(t, func() { v.GetInt(0) })
	assert.Panics(t, func() { v.SetLong(0, 1) })
}

func TestWithOrderDoesNotMutate(t *testing.T) {
	v := buffer.Wrap([]byte{0x01, 0x02, 0x03, 0x04}, api.BigEndian)
	w := v.WithOrder(api.LittleEndian)

	assert.Equal(t, api.BigEndian, v.Order())
	assert.Equal(t, api.LittleEndian, w.Order())
	assert.Equal(t, int32(0x01020304), v.GetInt(0))
	assert.Equal(t, int32(0x04030201), w.GetInt(0))

	// Flipping back yields the original view, not a second wrapper.
	assert.Same(t, v, w.WithOrder(api.BigEndian))
	assert.Same(t, v, v.WithOrder(api.BigEndian))
}

func TestWithOrderSharesStorage(t *testing.T) {
	a := []byte{0, 0, 0, 0}
	v := buffer.Wrap(a, api.BigEndian)
	w := v.WithOrder(api.LittleEndian)

	w.SetInt(0, 0x01020304)
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, a)
	assert.Equal(t, int32(0x04030201), v.GetInt(0))
}

func TestEmptyFlyweights(t *testing.T) {
	e := buffer.Empty(api.BigEndian)
	require.Same(t, e, buffer.Empty(api.BigEndian))
	require.Same(t, e, buffer.Wrap(nil, api.BigEndian))
	require.Same(t, e, buffer.New(0))

	le := e.WithOrder(api.LittleEndian)
	assert.Equal(t, api.LittleEndian, le.Order())
	require.Same(t, le, buffer.Empty(api.LittleEndian))
	// Changing order never mutates the shared instance.
	assert.Equal(t, api.BigEndian, e.Order())

	assert.Equal(t, 0, e.Capacity())
	assert.False(t, e.Readable())
	assert.Same(t, e, e.Slice())
	assert.Same(t, e, e.Copy())
	assert.Panics(t, func() { e.GetByte(0) })
}
