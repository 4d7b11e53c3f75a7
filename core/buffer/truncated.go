// File: core/buffer/truncated.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package buffer

import (
	"fmt"

	"github.com/momentics/hioload-buf/api"
)

// truncatedBuf exposes only the leading length bytes of a parent view.
// Like slicedBuf it owns nothing; the parent must outlive it. Kept as a
// distinct type so offset arithmetic disappears from the zero-offset
// wrap path.
type truncatedBuf struct {
	parent api.Buf
	length int
	r, w   int
}

// NewTruncated returns a zero-copy view over the first length bytes of
// parent. Zero length yields the shared empty view.
func NewTruncated(parent api.Buf, length int) api.Buf {
	if length < 0 || length > parent.Capacity() {
		panic(fmt.Sprintf("buffer: truncation length %d out of range, capacity %d",
			length, parent.Capacity()))
	}
	if length == 0 {
		return Empty(parent.Order())
	}
	if p, ok := parent.(*truncatedBuf); ok {
		parent = p.parent
	}
	return &truncatedBuf{parent: parent, length: length, w: length}
}

func (t *truncatedBuf) check(i, n int) {
	if i < 0 || n < 0 || n > t.length-i {
		panic(fmt.Sprintf("buffer: index out of range: index %d, width %d, capacity %d",
			i, n, t.length))
	}
}

func (t *truncatedBuf) Order() api.ByteOrder { return t.parent.Order() }

func (t *truncatedBuf) WithOrder(o api.ByteOrder) api.Buf {
	if o == t.Order() {
		return t
	}
	return newSwapped(t)
}

func (t *truncatedBuf) Capacity() int { return t.length }

func (t *truncatedBuf) ReaderIndex() int { return t.r }
func (t *truncatedBuf) WriterIndex() int { return t.w }

func (t *truncatedBuf) SetReaderIndex(i int) {
	if i < 0 || i > t.w {
		panic(fmt.Sprintf("buffer: readerIndex %d out of range [0, %d]", i, t.w))
	}
	t.r = i
}

func (t *truncatedBuf) SetWriterIndex(i int) {
	if i < t.r || i > t.length {
		panic(fmt.Sprintf("buffer: writerIndex %d out of range [%d, %d]", i, t.r, t.length))
	}
	t.w = i
}

func (t *truncatedBuf) Readable() bool { return t.w > t.r }
func (t *truncatedBuf) ReadableBytes() int { return t.w - t.r }

func (t *truncatedBuf) GetByte(i int) byte {
	t.check(i, 1)
	return t.parent.GetByte(i)
}

func (t *truncatedBuf) GetShort(i int) int16 {
	t.check(i, 2)
	return t.parent.GetShort(i)
}

func (t *truncatedBuf) GetMedium(i int) int32 {
	t.check(i, 3)
	return t.parent.GetMedium(i)
}

func (t *truncatedBuf) GetInt(i int) int32 {
	t.check(i, 4)
	return t.parent.GetInt(i)
}

func (t *truncatedBuf) GetUint(i int) uint32 {
	t.check(i, 4)
	return t.parent.GetUint(i)
}

func (t *truncatedBuf) GetLong(i int) int64 {
	t.check(i, 8)
	return t.parent.GetLong(i)
}

func (t *truncatedBuf) GetBytes(i int, dst []byte) {
	t.check(i, len(dst))
	t.parent.GetBytes(i, dst)
}

func (t *truncatedBuf) SetByte(i int, v byte) {
	t.check(i, 1)
	t.parent.SetByte(i, v)
}

func (t *truncatedBuf) SetShort(i int, v int16) {
	t.check(i, 2)
	t.parent.SetShort(i, v)
}

func (t *truncatedBuf) SetMedium(i int, v int32) {
	t.check(i, 3)
	t.parent.SetMedium(i, v)
}

func (t *truncatedBuf) SetInt(i int, v int32) {
	t.check(i, 4)
	t.parent.SetInt(i, v)
}

func (t *truncatedBuf) SetLong(i int, v int64) {
	t.check(i, 8)
	t.parent.SetLong(i, v)
}

func (t *truncatedBuf) SetBytes(i int, src []byte) {
	t.check(i, len(src))
	t.parent.SetBytes(i, src)
}

func (t *truncatedBuf) WriteByte(v byte) {
	t.SetByte(t.w, v)
	t.w++
}

func (t *truncatedBuf) WriteShort(v int16) {
	t.SetShort(t.w, v)
	t.w += 2
}

func (t *truncatedBuf) WriteMedium(v int32) {
	t.SetMedium(t.w, v)
	t.w += 3
}

func (t *truncatedBuf) WriteInt(v int32) {
	t.SetInt(t.w, v)
	t.w += 4
}

func (t *truncatedBuf) WriteLong(v int64) {
	t.SetLong(t.w, v)
	t.w += 8
}

func (t *truncatedBuf) WriteBytes(src []byte) {
	t.SetBytes(t.w, src)
	t.w += len(src)
}

func (t *truncatedBuf) Slice() api.Buf {
	return NewSlice(t.parent, t.r, t.w-t.r)
}

func (t *truncatedBuf) SliceRange(i, length int) api.Buf {
	t.check(i, length)
	return NewSlice(t.parent, i, length)
}

func (t *truncatedBuf) Copy() api.Buf {
	dst := make([]byte, t.ReadableBytes())
	t.parent.GetBytes(t.r, dst)
	return Wrap(dst, t.Order())
}
