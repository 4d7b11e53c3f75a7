// File: core/buffer/sliced.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package buffer

import (
	"fmt"

	"github.com/momentics/hioload-buf/api"
)

// slicedBuf is a non-owning sub-view of a parent view, defined by an
// offset and length into the parent's index space. The parent must
// outlive the slice; all reads and writes go through the parent, so
// mutations are visible on both sides.
type slicedBuf struct {
	parent api.Buf
	off    int
	length int
	r, w   int
}

// NewSlice returns a zero-copy view over [off, off+length) of parent.
// Slices of slices collapse onto the original parent rather than
// stacking indirections. Zero length yields the shared empty view.
func NewSlice(parent api.Buf, off, length int) api.Buf {
	if off < 0 || length < 0 || length > parent.Capacity()-off {
		panic(fmt.Sprintf("buffer: slice [%d, %d) out of range, capacity %d",
			off, off+length, parent.Capacity()))
	}
	if length == 0 {
		return Empty(parent.Order())
	}
	switch p := parent.(type) {
	case *slicedBuf:
		parent, off = p.parent, p.off+off
	case *truncatedBuf:
		parent = p.parent
	}
	return &slicedBuf{parent: parent, off: off, length: length, w: length}
}

func (s *slicedBuf) check(i, n int) {
	if i < 0 || n < 0 || n > s.length-i {
		panic(fmt.Sprintf("buffer: index out of range: index %d, width %d, capacity %d",
			i, n, s.length))
	}
}

func (s *slicedBuf) Order() api.ByteOrder { return s.parent.Order() }

func (s *slicedBuf) WithOrder(o api.ByteOrder) api.Buf {
	if o == s.Order() {
		return s
	}
	return newSwapped(s)
}

func (s *slicedBuf) Capacity() int { return s.length }

func (s *slicedBuf) ReaderIndex() int { return s.r }
func (s *slicedBuf) WriterIndex() int { return s.w }

func (s *slicedBuf) SetReaderIndex(i int) {
	if i < 0 || i > s.w {
		panic(fmt.Sprintf("buffer: readerIndex %d out of range [0, %d]", i, s.w))
	}
	s.r = i
}

func (s *slicedBuf) SetWriterIndex(i int) {
	if i < s.r || i > s.length {
		panic(fmt.Sprintf("buffer: writerIndex %d out of range [%d, %d]", i, s.r, s.length))
	}
	s.w = i
}

func (s *slicedBuf) Readable() bool { return s.w > s.r }
func (s *slicedBuf) ReadableBytes() int { return s.w - s.r }

func (s *slicedBuf) GetByte(i int) byte {
	s.check(i, 1)
	return s.parent.GetByte(s.off + i)
}

func (s *slicedBuf) GetShort(i int) int16 {
	s.check(i, 2)
	return s.parent.GetShort(s.off + i)
}

func (s *slicedBuf) GetMedium(i int) int32 {
	s.check(i, 3)
	return s.parent.GetMedium(s.off + i)
}

func (s *slicedBuf) GetInt(i int) int32 {
	s.check(i, 4)
	return s.parent.GetInt(s.off + i)
}

func (s *slicedBuf) GetUint(i int) uint32 {
	s.check(i, 4)
	return s.parent.GetUint(s.off + i)
}

func (s *slicedBuf) GetLong(i int) int64 {
	s.check(i, 8)
	return s.parent.GetLong(s.off + i)
}

func (s *slicedBuf) GetBytes(i int, dst []byte) {
	s.check(i, len(dst))
	s.parent.GetBytes(s.off+i, dst)
}

func (s *slicedBuf) SetByte(i int, v byte) {
	s.check(i, 1)
	s.parent.SetByte(s.off+i, v)
}

func (s *slicedBuf) SetShort(i int, v int16) {
	s.check(i, 2)
	s.parent.SetShort(s.off+i, v)
}

func (s *slicedBuf) SetMedium(i int, v int32) {
	s.check(i, 3)
	s.parent.SetMedium(s.off+i, v)
}

func (s *slicedBuf) SetInt(i int, v int32) {
	s.check(i, 4)
	s.parent.SetInt(s.off+i, v)
}

func (s *slicedBuf) SetLong(i int, v int64) {
	s.check(i, 8)
	s.parent.SetLong(s.off+i, v)
}

func (s *slicedBuf) SetBytes(i int, src []byte) {
	s.check(i, len(src))
	s.parent.SetBytes(s.off+i, src)
}

func (s *slicedBuf) WriteByte(v byte) {
	s.SetByte(s.w, v)
	s.w++
}

func (s *slicedBuf) WriteShort(v int16) {
	s.SetShort(s.w, v)
	s.w += 2
}

func (s *slicedBuf) WriteMedium(v int32) {
	s.SetMedium(s.w, v)
	s.w += 3
}

func (s *slicedBuf) WriteInt(v int32) {
	s.SetInt(s.w, v)
	s.w += 4
}

func (s *slicedBuf) WriteLong(v int64) {
	s.SetLong(s.w, v)
	s.w += 8
}

func (s *slicedBuf) WriteBytes(src []byte) {
	s.SetBytes(s.w, src)
	s.w += len(src)
}

func (s *slicedBuf) Slice() api.Buf {
	return NewSlice(s.parent, s.off+s.r, s.w-s.r)
}

func (s *slicedBuf) SliceRange(i, length int) api.Buf {
	s.check(i, length)
	return NewSlice(s.parent, s.off+i, length)
}

func (s *slicedBuf) Copy() api.Buf {
	dst := make([]byte, s.ReadableBytes())
	s.parent.GetBytes(s.off+s.r, dst)
	return Wrap(dst, s.Order())
}
