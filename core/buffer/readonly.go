// File: core/buffer/readonly.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package buffer

import (
	"fmt"

	"github.com/momentics/hioload-buf/api"
)

// readOnlyBuf decorates a view and rejects every mutation with
// api.ErrReadOnly. Cursors are independent of the underlying view so a
// read-only holder cannot disturb the original's read progress.
type readOnlyBuf struct {
	b    api.Buf
	r, w int
}

// NewReadOnly wraps b in a mutation-rejecting decorator, initialized with
// b's current cursors. Wrapping an already read-only view re-wraps its
// underlying view instead of stacking decorators.
func NewReadOnly(b api.Buf) api.Buf {
	if ro, ok := b.(*readOnlyBuf); ok {
		b = ro.b
	}
	return &readOnlyBuf{b: b, r: b.ReaderIndex(), w: b.WriterIndex()}
}

func (b *readOnlyBuf) Order() api.ByteOrder { return b.b.Order() }

func (b *readOnlyBuf) WithOrder(o api.ByteOrder) api.Buf {
	if o == b.Order() {
		return b
	}
	return newSwapped(b)
}

func (b *readOnlyBuf) Capacity() int { return b.b.Capacity() }

func (b *readOnlyBuf) ReaderIndex() int { return b.r }
func (b *readOnlyBuf) WriterIndex() int { return b.w }

func (b *readOnlyBuf) SetReaderIndex(i int) {
	if i < 0 || i > b.w {
		panic(fmt.Sprintf("buffer: readerIndex %d out of range [0, %d]", i, b.w))
	}
	b.r = i
}

func (b *readOnlyBuf) SetWriterIndex(i int) {
	if i < b.r || i > b.Capacity() {
		panic(fmt.Sprintf("buffer: writerIndex %d out of range [%d, %d]", i, b.r, b.Capacity()))
	}
	b.w = i
}

func (b *readOnlyBuf) Readable() bool { return b.w > b.r }
func (b *readOnlyBuf) ReadableBytes() int { return b.w - b.r }

func (b *readOnlyBuf) GetByte(i int) byte { return b.b.GetByte(i) }
func (b *readOnlyBuf) GetShort(i int) int16 { return b.b.GetShort(i) }
func (b *readOnlyBuf) GetMedium(i int) int32 { return b.b.GetMedium(i) }
func (b *readOnlyBuf) GetInt(i int) int32 { return b.b.GetInt(i) }
func (b *readOnlyBuf) GetUint(i int) uint32 { return b.b.GetUint(i) }
func (b *readOnlyBuf) GetLong(i int) int64 { return b.b.GetLong(i) }
func (b *readOnlyBuf) GetBytes(i int, dst []byte) { b.b.GetBytes(i, dst) }

func (b *readOnlyBuf) SetByte(int, byte) { panic(api.ErrReadOnly) }
func (b *readOnlyBuf) SetShort(int, int16) { panic(api.ErrReadOnly) }
func (b *readOnlyBuf) SetMedium(int, int32) { panic(api.ErrReadOnly) }
func (b *readOnlyBuf) SetInt(int, int32) { panic(api.ErrReadOnly) }
func (b *readOnlyBuf) SetLong(int, int64) { panic(api.ErrReadOnly) }
func (b *readOnlyBuf) SetBytes(int, []byte) { panic(api.ErrReadOnly) }
func (b *readOnlyBuf) WriteByte(byte) { panic(api.ErrReadOnly) }
func (b *readOnlyBuf) WriteShort(int16) { panic(api.ErrReadOnly) }
func (b *readOnlyBuf) WriteMedium(int32) { panic(api.ErrReadOnly) }
func (b *readOnlyBuf) WriteInt(int32) { panic(api.ErrReadOnly) }
func (b *readOnlyBuf) WriteLong(int64) { panic(api.ErrReadOnly) }
func (b *readOnlyBuf) WriteBytes([]byte) { panic(api.ErrReadOnly) }

func (b *readOnlyBuf) Slice() api.Buf {
	return b.SliceRange(b.r, b.w-b.r)
}

func (b *readOnlyBuf) SliceRange(i, length int) api.Buf {
	if length == 0 {
		return Empty(b.Order())
	}
	return NewReadOnly(b.b.SliceRange(i, length))
}

// Copy returns an ordinary mutable copy; read-only protection applies to
// the shared storage, not to independent snapshots of it.
func (b *readOnlyBuf) Copy() api.Buf {
	dst := make([]byte, b.ReadableBytes())
	b.b.GetBytes(b.r, dst)
	return Wrap(dst, b.Order())
}
