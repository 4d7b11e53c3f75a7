// File: core/buffer/empty.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package buffer

import "github.com/momentics/hioload-buf/api"

// emptyBuf is the zero-capacity view. One immutable flyweight exists per
// byte order; WithOrder switches between them instead of mutating shared
// state. Every construction path whose result would hold zero bytes
// returns one of these instances, never a fresh allocation.
type emptyBuf struct {
	order api.ByteOrder
}

var (
	emptyBig    = &emptyBuf{order: api.BigEndian}
	emptyLittle = &emptyBuf{order: api.LittleEndian}
)

// Empty returns the process-wide zero-capacity flyweight for the given
// byte order.
func Empty(order api.ByteOrder) api.Buf {
	if order == api.LittleEndian {
		return emptyLittle
	}
	return emptyBig
}

func (b *emptyBuf) Order() api.ByteOrder { return b.order }

func (b *emptyBuf) WithOrder(o api.ByteOrder) api.Buf { return Empty(o) }

func (b *emptyBuf) Capacity() int { return 0 }
func (b *emptyBuf) ReaderIndex() int { return 0 }
func (b *emptyBuf) WriterIndex() int { return 0 }

func (b *emptyBuf) SetReaderIndex(i int) {
	if i != 0 {
		panic("buffer: readerIndex out of range on empty buffer")
	}
}

func (b *emptyBuf) SetWriterIndex(i int) {
	if i != 0 {
		panic("buffer: writerIndex out of range on empty buffer")
	}
}

func (b *emptyBuf) Readable() bool { return false }
func (b *emptyBuf) ReadableBytes() int { return 0 }

func (b *emptyBuf) GetByte(int) byte { panic("buffer: index out of range on empty buffer") }
func (b *emptyBuf) GetShort(int) int16 { panic("buffer: index out of range on empty buffer") }
func (b *emptyBuf) GetMedium(int) int32 { panic("buffer: index out of range on empty buffer") }
func (b *emptyBuf) GetInt(int) int32 { panic("buffer: index out of range on empty buffer") }
func (b *emptyBuf) GetUint(int) uint32 { panic("buffer: index out of range on empty buffer") }
func (b *emptyBuf) GetLong(int) int64 { panic("buffer: index out of range on empty buffer") }

func (b *emptyBuf) GetBytes(i int, dst []byte) {
	if i != 0 || len(dst) != 0 {
		panic("buffer: index out of range on empty buffer")
	}
}

func (b *emptyBuf) SetByte(int, byte) { panic("buffer: index out of range on empty buffer") }
func (b *emptyBuf) SetShort(int, int16) { panic("buffer: index out of range on empty buffer") }
func (b *emptyBuf) SetMedium(int, int32) { panic("buffer: index out of range on empty buffer") }
func (b *emptyBuf) SetInt(int, int32) { panic("buffer: index out of range on empty buffer") }
func (b *emptyBuf) SetLong(int, int64) { panic("buffer: index out of range on empty buffer") }

func (b *emptyBuf) SetBytes(i int, src []byte) {
	if i != 0 || len(src) != 0 {
		panic("buffer: index out of range on empty buffer")
	}
}

func (b *emptyBuf) WriteByte(byte) { panic("buffer: write beyond capacity on empty buffer") }
func (b *emptyBuf) WriteShort(int16) { panic("buffer: write beyond capacity on empty buffer") }
func (b *emptyBuf) WriteMedium(int32) { panic("buffer: write beyond capacity on empty buffer") }
func (b *emptyBuf) WriteInt(int32) { panic("buffer: write beyond capacity on empty buffer") }
func (b *emptyBuf) WriteLong(int64) { panic("buffer: write beyond capacity on empty buffer") }

func (b *emptyBuf) WriteBytes(src []byte) {
	if len(src) != 0 {
		panic("buffer: write beyond capacity on empty buffer")
	}
}

func (b *emptyBuf) Slice() api.Buf { return b }

func (b *emptyBuf) SliceRange(i, length int) api.Buf {
	if i != 0 || length != 0 {
		panic("buffer: index out of range on empty buffer")
	}
	return b
}

func (b *emptyBuf) Copy() api.Buf { return b }
