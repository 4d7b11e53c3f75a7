// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake buffer implementation for testing.
//
// Buf assembles every multi-byte value one byte at a time, with no word
// tricks and no shared code with the real implementations. Tests use it
// as an independent reference when exercising the cross-implementation
// algorithms, and via Claim as a stub that reports a fabricated readable
// length without backing storage.

package fake

import (
	"fmt"

	"github.com/momentics/hioload-buf/api"
)

// Buf is a naive api.Buf implementation over a plain byte slice.
type Buf struct {
	Data  []byte
	order api.ByteOrder
	r, w  int

	// Claim, when positive, overrides ReadableBytes. Used to provoke
	// length-overflow paths that real storage cannot reach.
	Claim int
}

// NewBuf wraps data in a fake view readable over its full length.
func NewBuf(data []byte, order api.ByteOrder) *Buf {
	return &Buf{Data: data, order: order, w: len(data)}
}

// NewClaiming returns a fake view that reports claim readable bytes
// while holding no storage at all.
func NewClaiming(claim int) *Buf {
	return &Buf{order: api.BigEndian, Claim: claim}
}

func (b *Buf) Order() api.ByteOrder { return b.order }

func (b *Buf) WithOrder(o api.ByteOrder) api.Buf {
	if o == b.order {
		return b
	}
	return &Buf{Data: b.Data, order: o, r: b.r, w: b.w}
}

func (b *Buf) Capacity() int { return len(b.Data) }

func (b *Buf) ReaderIndex() int { return b.r }
func (b *Buf) WriterIndex() int { return b.w }

func (b *Buf) SetReaderIndex(i int) { b.r = i }
func (b *Buf) SetWriterIndex(i int) { b.w = i }

func (b *Buf) Readable() bool { return b.ReadableBytes() > 0 }

func (b *Buf) ReadableBytes() int {
	if b.Claim > 0 {
		return b.Claim
	}
	return b.w - b.r
}

func (b *Buf) GetByte(i int) byte { return b.Data[i] }

// get assembles an n-byte unsigned value starting at i.
func (b *Buf) get(i, n int) uint64 {
	var v uint64
	if b.order == api.BigEndian {
		for j := 0; j < n; j++ {
			v = v<<8 | uint64(b.Data[i+j])
		}
	} else {
		for j := n - 1; j >= 0; j-- {
			v = v<<8 | uint64(b.Data[i+j])
		}
	}
	return v
}

// set writes the low n bytes of v starting at i.
func (b *Buf) set(i, n int, v uint64) {
	if b.order == api.BigEndian {
		for j := n - 1; j >= 0; j-- {
			b.Data[i+j] = byte(v)
			v >>= 8
		}
	} else {
		for j := 0; j < n; j++ {
			b.Data[i+j] = byte(v)
			v >>= 8
		}
	}
}

func (b *Buf) GetShort(i int) int16 { return int16(b.get(i, 2)) }

func (b *Buf) GetMedium(i int) int32 {
	v := int32(b.get(i, 3))
	if v&0x800000 != 0 {
		v |= -0x1000000
	}
	return v
}

func (b *Buf) GetInt(i int) int32 { return int32(b.get(i, 4)) }
func (b *Buf) GetUint(i int) uint32 { return uint32(b.get(i, 4)) }
func (b *Buf) GetLong(i int) int64 { return int64(b.get(i, 8)) }

func (b *Buf) GetBytes(i int, dst []byte) {
	if copied := copy(dst, b.Data[i:]); copied != len(dst) {
		panic(fmt.Sprintf("fake: short read: want %d, got %d", len(dst), copied))
	}
}

func (b *Buf) SetByte(i int, v byte) { b.Data[i] = v }
func (b *Buf) SetShort(i int, v int16) { b.set(i, 2, uint64(uint16(v))) }
func (b *Buf) SetMedium(i int, v int32) { b.set(i, 3, uint64(uint32(v))&0xffffff) }
func (b *Buf) SetInt(i int, v int32) { b.set(i, 4, uint64(uint32(v))) }
func (b *Buf) SetLong(i int, v int64) { b.set(i, 8, uint64(v)) }
func (b *Buf) SetBytes(i int, src []byte) { copy(b.Data[i:], src) }

func (b *Buf) WriteByte(v byte) {
	b.SetByte(b.w, v)
	b.w++
}

func (b *Buf) WriteShort(v int16) {
	b.SetShort(b.w, v)
	b.w += 2
}

func (b *Buf) WriteMedium(v int32) {
	b.SetMedium(b.w, v)
	b.w += 3
}

func (b *Buf) WriteInt(v int32) {
	b.SetInt(b.w, v)
	b.w += 4
}

func (b *Buf) WriteLong(v int64) {
	b.SetLong(b.w, v)
	b.w += 8
}

func (b *Buf) WriteBytes(src []byte) {
	b.SetBytes(b.w, src)
	b.w += len(src)
}

func (b *Buf) Slice() api.Buf {
	return b.SliceRange(b.r, b.w-b.r)
}

func (b *Buf) SliceRange(i, length int) api.Buf {
	return NewBuf(b.Data[i:i+length], b.order)
}

func (b *Buf) Copy() api.Buf {
	dst := make([]byte, b.ReadableBytes())
	copy(dst, b.Data[b.r:b.w])
	return NewBuf(dst, b.order)
}

var _ api.Buf = (*Buf)(nil)
