// File: core/buffer/dynamic.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package buffer

import "github.com/momentics/hioload-buf/api"

// dynamicBuf grows its backing array on demand so sequential writes never
// run out of capacity. Slices taken before a growth keep aliasing the old
// backing array; callers that need stable aliasing should size the buffer
// up front or use Copy.
type dynamicBuf struct {
	store
}

const minDynamicCapacity = 64

// NewDynamic allocates a growable big-endian buffer. estimated sizes the
// initial backing array; a more accurate estimate means fewer
// reallocations, never a correctness difference.
func NewDynamic(estimated int) api.Buf {
	if estimated < minDynamicCapacity {
		estimated = minDynamicCapacity
	}
	return &dynamicBuf{store{data: make([]byte, estimated), order: api.BigEndian}}
}

// ensure grows the backing array to fit n more bytes at the writer index.
func (b *dynamicBuf) ensure(n int) {
	needed := b.w + n
	if needed <= len(b.data) {
		return
	}
	newCap := len(b.data)
	for newCap < needed {
		newCap <<= 1
	}
	grown := make([]byte, newCap)
	copy(grown, b.data)
	b.data = grown
}

func (b *dynamicBuf) WriteByte(v byte) {
	b.ensure(1)
	b.store.WriteByte(v)
}

func (b *dynamicBuf) WriteShort(v int16) {
	b.ensure(2)
	b.store.WriteShort(v)
}

func (b *dynamicBuf) WriteMedium(v int32) {
	b.ensure(3)
	b.store.WriteMedium(v)
}

func (b *dynamicBuf) WriteInt(v int32) {
	b.ensure(4)
	b.store.WriteInt(v)
}

func (b *dynamicBuf) WriteLong(v int64) {
	b.ensure(8)
	b.store.WriteLong(v)
}

func (b *dynamicBuf) WriteBytes(src []byte) {
	b.ensure(len(src))
	b.store.WriteBytes(src)
}

func (b *dynamicBuf) WithOrder(o api.ByteOrder) api.Buf {
	if o == b.order {
		return b
	}
	return newSwapped(b)
}

func (b *dynamicBuf) Slice() api.Buf {
	return b.SliceRange(b.r, b.w-b.r)
}

func (b *dynamicBuf) SliceRange(i, length int) api.Buf {
	if length == 0 {
		return Empty(b.order)
	}
	b.check(i, length)
	return Wrap(b.data[i:i+length:i+length], b.order)
}

func (b *dynamicBuf) Copy() api.Buf {
	dst := make([]byte, b.ReadableBytes())
	copy(dst, b.data[b.r:b.w])
	return Wrap(dst, b.order)
}
