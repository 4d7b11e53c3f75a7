// File: core/buffer/composite.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Composite view: an ordered sequence of non-composite component views
// presented as one logical contiguous byte sequence, without copying.
// Global indexes map to (component, local offset) through a cumulative
// offset table resolved by binary search.

package buffer

import (
	"fmt"
	"sort"

	"github.com/momentics/hioload-buf/api"
)

type compositeBuf struct {
	order      api.ByteOrder
	components []api.Buf
	// offsets[k] is the global index of components[k]'s first byte;
	// offsets[len(components)] is the total capacity.
	offsets []int
	r, w    int
}

// NewComposite concatenates components into one logical view. Components
// must be non-composite, fully-readable views sharing one byte order;
// the factory validates and pre-flattens its inputs before calling this.
// Zero components degenerate to the shared empty view, one component is
// returned unchanged (no wrapper for a single region).
func NewComposite(order api.ByteOrder, components []api.Buf) api.Buf {
	switch len(components) {
	case 0:
		return Empty(order)
	case 1:
		return components[0]
	}

	comps := make([]api.Buf, len(components))
	offsets := make([]int, len(components)+1)
	for i, c := range components {
		if c.Order() != order {
			panic(api.ErrInconsistentOrder)
		}
		comps[i] = c
		offsets[i+1] = offsets[i] + c.Capacity()
	}
	return &compositeBuf{
		order:      order,
		components: comps,
		offsets:    offsets,
		w:          offsets[len(comps)],
	}
}

func (b *compositeBuf) check(i, n int) {
	if i < 0 || n < 0 || n > b.Capacity()-i {
		panic(fmt.Sprintf("buffer: index out of range: index %d, width %d, capacity %d",
			i, n, b.Capacity()))
	}
}

// componentIndex returns k such that offsets[k] <= i < offsets[k+1].
func (b *compositeBuf) componentIndex(i int) int {
	return sort.Search(len(b.components), func(k int) bool {
		return b.offsets[k+1] > i
	})
}

func (b *compositeBuf) Order() api.ByteOrder { return b.order }

func (b *compositeBuf) WithOrder(o api.ByteOrder) api.Buf {
	if o == b.order {
		return b
	}
	return newSwapped(b)
}

func (b *compositeBuf) Capacity() int { return b.offsets[len(b.components)] }

func (b *compositeBuf) ReaderIndex() int { return b.r }
func (b *compositeBuf) WriterIndex() int { return b.w }

func (b *compositeBuf) SetReaderIndex(i int) {
	if i < 0 || i > b.w {
		panic(fmt.Sprintf("buffer: readerIndex %d out of range [0, %d]", i, b.w))
	}
	b.r = i
}

func (b *compositeBuf) SetWriterIndex(i int) {
	if i < b.r || i > b.Capacity() {
		panic(fmt.Sprintf("buffer: writerIndex %d out of range [%d, %d]", i, b.r, b.Capacity()))
	}
	b.w = i
}

func (b *compositeBuf) Readable() bool { return b.w > b.r }
func (b *compositeBuf) ReadableBytes() int { return b.w - b.r }

func (b *compositeBuf) GetByte(i int) byte {
	b.check(i, 1)
	k := b.componentIndex(i)
	return b.components[k].GetByte(i - b.offsets[k])
}

// getSpanning assembles an n-byte unsigned value that straddles a
// component boundary, honoring the composite's byte order.
func (b *compositeBuf) getSpanning(i, n int) uint64 {
	var v uint64
	if b.order == api.BigEndian {
		for j := 0; j < n; j++ {
			v = v<<8 | uint64(b.GetByte(i+j))
		}
	} else {
		for j := n - 1; j >= 0; j-- {
			v = v<<8 | uint64(b.GetByte(i+j))
		}
	}
	return v
}

// setSpanning writes the low n bytes of v across a component boundary,
// honoring the composite's byte order.
func (b *compositeBuf) setSpanning(i, n int, v uint64) {
	if b.order == api.BigEndian {
		for j := n - 1; j >= 0; j-- {
			b.SetByte(i+j, byte(v))
			v >>= 8
		}
	} else {
		for j := 0; j < n; j++ {
			b.SetByte(i+j, byte(v))
			v >>= 8
		}
	}
}

// contained reports the component wholly holding [i, i+n), or -1 when
// the range straddles a boundary.
func (b *compositeBuf) contained(i, n int) int {
	k := b.componentIndex(i)
	if i+n <= b.offsets[k+1] {
		return k
	}
	return -1
}

func (b *compositeBuf) GetShort(i int) int16 {
	b.check(i, 2)
	if k := b.contained(i, 2); k >= 0 {
		return b.components[k].GetShort(i - b.offsets[k])
	}
	return int16(b.getSpanning(i, 2))
}

func (b *compositeBuf) GetMedium(i int) int32 {
	b.check(i, 3)
	if k := b.contained(i, 3); k >= 0 {
		return b.components[k].GetMedium(i - b.offsets[k])
	}
	v := int32(b.getSpanning(i, 3))
	if v&0x800000 != 0 {
		v |= -0x1000000
	}
	return v
}

func (b *compositeBuf) GetInt(i int) int32 {
	return int32(b.GetUint(i))
}

func (b *compositeBuf) GetUint(i int) uint32 {
	b.check(i, 4)
	if k := b.contained(i, 4); k >= 0 {
		return b.components[k].GetUint(i - b.offsets[k])
	}
	return uint32(b.getSpanning(i, 4))
}

func (b *compositeBuf) GetLong(i int) int64 {
	b.check(i, 8)
	if k := b.contained(i, 8); k >= 0 {
		return b.components[k].GetLong(i - b.offsets[k])
	}
	return int64(b.getSpanning(i, 8))
}

func (b *compositeBuf) GetBytes(i int, dst []byte) {
	b.check(i, len(dst))
	k := b.componentIndex(i)
	for len(dst) > 0 {
		c := b.components[k]
		local := i - b.offsets[k]
		n := b.offsets[k+1] - i
		if n > len(dst) {
			n = len(dst)
		}
		c.GetBytes(local, dst[:n])
		dst = dst[n:]
		i += n
		k++
	}
}

func (b *compositeBuf) SetByte(i int, v byte) {
	b.check(i, 1)
	k := b.componentIndex(i)
	b.components[k].SetByte(i-b.offsets[k], v)
}

func (b *compositeBuf) SetShort(i int, v int16) {
	b.check(i, 2)
	if k := b.contained(i, 2); k >= 0 {
		b.components[k].SetShort(i-b.offsets[k], v)
		return
	}
	b.setSpanning(i, 2, uint64(uint16(v)))
}

func (b *compositeBuf) SetMedium(i int, v int32) {
	b.check(i, 3)
	if k := b.contained(i, 3); k >= 0 {
		b.components[k].SetMedium(i-b.offsets[k], v)
		return
	}
	b.setSpanning(i, 3, uint64(uint32(v))&0xffffff)
}

func (b *compositeBuf) SetInt(i int, v int32) {
	b.check(i, 4)
	if k := b.contained(i, 4); k >= 0 {
		b.components[k].SetInt(i-b.offsets[k], v)
		return
	}
	b.setSpanning(i, 4, uint64(uint32(v)))
}

func (b *compositeBuf) SetLong(i int, v int64) {
	b.check(i, 8)
	if k := b.contained(i, 8); k >= 0 {
		b.components[k].SetLong(i-b.offsets[k], v)
		return
	}
	b.setSpanning(i, 8, uint64(v))
}

func (b *compositeBuf) SetBytes(i int, src []byte) {
	b.check(i, len(src))
	k := b.componentIndex(i)
	for len(src) > 0 {
		c := b.components[k]
		local := i - b.offsets[k]
		n := b.offsets[k+1] - i
		if n > len(src) {
			n = len(src)
		}
		c.SetBytes(local, src[:n])
		src = src[n:]
		i += n
		k++
	}
}

func (b *compositeBuf) WriteByte(v byte) {
	b.SetByte(b.w, v)
	b.w++
}

func (b *compositeBuf) WriteShort(v int16) {
	b.SetShort(b.w, v)
	b.w += 2
}

func (b *compositeBuf) WriteMedium(v int32) {
	b.SetMedium(b.w, v)
	b.w += 3
}

func (b *compositeBuf) WriteInt(v int32) {
	b.SetInt(b.w, v)
	b.w += 4
}

func (b *compositeBuf) WriteLong(v int64) {
	b.SetLong(b.w, v)
	b.w += 8
}

func (b *compositeBuf) WriteBytes(src []byte) {
	b.SetBytes(b.w, src)
	b.w += len(src)
}

func (b *compositeBuf) Slice() api.Buf {
	return b.SliceRange(b.r, b.w-b.r)
}

func (b *compositeBuf) SliceRange(i, length int) api.Buf {
	if length == 0 {
		return Empty(b.order)
	}
	b.check(i, length)
	return NewSlice(b, i, length)
}

func (b *compositeBuf) Copy() api.Buf {
	dst := make([]byte, b.ReadableBytes())
	b.GetBytes(b.r, dst)
	return Wrap(dst, b.order)
}

// Decompose returns the minimal ordered list of non-composite views
// exactly covering [from, from+length), slicing boundary components as
// needed. This is the api.Decomposer capability the factory uses to
// guarantee composites never nest.
func (b *compositeBuf) Decompose(from, length int) []api.Buf {
	b.check(from, length)
	if length == 0 {
		return nil
	}

	out := make([]api.Buf, 0, len(b.components))
	k := b.componentIndex(from)
	for length > 0 {
		c := b.components[k]
		local := from - b.offsets[k]
		n := b.offsets[k+1] - from
		if n > length {
			n = length
		}
		out = append(out, c.SliceRange(local, n))
		from += n
		length -= n
		k++
	}
	return out
}

var _ api.Decomposer = (*compositeBuf)(nil)
