// File: core/buffer/heap.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package buffer

import "github.com/momentics/hioload-buf/api"

// heapBuf is a view over a Go-heap byte slice. It backs both freshly
// allocated buffers (New) and wrapped caller arrays (Wrap); in the
// wrapped case the caller keeps ownership of the slice and mutations on
// either side are visible through the other.
type heapBuf struct {
	store
}

// New allocates a fixed-capacity big-endian heap buffer. ReaderIndex and
// WriterIndex start at 0. Capacity 0 yields the shared empty view.
func New(capacity int) api.Buf {
	if capacity == 0 {
		return Empty(api.BigEndian)
	}
	return &heapBuf{store{data: make([]byte, capacity), order: api.BigEndian}}
}

// Wrap returns a view sharing storage with p, readable over all of p.
// Zero-length p yields the shared empty view for the given order.
func Wrap(p []byte, order api.ByteOrder) api.Buf {
	if len(p) == 0 {
		return Empty(order)
	}
	return &heapBuf{store{data: p, order: order, w: len(p)}}
}

func (b *heapBuf) WithOrder(o api.ByteOrder) api.Buf {
	if o == b.order {
		return b
	}
	return newSwapped(b)
}

func (b *heapBuf) Slice() api.Buf {
	return b.SliceRange(b.r, b.w-b.r)
}

func (b *heapBuf) SliceRange(i, length int) api.Buf {
	if length == 0 {
		return Empty(b.order)
	}
	b.check(i, length)
	return Wrap(b.data[i:i+length:i+length], b.order)
}

func (b *heapBuf) Copy() api.Buf {
	dst := make([]byte, b.ReadableBytes())
	copy(dst, b.data[b.r:b.w])
	return Wrap(dst, b.order)
}
