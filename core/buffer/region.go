// File: core/buffer/region.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package buffer

import "github.com/momentics/hioload-buf/api"

// Region is a caller-owned native memory region: mmap-backed on Linux,
// Go-heap elsewhere (see region_linux.go / region_stub.go). It is raw
// storage, not a view; wrap it through the factory to read or write it.
// The region must outlive every view wrapped over it, and Free must not
// run while such views are live.
type Region struct {
	data   []byte
	order  api.ByteOrder
	mapped bool
}

// Bytes exposes the region's backing storage. Mutations through the
// returned slice are visible to every view wrapped over the region.
func (r *Region) Bytes() []byte { return r.data }

// Len reports the region size in bytes.
func (r *Region) Len() int { return len(r.data) }

// Order reports the byte order views over this region inherit.
func (r *Region) Order() api.ByteOrder { return r.order }

// SetOrder changes the byte order later wraps inherit. Views already
// wrapped keep the order they were created with.
func (r *Region) SetOrder(o api.ByteOrder) { r.order = o }

// regionBuf is a wrapped view over a Region. It carries the Region
// pointer so the mapping stays reachable for as long as the view is;
// sub-slices taken from it fall under the usual parent-outlives-slice
// contract.
type regionBuf struct {
	heapBuf
	region *Region
}

// WrapRegion returns a view sharing storage with r, readable over the
// whole region and inheriting its byte order. An empty region yields the
// shared empty view.
func WrapRegion(r *Region) api.Buf {
	if r.Len() == 0 {
		return Empty(r.Order())
	}
	return &regionBuf{
		heapBuf: heapBuf{store{data: r.Bytes(), order: r.Order(), w: r.Len()}},
		region:  r,
	}
}

// The view-producing methods must not fall through to heapBuf: a plain
// wrap of the mapped bytes drops the Region pin, and a finalizer-driven
// Free could then unmap the storage under a still-live sub-view.

func (b *regionBuf) WithOrder(o api.ByteOrder) api.Buf {
	if o == b.order {
		return b
	}
	return newSwapped(b)
}

func (b *regionBuf) Slice() api.Buf {
	return b.SliceRange(b.r, b.w-b.r)
}

func (b *regionBuf) SliceRange(i, length int) api.Buf {
	if length == 0 {
		return Empty(b.order)
	}
	b.check(i, length)
	return &regionBuf{
		heapBuf: heapBuf{store{data: b.data[i : i+length : i+length], order: b.order, w: length}},
		region:  b.region,
	}
}
