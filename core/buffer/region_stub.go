//go:build !linux
// +build !linux

// File: core/buffer/region_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Portable fallback: native regions are plain Go-heap allocations on
// platforms without the mmap path.

package buffer

import "github.com/momentics/hioload-buf/api"

// AllocRegion allocates size bytes on the Go heap.
func AllocRegion(size int) (*Region, error) {
	if size < 0 {
		return nil, api.ErrNegativeLength
	}
	if size == 0 {
		return &Region{order: api.BigEndian}, nil
	}
	return &Region{data: make([]byte, size), order: api.BigEndian}, nil
}

// Free drops the backing storage; the GC reclaims it.
func (r *Region) Free() error {
	r.data = nil
	return nil
}
