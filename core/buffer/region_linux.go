//go:build linux
// +build linux

// File: core/buffer/region_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux-specific native region allocation via anonymous private mmap.
// Falls back to the Go heap when the mapping fails.

package buffer

import (
	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-buf/api"
)

// AllocRegion maps size bytes of anonymous memory outside the Go heap.
// Size 0 yields an empty, unmapped region.
func AllocRegion(size int) (*Region, error) {
	if size < 0 {
		return nil, api.ErrNegativeLength
	}
	if size == 0 {
		return &Region{order: api.BigEndian}, nil
	}

	data, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		// Mapping can fail under memory pressure; the Go heap still works.
		return &Region{data: make([]byte, size), order: api.BigEndian}, nil
	}
	return &Region{data: data, order: api.BigEndian, mapped: true}, nil
}

// Free returns mapped memory to the OS. The region and every view over
// it must not be used afterwards.
func (r *Region) Free() error {
	if !r.mapped {
		r.data = nil
		return nil
	}
	data := r.data
	r.data = nil
	r.mapped = false
	return unix.Munmap(data)
}
