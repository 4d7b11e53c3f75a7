// File: factory/factory.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package factory

import (
	"runtime"

	"github.com/momentics/hioload-buf/api"
	"github.com/momentics/hioload-buf/core/buffer"
)

// New allocates a fixed-capacity big-endian heap buffer with both
// cursors at 0. Capacity 0 returns the shared empty view.
func New(capacity int) api.Buf {
	return buffer.New(capacity)
}

// NewDirect allocates a fixed-capacity big-endian buffer over a native
// memory region (mmap-backed where the platform supports it). The region
// is released when the buffer becomes unreachable; callers needing an
// explicit lifecycle should pair AllocRegion with WrapRegion instead.
func NewDirect(capacity int) (api.Buf, error) {
	if capacity == 0 {
		return buffer.Empty(api.BigEndian), nil
	}
	region, err := buffer.AllocRegion(capacity)
	if err != nil {
		return nil, err
	}
	runtime.SetFinalizer(region, func(r *buffer.Region) { _ = r.Free() })
	b := buffer.WrapRegion(region)
	b.SetWriterIndex(0)
	return b, nil
}

// NewDynamic allocates a growable big-endian buffer whose capacity
// extends automatically as writes demand. estimated is a sizing hint.
func NewDynamic(estimated int) api.Buf {
	return buffer.NewDynamic(estimated)
}

// Unmodifiable wraps b in a view that rejects every mutation. Wrapping
// an already read-only view does not stack decorators.
func Unmodifiable(b api.Buf) api.Buf {
	return buffer.NewReadOnly(b)
}
