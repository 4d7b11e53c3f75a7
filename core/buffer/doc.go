// Package buffer
// Author: momentics <momentics@gmail.com>
//
// Concrete api.Buf view implementations: heap-backed buffers, wrapped
// caller arrays, mmap-backed native regions, zero-copy slices and
// truncations, composite concatenations, read-only decorators and a
// growable dynamic buffer, plus the shared zero-capacity flyweights.
//
// Wrapped and sliced views alias their source storage: mutations through
// either side are visible through the other, and a view must not outlive
// the storage it references. Copies own their storage exclusively.
// See heap.go, composite.go, region_linux.go for implementation details.
package buffer
