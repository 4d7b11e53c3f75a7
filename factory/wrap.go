// File: factory/wrap.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Zero-copy construction paths. Every function here returns a view that
// shares storage with its input; mutations on either side are visible
// through the other.

package factory

import (
	"github.com/eapache/queue"

	"github.com/momentics/hioload-buf/api"
	"github.com/momentics/hioload-buf/core/buffer"
)

// Wrap returns a big-endian view sharing storage with p.
// Zero-length p returns the shared empty view.
func Wrap(p []byte) api.Buf {
	return buffer.Wrap(p, api.BigEndian)
}

// WrapRange returns a big-endian view over p[offset : offset+length].
// The full-array wrap is reused underneath rather than allocating a
// second backing reference: a zero offset yields a truncation of it, a
// non-zero offset a slice of it. Zero length returns the shared empty
// view.
func WrapRange(p []byte, offset, length int) api.Buf {
	if offset == 0 {
		if length == len(p) {
			return Wrap(p)
		}
		if length == 0 {
			return buffer.Empty(api.BigEndian)
		}
		return buffer.NewTruncated(Wrap(p), length)
	}
	if length == 0 {
		return buffer.Empty(api.BigEndian)
	}
	return buffer.NewSlice(Wrap(p), offset, length)
}

// WrapBuf returns a zero-copy view over b's current readable range,
// preserving b's byte order. A nil or unreadable source returns the
// shared empty view.
func WrapBuf(b api.Buf) api.Buf {
	if b == nil {
		return buffer.Empty(api.BigEndian)
	}
	if !b.Readable() {
		return buffer.Empty(b.Order())
	}
	return b.Slice()
}

// WrapRegion returns a view sharing storage with the native region r,
// inheriting its byte order.
func WrapRegion(r *buffer.Region) (api.Buf, error) {
	if r == nil {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "wrap: nil region")
	}
	return buffer.WrapRegion(r), nil
}

// WrapBytes concatenates the given arrays into one big-endian view
// without copying them. Nil and empty arrays are skipped; zero surviving
// inputs return the shared empty view, one surviving input wraps
// directly, more build a composite.
func WrapBytes(arrays ...[]byte) api.Buf {
	switch len(arrays) {
	case 0:
		return buffer.Empty(api.BigEndian)
	case 1:
		return Wrap(arrays[0])
	}

	components := make([]api.Buf, 0, len(arrays))
	for _, a := range arrays {
		if len(a) > 0 {
			components = append(components, Wrap(a))
		}
	}
	return buffer.NewComposite(api.BigEndian, components)
}

// WrapAll concatenates the readable bytes of the given views into one
// logical view without copying. Nil and unreadable inputs are skipped;
// the surviving inputs must agree on byte order or the call fails with
// api.ErrInconsistentOrder. Composite inputs are pre-flattened through
// the api.Decomposer capability, so the result never nests composites.
func WrapAll(bufs ...api.Buf) (api.Buf, error) {
	switch len(bufs) {
	case 0:
		return buffer.Empty(api.BigEndian), nil
	case 1:
		return WrapBuf(bufs[0]), nil
	}

	pending := queue.New()
	for _, b := range bufs {
		if b != nil && b.Readable() {
			pending.Add(b)
		}
	}
	if pending.Length() == 0 {
		return buffer.Empty(api.BigEndian), nil
	}

	order := pending.Peek().(api.Buf).Order()
	components := make([]api.Buf, 0, pending.Length())
	for pending.Length() > 0 {
		c := pending.Remove().(api.Buf)
		if c.Order() != order {
			return nil, api.NewError(api.ErrCodeInconsistentOrder, "wrap: inconsistent byte order").
				WithContext("want", order).WithContext("got", c.Order())
		}
		if d, ok := c.(api.Decomposer); ok {
			components = append(components, d.Decompose(c.ReaderIndex(), c.ReadableBytes())...)
		} else {
			components = append(components, c.Slice())
		}
	}
	return buffer.NewComposite(order, components), nil
}

// WrapRegions concatenates the given native regions into one logical
// view without copying. Nil and empty regions are skipped; the surviving
// regions must agree on byte order or the call fails with
// api.ErrInconsistentOrder.
func WrapRegions(regions ...*buffer.Region) (api.Buf, error) {
	switch len(regions) {
	case 0:
		return buffer.Empty(api.BigEndian), nil
	case 1:
		return WrapRegion(regions[0])
	}

	var (
		haveOrder  bool
		order      api.ByteOrder
		components []api.Buf
	)
	for _, r := range regions {
		if r == nil || r.Len() == 0 {
			continue
		}
		if !haveOrder {
			order, haveOrder = r.Order(), true
		} else if r.Order() != order {
			return nil, api.NewError(api.ErrCodeInconsistentOrder, "wrap: inconsistent region byte order").
				WithContext("want", order).WithContext("got", r.Order())
		}
		components = append(components, buffer.WrapRegion(r))
	}
	if !haveOrder {
		return buffer.Empty(api.BigEndian), nil
	}
	return buffer.NewComposite(order, components), nil
}
