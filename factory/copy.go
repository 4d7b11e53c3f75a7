// File: factory/copy.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Deep-copy construction paths, including variadic merge-copies that
// fold several sources into one contiguous allocation. Copy results own
// their storage exclusively and never alias their inputs.

package factory

import (
	"math"

	"golang.org/x/text/encoding"

	"github.com/momentics/hioload-buf/api"
	"github.com/momentics/hioload-buf/core/buffer"
	"github.com/momentics/hioload-buf/core/charset"
)

// Copy returns a big-endian buffer holding an independent copy of p.
// Zero-length p returns the shared empty view without allocating.
func Copy(p []byte) api.Buf {
	if len(p) == 0 {
		return buffer.Empty(api.BigEndian)
	}
	dst := make([]byte, len(p))
	copy(dst, p)
	return Wrap(dst)
}

// CopyRange returns a big-endian buffer holding an independent copy of
// p[offset : offset+length]. Zero length returns the shared empty view.
func CopyRange(p []byte, offset, length int) api.Buf {
	if length == 0 {
		return buffer.Empty(api.BigEndian)
	}
	dst := make([]byte, length)
	copy(dst, p[offset:offset+length])
	return Wrap(dst)
}

// CopyBuf returns an independent copy of b's current readable bytes,
// delegating to b's own copy capability so implementation-specific
// optimizations apply. A nil or unreadable source returns the shared
// empty view.
func CopyBuf(b api.Buf) api.Buf {
	if b == nil {
		return buffer.Empty(api.BigEndian)
	}
	if !b.Readable() {
		return buffer.Empty(b.Order())
	}
	return b.Copy()
}

// CopyBytes returns a big-endian buffer holding a merged copy of the
// given arrays in order. The call fails with api.ErrLengthOverflow if
// the summed length is not representable; no allocation happens in that
// case.
func CopyBytes(arrays ...[]byte) (api.Buf, error) {
	switch len(arrays) {
	case 0:
		return buffer.Empty(api.BigEndian), nil
	case 1:
		return Copy(arrays[0]), nil
	}

	length := 0
	for _, a := range arrays {
		if math.MaxInt-length < len(a) {
			return nil, api.NewError(api.ErrCodeOverflow, "copy: merged array length overflows int").
				WithContext("accumulated", length).WithContext("next", len(a))
		}
		length += len(a)
	}
	if length == 0 {
		return buffer.Empty(api.BigEndian), nil
	}

	merged := make([]byte, length)
	j := 0
	for _, a := range arrays {
		copy(merged[j:], a)
		j += len(a)
	}
	return Wrap(merged), nil
}

// CopyAll returns a buffer holding a merged copy of the given views'
// readable bytes in order, carrying their common byte order. Mixed
// orders fail with api.ErrInconsistentOrder and an unrepresentable total
// length with api.ErrLengthOverflow, both before any allocation.
func CopyAll(bufs ...api.Buf) (api.Buf, error) {
	switch len(bufs) {
	case 0:
		return buffer.Empty(api.BigEndian), nil
	case 1:
		return CopyBuf(bufs[0]), nil
	}

	var (
		haveOrder bool
		order     api.ByteOrder
		length    int
	)
	for _, b := range bufs {
		if b == nil {
			continue
		}
		bLen := b.ReadableBytes()
		if bLen <= 0 {
			continue
		}
		if math.MaxInt-length < bLen {
			return nil, api.NewError(api.ErrCodeOverflow, "copy: merged buffer length overflows int").
				WithContext("accumulated", length).WithContext("next", bLen)
		}
		length += bLen
		if !haveOrder {
			order, haveOrder = b.Order(), true
		} else if b.Order() != order {
			return nil, api.NewError(api.ErrCodeInconsistentOrder, "copy: inconsistent byte order").
				WithContext("want", order).WithContext("got", b.Order())
		}
	}
	if length == 0 {
		return buffer.Empty(api.BigEndian), nil
	}

	merged := make([]byte, length)
	j := 0
	for _, b := range bufs {
		if b == nil || !b.Readable() {
			continue
		}
		bLen := b.ReadableBytes()
		b.GetBytes(b.ReaderIndex(), merged[j:j+bLen])
		j += bLen
	}
	return buffer.Wrap(merged, order), nil
}

// CopyRegions returns a buffer holding a merged copy of the given native
// regions in order, carrying their common byte order. Validation matches
// CopyAll.
func CopyRegions(regions ...*buffer.Region) (api.Buf, error) {
	var (
		haveOrder bool
		order     api.ByteOrder
		length    int
	)
	for _, r := range regions {
		if r == nil || r.Len() == 0 {
			continue
		}
		if math.MaxInt-length < r.Len() {
			return nil, api.NewError(api.ErrCodeOverflow, "copy: merged region length overflows int").
				WithContext("accumulated", length).WithContext("next", r.Len())
		}
		length += r.Len()
		if !haveOrder {
			order, haveOrder = r.Order(), true
		} else if r.Order() != order {
			return nil, api.NewError(api.ErrCodeInconsistentOrder, "copy: inconsistent region byte order").
				WithContext("want", order).WithContext("got", r.Order())
		}
	}
	if length == 0 {
		return buffer.Empty(api.BigEndian), nil
	}

	merged := make([]byte, length)
	j := 0
	for _, r := range regions {
		if r == nil || r.Len() == 0 {
			continue
		}
		copy(merged[j:], r.Bytes())
		j += r.Len()
	}
	return buffer.Wrap(merged, order), nil
}

// CopiedString returns a big-endian buffer holding s encoded under enc.
// Codec failures are returned unchanged; an empty encoding result
// returns the shared empty view.
func CopiedString(s string, enc encoding.Encoding) (api.Buf, error) {
	encoded, err := charset.Encode(s, enc)
	if err != nil {
		return nil, err
	}
	if len(encoded) == 0 {
		return buffer.Empty(api.BigEndian), nil
	}
	return Wrap(encoded), nil
}

// CopiedStringRange encodes the byte sub-range s[offset : offset+length]
// under enc. Zero length returns the shared empty view.
func CopiedStringRange(s string, offset, length int, enc encoding.Encoding) (api.Buf, error) {
	if length == 0 {
		return buffer.Empty(api.BigEndian), nil
	}
	return CopiedString(s[offset:offset+length], enc)
}

// DecodeString renders b's readable bytes as a string under enc. Codec
// failures are returned unchanged.
func DecodeString(b api.Buf, enc encoding.Encoding) (string, error) {
	if b == nil {
		return "", api.NewError(api.ErrCodeInvalidArgument, "decode: nil buffer")
	}
	readable := make([]byte, b.ReadableBytes())
	b.GetBytes(b.ReaderIndex(), readable)
	return charset.Decode(readable, enc)
}
