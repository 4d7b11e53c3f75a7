// File: core/bufutil/bufutil.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Hashing, equality and lexicographic comparison over api.Buf views.
// All three process words rather than single bytes where possible and
// normalize byte order through the swap primitives, so results are
// identical for any mix of big- and little-endian views.

package bufutil

import "github.com/momentics/hioload-buf/api"

// Hash calculates a content hash of b's readable range.
//
// The range is folded 4 bytes at a time with hash = 31*hash + word; words
// read from little-endian views are swapped to the canonical big-endian
// interpretation first. The trailing 0-3 bytes are folded individually
// (single bytes are order-independent). A final value of 0 is remapped to
// 1 so callers may reserve 0 as an "uncomputed" sentinel.
func Hash(b api.Buf) int32 {
	aLen := b.ReadableBytes()
	intCount := aLen >> 2
	byteCount := aLen & 3

	hash := int32(1)
	i := b.ReaderIndex()
	if b.Order() == api.BigEndian {
		for n := intCount; n > 0; n-- {
			hash = 31*hash + b.GetInt(i)
			i += 4
		}
	} else {
		for n := intCount; n > 0; n-- {
			hash = 31*hash + SwapInt(b.GetInt(i))
			i += 4
		}
	}

	for n := byteCount; n > 0; n-- {
		hash = 31*hash + int32(int8(b.GetByte(i)))
		i++
	}

	if hash == 0 {
		hash = 1
	}
	return hash
}

// Equal reports whether the readable ranges of a and b hold identical
// bytes. The comparison runs 8 bytes at a time, swapping one side when
// the byte orders differ; the result is exactly that of a byte-by-byte
// comparison.
func Equal(a, b api.Buf) bool {
	aLen := a.ReadableBytes()
	if aLen != b.ReadableBytes() {
		return false
	}

	longCount := aLen >> 3
	byteCount := aLen & 7

	aIdx := a.ReaderIndex()
	bIdx := b.ReaderIndex()

	if a.Order() == b.Order() {
		for n := longCount; n > 0; n-- {
			if a.GetLong(aIdx) != b.GetLong(bIdx) {
				return false
			}
			aIdx += 8
			bIdx += 8
		}
	} else {
		for n := longCount; n > 0; n-- {
			if a.GetLong(aIdx) != SwapLong(b.GetLong(bIdx)) {
				return false
			}
			aIdx += 8
			bIdx += 8
		}
	}

	for n := byteCount; n > 0; n-- {
		if a.GetByte(aIdx) != b.GetByte(bIdx) {
			return false
		}
		aIdx++
		bIdx++
	}
	return true
}

// Compare orders a and b by unsigned lexicographic comparison of their
// readable ranges. The common prefix is compared as unsigned 32-bit words
// (swapping for order mismatch), then as unsigned bytes; if the whole
// common prefix is equal the shorter view sorts first and the result is
// the length difference.
func Compare(a, b api.Buf) int {
	aLen := a.ReadableBytes()
	bLen := b.ReadableBytes()
	minLength := aLen
	if bLen < minLength {
		minLength = bLen
	}
	uintCount := minLength >> 2
	byteCount := minLength & 3

	aIdx := a.ReaderIndex()
	bIdx := b.ReaderIndex()

	if a.Order() == b.Order() {
		for n := uintCount; n > 0; n-- {
			va := a.GetUint(aIdx)
			vb := b.GetUint(bIdx)
			if va > vb {
				return 1
			} else if va < vb {
				return -1
			}
			aIdx += 4
			bIdx += 4
		}
	} else {
		for n := uintCount; n > 0; n-- {
			va := a.GetUint(aIdx)
			vb := uint32(SwapInt(b.GetInt(bIdx)))
			if va > vb {
				return 1
			} else if va < vb {
				return -1
			}
			aIdx += 4
			bIdx += 4
		}
	}

	for n := byteCount; n > 0; n-- {
		va := a.GetByte(aIdx)
		vb := b.GetByte(bIdx)
		if va > vb {
			return 1
		} else if va < vb {
			return -1
		}
		aIdx++
		bIdx++
	}

	return aLen - bLen
}
