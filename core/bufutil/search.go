// File: core/bufutil/search.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package bufutil

import "github.com/momentics/hioload-buf/api"

// IndexOf locates value in b. When fromIndex <= toIndex the scan runs
// forward over [fromIndex, toIndex); otherwise it runs backward from
// fromIndex-1 down to toIndex inclusive and reports the highest matching
// index. Returns -1 when nothing matches or b has zero capacity.
//
// The dual-direction signature is kept for compatibility with existing
// buffer implementations; FirstIndexOf and LastIndexOf expose the two
// directions explicitly.
func IndexOf(b api.Buf, fromIndex, toIndex int, value byte) int {
	if fromIndex <= toIndex {
		return FirstIndexOf(b, fromIndex, toIndex, value)
	}
	return LastIndexOf(b, fromIndex, toIndex, value)
}

// IndexOfFunc is the predicate form of IndexOf.
func IndexOfFunc(b api.Buf, fromIndex, toIndex int, finder api.IndexFinder) int {
	if fromIndex <= toIndex {
		return FirstIndexOfFunc(b, fromIndex, toIndex, finder)
	}
	return LastIndexOfFunc(b, fromIndex, toIndex, finder)
}

// FirstIndexOf scans [fromIndex, toIndex) forward for value.
// fromIndex is clamped to >= 0.
func FirstIndexOf(b api.Buf, fromIndex, toIndex int, value byte) int {
	if fromIndex < 0 {
		fromIndex = 0
	}
	if fromIndex >= toIndex || b.Capacity() == 0 {
		return -1
	}
	for i := fromIndex; i < toIndex; i++ {
		if b.GetByte(i) == value {
			return i
		}
	}
	return -1
}

// LastIndexOf scans backward from fromIndex-1 down to toIndex inclusive
// for value. fromIndex is clamped to <= Capacity().
func LastIndexOf(b api.Buf, fromIndex, toIndex int, value byte) int {
	if c := b.Capacity(); fromIndex > c {
		fromIndex = c
	}
	if fromIndex < 0 || b.Capacity() == 0 {
		return -1
	}
	for i := fromIndex - 1; i >= toIndex; i-- {
		if b.GetByte(i) == value {
			return i
		}
	}
	return -1
}

// FirstIndexOfFunc scans [fromIndex, toIndex) forward for the first
// position satisfying finder.
func FirstIndexOfFunc(b api.Buf, fromIndex, toIndex int, finder api.IndexFinder) int {
	if fromIndex < 0 {
		fromIndex = 0
	}
	if fromIndex >= toIndex || b.Capacity() == 0 {
		return -1
	}
	for i := fromIndex; i < toIndex; i++ {
		if finder(b, i) {
			return i
		}
	}
	return -1
}

// LastIndexOfFunc scans backward from fromIndex-1 down to toIndex
// inclusive for the highest position satisfying finder.
func LastIndexOfFunc(b api.Buf, fromIndex, toIndex int, finder api.IndexFinder) int {
	if c := b.Capacity(); fromIndex > c {
		fromIndex = c
	}
	if fromIndex < 0 || b.Capacity() == 0 {
		return -1
	}
	for i := fromIndex - 1; i >= toIndex; i-- {
		if finder(b, i) {
			return i
		}
	}
	return -1
}
