// Package api
// Author: momentics
//
// Capability interfaces for zero-copy byte-buffer views.
//
// A Buf is a view over a byte sequence: absolute positional access over
// [0, Capacity()), two cursors bounding the readable range, and a byte
// order governing multi-byte reads and writes. Views may alias caller
// memory (wrap) or own it exclusively (copy); the aliasing contract is
// part of the interface, not an accident.

package api

// ByteOrder selects how multi-byte integers are interpreted.
// It never affects how single bytes are stored.
type ByteOrder int

const (
	// BigEndian stores the most significant byte first.
	BigEndian ByteOrder = iota
	// LittleEndian stores the least significant byte first.
	LittleEndian
)

func (o ByteOrder) String() string {
	if o == LittleEndian {
		return "little-endian"
	}
	return "big-endian"
}

// Buf is the minimum contract any buffer implementation must satisfy
// to be usable by the factory and the cross-implementation algorithms.
//
// Positional Get/Set methods address absolute indexes in [0, Capacity())
// and never move the cursors; an out-of-range access panics. Write
// methods append at WriterIndex and advance it. Invariant:
// 0 <= ReaderIndex() <= WriterIndex() <= Capacity().
type Buf interface {
	// Order reports the byte order of multi-byte accesses.
	Order() ByteOrder

	// WithOrder returns a view over the same storage interpreting
	// multi-byte values in the given order. The receiver is not mutated.
	WithOrder(o ByteOrder) Buf

	Capacity() int

	ReaderIndex() int
	WriterIndex() int
	SetReaderIndex(i int)
	SetWriterIndex(i int)

	// Readable reports whether ReadableBytes() > 0.
	Readable() bool
	// ReadableBytes is WriterIndex() - ReaderIndex().
	ReadableBytes() int

	GetByte(i int) byte
	GetShort(i int) int16
	// GetMedium reads a signed 24-bit integer from the low three bytes,
	// sign-extended.
	GetMedium(i int) int32
	GetInt(i int) int32
	GetUint(i int) uint32
	GetLong(i int) int64
	// GetBytes copies len(dst) bytes starting at i into dst.
	GetBytes(i int, dst []byte)

	SetByte(i int, v byte)
	SetShort(i int, v int16)
	SetMedium(i int, v int32)
	SetInt(i int, v int32)
	SetLong(i int, v int64)
	// SetBytes copies src into the buffer starting at i.
	SetBytes(i int, src []byte)

	WriteByte(v byte)
	WriteShort(v int16)
	WriteMedium(v int32)
	WriteInt(v int32)
	WriteLong(v int64)
	WriteBytes(src []byte)

	// Slice returns a zero-copy view over the current readable range.
	Slice() Buf
	// SliceRange returns a zero-copy view over [i, i+length).
	SliceRange(i, length int) Buf
	// Copy returns a deep copy of the current readable range. The copy
	// owns its storage exclusively and never aliases the receiver.
	Copy() Buf
}

// Decomposer is the optional capability of composite-aware views.
// Decompose returns the minimal ordered list of non-composite views
// exactly covering [from, from+length), splitting boundary components
// into partial slices as needed. Callers query this capability instead
// of inspecting concrete types.
type Decomposer interface {
	Decompose(from, length int) []Buf
}

// IndexFinder is a predicate over a single buffer position, used by the
// predicate forms of the search algorithms.
type IndexFinder func(b Buf, i int) bool
