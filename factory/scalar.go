// File: factory/scalar.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Scalar convenience constructors: pack single values or sequences of
// values into exactly-sized, fully-written big-endian buffers.

package factory

import (
	"math"

	"github.com/momentics/hioload-buf/api"
	"github.com/momentics/hioload-buf/core/buffer"
)

// CopyShort returns a 2-byte big-endian buffer holding value.
func CopyShort(value int16) api.Buf {
	b := buffer.New(2)
	b.WriteShort(value)
	return b
}

// CopyShorts returns a big-endian buffer holding the given 16-bit
// integers in sequence. No values returns the shared empty view.
func CopyShorts(values ...int16) api.Buf {
	if len(values) == 0 {
		return buffer.Empty(api.BigEndian)
	}
	b := buffer.New(len(values) * 2)
	for _, v := range values {
		b.WriteShort(v)
	}
	return b
}

// CopyMedium returns a 3-byte big-endian buffer holding the low 24 bits
// of value.
func CopyMedium(value int32) api.Buf {
	b := buffer.New(3)
	b.WriteMedium(value)
	return b
}

// CopyMediums returns a big-endian buffer holding the given 24-bit
// integers in sequence.
func CopyMediums(values ...int32) api.Buf {
	if len(values) == 0 {
		return buffer.Empty(api.BigEndian)
	}
	b := buffer.New(len(values) * 3)
	for _, v := range values {
		b.WriteMedium(v)
	}
	return b
}

// CopyInt returns a 4-byte big-endian buffer holding value.
func CopyInt(value int32) api.Buf {
	b := buffer.New(4)
	b.WriteInt(value)
	return b
}

// CopyInts returns a big-endian buffer holding the given 32-bit integers
// in sequence.
func CopyInts(values ...int32) api.Buf {
	if len(values) == 0 {
		return buffer.Empty(api.BigEndian)
	}
	b := buffer.New(len(values) * 4)
	for _, v := range values {
		b.WriteInt(v)
	}
	return b
}

// CopyLong returns an 8-byte big-endian buffer holding value.
func CopyLong(value int64) api.Buf {
	b := buffer.New(8)
	b.WriteLong(value)
	return b
}

// CopyLongs returns a big-endian buffer holding the given 64-bit
// integers in sequence.
func CopyLongs(values ...int64) api.Buf {
	if len(values) == 0 {
		return buffer.Empty(api.BigEndian)
	}
	b := buffer.New(len(values) * 8)
	for _, v := range values {
		b.WriteLong(v)
	}
	return b
}

// CopyBool returns a single-byte buffer holding value as 0 or 1.
func CopyBool(value bool) api.Buf {
	b := buffer.New(1)
	b.WriteByte(boolByte(value))
	return b
}

// CopyBools returns a buffer holding the given booleans in sequence,
// one byte each.
func CopyBools(values ...bool) api.Buf {
	if len(values) == 0 {
		return buffer.Empty(api.BigEndian)
	}
	b := buffer.New(len(values))
	for _, v := range values {
		b.WriteByte(boolByte(v))
	}
	return b
}

// CopyFloat returns a 4-byte big-endian buffer holding the IEEE 754
// representation of value.
func CopyFloat(value float32) api.Buf {
	b := buffer.New(4)
	b.WriteInt(int32(math.Float32bits(value)))
	return b
}

// CopyFloats returns a big-endian buffer holding the given 32-bit
// floating point numbers in sequence.
func CopyFloats(values ...float32) api.Buf {
	if len(values) == 0 {
		return buffer.Empty(api.BigEndian)
	}
	b := buffer.New(len(values) * 4)
	for _, v := range values {
		b.WriteInt(int32(math.Float32bits(v)))
	}
	return b
}

// CopyDouble returns an 8-byte big-endian buffer holding the IEEE 754
// representation of value.
func CopyDouble(value float64) api.Buf {
	b := buffer.New(8)
	b.WriteLong(int64(math.Float64bits(value)))
	return b
}

// CopyDoubles returns a big-endian buffer holding the given 64-bit
// floating point numbers in sequence.
func CopyDoubles(values ...float64) api.Buf {
	if len(values) == 0 {
		return buffer.Empty(api.BigEndian)
	}
	b := buffer.New(len(values) * 8)
	for _, v := range values {
		b.WriteLong(int64(math.Float64bits(v)))
	}
	return b
}

func boolByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}
