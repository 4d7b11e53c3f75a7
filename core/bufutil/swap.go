// File: core/bufutil/swap.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package bufutil

// SwapShort toggles the endianness of a 16-bit integer.
func SwapShort(v int16) int16 {
	return int16(uint16(v)<<8 | uint16(v)>>8)
}

// SwapMedium toggles the endianness of a 24-bit integer stored in the low
// three bytes of v. Bit 23 of the swapped value is sign-extended into the
// top byte so the result remains a correctly-signed 24-bit quantity.
func SwapMedium(v int32) int32 {
	swapped := v<<16&0xff0000 | v&0xff00 | int32(uint32(v)>>16)&0xff
	if swapped&0x800000 != 0 {
		swapped |= -0x1000000
	}
	return swapped
}

// SwapInt toggles the endianness of a 32-bit integer.
// Composed of two 16-bit swaps.
func SwapInt(v int32) int32 {
	return int32(SwapShort(int16(v)))<<16 |
		int32(SwapShort(int16(uint32(v)>>16)))&0xffff
}

// SwapLong toggles the endianness of a 64-bit integer.
// Composed of two 32-bit swaps.
func SwapLong(v int64) int64 {
	return int64(SwapInt(int32(v)))<<32 |
		int64(SwapInt(int32(uint64(v)>>32)))&0xffffffff
}
