// File: core/bufutil/hexdump.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package bufutil

import "github.com/momentics/hioload-buf/api"

// hexTable maps a byte value to its two lowercase hex digits.
// Built once at process start, read-only afterwards.
var hexTable = func() [512]byte {
	const digits = "0123456789abcdef"
	var t [512]byte
	for i := 0; i < 256; i++ {
		t[i<<1] = digits[i>>4]
		t[i<<1+1] = digits[i&0x0f]
	}
	return t
}()

// HexDump renders the readable bytes of b as lowercase hex digits.
func HexDump(b api.Buf) string {
	s, err := HexDumpRange(b, b.ReaderIndex(), b.ReadableBytes())
	if err != nil {
		panic(err)
	}
	return s
}

// HexDumpRange renders length bytes of b starting at fromIndex as
// lowercase hex digits. The result is always exactly 2*length characters.
// A negative length fails with api.ErrNegativeLength.
func HexDumpRange(b api.Buf, fromIndex, length int) (string, error) {
	if length < 0 {
		return "", api.NewError(api.ErrCodeNegativeLength, "hex dump: negative length").
			WithContext("length", length)
	}
	if length == 0 {
		return "", nil
	}

	out := make([]byte, length<<1)
	for srcIdx, dstIdx := fromIndex, 0; dstIdx < len(out); srcIdx, dstIdx = srcIdx+1, dstIdx+2 {
		v := int(b.GetByte(srcIdx)) << 1
		out[dstIdx] = hexTable[v]
		out[dstIdx+1] = hexTable[v+1]
	}
	return string(out), nil
}
