// File: core/buffer/store.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package buffer

import (
	"fmt"

	"github.com/momentics/hioload-buf/api"
)

// store is the shared core of every view backed directly by a byte slice
// (heap buffers, wrapped arrays, native regions, dynamic buffers). It
// implements all of api.Buf except Slice, SliceRange, Copy and WithOrder,
// which need the concrete outer type.
type store struct {
	data  []byte
	order api.ByteOrder
	r, w  int
}

func (s *store) check(i, n int) {
	if i < 0 || n < 0 || n > len(s.data)-i {
		panic(fmt.Sprintf("buffer: index out of range: index %d, width %d, capacity %d",
			i, n, len(s.data)))
	}
}

func (s *store) Order() api.ByteOrder { return s.order }
func (s *store) Capacity() int { return len(s.data) }

func (s *store) ReaderIndex() int { return s.r }
func (s *store) WriterIndex() int { return s.w }

func (s *store) SetReaderIndex(i int) {
	if i < 0 || i > s.w {
		panic(fmt.Sprintf("buffer: readerIndex %d out of range [0, %d]", i, s.w))
	}
	s.r = i
}

func (s *store) SetWriterIndex(i int) {
	if i < s.r || i > len(s.data) {
		panic(fmt.Sprintf("buffer: writerIndex %d out of range [%d, %d]", i, s.r, len(s.data)))
	}
	s.w = i
}

func (s *store) Readable() bool { return s.w > s.r }
func (s *store) ReadableBytes() int { return s.w - s.r }

func (s *store) GetByte(i int) byte {
	s.check(i, 1)
	return s.data[i]
}

func (s *store) GetShort(i int) int16 {
	s.check(i, 2)
	if s.order == api.BigEndian {
		return int16(uint16(s.data[i])<<8 | uint16(s.data[i+1]))
	}
	return int16(uint16(s.data[i]) | uint16(s.data[i+1])<<8)
}

func (s *store) GetMedium(i int) int32 {
	s.check(i, 3)
	var v int32
	if s.order == api.BigEndian {
		v = int32(s.data[i])<<16 | int32(s.data[i+1])<<8 | int32(s.data[i+2])
	} else {
		v = int32(s.data[i]) | int32(s.data[i+1])<<8 | int32(s.data[i+2])<<16
	}
	if v&0x800000 != 0 {
		v |= -0x1000000
	}
	return v
}

func (s *store) GetInt(i int) int32 {
	return int32(s.GetUint(i))
}

func (s *store) GetUint(i int) uint32 {
	s.check(i, 4)
	if s.order == api.BigEndian {
		return uint32(s.data[i])<<24 | uint32(s.data[i+1])<<16 |
			uint32(s.data[i+2])<<8 | uint32(s.data[i+3])
	}
	return uint32(s.data[i]) | uint32(s.data[i+1])<<8 |
		uint32(s.data[i+2])<<16 | uint32(s.data[i+3])<<24
}

func (s *store) GetLong(i int) int64 {
	s.check(i, 8)
	if s.order == api.BigEndian {
		return int64(uint64(s.GetUint(i))<<32 | uint64(s.GetUint(i+4)))
	}
	return int64(uint64(s.GetUint(i)) | uint64(s.GetUint(i+4))<<32)
}

func (s *store) GetBytes(i int, dst []byte) {
	s.check(i, len(dst))
	copy(dst, s.data[i:])
}

func (s *store) SetByte(i int, v byte) {
	s.check(i, 1)
	s.data[i] = v
}

func (s *store) SetShort(i int, v int16) {
	s.check(i, 2)
	if s.order == api.BigEndian {
		s.data[i] = byte(uint16(v) >> 8)
		s.data[i+1] = byte(v)
	} else {
		s.data[i] = byte(v)
		s.data[i+1] = byte(uint16(v) >> 8)
	}
}

func (s *store) SetMedium(i int, v int32) {
	s.check(i, 3)
	if s.order == api.BigEndian {
		s.data[i] = byte(uint32(v) >> 16)
		s.data[i+1] = byte(uint32(v) >> 8)
		s.data[i+2] = byte(v)
	} else {
		s.data[i] = byte(v)
		s.data[i+1] = byte(uint32(v) >> 8)
		s.data[i+2] = byte(uint32(v) >> 16)
	}
}

func (s *store) SetInt(i int, v int32) {
	s.check(i, 4)
	u := uint32(v)
	if s.order == api.BigEndian {
		s.data[i] = byte(u >> 24)
		s.data[i+1] = byte(u >> 16)
		s.data[i+2] = byte(u >> 8)
		s.data[i+3] = byte(u)
	} else {
		s.data[i] = byte(u)
		s.data[i+1] = byte(u >> 8)
		s.data[i+2] = byte(u >> 16)
		s.data[i+3] = byte(u >> 24)
	}
}

func (s *store) SetLong(i int, v int64) {
	s.check(i, 8)
	u := uint64(v)
	if s.order == api.BigEndian {
		s.SetInt(i, int32(u>>32))
		s.SetInt(i+4, int32(u))
	} else {
		s.SetInt(i, int32(u))
		s.SetInt(i+4, int32(u>>32))
	}
}

func (s *store) SetBytes(i int, src []byte) {
	s.check(i, len(src))
	copy(s.data[i:], src)
}

func (s *store) WriteByte(v byte) {
	s.SetByte(s.w, v)
	s.w++
}

func (s *store) WriteShort(v int16) {
	s.SetShort(s.w, v)
	s.w += 2
}

func (s *store) WriteMedium(v int32) {
	s.SetMedium(s.w, v)
	s.w += 3
}

func (s *store) WriteInt(v int32) {
	s.SetInt(s.w, v)
	s.w += 4
}

func (s *store) WriteLong(v int64) {
	s.SetLong(s.w, v)
	s.w += 8
}

func (s *store) WriteBytes(src []byte) {
	s.SetBytes(s.w, src)
	s.w += len(src)
}
