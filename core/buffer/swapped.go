// File: core/buffer/swapped.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package buffer

import (
	"github.com/momentics/hioload-buf/api"
	"github.com/momentics/hioload-buf/core/bufutil"
)

// swappedBuf reinterprets multi-byte accesses of an underlying view in
// the opposite byte order. Storage and cursors are shared with the
// underlying view; only the interpretation changes. Every view kind uses
// this one wrapper for WithOrder, so order flips never mutate the source.
type swappedBuf struct {
	b api.Buf
}

func newSwapped(b api.Buf) api.Buf { return &swappedBuf{b: b} }

func (s *swappedBuf) Order() api.ByteOrder {
	if s.b.Order() == api.BigEndian {
		return api.LittleEndian
	}
	return api.BigEndian
}

func (s *swappedBuf) WithOrder(o api.ByteOrder) api.Buf {
	if o == s.Order() {
		return s
	}
	return s.b
}

func (s *swappedBuf) Capacity() int { return s.b.Capacity() }
func (s *swappedBuf) ReaderIndex() int { return s.b.ReaderIndex() }
func (s *swappedBuf) WriterIndex() int { return s.b.WriterIndex() }
func (s *swappedBuf) SetReaderIndex(i int) { s.b.SetReaderIndex(i) }
func (s *swappedBuf) SetWriterIndex(i int) { s.b.SetWriterIndex(i) }
func (s *swappedBuf) Readable() bool { return s.b.Readable() }
func (s *swappedBuf) ReadableBytes() int { return s.b.ReadableBytes() }

func (s *swappedBuf) GetByte(i int) byte { return s.b.GetByte(i) }
func (s *swappedBuf) GetShort(i int) int16 { return bufutil.SwapShort(s.b.GetShort(i)) }

func (s *swappedBuf) GetMedium(i int) int32 { return bufutil.SwapMedium(s.b.GetMedium(i)) }
func (s *swappedBuf) GetInt(i int) int32 { return bufutil.SwapInt(s.b.GetInt(i)) }
func (s *swappedBuf) GetUint(i int) uint32 { return uint32(bufutil.SwapInt(s.b.GetInt(i))) }
func (s *swappedBuf) GetLong(i int) int64 { return bufutil.SwapLong(s.b.GetLong(i)) }

func (s *swappedBuf) GetBytes(i int, dst []byte) { s.b.GetBytes(i, dst) }

func (s *swappedBuf) SetByte(i int, v byte) { s.b.SetByte(i, v) }
func (s *swappedBuf) SetShort(i int, v int16) { s.b.SetShort(i, bufutil.SwapShort(v)) }
func (s *swappedBuf) SetMedium(i int, v int32) { s.b.SetMedium(i, bufutil.SwapMedium(v)) }
func (s *swappedBuf) SetInt(i int, v int32) { s.b.SetInt(i, bufutil.SwapInt(v)) }
func (s *swappedBuf) SetLong(i int, v int64) { s.b.SetLong(i, bufutil.SwapLong(v)) }

func (s *swappedBuf) SetBytes(i int, src []byte) { s.b.SetBytes(i, src) }

func (s *swappedBuf) WriteByte(v byte) { s.b.WriteByte(v) }
func (s *swappedBuf) WriteShort(v int16) { s.b.WriteShort(bufutil.SwapShort(v)) }
func (s *swappedBuf) WriteMedium(v int32) { s.b.WriteMedium(bufutil.SwapMedium(v)) }
func (s *swappedBuf) WriteInt(v int32) { s.b.WriteInt(bufutil.SwapInt(v)) }
func (s *swappedBuf) WriteLong(v int64) { s.b.WriteLong(bufutil.SwapLong(v)) }

func (s *swappedBuf) WriteBytes(src []byte) { s.b.WriteBytes(src) }

func (s *swappedBuf) Slice() api.Buf {
	return s.SliceRange(s.ReaderIndex(), s.ReadableBytes())
}

func (s *swappedBuf) SliceRange(i, length int) api.Buf {
	if length == 0 {
		return Empty(s.Order())
	}
	return newSwapped(s.b.SliceRange(i, length))
}

func (s *swappedBuf) Copy() api.Buf {
	if !s.Readable() {
		return Empty(s.Order())
	}
	return newSwapped(s.b.Copy())
}
