package bufutil_test

import (
	"bytes"
	"encoding/binary"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-buf/api"
	"github.com/momentics/hioload-buf/core/buffer"
	"github.com/momentics/hioload-buf/core/bufutil"
	"github.com/momentics/hioload-buf/fake"
)

// refHash folds big-endian words then trailing signed bytes, straight
// off a raw byte slice. Views of any byte order over the same bytes must
// hash to this value.
func refHash(data []byte) int32 {
	h := int32(1)
	i := 0
	for ; i+4 <= len(data); i += 4 {
		h = 31*h + int32(binary.BigEndian.Uint32(data[i:]))
	}
	for ; i < len(data); i++ {
		h = 31*h + int32(int8(data[i]))
	}
	if h == 0 {
		h = 1
	}
	return h
}

func signum(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// views builds one view per implementation and byte order over data.
func views(data []byte) []api.Buf {
	return []api.Buf{
		buffer.Wrap(data, api.BigEndian),
		buffer.Wrap(data, api.LittleEndian),
		buffer.Wrap(data, api.BigEndian).WithOrder(api.LittleEndian),
		fake.NewBuf(data, api.BigEndian),
		fake.NewBuf(data, api.LittleEndian),
	}
}

func TestHashMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for length := 0; length <= 257; length++ {
		data := make([]byte, length)
		rng.Read(data)
		want := refHash(data)
		for i, v := range views(data) {
			assert.Equal(t, want, bufutil.Hash(v), "length %d view %d", length, i)
		}
	}
}

func TestHashNeverZero(t *testing.T) {
	// An empty range folds to the seed value 1.
	assert.Equal(t, int32(1), bufutil.Hash(buffer.Empty(api.BigEndian)))
}

func TestEqualMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for length := 0; length <= 257; length++ {
		a := make([]byte, length)
		rng.Read(a)
		same := append([]byte(nil), a...)
		differ := append([]byte(nil), a...)
		if length > 0 {
			differ[rng.Intn(length)] ^= 0x80
		}

		for i, va := range views(a) {
			for j, vb := range views(same) {
				assert.True(t, bufutil.Equal(va, vb), "length %d views %d/%d", length, i, j)
			}
			if length > 0 {
				vb := buffer.Wrap(differ, api.LittleEndian)
				assert.False(t, bufutil.Equal(va, vb), "length %d view %d", length, i)
			}
		}
	}
}

func TestEqualLengthMismatch(t *testing.T) {
	a := buffer.Wrap([]byte{1, 2, 3}, api.BigEndian)
	b := buffer.Wrap([]byte{1, 2}, api.BigEndian)
	assert.False(t, bufutil.Equal(a, b))
}

func TestCompareMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 500; trial++ {
		a := make([]byte, rng.Intn(258))
		b := make([]byte, rng.Intn(258))
		rng.Read(a)
		rng.Read(b)
		if trial%3 == 0 && len(a) > 0 {
			// Force shared prefixes so the word loop gets exercised.
			n := copy(b, a)
			b = b[:n]
		}

		want := signum(bytes.Compare(a, b))
		for i, va := range views(a) {
			for j, vb := range views(b) {
				got := signum(bufutil.Compare(va, vb))
				require.Equal(t, want, got, "trial %d views %d/%d", trial, i, j)
			}
		}
	}
}

func TestComparePrefixExtension(t *testing.T) {
	long := []byte{1, 2, 3, 4, 5, 6, 7}
	a := buffer.Wrap(long, api.BigEndian)
	b := buffer.Wrap(long[:3], api.LittleEndian)
	assert.Equal(t, 4, bufutil.Compare(a, b))
	assert.Equal(t, -4, bufutil.Compare(b, a))
	assert.Equal(t, 0, bufutil.Compare(a, a))
}

func TestCompareUnsigned(t *testing.T) {
	// 0x80 must sort above 0x7f: comparison is unsigned bytes, not signed.
	a := buffer.Wrap([]byte{0x80}, api.BigEndian)
	b := buffer.Wrap([]byte{0x7f}, api.BigEndian)
	assert.Equal(t, 1, signum(bufutil.Compare(a, b)))
}

func TestHashEqualsCompareConsistency(t *testing.T) {
	data := []byte{0xde, 0xad, 0xbe, 0xef, 0x01, 0x02, 0x03}
	a := buffer.Wrap(data, api.BigEndian)
	b := fake.NewBuf(append([]byte(nil), data...), api.LittleEndian)

	assert.True(t, bufutil.Equal(a, b))
	assert.Equal(t, bufutil.Hash(a), bufutil.Hash(b))
	assert.Equal(t, 0, bufutil.Compare(a, b))
}
