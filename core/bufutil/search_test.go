package bufutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/momentics/hioload-buf/api"
	"github.com/momentics/hioload-buf/core/buffer"
	"github.com/momentics/hioload-buf/core/bufutil"
)

func TestIndexOfForward(t *testing.T) {
	b := buffer.Wrap([]byte{0, 1, 2, 1, 0}, api.BigEndian)

	assert.Equal(t, 1, bufutil.IndexOf(b, 0, 5, 1))
	assert.Equal(t, 3, bufutil.IndexOf(b, 2, 5, 1))
	assert.Equal(t, -1, bufutil.IndexOf(b, 0, 5, 9))
	// Negative fromIndex clamps to 0.
	assert.Equal(t, 0, bufutil.IndexOf(b, -3, 5, 0))
	// Empty range finds nothing.
	assert.Equal(t, -1, bufutil.IndexOf(b, 2, 2, 2))
}

func TestIndexOfBackward(t *testing.T) {
	b := buffer.Wrap([]byte{0, 1, 2, 1, 0}, api.BigEndian)

	// fromIndex > toIndex scans backward from fromIndex-1 down to toIndex
	// and reports the highest match.
	assert.Equal(t, 3, bufutil.IndexOf(b, 5, 0, 1))
	assert.Equal(t, 1, bufutil.IndexOf(b, 3, 0, 1))
	// toIndex is inclusive on the backward scan.
	assert.Equal(t, 0, bufutil.IndexOf(b, 1, 0, 0))
	// fromIndex beyond capacity clamps to capacity.
	assert.Equal(t, 4, bufutil.IndexOf(b, 99, 4, 0))
	assert.Equal(t, -1, bufutil.IndexOf(b, 5, 2, 9))
}

func TestIndexOfZeroCapacity(t *testing.T) {
	e := buffer.Empty(api.BigEndian)
	assert.Equal(t, -1, bufutil.IndexOf(e, 0, 0, 0))
	assert.Equal(t, -1, bufutil.IndexOf(e, 3, 0, 0))
	assert.Equal(t, -1, bufutil.IndexOf(e, 0, 3, 0))
}

func TestIndexOfFunc(t *testing.T) {
	b := buffer.Wrap([]byte{10, 20, 30, 20, 10}, api.BigEndian)
	over15 := func(b api.Buf, i int) bool { return b.GetByte(i) > 15 }

	assert.Equal(t, 1, bufutil.IndexOfFunc(b, 0, 5, over15))
	assert.Equal(t, 3, bufutil.IndexOfFunc(b, 5, 0, over15))
	assert.Equal(t, -1, bufutil.IndexOfFunc(b, 0, 5, func(api.Buf, int) bool { return false }))
}

func TestFirstLastIndexOfExplicit(t *testing.T) {
	b := buffer.Wrap([]byte{7, 0, 7}, api.BigEndian)

	assert.Equal(t, 0, bufutil.FirstIndexOf(b, 0, 3, 7))
	assert.Equal(t, 2, bufutil.LastIndexOf(b, 3, 0, 7))
}
