package charset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/momentics/hioload-buf/api"
	"github.com/momentics/hioload-buf/core/charset"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	utf8 := unicode.UTF8

	p, err := charset.Encode("héllo", utf8)
	require.NoError(t, err)

	s, err := charset.Decode(p, utf8)
	require.NoError(t, err)
	assert.Equal(t, "héllo", s)
}

func TestEncodeCharmap(t *testing.T) {
	p, err := charset.Encode("héllo", charmap.Windows1252)
	require.NoError(t, err)
	assert.Equal(t, []byte{'h', 0xe9, 'l', 'l', 'o'}, p)

	s, err := charset.Decode(p, charmap.Windows1252)
	require.NoError(t, err)
	assert.Equal(t, "héllo", s)
}

func TestEncodeEmpty(t *testing.T) {
	p, err := charset.Encode("", unicode.UTF8)
	require.NoError(t, err)
	assert.Empty(t, p)
}

func TestNilEncoding(t *testing.T) {
	_, err := charset.Encode("x", nil)
	assert.ErrorIs(t, err, api.ErrNilArgument)

	_, err = charset.Decode([]byte{1}, nil)
	assert.ErrorIs(t, err, api.ErrNilArgument)
}
