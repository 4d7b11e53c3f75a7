// File: core/charset/charset.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package charset is the text-codec boundary of the buffer toolkit. It
// converts between strings and bytes under a caller-supplied
// golang.org/x/text encoding and surfaces codec failures unchanged:
// silently truncating or substituting text would corrupt wire data, so
// no partial recovery is attempted here.
package charset

import (
	"fmt"

	"golang.org/x/text/encoding"

	"github.com/momentics/hioload-buf/api"
)

// Encode converts s to bytes under enc. Runes the encoding cannot
// represent fail the whole conversion.
func Encode(s string, enc encoding.Encoding) ([]byte, error) {
	if enc == nil {
		return nil, fmt.Errorf("%w: encoding", api.ErrNilArgument)
	}
	out, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Decode converts p to a string under enc. Byte sequences the encoding
// cannot parse fail the whole conversion.
func Decode(p []byte, enc encoding.Encoding) (string, error) {
	if enc == nil {
		return "", fmt.Errorf("%w: encoding", api.ErrNilArgument)
	}
	out, err := enc.NewDecoder().Bytes(p)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
